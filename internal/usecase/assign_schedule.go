package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// AssignScheduleUseCase 参加者をイベントに割り当てて出力するユースケース
type AssignScheduleUseCase struct {
	participantRepo ParticipantRepository
	eventRepo       EventRepository
	reporter        Reporter
	engine          *Engine
	logger          *slog.Logger
}

// NewAssignScheduleUseCase ユースケースを生成
func NewAssignScheduleUseCase(participantRepo ParticipantRepository, eventRepo EventRepository, reporter Reporter, engine *Engine, logger *slog.Logger) *AssignScheduleUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssignScheduleUseCase{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		reporter:        reporter,
		engine:          engine,
		logger:          logger,
	}
}

// Execute 参加者CSVとイベントCSVを読み込み、割り当て結果を出力する
func (uc *AssignScheduleUseCase) Execute(ctx context.Context, participantsPath, eventsPath string) (domain.Assignment, error) {
	participants, err := uc.participantRepo.LoadParticipants(ctx, participantsPath)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("参加者の読み込みに失敗しました: %w", err)
	}

	events, err := uc.eventRepo.LoadEvents(ctx, eventsPath)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("イベントの読み込みに失敗しました: %w", err)
	}

	assignment := uc.engine.Assign(participants, events)
	uc.logger.Info("割り当てが完了しました",
		"events", len(events),
		"assigned", assignment.AssignedCount(),
		"unassigned", len(assignment.Unassigned),
	)

	if err := uc.reporter.ReportAssignment(ctx, assignment); err != nil {
		return domain.Assignment{}, fmt.Errorf("割り当て結果の出力に失敗しました: %w", err)
	}

	return assignment, nil
}
