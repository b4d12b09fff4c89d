package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// FilterParticipantsUseCase 条件に合う参加者を抽出して出力するユースケース
type FilterParticipantsUseCase struct {
	participantRepo ParticipantRepository
	reporter        Reporter
	logger          *slog.Logger
}

// NewFilterParticipantsUseCase ユースケースを生成
func NewFilterParticipantsUseCase(participantRepo ParticipantRepository, reporter Reporter, logger *slog.Logger) *FilterParticipantsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilterParticipantsUseCase{
		participantRepo: participantRepo,
		reporter:        reporter,
		logger:          logger,
	}
}

// Execute 参加者CSVを読み込み、条件で絞り込んだ結果を出力する
func (uc *FilterParticipantsUseCase) Execute(ctx context.Context, participantsPath string, criteria Criteria) ([]domain.Participant, error) {
	participants, err := uc.participantRepo.LoadParticipants(ctx, participantsPath)
	if err != nil {
		return nil, fmt.Errorf("参加者の読み込みに失敗しました: %w", err)
	}

	matched := Filter(participants, criteria)
	uc.logger.Info("絞り込みが完了しました", "total", len(participants), "matched", len(matched))

	if err := uc.reporter.ReportParticipants(ctx, matched); err != nil {
		return nil, fmt.Errorf("絞り込み結果の出力に失敗しました: %w", err)
	}

	return matched, nil
}
