package usecase

import (
	"context"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// ParticipantRepository 参加者を読み込むポート
type ParticipantRepository interface {
	LoadParticipants(ctx context.Context, path string) ([]domain.Participant, error)
}

// EventRepository イベントを読み込むポート
type EventRepository interface {
	LoadEvents(ctx context.Context, path string) ([]domain.Event, error)
}

// Reporter 結果を出力するポート
type Reporter interface {
	ReportAssignment(ctx context.Context, assignment domain.Assignment) error
	ReportParticipants(ctx context.Context, participants []domain.Participant) error
}
