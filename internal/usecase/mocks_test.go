package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// MockParticipantRepository は ParticipantRepository のテスト用モック
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) LoadParticipants(ctx context.Context, path string) ([]domain.Participant, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

// MockEventRepository は EventRepository のテスト用モック
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) LoadEvents(ctx context.Context, path string) ([]domain.Event, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockReporter は Reporter のテスト用モック
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) ReportAssignment(ctx context.Context, assignment domain.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockReporter) ReportParticipants(ctx context.Context, participants []domain.Participant) error {
	args := m.Called(ctx, participants)
	return args.Error(0)
}
