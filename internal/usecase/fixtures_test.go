package usecase

import (
	"time"

	"github.com/k-negishi/event-assigner/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleParticipants Alice(学校希望・月曜) と Bob(学校不要・火曜)
func sampleParticipants() []domain.Participant {
	return []domain.Participant{
		{Name: "Alice", WantsSchoolEvent: true, PreferredDays: domain.NewWeekdaySet(time.Monday), Distance: 5, Country: "US", Gender: "F"},
		{Name: "Bob", WantsSchoolEvent: false, PreferredDays: domain.NewWeekdaySet(time.Tuesday), Distance: 2, Country: "US", Gender: "M"},
	}
}

// scienceFair 2024-03-04（月曜）の学校イベント、定員1
func scienceFair() domain.Event {
	return domain.Event{Name: "Science Fair", Date: date(2024, 3, 4), Location: "HS1", Capacity: 1, IsSchoolEvent: true}
}

func names(participants []domain.Participant) []string {
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		out = append(out, p.Name)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
