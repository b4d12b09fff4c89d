package domain

import "time"

// Event 参加者を割り当てるイベントのドメインエンティティ
type Event struct {
	Name          string
	Date          time.Time
	Location      string
	Capacity      int
	IsSchoolEvent bool
}

// Weekday イベント開催日の曜日
func (e Event) Weekday() time.Weekday {
	return e.Date.Weekday()
}
