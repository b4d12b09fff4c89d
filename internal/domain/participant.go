package domain

import "time"

// Participant イベントへの参加希望者のドメインエンティティ
// 名前は識別子ではないため、同名の参加者も別人として扱う
type Participant struct {
	Name             string
	WantsSchoolEvent bool
	PreferredDays    WeekdaySet
	Distance         float64
	Country          string
	Gender           string
}

// Prefers 指定された曜日が希望曜日に含まれるかを判定
func (p Participant) Prefers(day time.Weekday) bool {
	return p.PreferredDays.Contains(day)
}
