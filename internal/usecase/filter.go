package usecase

import (
	"time"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// Criteria 参加者の絞り込み条件
// 未指定（nil）の条件は判定しない。指定された条件はすべて満たす必要がある
type Criteria struct {
	Country *string
	Gender  *string
	Day     *time.Weekday
	// WantsSchoolEvent 学校イベント希望の有無
	WantsSchoolEvent *bool
	// MaxDistance 距離の上限（この値を含む）
	MaxDistance *float64
}

// IsEmpty 条件が1つも指定されていないかを判定
func (c Criteria) IsEmpty() bool {
	return c.Country == nil && c.Gender == nil && c.Day == nil &&
		c.WantsSchoolEvent == nil && c.MaxDistance == nil
}

// Match 参加者が全条件を満たすかを判定
func (c Criteria) Match(p domain.Participant) bool {
	if c.Country != nil && p.Country != *c.Country {
		return false
	}
	if c.Gender != nil && p.Gender != *c.Gender {
		return false
	}
	if c.Day != nil && !p.Prefers(*c.Day) {
		return false
	}
	if c.WantsSchoolEvent != nil && p.WantsSchoolEvent != *c.WantsSchoolEvent {
		return false
	}
	if c.MaxDistance != nil && p.Distance > *c.MaxDistance {
		return false
	}
	return true
}

// Filter 条件を満たす参加者を入力順のまま返す
func Filter(participants []domain.Participant, c Criteria) []domain.Participant {
	if c.IsEmpty() {
		return participants
	}
	matched := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		if c.Match(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
