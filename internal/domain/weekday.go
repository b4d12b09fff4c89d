package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// WeekdaySet 曜日の集合（ビットマスク）
type WeekdaySet uint8

// weekOrder 表示時の曜日の並び順（月曜始まり）
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// NewWeekdaySet 指定された曜日からなる集合を作成
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With 曜日を追加した集合を返す
func (s WeekdaySet) With(day time.Weekday) WeekdaySet {
	return s | 1<<uint(day)
}

// Contains 曜日が集合に含まれるかを判定
func (s WeekdaySet) Contains(day time.Weekday) bool {
	return s&(1<<uint(day)) != 0
}

// IsEmpty 集合が空かを判定
func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// Days 月曜始まりの順で曜日を返す
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(weekOrder))
	for _, d := range weekOrder {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// String 入力ファイルと同じパイプ区切りの略称で表現（例: Mon|Wed）
func (s WeekdaySet) String() string {
	names := make([]string, 0, len(weekOrder))
	for _, d := range s.Days() {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, "|")
}

// ParseWeekday 曜日名（英語の正式名または3文字の略称、大文字小文字は区別しない）を解析
func ParseWeekday(name string) (time.Weekday, error) {
	fold := cases.Fold()
	folded := fold.String(strings.TrimSpace(name))
	for _, d := range weekOrder {
		full := fold.String(d.String())
		if folded == full || folded == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("曜日として解釈できません: %q", name)
}

// ParseWeekdaySet パイプ区切りの曜日リストを解析（空文字列は空集合）
func ParseWeekdaySet(value string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, part := range strings.Split(value, "|") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseWeekday(part)
		if err != nil {
			return 0, err
		}
		s = s.With(d)
	}
	return s, nil
}
