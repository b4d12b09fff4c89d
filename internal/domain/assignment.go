package domain

// EventAssignment 1つのイベントと割り当てられた参加者
type EventAssignment struct {
	Event        Event
	Participants []Participant
}

// Remaining 残りの定員
func (ea EventAssignment) Remaining() int {
	return ea.Event.Capacity - len(ea.Participants)
}

// Assignment イベントへの参加者割り当て結果
// Entries はイベントの入力順、Unassigned は参加者の入力順で保持する
type Assignment struct {
	Entries    []EventAssignment
	Unassigned []Participant
}

// AssignedCount 割り当て済みの参加者数
func (a Assignment) AssignedCount() int {
	n := 0
	for _, e := range a.Entries {
		n += len(e.Participants)
	}
	return n
}

// ParticipantsOf イベント名で割り当てられた参加者を取得（同名イベントは先頭のもの）
func (a Assignment) ParticipantsOf(eventName string) ([]Participant, bool) {
	for _, e := range a.Entries {
		if e.Event.Name == eventName {
			return e.Participants, true
		}
	}
	return nil, false
}
