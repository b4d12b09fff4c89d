package usecase

import (
	"sort"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// Weights 割り当てスコアの重み
type Weights struct {
	// School 学校イベントの希望とイベント種別が一致した場合の加点
	School float64
	// Day イベントの曜日が希望曜日に含まれる場合の加点
	Day float64
	// Distance 距離の加点の最大値。Distance / (1 + 距離) を加える
	Distance float64
}

// DefaultWeights 学校イベント一致 > 曜日一致 > 距離 の順で優先される重み
var DefaultWeights = Weights{School: 100, Day: 10, Distance: 1}

// Engine 貪欲法による参加者割り当てエンジン
type Engine struct {
	weights Weights
}

// NewEngine 割り当てエンジンを作成
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Score 参加者とイベントの相性スコア（大きいほど優先）
func (e *Engine) Score(p domain.Participant, ev domain.Event) float64 {
	score := e.weights.Distance / (1 + p.Distance)
	if p.WantsSchoolEvent == ev.IsSchoolEvent {
		score += e.weights.School
	}
	if p.Prefers(ev.Weekday()) {
		score += e.weights.Day
	}
	return score
}

// Assign 参加者をイベントに割り当てる
// 学校イベント、日付の早い順、入力順にイベントを処理し、未割り当ての参加者を
// スコアの高い順に定員まで割り当てる。同点は入力順で決まる
func (e *Engine) Assign(participants []domain.Participant, events []domain.Event) domain.Assignment {
	entries := make([]domain.EventAssignment, len(events))
	for i, ev := range events {
		entries[i] = domain.EventAssignment{Event: ev, Participants: []domain.Participant{}}
	}

	// 未割り当て参加者の入力位置（昇順を維持）
	pool := make([]int, len(participants))
	for i := range participants {
		pool[i] = i
	}

	for _, ei := range eventOrder(events) {
		if len(pool) == 0 {
			break
		}
		ev := events[ei]
		if ev.Capacity == 0 {
			continue
		}

		ranked := make([]int, len(pool))
		copy(ranked, pool)
		scores := make(map[int]float64, len(ranked))
		for _, pi := range ranked {
			scores[pi] = e.Score(participants[pi], ev)
		}
		sort.SliceStable(ranked, func(a, b int) bool {
			return scores[ranked[a]] > scores[ranked[b]]
		})

		n := min(ev.Capacity, len(ranked))
		chosen := make(map[int]bool, n)
		for _, pi := range ranked[:n] {
			chosen[pi] = true
			entries[ei].Participants = append(entries[ei].Participants, participants[pi])
		}

		rest := pool[:0]
		for _, pi := range pool {
			if !chosen[pi] {
				rest = append(rest, pi)
			}
		}
		pool = rest
	}

	unassigned := make([]domain.Participant, 0, len(pool))
	for _, pi := range pool {
		unassigned = append(unassigned, participants[pi])
	}

	return domain.Assignment{Entries: entries, Unassigned: unassigned}
}

// eventOrder イベントの処理順（学校イベント優先、日付昇順、入力順）の添字を返す
func eventOrder(events []domain.Event) []int {
	order := make([]int, len(events))
	for i := range events {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := events[order[a]], events[order[b]]
		if ea.IsSchoolEvent != eb.IsSchoolEvent {
			return ea.IsSchoolEvent
		}
		return ea.Date.Before(eb.Date)
	})
	return order
}
