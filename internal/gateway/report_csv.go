package gateway

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// RenderAssignmentCSV 割り当て結果を1参加者1行のCSVで出力
// 未割り当ての参加者はイベント列を空にして末尾に並べる
func RenderAssignmentCSV(w io.Writer, assignment domain.Assignment) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"event", ColDate, ColLocation, "participant"}}
	for _, entry := range assignment.Entries {
		for _, p := range entry.Participants {
			rows = append(rows, []string{
				entry.Event.Name,
				formatDate(entry.Event),
				entry.Event.Location,
				p.Name,
			})
		}
	}
	for _, p := range assignment.Unassigned {
		rows = append(rows, []string{"", "", "", p.Name})
	}
	return cw.WriteAll(rows)
}

// RenderParticipantsCSV 参加者一覧を入力と同じ列構成のCSVで出力
func RenderParticipantsCSV(w io.Writer, participants []domain.Participant) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{ColName, ColPreferredSchool, ColPreferredDays, ColDistance, ColCountry, ColGender}}
	for _, p := range participants {
		rows = append(rows, []string{
			p.Name,
			formatFlag(p.WantsSchoolEvent),
			p.PreferredDays.String(),
			formatDistance(p.Distance),
			p.Country,
			p.Gender,
		})
	}
	return cw.WriteAll(rows)
}

func formatDate(ev domain.Event) string {
	return ev.Date.Format(dateLayout)
}

func formatFlag(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
