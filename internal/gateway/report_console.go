package gateway

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// RenderAssignmentConsole イベントごとに割り当てられた参加者を表形式で表示
func RenderAssignmentConsole(w io.Writer, assignment domain.Assignment) error {
	for _, entry := range assignment.Entries {
		ev := entry.Event
		if _, err := fmt.Fprintf(w, "Event: %s (%s) at %s [%d/%d]\n",
			ev.Name, formatDate(ev), ev.Location, len(entry.Participants), ev.Capacity); err != nil {
			return err
		}

		if len(entry.Participants) == 0 {
			if _, err := fmt.Fprintln(w, "  割り当てなし"); err != nil {
				return err
			}
		} else {
			table := newTable(w, []string{"Participant", "Country", "Gender"})
			for _, p := range entry.Participants {
				table.Append([]string{p.Name, p.Country, p.Gender})
			}
			table.Render()
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if len(assignment.Unassigned) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "未割り当て (%d名):\n", len(assignment.Unassigned)); err != nil {
		return err
	}
	table := newTable(w, []string{"Participant", "Country", "Gender"})
	for _, p := range assignment.Unassigned {
		table.Append([]string{p.Name, p.Country, p.Gender})
	}
	table.Render()
	return nil
}

// RenderParticipantsConsole 参加者一覧を表形式で表示
func RenderParticipantsConsole(w io.Writer, participants []domain.Participant) error {
	if len(participants) == 0 {
		_, err := fmt.Fprintln(w, "該当する参加者はいません")
		return err
	}

	table := newTable(w, []string{"Name", "School", "Days", "Distance", "Country", "Gender"})
	for _, p := range participants {
		table.Append([]string{
			p.Name,
			formatFlag(p.WantsSchoolEvent),
			p.PreferredDays.String(),
			formatDistance(p.Distance),
			p.Country,
			p.Gender,
		})
	}
	table.Render()
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
