package gateway

import (
	"html/template"
	"io"
	"strings"

	"github.com/k-negishi/event-assigner/internal/domain"
)

var assignmentTemplate = template.Must(template.New("assignment").Funcs(template.FuncMap{
	"date":  formatDate,
	"names": participantNames,
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Assignments</title></head>
<body>
<table>
<thead><tr><th>Event</th><th>Date</th><th>Location</th><th>Participants</th></tr></thead>
<tbody>
{{- range .Entries}}
<tr><td>{{.Event.Name}}</td><td>{{date .Event}}</td><td>{{.Event.Location}}</td><td>{{names .Participants}}</td></tr>
{{- end}}
</tbody>
</table>
{{- if .Unassigned}}
<h2>Unassigned</h2>
<ul>
{{- range .Unassigned}}
<li>{{.Name}}</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
`))

var participantsTemplate = template.Must(template.New("participants").Funcs(template.FuncMap{
	"flag":     formatFlag,
	"distance": formatDistance,
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Participants</title></head>
<body>
<table>
<thead><tr><th>Name</th><th>School</th><th>Days</th><th>Distance</th><th>Country</th><th>Gender</th></tr></thead>
<tbody>
{{- range .}}
<tr><td>{{.Name}}</td><td>{{flag .WantsSchoolEvent}}</td><td>{{.PreferredDays.String}}</td><td>{{distance .Distance}}</td><td>{{.Country}}</td><td>{{.Gender}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// RenderAssignmentHTML 割り当て結果を1イベント1行のHTMLテーブルで出力
func RenderAssignmentHTML(w io.Writer, assignment domain.Assignment) error {
	return assignmentTemplate.Execute(w, assignment)
}

// RenderParticipantsHTML 参加者一覧を1参加者1行のHTMLテーブルで出力
func RenderParticipantsHTML(w io.Writer, participants []domain.Participant) error {
	return participantsTemplate.Execute(w, participants)
}

func participantNames(participants []domain.Participant) string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
