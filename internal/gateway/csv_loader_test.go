package gateway

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// writeFile テスト用のCSVファイルを一時ディレクトリに作成するヘルパー
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- ReadRecords テスト ---

func TestReadRecords_CountMatchesDataRows(t *testing.T) {
	input := "name,distance\nA,1\nB,2\n\nC,3\n"

	records, err := ReadRecords(strings.NewReader(input), "p.csv", ParticipantSchema)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "C", records[2].Text(ColName))
	assert.Equal(t, 5, records[2].Line)
}

func TestReadRecords_HeaderOrderIrrelevant(t *testing.T) {
	input := "gender, distance ,name,country,preferred_days,preferred_school,extra\nF,5,Alice,US,Mon|Wed,Y,ignored\n"

	records, err := ReadRecords(strings.NewReader(input), "p.csv", ParticipantSchema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "Alice", rec.Text(ColName))
	assert.True(t, rec.Bool(ColPreferredSchool))
	assert.Equal(t, domain.NewWeekdaySet(time.Monday, time.Wednesday), rec.Weekdays(ColPreferredDays))
	assert.Equal(t, 5.0, rec.Decimal(ColDistance))
	assert.Equal(t, "US", rec.Text(ColCountry))
	assert.Equal(t, "F", rec.Text(ColGender))
}

func TestReadRecords_BlankDefaults(t *testing.T) {
	input := "name,preferred_school,preferred_days,distance\nBob,,,\n"

	records, err := ReadRecords(strings.NewReader(input), "p.csv", ParticipantSchema)
	require.NoError(t, err)
	rec := records[0]
	assert.False(t, rec.Bool(ColPreferredSchool))
	assert.True(t, rec.Weekdays(ColPreferredDays).IsEmpty())
	assert.Equal(t, 0.0, rec.Decimal(ColDistance))
	assert.Equal(t, "", rec.Text(ColCountry))
}

func TestReadRecords_ByteOrderMark(t *testing.T) {
	input := "\ufeffname,distance\nA,1\n"

	records, err := ReadRecords(strings.NewReader(input), "p.csv", ParticipantSchema)
	require.NoError(t, err)
	assert.Equal(t, "A", records[0].Text(ColName))
}

func TestReadRecords_MissingColumn(t *testing.T) {
	input := "name,date,location,school_event\nScience Fair,2024-03-04,HS1,Y\n"

	_, err := ReadRecords(strings.NewReader(input), "events.csv", EventSchema)
	var missing *domain.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "capacity", missing.Column)
	assert.Equal(t, "events.csv", missing.File)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestReadRecords_EmptyFile(t *testing.T) {
	_, err := ReadRecords(strings.NewReader(""), "events.csv", EventSchema)
	var missing *domain.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Column)
}

func TestReadRecords_FieldTypeErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		input  string
		column string
	}{
		{"非数値の距離", ParticipantSchema, "name,distance\nA,far\n", ColDistance},
		{"負の距離", ParticipantSchema, "name,distance\nA,-1\n", ColDistance},
		{"不正なフラグ", ParticipantSchema, "name,distance,preferred_school\nA,1,maybe\n", ColPreferredSchool},
		{"不正な曜日", ParticipantSchema, "name,distance,preferred_days\nA,1,Mon|Funday\n", ColPreferredDays},
		{"不正な日付", EventSchema, "name,date,capacity\nE,03/04/2024,1\n", ColDate},
		{"空の日付", EventSchema, "name,date,capacity\nE,,1\n", ColDate},
		{"小数の定員", EventSchema, "name,date,capacity\nE,2024-03-04,1.5\n", ColCapacity},
		{"負の定員", EventSchema, "name,date,capacity\nE,2024-03-04,-2\n", ColCapacity},
		{"空の定員", EventSchema, "name,date,capacity\nE,2024-03-04,\n", ColCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.input), "x.csv", tt.schema)
			var fieldErr *domain.FieldTypeError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.column, fieldErr.Column)
			assert.Equal(t, 2, fieldErr.Line)
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestReadRecords_MalformedCSV(t *testing.T) {
	input := "name,distance\n\"A,1\n"

	_, err := ReadRecords(strings.NewReader(input), "p.csv", ParticipantSchema)
	assert.ErrorIs(t, err, domain.ErrParse)
}

// --- LoadRecords テスト ---

func TestLoadRecords_FileNotFound(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "missing.csv"), ParticipantSchema)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestLoadRecords_FromFile(t *testing.T) {
	path := writeFile(t, "events.csv", "name,date,location,capacity,school_event\nScience Fair,2024-03-04,HS1,1,Y\n")

	records, err := LoadRecords(path, EventSchema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), records[0].Date(ColDate))
	assert.Equal(t, 1, records[0].Integer(ColCapacity))
	assert.True(t, records[0].Bool(ColSchoolEvent))
}
