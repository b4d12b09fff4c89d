package gateway

import (
	"context"
	"log/slog"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// 参加者CSVの列名
const (
	ColName            = "name"
	ColPreferredSchool = "preferred_school"
	ColPreferredDays   = "preferred_days"
	ColDistance        = "distance"
	ColCountry         = "country"
	ColGender          = "gender"
)

// イベントCSVの列名
const (
	ColDate        = "date"
	ColLocation    = "location"
	ColCapacity    = "capacity"
	ColSchoolEvent = "school_event"
)

// ParticipantSchema 参加者CSVのスキーマ
var ParticipantSchema = Schema{
	{Name: ColName, Kind: KindText, Required: true},
	{Name: ColPreferredSchool, Kind: KindBool},
	{Name: ColPreferredDays, Kind: KindWeekdays},
	{Name: ColDistance, Kind: KindDecimal, Required: true, BlankAllowed: true},
	{Name: ColCountry, Kind: KindText},
	{Name: ColGender, Kind: KindText},
}

// EventSchema イベントCSVのスキーマ
var EventSchema = Schema{
	{Name: ColName, Kind: KindText, Required: true},
	{Name: ColDate, Kind: KindDate, Required: true},
	{Name: ColLocation, Kind: KindText},
	{Name: ColCapacity, Kind: KindInteger, Required: true},
	{Name: ColSchoolEvent, Kind: KindBool},
}

// CSVRepository CSVファイルから参加者とイベントを読み込むリポジトリ
type CSVRepository struct {
	logger *slog.Logger
}

// NewCSVRepository CSVリポジトリを作成
func NewCSVRepository(logger *slog.Logger) *CSVRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVRepository{logger: logger}
}

// LoadParticipants 参加者CSVを読み込み
func (r *CSVRepository) LoadParticipants(_ context.Context, path string) ([]domain.Participant, error) {
	records, err := LoadRecords(path, ParticipantSchema)
	if err != nil {
		return nil, err
	}

	participants := make([]domain.Participant, 0, len(records))
	for _, rec := range records {
		participants = append(participants, toParticipant(rec))
	}

	r.logger.Debug("参加者を読み込みました", "file", path, "count", len(participants))
	return participants, nil
}

// LoadEvents イベントCSVを読み込み
func (r *CSVRepository) LoadEvents(_ context.Context, path string) ([]domain.Event, error) {
	records, err := LoadRecords(path, EventSchema)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(records))
	for _, rec := range records {
		events = append(events, toEvent(rec))
	}

	r.logger.Debug("イベントを読み込みました", "file", path, "count", len(events))
	return events, nil
}

func toParticipant(rec Record) domain.Participant {
	return domain.Participant{
		Name:             rec.Text(ColName),
		WantsSchoolEvent: rec.Bool(ColPreferredSchool),
		PreferredDays:    rec.Weekdays(ColPreferredDays),
		Distance:         rec.Decimal(ColDistance),
		Country:          rec.Text(ColCountry),
		Gender:           rec.Text(ColGender),
	}
}

func toEvent(rec Record) domain.Event {
	return domain.Event{
		Name:          rec.Text(ColName),
		Date:          rec.Date(ColDate),
		Location:      rec.Text(ColLocation),
		Capacity:      rec.Integer(ColCapacity),
		IsSchoolEvent: rec.Bool(ColSchoolEvent),
	}
}
