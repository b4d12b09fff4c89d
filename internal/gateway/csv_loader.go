package gateway

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// ColumnKind 列の型
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindBool
	KindWeekdays
	KindDecimal
	KindInteger
	KindDate
)

// dateLayout 日付列の書式（ISO 8601）
const dateLayout = "2006-01-02"

// Column 列定義
type Column struct {
	Name string
	Kind ColumnKind
	// Required ヘッダーに必須の列
	Required bool
	// BlankAllowed 空欄をゼロ値として受け付ける（Text/Bool/Weekdaysは常に空欄可）
	BlankAllowed bool
}

// Schema 列定義の並び
type Schema []Column

// Record 1行分の型変換済みの値
type Record struct {
	Line   int
	values map[string]any
}

// Text 文字列列の値
func (r Record) Text(name string) string {
	v, _ := r.values[name].(string)
	return v
}

// Bool 真偽値列の値
func (r Record) Bool(name string) bool {
	v, _ := r.values[name].(bool)
	return v
}

// Weekdays 曜日リスト列の値
func (r Record) Weekdays(name string) domain.WeekdaySet {
	v, _ := r.values[name].(domain.WeekdaySet)
	return v
}

// Decimal 実数列の値
func (r Record) Decimal(name string) float64 {
	v, _ := r.values[name].(float64)
	return v
}

// Integer 整数列の値
func (r Record) Integer(name string) int {
	v, _ := r.values[name].(int)
	return v
}

// Date 日付列の値
func (r Record) Date(name string) time.Time {
	v, _ := r.values[name].(time.Time)
	return v
}

// LoadRecords CSVファイルを読み込み、スキーマに従って型変換したレコードをファイル順に返す
func LoadRecords(path string, schema Schema) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%sを開けませんでした: %w", path, err)
	}
	defer f.Close()

	return ReadRecords(f, path, schema)
}

// ReadRecords Readerから読み込む。source はエラーメッセージに使うファイル名
func ReadRecords(r io.Reader, source string, schema Schema) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		header = nil
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, domain.ErrParse, err)
	}

	index, err := indexHeader(header, source, schema)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", source, domain.ErrParse, err)
		}
		line, _ := reader.FieldPos(0)

		record, err := convertRow(row, line, source, schema, index)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// indexHeader ヘッダーの列名から列位置を引く表を作成
func indexHeader(header []string, source string, schema Schema) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	index := make(map[string]int, len(schema))
	for _, col := range schema {
		pos, ok := positions[col.Name]
		if !ok {
			if col.Required {
				return nil, &domain.MissingColumnError{File: source, Column: col.Name}
			}
			continue
		}
		index[col.Name] = pos
	}
	return index, nil
}

func convertRow(row []string, line int, source string, schema Schema, index map[string]int) (Record, error) {
	record := Record{Line: line, values: make(map[string]any, len(schema))}
	for _, col := range schema {
		raw := ""
		if pos, ok := index[col.Name]; ok && pos < len(row) {
			raw = strings.TrimSpace(row[pos])
		}

		value, err := convertField(col, raw)
		if err != nil {
			return Record{}, &domain.FieldTypeError{
				File:   source,
				Line:   line,
				Column: col.Name,
				Value:  raw,
				Err:    err,
			}
		}
		record.values[col.Name] = value
	}
	return record, nil
}

// convertField 1つの値を列の型に変換
func convertField(col Column, raw string) (any, error) {
	switch col.Kind {
	case KindText:
		return raw, nil
	case KindBool:
		return parseFlag(raw)
	case KindWeekdays:
		return domain.ParseWeekdaySet(raw)
	}

	if raw == "" {
		if !col.BlankAllowed {
			return nil, errors.New("値が空です")
		}
		return zeroValue(col.Kind), nil
	}

	switch col.Kind {
	case KindDecimal:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("数値ではありません")
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("0以上の数値が必要です")
		}
		return v, nil
	case KindInteger:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("整数ではありません")
		}
		if v < 0 {
			return nil, errors.New("0以上の整数が必要です")
		}
		return v, nil
	case KindDate:
		v, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, errors.New("YYYY-MM-DD形式の日付ではありません")
		}
		return v, nil
	default:
		return nil, fmt.Errorf("未対応の列型です: %d", col.Kind)
	}
}

func zeroValue(kind ColumnKind) any {
	switch kind {
	case KindDecimal:
		return 0.0
	case KindInteger:
		return 0
	case KindDate:
		return time.Time{}
	default:
		return nil
	}
}

// parseFlag Y/N形式の値を解析（空欄はfalse）
func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "":
		return false, nil
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	default:
		return false, errors.New("Y/Nのいずれかが必要です")
	}
}
