package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/k-negishi/event-assigner/internal/domain"
)

// Format 出力形式
type Format string

const (
	FormatConsole Format = "console"
	FormatCSV     Format = "csv"
	FormatHTML    Format = "html"
)

// ParseFormat 出力形式名を解析
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatConsole, FormatCSV, FormatHTML:
		return f, nil
	default:
		return "", &domain.InvalidArgumentError{Arg: "--format", Value: name, Reason: "console, csv, html のいずれかを指定してください"}
	}
}

// ResolveFormat 出力形式を決定
// 明示指定があればそれを使い、なければ出力先の拡張子（.html/.htm はHTML、それ以外はCSV）で決める。
// 出力先もなければコンソール表示
func ResolveFormat(explicit, outputPath string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	if outputPath == "" {
		return FormatConsole, nil
	}
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return FormatCSV, nil
	}
}

// FileReporter 標準出力またはファイルに結果を書き出すReporterの実装
type FileReporter struct {
	format     Format
	outputPath string
	stdout     io.Writer
}

// NewFileReporter レポーターを作成。outputPath が空の場合は stdout に書き出す
func NewFileReporter(format Format, outputPath string, stdout io.Writer) *FileReporter {
	return &FileReporter{
		format:     format,
		outputPath: outputPath,
		stdout:     stdout,
	}
}

// ReportAssignment 割り当て結果を出力
func (r *FileReporter) ReportAssignment(_ context.Context, assignment domain.Assignment) error {
	return r.write(func(w io.Writer) error {
		switch r.format {
		case FormatCSV:
			return RenderAssignmentCSV(w, assignment)
		case FormatHTML:
			return RenderAssignmentHTML(w, assignment)
		default:
			return RenderAssignmentConsole(w, assignment)
		}
	})
}

// ReportParticipants 参加者一覧を出力
func (r *FileReporter) ReportParticipants(_ context.Context, participants []domain.Participant) error {
	return r.write(func(w io.Writer) error {
		switch r.format {
		case FormatCSV:
			return RenderParticipantsCSV(w, participants)
		case FormatHTML:
			return RenderParticipantsHTML(w, participants)
		default:
			return RenderParticipantsConsole(w, participants)
		}
	})
}

// write 全体をメモリ上で組み立ててから出力先に書き出す
func (r *FileReporter) write(render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("出力の組み立てに失敗しました: %w", err)
	}

	if r.outputPath == "" {
		if _, err := r.stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("標準出力への書き込みに失敗しました: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(r.outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%sへの書き込みに失敗しました: %w", r.outputPath, err)
	}
	return nil
}
