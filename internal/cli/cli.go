package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/k-negishi/event-assigner/internal/config"
	"github.com/k-negishi/event-assigner/internal/domain"
	"github.com/k-negishi/event-assigner/internal/gateway"
	"github.com/k-negishi/event-assigner/internal/logger"
	"github.com/k-negishi/event-assigner/internal/usecase"
)

const usage = `使い方:
  event-assigner assign <participants.csv> <events.csv> [--output PATH] [--format console|csv|html]
  event-assigner filter <participants.csv> [--gender G] [--country C] [--day D] [--school Y|N] [--max-distance N] [--output PATH] [--format console|csv|html]
`

// outputOptions 両サブコマンド共通の出力オプション
type outputOptions struct {
	output string
	format string
}

func (o *outputOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.output, "output", "", "出力ファイル（CSVまたはHTML）")
	fs.StringVar(&o.format, "format", "", "出力形式（console, csv, html）")
}

func (o *outputOptions) reporter(stdout io.Writer) (*gateway.FileReporter, error) {
	format, err := gateway.ResolveFormat(o.format, o.output)
	if err != nil {
		return nil, err
	}
	return gateway.NewFileReporter(format, o.output, stdout), nil
}

// Run コマンドライン引数を解釈してサブコマンドを実行
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return &domain.InvalidArgumentError{Arg: "<command>", Reason: "サブコマンドを指定してください"}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("設定読み込みエラー: %w", err)
	}
	log := logger.Setup(stderr, cfg.SlogLevel())
	if err := cfg.DotEnvError(); err != nil {
		log.Debug(".envファイルを読み込みませんでした", "error", err)
	}

	weights := usecase.Weights{
		School:   cfg.SchoolWeight,
		Day:      cfg.DayWeight,
		Distance: cfg.DistanceWeight,
	}

	switch args[0] {
	case "assign":
		return runAssign(ctx, args[1:], stdout, log, weights)
	case "filter":
		return runFilter(ctx, args[1:], stdout, log)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return &domain.InvalidArgumentError{Arg: "<command>", Value: args[0], Reason: "assign または filter を指定してください"}
	}
}

func runAssign(ctx context.Context, args []string, stdout io.Writer, log *slog.Logger, weights usecase.Weights) error {
	fs := newFlagSet("assign")
	var out outputOptions
	out.register(fs)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return &domain.InvalidArgumentError{Arg: "assign", Reason: "<participants.csv> <events.csv> を指定してください"}
	}

	reporter, err := out.reporter(stdout)
	if err != nil {
		return err
	}

	repo := gateway.NewCSVRepository(log)
	uc := usecase.NewAssignScheduleUseCase(repo, repo, reporter, usecase.NewEngine(weights), log)
	_, err = uc.Execute(ctx, positional[0], positional[1])
	return err
}

func runFilter(ctx context.Context, args []string, stdout io.Writer, log *slog.Logger) error {
	fs := newFlagSet("filter")
	var out outputOptions
	out.register(fs)
	gender := fs.String("gender", "", "性別が一致する参加者")
	country := fs.String("country", "", "国が一致する参加者")
	day := fs.String("day", "", "希望曜日に含む参加者（例: Mon）")
	school := fs.String("school", "", "学校イベント希望の有無（Y/N）")
	maxDistance := fs.String("max-distance", "", "距離の上限")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return &domain.InvalidArgumentError{Arg: "filter", Reason: "<participants.csv> を指定してください"}
	}

	set := visited(fs)
	var criteria usecase.Criteria
	if set["gender"] {
		criteria.Gender = gender
	}
	if set["country"] {
		criteria.Country = country
	}
	if set["day"] {
		d, err := domain.ParseWeekday(*day)
		if err != nil {
			return &domain.InvalidArgumentError{Arg: "--day", Value: *day, Reason: "曜日名を指定してください"}
		}
		criteria.Day = &d
	}
	if set["school"] {
		var wants bool
		switch strings.ToUpper(strings.TrimSpace(*school)) {
		case "Y":
			wants = true
		case "N":
			wants = false
		default:
			return &domain.InvalidArgumentError{Arg: "--school", Value: *school, Reason: "Y または N を指定してください"}
		}
		criteria.WantsSchoolEvent = &wants
	}
	if set["max-distance"] {
		v, err := strconv.ParseFloat(strings.TrimSpace(*maxDistance), 64)
		if err != nil || v < 0 {
			return &domain.InvalidArgumentError{Arg: "--max-distance", Value: *maxDistance, Reason: "0以上の数値を指定してください"}
		}
		criteria.MaxDistance = &v
	}

	reporter, err := out.reporter(stdout)
	if err != nil {
		return err
	}

	uc := usecase.NewFilterParticipantsUseCase(gateway.NewCSVRepository(log), reporter, log)
	_, err = uc.Execute(ctx, positional[0], criteria)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseInterspersed フラグと位置引数が混在していても解釈できるように繰り返しParseする
// "--" 以降はすべて位置引数として扱う
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, &domain.InvalidArgumentError{Arg: fs.Name(), Reason: "ヘルプは event-assigner help で表示できます"}
			}
			return nil, &domain.InvalidArgumentError{Arg: fs.Name(), Reason: err.Error()}
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// visited 明示的に指定されたフラグ名の集合
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
