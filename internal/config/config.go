package config

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config アプリケーション設定構造体
type Config struct {
	// ログ設定
	LogLevel string `env:"ASSIGNER_LOG_LEVEL" envDefault:"INFO"`

	// 割り当てスコアの重み
	SchoolWeight   float64 `env:"ASSIGNER_SCHOOL_WEIGHT" envDefault:"100"`
	DayWeight      float64 `env:"ASSIGNER_DAY_WEIGHT" envDefault:"10"`
	DistanceWeight float64 `env:"ASSIGNER_DISTANCE_WEIGHT" envDefault:"1"`

	// .envファイル読み込み時のエラー（ファイルがない場合など）
	dotEnvErr error
}

// Load .envファイルと環境変数から設定を読み込み
func Load() (*Config, error) {
	// .envファイルを読み込み（存在しない場合もエラーにしない）
	dotEnvErr := godotenv.Load()

	cfg, err := parse()
	if err != nil {
		return nil, err
	}
	cfg.dotEnvErr = dotEnvErr
	return cfg, nil
}

// DotEnvError .envファイルを読み込めなかった場合のエラー（読み込めた場合はnil）
func (c *Config) DotEnvError() error {
	return c.dotEnvErr
}

// parse 環境変数を設定構造体に展開して検証
func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗しました: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"ASSIGNER_SCHOOL_WEIGHT", c.SchoolWeight},
		{"ASSIGNER_DAY_WEIGHT", c.DayWeight},
		{"ASSIGNER_DISTANCE_WEIGHT", c.DistanceWeight},
	}
	for _, w := range weights {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%sには有限の数値を設定してください: %v", w.name, w.value)
		}
		if w.value < 0 {
			return fmt.Errorf("%sに負の値は設定できません: %v", w.name, w.value)
		}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel ログレベル設定をslog.Levelに変換
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel ログレベル文字列（DEBUG/INFO/WARN/ERROR）を解析
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo, fmt.Errorf("ログレベル %q は不正です: %w", value, err)
	}
	return level, nil
}
