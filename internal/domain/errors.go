package domain

import (
	"errors"
	"fmt"
)

// ErrParse 入力ファイルの解析エラー全般を表す
// MissingColumnError と FieldTypeError は errors.Is(err, ErrParse) を満たす
var ErrParse = errors.New("入力ファイルの解析に失敗しました")

// MissingColumnError 必須列がヘッダーに存在しない
type MissingColumnError struct {
	File   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: 必須列 %q がヘッダーにありません", e.File, e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrParse
}

// FieldTypeError 値を列の型に変換できない
type FieldTypeError struct {
	File   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s:%d: 列 %q の値 %q を変換できません: %v", e.File, e.Line, e.Column, e.Value, e.Err)
}

func (e *FieldTypeError) Is(target error) bool {
	return target == ErrParse
}

func (e *FieldTypeError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError コマンドライン引数が不正
type InvalidArgumentError struct {
	Arg    string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("引数 %s が不正です: %s", e.Arg, e.Reason)
	}
	return fmt.Sprintf("引数 %s の値 %q が不正です: %s", e.Arg, e.Value, e.Reason)
}
