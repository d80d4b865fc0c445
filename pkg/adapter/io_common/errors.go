// 指示: miu200521358
// Package io_common は入出力共通の型付きエラーを提供する。
package io_common

import (
	"errors"
	"fmt"
)

// 入出力エラー種別の番兵一覧。errors.Isで判定できる。
var (
	ErrExtInvalid   = errors.New("拡張子が未対応です")
	ErrFileNotFound = errors.New("ファイルが見つかりません")
	ErrParseFailed  = errors.New("解析に失敗しました")
	ErrWriteFailed  = errors.New("書き込みに失敗しました")
)

// IoError は発生個所情報付きの入出力エラーを表す。
type IoError struct {
	kind    error
	Path    string
	Message string
	Err     error
}

// Error はエラーメッセージを返す。
func (e *IoError) Error() string {
	text := e.kind.Error()
	if e.Message != "" {
		text = e.Message
	}
	if e.Path != "" {
		text = fmt.Sprintf("%s: %s", text, e.Path)
	}
	if e.Err != nil {
		text = fmt.Sprintf("%s (%v)", text, e.Err)
	}
	return text
}

// Unwrap は原因エラーを返す。
func (e *IoError) Unwrap() error {
	return e.Err
}

// Is は番兵種別との一致を判定する。
func (e *IoError) Is(target error) bool {
	return target == e.kind
}

// NewIoExtInvalid は拡張子不正エラーを生成する。
func NewIoExtInvalid(path string, err error) error {
	return &IoError{kind: ErrExtInvalid, Path: path, Err: err}
}

// NewIoFileNotFound はファイル不在エラーを生成する。
func NewIoFileNotFound(path string, err error) error {
	return &IoError{kind: ErrFileNotFound, Path: path, Err: err}
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(message string, err error) error {
	return &IoError{kind: ErrParseFailed, Message: message, Err: err}
}

// NewIoWriteFailed は書き込み失敗エラーを生成する。
func NewIoWriteFailed(message string, err error) error {
	return &IoError{kind: ErrWriteFailed, Message: message, Err: err}
}
