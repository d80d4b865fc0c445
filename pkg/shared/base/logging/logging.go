// 指示: miu200521358
// Package logging はアプリ共通のロガー契約を提供する。
package logging

import "sync"

// Level はログレベルを表す。
type Level int

// ログレベル一覧。
const (
	LOG_LEVEL_DEBUG Level = iota
	LOG_LEVEL_INFO
	LOG_LEVEL_WARN
	LOG_LEVEL_ERROR
)

// VerboseIndex は詳細ログの出力区分を表す。
type VerboseIndex int

// 詳細ログ区分一覧。
const (
	VERBOSE_INDEX_IO VerboseIndex = iota
	VERBOSE_INDEX_CLASSIFY
	VERBOSE_INDEX_BAKE
)

// ILogger はログ出力の契約を表す。
type ILogger interface {
	// Debug はデバッグログを出力する。
	Debug(format string, params ...any)
	// Info は情報ログを出力する。
	Info(format string, params ...any)
	// Warn は警告ログを出力する。
	Warn(format string, params ...any)
	// Error はエラーログを出力する。
	Error(format string, params ...any)
	// Verbose は区分付き詳細ログを出力する。
	Verbose(index VerboseIndex, format string, params ...any)
	// IsVerboseEnabled は詳細ログ区分の有効可否を返す。
	IsVerboseEnabled(index VerboseIndex) bool
	// SetLevel は出力レベルを設定する。
	SetLevel(level Level)
	// EnableVerbose は詳細ログ区分を有効化する。
	EnableVerbose(index VerboseIndex)
}

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   ILogger
)

// DefaultLogger は既定ロガーを返す。未設定時はnilを返す。
func DefaultLogger() ILogger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。
func SetDefaultLogger(logger ILogger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}
