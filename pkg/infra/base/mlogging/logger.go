// 指示: miu200521358
// Package mlogging はslogを使った既定ロガー実装を提供する。
package mlogging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	slogmulti "github.com/samber/slog-multi"

	"github.com/miu200521358/mu_fbx_export/pkg/shared/base/logging"
)

// Logger はslogへ委譲するロガーを表す。
type Logger struct {
	mu      sync.RWMutex
	slogger *slog.Logger
	level   logging.Level
	verbose map[logging.VerboseIndex]bool
}

// NewLogger はロガーを生成する。handlerがnilの場合は標準エラー出力へ書く。
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &Logger{
		slogger: slog.New(handler),
		level:   logging.LOG_LEVEL_INFO,
		verbose: map[logging.VerboseIndex]bool{},
	}
}

// NewFanoutLogger は複数ハンドラへ同報するロガーを生成する。
func NewFanoutLogger(handlers ...slog.Handler) *Logger {
	if len(handlers) == 0 {
		return NewLogger(nil)
	}
	return NewLogger(slogmulti.Fanout(handlers...))
}

// SetLevel は出力レベルを設定する。
func (l *Logger) SetLevel(level logging.Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// EnableVerbose は詳細ログ区分を有効化する。
func (l *Logger) EnableVerbose(index logging.VerboseIndex) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose[index] = true
}

// IsVerboseEnabled は詳細ログ区分の有効可否を返す。
func (l *Logger) IsVerboseEnabled(index logging.VerboseIndex) bool {
	if l == nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose[index]
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	l.log(logging.LOG_LEVEL_DEBUG, slog.LevelDebug, format, params...)
}

// Info は情報ログを出力する。
func (l *Logger) Info(format string, params ...any) {
	l.log(logging.LOG_LEVEL_INFO, slog.LevelInfo, format, params...)
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	l.log(logging.LOG_LEVEL_WARN, slog.LevelWarn, format, params...)
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, params ...any) {
	l.log(logging.LOG_LEVEL_ERROR, slog.LevelError, format, params...)
}

// Verbose は区分が有効な場合のみレベルに関わらず出力する。
func (l *Logger) Verbose(index logging.VerboseIndex, format string, params ...any) {
	if !l.IsVerboseEnabled(index) {
		return
	}
	l.mu.RLock()
	slogger := l.slogger
	l.mu.RUnlock()
	if slogger == nil {
		return
	}
	slogger.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, params...))
}

// log はレベル判定後にslogへ委譲する。
func (l *Logger) log(level logging.Level, slogLevel slog.Level, format string, params ...any) {
	if l == nil {
		return
	}
	l.mu.RLock()
	slogger := l.slogger
	threshold := l.level
	l.mu.RUnlock()
	if slogger == nil || level < threshold {
		return
	}
	slogger.Log(context.Background(), slogLevel, fmt.Sprintf(format, params...))
}
