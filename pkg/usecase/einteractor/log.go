// 指示: miu200521358
package einteractor

import (
	"github.com/miu200521358/mu_fbx_export/pkg/shared/base/logging"
)

// logCandidateWarn は出力候補解決の警告ログを出力する。
func logCandidateWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}

// logClassifyInfo は互換判定の情報ログを出力する。
func logClassifyInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logClassifyWarn は互換判定の警告ログを出力する。
func logClassifyWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}

// logClassifyVerbose は互換判定の詳細ログを出力する。
func logClassifyVerbose(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	if logger.IsVerboseEnabled(logging.VERBOSE_INDEX_CLASSIFY) {
		logger.Verbose(logging.VERBOSE_INDEX_CLASSIFY, format, params...)
	}
}

// logBakeInfo はベイク変換の情報ログを出力する。
func logBakeInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logBakeWarn はベイク変換の警告ログを出力する。
func logBakeWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}

// logBakeVerbose はベイク変換の詳細ログを出力する。
func logBakeVerbose(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	if logger.IsVerboseEnabled(logging.VERBOSE_INDEX_BAKE) {
		logger.Verbose(logging.VERBOSE_INDEX_BAKE, format, params...)
	}
}

// logPrepareInfo は準備処理の情報ログを出力する。
func logPrepareInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}
