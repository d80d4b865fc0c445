// 指示: miu200521358
package model

const (
	// ExportWarningPropertyKey は警告ID集合を保持する CustomProperties のキー。
	ExportWarningPropertyKey = "MU_FBX_EXPORT_warnings"

	// ExportWarningSharedDataBake は共有データへのベイク拒否警告。
	ExportWarningSharedDataBake = "ExportWarningSharedDataBake"
	// ExportWarningNoCandidates は出力候補ゼロ警告。
	ExportWarningNoCandidates = "ExportWarningNoCandidates"
	// ExportWarningActionIncompatible はアクション非互換警告。
	ExportWarningActionIncompatible = "ExportWarningActionIncompatible"
	// ExportWarningGroupIncompatible はアクショングループ非互換警告。
	ExportWarningGroupIncompatible = "ExportWarningGroupIncompatible"
	// ExportWarningTargetVanished は処理中に対象が消滅した警告。
	ExportWarningTargetVanished = "ExportWarningTargetVanished"
)
