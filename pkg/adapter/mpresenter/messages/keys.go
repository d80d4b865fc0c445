// 指示: miu200521358
// Package messages はログ・CLI表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	LabelSceneInput    = "シーン入力"
	LabelSceneOutput   = "シーン出力"
	LabelSettings      = "エクスポート設定"
	LabelBakeTransform = "ベイク変換"

	MessageInputRequired    = "シーンスナップショットを指定してください"
	MessageLoadFailed       = "シーン読み込み失敗"
	MessageSaveFailed       = "シーン保存失敗"
	MessagePrepareFailed    = "エクスポート準備失敗"
	MessageNoCandidates     = "出力対象オブジェクトがありません"
	MessageBakeAndRevert    = "ベイク適用と巻き戻しは同時に指定できません"
	MessageSettingsNotFound = "エクスポート設定ファイルが見つかりません"

	LogSceneLoadSuccess   = "シーン読み込み成功: %s"
	LogSceneSaveSuccess   = "シーン保存成功: %s"
	LogCandidatesResolved = "出力候補確定: count=%d"
	LogActionCompatible   = "アクション互換: action=%s count=%d objects=[%s]"
	LogActionIncompatible = "アクション非互換: action=%s 出力対象のどのオブジェクトにも適用できません"
	LogGroupIncompatible  = "アクショングループ非互換: group=%s 出力対象との交差がありません"
	LogBakeApplied        = "ベイク変換適用: object=%s"
	LogBakeReverted       = "ベイク変換巻き戻し: object=%s"
	LogBakeFailed         = "ベイク変換失敗: object=%s err=%v"
	LogBakeSummary        = "ベイク変換完了: success=%d failed=[%s]"
)
