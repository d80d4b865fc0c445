// 指示: miu200521358
package einteractor

import (
	"github.com/miu200521358/mu_fbx_export/pkg/domain/mmath"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/port/eoutput"
)

// SceneData は準備対象シーンを表す。
type SceneData = model.Scene

// SaveOptions は保存時オプションを表す。
type SaveOptions = eoutput.SaveOptions

// PrepareProgressEventType は準備処理の進捗イベント種別を表す。
type PrepareProgressEventType string

const (
	// PrepareProgressEventTypeSceneLoaded はシーン読込完了イベントを表す。
	PrepareProgressEventTypeSceneLoaded PrepareProgressEventType = "scene_loaded"
	// PrepareProgressEventTypeCandidatesResolved は出力候補確定イベントを表す。
	PrepareProgressEventTypeCandidatesResolved PrepareProgressEventType = "candidates_resolved"
	// PrepareProgressEventTypeActionsClassified はアクション互換判定完了イベントを表す。
	PrepareProgressEventTypeActionsClassified PrepareProgressEventType = "actions_classified"
	// PrepareProgressEventTypeSelectionPopulated はアクション選択リスト構築完了イベントを表す。
	PrepareProgressEventTypeSelectionPopulated PrepareProgressEventType = "selection_populated"
	// PrepareProgressEventTypeBakeCompleted はベイク変換適用完了イベントを表す。
	PrepareProgressEventTypeBakeCompleted PrepareProgressEventType = "bake_completed"
	// PrepareProgressEventTypeBakeReverted はベイク変換巻き戻し完了イベントを表す。
	PrepareProgressEventTypeBakeReverted PrepareProgressEventType = "bake_reverted"
	// PrepareProgressEventTypeSceneSaved はシーン保存完了イベントを表す。
	PrepareProgressEventTypeSceneSaved PrepareProgressEventType = "scene_saved"
)

// PrepareProgressEvent は準備処理の進捗イベントを表す。
type PrepareProgressEvent struct {
	Type            PrepareProgressEventType
	ObjectCount     int
	CandidateCount  int
	ActionCount     int
	CompatibleCount int
	BakedCount      int
	FailedCount     int
}

// IPrepareProgressReporter は準備処理の進捗通知契約を表す。
type IPrepareProgressReporter interface {
	// ReportPrepareProgress は準備処理進捗を通知する。
	ReportPrepareProgress(event PrepareProgressEvent)
}

// ActionSelectionItem はアクション選択リストの1行を表す。
type ActionSelectionItem struct {
	Name     string
	Action   string
	Selected bool
}

// ActionCompatibility はアクション1件の互換判定結果を表す。
type ActionCompatibility struct {
	ActionName            string
	IsCompatible          bool
	CompatibleObjectNames []string
}

// GroupCompatibility はアクショングループ1件の互換判定結果を表す。
type GroupCompatibility struct {
	GroupName             string
	ActionName            string
	IsCompatible          bool
	CompatibleObjectNames []string
}

// BakeBatchResult はベイク変換一括適用の結果を表す。
type BakeBatchResult struct {
	SucceededCount    int
	FailedObjectNames []string
	OriginalRotations map[string]mmath.Vec3
	WarningIDs        []string
}

// Succeeded は1件以上成功したか判定する。
func (r BakeBatchResult) Succeeded() bool {
	return r.SucceededCount > 0
}

// ExportRequest はエクスポート準備要求を表す。
type ExportRequest struct {
	InputPath        string
	OutputPath       string
	SceneData        *SceneData
	Settings         ExportSettings
	Reader           eoutput.ISceneReader
	Writer           eoutput.ISceneWriter
	SaveOptions      SaveOptions
	ProgressReporter IPrepareProgressReporter
	DryRun           bool
}

// ExportResult はエクスポート準備結果を表す。
type ExportResult struct {
	Scene                *SceneData
	OutputPath           string
	CandidateObjectNames []string
	Compatibilities      []ActionCompatibility
	GroupCompatibilities []GroupCompatibility
	SelectionItems       []ActionSelectionItem
	SelectedActionNames  []string
	BakeResult           *BakeBatchResult
	WarningIDs           []string
}
