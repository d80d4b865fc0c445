// 指示: miu200521358
// Package eoutput はシーン入出力の契約を提供する。
package eoutput

import "github.com/miu200521358/mu_fbx_export/pkg/domain/model"

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	Indent    bool
	Overwrite bool
}

// ISceneReader はシーンスナップショット読み込みの契約を表す。
type ISceneReader interface {
	// CanLoad は拡張子に応じて読み込み可否を判定する。
	CanLoad(path string) bool
	// InferName はパスから表示名を推定する。
	InferName(path string) string
	// Load はシーンスナップショットを読み込む。
	Load(path string) (*model.Scene, error)
}

// ISceneWriter はシーンスナップショット書き込みの契約を表す。
type ISceneWriter interface {
	// CanSave は拡張子に応じて保存可否を判定する。
	CanSave(path string) bool
	// Save はシーンスナップショットを保存する。
	Save(path string, scene *model.Scene, options SaveOptions) error
}
