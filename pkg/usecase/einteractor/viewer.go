// 指示: miu200521358
package einteractor

import "github.com/miu200521358/mu_fbx_export/pkg/usecase/port/eoutput"

// ExportUsecaseDeps はエクスポート準備ユースケースの依存を表す。
type ExportUsecaseDeps struct {
	SceneReader eoutput.ISceneReader
	SceneWriter eoutput.ISceneWriter
}

// ExportUsecase はFBXエクスポート準備処理をまとめたユースケースを表す。
type ExportUsecase struct {
	sceneReader eoutput.ISceneReader
	sceneWriter eoutput.ISceneWriter
}

// NewExportUsecase はエクスポート準備ユースケースを生成する。
func NewExportUsecase(deps ExportUsecaseDeps) *ExportUsecase {
	return &ExportUsecase{
		sceneReader: deps.SceneReader,
		sceneWriter: deps.SceneWriter,
	}
}
