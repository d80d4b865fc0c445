// 指示: miu200521358
// Package io_scene はシーンスナップショットJSONの入出力を提供する。
package io_scene

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/io_common"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
	"github.com/miu200521358/mu_fbx_export/pkg/shared/base/logging"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/port/eoutput"
)

// LoadProgressEventType はシーン読込進捗イベント種別を表す。
type LoadProgressEventType string

const (
	// LoadProgressEventTypeFileReadComplete はファイル読込完了イベントを表す。
	LoadProgressEventTypeFileReadComplete LoadProgressEventType = "file_read_complete"
	// LoadProgressEventTypeJsonParsed はJSON解析完了イベントを表す。
	LoadProgressEventTypeJsonParsed LoadProgressEventType = "json_parsed"
	// LoadProgressEventTypeCompleted はシーン読込完了イベントを表す。
	LoadProgressEventTypeCompleted LoadProgressEventType = "completed"
)

// LoadProgressEvent はシーン読込進捗イベントを表す。
type LoadProgressEvent struct {
	Type          LoadProgressEventType
	FileSizeBytes int
	ObjectCount   int
	ActionCount   int
}

// SceneRepository はシーンスナップショットJSONの入出力を表す。
type SceneRepository struct {
	loadProgressReporter func(LoadProgressEvent)
}

// NewSceneRepository はSceneRepositoryを生成する。
func NewSceneRepository() *SceneRepository {
	return &SceneRepository{}
}

// SetLoadProgressReporter はシーン読込進捗受信コールバックを設定する。
func (r *SceneRepository) SetLoadProgressReporter(reporter func(LoadProgressEvent)) {
	if r == nil {
		return
	}
	r.loadProgressReporter = reporter
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SceneRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// InferName はパスから表示名を推定する。
func (r *SceneRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はシーンスナップショットを読み込む。
func (r *SceneRepository) Load(path string) (*model.Scene, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	logSceneInfo("シーン読込開始: file=%s", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("シーンファイルの読み取りに失敗しました", err)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeFileReadComplete,
		FileSizeBytes: len(b),
	})

	doc := sceneDocument{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, io_common.NewIoParseFailed("シーンJSONの解析に失敗しました", err)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeJsonParsed,
		FileSizeBytes: len(b),
		ObjectCount:   len(doc.Objects),
		ActionCount:   len(doc.Actions),
	})

	scene, err := newSceneFromDocument(doc)
	if err != nil {
		return nil, io_common.NewIoParseFailed("シーン構築に失敗しました", err)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeCompleted,
		FileSizeBytes: len(b),
		ObjectCount:   scene.Objects.Len(),
		ActionCount:   scene.Actions.Len(),
	})
	logSceneInfo("シーン読込完了: objects=%d actions=%d", scene.Objects.Len(), scene.Actions.Len())
	return scene, nil
}

// CanSave は拡張子に応じて保存可否を判定する。
func (r *SceneRepository) CanSave(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Save はシーンスナップショットを保存する。
func (r *SceneRepository) Save(path string, scene *model.Scene, options eoutput.SaveOptions) error {
	if !r.CanSave(path) {
		return io_common.NewIoExtInvalid(path, nil)
	}
	if scene == nil {
		return io_common.NewIoWriteFailed("保存対象シーンが未設定です", nil)
	}
	if !options.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return io_common.NewIoWriteFailed("保存先が既に存在します: "+path, nil)
		}
	}

	doc := newSceneDocument(scene)
	var b []byte
	var err error
	if options.Indent {
		b, err = json.MarshalIndent(doc, "", "  ")
	} else {
		b, err = json.Marshal(doc)
	}
	if err != nil {
		return io_common.NewIoWriteFailed("シーンJSONの生成に失敗しました", err)
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return io_common.NewIoWriteFailed("シーンファイルの書き込みに失敗しました", err)
	}
	logSceneInfo("シーン保存完了: file=%s bytes=%d", filepath.Base(path), len(b))
	return nil
}

// reportLoadProgress はシーン読込進捗を通知する。
func (r *SceneRepository) reportLoadProgress(event LoadProgressEvent) {
	if r == nil || r.loadProgressReporter == nil {
		return
	}
	r.loadProgressReporter(event)
}

// logSceneInfo はシーン入出力の情報ログを出力する。
func logSceneInfo(format string, args ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, args...)
}
