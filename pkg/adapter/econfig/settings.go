// 指示: miu200521358
// Package econfig はエクスポート設定プリセットの読み込みを提供する。
package econfig

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/io_common"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/einteractor"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/port/eoutput"
)

// settingsDocument はYAMLプリセットの表現を表す。
type settingsDocument struct {
	UseActiveCollection   bool     `yaml:"use_active_collection"`
	Collection            string   `yaml:"collection"`
	UseSelection          bool     `yaml:"use_selection"`
	UseVisible            bool     `yaml:"use_visible"`
	ObjectTypes           []string `yaml:"object_types"`
	ObjectFilter          string   `yaml:"object_filter"`
	AxisForward           string   `yaml:"axis_forward"`
	AxisUp                string   `yaml:"axis_up"`
	BakeAnimExportActions *bool    `yaml:"bake_anim_export_actions"`
	BakeSpaceTransform    bool     `yaml:"bake_space_transform"`
	RevertBakeTransform   bool     `yaml:"revert_bake_transform"`
	Save                  struct {
		Indent    bool `yaml:"indent"`
		Overwrite bool `yaml:"overwrite"`
	} `yaml:"save"`
}

// ExportPreset は設定プリセット1件を表す。
type ExportPreset struct {
	Settings    einteractor.ExportSettings
	SaveOptions eoutput.SaveOptions
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func CanLoad(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ".yaml") || strings.EqualFold(ext, ".yml")
}

// LoadPreset はYAMLプリセットからエクスポート設定を読み込む。
// 省略された項目は既定値のままとする。
func LoadPreset(path string) (ExportPreset, error) {
	preset := ExportPreset{Settings: einteractor.DefaultExportSettings()}
	if !CanLoad(path) {
		return preset, io_common.NewIoExtInvalid(path, nil)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return preset, io_common.NewIoFileNotFound(path, err)
		}
		return preset, io_common.NewIoParseFailed("設定ファイルの読み取りに失敗しました", err)
	}

	doc := settingsDocument{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return preset, io_common.NewIoParseFailed("設定YAMLの解析に失敗しました", err)
	}

	preset.Settings.UseActiveCollection = doc.UseActiveCollection
	preset.Settings.Collection = doc.Collection
	preset.Settings.UseSelection = doc.UseSelection
	preset.Settings.UseVisible = doc.UseVisible
	preset.Settings.ObjectFilter = doc.ObjectFilter
	if trimmed := strings.ToUpper(strings.TrimSpace(doc.AxisForward)); trimmed != "" {
		preset.Settings.AxisForward = trimmed
	}
	if trimmed := strings.ToUpper(strings.TrimSpace(doc.AxisUp)); trimmed != "" {
		preset.Settings.AxisUp = trimmed
	}
	preset.Settings.BakeSpaceTransform = doc.BakeSpaceTransform
	preset.Settings.RevertBakeTransform = doc.RevertBakeTransform
	if doc.BakeAnimExportActions != nil {
		preset.Settings.BakeAnimExportActions = *doc.BakeAnimExportActions
	}
	for _, objectType := range doc.ObjectTypes {
		normalized := strings.ToUpper(strings.TrimSpace(objectType))
		if normalized == "" {
			continue
		}
		preset.Settings.ObjectTypes = append(preset.Settings.ObjectTypes, model.ObjectCategory(normalized))
	}

	preset.SaveOptions = eoutput.SaveOptions{
		Indent:    doc.Save.Indent,
		Overwrite: doc.Save.Overwrite,
	}
	return preset, nil
}
