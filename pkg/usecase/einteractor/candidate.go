// 指示: miu200521358
package einteractor

import (
	"gopkg.in/Knetic/govaluate.v3"

	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
)

// 軸設定の既定値。ベイク変換はこの組み合わせでのみ適用できる。
const (
	AXIS_FORWARD_NEG_Z = "-Z"
	AXIS_UP_Y          = "Y"
)

// ExportSettings はエクスポート準備の設定を表す。
type ExportSettings struct {
	UseActiveCollection   bool
	Collection            string
	UseSelection          bool
	UseVisible            bool
	ObjectTypes           []model.ObjectCategory
	ObjectFilter          string
	AxisForward           string
	AxisUp                string
	BakeAnimExportActions bool
	BakeSpaceTransform    bool
	RevertBakeTransform   bool
}

// DefaultExportSettings は既定のエクスポート設定を返す。
func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		AxisForward:           AXIS_FORWARD_NEG_Z,
		AxisUp:                AXIS_UP_Y,
		BakeAnimExportActions: true,
	}
}

// BakeTransformAvailable はベイク変換を適用できる軸設定か判定する。
// 前方-Z・上方Y以外の軸設定ではベイク変換を適用しない。
func (s ExportSettings) BakeTransformAvailable() bool {
	return s.AxisForward == AXIS_FORWARD_NEG_Z && s.AxisUp == AXIS_UP_Y
}

// CandidateObjectsForExport は設定に基づき出力対象オブジェクトを順序付きで返す。
// 内部処理の失敗は空リストとして扱い、呼び出し側へはエラーを返さない。
func CandidateObjectsForExport(scene *model.Scene, settings ExportSettings) []*model.Object {
	if scene == nil || scene.Objects == nil {
		return []*model.Object{}
	}

	baseObjects, ok := resolveBaseObjects(scene, settings)
	if !ok {
		return []*model.Object{}
	}

	filtered := []*model.Object{}
	for _, obj := range baseObjects {
		if obj == nil {
			continue
		}
		if settings.UseVisible && !obj.Visible {
			continue
		}
		if !matchesObjectTypes(obj, settings.ObjectTypes) {
			continue
		}
		filtered = append(filtered, obj)
	}

	if settings.ObjectFilter == "" {
		return filtered
	}
	expressionFiltered, ok := applyObjectFilter(filtered, settings.ObjectFilter)
	if !ok {
		return []*model.Object{}
	}
	return expressionFiltered
}

// resolveBaseObjects はコレクション・選択設定から基礎オブジェクト列を解決する。
func resolveBaseObjects(scene *model.Scene, settings ExportSettings) ([]*model.Object, bool) {
	collectionNames := resolveSourceCollection(scene, settings)
	if collectionNames != nil {
		objects := []*model.Object{}
		for _, name := range collectionNames {
			obj, err := scene.Objects.GetByName(name)
			if err != nil || obj == nil {
				continue
			}
			if settings.UseSelection && !obj.Selected {
				continue
			}
			objects = append(objects, obj)
		}
		return objects, true
	}

	objects := []*model.Object{}
	for _, obj := range scene.Objects.Values() {
		if obj == nil {
			continue
		}
		if settings.UseSelection && !obj.Selected {
			continue
		}
		objects = append(objects, obj)
	}
	return objects, true
}

// resolveSourceCollection は設定から参照コレクションのオブジェクト名列を解決する。
// コレクション指定なし、または指定コレクションが存在しない場合はnilを返す。
func resolveSourceCollection(scene *model.Scene, settings ExportSettings) []string {
	if settings.UseActiveCollection && scene.ActiveCollection != "" {
		return scene.CollectionObjectNames(scene.ActiveCollection)
	}
	if settings.Collection != "" {
		return scene.CollectionObjectNames(settings.Collection)
	}
	return nil
}

// matchesObjectTypes は種別フィルタを判定する。フィルタ未指定は全許可とする。
func matchesObjectTypes(obj *model.Object, objectTypes []model.ObjectCategory) bool {
	if len(objectTypes) == 0 {
		return true
	}
	for _, category := range objectTypes {
		if obj.Category == category {
			return true
		}
	}
	return false
}

// applyObjectFilter はフィルタ式を各オブジェクトへ評価する。
// 式の構文エラーや評価失敗は全体を失敗として扱う。
func applyObjectFilter(objects []*model.Object, filter string) ([]*model.Object, bool) {
	expression, err := govaluate.NewEvaluableExpression(filter)
	if err != nil {
		logCandidateWarn("オブジェクトフィルタ式の解析に失敗しました: filter=%s err=%v", filter, err)
		return nil, false
	}

	filtered := []*model.Object{}
	for _, obj := range objects {
		parameters := map[string]any{
			"name":     obj.Name(),
			"category": string(obj.Category),
			"selected": obj.Selected,
			"visible":  obj.Visible,
		}
		result, err := expression.Evaluate(parameters)
		if err != nil {
			logCandidateWarn("オブジェクトフィルタ式の評価に失敗しました: object=%s err=%v", obj.Name(), err)
			return nil, false
		}
		matched, ok := result.(bool)
		if !ok {
			logCandidateWarn("オブジェクトフィルタ式の結果が真偽値ではありません: object=%s result=%v", obj.Name(), result)
			return nil, false
		}
		if matched {
			filtered = append(filtered, obj)
		}
	}
	return filtered, true
}
