// 指示: miu200521358
package einteractor

import (
	"strings"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
)

// ValidateActionPaths はアクション全カーブのパスが対象ツリーで解決できるか判定する。
// カーブを持たないアクションは常に有効とする。
func ValidateActionPaths(action *model.Action, tree *model.PropertyNode) bool {
	if action == nil || !action.HasFcurves() {
		return true
	}
	return resolveFcurvePaths(action.Fcurves, tree)
}

// resolveFcurvePaths は全カーブの完全パス解決を試みる。1本でも失敗すればfalseを返す。
func resolveFcurvePaths(fcurves []model.Fcurve, tree *model.PropertyNode) bool {
	for _, fc := range fcurves {
		if _, err := tree.Resolve(fc.FullDataPath()); err != nil {
			logClassifyVerbose("カーブパス解決失敗: path=%s err=%v", fc.FullDataPath(), err)
			return false
		}
	}
	return true
}

// IsActionCompatibleWithExport はアクションが出力候補のいずれかへ適用可能か判定する。
// 戻り値は(互換可否, 互換オブジェクト名列)。候補の評価順はcandidatesの並び順に従う。
func IsActionCompatibleWithExport(action *model.Action, candidates []*model.Object) (bool, []string) {
	if action == nil || !action.HasFcurves() {
		// カーブなしアクションは有効だが、互換先は空として報告する。
		return true, []string{}
	}
	if len(candidates) == 0 {
		return false, []string{}
	}

	compatibleNames := []string{}
	for _, obj := range candidates {
		if obj == nil || obj.Binding == nil {
			continue
		}
		if obj.Binding.ActionLocked {
			continue
		}
		if isActionCompatibleWithObject(action, obj) {
			compatibleNames = append(compatibleNames, obj.Name())
		}
	}
	return len(compatibleNames) > 0, compatibleNames
}

// isActionCompatibleWithObject は1オブジェクトへの適用可否を判定する。
// 直接解決が先、失敗時のみスロット順でサブターゲット解決を試みる。
func isActionCompatibleWithObject(action *model.Action, obj *model.Object) bool {
	if resolveFcurvePaths(action.Fcurves, obj.PropertyTree()) {
		return true
	}
	for _, slot := range action.Slots {
		if isSlotCompatibleWithObject(action, slot, obj) {
			return true
		}
	}
	return false
}

// isSlotCompatibleWithObject はスロット1件のサブターゲット解決を判定する。
// サブターゲットへ到達できない場合はスロットのみ失敗とし、オブジェクト全体は落とさない。
// カーブを1本も持たないスロットは空解決を互換と見なさず失敗とする。
func isSlotCompatibleWithObject(action *model.Action, slot model.ActionSlot, obj *model.Object) bool {
	fcurves := action.SlotFcurves(slot.Name)
	if len(fcurves) == 0 {
		return false
	}

	var tree *model.PropertyNode
	switch slot.Target {
	case model.SLOT_TARGET_OBJECT:
		tree = obj.PropertyTree()
	case model.SLOT_TARGET_SHAPE_KEY:
		if obj.Category != model.CATEGORY_MESH || obj.ShapeKeys == nil {
			return false
		}
		tree = obj.ShapeKeys.PropertyTree()
	default:
		return false
	}
	return resolveFcurvePaths(fcurves, tree)
}

// ClassifyActions は全アクションの互換判定結果をアクション登録順で返す。
func ClassifyActions(actions *model.ActionCollection, candidates []*model.Object) []ActionCompatibility {
	results := []ActionCompatibility{}
	if actions == nil {
		return results
	}
	for _, action := range actions.Values() {
		if action == nil {
			continue
		}
		isCompatible, names := IsActionCompatibleWithExport(action, candidates)
		if isCompatible {
			logClassifyInfo(messages.LogActionCompatible, action.Name(), len(names), strings.Join(names, ", "))
		} else {
			logClassifyWarn(messages.LogActionIncompatible, action.Name())
		}
		results = append(results, ActionCompatibility{
			ActionName:            action.Name(),
			IsCompatible:          isCompatible,
			CompatibleObjectNames: names,
		})
	}
	return results
}

// IsGroupCompatibleWithExport はグループ割当と出力候補の交差で互換可否を判定する。
// 割当単位のカーブ再検証は行わない。
func IsGroupCompatibleWithExport(group *model.ActionGroup, candidates []*model.Object) (bool, []string) {
	if group == nil {
		return false, []string{}
	}
	candidateNames := map[string]struct{}{}
	for _, obj := range candidates {
		if obj != nil {
			candidateNames[obj.Name()] = struct{}{}
		}
	}

	matchedNames := []string{}
	for _, name := range group.AssignedObjectNames() {
		if _, exists := candidateNames[name]; exists {
			matchedNames = append(matchedNames, name)
		}
	}
	return len(matchedNames) > 0, matchedNames
}

// ClassifyGroups は全アクショングループの互換判定結果を定義順で返す。
func ClassifyGroups(groups []*model.ActionGroup, candidates []*model.Object) []GroupCompatibility {
	results := []GroupCompatibility{}
	for _, group := range groups {
		if group == nil {
			continue
		}
		isCompatible, names := IsGroupCompatibleWithExport(group, candidates)
		if !isCompatible {
			logClassifyWarn(messages.LogGroupIncompatible, group.Name)
		}
		results = append(results, GroupCompatibility{
			GroupName:             group.Name,
			ActionName:            group.ActionName,
			IsCompatible:          isCompatible,
			CompatibleObjectNames: names,
		})
	}
	return results
}
