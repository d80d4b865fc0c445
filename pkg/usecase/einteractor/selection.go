// 指示: miu200521358
package einteractor

import "github.com/miu200521358/mu_fbx_export/pkg/domain/model"

// PopulateActionSelection はアクション選択リストを構築する。
// 件数が一致する既存リストはそのまま維持し、不一致の場合のみ再構築する。
// アクション出力が有効な場合は互換アクションのみ既定で選択状態にする。
func PopulateActionSelection(
	items []ActionSelectionItem,
	actions *model.ActionCollection,
	candidates []*model.Object,
	settings ExportSettings,
) []ActionSelectionItem {
	if actions == nil {
		return []ActionSelectionItem{}
	}
	if len(items) == actions.Len() {
		return items
	}

	rebuilt := make([]ActionSelectionItem, 0, actions.Len())
	for _, action := range actions.Values() {
		if action == nil {
			continue
		}
		selected := true
		if settings.BakeAnimExportActions {
			isCompatible, _ := IsActionCompatibleWithExport(action, candidates)
			selected = isCompatible
		}
		rebuilt = append(rebuilt, ActionSelectionItem{
			Name:     action.Name(),
			Action:   action.Name(),
			Selected: selected,
		})
	}
	return rebuilt
}

// SelectedActionNames は選択中アクション名の集合を返す。
func SelectedActionNames(items []ActionSelectionItem) map[string]struct{} {
	names := map[string]struct{}{}
	for _, item := range items {
		if item.Selected {
			names[item.Action] = struct{}{}
		}
	}
	return names
}

// SetAllActionSelection は全行の選択状態を一括で切り替える。
func SetAllActionSelection(items []ActionSelectionItem, selected bool) []ActionSelectionItem {
	for i := range items {
		items[i].Selected = selected
	}
	return items
}

// SelectCompatibleActions は互換判定結果どおりに選択状態を設定する。
func SelectCompatibleActions(
	items []ActionSelectionItem,
	actions *model.ActionCollection,
	candidates []*model.Object,
) []ActionSelectionItem {
	if actions == nil {
		return items
	}
	for i := range items {
		action, err := actions.GetByName(items[i].Action)
		if err != nil || action == nil {
			items[i].Selected = false
			continue
		}
		isCompatible, _ := IsActionCompatibleWithExport(action, candidates)
		items[i].Selected = isCompatible
	}
	return items
}
