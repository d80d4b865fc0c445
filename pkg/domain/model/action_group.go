// 指示: miu200521358
package model

// GroupAssignment はアクショングループ内の割当1件を表す。
type GroupAssignment struct {
	ObjectName string
	SlotName   string
}

// ActionGroup は外部グルーピング機能のアクショングループを表す。
// 1グループは代表アクション1件と(オブジェクト, スロット)割当の集合を持つ。
type ActionGroup struct {
	Name        string
	ActionName  string
	Assignments []GroupAssignment
}

// AssignedObjectNames は割当済みオブジェクト名を登場順で返す。重複は除く。
func (g *ActionGroup) AssignedObjectNames() []string {
	if g == nil {
		return nil
	}
	seen := map[string]struct{}{}
	names := []string{}
	for _, assignment := range g.Assignments {
		if _, exists := seen[assignment.ObjectName]; exists {
			continue
		}
		seen[assignment.ObjectName] = struct{}{}
		names = append(names, assignment.ObjectName)
	}
	return names
}
