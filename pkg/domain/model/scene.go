// 指示: miu200521358
// Package model はエクスポート準備対象のシーンドメインを提供する。
package model

// Scene はスナップショット1件分のシーンを表す。
type Scene struct {
	Name             string
	Objects          *ObjectCollection
	Actions          *ActionCollection
	Groups           []*ActionGroup
	Collections      map[string][]string
	ActiveCollection string
	ActiveObjectName string
}

// NewScene は空のシーンを生成する。
func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		Objects:     NewObjectCollection(),
		Actions:     NewActionCollection(),
		Groups:      []*ActionGroup{},
		Collections: map[string][]string{},
	}
}

// ActiveObject はアクティブオブジェクトを返す。
func (s *Scene) ActiveObject() (*Object, bool) {
	if s == nil || s.ActiveObjectName == "" || s.Objects == nil {
		return nil, false
	}
	obj, err := s.Objects.GetByName(s.ActiveObjectName)
	if err != nil {
		return nil, false
	}
	return obj, true
}

// SelectedObjectNames は選択中オブジェクト名を登録順で返す。
func (s *Scene) SelectedObjectNames() []string {
	names := []string{}
	if s == nil || s.Objects == nil {
		return names
	}
	for _, obj := range s.Objects.Values() {
		if obj != nil && obj.Selected {
			names = append(names, obj.Name())
		}
	}
	return names
}

// DeselectAll は全オブジェクトの選択を解除する。
func (s *Scene) DeselectAll() {
	if s == nil || s.Objects == nil {
		return
	}
	for _, obj := range s.Objects.Values() {
		if obj != nil {
			obj.Selected = false
		}
	}
}

// SelectByNames は指定名のオブジェクトのみを選択状態にする。
// 既に存在しない名前は黙って読み飛ばす。
func (s *Scene) SelectByNames(names []string) {
	if s == nil || s.Objects == nil {
		return
	}
	s.DeselectAll()
	for _, name := range names {
		obj, err := s.Objects.GetByName(name)
		if err != nil || obj == nil {
			continue
		}
		obj.Selected = true
	}
}

// CollectionObjectNames は指定コレクションに属するオブジェクト名を返す。
// 未定義コレクションはnilを返す。
func (s *Scene) CollectionObjectNames(collectionName string) []string {
	if s == nil || s.Collections == nil {
		return nil
	}
	names, exists := s.Collections[collectionName]
	if !exists {
		return nil
	}
	return names
}
