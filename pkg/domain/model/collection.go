// 指示: miu200521358
package model

import "fmt"

// ObjectCollection はオブジェクトの順序付きコレクションを表す。
type ObjectCollection struct {
	values []*Object
	byName map[string]*Object
}

// NewObjectCollection は空のオブジェクトコレクションを生成する。
func NewObjectCollection() *ObjectCollection {
	return &ObjectCollection{values: []*Object{}, byName: map[string]*Object{}}
}

// Len は登録件数を返す。
func (c *ObjectCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Values は登録順の全要素を返す。
func (c *ObjectCollection) Values() []*Object {
	if c == nil {
		return nil
	}
	return c.values
}

// Get は指定indexの要素を返す。
func (c *ObjectCollection) Get(index int) (*Object, error) {
	if c == nil || index < 0 || index >= len(c.values) {
		return nil, fmt.Errorf("オブジェクトindexが範囲外です: %d", index)
	}
	return c.values[index], nil
}

// GetByName は指定名の要素を返す。
func (c *ObjectCollection) GetByName(name string) (*Object, error) {
	if c == nil {
		return nil, fmt.Errorf("オブジェクトコレクションが未設定です")
	}
	obj, exists := c.byName[name]
	if !exists || obj == nil {
		return nil, fmt.Errorf("オブジェクトが見つかりません: %s", name)
	}
	return obj, nil
}

// Contains は指定名の要素が存在するか判定する。
func (c *ObjectCollection) Contains(name string) bool {
	if c == nil {
		return false
	}
	_, exists := c.byName[name]
	return exists
}

// Append は要素を末尾へ追加し、割り当てたindexを返す。
func (c *ObjectCollection) Append(obj *Object) int {
	if c == nil || obj == nil {
		return -1
	}
	obj.index = len(c.values)
	c.values = append(c.values, obj)
	if c.byName == nil {
		c.byName = map[string]*Object{}
	}
	c.byName[obj.Name()] = obj
	return obj.index
}

// ActionCollection はアクションの順序付きコレクションを表す。
type ActionCollection struct {
	values []*Action
	byName map[string]*Action
}

// NewActionCollection は空のアクションコレクションを生成する。
func NewActionCollection() *ActionCollection {
	return &ActionCollection{values: []*Action{}, byName: map[string]*Action{}}
}

// Len は登録件数を返す。
func (c *ActionCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Values は登録順の全要素を返す。
func (c *ActionCollection) Values() []*Action {
	if c == nil {
		return nil
	}
	return c.values
}

// Get は指定indexの要素を返す。
func (c *ActionCollection) Get(index int) (*Action, error) {
	if c == nil || index < 0 || index >= len(c.values) {
		return nil, fmt.Errorf("アクションindexが範囲外です: %d", index)
	}
	return c.values[index], nil
}

// GetByName は指定名の要素を返す。
func (c *ActionCollection) GetByName(name string) (*Action, error) {
	if c == nil {
		return nil, fmt.Errorf("アクションコレクションが未設定です")
	}
	action, exists := c.byName[name]
	if !exists || action == nil {
		return nil, fmt.Errorf("アクションが見つかりません: %s", name)
	}
	return action, nil
}

// Append は要素を末尾へ追加し、割り当てたindexを返す。
func (c *ActionCollection) Append(action *Action) int {
	if c == nil || action == nil {
		return -1
	}
	action.index = len(c.values)
	c.values = append(c.values, action)
	if c.byName == nil {
		c.byName = map[string]*Action{}
	}
	c.byName[action.Name()] = action
	return action.index
}
