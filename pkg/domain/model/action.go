// 指示: miu200521358
package model

import "fmt"

// SlotTarget はアクションスロットの対象種別を表す。
type SlotTarget string

// スロット対象種別一覧。
const (
	SLOT_TARGET_OBJECT    SlotTarget = "OBJECT"
	SLOT_TARGET_SHAPE_KEY SlotTarget = "KEY"
)

// ActionSlot はアクション内の割当先サブターゲットを表す。
type ActionSlot struct {
	Name   string
	Target SlotTarget
}

// Fcurve はアニメーションカーブ1本を表す。
type Fcurve struct {
	DataPath   string
	ArrayIndex int
	SlotName   string
}

// FullDataPath は添字込みの完全パスを返す。添字0は付与しない。
func (fc Fcurve) FullDataPath() string {
	if fc.ArrayIndex != 0 {
		return fmt.Sprintf("%s[%d]", fc.DataPath, fc.ArrayIndex)
	}
	return fc.DataPath
}

// Action はアニメーションクリップを表す。
type Action struct {
	name    string
	index   int
	Fcurves []Fcurve
	Slots   []ActionSlot
}

// NewAction は名前指定でアクションを生成する。
func NewAction(name string) *Action {
	return &Action{name: name, index: -1}
}

// Name はアクション名を返す。
func (a *Action) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

// Index はコレクション内の位置を返す。未登録の場合は-1を返す。
func (a *Action) Index() int {
	if a == nil {
		return -1
	}
	return a.index
}

// HasFcurves はカーブを1本以上持つか判定する。
func (a *Action) HasFcurves() bool {
	return a != nil && len(a.Fcurves) > 0
}

// SlotFcurves は指定スロットに属するカーブのみを返す。
func (a *Action) SlotFcurves(slotName string) []Fcurve {
	if a == nil {
		return nil
	}
	fcurves := []Fcurve{}
	for _, fc := range a.Fcurves {
		if fc.SlotName == slotName {
			fcurves = append(fcurves, fc)
		}
	}
	return fcurves
}
