// 指示: miu200521358
package io_scene

import (
	"fmt"

	"github.com/miu200521358/mu_fbx_export/pkg/domain/mmath"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
)

// sceneDocument はシーンスナップショットJSONのルートを表す。
type sceneDocument struct {
	Name             string                `json:"name"`
	Objects          []objectDocument      `json:"objects"`
	Actions          []actionDocument      `json:"actions"`
	ActionGroups     []actionGroupDocument `json:"action_groups,omitempty"`
	Collections      map[string][]string   `json:"collections,omitempty"`
	ActiveCollection string                `json:"active_collection,omitempty"`
	ActiveObject     string                `json:"active_object,omitempty"`
}

// objectDocument はオブジェクト1件のJSON表現を表す。角度はラジアン。
type objectDocument struct {
	Name          string                 `json:"name"`
	Category      string                 `json:"type"`
	Location      [3]float64             `json:"location"`
	RotationEuler [3]float64             `json:"rotation_euler"`
	Scale         [3]float64             `json:"scale"`
	Selected      bool                   `json:"selected"`
	HideViewport  bool                   `json:"hide_viewport"`
	Properties    map[string]any         `json:"properties,omitempty"`
	ShapeKeys     *shapeKeyDocument      `json:"shape_keys,omitempty"`
	AnimationData *animationDataDocument `json:"animation_data,omitempty"`
	Data          *objectDataDocument    `json:"data,omitempty"`
}

type shapeKeyDocument struct {
	Name      string             `json:"name"`
	KeyBlocks []keyBlockDocument `json:"key_blocks"`
}

type keyBlockDocument struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type animationDataDocument struct {
	Action       string `json:"action"`
	ActionLocked bool   `json:"action_locked"`
}

type objectDataDocument struct {
	Shared   bool             `json:"shared"`
	Vertices []vertexDocument `json:"vertices,omitempty"`
	Bones    []boneDocument   `json:"bones,omitempty"`
}

type vertexDocument struct {
	Position [3]float64 `json:"position"`
	Normal   [3]float64 `json:"normal"`
}

type boneDocument struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
}

// actionDocument はアクション1件のJSON表現を表す。
type actionDocument struct {
	Name    string           `json:"name"`
	Fcurves []fcurveDocument `json:"fcurves"`
	Slots   []slotDocument   `json:"slots,omitempty"`
}

type fcurveDocument struct {
	DataPath   string `json:"data_path"`
	ArrayIndex int    `json:"array_index"`
	Slot       string `json:"slot,omitempty"`
}

type slotDocument struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

type actionGroupDocument struct {
	Name        string               `json:"name"`
	Action      string               `json:"action"`
	Assignments []assignmentDocument `json:"assignments"`
}

type assignmentDocument struct {
	Object string `json:"object"`
	Slot   string `json:"slot,omitempty"`
}

// vectorFromDocument はJSON配列をベクトルへ変換する。
func vectorFromDocument(values [3]float64) mmath.Vec3 {
	return mmath.NewVec3(values[0], values[1], values[2])
}

// vectorToDocument はベクトルをJSON配列へ変換する。
func vectorToDocument(v mmath.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// newSceneFromDocument はJSON表現からシーンを構築する。
func newSceneFromDocument(doc sceneDocument) (*model.Scene, error) {
	scene := model.NewScene(doc.Name)
	scene.ActiveCollection = doc.ActiveCollection
	scene.ActiveObjectName = doc.ActiveObject
	for collectionName, objectNames := range doc.Collections {
		scene.Collections[collectionName] = append([]string{}, objectNames...)
	}

	for i, objDoc := range doc.Objects {
		if objDoc.Name == "" {
			return nil, fmt.Errorf("オブジェクト名が空です: index=%d", i)
		}
		obj, err := newObjectFromDocument(objDoc)
		if err != nil {
			return nil, err
		}
		scene.Objects.Append(obj)
	}

	for i, actionDoc := range doc.Actions {
		if actionDoc.Name == "" {
			return nil, fmt.Errorf("アクション名が空です: index=%d", i)
		}
		scene.Actions.Append(newActionFromDocument(actionDoc))
	}

	for _, groupDoc := range doc.ActionGroups {
		group := &model.ActionGroup{
			Name:        groupDoc.Name,
			ActionName:  groupDoc.Action,
			Assignments: []model.GroupAssignment{},
		}
		for _, assignment := range groupDoc.Assignments {
			group.Assignments = append(group.Assignments, model.GroupAssignment{
				ObjectName: assignment.Object,
				SlotName:   assignment.Slot,
			})
		}
		scene.Groups = append(scene.Groups, group)
	}
	return scene, nil
}

// newObjectFromDocument はJSON表現からオブジェクトを構築する。
func newObjectFromDocument(doc objectDocument) (*model.Object, error) {
	category := model.ObjectCategory(doc.Category)
	if doc.Category == "" {
		return nil, fmt.Errorf("オブジェクト種別が空です: object=%s", doc.Name)
	}

	obj := model.NewObject(doc.Name, category)
	obj.Location = vectorFromDocument(doc.Location)
	obj.RotationEuler = vectorFromDocument(doc.RotationEuler)
	obj.Scale = vectorFromDocument(doc.Scale)
	obj.Selected = doc.Selected
	obj.Visible = !doc.HideViewport

	if len(doc.Properties) > 0 {
		obj.CustomProperties = map[string]any{}
		for name, value := range doc.Properties {
			obj.CustomProperties[name] = value
		}
	}

	if doc.ShapeKeys != nil {
		shapeKeys := &model.ShapeKeyBlock{Name: doc.ShapeKeys.Name}
		for _, keyBlock := range doc.ShapeKeys.KeyBlocks {
			shapeKeys.KeyBlocks = append(shapeKeys.KeyBlocks, model.KeyBlock{
				Name:  keyBlock.Name,
				Value: keyBlock.Value,
			})
		}
		obj.ShapeKeys = shapeKeys
	}

	if doc.AnimationData != nil {
		obj.Binding = &model.AnimationBinding{
			ActiveAction: doc.AnimationData.Action,
			ActionLocked: doc.AnimationData.ActionLocked,
		}
	}

	if doc.Data != nil {
		data := &model.ObjectData{Shared: doc.Data.Shared}
		for _, vertex := range doc.Data.Vertices {
			data.Vertices = append(data.Vertices, model.MeshVertex{
				Position: vectorFromDocument(vertex.Position),
				Normal:   vectorFromDocument(vertex.Normal),
			})
		}
		for _, bone := range doc.Data.Bones {
			data.Bones = append(data.Bones, model.RestBone{
				Name:     bone.Name,
				Position: vectorFromDocument(bone.Position),
			})
		}
		obj.Data = data
	}
	return obj, nil
}

// newActionFromDocument はJSON表現からアクションを構築する。
func newActionFromDocument(doc actionDocument) *model.Action {
	action := model.NewAction(doc.Name)
	for _, fcurve := range doc.Fcurves {
		action.Fcurves = append(action.Fcurves, model.Fcurve{
			DataPath:   fcurve.DataPath,
			ArrayIndex: fcurve.ArrayIndex,
			SlotName:   fcurve.Slot,
		})
	}
	for _, slot := range doc.Slots {
		action.Slots = append(action.Slots, model.ActionSlot{
			Name:   slot.Name,
			Target: model.SlotTarget(slot.Target),
		})
	}
	return action
}

// newSceneDocument はシーンをJSON表現へ変換する。
func newSceneDocument(scene *model.Scene) sceneDocument {
	doc := sceneDocument{
		Name:             scene.Name,
		Objects:          []objectDocument{},
		Actions:          []actionDocument{},
		ActiveCollection: scene.ActiveCollection,
		ActiveObject:     scene.ActiveObjectName,
	}
	if len(scene.Collections) > 0 {
		doc.Collections = map[string][]string{}
		for collectionName, objectNames := range scene.Collections {
			doc.Collections[collectionName] = append([]string{}, objectNames...)
		}
	}

	if scene.Objects != nil {
		for _, obj := range scene.Objects.Values() {
			if obj == nil {
				continue
			}
			doc.Objects = append(doc.Objects, newObjectDocument(obj))
		}
	}
	if scene.Actions != nil {
		for _, action := range scene.Actions.Values() {
			if action == nil {
				continue
			}
			doc.Actions = append(doc.Actions, newActionDocument(action))
		}
	}
	for _, group := range scene.Groups {
		if group == nil {
			continue
		}
		groupDoc := actionGroupDocument{
			Name:        group.Name,
			Action:      group.ActionName,
			Assignments: []assignmentDocument{},
		}
		for _, assignment := range group.Assignments {
			groupDoc.Assignments = append(groupDoc.Assignments, assignmentDocument{
				Object: assignment.ObjectName,
				Slot:   assignment.SlotName,
			})
		}
		doc.ActionGroups = append(doc.ActionGroups, groupDoc)
	}
	return doc
}

// newObjectDocument はオブジェクトをJSON表現へ変換する。
func newObjectDocument(obj *model.Object) objectDocument {
	doc := objectDocument{
		Name:          obj.Name(),
		Category:      string(obj.Category),
		Location:      vectorToDocument(obj.Location),
		RotationEuler: vectorToDocument(obj.RotationEuler),
		Scale:         vectorToDocument(obj.Scale),
		Selected:      obj.Selected,
		HideViewport:  !obj.Visible,
	}
	if len(obj.CustomProperties) > 0 {
		doc.Properties = obj.CustomProperties
	}
	if obj.ShapeKeys != nil {
		shapeKeys := &shapeKeyDocument{Name: obj.ShapeKeys.Name, KeyBlocks: []keyBlockDocument{}}
		for _, keyBlock := range obj.ShapeKeys.KeyBlocks {
			shapeKeys.KeyBlocks = append(shapeKeys.KeyBlocks, keyBlockDocument{
				Name:  keyBlock.Name,
				Value: keyBlock.Value,
			})
		}
		doc.ShapeKeys = shapeKeys
	}
	if obj.Binding != nil {
		doc.AnimationData = &animationDataDocument{
			Action:       obj.Binding.ActiveAction,
			ActionLocked: obj.Binding.ActionLocked,
		}
	}
	if obj.Data != nil {
		data := &objectDataDocument{Shared: obj.Data.Shared}
		for _, vertex := range obj.Data.Vertices {
			data.Vertices = append(data.Vertices, vertexDocument{
				Position: vectorToDocument(vertex.Position),
				Normal:   vectorToDocument(vertex.Normal),
			})
		}
		for _, bone := range obj.Data.Bones {
			data.Bones = append(data.Bones, boneDocument{
				Name:     bone.Name,
				Position: vectorToDocument(bone.Position),
			})
		}
		doc.Data = data
	}
	return doc
}

// newActionDocument はアクションをJSON表現へ変換する。
func newActionDocument(action *model.Action) actionDocument {
	doc := actionDocument{Name: action.Name(), Fcurves: []fcurveDocument{}}
	for _, fcurve := range action.Fcurves {
		doc.Fcurves = append(doc.Fcurves, fcurveDocument{
			DataPath:   fcurve.DataPath,
			ArrayIndex: fcurve.ArrayIndex,
			Slot:       fcurve.SlotName,
		})
	}
	for _, slot := range action.Slots {
		doc.Slots = append(doc.Slots, slotDocument{
			Name:   slot.Name,
			Target: string(slot.Target),
		})
	}
	return doc
}
