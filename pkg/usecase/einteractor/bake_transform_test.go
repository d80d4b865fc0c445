// 指示: miu200521358
package einteractor

import (
	"math"
	"testing"

	"github.com/miu200521358/mu_fbx_export/pkg/domain/mmath"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
)

func TestApplyBakeTransformAddsRotation(t *testing.T) {
	obj := model.NewObject("Cube", model.CATEGORY_MESH)
	obj.RotationEuler = mmath.NewVec3(
		mmath.DegToRad(10), mmath.DegToRad(20), mmath.DegToRad(30))

	before, err := ApplyBakeTransform(obj)
	if err != nil {
		t.Fatalf("apply should succeed: %v", err)
	}
	if !before.NearEquals(mmath.NewVec3(mmath.DegToRad(10), mmath.DegToRad(20), mmath.DegToRad(30)), 1e-12) {
		t.Fatalf("returned rotation should be the pre-call value: %v", before)
	}
	expected := mmath.NewVec3(mmath.DegToRad(100), mmath.DegToRad(20), mmath.DegToRad(30))
	if !obj.RotationEuler.NearEquals(expected, 1e-9) {
		t.Fatalf("rotation should gain +90 degrees on X: %v", obj.RotationEuler)
	}
}

func TestApplyBakeTransformSnapsNearZero(t *testing.T) {
	obj := model.NewObject("Cube", model.CATEGORY_MESH)
	obj.RotationEuler = mmath.NewVec3(-math.Pi/2, 0, 0)

	if _, err := ApplyBakeTransform(obj); err != nil {
		t.Fatalf("apply should succeed: %v", err)
	}
	if obj.RotationEuler.X != 0 || obj.RotationEuler.Y != 0 || obj.RotationEuler.Z != 0 {
		t.Fatalf("near zero rotation should snap to exactly zero: %v", obj.RotationEuler)
	}
}

func TestApplyBakeTransformRebasesGeometry(t *testing.T) {
	obj := model.NewObject("Cube", model.CATEGORY_MESH)
	obj.Data = &model.ObjectData{
		Vertices: []model.MeshVertex{
			{Position: mmath.UNIT_Y_VEC3, Normal: mmath.UNIT_Z_VEC3},
		},
		Bones: []model.RestBone{{Name: "root", Position: mmath.UNIT_Y_VEC3}},
	}

	if _, err := ApplyBakeTransform(obj); err != nil {
		t.Fatalf("apply should succeed: %v", err)
	}
	if !obj.Data.Vertices[0].Position.NearEquals(mmath.UNIT_Z_NEG_VEC3, 1e-9) {
		t.Fatalf("vertex position should rotate -90 degrees on X: %v", obj.Data.Vertices[0].Position)
	}
	if !obj.Data.Vertices[0].Normal.NearEquals(mmath.UNIT_Y_VEC3, 1e-9) {
		t.Fatalf("vertex normal should rotate -90 degrees on X: %v", obj.Data.Vertices[0].Normal)
	}
	if !obj.Data.Bones[0].Position.NearEquals(mmath.UNIT_Z_NEG_VEC3, 1e-9) {
		t.Fatalf("bone position should rotate -90 degrees on X: %v", obj.Data.Bones[0].Position)
	}
}

func TestApplyBakeTransformRefusesSharedData(t *testing.T) {
	obj := model.NewObject("Cube", model.CATEGORY_MESH)
	obj.RotationEuler = mmath.NewVec3(mmath.DegToRad(10), 0, 0)
	obj.Data = &model.ObjectData{Shared: true}

	before, err := ApplyBakeTransform(obj)
	if err == nil {
		t.Fatalf("shared data should refuse the bake")
	}
	if !before.NearEquals(mmath.NewVec3(mmath.DegToRad(10), 0, 0), 1e-12) {
		t.Fatalf("returned rotation should be the pre-call value: %v", before)
	}
	// 失敗時は途中状態のまま残す。
	if !obj.RotationEuler.NearEquals(mmath.ZERO_VEC3, 1e-12) {
		t.Fatalf("rotation should stay cleared after failure: %v", obj.RotationEuler)
	}
}

func TestRevertBakeTransformRestoresRotation(t *testing.T) {
	obj := model.NewObject("Cube", model.CATEGORY_MESH)
	obj.RotationEuler = mmath.NewVec3(
		mmath.DegToRad(10), mmath.DegToRad(20), mmath.DegToRad(30))
	obj.Data = &model.ObjectData{
		Vertices: []model.MeshVertex{
			{Position: mmath.UNIT_Y_VEC3, Normal: mmath.UNIT_X_VEC3},
		},
	}

	if _, err := ApplyBakeTransform(obj); err != nil {
		t.Fatalf("apply should succeed: %v", err)
	}
	if _, err := RevertBakeTransform(obj); err != nil {
		t.Fatalf("revert should succeed: %v", err)
	}

	expected := mmath.NewVec3(mmath.DegToRad(10), mmath.DegToRad(20), mmath.DegToRad(30))
	if !obj.RotationEuler.NearEquals(expected, 1e-9) {
		t.Fatalf("rotation should return to the original: %v", obj.RotationEuler)
	}
	if !obj.Data.Vertices[0].Position.NearEquals(mmath.UNIT_Y_VEC3, 1e-9) {
		t.Fatalf("vertex position should return to the original: %v", obj.Data.Vertices[0].Position)
	}
	if !obj.Data.Vertices[0].Normal.NearEquals(mmath.UNIT_X_VEC3, 1e-9) {
		t.Fatalf("vertex normal should return to the original: %v", obj.Data.Vertices[0].Normal)
	}
}

func TestApplyBakeTransformTwiceComposes(t *testing.T) {
	obj := model.NewObject("Cube", model.CATEGORY_MESH)

	if _, err := ApplyBakeTransform(obj); err != nil {
		t.Fatalf("first apply should succeed: %v", err)
	}
	if _, err := ApplyBakeTransform(obj); err != nil {
		t.Fatalf("second apply should succeed: %v", err)
	}
	if !obj.RotationEuler.NearEquals(mmath.NewVec3(math.Pi, 0, 0), 1e-9) {
		t.Fatalf("double bake should compose to 180 degrees on X: %v", obj.RotationEuler)
	}
}

func newBakeScene(t *testing.T) (*model.Scene, []*model.Object) {
	t.Helper()
	scene := model.NewScene("bake")

	cube := model.NewObject("Cube", model.CATEGORY_MESH)
	cube.Selected = true
	scene.Objects.Append(cube)

	shared := model.NewObject("Shared", model.CATEGORY_MESH)
	shared.Data = &model.ObjectData{Shared: true}
	scene.Objects.Append(shared)

	camera := model.NewObject("Camera", model.CATEGORY_CAMERA)
	camera.Selected = true
	scene.Objects.Append(camera)

	scene.ActiveObjectName = "Cube"
	return scene, []*model.Object{cube, shared, camera}
}

func TestApplyBakeTransformToObjects(t *testing.T) {
	scene, objects := newBakeScene(t)

	result := ApplyBakeTransformToObjects(scene, objects)
	if !result.Succeeded() {
		t.Fatalf("batch with one success should succeed")
	}
	if result.SucceededCount != 1 {
		t.Fatalf("succeeded count should be 1, got %d", result.SucceededCount)
	}
	if len(result.FailedObjectNames) != 1 || result.FailedObjectNames[0] != "Shared" {
		t.Fatalf("failed names should list the shared object, got %v", result.FailedObjectNames)
	}
	if _, recorded := result.OriginalRotations["Cube"]; !recorded {
		t.Fatalf("original rotation should be recorded for Cube")
	}
	if _, recorded := result.OriginalRotations["Camera"]; recorded {
		t.Fatalf("camera should be skipped as a non-target category")
	}
	if len(result.WarningIDs) != 1 || result.WarningIDs[0] != model.ExportWarningSharedDataBake {
		t.Fatalf("shared data failure should record a warning, got %v", result.WarningIDs)
	}
}

func TestApplyBakeTransformToObjectsRestoresSelection(t *testing.T) {
	scene, objects := newBakeScene(t)

	ApplyBakeTransformToObjects(scene, objects)

	selected := scene.SelectedObjectNames()
	if len(selected) != 2 || selected[0] != "Cube" || selected[1] != "Camera" {
		t.Fatalf("selection should be restored, got %v", selected)
	}
	if scene.ActiveObjectName != "Cube" {
		t.Fatalf("active object should be restored, got %s", scene.ActiveObjectName)
	}
}

func TestRevertBakeTransformFromObjects(t *testing.T) {
	scene, objects := newBakeScene(t)

	applied := ApplyBakeTransformToObjects(scene, objects)
	if applied.SucceededCount != 1 {
		t.Fatalf("apply should succeed once, got %d", applied.SucceededCount)
	}
	reverted := RevertBakeTransformFromObjects(scene, objects)
	if reverted.SucceededCount != 1 {
		t.Fatalf("revert should succeed once, got %d", reverted.SucceededCount)
	}

	cube, err := scene.Objects.GetByName("Cube")
	if err != nil {
		t.Fatalf("Cube should exist: %v", err)
	}
	if !cube.RotationEuler.NearEquals(mmath.ZERO_VEC3, 1e-9) {
		t.Fatalf("rotation should return to zero after revert: %v", cube.RotationEuler)
	}
}

func TestBakeBatchResultSucceeded(t *testing.T) {
	empty := BakeBatchResult{}
	if empty.Succeeded() {
		t.Fatalf("zero success should not succeed")
	}
}
