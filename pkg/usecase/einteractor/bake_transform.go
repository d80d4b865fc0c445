// 指示: miu200521358
package einteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/mmath"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
)

const (
	// bakeRotationXDegrees はX軸補正量（度）を表す。
	bakeRotationXDegrees = 90.0
	// bakeTolerance は角度スナップの許容誤差を表す。
	bakeTolerance = 1e-6
)

// bakeTargetCategories は一括ベイク対象の種別を表す。
var bakeTargetCategories = map[model.ObjectCategory]struct{}{
	model.CATEGORY_MESH:     {},
	model.CATEGORY_CURVE:    {},
	model.CATEGORY_SURFACE:  {},
	model.CATEGORY_META:     {},
	model.CATEGORY_FONT:     {},
	model.CATEGORY_ARMATURE: {},
	model.CATEGORY_EMPTY:    {},
}

// ApplyBakeTransform は1オブジェクトへベイク変換を適用する。
// 戻り値は呼び出し前の回転値。形状焼き込みに失敗した場合は途中状態のまま復元しない。
func ApplyBakeTransform(obj *model.Object) (mmath.Vec3, error) {
	if obj == nil {
		return mmath.ZERO_VEC3, fmt.Errorf("ベイク対象オブジェクトが未設定です")
	}
	originalRotation := obj.RotationEuler

	obj.RotationEuler = mmath.ZERO_VEC3
	if err := rebaseObjectGeometry(obj, mmath.NewQuaternionFromDegrees(-bakeRotationXDegrees, 0, 0)); err != nil {
		return originalRotation, err
	}
	obj.RotationEuler = originalRotation.
		Added(mmath.NewVec3(mmath.DegToRad(bakeRotationXDegrees), 0, 0)).
		Snapped(bakeTolerance)

	logBakeVerbose("ベイク変換: object=%s before=%v after=%v", obj.Name(), originalRotation, obj.RotationEuler)
	return originalRotation, nil
}

// RevertBakeTransform は1オブジェクトのベイク変換を巻き戻す。
// 戻り値は呼び出し前の回転値。ApplyBakeTransformの正確な逆操作となる。
func RevertBakeTransform(obj *model.Object) (mmath.Vec3, error) {
	if obj == nil {
		return mmath.ZERO_VEC3, fmt.Errorf("巻き戻し対象オブジェクトが未設定です")
	}
	currentRotation := obj.RotationEuler

	restoredRotation := currentRotation.
		Subed(mmath.NewVec3(mmath.DegToRad(bakeRotationXDegrees), 0, 0)).
		Snapped(bakeTolerance)

	obj.RotationEuler = mmath.ZERO_VEC3
	if err := rebaseObjectGeometry(obj, mmath.NewQuaternionFromDegrees(bakeRotationXDegrees, 0, 0)); err != nil {
		return currentRotation, err
	}
	obj.RotationEuler = restoredRotation

	logBakeVerbose("ベイク巻き戻し: object=%s before=%v after=%v", obj.Name(), currentRotation, restoredRotation)
	return currentRotation, nil
}

// rebaseObjectGeometry はローカル回転を形状データへ焼き込む。
// 共有データは焼き込みを拒否する。形状を持たない種別は何もせず成功とする。
func rebaseObjectGeometry(obj *model.Object, rotation mmath.Quaternion) error {
	if obj.Data == nil {
		return nil
	}
	if obj.Data.Shared {
		return fmt.Errorf("共有データのため変形を焼き込めません: %s", obj.Name())
	}
	for i := range obj.Data.Vertices {
		obj.Data.Vertices[i].Position = rotation.MulVec3(obj.Data.Vertices[i].Position)
		obj.Data.Vertices[i].Normal = rotation.MulVec3(obj.Data.Vertices[i].Normal)
	}
	for i := range obj.Data.Bones {
		obj.Data.Bones[i].Position = rotation.MulVec3(obj.Data.Bones[i].Position)
	}
	return nil
}

// ApplyBakeTransformToObjects は対象種別のオブジェクトへベイク変換を一括適用する。
// 1件でも成功すれば全体成功とし、処理後に元の選択・アクティブ状態を復元する。
func ApplyBakeTransformToObjects(scene *model.Scene, objects []*model.Object) BakeBatchResult {
	return runBakeBatch(scene, objects, false)
}

// RevertBakeTransformFromObjects は対象種別のオブジェクトのベイク変換を一括巻き戻しする。
func RevertBakeTransformFromObjects(scene *model.Scene, objects []*model.Object) BakeBatchResult {
	return runBakeBatch(scene, objects, true)
}

// runBakeBatch は一括ベイク処理の本体。revert指定で方向を切り替える。
func runBakeBatch(scene *model.Scene, objects []*model.Object, revert bool) BakeBatchResult {
	result := BakeBatchResult{
		FailedObjectNames: []string{},
		OriginalRotations: map[string]mmath.Vec3{},
		WarningIDs:        []string{},
	}

	originalActiveName := ""
	var originalSelection []string
	if scene != nil {
		originalActiveName = scene.ActiveObjectName
		originalSelection = scene.SelectedObjectNames()
	}

	for _, obj := range objects {
		if obj == nil {
			continue
		}
		if _, isTarget := bakeTargetCategories[obj.Category]; !isTarget {
			continue
		}

		var before mmath.Vec3
		var err error
		if revert {
			before, err = RevertBakeTransform(obj)
		} else {
			before, err = ApplyBakeTransform(obj)
		}
		result.OriginalRotations[obj.Name()] = before
		if err != nil {
			result.FailedObjectNames = append(result.FailedObjectNames, obj.Name())
			result.WarningIDs = append(result.WarningIDs, model.ExportWarningSharedDataBake)
			logBakeWarn(messages.LogBakeFailed, obj.Name(), err)
			continue
		}
		result.SucceededCount++
		if revert {
			logBakeInfo(messages.LogBakeReverted, obj.Name())
		} else {
			logBakeInfo(messages.LogBakeApplied, obj.Name())
		}
	}

	// 失敗の有無に関わらず選択・アクティブ状態を復元する。消えたオブジェクトは読み飛ばす。
	if scene != nil {
		scene.SelectByNames(originalSelection)
		if originalActiveName != "" && scene.Objects != nil {
			if scene.Objects.Contains(originalActiveName) {
				scene.ActiveObjectName = originalActiveName
			} else {
				result.WarningIDs = append(result.WarningIDs, model.ExportWarningTargetVanished)
			}
		}
	}

	logBakeInfo(messages.LogBakeSummary, result.SucceededCount, strings.Join(result.FailedObjectNames, ", "))
	return result
}
