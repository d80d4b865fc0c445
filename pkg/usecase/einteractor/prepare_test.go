// 指示: miu200521358
package einteractor

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miu200521358/mu_fbx_export/pkg/domain/mmath"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/port/eoutput"
)

type stubSceneReader struct {
	scene *model.Scene
	err   error
}

func (r *stubSceneReader) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func (r *stubSceneReader) InferName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func (r *stubSceneReader) Load(path string) (*model.Scene, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.scene, nil
}

type stubSceneWriter struct {
	savedPath  string
	savedScene *model.Scene
	err        error
}

func (w *stubSceneWriter) CanSave(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func (w *stubSceneWriter) Save(path string, scene *model.Scene, options eoutput.SaveOptions) error {
	if w.err != nil {
		return w.err
	}
	w.savedPath = path
	w.savedScene = scene
	return nil
}

type recordingReporter struct {
	events []PrepareProgressEvent
}

func (r *recordingReporter) ReportPrepareProgress(event PrepareProgressEvent) {
	r.events = append(r.events, event)
}

func newPrepareScene(t *testing.T) *model.Scene {
	t.Helper()
	scene := model.NewScene("prepare")

	cube := model.NewObject("Cube", model.CATEGORY_MESH)
	cube.Binding = &model.AnimationBinding{}
	cube.RotationEuler = mmath.NewVec3(mmath.DegToRad(10), 0, 0)
	cube.Data = &model.ObjectData{
		Vertices: []model.MeshVertex{{Position: mmath.UNIT_Y_VEC3, Normal: mmath.UNIT_Z_VEC3}},
	}
	scene.Objects.Append(cube)

	walk := model.NewAction("歩行")
	walk.Fcurves = []model.Fcurve{{DataPath: "location", ArrayIndex: 0}}
	scene.Actions.Append(walk)

	scene.Groups = append(scene.Groups, &model.ActionGroup{
		Name:        "全身",
		ActionName:  "歩行",
		Assignments: []model.GroupAssignment{{ObjectName: "Cube"}},
	})
	return scene
}

func TestBuildDefaultOutputPath(t *testing.T) {
	path := BuildDefaultOutputPath(filepath.Join("work", "scene.json"))
	if path != filepath.Join("work", "scene_export.json") {
		t.Fatalf("default output path is wrong: %s", path)
	}
	if BuildDefaultOutputPath("") != "" {
		t.Fatalf("empty input should yield an empty path")
	}
}

func TestResolveSceneOutputPath(t *testing.T) {
	resolved, err := resolveSceneOutputPath("scene.json", "")
	if err != nil {
		t.Fatalf("default resolution should succeed: %v", err)
	}
	if resolved != "scene_export.json" {
		t.Fatalf("resolved path is wrong: %s", resolved)
	}

	resolved, err = resolveSceneOutputPath("scene.json", "custom.JSON")
	if err != nil {
		t.Fatalf("explicit path should succeed: %v", err)
	}
	if resolved != "custom.JSON" {
		t.Fatalf("explicit path should be kept: %s", resolved)
	}

	if _, err := resolveSceneOutputPath("scene.json", "custom.fbx"); err == nil {
		t.Fatalf("non json extension should fail")
	}
	if _, err := resolveSceneOutputPath("", ""); err == nil {
		t.Fatalf("unresolvable path should fail")
	}
}

func TestPrepareSceneForExportRequiresInput(t *testing.T) {
	uc := NewExportUsecase(ExportUsecaseDeps{})

	if _, err := uc.PrepareSceneForExport(ExportRequest{}); err == nil {
		t.Fatalf("missing input should fail")
	}
}

func TestPrepareSceneForExportWithLoadedScene(t *testing.T) {
	scene := newPrepareScene(t)
	reader := &stubSceneReader{scene: scene}
	uc := NewExportUsecase(ExportUsecaseDeps{SceneReader: reader})
	reporter := &recordingReporter{}

	settings := DefaultExportSettings()
	settings.BakeSpaceTransform = true

	result, err := uc.PrepareSceneForExport(ExportRequest{
		InputPath:        "scene.json",
		Settings:         settings,
		ProgressReporter: reporter,
	})
	if err != nil {
		t.Fatalf("prepare should succeed: %v", err)
	}
	if result.OutputPath != "scene_export.json" {
		t.Fatalf("output path is wrong: %s", result.OutputPath)
	}
	if len(result.CandidateObjectNames) != 1 || result.CandidateObjectNames[0] != "Cube" {
		t.Fatalf("candidates are wrong: %v", result.CandidateObjectNames)
	}
	if len(result.Compatibilities) != 1 || !result.Compatibilities[0].IsCompatible {
		t.Fatalf("action compatibility is wrong: %+v", result.Compatibilities)
	}
	if len(result.GroupCompatibilities) != 1 || !result.GroupCompatibilities[0].IsCompatible {
		t.Fatalf("group compatibility is wrong: %+v", result.GroupCompatibilities)
	}
	if result.BakeResult == nil || result.BakeResult.SucceededCount != 1 {
		t.Fatalf("bake result is wrong: %+v", result.BakeResult)
	}
	if len(result.SelectedActionNames) != 1 || result.SelectedActionNames[0] != "歩行" {
		t.Fatalf("selected action names are wrong: %v", result.SelectedActionNames)
	}

	expectedEvents := []PrepareProgressEventType{
		PrepareProgressEventTypeSceneLoaded,
		PrepareProgressEventTypeCandidatesResolved,
		PrepareProgressEventTypeActionsClassified,
		PrepareProgressEventTypeSelectionPopulated,
		PrepareProgressEventTypeBakeCompleted,
	}
	if len(reporter.events) != len(expectedEvents) {
		t.Fatalf("event count should be %d, got %d", len(expectedEvents), len(reporter.events))
	}
	for i, expected := range expectedEvents {
		if reporter.events[i].Type != expected {
			t.Fatalf("event[%d] should be %s, got %s", i, expected, reporter.events[i].Type)
		}
	}
}

func TestPrepareSceneForExportDryRunKeepsInputScene(t *testing.T) {
	scene := newPrepareScene(t)
	uc := NewExportUsecase(ExportUsecaseDeps{})

	settings := DefaultExportSettings()
	settings.BakeSpaceTransform = true

	result, err := uc.PrepareSceneForExport(ExportRequest{
		OutputPath: "out.json",
		SceneData:  scene,
		Settings:   settings,
		DryRun:     true,
	})
	if err != nil {
		t.Fatalf("prepare should succeed: %v", err)
	}
	if result.Scene == scene {
		t.Fatalf("dry run should operate on a cloned scene")
	}

	original, err := scene.Objects.GetByName("Cube")
	if err != nil {
		t.Fatalf("Cube should exist: %v", err)
	}
	if !original.RotationEuler.NearEquals(mmath.NewVec3(mmath.DegToRad(10), 0, 0), 1e-12) {
		t.Fatalf("input scene should stay unmodified: %v", original.RotationEuler)
	}

	cloned, err := result.Scene.Objects.GetByName("Cube")
	if err != nil {
		t.Fatalf("cloned Cube should exist: %v", err)
	}
	if !cloned.RotationEuler.NearEquals(mmath.NewVec3(mmath.DegToRad(100), 0, 0), 1e-9) {
		t.Fatalf("cloned scene should be baked: %v", cloned.RotationEuler)
	}
}

func TestExportSavesScene(t *testing.T) {
	scene := newPrepareScene(t)
	writer := &stubSceneWriter{}
	uc := NewExportUsecase(ExportUsecaseDeps{SceneWriter: writer})

	result, err := uc.Export(ExportRequest{
		OutputPath: "out.json",
		SceneData:  scene,
		Settings:   DefaultExportSettings(),
	})
	if err != nil {
		t.Fatalf("export should succeed: %v", err)
	}
	if writer.savedPath != "out.json" {
		t.Fatalf("saved path is wrong: %s", writer.savedPath)
	}
	if writer.savedScene != result.Scene {
		t.Fatalf("saved scene should be the prepared scene")
	}
}

func TestExportDryRunSkipsSave(t *testing.T) {
	scene := newPrepareScene(t)
	writer := &stubSceneWriter{err: fmt.Errorf("should not save")}
	uc := NewExportUsecase(ExportUsecaseDeps{SceneWriter: writer})

	if _, err := uc.Export(ExportRequest{
		OutputPath: "out.json",
		SceneData:  scene,
		Settings:   DefaultExportSettings(),
		DryRun:     true,
	}); err != nil {
		t.Fatalf("dry run export should skip saving: %v", err)
	}
}

func TestLoadSceneRejectsUnsupportedExtension(t *testing.T) {
	uc := NewExportUsecase(ExportUsecaseDeps{SceneReader: &stubSceneReader{scene: model.NewScene("x")}})

	if _, err := uc.LoadScene(nil, "scene.fbx"); err == nil {
		t.Fatalf("unsupported extension should fail")
	}
}

func TestSaveSceneWithoutWriter(t *testing.T) {
	uc := NewExportUsecase(ExportUsecaseDeps{})

	if err := uc.SaveScene(nil, "out.json", model.NewScene("x"), SaveOptions{}); err == nil {
		t.Fatalf("missing writer should fail")
	}
}

func TestPrepareSceneForExportSkipsBakeOnOtherAxis(t *testing.T) {
	scene := newPrepareScene(t)
	uc := NewExportUsecase(ExportUsecaseDeps{})

	settings := DefaultExportSettings()
	settings.BakeSpaceTransform = true
	settings.AxisForward = "Z"
	settings.AxisUp = "-Y"

	result, err := uc.PrepareSceneForExport(ExportRequest{
		OutputPath: "out.json",
		SceneData:  scene,
		Settings:   settings,
	})
	if err != nil {
		t.Fatalf("prepare should succeed: %v", err)
	}
	if result.BakeResult != nil {
		t.Fatalf("bake should be skipped for unsupported axes: %+v", result.BakeResult)
	}

	cube, err := scene.Objects.GetByName("Cube")
	if err != nil {
		t.Fatalf("Cube should exist: %v", err)
	}
	if !cube.RotationEuler.NearEquals(mmath.NewVec3(mmath.DegToRad(10), 0, 0), 1e-12) {
		t.Fatalf("rotation should stay unmodified: %v", cube.RotationEuler)
	}
}

func TestPrepareSceneForExportCollectsWarnings(t *testing.T) {
	scene := model.NewScene("warnings")
	broken := model.NewAction("欠損")
	broken.Fcurves = []model.Fcurve{{DataPath: "location", ArrayIndex: 1}}
	scene.Actions.Append(broken)

	uc := NewExportUsecase(ExportUsecaseDeps{})
	result, err := uc.PrepareSceneForExport(ExportRequest{
		OutputPath: "out.json",
		SceneData:  scene,
		Settings:   DefaultExportSettings(),
	})
	if err != nil {
		t.Fatalf("prepare should succeed: %v", err)
	}
	if len(result.WarningIDs) != 2 ||
		result.WarningIDs[0] != model.ExportWarningNoCandidates ||
		result.WarningIDs[1] != model.ExportWarningActionIncompatible {
		t.Fatalf("warnings are wrong: %v", result.WarningIDs)
	}
}

func TestCloneSceneIsDeep(t *testing.T) {
	scene := newPrepareScene(t)
	scene.Collections["全部"] = []string{"Cube"}
	scene.ActiveObjectName = "Cube"

	cloned, err := CloneScene(scene)
	if err != nil {
		t.Fatalf("clone should succeed: %v", err)
	}
	if cloned.ActiveObjectName != "Cube" {
		t.Fatalf("active object name should be copied: %s", cloned.ActiveObjectName)
	}

	clonedCube, err := cloned.Objects.GetByName("Cube")
	if err != nil {
		t.Fatalf("cloned Cube should exist: %v", err)
	}
	clonedCube.Data.Vertices[0].Position = mmath.UNIT_X_VEC3
	cloned.Collections["全部"][0] = "書換済み"

	originalCube, err := scene.Objects.GetByName("Cube")
	if err != nil {
		t.Fatalf("Cube should exist: %v", err)
	}
	if !originalCube.Data.Vertices[0].Position.NearEquals(mmath.UNIT_Y_VEC3, 1e-12) {
		t.Fatalf("original vertices should stay intact: %v", originalCube.Data.Vertices[0].Position)
	}
	if scene.Collections["全部"][0] != "Cube" {
		t.Fatalf("original collections should stay intact: %v", scene.Collections["全部"])
	}

	clonedAction, err := cloned.Actions.GetByName("歩行")
	if err != nil {
		t.Fatalf("cloned action should exist: %v", err)
	}
	if clonedAction.Index() != 0 {
		t.Fatalf("cloned action index should be assigned, got %d", clonedAction.Index())
	}
}
