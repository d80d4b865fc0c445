// 指示: miu200521358
package econfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/io_common"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
)

func writePresetFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}
	return path
}

func TestCanLoad(t *testing.T) {
	if !CanLoad("preset.yaml") || !CanLoad("preset.YML") {
		t.Fatalf("yaml extension should be loadable")
	}
	if CanLoad("preset.json") {
		t.Fatalf("non yaml extension should not be loadable")
	}
}

func TestLoadPreset(t *testing.T) {
	path := writePresetFixture(t, `
use_selection: true
use_visible: true
collection: 小物
object_types: [mesh, ARMATURE]
object_filter: 'category == "MESH"'
bake_anim_export_actions: false
bake_space_transform: true
save:
  indent: true
  overwrite: true
`)

	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("load should succeed: %v", err)
	}
	if !preset.Settings.UseSelection || !preset.Settings.UseVisible {
		t.Fatalf("selection flags are wrong: %+v", preset.Settings)
	}
	if preset.Settings.Collection != "小物" {
		t.Fatalf("collection is wrong: %s", preset.Settings.Collection)
	}
	if len(preset.Settings.ObjectTypes) != 2 ||
		preset.Settings.ObjectTypes[0] != model.CATEGORY_MESH ||
		preset.Settings.ObjectTypes[1] != model.CATEGORY_ARMATURE {
		t.Fatalf("object types should be normalized, got %v", preset.Settings.ObjectTypes)
	}
	if preset.Settings.BakeAnimExportActions {
		t.Fatalf("action export flag should be overridden to false")
	}
	if !preset.Settings.BakeSpaceTransform {
		t.Fatalf("bake flag should be set")
	}
	if !preset.SaveOptions.Indent || !preset.SaveOptions.Overwrite {
		t.Fatalf("save options are wrong: %+v", preset.SaveOptions)
	}
}

func TestLoadPresetDefaults(t *testing.T) {
	path := writePresetFixture(t, `collection: 小物`)

	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("load should succeed: %v", err)
	}
	if !preset.Settings.BakeAnimExportActions {
		t.Fatalf("omitted action export flag should keep the default true")
	}
	if preset.Settings.BakeSpaceTransform {
		t.Fatalf("omitted bake flag should stay false")
	}
	if !preset.Settings.BakeTransformAvailable() {
		t.Fatalf("omitted axes should keep the bakeable defaults: %+v", preset.Settings)
	}
}

func TestLoadPresetAxes(t *testing.T) {
	path := writePresetFixture(t, `
axis_forward: z
axis_up: "-y"
`)

	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("load should succeed: %v", err)
	}
	if preset.Settings.AxisForward != "Z" || preset.Settings.AxisUp != "-Y" {
		t.Fatalf("axes should be normalized to upper case: %+v", preset.Settings)
	}
	if preset.Settings.BakeTransformAvailable() {
		t.Fatalf("non default axes should not allow the bake transform")
	}
}

func TestLoadPresetExtInvalid(t *testing.T) {
	if _, err := LoadPreset("preset.json"); !errors.Is(err, io_common.ErrExtInvalid) {
		t.Fatalf("error should be ErrExtInvalid, got %v", err)
	}
}

func TestLoadPresetFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadPreset(path); !errors.Is(err, io_common.ErrFileNotFound) {
		t.Fatalf("error should be ErrFileNotFound, got %v", err)
	}
}

func TestLoadPresetParseFailed(t *testing.T) {
	path := writePresetFixture(t, "use_selection: [broken")
	if _, err := LoadPreset(path); !errors.Is(err, io_common.ErrParseFailed) {
		t.Fatalf("error should be ErrParseFailed, got %v", err)
	}
}
