// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/mmath"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/einteractor"
)

const (
	batchOutputDirMode = 0o755
)

var targetScenePaths = []string{
	// ローカル検証用のシーンスナップショットをここへ列挙する。
	// "E:/Blender/scenes/room.json",
	// "E:/Blender/scenes/character_walk.json",
}

// batchConfig はバッチ検証の実行設定を表す。
type batchConfig struct {
	OutputRoot string
	DryRun     bool
	FailFast   bool
	Generate   bool
}

// exportEntry は1シーン分の検証入力情報を表す。
type exportEntry struct {
	Index      int
	SourcePath string
	SceneName  string
	CaseDir    string
	OutputPath string
}

// exportResult は1シーン分の検証結果を表す。
type exportResult struct {
	Entry     exportEntry
	Status    string
	Duration  time.Duration
	Err       error
	StageInfo string
}

// prepareProgressCollector は準備処理の進捗イベントを収集する。
type prepareProgressCollector struct {
	eventCounts map[einteractor.PrepareProgressEventType]int
	candidates  int
	compatible  int
	baked       int
}

func newPrepareProgressCollector() *prepareProgressCollector {
	return &prepareProgressCollector{
		eventCounts: map[einteractor.PrepareProgressEventType]int{},
	}
}

// ReportPrepareProgress は準備処理進捗を受信する。
func (c *prepareProgressCollector) ReportPrepareProgress(event einteractor.PrepareProgressEvent) {
	c.eventCounts[event.Type]++
	switch event.Type {
	case einteractor.PrepareProgressEventTypeCandidatesResolved:
		c.candidates = event.CandidateCount
	case einteractor.PrepareProgressEventTypeActionsClassified:
		c.compatible = event.CompatibleCount
	case einteractor.PrepareProgressEventTypeBakeCompleted, einteractor.PrepareProgressEventTypeBakeReverted:
		c.baked = event.BakedCount
	}
}

// summary は収集した進捗の要約文字列を返す。
func (c *prepareProgressCollector) summary() string {
	return fmt.Sprintf("events=%d candidates=%d compatible=%d baked=%d",
		len(c.eventCounts), c.candidates, c.compatible, c.baked)
}

// main はエクスポート準備パイプラインの一括検証を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括検証を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}

	scenePaths := targetScenePaths
	if config.Generate {
		generatedPath, err := writeGeneratedScene(config.OutputRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "検証用シーン生成に失敗しました: %v\n", err)
			return 2
		}
		scenePaths = append([]string{generatedPath}, scenePaths...)
	}

	entries := buildExportEntries(config.OutputRoot, scenePaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "検証対象シーンがありません (-generate で生成できます)")
		return 2
	}

	results := executeBatchExport(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	outputRoot := flag.String("output-root", defaultOutputRoot, "検証結果の出力ルートディレクトリ")
	dryRun := flag.Bool("dry-run", false, "保存せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	generate := flag.Bool("generate", false, "検証用シーンを生成して対象へ加える")
	flag.Parse()

	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		DryRun:     *dryRun,
		FailFast:   *failFast,
		Generate:   *generate,
	}, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	currentDir := filepath.Dir(currentFilePath)
	return filepath.Join(currentDir, "output"), nil
}

// writeGeneratedScene は検証用のシーンスナップショットを生成して保存する。
func writeGeneratedScene(outputRoot string) (string, error) {
	if err := os.MkdirAll(outputRoot, batchOutputDirMode); err != nil {
		return "", err
	}

	scene := model.NewScene("generated")
	scene.ActiveObjectName = "Cube"

	cube := model.NewObject("Cube", model.CATEGORY_MESH)
	cube.Selected = true
	cube.RotationEuler = mmath.NewVec3(mmath.DegToRad(10), mmath.DegToRad(20), mmath.DegToRad(30))
	cube.Binding = &model.AnimationBinding{ActiveAction: "歩行"}
	cube.Data = &model.ObjectData{
		Vertices: []model.MeshVertex{
			{Position: mmath.UNIT_Y_VEC3, Normal: mmath.UNIT_Z_VEC3},
			{Position: mmath.UNIT_X_VEC3, Normal: mmath.UNIT_Z_VEC3},
		},
	}
	scene.Objects.Append(cube)

	armature := model.NewObject("Armature", model.CATEGORY_ARMATURE)
	armature.Binding = &model.AnimationBinding{}
	armature.Data = &model.ObjectData{Bones: []model.RestBone{{Name: "腕.L"}}}
	scene.Objects.Append(armature)

	walk := model.NewAction("歩行")
	walk.Fcurves = []model.Fcurve{{DataPath: "location", ArrayIndex: 2}}
	scene.Actions.Append(walk)

	wave := model.NewAction("手振り")
	wave.Fcurves = []model.Fcurve{{DataPath: `pose.bones["腕.L"].rotation_euler`, ArrayIndex: 2}}
	scene.Actions.Append(wave)

	path := filepath.Join(outputRoot, "generated_scene.json")
	rep := io_scene.NewSceneRepository()
	if err := rep.Save(path, scene, einteractor.SaveOptions{Indent: true, Overwrite: true}); err != nil {
		return "", err
	}
	return path, nil
}

// buildExportEntries は入力パス一覧から検証対象エントリを生成する。
func buildExportEntries(outputRoot string, inputPaths []string) []exportEntry {
	rep := io_scene.NewSceneRepository()
	entries := make([]exportEntry, 0, len(inputPaths))
	for i, rawPath := range inputPaths {
		sceneName := rep.InferName(rawPath)
		caseDirName := fmt.Sprintf("%03d_%s", i+1, sceneName)
		caseDir := filepath.Join(outputRoot, caseDirName)
		entries = append(entries, exportEntry{
			Index:      i + 1,
			SourcePath: filepath.Clean(rawPath),
			SceneName:  sceneName,
			CaseDir:    caseDir,
			OutputPath: filepath.Join(caseDir, sceneName+"_export.json"),
		})
	}
	return entries
}

// executeBatchExport は全シーンの検証処理を順次実行する。
func executeBatchExport(config batchConfig, entries []exportEntry) []exportResult {
	repository := io_scene.NewSceneRepository()
	usecase := einteractor.NewExportUsecase(einteractor.ExportUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
	})

	results := make([]exportResult, 0, len(entries))
	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 検証開始: scene=%s\n", entry.Index, total, entry.SceneName)
		result := exportSceneEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 検証成功: scene=%s output=%s elapsed=%s\n",
				entry.Index, total, entry.SceneName, entry.OutputPath, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.StageInfo) != "" {
				fmt.Printf("[%d/%d] 準備進捗: %s\n", entry.Index, total, result.StageInfo)
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: scene=%s input=%s output=%s\n",
				entry.Index, total, entry.SceneName, entry.SourcePath, entry.OutputPath)
		case "skipped_missing":
			fmt.Printf("[%d/%d] 入力不足でスキップ: scene=%s input=%s reason=%v\n",
				entry.Index, total, entry.SceneName, entry.SourcePath, result.Err)
		default:
			fmt.Printf("[%d/%d] 検証失敗: scene=%s reason=%v\n", entry.Index, total, entry.SceneName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// exportSceneEntry は1シーン分の検証を実行する。
func exportSceneEntry(usecase *einteractor.ExportUsecase, config batchConfig, entry exportEntry) exportResult {
	result := exportResult{
		Entry:  entry,
		Status: "failed",
	}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		result.Status = "skipped_missing"
		result.Err = err
		return result
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	settings := einteractor.DefaultExportSettings()
	settings.BakeSpaceTransform = true

	startedAt := time.Now()
	progressCollector := newPrepareProgressCollector()
	exported, err := usecase.Export(einteractor.ExportRequest{
		InputPath:        entry.SourcePath,
		OutputPath:       entry.OutputPath,
		Settings:         settings,
		SaveOptions:      einteractor.SaveOptions{Indent: true, Overwrite: true},
		ProgressReporter: progressCollector,
	})
	if err != nil {
		result.Err = fmt.Errorf("Exportに失敗しました: %w", err)
		return result
	}
	if exported == nil || exported.Scene == nil {
		result.Err = errors.New("Export結果が空です")
		return result
	}
	if exported.BakeResult != nil && !exported.BakeResult.Succeeded() && len(exported.CandidateObjectNames) > 0 {
		result.Err = fmt.Errorf("ベイク変換が全件失敗しました: failed=%v", exported.BakeResult.FailedObjectNames)
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.StageInfo = progressCollector.summary()
	return result
}

// printBatchSummary は全シーンの検証結果を集計表示する。
func printBatchSummary(results []exportResult) {
	statusCounts := map[string]int{}
	for _, result := range results {
		statusCounts[result.Status]++
	}
	fmt.Println("==== 検証結果サマリ ====")
	fmt.Printf("総数=%d 成功=%d 失敗=%d スキップ=%d DRY-RUN=%d\n",
		len(results),
		statusCounts["succeeded"],
		statusCounts["failed"],
		statusCounts["skipped_missing"],
		statusCounts["dry_run"])
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("  [%03d] %s: status=%s err=%v\n",
				result.Entry.Index, result.Entry.SceneName, result.Status, result.Err)
		}
	}
}
