// 指示: miu200521358
package einteractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_fbx_export/pkg/domain/model"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/port/eoutput"
)

// LoadScene はシーンスナップショットを読み込む。
func (uc *ExportUsecase) LoadScene(rep eoutput.ISceneReader, path string) (*SceneData, error) {
	repo := rep
	if repo == nil {
		repo = uc.sceneReader
	}
	if repo == nil {
		return nil, fmt.Errorf("シーン読み込みリポジトリが設定されていません")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("入力形式が未対応です: %s", path)
	}
	return repo.Load(path)
}

// SaveScene はシーンスナップショットを保存する。
func (uc *ExportUsecase) SaveScene(rep eoutput.ISceneWriter, path string, scene *SceneData, opts SaveOptions) error {
	writer := rep
	if writer == nil {
		writer = uc.sceneWriter
	}
	if writer == nil {
		return fmt.Errorf("シーン保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if scene == nil {
		return fmt.Errorf("保存対象シーンが未設定です")
	}
	return writer.Save(path, scene, opts)
}

// BuildDefaultOutputPath は入力パスから既定の出力パスを生成する。
func BuildDefaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if strings.TrimSpace(base) == "" {
		return ""
	}
	return filepath.Join(dir, base+"_export.json")
}

// resolveSceneOutputPath は保存先パスを解決し、拡張子を検証する。
func resolveSceneOutputPath(inputPath string, outputPath string) (string, error) {
	resolved := strings.TrimSpace(outputPath)
	if resolved == "" {
		resolved = BuildDefaultOutputPath(inputPath)
	}
	if strings.TrimSpace(resolved) == "" {
		return "", fmt.Errorf("保存先パスが未指定です")
	}
	if !strings.EqualFold(filepath.Ext(resolved), ".json") {
		return "", fmt.Errorf("保存先拡張子が .json ではありません: %s", resolved)
	}
	return resolved, nil
}

// resolveSceneData は準備対象シーンを解決する。
func (uc *ExportUsecase) resolveSceneData(rep eoutput.ISceneReader, inputPath string, scene *SceneData) (*SceneData, error) {
	resolved := scene
	if resolved == nil {
		loaded, err := uc.LoadScene(rep, inputPath)
		if err != nil {
			return nil, err
		}
		resolved = loaded
	}
	if resolved == nil {
		return nil, fmt.Errorf("シーン読み込み結果が空です")
	}
	return resolved, nil
}

// PrepareSceneForExport はシーンを読み込み、互換判定とベイク変換まで実行する。
// シーン本体の保存は行わない。DryRun時は複製シーンを操作し、入力シーンへは影響しない。
func (uc *ExportUsecase) PrepareSceneForExport(request ExportRequest) (*ExportResult, error) {
	if strings.TrimSpace(request.InputPath) == "" && request.SceneData == nil {
		return nil, fmt.Errorf(messages.MessageInputRequired)
	}

	outputPath, err := resolveSceneOutputPath(request.InputPath, request.OutputPath)
	if err != nil {
		return nil, err
	}

	scene, err := uc.resolveSceneData(request.Reader, request.InputPath, request.SceneData)
	if err != nil {
		return nil, err
	}
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type:        PrepareProgressEventTypeSceneLoaded,
		ObjectCount: scene.Objects.Len(),
		ActionCount: scene.Actions.Len(),
	})

	if request.DryRun {
		cloned, cloneErr := CloneScene(scene)
		if cloneErr != nil {
			return nil, fmt.Errorf("シーン複製に失敗しました: %w", cloneErr)
		}
		scene = cloned
	}

	candidates := CandidateObjectsForExport(scene, request.Settings)
	candidateNames := make([]string, 0, len(candidates))
	for _, obj := range candidates {
		candidateNames = append(candidateNames, obj.Name())
	}
	logPrepareInfo(messages.LogCandidatesResolved, len(candidates))
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type:           PrepareProgressEventTypeCandidatesResolved,
		ObjectCount:    scene.Objects.Len(),
		CandidateCount: len(candidates),
	})

	compatibilities := ClassifyActions(scene.Actions, candidates)
	groupCompatibilities := ClassifyGroups(scene.Groups, candidates)
	compatibleCount := 0
	for _, compatibility := range compatibilities {
		if compatibility.IsCompatible {
			compatibleCount++
		}
	}
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type:            PrepareProgressEventTypeActionsClassified,
		ActionCount:     scene.Actions.Len(),
		CompatibleCount: compatibleCount,
	})

	selectionItems := PopulateActionSelection(nil, scene.Actions, candidates, request.Settings)
	selectedNames := make([]string, 0, len(selectionItems))
	for _, item := range selectionItems {
		if item.Selected {
			selectedNames = append(selectedNames, item.Action)
		}
	}
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type:        PrepareProgressEventTypeSelectionPopulated,
		ActionCount: len(selectionItems),
	})

	result := &ExportResult{
		Scene:                scene,
		OutputPath:           outputPath,
		CandidateObjectNames: candidateNames,
		Compatibilities:      compatibilities,
		GroupCompatibilities: groupCompatibilities,
		SelectionItems:       selectionItems,
		SelectedActionNames:  selectedNames,
		WarningIDs:           collectPrepareWarnings(candidateNames, compatibilities, groupCompatibilities),
	}

	if request.Settings.BakeSpaceTransform && request.Settings.BakeTransformAvailable() {
		bakeResult := runRequestedBake(scene, candidates, request.Settings)
		result.BakeResult = &bakeResult
		result.WarningIDs = append(result.WarningIDs, bakeResult.WarningIDs...)
		eventType := PrepareProgressEventTypeBakeCompleted
		if request.Settings.RevertBakeTransform {
			eventType = PrepareProgressEventTypeBakeReverted
		}
		reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
			Type:        eventType,
			BakedCount:  bakeResult.SucceededCount,
			FailedCount: len(bakeResult.FailedObjectNames),
		})
	}
	return result, nil
}

// Export はシーン準備後、保存まで実行する。DryRun時は保存を省略する。
func (uc *ExportUsecase) Export(request ExportRequest) (*ExportResult, error) {
	result, err := uc.PrepareSceneForExport(request)
	if err != nil {
		return nil, err
	}
	if request.DryRun {
		return result, nil
	}
	if err := uc.SaveScene(request.Writer, result.OutputPath, result.Scene, request.SaveOptions); err != nil {
		return nil, err
	}
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type: PrepareProgressEventTypeSceneSaved,
	})
	return result, nil
}

// collectPrepareWarnings は準備段階の警告IDを収集する。
func collectPrepareWarnings(
	candidateNames []string,
	compatibilities []ActionCompatibility,
	groupCompatibilities []GroupCompatibility,
) []string {
	warningIDs := []string{}
	if len(candidateNames) == 0 {
		warningIDs = append(warningIDs, model.ExportWarningNoCandidates)
	}
	for _, compatibility := range compatibilities {
		if !compatibility.IsCompatible {
			warningIDs = append(warningIDs, model.ExportWarningActionIncompatible)
			break
		}
	}
	for _, group := range groupCompatibilities {
		if !group.IsCompatible {
			warningIDs = append(warningIDs, model.ExportWarningGroupIncompatible)
			break
		}
	}
	return warningIDs
}

// runRequestedBake は設定に応じてベイク変換の適用または巻き戻しを実行する。
func runRequestedBake(scene *SceneData, candidates []*model.Object, settings ExportSettings) BakeBatchResult {
	if settings.RevertBakeTransform {
		return RevertBakeTransformFromObjects(scene, candidates)
	}
	return ApplyBakeTransformToObjects(scene, candidates)
}

// reportPrepareProgress は進捗イベントを通知する。
func reportPrepareProgress(reporter IPrepareProgressReporter, event PrepareProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportPrepareProgress(event)
}

// CloneScene はシーン全体の複製を生成する。各要素の公開フィールドは深い複製となる。
func CloneScene(scene *SceneData) (*SceneData, error) {
	if scene == nil {
		return nil, fmt.Errorf("複製対象シーンが未設定です")
	}
	cloned := model.NewScene(scene.Name)
	cloned.ActiveCollection = scene.ActiveCollection
	cloned.ActiveObjectName = scene.ActiveObjectName
	for collectionName, objectNames := range scene.Collections {
		cloned.Collections[collectionName] = append([]string{}, objectNames...)
	}

	for _, obj := range scene.Objects.Values() {
		if obj == nil {
			continue
		}
		copied := model.NewObject(obj.Name(), obj.Category)
		if err := deepcopy.Copy(copied, obj); err != nil {
			return nil, err
		}
		cloned.Objects.Append(copied)
	}
	for _, action := range scene.Actions.Values() {
		if action == nil {
			continue
		}
		copied := model.NewAction(action.Name())
		if err := deepcopy.Copy(copied, action); err != nil {
			return nil, err
		}
		cloned.Actions.Append(copied)
	}
	for _, group := range scene.Groups {
		if group == nil {
			continue
		}
		copied := &model.ActionGroup{}
		if err := deepcopy.Copy(copied, group); err != nil {
			return nil, err
		}
		cloned.Groups = append(cloned.Groups, copied)
	}
	return cloned, nil
}
