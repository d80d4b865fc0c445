// 指示: miu200521358
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_fbx_export/pkg/adapter/econfig"
	"github.com/miu200521358/mu_fbx_export/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_fbx_export/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_fbx_export/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_fbx_export/pkg/shared/base/logging"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/einteractor"
	"github.com/miu200521358/mu_fbx_export/pkg/usecase/port/eoutput"
)

// options はCLI引数を保持する。
type options struct {
	inputPath  string
	outputPath string
	configPath string
	logPath    string
	bake       bool
	revert     bool
	dryRun     bool
	verbose    bool
}

// main はシーンスナップショットのエクスポート準備を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}
	closeLogger, err := setupLogger(opts.verbose, opts.logPath)
	if err != nil {
		return err
	}
	defer closeLogger()

	settings, saveOptions, err := resolveSettings(opts)
	if err != nil {
		return err
	}

	repository := io_scene.NewSceneRepository()
	if !repository.CanLoad(opts.inputPath) {
		return fmt.Errorf("入力形式が未対応です: %s", opts.inputPath)
	}

	outputPath, err := resolveOutputPath(opts.inputPath, opts.outputPath)
	if err != nil {
		return err
	}
	if err := ensureOutputDir(outputPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "[mu_fbx_export] 読み込み開始: %s\n", opts.inputPath)
	uc := einteractor.NewExportUsecase(einteractor.ExportUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
	})
	result, err := uc.Export(einteractor.ExportRequest{
		InputPath:   opts.inputPath,
		OutputPath:  outputPath,
		Settings:    settings,
		SaveOptions: saveOptions,
		DryRun:      opts.dryRun,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessagePrepareFailed, err)
	}

	printSummary(out, result, opts.dryRun)
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_fbx_export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	in := fs.String("in", "", "入力シーンスナップショット(.json)")
	out := fs.String("out", "", "出力シーンスナップショット(.json)")
	config := fs.String("config", "", "エクスポート設定プリセット(.yaml)")
	logPath := fs.String("log", "", "ログファイル出力先(JSON Lines)")
	bake := fs.Bool("bake", false, "ベイク変換を適用する")
	revert := fs.Bool("revert", false, "ベイク変換を巻き戻す")
	dryRun := fs.Bool("dry-run", false, "保存せずに判定のみ実行する")
	verbose := fs.Bool("verbose", false, "詳細ログを出力する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if *out == "" && fs.NArg() > 1 {
		*out = fs.Arg(1)
	}
	if *in == "" {
		return options{}, fmt.Errorf("%s (-in)", messages.MessageInputRequired)
	}
	if !strings.EqualFold(filepath.Ext(*in), ".json") {
		return options{}, fmt.Errorf("入力拡張子が .json ではありません: %s", *in)
	}
	if *bake && *revert {
		return options{}, fmt.Errorf(messages.MessageBakeAndRevert)
	}

	return options{
		inputPath:  *in,
		outputPath: *out,
		configPath: *config,
		logPath:    *logPath,
		bake:       *bake,
		revert:     *revert,
		dryRun:     *dryRun,
		verbose:    *verbose,
	}, nil
}

// setupLogger は既定ロガーを構成する。
// 標準エラー出力へのテキストログに加え、-log指定時はファイルへJSON Linesで同報する。
func setupLogger(verbose bool, logPath string) (func(), error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	closer := func() {}
	if strings.TrimSpace(logPath) != "" {
		file, err := os.Create(logPath)
		if err != nil {
			return nil, fmt.Errorf("ログファイルの作成に失敗しました: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = func() { file.Close() }
	}

	logger := mlogging.NewFanoutLogger(handlers...)
	if verbose {
		logger.SetLevel(logging.LOG_LEVEL_DEBUG)
		logger.EnableVerbose(logging.VERBOSE_INDEX_IO)
		logger.EnableVerbose(logging.VERBOSE_INDEX_CLASSIFY)
		logger.EnableVerbose(logging.VERBOSE_INDEX_BAKE)
	}
	logging.SetDefaultLogger(logger)
	return closer, nil
}

// resolveSettings はプリセットとCLIフラグからエクスポート設定を解決する。
func resolveSettings(opts options) (einteractor.ExportSettings, eoutput.SaveOptions, error) {
	settings := einteractor.DefaultExportSettings()
	saveOptions := eoutput.SaveOptions{Indent: true, Overwrite: true}

	if opts.configPath != "" {
		preset, err := econfig.LoadPreset(opts.configPath)
		if err != nil {
			return settings, saveOptions, fmt.Errorf("%s: %w", messages.MessageSettingsNotFound, err)
		}
		settings = preset.Settings
		saveOptions = preset.SaveOptions
	}

	if opts.bake {
		settings.BakeSpaceTransform = true
		settings.RevertBakeTransform = false
	}
	if opts.revert {
		settings.BakeSpaceTransform = true
		settings.RevertBakeTransform = true
	}
	return settings, saveOptions, nil
}

// resolveOutputPath は出力シーンパスを解決する。
func resolveOutputPath(inputPath string, outputPath string) (string, error) {
	if strings.TrimSpace(outputPath) == "" {
		return einteractor.BuildDefaultOutputPath(inputPath), nil
	}
	if !strings.EqualFold(filepath.Ext(outputPath), ".json") {
		return "", fmt.Errorf("出力拡張子が .json ではありません: %s", outputPath)
	}
	return outputPath, nil
}

// ensureOutputDir は出力先ディレクトリを作成する。
func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("出力先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}

// printSummary はエクスポート準備結果を表示する。
func printSummary(out io.Writer, result *einteractor.ExportResult, dryRun bool) {
	fmt.Fprintf(out, "[mu_fbx_export] 出力候補: %d件\n", len(result.CandidateObjectNames))
	if len(result.CandidateObjectNames) == 0 {
		fmt.Fprintf(out, "[mu_fbx_export] %s\n", messages.MessageNoCandidates)
	}

	for _, compatibility := range result.Compatibilities {
		mark := "互換"
		if !compatibility.IsCompatible {
			mark = "非互換"
		}
		fmt.Fprintf(out, "[mu_fbx_export] アクション %s: %s\n", compatibility.ActionName, mark)
	}
	for _, group := range result.GroupCompatibilities {
		if !group.IsCompatible {
			fmt.Fprintf(out, "[mu_fbx_export] グループ %s: 非互換\n", group.GroupName)
		}
	}
	if result.BakeResult != nil {
		fmt.Fprintf(out, "[mu_fbx_export] ベイク変換: 成功=%d 失敗=%d\n",
			result.BakeResult.SucceededCount, len(result.BakeResult.FailedObjectNames))
	}

	if dryRun {
		fmt.Fprintf(out, "[mu_fbx_export] ドライラン完了（保存なし）\n")
		return
	}
	fmt.Fprintf(out, "[mu_fbx_export] 保存完了: %s\n", result.OutputPath)
}
