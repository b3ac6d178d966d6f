package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kartrec/kartrec/internal/logger"
	"github.com/kartrec/kartrec/pkg/capture"
	"github.com/kartrec/kartrec/pkg/config"
	"github.com/kartrec/kartrec/pkg/course"
	"github.com/kartrec/kartrec/pkg/detector"
	"github.com/kartrec/kartrec/pkg/mogi"
	"github.com/kartrec/kartrec/pkg/pipeline"
	"github.com/kartrec/kartrec/pkg/plugin"
	"github.com/kartrec/kartrec/pkg/tui"
	"github.com/kartrec/kartrec/pkg/vision/cv"
	"github.com/kartrec/kartrec/pkg/vision/ocr"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// 帧通道容量。消费端来不及处理时生产端阻塞，帧率自然降下来。
const frameQueueSize = 10

func main() {
	var (
		backend     = flag.String("backend", "", "采集后端: device / screen")
		deviceIndex = flag.Int("device", -1, "采集设备序号")
		screenX     = flag.Int("screen-x", -1, "屏幕截取区域左上角 X")
		screenY     = flag.Int("screen-y", -1, "屏幕截取区域左上角 Y")
		raceKind    = flag.String("race-kind", "", "对战类型: internet / local")
		logLevel    = flag.String("log-level", "", "日志级别: TRACE/DEBUG/INFO/WARN/ERROR")
		headless    = flag.Bool("headless", false, "不启动界面，只在后台记录")
		saveConfig  = flag.Bool("save", false, "保存配置到本地")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}
	if *showHelp {
		printHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("[WARN] 加载配置失败: %v\n", err)
	}

	// 命令行参数优先级高于配置文件
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *deviceIndex >= 0 {
		cfg.DeviceIndex = *deviceIndex
	}
	if *screenX >= 0 {
		cfg.ScreenX = *screenX
	}
	if *screenY >= 0 {
		cfg.ScreenY = *screenY
	}
	if *raceKind != "" {
		cfg.RaceKind = *raceKind
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if *saveConfig {
		if err := config.Save(cfg); err != nil {
			fmt.Printf("[WARN] 保存配置失败: %v\n", err)
		} else {
			fmt.Printf("[INFO] 配置已保存到 %s\n", config.GetDefaultManager().GetConfigFile())
		}
	}

	logger.Default().SetLevel(logger.ParseLevel(cfg.LogLevel))
	if cfg.WriteLogToFile {
		logPath := filepath.Join(cfg.ResultsDir, "kartrec.log")
		if err := logger.Default().SetFile(logPath); err != nil {
			fmt.Printf("[WARN] 打开日志文件失败: %v\n", err)
		}
	}

	if err := run(cfg, *headless); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Settings, headless bool) error {
	// OCR 模型首次启动时按需下载
	ocrPlugin := plugin.NewOCRPlugin(cfg.ModelsDir)
	if !ocrPlugin.IsInstalled() {
		fmt.Println("[INFO] 首次运行，正在下载 OCR 模型...")
		ocrPlugin.SetProgressCallback(func(progress float64) {
			fmt.Printf("\r[INFO] 下载进度: %.1f%%", progress)
		})
		if err := ocrPlugin.Install(); err != nil {
			return fmt.Errorf("下载 OCR 模型失败: %w", err)
		}
		fmt.Println()
	}

	ocrConfig, err := ocrPlugin.Config()
	if err != nil {
		return err
	}
	recognizer, err := ocr.NewTextRecognizer(ocrConfig)
	if err != nil {
		return fmt.Errorf("初始化 OCR 失败: %w", err)
	}
	defer recognizer.Close()

	matcher, err := cv.NewBannerMatcher(
		filepath.Join(cfg.AssetsDir, "results.png"),
		filepath.Join(cfg.AssetsDir, "results_mask.png"),
	)
	if err != nil {
		return fmt.Errorf("加载结算横幅模板失败: %w", err)
	}
	defer matcher.Close()

	store := mogi.NewStore(filepath.Join(cfg.ResultsDir, "result.json"))
	result, err := store.Load()
	if err != nil {
		return fmt.Errorf("读取历史战绩失败: %w", err)
	}
	if result == nil {
		result = mogi.New()
	} else {
		logger.Info("继续上次的战绩: %s", result)
	}

	kind := detector.RaceKindInternet
	if cfg.RaceKind == "local" {
		kind = detector.RaceKindLocal
	}
	machine := detector.New(detector.Options{
		OCR:       recognizer,
		Banner:    matcher,
		Snapshots: mogi.NewSnapshotSink(cfg.ResultsDir, cfg.FontPath),
		Catalog:   course.Default(),
		Kind:      kind,
	})
	if result.CurrentCourse != nil {
		machine.EnterRaceFinish()
	}

	source, err := newSource(cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	frames := make(chan *image.RGBA, frameQueueSize)
	edits := make(chan *mogi.MogiResult, 1)
	updates := make(chan *mogi.MogiResult, 1)

	go capture.Run(ctx, source, frames)

	pipelineErr := make(chan error, 1)
	go func() {
		pipelineErr <- pipeline.Run(ctx, pipeline.Options{
			Machine: machine,
			Store:   store,
			Result:  result,
			Frames:  frames,
			Edits:   edits,
			Updates: updates,
		})
	}()

	if headless {
		logger.Info("后台记录中，按 Ctrl+C 退出")
		select {
		case <-ctx.Done():
			return nil
		case err := <-pipelineErr:
			return err
		}
	}

	program := tea.NewProgram(tui.NewModel(course.Default(), updates, edits), tea.WithAltScreen())
	go func() {
		select {
		case <-ctx.Done():
			program.Quit()
		case err := <-pipelineErr:
			if err != nil {
				logger.Error("消费循环退出: %v", err)
			}
			program.Quit()
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("界面运行失败: %w", err)
	}
	stop()

	select {
	case err := <-pipelineErr:
		return err
	default:
		return nil
	}
}

// newSource 按配置选择帧来源
func newSource(cfg *config.Settings) (capture.Source, error) {
	switch cfg.Backend {
	case config.BackendScreen:
		return capture.NewScreenSource(cfg.ScreenX, cfg.ScreenY, cfg.CaptureWidth, cfg.CaptureHeight), nil
	case config.BackendDevice:
		return capture.NewDeviceSource(cfg.DeviceIndex, cfg.CaptureWidth, cfg.CaptureHeight)
	default:
		return nil, fmt.Errorf("未知采集后端: %s", cfg.Backend)
	}
}

func printVersion() {
	fmt.Printf("kartrec v%s\n", Version)
	fmt.Printf("构建时间: %s\n", BuildTime)
	fmt.Printf("Git 提交: %s\n", GitCommit)
}

func printHelp() {
	fmt.Println("kartrec - マリオカート8DX 战绩自动记录")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  kartrec [选项]")
	fmt.Println()
	fmt.Println("选项:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  kartrec -backend device -device 0")
	fmt.Println("  kartrec -backend screen -screen-x 0 -screen-y 0 -save")
}
