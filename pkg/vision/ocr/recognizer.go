package ocr

import (
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	goocr "github.com/getcharzp/go-ocr"

	"github.com/kartrec/kartrec/internal/logger"
)

// Engine 文字识别接口，识别失败只代表本帧没有证据，
// 调用方不应把错误当作致命错误。
type Engine interface {
	Words(img image.Image) ([]Word, error)
	Close() error
}

// Config OCR 配置
type Config struct {
	// OnnxRuntimeLibPath ONNX Runtime 动态库路径
	OnnxRuntimeLibPath string
	// DetModelPath 检测模型路径
	DetModelPath string
	// RecModelPath 识别模型路径
	RecModelPath string
	// DictPath 字典文件路径
	DictPath string
}

// DefaultConfig 以 modelsDir 为根推导默认模型路径。
// 动态库文件名与模型仓库里的命名保持一致。
func DefaultConfig(modelsDir string) Config {
	var libName string
	switch runtime.GOOS {
	case "windows":
		libName = "onnxruntime.dll"
	case "darwin":
		libName = "onnxruntime_" + runtime.GOARCH + ".dylib"
	default:
		libName = "onnxruntime_" + runtime.GOARCH + ".so"
	}
	return Config{
		OnnxRuntimeLibPath: filepath.Join(modelsDir, "lib", libName),
		DetModelPath:       filepath.Join(modelsDir, "paddle_weights", "det.onnx"),
		RecModelPath:       filepath.Join(modelsDir, "paddle_weights", "rec.onnx"),
		DictPath:           filepath.Join(modelsDir, "paddle_weights", "dict.txt"),
	}
}

// TextRecognizer 基于 go-ocr 的识别器
type TextRecognizer struct {
	engine goocr.Engine
	mu     sync.Mutex
}

// NewTextRecognizer 创建识别器
func NewTextRecognizer(config Config) (*TextRecognizer, error) {
	engine, err := goocr.NewPaddleOcrEngine(goocr.Config{
		OnnxRuntimeLibPath: config.OnnxRuntimeLibPath,
		DetModelPath:       config.DetModelPath,
		RecModelPath:       config.RecModelPath,
		DictPath:           config.DictPath,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 OCR 引擎失败: %w", err)
	}

	logger.Info("OCR 引擎初始化成功")

	return &TextRecognizer{engine: engine}, nil
}

// Words 识别图像中的所有文字
func (r *TextRecognizer) Words(img image.Image) ([]Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	startTime := time.Now()

	results, err := r.engine.RunOCR(img)
	if err != nil {
		elapsed := float64(time.Since(startTime).Milliseconds())
		logger.LogEvent("OCR", false, elapsed, "识别失败")
		return nil, fmt.Errorf("OCR 识别失败: %w", err)
	}

	words := make([]Word, 0, len(results))
	for _, result := range results {
		words = append(words, convertResult(result))
	}

	elapsed := float64(time.Since(startTime).Milliseconds())
	logger.LogEvent("OCR", true, elapsed, fmt.Sprintf("识别到 %d 个文本", len(words)))

	return words, nil
}

// Close 释放资源
func (r *TextRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine != nil {
		r.engine.Destroy()
		r.engine = nil
	}
	return nil
}

// convertResult 转换 go-ocr 结果
// go-ocr RecResult: Box [4]int{x1, y1, x2, y2}, Text string, Score float32
func convertResult(result goocr.RecResult) Word {
	box := result.Box
	return Word{
		Text:   result.Text,
		X:      float64(box[0]),
		Y:      float64(box[1]),
		Width:  float64(box[2] - box[0]),
		Height: float64(box[3] - box[1]),
	}
}
