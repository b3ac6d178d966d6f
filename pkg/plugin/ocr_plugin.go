// Package plugin 管理需要单独下载的 OCR 运行时与模型文件
package plugin

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/kartrec/kartrec/pkg/vision/ocr"
)

// hfRepoBase 模型仓库地址
const hfRepoBase = "https://huggingface.co/getcharzp/go-ocr/resolve/main"

// OCRPlugin 管理 ONNX Runtime 与 PaddleOCR 模型的安装状态。
// 文件较大，不随程序分发，首次启动时按需下载。
type OCRPlugin struct {
	baseDir string

	mu          sync.RWMutex
	downloading bool
	progress    float64
	onProgress  func(float64)
}

type downloadFile struct {
	name     string
	url      string
	destPath string
	size     int64 // 预估大小，只用于进度计算
}

// NewOCRPlugin 创建插件管理器，文件存放在 baseDir 下
func NewOCRPlugin(baseDir string) *OCRPlugin {
	return &OCRPlugin{baseDir: baseDir}
}

// SetProgressCallback 设置下载进度回调（0-100）
func (p *OCRPlugin) SetProgressCallback(callback func(float64)) {
	p.mu.Lock()
	p.onProgress = callback
	p.mu.Unlock()
}

// Config 返回 OCR 初始化所需的文件路径，未安装时报错
func (p *OCRPlugin) Config() (ocr.Config, error) {
	if !p.IsInstalled() {
		return ocr.Config{}, fmt.Errorf("OCR 模型未安装")
	}
	return ocr.DefaultConfig(p.baseDir), nil
}

// IsInstalled 全部文件都存在才算安装完成
func (p *OCRPlugin) IsInstalled() bool {
	cfg := ocr.DefaultConfig(p.baseDir)
	paths := []string{
		cfg.OnnxRuntimeLibPath,
		cfg.DetModelPath,
		cfg.RecModelPath,
		cfg.DictPath,
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// Install 下载缺失的运行时与模型文件
func (p *OCRPlugin) Install() error {
	p.mu.Lock()
	if p.downloading {
		p.mu.Unlock()
		return fmt.Errorf("正在下载中")
	}
	p.downloading = true
	p.progress = 0
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.downloading = false
		p.mu.Unlock()
	}()

	if err := os.MkdirAll(filepath.Join(p.baseDir, "lib"), 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(p.baseDir, "paddle_weights"), 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	files := p.downloadFiles()
	var totalSize int64
	for _, f := range files {
		totalSize += f.size
	}

	var downloadedSize int64
	for _, f := range files {
		err := p.download(f.url, f.destPath, func(downloaded int64) {
			p.mu.Lock()
			p.progress = float64(downloadedSize+downloaded) / float64(totalSize) * 100
			if p.onProgress != nil {
				p.onProgress(p.progress)
			}
			p.mu.Unlock()
		})
		if err != nil {
			return fmt.Errorf("下载 %s 失败: %w", f.name, err)
		}
		downloadedSize += f.size
	}

	p.mu.Lock()
	p.progress = 100
	if p.onProgress != nil {
		p.onProgress(100)
	}
	p.mu.Unlock()
	return nil
}

// Uninstall 删除全部已下载文件
func (p *OCRPlugin) Uninstall() error {
	return os.RemoveAll(p.baseDir)
}

func (p *OCRPlugin) downloadFiles() []downloadFile {
	runtimePath := ocr.DefaultConfig(p.baseDir).OnnxRuntimeLibPath
	runtimeName := filepath.Base(runtimePath)

	return []downloadFile{
		{
			name:     runtimeName,
			url:      hfRepoBase + "/lib/" + runtimeName,
			destPath: runtimePath,
			size:     50 * 1024 * 1024,
		},
		{
			name:     "det.onnx",
			url:      hfRepoBase + "/paddle_weights/det.onnx",
			destPath: filepath.Join(p.baseDir, "paddle_weights", "det.onnx"),
			size:     3 * 1024 * 1024,
		},
		{
			name:     "rec.onnx",
			url:      hfRepoBase + "/paddle_weights/rec.onnx",
			destPath: filepath.Join(p.baseDir, "paddle_weights", "rec.onnx"),
			size:     5 * 1024 * 1024,
		},
		{
			name:     "dict.txt",
			url:      hfRepoBase + "/paddle_weights/dict.txt",
			destPath: filepath.Join(p.baseDir, "paddle_weights", "dict.txt"),
			size:     200 * 1024,
		},
	}
}

// download 先写临时文件，完成后原子改名，避免半截文件被当成已安装
func (p *OCRPlugin) download(url, destPath string, onProgress func(int64)) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	tmpPath := destPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	defer out.Close()

	var downloaded int64
	buf := make([]byte, 32*1024)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				os.Remove(tmpPath)
				return writeErr
			}
			downloaded += int64(n)
			if onProgress != nil {
				onProgress(downloaded)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			os.Remove(tmpPath)
			return err
		}
	}

	out.Close()
	return os.Rename(tmpPath, destPath)
}
