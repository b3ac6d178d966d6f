package mogi

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/kartrec/kartrec/internal/logger"
)

// SnapshotSink 把结算画面存成 PNG，目录按会话创建时刻分组：
// <baseDir>/<20060102-150405>/<tag>_<场次>.png
type SnapshotSink struct {
	baseDir string
	font    *truetype.Font
}

// NewSnapshotSink 创建截图输出。fontPath 非空时加载字体，
// 保存前把赛道与名次写到画面左下角；加载失败不致命，只是不标注。
func NewSnapshotSink(baseDir, fontPath string) *SnapshotSink {
	sink := &SnapshotSink{baseDir: baseDir}

	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			logger.Warn("读取标注字体失败: %v", err)
			return sink
		}
		f, err := freetype.ParseFont(data)
		if err != nil {
			logger.Warn("解析标注字体失败: %v", err)
			return sink
		}
		sink.font = f
	}
	return sink
}

// Save 保存一张截图。目录创建是幂等的。
func (s *SnapshotSink) Save(img image.Image, m *MogiResult, tag string) error {
	dir := filepath.Join(s.baseDir, m.CreatedAt.Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建截图目录失败: %w", err)
	}

	if s.font != nil {
		img = s.annotate(img, m, tag)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%02d.png", tag, len(m.Races)))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建截图文件失败: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("编码截图失败: %w", err)
	}

	logger.Info("已保存截图 %s", path)
	return nil
}

// annotate 把战绩摘要画到画面左下角
func (s *SnapshotSink) annotate(img image.Image, m *MogiResult, tag string) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)

	var text string
	if tag == "race" && len(m.Races) > 0 {
		last := m.Races[len(m.Races)-1]
		courseName := ""
		if last.Course != nil {
			courseName = last.Course.String()
		}
		text = fmt.Sprintf("#%02d %s %s位 %dpt", len(m.Races), courseName, last.Position, last.Score())
	} else {
		text = fmt.Sprintf("total %dpt", m.TotalScore())
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(s.font)
	c.SetFontSize(28)
	c.SetClip(bounds)
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(color.White))
	c.SetHinting(font.HintingFull)

	if _, err := c.DrawString(text, freetype.Pt(16, bounds.Max.Y-16)); err != nil {
		logger.Warn("截图标注失败: %v", err)
		return img
	}
	return dst
}
