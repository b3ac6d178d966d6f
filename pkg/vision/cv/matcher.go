package cv

import (
	"fmt"
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/kartrec/kartrec/internal/logger"
)

// BannerMatcher 带掩码的模板匹配器，在整帧里定位结算横幅。
// 只取相关面的极值位置，不对相似度数值设阈值：
// 误报由旗帜像素门限和滑动窗口去抖吸收。
type BannerMatcher struct {
	tmpl gocv.Mat
	mask gocv.Mat
}

// NewBannerMatcher 从素材文件加载模板与掩码
func NewBannerMatcher(templatePath, maskPath string) (*BannerMatcher, error) {
	tmpl := gocv.IMRead(templatePath, gocv.IMReadGrayScale)
	if tmpl.Empty() {
		return nil, fmt.Errorf("无法读取模板图像: %s", templatePath)
	}

	mask := gocv.IMRead(maskPath, gocv.IMReadGrayScale)
	if mask.Empty() {
		tmpl.Close()
		return nil, fmt.Errorf("无法读取掩码图像: %s", maskPath)
	}

	if tmpl.Rows() != mask.Rows() || tmpl.Cols() != mask.Cols() {
		tmpl.Close()
		mask.Close()
		return nil, fmt.Errorf("模板与掩码尺寸不一致: %dx%d vs %dx%d",
			tmpl.Cols(), tmpl.Rows(), mask.Cols(), mask.Rows())
	}

	return &BannerMatcher{tmpl: tmpl, mask: mask}, nil
}

// PeakLocation 在灰度帧上执行掩码归一化互相关，返回相关面极大值位置
func (m *BannerMatcher) PeakLocation(gray *image.Gray) (image.Point, error) {
	startTime := time.Now()

	src, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return image.Point{}, fmt.Errorf("灰度图转换失败: %w", err)
	}
	defer src.Close()

	result := gocv.NewMat()
	defer result.Close()
	gocv.MatchTemplate(src, m.tmpl, &result, gocv.TmCcorrNormed, m.mask)

	_, _, _, maxLoc := gocv.MinMaxLoc(result)

	elapsed := float64(time.Since(startTime).Milliseconds())
	logger.LogEvent("MATCH", true, elapsed, fmt.Sprintf("峰值位置 (%d, %d)", maxLoc.X, maxLoc.Y))

	return maxLoc, nil
}

// Close 释放模板资源
func (m *BannerMatcher) Close() {
	m.tmpl.Close()
	m.mask.Close()
}
