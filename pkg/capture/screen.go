package capture

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"
	xdraw "golang.org/x/image/draw"
)

// ScreenSource 截取屏幕上的固定区域作为帧来源，
// 游戏窗口/全屏画面放在该区域即可
type ScreenSource struct {
	x      int
	y      int
	width  int
	height int
}

// NewScreenSource 以 (x, y) 为左上角、width x height 为尺寸
// 创建屏幕截取来源
func NewScreenSource(x, y, width, height int) *ScreenSource {
	return &ScreenSource{x: x, y: y, width: width, height: height}
}

func (s *ScreenSource) Frame() (*image.RGBA, error) {
	img, err := robotgo.CaptureImg(s.x, s.y, s.width, s.height)
	if err != nil {
		return nil, fmt.Errorf("截屏失败: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == s.width && bounds.Dy() == s.height {
		if rgba, ok := img.(*image.RGBA); ok {
			return rgba, nil
		}
	}

	// 高 DPI 下截图尺寸可能是物理像素，缩放回目标尺寸
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst, nil
}

func (s *ScreenSource) Close() error {
	return nil
}
