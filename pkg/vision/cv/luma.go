// Package cv 提供模板匹配与亮度处理（gocv 封装）
package cv

import (
	"image"
)

// ToGray 把帧转换为灰度图 (BT.601 加权)
func ToGray(src *image.RGBA) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcOff := src.PixOffset(bounds.Min.X, y)
		dstOff := dst.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r := uint32(src.Pix[srcOff])
			g := uint32(src.Pix[srcOff+1])
			b := uint32(src.Pix[srcOff+2])
			dst.Pix[dstOff] = uint8((299*r + 587*g + 114*b) / 1000)
			srcOff += 4
			dstOff++
		}
	}
	return dst
}

// TopRowsAllDark 判断灰度图顶部 rows 行是否全部低于 max。
// 等待房间画面的顶部是纯黑条带，用这个特征做赛道选取画面的预判。
func TopRowsAllDark(gray *image.Gray, rows int, max uint8) bool {
	bounds := gray.Bounds()
	if rows > bounds.Dy() {
		rows = bounds.Dy()
	}

	for y := bounds.Min.Y; y < bounds.Min.Y+rows; y++ {
		off := gray.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			if gray.Pix[off+x] >= max {
				return false
			}
		}
	}
	return true
}

// RGBAt 读取 RGBA 帧上一点的三通道值
func RGBAt(img *image.RGBA, x, y int) (r, g, b uint8) {
	off := img.PixOffset(x, y)
	return img.Pix[off], img.Pix[off+1], img.Pix[off+2]
}
