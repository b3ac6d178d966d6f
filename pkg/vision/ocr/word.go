// Package ocr 封装基于 PaddleOCR 的文字识别，输出带坐标的词片段
package ocr

// Word 一个 OCR 词片段，坐标为帧像素空间
type Word struct {
	// Text 识别出的文字
	Text string `json:"text"`
	// X, Y 边界框左上角
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Width, Height 边界框尺寸
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
