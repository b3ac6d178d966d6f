package detector

import (
	"image"
	"strings"

	"github.com/kartrec/kartrec/internal/logger"
	"github.com/kartrec/kartrec/pkg/jptext"
	"github.com/kartrec/kartrec/pkg/mogi"
)

// 通信エラー画面上出现的关键词，归一化后做包含匹配
var errorKeywords = []string{
	jptext.Normalize("エラー"),
	jptext.Normalize("通信"),
	jptext.Normalize("はっせい"),
	jptext.Normalize("しました"),
}

// detectErrorScreen 判定当前帧是否是通信错误画面。
// 对全部词片段累计关键词命中数，满 4 次即认定出错，
// 丢弃当前赛道并返回 true。OCR 故障视为本帧无证据。
func (m *Machine) detectErrorScreen(frame *image.RGBA, res *mogi.MogiResult) bool {
	words, err := m.opts.OCR.Words(frame)
	if err != nil {
		logger.Error("错误画面识别 OCR 失败: %v", err)
		return false
	}

	count := 0
	for _, w := range words {
		if len([]rune(w.Text)) < 2 {
			continue
		}
		normalized := jptext.Normalize(strings.ReplaceAll(w.Text, " ", ""))
		for _, kw := range errorKeywords {
			if strings.Contains(normalized, kw) {
				count++
			}
			if count == 4 {
				logger.Warn("检测到通信错误画面")
				res.ResetCurrentCourse()
				return true
			}
		}
	}
	return false
}
