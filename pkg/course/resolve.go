package course

import (
	"strings"

	"github.com/kartrec/kartrec/pkg/jptext"
	"github.com/kartrec/kartrec/pkg/vision/ocr"
)

// 系列标记的判定顺序。3ds 必须排在 ds 之前，否则 "3DS" 会被
// 子串匹配误判成 DS。
var seriesTokens = []struct {
	token  string
	series Series
}{
	{"sfc", SeriesSFC},
	{"gba", SeriesGBA},
	{"n64", SeriesN64},
	{"gc", SeriesGC},
	{"3ds", Series3DS},
	{"ds", SeriesDS},
	{"wii", SeriesWii},
	{"tour", SeriesTour},
}

// InferSeries 从 OCR 词组推断系列，未命中任何标记时返回 New
func (c *Catalog) InferSeries(words []ocr.Word) Series {
	for _, w := range words {
		text := strings.TrimSpace(strings.ToLower(w.Text))
		for _, st := range seriesTokens {
			if strings.Contains(text, st.token) {
				return st.series
			}
		}
	}
	return SeriesNew
}

// ResolveExact 在推断出的系列内做规范名精确查找，
// 按词序返回第一个命中
func (c *Catalog) ResolveExact(words []ocr.Word) (Course, bool) {
	series := c.InferSeries(words)
	index := c.bySeries[series]

	for _, w := range words {
		key := jptext.Normalize(strings.TrimSpace(strings.ToLower(w.Text)))
		if course, ok := index[key]; ok {
			return course, true
		}
	}
	return Course{}, false
}

// ResolveNearest 取最长候选词，在推断出的系列内做编辑距离最近匹配。
// 只在单一系列内搜索可以显著降低短碎片带来的误判。
// 按杯赛顺序遍历，距离并列时取靠前的赛道，结果可复现。
// 最小距离超过 threshold 时视为未命中。
func (c *Catalog) ResolveNearest(words []ocr.Word, threshold int) (Course, bool) {
	if len(words) == 0 {
		return Course{}, false
	}
	series := c.InferSeries(words)

	longest := words[0]
	for _, w := range words[1:] {
		if len([]rune(w.Text)) > len([]rune(longest.Text)) {
			longest = w
		}
	}
	target := jptext.Normalize(longest.Text)

	minDistance := -1
	var nearest Course
	for _, course := range c.courses {
		if course.Series != series {
			continue
		}
		d := levenshtein(target, jptext.Normalize(course.Name))
		if minDistance < 0 || d < minDistance {
			minDistance = d
			nearest = course
		}
	}
	if minDistance < 0 || minDistance > threshold {
		return Course{}, false
	}
	return nearest, true
}

// FilterCourseWords 筛选出可能是赛道名的 OCR 词。
// 赛道名渲染在选取画面的底部，且要么足够长、要么带系列标记。
func FilterCourseWords(words []ocr.Word, frameHeight int) []ocr.Word {
	lower := 950.0 / 1080.0 * float64(frameHeight)

	var out []ocr.Word
	for _, w := range words {
		if w.Y < lower {
			continue
		}
		if len([]rune(w.Text)) >= 6 {
			out = append(out, w)
			continue
		}
		text := strings.ToLower(w.Text)
		for _, st := range seriesTokens {
			if strings.Contains(text, st.token) {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// levenshtein 计算 rune 级编辑距离
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
