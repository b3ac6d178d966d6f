package course

import (
	"testing"

	"github.com/kartrec/kartrec/pkg/vision/ocr"
)

func wordsFrom(texts ...string) []ocr.Word {
	words := make([]ocr.Word, len(texts))
	for i, t := range texts {
		words[i] = ocr.Word{Text: t}
	}
	return words
}

func TestInferSeries(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  Series
	}{
		{"explicit GC", []string{"ヨッシーサーキット", "GC"}, SeriesGC},
		{"3DS before DS", []string{"ロックロックマウンテン", "3DS"}, Series3DS},
		{"plain DS", []string{"DS"}, SeriesDS},
		{"wii lowercase", []string{"wii"}, SeriesWii},
		{"tour", []string{"Tour"}, SeriesTour},
		{"no token defaults to New", []string{"どうぶつの森"}, SeriesNew},
		{"empty", nil, SeriesNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Default().InferSeries(wordsFrom(tt.words...))
			if got != tt.want {
				t.Errorf("InferSeries(%v) = %v, 期望 %v", tt.words, got, tt.want)
			}
		})
	}
}

func TestResolveExact(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  Course
	}{
		{
			"katakana with series tag",
			[]string{"ヨッシーサーキット", "GC"},
			Course{Name: "ヨッシーサーキット", Series: SeriesGC},
		},
		{
			"3DS course",
			[]string{"ロックロックマウンテン", "3DS"},
			Course{Name: "ロックロックマウンテン", Series: Series3DS},
		},
		{
			"ocr confusable ヒ for ピ",
			[]string{"キノヒオサーキット", "3DS"},
			Course{Name: "キノピオサーキット", Series: Series3DS},
		},
		{
			"hiragana name without tag",
			[]string{"どうぶつの森"},
			Course{Name: "どうぶつの森", Series: SeriesNew},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Default().ResolveExact(wordsFrom(tt.words...))
			if !ok {
				t.Fatalf("ResolveExact(%v) 未命中", tt.words)
			}
			if got != tt.want {
				t.Errorf("ResolveExact(%v) = %v, 期望 %v", tt.words, got, tt.want)
			}
		})
	}
}

func TestResolveExactMiss(t *testing.T) {
	if c, ok := Default().ResolveExact(wordsFrom("存在しないコース名", "GC")); ok {
		t.Errorf("不存在的赛道不应命中, 实际返回 %v", c)
	}
}

func TestResolveNearest(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  *Course
	}{
		{
			"exact still resolves",
			[]string{"ヨッシーサーキット", "GC"},
			&Course{Name: "ヨッシーサーキット", Series: SeriesGC},
		},
		{
			"one char truncated",
			[]string{"ックロックマウンテン", "3DS"},
			&Course{Name: "ロックロックマウンテン", Series: Series3DS},
		},
		{
			"two chars dropped",
			[]string{"ノヒオサーキット", "3DS"},
			&Course{Name: "キノピオサーキット", Series: Series3DS},
		},
		{
			"hiragana truncated",
			[]string{"うぶつの森"},
			&Course{Name: "どうぶつの森", Series: SeriesNew},
		},
		{
			"leading char lost",
			[]string{"ーユーヨークドリーム", "Tour"},
			&Course{Name: "ニューヨークドリーム", Series: SeriesTour},
		},
		{
			"garbled text resolves to none",
			[]string{"あまりにもかけ離れている場合", "Tour"},
			nil,
		},
		{
			"similar but unknown course",
			[]string{"キノコキャニオン"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Default().ResolveNearest(wordsFrom(tt.words...), 3)
			if tt.want == nil {
				if ok {
					t.Errorf("ResolveNearest(%v) 不应命中, 实际返回 %v", tt.words, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ResolveNearest(%v) 未命中", tt.words)
			}
			if got != *tt.want {
				t.Errorf("ResolveNearest(%v) = %v, 期望 %v", tt.words, got, *tt.want)
			}
		})
	}
}

func TestResolveNearestEmptyWords(t *testing.T) {
	if _, ok := Default().ResolveNearest(nil, 4); ok {
		t.Error("空词组不应命中")
	}
}

// "ラント" 到 GBA チーズランド 和 スノーランド 的编辑距离同为 3，
// 并列时应稳定返回杯赛顺序靠前的那个。
func TestResolveNearestTieIsStable(t *testing.T) {
	words := wordsFrom("ラント", "GBA")
	for i := 0; i < 50; i++ {
		got, ok := Default().ResolveNearest(words, 3)
		if !ok {
			t.Fatal("并列候选应命中")
		}
		if got.Name != "チーズランド" {
			t.Fatalf("第 %d 次解析返回 %v, 期望杯赛顺序靠前的 チーズランド", i+1, got)
		}
	}
}

func TestFilterCourseWords(t *testing.T) {
	const frameHeight = 720
	bottom := 950.0 / 1080.0 * frameHeight // ≈ 633

	words := []ocr.Word{
		{Text: "ヨッシーサーキット", Y: bottom + 10}, // 长词、底部 → 通过
		{Text: "GC", Y: bottom + 10},         // 短词但带系列标记 → 通过
		{Text: "あと3人", Y: bottom + 10},       // 短词、无标记 → 过滤
		{Text: "ヨッシーサーキット", Y: 100},         // 底部以外 → 过滤
	}

	got := FilterCourseWords(words, frameHeight)
	if len(got) != 2 {
		t.Fatalf("期望通过 2 个词, 实际 %d: %v", len(got), got)
	}
	if got[0].Text != "ヨッシーサーキット" || got[1].Text != "GC" {
		t.Errorf("过滤结果顺序错误: %v", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"ロックロック", "ックロック", 1},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, 期望 %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCatalogShorthand(t *testing.T) {
	catalog := Default()

	if got := catalog.ExpandShorthand("ﾈｼﾞﾏﾝ"); got != "ねじれマンション" {
		t.Errorf("ExpandShorthand(ﾈｼﾞﾏﾝ) = %q", got)
	}
	if got := catalog.ExpandShorthand("rr"); got != "レインボーロード" {
		t.Errorf("ExpandShorthand(rr) = %q", got)
	}
	if got := catalog.ExpandShorthand("未知の入力"); got != "未知の入力" {
		t.Errorf("未命中时应原样返回, 实际 %q", got)
	}
}

func TestCatalogByDisplay(t *testing.T) {
	catalog := Default()

	c, ok := catalog.ByDisplay("GC ヨッシーサーキット")
	if !ok || c.Series != SeriesGC {
		t.Errorf("ByDisplay(GC ヨッシーサーキット) = %v, %v", c, ok)
	}

	c, ok = catalog.ByDisplay("マリオカートスタジアム")
	if !ok || c.Series != SeriesNew {
		t.Errorf("New 系列显示名不带前缀: %v, %v", c, ok)
	}

	if len(catalog.Courses()) != 96 {
		t.Errorf("目录应有 96 条赛道, 实际 %d", len(catalog.Courses()))
	}
}
