package detector

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/kartrec/kartrec/pkg/course"
	"github.com/kartrec/kartrec/pkg/mogi"
	"github.com/kartrec/kartrec/pkg/vision/ocr"
)

type fakeOCR struct {
	words []ocr.Word
	err   error
}

func (f *fakeOCR) Words(image.Image) ([]ocr.Word, error) {
	return f.words, f.err
}

type fakeBanner struct {
	loc image.Point
	err error
}

func (f *fakeBanner) PeakLocation(*image.Gray) (image.Point, error) {
	return f.loc, f.err
}

type fakeSink struct {
	tags []string
}

func (f *fakeSink) Save(img image.Image, m *mogi.MogiResult, tag string) error {
	f.tags = append(f.tags, tag)
	return nil
}

func newFrame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 1280, 720))
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// paintFlagNeutral 把旗帜采样区涂成中灰，既不算亮也不算暗
func paintFlagNeutral(img *image.RGBA) {
	fillRect(img, image.Rect(165, 650, 200, 685), color.RGBA{100, 100, 100, 255})
}

// paintHighlight 在结算画面第 line 行涂上黄色高亮
func paintHighlight(img *image.RGBA, line int) {
	yTop := 54 + 52*line
	fillRect(img, image.Rect(1120, yTop-2, 1150, yTop+8), color.RGBA{0xFF, 0xE0, 0x00, 255})
}

func newTestMachine(ocrFake *fakeOCR, banner *fakeBanner, sink *fakeSink, now *time.Time) *Machine {
	return New(Options{
		OCR:       ocrFake,
		Banner:    banner,
		Snapshots: sink,
		Kind:      RaceKindInternet,
		Now:       func() time.Time { return *now },
	})
}

func TestCourseStageNeedsStableBlackout(t *testing.T) {
	ocrFake := &fakeOCR{words: []ocr.Word{
		{Text: "GC", X: 360, Y: 650, Width: 40, Height: 30},
		{Text: "ヨッシーサーキット", X: 410, Y: 650, Width: 200, Height: 30},
	}}
	now := time.Now()
	m := newTestMachine(ocrFake, &fakeBanner{}, &fakeSink{}, &now)
	res := mogi.New()

	// 顶部是亮的，不满足等待房间条件
	bright := newFrame()
	fillRect(bright, image.Rect(0, 0, 1280, 50), color.RGBA{255, 255, 255, 255})
	for i := 0; i < 10; i++ {
		if err := m.Step(bright, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StageCourse || res.CurrentCourse != nil {
		t.Fatalf("顶部为亮时不应识别赛道, stage=%s course=%v", m.Stage(), res.CurrentCourse)
	}

	// 顶部全暗，但窗口未满前仍不能触发 OCR
	dark := newFrame()
	for i := 0; i < blackoutWindow-1; i++ {
		if err := m.Step(dark, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
		if m.Stage() != StageCourse {
			t.Fatalf("第 %d 帧就提前转移了", i+1)
		}
	}
	if err := m.Step(dark, res); err != nil {
		t.Fatalf("Step 失败: %v", err)
	}

	if m.Stage() != StageRaceFinish {
		t.Fatalf("窗口填满后应进入比赛结束判定, got %s", m.Stage())
	}
	if res.CurrentCourse == nil || res.CurrentCourse.Name != "ヨッシーサーキット" {
		t.Fatalf("赛道不正确: %v", res.CurrentCourse)
	}
	if res.CurrentCourse.Series != course.SeriesGC {
		t.Fatalf("系列不正确: %v", res.CurrentCourse.Series)
	}
}

func TestRaceFinishWaitsForFlagToDisappear(t *testing.T) {
	now := time.Now()
	// 横幅峰值始终落在线上判定区间内
	m := newTestMachine(&fakeOCR{}, &fakeBanner{loc: image.Pt(560, 50)}, &fakeSink{}, &now)
	m.EnterRaceFinish()
	res := mogi.New()

	// 全黑帧上旗帜采样点命中暗色期望，视为比赛仍在进行
	racing := newFrame()
	for i := 0; i < 10; i++ {
		if err := m.Step(racing, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StageRaceFinish {
		t.Fatalf("旗帜可见时不应转移, got %s", m.Stage())
	}

	finished := newFrame()
	paintFlagNeutral(finished)
	for i := 0; i < bannerRequired; i++ {
		if err := m.Step(finished, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StagePosition {
		t.Fatalf("横幅稳定后应进入名次识别, got %s", m.Stage())
	}
}

func TestRaceFinishIgnoresBannerOutsideBand(t *testing.T) {
	now := time.Now()
	m := newTestMachine(&fakeOCR{}, &fakeBanner{loc: image.Pt(300, 200)}, &fakeSink{}, &now)
	m.EnterRaceFinish()
	res := mogi.New()

	frame := newFrame()
	paintFlagNeutral(frame)
	for i := 0; i < 10; i++ {
		if err := m.Step(frame, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StageRaceFinish {
		t.Fatalf("峰值在区间外不应转移, got %s", m.Stage())
	}
}

func TestErrorScreenResetsToCourseStage(t *testing.T) {
	ocrFake := &fakeOCR{words: []ocr.Word{
		{Text: "通信エラーがはっせいしました", X: 300, Y: 300, Width: 400, Height: 40},
	}}
	now := time.Now()
	m := newTestMachine(ocrFake, &fakeBanner{}, &fakeSink{}, &now)
	m.EnterRaceFinish()

	res := mogi.New()
	res.SetCurrentCourse(mustCourse(t, "GC ヨッシーサーキット"))

	if err := m.Step(newFrame(), res); err != nil {
		t.Fatalf("Step 失败: %v", err)
	}
	if m.Stage() != StageCourse {
		t.Fatalf("错误画面后应回到赛道识别, got %s", m.Stage())
	}
	if res.CurrentCourse != nil {
		t.Fatalf("错误画面后应丢弃当前赛道, got %v", res.CurrentCourse)
	}
}

// 错误画面的关键词会被 OCR 切成多个词片段，命中数跨片段累计
func TestErrorScreenKeywordsSplitAcrossWords(t *testing.T) {
	ocrFake := &fakeOCR{}
	now := time.Now()
	m := newTestMachine(ocrFake, &fakeBanner{loc: image.Pt(560, 50)}, &fakeSink{}, &now)
	m.EnterRaceFinish()

	res := mogi.New()
	res.SetCurrentCourse(mustCourse(t, "GC ヨッシーサーキット"))

	// 先经由横幅判定进入名次识别阶段
	finished := newFrame()
	paintFlagNeutral(finished)
	for i := 0; i < bannerRequired; i++ {
		if err := m.Step(finished, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StagePosition {
		t.Fatalf("前置转移失败, got %s", m.Stage())
	}

	// 四个关键词分散在三个片段里，外加一个应被忽略的单字符片段
	ocrFake.words = []ocr.Word{
		{Text: "通信エラー", X: 300, Y: 280, Width: 200, Height: 40},
		{Text: "が", X: 500, Y: 280, Width: 40, Height: 40},
		{Text: "はっせい", X: 540, Y: 280, Width: 160, Height: 40},
		{Text: "しました", X: 700, Y: 280, Width: 160, Height: 40},
	}
	if err := m.Step(newFrame(), res); err != nil {
		t.Fatalf("Step 失败: %v", err)
	}

	if m.Stage() != StageCourse {
		t.Fatalf("错误画面后应回到赛道识别, got %s", m.Stage())
	}
	if res.CurrentCourse != nil {
		t.Fatalf("错误画面后应丢弃当前赛道, got %v", res.CurrentCourse)
	}
}

func TestPositionCommitNeedsFourConsecutiveFrames(t *testing.T) {
	sink := &fakeSink{}
	now := time.Now()
	m := newTestMachine(&fakeOCR{}, &fakeBanner{loc: image.Pt(560, 50)}, sink, &now)
	m.EnterRaceFinish()

	res := mogi.New()
	res.SetCurrentCourse(mustCourse(t, "GC ヨッシーサーキット"))

	// 先经由横幅判定进入名次识别阶段
	finished := newFrame()
	paintFlagNeutral(finished)
	for i := 0; i < bannerRequired; i++ {
		if err := m.Step(finished, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StagePosition {
		t.Fatalf("前置转移失败, got %s", m.Stage())
	}

	// 两个名次交替出现，连续计数反复清零，永远不能提交
	first := newFrame()
	paintHighlight(first, 0)
	second := newFrame()
	paintHighlight(second, 1)
	for i := 0; i < 8; i++ {
		frame := first
		if i%2 == 1 {
			frame = second
		}
		if err := m.Step(frame, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StagePosition || len(res.Races) != 0 {
		t.Fatalf("交替信号不应提交名次, stage=%s races=%d", m.Stage(), len(res.Races))
	}

	// 同一行连续 4 帧后提交
	sixth := newFrame()
	paintHighlight(sixth, 5)
	for i := 0; i < positionRun; i++ {
		now = now.Add(100 * time.Millisecond)
		if err := m.Step(sixth, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}

	if m.Stage() != StageTotalScores {
		t.Fatalf("提交后应进入总分截图阶段, got %s", m.Stage())
	}
	if len(res.Races) != 1 || res.Races[0].Position != mogi.Sixth {
		t.Fatalf("名次记录不正确: %+v", res.Races)
	}
	if len(sink.tags) != 1 || sink.tags[0] != "race" {
		t.Fatalf("应保存一次 race 截图, got %v", sink.tags)
	}
}

func TestTotalScoresWaitsForElapsedTime(t *testing.T) {
	sink := &fakeSink{}
	start := time.Now()
	now := start
	m := newTestMachine(&fakeOCR{}, &fakeBanner{loc: image.Pt(560, 50)}, sink, &now)
	m.EnterRaceFinish()

	res := mogi.New()
	res.SetCurrentCourse(mustCourse(t, "GC ヨッシーサーキット"))

	finished := newFrame()
	paintFlagNeutral(finished)
	for i := 0; i < bannerRequired; i++ {
		if err := m.Step(finished, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}

	sixth := newFrame()
	paintHighlight(sixth, 5)
	for i := 0; i < positionRun; i++ {
		now = now.Add(50 * time.Millisecond)
		if err := m.Step(sixth, res); err != nil {
			t.Fatalf("Step 失败: %v", err)
		}
	}
	if m.Stage() != StageTotalScores {
		t.Fatalf("前置转移失败, got %s", m.Stage())
	}
	firstDetect := start.Add(50 * time.Millisecond)

	// 距首次检测不足 4 秒，只能等待
	now = firstDetect.Add(totalScoresDelay - time.Second)
	if err := m.Step(newFrame(), res); err != nil {
		t.Fatalf("Step 失败: %v", err)
	}
	if m.Stage() != StageTotalScores || len(sink.tags) != 1 {
		t.Fatalf("等待期间不应截图, stage=%s tags=%v", m.Stage(), sink.tags)
	}

	now = firstDetect.Add(totalScoresDelay)
	if err := m.Step(newFrame(), res); err != nil {
		t.Fatalf("Step 失败: %v", err)
	}
	if m.Stage() != StageCourse {
		t.Fatalf("截图后应回到赛道识别, got %s", m.Stage())
	}
	if len(sink.tags) != 2 || sink.tags[1] != "total" {
		t.Fatalf("应保存 total 截图, got %v", sink.tags)
	}
}

func mustCourse(t *testing.T, display string) course.Course {
	t.Helper()
	c, ok := course.Default().ByDisplay(display)
	if !ok {
		t.Fatalf("赛道不存在: %s", display)
	}
	return c
}
