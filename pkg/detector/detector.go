// Package detector 实现逐帧画面分类状态机
//
// 四个阶段循环运转: 赛道识别 → 比赛结束判定 → 名次识别 → 总分截图。
// 每个阶段用滑动窗口/连续计数对单帧噪声去抖，只有信号稳定后才
// 推进状态并改写战绩聚合。状态机本身没有终止态，随进程一直循环。
package detector

import (
	"image"
	"time"

	"github.com/kartrec/kartrec/internal/logger"
	"github.com/kartrec/kartrec/pkg/course"
	"github.com/kartrec/kartrec/pkg/mogi"
	"github.com/kartrec/kartrec/pkg/vision/cv"
	"github.com/kartrec/kartrec/pkg/vision/ocr"
)

// Stage 状态机当前所处的阶段
type Stage int

const (
	// StageCourse 等待房间画面，识别即将比赛的赛道
	StageCourse Stage = iota
	// StageRaceFinish 比赛进行中，等待结算横幅出现
	StageRaceFinish
	// StagePosition 结算画面，读取高亮行得到名次
	StagePosition
	// StageTotalScores 等待总分画面出齐后截图
	StageTotalScores
)

func (s Stage) String() string {
	switch s {
	case StageCourse:
		return "course"
	case StageRaceFinish:
		return "race_finish"
	case StagePosition:
		return "position"
	case StageTotalScores:
		return "total_scores"
	default:
		return "unknown"
	}
}

// RaceKind 对战类型，影响结算横幅的判定区间
type RaceKind int

const (
	RaceKindInternet RaceKind = iota
	RaceKindLocal
)

// TextReader OCR 协作方。识别失败只代表本帧没有证据。
type TextReader interface {
	Words(img image.Image) ([]ocr.Word, error)
}

// BannerLocator 结算横幅定位协作方
type BannerLocator interface {
	PeakLocation(gray *image.Gray) (image.Point, error)
}

// SnapshotSaver 截图输出协作方
type SnapshotSaver interface {
	Save(img image.Image, m *mogi.MogiResult, tag string) error
}

const (
	// 等待房间判定: 顶部 50 行连续 5 帧全暗
	blackoutRows      = 50
	blackoutThreshold = 26 // 0.1 luma
	blackoutWindow    = 5

	// 赛道名编辑距离上限
	nearestThreshold = 4

	// 结算横幅判定: 最近 4 帧中至少 3 帧命中
	bannerWindow   = 4
	bannerRequired = 3

	// 名次判定: 连续 4 帧一致
	positionRun = 4

	// 名次确定后到总分画面出齐的等待时间
	totalScoresDelay = 4 * time.Second
)

// 赛中旗帜图标的 9 个采样点，以 1280 宽度为基准标定，偶数位
// 期望为暗、奇数位期望为亮。任意一点符合期望即认为比赛仍在进行。
var flagProbePattern = [9][2]float64{
	{174, 659}, {183, 659}, {192, 659},
	{174, 667}, {180, 667}, {189, 667},
	{173, 675}, {182, 675}, {191, 675},
}

// Options 状态机依赖
type Options struct {
	OCR       TextReader
	Banner    BannerLocator
	Snapshots SnapshotSaver
	Catalog   *course.Catalog
	Kind      RaceKind
	// Now 取当前时间，测试时可替换
	Now func() time.Time
}

// Machine 状态机本体。单 goroutine 使用，阶段与去抖字段
// 在每次转移时整体重置。
type Machine struct {
	opts  Options
	stage Stage

	// StageCourse
	blackout boolWindow

	// StageRaceFinish
	banner boolWindow

	// StagePosition
	lastLine    int
	lineRun     int
	firstDetect time.Time
}

// New 创建状态机，初始阶段为赛道识别
func New(opts Options) *Machine {
	if opts.Catalog == nil {
		opts.Catalog = course.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &Machine{opts: opts}
	m.enter(StageCourse)
	return m
}

// Stage 当前阶段
func (m *Machine) Stage() Stage {
	return m.stage
}

// EnterRaceFinish 强制切换到比赛结束判定阶段。
// 启动时聚合里已有 CurrentCourse，或用户手工补录了赛道时使用，
// 不必再等状态机自己识别一遍。
func (m *Machine) EnterRaceFinish() {
	m.enter(StageRaceFinish)
}

// enter 切换阶段并重置该阶段的去抖状态
func (m *Machine) enter(stage Stage) {
	m.stage = stage
	switch stage {
	case StageCourse:
		m.blackout = newBoolWindow(blackoutWindow)
	case StageRaceFinish:
		m.banner = newBoolWindow(bannerWindow)
	case StagePosition:
		m.lastLine = -1
		m.lineRun = 0
		m.firstDetect = time.Time{}
	}
	logger.Debug("检测阶段: %s", stage)
}

// Step 消费一帧并推进状态机。
// 返回的错误只可能来自持久化副作用（截图写盘），对消费者是致命的；
// 识别类故障一律就地吞掉，最多让分类多花一帧。
func (m *Machine) Step(frame *image.RGBA, res *mogi.MogiResult) error {
	switch m.stage {
	case StageCourse:
		return m.stepCourse(frame, res)
	case StageRaceFinish:
		return m.stepRaceFinish(frame, res)
	case StagePosition:
		return m.stepPosition(frame, res)
	case StageTotalScores:
		return m.stepTotalScores(frame, res)
	}
	return nil
}

// stepCourse 等待房间画面顶部黑条稳定后跑 OCR 识别赛道
func (m *Machine) stepCourse(frame *image.RGBA, res *mogi.MogiResult) error {
	bounds := frame.Bounds()
	top := frame.SubImage(image.Rect(
		bounds.Min.X, bounds.Min.Y,
		bounds.Max.X, bounds.Min.Y+blackoutRows,
	)).(*image.RGBA)
	gray := cv.ToGray(top)

	m.blackout.push(cv.TopRowsAllDark(gray, blackoutRows, blackoutThreshold))
	if !m.blackout.allTrue() {
		return nil
	}

	words, err := m.opts.OCR.Words(frame)
	if err != nil {
		logger.Error("赛道识别 OCR 失败: %v", err)
		return nil
	}
	if len(words) > 0 {
		logger.Trace("words: %v", words)
	}

	candidates := course.FilterCourseWords(words, bounds.Dy())
	if len(candidates) == 0 {
		return nil
	}

	if c, ok := m.opts.Catalog.ResolveExact(candidates); ok {
		logger.Debug("识别到赛道: %s", c)
		res.SetCurrentCourse(c)
		m.enter(StageRaceFinish)
		return nil
	}
	if c, ok := m.opts.Catalog.ResolveNearest(candidates, nearestThreshold); ok {
		logger.Debug("近似匹配到赛道: %s", c)
		res.SetCurrentCourse(c)
		m.enter(StageRaceFinish)
	}
	return nil
}

// stepRaceFinish 旗帜图标消失且结算横幅稳定出现后进入名次识别
func (m *Machine) stepRaceFinish(frame *image.RGBA, res *mogi.MogiResult) error {
	if m.detectErrorScreen(frame, res) {
		m.enter(StageCourse)
		return nil
	}

	if m.flagVisible(frame) {
		logger.Trace("旗帜仍在画面上")
		return nil
	}

	gray := cv.ToGray(frame)
	m.banner.push(m.bannerAt(gray, frame.Bounds()))
	if m.banner.countTrue() >= bannerRequired {
		m.enter(StagePosition)
	}
	return nil
}

// flagVisible 采样旗帜图标的像素模式
func (m *Machine) flagVisible(frame *image.RGBA) bool {
	scale := float64(frame.Bounds().Dx()) / 1280.0
	for i, p := range flagProbePattern {
		x := int(p[0] * scale)
		y := int(p[1] * scale)
		r, g, b := cv.RGBAt(frame, x, y)
		if i%2 == 0 {
			if r < 5 && g < 5 && b < 5 {
				return true
			}
		} else if r > 0xD0 && g > 0xD0 && b > 0xD0 {
			return true
		}
	}
	return false
}

// bannerAt 执行模板匹配并判断峰值是否落在期望区间。
// 匹配失败按阴性帧处理，由滑动窗口吸收。
func (m *Machine) bannerAt(gray *image.Gray, bounds image.Rectangle) bool {
	loc, err := m.opts.Banner.PeakLocation(gray)
	if err != nil {
		logger.Error("结算横幅匹配失败: %v", err)
		return false
	}

	scaleX := float64(bounds.Dx()) / 1280.0
	scaleY := float64(bounds.Dy()) / 720.0

	xMin, xMax := 555.0, 568.0
	if m.opts.Kind == RaceKindLocal {
		xMin, xMax = 595.0, 605.0
	}

	logger.Trace("横幅峰值: (%d, %d)", loc.X, loc.Y)
	return float64(loc.X) >= xMin*scaleX && float64(loc.X) <= xMax*scaleX &&
		float64(loc.Y) >= 42.0*scaleY && float64(loc.Y) <= 57.0*scaleY
}

// stepPosition 读取结算画面右侧 12 行中的高亮行，
// 连续 4 帧一致才提交名次
func (m *Machine) stepPosition(frame *image.RGBA, res *mogi.MogiResult) error {
	if m.detectErrorScreen(frame, res) {
		m.enter(StageCourse)
		return nil
	}

	line := m.highlightedLine(frame)
	if line < 0 {
		// 本帧没有合格信号，连续计数中断
		m.lastLine = -1
		m.lineRun = 0
		m.firstDetect = time.Time{}
		return nil
	}

	if line != m.lastLine {
		m.lastLine = line
		m.lineRun = 1
		m.firstDetect = m.opts.Now()
		return nil
	}

	m.lineRun++
	if m.lineRun < positionRun {
		return nil
	}

	position := mogi.FromIndex(line)
	logger.Info("识别到名次: %s位", position)
	res.SetCurrentPosition(position)

	if err := m.opts.Snapshots.Save(frame, res, "race"); err != nil {
		return err
	}

	// firstDetect 留给总分阶段计时
	m.enter(StageTotalScores)
	return nil
}

// highlightedLine 返回黄色高亮行的行号，没有则返回 -1。
// 12 行的行高与偏移按 1080p 基准等比缩放，在靠右固定 x 处
// 纵向取 5 个像素，全部满足黄色判定才算命中。
func (m *Machine) highlightedLine(frame *image.RGBA) int {
	bounds := frame.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	lineHeight := 78.0 / 1080.0 * h
	offsetY := 81.0 / 1080.0 * h
	x := int(w - 220.0/1920.0*w)

	for line := 0; line < 12; line++ {
		yTop := int(offsetY + lineHeight*float64(line))
		hit := true
		for y := yTop; y < yTop+5; y++ {
			r, g, b := cv.RGBAt(frame, x, y)
			if !(r > 0xD0 && g > 0xC8 && b < 0x60) {
				hit = false
				break
			}
		}
		if hit {
			return line
		}
	}
	return -1
}

// stepTotalScores 名次确定后总分画面还在滚动，等足时间再截图
func (m *Machine) stepTotalScores(frame *image.RGBA, res *mogi.MogiResult) error {
	if m.opts.Now().Sub(m.firstDetect) < totalScoresDelay {
		return nil
	}

	if err := m.opts.Snapshots.Save(frame, res, "total"); err != nil {
		return err
	}
	m.enter(StageCourse)
	return nil
}

// boolWindow 固定容量的布尔滑动窗口
type boolWindow struct {
	capacity int
	values   []bool
}

func newBoolWindow(capacity int) boolWindow {
	return boolWindow{capacity: capacity}
}

func (w *boolWindow) push(v bool) {
	w.values = append(w.values, v)
	if len(w.values) > w.capacity {
		w.values = w.values[1:]
	}
}

// allTrue 窗口填满且全部为 true
func (w *boolWindow) allTrue() bool {
	if len(w.values) < w.capacity {
		return false
	}
	for _, v := range w.values {
		if !v {
			return false
		}
	}
	return true
}

func (w *boolWindow) countTrue() int {
	n := 0
	for _, v := range w.values {
		if v {
			n++
		}
	}
	return n
}
