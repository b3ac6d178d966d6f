package mogi

import (
	"fmt"
	"strings"
	"time"

	"github.com/kartrec/kartrec/pkg/course"
)

// RaceResult 一场比赛的结果，可在事后由用户编辑
type RaceResult struct {
	// Course 比赛赛道，OCR 未识别到时为 nil
	Course *course.Course `json:"course"`
	// Position 完赛名次
	Position Position `json:"position"`
}

// Score 这场比赛的得点
func (r RaceResult) Score() int {
	return r.Position.Score()
}

// MogiResult 一次会话的战绩聚合。
// 不变式: CurrentCourse 只在"赛道已知、名次未定"期间非 nil，
// 名次一旦记录就追加 RaceResult 并清空 CurrentCourse。
// 聚合只由消费者 goroutine 写入，其它组件只持有副本。
type MogiResult struct {
	Races         []RaceResult   `json:"races"`
	CurrentCourse *course.Course `json:"current_course"`
	CreatedAt     time.Time      `json:"created_at"`
}

// New 开始一次新会话
func New() *MogiResult {
	return &MogiResult{CreatedAt: time.Now()}
}

// SetCurrentCourse 记录正在进行的比赛的赛道
func (m *MogiResult) SetCurrentCourse(c course.Course) {
	cc := c
	m.CurrentCourse = &cc
}

// ResetCurrentCourse 放弃正在进行的比赛（通信错误等）
func (m *MogiResult) ResetCurrentCourse() {
	m.CurrentCourse = nil
}

// SetCurrentPosition 记录名次并结算一场比赛。
// CurrentCourse 未设置时为 no-op，不追加记录。
func (m *MogiResult) SetCurrentPosition(p Position) {
	if m.CurrentCourse == nil {
		return
	}
	m.Races = append(m.Races, RaceResult{Course: m.CurrentCourse, Position: p})
	m.CurrentCourse = nil
}

// SetCourse 编辑第 index 场比赛的赛道
func (m *MogiResult) SetCourse(index int, c course.Course) {
	cc := c
	m.Races[index].Course = &cc
}

// SetPosition 编辑第 index 场比赛的名次
func (m *MogiResult) SetPosition(index int, p Position) {
	m.Races[index].Position = p
}

// TotalScore 会话总得点
func (m *MogiResult) TotalScore() int {
	total := 0
	for _, r := range m.Races {
		total += r.Score()
	}
	return total
}

// Clone 深拷贝，发给 GUI 的都是副本
func (m *MogiResult) Clone() *MogiResult {
	out := &MogiResult{CreatedAt: m.CreatedAt}
	out.Races = make([]RaceResult, len(m.Races))
	for i, r := range m.Races {
		out.Races[i] = r
		if r.Course != nil {
			c := *r.Course
			out.Races[i].Course = &c
		}
	}
	if m.CurrentCourse != nil {
		c := *m.CurrentCourse
		out.CurrentCourse = &c
	}
	return out
}

// Equal 判断两个聚合内容是否一致（用于检测可观察变化）
func (m *MogiResult) Equal(other *MogiResult) bool {
	if other == nil {
		return false
	}
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return false
	}
	if (m.CurrentCourse == nil) != (other.CurrentCourse == nil) {
		return false
	}
	if m.CurrentCourse != nil && *m.CurrentCourse != *other.CurrentCourse {
		return false
	}
	if len(m.Races) != len(other.Races) {
		return false
	}
	for i := range m.Races {
		a, b := m.Races[i], other.Races[i]
		if a.Position != b.Position {
			return false
		}
		if (a.Course == nil) != (b.Course == nil) {
			return false
		}
		if a.Course != nil && *a.Course != *b.Course {
			return false
		}
	}
	return true
}

// String 文本形式的战绩一览
func (m *MogiResult) String() string {
	var b strings.Builder
	for i, r := range m.Races {
		courseName := ""
		if r.Course != nil {
			courseName = r.Course.String()
		}
		fmt.Fprintf(&b, "%02d\t%s\t%s\t%d\n", i+1, courseName, r.Position, r.Score())
	}
	b.WriteString("---\n")
	if m.CurrentCourse != nil {
		fmt.Fprintf(&b, "current course: %s\n", m.CurrentCourse)
	}
	fmt.Fprintf(&b, "total score: %d\n", m.TotalScore())
	return b.String()
}
