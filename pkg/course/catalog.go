package course

import (
	"github.com/kartrec/kartrec/pkg/jptext"
)

// Catalog 赛道目录：进程启动时构建一次，之后只读，
// 可以被多个 goroutine 并发查询。
type Catalog struct {
	courses   []Course
	bySeries  map[Series]map[string]Course // 规范名 → 赛道，按系列分区
	byDisplay map[string]Course            // 显示字符串 → 赛道
	shorthand map[string]string            // 速记别名 → 显示字符串
}

var defaultCatalog = NewCatalog()

// Default 获取内置目录
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog 从内置数据构建目录
func NewCatalog() *Catalog {
	c := &Catalog{
		bySeries:  make(map[Series]map[string]Course),
		byDisplay: make(map[string]Course),
		shorthand: make(map[string]string),
	}
	for _, s := range AllSeries {
		c.bySeries[s] = make(map[string]Course)
	}

	for _, d := range courseData {
		course := Course{Name: d.name, Series: d.series}
		c.courses = append(c.courses, course)
		c.bySeries[d.series][jptext.Normalize(d.name)] = course
		c.byDisplay[course.String()] = course
		for _, alias := range d.aliases {
			c.shorthand[alias] = course.String()
		}
	}
	return c
}

// Courses 返回目录中的全部赛道（游戏内杯赛顺序）
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// ByDisplay 按显示字符串查找赛道
func (c *Catalog) ByDisplay(display string) (Course, bool) {
	course, ok := c.byDisplay[display]
	return course, ok
}

// ExpandShorthand 展开速记别名（如 "ﾈｼﾞﾏﾝ" → "ねじれマンション"），
// 未命中时原样返回。
func (c *Catalog) ExpandShorthand(input string) string {
	if display, ok := c.shorthand[input]; ok {
		return display
	}
	return input
}
