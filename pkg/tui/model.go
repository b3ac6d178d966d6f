// Package tui 提供战绩查看与手工修正的终端界面。
// 界面不直接改写聚合，编辑结果整体克隆后送入编辑通道，
// 由消费循环采纳。
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kartrec/kartrec/pkg/course"
	"github.com/kartrec/kartrec/pkg/mogi"
)

type mode int

const (
	modeView mode = iota
	modeEditCourse
	modeEditRace
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	courseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FBF7F"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// updateMsg 消费循环广播的最新聚合
type updateMsg struct {
	result *mogi.MogiResult
}

// Model 战绩界面
type Model struct {
	catalog *course.Catalog
	result  *mogi.MogiResult
	updates <-chan *mogi.MogiResult
	edits   chan<- *mogi.MogiResult

	mode   mode
	input  textinput.Model
	status string

	width  int
	height int
}

// NewModel 创建界面模型
func NewModel(catalog *course.Catalog, updates <-chan *mogi.MogiResult, edits chan<- *mogi.MogiResult) *Model {
	input := textinput.New()
	input.CharLimit = 64
	return &Model{
		catalog: catalog,
		result:  mogi.New(),
		updates: updates,
		edits:   edits,
		input:   input,
	}
}

// Init 订阅聚合更新
func (m *Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		res, ok := <-m.updates
		if !ok {
			return tea.Quit()
		}
		return updateMsg{result: res}
	}
}

// Update 处理按键与聚合更新
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case updateMsg:
		m.result = msg.result
		return m, m.waitForUpdate()
	case tea.KeyMsg:
		if m.mode != modeView {
			return m.updateEditing(msg)
		}
		return m.updateViewing(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		m.mode = modeEditCourse
		m.status = ""
		m.input.Placeholder = "赛道名（可用简称）"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		if len(m.result.Races) == 0 {
			m.status = "还没有比赛记录"
			return m, nil
		}
		m.mode = modeEditRace
		m.status = ""
		m.input.Placeholder = "场次 名次（如 3 12）"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "r":
		m.submit(mogi.New())
		m.status = "已清空本次战绩"
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeView
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		switch m.mode {
		case modeEditCourse:
			m.commitCourse(value)
		case modeEditRace:
			m.commitRace(value)
		}
		m.mode = modeView
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitCourse 按简称展开后在目录里查找，命中才提交
func (m *Model) commitCourse(value string) {
	if value == "" {
		return
	}
	display := m.catalog.ExpandShorthand(value)
	c, ok := m.catalog.ByDisplay(display)
	if !ok {
		m.status = fmt.Sprintf("未知赛道: %s", display)
		return
	}

	edited := m.result.Clone()
	edited.SetCurrentCourse(c)
	m.submit(edited)
	m.status = fmt.Sprintf("当前赛道改为 %s", c)
}

// commitRace 按 "场次 名次" 修改已有记录
func (m *Model) commitRace(value string) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		m.status = "格式: 场次 名次"
		return
	}
	index, err := strconv.Atoi(fields[0])
	if err != nil || index < 1 || index > len(m.result.Races) {
		m.status = fmt.Sprintf("场次应在 1-%d 之间", len(m.result.Races))
		return
	}
	position, err := mogi.ParsePosition(fields[1])
	if err != nil {
		m.status = fmt.Sprintf("名次不合法: %s", fields[1])
		return
	}

	edited := m.result.Clone()
	edited.SetPosition(index-1, position)
	m.submit(edited)
	m.status = fmt.Sprintf("第 %d 场改为 %s位", index, position)
}

// submit 非阻塞提交编辑，消费循环逐帧轮询编辑通道
func (m *Model) submit(edited *mogi.MogiResult) {
	select {
	case m.edits <- edited:
	default:
		m.status = "上一次编辑尚未生效，请稍后再试"
	}
}

// View 渲染战绩列表
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("kartrec"))
	b.WriteString("\n\n")

	for i, race := range m.result.Races {
		courseName := "?"
		if race.Course != nil {
			courseName = race.Course.String()
		}
		line := fmt.Sprintf("%2d  %s  %s位  %dpt",
			i+1, courseStyle.Render(courseName), race.Position, race.Score())
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.result.CurrentCourse != nil {
		b.WriteString(pendingStyle.Render(
			fmt.Sprintf("%2d  %s  比赛中", len(m.result.Races)+1, m.result.CurrentCourse)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("合计 %dpt", m.result.TotalScore())))
	b.WriteString("\n")

	if m.mode != modeView {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("c 补录赛道  e 修改名次  r 清空  q 退出"))
	return b.String()
}
