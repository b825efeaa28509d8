// Package tui provides the interactive Bubble Tea word finder.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordfind/internal/finder"
	"github.com/verte-zerg/wordfind/internal/stats"
)

const (
	fieldPattern = iota
	fieldInclude
	fieldExclude
)

const suggestedLetters = 5

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	placedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6AAA64")).Bold(true)
	presentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C9B458"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// resultsMsg carries the outcome of one query back to the model that issued it.
type resultsMsg struct {
	seq         int
	constraints finder.Constraints
	words       []string
	err         error
}

// Model implements the Bubble Tea finder UI.
type Model struct {
	finder *finder.Finder

	inputs []textinput.Model
	focus  int

	results     viewport.Model
	words       []string
	constraints finder.Constraints
	report      stats.Report
	errMsg      string

	// seq identifies the most recent query; older results are dropped.
	seq int

	width  int
	height int
}

// NewModel constructs a finder UI seeded with an initial query.
func NewModel(f *finder.Finder, initial finder.Request) *Model {
	m := &Model{
		finder:  f,
		results: viewport.New(0, 0),
	}
	m.inputs = []textinput.Model{
		newInput("Pattern: ", "a..le", initial.Pattern),
		newInput("Include: ", "letters that must appear", initial.Include),
		newInput("Exclude: ", "letters that must not appear", initial.Exclude),
	}
	m.setFocus(fieldPattern)
	return m
}

func newInput(prompt, placeholder, value string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)
	input.SetValue(value)
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.query())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case resultsMsg:
		m.applyResults(msg)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			return m, m.setFocus(m.focus + 1)
		case tea.KeyShiftTab:
			return m, m.setFocus(m.focus - 1)
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
		before := m.inputs[m.focus].Value()
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() == before {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.query())
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return header + "\n\n" + m.renderResults(0) + "\n" + footer
	}
	bodyHeight := m.bodyHeight()
	body := fitLines(m.results.View(), m.width, bodyHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) request() finder.Request {
	return finder.Request{
		Pattern: m.inputs[fieldPattern].Value(),
		Include: m.inputs[fieldInclude].Value(),
		Exclude: m.inputs[fieldExclude].Value(),
	}
}

// query snapshots the current inputs and runs the filter off the UI loop.
func (m *Model) query() tea.Cmd {
	m.seq++
	seq := m.seq
	req := m.request()
	words := m.finder.Words()
	return func() tea.Msg {
		c, err := finder.Compile(req)
		if err != nil {
			return resultsMsg{seq: seq, err: err}
		}
		return resultsMsg{seq: seq, constraints: c, words: finder.Filter(words, c)}
	}
}

func (m *Model) applyResults(msg resultsMsg) {
	if msg.seq != m.seq {
		return
	}
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		if m.height > 0 {
			m.results.Height = m.bodyHeight()
		}
		return
	}
	m.errMsg = ""
	m.words = msg.words
	m.constraints = msg.constraints
	m.report = stats.BuildReport(msg.words, msg.constraints.Include, suggestedLetters)
	if m.height > 0 {
		m.results.Height = m.bodyHeight()
	}
	m.refreshResults()
}

func (m *Model) setFocus(idx int) tea.Cmd {
	count := len(m.inputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.focus = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) headerHeight() int {
	return lipgloss.Height(m.renderHeader())
}

func (m *Model) bodyHeight() int {
	h := m.height - m.headerHeight() - lipgloss.Height(m.renderFooter())
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	for i := range m.inputs {
		promptWidth := lipgloss.Width(m.inputs[i].Prompt)
		m.inputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
	m.results.Width = m.width
	m.results.Height = m.bodyHeight()
	m.refreshResults()
}

func (m *Model) refreshResults() {
	m.results.SetContent(m.renderResults(m.width))
	m.results.GotoTop()
}

func (m *Model) renderHeader() string {
	lines := []string{titleStyle.Render("wordfind")}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m *Model) renderResults(width int) string {
	if len(m.words) == 0 {
		return emptyStyle.Render("No matching words.")
	}
	if width <= 0 {
		width = 80
	}
	return layoutColumns(styleWords(m.words, m.constraints), width)
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("%d matches", m.report.Candidates)}
	if len(m.report.Letters) > 0 {
		letters := make([]string, 0, len(m.report.Letters))
		for _, c := range m.report.Letters {
			letters = append(letters, string(c.Letter))
		}
		segments = append(segments, "Try: "+strings.Join(letters, " "))
	}
	segments = append(segments, "tab: next field  up/down: scroll  esc: quit")
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg) + "\n" + footer
	}
	return footer
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
