// Package ui implements the interactive calculator loop as a Bubble Tea
// model. Evaluation and persistence are injected, so the model stays free of
// pipeline and storage concerns.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"shunt/internal/history"
)

// EvalFunc вычисляет одно выражение
type EvalFunc func(expr string) (float64, error)

// FormatFunc форматирует результат для вывода
type FormatFunc func(value float64) string

// EntrySink receives every finished evaluation, e.g. to persist history.
type EntrySink func(entry history.Entry)

type replLine struct {
	expr   string
	output string
	failed bool
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// ReplModel renders the scrollback of past evaluations above an input line.
type ReplModel struct {
	input  textinput.Model
	lines  []replLine
	eval   EvalFunc
	format FormatFunc
	sink   EntrySink
	width  int
	height int
}

// NewReplModel returns the REPL model. Past history entries seed the
// scrollback so a session continues where the previous one stopped.
func NewReplModel(eval EvalFunc, format FormatFunc, sink EntrySink, past []history.Entry) *ReplModel {
	ti := textinput.New()
	ti.Placeholder = "2*(12+6)"
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = 256
	ti.Focus()

	lines := make([]replLine, 0, len(past))
	for _, e := range past {
		lines = append(lines, entryToLine(e, format))
	}

	return &ReplModel{
		input:  ti,
		lines:  lines,
		eval:   eval,
		format: format,
		sink:   sink,
		width:  80,
		height: 24,
	}
}

func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) submit() (tea.Model, tea.Cmd) {
	// грамматика выражений пробелов не знает, по краям срезаем сами
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		return m, nil
	}
	if expr == "exit" || expr == "quit" {
		return m, tea.Quit
	}

	entry := history.Entry{Expression: expr, EvaluatedAt: time.Now()}
	value, err := m.eval(expr)
	if err != nil {
		entry.ErrMessage = err.Error()
	} else {
		entry.Value = value
	}

	if m.sink != nil {
		m.sink(entry)
	}
	m.lines = append(m.lines, entryToLine(entry, m.format))
	m.input.Reset()
	return m, nil
}

func (m *ReplModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("shunt"))
	b.WriteString(faintStyle.Render("  interactive calculator"))
	b.WriteString("\n\n")

	// в скроллбек помещается всё, что осталось после заголовка и ввода
	visible := m.lines
	if capacity := m.height - 5; capacity > 0 && len(visible) > capacity {
		visible = visible[len(visible)-capacity:]
	}
	for _, line := range visible {
		rendered := promptStyle.Render("> ") + line.expr + " " + line.output
		b.WriteString(truncate(rendered, m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter to evaluate · ctrl+d to quit"))
	return b.String()
}

func entryToLine(e history.Entry, format FormatFunc) replLine {
	if e.Failed() {
		return replLine{
			expr:   e.Expression,
			output: errorStyle.Render("error: " + e.ErrMessage),
			failed: true,
		}
	}
	return replLine{
		expr:   e.Expression,
		output: resultStyle.Render("= " + format(e.Value)),
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
