package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/timejar/internal/jar"
)

var errNotDigits = errors.New("minutes must be digits")

type focus int

const (
	focusMinutes focus = iota
	focusHistory
	focusEdit
)

// TransferModel is the time jar widget: two gauges, the minutes field and
// the recent history with inline editing.
type TransferModel struct {
	state *jar.State
	title string
	limit int

	minutes textinput.Model
	edit    textinput.Model

	focus     focus
	cursor    int // position in the displayed entries
	editIndex int // index into the full history
	err       error
	quitting  bool
}

// NewTransferModel returns a widget over state showing the last limit records.
func NewTransferModel(state *jar.State, title string, limit int) *TransferModel {
	minutes := textinput.New()
	minutes.Placeholder = "Enter minutes"
	minutes.CharLimit = 9
	minutes.Width = 14
	minutes.Validate = digitsOnly
	minutes.Cursor.Style = focusedStyle
	minutes.Focus()

	edit := textinput.New()
	edit.Prompt = "Edit value: "
	edit.CharLimit = 32
	edit.Width = 12
	edit.Cursor.Style = focusedStyle

	return &TransferModel{
		state:   state,
		title:   title,
		limit:   limit,
		minutes: minutes,
		edit:    edit,
	}
}

func (m *TransferModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	if key.String() == "ctrl+c" {
		m.quitting = true

		return m, tea.Quit
	}

	switch m.focus {
	case focusHistory:
		return m.updateHistory(key)
	case focusEdit:
		return m.updateEdit(key)
	default:
		return m.updateMinutes(key)
	}
}

func (m *TransferModel) updateMinutes(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.quitting = true

		return m, tea.Quit

	case "q":
		if m.minutes.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

	case "enter":
		m.transfer()

		return m, nil

	case "tab", "shift+tab", "down":
		if len(m.entries()) == 0 {
			return m, nil
		}

		m.minutes.Blur()
		m.focus = focusHistory

		return m, nil
	}

	if key.Type == tea.KeyRunes && digitsOnly(string(key.Runes)) != nil {
		return m, nil
	}

	var cmd tea.Cmd

	m.minutes, cmd = m.minutes.Update(key)

	return m, cmd
}

func (m *TransferModel) updateHistory(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.entries()

	switch key.String() {
	case "q", "esc":
		m.quitting = true

		return m, tea.Quit

	case "up", "k":
		if m.cursor == 0 {
			m.focus = focusMinutes

			return m, m.minutes.Focus()
		}

		m.cursor--

	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}

	case "tab", "shift+tab":
		m.focus = focusMinutes

		return m, m.minutes.Focus()

	case "e", "enter":
		if m.cursor >= len(entries) {
			return m, nil
		}

		entry := entries[m.cursor]
		m.editIndex = entry.Index
		m.edit.SetValue(entry.Record.Value.String())
		m.edit.CursorEnd()
		m.err = nil
		m.focus = focusEdit

		return m, m.edit.Focus()
	}

	return m, nil
}

func (m *TransferModel) updateEdit(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.err = nil
		m.edit.Blur()
		m.focus = focusHistory

		return m, nil

	case "enter":
		if err := m.state.EditHistory(m.editIndex, m.edit.Value()); err != nil {
			m.err = err

			return m, nil
		}

		m.err = nil
		m.edit.Blur()
		m.focus = focusHistory

		return m, nil
	}

	var cmd tea.Cmd

	m.edit, cmd = m.edit.Update(key)

	return m, cmd
}

// transfer applies the minutes field. Rejected input is ignored without
// feedback and stays in the field.
func (m *TransferModel) transfer() {
	if err := m.state.Transfer(m.minutes.Value()); err != nil {
		slog.Debug("transfer rejected", "error", err)

		return
	}

	m.minutes.Reset()
	m.cursor = 0
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return errNotDigits
		}
	}

	return nil
}

func (m *TransferModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds [2]tea.Cmd

	m.minutes, cmds[0] = m.minutes.Update(msg)
	m.edit, cmds[1] = m.edit.Update(msg)

	return tea.Batch(cmds[:]...)
}

func (m *TransferModel) entries() []jar.Entry {
	return jar.Recent(m.state.History(), m.limit)
}

func (m *TransferModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderJar("Jar 1", m.state.Jar1()),
		renderJar("Jar 2", m.state.Jar2()),
	))
	b.WriteString("\n\n")

	button := blurredButtonStyle.Render("Transfer")
	if m.focus == focusMinutes {
		button = buttonStyle.Render("Transfer")
	}

	b.WriteString(m.minutes.View())
	b.WriteString("  ")
	b.WriteString(button)
	b.WriteString("\n")

	b.WriteString(historyHeaderStyle.Render("History"))
	b.WriteString("\n")

	for i, e := range m.entries() {
		line := e.Describe() + " " + dimStyle.Render("[Edit]")

		switch {
		case m.focus == focusEdit && i == m.cursor:
			line = selectedItemStyle.Render("> "+e.Describe()) + "\n  " + m.edit.View()
		case m.focus != focusMinutes && i == m.cursor:
			line = selectedItemStyle.Render("> " + line)
		default:
			line = itemStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help()))

	return b.String()
}

func (m *TransferModel) help() string {
	switch m.focus {
	case focusHistory:
		return " ↑/↓: select • e/enter: edit • tab: minutes • q: quit"
	case focusEdit:
		return " enter: save • esc: cancel"
	default:
		return " enter: transfer • tab: history • q/esc: quit"
	}
}

func renderJar(name string, amount float64) string {
	pct := jar.FillPercentage(amount)

	return jarStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		jarTitleStyle.Render(name),
		renderGauge(pct),
		jar.FormatHoursMinutes(amount),
		dimStyle.Render(jar.FormatPercentage(pct)),
	))
}
