package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/ui/theme"
)

// MultiChoice is a lettered option picker. It does not know which option
// is right; Reveal marks the correct and chosen options after grading.
type MultiChoice struct {
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
	// CorrectIndex is -1 until Reveal.
	CorrectIndex int
}

// NewMultiChoice creates a picker over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Update handles arrows, Enter, and the letter or digit shortcuts.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
		return m, nil
	}

	if i, ok := shortcutIndex(key, len(m.Options)); ok {
		m.Selected = i
		m.Submitted = true
		m.ChosenIndex = i
	}
	return m, nil
}

// shortcutIndex maps "1".."9" and "a".."i" to an option index.
func shortcutIndex(key string, n int) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	var i int
	switch c := key[0]; {
	case c >= '1' && c <= '9':
		i = int(c - '1')
	case c >= 'a' && c <= 'i':
		i = int(c - 'a')
	case c >= 'A' && c <= 'I':
		i = int(c - 'A')
	default:
		return 0, false
	}
	return i, i < n
}

// Reveal marks the correct option for display.
func (m *MultiChoice) Reveal(correct int) {
	m.CorrectIndex = correct
}

// Reset reopens the picker.
func (m *MultiChoice) Reset() {
	m.Submitted = false
	m.ChosenIndex = -1
	m.CorrectIndex = -1
}

// Label returns the letter shown beside option i.
func Label(i int) string {
	return string(rune('A' + i))
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, Label(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.CorrectIndex >= 0 && i == m.CorrectIndex:
			style = style.Foreground(theme.Success).Bold(true)
		case m.Submitted && i == m.ChosenIndex:
			style = style.Foreground(theme.Error).Bold(true)
		case m.Submitted:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
