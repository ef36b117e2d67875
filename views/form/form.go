// Package form holds the stateless form pieces shared by the wallet screens.
// Screens keep their own field values; these helpers only edit and draw them.
package form

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spaces-wallet-tui/styles"
)

// Edit applies an editing key to value. The edit is dropped when the result is
// rejected by allow. ok reports whether k was an editing key at all.
func Edit(value string, k tea.KeyMsg, allow func(string) bool) (next string, ok bool) {
	switch k.Type {
	case tea.KeyBackspace:
		r := []rune(value)
		if len(r) == 0 {
			return value, true
		}
		return string(r[:len(r)-1]), true
	case tea.KeyCtrlU:
		return "", true
	case tea.KeySpace:
		next = value + " "
	case tea.KeyRunes:
		next = value + string(k.Runes)
	default:
		return value, false
	}
	if allow != nil && !allow(next) {
		return value, true
	}
	return next, true
}

// FocusDelta maps focus movement keys to a step.
func FocusDelta(k tea.KeyMsg) (int, bool) {
	switch k.String() {
	case "tab", "down":
		return 1, true
	case "shift+tab", "up":
		return -1, true
	}
	return 0, false
}

// Cycle moves i by delta within n slots, wrapping around.
func Cycle(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// Step picks the option next to current. An unknown current selects the first.
func Step(options []string, current string, delta int) string {
	if len(options) == 0 {
		return ""
	}
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	return options[Cycle(i, delta, len(options))]
}

// Field is one text input row.
type Field struct {
	Label       string
	Placeholder string
	Value       string
	Focused     bool
	// Invalid marks a non-empty value that does not parse.
	Invalid bool
}

var (
	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.CMuted).
			Padding(0, 1)
	focusedBoxStyle = boxStyle.BorderForeground(styles.CAccent)
	invalidBoxStyle = boxStyle.BorderForeground(styles.CError)
)

func (f Field) View(width int) string {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = f.Placeholder
	ti.Width = width
	ti.SetValue(f.Value)
	box := boxStyle
	if f.Focused {
		ti.Focus()
		box = focusedBoxStyle
	}
	if f.Invalid {
		box = invalidBoxStyle
	}
	return styles.Muted(f.Label) + "\n" + box.Width(width+4).Render(ti.View())
}

// Choice renders a left/right selector over a fixed set of options.
func Choice(label, value, empty string, focused bool, width int) string {
	text := value
	if text == "" {
		text = styles.Muted(empty)
	} else {
		text = "◀ " + text + " ▶"
	}
	box := boxStyle
	if focused {
		box = focusedBoxStyle
	}
	return styles.Muted(label) + "\n" + box.Width(width+4).Render(text)
}

// Button renders the submit control. A disabled button cannot be triggered.
func Button(label string, enabled bool) string {
	if enabled {
		return styles.ButtonStyle.Render(label)
	}
	return styles.DisabledButtonStyle.Render(label)
}

// Error renders an inline error under a form. Empty input renders nothing.
func Error(err string) string {
	if err == "" {
		return ""
	}
	return styles.ErrorStyle.Render("✗ " + err)
}

// Stack joins non-empty blocks with a blank line.
func Stack(blocks ...string) string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, "\n\n")
}
