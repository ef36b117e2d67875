package log

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/styles"
)

// reserved is what the header, tabs, nav and panel borders take from the screen.
const reserved = 12

// PanelHeight is the number of log lines shown for a terminal of the given
// height: at most a third of it and never more than 15.
func PanelHeight(height int) int {
	available := helpers.Max(3, height-reserved)
	return helpers.Min(available, helpers.Max(3, helpers.Min(height/3, 15)))
}

// Render renders the log panel. vp must already be sized with PanelHeight.
func Render(width int, ready bool, spinnerView string, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Log")

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(vp.Height + 2) // title and spacing

	if !ready {
		return border.Render(title + "\n\n" + "initializing...\n" + spinnerView)
	}

	// scroll position once the log outgrows the panel
	if vp.TotalLineCount() > vp.Height {
		title += styles.MutedStyle.Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}
	return border.Render(title + "\n\n" + vp.View())
}
