package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spaces-wallet-tui/core"
	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/styles"
	logview "spaces-wallet-tui/views/log"
)

// -------------------- VIEW --------------------

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8) // panel padding

	title := styles.TitleStyle.Render(helpers.FadeString("spaces wallet", styles.FadeFrom, styles.FadeTo))

	var left string
	if m.main != nil {
		wallet := m.main.Wallets().CurrentLabel()
		if wallet == "" {
			wallet = "no wallet"
		}
		left = styles.SelectedStyle.Render("Wallet: ") + styles.ValueStyle.Render(wallet)
	} else {
		left = styles.Muted("Setup")
	}

	var status string
	switch {
	case m.client == nil:
		status = lipgloss.NewStyle().Foreground(styles.CError).Bold(true).Render("○ Disconnected")
	case m.main != nil && m.main.Banner() != "":
		status = lipgloss.NewStyle().Foreground(styles.CError).Bold(true).Render("○ Unreachable")
	default:
		text := "● " + m.cfg.Network
		if m.main != nil && m.main.TipHeight() > 0 {
			text += fmt.Sprintf(" #%d", m.main.TipHeight())
		}
		status = lipgloss.NewStyle().Foreground(styles.CGood).Bold(true).Render(text)
	}

	leftWidth := lipgloss.Width(left)
	statusWidth := lipgloss.Width(status)
	titleWidth := lipgloss.Width(title)

	var headerLine string
	if leftWidth+statusWidth+titleWidth+4 > availableWidth {
		headerLine = left + "\n" + title + "\n" + status
	} else {
		// Wallet | Title (centered) | Status
		remaining := availableWidth - leftWidth - statusWidth - titleWidth
		leftPadding := remaining / 2
		rightPadding := remaining - leftPadding
		headerLine = left + strings.Repeat(" ", max(1, leftPadding)) + title +
			strings.Repeat(" ", max(1, rightPadding)) + status
	}

	separator := lipgloss.NewStyle().
		Foreground(styles.CBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

func (m *model) tabs() string {
	active := m.main.Screen()
	parts := make([]string, 0, len(core.Screens))
	for i, s := range core.Screens {
		label := fmt.Sprintf("F%d %s", i+1, s)
		if s == active {
			parts = append(parts, styles.ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, styles.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *model) View() string {
	if m.dialogOpen() {
		return styles.AppStyle.Render(m.renderDialog())
	}

	headerPanel := styles.PanelStyle.Width(max(0, m.w-2)).Render(m.globalHeader())
	sections := []string{headerPanel}

	var page, nav string
	if m.main != nil {
		if b := m.main.Banner(); b != "" {
			sections = append(sections, styles.BannerStyle.Width(max(0, m.w-2)).Render("Backend unreachable: "+b))
		}
		if s := m.main.SyncStatus(); s != "" {
			sections = append(sections, styles.SyncStyle.Width(max(0, m.w-2)).Render(s))
		}
		sections = append(sections, m.tabs())
		page = m.main.View(max(0, m.w-8))
		nav = m.main.Nav(max(0, m.w-2))
	} else if m.setup != nil {
		page = m.setup.View(m.spin.View(), max(0, m.w-8))
		nav = m.setup.Nav(max(0, m.w-2))
	}
	sections = append(sections, styles.PanelStyle.Width(max(0, m.w-2)).Render(page), nav)

	if m.logEnabled {
		m.logViewport.Height = logview.PanelHeight(m.h)
		sections = append(sections, logview.Render(m.w, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
