package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/core"
)

// -------------------- UPDATE --------------------

// dispatch feeds msg to the running reducer and executes what it asks for.
func (m *model) dispatch(msg core.Message) tea.Cmd {
	var e core.Effect
	switch m.phase {
	case core.PhaseMain:
		if m.main == nil {
			return nil
		}
		e = m.main.Update(msg)
	default:
		if m.setup == nil {
			return nil
		}
		e = m.setup.Update(msg)
	}
	cmd := m.apply(e)
	m.updateLogViewport()
	return cmd
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logInitMsg:
		m.logReady = true
		m.logger.Info("Logger enabled")
		m.updateLogViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		// width accounts for border and padding
		m.logViewport.Width = max(0, msg.Width-6)
		if m.picker != nil {
			m.picker.fp.Height = max(5, msg.Height-12)
		}
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		if msg.gen != m.tickGen || m.main == nil {
			return m, nil
		}
		return m, tea.Batch(m.dispatch(core.Tick{}), m.nextTick())

	case connectedMsg:
		if msg.result.Err == nil {
			m.client.Close()
			m.client = msg.client
		}
		return m, m.dispatch(msg.result)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if cmd, ok := m.updateDialog(msg); ok {
			return m, cmd
		}
		return m, m.handleKey(msg)

	case core.Message:
		return m, m.dispatch(msg)
	}

	// dialogs need their internal messages (directory reads, cursor blink)
	if cmd, ok := m.updateDialog(msg); ok {
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(k tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(k, m.keys.Log):
		m.logEnabled = !m.logEnabled
		if m.logEnabled {
			m.logReady = false
			return tea.Batch(func() tea.Msg { return logInitMsg{} }, m.logSpinner.Tick)
		}
		return nil
	case key.Matches(k, m.keys.LogUp), key.Matches(k, m.keys.LogDown):
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(k)
			return cmd
		}
		return nil
	}

	if m.phase == core.PhaseSetup {
		if m.setup == nil {
			return nil
		}
		if msg, ok := m.setup.Key(k); ok {
			return m.dispatch(msg)
		}
		return nil
	}

	if m.main == nil {
		return nil
	}
	for i, b := range m.keys.Screens {
		if key.Matches(k, b) {
			return m.dispatch(core.NavigateTo{Route: core.RouteTo(core.Screens[i])})
		}
	}
	if msg, ok := m.main.Key(k); ok {
		return m.dispatch(msg)
	}
	return nil
}
