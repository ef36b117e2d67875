package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"spaces-wallet-tui/core"
	"spaces-wallet-tui/styles"
)

// -------------------- DIALOGS --------------------
// Modal dialogs answering the reducers' file and confirmation commands.

type filePicker struct {
	purpose core.FilePurpose
	fp      filepicker.Model
}

type savePrompt struct {
	purpose  core.FilePurpose
	contents string
	input    textinput.Model
	err      string
}

type confirmDialog struct {
	form    *huh.Form
	confirm bool
}

func (m *model) closeDialogs() {
	m.picker, m.saver, m.confirm = nil, nil, nil
}

func (m *model) dialogOpen() bool {
	return m.picker != nil || m.saver != nil || m.confirm != nil
}

func (m *model) openPicker(purpose core.FilePurpose) tea.Cmd {
	m.closeDialogs()
	fp := filepicker.New()
	fp.AllowedTypes = []string{".json"}
	if dir, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = dir
	}
	fp.AutoHeight = false
	fp.Height = max(5, m.h-12)
	m.picker = &filePicker{purpose: purpose, fp: fp}
	return fp.Init()
}

func (m *model) openSaver(c core.SaveFile) tea.Cmd {
	m.closeDialogs()
	in := textinput.New()
	in.Prompt = "Save to: "
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.Width = 56
	path := c.Name
	if dir, err := os.Getwd(); err == nil {
		path = filepath.Join(dir, c.Name)
	}
	in.SetValue(path)
	m.saver = &savePrompt{purpose: c.Purpose, contents: c.Contents, input: in}
	return in.Focus()
}

func (m *model) openConfirm() tea.Cmd {
	m.closeDialogs()
	d := &confirmDialog{}
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset backend?").
				Description("The saved endpoint and wallet selection are forgotten and setup starts over.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&d.confirm),
		),
	).WithTheme(huh.ThemeCatppuccin())
	m.confirm = d
	return d.form.Init()
}

// updateDialog routes msg to the open dialog. It reports false when no dialog
// consumed the message.
func (m *model) updateDialog(msg tea.Msg) (tea.Cmd, bool) {
	switch {
	case m.picker != nil:
		return m.updatePicker(msg), true
	case m.saver != nil:
		return m.updateSaver(msg)
	case m.confirm != nil:
		return m.updateConfirm(msg), true
	}
	return nil, false
}

func (m *model) updatePicker(msg tea.Msg) tea.Cmd {
	p := m.picker
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.picker = nil
		return m.dispatch(core.FileLoaded{Purpose: p.purpose, Cancelled: true})
	}
	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)
	if ok, path := p.fp.DidSelectFile(msg); ok {
		m.picker = nil
		m.logger.Debug("file picked", "path", path)
		return readFile(p.purpose, path)
	}
	return cmd
}

func (m *model) updateSaver(msg tea.Msg) (tea.Cmd, bool) {
	s := m.saver
	var cmd tea.Cmd
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		s.input, cmd = s.input.Update(msg)
		return cmd, true
	}
	switch k.String() {
	case "esc":
		m.saver = nil
		return m.dispatch(core.FileSaved{Purpose: s.purpose, Cancelled: true}), true
	case "enter":
		path := s.input.Value()
		if path == "" {
			s.err = "a path is required"
			return nil, true
		}
		m.saver = nil
		return writeFile(s.purpose, path, s.contents), true
	}
	s.input, cmd = s.input.Update(msg)
	return cmd, true
}

func (m *model) updateConfirm(msg tea.Msg) tea.Cmd {
	d := m.confirm
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.confirm = nil
		return nil
	}
	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}
	switch d.form.State {
	case huh.StateCompleted:
		m.confirm = nil
		if d.confirm {
			return m.dispatch(core.ResetBackendConfirmed{})
		}
		return nil
	case huh.StateAborted:
		m.confirm = nil
		return nil
	}
	return cmd
}

func (m *model) renderDialog() string {
	var body string
	switch {
	case m.picker != nil:
		body = styles.TitleStyle.Render("Pick a file") + "\n\n" +
			m.picker.fp.View() + "\n\n" + styles.Muted("enter select   esc cancel")
	case m.saver != nil:
		body = styles.TitleStyle.Render("Save file") + "\n\n" + m.saver.input.View()
		if m.saver.err != "" {
			body += "\n" + styles.ErrorStyle.Render(m.saver.err)
		}
		body += "\n\n" + styles.Muted("enter save   esc cancel")
	case m.confirm != nil:
		body = m.confirm.form.View()
	}
	dialog := styles.PanelStyle.Width(min(72, max(0, m.w-4))).Render(body)
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, dialog)
}
