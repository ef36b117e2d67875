package settings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

// State is the settings screen: wallet management and backend reset.
type State struct {
	cursor   int
	creating bool
	name     string
	err      string
	notice   string
}

func (s *State) Reset() { *s = State{cursor: s.cursor} }

func (s *State) SetError(err string) {
	s.err = err
	s.notice = ""
}

func (s *State) SetNotice(notice string) {
	s.notice = notice
	s.err = ""
}

func (s State) Error() string { return s.err }

func (s State) Notice() string { return s.notice }

// Creating reports whether the new wallet name prompt is open.
func (s State) Creating() bool { return s.creating }

type Msg interface{ settingsMsg() }

type (
	CursorMove        struct{ Delta, Count int }
	SelectPress       struct{ Wallet string }
	ExportPress       struct{ Wallet string }
	CreatePress       struct{}
	NameInput         struct{ Value string }
	CreateSubmit      struct{}
	CancelCreate      struct{}
	ImportPress       struct{}
	WalletFileLoaded  struct{ Contents string }
	ResetBackendPress struct{}
)

func (CursorMove) settingsMsg()        {}
func (SelectPress) settingsMsg()       {}
func (ExportPress) settingsMsg()       {}
func (CreatePress) settingsMsg()       {}
func (NameInput) settingsMsg()         {}
func (CreateSubmit) settingsMsg()      {}
func (CancelCreate) settingsMsg()      {}
func (ImportPress) settingsMsg()       {}
func (WalletFileLoaded) settingsMsg()  {}
func (ResetBackendPress) settingsMsg() {}

type Action interface{ settingsAction() }

type (
	SetCurrentWallet struct{ Wallet string }
	ExportWallet     struct{ Wallet string }
	CreateWallet     struct{ Wallet string }
	PickFile         struct{}
	ImportWallet     struct{ Contents string }
	ResetBackend     struct{}
)

func (SetCurrentWallet) settingsAction() {}
func (ExportWallet) settingsAction()     {}
func (CreateWallet) settingsAction()     {}
func (PickFile) settingsAction()         {}
func (ImportWallet) settingsAction()     {}
func (ResetBackend) settingsAction()     {}

func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case CursorMove:
		s.cursor = helpers.Clamp(s.cursor+msg.Delta, 0, msg.Count-1)
	case SelectPress:
		if msg.Wallet != "" {
			return SetCurrentWallet{Wallet: msg.Wallet}
		}
	case ExportPress:
		if msg.Wallet != "" {
			return ExportWallet{Wallet: msg.Wallet}
		}
	case CreatePress:
		s.creating = true
		s.name = ""
		s.err = ""
	case NameInput:
		if helpers.IsSLabelInput(msg.Value) {
			s.name = msg.Value
		}
	case CreateSubmit:
		name, ok := helpers.ParseSLabel(s.name)
		if !ok {
			return nil
		}
		s.creating = false
		s.name = ""
		return CreateWallet{Wallet: name}
	case CancelCreate:
		s.creating = false
		s.name = ""
	case ImportPress:
		return PickFile{}
	case WalletFileLoaded:
		return ImportWallet{Contents: msg.Contents}
	case ResetBackendPress:
		return ResetBackend{}
	}
	return nil
}

func (s State) selected(wallets []string) string {
	if len(wallets) == 0 {
		return ""
	}
	return wallets[helpers.Clamp(s.cursor, 0, len(wallets)-1)]
}

// Key maps a key press to a message.
func (s State) Key(k tea.KeyMsg, wallets []string) (Msg, bool) {
	if s.creating {
		switch k.String() {
		case "enter":
			return CreateSubmit{}, true
		case "esc":
			return CancelCreate{}, true
		}
		if v, ok := form.Edit(s.name, k, helpers.IsSLabelInput); ok {
			return NameInput{Value: v}, true
		}
		return nil, false
	}
	switch k.String() {
	case "up", "k":
		return CursorMove{Delta: -1, Count: len(wallets)}, true
	case "down", "j":
		return CursorMove{Delta: 1, Count: len(wallets)}, true
	case "enter", " ":
		return SelectPress{Wallet: s.selected(wallets)}, true
	case "e":
		return ExportPress{Wallet: s.selected(wallets)}, true
	case "a":
		return CreatePress{}, true
	case "i":
		return ImportPress{}, true
	case "R":
		return ResetBackendPress{}, true
	}
	return nil, false
}

// View renders the wallet list with the current wallet marked.
func (s State) View(wallets []string, current, endpoint string, width int) string {
	lines := []string{styles.TitleStyle.Render("Wallets")}

	if len(wallets) == 0 {
		lines = append(lines, styles.Muted("No wallets on this node. Press ")+styles.Key("a")+styles.Muted(" to create one."))
	}
	for i, w := range wallets {
		marker := lipgloss.NewStyle().Foreground(styles.CMuted).Render("○ ")
		if w == current {
			marker = lipgloss.NewStyle().Foreground(styles.CGood).Render("● ")
		}
		name := lipgloss.NewStyle().Foreground(styles.CText).Render(w)
		if i == helpers.Clamp(s.cursor, 0, len(wallets)-1) {
			marker = styles.Marker(true)
			name = styles.SelectedStyle.Render(w)
		}
		lines = append(lines, marker+name)
	}

	blocks := []string{strings.Join(lines, "\n")}
	if s.creating {
		_, ok := helpers.ParseSLabel(s.name)
		blocks = append(blocks, form.Field{Label: "New wallet name", Placeholder: "savings", Value: s.name, Focused: true, Invalid: s.name != "" && !ok}.View(helpers.Min(width-8, 40)))
	}
	blocks = append(blocks,
		styles.TitleStyle.Render("Backend")+"\n"+styles.LabelStyle.Render("spaced")+styles.Muted(endpoint),
		form.Error(s.err),
	)
	if s.notice != "" {
		blocks = append(blocks, styles.GoodStyle.Render("✓ "+s.notice))
	}
	return form.Stack(blocks...)
}

// Nav returns the navigation bar for settings view
func (s State) Nav(width int) string {
	var left string
	if s.creating {
		left = strings.Join([]string{
			styles.Key("Enter") + " create",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " use wallet",
			styles.Key("a") + " create",
			styles.Key("i") + " import",
			styles.Key("e") + " export",
			styles.Key("R") + " reset backend",
		}, "   ")
	}
	return styles.NavStyle.Width(width).Render(left)
}
