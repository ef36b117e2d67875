package setup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

// State is the backend setup screen shown before any wallet is open.
type State struct {
	url        string
	network    string
	focus      int
	err        string
	connecting bool
	connected  bool
}

func New(url, network string) State {
	return State{url: url, network: network}
}

func (s State) URL() string     { return s.url }
func (s State) Network() string { return s.network }

func (s *State) SetError(err string) {
	s.err = err
	s.connecting = false
}

func (s State) Error() string { return s.err }

func (s *State) SetConnecting() {
	s.connecting = true
	s.err = ""
}

// SetConnected moves to the wallet step: the node is reachable but has no wallet.
func (s *State) SetConnected() {
	s.connecting = false
	s.connected = true
}

func (s State) Connected() bool { return s.connected }

func (s State) Connecting() bool { return s.connecting }

type Msg interface{ setupMsg() }

type (
	URLInput        struct{ Value string }
	NetworkSelect   struct{ Network string }
	FocusMove       struct{ Delta int }
	ConnectPress    struct{}
	DisconnectPress struct{}
	CreatePress     struct{}
	ImportPress     struct{}
)

func (URLInput) setupMsg()        {}
func (NetworkSelect) setupMsg()   {}
func (FocusMove) setupMsg()       {}
func (ConnectPress) setupMsg()    {}
func (DisconnectPress) setupMsg() {}
func (CreatePress) setupMsg()     {}
func (ImportPress) setupMsg()     {}

type Action interface{ setupAction() }

type (
	Connect struct {
		URL     string
		Network string
	}
	Disconnect   struct{}
	CreateWallet struct{}
	PickFile     struct{}
)

func (Connect) setupAction()      {}
func (Disconnect) setupAction()   {}
func (CreateWallet) setupAction() {}
func (PickFile) setupAction()     {}

func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case URLInput:
		s.url = msg.Value
	case NetworkSelect:
		if helpers.NetworkParams(msg.Network) != nil {
			s.network = msg.Network
		}
	case FocusMove:
		s.focus = form.Cycle(s.focus, msg.Delta, 2)
	case ConnectPress:
		if s.connecting || strings.TrimSpace(s.url) == "" {
			return nil
		}
		s.SetConnecting()
		return Connect{URL: strings.TrimSpace(s.url), Network: s.network}
	case DisconnectPress:
		s.connected = false
		s.connecting = false
		return Disconnect{}
	case CreatePress:
		if s.connected {
			return CreateWallet{}
		}
	case ImportPress:
		if s.connected {
			return PickFile{}
		}
	}
	return nil
}

func (s State) Key(k tea.KeyMsg) (Msg, bool) {
	if s.connected {
		switch k.String() {
		case "c":
			return CreatePress{}, true
		case "i":
			return ImportPress{}, true
		case "esc":
			return DisconnectPress{}, true
		}
		return nil, false
	}
	switch k.String() {
	case "enter":
		return ConnectPress{}, true
	}
	if d, ok := form.FocusDelta(k); ok {
		return FocusMove{Delta: d}, true
	}
	if s.focus == 1 {
		switch k.String() {
		case "left":
			return NetworkSelect{Network: form.Step(helpers.Networks, s.network, -1)}, true
		case "right", " ":
			return NetworkSelect{Network: form.Step(helpers.Networks, s.network, 1)}, true
		}
		return nil, false
	}
	if v, ok := form.Edit(s.url, k, nil); ok {
		return URLInput{Value: v}, true
	}
	return nil, false
}

func (s State) View(spinner string, width int) string {
	w := helpers.Min(width-8, 56)
	title := styles.TitleStyle.Render("Connect to spaced")

	if s.connected {
		return form.Stack(
			title,
			styles.GoodStyle.Render("✓ Connected to "+s.url),
			styles.Muted("This node has no wallets yet."),
			styles.Key("c")+" create the default wallet   "+styles.Key("i")+" import a wallet file",
			form.Error(s.err),
		)
	}

	status := form.Button("Connect", !s.connecting && s.url != "")
	if s.connecting {
		status = spinner + " connecting…"
	}
	return form.Stack(
		title,
		styles.Muted("Point the wallet at a running spaced JSON-RPC endpoint."),
		form.Field{Label: "RPC URL", Placeholder: "http://127.0.0.1:7225", Value: s.url, Focused: s.focus == 0}.View(w),
		form.Choice("Network", s.network, "pick a network", s.focus == 1, w),
		status,
		form.Error(s.err),
	)
}

// Nav returns the navigation bar for setup view
func (s State) Nav(width int) string {
	var keys []string
	if s.connected {
		keys = []string{
			styles.Key("c") + " create",
			styles.Key("i") + " import",
			styles.Key("Esc") + " disconnect",
		}
	} else {
		keys = []string{
			styles.Key("Tab") + " next field",
			styles.Key("←/→") + " network",
			styles.Key("Enter") + " connect",
		}
	}
	keys = append(keys, styles.Key("Ctrl+C")+" quit")
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
