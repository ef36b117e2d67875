package receive

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/state"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

// State is the receive screen. It either lists both addresses or shows one as a QR code.
type State struct {
	qr   bool
	kind rpc.AddressKind
}

func (s *State) Reset() { *s = State{} }

// QR returns the address kind shown as a QR code.
func (s State) QR() (rpc.AddressKind, bool) { return s.kind, s.qr }

type Msg interface{ receiveMsg() }

type (
	ShowQR    struct{ Kind rpc.AddressKind }
	CloseQR   struct{}
	CopyPress struct{ Text string }
)

func (ShowQR) receiveMsg()    {}
func (CloseQR) receiveMsg()   {}
func (CopyPress) receiveMsg() {}

type Action interface{ receiveAction() }

type WriteClipboard struct{ Text string }

func (WriteClipboard) receiveAction() {}

func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case ShowQR:
		s.qr = true
		s.kind = msg.Kind
	case CloseQR:
		s.qr = false
	case CopyPress:
		if msg.Text != "" {
			return WriteClipboard{Text: msg.Text}
		}
	}
	return nil
}

func (s State) Key(k tea.KeyMsg, coin, space *state.AddressData) (Msg, bool) {
	if s.qr {
		switch k.String() {
		case "esc", "q":
			return CloseQR{}, true
		case "c":
			if s.kind == rpc.AddressSpace {
				return CopyPress{Text: space.String()}, true
			}
			return CopyPress{Text: coin.String()}, true
		}
		return nil, false
	}
	switch k.String() {
	case "c":
		return CopyPress{Text: coin.String()}, true
	case "s":
		return CopyPress{Text: space.String()}, true
	case "q":
		return ShowQR{Kind: rpc.AddressCoin}, true
	case "w":
		return ShowQR{Kind: rpc.AddressSpace}, true
	}
	return nil, false
}

func addressBlock(title, desc string, a *state.AddressData) string {
	text := styles.Muted("loading…")
	if a != nil {
		text = styles.ValueStyle.Render(a.String())
	}
	return styles.TitleStyle.Render(title) + "\n" + styles.Muted(desc) + "\n" + text
}

func (s State) View(coin, space *state.AddressData, width int) string {
	if s.qr {
		a, title := coin, "Coins address"
		if s.kind == rpc.AddressSpace {
			a, title = space, "Spaces address"
		}
		if a == nil {
			return styles.Muted("loading…")
		}
		qr := lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")).Foreground(lipgloss.Color("#000000")).Render(a.QRCode())
		return form.Stack(styles.TitleStyle.Render(title), qr, styles.ValueStyle.Render(a.String()))
	}
	return form.Stack(
		addressBlock("Coins address", "Bitcoin-only address for receiving coins", coin),
		addressBlock("Spaces address", "Address for receiving spaces", space),
	)
}

// Nav returns the navigation bar for receive view
func (s State) Nav(width int) string {
	var keys []string
	if s.qr {
		keys = []string{styles.Key("c") + " copy", styles.Key("Esc") + " back"}
	} else {
		keys = []string{
			styles.Key("c") + " copy coins",
			styles.Key("s") + " copy spaces",
			styles.Key("q") + " QR coins",
			styles.Key("w") + " QR spaces",
		}
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
