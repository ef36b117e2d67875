package core

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/state"
	"spaces-wallet-tui/views/spaces"
)

func (m *Main) Screen() Screen { return m.screen }

func (m *Main) TipHeight() uint32 { return m.tip }

// Banner is the transport error shown above every screen, empty when connected.
func (m *Main) Banner() string { return m.banner }

func (m *Main) Config() config.Config { return m.cfg }

func (m *Main) Wallets() *state.Wallets { return &m.wallets }

func (m *Main) SpaceCache() *state.Spaces { return &m.spaceCache }

// SyncStatus describes the current wallet's progress, empty once synced.
func (m *Main) SyncStatus() string {
	_, w, ok := m.wallets.Current()
	if !ok || m.tip == 0 || w.IsSynced(m.tip) {
		return ""
	}
	if w.Status.Total > 0 {
		return fmt.Sprintf("Syncing %d / %d", w.Status.Completed, w.Status.Total)
	}
	return "Syncing"
}

func (m *Main) PollInterval() time.Duration {
	_, w, _ := m.wallets.Current()
	return PollInterval(m.tip, w, m.banner == "")
}

func (m *Main) spacesContext() spaces.Context {
	_, w, _ := m.wallets.Current()
	return spaces.Context{Tip: m.tip, Spaces: &m.spaceCache, Wallet: w}
}

// Key turns a key press into a message for the active screen.
func (m *Main) Key(k tea.KeyMsg) (Message, bool) {
	_, w, _ := m.wallets.Current()
	var owned []string
	if w != nil {
		owned = w.OwnedSpaces
	}
	switch m.screen {
	case ScreenHome:
		var txs []rpc.TxInfo
		if w != nil {
			txs = w.Transactions
		}
		if msg, ok := m.home.Key(k, txs); ok {
			return HomeMsg{Msg: msg}, true
		}
	case ScreenSend:
		if msg, ok := m.send.Key(k, owned); ok {
			return SendMsg{Msg: msg}, true
		}
	case ScreenReceive:
		var coin, space *state.AddressData
		if w != nil {
			coin, space = w.CoinAddress, w.SpaceAddress
		}
		if msg, ok := m.receive.Key(k, coin, space); ok {
			return ReceiveMsg{Msg: msg}, true
		}
	case ScreenSpaces:
		if msg, ok := m.spacesScreen.Key(k, m.spacesContext()); ok {
			return SpacesMsg{Msg: msg}, true
		}
	case ScreenMarket:
		if msg, ok := m.market.Key(k, owned); ok {
			return MarketMsg{Msg: msg}, true
		}
	case ScreenSign:
		if msg, ok := m.sign.Key(k, owned); ok {
			return SignMsg{Msg: msg}, true
		}
	case ScreenSettings:
		if msg, ok := m.settings.Key(k, m.wallets.Labels()); ok {
			return SettingsMsg{Msg: msg}, true
		}
	}
	return nil, false
}

// View renders the active screen.
func (m *Main) View(width int) string {
	_, w, _ := m.wallets.Current()
	switch m.screen {
	case ScreenSend:
		return m.send.View(width)
	case ScreenReceive:
		var coin, space *state.AddressData
		if w != nil {
			coin, space = w.CoinAddress, w.SpaceAddress
		}
		return m.receive.View(coin, space, width)
	case ScreenSpaces:
		return m.spacesScreen.View(m.spacesContext(), width)
	case ScreenMarket:
		return m.market.View(width)
	case ScreenSign:
		return m.sign.View(width)
	case ScreenSettings:
		return m.settings.View(m.wallets.Labels(), m.wallets.CurrentLabel(), m.cfg.SpacedRPCURL, width)
	default:
		return m.home.View(m.tip, w, width)
	}
}

// Nav renders the key help of the active screen.
func (m *Main) Nav(width int) string {
	switch m.screen {
	case ScreenSend:
		return m.send.Nav(width)
	case ScreenReceive:
		return m.receive.Nav(width)
	case ScreenSpaces:
		return m.spacesScreen.Nav(width)
	case ScreenMarket:
		return m.market.Nav(width)
	case ScreenSign:
		return m.sign.Nav(width)
	case ScreenSettings:
		return m.settings.Nav(width)
	default:
		return m.home.Nav(width)
	}
}
