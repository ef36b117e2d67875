package core

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/views/setup"
)

// DefaultWallet is created and preferred when the node has no configured wallet.
const DefaultWallet = "default"

// Setup is the reducer that binds the application to a backend and a wallet.
type Setup struct {
	cfg    config.Config
	logger *log.Logger
	screen setup.State
}

func NewSetup(cfg config.Config, logger *log.Logger) *Setup {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Setup{cfg: cfg, logger: logger, screen: setup.New(cfg.SpacedRPCURL, cfg.Network)}
}

// Init connects right away when autoload is set and an endpoint is known.
func (s *Setup) Init(autoload bool) Effect {
	if !autoload || s.screen.URL() == "" {
		return none()
	}
	return s.action(s.screen.Update(setup.ConnectPress{}))
}

func (s *Setup) Config() config.Config { return s.cfg }

func (s *Setup) Update(msg Message) Effect {
	switch msg := msg.(type) {
	case SetupMsg:
		return s.action(s.screen.Update(msg.Msg))

	case ConnectResult:
		if msg.Err != nil {
			s.logger.Error("connect failed", "url", msg.URL, "err", msg.Err)
			s.screen.SetError(msg.Err.Error())
			return do(Disconnect{})
		}
		if msg.Info.Network != s.screen.Network() {
			s.logger.Warn("wrong network", "want", s.screen.Network(), "got", msg.Info.Network)
			s.screen.SetError("Wrong network")
			return do(Disconnect{})
		}
		s.logger.Info("connected", "url", msg.URL, "network", msg.Info.Network)
		if msg.URL != s.cfg.SpacedRPCURL || msg.Info.Network != s.cfg.Network {
			s.cfg.SpacedRPCURL = msg.URL
			s.cfg.Network = msg.Info.Network
			s.cfg.Wallet = ""
		}
		if s.cfg.Wallet != "" {
			return s.finish()
		}
		return do(ListWallets{})

	case ListWalletsResult:
		if msg.Err != nil {
			s.screen.SetError(msg.Err.Error())
			return do(Disconnect{})
		}
		if len(msg.Wallets) == 0 {
			s.screen.SetConnected()
			return none()
		}
		s.cfg.Wallet = pickWallet(msg.Wallets)
		return s.finish()

	case WalletCreateResult:
		return s.walletAdded(msg.Wallet, msg.Err)
	case WalletImportResult:
		return s.walletAdded(msg.Wallet, msg.Err)

	case FileLoaded:
		if msg.Purpose != FileSetupImport || msg.Cancelled {
			return none()
		}
		if msg.Err != nil {
			s.screen.SetError(msg.Err.Error())
			return none()
		}
		return do(ImportWallet{Contents: msg.Contents})
	}
	return none()
}

func (s *Setup) action(a setup.Action) Effect {
	switch a := a.(type) {
	case setup.Connect:
		return do(Connect{URL: a.URL})
	case setup.Disconnect:
		return do(Disconnect{})
	case setup.CreateWallet:
		return do(CreateWallet{Wallet: DefaultWallet})
	case setup.PickFile:
		return do(PickFile{Purpose: FileSetupImport})
	}
	return none()
}

func (s *Setup) walletAdded(label string, err error) Effect {
	if err != nil {
		s.screen.SetError(err.Error())
		return none()
	}
	s.cfg.Wallet = label
	return s.finish()
}

func (s *Setup) finish() Effect {
	s.logger.Info("backend ready", "wallet", s.cfg.Wallet)
	return Effect{
		Commands:   []Command{SaveConfig{Config: s.cfg}},
		Transition: &Transition{Phase: PhaseMain, Config: s.cfg},
	}
}

// pickWallet prefers the default wallet, then the first label in sorted order.
func pickWallet(labels []string) string {
	first := labels[0]
	for _, l := range labels {
		if l == DefaultWallet {
			return l
		}
		if l < first {
			first = l
		}
	}
	return first
}

func (s *Setup) Key(k tea.KeyMsg) (Message, bool) {
	if msg, ok := s.screen.Key(k); ok {
		return SetupMsg{Msg: msg}, true
	}
	return nil, false
}

func (s *Setup) View(spinner string, width int) string { return s.screen.View(spinner, width) }

func (s *Setup) Nav(width int) string { return s.screen.Nav(width) }

// Connecting reports whether a handshake is in flight.
func (s *Setup) Connecting() bool { return s.screen.Connecting() }
