package main

import (
	"context"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/core"
	"spaces-wallet-tui/rpc"
)

// -------------------- COMMAND FUNCTIONS --------------------
// The executor turns reducer commands into tea.Cmd for async operations.

// apply runs every command of e and performs its phase transition, if any.
func (m *model) apply(e core.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(e.Commands)+1)
	for _, c := range e.Commands {
		if cmd := m.exec(c); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if e.Transition != nil {
		cmds = append(cmds, m.transition(*e.Transition))
	}
	return tea.Batch(cmds...)
}

func (m *model) transition(t core.Transition) tea.Cmd {
	m.cfg = t.Config
	m.phase = t.Phase
	switch t.Phase {
	case core.PhaseMain:
		m.logger.Info("opening wallet", "wallet", t.Config.Wallet, "network", t.Config.Network)
		m.setup = nil
		m.main = core.NewMain(t.Config, m.logger)
		return tea.Batch(m.apply(m.main.Init()), m.scheduleTick())
	default:
		m.logger.Info("backend reset")
		if err := config.Remove(m.configPath); err != nil {
			m.logger.Error("remove config", "err", err)
		}
		m.main = nil
		m.tickGen++
		m.setup = core.NewSetup(t.Config, m.logger)
		return nil
	}
}

// scheduleTick starts a new tick chain and invalidates any earlier one.
func (m *model) scheduleTick() tea.Cmd {
	m.tickGen++
	return m.nextTick()
}

func (m *model) nextTick() tea.Cmd {
	if m.main == nil {
		return nil
	}
	gen := m.tickGen
	return tea.Tick(m.main.PollInterval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// exec runs one command. Remote calls go through the current client; a nil
// client answers with a system error.
func (m *model) exec(c core.Command) tea.Cmd {
	client := m.client
	switch c := c.(type) {
	case core.Connect:
		return connect(c.URL)
	case core.Disconnect:
		m.client.Close()
		m.client = nil
		return nil
	case core.SaveConfig:
		m.cfg = c.Config
		if err := config.Save(m.configPath, c.Config); err != nil {
			m.logger.Error("save config", "err", err)
		}
		return nil
	case core.WriteClipboard:
		return copyToClipboard(c.Text)
	case core.PickFile:
		return m.openPicker(c.Purpose)
	case core.SaveFile:
		return m.openSaver(c)
	case core.ConfirmResetBackend:
		return m.openConfirm()

	case core.GetServerInfo:
		return call(func(ctx context.Context) tea.Msg {
			info, err := client.GetServerInfo(ctx)
			return core.ServerInfoResult{Info: info, Err: err}
		})
	case core.ListWallets:
		cmd := call(func(ctx context.Context) tea.Msg {
			wallets, err := client.ListWallets(ctx)
			return core.ListWalletsResult{Wallets: wallets, Err: err}
		})
		if c.Delay > 0 {
			return tea.Tick(c.Delay, func(time.Time) tea.Msg { return cmd() })
		}
		return cmd
	case core.LoadWallet:
		return call(func(ctx context.Context) tea.Msg {
			return core.WalletLoadResult{Wallet: c.Wallet, Err: client.LoadWallet(ctx, c.Wallet)}
		})
	case core.CreateWallet:
		return call(func(ctx context.Context) tea.Msg {
			return core.WalletCreateResult{Wallet: c.Wallet, Err: client.CreateWallet(ctx, c.Wallet)}
		})
	case core.ImportWallet:
		return call(func(ctx context.Context) tea.Msg {
			label, err := client.ImportWallet(ctx, c.Contents)
			return core.WalletImportResult{Wallet: label, Err: err}
		})
	case core.ExportWallet:
		return call(func(ctx context.Context) tea.Msg {
			contents, err := client.ExportWallet(ctx, c.Wallet)
			return core.ExportResult{Wallet: c.Wallet, Contents: contents, Err: err}
		})
	case core.GetWalletInfo:
		return call(func(ctx context.Context) tea.Msg {
			info, err := client.GetWalletInfo(ctx, c.Wallet)
			return core.WalletInfoResult{Wallet: c.Wallet, Info: info, Err: err}
		})
	case core.GetWalletBalance:
		return call(func(ctx context.Context) tea.Msg {
			b, err := client.GetWalletBalance(ctx, c.Wallet)
			return core.WalletBalanceResult{Wallet: c.Wallet, Balance: b.Balance, Err: err}
		})
	case core.GetWalletSpaces:
		return call(func(ctx context.Context) tea.Msg {
			spaces, err := client.GetWalletSpaces(ctx, c.Wallet)
			return core.WalletSpacesResult{Wallet: c.Wallet, Spaces: spaces, Err: err}
		})
	case core.GetWalletTransactions:
		return call(func(ctx context.Context) tea.Msg {
			txs, err := client.GetWalletTransactions(ctx, c.Wallet, c.Count)
			return core.WalletTransactionsResult{Wallet: c.Wallet, Transactions: txs, Err: err}
		})
	case core.GetWalletAddress:
		return call(func(ctx context.Context) tea.Msg {
			addr, err := client.GetWalletAddress(ctx, c.Wallet, c.Kind)
			return core.WalletAddressResult{Wallet: c.Wallet, Kind: c.Kind, Address: addr, Err: err}
		})
	case core.GetSpaceInfo:
		return call(func(ctx context.Context) tea.Msg {
			out, err := client.GetSpaceInfo(ctx, c.SLabel)
			return core.SpaceInfoResult{SLabel: c.SLabel, Space: out, Err: err}
		})

	case core.SendCoins:
		return txCall(core.OpSendCoins, c.Wallet, func(ctx context.Context) error {
			return client.SendCoins(ctx, c.Wallet, c.Recipient, c.Amount, c.FeeRate)
		})
	case core.SendSpace:
		return txCall(core.OpSendSpace, c.Wallet, func(ctx context.Context) error {
			return client.SendSpace(ctx, c.Wallet, c.Recipient, c.SLabel, c.FeeRate)
		})
	case core.OpenSpace:
		return txCall(core.OpOpen, c.Wallet, func(ctx context.Context) error {
			return client.OpenSpace(ctx, c.Wallet, c.SLabel, c.Amount, c.FeeRate)
		})
	case core.BidSpace:
		return txCall(core.OpBid, c.Wallet, func(ctx context.Context) error {
			return client.BidSpace(ctx, c.Wallet, c.SLabel, c.Amount, c.FeeRate)
		})
	case core.RegisterSpace:
		return txCall(core.OpRegister, c.Wallet, func(ctx context.Context) error {
			return client.RegisterSpace(ctx, c.Wallet, c.SLabel, c.FeeRate)
		})
	case core.RenewSpace:
		return txCall(core.OpRenew, c.Wallet, func(ctx context.Context) error {
			return client.RenewSpace(ctx, c.Wallet, c.SLabel, c.FeeRate)
		})
	case core.BumpFee:
		return txCall(core.OpBumpFee, c.Wallet, func(ctx context.Context) error {
			return client.BumpFee(ctx, c.Wallet, c.Txid, c.FeeRate)
		})
	case core.BuySpace:
		return txCall(core.OpBuy, c.Wallet, func(ctx context.Context) error {
			return client.BuySpace(ctx, c.Wallet, c.Listing, c.FeeRate)
		})
	case core.SellSpace:
		return call(func(ctx context.Context) tea.Msg {
			l, err := client.SellSpace(ctx, c.Wallet, c.SLabel, c.Price)
			res := core.TxResult{Op: core.OpSell, Wallet: c.Wallet, Err: err}
			if err == nil {
				res.Listing = &l
			}
			return res
		})
	case core.SignEvent:
		return call(func(ctx context.Context) tea.Msg {
			ev, err := client.SignEvent(ctx, c.Wallet, c.SLabel, c.Event)
			res := core.TxResult{Op: core.OpSign, Wallet: c.Wallet, Err: err}
			if err == nil {
				res.Event = &ev
			}
			return res
		})
	}
	m.logger.Warn("unhandled command", "command", c)
	return nil
}

// call runs fn on its own goroutine. The client applies its own per-call timeout.
func call(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return fn(context.Background())
	}
}

func txCall(op core.Op, wallet string, fn func(ctx context.Context) error) tea.Cmd {
	return call(func(ctx context.Context) tea.Msg {
		return core.TxResult{Op: op, Wallet: wallet, Err: fn(ctx)}
	})
}

// connect dials url and performs the getserverinfo handshake.
func connect(url string) tea.Cmd {
	return func() tea.Msg {
		client, err := rpc.Dial(url)
		if err != nil {
			return connectedMsg{result: core.ConnectResult{URL: url, Err: err}}
		}
		info, err := client.GetServerInfo(context.Background())
		if err != nil {
			client.Close()
			return connectedMsg{result: core.ConnectResult{URL: url, Err: err}}
		}
		return connectedMsg{client: client, result: core.ConnectResult{URL: url, Info: info}}
	}
}

// copyToClipboard copies text to the system clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return core.ClipboardWritten{Err: clipboard.WriteAll(text)}
	}
}

func readFile(purpose core.FilePurpose, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return core.FileLoaded{Purpose: purpose, Path: path, Contents: string(data), Err: err}
	}
}

func writeFile(purpose core.FilePurpose, path, contents string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(contents), 0o600)
		return core.FileSaved{Purpose: purpose, Path: path, Err: err}
	}
}

// -------------------- MODEL HELPER METHODS --------------------

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}
	m.logViewport.SetContent(m.logBuffer.String())
	// Scroll to bottom to show latest entries
	m.logViewport.GotoBottom()
}
