package core

import (
	"encoding/json"
	"io"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/charmbracelet/log"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/state"
	"spaces-wallet-tui/views/home"
	"spaces-wallet-tui/views/market"
	"spaces-wallet-tui/views/receive"
	"spaces-wallet-tui/views/send"
	"spaces-wallet-tui/views/settings"
	"spaces-wallet-tui/views/sign"
	"spaces-wallet-tui/views/spaces"
)

// Main is the reducer of the wallet once a backend is connected. It owns the
// caches and every screen, and talks to the outside world only through the
// Commands it returns.
type Main struct {
	cfg    config.Config
	logger *log.Logger
	params *chaincfg.Params

	screen Screen
	tip    uint32
	banner string

	wallets    state.Wallets
	spaceCache state.Spaces

	home         home.State
	send         send.State
	receive      receive.State
	spacesScreen spaces.State
	market       market.State
	sign         sign.State
	settings     settings.State
}

// NewMain creates the reducer. A nil logger discards.
func NewMain(cfg config.Config, logger *log.Logger) *Main {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	params := helpers.NetworkParams(cfg.Network)
	return &Main{
		cfg:    cfg,
		logger: logger,
		params: params,
		screen: ScreenHome,
		home:   home.New(),
		send:   send.New(params),
	}
}

// Init is the startup effect.
func (m *Main) Init() Effect {
	return do(GetServerInfo{}, ListWallets{})
}

func (m *Main) Update(msg Message) Effect {
	switch msg := msg.(type) {
	case Tick:
		return m.tick()
	case NavigateTo:
		return m.navigate(msg.Route)

	case ServerInfoResult:
		if msg.Err != nil {
			m.fetchFailed("getserverinfo", msg.Err)
			return none()
		}
		m.tip = msg.Info.Chain.Headers
		m.banner = ""

	case ListWalletsResult:
		if msg.Err != nil {
			m.fetchFailed("listwallets", msg.Err)
			return do(ListWallets{Delay: ListWalletsRetry})
		}
		m.wallets.SetWallets(msg.Wallets)
		if _, _, ok := m.wallets.Current(); !ok && m.cfg.Wallet != "" {
			m.wallets.SetCurrent(m.cfg.Wallet)
		}
		if label, _, ok := m.wallets.Current(); ok {
			return do(LoadWallet{Wallet: label})
		}
		return m.navigate(RouteSettings{})

	case WalletLoadResult:
		if msg.Wallet != m.wallets.CurrentLabel() {
			m.logger.Debug("dropping stale wallet load", "wallet", msg.Wallet)
			return none()
		}
		if msg.Err != nil {
			m.commandFailed(ScreenSettings, "walletload", msg.Err)
			return m.navigate(RouteSettings{})
		}
		m.logger.Info("wallet loaded", "wallet", msg.Wallet)
		return do(GetWalletInfo{Wallet: msg.Wallet}).merge(m.navigate(RouteHome{}))

	case WalletCreateResult:
		return m.walletAdded("walletcreate", msg.Wallet, msg.Err)
	case WalletImportResult:
		return m.walletAdded("walletimport", msg.Wallet, msg.Err)

	case ExportResult:
		if msg.Err != nil {
			m.commandFailed(ScreenSettings, "walletexport", msg.Err)
			return none()
		}
		return do(SaveFile{Purpose: FileWalletExport, Name: msg.Wallet + "-wallet.json", Contents: msg.Contents})

	case WalletInfoResult:
		if w := m.walletFor("walletgetinfo", msg.Wallet, msg.Err); w != nil {
			w.Tip = msg.Info.SyncHeight
			w.Status = msg.Info.Status
		}
	case WalletBalanceResult:
		if w := m.walletFor("walletgetbalance", msg.Wallet, msg.Err); w != nil {
			w.Balance = msg.Balance
		}
	case WalletSpacesResult:
		if w := m.walletFor("walletlistspaces", msg.Wallet, msg.Err); w != nil {
			w.SetSpaces(msg.Spaces)
			for _, outs := range [][]rpc.FullSpaceOut{msg.Spaces.Winning, msg.Spaces.Outbid, msg.Spaces.Owned} {
				for i := range outs {
					if label := outs[i].Label(); label != "" {
						m.spaceCache.Set(label, &outs[i])
					}
				}
			}
		}
	case WalletTransactionsResult:
		if w := m.walletFor("walletlisttransactions", msg.Wallet, msg.Err); w != nil {
			w.Transactions = msg.Transactions
		}
	case WalletAddressResult:
		if w := m.walletFor("walletgetnewaddress", msg.Wallet, msg.Err); w != nil {
			addr := state.NewAddressData(msg.Address)
			if msg.Kind == rpc.AddressSpace {
				w.SpaceAddress = addr
			} else {
				w.CoinAddress = addr
			}
		}
	case SpaceInfoResult:
		if msg.Err != nil {
			m.fetchFailed("getspace", msg.Err)
			return none()
		}
		m.spaceCache.Set(msg.SLabel, msg.Space)

	case TxResult:
		return m.txResult(msg)

	case FileLoaded:
		return m.fileLoaded(msg)
	case FileSaved:
		m.fileSaved(msg)
	case ClipboardWritten:
		if msg.Err != nil {
			m.logger.Warn("clipboard write failed", "err", msg.Err)
		}
	case ResetBackendConfirmed:
		m.logger.Info("resetting backend")
		return Effect{
			Commands:   []Command{Disconnect{}},
			Transition: &Transition{Phase: PhaseSetup, Config: m.cfg},
		}

	case HomeMsg:
		return m.homeAction(m.home.Update(msg.Msg))
	case SendMsg:
		return m.sendAction(m.send.Update(msg.Msg))
	case ReceiveMsg:
		return m.receiveAction(m.receive.Update(msg.Msg))
	case SpacesMsg:
		return m.spacesAction(m.spacesScreen.Update(msg.Msg))
	case MarketMsg:
		return m.marketAction(m.market.Update(msg.Msg))
	case SignMsg:
		return m.signAction(m.sign.Update(msg.Msg))
	case SettingsMsg:
		return m.settingsAction(m.settings.Update(msg.Msg))
	}
	return none()
}

func (m *Main) tick() Effect {
	e := do(GetServerInfo{})
	label, _, ok := m.wallets.Current()
	if !ok {
		return e
	}
	e = e.merge(do(GetWalletInfo{Wallet: label}))
	switch m.screen {
	case ScreenHome:
		e = e.merge(do(GetWalletBalance{Wallet: label}, m.transactionsCmd(label)))
	case ScreenSpaces:
		e = e.merge(do(GetWalletSpaces{Wallet: label}))
		if slabel := m.spacesScreen.SLabel(); slabel != "" {
			e = e.merge(do(GetSpaceInfo{SLabel: slabel}))
		}
	}
	return e
}

func (m *Main) transactionsCmd(label string) Command {
	return GetWalletTransactions{Wallet: label, Count: m.home.Limit()}
}

// withWallet builds a command for the current wallet, or nothing without one.
func (m *Main) withWallet(build func(wallet string) Command) Effect {
	label, _, ok := m.wallets.Current()
	if !ok {
		return none()
	}
	return do(build(label))
}

func (m *Main) navigate(r Route) Effect {
	target := r.Screen()
	same := target == m.screen
	m.screen = target
	m.logger.Debug("navigate", "screen", target, "same", same)

	switch r := r.(type) {
	case RouteHome:
		if same {
			m.home.Reset()
		}
		return m.withWallet(func(w string) Command { return GetWalletBalance{Wallet: w} }).
			merge(m.withWallet(func(w string) Command { return GetWalletSpaces{Wallet: w} })).
			merge(m.withWallet(m.transactionsCmd))
	case RouteSend:
		if same {
			m.send.Reset()
		}
		return m.withWallet(func(w string) Command { return GetWalletSpaces{Wallet: w} })
	case RouteReceive:
		if same {
			m.receive.Reset()
		}
		return m.withWallet(func(w string) Command { return GetWalletAddress{Wallet: w, Kind: rpc.AddressCoin} }).
			merge(m.withWallet(func(w string) Command { return GetWalletAddress{Wallet: w, Kind: rpc.AddressSpace} }))
	case RouteSpaces:
		if same {
			m.spacesScreen.Reset()
		}
		if slabel := m.spacesScreen.SLabel(); slabel != "" {
			return do(GetSpaceInfo{SLabel: slabel})
		}
		return m.withWallet(func(w string) Command { return GetWalletSpaces{Wallet: w} })
	case RouteSpace:
		slabel, ok := helpers.ParseSLabel(r.SLabel)
		if !ok {
			m.spacesScreen.Reset()
			return m.withWallet(func(w string) Command { return GetWalletSpaces{Wallet: w} })
		}
		m.spacesScreen.SetSLabel(slabel)
		return do(GetSpaceInfo{SLabel: slabel})
	case RouteMarket:
		if same {
			m.market.Reset()
		}
		return m.withWallet(func(w string) Command { return GetWalletSpaces{Wallet: w} })
	case RouteSign:
		if same {
			m.sign.Reset()
		}
		return m.withWallet(func(w string) Command { return GetWalletSpaces{Wallet: w} })
	case RouteSettings:
		if same {
			m.settings.Reset()
		}
	}
	return none()
}

// walletFor returns the cache entry a wallet scoped result should be written to,
// or nil when the result failed or its label is no longer known.
func (m *Main) walletFor(method, label string, err error) *state.WalletData {
	if err != nil {
		m.fetchFailed(method, err)
		return nil
	}
	w := m.wallets.Data(label)
	if w == nil {
		m.logger.Debug("dropping result for unknown wallet", "method", method, "wallet", label)
	}
	return w
}

// fetchFailed handles a failed query. Node errors are only logged: a read
// returning an error object does not invalidate what is already cached.
func (m *Main) fetchFailed(method string, err error) {
	if rpc.IsBusiness(err) {
		m.logger.Warn("query failed", "method", method, "err", err)
		return
	}
	m.logger.Error("backend unreachable", "method", method, "err", err)
	m.banner = err.Error()
}

// commandFailed routes a failed user action: node errors go to the screen that
// issued it, transport errors to the banner.
func (m *Main) commandFailed(origin Screen, method string, err error) {
	if rpc.IsBusiness(err) {
		m.logger.Warn("request rejected", "method", method, "screen", origin, "err", err)
		m.setScreenError(origin, err.Error())
		return
	}
	m.logger.Error("backend unreachable", "method", method, "err", err)
	m.banner = err.Error()
}

func (m *Main) setScreenError(s Screen, err string) {
	switch s {
	case ScreenHome:
		m.home.SetError(err)
	case ScreenSend:
		m.send.SetError(err)
	case ScreenSpaces:
		m.spacesScreen.SetError(err)
	case ScreenMarket:
		m.market.SetError(err)
	case ScreenSign:
		m.sign.SetError(err)
	case ScreenSettings:
		m.settings.SetError(err)
	}
}

func (m *Main) walletAdded(method, label string, err error) Effect {
	if err != nil {
		m.commandFailed(ScreenSettings, method, err)
		return do(ListWallets{})
	}
	m.logger.Info("wallet added", "wallet", label)
	m.cfg.Wallet = label
	return do(SaveConfig{Config: m.cfg}, ListWallets{})
}

func (m *Main) txResult(msg TxResult) Effect {
	if msg.Err != nil {
		m.commandFailed(msg.Op.Origin(), msg.Op.String(), msg.Err)
		return none()
	}
	m.logger.Info("request accepted", "op", msg.Op, "wallet", msg.Wallet)

	switch msg.Op {
	case OpSendCoins, OpSendSpace:
		m.send.Reset()
	case OpOpen, OpBid, OpRegister, OpRenew:
		m.spacesScreen.ResetInputs()
	case OpBuy:
		m.market.Reset()
	case OpBumpFee:
		m.home.Reset()
		return m.withWallet(m.transactionsCmd)
	case OpSell:
		if msg.Listing != nil {
			m.market.SetListing(*msg.Listing)
		}
		return none()
	case OpSign:
		if msg.Event == nil {
			return none()
		}
		b, err := json.MarshalIndent(msg.Event, "", "  ")
		if err != nil {
			m.sign.SetError(err.Error())
			return none()
		}
		return do(SaveFile{Purpose: FileSignedEvent, Name: "signed-event.json", Contents: string(b)})
	}
	return m.navigate(RouteHome{})
}

func (m *Main) fileLoaded(msg FileLoaded) Effect {
	if msg.Cancelled {
		return none()
	}
	switch msg.Purpose {
	case FileWalletImport:
		if msg.Err != nil {
			m.settings.SetError(msg.Err.Error())
			return none()
		}
		return m.settingsAction(m.settings.Update(settings.WalletFileLoaded{Contents: msg.Contents}))
	case FileNostrEvent:
		if msg.Err != nil {
			m.sign.SetError(msg.Err.Error())
			return none()
		}
		return m.signAction(m.sign.Update(sign.EventFileLoaded{Path: msg.Path, Contents: msg.Contents}))
	}
	return none()
}

func (m *Main) fileSaved(msg FileSaved) {
	if msg.Cancelled {
		return
	}
	switch msg.Purpose {
	case FileWalletExport:
		if msg.Err != nil {
			m.settings.SetError(msg.Err.Error())
			return
		}
		m.settings.SetNotice("Wallet exported to " + msg.Path)
	case FileSignedEvent:
		if msg.Err != nil {
			m.sign.SetError(msg.Err.Error())
			return
		}
		m.sign.SetSaved(msg.Path)
	}
}

func (m *Main) homeAction(a home.Action) Effect {
	switch a := a.(type) {
	case home.ShowSpace:
		return m.navigate(RouteSpace{SLabel: a.SLabel})
	case home.GetTransactions:
		return m.withWallet(m.transactionsCmd)
	case home.BumpFee:
		return m.withWallet(func(w string) Command {
			return BumpFee{Wallet: w, Txid: a.Txid, FeeRate: a.FeeRate}
		})
	}
	return none()
}

func (m *Main) sendAction(a send.Action) Effect {
	switch a := a.(type) {
	case send.SendCoins:
		return m.withWallet(func(w string) Command {
			return SendCoins{Wallet: w, Recipient: a.Recipient, Amount: a.Amount, FeeRate: a.FeeRate}
		})
	case send.SendSpace:
		return m.withWallet(func(w string) Command {
			return SendSpace{Wallet: w, Recipient: a.Recipient, SLabel: a.SLabel, FeeRate: a.FeeRate}
		})
	}
	return none()
}

func (m *Main) receiveAction(a receive.Action) Effect {
	if a, ok := a.(receive.WriteClipboard); ok {
		return do(WriteClipboard{Text: a.Text})
	}
	return none()
}

func (m *Main) spacesAction(a spaces.Action) Effect {
	switch a := a.(type) {
	case spaces.GetSpaceInfo:
		return do(GetSpaceInfo{SLabel: a.SLabel})
	case spaces.ListSpaces:
		return m.withWallet(func(w string) Command { return GetWalletSpaces{Wallet: w} })
	case spaces.OpenSpace:
		return m.withWallet(func(w string) Command {
			return OpenSpace{Wallet: w, SLabel: a.SLabel, Amount: a.Amount, FeeRate: a.FeeRate}
		})
	case spaces.BidSpace:
		return m.withWallet(func(w string) Command {
			return BidSpace{Wallet: w, SLabel: a.SLabel, Amount: a.Amount, FeeRate: a.FeeRate}
		})
	case spaces.RegisterSpace:
		return m.withWallet(func(w string) Command {
			return RegisterSpace{Wallet: w, SLabel: a.SLabel, FeeRate: a.FeeRate}
		})
	case spaces.RenewSpace:
		return m.withWallet(func(w string) Command {
			return RenewSpace{Wallet: w, SLabel: a.SLabel, FeeRate: a.FeeRate}
		})
	}
	return none()
}

func (m *Main) marketAction(a market.Action) Effect {
	switch a := a.(type) {
	case market.Buy:
		return m.withWallet(func(w string) Command {
			return BuySpace{Wallet: w, Listing: a.Listing, FeeRate: a.FeeRate}
		})
	case market.Sell:
		return m.withWallet(func(w string) Command {
			return SellSpace{Wallet: w, SLabel: a.SLabel, Price: a.Price}
		})
	case market.WriteClipboard:
		return do(WriteClipboard{Text: a.Text})
	}
	return none()
}

func (m *Main) signAction(a sign.Action) Effect {
	switch a := a.(type) {
	case sign.PickFile:
		return do(PickFile{Purpose: FileNostrEvent})
	case sign.Sign:
		return m.withWallet(func(w string) Command {
			return SignEvent{Wallet: w, SLabel: a.SLabel, Event: a.Event}
		})
	}
	return none()
}

func (m *Main) settingsAction(a settings.Action) Effect {
	switch a := a.(type) {
	case settings.SetCurrentWallet:
		if !m.wallets.SetCurrent(a.Wallet) {
			return none()
		}
		m.cfg.Wallet = a.Wallet
		return do(SaveConfig{Config: m.cfg}, ListWallets{})
	case settings.ExportWallet:
		return do(ExportWallet{Wallet: a.Wallet})
	case settings.CreateWallet:
		m.wallets.UnsetCurrent()
		return do(CreateWallet{Wallet: a.Wallet})
	case settings.PickFile:
		return do(PickFile{Purpose: FileWalletImport})
	case settings.ImportWallet:
		m.wallets.UnsetCurrent()
		return do(ImportWallet{Contents: a.Contents})
	case settings.ResetBackend:
		return do(ConfirmResetBackend{})
	}
	return none()
}
