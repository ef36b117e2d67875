package core

import (
	"github.com/btcsuite/btcd/btcutil"

	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/views/home"
	"spaces-wallet-tui/views/market"
	"spaces-wallet-tui/views/receive"
	"spaces-wallet-tui/views/send"
	"spaces-wallet-tui/views/settings"
	"spaces-wallet-tui/views/setup"
	"spaces-wallet-tui/views/sign"
	"spaces-wallet-tui/views/spaces"
)

// Message is everything a reducer reacts to.
type Message interface{ message() }

type (
	// Tick is the periodic refresh.
	Tick       struct{}
	NavigateTo struct{ Route Route }
)

// Results of remote queries. Wallet scoped results carry the label they were
// issued for.
type (
	ServerInfoResult struct {
		Info rpc.ServerInfo
		Err  error
	}
	ListWalletsResult struct {
		Wallets []string
		Err     error
	}
	WalletLoadResult struct {
		Wallet string
		Err    error
	}
	WalletCreateResult struct {
		Wallet string
		Err    error
	}
	WalletImportResult struct {
		Wallet string
		Err    error
	}
	ExportResult struct {
		Wallet   string
		Contents string
		Err      error
	}
	WalletInfoResult struct {
		Wallet string
		Info   rpc.WalletInfo
		Err    error
	}
	WalletBalanceResult struct {
		Wallet  string
		Balance btcutil.Amount
		Err     error
	}
	WalletSpacesResult struct {
		Wallet string
		Spaces rpc.ListSpacesResponse
		Err    error
	}
	WalletTransactionsResult struct {
		Wallet       string
		Transactions []rpc.TxInfo
		Err          error
	}
	WalletAddressResult struct {
		Wallet  string
		Kind    rpc.AddressKind
		Address string
		Err     error
	}
	SpaceInfoResult struct {
		SLabel string
		Space  *rpc.FullSpaceOut
		Err    error
	}
	ConnectResult struct {
		URL  string
		Info rpc.ServerInfo
		Err  error
	}
)

// Op names a mutating remote operation.
type Op int

const (
	OpSendCoins Op = iota
	OpSendSpace
	OpOpen
	OpBid
	OpRegister
	OpRenew
	OpBumpFee
	OpBuy
	OpSell
	OpSign
)

func (o Op) String() string {
	return [...]string{"send coins", "send space", "open", "bid", "register", "renew", "bump fee", "buy", "sell", "sign"}[o]
}

// Origin is the screen that issued the operation.
func (o Op) Origin() Screen {
	switch o {
	case OpSendCoins, OpSendSpace:
		return ScreenSend
	case OpOpen, OpBid, OpRegister, OpRenew:
		return ScreenSpaces
	case OpBumpFee:
		return ScreenHome
	case OpBuy, OpSell:
		return ScreenMarket
	default:
		return ScreenSign
	}
}

// TxResult answers every mutating command.
type TxResult struct {
	Op      Op
	Wallet  string
	Listing *rpc.Listing
	Event   *rpc.NostrEvent
	Err     error
}

// Host results.
type (
	FileLoaded struct {
		Purpose   FilePurpose
		Path      string
		Contents  string
		Cancelled bool
		Err       error
	}
	FileSaved struct {
		Purpose   FilePurpose
		Path      string
		Cancelled bool
		Err       error
	}
	ClipboardWritten      struct{ Err error }
	ResetBackendConfirmed struct{}
)

// Screen messages.
type (
	HomeMsg     struct{ Msg home.Msg }
	SendMsg     struct{ Msg send.Msg }
	ReceiveMsg  struct{ Msg receive.Msg }
	SpacesMsg   struct{ Msg spaces.Msg }
	MarketMsg   struct{ Msg market.Msg }
	SignMsg     struct{ Msg sign.Msg }
	SettingsMsg struct{ Msg settings.Msg }
	SetupMsg    struct{ Msg setup.Msg }
)

func (Tick) message()                     {}
func (NavigateTo) message()               {}
func (ServerInfoResult) message()         {}
func (ListWalletsResult) message()        {}
func (WalletLoadResult) message()         {}
func (WalletCreateResult) message()       {}
func (WalletImportResult) message()       {}
func (ExportResult) message()             {}
func (WalletInfoResult) message()         {}
func (WalletBalanceResult) message()      {}
func (WalletSpacesResult) message()       {}
func (WalletTransactionsResult) message() {}
func (WalletAddressResult) message()      {}
func (SpaceInfoResult) message()          {}
func (ConnectResult) message()            {}
func (TxResult) message()                 {}
func (FileLoaded) message()               {}
func (FileSaved) message()                {}
func (ClipboardWritten) message()         {}
func (ResetBackendConfirmed) message()    {}
func (HomeMsg) message()                  {}
func (SendMsg) message()                  {}
func (ReceiveMsg) message()               {}
func (SpacesMsg) message()                {}
func (MarketMsg) message()                {}
func (SignMsg) message()                  {}
func (SettingsMsg) message()              {}
func (SetupMsg) message()                 {}
