package core

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/rpc"
)

// Command is a side effect requested by a reducer. Commands are plain values;
// the host decides how to run them.
type Command interface{ command() }

// Remote queries.
type (
	GetServerInfo struct{}
	// ListWallets is delayed by Delay when retrying.
	ListWallets  struct{ Delay time.Duration }
	LoadWallet   struct{ Wallet string }
	CreateWallet struct{ Wallet string }
	ImportWallet struct{ Contents string }
	ExportWallet struct{ Wallet string }

	GetWalletInfo         struct{ Wallet string }
	GetWalletBalance      struct{ Wallet string }
	GetWalletSpaces       struct{ Wallet string }
	GetWalletTransactions struct {
		Wallet string
		Count  int
	}
	GetWalletAddress struct {
		Wallet string
		Kind   rpc.AddressKind
	}
	GetSpaceInfo struct{ SLabel string }
)

// Remote mutations. Each one answers with a TxResult.
type (
	SendCoins struct {
		Wallet    string
		Recipient string
		Amount    btcutil.Amount
		FeeRate   *rpc.FeeRate
	}
	SendSpace struct {
		Wallet    string
		Recipient string
		SLabel    string
		FeeRate   *rpc.FeeRate
	}
	OpenSpace struct {
		Wallet  string
		SLabel  string
		Amount  btcutil.Amount
		FeeRate *rpc.FeeRate
	}
	BidSpace struct {
		Wallet  string
		SLabel  string
		Amount  btcutil.Amount
		FeeRate *rpc.FeeRate
	}
	RegisterSpace struct {
		Wallet  string
		SLabel  string
		FeeRate *rpc.FeeRate
	}
	RenewSpace struct {
		Wallet  string
		SLabel  string
		FeeRate *rpc.FeeRate
	}
	BumpFee struct {
		Wallet  string
		Txid    string
		FeeRate rpc.FeeRate
	}
	BuySpace struct {
		Wallet  string
		Listing rpc.Listing
		FeeRate *rpc.FeeRate
	}
	SellSpace struct {
		Wallet string
		SLabel string
		Price  btcutil.Amount
	}
	SignEvent struct {
		Wallet string
		SLabel string
		Event  rpc.NostrEvent
	}
)

// FilePurpose tells file dialog results apart.
type FilePurpose int

const (
	FileWalletImport FilePurpose = iota
	FileSetupImport
	FileWalletExport
	FileNostrEvent
	FileSignedEvent
)

// Host side effects.
type (
	// Connect dials url and answers with a ConnectResult.
	Connect struct{ URL string }
	// Disconnect drops the current client.
	Disconnect     struct{}
	SaveConfig     struct{ Config config.Config }
	WriteClipboard struct{ Text string }
	PickFile       struct{ Purpose FilePurpose }
	SaveFile       struct {
		Purpose  FilePurpose
		Name     string
		Contents string
	}
	// ConfirmResetBackend asks the user before leaving the wallet.
	ConfirmResetBackend struct{}
)

func (GetServerInfo) command()         {}
func (ListWallets) command()           {}
func (LoadWallet) command()            {}
func (CreateWallet) command()          {}
func (ImportWallet) command()          {}
func (ExportWallet) command()          {}
func (GetWalletInfo) command()         {}
func (GetWalletBalance) command()      {}
func (GetWalletSpaces) command()       {}
func (GetWalletTransactions) command() {}
func (GetWalletAddress) command()      {}
func (GetSpaceInfo) command()          {}
func (SendCoins) command()             {}
func (SendSpace) command()             {}
func (OpenSpace) command()             {}
func (BidSpace) command()              {}
func (RegisterSpace) command()         {}
func (RenewSpace) command()            {}
func (BumpFee) command()               {}
func (BuySpace) command()              {}
func (SellSpace) command()             {}
func (SignEvent) command()             {}
func (Connect) command()               {}
func (Disconnect) command()            {}
func (SaveConfig) command()            {}
func (WriteClipboard) command()        {}
func (PickFile) command()              {}
func (SaveFile) command()              {}
func (ConfirmResetBackend) command()   {}
