package state

import (
	"slices"

	"github.com/btcsuite/btcd/btcutil"

	"spaces-wallet-tui/rpc"
)

// WalletData is everything fetched for one wallet.
type WalletData struct {
	Tip           uint32
	Status        rpc.SyncStatus
	Balance       btcutil.Amount
	CoinAddress   *AddressData
	SpaceAddress  *AddressData
	WinningSpaces []string
	OutbidSpaces  []string
	OwnedSpaces   []string
	Transactions  []rpc.TxInfo
}

// IsSynced reports whether the wallet has finished syncing up to tip.
func (w *WalletData) IsSynced(tip uint32) bool {
	return w != nil && w.Status.Complete() && w.Tip >= tip
}

// IsOwned reports whether the wallet holds slabel or has the winning bid on it.
func (w *WalletData) IsOwned(slabel string) bool {
	if w == nil {
		return false
	}
	return slices.Contains(w.OwnedSpaces, slabel) || slices.Contains(w.WinningSpaces, slabel)
}

// AllSpaces returns every label the wallet is involved with.
func (w *WalletData) AllSpaces() []string {
	if w == nil {
		return nil
	}
	out := make([]string, 0, len(w.WinningSpaces)+len(w.OutbidSpaces)+len(w.OwnedSpaces))
	out = append(out, w.OwnedSpaces...)
	out = append(out, w.WinningSpaces...)
	out = append(out, w.OutbidSpaces...)
	return out
}

// SetSpaces replaces the wallet's space lists from a walletlistspaces answer.
func (w *WalletData) SetSpaces(res rpc.ListSpacesResponse) {
	w.WinningSpaces = labels(res.Winning)
	w.OutbidSpaces = labels(res.Outbid)
	w.OwnedSpaces = labels(res.Owned)
}

func labels(outs []rpc.FullSpaceOut) []string {
	out := make([]string, 0, len(outs))
	for _, o := range outs {
		if l := o.Label(); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Wallets maps wallet labels to their data. A known label has nil data until it is
// selected for the first time. The zero value is ready to use.
type Wallets struct {
	current string
	data    map[string]*WalletData
}

func (w *Wallets) init() {
	if w.data == nil {
		w.data = make(map[string]*WalletData)
	}
}

// SetWallets replaces the known set. Labels missing from the list are dropped
// together with their data, and so is the current selection if it was one of them.
func (w *Wallets) SetWallets(labels []string) {
	w.init()
	keep := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		keep[l] = struct{}{}
		if _, ok := w.data[l]; !ok {
			w.data[l] = nil
		}
	}
	for l := range w.data {
		if _, ok := keep[l]; !ok {
			delete(w.data, l)
		}
	}
	if _, ok := w.data[w.current]; !ok {
		w.current = ""
	}
}

// SetCurrent selects a known wallet, creating its data on first selection.
func (w *Wallets) SetCurrent(label string) bool {
	w.init()
	d, ok := w.data[label]
	if !ok {
		return false
	}
	if d == nil {
		w.data[label] = &WalletData{}
	}
	w.current = label
	return true
}

func (w *Wallets) UnsetCurrent() { w.current = "" }

// Current returns the selected wallet.
func (w *Wallets) Current() (string, *WalletData, bool) {
	if w.current == "" {
		return "", nil, false
	}
	return w.current, w.data[w.current], true
}

// CurrentLabel returns the selected label or "".
func (w *Wallets) CurrentLabel() string { return w.current }

// Data returns the data stored for label, nil when unknown or never selected.
func (w *Wallets) Data(label string) *WalletData {
	return w.data[label]
}

func (w *Wallets) Contains(label string) bool {
	_, ok := w.data[label]
	return ok
}

// Labels returns the known wallet labels sorted.
func (w *Wallets) Labels() []string {
	out := make([]string, 0, len(w.data))
	for l := range w.data {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}
