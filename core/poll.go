package core

import (
	"time"

	"spaces-wallet-tui/state"
)

const (
	// FastPoll is used while anything is still catching up.
	FastPoll = 5 * time.Second
	// SlowPoll is used once the current wallet is synced to the tip.
	SlowPoll = 30 * time.Second
	// ListWalletsRetry delays the retry of a failed wallet listing.
	ListWalletsRetry = 2 * time.Second
)

// PollInterval returns the delay before the next Tick.
func PollInterval(tip uint32, w *state.WalletData, connected bool) time.Duration {
	if !connected || tip == 0 || !w.IsSynced(tip) {
		return FastPoll
	}
	return SlowPoll
}
