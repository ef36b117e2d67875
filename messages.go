package main

import (
	"spaces-wallet-tui/core"
	"spaces-wallet-tui/rpc"
)

// -------------------- TEA MESSAGES --------------------
// Host-only messages. Everything the reducers see is a core.Message.

// tickMsg is a poll tick. Ticks from an earlier schedule carry an old gen and are dropped.
type tickMsg struct{ gen int }

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// connectedMsg carries the dialed client along with the handshake result.
type connectedMsg struct {
	client *rpc.Client
	result core.ConnectResult
}
