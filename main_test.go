package main

import (
	"path/filepath"
	"testing"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/core"
	"spaces-wallet-tui/rpc"
)

func testModel(t *testing.T) *model {
	t.Helper()
	cfg := config.Config{SpacedRPCURL: "http://127.0.0.1:7225", Network: "regtest"}
	return newModel(cfg, filepath.Join(t.TempDir(), "config.json"))
}

func TestExecWithoutClient(t *testing.T) {
	m := testModel(t)
	msg := m.exec(core.GetServerInfo{})()
	res, ok := msg.(core.ServerInfoResult)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	if res.Err == nil || rpc.IsBusiness(res.Err) {
		t.Errorf("err = %v, want system error", res.Err)
	}
}

func TestExecTxResult(t *testing.T) {
	m := testModel(t)
	msg := m.exec(core.RenewSpace{Wallet: "default", SLabel: "bitcoin"})()
	res, ok := msg.(core.TxResult)
	if !ok || res.Op != core.OpRenew || res.Wallet != "default" || res.Err == nil {
		t.Errorf("result = %#v", msg)
	}
}

func TestSaveConfig(t *testing.T) {
	m := testModel(t)
	cfg := config.Config{SpacedRPCURL: "http://node:7225", Network: "regtest", Wallet: "default"}
	if cmd := m.exec(core.SaveConfig{Config: cfg}); cmd != nil {
		t.Error("save config should run synchronously")
	}
	got, err := config.Load(m.configPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Errorf("saved %+v, want %+v", got, cfg)
	}
}

func TestTransitions(t *testing.T) {
	m := testModel(t)
	cfg := config.Config{SpacedRPCURL: "http://127.0.0.1:7225", Network: "regtest", Wallet: "default"}

	m.apply(core.Effect{Transition: &core.Transition{Phase: core.PhaseMain, Config: cfg}})
	if m.phase != core.PhaseMain || m.main == nil || m.setup != nil {
		t.Fatalf("phase = %v main = %v", m.phase, m.main != nil)
	}
	gen := m.tickGen

	m.apply(core.Effect{Transition: &core.Transition{Phase: core.PhaseSetup, Config: cfg}})
	if m.phase != core.PhaseSetup || m.main != nil || m.setup == nil {
		t.Fatalf("phase = %v setup = %v", m.phase, m.setup != nil)
	}

	// a tick scheduled while the wallet was open is dropped
	if _, cmd := m.Update(tickMsg{gen: gen}); cmd != nil {
		t.Error("stale tick produced a command")
	}
}

func TestDisconnect(t *testing.T) {
	m := testModel(t)
	client, err := rpc.Dial("http://127.0.0.1:7225")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	m.client = client
	m.exec(core.Disconnect{})
	if m.client != nil {
		t.Error("client kept after disconnect")
	}
}
