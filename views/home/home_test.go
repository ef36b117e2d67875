package home

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/rpc"
)

func TestPagination(t *testing.T) {
	s := New()

	// a list shorter than the window never grows it
	for i := 0; i < 20; i++ {
		if a := s.Update(CursorMove{Delta: 1, Count: 5}); a != nil {
			t.Fatalf("Unexpected action %T for a partial page", a)
		}
	}

	s = New()
	var fetched bool
	for i := 0; i < PageSize; i++ {
		if _, ok := s.Update(CursorMove{Delta: 1, Count: PageSize}).(GetTransactions); ok {
			fetched = true
		}
	}
	if !fetched {
		t.Fatal("Expected reaching the end of a full page to request more")
	}
	if s.Limit() != 2*PageSize {
		t.Errorf("Expected limit %d, got %d", 2*PageSize, s.Limit())
	}

	s.Reset()
	if s.Limit() != PageSize {
		t.Errorf("Expected reset limit %d, got %d", PageSize, s.Limit())
	}
}

func TestBumpFee(t *testing.T) {
	s := New()
	s.Update(BumpFeePress{Txid: "aa"})

	if a := s.Update(BumpFeeSubmit{}); a != nil {
		t.Fatalf("Expected no action without a fee rate, got %T", a)
	}

	s.Update(FeeRateInput{Value: "x"})
	s.Update(FeeRateInput{Value: "5"})
	a, ok := s.Update(BumpFeeSubmit{}).(BumpFee)
	if !ok {
		t.Fatal("Expected a BumpFee action")
	}
	if a.Txid != "aa" || a.FeeRate != 5 {
		t.Errorf("Unexpected action %+v", a)
	}

	s.Update(Cancel{})
	if s.Txid() != "" {
		t.Error("Expected cancel to close the form")
	}
}

func TestKey(t *testing.T) {
	space := "@example"
	txs := []rpc.TxInfo{
		{Txid: "t1", Confirmed: true, Events: []rpc.TxEvent{{Kind: rpc.EventOpen, Space: &space}}},
		{Txid: "t2"},
	}
	s := New()

	msg, ok := s.Key(tea.KeyMsg{Type: tea.KeyEnter}, txs)
	if !ok {
		t.Fatal("Expected enter to be handled")
	}
	if p, ok := msg.(SpacePress); !ok || p.SLabel != "example" {
		t.Errorf("Expected SpacePress example, got %#v", msg)
	}

	if _, ok := s.Key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, txs); ok {
		t.Error("Expected bump fee to be unavailable for a confirmed transaction")
	}

	s.Update(CursorMove{Delta: 1, Count: len(txs)})
	msg, ok = s.Key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, txs)
	if p, isBump := msg.(BumpFeePress); !ok || !isBump || p.Txid != "t2" {
		t.Errorf("Expected BumpFeePress t2, got %#v", msg)
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe(rpc.TxInfo{Received: 10}); got != "Received coins" {
		t.Errorf("Unexpected description %q", got)
	}
	if got := Describe(rpc.TxInfo{Sent: 10}); got != "Sent coins" {
		t.Errorf("Unexpected description %q", got)
	}
}
