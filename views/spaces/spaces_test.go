package spaces

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/state"
)

func spaceOut(cov rpc.Covenant) *rpc.FullSpaceOut {
	return &rpc.FullSpaceOut{Txid: "aa", SpaceOut: rpc.SpaceOut{Space: &rpc.Space{Name: "@example", Covenant: cov}}}
}

func TestModeFor(t *testing.T) {
	claim := uint32(100)
	later := uint32(200)
	tests := []struct {
		name  string
		set   bool
		out   *rpc.FullSpaceOut
		owned bool
		want  Mode
	}{
		{"not fetched", false, nil, false, ModeLoading},
		{"not opened", true, nil, false, ModeOpen},
		{"pre-auction", true, spaceOut(rpc.Covenant{Type: rpc.CovenantBid}), false, ModeBid},
		{"auction running", true, spaceOut(rpc.Covenant{Type: rpc.CovenantBid, ClaimHeight: &later}), false, ModeBid},
		{"won auction", true, spaceOut(rpc.Covenant{Type: rpc.CovenantBid, ClaimHeight: &claim}), true, ModeClaim},
		{"lost auction", true, spaceOut(rpc.Covenant{Type: rpc.CovenantBid, ClaimHeight: &claim}), false, ModeClaimed},
		{"registered owned", true, spaceOut(rpc.Covenant{Type: rpc.CovenantTransfer}), true, ModeRenew},
		{"registered other", true, spaceOut(rpc.Covenant{Type: rpc.CovenantTransfer}), false, ModeRegistered},
		{"reserved", true, spaceOut(rpc.Covenant{Type: rpc.CovenantReserved}), false, ModeReserved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cache state.Spaces
			if tt.set {
				cache.Set("example", tt.out)
			}
			w := &state.WalletData{}
			if tt.owned {
				w.WinningSpaces = []string{"example"}
			}
			got := ModeFor("example", Context{Tip: 150, Spaces: &cache, Wallet: w})
			if got != tt.want {
				t.Errorf("ModeFor = %v, want %v", got, tt.want)
			}
		})
	}

	if got := ModeFor("", Context{}); got != ModeList {
		t.Errorf("Expected list mode without a label, got %v", got)
	}
}

func TestBidMustBeatCurrent(t *testing.T) {
	var s State
	s.SetSLabel("example")
	s.Update(AmountInput{Value: "1000"})

	if s.Update(BidSubmit{Current: 1000}) != nil {
		t.Error("Expected a bid equal to the current bid to be rejected")
	}
	a, ok := s.Update(BidSubmit{Current: 999}).(BidSpace)
	if !ok || a.Amount != 1000 || a.SLabel != "example" {
		t.Errorf("Expected BidSpace, got %#v", a)
	}
}

func TestSelectAndBack(t *testing.T) {
	var s State
	if s.Update(SLabelSet{SLabel: "-bad"}) != nil {
		t.Error("Expected an invalid label to be ignored")
	}

	a, ok := s.Update(SLabelSet{SLabel: "example"}).(GetSpaceInfo)
	if !ok || a.SLabel != "example" || s.SLabel() != "example" {
		t.Fatalf("Expected GetSpaceInfo example, got %#v", a)
	}

	s.Update(AmountInput{Value: "5"})
	s.ResetInputs()
	if s.SLabel() != "example" {
		t.Error("Expected ResetInputs to keep the selection")
	}

	if _, ok := s.Update(Back{}).(ListSpaces); !ok {
		t.Error("Expected Back to list spaces")
	}
	if s.SLabel() != "" {
		t.Error("Expected Back to clear the selection")
	}
}

func TestKeyOpensSearchedSpace(t *testing.T) {
	var s State
	ctx := Context{Spaces: &state.Spaces{}, Wallet: &state.WalletData{}}

	msg, ok := s.Key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ex")}, ctx)
	if !ok {
		t.Fatal("Expected typing to edit the search")
	}
	s.Update(msg)

	msg, _ = s.Key(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	if m, ok := msg.(SLabelSet); !ok || m.SLabel != "ex" {
		t.Errorf("Expected SLabelSet ex, got %#v", msg)
	}
}

func TestOpenFormGating(t *testing.T) {
	var s State
	s.SetSLabel("example")
	var cache state.Spaces
	cache.Set("example", nil)
	ctx := Context{Spaces: &cache, Wallet: &state.WalletData{}}

	if s.CanSubmit(ModeOpen, ctx) {
		t.Error("Expected open disabled without an amount")
	}
	s.Update(AmountInput{Value: "1000"})
	if !s.CanSubmit(ModeOpen, ctx) {
		t.Error("Expected open enabled with an amount")
	}
	msg, _ := s.Key(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	if _, ok := s.Update(msg).(OpenSpace); !ok {
		t.Errorf("Expected OpenSpace from enter, got %#v", msg)
	}
}
