package send

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/helpers"
)

const regtestAddr = "bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080"

func TestSendCoins(t *testing.T) {
	s := New(helpers.NetworkParams(helpers.Regtest))

	s.Update(RecipientInput{Value: regtestAddr})
	if s.Update(Submit{}) != nil {
		t.Fatal("Expected no action without an amount")
	}

	s.Update(AmountInput{Value: "10x"})
	s.Update(AmountInput{Value: "1000"})
	a, ok := s.Update(Submit{}).(SendCoins)
	if !ok {
		t.Fatal("Expected SendCoins")
	}
	if a.Recipient != regtestAddr || a.Amount != 1000 || a.FeeRate != nil {
		t.Errorf("Unexpected action %+v", a)
	}
}

func TestSendSpace(t *testing.T) {
	s := New(helpers.NetworkParams(helpers.Regtest))
	s.Update(TabPress{Tab: TabSpace})
	s.Update(RecipientInput{Value: "@friend"})
	if s.CanSubmit() {
		t.Fatal("Expected submit disabled without a space")
	}

	s.Update(SLabelSelect{SLabel: "example"})
	s.Update(FeeRateInput{Value: "2"})
	a, ok := s.Update(Submit{}).(SendSpace)
	if !ok {
		t.Fatal("Expected SendSpace")
	}
	if a.SLabel != "example" || a.Recipient != "@friend" || a.FeeRate == nil || *a.FeeRate != 2 {
		t.Errorf("Unexpected action %+v", a)
	}
}

func TestRejectsForeignAddress(t *testing.T) {
	s := New(helpers.NetworkParams(helpers.Regtest))
	s.Update(RecipientInput{Value: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"})
	s.Update(AmountInput{Value: "1000"})
	if s.CanSubmit() {
		t.Error("Expected a mainnet address to be rejected on regtest")
	}
}

func TestResetKeepsTab(t *testing.T) {
	s := New(nil)
	s.Update(TabPress{Tab: TabSpace})
	s.Update(RecipientInput{Value: "@friend"})
	s.SetError("boom")

	s.Reset()

	if s.Tab() != TabSpace {
		t.Error("Expected tab to survive reset")
	}
	if s.Error() != "" || s.CanSubmit() {
		t.Error("Expected inputs and error cleared")
	}
}

func TestKeyPicksOwnedSpace(t *testing.T) {
	s := New(nil)
	s.Update(TabPress{Tab: TabSpace})

	msg, ok := s.Key(tea.KeyMsg{Type: tea.KeyRight}, []string{"alpha", "beta"})
	if !ok {
		t.Fatal("Expected right to be handled on the space field")
	}
	if m, ok := msg.(SLabelSelect); !ok || m.SLabel != "alpha" {
		t.Errorf("Expected alpha, got %#v", msg)
	}
}
