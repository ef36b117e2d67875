package state

import (
	"testing"

	"spaces-wallet-tui/rpc"
)

func TestSetWallets(t *testing.T) {
	t.Run("prunes unknown labels", func(t *testing.T) {
		var w Wallets
		w.SetWallets([]string{"a", "b"})
		w.SetCurrent("a")
		w.Data("a").Balance = 42

		w.SetWallets([]string{"b", "c"})

		if w.Contains("a") {
			t.Error("Expected a to be pruned")
		}
		if w.Data("a") != nil {
			t.Error("Expected pruned data to be gone")
		}
		if _, _, ok := w.Current(); ok {
			t.Error("Expected current selection to be dropped with its label")
		}
		got := w.Labels()
		if len(got) != 2 || got[0] != "b" || got[1] != "c" {
			t.Errorf("Expected [b c], got %v", got)
		}
	})

	t.Run("keeps data of surviving labels", func(t *testing.T) {
		var w Wallets
		w.SetWallets([]string{"a"})
		w.SetCurrent("a")
		w.Data("a").Balance = 42

		w.SetWallets([]string{"a", "b"})

		label, d, ok := w.Current()
		if !ok || label != "a" {
			t.Fatalf("Expected current a, got %q", label)
		}
		if d.Balance != 42 {
			t.Errorf("Expected balance kept, got %d", d.Balance)
		}
	})
}

func TestSetCurrent(t *testing.T) {
	var w Wallets
	if w.SetCurrent("missing") {
		t.Error("Expected selecting an unknown label to fail")
	}

	w.SetWallets([]string{"default"})
	if w.Data("default") != nil {
		t.Error("Expected no data before first selection")
	}
	if !w.SetCurrent("default") {
		t.Fatal("Expected selection to succeed")
	}
	_, d, ok := w.Current()
	if !ok || d == nil {
		t.Fatal("Expected current wallet to have data")
	}

	w.UnsetCurrent()
	if _, _, ok := w.Current(); ok {
		t.Error("Expected no current wallet")
	}
	if w.Data("default") == nil {
		t.Error("Expected data to survive UnsetCurrent")
	}
}

func TestWalletData(t *testing.T) {
	d := &WalletData{Tip: 100, Status: rpc.SyncStatus{State: rpc.SyncComplete}}
	if !d.IsSynced(100) {
		t.Error("Expected synced at tip")
	}
	if d.IsSynced(101) {
		t.Error("Expected not synced below tip")
	}

	d.SetSpaces(rpc.ListSpacesResponse{
		Winning: []rpc.FullSpaceOut{{SpaceOut: rpc.SpaceOut{Space: &rpc.Space{Name: "@alpha"}}}},
		Owned:   []rpc.FullSpaceOut{{SpaceOut: rpc.SpaceOut{Space: &rpc.Space{Name: "@beta"}}}},
		Outbid:  []rpc.FullSpaceOut{{SpaceOut: rpc.SpaceOut{}}},
	})
	if !d.IsOwned("alpha") || !d.IsOwned("beta") {
		t.Errorf("Expected alpha and beta owned, got %+v", d)
	}
	if len(d.OutbidSpaces) != 0 {
		t.Errorf("Expected outputs without a space to be skipped, got %v", d.OutbidSpaces)
	}
}

func TestSpaces(t *testing.T) {
	var s Spaces

	if _, known := s.Covenant("example"); known {
		t.Error("Expected unknown before any lookup")
	}

	s.Set("example", nil)
	cov, known := s.Covenant("example")
	if !known || cov != nil {
		t.Errorf("Expected known unopened, got %v %v", cov, known)
	}

	s.Set("example", &rpc.FullSpaceOut{
		Txid:     "aa",
		N:        2,
		SpaceOut: rpc.SpaceOut{Space: &rpc.Space{Name: "@example", Covenant: rpc.Covenant{Type: rpc.CovenantTransfer, ExpireHeight: 900}}},
	})
	cov, known = s.Covenant("example")
	if !known || cov == nil || cov.ExpireHeight != 900 {
		t.Fatalf("Expected transfer covenant, got %v", cov)
	}
	if op, ok := s.Outpoint("example"); !ok || op != "aa:2" {
		t.Errorf("Expected outpoint aa:2, got %q", op)
	}
}

func TestAddressData(t *testing.T) {
	a := NewAddressData("bcrt1qexample")
	if a.String() != "bcrt1qexample" {
		t.Errorf("Unexpected text %q", a.String())
	}
	if a.QRCode() == "" {
		t.Error("Expected a QR rendering")
	}
	var none *AddressData
	if none.String() != "" {
		t.Error("Expected empty text for nil address")
	}
}
