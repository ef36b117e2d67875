package market

import (
	"strings"
	"testing"

	"spaces-wallet-tui/rpc"
)

const listing = `{"space":"@example","price":5000,"seller":"bcrt1qseller","signature":"ab"}`

func TestBuy(t *testing.T) {
	var s State
	s.Update(ListingInput{Value: "{"})
	if s.Update(BuySubmit{}) != nil {
		t.Fatal("Expected an invalid listing to be rejected")
	}

	s.Update(ListingInput{Value: listing})
	a, ok := s.Update(BuySubmit{}).(Buy)
	if !ok {
		t.Fatal("Expected Buy")
	}
	if a.Listing.Space != "@example" || a.Listing.Price != 5000 || a.FeeRate != nil {
		t.Errorf("Unexpected action %+v", a)
	}
}

func TestSellAndCopy(t *testing.T) {
	var s State
	s.Update(TabPress{Tab: TabSell})
	s.Update(SLabelSelect{SLabel: "example"})
	s.Update(PriceInput{Value: "5000"})

	a, ok := s.Update(SellSubmit{}).(Sell)
	if !ok || a.SLabel != "example" || a.Price != 5000 {
		t.Fatalf("Expected Sell, got %#v", a)
	}

	s.SetListing(rpc.Listing{Space: "@example", Price: 5000, Seller: "bcrt1qseller", Signature: "ab"})
	c, ok := s.Update(CopyListing{}).(WriteClipboard)
	if !ok || !strings.Contains(c.Text, `"signature":"ab"`) {
		t.Errorf("Expected the listing JSON on the clipboard, got %#v", c)
	}

	s.Update(DismissListing{})
	if _, ok := s.Listing(); ok {
		t.Error("Expected the listing to be dismissed")
	}
}
