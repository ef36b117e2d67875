package market

import (
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

type Tab int

const (
	TabBuy Tab = iota
	TabSell
)

// State is the market screen.
type State struct {
	tab     Tab
	listing string
	feeRate string
	slabel  string
	price   string
	focus   int
	err     string
	result  *rpc.Listing
}

func (s *State) Reset() { *s = State{tab: s.tab} }

func (s *State) SetError(err string) { s.err = err }

func (s State) Error() string { return s.err }

// SetListing shows the listing produced by a sale until dismissed.
func (s *State) SetListing(l rpc.Listing) {
	*s = State{tab: TabSell, result: &l}
}

// Listing returns the listing shown after a sale.
func (s State) Listing() (rpc.Listing, bool) {
	if s.result == nil {
		return rpc.Listing{}, false
	}
	return *s.result, true
}

type Msg interface{ marketMsg() }

type (
	TabPress       struct{ Tab Tab }
	ListingInput   struct{ Value string }
	FeeRateInput   struct{ Value string }
	SLabelSelect   struct{ SLabel string }
	PriceInput     struct{ Value string }
	FocusMove      struct{ Delta int }
	BuySubmit      struct{}
	SellSubmit     struct{}
	CopyListing    struct{}
	DismissListing struct{}
)

func (TabPress) marketMsg()       {}
func (ListingInput) marketMsg()   {}
func (FeeRateInput) marketMsg()   {}
func (SLabelSelect) marketMsg()   {}
func (PriceInput) marketMsg()     {}
func (FocusMove) marketMsg()      {}
func (BuySubmit) marketMsg()      {}
func (SellSubmit) marketMsg()     {}
func (CopyListing) marketMsg()    {}
func (DismissListing) marketMsg() {}

type Action interface{ marketAction() }

type (
	Buy struct {
		Listing rpc.Listing
		FeeRate *rpc.FeeRate
	}
	Sell struct {
		SLabel string
		Price  btcutil.Amount
	}
	WriteClipboard struct{ Text string }
)

func (Buy) marketAction()            {}
func (Sell) marketAction()           {}
func (WriteClipboard) marketAction() {}

// both tabs have two fields
const fieldCount = 2

func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case TabPress:
		if msg.Tab != s.tab {
			s.tab = msg.Tab
			s.focus = 0
			s.err = ""
		}
	case ListingInput:
		s.listing = msg.Value
	case FeeRateInput:
		if helpers.IsFeeRateInput(msg.Value) {
			s.feeRate = msg.Value
		}
	case SLabelSelect:
		s.slabel = msg.SLabel
	case PriceInput:
		if helpers.IsAmountInput(msg.Value) {
			s.price = msg.Value
		}
	case FocusMove:
		s.focus = form.Cycle(s.focus, msg.Delta, fieldCount)
	case BuySubmit:
		return s.buy()
	case SellSubmit:
		return s.sell()
	case CopyListing:
		if s.result != nil {
			b, err := json.Marshal(s.result)
			if err != nil {
				s.err = err.Error()
				return nil
			}
			return WriteClipboard{Text: string(b)}
		}
	case DismissListing:
		s.result = nil
	}
	return nil
}

func (s State) buy() Action {
	l, err := rpc.ParseListing(s.listing)
	if err != nil {
		return nil
	}
	rate, ok := helpers.ParseFeeRate(s.feeRate)
	if !ok {
		return nil
	}
	return Buy{Listing: l, FeeRate: rate}
}

func (s State) sell() Action {
	slabel, ok := helpers.ParseSLabel(s.slabel)
	if !ok {
		return nil
	}
	price, ok := helpers.ParseAmount(s.price)
	if !ok {
		return nil
	}
	return Sell{SLabel: slabel, Price: price}
}

func (s State) CanSubmit() bool {
	if s.tab == TabSell {
		return s.sell() != nil
	}
	return s.buy() != nil
}

// Key maps a key press to a message. owned are the spaces that can be listed.
func (s State) Key(k tea.KeyMsg, owned []string) (Msg, bool) {
	if s.result != nil {
		switch k.String() {
		case "c", "enter":
			return CopyListing{}, true
		case "esc":
			return DismissListing{}, true
		}
		return nil, false
	}
	switch k.String() {
	case "ctrl+t":
		if s.tab == TabBuy {
			return TabPress{Tab: TabSell}, true
		}
		return TabPress{Tab: TabBuy}, true
	case "enter":
		if s.tab == TabSell {
			return SellSubmit{}, true
		}
		return BuySubmit{}, true
	}
	if d, ok := form.FocusDelta(k); ok {
		return FocusMove{Delta: d}, true
	}
	switch {
	case s.tab == TabBuy && s.focus == 0:
		if v, ok := form.Edit(s.listing, k, nil); ok {
			return ListingInput{Value: v}, true
		}
	case s.tab == TabBuy:
		if v, ok := form.Edit(s.feeRate, k, helpers.IsFeeRateInput); ok {
			return FeeRateInput{Value: v}, true
		}
	case s.focus == 0:
		switch k.String() {
		case "left":
			return SLabelSelect{SLabel: form.Step(owned, s.slabel, -1)}, true
		case "right", " ":
			return SLabelSelect{SLabel: form.Step(owned, s.slabel, 1)}, true
		}
	default:
		if v, ok := form.Edit(s.price, k, helpers.IsAmountInput); ok {
			return PriceInput{Value: v}, true
		}
	}
	return nil, false
}

func (s State) View(width int) string {
	w := helpers.Min(width-8, 64)
	if s.result != nil {
		b, _ := json.MarshalIndent(s.result, "", "  ")
		return form.Stack(
			styles.TitleStyle.Render("Listing for "+s.result.Space),
			styles.Muted("Share this listing with a buyer."),
			styles.PanelStyle.Render(string(b)),
			form.Error(s.err),
		)
	}

	buy, sell := styles.TabStyle.Render("Buy"), styles.TabStyle.Render("Sell")
	if s.tab == TabBuy {
		buy = styles.ActiveTabStyle.Render("Buy")
	} else {
		sell = styles.ActiveTabStyle.Render("Sell")
	}
	rows := []string{styles.TitleStyle.Render("Market"), buy + " " + sell}

	if s.tab == TabBuy {
		_, listErr := rpc.ParseListing(s.listing)
		_, rateOK := helpers.ParseFeeRate(s.feeRate)
		rows = append(rows,
			form.Field{Label: "Listing (JSON)", Placeholder: "paste a listing", Value: s.listing, Focused: s.focus == 0, Invalid: s.listing != "" && listErr != nil}.View(w),
			form.Field{Label: "Fee rate (sat/vB)", Placeholder: "auto", Value: s.feeRate, Focused: s.focus == 1, Invalid: !rateOK}.View(w),
			form.Button("Buy", s.CanSubmit()),
		)
	} else {
		_, priceOK := helpers.ParseAmount(s.price)
		rows = append(rows,
			form.Choice("Space", s.slabel, "press → to pick an owned space", s.focus == 0, w),
			form.Field{Label: "Price (sat)", Placeholder: "0", Value: s.price, Focused: s.focus == 1, Invalid: s.price != "" && !priceOK}.View(w),
			form.Button("Create listing", s.CanSubmit()),
		)
	}
	rows = append(rows, form.Error(s.err))
	return form.Stack(rows...)
}

// Nav returns the navigation bar for market view
func (s State) Nav(width int) string {
	var keys []string
	if s.result != nil {
		keys = []string{styles.Key("c") + " copy listing", styles.Key("Esc") + " done"}
	} else {
		keys = []string{
			styles.Key("Tab") + " next field",
			styles.Key("Ctrl+T") + " buy/sell",
			styles.Key("Enter") + " submit",
		}
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
