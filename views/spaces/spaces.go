package spaces

import (
	"fmt"
	"slices"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/state"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

// Mode is the view the screen shows for the selected label.
type Mode int

const (
	ModeList Mode = iota
	ModeLoading
	ModeOpen
	ModeBid
	ModeClaim
	ModeClaimed
	ModeRenew
	ModeRegistered
	ModeReserved
)

// Context is the cached data the screen reads.
type Context struct {
	Tip    uint32
	Spaces *state.Spaces
	Wallet *state.WalletData
}

// ModeFor derives the view for slabel from the cache. An absent cache entry
// means the lookup is still in flight.
func ModeFor(slabel string, ctx Context) Mode {
	if slabel == "" {
		return ModeList
	}
	cov, known := ctx.Spaces.Covenant(slabel)
	if !known {
		return ModeLoading
	}
	if cov == nil {
		return ModeOpen
	}
	owned := ctx.Wallet.IsOwned(slabel)
	switch cov.Type {
	case rpc.CovenantBid:
		if cov.ClaimHeight != nil && *cov.ClaimHeight <= ctx.Tip {
			if owned {
				return ModeClaim
			}
			return ModeClaimed
		}
		return ModeBid
	case rpc.CovenantTransfer:
		if owned {
			return ModeRenew
		}
		return ModeRegistered
	default:
		return ModeReserved
	}
}

type field int

const (
	fieldAmount field = iota
	fieldFeeRate
)

func (m Mode) fields() []field {
	switch m {
	case ModeOpen, ModeBid:
		return []field{fieldAmount, fieldFeeRate}
	case ModeClaim, ModeRenew:
		return []field{fieldFeeRate}
	}
	return nil
}

// State is the spaces screen: the wallet's spaces and the per-space forms.
type State struct {
	search  string
	slabel  string
	amount  string
	feeRate string
	focus   int
	cursor  int
	err     string
}

// Reset returns to the list.
func (s *State) Reset() { *s = State{} }

// ResetInputs clears the forms and keeps the selected space.
func (s *State) ResetInputs() {
	*s = State{slabel: s.slabel, search: s.search, cursor: s.cursor}
}

// SetSLabel selects a space and clears the forms.
func (s *State) SetSLabel(slabel string) {
	*s = State{slabel: slabel, cursor: s.cursor}
}

// SLabel returns the selected space, "" on the list.
func (s State) SLabel() string { return s.slabel }

func (s *State) SetError(err string) { s.err = err }

func (s State) Error() string { return s.err }

type Msg interface{ spacesMsg() }

type (
	SearchInput  struct{ Value string }
	SLabelSet    struct{ SLabel string }
	Back         struct{}
	CursorMove   struct{ Delta, Count int }
	AmountInput  struct{ Value string }
	FeeRateInput struct{ Value string }
	FocusMove    struct{ Delta, Count int }
	OpenSubmit   struct{}
	// BidSubmit carries the current highest bid the new bid has to beat.
	BidSubmit      struct{ Current btcutil.Amount }
	RegisterSubmit struct{}
	RenewSubmit    struct{}
)

func (SearchInput) spacesMsg()    {}
func (SLabelSet) spacesMsg()      {}
func (Back) spacesMsg()           {}
func (CursorMove) spacesMsg()     {}
func (AmountInput) spacesMsg()    {}
func (FeeRateInput) spacesMsg()   {}
func (FocusMove) spacesMsg()      {}
func (OpenSubmit) spacesMsg()     {}
func (BidSubmit) spacesMsg()      {}
func (RegisterSubmit) spacesMsg() {}
func (RenewSubmit) spacesMsg()    {}

type Action interface{ spacesAction() }

type (
	GetSpaceInfo struct{ SLabel string }
	ListSpaces   struct{}
	OpenSpace    struct {
		SLabel  string
		Amount  btcutil.Amount
		FeeRate *rpc.FeeRate
	}
	BidSpace struct {
		SLabel  string
		Amount  btcutil.Amount
		FeeRate *rpc.FeeRate
	}
	RegisterSpace struct {
		SLabel  string
		FeeRate *rpc.FeeRate
	}
	RenewSpace struct {
		SLabel  string
		FeeRate *rpc.FeeRate
	}
)

func (GetSpaceInfo) spacesAction()  {}
func (ListSpaces) spacesAction()    {}
func (OpenSpace) spacesAction()     {}
func (BidSpace) spacesAction()      {}
func (RegisterSpace) spacesAction() {}
func (RenewSpace) spacesAction()    {}

func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case SearchInput:
		if helpers.IsSLabelInput(msg.Value) {
			s.search = msg.Value
		}
	case SLabelSet:
		slabel, ok := helpers.ParseSLabel(msg.SLabel)
		if !ok {
			return nil
		}
		s.SetSLabel(slabel)
		return GetSpaceInfo{SLabel: slabel}
	case Back:
		s.Reset()
		return ListSpaces{}
	case CursorMove:
		s.cursor = helpers.Clamp(s.cursor+msg.Delta, 0, msg.Count-1)
	case AmountInput:
		if helpers.IsAmountInput(msg.Value) {
			s.amount = msg.Value
		}
	case FeeRateInput:
		if helpers.IsFeeRateInput(msg.Value) {
			s.feeRate = msg.Value
		}
	case FocusMove:
		s.focus = form.Cycle(s.focus, msg.Delta, msg.Count)
	case OpenSubmit:
		amount, okAmount := helpers.ParseAmount(s.amount)
		rate, okRate := helpers.ParseFeeRate(s.feeRate)
		if s.slabel == "" || !okAmount || !okRate {
			return nil
		}
		return OpenSpace{SLabel: s.slabel, Amount: amount, FeeRate: rate}
	case BidSubmit:
		amount, okAmount := helpers.ParseAmount(s.amount)
		rate, okRate := helpers.ParseFeeRate(s.feeRate)
		if s.slabel == "" || !okAmount || !okRate || amount <= msg.Current {
			return nil
		}
		return BidSpace{SLabel: s.slabel, Amount: amount, FeeRate: rate}
	case RegisterSubmit:
		rate, ok := helpers.ParseFeeRate(s.feeRate)
		if s.slabel == "" || !ok {
			return nil
		}
		return RegisterSpace{SLabel: s.slabel, FeeRate: rate}
	case RenewSubmit:
		rate, ok := helpers.ParseFeeRate(s.feeRate)
		if s.slabel == "" || !ok {
			return nil
		}
		return RenewSpace{SLabel: s.slabel, FeeRate: rate}
	}
	return nil
}

// Items returns the spaces listed on the screen, registered first.
func Items(w *state.WalletData) []string { return w.AllSpaces() }

func (s State) submitFor(mode Mode, ctx Context) Msg {
	switch mode {
	case ModeOpen:
		return OpenSubmit{}
	case ModeBid:
		cov, _ := ctx.Spaces.Covenant(s.slabel)
		return BidSubmit{Current: cov.TotalBurned}
	case ModeClaim:
		return RegisterSubmit{}
	case ModeRenew:
		return RenewSubmit{}
	}
	return nil
}

// CanSubmit reports whether the form shown in mode would produce an action.
func (s State) CanSubmit(mode Mode, ctx Context) bool {
	msg := s.submitFor(mode, ctx)
	if msg == nil {
		return false
	}
	return s.Update(msg) != nil
}

func (s State) Key(k tea.KeyMsg, ctx Context) (Msg, bool) {
	mode := ModeFor(s.slabel, ctx)
	if mode == ModeList {
		items := Items(ctx.Wallet)
		switch k.String() {
		case "up":
			return CursorMove{Delta: -1, Count: len(items)}, true
		case "down":
			return CursorMove{Delta: 1, Count: len(items)}, true
		case "enter":
			if s.search != "" {
				return SLabelSet{SLabel: s.search}, true
			}
			if len(items) > 0 {
				return SLabelSet{SLabel: items[helpers.Clamp(s.cursor, 0, len(items)-1)]}, true
			}
			return nil, false
		}
		if v, ok := form.Edit(s.search, k, helpers.IsSLabelInput); ok {
			return SearchInput{Value: v}, true
		}
		return nil, false
	}

	switch k.String() {
	case "esc":
		return Back{}, true
	case "enter":
		if msg := s.submitFor(mode, ctx); msg != nil {
			return msg, true
		}
		return nil, false
	}
	fields := mode.fields()
	if len(fields) == 0 {
		return nil, false
	}
	if d, ok := form.FocusDelta(k); ok {
		return FocusMove{Delta: d, Count: len(fields)}, true
	}
	switch fields[helpers.Clamp(s.focus, 0, len(fields)-1)] {
	case fieldAmount:
		if v, ok := form.Edit(s.amount, k, helpers.IsAmountInput); ok {
			return AmountInput{Value: v}, true
		}
	case fieldFeeRate:
		if v, ok := form.Edit(s.feeRate, k, helpers.IsFeeRateInput); ok {
			return FeeRateInput{Value: v}, true
		}
	}
	return nil, false
}

func describe(slabel string, ctx Context) string {
	cov, known := ctx.Spaces.Covenant(slabel)
	switch {
	case !known:
		return styles.Muted("loading…")
	case cov == nil:
		return styles.Muted("not opened")
	case cov.Type == rpc.CovenantTransfer:
		return "registered, expires " + helpers.HeightToFutureEst(cov.ExpireHeight, ctx.Tip)
	case cov.Type == rpc.CovenantBid && cov.ClaimHeight == nil:
		return "pre-auction, bid " + helpers.FormatAmount(cov.TotalBurned)
	case cov.Type == rpc.CovenantBid:
		return "bid " + helpers.FormatAmount(cov.TotalBurned) + ", claim " + helpers.HeightToFutureEst(*cov.ClaimHeight, ctx.Tip)
	}
	return styles.Muted("reserved")
}

func (s State) listView(ctx Context, width int) string {
	w := helpers.Min(width-8, 40)
	search := form.Field{Label: "Search", Placeholder: "space name", Value: s.search, Focused: true}.View(w)

	items := Items(ctx.Wallet)
	var rows []string
	if ctx.Wallet == nil {
		return form.Stack(styles.TitleStyle.Render("Spaces"), search)
	}
	if len(items) == 0 {
		rows = append(rows, styles.Muted("This wallet holds no spaces yet. Search a name to open an auction."))
	}
	cursor := helpers.Clamp(s.cursor, 0, len(items)-1)
	for i, label := range items {
		name := "@" + label
		if i == cursor {
			name = styles.SelectedStyle.Render(name)
		}
		tag := ""
		if slices.Contains(ctx.Wallet.OutbidSpaces, label) {
			tag = styles.ErrorStyle.UnsetBold().Render(" outbid")
		}
		rows = append(rows, fmt.Sprintf("%s%-24s %s%s", styles.Marker(i == cursor), name, describe(label, ctx), tag))
	}
	return form.Stack(styles.TitleStyle.Render("Spaces"), search, strings.Join(rows, "\n"))
}

func (s State) View(ctx Context, width int) string {
	mode := ModeFor(s.slabel, ctx)
	if mode == ModeList {
		return s.listView(ctx, width)
	}

	w := helpers.Min(width-8, 40)
	header := styles.TitleStyle.Render("@" + s.slabel)
	var info []string
	cov, _ := ctx.Spaces.Covenant(s.slabel)
	if op, ok := ctx.Spaces.Outpoint(s.slabel); ok {
		info = append(info, styles.LabelStyle.Render("Outpoint")+styles.Muted(helpers.ShortenTxid(op)))
	}

	var title, button string
	switch mode {
	case ModeLoading:
		return form.Stack(header, styles.Muted("loading…"))
	case ModeOpen:
		info = append(info, styles.Muted("This space is available. Open an auction with an initial bid."))
		title, button = "Open auction", "Open"
	case ModeBid:
		info = append(info, styles.LabelStyle.Render("Highest bid")+styles.ValueStyle.Render(helpers.FormatAmount(cov.TotalBurned)))
		if cov.ClaimHeight != nil {
			info = append(info, styles.LabelStyle.Render("Claim")+helpers.HeightToFutureEst(*cov.ClaimHeight, ctx.Tip))
		} else {
			info = append(info, styles.LabelStyle.Render("Auction")+"pre-auction")
		}
		title, button = "Place bid", "Bid"
	case ModeClaim:
		info = append(info, styles.GoodStyle.Render("You won the auction. Register the space to claim it."))
		title, button = "Register", "Register"
	case ModeClaimed:
		info = append(info, styles.Muted("The auction has ended and the winner may register it."))
	case ModeRenew, ModeRegistered:
		info = append(info, styles.LabelStyle.Render("Expires")+helpers.HeightToFutureEst(cov.ExpireHeight, ctx.Tip))
		if mode == ModeRenew {
			title, button = "Renew", "Renew"
		}
	case ModeReserved:
		info = append(info, styles.Muted("This name is reserved."))
	}

	blocks := []string{header, strings.Join(info, "\n")}
	if title != "" {
		_, amountOK := helpers.ParseAmount(s.amount)
		_, rateOK := helpers.ParseFeeRate(s.feeRate)
		fields := mode.fields()
		rows := []string{styles.TitleStyle.Render(title)}
		for i, f := range fields {
			focused := i == helpers.Clamp(s.focus, 0, len(fields)-1)
			switch f {
			case fieldAmount:
				rows = append(rows, form.Field{Label: "Amount (sat)", Placeholder: "0", Value: s.amount, Focused: focused, Invalid: s.amount != "" && !amountOK}.View(w))
			case fieldFeeRate:
				rows = append(rows, form.Field{Label: "Fee rate (sat/vB)", Placeholder: "auto", Value: s.feeRate, Focused: focused, Invalid: !rateOK}.View(w))
			}
		}
		rows = append(rows, form.Button(button, s.CanSubmit(mode, ctx)))
		blocks = append(blocks, styles.PanelStyle.Render(form.Stack(rows...)))
	}
	blocks = append(blocks, form.Error(s.err))
	return form.Stack(blocks...)
}

// Nav returns the navigation bar for spaces view
func (s State) Nav(width int) string {
	var keys []string
	if s.slabel == "" {
		keys = []string{
			styles.Key("type") + " search",
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " open",
		}
	} else {
		keys = []string{
			styles.Key("Tab") + " next field",
			styles.Key("Enter") + " submit",
			styles.Key("Esc") + " back",
		}
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
