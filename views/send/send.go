package send

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

type Tab int

const (
	TabCoins Tab = iota
	TabSpace
)

type field int

const (
	fieldRecipient field = iota
	fieldAmount
	fieldSLabel
	fieldFeeRate
)

func (t Tab) fields() []field {
	if t == TabSpace {
		return []field{fieldSLabel, fieldRecipient, fieldFeeRate}
	}
	return []field{fieldRecipient, fieldAmount, fieldFeeRate}
}

// State is the send screen: coins to an address or a space to a recipient.
type State struct {
	tab       Tab
	recipient string
	amount    string
	slabel    string
	feeRate   string
	focus     int
	err       string
	params    *chaincfg.Params
}

// New creates the screen; params decides which addresses are accepted.
func New(params *chaincfg.Params) State { return State{params: params} }

// Reset clears the inputs and keeps the selected tab.
func (s *State) Reset() {
	*s = State{tab: s.tab, params: s.params}
}

func (s *State) SetError(err string) { s.err = err }

func (s State) Error() string { return s.err }

func (s State) Tab() Tab { return s.tab }

type Msg interface{ sendMsg() }

type (
	TabPress       struct{ Tab Tab }
	RecipientInput struct{ Value string }
	AmountInput    struct{ Value string }
	SLabelSelect   struct{ SLabel string }
	FeeRateInput   struct{ Value string }
	FocusMove      struct{ Delta int }
	Submit         struct{}
)

func (TabPress) sendMsg()       {}
func (RecipientInput) sendMsg() {}
func (AmountInput) sendMsg()    {}
func (SLabelSelect) sendMsg()   {}
func (FeeRateInput) sendMsg()   {}
func (FocusMove) sendMsg()      {}
func (Submit) sendMsg()         {}

type Action interface{ sendAction() }

type (
	SendCoins struct {
		Recipient string
		Amount    btcutil.Amount
		FeeRate   *rpc.FeeRate
	}
	SendSpace struct {
		Recipient string
		SLabel    string
		FeeRate   *rpc.FeeRate
	}
)

func (SendCoins) sendAction() {}
func (SendSpace) sendAction() {}

func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case TabPress:
		if msg.Tab != s.tab {
			s.tab = msg.Tab
			s.focus = 0
			s.err = ""
		}
	case RecipientInput:
		if helpers.IsRecipientInput(msg.Value) {
			s.recipient = msg.Value
		}
	case AmountInput:
		if helpers.IsAmountInput(msg.Value) {
			s.amount = msg.Value
		}
	case SLabelSelect:
		s.slabel = msg.SLabel
	case FeeRateInput:
		if helpers.IsFeeRateInput(msg.Value) {
			s.feeRate = msg.Value
		}
	case FocusMove:
		s.focus = form.Cycle(s.focus, msg.Delta, len(s.tab.fields()))
	case Submit:
		return s.submit()
	}
	return nil
}

func (s State) submit() Action {
	recipient, ok := helpers.ParseRecipient(s.recipient, s.params)
	if !ok {
		return nil
	}
	rate, ok := helpers.ParseFeeRate(s.feeRate)
	if !ok {
		return nil
	}
	if s.tab == TabSpace {
		slabel, ok := helpers.ParseSLabel(s.slabel)
		if !ok {
			return nil
		}
		return SendSpace{Recipient: recipient, SLabel: slabel, FeeRate: rate}
	}
	amount, ok := helpers.ParseAmount(s.amount)
	if !ok {
		return nil
	}
	return SendCoins{Recipient: recipient, Amount: amount, FeeRate: rate}
}

// CanSubmit reports whether every field of the active tab parses.
func (s State) CanSubmit() bool { return s.submit() != nil }

func (s State) focused() field { return s.tab.fields()[s.focus] }

// Key maps a key press to a message. owned are the spaces that can be sent.
func (s State) Key(k tea.KeyMsg, owned []string) (Msg, bool) {
	switch k.String() {
	case "ctrl+t":
		if s.tab == TabCoins {
			return TabPress{Tab: TabSpace}, true
		}
		return TabPress{Tab: TabCoins}, true
	case "enter":
		return Submit{}, true
	}
	if d, ok := form.FocusDelta(k); ok {
		return FocusMove{Delta: d}, true
	}

	switch s.focused() {
	case fieldSLabel:
		switch k.String() {
		case "left":
			return SLabelSelect{SLabel: form.Step(owned, s.slabel, -1)}, true
		case "right", " ":
			return SLabelSelect{SLabel: form.Step(owned, s.slabel, 1)}, true
		}
	case fieldRecipient:
		if v, ok := form.Edit(s.recipient, k, helpers.IsRecipientInput); ok {
			return RecipientInput{Value: v}, true
		}
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

func tabs(active Tab) string {
	names := []string{"Coins", "Space"}
	out := make([]string, len(names))
	for i, n := range names {
		if Tab(i) == active {
			out[i] = styles.ActiveTabStyle.Render(n)
		} else {
			out[i] = styles.TabStyle.Render(n)
		}
	}
	return strings.Join(out, " ")
}

func (s State) View(width int) string {
	w := helpers.Min(width-8, 64)
	_, recipientOK := helpers.ParseRecipient(s.recipient, s.params)
	_, amountOK := helpers.ParseAmount(s.amount)
	_, rateOK := helpers.ParseFeeRate(s.feeRate)

	rows := []string{styles.TitleStyle.Render("Send"), tabs(s.tab)}
	for i, f := range s.tab.fields() {
		focused := i == s.focus
		switch f {
		case fieldRecipient:
			placeholder := "bitcoin address or @space"
			rows = append(rows, form.Field{Label: "Recipient", Placeholder: placeholder, Value: s.recipient, Focused: focused, Invalid: s.recipient != "" && !recipientOK}.View(w))
		case fieldAmount:
			rows = append(rows, form.Field{Label: "Amount (sat)", Placeholder: "0", Value: s.amount, Focused: focused, Invalid: s.amount != "" && !amountOK}.View(w))
		case fieldSLabel:
			rows = append(rows, form.Choice("Space", s.slabel, "press → to pick an owned space", focused, w))
		case fieldFeeRate:
			rows = append(rows, form.Field{Label: "Fee rate (sat/vB)", Placeholder: "auto", Value: s.feeRate, Focused: focused, Invalid: !rateOK}.View(w))
		}
	}
	label := "Send coins"
	if s.tab == TabSpace {
		label = "Send space"
	}
	rows = append(rows, form.Button(label, s.CanSubmit()), form.Error(s.err))
	return form.Stack(rows...)
}

// Nav returns the navigation bar for send view
func (s State) Nav(width int) string {
	keys := []string{
		styles.Key("Tab") + " next field",
		styles.Key("Ctrl+T") + " coins/space",
		styles.Key("Enter") + " send",
	}
	if s.focused() == fieldSLabel {
		keys = append(keys, styles.Key("←/→")+" pick space")
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
