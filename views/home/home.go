package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/state"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

// PageSize is how many more transactions are requested when the list is scrolled
// to its end.
const PageSize = 10

// State is the home screen: balance, transactions and the bump fee form.
type State struct {
	txid    string
	feeRate string
	limit   int
	cursor  int
	err     string
}

func New() State { return State{limit: PageSize} }

func (s *State) Reset() { *s = New() }

func (s *State) SetError(err string) { s.err = err }

func (s State) Error() string { return s.err }

// Limit is the number of transactions to request.
func (s State) Limit() int { return s.limit }

// Txid is the transaction selected for a fee bump, "" when the form is closed.
func (s State) Txid() string { return s.txid }

type Msg interface{ homeMsg() }

type (
	CursorMove struct {
		Delta int
		Count int
	}
	SpacePress    struct{ SLabel string }
	BumpFeePress  struct{ Txid string }
	FeeRateInput  struct{ Value string }
	BumpFeeSubmit struct{}
	Cancel        struct{}
)

func (CursorMove) homeMsg()    {}
func (SpacePress) homeMsg()    {}
func (BumpFeePress) homeMsg()  {}
func (FeeRateInput) homeMsg()  {}
func (BumpFeeSubmit) homeMsg() {}
func (Cancel) homeMsg()        {}

type Action interface{ homeAction() }

type (
	ShowSpace       struct{ SLabel string }
	GetTransactions struct{}
	BumpFee         struct {
		Txid    string
		FeeRate rpc.FeeRate
	}
)

func (ShowSpace) homeAction()       {}
func (GetTransactions) homeAction() {}
func (BumpFee) homeAction()         {}

// Update applies msg and returns the action it asks for, or nil.
func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case CursorMove:
		if msg.Count == 0 {
			s.cursor = 0
			return nil
		}
		s.cursor = helpers.Clamp(s.cursor+msg.Delta, 0, msg.Count-1)
		// a full window means there may be more to fetch
		if msg.Count >= s.limit && s.cursor >= msg.Count-2 {
			s.limit += PageSize
			return GetTransactions{}
		}
	case SpacePress:
		return ShowSpace{SLabel: msg.SLabel}
	case BumpFeePress:
		s.txid = msg.Txid
		s.feeRate = ""
		s.err = ""
	case FeeRateInput:
		if helpers.IsFeeRateInput(msg.Value) {
			s.feeRate = msg.Value
		}
	case BumpFeeSubmit:
		rate, ok := helpers.ParseFeeRate(s.feeRate)
		if s.txid == "" || !ok || rate == nil {
			return nil
		}
		return BumpFee{Txid: s.txid, FeeRate: *rate}
	case Cancel:
		s.txid = ""
		s.feeRate = ""
		s.err = ""
	}
	return nil
}

// Key maps a key press to a message given the transactions on screen.
func (s State) Key(k tea.KeyMsg, txs []rpc.TxInfo) (Msg, bool) {
	if s.txid != "" {
		switch k.String() {
		case "enter":
			return BumpFeeSubmit{}, true
		case "esc":
			return Cancel{}, true
		}
		if v, ok := form.Edit(s.feeRate, k, helpers.IsFeeRateInput); ok {
			return FeeRateInput{Value: v}, true
		}
		return nil, false
	}

	switch k.String() {
	case "up", "k":
		return CursorMove{Delta: -1, Count: len(txs)}, true
	case "down", "j":
		return CursorMove{Delta: 1, Count: len(txs)}, true
	}

	tx, ok := s.selected(txs)
	if !ok {
		return nil, false
	}
	switch k.String() {
	case "enter":
		for _, ev := range tx.Events {
			if label, ok := ev.SpaceLabel(); ok {
				return SpacePress{SLabel: label}, true
			}
		}
	case "b":
		if !tx.Confirmed {
			return BumpFeePress{Txid: tx.Txid}, true
		}
	}
	return nil, false
}

func (s State) selected(txs []rpc.TxInfo) (rpc.TxInfo, bool) {
	if len(txs) == 0 {
		return rpc.TxInfo{}, false
	}
	return txs[helpers.Clamp(s.cursor, 0, len(txs)-1)], true
}

// Describe summarizes what a transaction did for the wallet.
func Describe(tx rpc.TxInfo) string {
	for _, ev := range tx.Events {
		label, _ := ev.SpaceLabel()
		switch ev.Kind {
		case rpc.EventOpen:
			return "Opened @" + label
		case rpc.EventBid:
			return "Bid on @" + label
		case rpc.EventRegister:
			return "Registered @" + label
		case rpc.EventTransfer:
			return "Transferred @" + label
		case rpc.EventBuy:
			return "Bought @" + label
		case rpc.EventSell:
			return "Sold @" + label
		case rpc.EventFeeBump:
			return "Fee bump"
		case rpc.EventCommit:
			return "Commitment"
		case rpc.EventBidout:
			return "Bid outputs"
		}
	}
	if tx.Net() >= 0 {
		return "Received coins"
	}
	return "Sent coins"
}

func status(tx rpc.TxInfo, tip uint32) string {
	if !tx.Confirmed || tx.BlockHeight == nil {
		return styles.MutedStyle.Foreground(styles.CWarn).Render("unconfirmed")
	}
	return styles.Muted(helpers.HeightToPastEst(*tx.BlockHeight, tip))
}

// View renders the home screen for the current wallet.
func (s State) View(tip uint32, w *state.WalletData, width int) string {
	title := styles.TitleStyle.Render("Balance")
	if w == nil {
		return form.Stack(title, styles.Muted("No wallet loaded. Pick one in Settings."))
	}
	balance := lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(helpers.FormatAmount(w.Balance))

	var rows []string
	if len(w.Transactions) == 0 {
		rows = append(rows, styles.Muted("No transactions yet."))
	}
	cursor := helpers.Clamp(s.cursor, 0, len(w.Transactions)-1)
	for i, tx := range w.Transactions {
		net := tx.Net()
		amount := styles.GoodStyle.Render("+" + helpers.FormatAmount(net))
		if net < 0 {
			amount = styles.ErrorStyle.UnsetBold().Render(helpers.FormatAmount(net))
		}
		desc := Describe(tx)
		if i == cursor {
			desc = styles.SelectedStyle.Render(desc)
		}
		rows = append(rows, fmt.Sprintf("%s%-28s %s  %s  %s",
			styles.Marker(i == cursor), desc, amount, styles.Muted(helpers.ShortenTxid(tx.Txid)), status(tx, tip)))
	}

	list := styles.TitleStyle.Render("Transactions") + "\n" + strings.Join(rows, "\n")
	if len(w.Transactions) >= s.limit {
		list += "\n" + styles.Muted("  ↓ more")
	}

	body := form.Stack(title+"\n"+balance, list)
	if s.txid != "" {
		rate, ok := helpers.ParseFeeRate(s.feeRate)
		bump := form.Stack(
			styles.TitleStyle.Render("Bump fee")+"\n"+styles.Muted(s.txid),
			form.Field{Label: "Fee rate (sat/vB)", Placeholder: "required", Value: s.feeRate, Focused: true, Invalid: s.feeRate != "" && !ok}.View(20),
			form.Button("Bump fee", ok && rate != nil),
			form.Error(s.err),
		)
		body = form.Stack(body, styles.PanelStyle.Width(helpers.Min(width, 80)).Render(bump))
	} else if s.err != "" {
		body = form.Stack(body, form.Error(s.err))
	}
	return body
}

// Nav returns the navigation bar for home view
func (s State) Nav(width int) string {
	var keys []string
	if s.txid != "" {
		keys = []string{
			styles.Key("Enter") + " bump",
			styles.Key("Esc") + " cancel",
		}
	} else {
		keys = []string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " open space",
			styles.Key("b") + " bump fee",
		}
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
