package rpc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// AddressKind selects which kind of receive address the wallet derives.
type AddressKind string

const (
	AddressCoin  AddressKind = "coin"
	AddressSpace AddressKind = "space"
)

// FeeRate is a user supplied fee rate in sat/vB.
type FeeRate uint64

// SatPerKWU converts the rate to the unit the node expects on the wire.
func (r FeeRate) SatPerKWU() uint64 { return uint64(r) * 250 }

func feeRateParam(r *FeeRate) *uint64 {
	if r == nil {
		return nil
	}
	v := r.SatPerKWU()
	return &v
}

// ServerInfo is the answer to getserverinfo.
type ServerInfo struct {
	Network string    `json:"network"`
	Tip     ChainTip  `json:"tip"`
	Chain   ChainInfo `json:"chain"`
}

type ChainTip struct {
	Hash   string `json:"hash"`
	Height uint32 `json:"height"`
}

type ChainInfo struct {
	Blocks  uint32 `json:"blocks"`
	Headers uint32 `json:"headers"`
}

const (
	SyncComplete = "complete"
)

// SyncStatus reports how far a wallet has caught up with the chain.
type SyncStatus struct {
	State     string `json:"state"`
	Total     uint32 `json:"total,omitempty"`
	Completed uint32 `json:"completed,omitempty"`
}

func (s SyncStatus) Complete() bool { return s.State == SyncComplete }

type WalletInfo struct {
	Label      string     `json:"label"`
	SyncHeight uint32     `json:"tip"`
	Status     SyncStatus `json:"status"`
}

type Balance struct {
	Balance btcutil.Amount `json:"balance"`
}

type CovenantType string

const (
	CovenantBid      CovenantType = "bid"
	CovenantTransfer CovenantType = "transfer"
	CovenantReserved CovenantType = "reserved"
)

// Covenant describes the auction or ownership state a space output is locked under.
type Covenant struct {
	Type          CovenantType   `json:"type"`
	TotalBurned   btcutil.Amount `json:"total_burned,omitempty"`
	BurnIncrement btcutil.Amount `json:"burn_increment,omitempty"`
	ClaimHeight   *uint32        `json:"claim_height,omitempty"`
	ExpireHeight  uint32         `json:"expire_height,omitempty"`
}

type Space struct {
	Name     string   `json:"name"`
	Covenant Covenant `json:"covenant"`
}

// Label is the space name without its "@" prefix.
func (s Space) Label() string { return strings.TrimPrefix(s.Name, "@") }

type SpaceOut struct {
	Value        btcutil.Amount `json:"value"`
	ScriptPubkey string         `json:"script_pubkey"`
	Space        *Space         `json:"space,omitempty"`
}

type FullSpaceOut struct {
	Txid     string   `json:"txid"`
	N        uint32   `json:"n"`
	SpaceOut SpaceOut `json:"spaceout"`
}

func (o FullSpaceOut) Outpoint() string { return fmt.Sprintf("%s:%d", o.Txid, o.N) }

// Label returns the space label held by the output, or "" when the output carries none.
func (o FullSpaceOut) Label() string {
	if o.SpaceOut.Space == nil {
		return ""
	}
	return o.SpaceOut.Space.Label()
}

type ListSpacesResponse struct {
	Winning []FullSpaceOut `json:"winning"`
	Outbid  []FullSpaceOut `json:"outbid"`
	Owned   []FullSpaceOut `json:"owned"`
}

type TxEventKind string

const (
	EventCommit   TxEventKind = "commit"
	EventBidout   TxEventKind = "bidout"
	EventOpen     TxEventKind = "open"
	EventBid      TxEventKind = "bid"
	EventRegister TxEventKind = "register"
	EventTransfer TxEventKind = "transfer"
	EventSend     TxEventKind = "send"
	EventFeeBump  TxEventKind = "fee-bump"
	EventBuy      TxEventKind = "buy"
	EventSell     TxEventKind = "sell"
)

type TxEvent struct {
	Kind    TxEventKind     `json:"type"`
	Space   *string         `json:"space,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// SpaceLabel returns the unprefixed label the event touches, if any.
func (e TxEvent) SpaceLabel() (string, bool) {
	if e.Space == nil || *e.Space == "" {
		return "", false
	}
	return strings.TrimPrefix(*e.Space, "@"), true
}

// Amount extracts the bid or open amount carried in the event details.
func (e TxEvent) Amount() (btcutil.Amount, bool) {
	if len(e.Details) == 0 {
		return 0, false
	}
	var d struct {
		Amount     *btcutil.Amount `json:"amount"`
		InitialBid *btcutil.Amount `json:"initial_bid"`
		BidCurrent *btcutil.Amount `json:"bid_current"`
	}
	if err := json.Unmarshal(e.Details, &d); err != nil {
		return 0, false
	}
	switch {
	case d.BidCurrent != nil:
		return *d.BidCurrent, true
	case d.InitialBid != nil:
		return *d.InitialBid, true
	case d.Amount != nil:
		return *d.Amount, true
	}
	return 0, false
}

type TxInfo struct {
	Txid        string          `json:"txid"`
	Confirmed   bool            `json:"confirmed"`
	BlockHeight *uint32         `json:"block_height,omitempty"`
	Sent        btcutil.Amount  `json:"sent"`
	Received    btcutil.Amount  `json:"received"`
	Fee         *btcutil.Amount `json:"fee,omitempty"`
	Events      []TxEvent       `json:"events"`
}

// Net is received minus sent.
func (t TxInfo) Net() btcutil.Amount { return t.Received - t.Sent }

// Listing is a signed offer to sell a space.
type Listing struct {
	Space     string         `json:"space"`
	Price     btcutil.Amount `json:"price"`
	Seller    string         `json:"seller"`
	Signature string         `json:"signature"`
}

// ParseListing decodes a listing pasted by the user.
func ParseListing(s string) (Listing, error) {
	var l Listing
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &l); err != nil {
		return Listing{}, fmt.Errorf("invalid listing: %w", err)
	}
	if l.Space == "" || l.Seller == "" || l.Signature == "" || l.Price <= 0 {
		return Listing{}, fmt.Errorf("invalid listing: missing fields")
	}
	return l, nil
}

// NostrEvent is the event shape accepted and returned by walletsignevent.
type NostrEvent struct {
	ID        string     `json:"id,omitempty"`
	Pubkey    string     `json:"pubkey,omitempty"`
	CreatedAt int64      `json:"created_at"`
	Kind      int        `json:"kind"`
	Tags      [][]string `json:"tags"`
	Content   string     `json:"content"`
	Sig       string     `json:"sig,omitempty"`
}

// ParseNostrEvent decodes an event file picked by the user.
func ParseNostrEvent(contents string) (NostrEvent, error) {
	var ev NostrEvent
	if err := json.Unmarshal([]byte(contents), &ev); err != nil {
		return NostrEvent{}, fmt.Errorf("invalid event file: %w", err)
	}
	if ev.Tags == nil {
		ev.Tags = [][]string{}
	}
	return ev, nil
}
