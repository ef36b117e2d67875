package rpc

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// DefaultTimeout bounds every call made through a Client.
const DefaultTimeout = 8 * time.Second

// Client talks to a spaced node over JSON-RPC. It holds no wallet state and is
// safe for concurrent use.
type Client struct {
	rpc     *gethrpc.Client
	URL     string
	Timeout time.Duration
}

// Dial prepares a client for url. HTTP endpoints are not contacted until the first call.
func Dial(url string) (*Client, error) {
	return DialWithTimeout(url, DefaultTimeout)
}

// DialWithTimeout is Dial with a custom per-call timeout.
func DialWithTimeout(url string, timeout time.Duration) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return nil, classify("dial", err)
	}
	return &Client{rpc: c, URL: url, Timeout: timeout}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() {
	if c != nil && c.rpc != nil {
		c.rpc.Close()
	}
}

func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	if c == nil || c.rpc == nil {
		return &Error{Kind: KindSystem, Method: method, Message: "no RPC client (connect to spaced first)"}
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.rpc.CallContext(ctx, result, method, args...); err != nil {
		return classify(method, err)
	}
	return nil
}

func (c *Client) GetServerInfo(ctx context.Context) (ServerInfo, error) {
	var info ServerInfo
	err := c.call(ctx, &info, "getserverinfo")
	return info, err
}

func (c *Client) ListWallets(ctx context.Context) ([]string, error) {
	var wallets []string
	err := c.call(ctx, &wallets, "listwallets")
	return wallets, err
}

func (c *Client) LoadWallet(ctx context.Context, wallet string) error {
	return c.call(ctx, nil, "walletload", wallet)
}

func (c *Client) CreateWallet(ctx context.Context, wallet string) error {
	return c.call(ctx, nil, "walletcreate", wallet)
}

// ImportWallet sends an exported wallet file to the node and returns the label it
// was imported under.
func (c *Client) ImportWallet(ctx context.Context, contents string) (string, error) {
	var export struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(contents), &export); err != nil || export.Label == "" {
		return "", businessError("walletimport", "invalid wallet file")
	}
	if err := c.call(ctx, nil, "walletimport", json.RawMessage(contents)); err != nil {
		return "", err
	}
	return export.Label, nil
}

// ExportWallet returns the wallet export as indented JSON, ready to be saved.
func (c *Client) ExportWallet(ctx context.Context, wallet string) (string, error) {
	var raw json.RawMessage
	if err := c.call(ctx, &raw, "walletexport", wallet); err != nil {
		return "", err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw), nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(raw), nil
	}
	return string(out), nil
}

func (c *Client) GetWalletInfo(ctx context.Context, wallet string) (WalletInfo, error) {
	var info WalletInfo
	err := c.call(ctx, &info, "walletgetinfo", wallet)
	return info, err
}

func (c *Client) GetWalletBalance(ctx context.Context, wallet string) (Balance, error) {
	var b Balance
	err := c.call(ctx, &b, "walletgetbalance", wallet)
	return b, err
}

func (c *Client) GetWalletSpaces(ctx context.Context, wallet string) (ListSpacesResponse, error) {
	var res ListSpacesResponse
	err := c.call(ctx, &res, "walletlistspaces", wallet)
	return res, err
}

// GetWalletTransactions returns the newest count transactions.
func (c *Client) GetWalletTransactions(ctx context.Context, wallet string, count int) ([]TxInfo, error) {
	var txs []TxInfo
	err := c.call(ctx, &txs, "walletlisttransactions", wallet, count, 0)
	return txs, err
}

func (c *Client) GetWalletAddress(ctx context.Context, wallet string, kind AddressKind) (string, error) {
	var addr string
	err := c.call(ctx, &addr, "walletgetnewaddress", wallet, kind)
	return addr, err
}

// SpaceHash is the key spaced indexes a label under: sha256 of the
// length-prefixed label, hex encoded.
func SpaceHash(slabel string) string {
	b := make([]byte, 0, len(slabel)+1)
	b = append(b, byte(len(slabel)))
	b = append(b, slabel...)
	return hex.EncodeToString(chainhash.HashB(b))
}

// GetSpaceInfo returns nil with no error when the space has never been opened.
func (c *Client) GetSpaceInfo(ctx context.Context, slabel string) (*FullSpaceOut, error) {
	var out *FullSpaceOut
	if err := c.call(ctx, &out, "getspace", SpaceHash(slabel)); err != nil {
		return nil, err
	}
	return out, nil
}

type walletRequest struct {
	Request string         `json:"request"`
	Name    string         `json:"name,omitempty"`
	Spaces  []string       `json:"spaces,omitempty"`
	Amount  btcutil.Amount `json:"amount,omitempty"`
	To      *string        `json:"to,omitempty"`
}

type txBuilder struct {
	Bidouts       *int            `json:"bidouts"`
	Requests      []walletRequest `json:"requests"`
	FeeRate       *uint64         `json:"fee_rate"`
	Dust          *int64          `json:"dust"`
	Force         bool            `json:"force"`
	ConfirmedOnly bool            `json:"confirmed_only"`
	SkipTxCheck   bool            `json:"skip_tx_check"`
}

func (c *Client) sendRequest(ctx context.Context, wallet string, req walletRequest, feeRate *FeeRate) error {
	return c.call(ctx, nil, "walletsendrequest", wallet, txBuilder{
		Requests: []walletRequest{req},
		FeeRate:  feeRateParam(feeRate),
	})
}

func prefixed(slabel string) string { return "@" + slabel }

func (c *Client) SendCoins(ctx context.Context, wallet, recipient string, amount btcutil.Amount, feeRate *FeeRate) error {
	return c.sendRequest(ctx, wallet, walletRequest{Request: "send", Amount: amount, To: &recipient}, feeRate)
}

// SendSpace transfers an owned space to recipient.
func (c *Client) SendSpace(ctx context.Context, wallet, recipient, slabel string, feeRate *FeeRate) error {
	return c.sendRequest(ctx, wallet, walletRequest{Request: "transfer", Spaces: []string{prefixed(slabel)}, To: &recipient}, feeRate)
}

func (c *Client) OpenSpace(ctx context.Context, wallet, slabel string, amount btcutil.Amount, feeRate *FeeRate) error {
	return c.sendRequest(ctx, wallet, walletRequest{Request: "open", Name: prefixed(slabel), Amount: amount}, feeRate)
}

func (c *Client) BidSpace(ctx context.Context, wallet, slabel string, amount btcutil.Amount, feeRate *FeeRate) error {
	return c.sendRequest(ctx, wallet, walletRequest{Request: "bid", Name: prefixed(slabel), Amount: amount}, feeRate)
}

func (c *Client) RegisterSpace(ctx context.Context, wallet, slabel string, feeRate *FeeRate) error {
	return c.sendRequest(ctx, wallet, walletRequest{Request: "register", Name: prefixed(slabel)}, feeRate)
}

// RenewSpace transfers a registered space back to the wallet itself.
func (c *Client) RenewSpace(ctx context.Context, wallet, slabel string, feeRate *FeeRate) error {
	return c.sendRequest(ctx, wallet, walletRequest{Request: "transfer", Spaces: []string{prefixed(slabel)}}, feeRate)
}

func (c *Client) BumpFee(ctx context.Context, wallet, txid string, feeRate FeeRate) error {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil || len(txid) != chainhash.MaxHashStringSize {
		return businessError("walletbumpfee", "invalid txid")
	}
	return c.call(ctx, nil, "walletbumpfee", wallet, hash.String(), feeRate.SatPerKWU(), false)
}

func (c *Client) BuySpace(ctx context.Context, wallet string, listing Listing, feeRate *FeeRate) error {
	return c.call(ctx, nil, "walletbuy", wallet, listing, feeRateParam(feeRate), false)
}

func (c *Client) SellSpace(ctx context.Context, wallet, slabel string, price btcutil.Amount) (Listing, error) {
	var l Listing
	err := c.call(ctx, &l, "walletsell", wallet, prefixed(slabel), price)
	return l, err
}

func (c *Client) SignEvent(ctx context.Context, wallet, slabel string, event NostrEvent) (NostrEvent, error) {
	var signed NostrEvent
	err := c.call(ctx, &signed, "walletsignevent", wallet, prefixed(slabel), event)
	return signed, err
}
