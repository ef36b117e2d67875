package helpers

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"spaces-wallet-tui/rpc"
)

// MaxSLabelLen is the longest label a space may have.
const MaxSLabelLen = 62

func allRunes(s string, ok func(r rune) bool) bool {
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return true
}

func isLowerDigit(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsSLabelInput accepts partially typed space labels.
func IsSLabelInput(s string) bool {
	return allRunes(s, func(r rune) bool { return isLowerDigit(r) || r == '-' })
}

// IsRecipientInput accepts partially typed addresses and @space recipients.
func IsRecipientInput(s string) bool {
	return allRunes(s, func(r rune) bool { return isLowerDigit(r) || r == '-' || r == '@' })
}

func IsAmountInput(s string) bool { return allRunes(s, isDigit) }

func IsFeeRateInput(s string) bool { return allRunes(s, isDigit) }

// ParseSLabel validates an unprefixed space label. Reserved names such as
// "example" are accepted; spaced rejects them when a request uses them.
func ParseSLabel(s string) (string, bool) {
	if s == "" || len(s) > MaxSLabelLen || !IsSLabelInput(s) {
		return "", false
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return "", false
	}
	return s, true
}

// ParseRecipient accepts an @space or an address valid on params. A nil params
// only checks the input alphabet.
func ParseRecipient(s string, params *chaincfg.Params) (string, bool) {
	if s == "" || !IsRecipientInput(s) {
		return "", false
	}
	if label, ok := strings.CutPrefix(s, "@"); ok {
		if _, ok := ParseSLabel(label); !ok {
			return "", false
		}
		return s, true
	}
	if params == nil {
		return s, true
	}
	addr, err := btcutil.DecodeAddress(s, params)
	if err != nil || !addr.IsForNet(params) {
		return "", false
	}
	return s, true
}

// ParseAmount parses a positive satoshi amount.
func ParseAmount(s string) (btcutil.Amount, bool) {
	if s == "" || !IsAmountInput(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return btcutil.Amount(n), true
}

// ParseFeeRate parses a sat/vB rate. Empty input is valid and means automatic,
// returned as a nil rate.
func ParseFeeRate(s string) (*rpc.FeeRate, bool) {
	if s == "" {
		return nil, true
	}
	if !IsFeeRateInput(s) {
		return nil, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return nil, false
	}
	r := rpc.FeeRate(n)
	return &r, true
}
