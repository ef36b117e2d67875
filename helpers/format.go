package helpers

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
)

// BlockInterval is the expected minutes between blocks.
const BlockInterval = 10

// FormatAmountNumber groups digits by thousands with thin spaces.
func FormatAmountNumber(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	out := make([]rune, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	for i, r := range s {
		if i != 0 && (i-lead)%3 == 0 {
			out = append(out, '\u2009')
		}
		out = append(out, r)
	}
	return string(out)
}

// FormatAmount renders a satoshi amount like "12 345 sat".
func FormatAmount(a btcutil.Amount) string {
	if a < 0 {
		return "-" + FormatAmountNumber(uint64(-a)) + " sat"
	}
	return FormatAmountNumber(uint64(a)) + " sat"
}

const (
	blocksPerHour = 60 / BlockInterval
	blocksPerDay  = 24 * blocksPerHour
)

// HeightToFutureEst estimates how far away height is from tip.
func HeightToFutureEst(height, tip uint32) string {
	if height <= tip {
		return "now"
	}
	blocks := height - tip
	switch {
	case blocks <= 5:
		return fmt.Sprintf("in %d minutes", blocks*BlockInterval)
	case blocks <= blocksPerDay:
		hours, minutes := blocks/blocksPerHour, blocks%blocksPerHour*BlockInterval
		if minutes == 0 {
			return fmt.Sprintf("in %d hours", hours)
		}
		return fmt.Sprintf("in %d hours %d minutes", hours, minutes)
	default:
		days, hours := blocks/blocksPerDay, blocks%blocksPerDay/blocksPerHour
		if hours == 0 {
			return fmt.Sprintf("in %d days", days)
		}
		return fmt.Sprintf("in %d days %d hours", days, hours)
	}
}

// HeightToPastEst estimates how long ago height was mined.
func HeightToPastEst(height, tip uint32) string {
	if height >= tip {
		return "just now"
	}
	blocks := tip - height
	switch {
	case blocks <= 5:
		return fmt.Sprintf("%d minutes ago", blocks*BlockInterval)
	case blocks <= blocksPerDay:
		return fmt.Sprintf("%d hours ago", (blocks+blocksPerHour/2)/blocksPerHour)
	default:
		return fmt.Sprintf("%d days ago", (blocks+blocksPerDay/2)/blocksPerDay)
	}
}
