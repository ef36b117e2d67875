package helpers

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// ShortenTxid shortens a txid or address for display
func ShortenTxid(s string) string {
	if len(s) < 16 {
		return s
	}
	return s[:8] + "…" + s[len(s)-6:]
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), len(s))
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var b strings.Builder
	for i, c := range []rune(str) {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		b.WriteString(baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
	}
	return b.String()
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clamp keeps v within [lo, hi]
func Clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return Max(lo, Min(v, hi))
}
