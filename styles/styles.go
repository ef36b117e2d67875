package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#0B0F14") // near-black
	CPanel   = lipgloss.Color("#141A22")
	CBorder  = lipgloss.Color("#F7931A") // bitcoin orange
	CMuted   = lipgloss.Color("#8AA0B6")
	CText    = lipgloss.Color("#D6E2F0")
	CAccent  = lipgloss.Color("#F7931A")
	CAccent2 = lipgloss.Color("#79C0FF") // blue-ish
	CGood    = lipgloss.Color("#7EE787") // green-ish
	CWarn    = lipgloss.Color("#FFA657")
	CError   = lipgloss.Color("#FF6B6B")
)

// Gradient endpoints for the title
const (
	FadeFrom = "#F7931A"
	FadeTo   = "#FFD580"
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	NavStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(CMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(CBg).
			Background(CAccent).
			Bold(true).
			Padding(0, 1)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(CMuted).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(CText).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	GoodStyle = lipgloss.NewStyle().
			Foreground(CGood)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CError).
			Bold(true)

	BannerStyle = lipgloss.NewStyle().
			Foreground(CBg).
			Background(CError).
			Bold(true).
			Padding(0, 1)

	SyncStyle = lipgloss.NewStyle().
			Foreground(CBg).
			Background(CWarn).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(CBg).
			Background(CAccent).
			Bold(true).
			Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(CMuted).
				Background(CPanel).
				Padding(0, 2)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}

// Muted renders secondary text
func Muted(s string) string {
	return MutedStyle.Render(s)
}

// Marker is the list cursor for the selected row
func Marker(selected bool) string {
	if selected {
		return SelectedStyle.Render("▶ ")
	}
	return "  "
}
