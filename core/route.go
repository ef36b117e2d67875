package core

// Screen identifies a top level screen of the wallet.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSend
	ScreenReceive
	ScreenSpaces
	ScreenMarket
	ScreenSign
	ScreenSettings
)

// Screens lists the screens in navigation order.
var Screens = []Screen{ScreenHome, ScreenSend, ScreenReceive, ScreenSpaces, ScreenMarket, ScreenSign, ScreenSettings}

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenSend:
		return "Send"
	case ScreenReceive:
		return "Receive"
	case ScreenSpaces:
		return "Spaces"
	case ScreenMarket:
		return "Market"
	case ScreenSign:
		return "Sign"
	case ScreenSettings:
		return "Settings"
	}
	return "Unknown"
}

// Route is a navigation target. Routes that carry a payload preselect it on the
// target screen.
type Route interface {
	Screen() Screen
}

type (
	RouteHome     struct{}
	RouteSend     struct{}
	RouteReceive  struct{}
	RouteSpaces   struct{}
	RouteSpace    struct{ SLabel string }
	RouteMarket   struct{}
	RouteSign     struct{}
	RouteSettings struct{}
)

func (RouteHome) Screen() Screen     { return ScreenHome }
func (RouteSend) Screen() Screen     { return ScreenSend }
func (RouteReceive) Screen() Screen  { return ScreenReceive }
func (RouteSpaces) Screen() Screen   { return ScreenSpaces }
func (RouteSpace) Screen() Screen    { return ScreenSpaces }
func (RouteMarket) Screen() Screen   { return ScreenMarket }
func (RouteSign) Screen() Screen     { return ScreenSign }
func (RouteSettings) Screen() Screen { return ScreenSettings }

// RouteTo returns the plain route of a screen.
func RouteTo(s Screen) Route {
	switch s {
	case ScreenSend:
		return RouteSend{}
	case ScreenReceive:
		return RouteReceive{}
	case ScreenSpaces:
		return RouteSpaces{}
	case ScreenMarket:
		return RouteMarket{}
	case ScreenSign:
		return RouteSign{}
	case ScreenSettings:
		return RouteSettings{}
	}
	return RouteHome{}
}
