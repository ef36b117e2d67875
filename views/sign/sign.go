package sign

import (
	"encoding/json"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/helpers"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/styles"
	"spaces-wallet-tui/views/form"
)

// State is the sign screen: a picked Nostr event signed with an owned space.
type State struct {
	path   string
	event  *rpc.NostrEvent
	slabel string
	err    string
	notice string
}

func (s *State) Reset() { *s = State{} }

func (s *State) SetError(err string) {
	s.err = err
	s.notice = ""
}

func (s State) Error() string { return s.err }

func (s State) Notice() string { return s.notice }

// SetSaved reports where the signed event was written and clears the form.
func (s *State) SetSaved(path string) {
	*s = State{notice: "Signed event saved to " + path}
}

type Msg interface{ signMsg() }

type (
	FilePickPress   struct{}
	EventFileLoaded struct {
		Path     string
		Contents string
	}
	SLabelSelect struct{ SLabel string }
	SignSubmit   struct{}
)

func (FilePickPress) signMsg()   {}
func (EventFileLoaded) signMsg() {}
func (SLabelSelect) signMsg()    {}
func (SignSubmit) signMsg()      {}

type Action interface{ signAction() }

type (
	PickFile struct{}
	Sign     struct {
		SLabel string
		Event  rpc.NostrEvent
	}
)

func (PickFile) signAction() {}
func (Sign) signAction()     {}

func (s *State) Update(msg Msg) Action {
	switch msg := msg.(type) {
	case FilePickPress:
		return PickFile{}
	case EventFileLoaded:
		ev, err := rpc.ParseNostrEvent(msg.Contents)
		if err != nil {
			s.event = nil
			s.SetError(err.Error())
			return nil
		}
		s.path = msg.Path
		s.event = &ev
		s.err = ""
		s.notice = ""
	case SLabelSelect:
		s.slabel = msg.SLabel
	case SignSubmit:
		slabel, ok := helpers.ParseSLabel(s.slabel)
		if !ok || s.event == nil {
			return nil
		}
		return Sign{SLabel: slabel, Event: *s.event}
	}
	return nil
}

func (s State) CanSubmit() bool {
	_, ok := helpers.ParseSLabel(s.slabel)
	return ok && s.event != nil
}

func (s State) Key(k tea.KeyMsg, owned []string) (Msg, bool) {
	switch k.String() {
	case "o":
		return FilePickPress{}, true
	case "left":
		return SLabelSelect{SLabel: form.Step(owned, s.slabel, -1)}, true
	case "right", " ":
		return SLabelSelect{SLabel: form.Step(owned, s.slabel, 1)}, true
	case "enter":
		return SignSubmit{}, true
	}
	return nil, false
}

func (s State) View(width int) string {
	w := helpers.Min(width-8, 64)
	file := styles.Muted("No event file selected.")
	if s.event != nil {
		b, _ := json.MarshalIndent(s.event, "", "  ")
		file = styles.ValueStyle.Render(filepath.Base(s.path)) + "\n" + styles.Muted(string(b))
	}
	notice := ""
	if s.notice != "" {
		notice = styles.GoodStyle.Render("✓ " + s.notice)
	}
	return form.Stack(
		styles.TitleStyle.Render("Sign Nostr event"),
		file,
		form.Choice("Space", s.slabel, "press → to pick an owned space", true, w),
		form.Button("Sign", s.CanSubmit()),
		form.Error(s.err),
		notice,
	)
}

// Nav returns the navigation bar for sign view
func (s State) Nav(width int) string {
	keys := []string{
		styles.Key("o") + " open event file",
		styles.Key("←/→") + " pick space",
		styles.Key("Enter") + " sign",
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
