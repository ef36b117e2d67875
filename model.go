package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/core"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/styles"
)

// -------------------- MODEL --------------------

// model hosts the reducers: it runs their commands, feeds back the results and
// owns everything that touches the terminal or the filesystem.
type model struct {
	w, h int

	phase core.Phase
	setup *core.Setup
	main  *core.Main

	cfg        config.Config
	configPath string
	client     *rpc.Client
	tickGen    int
	spin       spinner.Model
	keys       keyMap

	// modal dialogs, at most one open
	picker  *filePicker
	saver   *savePrompt
	confirm *confirmDialog

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

type keyMap struct {
	Screens []key.Binding
	Log     key.Binding
	LogUp   key.Binding
	LogDown key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		Log:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log")),
		LogUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll log")),
		LogDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll log")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	for i, s := range core.Screens {
		f := "f" + string(rune('1'+i))
		km.Screens = append(km.Screens, key.NewBinding(key.WithKeys(f), key.WithHelp(f, s.String())))
	}
	return km
}

// -------------------- INIT --------------------

func newModel(cfg config.Config, configPath string) *model {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// sized on the first WindowSizeMsg
	vp := viewport.New(0, 10)
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	buf := &strings.Builder{}
	m := &model{
		cfg:         cfg,
		configPath:  configPath,
		spin:        sp,
		keys:        newKeyMap(),
		logBuffer:   buf,
		logger:      newLogger(buf),
		logViewport: vp,
		logSpinner:  logSpin,
	}
	m.setup = core.NewSetup(cfg, m.logger)
	return m
}

// newLogger writes styled entries into buf for the log panel.
func newLogger(buf *strings.Builder) *log.Logger {
	l := log.NewWithOptions(buf, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	l.SetLevel(log.DebugLevel)
	l.SetStyles(&log.Styles{
		Timestamp: lipgloss.NewStyle().Foreground(styles.CMuted),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Foreground(styles.CAccent2),
		Message:   lipgloss.NewStyle().Foreground(styles.CText),
		Key:       lipgloss.NewStyle().Foreground(styles.CAccent),
		Value:     lipgloss.NewStyle().Foreground(styles.CText),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: lipgloss.NewStyle().Foreground(styles.CMuted).SetString("DEBUG"),
			log.InfoLevel:  lipgloss.NewStyle().Foreground(styles.CAccent2).SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().Foreground(styles.CWarn).SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().Foreground(styles.CError).SetString("ERROR"),
		},
	})
	return l
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.apply(m.setup.Init(m.cfg.SpacedRPCURL != "")))
}
