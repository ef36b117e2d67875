package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"spaces-wallet-tui/config"
)

// -------------------- MAIN --------------------

func main() {
	config.LoadEnv()
	path := config.Path()
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
	}

	m := newModel(cfg, path)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
