package core

import "spaces-wallet-tui/config"

// Phase is the top level state of the application.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseMain
)

// Transition asks the host to replace the running reducer.
type Transition struct {
	Phase  Phase
	Config config.Config
}

// Effect is everything an update asks the host to do.
type Effect struct {
	Commands   []Command
	Transition *Transition
}

func none() Effect { return Effect{} }

func do(cmds ...Command) Effect { return Effect{Commands: cmds} }

func (e Effect) merge(o Effect) Effect {
	e.Commands = append(e.Commands, o.Commands...)
	if o.Transition != nil {
		e.Transition = o.Transition
	}
	return e
}
