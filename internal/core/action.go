package core

import "strings"

// Action represents a semantic input, abstracted from physical key presses
// or typed commands.
type Action int

const (
	ActionNone  Action = iota // Unrecognized input
	ActionLeft                // Left arrow, A, H
	ActionRight               // Right arrow, D, L
	ActionUp                  // Up arrow, W, K
	ActionDown                // Down arrow, S, J
	ActionQuit                // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// commands maps typed words to actions for line-oriented input.
var commands = map[string]Action{
	"left":  ActionLeft,
	"a":     ActionLeft,
	"h":     ActionLeft,
	"right": ActionRight,
	"r":     ActionRight,
	"d":     ActionRight,
	"l":     ActionRight,
	"up":    ActionUp,
	"u":     ActionUp,
	"w":     ActionUp,
	"k":     ActionUp,
	"down":  ActionDown,
	"s":     ActionDown,
	"j":     ActionDown,
	"q":     ActionQuit,
	"quit":  ActionQuit,
	"exit":  ActionQuit,
}

// ParseAction maps a typed command to an action. Matching ignores case and
// surrounding whitespace. Anything unrecognized returns ActionNone.
func ParseAction(cmd string) Action {
	if a, ok := commands[strings.ToLower(strings.TrimSpace(cmd))]; ok {
		return a
	}
	return ActionNone
}
