package session

// State is the session lifecycle state.
type State string

const (
	StateAwaitingWinValue State = "awaiting_win_value"
	StatePlaying          State = "playing"
	StateWon              State = "won"
	StateLost             State = "lost"
	StateQuit             State = "quit"
)

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost || s == StateQuit
}

// Message returns the line shown when the session enters s.
func (s State) Message() string {
	switch s {
	case StateWon:
		return "You win! Congratulations!"
	case StateLost:
		return "No new tile can be added. Game over!"
	case StateQuit:
		return "Bye!"
	default:
		return ""
	}
}

// Outcome describes what a single input did.
type Outcome int

const (
	OutcomeNone     Outcome = iota
	OutcomeMoved            // Board changed and a tile spawned
	OutcomeNoChange         // Direction produced the same board
	OutcomeInvalid          // Input was not a direction or quit
	OutcomeIgnored          // Input arrived outside of play
	OutcomeQuit             // Session was quit
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeNoChange:
		return "no_change"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Message returns the user-facing report for the outcome, if any.
func (o Outcome) Message() string {
	switch o {
	case OutcomeNoChange:
		return "No change in board."
	case OutcomeInvalid:
		return "Invalid move, try again!"
	default:
		return ""
	}
}

// Result is returned by Session.Handle.
type Result struct {
	Outcome Outcome
	State   State // State after the input
	Spawned int   // Index of the new tile when Outcome is OutcomeMoved, else -1
}

// Message returns the line to show for this result: the end-of-session
// message if the input ended the session, otherwise the outcome's report.
func (r Result) Message() string {
	if r.State.Terminal() && (r.Outcome == OutcomeMoved || r.Outcome == OutcomeQuit) {
		return r.State.Message()
	}
	return r.Outcome.Message()
}
