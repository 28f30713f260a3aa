// Package session runs one game of 2048 from the win-value prompt to a win,
// a stalemate or a quit. It owns the board and the random source and is
// driven one input at a time by a front end.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Errors returned by SubmitWinValue. Both leave the session waiting for
// another value.
var (
	ErrNotNumber     = errors.New("win value is not a whole number")
	ErrNotPowerOfTwo = errors.New("win value must be a power of two >= 2")
	ErrNotAwaiting   = errors.New("win value already set")
)

// Options configures a new session.
type Options struct {
	Seed     int64          // RNG seed; 0 seeds from the clock
	Weights  []board.Weight // Spawn distribution; nil uses board.DefaultWeights
	WinValue int            // Preset win value; 0 waits for SubmitWinValue
	Now      func() time.Time
}

// Session is a single play-through.
type Session struct {
	id       uuid.UUID
	state    State
	rng      *rand.Rand
	spawner  *board.Spawner
	now      func() time.Time
	board    board.Board
	winValue int

	moves     int
	lastSpawn int // Index of the most recent spawn, -1 if none
	started   time.Time
	ended     time.Time
}

// New creates a session waiting for its win value. If opts.WinValue is set
// it is validated like typed input and the session starts playing at once.
func New(opts Options) (*Session, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	weights := opts.Weights
	if weights == nil {
		weights = board.DefaultWeights
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	rng := rand.New(rand.NewSource(seed))
	spawner, err := board.NewSpawner(rng, weights)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		id:        uuid.New(),
		state:     StateAwaitingWinValue,
		rng:       rng,
		spawner:   spawner,
		now:       now,
		lastSpawn: -1,
	}

	if opts.WinValue != 0 {
		if err := s.SubmitWinValue(strconv.Itoa(opts.WinValue)); err != nil {
			return nil, fmt.Errorf("session: preset %w", err)
		}
	}
	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Board returns a copy of the current board.
func (s *Session) Board() board.Board {
	return s.board
}

// WinValue returns the target tile, or 0 before one was accepted.
func (s *Session) WinValue() int {
	return s.winValue
}

// Moves returns the number of committed moves.
func (s *Session) Moves() int {
	return s.moves
}

// Duration returns the time spent playing so far, or in total once the
// session has ended.
func (s *Session) Duration() time.Duration {
	if s.started.IsZero() {
		return 0
	}
	if !s.ended.IsZero() {
		return s.ended.Sub(s.started)
	}
	return s.now().Sub(s.started)
}

// ParseWinValue validates typed win-value input: a whole number that is a
// power of two no smaller than the lowest tile.
func ParseWinValue(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotNumber
	}
	if n < 2 || !board.IsPowerOfTwo(n) {
		return 0, ErrNotPowerOfTwo
	}
	return n, nil
}

// SubmitWinValue accepts the win value while the session is waiting for
// one. On success the opening board is dealt and the session is playing.
func (s *Session) SubmitWinValue(input string) error {
	if s.state != StateAwaitingWinValue {
		return ErrNotAwaiting
	}

	n, err := ParseWinValue(input)
	if err != nil {
		return err
	}

	s.winValue = n
	s.board = board.Seed(s.rng)
	s.started = s.now()
	s.state = StatePlaying
	return nil
}

// Handle processes one input and reports what happened.
func (s *Session) Handle(a core.Action) Result {
	if s.state.Terminal() {
		return s.result(OutcomeIgnored)
	}

	if a == core.ActionQuit {
		s.Quit()
		return s.result(OutcomeQuit)
	}

	if s.state != StatePlaying {
		return s.result(OutcomeIgnored)
	}

	dir, ok := directionFor(a)
	if !ok {
		return s.result(OutcomeInvalid)
	}
	return s.move(dir)
}

// Quit ends the session without touching the board. It has no effect once
// the session is over.
func (s *Session) Quit() {
	if s.state.Terminal() {
		return
	}
	s.finish(StateQuit)
}

// move applies one direction. A move that changes nothing is a pure no-op:
// no spawn and no termination check.
func (s *Session) move(dir board.Direction) Result {
	next := board.Apply(s.board, dir)
	if next == s.board {
		return s.result(OutcomeNoChange)
	}

	s.board = next
	s.moves++

	if spawned, pos, ok := s.spawner.Spawn(s.board); ok {
		s.board = spawned
		s.lastSpawn = pos
	}

	switch {
	case s.board.Contains(s.winValue):
		s.finish(StateWon)
	case s.board.Full():
		s.finish(StateLost)
	}
	return s.result(OutcomeMoved)
}

func (s *Session) finish(state State) {
	s.state = state
	s.ended = s.now()
	if s.started.IsZero() {
		s.started = s.ended
	}
}

func (s *Session) result(o Outcome) Result {
	return Result{Outcome: o, State: s.state, Spawned: s.lastSpawnFor(o)}
}

func (s *Session) lastSpawnFor(o Outcome) int {
	if o != OutcomeMoved {
		return -1
	}
	return s.lastSpawn
}

func directionFor(a core.Action) (board.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return board.DirLeft, true
	case core.ActionRight:
		return board.DirRight, true
	case core.ActionUp:
		return board.DirUp, true
	case core.ActionDown:
		return board.DirDown, true
	}
	return 0, false
}
