package session

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Snapshot captures the complete session state for recording and tests.
type Snapshot struct {
	ID        string
	State     State
	WinValue  int
	Board     board.Board
	Moves     int
	MaxTile   int
	LastSpawn int // -1 before the first spawn
	StartedAt time.Time
	Duration  time.Duration
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.id.String(),
		State:     s.state,
		WinValue:  s.winValue,
		Board:     s.board,
		Moves:     s.moves,
		MaxTile:   s.board.MaxTile(),
		LastSpawn: s.lastSpawn,
		StartedAt: s.started,
		Duration:  s.Duration(),
	}
}

// Record converts a finished session into a history row.
func (s Snapshot) Record() storage.SessionRecord {
	return storage.SessionRecord{
		SessionID: s.ID,
		Outcome:   string(s.State),
		WinValue:  s.WinValue,
		Moves:     s.Moves,
		MaxTile:   s.MaxTile,
		Board:     s.Board.String(),
		Duration:  int(s.Duration.Seconds()),
	}
}
