package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Recorder persists finished sessions. *storage.Store implements it.
type Recorder interface {
	SaveSession(rec storage.SessionRecord) (int64, error)
}

var _ Recorder = (*storage.Store)(nil)

// Journal logs session events and records the outcome once the session
// ends. Both front ends report through it so that history and logs look
// the same whichever one was used.
type Journal struct {
	rec    Recorder
	logger *log.Logger
	saved  bool
}

// NewJournal creates a journal. rec may be nil when history is disabled,
// logger may be nil to discard log output.
func NewJournal(rec Recorder, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Journal{rec: rec, logger: logger}
}

// Started logs a session that has begun playing.
func (j *Journal) Started(s *Session) {
	j.logger.Info("session started",
		"id", s.ID(),
		"win", s.WinValue(),
		"board", s.Board(),
	)
}

// Rejected logs a win value that failed validation.
func (j *Journal) Rejected(input string, err error) {
	j.logger.Debug("win value rejected", "input", input, "error", err)
}

// Input logs one handled input and records the session if it just ended.
func (j *Journal) Input(s *Session, a core.Action, res Result) {
	switch res.Outcome {
	case OutcomeMoved:
		j.logger.Debug("move",
			"action", a,
			"moves", s.Moves(),
			"spawned", res.Spawned,
			"board", s.Board(),
		)
	case OutcomeNoChange, OutcomeInvalid:
		j.logger.Debug("input rejected", "action", a, "outcome", res.Outcome)
	}

	if res.State.Terminal() {
		j.Finished(s)
	}
}

// Finished records the session once. Sessions that never got past the
// win-value prompt are logged but not recorded. Storage failures are
// logged and returned; the caller may ignore them.
func (j *Journal) Finished(s *Session) error {
	if j.saved || !s.State().Terminal() {
		return nil
	}
	j.saved = true

	snap := s.Snapshot()
	j.logger.Info("session ended",
		"id", snap.ID,
		"state", snap.State,
		"moves", snap.Moves,
		"max_tile", snap.MaxTile,
		"duration", snap.Duration,
	)

	if j.rec == nil || snap.WinValue == 0 {
		return nil
	}

	if _, err := j.rec.SaveSession(snap.Record()); err != nil {
		j.logger.Warn("could not record session", "id", snap.ID, "error", err)
		return err
	}
	return nil
}
