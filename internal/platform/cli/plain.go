// Package cli is the line-oriented front end, used when stdin is not a
// terminal or when the player asks for it. It reads one command per line
// and prints the board after every change.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

const (
	winPrompt  = "Enter the win value (a power of two, e.g. 2048; q to quit): "
	movePrompt = "Move (w/a/s/d, h/j/k/l, left/right/up/down, q to quit): "
)

// Runner plays one session over a reader and a writer.
type Runner struct {
	in      *bufio.Reader
	out     io.Writer
	sess    *session.Session
	journal *session.Journal
	screen  *core.Screen
	err     error // First write error
}

// NewRunner creates a runner. journal may be nil.
func NewRunner(in io.Reader, out io.Writer, sess *session.Session, journal *session.Journal) *Runner {
	if journal == nil {
		journal = session.NewJournal(nil, nil)
	}
	return &Runner{
		in:      bufio.NewReader(in),
		out:     out,
		sess:    sess,
		journal: journal,
		screen:  core.NewScreen(session.MinWidth, session.MinHeight),
	}
}

// Run plays the session to its end. End of input counts as quit. Read
// and write failures are returned.
func Run(in io.Reader, out io.Writer, sess *session.Session, journal *session.Journal) error {
	return NewRunner(in, out, sess, journal).Run()
}

// Run plays the session to its end.
func (r *Runner) Run() error {
	if r.sess.State() == session.StateAwaitingWinValue {
		if err := r.promptWinValue(); err != nil {
			return err
		}
	} else if r.sess.State() == session.StatePlaying {
		r.journal.Started(r.sess)
	}

	if r.sess.State() == session.StatePlaying {
		r.printBoard()
	}

	for !r.sess.State().Terminal() {
		line, err := r.readLine(movePrompt)
		if err != nil {
			return err
		}
		r.handle(line)
		if r.err != nil {
			return r.err
		}
	}
	return r.err
}

// promptWinValue asks until a valid win value is given or input ends.
func (r *Runner) promptWinValue() error {
	for r.sess.State() == session.StateAwaitingWinValue {
		line, err := r.readLine(winPrompt)
		if err != nil {
			return err
		}
		if line == nil {
			return r.err
		}
		if core.ParseAction(*line) == core.ActionQuit {
			r.quit()
			return r.err
		}

		if err := r.sess.SubmitWinValue(*line); err != nil {
			r.journal.Rejected(*line, err)
			r.printf("Invalid win value: %v.\n", err)
			continue
		}
		r.journal.Started(r.sess)
	}
	return r.err
}

// readLine prints prompt and reads one line of any length. On end of
// input the session is quit and a nil line is returned. A last line
// without a newline is still returned.
func (r *Runner) readLine(prompt string) (*string, error) {
	r.printf("%s", prompt)
	if r.err != nil {
		return nil, r.err
	}

	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cli: read input: %w", err)
	}
	if err != nil && line == "" {
		r.printf("\n")
		r.quit()
		return nil, nil
	}

	line = strings.TrimRight(line, "\r\n")
	return &line, nil
}

// handle applies one typed command. A nil line means input ended.
func (r *Runner) handle(line *string) {
	if line == nil {
		return
	}

	action := core.ParseAction(*line)
	res := r.sess.Handle(action)
	r.journal.Input(r.sess, action, res)

	if res.Outcome == session.OutcomeMoved {
		r.printBoard()
	}
	if msg := res.Message(); msg != "" {
		r.printf("%s\n", msg)
	}
}

func (r *Runner) quit() {
	res := r.sess.Handle(core.ActionQuit)
	r.journal.Input(r.sess, core.ActionQuit, res)
	r.printf("%s\n", res.Message())
}

func (r *Runner) printBoard() {
	r.sess.RenderBoard(r.screen)
	r.printf("%s\n", r.screen.String())
}

// printf writes to out, keeping the first error.
func (r *Runner) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.err = fmt.Errorf("cli: write output: %w", err)
	}
}
