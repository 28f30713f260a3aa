package session

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border; fits 131072
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3

	// BoardWidth and BoardHeight are the grid size in characters.
	BoardWidth  = board.Size*cellWidth + 1
	BoardHeight = board.Size*cellHeight + 1

	// MinWidth and MinHeight are the smallest screen Render can draw on.
	MinWidth  = BoardWidth
	MinHeight = hudHeight + BoardHeight + 1
)

// Render draws the session into dst. Everything outside the board is left
// to the front end: prompts, status messages and key help.
func (s *Session) Render(dst *core.Screen) {
	s.render(dst, true)
}

// RenderBoard draws like Render but leaves the end-of-session box out, for
// front ends that print the outcome as text.
func (s *Session) RenderBoard(dst *core.Screen) {
	s.render(dst, false)
}

func (s *Session) render(dst *core.Screen, overlay bool) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - BoardWidth) / 2
	boardY := hudHeight

	s.renderHUD(dst, boardX)
	if s.state == StateAwaitingWinValue {
		return
	}

	s.renderBoard(dst, boardX, boardY)
	if overlay {
		s.renderOverlay(dst, core.NewRect(boardX, boardY, BoardWidth, BoardHeight))
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, target and move count above the board.
func (s *Session) renderHUD(dst *core.Screen, boardX int) {
	title := "2 0 4 8"
	dst.DrawTextColor(boardX+(BoardWidth-len(title))/2, 0, title, core.ColorBrightYellow)

	if s.winValue == 0 {
		return
	}

	target := fmt.Sprintf("Target: %d", s.winValue)
	dst.DrawText(boardX, 1, target)

	moves := fmt.Sprintf("Moves: %d", s.moves)
	dst.DrawText(boardX+BoardWidth-len(moves), 1, moves)
}

// renderBoard draws the 4x4 grid with tiles.
func (s *Session) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range board.Size + 1 {
		for x := range board.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridJoint(x, y))
			if x < board.Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < board.Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for row := range board.Size {
		for col := range board.Size {
			val := s.board.At(row, col)
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			if val == 0 {
				dst.DrawTextColor(cellX+cellPad("·"), cellY, "·", core.ColorGray)
				continue
			}

			valStr := strconv.Itoa(val)
			dst.DrawTextColor(cellX+cellPad(valStr), cellY, valStr, core.TileColor(val))
		}
	}
}

// cellPad is the left padding that centers text in a cell interior,
// leaning right when the spare width is odd.
func cellPad(text string) int {
	return max((cellWidth-utf8.RuneCountInString(text))/2, 0)
}

// gridJoint picks the box-drawing rune for grid intersection (x, y).
func gridJoint(x, y int) rune {
	last := board.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlay draws the end-of-session box over the board.
func (s *Session) renderOverlay(dst *core.Screen, area core.Rect) {
	switch s.state {
	case StateWon:
		drawOverlay(dst, area, "YOU WIN!", fmt.Sprintf("Reached %d", s.winValue))
	case StateLost:
		drawOverlay(dst, area, "GAME OVER", fmt.Sprintf("Max tile: %d", s.board.MaxTile()))
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
