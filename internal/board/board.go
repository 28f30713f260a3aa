// Package board implements the 4x4 tile board and the slide-and-merge
// transform. It has no dependencies on the terminal or on randomness, so
// every function here is pure and safe to call from tests.
package board

import (
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// Board is a 4x4 grid stored row-major: cell (r, c) lives at index r*Size+c.
// Zero marks an empty cell, every other value is a power of two >= 2.
type Board [Cells]int

// Line is one row or column in traversal order.
type Line [Size]int

// Index returns the board index of cell (row, col).
func Index(row, col int) int {
	return row*Size + col
}

// At returns the value at (row, col).
func (b Board) At(row, col int) int {
	return b[Index(row, col)]
}

// Row returns row r left to right.
func (b Board) Row(r int) Line {
	var l Line
	for c := range Size {
		l[c] = b[Index(r, c)]
	}
	return l
}

// Empty returns the indices of all empty cells in ascending order.
func (b Board) Empty() []int {
	var cells []int
	for i, v := range b {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// Full reports whether no cell is empty.
func (b Board) Full() bool {
	for _, v := range b {
		if v == 0 {
			return false
		}
	}
	return true
}

// Contains reports whether any cell holds value.
func (b Board) Contains(value int) bool {
	for _, v := range b {
		if v == value {
			return true
		}
	}
	return false
}

// Count returns the number of non-empty cells.
func (b Board) Count() int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// String formats the board as four comma separated rows joined by '/',
// e.g. "2,0,0,0/0,0,0,0/0,0,0,0/0,0,0,4". ParseBoard reads it back.
func (b Board) String() string {
	var sb strings.Builder
	for i, v := range b {
		switch {
		case i == 0:
		case i%Size == 0:
			sb.WriteByte('/')
		default:
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// ParseBoard parses the format produced by Board.String.
func ParseBoard(s string) (Board, bool) {
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return b, false
	}
	for r, row := range rows {
		fields := strings.Split(row, ",")
		if len(fields) != Size {
			return b, false
		}
		for c, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil || (v != 0 && !IsPowerOfTwo(v)) {
				return b, false
			}
			b[Index(r, c)] = v
		}
	}
	return b, true
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
