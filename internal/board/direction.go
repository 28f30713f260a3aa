package board

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// directions lists every direction in declaration order.
var directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

var (
	rows = [Size][Size]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	cols = [Size][Size]int{
		{0, 4, 8, 12},
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
	}
)

// traversal pairs the index table of an axis with the order its lines are
// read in. Tiles always pack toward the first index read.
type traversal struct {
	lines    *[Size][Size]int
	reversed bool
}

var traversals = map[Direction]traversal{
	DirLeft:  {lines: &rows},
	DirRight: {lines: &rows, reversed: true},
	DirUp:    {lines: &cols},
	DirDown:  {lines: &cols, reversed: true},
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
