package board

// Apply slides every line of b toward the edge named by dir, merging equal
// neighbours, and returns the resulting board. The input is never modified.
// A result equal to b means the move changed nothing. Unknown directions
// return b unchanged.
func Apply(b Board, dir Direction) Board {
	t, ok := traversals[dir]
	if !ok {
		return b
	}

	next := b
	for _, idx := range t.lines {
		line := extract(b, idx, t.reversed)
		line = compact(merge(line))
		store(&next, idx, t.reversed, line)
	}
	return next
}

// LineAt returns line i of the axis used by dir, in dir's traversal order.
func (b Board) LineAt(dir Direction, i int) Line {
	t, ok := traversals[dir]
	if !ok || i < 0 || i >= Size {
		return Line{}
	}
	return extract(b, t.lines[i], t.reversed)
}

// SlideLine applies the merge and compaction passes to a single line that
// is already in traversal order.
func SlideLine(l Line) Line {
	return compact(merge(l))
}

func extract(b Board, idx [Size]int, reversed bool) Line {
	var l Line
	for i, pos := range idx {
		if reversed {
			l[Size-1-i] = b[pos]
		} else {
			l[i] = b[pos]
		}
	}
	return l
}

func store(b *Board, idx [Size]int, reversed bool, l Line) {
	for i, pos := range idx {
		if reversed {
			b[pos] = l[Size-1-i]
		} else {
			b[pos] = l[i]
		}
	}
}

// merge doubles each tile that meets an equal tile later in the line,
// ignoring gaps. at is the position of the last unmerged non-zero tile; a
// merge clears it so the doubled tile cannot merge again this pass.
func merge(l Line) Line {
	at := -1
	for i, v := range l {
		switch {
		case v == 0:
		case at >= 0 && l[at] == v:
			l[at] *= 2
			l[i] = 0
			at = -1
		default:
			at = i
		}
	}
	return l
}

// compact packs non-zero tiles at the front of the line in their original
// order.
func compact(l Line) Line {
	var out Line
	n := 0
	for _, v := range l {
		if v != 0 {
			out[n] = v
			n++
		}
	}
	return out
}
