package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 21, 9)
	inner := outer.Centered(11, 5)

	if inner != NewRect(5, 2, 11, 5) {
		t.Errorf("Centered(11, 5) = %+v", inner)
	}
}
