package core

import (
	"strings"
	"testing"
)

func TestScreenTileCells(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextColor(2, 1, "2048", ColorMagenta)
	s.DrawTextColor(8, 1, "·", ColorGray)

	tests := []struct {
		x    int
		want Cell
	}{
		{2, Cell{Rune: '2', Color: ColorMagenta}},
		{5, Cell{Rune: '8', Color: ColorMagenta}},
		{6, blank},
		{8, Cell{Rune: '·', Color: ColorGray}},
		{-1, blank},
		{12, blank},
	}
	for _, tc := range tests {
		if got := s.GetCell(tc.x, 1); got != tc.want {
			t.Errorf("GetCell(%d, 1) = %+v, want %+v", tc.x, got, tc.want)
		}
	}

	// Grid lines are drawn uncolored over whatever was there.
	s.DrawHLine(0, 1, 3, '─')
	if got := s.GetCell(2, 1); got != (Cell{Rune: '─', Color: ColorDefault}) {
		t.Errorf("DrawHLine left %+v", got)
	}

	s.Clear()
	if got := s.GetCell(8, 1); got != blank {
		t.Errorf("Clear left %+v", got)
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(9, 5)
	s.DrawText(0, 2, "xxxxxxxxx")

	box := NewRect(0, 0, 9, 5).Centered(7, 3)
	s.FillRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCentered(2, "WIN")

	want := strings.Join([]string{
		"",
		" ┌─────┐",
		"x│ WIN │x",
		" └─────┘",
		"",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestScreenGridLines(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawVLine(0, 0, 4, '│')
	s.DrawVLine(4, 1, 10, '│') // clipped at the bottom
	s.DrawHLine(1, 0, -2, '─') // negative length draws nothing

	if got := s.String(); got != "│\n│   │\n│   │\n│   │" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenRowKeepsWidth(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(1, 0, "ab")

	if got := s.Row(0); got != " ab   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(5); got != "      " {
		t.Errorf("Row(5) = %q", got)
	}
	if got := s.String(); got != " ab\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorGreen)
	s.DrawText(0, 5, "World")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "Hell\n\n" {
		t.Errorf("after shrinking String() = %q", got)
	}

	s.Resize(8, 6)
	if got := s.Row(0); got != "Hell    " {
		t.Errorf("after growing Row(0) = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("Resize should keep cell colors")
	}
	if strings.Contains(s.String(), "World") {
		t.Error("rows cut by shrinking should stay blank")
	}
}
