package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetKeepsColor(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '~', ColorBlue)
	s.Set(3, 2, '^')

	c := s.GetCell(3, 2)
	if c.Rune != '^' {
		t.Errorf("rune = %q, expected '^'", c.Rune)
	}
	if c.Color != ColorBlue {
		t.Errorf("Set should keep the existing color, got %d", c.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)

	s.Set(-1, 0, 'A')
	s.SetColored(5, 0, 'A', ColorRed)
	s.Set(0, 99, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds writes should be ignored")
	}
}

func TestScreenDrawTextClipsAndCounts(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "≈SURF", ColorCyan)

	if s.Get(5, 0) != '≈' || s.Get(6, 0) != 'S' || s.Get(7, 0) != 'U' {
		t.Errorf("row 0 = %q, expected multibyte text to advance one cell per rune", s.Row(0))
	}
	if s.GetCell(6, 0).Color != ColorCyan {
		t.Error("DrawTextColored should color each cell")
	}
}

func TestScreenDrawRectColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColored(NewRect(2, 2, 3, 3), '#', ColorSand)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorSand {
				t.Errorf("cell (%d, %d) = %+v, expected sand '#'", x, y, c)
			}
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRectColored should not touch cells outside the rect")
	}
}

func TestScreenDrawBoxCorners(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawHLine(0, 1, 5, 'B')
	s.DrawText(0, 2, "CC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCC   " {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds Row = %q, expected spaces", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Wave", ColorBlue)

	s.Resize(6, 3)
	if !strings.HasPrefix(s.Row(0), "Wave") {
		t.Errorf("content lost after shrinking: %q", s.Row(0))
	}

	s.Resize(20, 8)
	if s.GetCell(0, 0).Color != ColorBlue {
		t.Error("color lost after enlarging")
	}
	if s.Get(19, 7) != ' ' {
		t.Error("new area should be blank")
	}
}
