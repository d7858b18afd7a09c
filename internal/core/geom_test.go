package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("bottom-right edge is exclusive")
	}
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestViewportMapping(t *testing.T) {
	v := NewViewport(800, 500, 80, 25)

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{150, 300, 15, 15},
		{799, 499, 79, 24},
		{-10, -30, -1, -1},
	}
	for _, tc := range tests {
		if got := v.Col(tc.x); got != tc.col {
			t.Errorf("Col(%v) = %d, expected %d", tc.x, got, tc.col)
		}
		if got := v.Row(tc.y); got != tc.row {
			t.Errorf("Row(%v) = %d, expected %d", tc.y, got, tc.row)
		}
	}

	if got := v.WorldX(0); got != 5 {
		t.Errorf("WorldX(0) = %v, expected cell center 5", got)
	}
}

func TestViewportZeroWorld(t *testing.T) {
	v := NewViewport(0, 0, 80, 24)
	if v.Col(100) != 0 || v.Row(100) != 0 {
		t.Error("zero-sized world should map everything to the origin")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned a value outside [min, max]")
	}
	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF returned a value outside [min, max]")
	}
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max mismatch")
	}
}

func TestTickMillis(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickMillis(60); got != 1000 {
		t.Errorf("TickMillis(60) at 60Hz = %d, expected 1000", got)
	}
	cfg.TickRate = 0
	if got := cfg.TickMillis(30); got != 500 {
		t.Errorf("TickMillis with zero rate should fall back to 60Hz, got %d", got)
	}
}
