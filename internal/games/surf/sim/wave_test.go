package sim

import (
	"math"
	"testing"
)

func TestSurfaceY(t *testing.T) {
	w := Wave{X: 100, Y: 400, Width: 200, Height: 80}

	tests := []struct {
		x    float64
		want float64
	}{
		{100, 400},
		{200, 320},
		{300, 400},
		{150, 400 - 80*math.Sin(math.Pi/4)},
		{0, 400},    // clamped to the left end
		{1000, 400}, // clamped to the right end
	}

	for _, tt := range tests {
		if got := SurfaceY(w, tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SurfaceY(x=%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	if got := SurfaceY(Wave{Y: 400}, 10); got != 400 {
		t.Errorf("zero-width SurfaceY = %v, want base line", got)
	}
}

func TestTouchesWave(t *testing.T) {
	w := Wave{X: 100, Y: 400, Width: 200, Height: 80}

	tests := []struct {
		name string
		b    box
		want bool
	}{
		{"inside", box{X: 150, Y: 340, W: 20, H: 40}, true},
		{"left of wave", box{X: 60, Y: 340, W: 20, H: 40}, false},
		{"right of wave", box{X: 301, Y: 340, W: 20, H: 40}, false},
		{"above crest box", box{X: 150, Y: 200, W: 20, H: 40}, false},
		{"resting on base line", box{X: 150, Y: 360, W: 20, H: 40}, true},
		{"below base line", box{X: 150, Y: 401, W: 20, H: 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := touchesWave(tt.b, w); got != tt.want {
				t.Errorf("touchesWave() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWaveRemovedAfterLeavingScreen(t *testing.T) {
	h := newQuietHarness(t)
	id := h.e.AddWave(Wave{X: 850, Y: 400, Width: 201, Height: 40, Speed: 2})

	// ceil((800 + 50 + 201) / 2) = 526
	s := h.run(525)
	if findWave(s.Waves, id) < 0 {
		t.Fatal("wave removed too early")
	}
	s = h.tick()
	if findWave(s.Waves, id) >= 0 {
		t.Errorf("wave still present after tick %d at x=%v", s.Tick, s.Waves[findWave(s.Waves, id)].X)
	}
}

func TestInvalidWavesDropped(t *testing.T) {
	h := newQuietHarness(t)
	zero := h.e.AddWave(Wave{X: 400, Y: 400, Width: 0, Height: 40, Speed: 2})
	neg := h.e.AddWave(Wave{X: 400, Y: 400, Width: -10, Height: 40, Speed: 2})
	ok := h.e.AddWave(Wave{X: 400, Y: 400, Width: 100, Height: 40, Speed: 2})

	s := h.tick()
	if findWave(s.Waves, zero) >= 0 || findWave(s.Waves, neg) >= 0 {
		t.Error("non-positive width wave survived a tick")
	}
	if findWave(s.Waves, ok) < 0 {
		t.Error("valid wave dropped")
	}
}

func TestAdvanceWavesKeepsOrder(t *testing.T) {
	waves := []Wave{
		{ID: 1, X: -99, Width: 100, Speed: 2},
		{ID: 2, X: 10, Width: 100, Speed: 2},
		{ID: 3, X: -99, Width: 100, Speed: 2},
		{ID: 4, X: 50, Width: 100, Speed: 1},
	}
	got := advanceWaves(waves)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 4 {
		t.Fatalf("advanceWaves kept %+v, want IDs 2 and 4", got)
	}
	if got[0].X != 8 || got[1].X != 49 {
		t.Errorf("positions = %v, %v, want 8, 49", got[0].X, got[1].X)
	}
}

func TestGeneratorTimerSpawnsAtWaterLine(t *testing.T) {
	p := DefaultParams()
	e := New(p, constRand(0.5))
	if _, err := e.Reset(800, 500); err != nil {
		t.Fatal(err)
	}
	e.Start()

	var s Snapshot
	for i := 1; i <= 180; i++ {
		s = e.Tick(int64(i) * 16)
		if i < 180 && len(s.Waves) != 1 {
			t.Fatalf("tick %d: %d waves, want 1", i, len(s.Waves))
		}
	}
	if len(s.Waves) != 2 {
		t.Fatalf("after 180 ticks: %d waves, want 2", len(s.Waves))
	}
	w := s.Waves[1]
	if w.Y != s.WaterLine || w.ID != 2 {
		t.Errorf("timed wave id=%d y=%v, want id 2 on the water line", w.ID, w.Y)
	}
}

func TestGeneratorRandomSpawnBand(t *testing.T) {
	e := New(DefaultParams(), constRand(0.005))
	if _, err := e.Reset(800, 500); err != nil {
		t.Fatal(err)
	}
	e.Start()

	s := e.Tick(16)
	if len(s.Waves) != 2 {
		t.Fatalf("%d waves, want 2", len(s.Waves))
	}
	if y := s.Waves[1].Y; y < 300 || y >= 400 {
		t.Errorf("random wave y = %v, want [300, 400)", y)
	}
}
