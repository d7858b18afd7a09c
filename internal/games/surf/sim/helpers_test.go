package sim

import (
	"testing"
)

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// quietParams disables both wave spawn triggers so tests control every wave.
func quietParams() Params {
	p := DefaultParams()
	p.Waves.SpawnInterval = 1 << 30
	p.Waves.RandomChance = 0
	return p
}

type harness struct {
	t     *testing.T
	e     *Engine
	now   int64
	step  int64
	score int
}

func newHarness(t *testing.T, p Params) *harness {
	t.Helper()
	e := New(p, constRand(0.5))
	if _, err := e.Reset(800, 500); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	e.Start()
	return &harness{t: t, e: e, step: 16}
}

// newQuietHarness returns a started engine with no waves on screen.
func newQuietHarness(t *testing.T) *harness {
	h := newHarness(t, quietParams())
	h.e.waves = h.e.waves[:0]
	return h
}

func (h *harness) tick() Snapshot {
	h.t.Helper()
	h.now += h.step
	s := h.e.Tick(h.now)
	checkInvariants(h.t, s)
	if s.Score < h.score {
		h.t.Fatalf("tick %d: score decreased from %d to %d", s.Tick, h.score, s.Score)
	}
	h.score = s.Score
	return s
}

func (h *harness) run(n int) Snapshot {
	h.t.Helper()
	var s Snapshot
	for i := 0; i < n; i++ {
		s = h.tick()
	}
	return s
}

// tap presses and releases k before the next tick, then runs that tick.
func (h *harness) tap(k Key) Snapshot {
	h.t.Helper()
	h.e.SetInput(k, true)
	h.e.SetInput(k, false)
	return h.tick()
}

// settle lets the player fall onto the water line.
func (h *harness) settle() Snapshot {
	h.t.Helper()
	s := h.run(40)
	if s.Player.Jumping || s.Player.Bottom() != s.WaterLine {
		h.t.Fatalf("player did not settle: bottom=%v water=%v jumping=%v",
			s.Player.Bottom(), s.WaterLine, s.Player.Jumping)
	}
	return s
}

// waveUnder puts a long, slow wave whose left edge is just behind the player.
func (h *harness) waveUnder(height, width, speed float64) WaveID {
	p := h.e.player
	return h.e.AddWave(Wave{
		X:      p.CenterX() - 5,
		Y:      h.e.WaterLine(),
		Width:  width,
		Height: height,
		Speed:  speed,
	})
}

func checkInvariants(t *testing.T, s Snapshot) {
	t.Helper()
	p := s.Player
	if p.Momentum < 0 || p.Momentum > 3 {
		t.Fatalf("tick %d: momentum %v out of [0,3]", s.Tick, p.Momentum)
	}
	if p.Grinding && p.Jumping {
		t.Fatalf("tick %d: grinding and jumping at once", s.Tick)
	}
	if p.State == StateGrind && !p.Grinding {
		t.Fatalf("tick %d: grind state without grinding", s.Tick)
	}
	if p.State == StateTrick && !p.Jumping {
		t.Fatalf("tick %d: trick state on the ground", s.Tick)
	}
	if (s.GrindWave != 0) != p.Grinding {
		t.Fatalf("tick %d: grind wave %d with grinding=%v", s.Tick, s.GrindWave, p.Grinding)
	}
	if p.X < 0 || p.X > s.CanvasW-p.W {
		t.Fatalf("tick %d: x=%v outside canvas", s.Tick, p.X)
	}
	if s.SpeedRatio < 0 || s.SpeedRatio > 1 {
		t.Fatalf("tick %d: speed ratio %v out of [0,1]", s.Tick, s.SpeedRatio)
	}
}
