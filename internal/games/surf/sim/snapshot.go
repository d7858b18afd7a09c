package sim

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// maxIndicatorSpeed is the speed at which the speed indicator is full.
const maxIndicatorSpeed = 5.0

// TrickView describes the trick in progress for presentation.
type TrickView struct {
	Active   bool
	Name     string
	Progress float64 // 0..1
	Scored   bool
}

// Snapshot is a read-only copy of the simulation after a tick.
type Snapshot struct {
	Tick    uint64
	Started bool

	CanvasW   float64
	CanvasH   float64
	WaterLine float64

	Player    Player
	Trick     TrickView
	Waves     []Wave
	GrindWave WaveID

	Score int
	Stats Stats

	Speed      float64 // momentum plus forward speed in base-speed units
	SpeedRatio float64 // Speed relative to a full indicator, 0..1
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	waves := make([]Wave, len(e.waves))
	copy(waves, e.waves)

	speed := e.player.Momentum
	if e.player.VX > 0 && e.params.BaseSpeed > 0 {
		speed += e.player.VX / e.params.BaseSpeed
	}

	return Snapshot{
		Tick:      e.tick,
		Started:   e.started,
		CanvasW:   e.canvasW,
		CanvasH:   e.canvasH,
		WaterLine: e.WaterLine(),
		Player:    e.player,
		Trick: TrickView{
			Active:   e.trick.active,
			Name:     e.trick.name,
			Progress: e.trickProgress(),
			Scored:   e.trick.scored,
		},
		Waves:      waves,
		GrindWave:  e.grindWave,
		Score:      e.score.Score(),
		Stats:      e.score.Stats(),
		Speed:      speed,
		SpeedRatio: math.Min(speed/maxIndicatorSpeed, 1),
	}
}

// Digest returns a hash of the simulation-relevant state. Two runs with the
// same seed, inputs and timestamps produce equal digests.
func (s Snapshot) Digest() uint64 {
	buf := make([]byte, 0, 128+len(s.Waves)*64)
	f := func(v float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)) }
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	b := func(v bool) {
		if v {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	u(s.Tick)
	p := s.Player
	f(p.X)
	f(p.Y)
	f(p.VX)
	f(p.VY)
	f(p.Momentum)
	b(p.Jumping)
	b(p.Grinding)
	u(uint64(p.State))
	u(uint64(s.GrindWave))
	u(uint64(s.Score))
	b(s.Trick.Active)
	buf = append(buf, s.Trick.Name...)
	for _, w := range s.Waves {
		u(uint64(w.ID))
		f(w.X)
		f(w.Y)
		f(w.Width)
		f(w.Height)
		f(w.Speed)
	}
	return xxh3.Hash(buf)
}
