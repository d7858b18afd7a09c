package sim

import (
	"github.com/vovakirdan/tui-surf/internal/config"
)

// Rand is the source of randomness for wave generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// generator spawns waves on a timer and by chance.
type generator struct {
	params     WaveParams
	rng        Rand
	difficulty *config.DifficultyManager
	timer      int
	nextID     WaveID
}

func newGenerator(p WaveParams, rng Rand, diff *config.DifficultyManager) *generator {
	return &generator{params: p, rng: rng, difficulty: diff, nextID: 1}
}

func (g *generator) reset() {
	g.timer = 0
	g.nextID = 1
}

// between returns a uniform value in [lo, hi).
func (g *generator) between(lo, hi float64) float64 {
	return g.rng.Float64()*(hi-lo) + lo
}

// update runs both spawn triggers for one tick and returns the new waves.
func (g *generator) update(canvasW, waterLine float64, score int, ticks uint64) []Wave {
	var spawned []Wave

	g.timer++
	if g.timer >= g.difficulty.Spacing(g.params.SpawnInterval, score, int(ticks)) {
		spawned = append(spawned, g.spawn(canvasW, waterLine, score, ticks))
		g.timer = 0
	}

	if g.rng.Float64() < g.params.RandomChance {
		y := g.between(waterLine-g.params.RandomBand, waterLine)
		spawned = append(spawned, g.spawn(canvasW, y, score, ticks))
	}

	return spawned
}

// spawn creates a wave just past the right edge with randomized shape and speed.
func (g *generator) spawn(canvasW, y float64, score int, ticks uint64) Wave {
	p := g.params
	base := g.difficulty.Speed(p.BaseSpeed, score, int(ticks))

	w := Wave{
		X:           canvasW + p.SpawnOffset,
		Y:           y,
		Height:      g.between(p.MinHeight, p.MaxHeight),
		Width:       g.between(p.MinLength, p.MaxLength),
		CurveHeight: g.between(p.MinCurve, p.MaxCurve),
		Speed:       base * g.between(p.MinSpeedFactor, p.MaxSpeedFactor),
		Tint: Tint{
			R: 0,
			G: uint8(120 + int(g.rng.Float64()*100)),
			B: uint8(180 + int(g.rng.Float64()*60)),
		},
	}
	w.ID = g.assignID()
	return w
}

func (g *generator) assignID() WaveID {
	id := g.nextID
	g.nextID++
	return id
}
