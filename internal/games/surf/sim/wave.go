package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WaveID identifies a wave for its whole lifetime. Zero means "no wave".
type WaveID uint64

// Tint is the cosmetic color of a wave.
type Tint struct {
	R, G, B uint8
}

// Wave is a grindable swell moving from right to left.
// Y is the wave's base line; the crest rises Height above it.
type Wave struct {
	ID          WaveID
	X, Y        float64
	Width       float64
	Height      float64 // Amplitude of the crest
	CurveHeight float64
	Speed       float64
	Tint        Tint
}

// Right returns the x-coordinate of the wave's right edge.
func (w Wave) Right() float64 {
	return w.X + w.Width
}

// expired reports whether the wave has left the screen or can never be ridden.
func (w Wave) expired() bool {
	return w.Width <= 0 || w.X+w.Width < 0
}

// SurfaceY returns the height of the wave's crest at horizontal position x.
// The crest is a single sine arch: the base line at both ends, Height above it
// in the middle. Positions outside the wave are clamped to its ends.
func SurfaceY(w Wave, x float64) float64 {
	if w.Width <= 0 {
		return w.Y
	}
	t := mgl64.Clamp((x-w.X)/w.Width, 0, 1)
	return w.Y - w.Height*math.Sin(t*math.Pi)
}

// box is the axis-aligned extent used for wave collision.
type box struct {
	X, Y, W, H float64
}

// touchesWave tests a box against a wave's collision region.
// The wave's exclusion zone runs from Y-Height down to Y (its base line), not
// Y+Height; grind height precision comes from SurfaceY instead.
func touchesWave(a box, w Wave) bool {
	return !(a.X+a.W < w.X ||
		a.X > w.X+w.Width ||
		a.Y+a.H < w.Y-w.Height ||
		a.Y > w.Y)
}

// advanceWaves moves every wave left by its speed and drops the expired ones.
// The slice is compacted in place, so no wave is skipped.
func advanceWaves(waves []Wave) []Wave {
	kept := waves[:0]
	for _, w := range waves {
		w.X -= w.Speed
		if w.expired() {
			continue
		}
		kept = append(kept, w)
	}
	// Clear the tail so dropped waves are not retained by the backing array.
	for i := len(kept); i < len(waves); i++ {
		waves[i] = Wave{}
	}
	return kept
}

// findWave returns the index of the wave with the given ID, or -1.
func findWave(waves []Wave, id WaveID) int {
	if id == 0 {
		return -1
	}
	for i := range waves {
		if waves[i].ID == id {
			return i
		}
	}
	return -1
}
