package sim

import (
	"github.com/go-gl/mathgl/mgl64"
)

// State is the surfer's pose state.
type State int

const (
	StateNormal State = iota
	StateTrick        // Airborne and performing a trick
	StateGrind        // Riding a wave crest
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateTrick:
		return "trick"
	case StateGrind:
		return "grind"
	default:
		return "unknown"
	}
}

// Player is the surfer.
// Jumping and Grinding are never both set; StateGrind implies Grinding and
// StateTrick implies Jumping.
type Player struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Jumping  bool
	Grinding bool
	State    State
	Momentum float64

	TrickStart    int64 // ms
	TrickDuration int64 // ms
	TrickFrame    int
}

func (p Player) box() box {
	return box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// CenterX returns the horizontal center of the player.
func (p Player) CenterX() float64 {
	return p.X + p.W/2
}

// rising reports whether the player is on the way up from a jump.
func (p Player) rising() bool {
	return p.Jumping && p.VY < 0
}

// Bottom returns the y-coordinate of the board.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// updateMomentum builds momentum on the ground, holds a floor while
// grinding and bleeds it off in the air.
func (e *Engine) updateMomentum() {
	p := &e.player
	switch {
	case p.Grinding:
		if p.Momentum < e.params.GrindMomentum {
			p.Momentum = e.params.GrindMomentum
		}
	case p.Jumping:
		p.Momentum *= e.params.MomentumDecay
	default:
		p.Momentum += e.params.MomentumGain
	}
	if p.Momentum > e.params.MomentumMax {
		p.Momentum = e.params.MomentumMax
	}
}

// steer applies horizontal and vertical key input and moves the player
// horizontally within the canvas.
func (e *Engine) steer(in inputState) {
	p := &e.player

	switch {
	case in.Held(KeyMoveLeft):
		p.VX = -e.params.BaseSpeed
	case in.Held(KeyMoveRight):
		p.VX = e.params.BaseSpeed + p.Momentum
	default:
		p.VX = p.Momentum * e.params.DriftFactor
	}

	if !p.Grinding {
		if in.Held(KeyMoveUp) {
			p.VY = -e.params.VerticalSpeed
		} else if in.Held(KeyMoveDown) {
			p.VY = e.params.VerticalSpeed
		}
	}

	p.X = mgl64.Clamp(p.X+p.VX, 0, e.canvasW-p.W)
}

// applyGravity integrates vertical motion for a free (non-grinding) player,
// then adds the downhill drift of the sloped beach while on the ground.
func (e *Engine) applyGravity(in inputState) {
	p := &e.player
	if p.Grinding {
		return
	}

	g := e.params.Gravity
	if in.Held(KeyMoveUp) || in.Held(KeyMoveDown) {
		g *= e.params.HeldGravityMul
	}
	p.VY += g
	p.Y += p.VY

	if !p.Jumping {
		p.Y += e.params.SlopeTan * p.VX * e.params.SlopeFactor
	}
}

// clampWorld keeps the player between the ceiling and the water line.
// Touching the water ends a jump.
func (e *Engine) clampWorld() {
	p := &e.player
	water := e.WaterLine()

	if p.Bottom() > water {
		p.Y = water - p.H
		p.VY = 0
		if !p.Grinding {
			p.Jumping = false
			e.landTrick()
			p.State = StateNormal
		}
	}

	if p.Y < e.params.Ceiling {
		p.Y = e.params.Ceiling
		p.VY = 0
	}
}
