// Package sim implements the surf simulation: player kinematics, wave spawning
// and movement, grinding, the trick state machine and scoring.
//
// The engine is advanced one fixed tick at a time by Tick, which takes the
// current monotonic time in milliseconds so trick timing is replayable.
// Nothing in this package renders, reads the clock or touches the terminal.
package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-surf/internal/config"
)

// Params holds every tunable of the simulation.
type Params struct {
	WaterDepth float64 // Water line sits this far above the bottom of the canvas
	Ceiling    float64

	Gravity        float64
	HeldGravityMul float64 // Gravity multiplier while up/down is held
	JumpForce      float64
	BaseSpeed      float64
	VerticalSpeed  float64
	SlopeTan       float64 // tan of the beach slope angle
	SlopeFactor    float64
	DriftFactor    float64 // Share of momentum used as passive forward speed

	MomentumGain  float64
	MomentumDecay float64
	MomentumMax   float64
	GrindMomentum float64
	JumpOffBonus  float64

	PlayerX, PlayerY float64
	PlayerW, PlayerH float64

	Waves WaveParams

	FlipDuration int64 // ms
	GrabDuration int64 // ms
	TrickFrames  int

	TrickPoints int
	GrindPoints int

	Difficulty config.DifficultyConfig
}

// WaveParams controls wave generation and grinding.
type WaveParams struct {
	BaseSpeed      float64
	SpawnInterval  int
	RandomChance   float64
	RandomBand     float64
	SpawnOffset    float64
	MinHeight      float64
	MaxHeight      float64
	MinLength      float64
	MaxLength      float64
	MinCurve       float64
	MaxCurve       float64
	MinSpeedFactor float64
	MaxSpeedFactor float64
	GrindTolerance float64
	GrindLift      float64
}

// DefaultParams returns the parameters of the classic game.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultSurfConfig())
}

// ParamsFromConfig maps a YAML configuration onto engine parameters.
func ParamsFromConfig(cfg config.SurfConfig) Params {
	ph := cfg.Physics
	w := cfg.Waves
	return Params{
		WaterDepth:     cfg.Canvas.WaterDepth,
		Ceiling:        cfg.Canvas.Ceiling,
		Gravity:        ph.Gravity,
		HeldGravityMul: ph.HeldGravityMul,
		JumpForce:      ph.JumpForce,
		BaseSpeed:      ph.BaseSpeed,
		VerticalSpeed:  ph.VerticalSpeed,
		SlopeTan:       math.Tan(mgl64.DegToRad(ph.SlopeAngle)),
		SlopeFactor:    ph.SlopeFactor,
		DriftFactor:    ph.DriftFactor,
		MomentumGain:   ph.MomentumGain,
		MomentumDecay:  ph.MomentumDecay,
		MomentumMax:    ph.MomentumMax,
		GrindMomentum:  ph.GrindMomentum,
		JumpOffBonus:   ph.JumpOffBonus,
		PlayerX:        cfg.Player.X,
		PlayerY:        cfg.Player.Y,
		PlayerW:        cfg.Player.Width,
		PlayerH:        cfg.Player.Height,
		Waves: WaveParams{
			BaseSpeed:      w.BaseSpeed,
			SpawnInterval:  w.SpawnInterval,
			RandomChance:   w.RandomChance,
			RandomBand:     w.RandomBand,
			SpawnOffset:    w.SpawnOffset,
			MinHeight:      w.MinHeight,
			MaxHeight:      w.MaxHeight,
			MinLength:      w.MinLength,
			MaxLength:      w.MaxLength,
			MinCurve:       w.MinCurve,
			MaxCurve:       w.MaxCurve,
			MinSpeedFactor: w.MinSpeedFactor,
			MaxSpeedFactor: w.MaxSpeedFactor,
			GrindTolerance: w.GrindTolerance,
			GrindLift:      w.GrindLift,
		},
		FlipDuration: cfg.Tricks.FlipDuration,
		GrabDuration: cfg.Tricks.GrabDuration,
		TrickFrames:  cfg.Tricks.Frames,
		TrickPoints:  cfg.Scoring.TrickPoints,
		GrindPoints:  cfg.Scoring.GrindPoints,
		Difficulty:   cfg.Difficulty,
	}
}
