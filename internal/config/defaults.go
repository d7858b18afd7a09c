package config

import (
	_ "embed"
)

//go:embed defaults/surf.yaml
var defaultSurfYAML []byte

// DefaultSurfConfig returns the default surf configuration.
// It mirrors defaults/surf.yaml and is used if the embedded file cannot be parsed.
func DefaultSurfConfig() SurfConfig {
	return SurfConfig{
		Canvas: SurfCanvas{
			Width:      800,
			Height:     500,
			WaterDepth: 100,
			Ceiling:    50,
		},
		Physics: SurfPhysics{
			Gravity:        0.5,
			JumpForce:      -10,
			BaseSpeed:      5,
			VerticalSpeed:  3,
			SlopeAngle:     12,
			SlopeFactor:    0.1,
			MomentumGain:   0.05,
			MomentumDecay:  0.99,
			MomentumMax:    3,
			GrindMomentum:  1,
			JumpOffBonus:   0.5,
			DriftFactor:    0.5,
			HeldGravityMul: 0.5,
		},
		Player: SurfPlayer{
			X:      150,
			Y:      300,
			Width:  20,
			Height: 40,
		},
		Waves: SurfWaves{
			BaseSpeed:      2,
			SpawnInterval:  180,
			RandomChance:   0.01,
			RandomBand:     100,
			SpawnOffset:    50,
			MinHeight:      40,
			MaxHeight:      120,
			MinLength:      150,
			MaxLength:      450,
			MinCurve:       10,
			MaxCurve:       30,
			MinSpeedFactor: 0.8,
			MaxSpeedFactor: 1.2,
			GrindTolerance: 10,
			GrindLift:      2,
		},
		Tricks: SurfTricks{
			FlipDuration: 1000,
			GrabDuration: 800,
			Frames:       20,
		},
		Scoring: SurfScoring{
			TrickPoints: 100,
			GrindPoints: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 90,
			},
		},
	}
}

// DefaultSurfYAML returns the embedded default YAML.
func DefaultSurfYAML() []byte {
	return defaultSurfYAML
}
