// Package config provides YAML-based game configuration loading and
// difficulty management for the surf game.
package config

// SurfConfig contains all configuration for the surf game.
type SurfConfig struct {
	Canvas     SurfCanvas       `yaml:"canvas"`
	Physics    SurfPhysics      `yaml:"physics"`
	Player     SurfPlayer       `yaml:"player"`
	Waves      SurfWaves        `yaml:"waves"`
	Tricks     SurfTricks       `yaml:"tricks"`
	Scoring    SurfScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SurfCanvas defines the simulated world size in pixels.
// The terminal renderer scales this world onto the available cells.
type SurfCanvas struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WaterDepth float64 `yaml:"water_depth"` // Distance of the water line from the bottom
	Ceiling    float64 `yaml:"ceiling"`
}

// SurfPhysics defines player physics parameters.
type SurfPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpForce      float64 `yaml:"jump_force"`
	BaseSpeed      float64 `yaml:"base_speed"`
	VerticalSpeed  float64 `yaml:"vertical_speed"`
	SlopeAngle     float64 `yaml:"slope_angle"` // Degrees
	SlopeFactor    float64 `yaml:"slope_factor"`
	MomentumGain   float64 `yaml:"momentum_gain"`
	MomentumDecay  float64 `yaml:"momentum_decay"`
	MomentumMax    float64 `yaml:"momentum_max"`
	GrindMomentum  float64 `yaml:"grind_momentum"`
	JumpOffBonus   float64 `yaml:"jump_off_bonus"`
	DriftFactor    float64 `yaml:"drift_factor"`
	HeldGravityMul float64 `yaml:"held_gravity_mul"`
}

// SurfPlayer defines the player's spawn pose and hitbox.
type SurfPlayer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SurfWaves defines wave generation parameters.
type SurfWaves struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	SpawnInterval  int     `yaml:"spawn_interval"` // Ticks between timed spawns
	RandomChance   float64 `yaml:"random_chance"`  // Per-tick probability of an extra wave
	RandomBand     float64 `yaml:"random_band"`    // Height of the band above the water line for extra waves
	SpawnOffset    float64 `yaml:"spawn_offset"`   // Distance past the right edge where waves appear
	MinHeight      float64 `yaml:"min_height"`
	MaxHeight      float64 `yaml:"max_height"`
	MinLength      float64 `yaml:"min_length"`
	MaxLength      float64 `yaml:"max_length"`
	MinCurve       float64 `yaml:"min_curve"`
	MaxCurve       float64 `yaml:"max_curve"`
	MinSpeedFactor float64 `yaml:"min_speed_factor"`
	MaxSpeedFactor float64 `yaml:"max_speed_factor"`
	GrindTolerance float64 `yaml:"grind_tolerance"`
	GrindLift      float64 `yaml:"grind_lift"` // How far the board sinks into the crest while grinding
}

// SurfTricks defines trick durations in milliseconds.
type SurfTricks struct {
	FlipDuration int64 `yaml:"flip_duration"`
	GrabDuration int64 `yaml:"grab_duration"`
	Frames       int   `yaml:"frames"`
}

// SurfScoring defines point values.
type SurfScoring struct {
	TrickPoints int `yaml:"trick_points"`
	GrindPoints int `yaml:"grind_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to wave speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn interval reduction (ticks) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
