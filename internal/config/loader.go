package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// LoadSurf loads the surf configuration.
// Search order: customPath -> ~/.arcade/configs/surf.yaml -> ./configs/surf.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadSurf(customPath string) (SurfConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SurfConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseSurf(data)
		if err != nil {
			return SurfConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("surf.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSurf(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "surf.yaml")); err == nil {
		if cfg, err := ParseSurf(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseSurf(defaultSurfYAML)
	if err != nil {
		return DefaultSurfConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSurf decodes YAML on top of the defaults and validates the result.
func ParseSurf(data []byte) (SurfConfig, error) {
	cfg := DefaultSurfConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SurfConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SurfConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration back to YAML.
func (c SurfConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that every size, speed and interval is usable by the simulation.
func (c SurfConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"canvas.width", c.Canvas.Width > 0},
		{"canvas.height", c.Canvas.Height > 0},
		{"canvas.water_depth", c.Canvas.WaterDepth >= 0 && c.Canvas.WaterDepth < c.Canvas.Height},
		{"canvas.ceiling", c.Canvas.Ceiling >= 0 && c.Canvas.Ceiling <= c.Canvas.Height-c.Canvas.WaterDepth-c.Player.Height},
		{"player.width", c.Player.Width > 0 && c.Player.Width < c.Canvas.Width},
		{"player.height", c.Player.Height > 0},
		{"physics.momentum_gain", c.Physics.MomentumGain >= 0},
		{"physics.momentum_decay", c.Physics.MomentumDecay >= 0 && c.Physics.MomentumDecay <= 1},
		{"physics.momentum_max", c.Physics.MomentumMax > 0},
		{"physics.grind_momentum", c.Physics.GrindMomentum >= 0 && c.Physics.GrindMomentum <= c.Physics.MomentumMax},
		{"physics.jump_off_bonus", c.Physics.JumpOffBonus >= 0},
		{"waves.base_speed", c.Waves.BaseSpeed > 0},
		{"waves.spawn_interval", c.Waves.SpawnInterval > 0},
		{"waves.random_chance", c.Waves.RandomChance >= 0 && c.Waves.RandomChance <= 1},
		{"waves.min_height", c.Waves.MinHeight > 0 && c.Waves.MaxHeight >= c.Waves.MinHeight},
		{"waves.min_length", c.Waves.MinLength > 0 && c.Waves.MaxLength >= c.Waves.MinLength},
		{"waves.min_speed_factor", c.Waves.MinSpeedFactor > 0 && c.Waves.MaxSpeedFactor >= c.Waves.MinSpeedFactor},
		{"tricks.flip_duration", c.Tricks.FlipDuration > 0},
		{"tricks.grab_duration", c.Tricks.GrabDuration > 0},
		{"tricks.frames", c.Tricks.Frames > 0},
		{"scoring.trick_points", c.Scoring.TrickPoints >= 0},
		{"scoring.grind_points", c.Scoring.GrindPoints >= 0},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, ch.name)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySurfPreset modifies the config based on a difficulty preset.
func ApplySurfPreset(cfg *SurfConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
