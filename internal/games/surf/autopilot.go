package surf

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-surf/internal/config"
	"github.com/vovakirdan/tui-surf/internal/core"
	"github.com/vovakirdan/tui-surf/internal/games/surf/sim"
)

// Report summarises a headless run.
type Report struct {
	Seed       int64  `yaml:"seed"`
	Ticks      uint64 `yaml:"ticks"`
	Score      int    `yaml:"score"`
	Tricks     int    `yaml:"tricks"`
	GrindTicks int    `yaml:"grind_ticks"`
	Waves      int    `yaml:"waves_on_screen"`
	Digest     string `yaml:"digest"`
}

// autopilot drives the engine without a terminal. It always carves right,
// jumps now and then, throws a trick on every jump and bails out of grinds
// at random. Its choices come from its own source so the engine's wave
// stream is unaffected.
type autopilot struct {
	rng    *rand.Rand
	tapped []sim.Key
}

func (a *autopilot) act(e *sim.Engine, snap sim.Snapshot) {
	for _, k := range a.tapped {
		e.SetInput(k, false)
	}
	a.tapped = a.tapped[:0]

	e.SetInput(sim.KeyMoveRight, true)

	p := snap.Player
	switch {
	case p.Grinding:
		if a.rng.Float64() < 0.01 {
			a.tap(e, sim.KeyJump)
		}
	case !p.Jumping:
		if a.rng.Float64() < 0.02 {
			a.tap(e, sim.KeyJump)
		}
	case !snap.Trick.Active:
		if a.rng.Float64() < 0.5 {
			a.tap(e, sim.KeyTrickA)
		} else {
			a.tap(e, sim.KeyTrickB)
		}
	}
}

func (a *autopilot) tap(e *sim.Engine, k sim.Key) {
	e.SetInput(k, true)
	a.tapped = append(a.tapped, k)
}

// RunHeadless plays ticks simulation steps with the autopilot and reports
// the outcome. The same config, seed and tick count always give the same
// report.
func RunHeadless(cfg config.SurfConfig, seed int64, ticks int, tickRate int) (Report, error) {
	if ticks <= 0 {
		return Report{}, fmt.Errorf("surf: tick count must be positive, got %d", ticks)
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	engine := sim.New(sim.ParamsFromConfig(cfg), rand.New(rand.NewSource(seed)))
	snap, err := engine.Reset(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return Report{}, fmt.Errorf("surf: headless reset: %w", err)
	}

	runtime := core.RuntimeConfig{TickRate: tickRate, Seed: seed}
	bot := &autopilot{rng: rand.New(rand.NewSource(seed ^ 0x5f3759df))}
	engine.Start()
	for i := range ticks {
		bot.act(engine, snap)
		snap = engine.Tick(runtime.TickMillis(uint64(i + 1)))
	}

	logger.Debug("headless run finished", "seed", seed, "ticks", snap.Tick, "score", snap.Score)

	return Report{
		Seed:       seed,
		Ticks:      snap.Tick,
		Score:      snap.Score,
		Tricks:     snap.Stats.TricksLanded,
		GrindTicks: snap.Stats.GrindTicks,
		Waves:      len(snap.Waves),
		Digest:     fmt.Sprintf("%016x", snap.Digest()),
	}, nil
}
