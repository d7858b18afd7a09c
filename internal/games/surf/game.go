// Package surf plugs the surf simulation into the arcade platform.
// It loads the YAML config, turns terminal key presses into held keys and
// draws the beach scene into a character screen.
package surf

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-surf/internal/config"
	"github.com/vovakirdan/tui-surf/internal/core"
	"github.com/vovakirdan/tui-surf/internal/games/surf/sim"
	"github.com/vovakirdan/tui-surf/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "surf"

// holdMillis is how long a key stays down after the last press or
// auto-repeat event. Terminals never report key releases.
const holdMillis = 300

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used for config fallbacks.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// binding ties a platform action to a simulation key. Pressing a key
// releases its opposite so the last direction wins.
type binding struct {
	action   core.Action
	key      sim.Key
	opposite sim.Key
}

var bindings = []binding{
	{core.ActionLeft, sim.KeyMoveLeft, sim.KeyMoveRight},
	{core.ActionRight, sim.KeyMoveRight, sim.KeyMoveLeft},
	{core.ActionUp, sim.KeyMoveUp, sim.KeyMoveDown},
	{core.ActionDown, sim.KeyMoveDown, sim.KeyMoveUp},
	{core.ActionJump, sim.KeyJump, -1},
	{core.ActionTrickA, sim.KeyTrickA, -1},
	{core.ActionTrickB, sim.KeyTrickB, -1},
}

// Game implements registry.Game for surf.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SurfConfig
	engine  *sim.Engine
	snap    sim.Snapshot

	preset    config.DifficultyPreset
	hasPreset bool

	hold      map[sim.Key]int // Ticks left before the key is released
	holdTicks int
	paused    bool
	ticks     uint64 // Adapter ticks, drive the simulated clock
}

// New creates a new surf game instance.
func New() *Game {
	return &Game{hold: make(map[sim.Key]int)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Surf"
}

// SetPreset overrides the package-wide difficulty preset for this instance.
// Takes effect on the next Reset.
func (g *Game) SetPreset(preset string) {
	g.preset = config.ParsePreset(preset)
	g.hasPreset = true
}

// Reset loads the config and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSurf(configPath)
	if err != nil {
		logger.Warn("using default surf config", "path", configPath, "err", err)
		cfg = config.DefaultSurfConfig()
	}
	preset := difficultyPreset
	if g.hasPreset {
		preset = g.preset
	}
	config.ApplySurfPreset(&cfg, preset)
	g.startEngine(cfg, runtime.Seed)

	rate := runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.holdTicks = max(1, rate*holdMillis/1000)
	clear(g.hold)
	g.paused = false
	g.ticks = 0
}

// startEngine builds and resets the engine for cfg. A canvas the engine
// rejects falls back to the default config.
func (g *Game) startEngine(cfg config.SurfConfig, seed int64) {
	g.cfg = cfg
	g.engine = sim.New(sim.ParamsFromConfig(cfg), rand.New(rand.NewSource(seed)))
	snap, err := g.engine.Reset(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		logger.Error("bad canvas, using defaults", "err", err)
		g.cfg = config.DefaultSurfConfig()
		g.engine = sim.New(sim.ParamsFromConfig(g.cfg), rand.New(rand.NewSource(seed)))
		if snap, err = g.engine.Reset(g.cfg.Canvas.Width, g.cfg.Canvas.Height); err != nil {
			logger.Error("default canvas rejected", "err", err)
		}
	}
	g.snap = snap
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.snap.Started {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.feed(in)
	g.ticks++
	g.snap = g.engine.Tick(g.runtime.TickMillis(g.ticks))

	return core.StepResult{State: g.State()}
}

// feed translates this frame's actions into key transitions.
func (g *Game) feed(in core.InputFrame) {
	for _, b := range bindings {
		if in.Has(b.action) {
			if b.opposite >= 0 && g.hold[b.opposite] > 0 {
				g.hold[b.opposite] = 0
				g.engine.SetInput(b.opposite, false)
			}
			if g.hold[b.key] == 0 {
				g.engine.SetInput(b.key, true)
			}
			g.hold[b.key] = g.holdTicks
			continue
		}

		if g.hold[b.key] > 0 {
			g.hold[b.key]--
			if g.hold[b.key] == 0 {
				g.engine.SetInput(b.key, false)
			}
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.snap.Score,
		Paused:  g.paused,
		Started: g.snap.Started,
		Stats: core.RunStats{
			TricksLanded: g.snap.Stats.TricksLanded,
			GrindTicks:   g.snap.Stats.GrindTicks,
			Ticks:        g.snap.Tick,
		},
	}
}

// Snapshot returns the last simulation snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// Config returns the effective configuration of the current run.
func (g *Game) Config() config.SurfConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
