package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-surf/internal/config"
)

// ErrInvalidCanvas is returned by Reset for unusable canvas dimensions.
var ErrInvalidCanvas = errors.New("invalid canvas")

// Engine owns all mutable game state and advances it one tick at a time.
// Tick must not be called concurrently with itself; SetInput may be called
// from any goroutine.
type Engine struct {
	params Params
	input  inputLatch
	gen    *generator

	canvasW, canvasH float64

	player    Player
	waves     []Wave
	grindWave WaveID
	leftWave  WaveID // Wave last jumped off; cannot be caught again while rising
	trick     trickState
	score     Scorer

	started bool
	tick    uint64
	now     int64
}

// New creates an engine. Call Reset before the first Tick.
func New(params Params, rng Rand) *Engine {
	diff := config.NewDifficultyManager(params.Difficulty)
	return &Engine{
		params: params,
		gen:    newGenerator(params.Waves, rng, diff),
	}
}

// Params returns the engine's parameters.
func (e *Engine) Params() Params {
	return e.params
}

// Reset (re)initializes the whole simulation for a canvas of the given size
// and spawns the first wave. The engine waits for a key press before ticking.
func (e *Engine) Reset(canvasW, canvasH float64) (Snapshot, error) {
	if err := e.validateCanvas(canvasW, canvasH); err != nil {
		return Snapshot{}, err
	}

	e.canvasW, e.canvasH = canvasW, canvasH
	e.player = Player{
		X: e.params.PlayerX,
		Y: e.params.PlayerY,
		W: e.params.PlayerW,
		H: e.params.PlayerH,
	}
	e.waves = e.waves[:0]
	e.grindWave = 0
	e.leftWave = 0
	e.trick = trickState{}
	e.score.Reset()
	e.started = false
	e.tick = 0
	e.now = 0
	e.input.reset()
	e.gen.reset()

	e.waves = append(e.waves, e.gen.spawn(canvasW, e.WaterLine(), 0, 0))

	return e.Snapshot(), nil
}

func (e *Engine) validateCanvas(w, h float64) error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	switch {
	case !finite(w) || !finite(h) || w <= 0 || h <= 0:
		return fmt.Errorf("sim: %w: %vx%v", ErrInvalidCanvas, w, h)
	case w <= e.params.PlayerW:
		return fmt.Errorf("sim: %w: width %v does not fit the player", ErrInvalidCanvas, w)
	case h-e.params.WaterDepth-e.params.PlayerH < e.params.Ceiling:
		return fmt.Errorf("sim: %w: height %v leaves no room above the water", ErrInvalidCanvas, h)
	}
	return nil
}

// SetInput records a key transition. Jump and trick keys act on the tick
// after the press; holding them does not repeat. Any press starts the game.
func (e *Engine) SetInput(k Key, pressed bool) {
	e.input.set(k, pressed)
}

// Start begins ticking without waiting for a key press.
func (e *Engine) Start() {
	e.input.start()
}

// Tick advances the simulation by one step at the given monotonic time in
// milliseconds. Before the game has started it only returns the snapshot.
func (e *Engine) Tick(nowMillis int64) Snapshot {
	in, started := e.input.take()
	if !started {
		return e.Snapshot()
	}
	e.started = true
	e.tick++
	e.now = nowMillis

	e.handleEdges(in)
	e.spawnWaves()
	e.updateMomentum()
	e.steer(in)
	e.updateWaveField(in)
	e.applyGravity(in)
	e.updateTrickTimer()
	e.clampWorld()
	e.resolveLanding()

	return e.Snapshot()
}

func (e *Engine) spawnWaves() {
	spawned := e.gen.update(e.canvasW, e.WaterLine(), e.score.Score(), e.tick)
	e.waves = append(e.waves, spawned...)
}

// AddWave inserts an externally built wave and returns its ID.
// Waves with a non-positive width are dropped on the next tick.
func (e *Engine) AddWave(w Wave) WaveID {
	w.ID = e.gen.assignID()
	e.waves = append(e.waves, w)
	return w.ID
}

// WaterLine returns the y-coordinate of the water surface.
func (e *Engine) WaterLine() float64 {
	return e.canvasH - e.params.WaterDepth
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score.Score()
}

// SurfaceY returns the crest height of the given wave at x, and false if the
// wave no longer exists.
func (e *Engine) SurfaceY(id WaveID, x float64) (float64, bool) {
	i := findWave(e.waves, id)
	if i < 0 {
		return 0, false
	}
	return SurfaceY(e.waves[i], x), true
}
