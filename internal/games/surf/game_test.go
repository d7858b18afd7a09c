package surf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-surf/internal/config"
	"github.com/vovakirdan/tui-surf/internal/core"
	"github.com/vovakirdan/tui-surf/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  25,
		TickRate: 60,
		Seed:     1,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Surf" {
		t.Errorf("Title() = %q, want Surf", g.Title())
	}
}

func TestGameWaitsForFirstKey(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	if st := g.State(); st.Started || st.Stats.Ticks != 0 {
		t.Fatalf("game advanced without input: %+v", st)
	}

	// Pause is ignored on the start screen.
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("paused before start")
	}

	g.Step(frame(core.ActionRight))
	if st := g.State(); !st.Started || st.Stats.Ticks != 1 {
		t.Errorf("after first key: %+v", st)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame(core.ActionRight))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}

	before := g.Snapshot()
	g.Step(frame())
	if g.Snapshot().Tick != before.Tick {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Game should be unpaused")
	}
}

func TestKeyHoldWindow(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionRight))
	if vx := g.Snapshot().Player.VX; vx < 5 {
		t.Fatalf("VX = %v right after pressing right, want >= 5", vx)
	}

	// 300ms at 60 ticks/s keeps the key down for 18 ticks in total.
	for i := 1; i < g.holdTicks; i++ {
		g.Step(frame())
		if vx := g.Snapshot().Player.VX; vx < 5 {
			t.Fatalf("tick %d: key released early, VX = %v", i, vx)
		}
	}
	g.Step(frame())
	if vx := g.Snapshot().Player.VX; vx >= 5 {
		t.Errorf("key still held after the window, VX = %v", vx)
	}
}

func TestOppositeKeyWins(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionLeft))
	if vx := g.Snapshot().Player.VX; vx != -5 {
		t.Errorf("VX = %v after switching to left, want -5", vx)
	}
	g.Step(frame(core.ActionRight))
	if vx := g.Snapshot().Player.VX; vx < 5 {
		t.Errorf("VX = %v after switching back, want >= 5", vx)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionRight))
	for i := 0; i < 200; i++ {
		in := frame()
		if i%40 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testConfig())
	st := g.State()
	if st.Score != 0 || st.Started || st.Paused || st.Stats.Ticks != 0 {
		t.Errorf("Reset should clear state, got %+v", st)
	}
	if g.ticks != 0 || len(g.hold) != 0 {
		t.Errorf("Reset should clear input, ticks=%d hold=%v", g.ticks, g.hold)
	}
}

func TestCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surf.yaml")
	data := []byte("canvas:\n  width: 1000\nscoring:\n  grind_points: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	g := New()
	g.Reset(testConfig())
	if g.Snapshot().CanvasW != 1000 {
		t.Errorf("CanvasW = %v, want 1000", g.Snapshot().CanvasW)
	}
	if g.Config().Scoring.GrindPoints != 2 || g.Config().Canvas.Height != 500 {
		t.Errorf("config = %+v", g.Config())
	}
}

func TestMissingConfigFallsBack(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	defer SetConfigPath("")

	g := New()
	g.Reset(testConfig())
	if g.Snapshot().CanvasW != 800 {
		t.Errorf("CanvasW = %v, want default 800", g.Snapshot().CanvasW)
	}
}

func TestRejectedCanvasFallsBackAndLogs(t *testing.T) {
	var buf bytes.Buffer
	prev := logger
	SetLogger(log.New(&buf))
	defer SetLogger(prev)

	// Too short to fit the player between the ceiling and the water.
	cfg := config.DefaultSurfConfig()
	cfg.Canvas.Height = 150

	g := New()
	g.startEngine(cfg, 1)

	if got := g.Snapshot().CanvasH; got != 500 {
		t.Errorf("CanvasH = %v, want default 500", got)
	}
	if g.Config().Canvas.Height != 500 {
		t.Errorf("config canvas height = %v, want default", g.Config().Canvas.Height)
	}
	if !strings.Contains(buf.String(), "bad canvas") {
		t.Errorf("fallback not logged, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "default canvas rejected") {
		t.Errorf("defaults should reset cleanly, got %q", buf.String())
	}
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(testConfig())
	d := g.Config().Difficulty
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("difficulty = %+v, want enabled at 0.7", d)
	}
}

func TestInstancePresetOverridesDefault(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := New()
	g.SetPreset("fixed")
	g.Reset(testConfig())
	if g.Config().Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestRenderStartScreen(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 25)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SCORE 0", "SPEED [", "Press any key to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderScene(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame(core.ActionRight))

	screen := core.NewScreen(80, 25)
	g.Render(screen)
	out := screen.String()

	if strings.Contains(out, "Press any key") {
		t.Error("start message still shown after start")
	}
	if !strings.Contains(out, "═══") {
		t.Error("surfboard not drawn")
	}
	// Water line 400 of 500 maps to row 20.
	if r := screen.GetCell(5, 21); r.Rune != WaterBody || r.Color != core.ColorDeepBlue {
		t.Errorf("cell below the water line = %+v", r)
	}
	if r := screen.Get(0, 24); r != SandChar {
		t.Errorf("bottom row = %q, want sand", r)
	}
}

func TestRenderTrickHUD(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame(core.ActionRight))
	for i := 0; i < 40; i++ {
		g.Step(frame())
	}
	g.Step(frame(core.ActionJump))
	g.Step(frame(core.ActionTrickA))

	screen := core.NewScreen(80, 25)
	g.Render(screen)
	if !strings.Contains(screen.Row(1), "360 FLIP") {
		t.Errorf("trick name missing from HUD: %q", screen.Row(1))
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, "[░░░░]"},
		{0.5, "[██░░]"},
		{1, "[████]"},
		{2, "[████]"},
		{-1, "[░░░░]"},
	}
	for _, tt := range tests {
		if got := bar(tt.ratio, 4); got != tt.want {
			t.Errorf("bar(%v) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}
