package surf

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-surf/internal/core"
	"github.com/vovakirdan/tui-surf/internal/games/surf/sim"
)

// Visual characters for rendering
const (
	WaterSurface = '~'
	WaterBody    = '≈'
	SandChar     = '▒'
	CrestChar    = '▀'
	WaveBody     = '▓'
	BoardChar    = '═'
	BarFull      = '█'
	BarEmpty     = '░'
)

// Stickman poses, three rows each. The board is drawn under the feet.
var (
	poseNormal = []string{" o ", "/|\\", "/ \\"}
	poseGrind  = []string{" o/", "<| ", "/ >"}
	poseGrab   = []string{"\\o ", " |\\", "/_\\"}
)

// poseFlip holds the rotation of a 360 flip, a quarter turn per pose.
var poseFlip = [][]string{
	{" o ", "/|\\", "/ \\"},
	{"\\  ", "-o-", "/  "},
	{"\\ /", " | ", " o "},
	{"  /", "-o-", "  \\"},
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	s := g.snap
	v := core.NewViewport(s.CanvasW, s.CanvasH, w, h)

	g.drawWater(dst, v)
	for _, wave := range s.Waves {
		drawWave(dst, v, wave)
	}
	drawSurfer(dst, v, s)
	g.drawHUD(dst)

	switch {
	case !s.Started:
		drawCenteredMessage(dst, "SURF", "Press any key to start",
			"←→ move  ↑↓ float  SPACE jump  Z flip  X grab")
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawWater fills everything below the water line, with sand on the last row.
// The surface ripples as the run goes on.
func (g *Game) drawWater(dst *core.Screen, v core.Viewport) {
	top := v.Row(g.snap.WaterLine)
	phase := int(g.snap.Tick / 8)
	for y := top; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			switch {
			case y == dst.Height()-1:
				dst.SetColored(x, y, SandChar, core.ColorSand)
			case y == top:
				r := WaterSurface
				if (x+phase)%4 == 0 {
					r = '-'
				}
				dst.SetColored(x, y, r, core.ColorBrightCyan)
			default:
				dst.SetColored(x, y, WaterBody, core.ColorDeepBlue)
			}
		}
	}
}

// drawWave draws a wave arch column by column from its crest to its base.
func drawWave(dst *core.Screen, v core.Viewport, w sim.Wave) {
	body := tintColor(w.Tint)
	first := max(0, v.Col(w.X))
	last := min(dst.Width()-1, v.Col(w.Right()))

	for col := first; col <= last; col++ {
		x := v.WorldX(col)
		if x < w.X || x > w.Right() {
			continue
		}
		crest := v.Row(sim.SurfaceY(w, x))
		base := v.Row(w.Y)
		dst.SetColored(col, crest, CrestChar, core.ColorBrightWhite)
		for y := crest + 1; y <= base; y++ {
			dst.SetColored(col, y, WaveBody, body)
		}
	}
}

// tintColor picks the terminal color closest to a wave's tint.
func tintColor(t sim.Tint) core.Color {
	switch {
	case t.G < 153:
		return core.ColorBlue
	case t.G < 186:
		return core.ColorBrightBlue
	default:
		return core.ColorCyan
	}
}

// pose returns the stickman rows for the player's state.
func pose(s sim.Snapshot) []string {
	p := s.Player
	switch p.State {
	case sim.StateGrind:
		return poseGrind
	case sim.StateTrick:
		if s.Trick.Name == sim.TrickGrab {
			return poseGrab
		}
		frames := max(1, int(s.Trick.Progress*float64(len(poseFlip))))
		return poseFlip[min(frames, len(poseFlip))-1]
	default:
		return poseNormal
	}
}

// drawSurfer draws the stickman with the board under its feet.
func drawSurfer(dst *core.Screen, v core.Viewport, s sim.Snapshot) {
	p := s.Player
	rows := pose(s)

	col := v.Col(p.CenterX()) - 1
	board := v.Row(p.Bottom())
	if board >= dst.Height() {
		board = dst.Height() - 1
	}

	color := core.ColorWhite
	if p.State == sim.StateTrick {
		color = core.ColorYellow
	}
	for i, line := range rows {
		y := board - len(rows) + i
		for dx, r := range []rune(line) {
			if r != ' ' {
				dst.SetColored(col+dx, y, r, color)
			}
		}
	}

	boardColor := core.ColorOrange
	if p.Grinding {
		boardColor = core.ColorYellow
	}
	dst.DrawTextColored(col, board, strings.Repeat(string(BoardChar), 3), boardColor)
}

// drawHUD draws score, speed and trick progress along the top rows.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.snap

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", s.Score), core.ColorBrightWhite)

	speed := "SPEED " + bar(s.SpeedRatio, 10)
	dst.DrawTextColored(dst.Width()-len([]rune(speed))-1, 0, speed, core.ColorGreen)

	if s.Trick.Active {
		label := fmt.Sprintf("%s %s", s.Trick.Name, bar(s.Trick.Progress, 8))
		x := (dst.Width() - len([]rune(label))) / 2
		c := core.ColorYellow
		if s.Trick.Scored {
			c = core.ColorGreen
		}
		dst.DrawTextColored(x, 1, label, c)
	} else if s.Player.Grinding {
		dst.DrawTextCentered(1, "GRINDING")
	}
}

// bar renders ratio in [0,1] as a fixed-width gauge.
func bar(ratio float64, width int) string {
	n := int(core.ClampF(ratio, 0, 1) * float64(width))
	return "[" + strings.Repeat(string(BarFull), n) + strings.Repeat(string(BarEmpty), width-n) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRectColored(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
