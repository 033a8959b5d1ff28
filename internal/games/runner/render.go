package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/runner-dash/internal/core"
	"github.com/vovakirdan/runner-dash/internal/world"
)

// Visual characters for rendering
const (
	PlayerBody   = '█'
	PlayerHead   = '◆'
	PlayerLeg1   = '╱'
	PlayerLeg2   = '╲'
	CloudChar    = '░'
	BushChar     = '▒'
	GroundChar   = '═'
	StripeChar   = '╤'
	SoilChar     = '░'
	TurtleChar   = '▓'
	RabbitChar   = '█'
	MushroomChar = '▒'
)

// hudRows is the number of rows above the projected world.
const hudRows = 1

// legPeriod is how many ticks each running frame is shown.
const legPeriod = 5

// Minimum screen size the world is projected onto.
const (
	MinScreenW = 20
	MinScreenH = 8
)

var obstacleStyle = map[world.ObstacleKind]struct {
	glyph rune
	color core.Color
}{
	world.KindTurtle:   {TurtleChar, core.ColorGreen},
	world.KindRabbit:   {RabbitChar, core.ColorBrightWhite},
	world.KindMushroom: {MushroomChar, core.ColorBrightRed},
}

// TerminalSurface draws snapshots onto a cell screen. World coordinates are
// scaled onto the grid below a one-row HUD.
type TerminalSurface struct {
	screen *core.Screen
}

// NewTerminalSurface creates a surface drawing onto dst.
func NewTerminalSurface(dst *core.Screen) *TerminalSurface {
	return &TerminalSurface{screen: dst}
}

var _ world.Surface = (*TerminalSurface)(nil)

// Draw renders one frame.
func (t *TerminalSurface) Draw(snap world.Snapshot) {
	dst := t.screen
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	for _, d := range snap.Decorations {
		if d.Kind == world.DecorationCloud {
			t.fill(d.Rect, CloudChar, core.ColorWhite)
		}
	}

	t.drawGround(snap.BackgroundOffset)

	for _, d := range snap.Decorations {
		if d.Kind == world.DecorationBush {
			t.fill(d.Rect, BushChar, core.ColorBrightGreen)
		}
	}

	for _, o := range snap.Obstacles {
		style := obstacleStyle[o.Kind]
		c := style.color
		if o.Passed {
			c = core.ColorGray
		}
		t.fill(o.Rect, style.glyph, c)
	}

	t.drawPlayer(snap.Player, snap.Ticks)
	t.drawHUD(snap)

	switch snap.State {
	case world.StateGameOver:
		t.drawCenteredMessage("GAME OVER", core.ColorBrightRed,
			fmt.Sprintf("Final score: %d/%d", snap.Score, world.WinScore))
	case world.StateWon:
		t.drawCenteredMessage("VICTORY!", core.ColorYellow,
			fmt.Sprintf("You dodged %d enemies!", world.WinScore))
	}
}

// col maps a world x to a screen column.
func (t *TerminalSurface) col(x float64) int {
	return int(math.Floor(x * float64(t.screen.Width()) / world.WorldWidth))
}

// row maps a world y to a screen row.
func (t *TerminalSurface) row(y float64) int {
	rows := t.screen.Height() - hudRows
	return hudRows + int(math.Floor(y*float64(rows)/world.WorldHeight))
}

// project maps a world rect to cells. Anything visible covers at least one cell.
func (t *TerminalSurface) project(r core.Rect) (x, y, w, h int) {
	x, y = t.col(r.X), t.row(r.Y)
	x1, y1 := t.col(r.Right()), t.row(r.Bottom())
	w = core.Max(x1-x, 1)
	h = core.Max(y1-y, 1)
	return x, y, w, h
}

func (t *TerminalSurface) fill(r core.Rect, glyph rune, c core.Color) {
	x, y, w, h := t.project(r)
	t.screen.FillRect(x, y, w, h, glyph, c)
}

// drawGround draws the ground line with stripe boundaries and the soil below it.
func (t *TerminalSurface) drawGround(offset float64) {
	dst := t.screen
	groundRow := t.row(world.GroundLine)

	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorOrange)
	for _, x := range world.GroundStripes(offset) {
		if x >= 0 {
			dst.SetColored(t.col(x), groundRow, StripeChar, core.ColorOrange)
		}
	}

	dst.FillRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1, SoilChar, core.ColorGreen)
}

// drawPlayer renders the runner with a head and animated legs.
func (t *TerminalSurface) drawPlayer(p world.PlayerView, ticks int) {
	dst := t.screen
	x, y, w, h := t.project(p.Rect)
	dst.FillRect(x, y, w, h, PlayerBody, core.ColorBrightCyan)
	dst.SetColored(x+w-1, y, PlayerHead, core.ColorBrightCyan)

	if h < 2 {
		return
	}

	legs := y + h - 1
	dst.FillRect(x, legs, w, 1, ' ', core.ColorDefault)
	switch {
	case p.Jumping:
		// Tucked
		dst.SetColored(x, legs, PlayerLeg2, core.ColorBrightCyan)
		dst.SetColored(x+1, legs, PlayerLeg1, core.ColorBrightCyan)
	case (ticks/legPeriod)%2 == 0:
		dst.SetColored(x, legs, PlayerLeg1, core.ColorBrightCyan)
		dst.SetColored(x+w-1, legs, PlayerLeg2, core.ColorBrightCyan)
	default:
		dst.SetColored(x+1, legs, PlayerLeg1, core.ColorBrightCyan)
		dst.SetColored(x+w-2, legs, PlayerLeg2, core.ColorBrightCyan)
	}
}

// drawHUD draws the score and the jump hint.
func (t *TerminalSurface) drawHUD(snap world.Snapshot) {
	dst := t.screen
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d/%d", snap.Score, world.WinScore), core.ColorBrightWhite)

	if snap.State == world.StateRunning {
		hint := "SPACE/UP jump"
		dst.DrawTextColored(dst.Width()-len(hint)-1, 0, hint, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (t *TerminalSurface) drawCenteredMessage(title string, titleColor core.Color, message string) {
	dst := t.screen
	hint := "R restart | Q quit"

	boxW := core.Max(len(title), core.Max(len([]rune(message)), len(hint))) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title, titleColor)
	dst.DrawTextCentered(boxY+3, message, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+5, hint, core.ColorYellow)
}
