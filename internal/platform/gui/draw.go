package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/runner-dash/internal/core"
	"github.com/vovakirdan/runner-dash/internal/world"
)

var (
	colorSky        = color.RGBA{135, 206, 235, 255}
	colorGrass      = color.RGBA{34, 139, 34, 255}
	colorGrassDark  = color.RGBA{30, 120, 30, 255}
	colorCloud      = color.RGBA{255, 255, 255, 255}
	colorBush       = color.RGBA{0, 180, 0, 255}
	colorRed        = color.RGBA{255, 0, 0, 255}
	colorSkin       = color.RGBA{255, 220, 177, 255}
	colorBrown      = color.RGBA{139, 69, 19, 255}
	colorOveralls   = color.RGBA{0, 0, 255, 255}
	colorBoots      = color.RGBA{0, 100, 200, 255}
	colorBlack      = color.RGBA{0, 0, 0, 255}
	colorShell      = color.RGBA{0, 150, 0, 255}
	colorTurtleSkin = color.RGBA{100, 200, 100, 255}
	colorFur        = color.RGBA{230, 230, 230, 255}
	colorEar        = color.RGBA{255, 192, 203, 255}
	colorStem       = color.RGBA{245, 245, 245, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 200}
)

// Ebitengine's debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// drawSnapshot renders one frame in world coordinates.
func drawSnapshot(dst *ebiten.Image, snap world.Snapshot) {
	dst.Fill(colorSky)

	for _, d := range snap.Decorations {
		if d.Kind == world.DecorationCloud {
			drawCloud(dst, d.Rect)
		}
	}

	drawGround(dst, snap.BackgroundOffset)

	for _, d := range snap.Decorations {
		if d.Kind == world.DecorationBush {
			drawBush(dst, d.Rect)
		}
	}

	for _, o := range snap.Obstacles {
		switch o.Kind {
		case world.KindTurtle:
			drawTurtle(dst, o.Rect)
		case world.KindRabbit:
			drawRabbit(dst, o.Rect)
		case world.KindMushroom:
			drawMushroom(dst, o.Rect)
		}
	}

	drawPlayer(dst, snap.Player, snap.Ticks)

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d/%d", snap.Score, world.WinScore), 20, 20)
	ebitenutil.DebugPrintAt(dst, "SPACE/UP jump", 20, 40)

	switch snap.State {
	case world.StateGameOver:
		drawOverlay(dst, "GAME OVER", fmt.Sprintf("Final score: %d", snap.Score))
	case world.StateWon:
		drawOverlay(dst, "VICTORY!", fmt.Sprintf("You dodged %d enemies!", world.WinScore))
	}
}

// rect fills a rectangle given relative to an entity's top-left corner.
func rect(dst *ebiten.Image, r core.Rect, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X+x), float32(r.Y+y), float32(w), float32(h), c, false)
}

// circle fills a circle given relative to an entity's top-left corner.
func circle(dst *ebiten.Image, r core.Rect, cx, cy, radius float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(r.X+cx), float32(r.Y+cy), float32(radius), c, true)
}

func drawGround(dst *ebiten.Image, offset float64) {
	vector.DrawFilledRect(dst, 0, float32(world.GroundLine), float32(world.WorldWidth),
		float32(world.WorldHeight-world.GroundLine), colorGrass, false)
	for _, x := range world.GroundStripes(offset) {
		vector.DrawFilledRect(dst, float32(x), float32(world.GroundLine),
			float32(world.GroundStripeWidth), float32(world.GroundStripeHeight), colorGrassDark, false)
	}
}

func drawCloud(dst *ebiten.Image, r core.Rect) {
	circle(dst, r, 15, 27, 13, colorCloud)
	circle(dst, r, 37, 25, 16, colorCloud)
	circle(dst, r, 60, 27, 13, colorCloud)
}

func drawBush(dst *ebiten.Image, r core.Rect) {
	circle(dst, r, 10, 20, 10, colorBush)
	circle(dst, r, 27, 17, 12, colorBush)
	circle(dst, r, 45, 20, 10, colorBush)
}

func drawTurtle(dst *ebiten.Image, r core.Rect) {
	circle(dst, r, 20, 17, 13, colorShell)
	circle(dst, r, 35, 20, 8, colorTurtleSkin)
	circle(dst, r, 37, 18, 2, colorBlack)
	circle(dst, r, 8, 28, 4, colorTurtleSkin)
	circle(dst, r, 32, 28, 4, colorTurtleSkin)
}

func drawRabbit(dst *ebiten.Image, r core.Rect) {
	rect(dst, r, 15, 0, 6, 18, colorFur)
	rect(dst, r, 23, 0, 6, 18, colorFur)
	rect(dst, r, 17, 4, 3, 10, colorEar)
	rect(dst, r, 25, 4, 3, 10, colorEar)
	circle(dst, r, 20, 30, 10, colorFur)
	circle(dst, r, 20, 15, 10, colorFur)
	circle(dst, r, 18, 14, 2, colorBlack)
	circle(dst, r, 24, 14, 2, colorBlack)
}

func drawMushroom(dst *ebiten.Image, r core.Rect) {
	rect(dst, r, 14, 22, 12, r.H-22, colorStem)
	rect(dst, r, 2, 10, 36, 10, colorRed)
	circle(dst, r, 20, 14, 11, colorRed)
	circle(dst, r, 12, 12, 4, colorCloud)
	circle(dst, r, 28, 12, 4, colorCloud)
	circle(dst, r, 20, 18, 3, colorCloud)
}

// drawPlayer draws the runner. Legs alternate every 5 ticks while grounded.
func drawPlayer(dst *ebiten.Image, p world.PlayerView, ticks int) {
	r := p.Rect
	rect(dst, r, 10, 5, 30, 10, colorRed)
	circle(dst, r, 25, 22, 11, colorSkin)
	circle(dst, r, 20, 20, 3, colorBlack)
	circle(dst, r, 30, 20, 3, colorBlack)
	rect(dst, r, 18, 26, 14, 4, colorBrown)
	rect(dst, r, 15, 32, 20, 18, colorOveralls)

	left, right := 0.0, 0.0
	if !p.Jumping {
		if (ticks/5)%2 == 0 {
			left = -3
		} else {
			right = 3
		}
	}
	rect(dst, r, 15+left, 50, 8, 10, colorRed)
	rect(dst, r, 27+right, 50, 8, 10, colorRed)
	rect(dst, r, 12+left, 52, 12, 8, colorBoots)
	rect(dst, r, 26+right, 52, 12, 8, colorBoots)
}

// drawOverlay dims the scene and prints a centered message.
func drawOverlay(dst *ebiten.Image, title, message string) {
	vector.DrawFilledRect(dst, 0, 0, float32(world.WorldWidth), float32(world.WorldHeight), colorOverlay, false)
	printCentered(dst, title, 200)
	printCentered(dst, message, 300)
	printCentered(dst, "R restart | Q quit", 400)
}

func printCentered(dst *ebiten.Image, msg string, y int) {
	x := (int(world.WorldWidth) - len(msg)*glyphW) / 2
	ebitenutil.DebugPrintAt(dst, msg, x, y-glyphH/2)
}
