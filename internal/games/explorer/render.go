package explorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/space-explorer/internal/core"
)

// Visual characters for rendering
const (
	BarrierChar = '═'
	ShieldChar  = '▮'
)

// Size returns the screen size the game needs: the playfield plus the HUD row.
func (g *Game) Size() (w, h int) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height + 1
}

// Render draws the current game state, centered in dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	needW, needH := g.Size()
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Enlarge the terminal to %dx%d", needW, needH), core.ColorYellow)
		return
	}

	pf := g.cfg.Playfield
	area := core.NewRect((dst.Width()-needW)/2, (dst.Height()-needH)/2+1, pf.Width, pf.Height)

	g.drawHUD(dst, area)

	for _, s := range g.stars {
		dst.SetColored(area.X+int(s.x), area.Y+s.y, s.r, core.ColorDim)
	}

	dst.DrawHLine(area.X, area.Y, area.W, BarrierChar, core.ColorGray)
	dst.DrawHLine(area.X, area.Bottom()-1, area.W, BarrierChar, core.ColorGray)

	for _, e := range g.entities {
		x, y, ok := g.world.Position(e.id)
		if !ok {
			continue
		}
		w, h := e.kind.Size()
		g.drawClipped(dst, area, x-float64(w)/2, y-float64(h)/2, e.kind.Sprite(g.simTime-e.born), e.kind.Color())
	}

	g.drawShip(dst, area)

	for _, f := range g.floats {
		rise := floatRise * (g.simTime - f.born) / math.Max(g.cfg.Timing.FloatText, 0.01)
		row := int(math.Round(f.y - rise))
		col := int(math.Round(f.x)) - core.TextWidth(f.text)/2
		if row > 0 && row < pf.Height-1 {
			dst.DrawTextColored(area.X+col, area.Y+row, f.text, core.ColorBrightYellow)
		}
	}

	if g.paused {
		g.drawPauseDialog(dst, area)
	}
	if g.gameOver {
		drawCenteredIn(dst, area, area.Y+pf.Height/2, " GAME OVER ", core.ColorBrightRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen, area core.Rect) {
	y := area.Y - 1

	label := "Shield: "
	dst.DrawText(area.X, y, label)
	dst.DrawTextColored(area.X+core.TextWidth(label), y, strings.Repeat(string(ShieldChar), g.shield), core.ColorRed)

	diff := "Difficulty: " + g.difficulty.Label()
	dst.DrawTextColored(area.X+(area.W-core.TextWidth(diff))/2, y, diff, core.ColorCyan)

	points := fmt.Sprintf("Points: %d", g.score)
	dst.DrawTextColored(area.Right()-core.TextWidth(points), y, points, core.ColorBrightWhite)
}

func (g *Game) drawShip(dst *core.Screen, area core.Rect) {
	_, y, ok := g.world.Position(g.ship)
	if !ok {
		return
	}
	row := int(math.Round(y - shipHeight/2.0))
	col := g.cfg.Ship.X

	color := core.ColorBrightCyan
	if g.blinking() {
		color = core.ColorRed
	}
	dst.DrawTextColored(area.X+col, area.Y+row, shipSprite, color)

	if !g.gameOver {
		flame := '-'
		if (g.tick/4)%2 == 0 {
			flame = '~'
		}
		dst.SetColored(area.X+col-1, area.Y+row, flame, core.ColorOrange)
	}
}

// drawClipped draws a sprite with its top-left at playfield coordinates
// (x, y), skipping cells outside the playfield interior.
func (g *Game) drawClipped(dst *core.Screen, area core.Rect, x, y float64, rows []string, c core.Color) {
	left := int(math.Round(x))
	top := int(math.Round(y))
	for dy, line := range rows {
		row := top + dy
		if row <= 0 || row >= area.H-1 {
			continue
		}
		i := 0
		for _, r := range line {
			col := left + i
			i++
			if r == ' ' || col < 0 || col >= area.W {
				continue
			}
			dst.SetColored(area.X+col, area.Y+row, r, c)
		}
	}
}

func (g *Game) drawPauseDialog(dst *core.Screen, area core.Rect) {
	box := area.Centered(22, 6)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	drawCenteredIn(dst, box, box.Y+1, "Paused", core.ColorBrightWhite)

	options := []string{"Resume", "Menu"}
	for i, opt := range options {
		line := "  " + opt + "  "
		color := core.ColorGray
		if i == g.pauseChoice {
			line = "> " + opt + " <"
			color = core.ColorBrightYellow
		}
		drawCenteredIn(dst, box, box.Y+3+i, line, color)
	}
}

func drawCenteredIn(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	dst.DrawTextColored(r.X+(r.W-core.TextWidth(text))/2, y, text, c)
}
