package explorer

import (
	"fmt"
	"math/rand"
)

type star struct {
	x     float64
	y     int
	depth float64 // parallax factor, near stars scroll faster
	r     rune
}

func newStars(rng *rand.Rand, n, width, height int) []star {
	if height < 3 || width < 1 {
		return nil
	}
	stars := make([]star, n)
	for i := range stars {
		s := star{
			x:     rng.Float64() * float64(width),
			y:     1 + rng.Intn(height-2),
			depth: 0.5,
			r:     '.',
		}
		if rng.Intn(3) == 0 {
			s.depth = 1
			s.r = '*'
		}
		stars[i] = s
	}
	return stars
}

func scrollStars(stars []star, dx float64, width int) {
	w := float64(width)
	for i := range stars {
		stars[i].x -= dx * stars[i].depth
		for stars[i].x < 0 {
			stars[i].x += w
		}
	}
}

// floatText is a "+N" label rising from a collected coin.
type floatText struct {
	x, y float64
	text string
	born float64
}

const floatRise = 2.0 // rows risen over the label's lifetime

func (g *Game) addFloat(x, y float64, value int) {
	g.floats = append(g.floats, floatText{
		x:    x,
		y:    y,
		text: fmt.Sprintf("+%d", value),
		born: g.simTime,
	})
}

func (g *Game) expireFloats() {
	life := g.cfg.Timing.FloatText
	kept := g.floats[:0]
	for _, f := range g.floats {
		if g.simTime-f.born < life {
			kept = append(kept, f)
		}
	}
	g.floats = kept
}

// blinking reports whether the ship is shown in its hit color this tick.
func (g *Game) blinking() bool {
	left := g.blinkUntil - g.simTime
	if left <= 0 {
		return false
	}
	return int(left/0.1)%2 == 0
}
