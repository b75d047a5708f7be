package explorer

import (
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/physics"
)

// Kind is an asteroid or coin type.
type Kind int

const (
	KindAsteroid1 Kind = iota
	KindAsteroid2
	KindAsteroid4
	KindCoin1
	KindCoin2
	KindCoin3
	KindCoin4
)

// Kinds lists every kind in spawn order: asteroids first, then coins.
var Kinds = []Kind{KindAsteroid1, KindAsteroid2, KindAsteroid4, KindCoin1, KindCoin2, KindCoin3, KindCoin4}

type kindInfo struct {
	key    string
	frames [][]string // animation frames; all frames share one size
	color  core.Color
}

var kindTable = map[Kind]kindInfo{
	KindAsteroid1: {
		key:    config.KindAsteroid1,
		frames: [][]string{{"/##\\", "\\##/"}},
		color:  core.ColorGray,
	},
	KindAsteroid2: {
		key:    config.KindAsteroid2,
		frames: [][]string{{" ___ ", "/ o \\", "\\___/"}},
		color:  core.ColorOrange,
	},
	KindAsteroid4: {
		key:    config.KindAsteroid4,
		frames: [][]string{{"<*>"}, {"<+>"}},
		color:  core.ColorBrightRed,
	},
	KindCoin1: {
		key:    config.KindCoin1,
		frames: [][]string{{"(2)"}, {"[2]"}},
		color:  core.ColorYellow,
	},
	KindCoin2: {
		key:    config.KindCoin2,
		frames: [][]string{{"(3)"}, {"[3]"}},
		color:  core.ColorCyan,
	},
	KindCoin3: {
		key:    config.KindCoin3,
		frames: [][]string{{"(4)"}, {"[4]"}},
		color:  core.ColorMagenta,
	},
	KindCoin4: {
		key:    config.KindCoin4,
		frames: [][]string{{"(5)"}, {"[5]"}},
		color:  core.ColorGreen,
	},
}

// Key returns the kind's name in the tuning tables.
func (k Kind) Key() string {
	return kindTable[k].key
}

func (k Kind) String() string {
	return k.Key()
}

// IsCoin reports whether the kind is a collectible.
func (k Kind) IsCoin() bool {
	return k >= KindCoin1
}

// Category returns the collision category of the kind.
func (k Kind) Category() physics.Category {
	if k.IsCoin() {
		return physics.CategoryPoint
	}
	return physics.CategoryAsteroid
}

// Size returns the sprite size in cells.
func (k Kind) Size() (w, h int) {
	sprite := kindTable[k].frames[0]
	return core.TextWidth(sprite[0]), len(sprite)
}

// Sprite returns the animation frame for a point in time.
func (k Kind) Sprite(t float64) []string {
	frames := kindTable[k].frames
	return frames[int(t*frameRate)%len(frames)]
}

// Color returns the sprite color.
func (k Kind) Color() core.Color {
	return kindTable[k].color
}

const frameRate = 4 // sprite frames per second
