// Package physics wraps a chipmunk space to detect contacts between the
// spaceship, asteroids, coins and the playfield edges. Motion is integrated by
// the space but collisions never produce a physical response: every contact
// is reported and ignored.
package physics

import "github.com/jakecoffman/cp"

// Category is a collision category bit.
type Category uint

// Fixed collision categories.
const (
	CategoryEdge     Category = 1 << iota // left despawn edge
	CategoryGround                        // top and bottom barriers
	CategoryShip                          // the player's spaceship
	CategoryAsteroid                      // obstacles
	CategoryPoint                         // coins
)

// String returns a human-readable name for a single category.
func (c Category) String() string {
	switch c {
	case CategoryEdge:
		return "Edge"
	case CategoryGround:
		return "Ground"
	case CategoryShip:
		return "Ship"
	case CategoryAsteroid:
		return "Asteroid"
	case CategoryPoint:
		return "Point"
	default:
		return "Mixed"
	}
}

// ContactMask returns the categories a category reports contacts with.
// Ground bounds the ship by clamping and takes part in no contacts.
func ContactMask(c Category) Category {
	switch c {
	case CategoryShip:
		return CategoryAsteroid | CategoryPoint
	case CategoryAsteroid, CategoryPoint:
		return CategoryShip | CategoryEdge
	case CategoryEdge:
		return CategoryAsteroid | CategoryPoint
	default:
		return 0
	}
}

func filterFor(c Category, mask Category) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(c),
		Mask:       uint(mask),
	}
}
