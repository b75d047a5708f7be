package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Long ticks are split into space steps so that no body moves more than
// maxStepTravel cells per step and cannot skip over a thin shape.
const (
	maxStepTravel = 0.5
	maxSubSteps   = 256
)

// BodyID identifies a body in a World. Zero is never a valid ID.
type BodyID uint64

// Contact is a pair of bodies that started touching during a Step.
// Mask is the union of both categories, so a ship picking up a coin reports
// CategoryShip|CategoryPoint. Other is the asteroid or coin involved.
type Contact struct {
	Mask  Category
	Other BodyID
}

type body struct {
	id       BodyID
	category Category
	body     *cp.Body
	shape    *cp.Shape
	halfW    float64
}

// World is a zero-gravity space sized to the playfield. Coordinates are in
// cells with y growing downward.
type World struct {
	space  *cp.Space
	bodies map[BodyID]*body
	shapes map[*cp.Shape]BodyID
	nextID BodyID

	width, height float64
	edgeX         float64

	static   map[*cp.Shape]Category
	contacts []Contact
}

// NewWorld creates a world for a playfield of the given size. Barriers run
// along row 0 and row height-1; the despawn edge is a vertical line margin
// cells left of column 0.
func NewWorld(width, height, margin float64) *World {
	w := &World{
		space:  cp.NewSpace(),
		bodies: make(map[BodyID]*body),
		shapes: make(map[*cp.Shape]BodyID),
		width:  width,
		height: height,
		edgeX:  -margin,
		static: make(map[*cp.Shape]Category),
	}
	w.space.SetGravity(cp.Vector{})

	segments := []struct {
		a, b     cp.Vector
		category Category
	}{
		// top and ground barriers
		{a: cp.Vector{X: -margin, Y: 0}, b: cp.Vector{X: width + margin, Y: 0}, category: CategoryGround},
		{a: cp.Vector{X: -margin, Y: height - 1}, b: cp.Vector{X: width + margin, Y: height - 1}, category: CategoryGround},
		// despawn edge
		{a: cp.Vector{X: -margin, Y: -height}, b: cp.Vector{X: -margin, Y: 2 * height}, category: CategoryEdge},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 0.1)
		shape.SetCollisionType(cp.CollisionType(seg.category))
		shape.SetFilter(filterFor(seg.category, ContactMask(seg.category)))
		w.space.AddShape(shape)
		w.static[shape] = seg.category
	}

	w.registerHandlers()
	return w
}

func (w *World) registerHandlers() {
	pairs := [][2]Category{
		{CategoryShip, CategoryAsteroid},
		{CategoryShip, CategoryPoint},
		{CategoryEdge, CategoryAsteroid},
		{CategoryEdge, CategoryPoint},
	}
	for _, pair := range pairs {
		handler := w.space.NewCollisionHandler(cp.CollisionType(pair[0]), cp.CollisionType(pair[1]))
		handler.UserData = w
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*World)
			if !ok || world == nil {
				return false
			}
			shapeA, shapeB := arb.Shapes()
			world.record(shapeA, shapeB)
			// No physical response for any pair.
			return false
		}
	}
}

func (w *World) record(shapeA, shapeB *cp.Shape) {
	catA, idA := w.lookup(shapeA)
	catB, idB := w.lookup(shapeB)

	// The edge is static and has no ID; the other side is always a body.
	other := idB
	if catB == CategoryShip || catB == CategoryEdge {
		other = idA
	}
	if other == 0 {
		return
	}
	w.contacts = append(w.contacts, Contact{Mask: catA | catB, Other: other})
}

func (w *World) lookup(shape *cp.Shape) (Category, BodyID) {
	if id, ok := w.shapes[shape]; ok {
		return w.bodies[id].category, id
	}
	return w.static[shape], 0
}

// AddShip adds the player's ship centered at (x, y).
func (w *World) AddShip(x, y, width, height float64) BodyID {
	return w.add(CategoryShip, x, y, width, height, 0)
}

// AddBody adds an asteroid or coin centered at (x, y), moving left at speed
// cells per second.
func (w *World) AddBody(category Category, x, y, width, height, speed float64) BodyID {
	return w.add(category, x, y, width, height, -speed)
}

func (w *World) add(category Category, x, y, width, height, vx float64) BodyID {
	w.nextID++
	id := w.nextID

	const mass = 1.0
	cpBody := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	cpBody.SetPosition(cp.Vector{X: x, Y: y})
	cpBody.SetVelocity(vx, 0)

	shape := cp.NewBox(cpBody, width, height, 0)
	shape.SetCollisionType(cp.CollisionType(category))
	shape.SetFilter(filterFor(category, ContactMask(category)))

	w.space.AddBody(cpBody)
	w.space.AddShape(shape)

	w.bodies[id] = &body{id: id, category: category, body: cpBody, shape: shape, halfW: width / 2}
	w.shapes[shape] = id
	return id
}

// SetPosition moves a body's center.
func (w *World) SetPosition(id BodyID, x, y float64) {
	if b := w.bodies[id]; b != nil {
		b.body.SetPosition(cp.Vector{X: x, Y: y})
	}
}

// SetVelocity sets a body's velocity in cells per second.
func (w *World) SetVelocity(id BodyID, vx, vy float64) {
	if b := w.bodies[id]; b != nil {
		b.body.SetVelocity(vx, vy)
	}
}

// Position returns a body's center.
func (w *World) Position(id BodyID) (x, y float64, ok bool) {
	b := w.bodies[id]
	if b == nil {
		return 0, 0, false
	}
	p := b.body.Position()
	return p.X, p.Y, true
}

// Category returns the category of a body.
func (w *World) Category(id BodyID) Category {
	if b := w.bodies[id]; b != nil {
		return b.category
	}
	return 0
}

// IgnoreShip stops a body from reporting further contacts with the ship.
// It still reports reaching the edge so it can be removed.
func (w *World) IgnoreShip(id BodyID) {
	b := w.bodies[id]
	if b == nil || b.category == CategoryShip {
		return
	}
	b.shape.SetFilter(filterFor(b.category, ContactMask(b.category)&^CategoryShip))
}

// Remove deletes a body. Removing an unknown ID is a no-op.
func (w *World) Remove(id BodyID) {
	b := w.bodies[id]
	if b == nil {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	delete(w.shapes, b.shape)
	delete(w.bodies, id)
}

// Len returns the number of bodies, including the ship.
func (w *World) Len() int {
	return len(w.bodies)
}

// EdgeX returns the x coordinate of the despawn edge.
func (w *World) EdgeX() float64 {
	return w.edgeX
}

// Step advances the space by dt seconds and returns the contacts that began.
// Bodies may be removed between steps, never during one.
func (w *World) Step(dt float64) []Contact {
	w.contacts = w.contacts[:0]
	if dt > 0 {
		n := w.subSteps(dt)
		h := dt / float64(n)
		for i := 0; i < n; i++ {
			w.space.Step(h)
		}
	}
	out := make([]Contact, len(w.contacts))
	copy(out, w.contacts)
	return out
}

// subSteps returns how many space steps dt is split into.
func (w *World) subSteps(dt float64) int {
	var fastest float64
	for _, b := range w.bodies {
		if v := b.body.Velocity().Length(); v > fastest {
			fastest = v
		}
	}
	n := int(math.Ceil(fastest * dt / maxStepTravel))
	return max(1, min(n, maxSubSteps))
}

// Passed reports whether a body lies entirely left of the despawn edge.
func (w *World) Passed(id BodyID) bool {
	b := w.bodies[id]
	if b == nil || b.category == CategoryShip {
		return false
	}
	return b.body.Position().X+b.halfW < w.edgeX
}

// Band returns the rows of the top barrier and the ground.
func (w *World) Band() (top, ground float64) {
	return 0, w.height - 1
}

// Width returns the playfield width.
func (w *World) Width() float64 {
	return w.width
}
