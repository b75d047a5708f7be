package physics

import "testing"

const dt = 1.0 / 60

func stepUntil(w *World, max int, pred func([]Contact) bool) []Contact {
	for i := 0; i < max; i++ {
		if contacts := w.Step(dt); pred(contacts) {
			return contacts
		}
	}
	return nil
}

func hasContacts(contacts []Contact) bool { return len(contacts) > 0 }

func TestCategoryBits(t *testing.T) {
	tests := []struct {
		c    Category
		want uint
	}{
		{CategoryEdge, 1 << 0},
		{CategoryGround, 1 << 1},
		{CategoryShip, 1 << 2},
		{CategoryAsteroid, 1 << 3},
		{CategoryPoint, 1 << 4},
	}
	for _, tt := range tests {
		if uint(tt.c) != tt.want {
			t.Errorf("%s = %d, expected %d", tt.c, uint(tt.c), tt.want)
		}
	}
}

func TestContactMask(t *testing.T) {
	tests := []struct {
		c    Category
		want Category
	}{
		{CategoryShip, CategoryAsteroid | CategoryPoint},
		{CategoryAsteroid, CategoryShip | CategoryEdge},
		{CategoryPoint, CategoryShip | CategoryEdge},
		{CategoryEdge, CategoryAsteroid | CategoryPoint},
		{CategoryGround, 0},
	}
	for _, tt := range tests {
		if got := ContactMask(tt.c); got != tt.want {
			t.Errorf("ContactMask(%s) = %b, expected %b", tt.c, got, tt.want)
		}
	}
}

func TestShipAsteroidContact(t *testing.T) {
	w := NewWorld(40, 12, 4)
	w.AddShip(5, 6, 4, 1)
	rock := w.AddBody(CategoryAsteroid, 12, 6, 3, 2, 20)

	contacts := stepUntil(w, 60, hasContacts)
	if len(contacts) != 1 {
		t.Fatalf("expected one contact, got %v", contacts)
	}
	c := contacts[0]
	if c.Mask != CategoryShip|CategoryAsteroid {
		t.Errorf("contact mask = %b, expected ship|asteroid", c.Mask)
	}
	if c.Other != rock {
		t.Errorf("contact other = %d, expected asteroid %d", c.Other, rock)
	}
}

func TestShipPointContact(t *testing.T) {
	w := NewWorld(40, 12, 4)
	w.AddShip(5, 6, 4, 1)
	coin := w.AddBody(CategoryPoint, 12, 6, 3, 1, 20)

	contacts := stepUntil(w, 60, hasContacts)
	if len(contacts) != 1 || contacts[0].Mask != CategoryShip|CategoryPoint || contacts[0].Other != coin {
		t.Fatalf("unexpected contacts %v", contacts)
	}
}

func TestEdgeContact(t *testing.T) {
	w := NewWorld(40, 12, 4)
	w.AddShip(5, 1, 4, 1)
	coin := w.AddBody(CategoryPoint, 10, 8, 3, 1, 30)

	contacts := stepUntil(w, 120, hasContacts)
	if len(contacts) != 1 {
		t.Fatalf("expected edge contact, got %v", contacts)
	}
	if contacts[0].Mask != CategoryEdge|CategoryPoint || contacts[0].Other != coin {
		t.Errorf("unexpected contact %+v", contacts[0])
	}
	x, _, _ := w.Position(coin)
	if x > w.EdgeX()+3 {
		t.Errorf("coin at x=%.2f should be at the edge %.2f", x, w.EdgeX())
	}
}

func TestEntitiesIgnoreEachOther(t *testing.T) {
	w := NewWorld(40, 12, 4)
	w.AddBody(CategoryAsteroid, 20, 6, 3, 2, 0)
	w.AddBody(CategoryAsteroid, 20, 6, 3, 2, 0)
	w.AddBody(CategoryPoint, 20, 6, 3, 1, 0)

	for i := 0; i < 10; i++ {
		if contacts := w.Step(dt); len(contacts) > 0 {
			t.Fatalf("overlapping entities should not contact: %v", contacts)
		}
	}
}

func TestIgnoreShip(t *testing.T) {
	w := NewWorld(40, 12, 4)
	w.AddShip(5, 6, 4, 1)
	rock := w.AddBody(CategoryAsteroid, 12, 6, 3, 2, 30)
	w.IgnoreShip(rock)

	contacts := stepUntil(w, 120, hasContacts)
	if len(contacts) != 1 {
		t.Fatalf("expected only the edge contact, got %v", contacts)
	}
	if contacts[0].Mask != CategoryEdge|CategoryAsteroid {
		t.Errorf("muted asteroid reported %b", contacts[0].Mask)
	}
}

func TestRemove(t *testing.T) {
	w := NewWorld(40, 12, 4)
	ship := w.AddShip(5, 6, 4, 1)
	coin := w.AddBody(CategoryPoint, 12, 6, 3, 1, 20)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", w.Len())
	}
	w.Remove(coin)
	w.Remove(coin)
	if w.Len() != 1 {
		t.Errorf("Len() after remove = %d, expected 1", w.Len())
	}
	if _, _, ok := w.Position(coin); ok {
		t.Error("removed body should have no position")
	}
	if w.Category(ship) != CategoryShip {
		t.Errorf("ship category = %s", w.Category(ship))
	}

	for i := 0; i < 60; i++ {
		if contacts := w.Step(dt); len(contacts) > 0 {
			t.Fatalf("removed coin reported contact: %v", contacts)
		}
	}
}

func TestBodiesMoveLeft(t *testing.T) {
	w := NewWorld(40, 12, 4)
	rock := w.AddBody(CategoryAsteroid, 30, 6, 3, 2, 10)

	w.Step(0.5)
	x, y, _ := w.Position(rock)
	if x > 25.5 || x < 24.5 {
		t.Errorf("x after 0.5s at 10 cells/s = %.2f, expected 25", x)
	}
	if y != 6 {
		t.Errorf("y drifted to %.2f", y)
	}

	// A zero step leaves everything in place
	w.Step(0)
	if x2, _, _ := w.Position(rock); x2 != x {
		t.Errorf("zero step moved body from %.2f to %.2f", x, x2)
	}
}

func TestFastBodiesAtLowTickRate(t *testing.T) {
	const (
		slowDT = 1.0 / 10
		speed  = 76.0
	)

	for i := 0; i < 20; i++ {
		offset := float64(i) * 0.37
		w := NewWorld(72, 18, 4)
		w.AddShip(8, 9, 3.8, 0.8)
		w.AddBody(CategoryAsteroid, 40+offset, 9, 2.8, 1.8, speed)

		var hit, edge bool
		for step := 0; step < 20 && !edge; step++ {
			for _, c := range w.Step(slowDT) {
				switch c.Mask {
				case CategoryShip | CategoryAsteroid:
					hit = true
				case CategoryEdge | CategoryAsteroid:
					edge = true
				}
			}
		}
		if !hit {
			t.Errorf("offset %.2f: asteroid passed through the ship", offset)
		}
		if !edge {
			t.Errorf("offset %.2f: asteroid skipped the despawn edge", offset)
		}
	}
}

func TestPassed(t *testing.T) {
	w := NewWorld(40, 12, 4)
	ship := w.AddShip(5, 6, 4, 1)
	rock := w.AddBody(CategoryAsteroid, 10, 6, 3, 2, 0)

	w.Step(dt)
	if w.Passed(rock) {
		t.Error("asteroid on screen reported as passed")
	}

	w.SetPosition(rock, w.EdgeX()-3, 6)
	w.Step(dt)
	if !w.Passed(rock) {
		t.Error("asteroid left of the edge should be passed")
	}
	if w.Passed(ship) {
		t.Error("the ship is never passed")
	}
	if w.Passed(BodyID(999)) {
		t.Error("unknown body reported as passed")
	}
}
