package explorer

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Shield   int
	Paused   bool
	GameOver bool
	ShipY    float64
	Entities int
	Spawned  map[Kind]int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	spawned := make(map[Kind]int, len(g.spawned))
	for k, v := range g.spawned {
		spawned[k] = v
	}

	var shipY float64
	if g.world != nil {
		_, shipY, _ = g.world.Position(g.ship)
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Shield:   g.shield,
		Paused:   g.paused,
		GameOver: g.gameOver,
		ShipY:    shipY,
		Entities: len(g.entities),
		Spawned:  spawned,
	}
}
