// Package explorer implements Little Space Explorer's gameplay: a spaceship
// steering up and down while asteroids and coins scroll in from the right.
//
// Spawn timers run on the wall clock from core.RuntimeConfig.Clock; motion and
// effects advance by the fixed tick duration. Time spent paused is cut out of
// the spawn timers on resume, so pausing never causes a burst of spawns.
package explorer

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/space-explorer/internal/audio"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/physics"
)

// Ship sprite and collision box
const (
	shipSprite = "=[]>"
	shipWidth  = 4
	shipHeight = 1
	boxInset   = 0.2 // collision boxes are this much smaller than sprites
)

// Pause dialog choices
const (
	choiceResume = iota
	choiceMenu
)

// Option configures a Game.
type Option func(*Game)

// WithSounds routes sound cues to p.
func WithSounds(p audio.Player) Option {
	return func(g *Game) {
		if p != nil {
			g.sounds = p
		}
	}
}

type entity struct {
	id   physics.BodyID
	kind Kind
	born float64
}

// Game implements the gameplay scene.
type Game struct {
	cfg        config.ExplorerConfig
	pending    *config.ExplorerConfig
	difficulty config.Difficulty
	tuning     config.DifficultyTuning
	rc         core.RuntimeConfig
	rng        *rand.Rand
	sounds     audio.Player

	world    *physics.World
	ship     physics.BodyID
	entities []*entity
	schedule *Schedule
	spawned  map[Kind]int

	score  int
	shield int

	paused      bool
	pauseStart  time.Time
	pauseChoice int
	gameOver    bool
	gameOverAt  time.Time
	finished    bool
	exited      bool

	dir       float64 // -1 up, +1 down, 0 idle
	holdUntil float64
	simTime   float64 // seconds of unpaused play
	tick      uint64

	stars      []star
	floats     []floatText
	blinkUntil float64
}

// New creates a game for a difficulty. Call Reset before stepping.
func New(cfg config.ExplorerConfig, d config.Difficulty, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: d,
		sounds:     audio.Nop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Difficulty returns the difficulty the game was created with.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.ExplorerConfig {
	return g.cfg
}

// SetConfig stores a configuration to use from the next Reset on.
// A run in progress keeps its configuration.
func (g *Game) SetConfig(cfg config.ExplorerConfig) {
	g.pending = &cfg
}

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.rc = rc

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	tuning, ok := g.cfg.For(g.difficulty)
	if !ok {
		g.difficulty = config.DifficultyEasy
		tuning, _ = config.DefaultExplorerConfig().For(g.difficulty)
	}
	g.tuning = tuning

	pf := g.cfg.Playfield
	g.world = physics.NewWorld(float64(pf.Width), float64(pf.Height), pf.DespawnMargin)
	g.ship = g.world.AddShip(g.shipCenterX(), float64(pf.Height)/2+0.5, shipWidth-boxInset, shipHeight-boxInset)
	g.entities = nil
	g.spawned = make(map[Kind]int)

	g.score = 0
	g.shield = tuning.Shield
	g.paused = false
	g.pauseStart = time.Time{}
	g.pauseChoice = choiceResume
	g.gameOver = false
	g.gameOverAt = time.Time{}
	g.finished = false
	g.exited = false
	g.dir = 0
	g.holdUntil = 0
	g.simTime = 0
	g.tick = 0
	g.floats = nil
	g.blinkUntil = 0

	g.stars = newStars(g.rng, pf.Stars, pf.Width, pf.Height)
	g.schedule = NewSchedule(g.cfg, tuning, rc.Now())

	g.sounds.PlayMusic()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.rc.Now()

	if g.gameOver {
		if !g.finished && now.Sub(g.gameOverAt) >= config.Seconds(g.cfg.Timing.GameOverDelay) {
			g.finished = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.exited {
		return core.StepResult{State: g.State()}
	}

	if g.paused {
		events := g.stepPaused(in)
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.Pause()
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventPaused}}
	}

	dt := g.rc.TickDuration().Seconds()
	g.tick++
	g.simTime += dt

	scrollStars(g.stars, g.cfg.Playfield.ScrollSpeed*dt, g.cfg.Playfield.Width)
	g.steer(in)
	for _, kind := range g.schedule.Due(now, g.rng) {
		g.spawn(kind)
	}

	contacts := g.world.Step(dt)
	g.clampShip()

	var events []core.Event
	for _, c := range contacts {
		// Contacts are ignored once the game is over.
		if g.gameOver {
			break
		}
		e := g.find(c.Other)
		if e == nil {
			continue
		}
		switch c.Mask {
		case physics.CategoryShip | physics.CategoryPoint:
			g.collect(e)
			events = append(events, core.EventCollect)
		case physics.CategoryShip | physics.CategoryAsteroid:
			events = append(events, core.EventHit)
			if g.takeHit(e) {
				events = append(events, core.EventGameOver)
			}
		case physics.CategoryEdge | physics.CategoryAsteroid, physics.CategoryEdge | physics.CategoryPoint:
			g.remove(e)
		}
	}

	g.despawnPassed()
	g.expireFloats()
	return core.StepResult{State: g.State(), Events: events}
}

// despawnPassed removes entities that crossed the despawn edge without
// reporting a contact with it.
func (g *Game) despawnPassed() {
	kept := g.entities[:0]
	for _, e := range g.entities {
		if g.world.Passed(e.id) {
			g.world.Remove(e.id)
			continue
		}
		kept = append(kept, e)
	}
	clear(g.entities[len(kept):])
	g.entities = kept
}

func (g *Game) stepPaused(in core.InputFrame) []core.Event {
	switch {
	case in.Has(core.ActionPause):
		g.Resume()
		return []core.Event{core.EventResumed}
	case in.Has(core.ActionUp), in.Has(core.ActionDown):
		g.pauseChoice = 1 - g.pauseChoice
	case in.Has(core.ActionConfirm):
		if g.pauseChoice == choiceResume {
			g.Resume()
			return []core.Event{core.EventResumed}
		}
		g.leave()
	case in.Has(core.ActionBack):
		g.leave()
	}
	return nil
}

func (g *Game) leave() {
	g.exited = true
	g.sounds.StopMusic()
}

// Pause stops the game and remembers when, unless it is already paused.
func (g *Game) Pause() {
	if g.paused || g.gameOver || g.exited {
		return
	}
	g.paused = true
	g.pauseStart = g.rc.Now()
	g.pauseChoice = choiceResume
	g.sounds.PauseMusic()
}

// Resume continues a paused game. Every spawn timer is moved forward by the
// time spent paused.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.schedule.Shift(g.rc.Now().Sub(g.pauseStart))
	g.pauseStart = time.Time{}
	g.paused = false
	g.sounds.PlayMusic()
}

// Background is called when the terminal loses focus. A running game pauses.
func (g *Game) Background() {
	if !g.paused && !g.gameOver {
		g.Pause()
	}
}

// Foreground is called when the terminal regains focus. A paused game stays
// paused until the player resumes it.
func (g *Game) Foreground() {}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Shield:   g.shield,
		Paused:   g.paused,
		GameOver: g.gameOver,
		Finished: g.finished,
		Exited:   g.exited,
	}
}

func (g *Game) shipCenterX() float64 {
	return float64(g.cfg.Ship.X) + shipWidth/2.0
}

// shipRange returns the lowest and highest ship center rows between the
// barriers.
func (g *Game) shipRange() (minY, maxY float64) {
	top, ground := g.world.Band()
	return top + 1 + shipHeight/2.0, ground - shipHeight/2.0
}

func (g *Game) steer(in core.InputFrame) {
	hold := g.cfg.Ship.Hold
	switch {
	case in.Has(core.ActionUp):
		g.dir = -1
		g.holdUntil = g.simTime + hold
	case in.Has(core.ActionDown):
		g.dir = 1
		g.holdUntil = g.simTime + hold
	}
	if g.simTime > g.holdUntil {
		g.dir = 0
	}
	g.world.SetVelocity(g.ship, 0, g.dir*g.cfg.Ship.Speed)
}

func (g *Game) clampShip() {
	_, y, _ := g.world.Position(g.ship)
	minY, maxY := g.shipRange()
	clamped := core.ClampF(y, minY, maxY)
	g.world.SetPosition(g.ship, g.shipCenterX(), clamped)
	if clamped != y {
		g.world.SetVelocity(g.ship, 0, 0)
	}
}

// spawnRows returns the range of top rows a kind's sprite may spawn at.
func (g *Game) spawnRows(kind Kind) (lo, hi int) {
	pf := g.cfg.Playfield
	_, h := kind.Size()

	lo = 1 + pf.SpawnMargin
	if kind.IsCoin() {
		lo = 1 + pf.CoinReach
	}
	hi = pf.Height - 2 - pf.SpawnMargin - (h - 1)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (g *Game) travel(kind Kind) float64 {
	if kind.IsCoin() {
		return g.cfg.CoinTravel(kind.Key())
	}
	return g.tuning.Asteroids[kind.Key()].Travel
}

func (g *Game) spawn(kind Kind) {
	pf := g.cfg.Playfield
	w, h := kind.Size()
	lo, hi := g.spawnRows(kind)
	row := lo + g.rng.Intn(hi-lo+1)

	// Enter just past the right edge and reach the despawn edge after the
	// kind's travel time.
	speed := (float64(pf.Width) + pf.DespawnMargin) / math.Max(g.travel(kind), 0.1)
	cx := float64(pf.Width) + float64(w)/2
	cy := float64(row) + float64(h)/2

	id := g.world.AddBody(kind.Category(), cx, cy, float64(w)-boxInset, float64(h)-boxInset, speed)
	g.entities = append(g.entities, &entity{id: id, kind: kind, born: g.simTime})
	g.spawned[kind]++
}

func (g *Game) find(id physics.BodyID) *entity {
	for _, e := range g.entities {
		if e.id == id {
			return e
		}
	}
	return nil
}

func (g *Game) remove(e *entity) {
	g.world.Remove(e.id)
	for i, other := range g.entities {
		if other == e {
			g.entities = append(g.entities[:i], g.entities[i+1:]...)
			return
		}
	}
}

func (g *Game) collect(e *entity) {
	value := g.cfg.Coins.Kinds[e.kind.Key()].Value
	g.score += value
	g.sounds.Collect()

	if x, y, ok := g.world.Position(e.id); ok {
		g.addFloat(x, y, value)
	}
	g.remove(e)
}

// takeHit drains one shield charge. The asteroid cannot hit again. It reports
// whether the hit ended the game.
func (g *Game) takeHit(e *entity) bool {
	g.sounds.Hit()
	g.blinkUntil = g.simTime + g.cfg.Timing.Blink
	g.world.IgnoreShip(e.id)

	g.shield--
	if g.shield > 0 {
		return false
	}
	g.shield = 0
	g.endGame()
	return true
}

func (g *Game) endGame() {
	g.gameOver = true
	g.gameOverAt = g.rc.Now()
	g.dir = 0
	g.sounds.StopMusic()
	g.sounds.GameOver()
}
