package explorer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/space-explorer/internal/config"
)

// Spawner decides when the next instance of one kind appears.
type Spawner struct {
	Kind     Kind
	window   config.SpawnWindow
	last     time.Time
	interval time.Duration
}

// NewSpawner creates a spawner whose first spawn is due window.First after now.
func NewSpawner(kind Kind, window config.SpawnWindow, now time.Time) *Spawner {
	return &Spawner{
		Kind:     kind,
		window:   window,
		last:     now,
		interval: window.FirstDuration(),
	}
}

// Due reports whether the current interval has elapsed.
func (s *Spawner) Due(now time.Time) bool {
	return now.Sub(s.last) >= s.interval
}

// Mark records a spawn at now and draws the next interval uniformly from
// the window.
func (s *Spawner) Mark(now time.Time, rng *rand.Rand) {
	s.last = now
	s.interval = drawInterval(s.window, rng)
}

// Shift moves the last spawn time forward, so time spent paused does not
// count toward the interval.
func (s *Spawner) Shift(d time.Duration) {
	s.last = s.last.Add(d)
}

// Last returns the time of the last spawn.
func (s *Spawner) Last() time.Time {
	return s.last
}

// Interval returns the current interval.
func (s *Spawner) Interval() time.Duration {
	return s.interval
}

func drawInterval(w config.SpawnWindow, rng *rand.Rand) time.Duration {
	lo, hi := w.MinDuration(), w.MaxDuration()
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
}

// Schedule holds one spawner per kind.
type Schedule struct {
	spawners []*Spawner
}

// NewSchedule builds spawners for every kind from the tuning, all measured
// from now.
func NewSchedule(cfg config.ExplorerConfig, tuning config.DifficultyTuning, now time.Time) *Schedule {
	s := &Schedule{}
	for _, kind := range Kinds {
		var window config.SpawnWindow
		if kind.IsCoin() {
			window = cfg.Coins.Kinds[kind.Key()].Window
		} else {
			window = tuning.Asteroids[kind.Key()]
		}
		s.spawners = append(s.spawners, NewSpawner(kind, window, now))
	}
	return s
}

// Due returns the kinds that should spawn now and marks them spawned.
// Each kind appears at most once however long it has been overdue.
func (s *Schedule) Due(now time.Time, rng *rand.Rand) []Kind {
	var due []Kind
	for _, sp := range s.spawners {
		if sp.Due(now) {
			sp.Mark(now, rng)
			due = append(due, sp.Kind)
		}
	}
	return due
}

// Shift rebases every spawner by d.
func (s *Schedule) Shift(d time.Duration) {
	for _, sp := range s.spawners {
		sp.Shift(d)
	}
}

// Spawner returns the spawner for a kind.
func (s *Schedule) Spawner(kind Kind) *Spawner {
	for _, sp := range s.spawners {
		if sp.Kind == kind {
			return sp
		}
	}
	return nil
}
