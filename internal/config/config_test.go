package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	got := embeddedExplorer()
	want := DefaultExplorerConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded explorer.yaml differs from DefaultExplorerConfig:\n got %+v\nwant %+v", got, want)
	}
	if err := Validate(want); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultTuning(t *testing.T) {
	cfg := DefaultExplorerConfig()

	shields := map[Difficulty]int{
		DifficultyEasy:   5,
		DifficultyMedium: 3,
		DifficultyHard:   3,
	}
	for d, want := range shields {
		tuning, ok := cfg.For(d)
		if !ok {
			t.Fatalf("missing tuning for %s", d)
		}
		if tuning.Shield != want {
			t.Errorf("%s shield = %d, expected %d", d, tuning.Shield, want)
		}
	}

	values := map[string]int{KindCoin1: 2, KindCoin2: 3, KindCoin3: 4, KindCoin4: 5}
	for kind, want := range values {
		if got := cfg.Coins.Kinds[kind].Value; got != want {
			t.Errorf("%s value = %d, expected %d", kind, got, want)
		}
		if got := cfg.CoinTravel(kind); got != 7 {
			t.Errorf("%s travel = %g, expected 7", kind, got)
		}
	}

	hard, _ := cfg.For(DifficultyHard)
	if w := hard.Asteroids[KindAsteroid4]; w.Min != 3 || w.Max != 4 || w.First != 3 || w.Travel != 1 {
		t.Errorf("hard asteroid4 = %+v", w)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExplorerConfig)
	}{
		{"tiny playfield", func(c *ExplorerConfig) { c.Playfield.Width = 5 }},
		{"zero ship speed", func(c *ExplorerConfig) { c.Ship.Speed = 0 }},
		{"ship outside playfield", func(c *ExplorerConfig) { c.Ship.X = 500 }},
		{"inverted coin window", func(c *ExplorerConfig) {
			k := c.Coins.Kinds[KindCoin1]
			k.Window.Min, k.Window.Max = 5, 1
			c.Coins.Kinds[KindCoin1] = k
		}},
		{"negative first", func(c *ExplorerConfig) {
			k := c.Coins.Kinds[KindCoin2]
			k.Window.First = -1
			c.Coins.Kinds[KindCoin2] = k
		}},
		{"missing coin", func(c *ExplorerConfig) { delete(c.Coins.Kinds, KindCoin4) }},
		{"zero shield", func(c *ExplorerConfig) {
			d := c.Difficulties[DifficultyHard]
			d.Shield = 0
			c.Difficulties[DifficultyHard] = d
		}},
		{"missing difficulty", func(c *ExplorerConfig) { delete(c.Difficulties, DifficultyMedium) }},
		{"missing asteroid", func(c *ExplorerConfig) { delete(c.Difficulties[DifficultyEasy].Asteroids, KindAsteroid2) }},
		{"zero travel", func(c *ExplorerConfig) {
			c.Difficulties[DifficultyEasy].Asteroids[KindAsteroid1] = SpawnWindow{Min: 1, Max: 2, First: 1}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultExplorerConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{" HARD ", DifficultyHard, false},
		{"normal", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}

	if DifficultyMedium.Label() != "Medium" {
		t.Errorf("Label() = %q", DifficultyMedium.Label())
	}
}

func TestLoadExplorerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	data := []byte("ship:\n  x: 3\n  speed: 20\n  hold: 0.2\nsound:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadExplorer(path)
	if err != nil {
		t.Fatalf("LoadExplorer() error: %v", err)
	}
	if cfg.Ship.Speed != 20 || cfg.Ship.X != 3 {
		t.Errorf("ship = %+v, expected overrides", cfg.Ship)
	}
	if cfg.Sound.Enabled {
		t.Error("sound should be disabled by the file")
	}
	// Keys absent from the file keep their defaults
	if cfg.Coins.Travel != 7 {
		t.Errorf("coin travel = %g, expected default 7", cfg.Coins.Travel)
	}
	if ResolveExplorerPath(path) != path {
		t.Errorf("ResolveExplorerPath(%q) = %q", path, ResolveExplorerPath(path))
	}
}

func TestParsePartialEntries(t *testing.T) {
	defaults := DefaultExplorerConfig()

	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg ExplorerConfig)
	}{
		{
			name: "coin value only",
			yaml: "coins:\n  kinds:\n    coin1: { value: 9 }\n",
			check: func(t *testing.T, cfg ExplorerConfig) {
				coin := cfg.Coins.Kinds[KindCoin1]
				if coin.Value != 9 {
					t.Errorf("coin1 value = %d, expected 9", coin.Value)
				}
				if coin.Window != defaults.Coins.Kinds[KindCoin1].Window {
					t.Errorf("coin1 window = %+v, expected default", coin.Window)
				}
				if cfg.Coins.Kinds[KindCoin4] != defaults.Coins.Kinds[KindCoin4] {
					t.Error("unnamed coin kinds should keep their defaults")
				}
			},
		},
		{
			name: "difficulty shield only",
			yaml: "difficulties:\n  hard:\n    shield: 4\n",
			check: func(t *testing.T, cfg ExplorerConfig) {
				hard, _ := cfg.For(DifficultyHard)
				if hard.Shield != 4 {
					t.Errorf("hard shield = %d, expected 4", hard.Shield)
				}
				want, _ := defaults.For(DifficultyHard)
				if !reflect.DeepEqual(hard.Asteroids, want.Asteroids) {
					t.Errorf("hard asteroids = %+v, expected defaults", hard.Asteroids)
				}
				if easy, _ := cfg.For(DifficultyEasy); easy.Shield != 5 {
					t.Errorf("easy shield = %d, expected 5", easy.Shield)
				}
			},
		},
		{
			name: "single asteroid field",
			yaml: "difficulties:\n  medium:\n    asteroids:\n      asteroid2: { max: 9 }\n",
			check: func(t *testing.T, cfg ExplorerConfig) {
				medium, _ := cfg.For(DifficultyMedium)
				w := medium.Asteroids[KindAsteroid2]
				if w.Max != 9 || w.Min != 3 || w.First != 3 || w.Travel != 4 {
					t.Errorf("medium asteroid2 = %+v, expected max 9 over defaults", w)
				}
				if len(medium.Asteroids) != len(AsteroidKinds) {
					t.Errorf("medium has %d asteroid kinds, expected %d", len(medium.Asteroids), len(AsteroidKinds))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseExplorer([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseExplorer() error: %v", err)
			}
			tt.check(t, cfg)
		})
	}

	// Merging must not leak into later loads.
	if !reflect.DeepEqual(embeddedExplorer(), defaults) {
		t.Error("partial files changed the embedded defaults")
	}
}

func TestResolveExplorerSkipsBrokenFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userDir := filepath.Join(home, ".explorer", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "explorer.yaml"), []byte("ship:\n  speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	work := t.TempDir()
	t.Chdir(work)

	// Only the broken user file exists: fall back to the defaults.
	cfg, src, err := ResolveExplorer("")
	if err != nil {
		t.Fatalf("ResolveExplorer() error: %v", err)
	}
	if src.Path != "" || len(src.Skipped) != 1 || !errors.Is(src.Skipped[0], ErrInvalid) {
		t.Errorf("source = %+v, expected embedded default with one skipped file", src)
	}
	if !reflect.DeepEqual(cfg, DefaultExplorerConfig()) {
		t.Error("expected the embedded defaults")
	}

	// A valid local file is used, and reported as the source.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join("configs", "explorer.yaml")
	if err := os.WriteFile(local, []byte("ship:\n  speed: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, src, err = ResolveExplorer("")
	if err != nil {
		t.Fatalf("ResolveExplorer() error: %v", err)
	}
	if src.Path != local || len(src.Skipped) != 1 {
		t.Errorf("source = %+v, expected %s after one skipped file", src, local)
	}
	if cfg.Ship.Speed != 25 {
		t.Errorf("ship speed = %g, expected 25 from the local file", cfg.Ship.Speed)
	}
	if got := ResolveExplorerPath(""); got != local {
		t.Errorf("ResolveExplorerPath() = %q, expected the file in use %q", got, local)
	}
}

func TestLoadExplorerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadExplorer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExplorer(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ship:\n  speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExplorer(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadExplorer(invalid) = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultExplorerConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseExplorer(data)
	if err != nil {
		t.Fatalf("ParseExplorer(Marshal(default)) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultExplorerConfig()) {
		t.Error("marshalled config does not parse back to the defaults")
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	if err := os.WriteFile(path, []byte("ship:\n  speed: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("ship:\n  speed: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Changes:
		if cfg.Ship.Speed != 30 {
			t.Errorf("reloaded speed = %g, expected 30", cfg.Ship.Speed)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "explorer.yaml")
	_, err := NewWatcher(path)
	if err == nil {
		t.Fatal("expected error watching a missing directory")
	}
	if !strings.HasPrefix(err.Error(), "config: watch ") {
		t.Errorf("error %q lacks the config prefix", err)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explorer.yaml")
	if err := os.WriteFile(path, []byte("ship:\n  speed: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Changes:
		t.Errorf("unexpected reload: %+v", cfg.Ship)
	case <-time.After(300 * time.Millisecond):
	}
}
