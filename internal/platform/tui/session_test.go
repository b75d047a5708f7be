package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-explorer/internal/banner"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/storage"
)

type recorder struct {
	successes, stops, plays int
}

func (r *recorder) Hit()        {}
func (r *recorder) Collect()    {}
func (r *recorder) GameOver()   {}
func (r *recorder) Success()    { r.successes++ }
func (r *recorder) PlayMusic()  { r.plays++ }
func (r *recorder) PauseMusic() {}
func (r *recorder) StopMusic()  { r.stops++ }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestEnv(t *testing.T, store *storage.Store) (*Env, *recorder) {
	t.Helper()
	rec := &recorder{}
	env := NewEnv(Env{
		Store:  store,
		Config: config.DefaultExplorerConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  100,
			ScreenH:  40,
			TickRate: 60,
			Seed:     7,
		},
		Sounds: rec,
	})
	return env, rec
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func send(m *SessionModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{keyUp, core.ActionUp},
		{keyRunes("w"), core.ActionUp},
		{keyDown, core.ActionDown},
		{keyRunes("s"), core.ActionDown},
		{keyLeft, core.ActionLeft},
		{keyRight, core.ActionRight},
		{keyEnter, core.ActionConfirm},
		{keyRunes(" "), core.ActionConfirm},
		{keyRunes("b"), core.ActionBack},
		{keyRunes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{keyRunes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{keyRunes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Shield:", core.ColorRed)
	s.DrawText(8, 0, "ok")
	s.DrawTextColored(0, 1, "Points: 3", core.ColorBrightWhite)

	out := RenderScreen(s)
	for _, want := range []string{"Shield:", "ok", "Points: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, expected 1", got)
	}
}

func TestStartSceneShowsScores(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordResult(config.DifficultyMedium, 42); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordResult(config.DifficultyMedium, 17); err != nil {
		t.Fatal(err)
	}
	env, _ := newTestEnv(t, store)
	m := NewSessionModel(env, NewStartScene())
	m.Init()

	view := m.View()
	for _, want := range []string{gameTitle, "Help/Info", "High score: 42 | Last Score: 17", "High score: 0 | Last Score: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("start view missing %q", want)
		}
	}
}

func TestStartNavigation(t *testing.T) {
	env, _ := newTestEnv(t, nil)

	tests := []struct {
		name string
		keys []tea.Msg
		want string
	}{
		{"help", []tea.Msg{keyUp, keyEnter}, "*tui.HelpScene"},
		{"easy", []tea.Msg{keyEnter}, "*tui.GameScene"},
		{"hard", []tea.Msg{keyDown, keyDown, keyEnter}, "*tui.GameScene"},
		{"scores", []tea.Msg{keyTab}, "*tui.ScoreboardScene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSessionModel(env, NewStartScene())
			m.Init()
			send(m, tt.keys...)
			if got := typeName(m.Scene()); got != tt.want {
				t.Errorf("scene = %s, expected %s", got, tt.want)
			}
		})
	}

	m := NewSessionModel(env, NewStartScene())
	m.Init()
	send(m, keyDown, keyDown, keyEnter)
	if g := m.Scene().(*GameScene); g.Game().Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty = %s, expected hard", g.Game().Difficulty())
	}
}

func typeName(s Scene) string {
	switch s.(type) {
	case *StartScene:
		return "*tui.StartScene"
	case *HelpScene:
		return "*tui.HelpScene"
	case *GameScene:
		return "*tui.GameScene"
	case *GameOverScene:
		return "*tui.GameOverScene"
	case *ScoreboardScene:
		return "*tui.ScoreboardScene"
	}
	return "unknown"
}

func TestHelpPaging(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewHelpScene())
	m.Init()

	for page := 1; page <= helpPages; page++ {
		help, ok := m.Scene().(*HelpScene)
		if !ok {
			t.Fatalf("left help early on page %d", page)
		}
		if !strings.Contains(m.View(), fmt.Sprintf("Page %d of 4", page)) {
			t.Errorf("page %d label missing", page)
		}
		if help.Page() != page-1 {
			t.Errorf("Page() = %d, expected %d", help.Page(), page-1)
		}
		send(m, keyRight)
	}
	if _, ok := m.Scene().(*StartScene); !ok {
		t.Error("forward past the last page should return to Start")
	}

	m = NewSessionModel(env, NewHelpScene())
	m.Init()
	send(m, keyRight, keyLeft)
	if h := m.Scene().(*HelpScene); h.Page() != 0 {
		t.Fatalf("back should return to page 1, on %d", h.Page()+1)
	}
	send(m, keyLeft)
	if _, ok := m.Scene().(*StartScene); !ok {
		t.Error("back before the first page should return to Start")
	}
}

func TestHelpPromoLink(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewHelpScene())
	m.Init()

	send(m, keyRunes("o"))
	if strings.Contains(m.View(), promoLink) {
		t.Error("link should only open from the promo page")
	}

	send(m, keyRight, keyRight, keyRunes("o"))
	if !strings.Contains(m.View(), promoLink) {
		t.Error("promo page should show the link after pressing o")
	}
}

func TestHelpCoinTable(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewHelpScene())
	m.Init()
	send(m, keyRight)

	view := m.View()
	for _, want := range []string{"(2)", "2 points", "(5)", "5 points"} {
		if !strings.Contains(view, want) {
			t.Errorf("coin table missing %q", want)
		}
	}
}

func TestGameSceneTicks(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewGameScene(config.DifficultyEasy))
	m.Init()
	g := m.Scene().(*GameScene)

	// A stale tick from an earlier run is dropped.
	if cmd := send(m, TickMsg{ID: g.id + 100, Time: time.Now()}); cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if g.game.Snapshot().Tick != 0 {
		t.Fatal("stale tick stepped the game")
	}

	if cmd := send(m, TickMsg{ID: g.id, Time: time.Now()}); cmd == nil {
		t.Error("tick should schedule the next one")
	}
	if g.game.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected 1", g.game.Snapshot().Tick)
	}
}

func TestGameSceneFocus(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewGameScene(config.DifficultyMedium))
	m.Init()
	g := m.Scene().(*GameScene)

	send(m, tea.BlurMsg{})
	if !g.Game().State().Paused {
		t.Fatal("losing focus should pause")
	}
	send(m, tea.FocusMsg{})
	if !g.Game().State().Paused {
		t.Error("regaining focus should keep the game paused")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("paused view should show the dialog")
	}
}

func TestGameSceneLeaveToMenu(t *testing.T) {
	env, rec := newTestEnv(t, nil)
	m := NewSessionModel(env, NewGameScene(config.DifficultyEasy))
	m.Init()
	g := m.Scene().(*GameScene)

	send(m, keyRunes("p"), TickMsg{ID: g.id}, keyDown, TickMsg{ID: g.id}, keyEnter, TickMsg{ID: g.id})
	if _, ok := m.Scene().(*StartScene); !ok {
		t.Fatalf("menu choice should return to Start, on %s", typeName(m.Scene()))
	}
	if rec.stops == 0 {
		t.Error("leaving should stop the music")
	}
}

func TestBannerHiddenDuringGameplay(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewStartScene())
	m.Init()

	ads, err := banner.EmbeddedSource{}.Load(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	send(m, bannerLoadedMsg{ads: ads})
	if !env.Banner().Visible() || !strings.Contains(m.View(), ads[0].Title) {
		t.Fatal("banner should show on the start scene")
	}

	send(m, keyEnter)
	if env.Banner().Visible() {
		t.Error("banner should hide during gameplay")
	}
	if strings.Contains(m.View(), ads[0].Title) {
		t.Error("gameplay view should not draw the banner")
	}
}

func TestBannerRetriesAfterFailure(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewStartScene())
	m.Init()
	if !env.Banner().Loading() {
		t.Fatal("session should start loading the banner")
	}

	send(m, bannerLoadedMsg{err: errors.New("offline")})
	if env.Banner().Visible() || env.Banner().Err() == nil {
		t.Fatal("failed load should hide the banner and keep the error")
	}

	// Entering gameplay does not retry, the next menu scene does.
	send(m, keyEnter)
	if env.Banner().Loading() {
		t.Error("gameplay should not retry the banner")
	}
	g := m.Scene().(*GameScene)
	send(m, keyRunes("p"), TickMsg{ID: g.id}, keyRunes("b"), TickMsg{ID: g.id})
	if !env.Banner().Loading() {
		t.Error("returning to Start should retry the failed load")
	}
}

func TestGameOverRecordsResult(t *testing.T) {
	store := openTestStore(t)
	env, rec := newTestEnv(t, store)

	m := NewSessionModel(env, NewGameOverScene(config.DifficultyEasy, 10))
	m.Init()
	first := m.Scene().(*GameOverScene)

	if !first.Result().NewHigh {
		t.Fatal("first run should set a high score")
	}
	view := m.View()
	for _, want := range []string{"Game Over!", "Last score: 0 | Highest score: 0", "Top Score", "Play Again"} {
		if !strings.Contains(view, want) {
			t.Errorf("game over view missing %q", want)
		}
	}

	// The success cue belongs to this scene only.
	send(m, successMsg{id: first.id + 1})
	send(m, successMsg{id: first.id})
	if rec.successes != 1 {
		t.Errorf("success played %d times, expected 1", rec.successes)
	}

	send(m, keyEnter)
	if _, ok := m.Scene().(*StartScene); !ok {
		t.Fatal("Play Again should return to Start")
	}

	m = NewSessionModel(env, NewGameOverScene(config.DifficultyEasy, 5))
	m.Init()
	second := m.Scene().(*GameOverScene)
	want := storage.Result{PrevLast: 10, PrevHigh: 10, NewHigh: false}
	if second.Result() != want {
		t.Errorf("Result() = %+v, expected %+v", second.Result(), want)
	}
	if strings.Contains(m.View(), "Top Score") {
		t.Error("no badge without a new high score")
	}

	if high, _ := store.HighScore(config.DifficultyEasy); high != 10 {
		t.Errorf("high score = %d, expected 10", high)
	}
	if last, _ := store.LastScore(config.DifficultyEasy); last != 5 {
		t.Errorf("last score = %d, expected 5", last)
	}
}

func TestGameOverWithoutStore(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewGameOverScene(config.DifficultyHard, 3))
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should still start the banner load")
	}
	if m.Scene().(*GameOverScene).Result().NewHigh {
		t.Error("no store means no high score")
	}
}

func TestConfigReloadAppliesNextRun(t *testing.T) {
	env, _ := newTestEnv(t, nil)
	m := NewSessionModel(env, NewGameScene(config.DifficultyEasy))
	m.Init()
	g := m.Scene().(*GameScene)

	cfg := config.DefaultExplorerConfig()
	easy := cfg.Difficulties[config.DifficultyEasy]
	easy.Shield = 8
	cfg.Difficulties[config.DifficultyEasy] = easy

	// Without a watcher the message would never arrive; deliver it directly.
	env.Watcher = &config.Watcher{}
	send(m, configChangedMsg{cfg: cfg})

	if g.Game().State().Shield != 5 {
		t.Errorf("running game changed shield to %d", g.Game().State().Shield)
	}
	if env.Config.Difficulties[config.DifficultyEasy].Shield != 8 {
		t.Error("session config not updated")
	}

	next := NewGameScene(config.DifficultyEasy)
	next.Enter(env)
	if next.Game().State().Shield != 8 {
		t.Errorf("next run shield = %d, expected 8", next.Game().State().Shield)
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{30, 50, 40} {
		if _, err := store.RecordResult(config.DifficultyHard, s); err != nil {
			t.Fatal(err)
		}
	}
	env, _ := newTestEnv(t, store)
	m := NewSessionModel(env, NewScoreboardScene())
	m.Init()
	sb := m.Scene().(*ScoreboardScene)

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("easy tab should be empty")
	}

	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if sb.Difficulty() != config.DifficultyHard {
		t.Fatalf("tab = %s, expected hard", sb.Difficulty())
	}
	if len(sb.scores) != 3 || sb.scores[0].Score != 50 {
		t.Errorf("scores = %+v, expected 3 runs led by 50", sb.scores)
	}
	if !strings.Contains(m.View(), "Runs: 3") {
		t.Error("summary should count runs")
	}

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.Scene().(*StartScene); !ok {
		t.Error("esc should return to Start")
	}
}

func TestQuitFromAnyScene(t *testing.T) {
	env, rec := newTestEnv(t, nil)
	for _, scene := range []Scene{NewStartScene(), NewHelpScene(), NewGameScene(config.DifficultyEasy)} {
		m := NewSessionModel(env, scene)
		m.Init()
		cmd := send(m, keyRunes("q"))
		if cmd == nil {
			t.Fatalf("%s: quit returned no command", typeName(scene))
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.Quit", typeName(scene))
		}
		if m.View() != "" {
			t.Errorf("%s: view after quit should be empty", typeName(scene))
		}
	}
	if rec.stops < 3 {
		t.Errorf("quit should stop the music, stopped %d times", rec.stops)
	}
}
