package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/games/explorer"
)

// GameScene runs one game of Little Space Explorer.
type GameScene struct {
	id         int
	difficulty config.Difficulty
	game       *explorer.Game
	screen     *core.Screen
	input      core.InputFrame
	tickRate   int
}

// NewGameScene creates a game scene for a difficulty.
func NewGameScene(d config.Difficulty) *GameScene {
	return &GameScene{difficulty: d, input: core.NewInputFrame()}
}

// Enter starts a fresh run with the session's current configuration.
func (s *GameScene) Enter(env *Env) tea.Cmd {
	s.id = env.newID()
	s.tickRate = env.Runtime.TickRate
	s.game = explorer.New(env.Config, s.difficulty, explorer.WithSounds(env.Sounds))

	rc := env.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	s.game.Reset(rc)
	s.screen = core.NewScreen(env.width, env.height)

	return tickCmd(s.id, s.tickRate)
}

func (s *GameScene) Gameplay() bool { return true }

// Game returns the running game.
func (s *GameScene) Game() *explorer.Game { return s.game }

// Update feeds keys to the game and steps it on every tick.
func (s *GameScene) Update(env *Env, msg tea.Msg) (Scene, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a := env.Keys.Action(msg); a != core.ActionNone {
			s.input.Set(a)
		}

	case tea.BlurMsg:
		s.game.Background()

	case tea.FocusMsg:
		s.game.Foreground()

	case TickMsg:
		if msg.ID != s.id {
			return s, nil
		}
		res := s.game.Step(s.input)
		s.input.Clear()

		switch {
		case res.State.Finished:
			return NewGameOverScene(s.difficulty, res.State.Score), nil
		case res.State.Exited:
			return NewStartScene(), nil
		}
		return s, tickCmd(s.id, s.tickRate)
	}
	return s, nil
}

// View renders the playfield with the key help under it.
func (s *GameScene) View(env *Env, width, height int) string {
	helpLine := env.help.View(gameHelp{env.Keys})
	rows := height - lipgloss.Height(helpLine)
	if rows < 1 || width < 1 {
		return helpLine
	}

	s.screen.Resize(width, rows)
	s.game.Render(s.screen)
	return lipgloss.JoinVertical(lipgloss.Center, RenderScreen(s.screen), helpLine)
}
