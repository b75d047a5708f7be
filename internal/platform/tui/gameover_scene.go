package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/storage"
)

// successMsg fires once the success cue is due.
type successMsg struct{ id int }

// GameOverScene reports a finished run and records it.
type GameOverScene struct {
	id         int
	difficulty config.Difficulty
	score      int
	result     storage.Result
}

// NewGameOverScene creates the scene for a finished run.
func NewGameOverScene(d config.Difficulty, score int) *GameOverScene {
	return &GameOverScene{difficulty: d, score: score}
}

// Enter saves the run. A new high score schedules the success cue.
func (s *GameOverScene) Enter(env *Env) tea.Cmd {
	s.id = env.newID()
	if env.Store == nil {
		return nil
	}

	res, err := env.Store.RecordResult(s.difficulty, s.score)
	if err != nil {
		env.Logger.Warn("could not save score", "difficulty", s.difficulty, "score", s.score, "error", err)
		return nil
	}
	s.result = res
	if !res.NewHigh {
		return nil
	}

	id := s.id
	return tea.Tick(config.Seconds(env.Config.Timing.SuccessDelay), func(time.Time) tea.Msg {
		return successMsg{id: id}
	})
}

func (s *GameOverScene) Gameplay() bool { return false }

// Result returns the recorded outcome.
func (s *GameOverScene) Result() storage.Result { return s.result }

// Update plays the success cue and handles Play Again.
func (s *GameOverScene) Update(env *Env, msg tea.Msg) (Scene, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		if msg.id == s.id {
			env.Sounds.Success()
		}
	case tea.KeyMsg:
		if env.Keys.Action(msg) == core.ActionConfirm {
			return NewStartScene(), nil
		}
	}
	return s, nil
}

// View renders the final score and the stored values read before saving.
func (s *GameOverScene) View(env *Env, width, height int) string {
	parts := []string{
		titleStyle.Render("Game Over!"),
		subtleStyle.Render("Difficulty: " + s.difficulty.Label()),
		"",
		badgeStyle.Render(fmt.Sprintf("%d", s.score)),
		"",
		fmt.Sprintf("Last score: %d | Highest score: %d", s.result.PrevLast, s.result.PrevHigh),
	}
	if s.result.NewHigh {
		parts = append(parts, "", topScoreStyle.Render("Top Score"))
	}
	parts = append(parts, "", button("Play Again", true))

	return center(lipgloss.JoinVertical(lipgloss.Center, parts...), width, height)
}
