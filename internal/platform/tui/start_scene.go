package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
)

const gameTitle = "Little Space Explorer"

// startItem is a button on the start scene. An empty difficulty is the
// Help/Info entry.
type startItem struct {
	label      string
	difficulty config.Difficulty
}

// StartScene is the title menu: Help/Info and one button per difficulty.
type StartScene struct {
	items  []startItem
	cursor int
	high   map[config.Difficulty]int
	last   map[config.Difficulty]int
}

// NewStartScene creates the start scene with the cursor on Easy.
func NewStartScene() *StartScene {
	items := []startItem{{label: "Help/Info"}}
	for _, d := range config.Difficulties() {
		items = append(items, startItem{label: d.Label(), difficulty: d})
	}
	return &StartScene{items: items, cursor: 1}
}

// Enter reads the stored scores for every difficulty.
func (s *StartScene) Enter(env *Env) tea.Cmd {
	s.high = make(map[config.Difficulty]int)
	s.last = make(map[config.Difficulty]int)
	for _, d := range config.Difficulties() {
		s.high[d], s.last[d] = env.scores(d)
	}
	return nil
}

func (s *StartScene) Gameplay() bool { return false }

// Update moves the cursor and opens the selected scene.
func (s *StartScene) Update(env *Env, msg tea.Msg) (Scene, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if key.Matches(keyMsg, env.Keys.Scores) {
		return NewScoreboardScene(), nil
	}

	switch env.Keys.Action(keyMsg) {
	case core.ActionUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case core.ActionDown:
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case core.ActionConfirm:
		item := s.items[s.cursor]
		if item.difficulty == "" {
			return NewHelpScene(), nil
		}
		return NewGameScene(item.difficulty), nil
	}
	return s, nil
}

// View renders the title and buttons.
func (s *StartScene) View(env *Env, width, height int) string {
	parts := []string{
		titleStyle.Render(gameTitle),
		subtleStyle.Render("Steer through the asteroid field and grab every coin"),
		"",
	}
	for i, item := range s.items {
		label := item.label
		if item.difficulty != "" {
			label = fmt.Sprintf("%s\nHigh score: %d | Last Score: %d",
				item.label, s.high[item.difficulty], s.last[item.difficulty])
		}
		parts = append(parts, button(label, i == s.cursor))
	}
	parts = append(parts, "", env.help.ShortHelpView([]key.Binding{
		env.Keys.Up, env.Keys.Down, env.Keys.Confirm, env.Keys.Scores, env.Keys.Quit,
	}))

	return center(lipgloss.JoinVertical(lipgloss.Center, parts...), width, height)
}
