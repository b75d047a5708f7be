package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/games/explorer"
)

const helpPages = 4

// Promo featured on the Other Games page
const (
	promoTitle = "Krazy Koala"
	promoLink  = "https://itunes.apple.com/us/app/krazykoala/id957148297?mt=8"
)

// HelpScene shows the controls, the coin table, a promo and the credits.
type HelpScene struct {
	page    int
	message string
}

// NewHelpScene creates the help scene on its first page.
func NewHelpScene() *HelpScene {
	return &HelpScene{}
}

func (s *HelpScene) Enter(env *Env) tea.Cmd { return nil }

func (s *HelpScene) Gameplay() bool { return false }

// Page returns the zero-based page on display.
func (s *HelpScene) Page() int { return s.page }

// Update pages forward and back; stepping past either end returns to Start.
func (s *HelpScene) Update(env *Env, msg tea.Msg) (Scene, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.page == 2 && key.Matches(keyMsg, env.Keys.Open) {
		s.message = fmt.Sprintf("Open %s in your browser to get %s.", promoLink, promoTitle)
		return s, nil
	}

	switch env.Keys.Action(keyMsg) {
	case core.ActionRight, core.ActionConfirm:
		s.message = ""
		if s.page == helpPages-1 {
			return NewStartScene(), nil
		}
		s.page++
	case core.ActionLeft:
		s.message = ""
		if s.page == 0 {
			return NewStartScene(), nil
		}
		s.page--
	case core.ActionBack:
		return NewStartScene(), nil
	}
	return s, nil
}

// View renders the current page.
func (s *HelpScene) View(env *Env, width, height int) string {
	var title, body string
	switch s.page {
	case 0:
		title = "How to Play"
		body = strings.Join([]string{
			"Fly your spaceship through the asteroid field.",
			"",
			"Up / W      fly up",
			"Down / S    fly down",
			"P / Esc     pause",
			"",
			"Collect coins to earn points. Every asteroid that hits",
			"you drains one bar of your shield. When the shield is",
			"empty the game is over.",
		}, "\n")
	case 1:
		title = "Coins"
		body = s.coinTable(env)
	case 2:
		title = "Other Games"
		body = strings.Join([]string{
			promoTitle,
			"Free and addictive. Help the koala dodge everything",
			"the forest throws at him.",
			"",
			subtleStyle.Render("Press o for the download link."),
		}, "\n")
	case 3:
		title = "Credits"
		body = strings.Join([]string{
			gameTitle,
			"",
			"Game design and code by the Space Explorer team.",
			"Music and sound effects are synthesized at runtime.",
		}, "\n")
	}

	parts := []string{
		titleStyle.Render(title),
		"",
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Render(body),
		"",
		subtleStyle.Render(fmt.Sprintf("Page %d of %d", s.page+1, helpPages)),
	}
	if s.message != "" {
		parts = append(parts, s.message)
	}
	parts = append(parts, env.help.ShortHelpView([]key.Binding{env.Keys.Left, env.Keys.Right, env.Keys.Back, env.Keys.Quit}))

	return center(lipgloss.JoinVertical(lipgloss.Center, parts...), width, height)
}

func (s *HelpScene) coinTable(env *Env) string {
	var b strings.Builder
	b.WriteString("Every coin you collect adds points:\n\n")
	for _, kind := range explorer.Kinds {
		if !kind.IsCoin() {
			continue
		}
		sprite := kind.Sprite(0)
		value := env.Config.Coins.Kinds[kind.Key()].Value
		fmt.Fprintf(&b, "  %-6s %d points\n", sprite[0], value)
	}
	return strings.TrimRight(b.String(), "\n")
}
