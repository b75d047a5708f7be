package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinHeight = 5
	maxScores      = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next difficulty"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardScene lists the best finished runs per difficulty.
type ScoreboardScene struct {
	difficulties []config.Difficulty
	cursor       int
	scores       []storage.ScoreEntry
	stats        *storage.DifficultyStats
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	height       int
}

// NewScoreboardScene creates the scoreboard on the Easy tab.
func NewScoreboardScene() *ScoreboardScene {
	return &ScoreboardScene{
		difficulties: config.Difficulties(),
		keys:         DefaultScoreboardKeyMap(),
		help:         help.New(),
	}
}

// Enter loads the first tab.
func (s *ScoreboardScene) Enter(env *Env) tea.Cmd {
	s.height = env.height
	s.table = s.createTable()
	s.loadScores(env)
	return nil
}

func (s *ScoreboardScene) Gameplay() bool { return false }

// createTable creates a new table with the score columns.
func (s *ScoreboardScene) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	height := s.height - 14 // Title, tabs, summary, help and the banner
	if height < tableMinHeight {
		height = tableMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// loadScores loads history and stats for the selected difficulty.
func (s *ScoreboardScene) loadScores(env *Env) {
	s.scores = nil
	s.stats = nil
	if env.Store != nil {
		d := s.difficulties[s.cursor]
		scores, err := env.Store.TopScores(d, maxScores)
		if err != nil {
			env.Logger.Warn("could not load scores", "difficulty", d, "error", err)
		}
		s.scores = scores

		stats, err := env.Store.Stats(d)
		if err != nil {
			env.Logger.Warn("could not load score stats", "difficulty", d, "error", err)
		}
		s.stats = stats
	}
	s.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (s *ScoreboardScene) updateTableRows() {
	rows := make([]table.Row, len(s.scores))
	for i, e := range s.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

// Update switches tabs, scrolls the table and returns to Start.
func (s *ScoreboardScene) Update(env *Env, msg tea.Msg) (Scene, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Back):
			return NewStartScene(), nil

		case key.Matches(msg, s.keys.NextTab):
			s.cursor = (s.cursor + 1) % len(s.difficulties)
			s.loadScores(env)
			return s, nil

		case key.Matches(msg, s.keys.PrevTab):
			s.cursor--
			if s.cursor < 0 {
				s.cursor = len(s.difficulties) - 1
			}
			s.loadScores(env)
			return s, nil

		case key.Matches(msg, s.keys.Up), key.Matches(msg, s.keys.Down):
			s.table, cmd = s.table.Update(msg)
			return s, cmd
		}

	case tea.WindowSizeMsg:
		s.height = msg.Height
		s.table = s.createTable()
		s.updateTableRows()
		s.help.Width = msg.Width
		return s, nil
	}

	return s, nil
}

// Difficulty returns the selected tab.
func (s *ScoreboardScene) Difficulty() config.Difficulty {
	return s.difficulties[s.cursor]
}

// View renders the tabs, the summary and the table.
func (s *ScoreboardScene) View(env *Env, width, height int) string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(s.difficulties))
	for i, d := range s.difficulties {
		if i == s.cursor {
			tabs[i] = activeTabStyle.Render(d.Label())
		} else {
			tabs[i] = tabStyle.Render(d.Label())
		}
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	parts := []string{
		titleStyle.Render("HIGH SCORES"),
		"",
		strings.Join(tabs, " "),
		"",
		s.renderSummary(env),
		tableStyle.Render(s.renderTableContent()),
		subtleStyle.Render(s.help.View(s.keys)),
	}
	return center(lipgloss.JoinVertical(lipgloss.Center, parts...), width, height)
}

func (s *ScoreboardScene) renderSummary(env *Env) string {
	high, last := env.scores(s.Difficulty())
	line := fmt.Sprintf("High score: %d | Last Score: %d", high, last)
	if s.stats != nil && s.stats.GamesCount > 0 {
		line += fmt.Sprintf(" | Runs: %d | Average: %.1f", s.stats.GamesCount, s.stats.AvgScore)
	}
	return line
}

// renderTableContent renders the table or empty message.
func (s *ScoreboardScene) renderTableContent() string {
	if len(s.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")
	}
	return s.table.View()
}
