package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-explorer/internal/audio"
	"github.com/vovakirdan/space-explorer/internal/banner"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/storage"
)

const (
	bannerLoadTimeout = 5 * time.Second
	bannerRotateEvery = 12 * time.Second
)

// Env holds what every scene of a session shares.
type Env struct {
	Store   *storage.Store // nil runs without persistence
	Config  config.ExplorerConfig
	Runtime core.RuntimeConfig
	Sounds  audio.Player
	Ads     banner.Source
	Watcher *config.Watcher // nil disables hot reload
	Logger  *log.Logger
	Keys    KeyMap

	banner *banner.Controller
	help   help.Model
	width  int
	height int
	nextID int
}

// NewEnv fills in defaults for unset fields.
func NewEnv(env Env) *Env {
	e := env
	if e.Sounds == nil {
		e.Sounds = audio.Nop{}
	}
	if e.Ads == nil {
		e.Ads = banner.EmbeddedSource{}
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Keys.Quit.Keys() == nil {
		e.Keys = DefaultKeyMap()
	}
	if e.Runtime.TickRate <= 0 {
		e.Runtime.TickRate = 60
	}
	e.banner = banner.NewController()
	e.help = help.New()
	e.width = e.Runtime.ScreenW
	e.height = e.Runtime.ScreenH
	return &e
}

// Banner returns the session's banner controller.
func (e *Env) Banner() *banner.Controller {
	return e.banner
}

// scores reads the stored high and last score for d. Missing values and a
// missing store read as 0.
func (e *Env) scores(d config.Difficulty) (high, last int) {
	if e.Store == nil {
		return 0, 0
	}
	var err error
	if high, err = e.Store.HighScore(d); err != nil {
		e.Logger.Warn("could not read high score", "difficulty", d, "error", err)
	}
	if last, err = e.Store.LastScore(d); err != nil {
		e.Logger.Warn("could not read last score", "difficulty", d, "error", err)
	}
	return high, last
}

func (e *Env) newID() int {
	e.nextID++
	return e.nextID
}

// Scene is one screen of the session. Update returns the scene to show next,
// which is the receiver itself when nothing changes.
type Scene interface {
	Enter(env *Env) tea.Cmd
	Update(env *Env, msg tea.Msg) (Scene, tea.Cmd)
	View(env *Env, width, height int) string
	// Gameplay reports whether the scene is the game itself. The banner is
	// hidden during gameplay.
	Gameplay() bool
}

// Messages driving the session
type (
	bannerLoadedMsg struct {
		ads []banner.Ad
		err error
	}
	bannerRotateMsg  struct{ gen int }
	configChangedMsg struct{ cfg config.ExplorerConfig }
	configErrorMsg   struct{ err error }
)

// SessionModel is the top-level Bubble Tea model. It presents scenes and owns
// the banner, config reload and global quit key.
type SessionModel struct {
	env       *Env
	scene     Scene
	bannerGen int
	status    string
	quitting  bool
}

// NewSessionModel creates a session that starts on the given scene.
func NewSessionModel(env *Env, first Scene) *SessionModel {
	return &SessionModel{env: env, scene: first}
}

// Scene returns the scene on display.
func (m *SessionModel) Scene() Scene {
	return m.scene
}

// Init presents the first scene and starts the first banner load.
func (m *SessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.present(m.scene)}
	if m.env.banner.BeginLoad() {
		cmds = append(cmds, loadBanner(m.env.Ads))
	}
	if m.env.Watcher != nil {
		cmds = append(cmds, waitForConfig(m.env.Watcher))
	}
	return tea.Batch(cmds...)
}

// present makes next the current scene.
func (m *SessionModel) present(next Scene) tea.Cmd {
	m.scene = next
	cmds := []tea.Cmd{next.Enter(m.env)}
	if m.env.banner.EnterScene(next.Gameplay()) && m.env.banner.BeginLoad() {
		cmds = append(cmds, loadBanner(m.env.Ads))
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the session.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		if m.env.Keys.Action(msg) == core.ActionQuit {
			m.quitting = true
			m.env.Sounds.StopMusic()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.env.width = msg.Width
		m.env.height = msg.Height
		m.env.Runtime.ScreenW = msg.Width
		m.env.Runtime.ScreenH = msg.Height
		m.env.help.Width = msg.Width

	case bannerLoadedMsg:
		if msg.err != nil {
			m.env.Logger.Warn("could not load promos", "error", msg.err)
			m.env.banner.LoadFailed(msg.err)
			return m, nil
		}
		m.env.banner.LoadSucceeded(msg.ads)
		m.bannerGen++
		return m, rotateBanner(m.bannerGen)

	case bannerRotateMsg:
		if msg.gen != m.bannerGen {
			return m, nil
		}
		m.env.banner.Rotate()
		return m, rotateBanner(m.bannerGen)

	case configChangedMsg:
		m.env.Config = msg.cfg
		m.status = "Configuration reloaded; applies to the next run."
		m.env.Logger.Info("configuration reloaded", "path", m.env.Watcher.Path())
		if g, ok := m.scene.(*GameScene); ok {
			g.game.SetConfig(msg.cfg)
		}
		return m, waitForConfig(m.env.Watcher)

	case configErrorMsg:
		m.status = fmt.Sprintf("Configuration not reloaded: %v", msg.err)
		m.env.Logger.Warn("configuration not reloaded", "error", msg.err)
		return m, waitForConfig(m.env.Watcher)
	}

	next, cmd := m.scene.Update(m.env, msg)
	if next != m.scene {
		return m, tea.Batch(cmd, m.present(next))
	}
	return m, cmd
}

// View renders the current scene with the banner and status line under it.
func (m *SessionModel) View() string {
	if m.quitting {
		return ""
	}

	var footer []string
	if m.env.banner.Visible() {
		if ad, ok := m.env.banner.Current(); ok {
			footer = append(footer, renderBanner(ad, m.env.width))
		}
	}
	if m.status != "" {
		footer = append(footer, subtleStyle.Render(m.status))
	}

	bottom := lipgloss.JoinVertical(lipgloss.Center, footer...)
	height := m.env.height - lipgloss.Height(bottom)
	if len(footer) == 0 {
		height = m.env.height
	}

	body := m.scene.View(m.env, m.env.width, height)
	if len(footer) == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Center, body, bottom)
}

func loadBanner(src banner.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), bannerLoadTimeout)
		defer cancel()
		ads, err := src.Load(ctx)
		return bannerLoadedMsg{ads: ads, err: err}
	}
}

func rotateBanner(gen int) tea.Cmd {
	return tea.Tick(bannerRotateEvery, func(time.Time) tea.Msg {
		return bannerRotateMsg{gen: gen}
	})
}

func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Changes:
			if !ok {
				return nil
			}
			return configChangedMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}

// Run starts a local session on the first scene.
func Run(env *Env, first Scene) error {
	p := tea.NewProgram(
		NewSessionModel(env, first),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
