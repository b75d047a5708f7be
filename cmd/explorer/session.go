package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/space-explorer/internal/audio"
	"github.com/vovakirdan/space-explorer/internal/banner"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/platform/tui"
	"github.com/vovakirdan/space-explorer/internal/storage"
)

// runSession opens everything a local session needs and runs it from first.
// Missing scores database, audio device or watcher only produce warnings.
func runSession(first tui.Scene) error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var sounds audio.Player = audio.Nop{}
	if !flagMute && cfg.Sound.Enabled {
		sm := audio.NewSoundManager(cfg.Sound.Music)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	var watcher *config.Watcher
	if flagWatch {
		if cfgPath == "" {
			logger.Warn("nothing to watch: using the built-in configuration")
		} else if watcher, err = config.NewWatcher(cfgPath); err != nil {
			logger.Warn("config reload disabled", "path", cfgPath, "error", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	sessionLog, closeLog, err := openSessionLog()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	env := tui.NewEnv(tui.Env{
		Store:  store,
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sounds:  sounds,
		Ads:     banner.NewSource(flagAds),
		Watcher: watcher,
		Logger:  sessionLog,
	})

	if err := tui.Run(env, first); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadConfig resolves the game configuration and returns it with the path of
// the file it came from. Broken files on the search path are reported and
// skipped.
func loadConfig() (config.ExplorerConfig, string, error) {
	cfg, src, err := config.ResolveExplorer(flagConfig)
	for _, skipped := range src.Skipped {
		logger.Warn("ignoring config file", "error", skipped)
	}
	if err != nil {
		return config.ExplorerConfig{}, "", err
	}
	return cfg, src.Path, nil
}

// openSessionLog returns the logger used while the TUI owns the terminal.
// Without --log, session logs are dropped.
func openSessionLog() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "explorer",
	})
	return l, func() { f.Close() }, nil
}
