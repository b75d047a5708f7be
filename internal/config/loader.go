package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const explorerFile = "explorer.yaml"

// Source describes where a loaded configuration came from.
type Source struct {
	Path    string  // file that was read, or "" for the embedded default
	Skipped []error // search-path files that exist but failed to load
}

// LoadExplorer loads the game configuration.
// Search order: customPath -> ~/.explorer/configs/explorer.yaml -> ./configs/explorer.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names, including single fields of a difficulty or coin entry. The
// result is validated.
func LoadExplorer(customPath string) (ExplorerConfig, error) {
	cfg, _, err := ResolveExplorer(customPath)
	return cfg, err
}

// ResolveExplorer loads the game configuration like LoadExplorer and reports
// which file it used. An invalid file on the search path is skipped and its
// error recorded in Source.Skipped; an invalid customPath is an error.
func ResolveExplorer(customPath string) (ExplorerConfig, Source, error) {
	if customPath != "" {
		cfg, err := LoadExplorerFile(customPath)
		return cfg, Source{Path: customPath}, err
	}

	var src Source
	for _, path := range []string{userConfigPath(explorerFile), localConfigPath(explorerFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadExplorerFile(path)
		if err != nil {
			src.Skipped = append(src.Skipped, err)
			continue
		}
		src.Path = path
		return cfg, src, nil
	}

	return embeddedExplorer(), src, nil
}

// LoadExplorerFile reads and validates a single configuration file.
func LoadExplorerFile(path string) (ExplorerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ExplorerConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := ParseExplorer(data)
	if err != nil {
		return ExplorerConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseExplorer decodes YAML over the embedded defaults and validates it.
func ParseExplorer(data []byte) (ExplorerConfig, error) {
	cfg := embeddedExplorer()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ExplorerConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return ExplorerConfig{}, err
	}
	return cfg, nil
}

// ResolveExplorerPath returns the file LoadExplorer reads, or "" when the
// embedded default is used.
func ResolveExplorerPath(customPath string) string {
	_, src, _ := ResolveExplorer(customPath)
	return src.Path
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg ExplorerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func embeddedExplorer() ExplorerConfig {
	var cfg ExplorerConfig
	if err := yaml.Unmarshal(defaultExplorerYAML, &cfg); err != nil {
		return DefaultExplorerConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".explorer", "configs", filename)
}

func localConfigPath(filename string) string {
	return filepath.Join("configs", filename)
}
