// Package banner drives the promo banner shown under the menu scenes.
//
// Promos come from a YAML catalog. Loading runs off the render loop and can
// fail; the Controller tracks the load state so scenes know when to show the
// banner and when to retry.
package banner

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/ads.yaml
var defaultCatalogYAML []byte

// ErrEmptyCatalog is returned when a catalog holds no promos.
var ErrEmptyCatalog = errors.New("banner: catalog is empty")

// Ad is a single promo.
type Ad struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Link  string `yaml:"link"`
}

type catalog struct {
	Ads []Ad `yaml:"ads"`
}

// Source loads the promo catalog.
type Source interface {
	Load(ctx context.Context) ([]Ad, error)
}

// NewSource returns a file source for path, or the embedded catalog when
// path is empty.
func NewSource(path string) Source {
	if path == "" {
		return EmbeddedSource{}
	}
	return FileSource{Path: path}
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// Load parses the embedded catalog.
func (EmbeddedSource) Load(ctx context.Context) ([]Ad, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseCatalog(defaultCatalogYAML)
}

// FileSource reads a catalog from disk.
type FileSource struct {
	Path string
}

// Load reads and parses the catalog file.
func (s FileSource) Load(ctx context.Context) ([]Ad, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("banner: read %s: %w", s.Path, err)
	}
	ads, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("banner: %s: %w", s.Path, err)
	}
	return ads, nil
}

// ParseCatalog decodes a catalog, dropping promos without a title.
func ParseCatalog(data []byte) ([]Ad, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	ads := make([]Ad, 0, len(c.Ads))
	for _, ad := range c.Ads {
		if ad.Title == "" {
			continue
		}
		ads = append(ads, ad)
	}
	if len(ads) == 0 {
		return nil, ErrEmptyCatalog
	}
	return ads, nil
}
