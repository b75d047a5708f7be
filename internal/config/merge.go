package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DifficultyTable maps each difficulty to its tuning.
type DifficultyTable map[Difficulty]DifficultyTuning

// CoinTable maps each coin kind to its tuning.
type CoinTable map[string]CoinTuning

// SpawnTable maps each asteroid kind to its spawn window.
type SpawnTable map[string]SpawnWindow

// UnmarshalYAML decodes each named difficulty over its current tuning, so a
// file only has to name the fields it changes.
func (t *DifficultyTable) UnmarshalYAML(n *yaml.Node) error {
	merged, err := mergeMapping(n, *t)
	if err != nil {
		return err
	}
	*t = merged
	return nil
}

// UnmarshalYAML decodes each named coin over its current tuning.
func (t *CoinTable) UnmarshalYAML(n *yaml.Node) error {
	merged, err := mergeMapping(n, *t)
	if err != nil {
		return err
	}
	*t = merged
	return nil
}

// UnmarshalYAML decodes each named asteroid over its current window.
func (t *SpawnTable) UnmarshalYAML(n *yaml.Node) error {
	merged, err := mergeMapping(n, *t)
	if err != nil {
		return err
	}
	*t = merged
	return nil
}

// mergeMapping decodes a YAML mapping into a copy of cur. Each entry starts
// from the value cur already holds for its key.
func mergeMapping[K ~string, V any](n *yaml.Node, cur map[K]V) (map[K]V, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}

	out := make(map[K]V, len(cur))
	for k, v := range cur {
		out[k] = v
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		var key K
		if err := n.Content[i].Decode(&key); err != nil {
			return nil, err
		}
		value := out[key]
		if err := n.Content[i+1].Decode(&value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}
