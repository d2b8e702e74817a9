// SPDX-License-Identifier: MIT

// Package config loads and validates walkfeat run configuration.
//
// Required parameters have no implicit defaults: a missing max_walk_length
// is a configuration error, not "10".
package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrConfiguration is matched by every validation failure.
var ErrConfiguration = errors.New("config: invalid configuration")

// Config is the walkfeat.yaml document.
type Config struct {
	// Collections lists collection names in table order.
	Collections []string `yaml:"collections"`
	// Labels maps each collection to its numeric class label.
	Labels map[string]float64 `yaml:"labels"`
	// MaxWalkLength is the closed-walk bound k (>= 2). Required.
	MaxWalkLength int `yaml:"max_walk_length"`
	// NonBacktracking adds the oriented-line-graph closed-walk feature.
	NonBacktracking bool `yaml:"non_backtracking"`
	// DataDir holds one <collection>.yaml/.json file per collection.
	DataDir string `yaml:"data_dir"`
	// CacheDir is the badger directory; empty disables the persistent cache.
	CacheDir string `yaml:"cache_dir"`
	// Workers bounds concurrent matrix processing; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Load reads and decodes path. It does not validate; call Validate after
// applying overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes a YAML document, rejecting unknown keys.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "decode: %v", err)
	}
	return &cfg, nil
}

// Validate checks required fields and cross-field consistency.
func (c *Config) Validate() error {
	switch {
	case c.MaxWalkLength == 0:
		return errors.Wrap(ErrConfiguration, "max_walk_length is required")
	case c.MaxWalkLength < 2:
		return errors.Wrapf(ErrConfiguration, "max_walk_length must be >= 2, got %d", c.MaxWalkLength)
	case len(c.Collections) == 0:
		return errors.Wrap(ErrConfiguration, "collections is required")
	case c.Workers < 0:
		return errors.Wrapf(ErrConfiguration, "workers must be >= 0, got %d", c.Workers)
	}

	seen := make(map[string]bool, len(c.Collections))
	for _, name := range c.Collections {
		if seen[name] {
			return errors.Wrapf(ErrConfiguration, "collection %q listed twice", name)
		}
		seen[name] = true
		if _, ok := c.Labels[name]; !ok {
			return errors.Wrapf(ErrConfiguration, "no label for collection %q", name)
		}
	}

	return nil
}
