// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/tomlx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load returns the config in the given file, starting from the default
// values. Files ending in .yaml or .yml are read as YAML, where keys are
// the lower case field names; all others are read as TOML. Unknown keys
// are an error, and the result is validated.
func Load(filename string) (*Config, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg := New()
	if err := Decode(cfg, f, isYAML(filename)); err != nil {
		return nil, fmt.Errorf("config %q: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", filename, err)
	}
	return cfg, nil
}

// Decode reads into cfg from r, as YAML or TOML, rejecting unknown keys.
// It does not validate.
func Decode(cfg *Config, r io.Reader, asYAML bool) error {
	if asYAML {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if err == io.EOF {
			return nil
		}
		return err
	}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Save writes the config to the given file, as YAML for .yaml and
// .yml files and as TOML otherwise.
func (cfg *Config) Save(filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if isYAML(filename) {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		return os.WriteFile(filename, b, 0666)
	}
	return tomlx.Save(cfg, filename)
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}
