// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/renamerc/pkg/method"
	"gitlab.com/tozd/go/errors"
)

// ErrUnsupportedFormat is returned when no parser handles a config file.
var ErrUnsupportedFormat = errors.Base("unsupported config format")

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// hasExt reports whether filename ends in one of exts, ignoring case
func hasExt(filename string, exts ...string) bool {
	got := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, ext := range exts {
		if got == ext {
			return true
		}
	}
	return false
}

// 📚 Config represents the settings of a rename run
type Config struct {
	Recursive   bool   `json:"recursive,omitempty" yaml:"recursive,omitempty" toml:"recursive,omitempty" hcl:"recursive,optional"`
	Collision   int    `json:"collision,omitempty" yaml:"collision,omitempty" toml:"collision,omitempty" hcl:"collision,optional"`
	Show        bool   `json:"show,omitempty" yaml:"show,omitempty" toml:"show,omitempty" hcl:"show,optional"`
	Ext         string `json:"ext,omitempty" yaml:"ext,omitempty" toml:"ext,omitempty" hcl:"ext,optional"`
	Prefix      string `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty" hcl:"prefix,optional"`
	OutExt      string `json:"out_ext,omitempty" yaml:"out_ext,omitempty" toml:"out_ext,omitempty" hcl:"out_ext,optional"`
	MaxAttempts int    `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty" toml:"max_attempts,omitempty" hcl:"max_attempts,optional"`
	Methods     string `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods,omitempty" hcl:"methods,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	p := GetParser(path)
	if p == nil {
		return nil, errors.WithDetails(ErrUnsupportedFormat, "path", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return cfg, nil
}

// 🔍 Validate checks the configuration and normalises extensions
func (cfg *Config) Validate() error {
	if cfg.Collision < 0 {
		return errors.Errorf("collision must not be negative: %d", cfg.Collision)
	}
	if cfg.MaxAttempts < 0 {
		return errors.Errorf("max_attempts must not be negative: %d", cfg.MaxAttempts)
	}
	if cfg.Methods != "" {
		if _, err := method.Parse(cfg.Methods); err != nil {
			return errors.Errorf("methods: %w", err)
		}
	}

	cfg.Ext = strings.TrimLeft(cfg.Ext, ".")
	cfg.OutExt = strings.TrimLeft(cfg.OutExt, ".")

	return nil
}

// Spec parses Methods. It fails with method.ErrEmptySpec when Methods is empty.
func (cfg *Config) Spec() (method.Spec, error) {
	return method.Parse(cfg.Methods)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("methods=%q recursive=%t collision=%d show=%t ext=%q prefix=%q out_ext=%q max_attempts=%d",
		cfg.Methods, cfg.Recursive, cfg.Collision, cfg.Show, cfg.Ext, cfg.Prefix, cfg.OutExt, cfg.MaxAttempts)
}
