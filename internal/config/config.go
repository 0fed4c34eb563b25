// Package config loads the optional .goscmrc settings file, in the
// teacher's functional-options style (internal/lexer.Option), so
// cmd/goscm can expose the same knobs both as flags and as a project
// config file.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the session-wide settings .goscmrc may override.
type Config struct {
	Prompt    string `yaml:"prompt"`
	Graphics  bool   `yaml:"graphics"`
	CanvasBG  string `yaml:"canvasBackground"`
	SVGWidth  int    `yaml:"svgWidth"`
	SVGHeight int    `yaml:"svgHeight"`
}

// Default returns the built-in configuration used when no .goscmrc is
// present.
func Default() Config {
	return Config{
		Prompt:    "scm> ",
		Graphics:  true,
		CanvasBG:  "white",
		SVGWidth:  600,
		SVGHeight: 600,
	}
}

// Option mutates a Config; Load applies any supplied on top of whatever
// was read from disk.
type Option func(*Config)

// WithPrompt overrides the REPL prompt.
func WithPrompt(prompt string) Option {
	return func(c *Config) { c.Prompt = prompt }
}

// WithGraphics toggles whether turtle-graphics procedures are registered.
func WithGraphics(enabled bool) Option {
	return func(c *Config) { c.Graphics = enabled }
}

// Load reads path (typically ".goscmrc") if it exists and merges it
// over Default, then applies opts. A missing file is not an error —
// the config file is optional (spec.md's ambient configuration layer).
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			for _, opt := range opts {
				opt(&cfg)
			}
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}
