// Package config persists fretboard settings as YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edofret/board"
	"github.com/katalvlaran/edofret/geometry"
	"github.com/katalvlaran/edofret/label"
	"github.com/katalvlaran/edofret/pitch"
	"github.com/katalvlaran/edofret/semantics"
)

// FileName is the config file name inside Dir.
const FileName = "config.yaml"

// Config is the on-disk form of board.Settings. Enumerations are stored
// by name so the file stays readable.
type Config struct {
	System     string                   `yaml:"system"`
	Instrument string                   `yaml:"instrument"`
	Frets      int                      `yaml:"frets"`
	DotSize    float64                  `yaml:"dotSize"`
	Root       int                      `yaml:"root"`
	Scale      string                   `yaml:"scale"`
	Chord      string                   `yaml:"chord,omitempty"`
	Mode       string                   `yaml:"mode"`
	Style      string                   `yaml:"style"`
	Accidental string                   `yaml:"accidental"`
	LeftHanded bool                     `yaml:"leftHanded"`
	Strings    []geometry.RawStringMeta `yaml:"strings,omitempty"`
}

// DefaultConfig mirrors board.DefaultSettings.
func DefaultConfig() *Config {
	return FromSettings(board.DefaultSettings())
}

// FromSettings converts settings to their stored form.
func FromSettings(s board.Settings) *Config {
	return &Config{
		System:     s.System,
		Instrument: s.Instrument,
		Frets:      s.Frets,
		DotSize:    s.DotSize,
		Root:       s.Root,
		Scale:      s.Scale,
		Chord:      s.Chord,
		Mode:       s.Mode.String(),
		Style:      s.Style.String(),
		Accidental: s.Accidental.String(),
		LeftHanded: s.LeftHanded,
		Strings:    s.WithStrings(s.Strings).Strings,
	}
}

// Settings parses the stored names back into board.Settings. It does not
// check that ids exist; board.Build does that.
func (c *Config) Settings() (board.Settings, error) {
	mode, err := semantics.ParseMode(c.Mode)
	if err != nil {
		return board.Settings{}, fmt.Errorf("config: %w", err)
	}
	style, err := label.ParseStyle(c.Style)
	if err != nil {
		return board.Settings{}, fmt.Errorf("config: %w", err)
	}
	acc, err := pitch.ParseAccidental(c.Accidental)
	if err != nil {
		return board.Settings{}, fmt.Errorf("config: %w", err)
	}
	return board.DefaultSettings().
		WithSystem(c.System).
		WithInstrument(c.Instrument).
		WithFrets(c.Frets).
		WithDotSize(c.DotSize).
		WithRoot(c.Root).
		WithScale(c.Scale).
		WithChord(c.Chord).
		WithMode(mode).
		WithStyle(style).
		WithAccidental(acc).
		WithLeftHanded(c.LeftHanded).
		WithStrings(c.Strings), nil
}

// Dir returns the per-user config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "edofret"), nil
}

// DefaultPath returns Dir()/FileName.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads path, or returns defaults if it does not exist. Keys missing
// from the file keep their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
