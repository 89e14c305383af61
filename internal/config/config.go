// Package config reads the event monitor's settings file. YAML and TOML are
// both accepted, chosen by file extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/labi-le/xbind/pkg/xdef"
	"gopkg.in/yaml.v2"
)

const (
	BackendXGB  = "xgb"
	BackendXlib = "xlib"
)

var (
	ErrFormat  = errors.New("unsupported config format")
	ErrBackend = errors.New("unknown backend")
)

type Format int

const (
	YAML Format = iota
	TOML
)

type Config struct {
	Display    string   `yaml:"display" toml:"display"`
	Backend    string   `yaml:"backend" toml:"backend"`
	Mask       []string `yaml:"mask" toml:"mask"`
	Types      []string `yaml:"types" toml:"types"`
	Atoms      []string `yaml:"atoms" toml:"atoms"`
	Selections []string `yaml:"selections" toml:"selections"`
	Dedup      bool     `yaml:"dedup" toml:"dedup"`
}

var Default = Config{
	Backend: BackendXGB,
	Mask:    []string{"SubstructureNotify", "PropertyChange"},
	Dedup:   true,
}

// DefaultPath is xbind.yml in the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "xbind.yml")
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, path)
}

// Load reads path over Default. A missing file at the default path is not an
// error; a missing explicit path is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return clone(Default), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data, format)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := clone(Default)

	var err error
	switch format {
	case YAML:
		err = yaml.UnmarshalStrict(data, &cfg)
	case TOML:
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = ErrFormat
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Backend != BackendXGB && c.Backend != BackendXlib {
		return fmt.Errorf("%w %q", ErrBackend, c.Backend)
	}
	if _, err := c.EventMask(); err != nil {
		return err
	}
	if _, err := c.EventTypes(); err != nil {
		return err
	}
	return nil
}

func (c Config) EventMask() (xdef.EventMask, error) {
	return xdef.ParseEventMask(c.Mask)
}

// EventTypes is the event type filter; nil means every type.
func (c Config) EventTypes() ([]xdef.EventType, error) {
	var out []xdef.EventType
	for _, name := range c.Types {
		t, err := xdef.ParseEventType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func clone(c Config) Config {
	c.Mask = slices.Clone(c.Mask)
	c.Types = slices.Clone(c.Types)
	c.Atoms = slices.Clone(c.Atoms)
	c.Selections = slices.Clone(c.Selections)
	return c
}
