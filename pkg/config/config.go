// Package config reads the configuration file of ked.
//
// The file is YAML:
//
//	tab-width: 4
//	sidebar-width: 5
//	mappings:
//	  normal:
//	    - {keys: "<space>w", action: write}
//	  insert:
//	    - {keys: "kj", action: leave-insert}
//
// Unknown fields are errors. Action names are checked when the editor builds
// its keymaps.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"src.ked.sh/pkg/edit"
	"src.ked.sh/pkg/fsutil"
	"src.ked.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[config] ")

// Default values.
const (
	DefaultTabWidth     = 4
	DefaultSidebarWidth = 5
)

// Config is the content of a configuration file.
type Config struct {
	TabWidth     int                     `yaml:"tab-width"`
	SidebarWidth int                     `yaml:"sidebar-width"`
	Mappings     map[string][]MappingDef `yaml:"mappings"`
}

// MappingDef binds a key sequence to an action.
type MappingDef struct {
	Keys   string `yaml:"keys"`
	Action string `yaml:"action"`
}

// Default returns the configuration used when there is no configuration file.
func Default() *Config {
	return &Config{TabWidth: DefaultTabWidth, SidebarWidth: DefaultSidebarWidth}
}

// Parse parses and validates a configuration. Fields missing from the input
// keep their default values.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.TabWidth < 1 || cfg.TabWidth > 16 {
		return fmt.Errorf("tab-width must be between 1 and 16, got %d", cfg.TabWidth)
	}
	if cfg.SidebarWidth < 2 || cfg.SidebarWidth > 10 {
		return fmt.Errorf("sidebar-width must be between 2 and 10, got %d", cfg.SidebarWidth)
	}
	for mode, defs := range cfg.Mappings {
		if _, err := edit.ParseMode(mode); err != nil {
			return fmt.Errorf("mappings: %w", err)
		}
		for i, def := range defs {
			if def.Keys == "" || def.Action == "" {
				return fmt.Errorf("mappings.%s[%d]: keys and action are required", mode, i)
			}
		}
	}
	return nil
}

// Load reads the configuration file at path. If path is empty, the default
// path is used, and a missing file yields the default configuration.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			logger.Println("no default config path:", err)
			return Default(), nil
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg, err := Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Println("loaded config from", path)
	return cfg, nil
}

// DefaultPath returns the default path of the configuration file,
// $XDG_CONFIG_HOME/ked/config.yaml, or ~/.config/ked/config.yaml when
// XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir, err := fsutil.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Options converts the configuration to options of the editor. Mappings of
// each mode keep their order in the file; modes are ordered as normal,
// insert, command.
func (cfg *Config) Options() edit.Options {
	opts := edit.Options{TabWidth: cfg.TabWidth, Sidebar: cfg.SidebarWidth}
	for _, mode := range []edit.Mode{edit.Normal, edit.Insert, edit.Command} {
		for _, def := range cfg.Mappings[mode.String()] {
			opts.Mappings = append(opts.Mappings,
				edit.Mapping{Mode: mode, Keys: def.Keys, Action: def.Action})
		}
	}
	return opts
}
