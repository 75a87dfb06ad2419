// Package config loads remindex's optional configuration file.
//
// The file lives at $XDG_CONFIG_HOME/remindex/config.yaml (or the
// platform equivalent of os.UserConfigDir). A missing file is not an
// error — every field has a default — but a present file must parse
// and satisfy the embedded CUE schema, so typos fail loudly instead of
// being silently ignored.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// Container overrides the Reminders group container directory.
	Container string `json:"container"`
	// BusyTimeoutMS bounds the read-session busy wait, in milliseconds.
	BusyTimeoutMS int `json:"busy_timeout_ms"`
	// Format is the default output format: text, json, or yaml.
	Format string `json:"format"`
}

// schema constrains the file's shape. The definition is closed, so
// unknown keys are rejected.
const schema = `
#Config: {
	container?:       string
	busy_timeout_ms?: int & >=100 & <=60000
	format?:          "text" | "json" | "yaml"
}
`

// fileConfig distinguishes "absent" from "zero" per field.
type fileConfig struct {
	Container     *string `yaml:"container"`
	BusyTimeoutMS *int    `yaml:"busy_timeout_ms"`
	Format        *string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BusyTimeoutMS: 1500,
		Format:        "text",
	}
}

// Load reads the conventional config file location.
func Load() (Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, "remindex", "config.yaml"))
}

// LoadFile reads and validates one config file. A missing file yields
// the defaults with no error; anything else wrong with the file is
// returned to the caller.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if raw == nil {
		return cfg, nil
	}

	if err := validate(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if file.Container != nil {
		cfg.Container = *file.Container
	}
	if file.BusyTimeoutMS != nil {
		cfg.BusyTimeoutMS = *file.BusyTimeoutMS
	}
	if file.Format != nil {
		cfg.Format = *file.Format
	}

	return cfg, nil
}

// validate unifies the raw document with the #Config definition and
// reports any constraint violation or unknown key.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()

	sv := ctx.CompileString(schema)
	if err := sv.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := sv.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup schema: %w", err)
	}

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return err
	}

	unified := def.Unify(doc)
	if err := unified.Err(); err != nil {
		return err
	}
	return unified.Validate()
}
