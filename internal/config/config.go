// Package config loads tabsql defaults from a TOML file.
//
// Example file:
//
//	primary_first = false
//	varchar_length = 20
//	max_input_mb = 512
//
// Command-line flags override values from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// dirName is the directory below the user config dir
	dirName = "tabsql"
	// fileName is the config file name
	fileName = "config.toml"

	defaultVarcharLength = 20
	defaultMaxInputMB    = 512
	// maxInputMBLimit is 1 TB; larger values would overflow the byte count
	maxInputMBLimit = 1 << 20
)

// Config holds the conversion defaults.
type Config struct {
	// PrimaryFirst uses the first column as primary key
	PrimaryFirst bool `toml:"primary_first"`
	// VarcharLength is the declared width of string columns
	VarcharLength int `toml:"varchar_length"`
	// MaxInputMB caps the decompressed input size
	MaxInputMB int64 `toml:"max_input_mb"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		PrimaryFirst:  false,
		VarcharLength: defaultVarcharLength,
		MaxInputMB:    defaultMaxInputMB,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tabsql/config.toml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the config file at path on top of Default.
// A missing file is not an error. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.VarcharLength < 1 {
		return fmt.Errorf("varchar_length must be positive, got %d", c.VarcharLength)
	}
	if c.MaxInputMB < 1 {
		return fmt.Errorf("max_input_mb must be positive, got %d", c.MaxInputMB)
	}
	if c.MaxInputMB > maxInputMBLimit {
		return fmt.Errorf("max_input_mb must be at most %d, got %d", maxInputMBLimit, c.MaxInputMB)
	}
	return nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(path, data, 0o600)
}

// Encode writes cfg as TOML to w.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
