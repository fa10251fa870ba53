// Package config loads the optional shunt.toml user configuration.
//
// Lookup order: shunt.toml in the current directory and its parents, then
// $XDG_CONFIG_HOME/shunt/shunt.toml (falling back to ~/.config). A missing
// file is not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// Config is the decoded shunt.toml.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	History HistoryConfig `toml:"history"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Precision passed to strconv.FormatFloat; -1 keeps the shortest
	// round-tripping form.
	Precision int64 `toml:"precision"`
	// Color is one of auto, on, off.
	Color string `toml:"color"`
}

// HistoryConfig controls the REPL history store.
type HistoryConfig struct {
	MaxEntries int64 `toml:"max_entries"`
	Disabled   bool  `toml:"disabled"`
}

// Default returns the configuration used when no shunt.toml exists.
func Default() Config {
	return Config{
		Output:  OutputConfig{Precision: -1, Color: "auto"},
		History: HistoryConfig{MaxEntries: 500},
	}
}

// Precision narrows the configured precision for strconv.FormatFloat.
func (c Config) Precision() int {
	p, err := safecast.Conv[int](c.Output.Precision)
	if err != nil {
		return -1
	}
	return p
}

// MaxHistoryEntries narrows the configured history cap; non-positive values
// disable trimming.
func (c Config) MaxHistoryEntries() int {
	n, err := safecast.Conv[int](c.History.MaxEntries)
	if err != nil {
		return 0
	}
	return n
}

// find ищет shunt.toml вверх от startDir, затем в XDG-каталоге конфигурации
func find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "shunt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, nil
		}
		base = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(base, "shunt", "shunt.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true, nil
	}
	return "", false, nil
}

// LoadFile decodes one shunt.toml on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return cfg, nil
}

// Load locates and decodes the configuration, returning defaults when no
// file is found. The second result is the path of the loaded file, if any.
func Load(startDir string) (Config, string, error) {
	path, ok, err := find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
