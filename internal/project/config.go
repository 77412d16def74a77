package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the project configuration file name.
const ConfigFile = "jackal.toml"

// Config holds analyzer settings. All fields are optional in the file;
// zero values fall back to defaults.
type Config struct {
	// SourceExt is the extension of analyzable source files.
	SourceExt string `toml:"source_ext"`
	// OutDir receives artifacts; empty means next to each source file.
	OutDir string `toml:"out_dir"`
	// TokenSuffix is appended to the base name of token artifacts.
	TokenSuffix string `toml:"token_suffix"`
	// Jobs bounds parallel file analysis; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// Cache enables the on-disk artifact cache.
	Cache bool `toml:"cache"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SourceExt:   ".jack",
		TokenSuffix: "T",
	}
}

// fill replaces zero values with defaults.
func (c Config) fill() Config {
	d := Default()
	if c.SourceExt == "" {
		c.SourceExt = d.SourceExt
	}
	if c.TokenSuffix == "" {
		c.TokenSuffix = d.TokenSuffix
	}
	return c
}

// Find walks up from startDir looking for jackal.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFile)
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
	return "", false, nil
}

// Load finds and parses the nearest jackal.toml above startDir. When none
// exists the defaults are returned with found=false.
func Load(startDir string) (Config, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Default(), false, err
	}
	if !ok {
		return Default(), false, nil
	}
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Default(), false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c.fill(), true, nil
}
