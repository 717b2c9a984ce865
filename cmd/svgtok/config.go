package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig mirrors svgtok.toml, the optional per-project defaults
// file discovered by walking up from the working directory.
type projectConfig struct {
	Output   outputConfig   `toml:"output"`
	Tokenize tokenizeConfig `toml:"tokenize"`
}

type outputConfig struct {
	Format string `toml:"format"`
}

type tokenizeConfig struct {
	Jobs           int `toml:"jobs"`
	MaxDiagnostics int `toml:"max-diagnostics"`
}

func findSvgtokToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "svgtok.toml")
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

// loadProjectConfig reads svgtok.toml if one is discoverable. Every
// section is optional; a missing file returns zero defaults.
func loadProjectConfig(startDir string) (projectConfig, error) {
	var cfg projectConfig
	path, ok, err := findSvgtokToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Output.Format {
	case "", "pretty", "json", "msgpack":
	default:
		return projectConfig{}, fmt.Errorf("%s: invalid output.format %q", path, cfg.Output.Format)
	}
	return cfg, nil
}
