// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Art ArtConfig `toml:"art"`
}

// ArtConfig maps art-related settings. Pointer fields distinguish
// "unset" from a zero value so flags can win only when given.
type ArtConfig struct {
	Word      *string `toml:"word"`
	Spacing   *int    `toml:"spacing"`
	Intensity *int    `toml:"intensity"`
	Anchor    *string `toml:"anchor"`
	Offset    *int    `toml:"offset"`
	StartDate *string `toml:"start-date"`
	Repo      *string `toml:"repo"`
	Artifact  *string `toml:"artifact"`
	Glyphs    *string `toml:"glyphs"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
