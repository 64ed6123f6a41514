package config

import (
	"encoding/json"
	"fmt"
	"os"

	"capture/game"
	"capture/meta"

	"github.com/adrg/xdg"
	"golang.org/x/exp/slices"
)

var (
	cfgFile = "capture/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Config struct {
	Depth     int         `json:"depth"`
	NoAdjust  bool        `json:"no_adjust"` // Disables stride sampling and material deepening
	Human     bool        `json:"human"`     // Human plays Player2
	Threshold float64     `json:"threshold"` // Node expansions, in millions
	Layout    game.Layout `json:"layout"`
	Record    string      `json:"record"` // Directory for CSV records, empty to disable
	Verbose   bool        `json:"verbose"`
}

func Default() Config {
	return Config{
		Depth:     meta.DEFAULT_DEPTH,
		Threshold: meta.DEFAULT_THRESHOLD,
		Layout:    game.SkirmishLayout,
	}
}

// Load returns the defaults overridden by the user's config file, if any.
func Load() (*Config, error) {
	config := Default()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := ReadFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	return &config, nil
}

func ReadFile(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Depth <= 0 {
		return &InvalidConfig{fmt.Sprintf("search depth must be positive, got %d", c.Depth)}
	}
	if c.Threshold <= 0 {
		return &InvalidConfig{fmt.Sprintf("threshold must be positive, got %g", c.Threshold)}
	}
	if !slices.Contains(game.Layouts, c.Layout) {
		return &InvalidConfig{fmt.Sprintf("unknown layout %q", c.Layout)}
	}
	return nil
}

// Nodes is the threshold as a node count.
func (c *Config) Nodes() int64 {
	return int64(c.Threshold * 1_000_000)
}
