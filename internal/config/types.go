package config

import (
	"time"

	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/rileyhilliard/glancehist/internal/plotting"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .glancehist.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// OutputDir is where chart files are written.
	// Supports ~ and variable expansion: ${HOME}, ${USER}, ${PROJECT}.
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`

	// Backend selects the plotting engine: "gonum" or "gochart".
	Backend string `yaml:"backend" mapstructure:"backend"`

	// HistorySize is the number of samples kept per plugin.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// Interval is the time between two samples.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Plugins lists the plugins to sample. Empty means all.
	Plugins []string `yaml:"plugins" mapstructure:"plugins"`

	// Chart sets figure sizes in inches and the output resolution.
	Chart plotting.Layout `yaml:"chart" mapstructure:"chart"`

	// Items replaces the charted items of a plugin.
	Items map[string][]history.Item `yaml:"items,omitempty" mapstructure:"items"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		OutputDir:   "./graphs",
		Backend:     plotting.DefaultBackend,
		HistorySize: history.DefaultHistorySize,
		Interval:    2 * time.Second,
		Plugins: []string{
			"cpu", "load", "mem", "memswap", "network", "diskio", "uptime",
		},
		Chart: plotting.DefaultLayout(),
		Items: make(map[string][]history.Item),
	}
}
