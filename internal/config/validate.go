package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/glancehist/internal/collector"
	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/rileyhilliard/glancehist/internal/plotting"
	"github.com/rileyhilliard/glancehist/internal/util"
)

// MinInterval is the shortest accepted sampling interval.
const MinInterval = 100 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but glancehist only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade glancehist or lower the version in .glancehist.yaml.")
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errors.New(errors.ErrConfig,
			"output_dir is empty",
			"Set output_dir to the directory charts should go to, like './graphs'.")
	}

	if err := validateBackend(cfg.Backend); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			withHint(util.SuggestSimilar(cfg.Backend, plotting.Backends(), 1),
				"Available backends: "+strings.Join(plotting.Backends(), ", ")))
	}

	if cfg.HistorySize <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_size must be positive, got %d", cfg.HistorySize),
			fmt.Sprintf("The default keeps %d samples per plugin.", DefaultConfig().HistorySize))
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use at least %s, like '2s'.", MinInterval))
	}

	if err := validateChart(cfg.Chart); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'chart' section in your .glancehist.yaml.")
	}

	for _, name := range cfg.Plugins {
		if !collector.IsPlugin(name) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown plugin '%s'", name),
				withHint(util.SuggestSimilar(name, collector.PluginNames(), 2),
					"Available plugins: "+strings.Join(collector.PluginNames(), ", ")))
		}
	}

	for plugin, items := range cfg.Items {
		if err := validateItems(plugin, items); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
				"Check the 'items' section in your .glancehist.yaml.")
		}
	}

	return nil
}

func validateBackend(name string) error {
	for _, b := range plotting.Backends() {
		if b == name {
			return nil
		}
	}
	return fmt.Errorf("backend '%s' isn't supported", name)
}

func validateChart(l plotting.Layout) error {
	if l.Width <= 0 || l.Height <= 0 || l.RowHeight <= 0 {
		return fmt.Errorf("chart sizes must be positive (width %g, height %g, row_height %g)", l.Width, l.Height, l.RowHeight)
	}
	if l.DPI <= 0 {
		return fmt.Errorf("chart dpi must be positive, got %g", l.DPI)
	}
	return nil
}

func validateItems(plugin string, items []history.Item) error {
	if !collector.IsPlugin(plugin) {
		return fmt.Errorf("items given for unknown plugin '%s'", plugin)
	}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("plugin '%s' item %d is missing a name", plugin, i+1)
		}
		if item.Name == history.DateKey {
			return fmt.Errorf("plugin '%s' item %d can't be named '%s'", plugin, i+1, history.DateKey)
		}
		if item.Color != "" {
			if _, err := plotting.ParseColor(item.Color); err != nil {
				return fmt.Errorf("plugin '%s' item '%s' has an invalid color '%s'", plugin, item.Name, item.Color)
			}
		}
	}
	return nil
}

// withHint prefixes a suggestion with a "did you mean" line when there is one.
func withHint(suggestions []string, suggestion string) string {
	if hint := util.DidYouMean(suggestions); hint != "" {
		return hint + " " + suggestion
	}
	return suggestion
}
