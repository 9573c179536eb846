package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/glancehist/internal/config"
	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/spf13/cobra"
)

// ConfigFlags holds the flags that override config values on graph and record.
type ConfigFlags struct {
	Output   string
	Backend  string
	Interval string
	Plugins  string
	Reset    bool
}

// AddConfigFlags registers --output, --backend, --interval, --plugins and --reset on a command.
func AddConfigFlags(cmd *cobra.Command, flags *ConfigFlags) {
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "directory for chart files (overrides output_dir)")
	cmd.Flags().StringVar(&flags.Backend, "backend", "", "plotting backend: gonum or gochart")
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "time between samples (e.g., 1s, 500ms)")
	cmd.Flags().StringVar(&flags.Plugins, "plugins", "", "comma-separated plugins to sample (default: all configured)")
	cmd.Flags().BoolVar(&flags.Reset, "reset", false, "clear history after rendering")
}

// Apply copies every set flag onto cfg.
func (f ConfigFlags) Apply(cfg *config.Config) error {
	if f.Output != "" {
		cfg.OutputDir = config.ExpandTilde(config.Expand(f.Output))
	}
	if f.Backend != "" {
		cfg.Backend = strings.ToLower(strings.TrimSpace(f.Backend))
	}
	if f.Interval != "" {
		d, err := ParseInterval(f.Interval)
		if err != nil {
			return err
		}
		cfg.Interval = d
	}
	if f.Plugins != "" {
		var plugins []string
		for _, p := range strings.Split(f.Plugins, ",") {
			if p = strings.TrimSpace(p); p != "" {
				plugins = append(plugins, p)
			}
		}
		cfg.Plugins = plugins
	}
	return nil
}

// ParseInterval parses a sampling interval flag.
func ParseInterval(flag string) (time.Duration, error) {
	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 2s, 500ms, or 1m.")
	}
	return duration, nil
}
