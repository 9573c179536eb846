package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rileyhilliard/glancehist/internal/collector"
	"github.com/rileyhilliard/glancehist/internal/config"
	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/rileyhilliard/glancehist/internal/logger"
	"github.com/rileyhilliard/glancehist/internal/plotting"
	"github.com/rileyhilliard/glancehist/internal/render"
	"github.com/rileyhilliard/glancehist/internal/ui"
)

// newSource builds the metrics source. Tests replace it with a fake.
var newSource = collector.NewHostSource

// trendWidth is the number of samples shown in a sparkline.
const trendWidth = 30

// session wires the config to a history store, a collector and a renderer.
type session struct {
	cfg       *config.Config
	store     *history.Store
	collector *collector.Collector
	renderer  *render.Renderer
	log       logger.Logger
}

// loadConfig finds and loads the config, applies flag overrides and
// validates the result.
func loadConfig(flags ConfigFlags) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Default().Debug("Using config %s", path)
	}

	if err := flags.Apply(cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession creates the output directory and the components that sample
// and render.
func newSession(cfg *config.Config) (*session, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrOutput,
			fmt.Sprintf("Can't create output directory %s", cfg.OutputDir),
			"Check the path and its permissions, or pick another with --output.")
	}

	store := history.NewStore(cfg.HistorySize)
	coll := collector.New(newSource(), store,
		collector.WithPlugins(collector.SelectPlugins(cfg.Plugins, cfg.Items)))
	engine := plotting.Load(cfg.Backend, logger.NewEnvLogger("[plotting]"))

	return &session{
		cfg:       cfg,
		store:     store,
		collector: coll,
		renderer:  render.New(cfg.OutputDir, engine, render.WithLayout(cfg.Chart)),
		log:       logger.NewEnvLogger("[cli]"),
	}, nil
}

// render draws the charts and prints the written files.
func (s *session) render(out io.Writer) (render.Result, error) {
	if !s.renderer.Available() {
		fmt.Fprintf(out, "%s Charts unavailable, nothing written\n",
			ui.WarningStyle().Render(ui.SymbolSkipped))
		return render.Result{}, nil
	}

	res, err := s.renderer.Render(s.store)
	for _, f := range res.Files {
		fmt.Fprintf(out, "  %s %s\n", ui.MutedStyle().Render(ui.SymbolFile), f)
	}
	return res, err
}

// reset clears the history when charts are available.
func (s *session) reset(out io.Writer) {
	if s.renderer.Reset(s.store) {
		fmt.Fprintf(out, "%s History cleared\n", ui.SuccessStyle().Render(ui.SymbolSuccess))
	}
}

// renderTrends prints a sparkline and the latest value of every charted
// series, in plugin and item order.
func renderTrends(store *history.Store, width int) string {
	var b strings.Builder
	for _, plugin := range store.Plugins() {
		table := store.History(plugin)
		if table == nil || table.Len() == 0 {
			continue
		}
		for _, item := range store.Items(plugin) {
			res := render.Resolve(table, item)
			for _, key := range res.Keys {
				latest, ok := table.Latest(key)
				if !ok {
					continue
				}
				fmt.Fprintf(&b, "  %s %-28s %s %s\n",
					ui.Swatch(render.ItemColor(item)),
					plugin+"/"+key,
					ui.RenderSparkline(table.Values(key), width, item.YUnit == "%"),
					formatValue(latest, item.YUnit))
			}
		}
	}
	return b.String()
}

// formatValue prints a metric value with its unit, scaling byte and bit
// rates to K/M/G.
func formatValue(v float64, unit string) string {
	switch unit {
	case "B/s", "bit/s":
		prefixes := []string{"", "K", "M", "G", "T"}
		i := 0
		for math.Abs(v) >= 1000 && i < len(prefixes)-1 {
			v /= 1000
			i++
		}
		return fmt.Sprintf("%.1f %s%s", v, prefixes[i], unit)
	case "":
		return fmt.Sprintf("%.2f", v)
	case "%":
		return fmt.Sprintf("%.1f%%", v)
	default:
		return fmt.Sprintf("%.1f %s", v, unit)
	}
}

// newSpinner creates a spinner on out that animates only on a terminal.
func newSpinner(label string, out io.Writer) *ui.Spinner {
	s := ui.NewSpinner(label)
	f, ok := out.(*os.File)
	s.SetOutput(out, ok && ui.IsTerminal(f))
	return s
}
