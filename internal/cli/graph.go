package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/glancehist/internal/collector"
	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/ui"
	"github.com/rileyhilliard/glancehist/internal/util"
)

// DefaultSamples is the default --samples for graph.
const DefaultSamples = 10

// GraphOptions holds options for the graph command.
type GraphOptions struct {
	Flags   ConfigFlags
	Samples int
}

// graphCommand samples opts.Samples times, renders every plugin's charts and
// prints a summary.
func graphCommand(ctx context.Context, opts GraphOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Samples < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--samples must be at least 1, got %d", opts.Samples),
			"Rate-based plugins need 2 or more samples to have data.")
	}

	cfg, err := loadConfig(opts.Flags)
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	spin := newSpinner(samplingLabel(0, opts.Samples), out)
	spin.Start()
	err = s.collector.Run(ctx, cfg.Interval, opts.Samples, func(n int) {
		spin.SetLabel(samplingLabel(n, opts.Samples))
	})
	if err != nil {
		spin.Fail()
		return err
	}
	spin.Success()

	fmt.Fprintln(out)
	summary := []ui.KeyValue{
		{Key: "Backend", Value: cfg.Backend},
		{Key: "Output", Value: cfg.OutputDir},
		{Key: "Samples", Value: fmt.Sprintf("%d every %s", opts.Samples, cfg.Interval)},
		{Key: "Plugins", Value: pluginList(s.collector.Plugins())},
	}
	if up := s.collector.Uptime(); up > 0 {
		summary = append(summary, ui.KeyValue{Key: "Uptime", Value: up.Truncate(time.Second).String()})
	}
	fmt.Fprint(out, ui.RenderKeyValues(summary))
	if trends := renderTrends(s.store, trendWidth); trends != "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, trends)
	}
	fmt.Fprintln(out)

	res, err := s.render(out)
	if err != nil {
		return err
	}
	if s.renderer.Available() {
		fmt.Fprintf(out, "\n%s Wrote %d chart %s %s\n",
			ui.SuccessStyle().Render(ui.SymbolSuccess),
			res.Count(), util.Pluralize(res.Count(), "file", "files"),
			ui.MutedStyle().Render(ui.FormatDuration(time.Since(start))))
	}

	if opts.Flags.Reset {
		s.reset(out)
	}
	return nil
}

func samplingLabel(n, total int) string {
	return fmt.Sprintf("Sampling %d/%d", n, total)
}

func pluginList(plugins []collector.Plugin) string {
	names := make([]string, len(plugins))
	for i, p := range plugins {
		names[i] = p.Name
	}
	return util.JoinOrNone(names)
}
