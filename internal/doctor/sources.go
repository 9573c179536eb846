package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/glancehist/internal/collector"
	"github.com/rileyhilliard/glancehist/internal/errors"
)

// sourceTimeout bounds a single source read.
const sourceTimeout = 5 * time.Second

// SourceCheck reads a plugin's metrics once from the host.
type SourceCheck struct {
	Plugin string
	Source collector.Source
}

func (c *SourceCheck) Name() string     { return "source_" + c.Plugin }
func (c *SourceCheck) Category() string { return CategorySources }

func (c *SourceCheck) Run(ctx context.Context) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	detail, err := c.read(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s: %v", c.Plugin, err),
			Suggestion: "This plugin is skipped while sampling",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: %s", c.Plugin, detail),
	}
}

func (c *SourceCheck) read(ctx context.Context) (string, error) {
	switch c.Plugin {
	case collector.PluginCPU:
		t, err := c.Source.CPUTimes(ctx)
		return fmt.Sprintf("%.0fs of CPU time", t.Total), err
	case collector.PluginLoad:
		l, err := c.Source.LoadAvg(ctx)
		return fmt.Sprintf("load %.2f %.2f %.2f", l.Min1, l.Min5, l.Min15), err
	case collector.PluginMem:
		p, err := c.Source.MemoryPercent(ctx)
		return fmt.Sprintf("%.1f%% used", p), err
	case collector.PluginMemSwap:
		p, err := c.Source.SwapPercent(ctx)
		return fmt.Sprintf("%.1f%% used", p), err
	case collector.PluginNetwork:
		n, err := c.Source.NetCounters(ctx)
		return fmt.Sprintf("%d interfaces", len(n)), err
	case collector.PluginDiskIO:
		d, err := c.Source.DiskCounters(ctx)
		return fmt.Sprintf("%d disks", len(d)), err
	case collector.PluginUptime:
		u, err := c.Source.Uptime(ctx)
		return fmt.Sprintf("up %s", u.Truncate(time.Second)), err
	default:
		return "", errors.New(errors.ErrCollect, "Unknown plugin "+c.Plugin, "")
	}
}

func (c *SourceCheck) Fix() error { return nil }

// NewSourceChecks creates a check per plugin name.
func NewSourceChecks(src collector.Source, plugins []string) []Check {
	checks := make([]Check, 0, len(plugins))
	for _, p := range plugins {
		checks = append(checks, &SourceCheck{Plugin: p, Source: src})
	}
	return checks
}
