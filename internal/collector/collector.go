package collector

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/rileyhilliard/glancehist/internal/logger"
)

// counterSnapshot holds the previous reading of a set of byte counters.
type counterSnapshot struct {
	at       time.Time
	counters map[string]IOCounter
}

// Collector samples a Source and pushes the values into a history store.
type Collector struct {
	src     Source
	store   *history.Store
	plugins []Plugin
	log     logger.Logger

	mu       sync.Mutex // Protects the previous readings below
	prevCPU  *CPUTimes
	prevNet  *counterSnapshot
	prevDisk *counterSnapshot
	uptime   time.Duration
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger. The default logs with the "[collector]" prefix.
func WithLogger(l logger.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPlugins replaces the sampled plugins. See SelectPlugins.
func WithPlugins(plugins []Plugin) Option {
	return func(c *Collector) {
		c.plugins = plugins
	}
}

// New creates a collector and registers its plugins with the store.
func New(src Source, store *history.Store, opts ...Option) *Collector {
	c := &Collector{
		src:     src,
		store:   store,
		plugins: DefaultPlugins(),
		log:     logger.NewEnvLogger("[collector]"),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, p := range c.plugins {
		store.Register(p.Name, p.Items, p.KeepHistory)
	}
	return c
}

// Plugins returns the sampled plugins in display order.
func (c *Collector) Plugins() []Plugin {
	return c.plugins
}

// Uptime returns the uptime read by the most recent sample.
func (c *Collector) Uptime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uptime
}

// Sample reads every plugin once and records the values at the given time.
// Rate-based plugins (cpu, network, diskio) only record a baseline on their
// first reading. A plugin whose source call fails is skipped for this sample.
func (c *Collector) Sample(ctx context.Context, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.ErrCollect,
			"Sampling cancelled", "")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.plugins {
		values, err := c.read(ctx, p.Name, at)
		if err != nil {
			c.log.Warn("Skipping %s: %v", p.Name, err)
			continue
		}
		if values != nil {
			c.store.Push(p.Name, at, values)
		}
	}
	return nil
}

// read returns the values for one plugin, or nil when there is nothing to
// record yet.
func (c *Collector) read(ctx context.Context, plugin string, at time.Time) (map[string]float64, error) {
	switch plugin {
	case PluginCPU:
		return c.readCPU(ctx)
	case PluginLoad:
		avg, err := c.src.LoadAvg(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]float64{"min1": avg.Min1, "min5": avg.Min5, "min15": avg.Min15}, nil
	case PluginMem:
		pct, err := c.src.MemoryPercent(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]float64{"percent": pct}, nil
	case PluginMemSwap:
		pct, err := c.src.SwapPercent(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]float64{"percent": pct}, nil
	case PluginNetwork:
		counters, err := c.src.NetCounters(ctx)
		if err != nil {
			return nil, err
		}
		return rates(&c.prevNet, counters, at, "_rx", "_tx", 8), nil
	case PluginDiskIO:
		counters, err := c.src.DiskCounters(ctx)
		if err != nil {
			return nil, err
		}
		return rates(&c.prevDisk, counters, at, "_read_bytes", "_write_bytes", 1), nil
	case PluginUptime:
		up, err := c.src.Uptime(ctx)
		if err != nil {
			return nil, err
		}
		c.uptime = up
		return nil, nil
	}
	return nil, nil
}

func (c *Collector) readCPU(ctx context.Context) (map[string]float64, error) {
	cur, err := c.src.CPUTimes(ctx)
	if err != nil {
		return nil, err
	}
	prev := c.prevCPU
	c.prevCPU = &cur
	if prev == nil {
		return nil, nil
	}

	total := cur.Total - prev.Total
	if total <= 0 {
		return nil, nil
	}
	pct := func(now, before float64) float64 {
		d := now - before
		if d < 0 {
			d = 0
		}
		return d / total * 100
	}
	return map[string]float64{
		"user":   pct(cur.User, prev.User),
		"system": pct(cur.System, prev.System),
		"iowait": pct(cur.IOWait, prev.IOWait),
	}, nil
}

// rates turns cumulative byte counters into per-second rates keyed
// "<name><inSuffix>" and "<name><outSuffix>", scaled by factor. The first
// reading of a counter only stores the baseline. A counter that went
// backwards reads as zero.
func rates(prev **counterSnapshot, counters []IOCounter, at time.Time, inSuffix, outSuffix string, factor float64) map[string]float64 {
	cur := &counterSnapshot{at: at, counters: make(map[string]IOCounter, len(counters))}
	for _, ctr := range counters {
		cur.counters[ctr.Name] = ctr
	}

	last := *prev
	*prev = cur
	if last == nil {
		return nil
	}

	secs := at.Sub(last.at).Seconds()
	if secs <= 0 {
		return nil
	}

	values := make(map[string]float64)
	for name, now := range cur.counters {
		before, ok := last.counters[name]
		if !ok {
			continue
		}
		values[name+inSuffix] = delta(now.In, before.In) * factor / secs
		values[name+outSuffix] = delta(now.Out, before.Out) * factor / secs
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func delta(now, before uint64) float64 {
	if now < before {
		return 0
	}
	return float64(now - before)
}

// Run samples immediately and then once per interval. It stops after the
// given number of samples, or never when samples is zero or less, and
// returns nil when ctx is cancelled. onSample, when set, is called after each
// sample with the running count.
func (c *Collector) Run(ctx context.Context, interval time.Duration, samples int, onSample func(n int)) error {
	if interval <= 0 {
		return errors.New(errors.ErrConfig,
			"Sampling interval must be positive",
			"Set interval to a duration such as 2s")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	n := 0
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := c.Sample(ctx, time.Now()); err != nil {
			return nil
		}
		n++
		if onSample != nil {
			onSample(n)
		}
		if samples > 0 && n >= samples {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
