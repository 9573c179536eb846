package plotting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/logger"
)

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "gonum"

// Backend draws figures to PNG files.
type Backend interface {
	// Name identifies the backend in config and logs.
	Name() string

	// Probe checks the backend can draw at all.
	Probe() error

	// Write draws fig and saves it as a PNG at path.
	Write(fig *Figure, path string) error
}

var backends = map[string]func() Backend{
	"gonum":   func() Backend { return gonumBackend{} },
	"gochart": func() Backend { return goChartBackend{} },
}

// Backends returns the names of the built-in backends.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Capability is the plotting engine handed to the renderer. An unavailable
// capability keeps the reason it failed to load; callers degrade to no-ops
// instead of failing.
type Capability struct {
	backend Backend
	err     error
}

// Load resolves a backend by name and probes it once. A failure is logged as
// a single warning and produces an unavailable capability.
func Load(name string, log logger.Logger) *Capability {
	if log == nil {
		log = logger.Noop()
	}
	if name == "" {
		name = DefaultBackend
	}

	factory, ok := backends[strings.ToLower(name)]
	if !ok {
		c := Unavailable(errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown plotting backend '%s'", name),
			"Use one of: "+strings.Join(Backends(), ", ")))
		log.Warn("Can not load plotting backend %q, graphs disabled", name)
		return c
	}

	c := NewCapability(factory())
	if !c.Available() {
		log.Warn("Can not load plotting backend %q, graphs disabled: %v", name, c.err)
		return c
	}
	log.Info("Load plotting backend %s", c.Name())
	return c
}

// NewCapability probes b and wraps it.
func NewCapability(b Backend) *Capability {
	c := &Capability{backend: b}
	if err := probe(b); err != nil {
		c.err = err
	}
	return c
}

// Unavailable returns a capability that never draws.
func Unavailable(reason error) *Capability {
	if reason == nil {
		reason = errors.New(errors.ErrRender, "Plotting is not available", "")
	}
	return &Capability{err: reason}
}

// Available reports whether charts can be drawn.
func (c *Capability) Available() bool {
	return c != nil && c.backend != nil && c.err == nil
}

// Err returns why the capability is unavailable, or nil.
func (c *Capability) Err() error {
	if c == nil {
		return errors.New(errors.ErrRender, "Plotting is not available", "")
	}
	return c.err
}

// Name returns the backend name, or "none" when unavailable.
func (c *Capability) Name() string {
	if c == nil || c.backend == nil {
		return "none"
	}
	return c.backend.Name()
}

// NewCanvas creates an empty canvas sized by layout. It returns nil when the
// capability is unavailable.
func (c *Capability) NewCanvas(layout Layout) *Canvas {
	if !c.Available() {
		return nil
	}
	return newCanvas(c.backend, layout)
}

// probe runs b.Probe, turning a panic inside the drawing library into an error.
func probe(b Backend) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend %s panicked: %v", b.Name(), r)
		}
	}()
	return b.Probe()
}
