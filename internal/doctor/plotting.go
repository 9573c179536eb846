package doctor

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/glancehist/internal/logger"
	"github.com/rileyhilliard/glancehist/internal/plotting"
)

// BackendCheck probes one plotting backend. Only the configured backend
// failing is an error; the others are reported as warnings.
type BackendCheck struct {
	Backend    string
	Configured bool
}

func (c *BackendCheck) Name() string     { return "backend_" + c.Backend }
func (c *BackendCheck) Category() string { return CategoryPlotting }

func (c *BackendCheck) Run(context.Context) CheckResult {
	capability := plotting.Load(c.Backend, logger.Noop())
	if capability.Available() {
		msg := fmt.Sprintf("%s backend available", c.Backend)
		if c.Configured {
			msg += " (configured)"
		}
		return CheckResult{Name: c.Name(), Status: StatusPass, Message: msg}
	}

	status := StatusWarn
	suggestion := ""
	if c.Configured {
		status = StatusFail
		suggestion = "No charts will be written. Try another backend with --backend."
	}
	return CheckResult{
		Name:       c.Name(),
		Status:     status,
		Message:    fmt.Sprintf("%s backend unavailable: %v", c.Backend, capability.Err()),
		Suggestion: suggestion,
	}
}

func (c *BackendCheck) Fix() error { return nil }

// NewPlottingChecks creates a check for every built-in backend.
func NewPlottingChecks(configured string) []Check {
	var checks []Check
	for _, name := range plotting.Backends() {
		checks = append(checks, &BackendCheck{Backend: name, Configured: name == configured})
	}
	return checks
}
