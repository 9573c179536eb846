package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/rileyhilliard/glancehist/internal/errors"
)

// OutputDirCheck verifies charts can be written to Dir.
type OutputDirCheck struct {
	Dir string
}

func (c *OutputDirCheck) Name() string     { return "output_dir" }
func (c *OutputDirCheck) Category() string { return CategoryOutput }

func (c *OutputDirCheck) Run(context.Context) CheckResult {
	info, err := os.Stat(c.Dir)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Output directory %s does not exist yet", c.Dir),
			Suggestion: "It is created on the first render, or now with --fix",
			Fixable:    true,
		}
	}
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Can't read output directory %s: %v", c.Dir, err),
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Output path %s is not a directory", c.Dir),
			Suggestion: "Point output_dir or --output at a directory",
		}
	}

	probe, err := os.CreateTemp(c.Dir, ".glancehist-probe-*")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Output directory %s is not writable", c.Dir),
			Suggestion: "Check the directory permissions",
		}
	}
	probe.Close()
	os.Remove(probe.Name())

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Output directory writable: %s", c.Dir),
	}
}

// Fix creates the output directory.
func (c *OutputDirCheck) Fix() error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			fmt.Sprintf("Can't create output directory %s", c.Dir),
			"Check the path and its permissions")
	}
	return nil
}
