package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/ui"
)

// DefaultRenderEvery is the default --render-every for record.
const DefaultRenderEvery = 30

// RecordOptions holds options for the record command.
type RecordOptions struct {
	Flags       ConfigFlags
	RenderEvery int
}

// recordCommand samples until ctx is cancelled or the process receives
// SIGINT/SIGTERM, rendering every opts.RenderEvery samples and once more on
// the way out.
func recordCommand(ctx context.Context, opts RecordOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.RenderEvery < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--render-every must be at least 1, got %d", opts.RenderEvery),
			"Pick how many samples to take between two renders, like 30.")
	}

	cfg, err := loadConfig(opts.Flags)
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "Recording every %s to %s, rendering every %d samples (Ctrl-C to stop)\n",
		cfg.Interval, cfg.OutputDir, opts.RenderEvery)

	var renderErr error
	pending := 0
	err = s.collector.Run(ctx, cfg.Interval, 0, func(n int) {
		pending++
		if n%opts.RenderEvery != 0 {
			return
		}
		pending = 0
		if err := s.renderRound(out, n, opts.Flags.Reset); err != nil {
			renderErr = err
			s.log.Warn("Render after sample %d failed: %v", n, err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if pending > 0 {
		if err := s.renderRound(out, -1, false); err != nil {
			return err
		}
	}
	return renderErr
}

// renderRound renders once with a timestamped header. n < 0 marks the final
// render.
func (s *session) renderRound(out io.Writer, n int, reset bool) error {
	label := fmt.Sprintf("Sample %d", n)
	if n < 0 {
		label = "Final render"
	}
	fmt.Fprintf(out, "%s %s\n", ui.TitleStyle().Render(label),
		ui.MutedStyle().Render(time.Now().Format(time.TimeOnly)))

	if _, err := s.render(out); err != nil {
		return err
	}
	if reset {
		s.reset(out)
	}
	return nil
}
