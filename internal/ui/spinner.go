package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
	SpinnerSkipped
)

// Spinner animation frames
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// spinnerTick is the time between two animation frames.
const spinnerTick = 80 * time.Millisecond

// Spinner displays an animated status indicator with a label. When the
// output is not a terminal it stays silent until it finishes, then prints
// a single status line.
type Spinner struct {
	mu           sync.Mutex
	label        string
	state        SpinnerState
	frame        int
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	out          io.Writer
	animated     bool
	running      bool
	lastRendered string
}

// NewSpinner creates a spinner writing to stdout. It animates only when
// stdout is a terminal.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		label:    label,
		state:    SpinnerPending,
		out:      os.Stdout,
		animated: IsTerminal(os.Stdout),
	}
}

// SetOutput redirects the spinner. Animation frames are drawn only when
// animated is true.
func (s *Spinner) SetOutput(w io.Writer, animated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = w
	s.animated = animated
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = SpinnerInProgress
	s.startTime = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	animated := s.animated
	s.mu.Unlock()

	if !animated {
		close(s.doneChan)
		return
	}

	s.render()
	go s.animate()
}

// Stop halts the spinner animation without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan
}

// Success stops the spinner and marks it as successful.
func (s *Spinner) Success() {
	s.finish(SpinnerSuccess)
}

// Fail stops the spinner and marks it as failed.
func (s *Spinner) Fail() {
	s.finish(SpinnerFailed)
}

// Skip stops the spinner and marks it as skipped.
func (s *Spinner) Skip() {
	s.finish(SpinnerSkipped)
}

func (s *Spinner) finish(state SpinnerState) {
	s.Stop()
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.renderFinal()
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the time since the spinner started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Label returns the spinner's label.
func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

// SetLabel updates the spinner's label, e.g. with a sample count.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	colorIndex := (s.frame / 2) % len(GradientColors)
	style := lipgloss.NewStyle().Foreground(GradientColors[colorIndex])
	line := fmt.Sprintf("\r%s %s...", style.Render(spinnerFrames[s.frame]), s.label)

	s.clearLine()
	fmt.Fprint(s.out, line)
	s.lastRendered = line
}

func (s *Spinner) renderFinal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var symbol string
	var style lipgloss.Style

	switch s.state {
	case SpinnerSuccess:
		symbol = SymbolComplete
		style = SuccessStyle()
	case SpinnerFailed:
		symbol = SymbolFail
		style = ErrorStyle()
	case SpinnerSkipped:
		symbol = SymbolSkipped
		style = WarningStyle()
	default:
		symbol = SymbolPending
		style = MutedStyle()
	}

	s.clearLine()
	fmt.Fprintf(s.out, "%s %s %s\n",
		style.Render(symbol),
		s.label,
		MutedStyle().Render(FormatDuration(time.Since(s.startTime))),
	)
	s.lastRendered = ""
}

// clearLine blanks the previously drawn frame. Callers hold s.mu.
func (s *Spinner) clearLine() {
	if s.lastRendered == "" {
		return
	}
	clearLen := len([]rune(s.lastRendered))
	fmt.Fprint(s.out, "\r"+strings.Repeat(" ", clearLen)+"\r")
}

// FormatDuration formats a duration for display (e.g., "0.03s", "1.2s", "2m5s").
func FormatDuration(d time.Duration) string {
	if d >= time.Minute {
		return d.Truncate(time.Second).String()
	}
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
