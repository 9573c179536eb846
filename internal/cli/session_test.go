package cli

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		unit string
		want string
	}{
		{"percent", 12.345, "%", "12.3%"},
		{"no unit", 1.5, "", "1.50"},
		{"bits", 8000, "bit/s", "8.0 Kbit/s"},
		{"bytes mega", 2500000, "B/s", "2.5 MB/s"},
		{"bytes small", 12, "B/s", "12.0 B/s"},
		{"other unit", 3, "rpm", "3.0 rpm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.v, tt.unit))
		})
	}
}

func TestRenderTrends(t *testing.T) {
	store := history.NewStore(10)
	store.Register("network", []history.Item{{Name: "rx", YUnit: "bit/s"}}, true)
	store.Register("uptime", nil, false)
	store.Register("mem", []history.Item{{Name: "percent", YUnit: "%"}}, true)

	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	store.Push("network", at, map[string]float64{"eth0_rx": 1000, "lo_rx": math.NaN()})
	store.Push("network", at.Add(time.Second), map[string]float64{"eth0_rx": 3000, "lo_rx": math.NaN()})

	out := ansi.Strip(renderTrends(store, 10))

	assert.Contains(t, out, "network/eth0_rx")
	assert.Contains(t, out, "3.0 Kbit/s")
	assert.NotContains(t, out, "lo_rx", "series without values skipped")
	assert.NotContains(t, out, "mem/", "plugin without samples skipped")
	assert.NotContains(t, out, "uptime")
}

func TestNewSpinnerOnBufferIsNotAnimated(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Sampling", &buf)
	s.Start()
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, buf.String())
	s.Success()
	assert.Contains(t, ansi.Strip(buf.String()), "Sampling")
}
