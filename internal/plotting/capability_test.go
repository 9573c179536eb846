package plotting

import (
	"errors"
	"testing"

	ghErrors "github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend records written figures without touching the filesystem.
type stubBackend struct {
	probeErr   error
	probePanic bool
	writeErr   error
	written    []*Figure
	paths      []string
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Probe() error {
	if s.probePanic {
		panic("no fonts")
	}
	return s.probeErr
}

func (s *stubBackend) Write(fig *Figure, path string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.written = append(s.written, fig)
	s.paths = append(s.paths, path)
	return nil
}

func TestBackends(t *testing.T) {
	assert.Equal(t, []string{"gochart", "gonum"}, Backends())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		backend   string
		available bool
		wantName  string
		wantLevel string
	}{
		{"default backend", "", true, "gonum", "info"},
		{"gonum", "gonum", true, "gonum", "info"},
		{"gochart", "gochart", true, "gochart", "info"},
		{"case insensitive", "GoNum", true, "gonum", "info"},
		{"unknown backend", "cairo", false, "none", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.NewBufferLogger()
			c := Load(tt.backend, log)

			assert.Equal(t, tt.available, c.Available())
			assert.Equal(t, tt.wantName, c.Name())
			assert.True(t, log.HasLevel(tt.wantLevel))
			require.Len(t, log.Messages, 1, "load should log exactly once")
		})
	}
}

func TestLoadUnknownBackendError(t *testing.T) {
	c := Load("svg", nil)

	require.Error(t, c.Err())
	assert.True(t, ghErrors.IsCode(c.Err(), ghErrors.ErrConfig))
	assert.Nil(t, c.NewCanvas(DefaultLayout()))
}

func TestNewCapabilityProbe(t *testing.T) {
	t.Run("probe ok", func(t *testing.T) {
		c := NewCapability(&stubBackend{})
		assert.True(t, c.Available())
		assert.NoError(t, c.Err())
		assert.Equal(t, "stub", c.Name())
	})

	t.Run("probe error", func(t *testing.T) {
		c := NewCapability(&stubBackend{probeErr: errors.New("no display")})
		assert.False(t, c.Available())
		assert.EqualError(t, c.Err(), "no display")
	})

	t.Run("probe panic", func(t *testing.T) {
		c := NewCapability(&stubBackend{probePanic: true})
		assert.False(t, c.Available())
		assert.Contains(t, c.Err().Error(), "no fonts")
	})
}

func TestUnavailable(t *testing.T) {
	c := Unavailable(nil)
	assert.False(t, c.Available())
	assert.Error(t, c.Err())
	assert.Equal(t, "none", c.Name())
	assert.Nil(t, c.NewCanvas(DefaultLayout()))

	var nilCap *Capability
	assert.False(t, nilCap.Available())
	assert.Error(t, nilCap.Err())
}
