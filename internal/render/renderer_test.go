package render

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	ghErrors "github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/rileyhilliard/glancehist/internal/logger"
	"github.com/rileyhilliard/glancehist/internal/plotting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBackend keeps every figure it is asked to write.
type recordingBackend struct {
	figures map[string]*plotting.Figure
	order   []string
	failOn  string
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{figures: make(map[string]*plotting.Figure)}
}

func (b *recordingBackend) Name() string { return "recording" }
func (b *recordingBackend) Probe() error { return nil }

func (b *recordingBackend) Write(fig *plotting.Figure, path string) error {
	if b.failOn != "" && filepath.Base(path) == b.failOn {
		return errors.New("permission denied")
	}
	b.figures[filepath.Base(path)] = fig
	b.order = append(b.order, filepath.Base(path))
	return nil
}

// fakeRegistry is an in-memory registry that records resets.
type fakeRegistry struct {
	plugins []string
	tables  map[string]*history.Table
	items   map[string][]history.Item
	resets  []string
}

func (f *fakeRegistry) Plugins() []string                    { return f.plugins }
func (f *fakeRegistry) History(plugin string) *history.Table { return f.tables[plugin] }
func (f *fakeRegistry) Items(plugin string) []history.Item   { return f.items[plugin] }
func (f *fakeRegistry) ResetHistory(plugin string)           { f.resets = append(f.resets, plugin) }

func cpuRegistry(t *testing.T) *fakeRegistry {
	return &fakeRegistry{
		plugins: []string{"cpu"},
		tables: map[string]*history.Table{
			"cpu": mustTable(t, 2, map[string][]float64{"user": {10, 20}, "idle": {90, 80}}),
		},
		items: map[string][]history.Item{
			"cpu": {{Name: "user", Color: "#FF0000"}, {Name: "idle"}},
		},
	}
}

func networkRegistry(t *testing.T) *fakeRegistry {
	return &fakeRegistry{
		plugins: []string{"network"},
		tables: map[string]*history.Table{
			"network": mustTable(t, 1, map[string][]float64{"eth1_tx": {7}, "eth0_tx": {5}}),
		},
		items: map[string][]history.Item{
			"network": {{Name: "tx", YUnit: "bit/s"}},
		},
	}
}

func newTestRenderer(dir string, backend plotting.Backend) *Renderer {
	return New(dir, plotting.NewCapability(backend), WithLogger(logger.Noop()))
}

func TestRenderExactMatchScenario(t *testing.T) {
	backend := newRecordingBackend()
	r := newTestRenderer("/out", backend)

	res, err := r.Render(cpuRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Count())
	assert.Equal(t, []string{"/out/glances_cpu.png"}, res.Files)

	fig := backend.figures["glances_cpu.png"]
	require.NotNil(t, fig)
	require.Len(t, fig.Rows, 1)

	row := fig.Rows[0]
	assert.Equal(t, "Cpu", row.Title)
	assert.True(t, row.Grid)
	require.Len(t, row.Curves, 2)
	assert.Equal(t, "user", row.Curves[0].Name)
	assert.Equal(t, []float64{10, 20}, row.Curves[0].Values)
	assert.Equal(t, "idle", row.Curves[1].Name)
	assert.Len(t, row.Curves[1].Dates, 2)

	assert.Equal(t, "Date", fig.XLabel)
	assert.Equal(t, 20.0, fig.Width)
	assert.Equal(t, 10.0, fig.Height)

	require.Len(t, fig.Legend, 2)
	assert.Equal(t, "user", fig.Legend[0].Label)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, toRGBA(fig.Legend[0].Color))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, toRGBA(fig.Legend[1].Color), "missing color defaults to white")
}

func TestRenderFamilyMatchScenario(t *testing.T) {
	backend := newRecordingBackend()
	r := newTestRenderer("/out", backend)

	res, err := r.Render(networkRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"/out/glances_network_tx.png"}, res.Files)
	_, sharedWritten := backend.figures["glances_network.png"]
	assert.False(t, sharedWritten, "no exact match means no shared chart")

	fig := backend.figures["glances_network_tx.png"]
	require.NotNil(t, fig)
	require.Len(t, fig.Rows, 2)

	assert.Equal(t, "Network tx", fig.Rows[0].Title)
	assert.Empty(t, fig.Rows[1].Title)
	assert.Equal(t, "eth0 (bit/s)", fig.Rows[0].YLabel)
	assert.Equal(t, "eth1 (bit/s)", fig.Rows[1].YLabel)
	assert.Equal(t, []float64{5}, fig.Rows[0].Curves[0].Values)
	assert.Equal(t, []float64{7}, fig.Rows[1].Curves[0].Values)
	assert.Equal(t, "Date", fig.XLabel)
	assert.Equal(t, 10.0, fig.Height, "height scales with row count")
	assert.Empty(t, fig.Legend)
}

func TestRenderMixedPlugin(t *testing.T) {
	backend := newRecordingBackend()
	r := newTestRenderer("/out", backend)

	reg := &fakeRegistry{
		plugins: []string{"diskio"},
		tables: map[string]*history.Table{
			"diskio": mustTable(t, 2, map[string][]float64{
				"sda_read_bytes":  {1, 2},
				"sdb_read_bytes":  {3, 4},
				"sda_write_bytes": {5, 6},
				"total":           {9, 9},
			}),
		},
		items: map[string][]history.Item{
			"diskio": {
				{Name: "read_bytes", Color: "#00FF00"},
				{Name: "total", YUnit: "B/s"},
				{Name: "write_bytes"},
				{Name: "missing"},
			},
		},
	}

	res, err := r.Render(reg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/out/glances_diskio_read_bytes.png",
		"/out/glances_diskio_write_bytes.png",
		"/out/glances_diskio.png",
	}, res.Files, "family charts are saved as met, the shared chart last")

	shared := backend.figures["glances_diskio.png"]
	require.NotNil(t, shared)
	require.Len(t, shared.Rows[0].Curves, 1, "family items never add to the shared chart")
	assert.Equal(t, " (B/s)", shared.Rows[0].YLabel)

	read := backend.figures["glances_diskio_read_bytes.png"]
	require.Len(t, read.Rows, 2)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, toRGBA(read.Rows[1].Curves[0].Color), "rows share the item color")
}

func TestRenderSkipsPluginsWithoutHistory(t *testing.T) {
	backend := newRecordingBackend()
	r := newTestRenderer("/out", backend)

	reg := cpuRegistry(t)
	reg.plugins = []string{"uptime", "cpu", "load"}
	reg.items["uptime"] = []history.Item{{Name: "seconds"}}
	reg.tables["load"] = mustTable(t, 0, nil)
	reg.items["load"] = []history.Item{{Name: "min1"}}

	res, err := r.Render(reg)
	require.NoError(t, err)
	assert.Equal(t, []string{"/out/glances_cpu.png"}, res.Files)
}

func TestRenderIdempotent(t *testing.T) {
	backend := newRecordingBackend()
	r := newTestRenderer("/out", backend)
	reg := cpuRegistry(t)
	reg.plugins = append(reg.plugins, "network")
	net := networkRegistry(t)
	reg.tables["network"] = net.tables["network"]
	reg.items["network"] = net.items["network"]

	first, err := r.Render(reg)
	require.NoError(t, err)
	second, err := r.Render(reg)
	require.NoError(t, err)

	assert.Equal(t, 2, first.Count())
	assert.Equal(t, first, second)
	assert.Len(t, backend.figures, 2, "second pass overwrites the same names")
}

func TestRenderUnavailable(t *testing.T) {
	reg := cpuRegistry(t)
	r := New("/out", plotting.Unavailable(nil), WithLogger(logger.Noop()))

	assert.False(t, r.Available())

	res, err := r.Render(reg)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count())

	assert.False(t, r.Reset(reg))
	assert.Empty(t, reg.resets)

	assert.False(t, New("/out", nil).Available())
}

func TestRenderSaveFailureStopsPass(t *testing.T) {
	backend := newRecordingBackend()
	backend.failOn = "glances_cpu.png"
	r := newTestRenderer("/out", backend)

	reg := networkRegistry(t)
	reg.plugins = []string{"network", "cpu", "mem"}
	cpu := cpuRegistry(t)
	reg.tables["cpu"] = cpu.tables["cpu"]
	reg.items["cpu"] = cpu.items["cpu"]
	reg.tables["mem"] = mustTable(t, 1, map[string][]float64{"percent": {50}})
	reg.items["mem"] = []history.Item{{Name: "percent"}}

	res, err := r.Render(reg)
	require.Error(t, err)
	assert.True(t, ghErrors.IsCode(err, ghErrors.ErrRender))
	assert.Equal(t, []string{"/out/glances_network_tx.png"}, res.Files)
	_, memWritten := backend.figures["glances_mem.png"]
	assert.False(t, memWritten, "plugins after the failure are not rendered")
}

func TestReset(t *testing.T) {
	reg := cpuRegistry(t)
	reg.plugins = []string{"uptime", "cpu"}

	r := newTestRenderer("/out", newRecordingBackend())
	assert.True(t, r.Reset(reg))
	assert.Equal(t, []string{"cpu"}, reg.resets, "plugins without history are untouched")
}

func TestResetStore(t *testing.T) {
	store := history.NewStore(10)
	store.Register("cpu", []history.Item{{Name: "user"}}, true)
	store.Register("uptime", nil, false)
	store.Push("cpu", time.Now(), map[string]float64{"user": 5})

	r := newTestRenderer("/out", newRecordingBackend())
	require.True(t, r.Reset(store))

	assert.Equal(t, 0, store.Count("cpu"))
	res, err := r.Render(store)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count(), "nothing to draw after reset")
}

func TestRendererOptions(t *testing.T) {
	backend := newRecordingBackend()
	log := logger.NewBufferLogger()
	r := New("/charts", plotting.NewCapability(backend),
		WithLogger(log),
		WithLayout(plotting.Layout{Width: 8, Height: 4, RowHeight: 2}),
	)

	assert.Equal(t, "/charts", r.OutputDir())

	_, err := r.Render(networkRegistry(t))
	require.NoError(t, err)

	fig := backend.figures["glances_network_tx.png"]
	require.NotNil(t, fig)
	assert.Equal(t, 8.0, fig.Width)
	assert.Equal(t, 4.0, fig.Height)
	assert.Equal(t, 72.0, fig.DPI)
	assert.True(t, log.HasLevel("debug"))
}

func TestRenderWritesPNGFiles(t *testing.T) {
	for _, backend := range plotting.Backends() {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			engine := plotting.Load(backend, logger.Noop())
			require.True(t, engine.Available())

			r := New(dir, engine,
				WithLogger(logger.Noop()),
				WithLayout(plotting.Layout{Width: 6, Height: 4, RowHeight: 3, DPI: 50}),
			)

			reg := cpuRegistry(t)
			reg.plugins = append(reg.plugins, "network")
			net := networkRegistry(t)
			reg.tables["network"] = net.tables["network"]
			reg.items["network"] = net.items["network"]

			res, err := r.Render(reg)
			require.NoError(t, err)
			assert.Equal(t, 2, res.Count())

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			sort.Strings(names)
			assert.Equal(t, []string{"glances_cpu.png", "glances_network_tx.png"}, names)
		})
	}
}

func TestRenderMissingOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	r := New(dir, plotting.Load("gonum", logger.Noop()), WithLogger(logger.Noop()))

	res, err := r.Render(cpuRegistry(t))
	require.Error(t, err)
	assert.Equal(t, 0, res.Count())
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
