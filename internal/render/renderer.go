package render

import (
	"path/filepath"

	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/rileyhilliard/glancehist/internal/logger"
	"github.com/rileyhilliard/glancehist/internal/plotting"
	"github.com/rileyhilliard/glancehist/internal/util"
)

// xLabel is the x-axis label of every chart.
const xLabel = "Date"

// Registry supplies the plugins and their history to the renderer.
type Registry interface {
	// Plugins lists plugin names in display order.
	Plugins() []string

	// History returns a plugin's table, or nil when it keeps no history.
	History(plugin string) *history.Table

	// Items lists the metrics a plugin wants charted, in order.
	Items(plugin string) []history.Item

	// ResetHistory clears a plugin's recorded samples.
	ResetHistory(plugin string)
}

// Result lists the chart files written by one Render call.
type Result struct {
	Files []string
}

// Count returns the number of files written.
func (r Result) Count() int {
	return len(r.Files)
}

// Renderer draws every plugin's history into PNG files under one directory.
// It keeps no state between calls; callers must not run Render and Reset
// concurrently on the same registry.
type Renderer struct {
	outputDir string
	engine    *plotting.Capability
	layout    plotting.Layout
	log       logger.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. The default logs with the "[render]" prefix.
func WithLogger(l logger.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithLayout sets chart sizes.
func WithLayout(l plotting.Layout) Option {
	return func(r *Renderer) {
		r.layout = l.WithDefaults()
	}
}

// New creates a renderer writing into outputDir with the given plotting engine.
func New(outputDir string, engine *plotting.Capability, opts ...Option) *Renderer {
	r := &Renderer{
		outputDir: outputDir,
		engine:    engine,
		layout:    plotting.DefaultLayout(),
		log:       logger.NewEnvLogger("[render]"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OutputDir returns the directory charts are written to.
func (r *Renderer) OutputDir() string {
	return r.outputDir
}

// Available reports whether charts can be drawn.
func (r *Renderer) Available() bool {
	return r.engine.Available()
}

// Reset clears the history of every plugin that has one. It returns false
// without touching the registry when charts are unavailable.
func (r *Renderer) Reset(reg Registry) bool {
	if !r.Available() {
		return false
	}
	for _, plugin := range reg.Plugins() {
		if reg.History(plugin) != nil {
			r.log.Debug("Reset history: %s", plugin)
			reg.ResetHistory(plugin)
		}
	}
	return true
}

// Render draws every plugin's charts. Items matching a series key exactly
// share one chart per plugin (glances_<plugin>.png); items matching a family
// of "<prefix>_<item>" keys get a chart of their own with one row per key
// (glances_<plugin>_<item>.png). Items with no data are skipped.
//
// When charts are unavailable Render does nothing. A failed save stops the
// pass; the result still lists the files written before the failure.
func (r *Renderer) Render(reg Registry) (Result, error) {
	var res Result
	if !r.Available() {
		return res, nil
	}

	for _, plugin := range reg.Plugins() {
		files, err := r.renderPlugin(reg, plugin)
		res.Files = append(res.Files, files...)
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

func (r *Renderer) renderPlugin(reg Registry, plugin string) ([]string, error) {
	table := reg.History(plugin)
	if table == nil {
		r.log.Debug("No history for %s", plugin)
		return nil, nil
	}

	shared := r.engine.NewCanvas(r.layout)
	defer shared.Close()

	var files []string
	curves := 0

	for _, item := range reg.Items(plugin) {
		res := Resolve(table, item)
		switch res.Kind {
		case MatchExact:
			r.log.Debug("Generate graph: %s %s", plugin, item.Name)
			curves++
			r.addSharedCurve(shared, table, item)
			if curves == 1 {
				shared.Row().Title = util.Capitalize(plugin)
			}

		case MatchFamily:
			r.log.Debug("Generate graphs: %s %v", plugin, res.Keys)
			path, err := r.renderFamily(plugin, table, item, res.Keys)
			if err != nil {
				return files, err
			}
			files = append(files, path)

		default:
			r.log.Debug("No data yet for %s %s", plugin, item.Name)
		}
	}

	if curves == 0 {
		return files, nil
	}

	shared.Resize(r.layout.Width, r.layout.Height)
	shared.SetXLabel(xLabel)
	path := filepath.Join(r.outputDir, SharedChartName(plugin))
	if err := shared.Save(path); err != nil {
		return files, err
	}
	return append(files, path), nil
}

// addSharedCurve adds one item's series to the plugin chart. The y label
// follows the most recent item, as the chart has a single y axis.
func (r *Renderer) addSharedCurve(cv *plotting.Canvas, table *history.Table, item history.Item) {
	clr := plotting.ColorOr(ItemColor(item), plotting.White)

	row := cv.Row()
	row.Grid = true
	row.YLabel = YLabel(item, "")
	row.Add(plotting.Curve{
		Name:   ItemLegend(item),
		Dates:  table.Dates(),
		Values: table.Values(item.Name),
		Color:  clr,
	})
	cv.AddLegend(ItemLegend(item), clr)
}

// renderFamily draws one row per key on a dedicated canvas and saves it.
func (r *Renderer) renderFamily(plugin string, table *history.Table, item history.Item, keys []string) (string, error) {
	cv := r.engine.NewCanvas(r.layout)
	defer cv.Close()

	clr := plotting.ColorOr(ItemColor(item), plotting.White)

	for i, key := range keys {
		row := cv.AddRow()
		row.Grid = true
		row.YLabel = YLabel(item, key)
		row.Add(plotting.Curve{
			Name:   key,
			Dates:  table.Dates(),
			Values: table.Values(key),
			Color:  clr,
		})
		if i == 0 {
			row.Title = util.Capitalize(plugin) + " " + item.Name
		}
	}

	cv.Resize(r.layout.Width, r.layout.RowHeight*float64(len(keys)))
	cv.SetXLabel(xLabel)

	path := filepath.Join(r.outputDir, FamilyChartName(plugin, item.Name))
	if err := cv.Save(path); err != nil {
		return "", err
	}
	return path, nil
}
