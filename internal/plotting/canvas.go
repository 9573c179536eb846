package plotting

import (
	"image/color"

	"github.com/rileyhilliard/glancehist/internal/errors"
)

// Canvas is a drawing surface owned by one caller. It accumulates panels,
// is written with Save, and must be released with Close. A closed canvas
// refuses further saves.
type Canvas struct {
	backend Backend
	fig     *Figure
	closed  bool
}

func newCanvas(backend Backend, layout Layout) *Canvas {
	layout = layout.WithDefaults()
	return &Canvas{
		backend: backend,
		fig: &Figure{
			Width:  layout.Width,
			Height: layout.Height,
			DPI:    layout.DPI,
		},
	}
}

// Row returns the current row, creating the first one on demand.
func (c *Canvas) Row() *Panel {
	if len(c.fig.Rows) == 0 {
		return c.AddRow()
	}
	return c.fig.Rows[len(c.fig.Rows)-1]
}

// AddRow starts a new row below the existing ones and makes it current.
func (c *Canvas) AddRow() *Panel {
	p := &Panel{}
	c.fig.Rows = append(c.fig.Rows, p)
	return p
}

// Rows returns the number of rows.
func (c *Canvas) Rows() int {
	return len(c.fig.Rows)
}

// SetXLabel sets the x-axis label drawn under the last row.
func (c *Canvas) SetXLabel(label string) {
	c.fig.XLabel = label
}

// AddLegend appends a legend swatch.
func (c *Canvas) AddLegend(label string, clr color.Color) {
	c.fig.Legend = append(c.fig.Legend, LegendEntry{Label: label, Color: clr})
}

// Resize sets the figure size in inches.
func (c *Canvas) Resize(width, height float64) {
	c.fig.Width = width
	c.fig.Height = height
}

// Figure exposes the accumulated figure.
func (c *Canvas) Figure() *Figure {
	return c.fig
}

// Save writes the figure as a PNG file at path.
func (c *Canvas) Save(path string) error {
	if c.closed {
		return errors.New(errors.ErrRender,
			"Cannot save a closed canvas",
			"Create a new canvas for each chart")
	}
	if len(c.fig.Rows) == 0 {
		return errors.New(errors.ErrRender,
			"Nothing to draw for "+path,
			"Add at least one row before saving")
	}
	if err := c.backend.Write(c.fig, path); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to save chart "+path,
			"Check the output directory exists and is writable")
	}
	return nil
}

// Close releases the figure. Calling Close more than once is harmless.
func (c *Canvas) Close() {
	c.closed = true
	c.fig = &Figure{}
}

// Closed reports whether Close was called.
func (c *Canvas) Closed() bool {
	return c.closed
}
