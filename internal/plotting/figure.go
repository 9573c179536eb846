package plotting

import (
	"image/color"
	"time"
)

// Layout sets chart dimensions in inches and the output resolution.
type Layout struct {
	// Width of every chart.
	Width float64 `yaml:"width" mapstructure:"width"`

	// Height of a single-panel chart.
	Height float64 `yaml:"height" mapstructure:"height"`

	// RowHeight is the height of one row of a multi-row chart.
	RowHeight float64 `yaml:"row_height" mapstructure:"row_height"`

	// DPI is the PNG resolution.
	DPI float64 `yaml:"dpi" mapstructure:"dpi"`
}

// DefaultLayout returns 20x10 inch charts with 5 inch rows at 72 dpi.
func DefaultLayout() Layout {
	return Layout{
		Width:     20,
		Height:    10,
		RowHeight: 5,
		DPI:       72,
	}
}

// WithDefaults fills zero or negative fields from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	def := DefaultLayout()
	if l.Width <= 0 {
		l.Width = def.Width
	}
	if l.Height <= 0 {
		l.Height = def.Height
	}
	if l.RowHeight <= 0 {
		l.RowHeight = def.RowHeight
	}
	if l.DPI <= 0 {
		l.DPI = def.DPI
	}
	return l
}

// Curve is one line: values plotted against dates.
type Curve struct {
	Name   string
	Dates  []time.Time
	Values []float64
	Color  color.Color
}

// Panel is one row of a figure.
type Panel struct {
	Title  string
	YLabel string
	Grid   bool
	Curves []Curve
}

// Add appends a curve to the panel.
func (p *Panel) Add(c Curve) {
	p.Curves = append(p.Curves, c)
}

// LegendEntry is a color swatch with its label.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Figure is everything a backend needs to draw one image.
// The x label goes under the last row and the legend on the first.
type Figure struct {
	Width  float64
	Height float64
	DPI    float64
	XLabel string
	Rows   []*Panel
	Legend []LegendEntry
}

// Pixels returns the image size in pixels.
func (f *Figure) Pixels() (width, height int) {
	return int(f.Width * f.DPI), int(f.Height * f.DPI)
}
