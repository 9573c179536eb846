package plotting

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// goChartBackend draws each row as a separate go-chart image and stacks the
// rows into one PNG.
type goChartBackend struct{}

func (goChartBackend) Name() string { return "gochart" }

// Probe renders a two-point chart in memory.
func (goChartBackend) Probe() error {
	now := time.Now()
	ch := chart.Chart{
		Width:  64,
		Height: 64,
		Series: []chart.Series{chart.TimeSeries{
			XValues: []time.Time{now, now.Add(time.Second)},
			YValues: []float64{0, 1},
		}},
	}
	var buf bytes.Buffer
	return ch.Render(chart.PNG, &buf)
}

func (b goChartBackend) Write(fig *Figure, path string) error {
	width, height := fig.Pixels()
	rowHeight := height / len(fig.Rows)

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	for i, panel := range fig.Rows {
		ch := b.panelChart(panel, width, rowHeight, fig.DPI)
		if len(ch.Series) == 0 {
			continue
		}
		if i == len(fig.Rows)-1 {
			ch.XAxis.Name = fig.XLabel
		}
		if i == 0 && len(fig.Legend) > 0 {
			ch.Elements = []chart.Renderable{chart.Legend(&ch)}
		}

		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return err
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return err
		}
		dst := image.Rect(0, i*rowHeight, width, (i+1)*rowHeight)
		draw.Draw(out, dst, img, img.Bounds().Min, draw.Src)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// panelChart converts a panel to a go-chart chart. A single sample is widened
// to a one second segment and a flat series gets a padded y range, since
// go-chart refuses zero-width ranges.
func (goChartBackend) panelChart(panel *Panel, width, height int, dpi float64) chart.Chart {
	ch := chart.Chart{
		Title:  panel.Title,
		Width:  width,
		Height: height,
		DPI:    dpi,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(dateFormat),
		},
		YAxis: chart.YAxis{
			Name: panel.YLabel,
		},
	}
	if panel.Grid {
		grid := chart.Style{
			StrokeColor: drawing.Color{R: 211, G: 211, B: 211, A: 255},
			StrokeWidth: 1.0,
		}
		ch.XAxis.GridMajorStyle = grid
		ch.YAxis.GridMajorStyle = grid
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, c := range panel.Curves {
		var xs []time.Time
		var ys []float64
		for i, v := range c.Values {
			if i >= len(c.Dates) {
				break
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			xs = append(xs, c.Dates[i])
			ys = append(ys, v)
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(time.Second))
			ys = append(ys, ys[0])
		}

		r, g, b, a := rgba8(c.Color)
		ch.Series = append(ch.Series, chart.TimeSeries{
			Name:    c.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: r, G: g, B: b, A: a},
				StrokeWidth: 2,
			},
		})
	}

	if len(ch.Series) > 0 && minY == maxY {
		ch.YAxis.Range = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	return ch
}
