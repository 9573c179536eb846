package plotting

import (
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dateFormat labels x-axis ticks.
const dateFormat = "15:04:05"

// gonumBackend draws figures with gonum/plot. Multi-row figures are tiled
// vertically with aligned axes.
type gonumBackend struct{}

func (gonumBackend) Name() string { return "gonum" }

// Probe draws an empty plot in memory, which loads the default fonts.
func (gonumBackend) Probe() error {
	p := plot.New()
	img := vgimg.NewWith(vgimg.UseWH(vg.Inch, vg.Inch), vgimg.UseDPI(72))
	p.Draw(draw.New(img))
	return nil
}

func (b gonumBackend) Write(fig *Figure, path string) error {
	rows := make([][]*plot.Plot, len(fig.Rows))
	for i, panel := range fig.Rows {
		p, err := b.panelPlot(panel)
		if err != nil {
			return err
		}
		if i == len(fig.Rows)-1 {
			p.X.Label.Text = fig.XLabel
		}
		if i == 0 {
			addLegend(p, fig.Legend)
		}
		rows[i] = []*plot.Plot{p}
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch),
		vgimg.UseDPI(int(fig.DPI)),
	)
	dc := draw.New(img)

	if len(rows) == 1 {
		rows[0][0].Draw(dc)
	} else {
		tiles := draw.Tiles{
			Rows:      len(rows),
			Cols:      1,
			PadTop:    vg.Points(6),
			PadBottom: vg.Points(6),
			PadLeft:   vg.Points(6),
			PadRight:  vg.Points(12),
			PadY:      vg.Points(18),
		}
		canvases := plot.Align(rows, tiles, dc)
		for i := range rows {
			rows[i][0].Draw(canvases[i][0])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// panelPlot builds one plot from a panel. NaN and infinite samples are left
// out of the line.
func (gonumBackend) panelPlot(panel *Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.Y.Label.Text = panel.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: dateFormat}

	if panel.Grid {
		p.Add(plotter.NewGrid())
	}

	for _, c := range panel.Curves {
		pts := make(plotter.XYs, 0, len(c.Values))
		for i, v := range c.Values {
			if i >= len(c.Dates) {
				break
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(c.Dates[i].Unix()), Y: v})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = curveColor(c.Color)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
	}

	return p, nil
}

// addLegend places the swatches in the upper right corner.
func addLegend(p *plot.Plot, entries []LegendEntry) {
	if len(entries) == 0 {
		return
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.TextStyle.Font.Size = vg.Points(9)
	for _, e := range entries {
		p.Legend.Add(e.Label, swatch{color: curveColor(e.Color)})
	}
}

// swatch is a filled rectangle legend thumbnail.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonXY(pts))
}

func curveColor(c color.Color) color.Color {
	if c == nil {
		return White
	}
	return c
}
