// chart/chart.go
// Package: chart
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mwiater/mcpreport/report"
)

// ErrUnavailable is returned by renderers that cannot produce a chart.
var ErrUnavailable = errors.New("chart rendering unavailable")

// Renderer turns a run's averaged metrics into a chart image.
// Rendering is best effort: callers treat any error as "skip the
// chart", never as a reason to fail the report.
type Renderer interface {
	Render(run *report.Run, path string) error
}

// Noop is the fallback renderer used when charting is disabled.
type Noop struct{}

// Render always reports ErrUnavailable without touching the filesystem.
func (Noop) Render(*report.Run, string) error {
	return ErrUnavailable
}

// Grid renders a 2x2 grid of grouped bar charts: one subplot per
// metric, one with/without bar pair per model, each bar labeled with
// its value.
type Grid struct{}

var (
	withColor    = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 255}
	withoutColor = color.RGBA{R: 0xff, G: 0x57, B: 0x22, A: 255}
)

// metricTitles maps each metric to its subplot title.
var metricTitles = map[report.Metric]string{
	report.MetricCost:   "Cost ($)",
	report.MetricTime:   "Time (s)",
	report.MetricTurns:  "Turns",
	report.MetricTokens: "Tokens",
}

// Render writes the comparison chart PNG to path.
func (Grid) Render(run *report.Run, path string) error {
	avgs := report.Averages(run)
	models := run.Meta.Models

	names := make([]string, len(models))
	for i, m := range models {
		names[i] = report.Title(m)
	}

	var plots [2][2]*plot.Plot
	for i, metric := range report.Metrics {
		p, err := metricPlot(metric, models, names, avgs)
		if err != nil {
			return err
		}
		plots[i/2][i%2] = p
	}

	img := vgimg.NewWith(vgimg.UseWH(12*vg.Inch, 8*vg.Inch), vgimg.UseDPI(150))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 2,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	rows := [][]*plot.Plot{plots[0][:], plots[1][:]}
	canvases := plot.Align(rows, tiles, dc)
	for i := range rows {
		for j := range rows[i] {
			rows[i][j].Draw(canvases[i][j])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create chart file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("could not encode chart: %w", err)
	}
	return f.Close()
}

// metricPlot builds one subplot: a with/without bar pair per model.
func metricPlot(metric report.Metric, models, names []string, avgs report.ModelAverages) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = metricTitles[metric]
	p.Y.Min = 0

	withVals := make(plotter.Values, len(models))
	withoutVals := make(plotter.Values, len(models))
	for i, m := range models {
		withVals[i] = avgs[m][report.WithMCP][metric]
		withoutVals[i] = avgs[m][report.WithoutMCP][metric]
	}

	w := vg.Points(20)

	withBars, err := plotter.NewBarChart(withVals, w)
	if err != nil {
		return nil, fmt.Errorf("could not build %s bars: %w", metric, err)
	}
	withBars.Color = withColor
	withBars.LineStyle.Width = 0
	withBars.Offset = -w / 2

	withoutBars, err := plotter.NewBarChart(withoutVals, w)
	if err != nil {
		return nil, fmt.Errorf("could not build %s bars: %w", metric, err)
	}
	withoutBars.Color = withoutColor
	withoutBars.LineStyle.Width = 0
	withoutBars.Offset = w / 2

	p.Add(withBars, withoutBars)
	p.Legend.Add("With MCP", withBars)
	p.Legend.Add("Without MCP", withoutBars)
	p.Legend.Top = true
	p.NominalX(names...)

	labels, err := barLabels(metric, withVals, withoutVals)
	if err != nil {
		return nil, fmt.Errorf("could not build %s labels: %w", metric, err)
	}
	p.Add(labels)

	return p, nil
}

// barLabels places a formatted value above every nonzero bar. Zero
// bars (a mode with no parsable samples) stay unlabeled.
func barLabels(metric report.Metric, with, without plotter.Values) (*plotter.Labels, error) {
	var xys plotter.XYs
	var texts []string
	for i, v := range with {
		if v > 0 {
			xys = append(xys, plotter.XY{X: float64(i) - 0.18, Y: v})
			texts = append(texts, metricLabel(metric, v))
		}
	}
	for i, v := range without {
		if v > 0 {
			xys = append(xys, plotter.XY{X: float64(i) + 0.18, Y: v})
			texts = append(texts, metricLabel(metric, v))
		}
	}
	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
}

// metricLabel formats a bar value the way the metric's table column
// does: currency for cost, one decimal for time, thousands otherwise.
func metricLabel(metric report.Metric, v float64) string {
	switch metric {
	case report.MetricCost:
		return fmt.Sprintf("$%.2f", v)
	case report.MetricTime:
		return fmt.Sprintf("%.1f", v)
	default:
		return report.Thousands(int64(math.Round(v)))
	}
}
