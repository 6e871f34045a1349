package ui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"pibench/internal/benchmark"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure size of the rendered charts.
const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// PlotPresenter writes one PNG chart per result into dir: absolute error on
// x, runtime on y, one line per run.
type PlotPresenter struct {
	dir string
}

// NewPlotPresenter creates dir if needed.
func NewPlotPresenter(dir string) (*PlotPresenter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create plot directory %s: %w", dir, err)
	}
	return &PlotPresenter{dir: dir}, nil
}

func (p *PlotPresenter) Present(r benchmark.Result) error {
	pl, err := ResultPlot(r)
	if err != nil {
		return err
	}
	return p.save(pl, r.Method+".png")
}

func (p *PlotPresenter) Summarize(summaries []benchmark.Summary) error {
	pl, err := SummaryPlot(summaries)
	if err != nil {
		return err
	}
	return p.save(pl, "comparison.png")
}

func (p *PlotPresenter) save(pl *plot.Plot, name string) error {
	path := filepath.Join(p.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePNG(f, pl); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// ResultPlot builds the runtime-vs-precision chart of one result.
func ResultPlot(r benchmark.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title(r)
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.Add(plotter.NewGrid())
	applyScale(&p.X, r.Axes.X)
	applyScale(&p.Y, r.Axes.Y)

	logX := r.Axes.X == benchmark.ScaleLog
	logY := r.Axes.Y == benchmark.ScaleLog

	var (
		lines []interface{}
		xr    = newSpan()
		yr    = newSpan()
	)
	for _, run := range r.Runs {
		xys := make(plotter.XYs, 0, len(run.Measurements))
		for _, m := range run.Measurements {
			x, y := m.AbsError, m.Runtime.Seconds()
			// log axes cannot place non-positive values
			if (logX && x <= 0) || (logY && y <= 0) {
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: y})
			xr.add(x)
			yr.add(y)
		}
		if len(xys) == 0 {
			continue
		}
		name := fmt.Sprintf("Run %d", run.Index)
		if len(r.Runs) == 1 {
			name = r.Label
		}
		lines = append(lines, name, xys)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: nothing to plot", r.Method)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, fmt.Errorf("failed to add lines: %w", err)
	}
	if logX {
		xr.pad(&p.X)
	}
	if logY {
		yr.pad(&p.Y)
	}
	p.Legend.Top = true
	return p, nil
}

// SummaryPlot places every method by best error and mean runtime, on log axes.
func SummaryPlot(summaries []benchmark.Summary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Comparison: Runtime vs Precision"
	p.X.Label.Text = "Best " + xAxisLabel
	p.Y.Label.Text = "Mean " + yAxisLabel
	p.Add(plotter.NewGrid())
	applyScale(&p.X, benchmark.ScaleLog)
	applyScale(&p.Y, benchmark.ScaleLog)

	var (
		points []interface{}
		xr     = newSpan()
		yr     = newSpan()
	)
	for _, s := range summaries {
		x, y := s.BestError, s.MeanRuntime.Seconds()
		if !(x > 0) || !(y > 0) {
			continue
		}
		points = append(points, s.Method, plotter.XYs{{X: x, Y: y}})
		xr.add(x)
		yr.add(y)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("comparison: nothing to plot")
	}
	if err := plotutil.AddScatters(p, points...); err != nil {
		return nil, fmt.Errorf("failed to add points: %w", err)
	}
	xr.pad(&p.X)
	yr.pad(&p.Y)
	p.Legend.Top = true
	return p, nil
}

// WritePNG renders p as a PNG image.
func WritePNG(w io.Writer, p *plot.Plot) error {
	canvas := vgimg.PngCanvas{Canvas: vgimg.New(plotWidth, plotHeight)}
	p.Draw(draw.New(canvas))
	_, err := canvas.WriteTo(w)
	return err
}

func applyScale(a *plot.Axis, s benchmark.Scale) {
	if s != benchmark.ScaleLog {
		return
	}
	a.Scale = plot.LogScale{}
	a.Tick.Marker = plot.LogTicks{Prec: -1}
}

// halfDecade is √10.
const halfDecade = 3.1622776601683795

// span tracks the data range of a log axis.
type span struct{ min, max float64 }

func newSpan() span { return span{min: math.Inf(1), max: math.Inf(-1)} }

func (s *span) add(v float64) {
	s.min = math.Min(s.min, v)
	s.max = math.Max(s.max, v)
}

// pad widens the axis by half a decade on each side. A degenerate range
// would otherwise be widened linearly by the plot package, into negatives.
func (s span) pad(a *plot.Axis) {
	if s.min > s.max {
		return
	}
	a.Min = s.min / halfDecade
	a.Max = s.max * halfDecade
}
