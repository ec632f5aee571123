package viz

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/goqtm/stats"
)

// Palette used by every figure.
var (
	ScatterColor    = color.RGBA{R: 31, G: 119, B: 180, A: 110}
	RegressionColor = color.RGBA{R: 214, G: 39, B: 40, A: 180}
	IdentityColor   = color.RGBA{R: 148, G: 103, B: 189, A: 110}
	HighlightColor  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// XYData is one labelled point per entity.
type XYData struct {
	Labels []string
	X, Y   []float64
}

// Options control the text of a figure.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	// Highlight lists the labels drawn in HighlightColor and annotated.
	Highlight []string
	// Source is printed under the x axis when set.
	Source string
}

// XYFigure draws the points of data, the least-squares line of Y on X over
// the observed X range, and the y = x line across both axes' range. The
// fitted regression is returned with the plot.
func XYFigure(data XYData, opts Options) (*plot.Plot, stats.Fit, error) {
	if len(data.X) != len(data.Y) || len(data.Labels) != len(data.X) {
		return nil, stats.Fit{}, fmt.Errorf("%d labels, %d x and %d y values: %w",
			len(data.Labels), len(data.X), len(data.Y), stats.ErrLengthMismatch)
	}

	fit, err := stats.OLS(data.X, data.Y)
	if err != nil {
		return nil, stats.Fit{}, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = opts.XLabel
	if opts.Source != "" {
		p.X.Label.Text += "\nSource: " + opts.Source
	}
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	points := xys(data.X, data.Y)
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, stats.Fit{}, err
	}
	scatter.GlyphStyle.Color = ScatterColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	lo, hi := Limits(data.X, data.Y)
	identity := plotter.NewFunction(func(x float64) float64 { return x })
	identity.Color = IdentityColor
	identity.Width = vg.Points(2)
	identity.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	identity.XMin, identity.XMax = lo, hi
	p.Add(identity)
	p.Legend.Add("y = x", identity)

	xMin, xMax := floats.Min(finiteOnly(data.X)), floats.Max(finiteOnly(data.X))
	regression, err := plotter.NewLine(plotter.XYs{
		{X: xMin, Y: fit.Predict(xMin)},
		{X: xMax, Y: fit.Predict(xMax)},
	})
	if err != nil {
		return nil, stats.Fit{}, err
	}
	regression.Color = RegressionColor
	regression.Width = vg.Points(3)
	p.Add(regression)
	p.Legend.Add(RegressionLabel(fit), regression)

	if err := addHighlights(p, data, opts.Highlight); err != nil {
		return nil, stats.Fit{}, err
	}

	p.X.Min, p.X.Max = lo, hi
	p.Y.Min, p.Y.Max = lo, hi
	return p, fit, nil
}

// ResidualFigure draws the regression error Y - fit(X) of every point
// against X.
func ResidualFigure(data XYData, fit stats.Fit, opts Options) (*plot.Plot, error) {
	if len(data.X) != len(data.Y) || len(data.Labels) != len(data.X) {
		return nil, stats.ErrLengthMismatch
	}

	residuals := make([]float64, len(data.Y))
	for i := range residuals {
		residuals[i] = data.Y[i] - fit.Predict(data.X[i])
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = "Regression Error"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(xys(data.X, residuals))
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = ScatterColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = IdentityColor
	p.Add(zero)

	err = addHighlights(p, XYData{Labels: data.Labels, X: data.X, Y: residuals}, opts.Highlight)
	return p, err
}

// RegressionLabel is the legend entry of a fitted line.
func RegressionLabel(fit stats.Fit) string {
	return fmt.Sprintf("regression, r²=%.2f (slope=%.2f)", fit.RSquared, fit.Slope)
}

// Limits returns a common axis range covering x and y with a 10% margin on
// each side.
func Limits(x, y []float64) (lo, hi float64) {
	all := finiteOnly(append(slices.Clone(x), y...))
	if len(all) == 0 {
		return 0, 1
	}
	lo, hi = floats.Min(all), floats.Max(all)
	lo -= math.Abs(lo) * 0.1
	hi += math.Abs(hi) * 0.1
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// Save writes the plot to path; the extension selects the format (.png,
// .svg, .pdf, ...).
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func addHighlights(p *plot.Plot, data XYData, highlight []string) error {
	var points plotter.XYs
	var labels []string
	for i, label := range data.Labels {
		if !slices.Contains(highlight, label) {
			continue
		}
		points = append(points, plotter.XY{X: data.X[i], Y: data.Y[i]})
		labels = append(labels, label)
	}
	if len(points) == 0 {
		return nil
	}

	marks, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = HighlightColor
	marks.GlyphStyle.Radius = vg.Points(3)
	p.Add(marks)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(names)
	return nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if finite(x[i]) && finite(y[i]) {
			pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
		}
	}
	return pts
}

func finiteOnly(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if finite(v) {
			out = append(out, v)
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
