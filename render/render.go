// Package render draws the scatter/fit visualization of the demonstration.
// It is deliberately separate from the metric computation: a failure to write
// the image must not invalidate the numbers.
package render

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/ssdecomp/core/model"
	"github.com/YuminosukeSato/ssdecomp/dataset"
	"github.com/YuminosukeSato/ssdecomp/pkg/errors"
)

// curveStep is the x spacing of the sampled fit curve.
const curveStep = 0.05

// FitCurve renders the samples as a scatter plot together with the fitted
// model's prediction curve over [minX-1, maxX+1], and writes a PNG to path.
// Parent directories are created as needed.
func FitCurve(samples []dataset.Sample, reg model.Regressor, title, path string) error {
	if len(samples) == 0 {
		return errors.NewValueError("render.FitCurve", "empty dataset")
	}
	if !reg.IsFitted() {
		return errors.NewNotFittedError("render.FitCurve", "Predict")
	}

	minX, maxX, err := dataset.XBounds(samples)
	if err != nil {
		return err
	}

	points := make(plotter.XYs, len(samples))
	for i, s := range samples {
		points[i].X = s.X
		points[i].Y = s.Y
	}

	// Sample the fitted function over a padded range, one Predict call.
	var gridX []float64
	for x := minX - 1; x <= maxX+1+curveStep/2; x += curveStep {
		gridX = append(gridX, x)
	}
	grid := mat.NewDense(len(gridX), 1, gridX)
	pred, err := reg.Predict(grid)
	if err != nil {
		return errors.Wrap(err, "render.FitCurve")
	}

	curve := make(plotter.XYs, len(gridX))
	for i, x := range gridX {
		curve[i].X = x
		curve[i].Y = pred.At(i, 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, "render.FitCurve: scatter")
	}
	scatter.GlyphStyle.Color = color.RGBA{B: 139, A: 255} // dark blue
	p.Add(scatter)

	line, err := plotter.NewLine(curve)
	if err != nil {
		return errors.Wrap(err, "render.FitCurve: line")
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(line)
	p.Legend.Add("SVR Prediction", line)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "render.FitCurve: create output directory")
		}
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "render.FitCurve: save plot")
	}
	return nil
}
