// Package dataset holds the fixed six-point dataset the demonstration is
// built around. The points are chosen so that the mean of y is exactly zero
// and an ordinary least-squares fit has integer coefficients, which keeps the
// sums-of-squares arithmetic easy to verify by hand.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ssdecomp/pkg/errors"
)

// Sample is one (x, y) observation.
type Sample struct {
	X float64
	Y float64
}

// Demo returns the fixed six-sample dataset. The returned slice is a fresh
// copy on every call, so callers may not mutate shared state through it.
func Demo() []Sample {
	return []Sample{
		{X: -1, Y: -1},
		{X: -1, Y: 1},
		{X: 0, Y: 1},
		{X: 0, Y: 3},
		{X: 1, Y: -1},
		{X: 1, Y: -3},
	}
}

// Matrices converts samples into the n×1 design matrix and n×1 target vector
// expected by the estimator API.
func Matrices(samples []Sample) (*mat.Dense, *mat.VecDense, error) {
	n := len(samples)
	if n == 0 {
		return nil, nil, errors.NewValueError("dataset.Matrices", "empty dataset")
	}

	x := mat.NewDense(n, 1, nil)
	y := mat.NewVecDense(n, nil)
	for i, s := range samples {
		x.Set(i, 0, s.X)
		y.SetVec(i, s.Y)
	}
	return x, y, nil
}

// XBounds returns the smallest and largest x in samples.
func XBounds(samples []Sample) (minX, maxX float64, err error) {
	if len(samples) == 0 {
		return 0, 0, errors.NewValueError("dataset.XBounds", "empty dataset")
	}
	minX, maxX = samples[0].X, samples[0].X
	for _, s := range samples[1:] {
		if s.X < minX {
			minX = s.X
		}
		if s.X > maxX {
			maxX = s.X
		}
	}
	return minX, maxX, nil
}
