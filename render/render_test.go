package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/ssdecomp/dataset"
	"github.com/YuminosukeSato/ssdecomp/linear"
)

func TestFitCurveWritesPNG(t *testing.T) {
	samples := dataset.Demo()
	x, y, err := dataset.Matrices(samples)
	if err != nil {
		t.Fatalf("dataset.Matrices() error = %v", err)
	}

	lr := linear.NewLinearRegression()
	if err := lr.Fit(x, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "fit.png")
	if err := FitCurve(samples, lr, "Least Squares Fit", path); err != nil {
		t.Fatalf("FitCurve() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected plot file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestFitCurveEmptyDataset(t *testing.T) {
	lr := linear.NewLinearRegression()
	err := FitCurve(nil, lr, "t", filepath.Join(t.TempDir(), "fit.png"))
	if err == nil {
		t.Error("FitCurve(nil, ...) error = nil, want error")
	}
}

func TestFitCurveUnfittedModel(t *testing.T) {
	err := FitCurve(dataset.Demo(), linear.NewLinearRegression(), "t", filepath.Join(t.TempDir(), "fit.png"))
	if err == nil {
		t.Error("FitCurve() with unfitted model: error = nil, want error")
	}
}
