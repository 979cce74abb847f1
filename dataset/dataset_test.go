package dataset

import (
	"testing"

	"github.com/YuminosukeSato/ssdecomp/pkg/errors"
)

func TestDemo(t *testing.T) {
	samples := Demo()

	if len(samples) != 6 {
		t.Fatalf("Demo() returned %d samples, want 6", len(samples))
	}

	// y must sum to exactly zero; the metric tests rely on this.
	var sum float64
	for _, s := range samples {
		sum += s.Y
	}
	if sum != 0 {
		t.Errorf("sum of y = %v, want 0", sum)
	}
}

func TestDemoReturnsCopy(t *testing.T) {
	first := Demo()
	first[0].Y = 100

	second := Demo()
	if second[0].Y == 100 {
		t.Error("Demo() shares state between calls")
	}
}

func TestMatrices(t *testing.T) {
	samples := Demo()

	x, y, err := Matrices(samples)
	if err != nil {
		t.Fatalf("Matrices() error = %v", err)
	}

	r, c := x.Dims()
	if r != 6 || c != 1 {
		t.Errorf("x dims = (%d, %d), want (6, 1)", r, c)
	}
	if y.Len() != 6 {
		t.Errorf("y length = %d, want 6", y.Len())
	}
	if got := x.At(3, 0); got != 0 {
		t.Errorf("x[3] = %v, want 0", got)
	}
	if got := y.AtVec(3); got != 3 {
		t.Errorf("y[3] = %v, want 3", got)
	}
}

func TestMatricesEmpty(t *testing.T) {
	_, _, err := Matrices(nil)
	if err == nil {
		t.Fatal("Matrices(nil) error = nil, want ValueError")
	}

	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("Matrices(nil) error = %v, want *ValueError", err)
	}
}

func TestXBounds(t *testing.T) {
	minX, maxX, err := XBounds(Demo())
	if err != nil {
		t.Fatalf("XBounds() error = %v", err)
	}
	if minX != -1 || maxX != 1 {
		t.Errorf("XBounds() = (%v, %v), want (-1, 1)", minX, maxX)
	}

	if _, _, err := XBounds(nil); err == nil {
		t.Error("XBounds(nil) error = nil, want error")
	}
}
