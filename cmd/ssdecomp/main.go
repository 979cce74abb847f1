// Command ssdecomp fits a support vector regression to a fixed six-point
// dataset, computes the sums-of-squares decomposition, and shows that
// SST = SSE + SSR does not hold for the non-linear fit. It writes a
// scatter/fit plot to output/svr_plot.png as a side product.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ssdecomp/dataset"
	"github.com/YuminosukeSato/ssdecomp/metrics"
	"github.com/YuminosukeSato/ssdecomp/pkg/log"
	"github.com/YuminosukeSato/ssdecomp/render"
	"github.com/YuminosukeSato/ssdecomp/svm"
)

const plotPath = "output/svr_plot.png"

func main() {
	log.Setup("info")
	log.HookWarnings(nil)

	if err := run(); err != nil {
		slog.Error("analysis failed", log.ErrAttr(err))
		os.Exit(1)
	}
}

func run() error {
	banner := strings.Repeat("=", 60)

	fmt.Println(banner)
	fmt.Println("R-Squared Analysis for Non-Linear Models")
	fmt.Println(banner)
	fmt.Println()

	samples := dataset.Demo()
	x, y, err := dataset.Matrices(samples)
	if err != nil {
		return err
	}

	fmt.Println("Sample Data:")
	fmt.Printf("  %6s %6s\n", "x", "y")
	for _, s := range samples {
		fmt.Printf("  %6g %6g\n", s.X, s.Y)
	}
	fmt.Println()

	// Fit the non-linear model with scikit-learn's SVR() defaults.
	model := svm.NewSVR()
	if err := model.Fit(x, y); err != nil {
		return err
	}

	pred, err := model.Predict(x)
	if err != nil {
		return err
	}
	r, _ := pred.Dims()
	yPred := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yPred.SetVec(i, pred.At(i, 0))
	}

	d, err := metrics.Decompose(y, yPred)
	if err != nil {
		return err
	}

	fmt.Println("R-Squared Components:")
	fmt.Printf("  SST (Total Sum of Squares):      %.6f\n", d.SST)
	fmt.Printf("  SSE (Error Sum of Squares):      %.6f\n", d.SSE)
	fmt.Printf("  SSR (Regression Sum of Squares): %.6f\n", d.SSR)
	fmt.Println()
	fmt.Printf("  SSE + SSR = %.6f\n", d.Sum())
	fmt.Println()

	if d.Holds(1e-10) {
		fmt.Println("SST = SSE + SSR (Linear relationship holds)")
	} else {
		fmt.Printf("SST != SSE + SSR (Difference: %.6f)\n", d.Diff())
		fmt.Println()
		fmt.Println("This demonstrates that R^2 should NOT be used for")
		fmt.Println("non-linear models, as the fundamental property")
		fmt.Println("SST = SSE + SSR does not hold!")
	}

	fmt.Println()
	fmt.Println(banner)

	// The plot is a side product; failure to write it is reported but does
	// not invalidate the metric computation.
	fmt.Println("\nGenerating plot...")
	if err := render.FitCurve(samples, model, "Support Vector Regression - R2 Analysis", plotPath); err != nil {
		slog.Error("failed to write plot", log.ErrAttr(err), slog.String("path", plotPath))
	} else {
		fmt.Printf("Plot saved to: %s\n", plotPath)
	}

	return nil
}
