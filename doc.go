// Package ssdecomp demonstrates why the coefficient of determination (R²)
// is not a trustworthy metric for non-linear machine learning models.
//
// R² is classically defined as 1 - SSE/SST, which only measures "explained
// variance" because ordinary least squares guarantees the decomposition
//
//	SST = SSE + SSR
//
// (total = unexplained + explained). The packages in this repository fit a
// non-linear model — support vector regression with an RBF kernel — to a
// fixed six-point dataset and show numerically that the decomposition fails,
// while holding exactly for a linear least-squares fit on the same data.
//
// # Packages
//
//   - dataset: the fixed six-sample dataset
//   - svm: epsilon-insensitive support vector regression (deterministic SMO)
//   - linear: ordinary least squares, the baseline where the identity holds
//   - metrics: SST / SSE / SSR, the decomposition, and R²
//   - render: scatter/fit plot written as a PNG
//   - cmd/ssdecomp: the demo command printing the full report
//
// # Quick Start
//
//	x, y, _ := dataset.Matrices(dataset.Demo())
//
//	model := svm.NewSVR()
//	if err := model.Fit(x, y); err != nil {
//	    log.Fatal(err)
//	}
//	pred, _ := model.Predict(x)
//
//	// Decompose reports SST, SSE, SSR and their mismatch.
package ssdecomp
