package model

import "gonum.org/v1/gonum/mat"

// Regressor is the common interface of the regression estimators in this
// repository. Fit trains the model on X (n×d) and y (n×1), Predict returns
// an n×1 matrix of predictions.
type Regressor interface {
	Fit(X, y mat.Matrix) error
	Predict(X mat.Matrix) (mat.Matrix, error)
	IsFitted() bool
}
