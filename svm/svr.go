// Package svm implements epsilon-insensitive Support Vector Regression with
// RBF, linear and polynomial kernels. The dual problem is solved by a
// deterministic SMO solver, so repeated fits with the same hyperparameters
// produce identical models.
package svm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ssdecomp/core/model"
	"github.com/YuminosukeSato/ssdecomp/pkg/errors"
)

// SVR is an epsilon-insensitive support vector regression estimator.
// The defaults match scikit-learn's SVR(): rbf kernel, C=1.0, epsilon=0.1
// and gamma derived from the data.
type SVR struct {
	model.BaseEstimator

	// Hyperparameters
	kernel  string
	c       float64
	epsilon float64
	gamma   float64 // 0 means "derive from data"
	coef0   float64
	degree  int
	tol     float64
	maxIter int

	// Learned parameters
	kern      Kernel
	coefs     []float64   // dual coefficients alpha_i - alpha*_i
	intercept float64
	trainX    [][]float64 // support data (all training rows)
}

// NewSVR は新しいSVRモデルを作成する
func NewSVR(options ...Option) *SVR {
	s := &SVR{
		kernel:  KernelRBF,
		c:       1.0,
		epsilon: 0.1,
		gamma:   0,
		coef0:   0,
		degree:  3,
		tol:     1e-3,
		maxIter: 1000,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Intercept returns the bias term of the fitted model.
func (s *SVR) Intercept() float64 {
	return s.intercept
}

// DualCoefs returns a copy of the dual coefficients alpha_i - alpha*_i.
func (s *SVR) DualCoefs() []float64 {
	out := make([]float64, len(s.coefs))
	copy(out, s.coefs)
	return out
}

func (s *SVR) validateParams() error {
	if s.c <= 0 {
		return errors.NewValidationError("C", "must be positive", s.c)
	}
	if s.epsilon < 0 {
		return errors.NewValidationError("epsilon", "must be non-negative", s.epsilon)
	}
	if s.gamma < 0 {
		return errors.NewValidationError("gamma", "must be non-negative (0 derives it from the data)", s.gamma)
	}
	if s.tol <= 0 {
		return errors.NewValidationError("tol", "must be positive", s.tol)
	}
	if s.maxIter <= 0 {
		return errors.NewValidationError("max_iter", "must be positive", s.maxIter)
	}
	switch s.kernel {
	case KernelRBF, KernelLinear, KernelPoly:
	default:
		return errors.NewValidationError("kernel", "must be one of rbf, linear, poly", s.kernel)
	}
	if s.kernel == KernelPoly && s.degree <= 0 {
		return errors.NewValidationError("degree", "must be positive", s.degree)
	}
	return nil
}

// resolveGamma applies the scikit-learn "scale" rule: 1 / (nFeatures * Var(X)),
// falling back to 1 when the data has no variance.
func resolveGamma(rows [][]float64, nFeatures int) float64 {
	var sum, sumSq, count float64
	for _, row := range rows {
		for _, v := range row {
			sum += v
			sumSq += v * v
			count++
		}
	}
	mean := sum / count
	variance := sumSq/count - mean*mean
	if variance <= 0 {
		return 1.0
	}
	return 1.0 / (float64(nFeatures) * variance)
}

func (s *SVR) buildKernel(rows [][]float64, nFeatures int) Kernel {
	gamma := s.gamma
	if gamma == 0 {
		gamma = resolveGamma(rows, nFeatures)
	}
	switch s.kernel {
	case KernelLinear:
		return &LinearKernel{}
	case KernelPoly:
		return &PolyKernel{Gamma: gamma, Coef0: s.coef0, Degree: s.degree}
	default:
		return &RBFKernel{Gamma: gamma}
	}
}

// Fit はモデルを訓練データで学習させる。
// epsilon-SVRの双対問題を決定的なSMOで解く。
func (s *SVR) Fit(X, y mat.Matrix) error {
	// 入力の検証
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("SVR.Fit", "empty data", errors.ErrEmptyData)
	}

	if ry != r {
		return errors.NewDimensionError("SVR.Fit", r, ry, 0)
	}

	if cy != 1 {
		return errors.NewValueError("SVR.Fit", "y must be a column vector")
	}

	if err := s.validateParams(); err != nil {
		return err
	}

	// 行列をスライスへ展開
	rows := make([][]float64, r)
	targets := make([]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = X.At(i, j)
		}
		targets[i] = y.At(i, 0)
	}

	s.kern = s.buildKernel(rows, c)

	// グラム行列を事前計算
	gram := make([][]float64, r)
	for i := 0; i < r; i++ {
		gram[i] = make([]float64, r)
		for j := 0; j <= i; j++ {
			v := s.kern.Compute(rows[i], rows[j])
			gram[i][j] = v
			gram[j][i] = v
		}
	}

	sol, err := solveSMO(gram, targets, s.c, s.epsilon, s.tol, s.maxIter)
	if err != nil {
		return errors.Wrap(err, "SVR.Fit")
	}
	if !sol.converged {
		errors.Warn(errors.NewConvergenceWarning("SMO", sol.iters, ""))
	}

	if err := errors.CheckNumericalStability("svr_fit", append(append([]float64{}, sol.beta...), sol.b), sol.iters); err != nil {
		return err
	}

	s.coefs = sol.beta
	s.intercept = sol.b
	s.trainX = rows
	s.SetFitted(r, c)

	return nil
}

// Predict は入力データに対する予測を行う
func (s *SVR) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SVR", "Predict")
	}

	r, c := X.Dims()
	if c != s.NFeatures() {
		return nil, errors.NewDimensionError("SVR.Predict", s.NFeatures(), c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = X.At(i, j)
		}

		// f(x) = Σ (alpha_i - alpha*_i) K(x_i, x) + b
		pred := s.intercept
		for j, sv := range s.trainX {
			if s.coefs[j] != 0 {
				pred += s.coefs[j] * s.kern.Compute(sv, row)
			}
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}
