package svm

// Supported kernel identifiers.
const (
	KernelRBF    = "rbf"
	KernelLinear = "linear"
	KernelPoly   = "poly"
)

// Option is a function that configures SVR
type Option func(*SVR)

// WithKernel sets the kernel type ("rbf", "linear" or "poly")
func WithKernel(kernel string) Option {
	return func(s *SVR) {
		s.kernel = kernel
	}
}

// WithC sets the regularization parameter
func WithC(c float64) Option {
	return func(s *SVR) {
		s.c = c
	}
}

// WithEpsilon sets the width of the epsilon-insensitive tube
func WithEpsilon(epsilon float64) Option {
	return func(s *SVR) {
		s.epsilon = epsilon
	}
}

// WithGamma sets the kernel coefficient explicitly.
// When not set, gamma is derived from the data as 1 / (nFeatures * Var(X)).
func WithGamma(gamma float64) Option {
	return func(s *SVR) {
		s.gamma = gamma
	}
}

// WithCoef0 sets the independent term of the polynomial kernel
func WithCoef0(coef0 float64) Option {
	return func(s *SVR) {
		s.coef0 = coef0
	}
}

// WithDegree sets the degree of the polynomial kernel
func WithDegree(degree int) Option {
	return func(s *SVR) {
		s.degree = degree
	}
}

// WithTol sets the stopping tolerance of the solver
func WithTol(tol float64) Option {
	return func(s *SVR) {
		s.tol = tol
	}
}

// WithMaxIter sets the iteration cap of the solver
func WithMaxIter(maxIter int) Option {
	return func(s *SVR) {
		s.maxIter = maxIter
	}
}
