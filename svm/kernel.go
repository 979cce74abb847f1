package svm

import "math"

// Kernel computes the inner product of two feature vectors in the implicit
// feature space of the support vector machine.
type Kernel interface {
	Compute(a, b []float64) float64
	Name() string
}

// RBFKernel is the Gaussian radial basis function kernel
// K(a, b) = exp(-gamma * ||a - b||²).
type RBFKernel struct {
	Gamma float64
}

// Compute evaluates the kernel for two feature vectors.
func (k *RBFKernel) Compute(a, b []float64) float64 {
	var dist2 float64
	for i := range a {
		diff := a[i] - b[i]
		dist2 += diff * diff
	}
	return math.Exp(-k.Gamma * dist2)
}

// Name returns the kernel identifier.
func (k *RBFKernel) Name() string { return KernelRBF }

// LinearKernel is the plain dot product K(a, b) = <a, b>.
type LinearKernel struct{}

// Compute evaluates the kernel for two feature vectors.
func (k *LinearKernel) Compute(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

// Name returns the kernel identifier.
func (k *LinearKernel) Name() string { return KernelLinear }

// PolyKernel is the polynomial kernel K(a, b) = (gamma * <a, b> + coef0)^degree.
type PolyKernel struct {
	Gamma  float64
	Coef0  float64
	Degree int
}

// Compute evaluates the kernel for two feature vectors.
func (k *PolyKernel) Compute(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return math.Pow(k.Gamma*dot+k.Coef0, float64(k.Degree))
}

// Name returns the kernel identifier.
func (k *PolyKernel) Name() string { return KernelPoly }
