package svm

import (
	"math"

	"github.com/YuminosukeSato/ssdecomp/pkg/errors"
)

// smoSolution holds the result of the dual optimization.
type smoSolution struct {
	beta      []float64 // alpha_i - alpha*_i per training sample
	b         float64   // intercept
	iters     int
	converged bool
}

// tau is the floor for the second derivative of the two-variable subproblem.
const tau = 1e-12

// solveSMO solves the epsilon-SVR dual problem
//
//	min  1/2 βᵀKβ + ε Σ(α_i + α*_i) - Σ y_i β_i,   β = α - α*
//	s.t. Σ β_i = 0,  0 ≤ α_i, α*_i ≤ C
//
// with sequential minimal optimization. The 2n variables are laid out as
// α_0..α_{n-1}, α*_0..α*_{n-1}, with sign +1 for α and -1 for α*. Working
// pairs are chosen by maximal violation, ties broken by lowest index, so the
// solver is fully deterministic.
func solveSMO(gram [][]float64, y []float64, c, epsilon, tol float64, maxIter int) (*smoSolution, error) {
	n := len(y)
	m := 2 * n

	sign := func(i int) float64 {
		if i < n {
			return 1
		}
		return -1
	}
	// q is the entry (i, j) of the extended Hessian [[K, -K], [-K, K]].
	q := func(i, j int) float64 {
		return sign(i) * sign(j) * gram[i%n][j%n]
	}

	alpha := make([]float64, m)
	grad := make([]float64, m)
	for i := 0; i < n; i++ {
		grad[i] = epsilon - y[i]
		grad[i+n] = epsilon + y[i]
	}

	sol := &smoSolution{}

	for iter := 0; iter < maxIter; iter++ {
		// Working set selection: the maximal violating pair.
		i, j := -1, -1
		gmax := math.Inf(-1)
		gmin := math.Inf(1)
		for k := 0; k < m; k++ {
			t := sign(k)
			if (t > 0 && alpha[k] < c) || (t < 0 && alpha[k] > 0) {
				if v := -t * grad[k]; v > gmax {
					gmax = v
					i = k
				}
			}
			if (t > 0 && alpha[k] > 0) || (t < 0 && alpha[k] < c) {
				if v := -t * grad[k]; v < gmin {
					gmin = v
					j = k
				}
			}
		}
		if gmax-gmin < tol || i < 0 || j < 0 {
			sol.converged = true
			break
		}
		sol.iters = iter + 1

		oldAi, oldAj := alpha[i], alpha[j]
		quad := q(i, i) + q(j, j) - 2*sign(i)*sign(j)*q(i, j)
		if quad <= 0 {
			quad = tau
		}

		// Analytic solution of the two-variable subproblem, clipped to the
		// box, keeping Σ sign(k)·α_k invariant.
		if sign(i) != sign(j) {
			delta := (-grad[i] - grad[j]) / quad
			diff := alpha[i] - alpha[j]
			alpha[i] += delta
			alpha[j] += delta

			if diff > 0 {
				if alpha[j] < 0 {
					alpha[j] = 0
					alpha[i] = diff
				}
			} else {
				if alpha[i] < 0 {
					alpha[i] = 0
					alpha[j] = -diff
				}
			}
			if diff > 0 {
				if alpha[i] > c {
					alpha[i] = c
					alpha[j] = c - diff
				}
			} else {
				if alpha[j] > c {
					alpha[j] = c
					alpha[i] = c + diff
				}
			}
		} else {
			delta := (grad[i] - grad[j]) / quad
			sum := alpha[i] + alpha[j]
			alpha[i] -= delta
			alpha[j] += delta

			if sum > c {
				if alpha[i] > c {
					alpha[i] = c
					alpha[j] = sum - c
				}
			} else {
				if alpha[j] < 0 {
					alpha[j] = 0
					alpha[i] = sum
				}
			}
			if sum > c {
				if alpha[j] > c {
					alpha[j] = c
					alpha[i] = sum - c
				}
			} else {
				if alpha[i] < 0 {
					alpha[i] = 0
					alpha[j] = sum
				}
			}
		}

		if err := errors.CheckNumericalStability("smo_update", []float64{alpha[i], alpha[j]}, iter); err != nil {
			return nil, err
		}

		// Gradient update for the two changed variables.
		dai := alpha[i] - oldAi
		daj := alpha[j] - oldAj
		for k := 0; k < m; k++ {
			grad[k] += q(k, i)*dai + q(k, j)*daj
		}
	}

	// Intercept from the KKT conditions: average over free variables, or the
	// midpoint of the feasible interval when none are free.
	ub := math.Inf(1)
	lb := math.Inf(-1)
	sumFree := 0.0
	nFree := 0
	for k := 0; k < m; k++ {
		t := sign(k)
		yg := t * grad[k]
		switch {
		case alpha[k] >= c:
			if t < 0 {
				ub = math.Min(ub, yg)
			} else {
				lb = math.Max(lb, yg)
			}
		case alpha[k] <= 0:
			if t > 0 {
				ub = math.Min(ub, yg)
			} else {
				lb = math.Max(lb, yg)
			}
		default:
			nFree++
			sumFree += yg
		}
	}
	var rho float64
	if nFree > 0 {
		rho = sumFree / float64(nFree)
	} else {
		rho = (ub + lb) / 2
	}
	sol.b = -rho

	sol.beta = make([]float64, n)
	for i := 0; i < n; i++ {
		sol.beta[i] = alpha[i] - alpha[i+n]
	}

	return sol, nil
}
