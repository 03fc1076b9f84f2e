// Package rootfind provides small, dependency-light nonlinear equation
// solvers used throughout radcomp in place of a general optimization
// package: damped Newton iteration for systems of residuals, and a
// scalar Newton step for the one-dimensional cases (Colebrook, saturation
// pressure).
package rootfind

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Result carries the outcome of a Solve call.
type Result struct {
	X        []float64 // best point found
	Residual []float64 // residual vector at X
	Iters    int
	Ok       bool // true if the infinity norm of Residual is <= tol
}

// MaxInfNorm returns the largest absolute component of v.
func MaxInfNorm(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

// Options controls the Newton/Levenberg-Marquardt iteration.
type Options struct {
	Tol      float64 // acceptance threshold on the residual infinity norm
	MaxIters int
}

// DefaultOptions mirrors the tolerance the solver stages accept (spec: any
// final residual infinity-norm <= 1e-3 is acceptable, even though the
// iteration itself targets a tighter 1e-4).
func DefaultOptions() Options {
	return Options{Tol: 1e-4, MaxIters: 60}
}

// Solve finds x such that f(x) ~ 0 starting from x0, using a
// Levenberg-Marquardt-damped Newton step with a finite-difference
// Jacobian. It never panics on non-convergence: iteration exhaustion or
// a singular step simply returns Ok=false with the best point reached.
func Solve(f func(x []float64) []float64, x0 []float64, opts Options) Result {
	n := len(x0)
	x := append([]float64(nil), x0...)
	r := f(x)
	m := len(r)

	lambda := 1e-3
	res := Result{X: x, Residual: r}

	jac := mat.NewDense(m, n, nil)
	settings := &fd.JacobianSettings{
		Formula: fd.Central,
	}

	for iter := 0; iter < opts.MaxIters; iter++ {
		res.Iters = iter
		if MaxInfNorm(r) <= opts.Tol {
			res.X, res.Residual, res.Ok = x, r, true
			return res
		}

		fd.Jacobian(jac, func(dst, xx []float64) {
			copy(dst, f(xx))
		}, x, settings)

		// Normal equations with LM damping: (J^T J + lambda*diag(J^T J)) dx = -J^T r
		var jt mat.Dense
		jt.CloneFrom(jac.T())

		var jtj mat.Dense
		jtj.Mul(&jt, jac)

		var jtr mat.VecDense
		jtr.MulVec(&jt, mat.NewVecDense(m, r))

		improved := false
		for tries := 0; tries < 12 && !improved; tries++ {
			a := mat.NewDense(n, n, nil)
			a.Copy(&jtj)
			for i := 0; i < n; i++ {
				a.Set(i, i, a.At(i, i)*(1+lambda)+1e-12)
			}

			var neg mat.VecDense
			neg.ScaleVec(-1, &jtr)

			var dx mat.VecDense
			if err := dx.SolveVec(a, &neg); err != nil {
				lambda *= 10
				continue
			}

			xNew := make([]float64, n)
			for i := range xNew {
				xNew[i] = x[i] + dx.AtVec(i)
			}
			rNew := f(xNew)
			if MaxInfNorm(rNew) < MaxInfNorm(r) {
				x, r = xNew, rNew
				lambda = math.Max(lambda*0.5, 1e-12)
				improved = true
			} else {
				lambda *= 10
			}
		}

		if !improved {
			res.X, res.Residual = x, r
			return res
		}
	}

	res.X, res.Residual, res.Ok = x, r, MaxInfNorm(r) <= opts.Tol
	return res
}

// ScalarSolve finds x such that f(x) ~ 0 starting from x0 using a
// damped scalar Newton iteration with a finite-difference derivative.
func ScalarSolve(f func(x float64) float64, x0 float64, opts Options) (x float64, fx float64, ok bool) {
	x = x0
	fx = f(x)
	for iter := 0; iter < opts.MaxIters; iter++ {
		if math.Abs(fx) <= opts.Tol {
			return x, fx, true
		}
		h := 1e-6 * math.Max(1, math.Abs(x))
		deriv := (f(x+h) - f(x-h)) / (2 * h)
		if deriv == 0 || math.IsNaN(deriv) {
			break
		}
		step := fx / deriv
		xNew := x - step
		for tries := 0; tries < 8 && math.IsNaN(f(xNew)); tries++ {
			step *= 0.5
			xNew = x - step
		}
		fxNew := f(xNew)
		if math.IsNaN(fxNew) {
			break
		}
		x, fx = xNew, fxNew
	}
	return x, fx, math.Abs(fx) <= opts.Tol
}
