package rootfind

import (
	"math"
	"testing"
)

func TestSolveLinearSystem(t *testing.T) {
	// x + y = 3 ; x - y = 1  -> x=2, y=1
	f := func(x []float64) []float64 {
		return []float64{x[0] + x[1] - 3, x[0] - x[1] - 1}
	}
	res := Solve(f, []float64{0, 0}, DefaultOptions())
	if !res.Ok {
		t.Fatalf("expected convergence, residual=%v", res.Residual)
	}
	if math.Abs(res.X[0]-2) > 1e-3 || math.Abs(res.X[1]-1) > 1e-3 {
		t.Errorf("got x=%v, want [2 1]", res.X)
	}
}

func TestSolveNonlinearSystem(t *testing.T) {
	// x^2 + y^2 = 25 ; x - y = 1, near (4,3)
	f := func(x []float64) []float64 {
		return []float64{x[0]*x[0] + x[1]*x[1] - 25, x[0] - x[1] - 1}
	}
	res := Solve(f, []float64{3, 3}, DefaultOptions())
	if !res.Ok {
		t.Fatalf("expected convergence, residual=%v", res.Residual)
	}
	if MaxInfNorm(res.Residual) > 1e-3 {
		t.Errorf("residual too large: %v", res.Residual)
	}
}

func TestSolveNoConvergenceIsReportedNotPanicked(t *testing.T) {
	// A residual that can never reach zero (constant offset).
	f := func(x []float64) []float64 {
		return []float64{1e6}
	}
	res := Solve(f, []float64{0}, Options{Tol: 1e-6, MaxIters: 5})
	if res.Ok {
		t.Fatalf("expected non-convergence")
	}
}

func TestScalarSolve(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	x, _, ok := ScalarSolve(f, 1, DefaultOptions())
	if !ok {
		t.Fatalf("expected convergence")
	}
	if math.Abs(x-math.Sqrt2) > 1e-3 {
		t.Errorf("got %v, want sqrt(2)", x)
	}
}
