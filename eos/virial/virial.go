// Package virial implements the truncated virial equation of state,
// used by eos/corrstates as the vapor-phase branch of its generalized
// corresponding-states engine: cheap, and adequate up to the reduced
// pressure the Pitzer correlation is validated against (Pr <~ 0.8).
package virial

import (
	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/internal/solvecubic"
)

// SolveForVolumeTwoTerm solves the 2-term virial equation for molar volume.
// It uses the approximation V = RT/P + B. T, P, R, B must share consistent
// units (radcomp calls this in molar SI: Pa, K, J/(mol*K), m^3/mol).
func SolveForVolumeTwoTerm(T, P, R, B float64) (float64, error) {
	if P <= 0 {
		return 0, eos.ErrPressure
	}
	if T <= 0 {
		return 0, eos.ErrTemp
	}
	if R <= 0 {
		return 0, eos.ErrUniversalConst
	}

	return (R * T / P) + B, nil
}

// SolveForVolumeThreeTerm solves the 3-term virial equation (Leiden form)
// for molar volume. The equation Z = 1 + B/V + C/V^2 rearranges to a
// cubic in V, solved via internal/solvecubic.
func SolveForVolumeThreeTerm(T, P, R, B, C float64) ([3]complex128, error) {
	if P <= 0 {
		return [3]complex128{}, eos.ErrPressure
	}
	if T <= 0 {
		return [3]complex128{}, eos.ErrTemp
	}
	if R <= 0 {
		return [3]complex128{}, eos.ErrUniversalConst
	}

	a := P / (R * T)
	b := -1.0
	c := -B
	d := -C

	return solvecubic.Solve(a, b, c, d)
}

// CompressibilityTwoTerm calculates the compressibility factor Z using the 2-term virial equation.
// Z = 1 + BP/RT
func CompressibilityTwoTerm(T, P, R, B float64) (float64, error) {
	if P <= 0 {
		return 0, eos.ErrPressure
	}
	if T <= 0 {
		return 0, eos.ErrTemp
	}
	if R <= 0 {
		return 0, eos.ErrUniversalConst
	}

	return 1 + (B*P)/(R*T), nil
}

// CompressibilityThreeTerm calculates the compressibility factor Z using the 3-term virial equation.
// Z = 1 + B/V + C/V^2
func CompressibilityThreeTerm(V, B, C float64) (float64, error) {
	if V <= 0 {
		return 0, eos.ErrVolume
	}

	return 1 + B/V + C/(V*V), nil
}
