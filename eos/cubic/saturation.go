package cubic

import (
	"errors"
	"math"
)

// LogFugacity calculates the natural logarithm of the fugacity coefficient.
// Z is the compressibility factor (PV/RT); A and B are the dimensionless
// EOS parameters A = aP/(RT)^2, B = bP/RT.
func LogFugacity(cfg *Cfg, Z, A, B float64) float64 {
	sigma := cfg.Type.Params().Sigma
	epsilon := cfg.Type.Params().Epsilon

	term1 := Z - 1 - math.Log(Z-B)

	var term2 float64
	diff := epsilon - sigma
	if math.Abs(diff) < 1e-9 {
		// Degenerate case (e.g. vdW): the integral term reduces to -A/Z.
		term2 = -A / Z
	} else {
		term2 = (A / (B * diff)) * math.Log((Z+sigma*B)/(Z+epsilon*B))
	}

	return term1 + term2
}

// SaturationPressure finds the saturation pressure at temperature T by
// equating liquid and vapor fugacity, starting from the Wilson-equation
// guess and damping the pressure update each iteration.
func SaturationPressure(cfg *Cfg, T float64) (float64, error) {
	if T >= cfg.Tc {
		return cfg.Pc, nil
	}

	Tr := T / cfg.Tc
	P := cfg.Pc * math.Exp(5.373*(1+cfg.Acentric)*(1-1/Tr))

	for range 100 {
		iterCfg := *cfg
		iterCfg.P = P
		iterCfg.T = T

		volRes, err := SolveForVolume(&iterCfg)
		if err != nil {
			return 0, err
		}

		roots := volRes.Clean()
		if len(roots) < 3 {
			if len(roots) == 0 {
				return 0, errors.New("no real roots found")
			}
			V := roots[0]
			b := volRes.B
			if V < 2*b {
				P = P * 0.9
			} else {
				P = P * 1.1
			}
			continue
		}

		Vl := roots[0]
		Vv := roots[len(roots)-1]

		RT := cfg.R * T
		Adim := volRes.A * P / (RT * RT)
		Bdim := volRes.B * P / RT

		Zl := P * Vl / RT
		Zv := P * Vv / RT

		if Zl <= Bdim || Zv <= Bdim {
			P = P * 0.95
			continue
		}

		phil := LogFugacity(&iterCfg, Zl, Adim, Bdim)
		phiv := LogFugacity(&iterCfg, Zv, Adim, Bdim)

		if math.Abs(phil-phiv) < 1e-8 {
			return P, nil
		}

		ratio := math.Exp(phil - phiv)
		if ratio > 1.2 {
			ratio = 1.2
		} else if ratio < 0.8 {
			ratio = 0.8
		}

		P = P * ratio
	}

	return 0, errors.New("saturation pressure did not converge")
}
