// Package cubiceos is radcomp's high-accuracy equation-of-state engine:
// a Peng-Robinson cubic (eos/cubic) combined with a substance's ideal-gas
// heat-capacity polynomial to build full mass-based real-fluid states.
// PT resolves directly from the cubic's volume root; PH/PS/HS invert the
// departure relations with the shared Newton solver (internal/rootfind);
// TQ/PQ walk the saturation curve via eos/cubic's equal-fugacity solve.
package cubiceos

import (
	"math"

	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/eos/cubic"
	"github.com/cyrilpic/radcomp/eos/substance"
	"github.com/cyrilpic/radcomp/internal/rootfind"
)

// refT and refP anchor the ideal-gas enthalpy/entropy integrals. The stage
// balances use differences of H and S; the impeller's external-loss
// residual is normalized by an absolute H, so its scale does depend on
// this reference.
const (
	refT = 298.15
	refP = 1e5
)

// Fluid is a cubic-EOS-backed eos.Fluid for one substance.
type Fluid struct {
	Sub     substance.Substance
	EOSType cubic.EOSType
}

// New returns a Peng-Robinson-backed Fluid for sub.
func New(sub substance.Substance) *Fluid {
	return &Fluid{Sub: sub, EOSType: cubic.PR}
}

func (f *Fluid) cfg(T, P float64) *cubic.Cfg {
	return &cubic.Cfg{
		Type: f.EOSType, T: T, P: P,
		Tc: f.Sub.Tc, Pc: f.Sub.Pc, Acentric: f.Sub.Acentric, R: eos.RSI,
	}
}

// hIdeal returns the specific ideal-gas enthalpy at T relative to refT.
func (f *Fluid) hIdeal(T float64) float64 {
	s := f.Sub
	Rm := s.R()
	term := s.CpA*(T-refT) + s.CpB/2*(T*T-refT*refT) + s.CpC/3*(T*T*T-refT*refT*refT) - s.CpD*(1/T-1/refT)
	return Rm * term
}

// sIdeal returns the specific ideal-gas entropy at (T,P) relative to (refT,refP).
func (f *Fluid) sIdeal(T, P float64) float64 {
	s := f.Sub
	Rm := s.R()
	term := s.CpA*math.Log(T/refT) + s.CpB*(T-refT) + s.CpC/2*(T*T-refT*refT) - s.CpD/2*(1/(T*T)-1/(refT*refT))
	return Rm*term - Rm*math.Log(P/refP)
}

func (f *Fluid) soundSpeed(T float64) float64 {
	cp := f.Sub.CpIdeal(T)
	R := f.Sub.R()
	gamma := cp / (cp - R)
	return math.Sqrt(gamma * R * T)
}

// propFromRoot builds a ThermoProp from a single cubic volume root.
func (f *Fluid) propFromRoot(T, P, vMolar float64, phase eos.Phase) (eos.ThermoProp, error) {
	cfg := f.cfg(T, P)
	dH, dS, err := cubic.Departure(cfg, vMolar)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	D := f.Sub.MW / vMolar
	return eos.ThermoProp{
		P: P, T: T, D: D,
		H: f.hIdeal(T) + dH/f.Sub.MW,
		S: f.sIdeal(T, P) + dS/f.Sub.MW,
		A: f.soundSpeed(T),
		V: f.Sub.Viscosity(T),
		Phase: phase,
		Fld:   f,
	}, nil
}

func (f *Fluid) propFromTP(T, P float64) (eos.ThermoProp, error) {
	cfg := f.cfg(T, P)
	vr, err := cubic.SolveForVolume(cfg)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	roots := vr.Clean()
	if len(roots) == 0 {
		return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: eos.PT, V1: P, V2: T, Msg: "no real volume root"}
	}
	phase := eos.Gas
	if T >= f.Sub.Tc {
		phase = eos.SupercriticalGas
		if P >= f.Sub.Pc {
			phase = eos.Supercritical
		}
	}
	return f.propFromRoot(T, P, roots[len(roots)-1], phase)
}

// saturated returns the liquid/vapor volume roots at T along the
// saturation curve, and the saturation pressure.
func (f *Fluid) saturated(T float64) (Psat, vLiq, vVap float64, err error) {
	cfg := f.cfg(T, 0)
	Psat, err = cubic.SaturationPressure(cfg, T)
	if err != nil {
		return 0, 0, 0, err
	}
	vr, err := cubic.SolveForVolume(f.cfg(T, Psat))
	if err != nil {
		return 0, 0, 0, err
	}
	roots := vr.Clean()
	if len(roots) < 2 {
		return 0, 0, 0, &eos.OutOfRangeError{Pair: eos.TQ, V1: T, V2: 0, Msg: "no two-phase envelope at this temperature"}
	}
	return Psat, roots[0], roots[len(roots)-1], nil
}

func (f *Fluid) propAtQuality(T, Q float64) (eos.ThermoProp, error) {
	Psat, vLiq, vVap, err := f.saturated(T)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	liq, err := f.propFromRoot(T, Psat, vLiq, eos.TwoPhase)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	vap, err := f.propFromRoot(T, Psat, vVap, eos.TwoPhase)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	vSpecMix := (1-Q)/liq.D + Q/vap.D
	return eos.ThermoProp{
		P: Psat, T: T, D: 1 / vSpecMix,
		H: (1-Q)*liq.H + Q*vap.H,
		S: (1-Q)*liq.S + Q*vap.S,
		// The vapor-boundary invariant: A and V are always reported at
		// the saturated-vapor side, never interpolated across quality.
		A: vap.A, V: vap.V,
		Phase: eos.TwoPhase,
		Fld:   f,
	}, nil
}

func (f *Fluid) solveTForH(P, H, Tguess float64) (float64, error) {
	opts := rootfind.DefaultOptions()
	T, _, ok := rootfind.ScalarSolve(func(T float64) float64 {
		prop, err := f.propFromTP(T, P)
		if err != nil {
			return math.NaN()
		}
		return prop.H - H
	}, Tguess, opts)
	if !ok {
		return 0, &eos.OutOfRangeError{Pair: eos.PH, V1: P, V2: H, Msg: "enthalpy inversion did not converge"}
	}
	return T, nil
}

func (f *Fluid) solveTForS(P, S, Tguess float64) (float64, error) {
	opts := rootfind.DefaultOptions()
	T, _, ok := rootfind.ScalarSolve(func(T float64) float64 {
		prop, err := f.propFromTP(T, P)
		if err != nil {
			return math.NaN()
		}
		return prop.S - S
	}, Tguess, opts)
	if !ok {
		return 0, &eos.OutOfRangeError{Pair: eos.PS, V1: P, V2: S, Msg: "entropy inversion did not converge"}
	}
	return T, nil
}

// ThermoProp implements eos.Fluid.
func (f *Fluid) ThermoProp(pair eos.Pair, v1, v2 float64) (eos.ThermoProp, error) {
	s := f.Sub
	Rm := s.R()

	switch pair {
	case eos.PT:
		return f.propFromTP(v2, v1)

	case eos.PH:
		Tguess := refT + v2/(Rm*s.CpA)
		if Tguess <= 0 {
			Tguess = refT
		}
		T, err := f.solveTForH(v1, v2, Tguess)
		if err != nil {
			return eos.ThermoProp{}, err
		}
		return f.propFromTP(T, v1)

	case eos.PS:
		Tguess := refT * math.Exp(v2/(Rm*s.CpA))
		if Tguess <= 0 {
			Tguess = refT
		}
		T, err := f.solveTForS(v1, v2, Tguess)
		if err != nil {
			return eos.ThermoProp{}, err
		}
		return f.propFromTP(T, v1)

	case eos.HS:
		Tguess := refT + v1/(Rm*s.CpA)
		if Tguess <= 0 {
			Tguess = refT
		}
		opts := rootfind.DefaultOptions()
		sol := rootfind.Solve(func(x []float64) []float64 {
			T, P := x[0], x[1]
			if T <= 0 || P <= 0 {
				return []float64{1e4, 1e4}
			}
			prop, err := f.propFromTP(T, P)
			if err != nil {
				return []float64{1e4, 1e4}
			}
			return []float64{prop.H - v1, prop.S - v2}
		}, []float64{Tguess, refP}, opts)
		if !sol.Ok {
			return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: eos.HS, V1: v1, V2: v2, Msg: "H/S inversion did not converge"}
		}
		return f.propFromTP(sol.X[0], sol.X[1])

	case eos.TQ:
		return f.propAtQuality(v1, v2)

	case eos.PQ:
		Tr0 := 1 / (1 - math.Log(v1/s.Pc)/(5.373*(1+s.Acentric)))
		Tguess := s.Tc * Tr0
		if Tguess <= 0 || math.IsNaN(Tguess) {
			Tguess = 0.8 * s.Tc
		}
		opts := rootfind.DefaultOptions()
		T, _, ok := rootfind.ScalarSolve(func(T float64) float64 {
			if T <= 0 || T >= s.Tc {
				return math.NaN()
			}
			Psat, err := cubic.SaturationPressure(f.cfg(T, 0), T)
			if err != nil {
				return math.NaN()
			}
			return Psat - v1
		}, Tguess, opts)
		if !ok {
			return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: eos.PQ, V1: v1, V2: v2, Msg: "saturation temperature inversion did not converge"}
		}
		return f.propAtQuality(T, v2)
	}

	return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: pair, V1: v1, V2: v2, Msg: "unsupported pair"}
}

// Limits implements eos.Fluid.
func (f *Fluid) Limits() eos.Limits {
	return eos.Limits{
		PMax: 50 * f.Sub.Pc, TMax: 4 * f.Sub.Tc,
		PCrit: f.Sub.Pc, TCrit: f.Sub.Tc,
	}
}

// Activate implements eos.Fluid; cubiceos is stateless.
func (f *Fluid) Activate() error { return nil }
