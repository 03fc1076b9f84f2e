// Package corrstates is radcomp's reference equation-of-state engine: a
// generalized (Pitzer) corresponding-states correlation built entirely
// from Tc, Pc and the acentric factor, with no substance-specific fitted
// constants beyond what eos/substance already carries. It trades accuracy
// for cheapness against eos/cubiceos: the truncated virial expansion
// (eos/virial, parameterized by eos/abbott's B0/B1 correlations) for the
// vapor phase, the Rackett equation (eos/liquids) for the saturated
// liquid, and the Lee-Kesler vapor-pressure correlation (leekesler) for
// the saturation curve.
package corrstates

import (
	"math"

	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/eos/abbott"
	"github.com/cyrilpic/radcomp/eos/liquids"
	"github.com/cyrilpic/radcomp/eos/substance"
	"github.com/cyrilpic/radcomp/eos/virial"
	"github.com/cyrilpic/radcomp/internal/rootfind"
	"github.com/cyrilpic/radcomp/leekesler"
)

// refT and refP anchor the ideal-gas enthalpy/entropy integrals, as in
// eos/cubiceos. The stage balances use differences of H and S; the
// impeller's external-loss residual is normalized by an absolute H, so
// its scale does depend on this reference.
const (
	refT = 298.15
	refP = 1e5
)

// Fluid is a generalized corresponding-states eos.Fluid for one substance.
type Fluid struct {
	Sub substance.Substance
}

// New returns a corresponding-states Fluid for sub.
func New(sub substance.Substance) *Fluid {
	return &Fluid{Sub: sub}
}

func (f *Fluid) hIdeal(T float64) float64 {
	s := f.Sub
	Rm := s.R()
	term := s.CpA*(T-refT) + s.CpB/2*(T*T-refT*refT) + s.CpC/3*(T*T*T-refT*refT*refT) - s.CpD*(1/T-1/refT)
	return Rm * term
}

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

// secondVirialB returns the dimensional second virial coefficient (m^3/mol)
// from the Pitzer B-hat correlation at reduced temperature Tr.
func (f *Fluid) secondVirialB(Tr float64) (float64, error) {
	b0, err := abbott.B0(Tr)
	if err != nil {
		return 0, err
	}
	b1, err := abbott.B1(Tr)
	if err != nil {
		return 0, err
	}
	bHat := b0 + f.Sub.Acentric*b1
	return bHat * eos.RSI * f.Sub.Tc / f.Sub.Pc, nil
}

// vaporProp resolves a gas-phase state via the truncated virial EOS.
func (f *Fluid) vaporProp(T, P float64, phase eos.Phase) (eos.ThermoProp, error) {
	s := f.Sub
	Tr := T / s.Tc
	Pr := P / s.Pc

	B, err := f.secondVirialB(Tr)
	if err != nil {
		return eos.ThermoProp{}, err
	}

	vMolar, err := virial.SolveForVolumeTwoTerm(T, P, eos.RSI, B)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	Z, err := virial.CompressibilityTwoTerm(T, P, eos.RSI, B)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	if Z <= 0 {
		return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: eos.PT, V1: P, V2: T, Msg: "non-physical compressibility factor"}
	}

	db0, err := abbott.DB0(Tr)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	db1, err := abbott.DB1(Tr)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	b0, _ := abbott.B0(Tr)
	b1, _ := abbott.B1(Tr)
	w := s.Acentric

	dHhat := Pr*(b0-Tr*db0) + w*Pr*(b1-Tr*db1)
	dShat := -Pr * (db0 + w*db1)

	D := s.MW / vMolar
	H := f.hIdeal(T) + (eos.RSI*s.Tc*dHhat)/s.MW
	S := f.sIdeal(T, P) + (eos.RSI*dShat)/s.MW

	return eos.ThermoProp{
		P: P, T: T, D: D, H: H, S: S,
		A: f.soundSpeed(T), V: s.Viscosity(T),
		Phase: phase,
		Fld:   f,
	}, nil
}

func (f *Fluid) propFromTP(T, P float64) (eos.ThermoProp, error) {
	phase := eos.Gas
	if T >= f.Sub.Tc {
		phase = eos.SupercriticalGas
		if P >= f.Sub.Pc {
			phase = eos.Supercritical
		}
	}
	return f.vaporProp(T, P, phase)
}

// liquidProp resolves a saturated-liquid state via the Rackett equation.
func (f *Fluid) liquidProp(T, Psat float64) (eos.ThermoProp, error) {
	s := f.Sub
	Tr := T / s.Tc
	VcMolar := s.Vc * s.MW
	vMolar, err := liquids.Vsat(VcMolar, s.RackettZ(), Tr)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	D := s.MW / vMolar
	// Approximate the liquid enthalpy/entropy departure as the vapor
	// departure at the same (T, Psat): the virial correlation does not
	// model the liquid branch directly. The saturated liquid therefore
	// gets the same H and S as the saturated vapor (zero enthalpy of
	// vaporization); only its density differs.
	dHhat, dShat, err := f.departureAt(T, Psat)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	H := f.hIdeal(T) + (eos.RSI*s.Tc*dHhat)/s.MW
	S := f.sIdeal(T, Psat) + (eos.RSI*dShat)/s.MW
	return eos.ThermoProp{
		P: Psat, T: T, D: D, H: H, S: S,
		A: f.soundSpeed(T), V: s.Viscosity(T),
		Phase: eos.TwoPhase,
		Fld:   f,
	}, nil
}

func (f *Fluid) departureAt(T, P float64) (dHhat, dShat float64, err error) {
	s := f.Sub
	Tr, Pr := T/s.Tc, P/s.Pc
	b0, err := abbott.B0(Tr)
	if err != nil {
		return 0, 0, err
	}
	b1, err := abbott.B1(Tr)
	if err != nil {
		return 0, 0, err
	}
	db0, err := abbott.DB0(Tr)
	if err != nil {
		return 0, 0, err
	}
	db1, err := abbott.DB1(Tr)
	if err != nil {
		return 0, 0, err
	}
	w := s.Acentric
	dHhat = Pr*(b0-Tr*db0) + w*Pr*(b1-Tr*db1)
	dShat = -Pr * (db0 + w*db1)
	return dHhat, dShat, nil
}

func (f *Fluid) propAtQuality(T, Q float64) (eos.ThermoProp, error) {
	s := f.Sub
	Psat := leekesler.SaturationPressure(T, s.Tc, s.Pc, s.Acentric)
	liq, err := f.liquidProp(T, Psat)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	vap, err := f.vaporProp(T, Psat, eos.TwoPhase)
	if err != nil {
		return eos.ThermoProp{}, err
	}
	vSpecMix := (1-Q)/liq.D + Q/vap.D
	return eos.ThermoProp{
		P: Psat, T: T, D: 1 / vSpecMix,
		H: (1-Q)*liq.H + Q*vap.H,
		S: (1-Q)*liq.S + Q*vap.S,
		// Vapor-boundary invariant: A and V always taken at the
		// saturated-vapor side.
		A: vap.A, V: vap.V,
		Phase: eos.TwoPhase,
		Fld:   f,
	}, nil
}

func (f *Fluid) solveTForH(P, H, Tguess float64) (float64, error) {
	T, _, ok := rootfind.ScalarSolve(func(T float64) float64 {
		prop, err := f.propFromTP(T, P)
		if err != nil {
			return math.NaN()
		}
		return prop.H - H
	}, Tguess, rootfind.DefaultOptions())
	if !ok {
		return 0, &eos.OutOfRangeError{Pair: eos.PH, V1: P, V2: H, Msg: "enthalpy inversion did not converge"}
	}
	return T, nil
}

func (f *Fluid) solveTForS(P, S, Tguess float64) (float64, error) {
	T, _, ok := rootfind.ScalarSolve(func(T float64) float64 {
		prop, err := f.propFromTP(T, P)
		if err != nil {
			return math.NaN()
		}
		return prop.S - S
	}, Tguess, rootfind.DefaultOptions())
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
		}, []float64{Tguess, refP}, rootfind.DefaultOptions())
		if !sol.Ok {
			return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: eos.HS, V1: v1, V2: v2, Msg: "H/S inversion did not converge"}
		}
		return f.propFromTP(sol.X[0], sol.X[1])

	case eos.TQ:
		return f.propAtQuality(v1, v2)

	case eos.PQ:
		T := leekesler.SaturationTemperature(v1, s.Tc, s.Pc, s.Acentric)
		return f.propAtQuality(T, v2)
	}

	return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: pair, V1: v1, V2: v2, Msg: "unsupported pair"}
}

// Limits implements eos.Fluid.
func (f *Fluid) Limits() eos.Limits {
	return eos.Limits{
		PMax: 0.8 * f.Sub.Pc, TMax: 4 * f.Sub.Tc,
		PCrit: f.Sub.Pc, TCrit: f.Sub.Tc,
	}
}

// Activate implements eos.Fluid; corrstates is stateless.
func (f *Fluid) Activate() error { return nil }
