// Package testfluid implements a closed-form constant-Cp ideal gas behind
// the eos.Fluid contract, used only by the solver packages' tests: it
// lets PT/HS/PH/PS queries be inverted analytically instead of needing a
// real cubic or corresponding-states engine just to exercise a root-find
// loop above the EOS layer.
package testfluid

import (
	"math"

	"github.com/cyrilpic/radcomp/eos"
)

// Gas is a constant-Cp ideal gas: P = D*R*T, H = Cp*T, S = Cp*ln(T/Tref) - R*ln(P/Pref).
type Gas struct {
	R       float64 // specific gas constant, J/(kg*K)
	Cp      float64 // specific heat at constant pressure, J/(kg*K)
	Gamma   float64 // Cp/Cv, used only for speed of sound
	Visc    float64 // dynamic viscosity, Pa*s (constant)
	Tref    float64
	Pref    float64
}

// Air returns a Gas parameterized to behave like air near atmospheric
// conditions, useful as a default in tests.
func Air() Gas {
	return Gas{R: 287.0, Cp: 1005.0, Gamma: 1.4, Visc: 1.8e-5, Tref: 300.0, Pref: 1e5}
}

func (g Gas) tFromH(H float64) float64 { return H / g.Cp }

func (g Gas) pFromTS(T, S float64) float64 {
	return g.Pref * math.Exp((g.Cp*math.Log(T/g.Tref)-S)/g.R)
}

func (g Gas) sFromTP(T, P float64) float64 {
	return g.Cp*math.Log(T/g.Tref) - g.R*math.Log(P/g.Pref)
}

func (g Gas) propAt(P, T float64) eos.ThermoProp {
	D := P / (g.R * T)
	H := g.Cp * T
	S := g.sFromTP(T, P)
	A := math.Sqrt(g.Gamma * g.R * T)
	return eos.ThermoProp{P: P, T: T, D: D, H: H, S: S, A: A, V: g.Visc, Phase: eos.Gas, Fld: g}
}

// ThermoProp implements eos.Fluid.
func (g Gas) ThermoProp(pair eos.Pair, v1, v2 float64) (eos.ThermoProp, error) {
	switch pair {
	case eos.PT:
		if v1 <= 0 || v2 <= 0 {
			return eos.ThermoProp{}, eos.ErrPressure
		}
		return g.propAt(v1, v2), nil
	case eos.PH:
		P, H := v1, v2
		if P <= 0 {
			return eos.ThermoProp{}, eos.ErrPressure
		}
		T := g.tFromH(H)
		if T <= 0 {
			return eos.ThermoProp{}, eos.ErrTemp
		}
		return g.propAt(P, T), nil
	case eos.PS:
		P, S := v1, v2
		if P <= 0 {
			return eos.ThermoProp{}, eos.ErrPressure
		}
		T := g.Tref * math.Exp((S+g.R*math.Log(P/g.Pref))/g.Cp)
		return g.propAt(P, T), nil
	case eos.HS:
		H, S := v1, v2
		T := g.tFromH(H)
		if T <= 0 {
			return eos.ThermoProp{}, eos.ErrTemp
		}
		P := g.pFromTS(T, S)
		return g.propAt(P, T), nil
	default:
		return eos.ThermoProp{}, &eos.OutOfRangeError{Pair: pair, V1: v1, V2: v2,
			Msg: "ideal gas test fluid does not model two-phase states"}
	}
}

// Limits implements eos.Fluid with generous bounds; this fluid never
// rejects inputs on its own account.
func (g Gas) Limits() eos.Limits {
	return eos.Limits{PMax: 1e9, TMax: 2000, PCrit: 1e9, TCrit: 2000, PTriple: 1, TTriple: 1}
}

// Activate implements eos.Fluid as a no-op; Gas is stateless.
func (g Gas) Activate() error { return nil }
