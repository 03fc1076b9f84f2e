// Package substance holds the characteristic properties of the pure
// species the EOS engines key off: critical constants, acentric factor,
// and the ideal-gas heat-capacity polynomial used to build real-fluid
// enthalpy and entropy from the engines' departure functions.
package substance

import "math"

// Substance collects the per-species constants shared by every EOS
// engine in this module. All quantities are specific (mass-based SI)
// except Acentric, Zc and the dimensionless Cp/R polynomial
// coefficients, matching the rest of the solver's unit discipline.
type Substance struct {
	Name     string
	MW       float64 // molar mass, kg/mol
	Tc       float64 // critical temperature, K
	Pc       float64 // critical pressure, Pa
	Vc       float64 // critical specific volume, m^3/kg
	Zc       float64 // critical compressibility factor
	Acentric float64 // Pitzer acentric factor

	// ZRA is the Rackett equation's fitted compressibility parameter.
	// It differs from Zc for strongly associating fluids (water is the
	// canonical example); zero means "use Zc".
	ZRA float64

	// Ideal-gas heat capacity correlation: Cp/R = CpA + CpB*T + CpC*T^2 + CpD/T^2
	// (the Smith/Van Ness/Abbott Appendix-C form), T in Kelvin.
	CpA, CpB, CpC, CpD float64

	// ViscRef is the dynamic viscosity (Pa*s) at reference temperature
	// ViscRefT (K); Viscosity scales it with a 0.7-power law, a standard
	// engineering approximation for the temperature dependence of a
	// dilute gas's viscosity.
	ViscRef  float64
	ViscRefT float64
}

// RackettZ returns the compressibility factor the Rackett correlation
// should use: ZRA if it was fitted, otherwise the true critical Zc.
func (s Substance) RackettZ() float64 {
	if s.ZRA > 0 {
		return s.ZRA
	}
	return s.Zc
}

// R returns the specific gas constant for the substance, J/(kg*K).
func (s Substance) R() float64 {
	const RSI = 8.314
	return RSI / s.MW
}

// CpIdeal returns the ideal-gas specific heat capacity at temperature T, J/(kg*K).
func (s Substance) CpIdeal(T float64) float64 {
	cpOverR := s.CpA + s.CpB*T + s.CpC*T*T + s.CpD/(T*T)
	return cpOverR * s.R()
}

// Viscosity returns the dynamic viscosity (Pa*s) at temperature T by
// scaling ViscRef/ViscRefT with a 0.7-power law.
func (s Substance) Viscosity(T float64) float64 {
	ref, refT := s.ViscRef, s.ViscRefT
	if ref <= 0 || refT <= 0 {
		ref, refT = 1.8e-5, 300
	}
	return ref * math.Pow(T/refT, 0.7)
}

// Catalog is the built-in set of substances shipped with radcomp, keyed
// by lower-case name. It is a plain map: callers can register additional
// substances by assigning into it before use.
var Catalog = map[string]Substance{
	"water": {
		Name: "water", MW: 0.0180153,
		Tc: 647.096, Pc: 22.064e6, Vc: 1.0 / 322.0, Zc: 0.2294,
		Acentric: 0.344, ZRA: 0.261447157,
		CpA: 3.470, CpB: 1.450e-3, CpC: 0, CpD: 0.121e5,
		ViscRef: 1.02e-5, ViscRefT: 373.15,
	},
	"nitrogen": {
		Name: "nitrogen", MW: 0.0280134,
		Tc: 126.2, Pc: 3.39e6, Vc: 8.98e-5 / 0.0280134, Zc: 0.289,
		Acentric: 0.039,
		CpA:      3.280, CpB: 0.593e-3, CpC: 0, CpD: 0.040e5,
		ViscRef:  1.76e-5, ViscRefT: 300,
	},
	"co2": {
		Name: "co2", MW: 0.0440098,
		Tc: 304.2, Pc: 7.38e6, Vc: 9.4e-5 / 0.0440098, Zc: 0.274,
		Acentric: 0.224,
		CpA:      5.457, CpB: 1.045e-3, CpC: 0, CpD: -1.157e5,
		ViscRef:  1.49e-5, ViscRefT: 300,
	},
	"air": {
		Name: "air", MW: 0.028851,
		Tc: 132.2, Pc: 3.77e6, Vc: 84.8e-6 / 0.028851, Zc: 0.293,
		Acentric: 0.035,
		CpA:      3.355, CpB: 0.575e-3, CpC: 0, CpD: -0.016e5,
		ViscRef:  1.8e-5, ViscRefT: 300,
	},
}
