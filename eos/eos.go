// Package eos defines the real-fluid equation-of-state contract shared by
// every solver in radcomp: a one-shot property query plus fluid-limit
// accessors. Concrete engines (eos/cubiceos, eos/corrstates) implement
// Fluid; the solver packages depend only on this interface.
package eos

import "math"

// RSI is the universal gas constant in SI units, J/(mol*K).
const RSI = 8.314

// Pair names the two fixed thermodynamic inputs of a property query.
type Pair string

const (
	PT Pair = "PT" // pressure, temperature
	HS Pair = "HS" // enthalpy, entropy
	PH Pair = "PH" // pressure, enthalpy
	PS Pair = "PS" // pressure, entropy
	TQ Pair = "TQ" // temperature, vapor quality
	PQ Pair = "PQ" // pressure, vapor quality
)

// Phase tags the region of state space a ThermoProp was resolved in.
type Phase string

const (
	Gas              Phase = "gas"
	TwoPhase         Phase = "twophase"
	Supercritical    Phase = "supercritical"
	SupercriticalGas Phase = "supercritical_gas"
)

// ThermoProp is an immutable snapshot of a fluid state. If Phase is
// TwoPhase, A and V are taken at the saturated-vapor boundary, never the
// liquid side. Fld is a non-owning back-reference used to issue further
// queries against the same fluid/substance; it is never used to mutate
// this snapshot.
type ThermoProp struct {
	P     float64 // Pa
	T     float64 // K
	D     float64 // kg/m^3
	H     float64 // J/kg
	S     float64 // J/(kg*K)
	A     float64 // speed of sound, m/s
	V     float64 // dynamic viscosity, Pa*s
	Phase Phase
	Fld   Fluid
}

// IsSet reports whether p has been populated by a successful query
// (as opposed to being a default-constructed placeholder).
func (p ThermoProp) IsSet() bool {
	return !math.IsNaN(p.P)
}

// Unset returns the "not yet computed" placeholder ThermoProp: every
// numeric field is NaN, so IsSet reports false until a real query
// replaces it wholesale. Station records default to this value.
func Unset() ThermoProp {
	nan := math.NaN()
	return ThermoProp{P: nan, T: nan, D: nan, H: nan, S: nan, A: nan, V: nan}
}

// Limits exposes the validity envelope and critical/triple points of a
// fluid, independent of any single property query.
type Limits struct {
	PMax    float64
	TMax    float64
	PCrit   float64
	TCrit   float64
	PTriple float64
	TTriple float64
}

// Fluid is an equation-of-state handle: a one-shot property query plus
// fluid-limit accessors. A handle may be stateful, in which case the
// caller must give each concurrent worker its own handle; the two engines
// shipped in this module
// (eos/cubiceos, eos/corrstates) are stateless and safe to share.
type Fluid interface {
	// ThermoProp resolves a property query (pair, v1, v2) -> state.
	// Returns an OutOfRange error if the inputs are rejected or the
	// resolved phase is liquid-only.
	ThermoProp(pair Pair, v1, v2 float64) (ThermoProp, error)
	// Limits returns the fluid's validity envelope.
	Limits() Limits
	// Activate performs any one-time setup a stateful engine requires.
	// Stateless engines implement it as a no-op.
	Activate() error
}
