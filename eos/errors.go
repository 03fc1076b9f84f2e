package eos

import "fmt"

// OutOfRangeError is returned by a Fluid when it rejects the requested
// inputs (out of the engine's validity envelope) or resolves to a
// liquid-only state. It is the Go analogue of the pack's ThermoException.
type OutOfRangeError struct {
	Pair Pair
	V1   float64
	V2   float64
	Msg  string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("eos: out of range for %s(%g, %g): %s", e.Pair, e.V1, e.V2, e.Msg)
}

// InputError represents an error resulting from invalid input parameters
// to a helper function (as opposed to an engine-level state failure).
type InputError struct {
	Msg string
}

func (e InputError) Error() string {
	return e.Msg
}

var (
	// ErrTemp is returned when the absolute temperature is <= 0.
	ErrTemp = InputError{Msg: "absolute temperature (T) must be greater than 0"}
	// ErrPressure is returned when the pressure is <= 0.
	ErrPressure = InputError{Msg: "pressure (P) cannot be negative"}
	// ErrCriticalProp is returned when a critical property is <= 0.
	ErrCriticalProp = InputError{Msg: "critical property (Tc, Pc, Vc or Zc) must be greater than 0"}
	// ErrUniversalConst is returned when R is <= 0.
	ErrUniversalConst = InputError{Msg: "universal gas constant (R) must be greater than 0"}
	// ErrVolume is returned when the molar/specific volume is <= 0.
	ErrVolume = InputError{Msg: "volume (V) must be greater than 0"}
	// ErrInvalidTr is returned when the reduced temperature is <= 0.
	ErrInvalidTr = InputError{Msg: "reduced temperature (Tr) must be greater than 0"}
)
