// Package condition describes the inlet operating point of a compressor
// calculation: stagnation state, fluid handle, mass flow and shaft speed.
package condition

import "github.com/cyrilpic/radcomp/eos"

// OperatingCondition is the inlet stagnation state, mass flow and shaft
// angular speed (rad/s) a Compressor solves at.
type OperatingCondition struct {
	In0   eos.ThermoProp
	Fld   eos.Fluid
	M     float64 // mass flow, kg/s
	NRot  float64 // shaft angular speed, rad/s
}
