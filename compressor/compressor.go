// Package compressor orchestrates the inducer, impeller and vaneless
// diffuser stages into a single mean-line performance calculation:
// pressure ratio, efficiency, specific speed/diameter, power, and the
// choke/wet/surge operability flags.
package compressor

import (
	"math"

	"github.com/cyrilpic/radcomp/condition"
	"github.com/cyrilpic/radcomp/diffuser"
	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/geometry"
	"github.com/cyrilpic/radcomp/impeller"
	"github.com/cyrilpic/radcomp/inducer"
)

// Compressor is a single operating-point mean-line calculation.
type Compressor struct {
	geom geometry.Geometry
	op   condition.OperatingCondition

	Ind *inducer.Inducer
	Imp *impeller.Impeller
	Dif *diffuser.Diffuser

	In  inducer.State
	Out inducer.State

	InvalidFlag bool
	Eff         float64
	Dh0s        float64
	PR          float64
	Power       float64
	Ns          float64
	Ds          float64
	MIn         float64
	Head        float64
	DHeadDFlow  float64

	TipSpeed  float64
	NRotCorr  float64
	VIn       float64
	Flow      float64
}

// New builds a Compressor for geom/op; call Calculate to run it.
func New(geom geometry.Geometry, op condition.OperatingCondition) *Compressor {
	tipSpeed := geom.R4 * op.NRot
	return &Compressor{
		geom: geom, op: op,
		Eff: math.NaN(), Dh0s: math.NaN(), PR: math.NaN(), Power: math.NaN(),
		Ns: math.NaN(), Ds: math.NaN(), MIn: math.NaN(), Head: math.NaN(),
		DHeadDFlow: math.NaN(),
		TipSpeed:   tipSpeed,
		NRotCorr:   tipSpeed / op.In0.A,
		VIn:        op.M / op.In0.D,
		Flow:       (op.M / op.In0.D) / (tipSpeed * geom.R4 * geom.R4),
	}
}

// Calculate runs the full stage chain. deltaCheck controls whether the
// finite-difference surge-slope re-solve runs; it is always true for a
// caller-facing calculation and false for the inner perturbed re-solve,
// guarding against unbounded recursion.
func (c *Compressor) Calculate(deltaCheck bool) bool {
	c.Ind = inducer.Solve(c.geom, c.op)
	if c.Ind.ChokeFlag {
		c.InvalidFlag = true
		return false
	}
	c.In = c.Ind.In1
	c.MIn = c.Ind.Out.C / c.In.Total.A

	c.Imp = impeller.Solve(c.geom, c.op, c.Ind)
	if c.Imp.ChokeFlag || c.Imp.Wet {
		c.InvalidFlag = true
		return false
	}

	alphaCrit := diffuser.SurgeCriticalAngle(c.geom.R5, c.geom.R4, c.geom.B4, c.Imp.Out.MAbs)
	if c.Imp.Out.Alpha > alphaCrit {
		c.InvalidFlag = true
		return false
	}

	c.Dif = diffuser.Solve(c.geom, c.op, c.Imp, 0)
	if c.Dif.ChokeFlag {
		c.InvalidFlag = true
		return false
	}
	c.Out = c.Dif.Out

	dh := c.Out.Total.H - c.In.Total.H
	pr := c.Out.Total.P / c.In.Total.P
	if dh < 0 || pr < 1 {
		c.InvalidFlag = true
		return false
	}

	tpIs, err := c.op.Fld.ThermoProp(eos.PS, c.Out.Total.P, c.In.Total.S)
	if err != nil {
		c.InvalidFlag = true
		return false
	}
	c.Dh0s = tpIs.H - c.In.Total.H
	c.Head = c.Dh0s / (c.TipSpeed * c.TipSpeed)

	if deltaCheck {
		dOp := c.op
		dOp.M *= 1.005
		dComp := New(c.geom, dOp)
		if dComp.Calculate(false) {
			c.DHeadDFlow = (dComp.Head - c.Head) / (dComp.Flow - c.Flow)
			if c.DHeadDFlow > -1e-4 {
				c.InvalidFlag = true
				return false
			}
		}
	}

	c.Eff = c.Dh0s / dh
	c.PR = pr
	c.Power = c.op.M * dh
	sqrtVIn := math.Sqrt(c.VIn)
	c.Ns = c.op.NRot * sqrtVIn / math.Pow(c.Dh0s, 0.75)
	c.Ds = 2 * c.geom.R4 * math.Pow(c.Dh0s, 0.25) / sqrtVIn

	return !c.InvalidFlag
}
