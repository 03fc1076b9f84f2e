// Package diffuser solves the vaneless diffuser stage: a radial march
// with a per-step mass-balance root-find, and the tabulated surge
// critical-angle correlation used by the compressor orchestrator.
package diffuser

import (
	"math"

	"github.com/cyrilpic/radcomp/condition"
	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/geometry"
	"github.com/cyrilpic/radcomp/impeller"
	"github.com/cyrilpic/radcomp/inducer"
	"github.com/cyrilpic/radcomp/internal/rootfind"
)

// State is a diffuser per-station record; it carries the same fields as
// an inducer station (stagnation/static/isentropic state, absolute
// velocity, Mach and flow angle) with no rotating-frame quantities.
type State = inducer.State

// DefaultSteps is the default number of equal radial steps the march uses.
const DefaultSteps = 15

// Diffuser is the solved vaneless-diffuser stage.
type Diffuser struct {
	In4       State
	Out       State
	Loss      float64
	Dh0s      float64
	Eff       float64
	ChokeFlag bool
	NSteps    int
}

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + step*float64(i)
	}
	return out
}

// Solve runs the vaneless diffuser march from the impeller discharge
// state. nSteps <= 0 selects DefaultSteps.
func Solve(geom geometry.Geometry, op condition.OperatingCondition, imp *impeller.Impeller, nSteps int) *Diffuser {
	if nSteps <= 0 {
		nSteps = DefaultSteps
	}

	dif := &Diffuser{In4: imp.Out.State, Out: inducer.NewState(), NSteps: nSteps}

	r := linspace(geom.R4, geom.R5, nSteps+1)
	b := linspace(geom.B4, geom.B5, nSteps+1)

	dr := make([]float64, nSteps)
	for i := range dr {
		dr[i] = r[i+1] - r[i]
	}

	Dh := make([]float64, nSteps)
	Aeff := make([]float64, nSteps)
	for i := 0; i < nSteps; i++ {
		Dh[i] = math.Sqrt(8 * r[i] * b[i+1] * geom.Blockage[4])
		Aeff[i] = 2 * r[i+1] * b[i+1] * math.Pi * geom.Blockage[4]
	}

	const k = 0.02

	// march runs the full radial march for a given set of meridional
	// velocities, returning the residual vector and (optionally) the
	// resulting outlet state.
	march := func(cm []float64) ([]float64, State) {
		in := dif.In4
		errs := make([]float64, 0, nSteps)

		for i := 0; i < nSteps; i++ {
			re := in.C * in.Static.D / in.Static.V * b[i+1]
			cf := k * math.Pow(1.8e5/re, 0.2)

			ds := math.Sqrt(math.Pow(dr[i]/math.Tan((90-in.Alpha)*math.Pi/180), 2) + dr[i]*dr[i])
			dp0 := 4.0 * cf * ds * in.C * in.C * in.Static.D / 2 / Dh[i]

			c4t := in.C * math.Sin(in.Alpha*math.Pi/180)
			c4m := in.C * math.Cos(in.Alpha*math.Pi/180)
			dCtdr := -(c4t/r[i] + cf*in.C*in.C*math.Sin(in.Alpha*math.Pi/180)/c4m/b[i+1]) * dr[i]
			c5t := c4t + dCtdr

			p0 := in.Total.P - dp0
			if p0 <= 0 && p0 < op.In0.P {
				for j := i; j < nSteps; j++ {
					errs = append(errs, 1e4)
				}
				return errs, in
			}
			tot, err := op.Fld.ThermoProp(eos.PH, p0, in.Total.H)
			if err != nil {
				for j := i; j < nSteps; j++ {
					errs = append(errs, 1e4)
				}
				return errs, in
			}

			c5m := cm[i]
			c5 := math.Sqrt(c5m*c5m + c5t*c5t)
			if c5 > 1.25*in.Total.A {
				for j := i; j < nSteps; j++ {
					errs = append(errs, 1e4)
				}
				return errs, in
			}

			stat, err := eos.StaticFromTotal(tot, c5)
			if err != nil {
				for j := i; j < nSteps; j++ {
					errs = append(errs, 1e4)
				}
				return errs, in
			}

			resid := (op.M - Aeff[i]*c5m*stat.D) / op.M

			in.C = c5
			in.Alpha = math.Asin(c5t/c5) * 180 / math.Pi
			in.Total = tot
			in.Static = stat
			in.MAbs = in.C * math.Cos(in.Alpha*math.Pi/180) / in.Static.A
			if in.MAbs >= 0.99 {
				resid += in.MAbs - 0.99
			}
			errs = append(errs, resid)
		}

		return errs, in
	}

	c4m := dif.In4.C * math.Cos(dif.In4.Alpha*math.Pi/180)
	if c4m/dif.In4.Static.A >= 0.99 {
		dif.ChokeFlag = true
		return dif
	}

	speedGuess := make([]float64, nSteps)
	for i := range speedGuess {
		speedGuess[i] = c4m * r[i] / r[i+1]
	}

	opts := rootfind.DefaultOptions()
	opts.Tol = 1e-4
	sol := rootfind.Solve(func(x []float64) []float64 {
		errs, _ := march(x)
		return errs
	}, speedGuess, opts)

	if !sol.Ok || rootfind.MaxInfNorm(sol.Residual) > 1e-3 {
		dif.ChokeFlag = true
		return dif
	}

	_, out := march(sol.X)
	out.MAbs = out.C * math.Cos(out.Alpha*math.Pi/180) / out.Static.A
	if out.MAbs >= 0.99 {
		dif.ChokeFlag = true
	}
	dif.Out = out

	outIsen, err := op.Fld.ThermoProp(eos.PS, out.Total.P, dif.In4.Total.S)
	if err != nil {
		dif.ChokeFlag = true
		return dif
	}
	dif.Out.Isentropic = outIsen
	dif.Loss = out.Total.H - outIsen.H
	dif.Dh0s = outIsen.H - dif.In4.Total.H

	deltaH := out.Total.H - dif.In4.Total.H
	if math.Abs(deltaH) <= 1e-6 {
		dif.Eff = math.Copysign(math.Inf(1), dif.Dh0s)
	} else {
		dif.Eff = dif.Dh0s / deltaH
	}

	return dif
}
