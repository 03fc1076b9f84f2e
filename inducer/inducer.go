// Package inducer solves the two sequential root-finding problems that
// produce the impeller-inlet (station 1 and station 2) thermodynamic and
// velocity state from an inlet stagnation condition.
package inducer

import (
	"math"

	"github.com/cyrilpic/radcomp/condition"
	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/geometry"
	"github.com/cyrilpic/radcomp/internal/friction"
	"github.com/cyrilpic/radcomp/internal/rootfind"
)

// State is a per-station thermodynamic and velocity record. It is
// default-constructed "unset" (Total.IsSet() == false) and replaced
// wholesale on a successful solve.
type State struct {
	Total      eos.ThermoProp
	MAbs       float64
	Static     eos.ThermoProp
	Isentropic eos.ThermoProp
	AEff       float64
	C          float64
	Alpha      float64
}

// NewState returns the "not yet computed" placeholder station record.
func NewState() State {
	return State{Total: eos.Unset(), Static: eos.Unset(), Isentropic: eos.Unset(),
		MAbs: math.NaN(), AEff: math.NaN(), C: math.NaN(), Alpha: math.NaN()}
}

// IsSet reports whether the station has been populated by a solve.
func (s State) IsSet() bool { return s.Total.IsSet() }

// Inducer is the solved inducer stage: station 1 (inlet throat) and
// station 2 (impeller entry, after duct friction).
type Inducer struct {
	In1       State
	Out       State
	Dh0s      float64
	Eff       float64
	ChokeFlag bool

	// Heat is the specific heat addition ahead of station 2, J/s; always
	// zero in this solver (no heated-duct modelling), kept for parity
	// with the source's heat bookkeeping hook.
	Heat float64
}

// Solve runs the inducer stage for geom/op and returns the solved Inducer.
// A thermodynamically infeasible inlet (choke) is reported via ChokeFlag,
// never as an error: downstream stages short-circuit on the flag.
func Solve(geom geometry.Geometry, op condition.OperatingCondition) *Inducer {
	ind := &Inducer{In1: State{Total: op.In0, Static: eos.Unset(), Isentropic: eos.Unset(),
		MAbs: math.NaN(), AEff: math.NaN(), C: math.NaN(), Alpha: math.NaN()},
		Out: NewState()}

	inTotal := op.In0
	a1Eff := geom.A1Eff()
	a2Eff := geom.A2Eff()

	resolveC1 := func(c1 float64) float64 {
		stat1, err := eos.StaticFromTotal(inTotal, c1)
		if err != nil {
			return 1e3
		}
		return (op.M - a1Eff*c1*stat1.D) / op.M
	}

	c1Guess := op.M / a1Eff / inTotal.D
	if c1Guess/inTotal.A > 1.5 {
		ind.ChokeFlag = true
		return ind
	}

	c1, residual, ok := rootfind.ScalarSolve(resolveC1, c1Guess, rootfind.DefaultOptions())
	if !ok || math.Abs(residual) > 1e-3 {
		ind.ChokeFlag = true
		return ind
	}

	stat1, err := eos.StaticFromTotal(inTotal, c1)
	if err != nil {
		ind.ChokeFlag = true
		return ind
	}
	ind.In1.C = c1
	ind.In1.AEff = a1Eff
	ind.In1.Static = stat1
	ind.In1.MAbs = c1 / stat1.A

	if ind.In1.MAbs*a1Eff/a2Eff >= 0.99 {
		ind.ChokeFlag = true
		return ind
	}

	resolveOut := func(x []float64) []float64 {
		c2, pOut := x[0], x[1]
		tot2, err := op.Fld.ThermoProp(eos.PH, pOut, inTotal.H+ind.Heat/op.M)
		if err != nil {
			return []float64{1e3, 1e3}
		}
		stat2, err := eos.StaticFromTotal(tot2, c2)
		if err != nil {
			return []float64{1e3, 1e3}
		}
		err2 := (op.M - a2Eff*c2*stat2.D) / op.M

		re := c2 * 2 * geom.R2s * stat2.D / stat2.V
		cf := friction.Moody(re, geom.RugInd/(2*geom.R2s))
		dP := 4 * cf * geom.LInd * c2 * c2 / (4 * geom.R2s) * stat2.D
		poutCalc := inTotal.P - dP
		err3 := (poutCalc - tot2.P) / inTotal.P

		return []float64{err2, err3}
	}

	c2Guess := op.M / a2Eff / stat1.D
	reG := c2Guess * 2 * geom.R2s * stat1.D / stat1.V
	cfG := friction.Moody(reG, geom.RugInd/(2*geom.R2s))
	dPGuess := 4 * cfG * geom.LInd * c2Guess * c2Guess / (4 * geom.R2s) * stat1.D
	poutGuess := inTotal.P - dPGuess

	opts := rootfind.DefaultOptions()
	opts.Tol = 1e-4
	sol := rootfind.Solve(resolveOut, []float64{c2Guess, poutGuess}, opts)
	if !sol.Ok || rootfind.MaxInfNorm(sol.Residual) > 1e-3 {
		ind.ChokeFlag = true
		return ind
	}

	c2, pOut := sol.X[0], sol.X[1]

	tot2, err := op.Fld.ThermoProp(eos.PH, pOut, inTotal.H+ind.Heat/op.M)
	if err != nil {
		ind.ChokeFlag = true
		return ind
	}
	isen2, err := op.Fld.ThermoProp(eos.PS, pOut, inTotal.S)
	if err != nil {
		ind.ChokeFlag = true
		return ind
	}
	stat2, err := eos.StaticFromTotal(tot2, c2)
	if err != nil {
		ind.ChokeFlag = true
		return ind
	}

	ind.Out = State{Total: tot2, Isentropic: isen2, C: c2, Static: stat2,
		MAbs: c2 / stat2.A, AEff: a2Eff}

	ind.Dh0s = isen2.H - inTotal.H
	deltaH := tot2.H - inTotal.H
	if math.Abs(deltaH) <= 1e-6 {
		ind.Eff = math.Copysign(math.Inf(1), ind.Dh0s)
	} else {
		ind.Eff = ind.Dh0s / deltaH
	}

	return ind
}
