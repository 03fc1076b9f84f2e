// Package impeller solves the impeller stage: the inlet relative velocity
// triangle, the incidence loss and throat mass balance, and the
// four-variable discharge coupling of the outlet triangle, pressure and
// the six loss correlations.
package impeller

import (
	"math"

	"github.com/cyrilpic/radcomp/condition"
	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/geometry"
	"github.com/cyrilpic/radcomp/inducer"
	"github.com/cyrilpic/radcomp/internal/friction"
	"github.com/cyrilpic/radcomp/internal/rootfind"
)

// State extends inducer.State with the rotating-frame quantities the
// impeller solver needs: relative stagnation state, relative velocity w
// (and w at shroud), relative Mach numbers and relative flow angle beta.
type State struct {
	inducer.State
	Relative eos.ThermoProp
	W        float64
	Ws       float64
	MAbsM    float64
	MRel     float64
	MRels    float64
	Beta     float64
}

// NewState returns the "not yet computed" placeholder impeller station.
func NewState() State {
	return State{State: inducer.NewState(), Relative: eos.Unset(),
		W: math.NaN(), Ws: math.NaN(), MAbsM: math.NaN(), MRel: math.NaN(),
		MRels: math.NaN(), Beta: math.NaN()}
}

// Losses collects the six additive specific-enthalpy loss terms. The
// first four are internal (they enter the static enthalpy balance); disc
// friction and recirculation are external/parasitic (stagnation rise only).
type Losses struct {
	SkinFriction  float64
	BladeLoading  float64
	Clearance     float64
	Incidence     float64
	DiscFriction  float64
	Recirculation float64
}

// Impeller is the solved impeller stage.
type Impeller struct {
	In2       State
	In3       State
	Out       State
	Losses    Losses
	Dh0s      float64
	Eff       float64
	ChokeFlag bool
	Wet       bool
}

func skinFrictionLoss(geom geometry.Geometry, wIn, wOut float64, statIn, statOut eos.ThermoProp) float64 {
	Dh, Lh := geom.HydraulicDiameter()
	wBar := (wIn + wOut) / 2
	re := Dh * wBar * (statIn.D + statOut.D) / 2 / ((statIn.V + statOut.V) / 2)
	cf := friction.Moody(re, geom.RugImp/Dh)
	return 4 * cf * Lh * wBar * wBar / (2 * Dh)
}

func diffusionFactor(geom geometry.Geometry, wIn, outH, w4, nRot float64) float64 {
	_, Lh := geom.HydraulicDiameter()
	dhAero := outH / ((nRot * geom.R4) * (nRot * geom.R4))
	return 1 - w4/wIn + math.Pi*geom.R4*geom.R4*dhAero*nRot/((geom.NBl+geom.NSp)*Lh*wIn) +
		0.1*(geom.R2s-geom.R2h+geom.B4)/2/(geom.R4-geom.R2s)*(1+w4/wIn)
}

func bladeLoadingLoss(geom geometry.Geometry, Df, nRot float64) float64 {
	return 0.05 * Df * Df * (nRot * geom.R4) * (nRot * geom.R4)
}

// clearanceLoss implements the Jansen/Brasz correlation. The bracketed
// term can go slightly negative from precision loss in extreme
// geometries; clamp it at zero before the square root.
func clearanceLoss(geom geometry.Geometry, statIn eos.ThermoProp, tp4 eos.ThermoProp, c4t, cIn, nRot float64) float64 {
	c4t = math.Abs(c4t)
	tipSpeed := nRot * geom.R4
	bracket := 4 * math.Pi / geom.B4 / geom.NBl * c4t * cIn * math.Cos(geom.A2*math.Pi/180) /
		(tipSpeed * tipSpeed) * (geom.R2s*geom.R2s - geom.R2h*geom.R2h) /
		((geom.R4 - geom.R2s) * (1 + tp4.D/statIn.D))
	if bracket < 0 {
		bracket = 0
	}
	return 0.6 * geom.Clearance / geom.B4 * c4t / tipSpeed * math.Sqrt(bracket) * tipSpeed * tipSpeed
}

func discFrictionLoss(geom geometry.Geometry, tp4 eos.ThermoProp, m, nRot float64) float64 {
	reY := 2.0 * nRot * geom.R4 * geom.R4 * tp4.D / tp4.V
	var kf float64
	if reY > 3e5 {
		kf = 0.102 * math.Pow(geom.Backface/geom.R4, 0.1) / math.Pow(reY, 0.2)
	} else {
		kf = 3.7 * math.Pow(geom.Backface/geom.R4, 0.1) / math.Pow(reY, 0.5)
	}
	return 0.25 * tp4.D * nRot * geom.R4 * geom.R4 * geom.R4 * kf / m * (nRot * geom.R4) * (nRot * geom.R4)
}

func recirculationLoss(geom geometry.Geometry, Df, alpha, nRot float64) float64 {
	return 0.02 * Df * Df * math.Tan(math.Abs(alpha*math.Pi/180)) * (nRot * geom.R4) * (nRot * geom.R4)
}

// Solve runs the impeller stage given the already-solved Inducer output.
func Solve(geom geometry.Geometry, op condition.OperatingCondition, ind *inducer.Inducer) *Impeller {
	imp := &Impeller{
		In2: State{State: ind.Out, Relative: eos.Unset(), W: math.NaN(), Ws: math.NaN(),
			MAbsM: math.NaN(), MRel: math.NaN(), MRels: math.NaN(), Beta: math.NaN()},
		In3: NewState(),
		Out: NewState(),
	}

	c2Theta := imp.In2.C * math.Sin(geom.A2*math.Pi/180)
	c2M := imp.In2.C * math.Cos(geom.A2*math.Pi/180)
	w2tS := geom.R2s*op.NRot - c2Theta
	beta2Fs := -math.Atan(w2tS/c2M) * 180 / math.Pi
	w2s := c2M / math.Cos(beta2Fs*math.Pi/180)

	w2t := geom.R2rms()*op.NRot - c2Theta
	beta2F := -math.Atan(w2t/c2M) * 180 / math.Pi
	w2 := c2M / math.Cos(beta2F*math.Pi/180)

	relative2, err := eos.TotalFromStatic(imp.In2.Static, w2)
	if err != nil {
		imp.Wet = true
		return imp
	}
	imp.In2.Relative = relative2
	imp.In2.Ws = w2s
	imp.In2.W = w2
	imp.In2.MRel = w2 / imp.In2.Static.A
	imp.In2.MRels = w2s / imp.In2.Static.A

	if imp.In2.MRel >= 0.99 {
		imp.ChokeFlag = true
		return imp
	}

	beta2Opt := geom.Beta2Opt()
	dhInc := 0.5 * math.Pow(w2*math.Sin(math.Abs(math.Abs(beta2F)-math.Abs(beta2Opt))*math.Pi/180), 2)
	rel3Temp, err := op.Fld.ThermoProp(eos.HS, imp.In2.Relative.H-dhInc, imp.In2.Relative.S)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	rel3, err := op.Fld.ThermoProp(eos.PH, rel3Temp.P, imp.In2.Relative.H)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	imp.In3.Relative = rel3
	imp.Losses.Incidence = dhInc

	aY := geom.AY()
	resolveStatic := func(w float64) float64 {
		stat3, err := eos.StaticFromTotal(imp.In2.Relative, w)
		if err != nil {
			return 1e4
		}
		return (op.M - aY*w*stat3.D) / op.M
	}

	w3Guess := 0.65 * imp.In2.Relative.A
	w3, residual, ok := rootfind.ScalarSolve(resolveStatic, w3Guess, rootfind.DefaultOptions())
	if !ok || math.Abs(residual) > 1e-3 {
		imp.ChokeFlag = true
		return imp
	}

	stat3, err := eos.StaticFromTotal(imp.In2.Relative, w3)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	imp.In3.Static = stat3

	aX := geom.AX()
	c3M := c2M * aX / aY
	c3 := c3M / math.Cos(geom.A2*math.Pi/180)
	imp.In3.MRel = w3 / stat3.A
	imp.In3.MAbs = c3 / stat3.A

	tot3, err := eos.TotalFromStatic(stat3, c3)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	imp.In3.Total = tot3
	imp.In3.W = w3
	imp.In3.C = c3

	h4Rel := 0.5*((geom.R4*op.NRot)*(geom.R4*op.NRot)-(geom.R2rms()*op.NRot)*(geom.R2rms()*op.NRot)) + imp.In2.Relative.H
	tp4Rel, err := op.Fld.ThermoProp(eos.HS, h4Rel, imp.In2.Relative.S)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	if tp4Rel.Phase == eos.TwoPhase {
		imp.Wet = true
		return imp
	}

	a4Total := 2 * math.Pi * geom.R4 * geom.B4 * geom.Blockage[3]

	resolveDischarge := func(x []float64) []float64 {
		beta4F, w4, dhLosses, p4Rel := x[0], x[1], x[2], x[3]

		dhLo := dhLosses
		if dhLosses < 0 {
			dhLo = 0
		}
		p4r := p4Rel
		if p4Rel <= 0 {
			p4r = tp4Rel.P
		}

		tp4r, err := op.Fld.ThermoProp(eos.PH, p4r, h4Rel+dhLo)
		if err != nil {
			return []float64{1e4, 1e4, 1e4, 1e4}
		}
		a4Rel := a4Total * math.Cos(beta4F*math.Pi/180)

		tp4Stat, err := eos.StaticFromTotal(tp4r, w4)
		if err != nil {
			return []float64{1e4, 1e4, 1e4, 1e4}
		}

		err1 := (op.M - a4Rel*w4*tp4Stat.D) / op.M

		c4m := op.M / a4Total / tp4Stat.D
		c4t := c4m*math.Tan(geom.Be4*math.Pi/180) + geom.Slip()*(geom.R4*op.NRot)
		w4t := geom.R4*op.NRot - c4t

		w4New := math.Sqrt(w4t*w4t + c4m*c4m)
		beta4FNew := -math.Asin(w4t/w4New) * 180 / math.Pi
		err2 := (beta4FNew - beta4F) / 60.0

		c4 := math.Sqrt(c4t*c4t + c4m*c4m)
		alpha := math.Atan(c4t/c4m) * 180 / math.Pi

		tp4Tot, err := eos.TotalFromStatic(tp4Stat, c4)
		if err != nil {
			return []float64{err1, err2, 1e4, 1e4}
		}
		outH := tp4Tot.H - imp.In2.Total.H
		Df := diffusionFactor(geom, imp.In2.W, outH, w4, op.NRot)

		dhSf := skinFrictionLoss(geom, imp.In2.W, w4, imp.In2.Static, tp4Stat)
		dhBl := bladeLoadingLoss(geom, Df, op.NRot)
		dhCl := clearanceLoss(geom, imp.In2.Static, tp4Stat, c4t, imp.In2.C, op.NRot)
		dhLossesInt := dhSf + dhBl + dhCl + dhInc

		dhDf := discFrictionLoss(geom, tp4Stat, op.M, op.NRot)
		dhR := recirculationLoss(geom, Df, alpha, op.NRot)
		dhLossesExt := dhDf + dhR

		err3 := (dhLossesExt - dhLosses) / imp.In2.Relative.H

		tp4Temp, err := op.Fld.ThermoProp(eos.HS, h4Rel-dhLossesInt, imp.In2.Relative.S)
		if err != nil {
			return []float64{err1, err2, err3, 1e4}
		}
		err4 := (tp4Temp.P-tp4r.P)/imp.In2.Relative.P + math.Abs(p4Rel-p4r)

		return []float64{err1, err2, err3, err4}
	}

	beta4F0 := geom.Be4 - 10.0
	a4Rel := 2 * math.Pi * geom.R4 * geom.B4 * geom.Blockage[3] * math.Cos(beta4F0*math.Pi/180)
	w4Guess := op.M / a4Rel / tp4Rel.D
	dhDfGuess := discFrictionLoss(geom, tp4Rel, op.M, op.NRot)

	opts := rootfind.DefaultOptions()
	opts.Tol = 1e-4
	sol := rootfind.Solve(resolveDischarge, []float64{beta4F0, w4Guess, dhDfGuess, tp4Rel.P}, opts)
	if !sol.Ok || rootfind.MaxInfNorm(sol.Residual) > 1e-3 {
		imp.ChokeFlag = true
		return imp
	}

	beta4F, w4, dhLosses, p4Rel := sol.X[0], sol.X[1], sol.X[2], sol.X[3]
	imp.Out.W = w4

	outRelative, err := op.Fld.ThermoProp(eos.PH, p4Rel, h4Rel+dhLosses)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	imp.Out.Relative = outRelative
	outStatic, err := eos.StaticFromTotal(outRelative, w4)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	imp.Out.Static = outStatic

	c4m := op.M / a4Total / outStatic.D
	c4t := c4m*math.Tan(geom.Be4*math.Pi/180) + geom.Slip()*(geom.R4*op.NRot)
	c4 := math.Sqrt(c4t*c4t + c4m*c4m)
	imp.Out.C = c4
	alpha := math.Atan(c4t/c4m) * 180 / math.Pi

	outTotal, err := eos.TotalFromStatic(outStatic, c4)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	imp.Out.Total = outTotal
	outIsen, err := op.Fld.ThermoProp(eos.PS, outTotal.P, imp.In2.Static.S)
	if err != nil {
		imp.ChokeFlag = true
		return imp
	}
	imp.Out.Isentropic = outIsen

	outH := outTotal.H - imp.In2.Total.H
	Df := diffusionFactor(geom, imp.In2.W, outH, w4, op.NRot)

	imp.Losses.SkinFriction = skinFrictionLoss(geom, imp.In2.W, w4, imp.In2.Static, outStatic)
	imp.Losses.BladeLoading = bladeLoadingLoss(geom, Df, op.NRot)
	imp.Losses.Clearance = clearanceLoss(geom, imp.In2.Static, outStatic, c4t, imp.In2.C, op.NRot)
	imp.Losses.DiscFriction = discFrictionLoss(geom, outStatic, op.M, op.NRot)
	imp.Losses.Recirculation = recirculationLoss(geom, Df, alpha, op.NRot)

	imp.Out.MAbs = c4 / outStatic.A
	imp.Out.MAbsM = c4 * math.Cos(alpha*math.Pi/180) / outStatic.A
	imp.Out.MRel = w4 / outStatic.A

	imp.Out.Beta = beta4F
	imp.Out.Alpha = alpha

	imp.Dh0s = outIsen.H - imp.In2.Total.H
	imp.Eff = outH / imp.Dh0s

	if imp.Out.MRel >= 0.99 || imp.Out.MAbsM >= 0.99 {
		imp.ChokeFlag = true
	}
	if imp.Out.Total.P < imp.In2.Total.P {
		imp.ChokeFlag = true
	}

	return imp
}
