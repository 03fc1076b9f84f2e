package inducer

import (
	"math"
	"testing"

	"github.com/cyrilpic/radcomp/condition"
	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/geometry"
	"github.com/cyrilpic/radcomp/internal/testfluid"
)

func sampleGeometry() geometry.Geometry {
	return geometry.Geometry{
		R1: 0.04, R2s: 0.05, R2h: 0.02,
		B2: -45, B2s: -60, A2: 0,
		R4: 0.1, B4: 0.01,
		R5: 0.15, B5: 0.008,
		Be4: -40, NBl: 12, NSp: 12,
		BladeE: 0.2e-3, RugImp: 1.2e-5, Clearance: 3e-4, Backface: 3e-4,
		RugInd: 1.2e-5, LInd: 0.4, LComp: 0.07,
		Blockage: [5]float64{1, 1, 1, 1, 1},
	}
}

func sampleCondition(t *testing.T) condition.OperatingCondition {
	t.Helper()
	fld := testfluid.Air()
	in0, err := fld.ThermoProp(eos.PT, 1e5, 300)
	if err != nil {
		t.Fatalf("setup in0: %v", err)
	}
	return condition.OperatingCondition{In0: in0, Fld: fld, M: 0.5, NRot: 12000.0}
}

func TestSolveConverges(t *testing.T) {
	geom := sampleGeometry()
	op := sampleCondition(t)

	ind := Solve(geom, op)
	if ind.ChokeFlag {
		t.Fatalf("unexpected choke on a well-posed sample geometry")
	}
	if !ind.Out.IsSet() {
		t.Fatalf("expected Out to be populated on a converged solve")
	}
	if ind.Out.AEff != geom.A2Eff() {
		t.Errorf("Out.AEff = %v, want %v", ind.Out.AEff, geom.A2Eff())
	}
}

func TestSolveMassConservationAtThroat(t *testing.T) {
	geom := sampleGeometry()
	op := sampleCondition(t)

	ind := Solve(geom, op)
	if ind.ChokeFlag {
		t.Fatalf("unexpected choke")
	}

	residual := math.Abs(op.M-geom.A1Eff()*ind.In1.C*ind.In1.Static.D) / op.M
	if residual > 1e-3 {
		t.Errorf("station-1 mass residual = %v, want <= 1e-3", residual)
	}

	residual2 := math.Abs(op.M-geom.A2Eff()*ind.Out.C*ind.Out.Static.D) / op.M
	if residual2 > 1e-3 {
		t.Errorf("station-2 mass residual = %v, want <= 1e-3", residual2)
	}
}

func TestSolveChokesOnTinyInletArea(t *testing.T) {
	geom := sampleGeometry()
	geom.R1 = 0.001 // collapses A1_eff, forcing c1_guess/a_tot > 1.5
	op := sampleCondition(t)

	ind := Solve(geom, op)
	if !ind.ChokeFlag {
		t.Errorf("expected choke flag with a collapsed inlet area")
	}
}
