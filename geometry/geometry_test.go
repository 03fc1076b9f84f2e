package geometry

import (
	"math"
	"testing"
)

func sampleGeometry() Geometry {
	return Geometry{
		R1: 0.04, R2s: 0.05, R2h: 0.02,
		B2: -45, B2s: -60, A2: 0,
		R4: 0.1, B4: 0.01,
		R5: 0.15, B5: 0.008,
		Be4:    -40,
		NBl:    12, NSp: 12,
		BladeE: 0.2e-3, RugImp: 1.2e-5, Clearance: 3e-4, Backface: 3e-4,
		RugInd: 1.2e-5, LInd: 0.4, LComp: 0.07,
		Blockage: [5]float64{1, 1, 1, 1, 1},
	}
}

func TestR2rms(t *testing.T) {
	g := sampleGeometry()
	want := math.Sqrt((g.R2s*g.R2s + g.R2h*g.R2h) / 2)
	if got := g.R2rms(); math.Abs(got-want) > 1e-12 {
		t.Errorf("R2rms() = %v, want %v", got, want)
	}
}

func TestSlipMonotonicity(t *testing.T) {
	g := sampleGeometry()
	s1 := g.Slip()
	g.NBl = 8
	g.NSp = 8
	s2 := g.Slip()
	if !(s2 < s1) {
		t.Errorf("slip should strictly decrease as blade count decreases: s(%v)=%v, s(%v)=%v", 24, s1, 16, s2)
	}
}

func TestBeta2OptBetweenAreaRatio(t *testing.T) {
	g := sampleGeometry()
	opt := g.Beta2Opt()
	if math.IsNaN(opt) {
		t.Fatalf("Beta2Opt() is NaN")
	}
}

func TestFromMapBlockageScalars(t *testing.T) {
	data := map[string]float64{
		"R1": 0.04, "R2s": 0.05, "R2h": 0.02, "Beta2": -45, "Beta2s": -60,
		"Alpha2": 0, "R4": 0.1, "B4": 0.01, "R5": 0.15, "B5": 0.008,
		"Beta4": -40, "n_blades": 12, "n_splits": 12,
		"blade_e": 0.2e-3, "rug_imp": 1.2e-5, "clearance": 3e-4,
		"backface": 3e-4, "rug_ind": 1.2e-5, "l_ind": 0.4, "l_comp": 0.07,
		"blockage1": 1, "blockage2": 1, "blockage3": 1, "blockage4": 1, "blockage5": 1,
	}

	g, err := FromMap(data, nil)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if g.R4 != 0.1 || g.NBl != 12 {
		t.Errorf("FromMap did not populate expected fields: %+v", g)
	}
}

func TestFromMapRejectsBadRadii(t *testing.T) {
	g := sampleGeometry()
	g.R2h = g.R2s // violates r4 > r2s > r2h > 0

	data := map[string]float64{"r1": g.R1, "r2s": g.R2s, "r2h": g.R2h, "r4": g.R4, "beta4": g.Be4, "n_blades": g.NBl, "n_splits": g.NSp}
	if _, err := FromMap(data, []float64{1, 1, 1, 1, 1}); err == nil {
		t.Errorf("expected error for r2h == r2s")
	}
}
