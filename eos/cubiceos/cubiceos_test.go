package cubiceos

import (
	"math"
	"testing"

	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/eos/substance"
)

func airFluid() *Fluid {
	return New(substance.Catalog["air"])
}

func TestPTRoundTripsThroughPH(t *testing.T) {
	f := airFluid()
	pt, err := f.ThermoProp(eos.PT, 1e5, 300)
	if err != nil {
		t.Fatalf("PT: %v", err)
	}
	ph, err := f.ThermoProp(eos.PH, 1e5, pt.H)
	if err != nil {
		t.Fatalf("PH: %v", err)
	}
	if math.Abs(ph.T-300) > 1e-2 {
		t.Errorf("recovered T = %v, want ~300", ph.T)
	}
	if math.Abs(ph.D-pt.D) > 1e-6*pt.D {
		t.Errorf("recovered D = %v, want %v", ph.D, pt.D)
	}
}

func TestPSRoundTrip(t *testing.T) {
	f := airFluid()
	pt, err := f.ThermoProp(eos.PT, 2e5, 350)
	if err != nil {
		t.Fatalf("PT: %v", err)
	}
	ps, err := f.ThermoProp(eos.PS, 2e5, pt.S)
	if err != nil {
		t.Fatalf("PS: %v", err)
	}
	if math.Abs(ps.T-350) > 1e-2 {
		t.Errorf("recovered T = %v, want ~350", ps.T)
	}
}

func TestHSRoundTrip(t *testing.T) {
	f := airFluid()
	pt, err := f.ThermoProp(eos.PT, 1.5e5, 320)
	if err != nil {
		t.Fatalf("PT: %v", err)
	}
	hs, err := f.ThermoProp(eos.HS, pt.H, pt.S)
	if err != nil {
		t.Fatalf("HS: %v", err)
	}
	if math.Abs(hs.T-320) > 0.1 {
		t.Errorf("recovered T = %v, want ~320", hs.T)
	}
	if math.Abs(hs.P-1.5e5) > 10 {
		t.Errorf("recovered P = %v, want ~1.5e5", hs.P)
	}
}

func TestTwoPhaseQualityBracketsLiquidAndVapor(t *testing.T) {
	f := New(substance.Catalog["co2"])
	liq, err := f.ThermoProp(eos.TQ, 250, 0)
	if err != nil {
		t.Fatalf("TQ liquid: %v", err)
	}
	vap, err := f.ThermoProp(eos.TQ, 250, 1)
	if err != nil {
		t.Fatalf("TQ vapor: %v", err)
	}
	if liq.D <= vap.D {
		t.Errorf("liquid density %v should exceed vapor density %v", liq.D, vap.D)
	}
	if liq.Phase != eos.TwoPhase || vap.Phase != eos.TwoPhase {
		t.Errorf("expected TwoPhase tags, got %v / %v", liq.Phase, vap.Phase)
	}
}

func TestPQAgreesWithSaturationPressure(t *testing.T) {
	f := New(substance.Catalog["co2"])
	tq, err := f.ThermoProp(eos.TQ, 250, 0.5)
	if err != nil {
		t.Fatalf("TQ: %v", err)
	}
	pq, err := f.ThermoProp(eos.PQ, tq.P, 0.5)
	if err != nil {
		t.Fatalf("PQ: %v", err)
	}
	if math.Abs(pq.T-250) > 0.5 {
		t.Errorf("recovered T = %v, want ~250", pq.T)
	}
}
