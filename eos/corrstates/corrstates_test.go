package corrstates

import (
	"math"
	"testing"

	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/eos/substance"
)

func airFluid() *Fluid {
	return New(substance.Catalog["air"])
}

func TestPTAboveTcProducesSupercriticalGasPhase(t *testing.T) {
	f := airFluid()
	// 300 K is above air's Tc (132.2 K) and 1e5 Pa is below its Pc.
	pt, err := f.ThermoProp(eos.PT, 1e5, 300)
	if err != nil {
		t.Fatalf("PT: %v", err)
	}
	if pt.Phase != eos.SupercriticalGas {
		t.Errorf("Phase = %v, want SupercriticalGas", pt.Phase)
	}
	if pt.D <= 0 {
		t.Errorf("D = %v, want > 0", pt.D)
	}
}

func TestPHRoundTrip(t *testing.T) {
	f := airFluid()
	pt, err := f.ThermoProp(eos.PT, 1e5, 310)
	if err != nil {
		t.Fatalf("PT: %v", err)
	}
	ph, err := f.ThermoProp(eos.PH, 1e5, pt.H)
	if err != nil {
		t.Fatalf("PH: %v", err)
	}
	if math.Abs(ph.T-310) > 0.1 {
		t.Errorf("recovered T = %v, want ~310", ph.T)
	}
}

func TestTQQualityBracketsLiquidAndVapor(t *testing.T) {
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
}

func TestPQInvertsSaturationTemperature(t *testing.T) {
	f := New(substance.Catalog["co2"])
	tq, err := f.ThermoProp(eos.TQ, 260, 0.3)
	if err != nil {
		t.Fatalf("TQ: %v", err)
	}
	pq, err := f.ThermoProp(eos.PQ, tq.P, 0.3)
	if err != nil {
		t.Fatalf("PQ: %v", err)
	}
	if math.Abs(pq.T-260) > 0.5 {
		t.Errorf("recovered T = %v, want ~260", pq.T)
	}
}
