package cubic

import (
	"math"
	"testing"

	"github.com/cyrilpic/radcomp/eos/substance"
)

func testCfg(eosType EOSType, sub substance.Substance, T, P float64) *Cfg {
	return &Cfg{
		Type:     eosType,
		T:        T,
		P:        P,
		Tc:       sub.Tc,
		Pc:       sub.Pc,
		Acentric: sub.Acentric,
		R:        8.314,
	}
}

func TestSolveForVolumeVaporLike(t *testing.T) {
	co2 := substance.Catalog["co2"]
	cfg := testCfg(PR, co2, 350, 10e6)

	res, err := SolveForVolume(cfg)
	if err != nil {
		t.Fatalf("SolveForVolume: %v", err)
	}
	roots := res.Clean()
	if len(roots) == 0 {
		t.Fatalf("no real roots found")
	}
	vIG := cfg.R * cfg.T / cfg.P
	largest := roots[len(roots)-1]
	if largest <= 0 || largest > vIG {
		t.Errorf("vapor root %g out of plausible range (0, %g)", largest, vIG)
	}
}

func TestPressureRoundTrip(t *testing.T) {
	n2 := substance.Catalog["nitrogen"]
	cfg := testCfg(SRK, n2, 300, 5e6)

	volRes, err := SolveForVolume(cfg)
	if err != nil {
		t.Fatalf("SolveForVolume: %v", err)
	}
	roots := volRes.Clean()
	v := roots[len(roots)-1]

	pRes, err := Pressure(cfg, v)
	if err != nil {
		t.Fatalf("Pressure: %v", err)
	}
	if math.Abs(pRes.P-cfg.P) > 1e-3*cfg.P {
		t.Errorf("Pressure(volume) = %g, want close to %g", pRes.P, cfg.P)
	}
}

func TestDepartureVanishesAtLowPressure(t *testing.T) {
	air := substance.Catalog["air"]
	cfg := testCfg(PR, air, 300, 1e3)

	volRes, err := SolveForVolume(cfg)
	if err != nil {
		t.Fatalf("SolveForVolume: %v", err)
	}
	roots := volRes.Clean()
	v := roots[len(roots)-1]

	dH, dS, err := Departure(cfg, v)
	if err != nil {
		t.Fatalf("Departure: %v", err)
	}
	if math.Abs(dH) > 1.0 {
		t.Errorf("dH = %g, want near 0 at low pressure", dH)
	}
	if math.Abs(dS) > 1e-2 {
		t.Errorf("dS = %g, want near 0 at low pressure", dS)
	}
}

func TestDepartureDegenerateVdW(t *testing.T) {
	co2 := substance.Catalog["co2"]
	cfg := testCfg(VdW, co2, 320, 6e6)

	volRes, err := SolveForVolume(cfg)
	if err != nil {
		t.Fatalf("SolveForVolume: %v", err)
	}
	roots := volRes.Clean()
	v := roots[len(roots)-1]

	if _, _, err := Departure(cfg, v); err != nil {
		t.Fatalf("Departure on degenerate vdW case: %v", err)
	}
}

func TestValidateRejectsBadInputs(t *testing.T) {
	co2 := substance.Catalog["co2"]

	cfg := testCfg(PR, co2, -1, 1e6)
	if _, err := SolveForVolume(cfg); err == nil {
		t.Errorf("expected error for non-positive temperature")
	}

	cfg = testCfg(PR, co2, 300, -1)
	if _, err := SolveForVolume(cfg); err == nil {
		t.Errorf("expected error for non-positive pressure")
	}
}
