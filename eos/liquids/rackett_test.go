package liquids

import (
	"math"
	"testing"

	"github.com/cyrilpic/radcomp/eos"
)

func TestVsatAtTc(t *testing.T) {
	v, err := Vsat(1e-4, 0.29, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-1e-4) > 1e-12 {
		t.Errorf("Vsat at Tr=1 = %v, want Vc = 1e-4", v)
	}
}

func TestVsatDecreasesBelowTc(t *testing.T) {
	vLow, err := Vsat(1e-4, 0.29, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vHigh, err := Vsat(1e-4, 0.29, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vLow >= vHigh {
		t.Errorf("Vsat(Tr=0.7) = %v should be less than Vsat(Tr=0.9) = %v", vLow, vHigh)
	}
}

func TestVsatRejectsBadInputs(t *testing.T) {
	if _, err := Vsat(0, 0.29, 0.8); err != eos.ErrCriticalProp {
		t.Errorf("expected ErrCriticalProp for Vc<=0, got %v", err)
	}
	if _, err := Vsat(1e-4, 0.29, 0); err != eos.ErrInvalidTr {
		t.Errorf("expected ErrInvalidTr for Tr<=0, got %v", err)
	}
}
