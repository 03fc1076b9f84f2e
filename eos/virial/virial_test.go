package virial

import (
	"math"
	"testing"
)

// Isopropanol vapor at 200C (473.15K) and 10 bar, B=-338 cm^3/mol,
// C=-26000 cm^6/mol^2, converted to molar SI (Pa, m^3/mol).
func TestIsopropanolVirial(t *testing.T) {
	T := 473.15
	P := 10e5
	R := 8.314
	B := -338e-6
	C := -26000e-12

	expectedV2 := 3595.7691e-6
	expectedZ2 := 0.9141

	expectedV3 := 3551.252036e-6
	expectedZ3 := 0.9028

	t.Run("TwoTerm", func(t *testing.T) {
		v, err := SolveForVolumeTwoTerm(T, P, R, B)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(v-expectedV2) > 1e-9 {
			t.Errorf("TwoTerm Volume: got %g, want %g", v, expectedV2)
		}

		z, err := CompressibilityTwoTerm(T, P, R, B)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(z-expectedZ2) > 1e-4 {
			t.Errorf("TwoTerm Z: got %f, want %f", z, expectedZ2)
		}
	})

	t.Run("ThreeTerm", func(t *testing.T) {
		roots, err := SolveForVolumeThreeTerm(T, P, R, B, C)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var vReal float64
		found := false
		for _, r := range roots {
			if math.Abs(imag(r)) < 1e-12 && real(r) > 0 {
				vReal = real(r)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("no positive real root among %v", roots)
		}
		if math.Abs(vReal-expectedV3) > 1e-8 {
			t.Errorf("ThreeTerm Volume: got %g, want %g", vReal, expectedV3)
		}

		z, err := CompressibilityThreeTerm(vReal, B, C)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(z-expectedZ3) > 1e-4 {
			t.Errorf("ThreeTerm Z: got %f, want %f", z, expectedZ3)
		}
	})
}
