// Command radcomp-demo runs a single mean-line operating-point
// calculation for a small air compressor stage and prints the resulting
// pressure ratio, efficiency and specific speed/diameter.
package main

import (
	"fmt"
	"log"

	"github.com/cyrilpic/radcomp/compressor"
	"github.com/cyrilpic/radcomp/condition"
	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/eos/cubiceos"
	"github.com/cyrilpic/radcomp/eos/substance"
	"github.com/cyrilpic/radcomp/geometry"
)

func main() {
	geomData := map[string]float64{
		"r1": 0.04, "r2s": 0.05, "r2h": 0.02,
		"beta2": -45, "beta2s": -60, "alpha2": 0,
		"r4": 0.1, "b4": 0.01,
		"r5": 0.15, "b5": 0.008,
		"beta4": -40, "n_blades": 12, "n_splits": 12,
		"blade_e": 0.2e-3, "rug_imp": 1.2e-5, "clearance": 3e-4, "backface": 3e-4,
		"rug_ind": 1.2e-5, "l_ind": 0.4, "l_comp": 0.07,
	}
	geom, err := geometry.FromMap(geomData, []float64{1, 1, 1, 1, 1})
	if err != nil {
		log.Fatal(err)
	}

	fld := cubiceos.New(substance.Catalog["air"])
	in0, err := fld.ThermoProp(eos.PT, 1e5, 288.15)
	if err != nil {
		log.Fatal(err)
	}

	op := condition.OperatingCondition{In0: in0, Fld: fld, M: 0.5, NRot: 12000}

	comp := compressor.New(geom, op)
	if !comp.Calculate(true) {
		log.Fatalf("operating point invalid (invalid_flag=%v)", comp.InvalidFlag)
	}

	fmt.Printf("PR        = %.4f\n", comp.PR)
	fmt.Printf("Eff       = %.4f\n", comp.Eff)
	fmt.Printf("Power     = %.1f W\n", comp.Power)
	fmt.Printf("Ns        = %.4f\n", comp.Ns)
	fmt.Printf("Ds        = %.4f\n", comp.Ds)
	fmt.Printf("Head      = %.6f\n", comp.Head)
}
