// Package geometry describes the dimensional and blade parameters of a
// radial compressor and the derived areas, slip factor and hydraulic
// diameter the solver stages key off.
package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Geometry collects every dimensional and blade parameter of the machine.
// Angles are in degrees; radii, widths and lengths in metres.
type Geometry struct {
	R1        float64 // inducer inlet radius
	R2s       float64 // shroud tip radius
	R2h       float64 // impeller hub radius
	B2        float64 // mid-blade impeller inlet angle (beta2)
	B2s       float64 // impeller shroud angle (beta2s)
	A2        float64 // inlet flow angle (alpha2)
	R4        float64 // impeller tip radius
	B4        float64 // blade height at station 4
	R5        float64 // diffuser outlet radius
	B5        float64 // diffuser passage width at station 5
	Be4       float64 // impeller outlet blade angle (beta4)
	NBl       float64 // number of blades
	NSp       float64 // number of splitter blades
	BladeE    float64 // blade thickness
	RugImp    float64 // impeller surface roughness
	Clearance float64 // tip clearance
	Backface  float64 // backface clearance
	RugInd    float64 // inducer surface roughness
	LInd      float64 // inducer length
	LComp     float64 // impeller axial length (no impact on calculation)

	// Blockage holds the five per-station blockage factors, each in (0,1].
	Blockage [5]float64
}

// R2rms is the root-mean-square impeller inlet radius.
func (g Geometry) R2rms() float64 {
	return math.Sqrt((g.R2s*g.R2s + g.R2h*g.R2h) / 2.0)
}

// A1Eff is the effective inducer inlet area.
func (g Geometry) A1Eff() float64 {
	return g.R1 * g.R1 * math.Pi * g.Blockage[0]
}

// A2Eff is the effective area at the impeller inlet (station 2).
func (g Geometry) A2Eff() float64 {
	return (g.R2s*g.R2s - g.R2h*g.R2h) * math.Pi * g.Blockage[1] * math.Cos(g.A2*math.Pi/180.0)
}

// AX is the meridional effective area at station 2, used for the blade
// blockage-corrected optimum incidence angle.
func (g Geometry) AX() float64 {
	return (g.R2s*g.R2s - g.R2h*g.R2h) * math.Pi * g.Blockage[1] * math.Cos(g.B2*math.Pi/180.0)
}

// AY is the throat area at station 3, net of blade thickness blockage.
func (g Geometry) AY() float64 {
	return ((g.R2s*g.R2s-g.R2h*g.R2h)*math.Pi*math.Cos(g.B2*math.Pi/180.0) -
		(g.R2s-g.R2h)*g.BladeE*g.NBl) * g.Blockage[2]
}

// Beta2Opt is the optimum relative inlet angle after blade-blockage
// correction, atan((AX/AY) tan(beta2)).
func (g Geometry) Beta2Opt() float64 {
	return math.Atan(g.AX()/g.AY()*math.Tan(g.B2*math.Pi/180.0)) * 180.0 / math.Pi
}

// Slip returns the Wiesner-Busemann slip factor.
func (g Geometry) Slip() float64 {
	return 1.0 - math.Sqrt(math.Cos(g.Be4*math.Pi/180.0))/math.Pow(g.NBl+g.NSp, 0.7)
}

// HydraulicDiameter returns the impeller passage hydraulic diameter Dh and
// mean flow-path length Lh, following the published closed form over
// (r2h/r2s, beta2s, beta4, n_blades, b4, r4).
func (g Geometry) HydraulicDiameter() (Dh, Lh float64) {
	la := g.R2h / g.R2s
	be4 := g.Be4 * math.Pi / 180.0
	be2s := g.B2s * math.Pi / 180.0

	Dh = 2 * g.R4 * (1.0/(g.NBl/math.Pi/math.Cos(be4)+2.0*g.R4/g.B4) +
		g.R2s/g.R4/(2.0/(1.0-la)+2.0*g.NBl/math.Pi/(1+la)*
			math.Sqrt(1+(1+la*la/2)*math.Tan(be2s)*math.Tan(be2s))))

	Lh = g.R4 * (1 - g.R2rms()*2/0.3048) / math.Cos(be4)
	return Dh, Lh
}

// fieldNames lists the lower-case keys FromMap recognizes, matching the
// struct field set above (blockage is handled separately).
var fieldNames = map[string]bool{
	"r1": true, "r2s": true, "r2h": true, "beta2": true, "beta2s": true,
	"alpha2": true, "r4": true, "b4": true, "r5": true, "b5": true,
	"beta4": true, "n_blades": true, "n_splits": true, "blade_e": true,
	"rug_imp": true, "clearance": true, "backface": true, "rug_ind": true,
	"l_ind": true, "l_comp": true,
}

// FromMap builds a Geometry from a flat key-value structure (e.g. decoded
// from MATLAB or a file), as radcomp/geometry.py's Geometry.from_dict does.
// Blockage may be supplied explicitly, or read from "blockage1".."blockage5"
// keys in data; unknown keys are ignored.
func FromMap(data map[string]float64, blockage []float64) (Geometry, error) {
	if blockage == nil {
		if _, ok := data["blockage1"]; ok {
			blockage = make([]float64, 5)
			for i := range blockage {
				key := fmt.Sprintf("blockage%d", i+1)
				v, ok := data[key]
				if !ok {
					return Geometry{}, fmt.Errorf("geometry: missing %s", key)
				}
				blockage[i] = v
			}
		}
	}
	if blockage == nil {
		return Geometry{}, fmt.Errorf("geometry: blockage needs to be provided as an argument or in data")
	}
	if len(blockage) != 5 {
		return Geometry{}, fmt.Errorf("geometry: blockage must have 5 entries, got %d", len(blockage))
	}

	g := Geometry{}
	for k, v := range data {
		key := strings.ToLower(k)
		if !fieldNames[key] {
			continue
		}
		switch key {
		case "r1":
			g.R1 = v
		case "r2s":
			g.R2s = v
		case "r2h":
			g.R2h = v
		case "beta2":
			g.B2 = v
		case "beta2s":
			g.B2s = v
		case "alpha2":
			g.A2 = v
		case "r4":
			g.R4 = v
		case "b4":
			g.B4 = v
		case "r5":
			g.R5 = v
		case "b5":
			g.B5 = v
		case "beta4":
			g.Be4 = v
		case "n_blades":
			g.NBl = v
		case "n_splits":
			g.NSp = v
		case "blade_e":
			g.BladeE = v
		case "rug_imp":
			g.RugImp = v
		case "clearance":
			g.Clearance = v
		case "backface":
			g.Backface = v
		case "rug_ind":
			g.RugInd = v
		case "l_ind":
			g.LInd = v
		case "l_comp":
			g.LComp = v
		}
	}
	copy(g.Blockage[:], blockage)

	if g.R4 <= g.R2s || g.R2s <= g.R2h || g.R2h <= 0 {
		return Geometry{}, fmt.Errorf("geometry: radii must satisfy r4 > r2s > r2h > 0")
	}
	for i, b := range g.Blockage {
		if b <= 0 || b > 1 {
			return Geometry{}, fmt.Errorf("geometry: blockage[%d] = %g out of (0,1]", i, b)
		}
	}

	return g, nil
}
