package diffuser

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// surgeMachValues and surgeBRatios are the grid axes of the two tabulated
// critical-angle surfaces below, degrees of freedom (m2, b4/r4).
var (
	surgeMachValues = []float64{0, 0.4, 0.8, 1.2, 1.6}
	surgeBRatios    = []float64{0.05, 0.1, 0.2, 0.3, 0.4}

	// surgeAngle12 and surgeAngle20 are literature-tabulated critical exit
	// angles (degrees) at r5/r4 = 1.2 and 2.0 respectively, rows indexed by
	// b4/r4 (surgeBRatios) and columns by m2 (surgeMachValues).
	surgeAngle12 = [][]float64{
		{80.78, 80, 78.59, 76.41, 73.9},
		{76.71, 75.47, 73.28, 70.47, 67.19},
		{73.91, 72.97, 70.63, 66.25, 60},
		{72.81, 71.87, 69.53, 64.53, 55.63},
		{72.19, 71.25, 68.75, 63.59, 54.22},
	}
	surgeAngle20 = [][]float64{
		{80.78, 80.16, 78.59, 76.41, 73.91},
		{76.56, 77.19, 73.44, 70.63, 67.19},
		{74.06, 71.56, 68.75, 64.84, 60.31},
		{70.47, 69.38, 66.25, 61.25, 55.16},
		{69.22, 68.13, 64.84, 59.38, 52.97},
	}
)

const surgePolyDeg = 3

// polyfit2d fits a degree-(degX,degY) bivariate polynomial to z (rows
// indexed by y, columns by x) by least squares, the Go analogue of
// numpy.polynomial.polynomial.polyfit2d used once at load time in the
// source to precompute the surge-angle surfaces. Returns coefficients
// coef[i][j] for the term x^i * y^j.
func polyfit2d(xs, ys []float64, z [][]float64, degX, degY int) [][]float64 {
	n := len(xs) * len(ys)
	ncoef := (degX + 1) * (degY + 1)
	lhs := mat.NewDense(n, ncoef, nil)
	rhs := mat.NewVecDense(n, nil)

	row := 0
	for j, y := range ys {
		for i, x := range xs {
			for pi := 0; pi <= degX; pi++ {
				for pj := 0; pj <= degY; pj++ {
					col := pi*(degY+1) + pj
					lhs.Set(row, col, math.Pow(x, float64(pi))*math.Pow(y, float64(pj)))
				}
			}
			rhs.SetVec(row, z[j][i])
			row++
		}
	}

	var c mat.Dense
	if err := c.Solve(lhs, rhs); err != nil {
		panic("diffuser: surge-angle polynomial fit failed to solve: " + err.Error())
	}

	coef := make([][]float64, degX+1)
	for i := range coef {
		coef[i] = make([]float64, degY+1)
		for j := range coef[i] {
			coef[i][j] = c.At(i*(degY+1)+j, 0)
		}
	}
	return coef
}

func polyval2d(x, y float64, coef [][]float64) float64 {
	var v float64
	for i, row := range coef {
		xi := math.Pow(x, float64(i))
		for j, c := range row {
			v += c * xi * math.Pow(y, float64(j))
		}
	}
	return v
}

var (
	surgeCoef12 = polyfit2d(surgeMachValues, surgeBRatios, surgeAngle12, surgePolyDeg, surgePolyDeg)
	surgeCoef20 = polyfit2d(surgeMachValues, surgeBRatios, surgeAngle20, surgePolyDeg, surgePolyDeg)
)

// SurgeCriticalAngle returns the critical diffuser exit flow angle
// (degrees) above which the impeller discharge angle is taken as surge,
// interpolated in length ratio r5/r4 between the two tabulated surfaces
// at r5/r4 = 1.2 and 2.0.
func SurgeCriticalAngle(r5, r4, b4, m2 float64) float64 {
	ratio := b4 / r4
	length := r5 / r4

	angle12 := polyval2d(m2, ratio, surgeCoef12)
	angle20 := polyval2d(m2, ratio, surgeCoef20)

	alphaR := angle12 + (angle20-angle12)*(length-1.2)/(2.0-1.2)
	return 90.0 - 0.35*(90.0-alphaR)
}
