// Package cubic implements generic two-parameter cubic equations of
// state (van der Waals, Redlich-Kwong, Soave-Redlich-Kwong,
// Peng-Robinson) in molar units, plus the analytic enthalpy/entropy
// departure functions used to turn a bare P-V-T cubic into a full
// real-fluid property engine.
package cubic

import (
	"fmt"
	"math"
	"slices"

	"github.com/cyrilpic/radcomp/eos"
	"github.com/cyrilpic/radcomp/internal/solvecubic"
)

// Params are the substance-agnostic constants of a cubic equation of
// state: P = RT/(V-b) - a(T)/((V+epsilon*b)(V+sigma*b)).
type Params struct {
	Sigma   float64
	Epsilon float64
	Omega   float64
	Psi     float64
}

// EOSType picks the alpha(Tr, omega) temperature correction and the
// substance-agnostic Params for a particular cubic family.
type EOSType interface {
	Alpha(tr, w float64) float64
	Params() *Params
}

// Cfg holds the configuration and state variables for a cubic EOS
// evaluation, in molar SI units (Pa, K, m^3/mol, J/(mol*K)).
type Cfg struct {
	Type     EOSType
	T        float64
	P        float64
	Tc       float64
	Pc       float64
	Acentric float64
	R        float64
}

func calculateB(omega, r, tc, pc float64) float64 {
	return omega * r * tc / pc
}

func calculateA(psi, alpha, r, tc, pc float64) float64 {
	return psi * alpha * r * r * tc * tc / pc
}

// VolumeResult contains the results of solving the cubic for molar volume.
type VolumeResult struct {
	A, B    float64
	Volumes [3]complex128
}

// Clean returns the real roots, ascending: smallest is the liquid-like
// root, largest the vapor-like root.
func (vr *VolumeResult) Clean() []float64 {
	res := make([]float64, 0, 3)
	for _, v := range vr.Volumes {
		if math.Abs(imag(v)) < 1e-9 {
			res = append(res, real(v))
		}
	}
	slices.Sort(res)
	return res
}

func (vr *VolumeResult) String() string {
	return fmt.Sprintf("VolumeResult{A: %g, B: %g, Volumes: %v}", vr.A, vr.B, vr.Volumes)
}

// PressureResult contains the calculated pressure and intermediate parameters.
type PressureResult struct {
	A, B, P float64
}

func (pr *PressureResult) String() string {
	return fmt.Sprintf("PressureResult{A: %g, B: %g, P: %g}", pr.A, pr.B, pr.P)
}

func validate(cfg *Cfg) error {
	if cfg.T <= 0 {
		return eos.ErrTemp
	}
	if cfg.Pc <= 0 || cfg.Tc <= 0 {
		return eos.ErrCriticalProp
	}
	if cfg.R <= 0 {
		return eos.ErrUniversalConst
	}
	return nil
}

func abParams(cfg *Cfg) (a, b, alpha float64) {
	tr := cfg.T / cfg.Tc
	alpha = cfg.Type.Alpha(tr, cfg.Acentric)
	p := cfg.Type.Params()
	a = calculateA(p.Psi, alpha, cfg.R, cfg.Tc, cfg.Pc)
	b = calculateB(p.Omega, cfg.R, cfg.Tc, cfg.Pc)
	return a, b, alpha
}

// SolveForVolume solves the cubic equation of state for molar volume.
func SolveForVolume(cfg *Cfg) (*VolumeResult, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if cfg.P <= 0 {
		return nil, eos.ErrPressure
	}

	a, b, _ := abParams(cfg)
	sigma := cfg.Type.Params().Sigma
	epsilon := cfg.Type.Params().Epsilon

	x := epsilon + sigma
	y := epsilon * sigma
	vIG := cfg.R * cfg.T / cfg.P

	e := 1.0
	f := b*(x-1) - vIG
	g := b*((y-x)*b-(x*vIG)) + a/cfg.P
	h := -y*b*b*(b+vIG) - a*b/cfg.P

	solution, err := solvecubic.Solve(e, f, g, h)
	if err != nil {
		return nil, fmt.Errorf("failed to solve cubic: %w", err)
	}

	return &VolumeResult{A: a, B: b, Volumes: solution}, nil
}

// Pressure calculates the pressure for a given molar volume.
func Pressure(cfg *Cfg, volume float64) (*PressureResult, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	a, b, _ := abParams(cfg)
	sigma := cfg.Type.Params().Sigma
	epsilon := cfg.Type.Params().Epsilon
	v := volume

	first := cfg.R * cfg.T / (v - b)
	second := a / ((v + epsilon*b) * (v + sigma*b))

	return &PressureResult{A: a, B: b, P: first - second}, nil
}

// Departure returns the molar enthalpy and entropy departures
// (real - ideal gas) at the given molar volume, using the standard
// closed-form cubic-EOS departure functions.
func Departure(cfg *Cfg, volume float64) (dH, dS float64, err error) {
	if err = validate(cfg); err != nil {
		return 0, 0, err
	}

	tr := cfg.T / cfg.Tc
	p := cfg.Type.Params()
	a, b, _ := abParams(cfg)

	const dtr = 1e-6
	dAlpha := (cfg.Type.Alpha(tr+dtr, cfg.Acentric) - cfg.Type.Alpha(tr-dtr, cfg.Acentric)) / (2 * dtr) / cfg.Tc
	dAdT := calculateA(p.Psi, 1, cfg.R, cfg.Tc, cfg.Pc) * dAlpha

	diff := p.Epsilon - p.Sigma
	v := volume
	Z := cfg.P * v / (cfg.R * cfg.T)
	B := b * cfg.P / (cfg.R * cfg.T)

	var logTerm float64
	if math.Abs(diff) < 1e-9 {
		// Degenerate case (e.g. vdW): the integral reduces to 1/(V+epsilon*b).
		logTerm = 1 / (v + p.Epsilon*b)
	} else {
		logTerm = 1 / (b * (p.Sigma - p.Epsilon)) * math.Log((v+p.Sigma*b)/(v+p.Epsilon*b))
	}

	dH = cfg.R*cfg.T*(Z-1) + (cfg.T*dAdT-a)*logTerm
	dS = cfg.R*math.Log(Z-B) + dAdT*logTerm
	return dH, dS, nil
}

type vdW struct{}

func (*vdW) Alpha(tr, w float64) float64        { return 1.0 }
func (*vdW) Params() *Params                    { return &Params{Omega: 1.0 / 8.0, Psi: 27.0 / 64.0} }

// VdW is the van der Waals cubic equation of state.
var VdW EOSType = &vdW{}

type rk struct{}

func (*rk) Alpha(tr, w float64) float64    { return 1 / math.Sqrt(tr) }
func (*rk) Params() *Params                 { return &Params{Sigma: 1, Omega: 0.08664, Psi: 0.42728} }

// RK is the Redlich-Kwong cubic equation of state.
var RK EOSType = &rk{}

type srk struct{}

func (*srk) Alpha(tr, w float64) float64 {
	m := 0.480 + 1.574*w - 0.176*w*w
	s := 1 + m*(1-math.Sqrt(tr))
	return s * s
}
func (*srk) Params() *Params { return &Params{Sigma: 1, Omega: 0.08664, Psi: 0.42728} }

// SRK is the Soave-Redlich-Kwong cubic equation of state.
var SRK EOSType = &srk{}

type pr struct{}

func (*pr) Alpha(tr, w float64) float64 {
	m := 0.37464 + 1.54226*w - 0.26992*w*w
	s := 1 + m*(1-math.Sqrt(tr))
	return s * s
}
func (*pr) Params() *Params {
	return &Params{Sigma: 1 + math.Sqrt2, Epsilon: 1 - math.Sqrt2, Omega: 0.07780, Psi: 0.45724}
}

// PR is the Peng-Robinson cubic equation of state.
var PR EOSType = &pr{}
