package eos

// StaticFromTotal returns the static flow condition for a stagnation
// state tot observed at flow speed v: eos("HS", tot.H - v^2/2, tot.S).
func StaticFromTotal(tot ThermoProp, v float64) (ThermoProp, error) {
	return tot.Fld.ThermoProp(HS, tot.H-0.5*v*v, tot.S)
}

// TotalFromStatic returns the stagnation condition corresponding to a
// static state stat observed at flow speed v: eos("HS", stat.H + v^2/2, stat.S).
func TotalFromStatic(stat ThermoProp, v float64) (ThermoProp, error) {
	return stat.Fld.ThermoProp(HS, stat.H+0.5*v*v, stat.S)
}
