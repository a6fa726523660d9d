package climate

import "math"

// realization carries the per-cell state evolved through the time loop:
// the temperature profile, its accumulated frost-cracking index and a
// face-flux work array. Realizations share nothing but the read-only
// forcing record, so cells step independently.
type realization struct {
	p    *Profile
	fidx []float64 // accumulated frost-cracking index [yr], per depth sample
	q    []float64 // conductive flux at interior faces, work array
	cid  int
	err  error // set when the cell diverges; the cell is retired
}

// step advances the profile by one forcing interval: Dirichlet surface
// boundary (the forcing value overwrites Temp[0] exactly), flux-form FTCS
// update of the interior, insulated base (Temp[Nz-1] untouched).
func (r *realization) step(ts, dtSec, kappa float64, j int) error {
	tmp, dz := r.p.Temp, r.p.Dz
	nz := len(tmp)

	tmp[0] = ts
	for i := 0; i < nz-1; i++ {
		r.q[i] = -kappa * (tmp[i+1] - tmp[i]) / dz
	}
	for i := 1; i < nz-1; i++ {
		tmp[i] -= dtSec * (r.q[i] - r.q[i-1]) / dz
	}

	// a non-finite value here means bad input or an unstable setup that
	// slipped past the gate; retire the cell rather than propagate
	for i := 0; i < nz; i++ {
		if math.IsNaN(tmp[i]) || math.IsInf(tmp[i], 0) {
			return &CellError{Cid: r.cid, Step: j, Wrapped: ErrDiverged}
		}
	}
	return nil
}
