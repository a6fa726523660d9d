package climate

// Result is a read-only snapshot of a run, safe to hand to export and
// plotting without exposing the stepping machinery. Taken after
// completion it holds the final state; cells retired mid-run carry their
// state as of the failing step.
type Result struct {
	Cids  []int
	Depth []float64   // shared depth axis [m]
	Temp  [][]float64 // [cell][depth sample] temperature [°C]
	FCI   [][]float64 // [cell][depth sample] frost-cracking index [yr]
}

// Results deep-copies the current state of every cell.
func (e *Evaluation) Results() *Result {
	nc := len(e.rel)
	res := &Result{
		Cids:  make([]int, nc),
		Depth: make([]float64, e.ev.Par.Nz),
		Temp:  make([][]float64, nc),
		FCI:   make([][]float64, nc),
	}
	if nc > 0 {
		copy(res.Depth, e.rel[0].p.Depth)
	}
	for k, r := range e.rel {
		res.Cids[k] = r.cid
		res.Temp[k] = make([]float64, len(r.p.Temp))
		copy(res.Temp[k], r.p.Temp)
		res.FCI[k] = make([]float64, len(r.fidx))
		copy(res.FCI[k], r.fidx)
	}
	return res
}

// DepthIntegrated returns the depth-summed frost-cracking index per cell,
// the scalar intensity mapped in check rasters.
func (res *Result) DepthIntegrated() []float64 {
	o := make([]float64, len(res.Cids))
	for k, f := range res.FCI {
		for _, v := range f {
			o[k] += v
		}
	}
	return o
}
