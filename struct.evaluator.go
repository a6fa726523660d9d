package climate

import (
	"fmt"

	"github.com/espin-2021/Climate/met"
)

// Evaluator holds the static setup of a run over any subset of active
// cells: shared parameters, the evaluated cell IDs and their elevations.
// Spatial extent is purely an iteration concern here; the per-cell
// algorithm never sees it.
type Evaluator struct {
	Par  Parameter
	Cids []int
	Elev []float64
	acc  Accumulator
	Nc   int
}

// NewEvaluator validates parameters against the terrain and the forcing
// record and runs the stability gate. Any failure aborts construction;
// no partially-initialized evaluator is returned. A nil cids selects
// every active cell; a single-element cids reproduces the one-cell
// shortcut through the same code path.
func NewEvaluator(strc *Structure, par Parameter, frc *met.Forcing, cids []int) (*Evaluator, error) {
	if err := par.check(); err != nil {
		return nil, err
	}
	if err := par.checkStability(frc.IntervalSec); err != nil {
		return nil, err
	}
	acc, err := NewAccumulator(par.Method, Window{par.WindowLo, par.WindowHi})
	if err != nil {
		return nil, err
	}
	if cids == nil {
		cids = strc.Cids
	}
	elev := make([]float64, len(cids))
	for k, c := range cids {
		z, ok := strc.Elev[c]
		if !ok {
			return nil, fmt.Errorf("%w: cell %d not in model domain", ErrConfiguration, c)
		}
		elev[k] = z
	}
	return &Evaluator{Par: par, Cids: cids, Elev: elev, acc: acc, Nc: len(cids)}, nil
}

// buildRealization seeds one profile per evaluated cell. Deterministic:
// identical inputs yield identical arrays.
func (ev *Evaluator) buildRealization(meanTs float64) ([]*realization, error) {
	rel := make([]*realization, ev.Nc)
	for k, c := range ev.Cids {
		p, err := newProfile(&ev.Par, ev.Elev[k], meanTs)
		if err != nil {
			return nil, err
		}
		rel[k] = &realization{
			p:    p,
			fidx: make([]float64, ev.Par.Nz),
			q:    make([]float64, ev.Par.Nz-1),
			cid:  c,
		}
	}
	return rel, nil
}
