package climate

import (
	"sync"

	"github.com/espin-2021/Climate/met"
)

// run states
const (
	configured = iota
	stepping
	completed
)

// Evaluation is a live run: the per-cell realizations, the shared
// read-only forcing record and the simulation clock. The run walks
// configured -> stepping -> completed; once completed it is read-only.
type Evaluation struct {
	ev    *Evaluator
	frc   *met.Forcing
	rel   []*realization
	state int
	j     int     // current timestep, index into frc.T
	tsec  float64 // elapsed simulation time [s]
}

// NewEvaluation seeds every profile from the forcing climatology and
// readies the clock. Construction failures leave nothing half-built.
func (ev *Evaluator) NewEvaluation(frc *met.Forcing) (*Evaluation, error) {
	rel, err := ev.buildRealization(frc.Mean())
	if err != nil {
		return nil, err
	}
	return &Evaluation{ev: ev, frc: frc, rel: rel}, nil
}

// Timestep returns the index of the next forcing value to be applied.
func (e *Evaluation) Timestep() int { return e.j }

// Time returns elapsed simulation time [s].
func (e *Evaluation) Time() float64 { return e.tsec }

// Completed reports whether the run has exhausted the forcing record.
func (e *Evaluation) Completed() bool { return e.state == completed }

// CellErrors returns the failures of retired cells, if any. Retired
// cells stop stepping; their siblings run to completion.
func (e *Evaluation) CellErrors() []error {
	var errs []error
	for _, r := range e.rel {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return errs
}

// Step advances every live cell by one forcing interval then accumulates
// frost dwell, and finally advances the clock. Cells are independent, so
// each steps on its own goroutine; the time axis stays strictly
// sequential. Note the boundary value is the raw forcing value: the
// lapse-rate correction enters through the initial profile only and is
// not re-applied per timestep.
func (e *Evaluation) Step() error {
	switch e.state {
	case completed:
		return ErrCompleted
	case configured:
		e.state = stepping
	}

	ts := e.frc.Value(e.j)
	dt := e.frc.IntervalSec
	dtyr := dt / secPerYear

	var wg sync.WaitGroup
	wg.Add(len(e.rel))
	for _, r := range e.rel {
		go func(r *realization) {
			defer wg.Done()
			if r.err != nil {
				return
			}
			if err := r.step(ts, dt, e.ev.Par.Diffusivity, e.j); err != nil {
				r.err = err
				return
			}
			e.ev.acc.Accumulate(r.p, dtyr, r.fidx)
		}(r)
	}
	wg.Wait()

	e.j++
	e.tsec += dt
	if e.j == len(e.frc.T) {
		e.state = completed
	}
	return nil
}
