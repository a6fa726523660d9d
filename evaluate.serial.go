package climate

import (
	"fmt"

	"github.com/espin-2021/Climate/met"
	"github.com/gosuri/uiprogress"
)

// EvaluateSerial runs the full forcing record on a single goroutine with
// a progress bar. Semantics match Evaluate; only scheduling differs.
func (ev *Evaluator) EvaluateSerial(frc *met.Forcing, outdirprfx string) (*Result, []error, error) {
	e, err := ev.NewEvaluation(frc)
	if err != nil {
		return nil, nil, err
	}

	nt := len(frc.T)
	uiprogress.Start()
	timestep := make(chan string)
	bar := uiprogress.AddBar(nt).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-timestep
	})

	dt := frc.IntervalSec
	dtyr := dt / secPerYear
	for j, t := range frc.T {
		timestep <- fmt.Sprint(t)
		ts := frc.Value(j)
		for _, r := range e.rel {
			if r.err != nil {
				continue
			}
			if err := r.step(ts, dt, ev.Par.Diffusivity, j); err != nil {
				r.err = err
				continue
			}
			ev.acc.Accumulate(r.p, dtyr, r.fidx)
		}
		e.j++
		e.tsec += dt
		bar.Incr()
	}
	close(timestep)
	uiprogress.Stop()
	e.state = completed

	res := e.Results()
	if len(outdirprfx) > 0 {
		ev.saveToBins(res, outdirprfx)
	}
	return res, e.CellErrors(), nil
}
