package climate

import (
	"github.com/espin-2021/Climate/met"
)

// Evaluate runs the full forcing record, stepping cells concurrently, and
// exports results when an output prefix is given. Partial results are
// exported even when cells retire mid-run; their failures are returned.
func (ev *Evaluator) Evaluate(frc *met.Forcing, outdirprfx string) (*Result, []error, error) {
	e, err := ev.NewEvaluation(frc)
	if err != nil {
		return nil, nil, err
	}
	for !e.Completed() {
		if err := e.Step(); err != nil {
			return nil, e.CellErrors(), err
		}
	}

	res := e.Results()
	if len(outdirprfx) > 0 {
		ev.saveToBins(res, outdirprfx)
	}
	return res, e.CellErrors(), nil
}
