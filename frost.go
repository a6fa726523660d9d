package climate

import "fmt"

// Window is the temperature band within which ice growth favours rock
// fracture. Bounds are exclusive.
type Window struct{ Lo, Hi float64 }

// In reports whether t lies strictly inside the window.
func (w Window) In(t float64) bool { return t > w.Lo && t < w.Hi }

// Accumulator converts one stepped profile into a frost-cracking index
// increment per depth sample. Implementations observe the profile
// read-only and add to fidx in place; dtYr is the timestep in year units
// so accumulated indices are independent of step size.
type Accumulator interface {
	Accumulate(p *Profile, dtYr float64, fidx []float64)
}

// anderson realizes the Anderson (1998) method: total dwell time within
// the frost-cracking window as a proxy for frost-cracking intensity.
type anderson struct{ w Window }

func (a anderson) Accumulate(p *Profile, dtYr float64, fidx []float64) {
	for i, t := range p.Temp {
		if a.w.In(t) {
			fidx[i] += dtYr
		}
	}
}

// NewAccumulator selects a frost accumulation strategy by name. The Hales
// & Roering (2007) gradient-weighted variant is reserved as a strategy
// slot; its weighting function has not been settled on, so requesting it
// fails at configuration time rather than running a guessed formula.
func NewAccumulator(method string, w Window) (Accumulator, error) {
	switch method {
	case "", "anderson1998":
		return anderson{w}, nil
	case "halesroering2007":
		return nil, fmt.Errorf("%w: frost method %q not yet implemented", ErrConfiguration, method)
	default:
		return nil, fmt.Errorf("%w: unknown frost method %q", ErrConfiguration, method)
	}
}
