package met

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Forcing holds the uniformly-sampled surface air temperature record used
// as the upper boundary condition of the thermal model.
type Forcing struct {
	T           []time.Time // [date ID]
	Ts          []float64   // [date ID] surface air temperature [°C]
	IntervalSec float64
}

// Value returns the boundary temperature at timestep j.
func (frc *Forcing) Value(j int) float64 { return frc.Ts[j] }

// Mean returns the long-term mean of the record, used to seed initial
// temperature profiles.
func (frc *Forcing) Mean() float64 { return stat.Mean(frc.Ts, nil) }

func (frc *Forcing) CheckAndPrint() {
	fmt.Println("Forcing summary:")
	nt := len(frc.T)
	fmt.Printf(" %v to %v (%d timesteps)\n", frc.T[0], frc.T[nt-1], nt)
	fmt.Printf(" model timestep interval: %ds\n", int64(frc.IntervalSec))
	mn, mx := frc.Ts[0], frc.Ts[0]
	for _, v := range frc.Ts {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	fmt.Printf(" Ts (°C): mean %.3f   min %.3f   max %.3f\n", frc.Mean(), mn, mx)
}
