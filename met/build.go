package met

import (
	"fmt"
	"sort"
	"time"

	"github.com/maseology/mmio"
	"gonum.org/v1/gonum/interp"
)

const kelvin2celsius = -273.15

// BuildForcing reads a raw surface air temperature record (csv of
// "Date","Temperature","Flag", temperatures in Kelvin), converts to °C and
// resamples to a uniform interval [s] by linear interpolation. The raw
// record may be coarser than, and need not align with, the model interval.
func BuildForcing(csvfp string, intvl float64) (*Forcing, error) {
	tt := time.Now()
	fmt.Println(" loading: " + csvfp)

	c, err := mmio.ReadCsvDateValueFlag(csvfp)
	if err != nil {
		return nil, fmt.Errorf(" met.BuildForcing %v", err)
	}
	if len(c) < 2 {
		return nil, fmt.Errorf(" met.BuildForcing: record %s holds %d samples, need at least 2", csvfp, len(c))
	}

	ts := make([]time.Time, 0, len(c))
	for t := range c {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })

	frc, err := resample(ts, c, intvl)
	if err != nil {
		return nil, err
	}

	fmt.Printf(" Forcing loaded - %v\n", time.Since(tt))
	return frc, nil
}

// resample fits a piecewise-linear interpolant through the raw record and
// samples it at a uniform interval from the first to the last raw date.
func resample(ts []time.Time, c map[time.Time]float64, intvl float64) (*Forcing, error) {
	t0 := ts[0]
	xs, ys := make([]float64, len(ts)), make([]float64, len(ts))
	for i, t := range ts {
		xs[i] = t.Sub(t0).Seconds()
		ys[i] = c[t] + kelvin2celsius
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf(" met.resample %v", err)
	}

	xn := xs[len(xs)-1]
	nt := int(xn/intvl) + 1
	ot, ov := make([]time.Time, nt), make([]float64, nt)
	for j := 0; j < nt; j++ {
		x := float64(j) * intvl
		ot[j] = t0.Add(time.Second * time.Duration(x))
		ov[j] = pl.Predict(x)
	}

	return &Forcing{T: ot, Ts: ov, IntervalSec: intvl}, nil
}
