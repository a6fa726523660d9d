package climate

import (
	"math"
	"testing"
)

func TestWindowStrict(t *testing.T) {
	w := Window{-8., -3.}
	for _, tc := range []struct {
		t  float64
		in bool
	}{
		{-8., false}, // bounds are exclusive
		{-3., false},
		{-7.999, true},
		{-3.001, true},
		{-5., true},
		{-8.001, false},
		{0., false},
	} {
		if w.In(tc.t) != tc.in {
			t.Errorf("In(%f) = %v, want %v", tc.t, !tc.in, tc.in)
		}
	}
}

func TestAndersonAccumulate(t *testing.T) {
	acc, err := NewAccumulator("anderson1998", Window{-8., -3.})
	if err != nil {
		t.Fatal(err)
	}

	p := &Profile{
		Depth: []float64{0., 1., 2., 3., 4.},
		Temp:  []float64{-10., -8., -5., -3., 1.},
		Dz:    1.,
	}
	fidx := make([]float64, 5)
	const dtyr = 3600. / secPerYear

	acc.Accumulate(p, dtyr, fidx)
	acc.Accumulate(p, dtyr, fidx)

	want := []float64{0., 0., 2. * dtyr, 0., 0.}
	for i, v := range fidx {
		if math.Abs(v-want[i]) > 1e-15 {
			t.Errorf("node %d: index %g, want %g", i, v, want[i])
		}
	}
}
