package climate

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/espin-2021/Climate/met"
)

func constantForcing(nt int, v, intvl float64) *met.Forcing {
	t0 := time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC)
	ts, vs := make([]time.Time, nt), make([]float64, nt)
	for j := 0; j < nt; j++ {
		ts[j] = t0.Add(time.Second * time.Duration(float64(j)*intvl))
		vs[j] = v
	}
	return &met.Forcing{T: ts, Ts: vs, IntervalSec: intvl}
}

func testStructure(elevs map[int]float64) *Structure {
	cids := make([]int, 0, len(elevs))
	for c := range elevs {
		cids = append(cids, c)
	}
	return &Structure{Elev: elevs, Cids: cids, Nc: len(cids)}
}

func testParameter() Parameter {
	par := defaultParameter()
	par.ProfileDepth = 10.
	par.Nz = 11
	par.Diffusivity = 1e-6
	par.Geotherm = .025
	par.LapseRate = 0.
	return par
}

func TestStabilityGate(t *testing.T) {
	strc := testStructure(map[int]float64{0: 100.})
	frc := constantForcing(10, -5., 3600.)

	par := testParameter() // dz=1m, kappa=1e-6: stable dt = 5e5 s
	if _, err := NewEvaluator(strc, par, frc, nil); err != nil {
		t.Fatalf("stable configuration rejected: %v", err)
	}

	// refine the grid until the hourly interval breaks the criterion
	par.Nz = 1001 // dz=0.01m: stable dt = 50 s
	_, err := NewEvaluator(strc, par, frc, nil)
	if !errors.Is(err, ErrStability) {
		t.Fatalf("expected ErrStability, got %v", err)
	}
}

func TestEvaluatorConfiguration(t *testing.T) {
	strc := testStructure(map[int]float64{0: 100.})
	frc := constantForcing(10, -5., 3600.)

	for _, tc := range []struct {
		name string
		mod  func(*Parameter)
	}{
		{"one node", func(p *Parameter) { p.Nz = 1 }},
		{"zero depth", func(p *Parameter) { p.ProfileDepth = 0. }},
		{"negative diffusivity", func(p *Parameter) { p.Diffusivity = -1e-6 }},
		{"empty window", func(p *Parameter) { p.WindowLo, p.WindowHi = -3., -8. }},
		{"unknown method", func(p *Parameter) { p.Method = "nomethod" }},
		{"halesroering unimplemented", func(p *Parameter) { p.Method = "halesroering2007" }},
	} {
		par := testParameter()
		tc.mod(&par)
		if _, err := NewEvaluator(strc, par, frc, nil); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected ErrConfiguration, got %v", tc.name, err)
		}
	}

	par := testParameter()
	if _, err := NewEvaluator(strc, par, frc, []int{99}); !errors.Is(err, ErrConfiguration) {
		t.Error("cell outside domain accepted")
	}
}

func TestProfileInitialization(t *testing.T) {
	par := testParameter()
	par.LapseRate = -.0065
	par.RefElev = 100.

	p1, err := newProfile(&par, 350., -2.)
	if err != nil {
		t.Fatal(err)
	}
	p2, _ := newProfile(&par, 350., -2.)

	ts0 := -2. + par.LapseRate*(350.-100.)
	for i := range p1.Depth {
		want := ts0 + par.Geotherm*p1.Depth[i]
		if math.Abs(p1.Temp[i]-want) > 1e-12 {
			t.Fatalf("node %d: temp %f, want %f", i, p1.Temp[i], want)
		}
		if p1.Temp[i] != p2.Temp[i] || p1.Depth[i] != p2.Depth[i] {
			t.Fatal("identical parameters produced differing profiles")
		}
	}
	if p1.Depth[0] != 0. || p1.Depth[par.Nz-1] != par.ProfileDepth {
		t.Fatalf("depth axis [%f,%f] does not span [0,%f]", p1.Depth[0], p1.Depth[par.Nz-1], par.ProfileDepth)
	}
}

func TestBoundaryOverwrite(t *testing.T) {
	strc := testStructure(map[int]float64{0: 100.})
	frc := constantForcing(5, -5., 3600.)
	par := testParameter()

	ev, err := NewEvaluator(strc, par, frc, nil)
	if err != nil {
		t.Fatal(err)
	}
	e, err := ev.NewEvaluation(frc)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if got := e.rel[0].p.Temp[0]; got != -5. {
		t.Fatalf("surface temperature %f, want forcing value -5 exactly", got)
	}
}

// end-to-end scenario: 10m profile over 11 nodes, kappa=1e-6 m²/s,
// constant -5°C forcing for 1000 hourly steps
func TestEvaluateScenario(t *testing.T) {
	strc := testStructure(map[int]float64{3: 100., 7: 100.})
	frc := constantForcing(1000, -5., 3600.)
	par := testParameter()
	par.RefElev = 100.

	ev, err := NewEvaluator(strc, par, frc, nil)
	if err != nil {
		t.Fatal(err)
	}
	res, cerrs, err := ev.Evaluate(frc, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(cerrs) != 0 {
		t.Fatalf("unexpected cell failures: %v", cerrs)
	}

	for k := range res.Cids {
		if got := res.Temp[k][0]; got != -5. {
			t.Fatalf("cell %d surface temperature %f, want -5", res.Cids[k], got)
		}

		// surface sample sat inside the window every step
		want := 1000. * 3600. / secPerYear
		if got := res.FCI[k][0]; math.Abs(got-want) > 1e-12 {
			t.Fatalf("cell %d surface frost index %g, want %g", res.Cids[k], got, want)
		}

		// base remains near the geothermal floor: -5+0.025*10 at init,
		// untouched by the insulated boundary over this short run
		base := -5. + .025*10.
		if got := res.Temp[k][par.Nz-1]; math.Abs(got-base) > 1e-9 {
			t.Fatalf("cell %d base temperature %f, want %f", res.Cids[k], got, base)
		}

		// deeper samples dwell no longer than the surface
		for i, v := range res.FCI[k] {
			if v > want+1e-12 {
				t.Fatalf("cell %d node %d frost index %g exceeds surface dwell %g", res.Cids[k], i, v, want)
			}
		}
	}
}

func TestAlreadyCompleted(t *testing.T) {
	strc := testStructure(map[int]float64{0: 100.})
	frc := constantForcing(3, -5., 3600.)
	par := testParameter()

	ev, _ := NewEvaluator(strc, par, frc, nil)
	e, err := ev.NewEvaluation(frc)
	if err != nil {
		t.Fatal(err)
	}
	for !e.Completed() {
		if err := e.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if e.Timestep() != len(frc.T) {
		t.Fatalf("terminal timestep %d, want %d", e.Timestep(), len(frc.T))
	}
	if err := e.Step(); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got %v", err)
	}
}

func TestNodeSubset(t *testing.T) {
	strc := testStructure(map[int]float64{1: 100., 2: 200., 3: 300.})
	frc := constantForcing(10, -5., 3600.)
	par := testParameter()

	ev, err := NewEvaluator(strc, par, frc, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	if ev.Nc != 1 || ev.Cids[0] != 2 || ev.Elev[0] != 200. {
		t.Fatalf("subset evaluator holds %d cells (%v)", ev.Nc, ev.Cids)
	}
	res, _, err := ev.Evaluate(frc, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Cids) != 1 || res.Cids[0] != 2 {
		t.Fatalf("subset result covers cells %v, want [2]", res.Cids)
	}
}

func TestDivergenceIsolation(t *testing.T) {
	strc := testStructure(map[int]float64{0: 100., 1: 100.})
	frc := constantForcing(10, -5., 3600.)
	par := testParameter()

	ev, _ := NewEvaluator(strc, par, frc, []int{0, 1})
	e, err := ev.NewEvaluation(frc)
	if err != nil {
		t.Fatal(err)
	}

	// corrupt one cell mid-run; its sibling must run to completion
	e.rel[0].p.Temp[5] = math.NaN()
	for !e.Completed() {
		if err := e.Step(); err != nil {
			t.Fatal(err)
		}
	}

	cerrs := e.CellErrors()
	if len(cerrs) != 1 {
		t.Fatalf("expected 1 cell failure, got %d", len(cerrs))
	}
	var ce *CellError
	if !errors.As(cerrs[0], &ce) || !errors.Is(cerrs[0], ErrDiverged) {
		t.Fatalf("expected CellError wrapping ErrDiverged, got %v", cerrs[0])
	}
	if ce.Cid != 0 {
		t.Fatalf("failure attributed to cell %d, want 0", ce.Cid)
	}
	for _, v := range e.rel[1].p.Temp {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatal("healthy cell contaminated by sibling divergence")
		}
	}
}

func TestSteadyStateConvergence(t *testing.T) {
	par := testParameter()
	par.ProfileDepth = .5
	par.Nz = 6 // dz=0.1m: stable dt = 5000 s
	par.Geotherm = 0.

	p, err := newProfile(&par, 100., -5.)
	if err != nil {
		t.Fatal(err)
	}
	// knock the interior off the steady state
	for i := 1; i < par.Nz-1; i++ {
		p.Temp[i] += 3.
	}
	p.Temp[par.Nz-1] = -5.

	r := &realization{p: p, fidx: make([]float64, par.Nz), q: make([]float64, par.Nz-1)}
	for j := 0; j < 5000; j++ {
		if err := r.step(-5., 3600., par.Diffusivity, j); err != nil {
			t.Fatal(err)
		}
	}
	for i, v := range p.Temp {
		if math.Abs(v+5.) > 1e-3 {
			t.Fatalf("node %d: %f has not converged to boundary value -5", i, v)
		}
	}
}

func TestFrostIndexMonotonic(t *testing.T) {
	strc := testStructure(map[int]float64{0: 100.})
	frc := constantForcing(200, -5., 3600.)
	par := testParameter()

	ev, _ := NewEvaluator(strc, par, frc, nil)
	e, err := ev.NewEvaluation(frc)
	if err != nil {
		t.Fatal(err)
	}
	prev := make([]float64, par.Nz)
	dtyr := 3600. / secPerYear
	for !e.Completed() {
		if err := e.Step(); err != nil {
			t.Fatal(err)
		}
		for i, v := range e.rel[0].fidx {
			d := v - prev[i]
			if d < 0. {
				t.Fatalf("frost index decreased at node %d", i)
			}
			if d > nearzero && math.Abs(d-dtyr) > 1e-15 {
				t.Fatalf("node %d gained %g, want 0 or %g", i, d, dtyr)
			}
			prev[i] = v
		}
	}
}
