package climate

// Profile holds one vertical rock-temperature profile: parallel arrays of
// depth below surface and temperature at fixed spacing. Temp[0] is the
// surface boundary sample, overwritten every timestep; Temp[Nz-1] sits at
// the insulated base.
type Profile struct {
	Depth []float64 // [m], Depth[0]=0, monotonically increasing
	Temp  []float64 // [°C]
	Dz    float64   // [m]
}

// newProfile seeds a profile with the lapse-rate corrected mean surface
// temperature plus the geothermal background. The elevation correction is
// applied once here; the boundary forcing itself is not re-corrected per
// timestep (see Evaluation.Step).
func newProfile(par *Parameter, elev, meanTs float64) (*Profile, error) {
	if err := par.check(); err != nil {
		return nil, err
	}
	dz := par.Dz()
	ts0 := meanTs + par.LapseRate*(elev-par.RefElev)
	p := &Profile{
		Depth: make([]float64, par.Nz),
		Temp:  make([]float64, par.Nz),
		Dz:    dz,
	}
	for i := range p.Depth {
		p.Depth[i] = float64(i) * dz
		p.Temp[i] = ts0 + par.Geotherm*p.Depth[i]
	}
	return p, nil
}
