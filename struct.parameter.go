package climate

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Parameter holds the static physical and numerical settings shared by
// every cell of a run.
type Parameter struct {
	ProfileDepth float64 // depth of the modelled profile [m]
	Nz           int     // depth samples, surface inclusive
	Diffusivity  float64 // thermal diffusivity [m²/s]
	Geotherm     float64 // geothermal gradient [°C/m]
	LapseRate    float64 // air temperature lapse rate [°C/m]
	RefElev      float64 // elevation of the climate record [m]
	WindowLo     float64 // frost-cracking window, lower bound [°C]
	WindowHi     float64 // frost-cracking window, upper bound [°C]
	Method       string  // frost accumulation strategy
}

func defaultParameter() Parameter {
	return Parameter{
		ProfileDepth: 20.,
		Nz:           21,
		Diffusivity:  1.5e-6,
		Geotherm:     .025,
		LapseRate:    -.0065,
		WindowLo:     defaultWindowLo,
		WindowHi:     defaultWindowHi,
		Method:       "anderson1998",
	}
}

func (par *Parameter) check() error {
	switch {
	case par.Nz < 2:
		return fmt.Errorf("%w: need at least 2 depth nodes, have %d", ErrConfiguration, par.Nz)
	case par.ProfileDepth <= 0.:
		return fmt.Errorf("%w: profile depth %f must be positive", ErrConfiguration, par.ProfileDepth)
	case par.Diffusivity <= 0.:
		return fmt.Errorf("%w: diffusivity %e must be positive", ErrConfiguration, par.Diffusivity)
	case par.WindowLo >= par.WindowHi:
		return fmt.Errorf("%w: frost window (%f,%f) is empty", ErrConfiguration, par.WindowLo, par.WindowHi)
	}
	return nil
}

// Dz returns the fixed depth spacing.
func (par *Parameter) Dz() float64 { return par.ProfileDepth / float64(par.Nz-1) }

// StableDt returns the von Neumann limit on the explicit timestep [s].
func (par *Parameter) StableDt() float64 {
	dz := par.Dz()
	return dz * dz / (2. * par.Diffusivity)
}

// checkStability gates the run on the von Neumann criterion: the forcing
// interval must fall strictly below the stable step. A violation is a
// correctness failure, not a tuning concern, and aborts setup.
func (par *Parameter) checkStability(intvlSec float64) error {
	if dts := par.StableDt(); dts <= intvlSec {
		return fmt.Errorf("%w: stable dt %.1fs <= forcing interval %.1fs (dz=%.3fm, kappa=%.2e)",
			ErrStability, dts, intvlSec, par.Dz(), par.Diffusivity)
	}
	return nil
}

func (par *Parameter) CheckAndPrint() {
	fmt.Println("Parameter summary:")
	fmt.Printf(" profile: %.1fm over %d nodes (dz=%.3fm)\n", par.ProfileDepth, par.Nz, par.Dz())
	fmt.Printf(" kappa: %.2e m²/s   geotherm: %.4f °C/m   lapse: %.5f °C/m\n", par.Diffusivity, par.Geotherm, par.LapseRate)
	fmt.Printf(" frost window: (%.1f,%.1f) °C   method: %s\n", par.WindowLo, par.WindowHi, par.Method)
	fmt.Printf(" stable dt: %.1fs\n", par.StableDt())
}

func (par *Parameter) saveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Parameter.saveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(par); err != nil {
		return fmt.Errorf(" Parameter.saveGob %v", err)
	}
	f.Close()
	return nil
}

func loadGobParameter(fp string) (Parameter, error) {
	var par Parameter
	f, err := os.Open(fp)
	if err != nil {
		return par, err
	}
	if err := gob.NewDecoder(f).Decode(&par); err != nil {
		return par, err
	}
	f.Close()
	return par, nil
}
