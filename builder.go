package climate

import (
	"fmt"
	"strconv"

	"github.com/espin-2021/Climate/met"
	"github.com/maseology/mmio"
)

// BuildFCM builds a model domain from a .fcm control file: terrain, a
// uniformly-resampled climate forcing and defaulted parameters, gated by
// the stability criterion and cached to gob.
func BuildFCM(controlFP string) {

	///////////////////////////////////////////////////////
	println("load .fcm file")
	var mdlprfx, gdefFP, hdemFP, ncFP string
	var intvl, lat, lon float64
	var utmzone int
	func(fcmFP string) { // getFilePaths
		var err error
		ins := mmio.NewInstruct(fcmFP)
		mdlprfx = ins.Param["prfx"][0]
		gdefFP = ins.Param["gdeffp"][0]
		hdemFP = ins.Param["hdemfp"][0]
		ncFP = ins.Param["ncfp"][0]
		if intvl, err = strconv.ParseFloat(ins.Param["intvl"][0], 64); err != nil {
			panic(err)
		}
		if lat, err = strconv.ParseFloat(ins.Param["lat"][0], 64); err != nil {
			panic(err)
		}
		if lon, err = strconv.ParseFloat(ins.Param["lon"][0], 64); err != nil {
			panic(err)
		}
		if utmzone, err = strconv.Atoi(ins.Param["utmzone"][0]); err != nil {
			panic(err)
		}
	}(controlFP)

	///////////////////////////////////////////////////////
	println("building..")
	chkdir := mmio.GetFileDir(mdlprfx) + "/check/"
	strc := buildSTRC(gdefFP, hdemFP)

	frc := func(fp string) *met.Forcing {
		if _, ok := mmio.FileExists(fp); ok {
			frc, err := met.LoadGobForcing(fp)
			if err != nil {
				panic(err)
			}
			return frc
		}
		println("  load forcings..")
		frc, err := met.BuildForcing(ncFP, intvl)
		if err != nil {
			panic(err)
		}
		if err := frc.SaveGob(fp); err != nil {
			panic(err)
		}
		return frc
	}(mdlprfx + "forcing.gob")

	println("  parameterizing with defaults..")
	par := defaultParameter()
	cref := met.NearestCell(strc.GD, lat, lon, utmzone)
	par.RefElev = strc.Elev[cref]
	fmt.Printf("  climate record bound to cell %d (z=%.1fm)\n", cref, par.RefElev)

	// the stability gate; a violating setup never reaches evaluation
	if err := par.checkStability(frc.IntervalSec); err != nil {
		panic(err)
	}

	// summarize
	if len(chkdir) > 0 {
		println("\nBuild Summary\n==================================")
		strc.Checkandprint(chkdir)
		frc.CheckAndPrint()
		par.CheckAndPrint()
		mmio.WriteCsvDateFloats(chkdir+"forcing.ts.csv", "date,ts", frc.T, frc.Ts)
	}

	// save gobs
	println("\nSaving gobs..")
	if err := strc.SaveGob(mdlprfx + "structure.gob"); err != nil {
		panic(err)
	}
	if err := par.saveGob(mdlprfx + "parameter.gob"); err != nil {
		panic(err)
	}

	println()
}
