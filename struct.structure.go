package climate

import (
	"encoding/gob"
	"fmt"
	"log"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/goHydro/tem"
)

// Structure holds the static terrain data: the grid definition and the
// surface elevation of every active cell. Immutable once built.
type Structure struct {
	GD   *grid.Definition
	Elev map[int]float64 // cell ID to surface elevation [m]
	Cids []int           // active cell IDs, grid order
	Nc   int
}

// buildSTRC loads a grid definition and its DEM, keeping elevations only.
// Sentinel elevations (-9999) are filled with the domain mean before the
// solver ever sees them.
func buildSTRC(gdefFP, hdemFP string) *Structure {
	println(" > step 1: load grid definition with active cells defined")
	gd := func() *grid.Definition {
		gd, err := grid.ReadGDEF(gdefFP, true)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if len(gd.Sactives) <= 0 {
			log.Fatalf("error: grid definition requires active cells")
		}
		return gd
	}()

	fmt.Printf(" > step 2: load DEM elevations\n   loading: %s\n", hdemFP)
	var dem tem.TEM
	if err := dem.New(hdemFP); err != nil {
		log.Fatalf(" buildSTRC tem.New() error: %v", err)
	}

	elev, nfill := make(map[int]float64, gd.Nact), 0
	zm := func() float64 {
		s, n := 0., 0
		for _, i := range gd.Sactives {
			t, ok := dem.TEC[i]
			if !ok {
				log.Fatalf(" buildSTRC error: cell id %d not found in %s", i, hdemFP)
			}
			if t.Z != -9999. {
				s += t.Z
				n++
			}
		}
		if n == 0 {
			log.Fatalf(" buildSTRC error: %s holds no valid elevations", hdemFP)
		}
		return s / float64(n)
	}()
	for _, i := range gd.Sactives {
		if z := dem.TEC[i].Z; z == -9999. {
			elev[i] = zm
			nfill++
		} else {
			elev[i] = z
		}
	}
	if nfill > 0 {
		fmt.Printf("    %d sentinel elevations filled with domain mean %.1f\n", nfill, zm)
	}

	cids := make([]int, gd.Nact)
	copy(cids, gd.Sactives)

	return &Structure{GD: gd, Elev: elev, Cids: cids, Nc: gd.Nact}
}

func (s *Structure) Checkandprint(chkdirprfx string) {
	z := s.GD.NullArray(-9999.)
	for _, c := range s.Cids {
		z[c] = s.Elev[c]
	}
	writeFloats32(s.GD, chkdirprfx+"structure.elev.bil", z) // surface elevation [m]
}

func (s *Structure) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" structure.Save %v", err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" structure.Save %v", err)
	}
	f.Close()
	return nil
}

func LoadGobStructure(fp string) (*Structure, error) {
	var strc Structure
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&strc)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &strc, nil
}
