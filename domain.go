package climate

import (
	"fmt"
	"log"
	"sync"

	"github.com/espin-2021/Climate/met"
)

// Domain holds all data from which runs are derived: static terrain,
// shared parameters and the read-only forcing record.
type Domain struct {
	Strc *Structure
	Par  Parameter
	Frc  *met.Forcing
}

// LoadDomain loads the gobs cached by BuildFCM.
func LoadDomain(mdlprfx string) *Domain {
	fmt.Println("Loading Domain..")

	var wg sync.WaitGroup
	wg.Add(3)

	var strc *Structure
	go func() {
		defer wg.Done()
		var err error
		if strc, err = LoadGobStructure(mdlprfx + "structure.gob"); err != nil {
			log.Fatalf("%v", err)
		}
	}()

	var par Parameter
	go func() {
		defer wg.Done()
		var err error
		if par, err = loadGobParameter(mdlprfx + "parameter.gob"); err != nil {
			log.Fatalf("%v", err)
		}
	}()

	var frc *met.Forcing
	go func() {
		defer wg.Done()
		var err error
		if frc, err = met.LoadGobForcing(mdlprfx + "forcing.gob"); err != nil {
			log.Fatalf("%v", err)
		}
	}()
	wg.Wait()

	return &Domain{Strc: strc, Par: par, Frc: frc}
}

// IsEmpty returns true if the domain has no data
func (m *Domain) IsEmpty() bool { return m.Strc == nil || m.Frc == nil }
