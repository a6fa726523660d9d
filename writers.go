package climate

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}

func writeFloats32(gd *grid.Definition, fp string, f []float64) {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, f32)
	os.WriteFile(fp, buf.Bytes(), 0644)
	gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
}

// saveToBins dumps the run snapshot as flat float32 binaries: the depth
// axis, final temperature profiles and frost-cracking indices flattened
// cell-major.
func (ev *Evaluator) saveToBins(res *Result, outdirprfx string) {
	nc, nz := len(res.Cids), ev.Par.Nz
	tmp, fci := make([]float64, nc*nz), make([]float64, nc*nz)
	for k := range res.Cids {
		for i := 0; i < nz; i++ {
			tmp[k*nz+i] = res.Temp[k][i]
			fci[k*nz+i] = res.FCI[k][i]
		}
	}

	writeFloats(outdirprfx+"depth.bin", res.Depth)
	writeFloats(outdirprfx+"temp.bin", tmp)
	writeFloats(outdirprfx+"fci.bin", fci)
	writeFloats(outdirprfx+"fcii.bin", res.DepthIntegrated())
}

// ToBil maps the depth-integrated frost-cracking index over the grid.
func (res *Result) ToBil(gd *grid.Definition, chkdirprfx string) {
	println(" > printing frost-cracking intensity raster..")
	fcii := gd.NullArray(-9999.)
	for k, v := range res.DepthIntegrated() {
		fcii[res.Cids[k]] = v
	}
	writeFloats32(gd, chkdirprfx+"result.fcii.bil", fcii) // depth-integrated frost-cracking index [yr]
}
