package main

import (
	"fmt"
	"log"
	"runtime"

	climate "github.com/espin-2021/Climate"
	"github.com/maseology/mmio"
)

func main() {

	const (
		controlFP = "M:/FCM/model/scarborough.fcm"
		mdlPrfx   = "M:/FCM/model/scarborough."
		cid0      = -1 // <0 evaluates every active cell
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// build domain gobs on first run
	if _, ok := mmio.FileExists(mdlPrfx + "structure.gob"); !ok {
		climate.BuildFCM(controlFP)
	}

	// load data
	dom := climate.LoadDomain(mdlPrfx)
	tt.Print("Domain load complete\n")

	var cids []int
	if cid0 >= 0 {
		cids = []int{cid0}
	}
	ev, err := climate.NewEvaluator(dom.Strc, dom.Par, dom.Frc, cids)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// run model
	res, cerrs, err := ev.Evaluate(dom.Frc, mdlPrfx+"out/")
	if err != nil {
		log.Fatalf("%v", err)
	}
	for _, e := range cerrs {
		fmt.Println(e)
	}
	res.ToBil(dom.Strc.GD, mdlPrfx+"check/")
}
