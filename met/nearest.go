package met

import (
	"log"
	"math"

	"github.com/im7mortal/UTM"
	"github.com/maseology/goHydro/grid"
)

// NearestCell returns the active cell whose centroid lies closest to the
// geographic coordinate of the climate record. Cell centroids are held in
// projected UTM coordinates and inverse-projected before comparison.
func NearestCell(gd *grid.Definition, lat, lon float64, utmzone int) int {
	cid, dmin := -1, math.MaxFloat64
	for _, c := range gd.Sactives {
		clat, clon, err := UTM.ToLatLon(gd.Coord[c].X, gd.Coord[c].Y, utmzone, "", true)
		if err != nil {
			log.Fatalf(" met.NearestCell error: %v -- (x,y)=(%f, %f); cid: %d\n", err, gd.Coord[c].X, gd.Coord[c].Y, c)
		}
		if d := math.Hypot(clat-lat, clon-lon); d < dmin {
			dmin, cid = d, c
		}
	}
	return cid
}
