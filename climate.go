// Package climate estimates near-surface rock temperature histories and a
// derived frost-cracking intensity over a terrain grid. A transient 1-D
// heat-conduction profile is carried at every active grid cell, forced at
// surface by a uniformly-resampled paleoclimate temperature record and
// seeded at depth by the regional geothermal gradient. Time-in-window
// dwell statistics accumulated per depth sample proxy frost-cracking
// intensity.
package climate

const (
	secPerYear = 365.24 * 86400.
	nearzero   = 1e-10
)

// default frost-cracking window bounds [°C]
const (
	defaultWindowLo = -8.
	defaultWindowHi = -3.
)
