// Public domain.

package jd

import (
	"math"

	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// MeanSidereal returns mean sidereal time at Greenwich in hours [0, 24)
// for the UT Julian day j.
func MeanSidereal(j float64) float64 {
	return hours(sidereal.Mean(j))
}

// ApparentSidereal returns apparent sidereal time at Greenwich in hours
// [0, 24), mean sidereal time corrected by the equation of the equinoxes.
func ApparentSidereal(j float64) float64 {
	return hours(sidereal.Apparent(j))
}

func hours(t unit.Time) float64 {
	h := math.Mod(t.Hour(), 24)
	if h < 0 {
		h += 24
	}
	return h
}
