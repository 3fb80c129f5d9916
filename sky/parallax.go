// Public domain.

package sky

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/meeus/v3/parallax"
	"github.com/soniakeys/unit"
)

// ParallaxConstants returns ρ sin φ′ and ρ cos φ′ for geographic latitude
// lat and height in meters above the IAU 1976 ellipsoid.
func ParallaxConstants(lat unit.Angle, height float64) (ρsφ, ρcφ float64) {
	return globe.Earth76.ParallaxConstants(lat, height)
}

// ParallaxRho returns the topocentric position of a body at distance dist
// in AU with geocentric position eq, for an observer with parallax
// constants ρsφ, ρcφ seeing the body at hour angle H.
func ParallaxRho(eq coord.Equa, dist, ρsφ, ρcφ float64, H unit.Angle) coord.Equa {
	sπ := parallax.Horizontal(dist).Sin()
	sH, cH := H.Sincos()
	sδ, cδ := eq.Dec.Sincos()
	d := cδ - ρcφ*sπ*cH
	Δα := math.Atan2(-ρcφ*sπ*sH, d)
	return coord.Equa{
		RA:  unit.RAFromRad(float64(eq.RA) + Δα),
		Dec: unit.Angle(math.Atan2((sδ-ρsφ*sπ)*math.Cos(Δα), d)),
	}
}

// Parallax returns the topocentric position at UT Julian day j of a body at
// distance dist in AU with geocentric position eq, for an observer at g and
// height meters.
func Parallax(eq coord.Equa, dist float64, g Geographic, height, j float64) coord.Equa {
	ρsφ, ρcφ := ParallaxConstants(g.Lat, height)
	α, δ := parallax.Topocentric(eq.RA, eq.Dec, dist, ρsφ, ρcφ, -g.Lon, j)
	return coord.Equa{RA: α, Dec: δ}
}
