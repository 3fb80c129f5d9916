// Public domain.

package sky

import (
	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/apparent"
)

// Aberration applies annual aberration at jde to an equatorial position.
//
// This is the classical formulation, Meeus 23.3, including the e-terms
// from the eccentricity of the Earth's orbit.
func Aberration(eq coord.Equa, jde float64) coord.Equa {
	Δα, Δδ := apparent.Aberration(eq.RA, eq.Dec, jde)
	return coord.Equa{
		RA:  eq.RA.Add(Δα),
		Dec: eq.Dec + Δδ,
	}
}
