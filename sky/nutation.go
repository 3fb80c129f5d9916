// Public domain.

package sky

import (
	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/apparent"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// Nutation holds nutation in longitude and in obliquity, and the mean
// obliquity of the ecliptic.
type Nutation struct {
	Lon     unit.Angle // Δψ
	Obl     unit.Angle // Δε
	MeanObl unit.Angle // ε0
}

// NutationAt returns nutation at jde.
func NutationAt(jde float64) Nutation {
	Δψ, Δε := nutation.Nutation(jde)
	return Nutation{
		Lon:     Δψ,
		Obl:     Δε,
		MeanObl: nutation.MeanObliquity(jde),
	}
}

// TrueObl returns the true obliquity of the ecliptic, ε0 + Δε.
func (n Nutation) TrueObl() unit.Angle {
	return n.MeanObl + n.Obl
}

// EquNutation applies nutation at jde to a mean equatorial position of date.
// Results are poor very near the celestial poles.
func EquNutation(eq coord.Equa, jde float64) coord.Equa {
	Δα, Δδ := apparent.Nutation(eq.RA, eq.Dec, jde)
	return coord.Equa{
		RA:  eq.RA.Add(Δα),
		Dec: eq.Dec + Δδ,
	}
}
