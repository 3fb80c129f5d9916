// Public domain.

package sky

import (
	"github.com/soniakeys/coord"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/unit"
)

// PM is an annual proper motion.  RA is the rate of change of right
// ascension itself, not multiplied by cos δ.
type PM struct {
	RA, Dec unit.Angle
}

// ProperMotion applies proper motion pm to a J2000.0 position, carrying it
// to jde.
func ProperMotion(eq coord.Equa, pm PM, jde float64) coord.Equa {
	y := (jde - jd.J2000) / 365.25
	return coord.Equa{
		RA:  unit.RAFromRad(float64(eq.RA) + pm.RA.Rad()*y),
		Dec: eq.Dec + pm.Dec*unit.Angle(y),
	}
}

// Apparent returns the apparent place at jde of a J2000.0 catalog
// position with proper motion pm.
//
// Corrections are applied in the order proper motion, aberration,
// precession, nutation.
func Apparent(eq coord.Equa, pm PM, jde float64) coord.Equa {
	eq = ProperMotion(eq, pm, jde)
	eq = Aberration(eq, jde)
	eq = Precess(eq, jde)
	return EquNutation(eq, jde)
}
