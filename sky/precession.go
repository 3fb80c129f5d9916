// Public domain.

package sky

import (
	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/base"
	mcoord "github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/nova/jd"
)

// Precess precesses a J2000.0 mean position to the equinox of jde.
func Precess(eq coord.Equa, jde float64) coord.Equa {
	return Precess2(eq, jd.J2000, jde)
}

// Precess2 precesses a mean position from the equinox of fromJDE to that of
// toJDE.  Proper motion is not included; see ProperMotion.
//
// The rigorous method of Meeus chapter 21 is used, with ζ, z and θ
// expanded about the starting equinox.  Declinations near the poles are
// taken from the cosine.
func Precess2(eq coord.Equa, fromJDE, toJDE float64) coord.Equa {
	p := precess.NewPrecessor(base.JDEToJulianYear(fromJDE), base.JDEToJulianYear(toJDE))
	e := &mcoord.Equatorial{RA: eq.RA, Dec: eq.Dec}
	p.Precess(e, e)
	return coord.Equa{RA: e.RA, Dec: e.Dec}
}
