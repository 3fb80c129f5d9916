// Public domain.

package planet

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// USNOEarth is the Earth from the USNO low precision solar ephemeris.
// It is good to about an arcminute from 1950 to 2050 and needs no data.
type USNOEarth struct{}

// Position2000 satisfies orbit.Heliocentric.
func (USNOEarth) Position2000(jde float64) (L, B unit.Angle, R float64) {
	earthSun, soe, coe := astro.Se2000(jde - 2400000.5)
	var h coord.Cart
	h.MulScalar(&earthSun, -1)
	h.RotateX(&h, soe, coe) // to ecliptic
	return unit.Angle(math.Atan2(h.Y, h.X)).Mod1(),
		unit.Angle(math.Atan2(h.Z, math.Hypot(h.X, h.Y))),
		math.Sqrt(h.Square())
}
