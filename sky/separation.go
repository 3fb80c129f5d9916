// Public domain.

package sky

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// Separation returns the angular separation of two positions.
//
// The haversine form is used; it stays accurate for small separations.
func Separation(a, b coord.Equa) unit.Angle {
	return angle.SepHav(a.RA.Angle(), a.Dec, b.RA.Angle(), b.Dec)
}

// PositionAngle returns the position angle of a relative to b, measured
// from north through east.
func PositionAngle(a, b coord.Equa) unit.Angle {
	sΔ, cΔ := math.Sincos(float64(a.RA) - float64(b.RA))
	sδb, cδb := b.Dec.Sincos()
	return unit.Angle(math.Atan2(sΔ, cδb*math.Tan(a.Dec.Rad())-sδb*cΔ)).Mod1()
}

// Airmass returns the relative air mass at altitude alt for an atmosphere
// of the given scale, the ratio of Earth radius to atmosphere height.
// 750 is a common scale.
func Airmass(alt unit.Angle, scale float64) float64 {
	a := scale * math.Sin(alt.Rad())
	return math.Sqrt(a*a+2*scale+1) - a
}

// AltFromAirmass is the inverse of Airmass.
func AltFromAirmass(x, scale float64) unit.Angle {
	return unit.Angle(math.Asin((2*scale + 1 - x*x) / (2 * x * scale)))
}

// HeliocentricTimeDiff returns the difference in days, heliocentric minus
// geocentric, in the time light from an object at eq reaches the Sun and
// the Earth at jde.
func HeliocentricTimeDiff(jde float64, eq coord.Equa) float64 {
	T := base.J2000Century(jde)
	s, _ := solar.True(T)
	R := solar.Radius(T)
	sε, cε := nutation.MeanObliquity(jde).Sincos()
	sθ, cθ := s.Sincos()
	sα, cα := math.Sincos(float64(eq.RA))
	sδ, cδ := eq.Dec.Sincos()
	return -.0057755 * R * (cθ*cα*cδ + sθ*(sε*sδ+cε*cδ*sα))
}
