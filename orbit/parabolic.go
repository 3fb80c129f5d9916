// Public domain.

package orbit

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// Parabolic holds elements of a parabolic orbit.
type Parabolic struct {
	Q    float64    // perihelion distance, AU
	I    unit.Angle // inclination
	W    unit.Angle // argument of perihelion
	Node unit.Angle // longitude of ascending node
	JD   float64    // time of perihelion, JDE
}

// 3k/√2
var barkerW = 3 * astro.K / math.Sqrt2

// barker solves Barker's equation for s = tan(v/2), t days from
// perihelion.
func barker(q, t float64) float64 {
	g := barkerW / (q * math.Sqrt(q)) * t / 2
	y := math.Cbrt(g + math.Sqrt(g*g+1))
	return y - 1/y
}

// BarkerTrueAnomaly returns true anomaly in [0, 2π) on a parabolic orbit
// with perihelion distance q, t days from perihelion.
func BarkerTrueAnomaly(q, t float64) unit.Angle {
	return unit.Angle(2 * math.Atan(barker(q, t))).Mod1()
}

// ParabolicRadius returns the radius vector on a parabolic orbit with
// perihelion distance q, t days from perihelion.
func ParabolicRadius(q, t float64) float64 {
	s := barker(q, t)
	return q * (1 + s*s)
}

// Rect returns the heliocentric J2000.0 equatorial rectangular position
// at jde.  It does not fail.
func (o *Parabolic) Rect(jde float64) (coord.Cart, error) {
	t := jde - o.JD
	return HelioRect(ParabolicRadius(o.Q, t), BarkerTrueAnomaly(o.Q, t),
		o.I, o.W, o.Node), nil
}
