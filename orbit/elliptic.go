// Public domain.

package orbit

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// Elliptic holds elements of an elliptic orbit.
type Elliptic struct {
	A    float64    // semimajor axis, AU
	E    float64    // eccentricity, [0, 1)
	I    unit.Angle // inclination
	W    unit.Angle // argument of perihelion
	Node unit.Angle // longitude of ascending node
	N    float64    // mean motion, degrees/day.  0 means compute it from A.
	JD   float64    // time of perihelion, JDE
}

// degrees per day of mean motion for a = 1 AU
var kDeg = astro.K * 180 / math.Pi

// MeanMotion returns mean motion in degrees/day.
//
// If N is set it is returned as is; otherwise it is computed from A.
func (o *Elliptic) MeanMotion() float64 {
	if o.N != 0 {
		return o.N
	}
	return kDeg / (o.A * math.Sqrt(o.A))
}

// MeanAnomaly returns mean anomaly at jde, not reduced.
func (o *Elliptic) MeanAnomaly(jde float64) unit.Angle {
	return unit.AngleFromDeg(o.MeanMotion() * (jde - o.JD))
}

// Period returns the orbital period in days.
func (o *Elliptic) Period() float64 {
	return 360 / o.MeanMotion()
}

// Anomalies returns true anomaly and radius vector at jde.
func (o *Elliptic) Anomalies(jde float64) (v unit.Angle, r float64, err error) {
	E, err := Kepler(o.E, o.MeanAnomaly(jde))
	if err != nil {
		return 0, 0, err
	}
	return EllipticTrueAnomaly(o.E, E), EllipticRadius(o.A, o.E, E), nil
}

// Rect returns the heliocentric J2000.0 equatorial rectangular position
// at jde.
func (o *Elliptic) Rect(jde float64) (coord.Cart, error) {
	v, r, err := o.Anomalies(jde)
	if err != nil {
		return coord.Cart{}, err
	}
	return HelioRect(r, v, o.I, o.W, o.Node), nil
}

// Q returns perihelion distance.
func (o *Elliptic) Q() float64 {
	return o.A * (1 - o.E)
}

// LastPerihelion returns the time of perihelion for elements given with
// mean anomaly M at epoch and mean motion n in degrees/day.
func LastPerihelion(epoch float64, M unit.Angle, n float64) float64 {
	return epoch - M.Deg()/n
}
