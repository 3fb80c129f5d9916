// Public domain.

package orbit

import (
	"math"

	"github.com/soniakeys/unit"
)

const (
	maxIter = 50
	εKepler = 1e-12
)

// Kepler solves Kepler's equation M = E - e sin E for eccentric anomaly E,
// given eccentricity e in [0, 1) and mean anomaly M.
//
// Newton's method is used.  M is reduced to [0, 2π) first, and iteration
// starts from π for e > .8.
func Kepler(e float64, M unit.Angle) (E unit.Angle, err error) {
	if e < 0 || e >= 1 {
		return 0, ErrEccentricity
	}
	m := M.Mod1().Rad()
	x := m
	if e > .8 {
		x = math.Pi
	}
	for n := 0; n < maxIter; n++ {
		s, c := math.Sincos(x)
		d := (x - e*s - m) / (1 - e*c)
		x -= d
		if math.Abs(d) < εKepler {
			return unit.Angle(x), nil
		}
	}
	return 0, ErrNoConvergence
}

// EllipticTrueAnomaly returns true anomaly in [0, 2π) from eccentric
// anomaly E.
func EllipticTrueAnomaly(e float64, E unit.Angle) unit.Angle {
	return unit.Angle(2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(E.Rad()/2))).Mod1()
}

// EllipticRadius returns the radius vector of an elliptic orbit with
// semimajor axis a at eccentric anomaly E.
func EllipticRadius(a, e float64, E unit.Angle) float64 {
	return a * (1 - e*math.Cos(E.Rad()))
}
