// Public domain.

package orbit

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// Hyperbolic holds elements of a hyperbolic orbit.
type Hyperbolic struct {
	Q    float64    // perihelion distance, AU
	E    float64    // eccentricity
	I    unit.Angle // inclination
	W    unit.Angle // argument of perihelion
	Node unit.Angle // longitude of ascending node
	JD   float64    // time of perihelion, JDE
}

const (
	εSeries = 1e-9
	maxTerm = 1e4
)

// HyperbolicAnomaly returns true anomaly in [0, 2π) and radius vector for
// a body t days from perihelion on an orbit with perihelion distance q and
// eccentricity e near 1.
//
// The Landgraf series solution for near-parabolic orbits is used.  It is
// exact for e = 1 and serves hyperbolic orbits, and elliptic ones near
// e = 1.
func HyperbolicAnomaly(q, e, t float64) (v unit.Angle, r float64, err error) {
	if t == 0 {
		return 0, q, nil
	}
	q1 := astro.K * math.Sqrt((1+e)/q) / (2 * q)
	g := (1 - e) / (1 + e)
	q2 := q1 * t
	s := 2 / (3 * math.Abs(q2))
	s = 2 / math.Tan(2*math.Atan(math.Cbrt(math.Tan(math.Atan(s)/2))))
	if t < 0 {
		s = -s
	}
	if e != 1 {
		if s, err = landgraf(s, q2, g); err != nil {
			return 0, 0, err
		}
	}
	w := 2 * math.Atan(s)
	return unit.Angle(w).Mod1(), q * (1 + e) / (1 + e*math.Cos(w)), nil
}

func landgraf(s, q2, g float64) (float64, error) {
	for l := 0; ; l++ {
		if l == maxIter {
			return 0, ErrNoConvergence
		}
		s0 := s
		y := s * s
		g1 := -y * s
		q3 := q2 + 2*g*s*y/3
		for z := 2.; ; z++ {
			if z > maxIter {
				return 0, ErrNoConvergence
			}
			g1 = -g1 * g * y
			f := (z - (z+1)*g) / (2*z + 1) * g1
			if math.Abs(f) > maxTerm {
				return 0, ErrNoConvergence
			}
			q3 += f
			if math.Abs(f) <= εSeries {
				break
			}
		}
		for n := 0; ; n++ {
			if n == maxIter {
				return 0, ErrNoConvergence
			}
			s1 := s
			s = (2*s*s*s/3 + q3) / (s*s + 1)
			if math.Abs(s-s1) <= εSeries {
				break
			}
		}
		if math.Abs(s-s0) <= εSeries {
			return s, nil
		}
	}
}

// Rect returns the heliocentric J2000.0 equatorial rectangular position
// at jde.
func (o *Hyperbolic) Rect(jde float64) (coord.Cart, error) {
	v, r, err := HyperbolicAnomaly(o.Q, o.E, jde-o.JD)
	if err != nil {
		return coord.Cart{}, err
	}
	return HelioRect(r, v, o.I, o.W, o.Node), nil
}
