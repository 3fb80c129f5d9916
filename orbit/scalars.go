// Public domain.

package orbit

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
)

// Velocities are km/s.
const (
	vEscape   = 42.1219 // escape velocity at 1 AU
	vCircular = 29.7847 // circular velocity at 1 AU
)

// Velocity returns orbital velocity at radius r on an elliptic orbit.
func (o *Elliptic) Velocity(r float64) float64 {
	return vEscape * math.Sqrt(1/r-1/(2*o.A))
}

// PerihelionVelocity returns velocity at perihelion.
func (o *Elliptic) PerihelionVelocity() float64 {
	return vCircular / math.Sqrt(o.A) * math.Sqrt((1+o.E)/(1-o.E))
}

// AphelionVelocity returns velocity at aphelion.
func (o *Elliptic) AphelionVelocity() float64 {
	return vCircular / math.Sqrt(o.A) * math.Sqrt((1-o.E)/(1+o.E))
}

// OrbitLength returns the circumference of the orbit in AU, by Ramanujan's
// approximation.
func (o *Elliptic) OrbitLength() float64 {
	a := o.A
	b := a * math.Sqrt(1-o.E*o.E)
	A := (a + b) / 2
	G := math.Sqrt(a * b)
	H := 2 * a * b / (a + b)
	return math.Pi * (21*A - 2*G - 3*H) / 8
}

// ParabolicVelocity returns velocity at radius r on a parabolic orbit.
func ParabolicVelocity(r float64) float64 {
	return vEscape / math.Sqrt(r)
}

// Mag returns the total magnitude of a comet with absolute magnitude g and
// slope parameter k at solar distance r and geocentric distance Δ.
func Mag(g, k, r, Δ float64) float64 {
	return g + 5*math.Log10(Δ) + 2.5*k*math.Log10(r)
}

// AbsMag returns the absolute magnitude H of an asteroid observed at
// magnitude v, from its geocentric and heliocentric vectors.
func AbsMag(geo, helio coord.Cart, v float64) float64 {
	return astro.HMag(&geo, &helio, v,
		math.Sqrt(geo.Square()), math.Sqrt(helio.Square()))
}
