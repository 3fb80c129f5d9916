// Public domain.

// Package orbit computes positions of bodies moving on Keplerian orbits.
//
// Elliptic, parabolic and near-parabolic hyperbolic elements are supported.
// Positions are heliocentric rectangular coordinates referred to the
// equator and equinox of J2000.0, in AU.  Times are JDE.
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

var (
	// ErrNoConvergence reports an iterative anomaly solution that did not
	// converge within its iteration limit.
	ErrNoConvergence = errors.New("no convergence")
	// ErrEccentricity reports an eccentricity outside the range an
	// orbit type supports.
	ErrEccentricity = errors.New("eccentricity out of range")
)

// Heliocentric is a source of heliocentric ecliptic coordinates referred
// to the ecliptic and equinox of J2000.0, R in AU.
//
// Planet theories in this module and the VSOP87 theory of
// github.com/soniakeys/meeus/v3/planetposition satisfy it.
type Heliocentric interface {
	Position2000(jde float64) (L, B unit.Angle, R float64)
}

// Positioner is a source of heliocentric J2000.0 equatorial rectangular
// coordinates.  Elliptic, Parabolic and Hyperbolic satisfy it.
type Positioner interface {
	Rect(jde float64) (coord.Cart, error)
}

// Series adapts a Heliocentric theory to a Positioner.
type Series struct {
	Heliocentric
}

// Rect satisfies Positioner.
func (s Series) Rect(jde float64) (coord.Cart, error) {
	return EclToRect(s.Position2000(jde)), nil
}

// obliquity of the ecliptic at J2000.0
var sε2000, cε2000 = math.Sincos(23.4392911 * math.Pi / 180)

// light time for one AU, in days
const lightTime = .0057755183

// HelioRect returns the heliocentric rectangular position of a body at
// radius r and true anomaly v on an orbit with inclination i, argument of
// perihelion ω and longitude of ascending node Ω.
func HelioRect(r float64, v, i, ω, Ω unit.Angle) coord.Cart {
	su, cu := (ω + v).Sincos()
	si, ci := i.Sincos()
	sΩ, cΩ := Ω.Sincos()
	// ecliptic
	x := r * (cΩ*cu - sΩ*su*ci)
	y := r * (sΩ*cu + cΩ*su*ci)
	z := r * su * si
	// equatorial
	return coord.Cart{
		X: x,
		Y: y*cε2000 - z*sε2000,
		Z: y*sε2000 + z*cε2000,
	}
}

// EclToRect converts J2000.0 heliocentric ecliptic coordinates to J2000.0
// equatorial rectangular coordinates.
func EclToRect(L, B unit.Angle, R float64) coord.Cart {
	sL, cL := L.Sincos()
	sB, cB := B.Sincos()
	x := R * cB * cL
	y := R * cB * sL
	z := R * sB
	return coord.Cart{
		X: x,
		Y: y*cε2000 - z*sε2000,
		Z: y*sε2000 + z*cε2000,
	}
}

// GeoRect returns the geocentric vector of a body from heliocentric
// vectors of the body and the Earth.
//
// No light time correction is involved; both vectors are taken at the
// same instant.
func GeoRect(body, earth coord.Cart) (geo coord.Cart) {
	geo.Sub(&body, &earth)
	return
}

// Equa returns the direction of a rectangular vector as equatorial
// coordinates, and its length.
func Equa(c coord.Cart) (coord.Equa, float64) {
	ρ := math.Hypot(c.X, c.Y)
	return coord.Equa{
		RA:  unit.RAFromRad(math.Atan2(c.Y, c.X)),
		Dec: unit.Angle(math.Atan2(c.Z, ρ)),
	}, math.Sqrt(c.Square())
}

// Geocentric returns the geocentric astrometric J2000.0 position and
// distance in AU of body p at jde, with Earth positions from earth.
//
// The body position is corrected for light time; the Earth position is
// taken at jde.  An earth that is also a Positioner is positioned by its
// Rect method and its errors are returned.
func Geocentric(jde float64, p Positioner, earth Heliocentric) (coord.Equa, float64, error) {
	_, _, geo, err := triangle(jde, p, earth)
	if err != nil {
		return coord.Equa{}, 0, err
	}
	eq, Δ := Equa(geo)
	return eq, Δ, nil
}

// Vectors returns the heliocentric vectors of body p, at the light time
// corrected instant, and of the Earth, at jde.  Both are J2000.0
// equatorial rectangular in AU.
func Vectors(jde float64, p Positioner, earth Heliocentric) (body, e coord.Cart, err error) {
	body, e, _, err = triangle(jde, p, earth)
	return
}

func triangle(jde float64, p Positioner, earth Heliocentric) (b, e, geo coord.Cart, err error) {
	if ep, ok := earth.(Positioner); ok {
		if e, err = ep.Rect(jde); err != nil {
			err = fmt.Errorf("earth: %w", err)
			return
		}
	} else {
		e = EclToRect(earth.Position2000(jde))
	}
	τ := 0.
	for n := 0; n < 3; n++ {
		if b, err = p.Rect(jde - τ); err != nil {
			return
		}
		geo = GeoRect(b, e)
		τ = lightTime * math.Sqrt(geo.Square())
	}
	return
}

// HelioDist returns the distance of body p from the Sun at jde.
func HelioDist(jde float64, p Positioner) (float64, error) {
	b, err := p.Rect(jde)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(b.Square()), nil
}
