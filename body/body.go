// Public domain.

// Package body supplies apparent equatorial positions of celestial bodies
// for the rise, set and transit solver.
//
// A Provider answers one question: where is the body, in apparent
// equatorial coordinates of date, at a given UT Julian day.  Conversion
// to dynamical time happens inside each provider.
package body

import (
	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/rise"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/orbit"
	"github.com/soniakeys/nova/planet"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

// Provider returns the apparent equatorial position of a body at UT
// Julian day j.
type Provider interface {
	Equatorial(j float64) (coord.Equa, error)
}

// Horizoned is implemented by providers with a conventional horizon
// altitude for rising and setting.
type Horizoned interface {
	StdHorizon() unit.Angle
}

// Fixed is a position that does not change.
type Fixed struct {
	coord.Equa
}

// Equatorial satisfies Provider.
func (f Fixed) Equatorial(float64) (coord.Equa, error) { return f.Equa, nil }

// StdHorizon returns the standard altitude for stars.
func (Fixed) StdHorizon() unit.Angle { return rise.Stdh0Stellar }

// Star is a catalog position at J2000.0 with proper motion.
type Star struct {
	Pos coord.Equa
	PM  sky.PM
}

// Equatorial returns the apparent place.
func (s Star) Equatorial(j float64) (coord.Equa, error) {
	return sky.Apparent(s.Pos, s.PM, jd.JDE(j)), nil
}

// StdHorizon returns the standard altitude for stars.
func (Star) StdHorizon() unit.Angle { return rise.Stdh0Stellar }

// Sun is the Sun, from the solar theory of Meeus chapter 25.
type Sun struct{}

// Equatorial returns apparent right ascension and declination, including
// nutation and aberration.
func (Sun) Equatorial(j float64) (coord.Equa, error) {
	α, δ := solar.ApparentEquatorial(jd.JDE(j))
	return coord.Equa{RA: α, Dec: δ}, nil
}

// StdHorizon returns the standard altitude for the upper limb of the Sun.
func (Sun) StdHorizon() unit.Angle { return rise.Stdh0Solar }

// Moon is the Moon, from the lunar theory of Meeus chapter 47.
type Moon struct{}

// Equatorial returns the geocentric apparent position.
func (Moon) Equatorial(j float64) (coord.Equa, error) {
	jde := jd.JDE(j)
	λ, β, _ := moonposition.Position(jde)
	n := sky.NutationAt(jde)
	return sky.EclToEqu(sky.Ecliptic{Lon: λ + n.Lon, Lat: β}, n.TrueObl()), nil
}

// Distance returns the geocentric distance in km.
func (Moon) Distance(j float64) float64 {
	_, _, Δ := moonposition.Position(jd.JDE(j))
	return Δ
}

// StdHorizon returns the mean standard altitude for the Moon.
func (Moon) StdHorizon() unit.Angle { return rise.Stdh0LunarMean }

// Orbit is a body with heliocentric J2000.0 rectangular positions, such
// as an orbit.Elliptic.  A nil Earth uses planet.Earth.
//
// S0 and Mag are optional, for Disk.  PlanetDisk supplies them for the
// major planets.
type Orbit struct {
	Body  orbit.Positioner
	Earth orbit.Heliocentric
	S0    unit.Angle // semidiameter at 1 AU
	Mag   Magnitude
}

func (o Orbit) earth() orbit.Heliocentric {
	if o.Earth == nil {
		return planet.Earth
	}
	return o.Earth
}

// apparent precesses a J2000.0 position to the equinox of date and
// nutates it.
func apparent(eq coord.Equa, jde float64) coord.Equa {
	return sky.EquNutation(sky.Precess(eq, jde), jde)
}

// Equatorial returns the position corrected for light time, precessed
// to the equinox of date and nutated.
func (o Orbit) Equatorial(j float64) (coord.Equa, error) {
	eq, _, err := o.Geocentric(j)
	return eq, err
}

// Geocentric is Equatorial with the geocentric distance in AU.
func (o Orbit) Geocentric(j float64) (coord.Equa, float64, error) {
	jde := jd.JDE(j)
	eq, Δ, err := orbit.Geocentric(jde, o.Body, o.earth())
	if err != nil {
		return coord.Equa{}, 0, err
	}
	return apparent(eq, jde), Δ, nil
}

// StdHorizon returns the standard altitude for stars.
func (Orbit) StdHorizon() unit.Angle { return rise.Stdh0Stellar }

// NewPlanet returns a provider for a planet theory such as a planet.Approx
// or a VSOP87 planet.  A nil earth uses planet.Earth.
//
// A theory that is also an orbit.Positioner, as planet.Approx is, is
// positioned through its Rect method so its range errors are returned.
func NewPlanet(p, earth orbit.Heliocentric) Orbit {
	if r, ok := p.(orbit.Positioner); ok {
		return Orbit{Body: r, Earth: earth}
	}
	return Orbit{Body: orbit.Series{Heliocentric: p}, Earth: earth}
}
