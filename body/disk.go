// Public domain.

package body

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/illum"
	"github.com/soniakeys/meeus/v3/moonillum"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/semidiameter"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/orbit"
	"github.com/soniakeys/nova/planet"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

// Disk describes the disk of a body as seen from the center of the Earth.
type Disk struct {
	Phase        unit.Angle // angle Sun-body-Earth
	Illuminated  float64    // fraction of the disk
	Limb         unit.Angle // position angle of the midpoint of the bright limb
	Semidiameter unit.Angle // 0 if unknown
	Mag          float64    // visual magnitude, NaN if unknown
}

// Disker is implemented by providers that can describe their disk.
type Disker interface {
	Disk(j float64) (Disk, error)
}

// Magnitude returns the visual magnitude of a body from heliocentric
// J2000.0 equatorial vectors of the body and the Earth, in AU.
type Magnitude func(b, e coord.Cart) float64

// Geometric returns the true geometric longitude of the Sun, referred to
// the mean equinox of date, and the radius vector of the Earth in AU.
// Latitude is taken as zero.
func (Sun) Geometric(j float64) (sky.Ecliptic, float64) {
	T := base.J2000Century(jd.JDE(j))
	s, _ := solar.True(T)
	return sky.Ecliptic{Lon: s.Mod1()}, solar.Radius(T)
}

// Disk returns the full disk of the Sun with its semidiameter.
func (s Sun) Disk(j float64) (Disk, error) {
	_, R := s.Geometric(j)
	return Disk{
		Illuminated:  1,
		Semidiameter: semidiameter.Semidiameter(semidiameter.Sun, R),
		Mag:          math.NaN(),
	}, nil
}

// Disk returns the phase, illuminated fraction, bright limb and
// semidiameter of the Moon.
func (m Moon) Disk(j float64) (Disk, error) {
	jde := jd.JDE(j)
	_, _, Δ := moonposition.Position(jde)
	eq, _ := m.Equatorial(j)
	α0, δ0 := solar.ApparentEquatorial(jde)
	R := solar.Radius(base.J2000Century(jde)) * base.AU
	i := moonillum.PhaseAngleEq(eq.RA, eq.Dec, Δ, α0, δ0, R)
	return Disk{
		Phase:        i,
		Illuminated:  base.Illuminated(i),
		Limb:         base.Limb(eq.RA, eq.Dec, α0, δ0),
		Semidiameter: semidiameter.Semidiameter(semidiameter.Moon, Δ/base.AU),
		Mag:          math.NaN(),
	}, nil
}

// Disk returns the phase and illuminated fraction of the body, with
// the semidiameter and magnitude when S0 and Mag are set.
func (o Orbit) Disk(j float64) (Disk, error) {
	jde := jd.JDE(j)
	b, e, err := orbit.Vectors(jde, o.Body, o.earth())
	if err != nil {
		return Disk{}, err
	}
	geo := orbit.GeoRect(b, e)
	eq, Δ := orbit.Equa(geo)
	eq = apparent(eq, jde)
	r := math.Sqrt(b.Square())
	i := illum.PhaseAngle(r, Δ, math.Sqrt(e.Square()))
	α0, δ0 := solar.ApparentEquatorial(jde)
	d := Disk{
		Phase:       i,
		Illuminated: base.Illuminated(i),
		Limb:        base.Limb(eq.RA, eq.Dec, α0, δ0),
		Mag:         math.NaN(),
	}
	if o.S0 != 0 {
		d.Semidiameter = semidiameter.Semidiameter(o.S0, Δ)
	}
	if o.Mag != nil {
		d.Mag = o.Mag(b, e)
	}
	return d, nil
}

// sides returns the distances of the Sun-body-Earth triangle and the
// phase angle.
func sides(b, e coord.Cart) (r, Δ float64, i unit.Angle) {
	g := orbit.GeoRect(b, e)
	r, Δ = math.Sqrt(b.Square()), math.Sqrt(g.Square())
	return r, Δ, illum.PhaseAngle(r, Δ, math.Sqrt(e.Square()))
}

func withPhase(f func(r, Δ float64, i unit.Angle) float64) Magnitude {
	return func(b, e coord.Cart) float64 {
		return f(sides(b, e))
	}
}

func noPhase(f func(r, Δ float64) float64) Magnitude {
	return func(b, e coord.Cart) float64 {
		r, Δ, _ := sides(b, e)
		return f(r, Δ)
	}
}

// Saturn's ring plane from the IAU pole, α 40.589° δ 83.537° J2000.0.
// ringX points to the ascending node on the equator.
var ringZ, ringX, ringY coord.Cart

func init() {
	sα, cα := math.Sincos(40.589 * math.Pi / 180)
	sδ, cδ := math.Sincos(83.537 * math.Pi / 180)
	ringZ = coord.Cart{X: cδ * cα, Y: cδ * sα, Z: sδ}
	ringX = coord.Cart{X: -sα, Y: cα}
	ringY.Cross(&ringZ, &ringX)
}

// saturnMag includes the rings: B is the Saturnicentric latitude of the
// Earth on the ring plane, ΔU the difference of the Saturnicentric
// longitudes of the Sun and the Earth in it.
func saturnMag(b, e coord.Cart) float64 {
	var g, s coord.Cart
	g.Sub(&e, &b)
	s.Neg(&b)
	r, Δ := math.Sqrt(s.Square()), math.Sqrt(g.Square())
	B := math.Asin(g.Dot(&ringZ) / Δ)
	ΔU := math.Atan2(g.Dot(&ringY), g.Dot(&ringX)) -
		math.Atan2(s.Dot(&ringY), s.Dot(&ringX))
	ΔU = math.Abs(math.Remainder(ΔU, 2*math.Pi))
	return illum.Saturn(r, Δ, unit.Angle(B), unit.Angle(ΔU))
}

// Semidiameters at 1 AU and magnitudes of the planets, by planet number.
// Pluto is from the 1984 Astronomical Almanac, the rest from Meeus
// chapter 41.
var planetDisks = [...]struct {
	s0  unit.Angle
	mag Magnitude
}{
	planet.Mercury: {semidiameter.Mercury, withPhase(illum.Mercury)},
	planet.Venus:   {semidiameter.VenusCloud, withPhase(illum.Venus)},
	planet.Mars:    {semidiameter.Mars, withPhase(illum.Mars)},
	planet.Jupiter: {semidiameter.JupiterEquatorial, noPhase(illum.Jupiter)},
	planet.Saturn:  {semidiameter.SaturnEquatorial, saturnMag},
	planet.Uranus:  {semidiameter.Uranus, noPhase(illum.Uranus)},
	planet.Neptune: {semidiameter.Neptune, noPhase(illum.Neptune)},
	planet.Pluto:   {semidiameter.Pluto, noPhase(illum.Pluto84)},
}

// PlanetDisk returns the semidiameter at 1 AU and the magnitude function
// of planet p, one of the planet constants.  The Earth-Moon barycenter
// and unknown numbers give zero values.
func PlanetDisk(p int) (unit.Angle, Magnitude) {
	if p < 0 || p >= len(planetDisks) {
		return 0, nil
	}
	return planetDisks[p].s0, planetDisks[p].mag
}
