// Public domain.

// Package sky converts positions between coordinate frames and applies the
// corrections that take a catalog position to an apparent one.
//
// Equatorial positions are coord.Equa values throughout.  Right ascensions
// returned are normalized to [0, 2π).  Julian days are TT unless a function
// says otherwise; the differences are far below the precision of the
// corrections here.
package sky

import (
	"math"

	"github.com/soniakeys/coord"
	mcoord "github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// Geographic is an observer position on the Earth.  Lon is east-positive.
type Geographic struct {
	Lon, Lat unit.Angle
}

// Ecliptic holds ecliptic longitude and latitude.
type Ecliptic struct {
	Lon, Lat unit.Angle
}

// Horizontal holds azimuth, measured westward from the south, and altitude.
type Horizontal struct {
	Az, Alt unit.Angle
}

// Galactic holds galactic longitude and latitude.
type Galactic struct {
	Lon, Lat unit.Angle
}

// NewEqua returns an equatorial position from degrees.
func NewEqua(ra, dec float64) coord.Equa {
	return coord.Equa{
		RA:  unit.RAFromDeg(ra),
		Dec: unit.AngleFromDeg(dec),
	}
}

// EquToEcl converts equatorial coordinates to ecliptic, for obliquity ε.
func EquToEcl(eq coord.Equa, ε unit.Angle) Ecliptic {
	sε, cε := ε.Sincos()
	λ, β := mcoord.EqToEcl(eq.RA, eq.Dec, sε, cε)
	return Ecliptic{Lon: λ.Mod1(), Lat: β}
}

// EclToEqu converts ecliptic coordinates to equatorial, for obliquity ε.
func EclToEqu(ecl Ecliptic, ε unit.Angle) coord.Equa {
	sε, cε := ε.Sincos()
	α, δ := mcoord.EclToEq(ecl.Lon, ecl.Lat, sε, cε)
	return coord.Equa{RA: α, Dec: δ}
}

// EquToEclAt converts equatorial coordinates to ecliptic using the mean
// obliquity of the ecliptic at jde.
func EquToEclAt(eq coord.Equa, jde float64) Ecliptic {
	return EquToEcl(eq, nutation.MeanObliquity(jde))
}

// EclToEquAt converts ecliptic coordinates to equatorial using the mean
// obliquity of the ecliptic at jde.
func EclToEquAt(ecl Ecliptic, jde float64) coord.Equa {
	return EclToEqu(ecl, nutation.MeanObliquity(jde))
}

// EquToHrz converts equatorial coordinates to horizontal for observer g at
// UT Julian day j, using apparent sidereal time.
func EquToHrz(eq coord.Equa, g Geographic, j float64) Horizontal {
	// west-positive longitude in the horizontal transforms
	A, h := mcoord.EqToHz(eq.RA, eq.Dec, g.Lat, -g.Lon, sidereal.Apparent(j))
	return Horizontal{Az: A.Mod1(), Alt: h}
}

// HrzToEqu converts horizontal coordinates to equatorial for observer g at
// UT Julian day j.
func HrzToEqu(h Horizontal, g Geographic, j float64) coord.Equa {
	α, δ := mcoord.HzToEq(h.Az, h.Alt, g.Lat, -g.Lon, sidereal.Apparent(j))
	return coord.Equa{RA: α, Dec: δ}
}

// galFrame is a galactic frame given by the equatorial position of the
// north galactic pole and the galactic longitude of the north celestial
// pole.  Only J2000.0 is needed here; mcoord covers B1950.0.
type galFrame struct {
	αG, δG, lNCP float64 // radians
}

var gal2000 = galFrame{
	αG:   192.85948 * math.Pi / 180,
	δG:   27.12825 * math.Pi / 180,
	lNCP: 122.93192 * math.Pi / 180,
}

func (f *galFrame) fromEqu(eq coord.Equa) Galactic {
	sδG, cδG := math.Sincos(f.δG)
	sδ, cδ := eq.Dec.Sincos()
	sΔ, cΔ := math.Sincos(float64(eq.RA) - f.αG)
	return Galactic{
		Lon: unit.Angle(f.lNCP - math.Atan2(cδ*sΔ, sδ*cδG-cδ*sδG*cΔ)).Mod1(),
		Lat: unit.Angle(math.Asin(sδ*sδG + cδ*cδG*cΔ)),
	}
}

func (f *galFrame) toEqu(g Galactic) coord.Equa {
	sδG, cδG := math.Sincos(f.δG)
	sb, cb := g.Lat.Sincos()
	sΔ, cΔ := math.Sincos(f.lNCP - g.Lon.Rad())
	return coord.Equa{
		RA:  unit.RAFromRad(f.αG + math.Atan2(cb*sΔ, sb*cδG-cb*sδG*cΔ)),
		Dec: unit.Angle(math.Asin(sb*sδG + cb*cδG*cΔ)),
	}
}

// EquToGal converts B1950.0 equatorial coordinates to galactic.
func EquToGal(eq coord.Equa) Galactic {
	l, b := mcoord.EqToGal(eq.RA, eq.Dec)
	return Galactic{Lon: l, Lat: b}
}

// GalToEqu converts galactic coordinates to B1950.0 equatorial.
func GalToEqu(g Galactic) coord.Equa {
	α, δ := mcoord.GalToEq(g.Lon, g.Lat)
	return coord.Equa{RA: α, Dec: δ}
}

// EquToGal2000 converts J2000.0 equatorial coordinates to galactic.
func EquToGal2000(eq coord.Equa) Galactic { return gal2000.fromEqu(eq) }

// Gal2000ToEqu converts galactic coordinates to J2000.0 equatorial.
func Gal2000ToEqu(g Galactic) coord.Equa { return gal2000.toEqu(g) }
