// Public domain.

package body_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/nova/body"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/planet"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

var (
	_ body.Provider  = body.Fixed{}
	_ body.Provider  = body.Star{}
	_ body.Provider  = body.Sun{}
	_ body.Provider  = body.Moon{}
	_ body.Provider  = body.Orbit{}
	_ body.Horizoned = body.Sun{}
	_ body.Horizoned = body.Moon{}
)

// ut returns the UT Julian day of dynamical time jde.
func ut(jde float64) float64 {
	return jde - jd.DeltaT(jde)/86400
}

func check(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f ±%g", what, got, want, tol)
	}
}

func TestSun(t *testing.T) {
	// Meeus example 25.a
	eq, err := body.Sun{}.Equatorial(ut(2448908.5))
	if err != nil {
		t.Fatal(err)
	}
	check(t, "RA", eq.RA.Deg(), 198.38083, .001)
	check(t, "Dec", eq.Dec.Deg(), -7.78500, .001)
}

func TestMoon(t *testing.T) {
	// Meeus example 47.a
	m := body.Moon{}
	eq, err := m.Equatorial(ut(2448724.5))
	if err != nil {
		t.Fatal(err)
	}
	check(t, "RA", eq.RA.Deg(), 134.688470, .001)
	check(t, "Dec", eq.Dec.Deg(), 13.768368, .001)
	check(t, "Δ", m.Distance(ut(2448724.5)), 368409.7, .1)
	check(t, "horizon", m.StdHorizon().Deg(), .125, 1e-12)
}

func TestVenus(t *testing.T) {
	// Meeus example 33.a, to the precision of the approximate elements
	v, err := planet.NewApprox(planet.Venus)
	if err != nil {
		t.Fatal(err)
	}
	eq, err := body.NewPlanet(v, nil).Equatorial(ut(2448976.5))
	if err != nil {
		t.Fatal(err)
	}
	check(t, "RA", eq.RA.Deg(), 316.172725, .01)
	check(t, "Dec", eq.Dec.Deg(), -18.888010, .01)
}

func TestPlanetRange(t *testing.T) {
	v, err := planet.NewApprox(planet.Venus)
	if err != nil {
		t.Fatal(err)
	}
	p := body.NewPlanet(v, nil)
	for _, j := range []float64{
		jd.JulianDay(jd.Date{Year: 7000, Month: 1, Day: 1}),
		jd.J2000 + 365.25*14000,
	} {
		if _, err := p.Equatorial(j); !errors.Is(err, planet.ErrRange) {
			t.Fatal(j, err)
		}
	}
	// just inside the range
	if _, err := p.Equatorial(jd.JulianDay(jd.Date{Year: 2999, Month: 12, Day: 31})); err != nil {
		t.Fatal(err)
	}
}

func TestFixedAndStar(t *testing.T) {
	pos := sky.NewEqua(210.2655825, 19.1470667)
	eq, _ := body.Fixed{Equa: pos}.Equatorial(2453752.5)
	if eq != pos {
		t.Fatal(eq)
	}
	// Arcturus with its large proper motion
	s := body.Star{
		Pos: pos,
		PM: sky.PM{
			RA:  unit.AngleFromSec(-1.0934),
			Dec: unit.AngleFromSec(-1.99948),
		},
	}
	j := 2453752.5
	got, _ := s.Equatorial(j)
	want := sky.Apparent(s.Pos, s.PM, jd.JDE(j))
	if got != want {
		t.Fatal(got, want)
	}
	// six years of precession and proper motion
	if d := sky.Separation(got, pos).Deg(); d < .05 || d > .1 {
		t.Fatal(d)
	}
}
