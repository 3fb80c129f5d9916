// Public domain.

package planet_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/orbit"
	"github.com/soniakeys/nova/planet"
)

// both satisfy orbit.Heliocentric
var (
	_ orbit.Heliocentric = planet.Earth
	_ orbit.Heliocentric = planet.USNOEarth{}
	_ orbit.Positioner   = planet.Earth
)

func TestVenus(t *testing.T) {
	// Meeus example 32.a date, J2000 frame
	v, err := planet.NewApprox(planet.Venus)
	if err != nil {
		t.Fatal(err)
	}
	L, B, R := v.Position2000(2448976.5)
	if math.Abs(L.Deg()-26.20653309) > 1e-7 ||
		math.Abs(B.Deg()+2.62042893) > 1e-7 ||
		math.Abs(R-.72461043) > 1e-8 {
		t.Fatal(L.Deg(), B.Deg(), R)
	}
	x, y, z, err := v.Ecliptic(2448976.5)
	if err != nil {
		t.Fatal(err)
	}
	if r := math.Sqrt(x*x + y*y + z*z); math.Abs(r-R) > 1e-12 {
		t.Fatal(r, R)
	}
}

func TestUSNOEarth(t *testing.T) {
	// USNO longitudes are of date; at J2000 the frames coincide
	L, B, R := planet.Earth.Position2000(jd.J2000)
	Lu, Bu, Ru := planet.USNOEarth{}.Position2000(jd.J2000)
	if math.Abs((L - Lu).Deg()) > .01 {
		t.Error("L", L.Deg(), Lu.Deg())
	}
	if math.Abs((B - Bu).Deg()) > .001 {
		t.Error("B", B.Deg(), Bu.Deg())
	}
	if math.Abs(R-Ru) > 1e-5 {
		t.Error("R", R, Ru)
	}
}

func TestRange(t *testing.T) {
	if _, err := planet.NewApprox(planet.Pluto + 1); !errors.Is(err, planet.ErrPlanet) {
		t.Fatal(err)
	}
	// long interval elements
	old := jd.JulianDay(jd.Date{Year: -2000, Month: 1, Day: 1})
	_, _, z, err := planet.Earth.Ecliptic(old)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(z) > .02 {
		t.Fatal("EM bary z", z)
	}
	late := jd.JulianDay(jd.Date{Year: 3001, Month: 1, Day: 1})
	if _, _, _, err := planet.Earth.Ecliptic(late); !errors.Is(err, planet.ErrRange) {
		t.Fatal(err)
	}
	if _, err := planet.Earth.Rect(late); !errors.Is(err, planet.ErrRange) {
		t.Fatal(err)
	}
	// Position2000 extrapolates
	if _, _, R := planet.Earth.Position2000(late); math.Abs(R-1) > .02 {
		t.Fatal(R)
	}
}

func TestTableSeam(t *testing.T) {
	// short and long interval elements meet at 1800
	const j1800 = 2378496.5
	L0, _, R0 := planet.Earth.Position2000(j1800 - 1e-6)
	L1, _, R1 := planet.Earth.Position2000(j1800)
	if d := math.Abs((L1 - L0).Deg()); d > .05 {
		t.Fatal("seam ΔL", d)
	}
	if math.Abs(R1-R0) > .001 {
		t.Fatal("seam ΔR", R1-R0)
	}
}

func TestVSOP87(t *testing.T) {
	v, err := planet.LoadVSOP87(planet.Venus)
	if err != nil {
		t.Skip(err)
	}
	a, _ := planet.NewApprox(planet.Venus)
	for _, j := range []float64{2378496.5, 2448976.5, 2460000.5} {
		L, B, R := v.Position2000(j)
		La, Ba, Ra := a.Position2000(j)
		if math.Abs((L-La).Deg()) > 60./3600 ||
			math.Abs((B-Ba).Deg()) > 10./3600 ||
			math.Abs(R-Ra) > 1e-4 {
			t.Fatal(j, L.Deg(), La.Deg(), B.Deg(), Ba.Deg(), R, Ra)
		}
	}
	if _, err := planet.LoadVSOP87(planet.Pluto); !errors.Is(err, planet.ErrPlanet) {
		t.Fatal(err)
	}
}

func TestRect(t *testing.T) {
	r, err := planet.Earth.Rect(jd.J2000)
	if err != nil {
		t.Fatal(err)
	}
	L, _, R := planet.Earth.Position2000(jd.J2000)
	eq, d := orbit.Equa(r)
	if math.Abs(d-R) > 1e-12 {
		t.Fatal(d, R)
	}
	// near the ecliptic, RA in the same quadrant as L
	if math.Abs(eq.Dec.Deg()) > 23.5 || math.Abs(eq.RA.Deg()-L.Deg()) > 3 {
		t.Fatal(eq.RA.Deg(), eq.Dec.Deg(), L.Deg())
	}
}

func TestExtrapolationLimit(t *testing.T) {
	v, err := planet.NewApprox(planet.Venus)
	if err != nil {
		t.Fatal(err)
	}
	y7000 := jd.JulianDay(jd.Date{Year: 7000, Month: 1, Day: 1})
	if _, err := v.Rect(y7000); !errors.Is(err, planet.ErrRange) {
		t.Fatal(err)
	}
	if _, _, R := v.Position2000(y7000); math.Abs(R-.723) > .01 {
		t.Fatal("extrapolated R", R)
	}
	// the Venus eccentricity rate takes e below 0 by year 16000
	far := jd.J2000 + 365.25*14000
	if _, _, R := v.Position2000(far); !math.IsNaN(R) {
		t.Fatal("R", R)
	}
	if _, err := v.Rect(far); !errors.Is(err, planet.ErrRange) {
		t.Fatal(err)
	}
}
