// Public domain.

// Package planet provides heliocentric positions of the major planets.
//
// Approx implements the Standish approximate Keplerian elements, "Keplerian
// Elements for Approximate Positions of the Major Planets," JPL.  It needs
// no data files.  Approximate errors:
//
//	               1800 to 2050               3000 BCE to 3000 CE
//	          RA      Dec     r           RA      Dec     r
//	        (arcsec)(arcsec)(1000 km)   (arcsec)(arcsec)(1000 km)
//	Mercury    15      1       1          20      15       1
//	Venus      20      1       4          40      30       8
//	EM Bary    20      8       6          40      15      15
//	Mars       40      2      25         100      40      30
//	Jupiter   400     10     600         600     100    1000
//	Saturn    600     25    1500        1000     100    4000
//	Uranus     50      2    1000        2000      30    8000
//	Neptune    10      1     200         400      15    4000
//	Pluto       5      2     300         400     100    2500
//
// The VSOP87 theory is loaded from data files with LoadVSOP87.
package planet

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/nova/orbit"
	"github.com/soniakeys/unit"
)

// Planet numbers.  They match those of
// github.com/soniakeys/meeus/v3/planetposition through Neptune, where
// planetposition has the Earth in place of the Earth-Moon barycenter.
const (
	Mercury = iota
	Venus
	EMBary
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	nPlanets
)

var (
	ErrPlanet = errors.New("invalid planet")
	ErrRange  = errors.New("date out of range")
)

// validity of the two element tables
const (
	j1800  = 2378496.5
	j2050  = 2469807.5
	j3000b = 625673.5
	j3000  = 2816787.5
)

// Approx computes Standish approximate positions of a planet.
type Approx struct {
	p int
}

// NewApprox returns an Approx for planet p, one of the planet constants.
func NewApprox(p int) (*Approx, error) {
	if p < 0 || p >= nPlanets {
		return nil, ErrPlanet
	}
	return &Approx{p}, nil
}

// Earth is the Earth-Moon barycenter, standing in for the Earth.
var Earth = &Approx{EMBary}

// Ecliptic returns heliocentric rectangular coordinates referred to the
// ecliptic and equinox of J2000.0, in AU.
//
// Elements valid 1800 to 2050 are used when jde is in that range, the
// long interval elements otherwise.  Dates outside 3000 BCE to 3000 CE
// return ErrRange.
func (a *Approx) Ecliptic(jde float64) (x, y, z float64, err error) {
	if jde < j3000b || jde > j3000 {
		return 0, 0, 0, ErrRange
	}
	return a.ecl(jde)
}

func (a *Approx) ecl(jde float64) (x, y, z float64, err error) {
	T := (jde - j2000) / 36525
	if jde >= j1800 && jde <= j2050 {
		k := short[a.p].at(T)
		return k.rect(k.l - k.ϖ)
	}
	k := long[a.p].at(T)
	M := k.l - k.ϖ
	if a.p >= Jupiter {
		c := &longExtra[a.p-Jupiter]
		M += c.b * T * T
		if c.f != 0 {
			s, cs := math.Sincos(c.f * T * math.Pi / 180)
			M += c.s*s + c.c*cs
		}
	}
	return k.rect(M)
}

// Position2000 returns heliocentric ecliptic coordinates referred to the
// ecliptic and equinox of J2000.0, R in AU.
//
// It satisfies orbit.Heliocentric.  Out of range dates are extrapolated
// as far as the element rates allow; beyond that all three results are
// NaN.  Use Rect or Ecliptic for checked results.
func (a *Approx) Position2000(jde float64) (L, B unit.Angle, R float64) {
	x, y, z, err := a.ecl(jde)
	if err != nil {
		nan := math.NaN()
		return unit.Angle(nan), unit.Angle(nan), nan
	}
	return polar(x, y, z)
}

func polar(x, y, z float64) (L, B unit.Angle, R float64) {
	return unit.Angle(math.Atan2(y, x)).Mod1(),
		unit.Angle(math.Atan2(z, math.Hypot(x, y))),
		math.Sqrt(x*x + y*y + z*z)
}

// Rect returns heliocentric J2000.0 equatorial rectangular coordinates.
// Dates outside 3000 BCE to 3000 CE return ErrRange.
//
// It satisfies orbit.Positioner.
func (a *Approx) Rect(jde float64) (coord.Cart, error) {
	x, y, z, err := a.Ecliptic(jde)
	if err != nil {
		return coord.Cart{}, err
	}
	return orbit.EclToRect(polar(x, y, z)), nil
}

const j2000 = 2451545.0

// element value and rate per century
type rate struct {
	v, d float64
}

func (r rate) at(T float64) float64 { return r.v + r.d*T }

type rates struct {
	a, e, i, l, ϖ, Ω rate
}

// elements at an instant.  angles in degrees.
type elements struct {
	a, e, i, l, ϖ, Ω float64
}

func (r *rates) at(T float64) *elements {
	return &elements{r.a.at(T), r.e.at(T), r.i.at(T), r.l.at(T), r.ϖ.at(T), r.Ω.at(T)}
}

// rect returns ecliptic coordinates for mean anomaly M in degrees.
// Extrapolated rates can carry e out of range far from the epoch.
func (k *elements) rect(M float64) (x, y, z float64, err error) {
	E, err := orbit.Kepler(k.e, unit.AngleFromDeg(M))
	if err != nil {
		return
	}
	sE, cE := E.Sincos()
	xp := k.a * (cE - k.e)
	yp := k.a * math.Sqrt(1-k.e*k.e) * sE
	sω, cω := math.Sincos((k.ϖ - k.Ω) * math.Pi / 180)
	sΩ, cΩ := math.Sincos(k.Ω * math.Pi / 180)
	si, ci := math.Sincos(k.i * math.Pi / 180)
	x = (cω*cΩ-sω*sΩ*ci)*xp + (-sω*cΩ-cω*sΩ*ci)*yp
	y = (cω*sΩ+sω*cΩ*ci)*xp + (-sω*sΩ+cω*cΩ*ci)*yp
	z = sω*si*xp + cω*si*yp
	return
}

// additional mean anomaly terms of the long interval, Jupiter through Pluto
type extra struct {
	b, c, s, f float64
}

var (
	short, long [nPlanets]rates
	longExtra   [nPlanets - Jupiter]extra
)

func init() {
	// Tables are pasted from p_elem_t1.txt and p_elem_t2.txt as text and
	// parsed here.
	//         a              e               I                L            long.peri.      long.node.
	//     AU, AU/Cy     rad, rad/Cy     deg, deg/Cy      deg, deg/Cy      deg, deg/Cy     deg, deg/Cy
	parseTable(&short, `
Mercury   0.38709927      0.20563593      7.00497902      252.25032350     77.45779628     48.33076593
          0.00000037      0.00001906     -0.00594749   149472.67411175      0.16047689     -0.12534081
Venus     0.72333566      0.00677672      3.39467605      181.97909950    131.60246718     76.67984255
          0.00000390     -0.00004107     -0.00078890    58517.81538729      0.00268329     -0.27769418
EM Bary   1.00000261      0.01671123     -0.00001531      100.46457166    102.93768193      0.0
          0.00000562     -0.00004392     -0.01294668    35999.37244981      0.32327364      0.0
Mars      1.52371034      0.09339410      1.84969142       -4.55343205    -23.94362959     49.55953891
          0.00001847      0.00007882     -0.00813131    19140.30268499      0.44441088     -0.29257343
Jupiter   5.20288700      0.04838624      1.30439695       34.39644051     14.72847983    100.47390909
         -0.00011607     -0.00013253     -0.00183714     3034.74612775      0.21252668      0.20469106
Saturn    9.53667594      0.05386179      2.48599187       49.95424423     92.59887831    113.66242448
         -0.00125060     -0.00050991      0.00193609     1222.49362201     -0.41897216     -0.28867794
Uranus   19.18916464      0.04725744      0.77263783      313.23810451    170.95427630     74.01692503
         -0.00196176     -0.00004397     -0.00242939      428.48202785      0.40805281      0.04240589
Neptune  30.06992276      0.00859048      1.77004347      -55.12002969     44.96476227    131.78422574
          0.00026291      0.00005105      0.00035372      218.45945325     -0.32241464     -0.00508664
Pluto    39.48211675      0.24882730     17.14001206      238.92903833    224.06891629    110.30393684
         -0.00031596      0.00005170      0.00004818      145.20780515     -0.04062942     -0.01183482
`)
	parseTable(&long, `
Mercury   0.38709843      0.20563661      7.00559432      252.25166724     77.45771895     48.33961819
          0.00000000      0.00002123     -0.00590158   149472.67486623      0.15940013     -0.12214182
Venus     0.72332102      0.00676399      3.39777545      181.97970850    131.76755713     76.67261496
         -0.00000026     -0.00005107      0.00043494    58517.81560260      0.05679648     -0.27274174
EM Bary   1.00000018      0.01673163     -0.00054346      100.46691572    102.93005885     -5.11260389
         -0.00000003     -0.00003661     -0.01337178    35999.37306329      0.31795260     -0.24123856
Mars      1.52371243      0.09336511      1.85181869       -4.56813164    -23.91744784     49.71320984
          0.00000097      0.00009149     -0.00724757    19140.29934243      0.45223625     -0.26852431
Jupiter   5.20248019      0.04853590      1.29861416       34.33479152     14.27495244    100.29282654
         -0.00002864      0.00018026     -0.00322699     3034.90371757      0.18199196      0.13024619
Saturn    9.54149883      0.05550825      2.49424102       50.07571329     92.86136063    113.63998702
         -0.00003065     -0.00032044      0.00451969     1222.11494724      0.54179478     -0.25015002
Uranus   19.18797948      0.04685740      0.77298127      314.20276625    172.43404441     73.96250215
         -0.00020455     -0.00001550     -0.00180155      428.49512595      0.09266985      0.05739699
Neptune  30.06952752      0.00895439      1.77005520      304.22289287     46.68158724    131.78635853
          0.00006447      0.00000818      0.00022400      218.46515314      0.01009938     -0.00606302
Pluto    39.48686035      0.24885238     17.14104260      238.96535011    224.09702598    110.30167986
          0.00449751      0.00006016      0.00000501      145.18042903     -0.00968827     -0.00809981
`)
	//          b             c             s            f
	for p, line := range strings.Split(`
Jupiter   -0.00012452    0.06064060   -0.35635438   38.35125000
Saturn     0.00025899   -0.13434469    0.87320147   38.35125000
Uranus     0.00058331   -0.97731848    0.17689245    7.67025000
Neptune   -0.00041348    0.68346318   -0.10162547    7.67025000
Pluto     -0.01262724    0             0             0`, "\n")[1:] {
		f := parseFloats(strings.Fields(line)[1:])
		longExtra[p] = extra{f[0], f[1], f[2], f[3]}
	}
}

func parseTable(t *[nPlanets]rates, table string) {
	lines := strings.Split(table, "\n")[1:]
	for p := range t {
		v := parseFloats(strings.Fields(lines[p*2][8:])) // 8 skips the name
		d := parseFloats(strings.Fields(lines[p*2+1][8:]))
		t[p] = rates{
			rate{v[0], d[0]}, rate{v[1], d[1]}, rate{v[2], d[2]},
			rate{v[3], d[3]}, rate{v[4], d[4]}, rate{v[5], d[5]},
		}
	}
}

func parseFloats(s []string) []float64 {
	f := make([]float64, len(s))
	for i, x := range s {
		var err error
		if f[i], err = strconv.ParseFloat(x, 64); err != nil {
			panic(err)
		}
	}
	return f
}
