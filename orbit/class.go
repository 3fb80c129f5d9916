// Public domain.

package orbit

import (
	"math"

	"github.com/soniakeys/unit"
)

// Class is a dynamical class of small body orbits.
type Class struct {
	Abbr, Name string
	is         func(q, e, i, h float64) bool // i in degrees
}

// Is reports whether an orbit with perihelion distance q, eccentricity e,
// inclination i, and a body of absolute magnitude h, belongs to the class.
func (c Class) Is(q, e float64, i unit.Angle, h float64) bool {
	return c.is(q, e, i.Deg(), h)
}

// Classes lists the recognized orbit classes.  Classes overlap; NEO
// subclasses and H limited NEO classes are also NEOs.
var Classes = []Class{
	{"Int", "Unusual", isUnusual},
	{"NEO", "Near Earth", func(q, e, i, h float64) bool { return q < 1.3 }},
	{"Ati", "Atira", func(q, e, i, h float64) bool { return aphelion(q, e) < .983 }},
	{"Ate", "Aten", isAten},
	{"Apo", "Apollo", isApollo},
	{"Amo", "Amor", func(q, e, i, h float64) bool { return q >= 1.017 && q < 1.3 }},
	// H rounds to the limit or less
	{"N22", "NEO H <= 22", func(q, e, i, h float64) bool { return q < 1.3 && h < 22.5 }},
	{"N18", "NEO H <= 18", func(q, e, i, h float64) bool { return q < 1.3 && h < 18.5 }},
	{"MC", "Mars crosser", isMarsCrosser},
	{"Hun", "Hungaria", box{aLo: 1.78, aHi: 2, eHi: .18, iLo: 16, iHi: 34}.has},
	{"Pho", "Phocaea", box{aLo: 2.2, aHi: 2.45, eHi: 1, iLo: 20, iHi: 27, qLo: 1.5}.has},
	{"MB1", "Inner main belt", box{aLo: 2.1, aHi: 2.5, eHi: 1, iHi: 7, iTop: 17, qLo: 1.67}.has},
	{"Pal", "Pallas", box{aLo: 2.5, aHi: 2.8, eHi: .35, iLo: 24, iHi: 37}.has},
	{"Han", "Hansa", box{aLo: 2.55, aHi: 2.72, eHi: .25, iLo: 20, iHi: 23.5}.has},
	{"MB2", "Middle main belt", box{aLo: 2.5, aHi: 2.8, eHi: .45, iHi: 20}.has},
	{"MB3", "Outer main belt", box{aLo: 2.8, aHi: 3.25, eHi: .4, iHi: 20, iTop: 36}.has},
	{"Hil", "Hilda", box{aLo: 3.9, aHi: 4.02, eHi: .4, iHi: 18}.has},
	{"JTr", "Jupiter trojan", box{aLo: 5.05, aHi: 5.35, eHi: .22, iHi: 38}.has},
	{"JFC", "Jupiter family comet", isJFC},
}

// ClassesOf returns abbreviations of all classes an orbit belongs to.
func ClassesOf(q, e float64, i unit.Angle, h float64) (abbr []string) {
	for _, c := range Classes {
		if c.Is(q, e, i, h) {
			abbr = append(abbr, c.Abbr)
		}
	}
	return
}

// Classes returns abbreviations of the classes of an elliptic orbit for a
// body of absolute magnitude h.
func (o *Elliptic) Classes(h float64) []string {
	return ClassesOf(o.Q(), o.E, o.I, h)
}

// aphelion distance, +Inf for unbound orbits
func aphelion(q, e float64) float64 {
	if e >= 1 {
		return math.Inf(1)
	}
	return q * (1 + e) / (1 - e)
}

// box is a family region: aLo < a < aHi, e <= eHi, q >= qLo, and
// iLo <= i <= iHi.  When iTop is set the upper inclination limit instead
// rises linearly from iHi at aLo to iTop at aHi, exclusive.
type box struct {
	aLo, aHi, eHi, iLo, iHi, iTop, qLo float64
}

func (b box) has(q, e, i, h float64) bool {
	if e > b.eHi || q < b.qLo || i < b.iLo {
		return false
	}
	// unbound orbits give a <= 0 or +Inf
	a := q / (1 - e)
	if a <= b.aLo || a >= b.aHi {
		return false
	}
	if b.iTop == 0 {
		return i <= b.iHi
	}
	return i < b.iHi+(a-b.aLo)/(b.aHi-b.aLo)*(b.iTop-b.iHi)
}

// q < 1.3, e >= .5, i >= 40, or Q > 10
func isUnusual(q, e, i, h float64) bool {
	return q < 1.3 || e >= .5 || i >= 40 || aphelion(q, e) > 10
}

// a < 1, Q > .983
func isAten(q, e, i, h float64) bool {
	return e < 1 && q/(1-e) < 1 && aphelion(q, e) > .983
}

// a > 1, q < 1.017
func isApollo(q, e, i, h float64) bool {
	return q < 1.017 && (e >= 1 || q/(1-e) > 1)
}

// 1.3 <= q < 1.67, Q > 1.58
func isMarsCrosser(q, e, i, h float64) bool {
	return q >= 1.3 && q < 1.67 && aphelion(q, e) > 1.58
}

// 2 < Tisserand parameter with respect to Jupiter < 3, q >= 1.3
func isJFC(q, e, i, h float64) bool {
	if q < 1.3 {
		return false
	}
	tj := 5.2*(1-e)/q + 2*math.Sqrt(q*(1+e)/5.2)*math.Cos(i*math.Pi/180)
	return tj < 3 && tj > 2
}
