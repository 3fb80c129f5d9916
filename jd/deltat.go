// Public domain.

package jd

import "github.com/soniakeys/meeus/v3/base"

// DeltaT returns TT − UT in seconds for the UT Julian day j.
//
// The polynomials are those of Espenak and Meeus, Five Millennium Canon of
// Solar Eclipses, by era.
func DeltaT(j float64) float64 {
	y := 2000 + (j-J2000)/365.25
	switch {
	case y < -500:
		return longTerm(y)
	case y < 500:
		return base.Horner(y/100,
			10583.6, -1014.41, 33.78311, -5.952053,
			-.1798452, .022174192, .0090316521)
	case y < 1600:
		return base.Horner((y-1000)/100,
			1574.2, -556.01, 71.23472, .319781,
			-.8503463, -.005050998, .0083572073)
	case y < 1700:
		return base.Horner(y-1600, 120, -.9808, -.01532, 1./7129)
	case y < 1800:
		return base.Horner(y-1700,
			8.83, .1603, -.0059285, .00013336, -1./1174000)
	case y < 1860:
		return base.Horner(y-1800,
			13.72, -.332447, .0068612, .0041116, -.00037436,
			.0000121272, -.0000001699, .000000000875)
	case y < 1900:
		return base.Horner(y-1860,
			7.62, .5737, -.251754, .01680668, -.0004473624, 1./233174)
	case y < 1920:
		return base.Horner(y-1900,
			-2.79, 1.494119, -.0598939, .0061966, -.000197)
	case y < 1941:
		return base.Horner(y-1920, 21.20, .84493, -.076100, .0020936)
	case y < 1961:
		return base.Horner(y-1950, 29.07, .407, -1./233, 1./2547)
	case y < 1986:
		return base.Horner(y-1975, 45.45, 1.067, -1./260, -1./718)
	case y < 2005:
		return base.Horner(y-2000,
			63.86, .3345, -.060374, .0017275, .000651814, .00002373599)
	case y < 2050:
		return base.Horner(y-2000, 62.92, .32217, .005589)
	case y < 2150:
		return longTerm(y) - .5628*(2150-y)
	}
	return longTerm(y)
}

func longTerm(y float64) float64 {
	u := (y - 1820) / 100
	return -20 + 32*u*u
}

// JDE returns the TT Julian ephemeris day of the UT Julian day j.
func JDE(j float64) float64 {
	return j + DeltaT(j)/86400
}
