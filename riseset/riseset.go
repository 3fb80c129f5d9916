// Public domain.

// Package riseset computes times of rising, transit and setting.
//
// Times are UT Julian days.  A calculation covers the day window that
// starts at 0h UT of the day containing the requested time, offset by ΔT
// so that the window is aligned with dynamical time.  Object solves for a
// position that does not move.  Body samples a moving body on the
// previous, current and following day and refines each event once by
// interpolation.
//
// When the body stays above or below the horizon for the whole window the
// result Status says so and the event times are zero.  That is a
// geometric outcome, not an error.
package riseset

import (
	"errors"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/rise"
	"github.com/soniakeys/nova/body"
	"github.com/soniakeys/nova/internal/interp"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

// Standard horizon altitudes.
var (
	Stellar              = rise.Stdh0Stellar
	Solar                = rise.Stdh0Solar
	Lunar                = rise.Stdh0LunarMean
	CivilTwilight        = unit.AngleFromDeg(-6)
	NauticalTwilight     = unit.AngleFromDeg(-12)
	AstronomicalTwilight = unit.AngleFromDeg(-18)
)

// HorizonOf returns the standard horizon of p, Stellar if p has none.
func HorizonOf(p body.Provider) unit.Angle {
	if h, ok := p.(body.Horizoned); ok {
		return h.StdHorizon()
	}
	return Stellar
}

// Status classifies a rise/set calculation.
type Status int

const (
	Normal      Status = iota
	AlwaysAbove        // circumpolar
	NeverRises
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "normal"
	case AlwaysAbove:
		return "always above horizon"
	case NeverRises:
		return "never rises"
	}
	return "invalid status"
}

// RST holds UT Julian days of rising, transit and setting.  The times are
// only meaningful when Status is Normal.
type RST struct {
	Rise, Transit, Set float64
	Status             Status
}

var (
	// ErrNotBracketed reports a next-event search that could not place an
	// event in the day following the requested time.
	ErrNotBracketed = errors.New("event not bracketed")
	// ErrNotFound reports a bounded search that found no rising or
	// setting within its day limit.
	ErrNotFound = errors.New("no rise or set found")
)

// window is the time frame of one calculation.
type window struct {
	ut float64 // Day0 + ΔT
	θ0 float64 // apparent sidereal time at ut, degrees
}

func newWindow(j float64) window {
	ut := jd.Day0(j) + jd.DeltaT(j)/86400
	return window{ut, jd.ApparentSidereal(ut) * 15}
}

// hourAngle returns the hour angle of the horizon crossing as a fraction
// of a day, or the circumpolar status.
func hourAngle(h, φ, δ unit.Angle) (float64, Status) {
	sφ, cφ := φ.Sincos()
	sδ, cδ := δ.Sincos()
	c := (h.Sin() - sφ*sδ) / (cφ * cδ)
	switch {
	case c > 1:
		return 0, NeverRises
	case c < -1:
		return 0, AlwaysAbove
	}
	return math.Acos(c) / (2 * math.Pi), Normal
}

// wrap reduces a day fraction to [lo, lo+1).
func wrap(m, lo float64) float64 {
	return m - math.Floor(m-lo)
}

// Object computes rise, transit and set of a fixed position eq, for an
// observer at g and horizon altitude h, on the day window containing j.
func Object(j float64, g sky.Geographic, eq coord.Equa, h unit.Angle) RST {
	return object(j, g, eq, h, 0)
}

func object(j float64, g sky.Geographic, eq coord.Equa, h unit.Angle, lo float64) RST {
	w := newWindow(j)
	H0, s := hourAngle(h, g.Lat, eq.Dec)
	if s != Normal {
		return RST{Status: s}
	}
	mt := wrap((eq.RA.Deg()-g.Lon.Deg()-w.θ0)/360, lo)
	return RST{
		Rise:    w.ut + wrap(mt-H0, lo),
		Transit: w.ut + mt,
		Set:     w.ut + wrap(mt+H0, lo),
	}
}

// Body computes rise, transit and set of a moving body, for an observer
// at g and horizon altitude h, on the day window containing j.
//
// Errors from p are returned as is.
func Body(j float64, g sky.Geographic, p body.Provider, h unit.Angle) (RST, error) {
	return solveBody(j, g, p, h, 0)
}

func solveBody(j float64, g sky.Geographic, p body.Provider, h unit.Angle, lo float64) (RST, error) {
	w := newWindow(j)
	var α, δ [3]float64
	for i := range α {
		eq, err := p.Equatorial(w.ut + float64(i-1))
		if err != nil {
			return RST{}, err
		}
		α[i] = eq.RA.Deg()
		δ[i] = eq.Dec.Deg()
	}
	// keep RA continuous across 0h
	for _, i := range []int{0, 2} {
		switch d := α[i] - α[1]; {
		case d > 180:
			α[i] -= 360
		case d < -180:
			α[i] += 360
		}
	}
	H0, s := hourAngle(h, g.Lat, unit.AngleFromDeg(δ[1]))
	if s != Normal {
		return RST{Status: s}, nil
	}
	λ := g.Lon.Deg()
	sφ, cφ := g.Lat.Sincos()
	mt := wrap((α[1]-λ-w.θ0)/360, lo)

	// at returns position and local hour angle, in degrees, at day
	// fraction m.  Samples are centered on w.ut, the origin of m, so ΔT is
	// already in the sample times.
	at := func(m float64) (H, d float64) {
		ra := interp.Quad(m, α[0], α[1], α[2])
		d = interp.Quad(m, δ[0], δ[1], δ[2])
		return w.θ0 + 360.985647*m + λ - ra, d
	}
	transit := func(m float64) float64 {
		H, _ := at(m)
		H -= 360 * math.Floor((H+180)/360)
		return m - H/360
	}
	cross := func(m float64) float64 {
		H, d := at(m)
		sH, cH := math.Sincos(H * math.Pi / 180)
		sd, cd := math.Sincos(d * math.Pi / 180)
		alt := math.Asin(sφ*sd+cφ*cd*cH) * 180 / math.Pi
		return m + (alt-h.Deg())/(360*cd*cφ*sH)
	}
	return RST{
		Rise:    w.ut + cross(wrap(mt-H0, lo)),
		Transit: w.ut + transit(mt),
		Set:     w.ut + cross(wrap(mt+H0, lo)),
	}, nil
}
