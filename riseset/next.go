// Public domain.

package riseset

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/nova/body"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

// maximum day shifts per event in a next search
const maxShifts = 2

// solver computes a day window result, with event day fractions
// reduced to [lo, lo+1).
type solver func(j, lo float64) (RST, error)

var events = [3]struct {
	name string
	at   func(*RST) *float64
}{
	{"rise", func(r *RST) *float64 { return &r.Rise }},
	{"transit", func(r *RST) *float64 { return &r.Transit }},
	{"set", func(r *RST) *float64 { return &r.Set }},
}

// NextObject returns the first rise, transit and set of a fixed position
// at or after j, each within a day of j.
//
// A circumpolar result on the day window of j is returned with no error.
func NextObject(j float64, g sky.Geographic, eq coord.Equa, h unit.Angle) (RST, error) {
	return next(j, func(t, lo float64) (RST, error) {
		return object(t, g, eq, h, lo), nil
	})
}

// NextBody returns the first rise, transit and set of body p at or after
// j, each within a day of j.
//
// Each event is searched independently, so the three need not fall on
// the same day window.  ErrNotBracketed is returned, wrapped, when an
// event cannot be placed.
func NextBody(j float64, g sky.Geographic, p body.Provider, h unit.Angle) (RST, error) {
	return next(j, func(t, lo float64) (RST, error) {
		return solveBody(t, g, p, h, lo)
	})
}

// NextBodyWithin is NextBody repeated day by day, for up to maxDays days,
// until the body rises and sets.  It serves at high latitudes where a body
// may stay up or down for weeks.  ErrNotFound is returned, wrapped, if no
// day in the range has a normal result.
func NextBodyWithin(j float64, g sky.Geographic, p body.Provider, h unit.Angle, maxDays int) (RST, error) {
	last := Normal
	for d := 0; d < maxDays; d++ {
		r, err := NextBody(j+float64(d), g, p, h)
		switch {
		case errors.Is(err, ErrNotBracketed):
			// a window next to a circumpolar one
			continue
		case err != nil:
			return RST{}, err
		case r.Status == Normal:
			return r, nil
		}
		last = r.Status
	}
	return RST{Status: last}, fmt.Errorf("%w in %d days (%v)", ErrNotFound, maxDays, last)
}

func next(j float64, f solver) (RST, error) {
	first, err := f(j, 0)
	if err != nil || first.Status != Normal {
		return first, err
	}
	var r RST
	for _, e := range events {
		t, err := bracket(j, first, e.at, f)
		if err != nil {
			return RST{}, fmt.Errorf("next %s: %w", e.name, err)
		}
		*e.at(&r) = t
	}
	return r, nil
}

// bracket shifts the day window until the event selected by at falls in
// [j, j+1].
//
// A correction pass can carry an event across a window boundary, so that
// shifting one way overshoots and shifting back undershoots.  The event
// is then recovered from the later of the two windows, with day fractions
// reduced to [-.5, .5).
func bracket(j float64, r RST, at func(*RST) *float64, f solver) (float64, error) {
	t := j
	dir := 0.
	for shifts := 0; ; shifts++ {
		v := *at(&r)
		if v >= j && v <= j+1 {
			return v, nil
		}
		d := 1.
		if v > j+1 {
			d = -1
		}
		if d == -dir {
			r, err := f(math.Max(t, t+d), -.5)
			if err != nil {
				return 0, err
			}
			if v = *at(&r); r.Status == Normal && v >= j && v <= j+1 {
				return v, nil
			}
			return 0, ErrNotBracketed
		}
		if shifts == maxShifts {
			return 0, ErrNotBracketed
		}
		t += d
		dir = d
		var err error
		if r, err = f(t, 0); err != nil {
			return 0, err
		}
		if r.Status != Normal {
			return 0, ErrNotBracketed
		}
	}
}
