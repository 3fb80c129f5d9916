// Public domain.

// Package mpc reads formats of the Minor Planet Center: packed dates,
// 80 column observations, orbit records of MPCORB.DAT and the observatory
// code file.
package mpc

import (
	"errors"
	"fmt"

	"github.com/soniakeys/nova/jd"
)

// ErrPackedDate reports a malformed packed date.
var ErrPackedDate = errors.New("invalid packed date")

// PackedDate decodes a five character packed date such as "K01AM",
// 2001 October 22.
//
// The first character gives the century, I, J or K for 18, 19 or 20.  Two
// digits of year follow, then month and day each as a single digit 1-9
// or letter A-V for 10-31.
func PackedDate(s string) (jd.Date, error) {
	if len(s) != 5 {
		return jd.Date{}, fmt.Errorf("%w: %q", ErrPackedDate, s)
	}
	c := int(s[0]) - 'A'
	y1, ok1 := digit(s[1])
	y2, ok2 := digit(s[2])
	m, ok3 := digit(s[3])
	d, ok4 := digit(s[4])
	if c < 8 || c > 10 || !ok1 || !ok2 || y1 > 9 || y2 > 9 ||
		!ok3 || !ok4 || m < 1 || m > 12 || d < 1 {
		return jd.Date{}, fmt.Errorf("%w: %q", ErrPackedDate, s)
	}
	return jd.Date{Year: (c+10)*100 + y1*10 + y2, Month: m, Day: d}, nil
}

// digit decodes 0-9 and A-V.
func digit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'A' && b <= 'V':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// Epoch returns the Julian day of a packed date, 0h TT of the date.
func Epoch(s string) (float64, error) {
	d, err := PackedDate(s)
	if err != nil {
		return 0, err
	}
	return jd.JulianDay(d), nil
}
