// Public domain.

// Package jd holds the time base: civil dates, Julian days, dynamical time
// and sidereal time.
//
// A Julian day is a plain float64 throughout the module.  Whether it counts
// UT or TT is part of each function's documented contract; JDE is the one
// place UT becomes TT.
package jd

import (
	"math"

	"github.com/soniakeys/meeus/v3/julian"
)

// Standard epochs.
const (
	J2000 = 2451545.0
	B1950 = 2433282.4235
	B1900 = 2415020.3135
)

// Date is a civil calendar date and time of day.
//
// Year is an astronomical year number; year 0 is 1 BC.  No field is
// validated.
type Date struct {
	Year, Month, Day int
	Hour, Minute     int
	Second           float64
}

// gregorian reports whether d falls after the calendar reform, the day
// following Julian 1582-10-04 being Gregorian 1582-10-15.
func gregorian(d Date) bool {
	switch {
	case d.Year != 1582:
		return d.Year > 1582
	case d.Month != 10:
		return d.Month > 10
	}
	return d.Day > 4
}

// JulianDay returns the Julian day of a civil date.
//
// Dates through 1582-10-04 are taken in the Julian calendar, later ones in
// the Gregorian.  Malformed fields give a meaningless result.
func JulianDay(d Date) float64 {
	day := float64(d.Day) +
		(float64(d.Hour)+float64(d.Minute)/60+d.Second/3600)/24
	if gregorian(d) {
		return julian.CalendarGregorianToJD(d.Year, d.Month, day)
	}
	return julian.CalendarJulianToJD(d.Year, d.Month, day)
}

// Julian day numbers of 1582-10-04, the last Julian calendar date, and of
// the ten days before it.
const (
	lastJulian = 2299160
	tenBefore  = lastJulian - 9
)

// Calendar returns the civil date of a Julian day, the inverse of
// JulianDay.  The time of day is resolved to the millisecond.
func Calendar(j float64) Date {
	ms := math.Round((j + .5) * 864e5)
	z := math.Floor(ms / 864e5)
	ms -= z * 864e5

	var t Date
	if z >= tenBefore && z <= lastJulian {
		// counted back from the cutover so it stays at 1582-10-04/15
		t.Year, t.Month, t.Day = 1582, 10, 4-int(lastJulian-z)
		if t.Day < 1 {
			t.Month, t.Day = 9, t.Day+30
		}
	} else {
		y, m, d := julian.JDToCalendar(z - .5)
		t.Year, t.Month, t.Day = y, m, int(d)
	}

	t.Hour = int(ms / 36e5)
	ms -= float64(t.Hour) * 36e5
	t.Minute = int(ms / 6e4)
	ms -= float64(t.Minute) * 6e4
	t.Second = ms / 1000
	return t
}

// DayOfWeek returns the day of the week of a Julian day, 0 for Sunday.
func DayOfWeek(j float64) int {
	w := int(math.Floor(j+1.5)) % 7
	if w < 0 {
		w += 7
	}
	return w
}

// Day0 returns the Julian day of 0h of the civil day containing j.
//
// A fraction of exactly .5 is midnight and belongs to the day it starts.
func Day0(j float64) float64 {
	return math.Floor(j-.5) + .5
}
