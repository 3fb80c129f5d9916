// Public domain.

package jd

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ZoneDate is a civil date in a time zone given as an offset in seconds
// east of Greenwich.
type ZoneDate struct {
	Date
	GMTOff int
}

// JulianDay returns the UT Julian day of a zone date.
func (z ZoneDate) JulianDay() float64 {
	return JulianDay(z.Date) - float64(z.GMTOff)/86400
}

// UTC returns the zone date converted to a UT civil date.
func (z ZoneDate) UTC() Date {
	return Calendar(z.JulianDay())
}

// LocalDate returns the civil date in zone gmtoff of the UT Julian day j.
func LocalDate(j float64, gmtoff int) ZoneDate {
	return ZoneDate{Calendar(j + float64(gmtoff)/86400), gmtoff}
}

// ToZone converts a UT civil date to zone gmtoff.
func ToZone(d Date, gmtoff int) ZoneDate {
	return LocalDate(JulianDay(d), gmtoff)
}

// FromTime returns the Julian day of t.
func FromTime(t time.Time) float64 {
	return julian.TimeToJD(t)
}

// ToTime returns the UTC time.Time of Julian day j.
func ToTime(j float64) time.Time {
	return julian.JDToTime(j)
}

// Now returns the Julian day of the current system time.
func Now() float64 {
	return FromTime(time.Now())
}
