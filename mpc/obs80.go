// Public domain.

package mpc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/unit"
)

// ErrObs80 reports a malformed 80 column observation.
var ErrObs80 = errors.New("invalid obs80 record")

// Obs80 is an optical observation in the MPC 80 column format.
type Obs80 struct {
	Desig string
	Note2 byte       // column 15, observation type
	Date  float64    // UT Julian day
	Pos   coord.Equa // J2000.0
	Mag   float64    // 0 if none
	Band  byte
	Code  string // observatory
}

// ParseObs80 parses a single line observation in the MPC 80 column
// format.  The line must be exactly 80 characters.
//
// Only the first line of two-line satellite and roving observer records
// is meaningful here; the second line does not parse.
func ParseObs80(line string) (o Obs80, err error) {
	if len(line) != 80 {
		return o, fmt.Errorf("%w: length %d", ErrObs80, len(line))
	}
	if n := line[14]; n == 's' || n == 'v' || n == 'r' {
		return o, fmt.Errorf("%w: second line of a two-line record", ErrObs80)
	}
	o.Desig = strings.TrimSpace(line[:12])
	o.Note2 = line[14]
	if o.Date, err = parseDate(line[15:32]); err != nil {
		return o, err
	}

	h, m, s, err := hms(line[32:44])
	if err != nil {
		return o, fmt.Errorf("%w: RA %q", ErrObs80, line[32:44])
	}
	o.Pos.RA = unit.NewRA(h, m, s)
	d, dm, ds, err := hms(line[45:56])
	if err != nil || (line[44] != '+' && line[44] != '-') {
		return o, fmt.Errorf("%w: Dec %q", ErrObs80, line[44:56])
	}
	o.Pos.Dec = unit.NewAngle(line[44], d, dm, ds)

	if ts := strings.TrimSpace(line[65:70]); ts != "" {
		if o.Mag, err = strconv.ParseFloat(ts, 64); err != nil {
			return o, fmt.Errorf("%w: mag %q", ErrObs80, ts)
		}
		o.Band = line[70]
	}
	o.Code = line[77:80]
	return o, nil
}

// VMag returns the magnitude converted to V by the MPC's rough band
// corrections, 0 if there is no magnitude.
func (o *Obs80) VMag() float64 {
	switch {
	case o.Mag == 0:
		return 0
	case o.Band == 'V':
		return o.Mag
	case o.Band == 'B':
		return o.Mag - .8
	}
	return o.Mag + .4
}

// parseDate parses "YYYY MM DD.dddddd".
func parseDate(s string) (float64, error) {
	y, err1 := strconv.Atoi(s[:4])
	m, err2 := strconv.Atoi(s[5:7])
	d, err3 := strconv.ParseFloat(strings.TrimSpace(s[8:]), 64)
	if err1 != nil || err2 != nil || err3 != nil || m < 1 || m > 12 || d < 1 || d >= 32 {
		return 0, fmt.Errorf("%w: date %q", ErrObs80, s)
	}
	return jd.JulianDay(jd.Date{Year: y, Month: m, Day: int(d)}) + d - float64(int(d)), nil
}

// hms parses "HH MM SS.sss" and the like, trailing fields optional.
func hms(s string) (h, m int, sec float64, err error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return 0, 0, 0, ErrObs80
	}
	if h, err = strconv.Atoi(f[0]); err != nil {
		return
	}
	if len(f) > 1 {
		if m, err = strconv.Atoi(f[1]); err != nil {
			return
		}
	}
	if len(f) > 2 {
		sec, err = strconv.ParseFloat(f[2], 64)
	}
	return
}
