// Public domain.

package mpc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

// SitesURL links to the present location of the file known as obscode.dat,
// a flat file of three-character MPC assigned observatory codes with
// parallax constants and observatory names.  The file has enclosing
// <pre></pre> tags and column headings; these are ignored by ReadSites.
var SitesURL = "https://minorplanetcenter.net/iau/lists/ObsCodes.html"

// ErrNoSites reports input with no parsable observatory lines.
var ErrNoSites = errors.New("no observatory codes")

// Site is an observatory from the MPC observatory code file.
//
// RhoCos and RhoSin are the parallax constants ρ cos φ′ and ρ sin φ′ in
// units of the Earth's equatorial radius.
type Site struct {
	Code, Name     string
	Lon            unit.Angle // east
	RhoCos, RhoSin float64
}

// polar / equatorial radius, as in package sky
const earthBA = .99664719

// Geographic returns the site longitude and geodetic latitude.  The
// latitude is exact for a site on the ellipsoid and good to a few
// arc seconds for any ground based site.
func (s *Site) Geographic() sky.Geographic {
	return sky.Geographic{
		Lon: s.Lon,
		Lat: unit.Angle(math.Atan2(s.RhoSin, earthBA*earthBA*s.RhoCos)),
	}
}

// FetchSites gets a fresh copy of the data at url, normally SitesURL, and
// writes it to a new file with the path and file name file.
func FetchSites(ctx context.Context, url, file string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	r, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: %s", url, r.Status)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, r.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadSitesFile reads an MPC obscode.dat file.
func ReadSitesFile(file string) (map[string]*Site, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ReadSites(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return m, nil
}

// ReadSites reads observatory codes in the obscode.dat format.
//
// Lines that do not parse as data, such as headings or the <pre> tag, are
// quietly ignored.  Output is a map from 3-character MPC codes to sites.
// Sites with no parallax constants, which are space based, are stored as
// nil.
func ReadSites(r io.Reader) (map[string]*Site, error) {
	m := map[string]*Site{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 30 {
			continue
		}
		lon, ok1 := field(line[4:13], 0, 360)
		c, ok2 := field(line[13:21], 0, 1)
		s, ok3 := field(line[21:30], -1, 1)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		code := line[:3]
		if c == 0 && s == 0 {
			m[code] = nil
			continue
		}
		m[code] = &Site{
			Code:   code,
			Name:   strings.TrimSpace(line[30:]),
			Lon:    unit.AngleFromDeg(lon),
			RhoCos: c,
			RhoSin: s,
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, ErrNoSites
	}
	return m, nil
}

// field parses a number in [min, max], blank defaulting to 0.
func field(s string, min, max float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}
