// Public domain.

package almanac

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/naoina/toml"
	"github.com/soniakeys/nova/body"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/mpc"
	"github.com/soniakeys/nova/orbit"
	"github.com/soniakeys/nova/planet"
	"github.com/soniakeys/nova/riseset"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

// Job describes an almanac computation.  It is normally decoded from a
// TOML file with ReadJob.
//
// The site is either an MPC observatory code, looked up in the sites
// given to the Runner, or an explicit longitude and latitude.
type Job struct {
	Site    string    `toml:"site"`
	Lon     float64   `toml:"lon"` // degrees east
	Lat     float64   `toml:"lat"`
	Start   time.Time `toml:"start"`
	Days    int       `toml:"days"`
	Workers int       `toml:"workers"`
	Zone    int       `toml:"zone"`    // seconds east of Greenwich
	Horizon string    `toml:"horizon"` // standard, civil, nautical, astronomical
	VSOP87  string    `toml:"vsop87"`  // data directory, Standish elements if empty
	Bodies  []string  `toml:"bodies"`  // sun, moon, mercury ... pluto
	Stars   []Star    `toml:"stars"`
	Comets  []Comet   `toml:"comets"`
	MPCORB  []string  `toml:"mpcorb"` // orbit records
}

// Star is a catalog star.  RA and Dec are J2000.0 degrees, proper motions
// arc seconds per year.
type Star struct {
	Name  string  `toml:"name"`
	RA    float64 `toml:"ra"`
	Dec   float64 `toml:"dec"`
	PMRA  float64 `toml:"pmra"`
	PMDec float64 `toml:"pmdec"`
}

// Comet holds perihelion elements, angles in degrees.  The orbit is
// elliptic, parabolic or hyperbolic by E.
type Comet struct {
	Name string    `toml:"name"`
	Q    float64   `toml:"q"`
	E    float64   `toml:"e"`
	I    float64   `toml:"i"`
	W    float64   `toml:"w"`
	Node float64   `toml:"node"`
	Peri time.Time `toml:"peri"`
}

// ReadJob reads and decodes a TOML job file.
func ReadJob(file string) (*Job, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseJob(b)
}

// ParseJob decodes a TOML job.
func ParseJob(b []byte) (*Job, error) {
	var j Job
	if err := toml.Unmarshal(b, &j); err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	if err := j.validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// ErrJob reports an unusable job.
var ErrJob = errors.New("invalid job")

func (j *Job) validate() error {
	switch {
	case j.Start.IsZero():
		return fmt.Errorf("%w: no start", ErrJob)
	case j.Days < 1:
		return fmt.Errorf("%w: days %d", ErrJob, j.Days)
	case j.Site == "" && (j.Lat < -90 || j.Lat > 90):
		return fmt.Errorf("%w: latitude %g", ErrJob, j.Lat)
	case len(j.Bodies)+len(j.Stars)+len(j.Comets)+len(j.MPCORB) == 0:
		return fmt.Errorf("%w: nothing to compute", ErrJob)
	}
	for _, c := range j.Comets {
		switch {
		case c.E < 0:
			return fmt.Errorf("%w: comet %s: eccentricity %g", ErrJob, c.Name, c.E)
		case c.Q <= 0:
			return fmt.Errorf("%w: comet %s: perihelion distance %g", ErrJob, c.Name, c.Q)
		}
	}
	if _, err := horizon(j.Horizon); err != nil {
		return err
	}
	return nil
}

// horizon returns the named horizon, 0 for the standard horizon of each
// body.
func horizon(name string) (unit.Angle, error) {
	switch strings.ToLower(name) {
	case "", "standard":
		return 0, nil
	case "civil":
		return riseset.CivilTwilight, nil
	case "nautical":
		return riseset.NauticalTwilight, nil
	case "astronomical":
		return riseset.AstronomicalTwilight, nil
	}
	return 0, fmt.Errorf("%w: horizon %q", ErrJob, name)
}

// target is a body to compute with its horizon.
type target struct {
	name    string
	p       body.Provider
	h       unit.Angle
	classes []string
}

var planets = map[string]int{
	"mercury": planet.Mercury,
	"venus":   planet.Venus,
	"mars":    planet.Mars,
	"jupiter": planet.Jupiter,
	"saturn":  planet.Saturn,
	"uranus":  planet.Uranus,
	"neptune": planet.Neptune,
	"pluto":   planet.Pluto,
}

// targets builds the providers of a job.  Bodies that cannot be built are
// reported to skip and left out.
func (j *Job) targets(skip func(name string, err error)) []target {
	var earth orbit.Heliocentric = planet.Earth
	var vsop bool
	if j.VSOP87 != "" {
		if e, err := planet.LoadVSOP87Path(planet.EMBary, j.VSOP87); err != nil {
			skip("VSOP87 Earth", err)
		} else {
			earth, vsop = e, true
		}
	}
	hz, _ := horizon(j.Horizon)
	var ts []target
	add := func(name string, p body.Provider, classes []string) {
		h := hz
		if h == 0 {
			h = riseset.HorizonOf(p)
		}
		ts = append(ts, target{name, p, h, classes})
	}
	for _, b := range j.Bodies {
		switch name := strings.ToLower(b); name {
		case "sun":
			add(b, body.Sun{}, nil)
		case "moon":
			add(b, body.Moon{}, nil)
		default:
			n, ok := planets[name]
			if !ok {
				skip(b, fmt.Errorf("%w: unknown body", ErrJob))
				continue
			}
			var p orbit.Heliocentric
			var err error
			if vsop && n != planet.Pluto {
				p, err = planet.LoadVSOP87Path(n, j.VSOP87)
			} else {
				p, err = planet.NewApprox(n)
			}
			if err != nil {
				skip(b, err)
				continue
			}
			o := body.NewPlanet(p, earth)
			o.S0, o.Mag = body.PlanetDisk(n)
			add(b, o, nil)
		}
	}
	for _, s := range j.Stars {
		add(s.Name, body.Star{
			Pos: sky.NewEqua(s.RA, s.Dec),
			PM: sky.PM{
				RA:  unit.AngleFromSec(s.PMRA),
				Dec: unit.AngleFromSec(s.PMDec),
			},
		}, nil)
	}
	for _, c := range j.Comets {
		add(c.Name, body.Orbit{Body: c.orbit(), Earth: earth}, nil)
	}
	if len(j.MPCORB) > 0 {
		op, err := mpc.NewOrbitParser()
		if err != nil {
			skip("MPCORB", err)
		} else {
			for _, line := range j.MPCORB {
				m, err := op.Parse([]byte(line))
				if err != nil {
					skip(strings.TrimSpace(first(line, 7)), err)
					continue
				}
				add(m.Desig, body.Orbit{Body: m.Orbit, Earth: earth}, m.Classes())
			}
		}
	}
	return ts
}

func first(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// orbit returns the orbit for the eccentricity.
func (c *Comet) orbit() orbit.Positioner {
	i := unit.AngleFromDeg(c.I)
	w := unit.AngleFromDeg(c.W)
	node := unit.AngleFromDeg(c.Node)
	t := jd.FromTime(c.Peri)
	switch {
	case c.E < 1:
		return &orbit.Elliptic{A: c.Q / (1 - c.E), E: c.E, I: i, W: w, Node: node, JD: t}
	case c.E == 1:
		return &orbit.Parabolic{Q: c.Q, I: i, W: w, Node: node, JD: t}
	}
	return &orbit.Hyperbolic{Q: c.Q, E: c.E, I: i, W: w, Node: node, JD: t}
}
