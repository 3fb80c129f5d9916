// Public domain.

package almanac_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/soniakeys/nova/almanac"
	"github.com/soniakeys/nova/body"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/mpc"
	"github.com/soniakeys/nova/riseset"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

const jobTOML = `
lon = 15
lat = 51
start = 2006-01-17T09:30:00Z
days = 3
workers = 2
bodies = ["Sun", "venus", "vulcan"]
mpcorb = [
  '00001    3.34  0.12 K205V 162.68631   73.73161   80.28698   10.58862  0.0775571  0.21406009   2.7676569  0 MPO492748  6751 115 1801-2019 0.60 M-v 30h Williams   0000 (1) Ceres                   20190915',
]

[[stars]]
name = "Arcturus"
ra = 213.9153
dec = 19.182409
pmra = -1.0934
pmdec = -1.99946

[[comets]]
name = "Encke"
q = 0.33088593
e = 0.8502196
i = 11.94525
w = 186.23352
node = 334.75006
peri = 1990-10-28T12:30:00Z

[[comets]]
name = "Kudo-Fujikawa"
q = 0.190082
e = 1.0
i = 94.1540
w = 119.0110
node = 188.4290
peri = 2003-01-29T00:06:37Z
`

func TestParseJob(t *testing.T) {
	j, err := almanac.ParseJob([]byte(jobTOML))
	if err != nil {
		t.Fatal(err)
	}
	if j.Lon != 15 || j.Lat != 51 || j.Days != 3 || j.Workers != 2 {
		t.Fatalf("%+v", j)
	}
	if d := jd.FromTime(j.Start) - 2453752.8958333; math.Abs(d) > 1e-6 {
		t.Fatal(j.Start)
	}
	if len(j.Bodies) != 3 || len(j.Stars) != 1 || len(j.Comets) != 2 || len(j.MPCORB) != 1 {
		t.Fatalf("%+v", j)
	}
	if s := j.Stars[0]; s.Name != "Arcturus" || s.PMDec != -1.99946 {
		t.Fatalf("%+v", s)
	}
	if c := j.Comets[1]; c.E != 1 || c.Peri.Year() != 2003 {
		t.Fatalf("%+v", c)
	}
}

func TestParseJobInvalid(t *testing.T) {
	for _, tc := range []struct{ name, toml string }{
		{"no start", "days = 1\nbodies = [\"sun\"]"},
		{"no days", "start = 2006-01-17T00:00:00Z\nbodies = [\"sun\"]"},
		{"latitude", "lat = 91\nstart = 2006-01-17T00:00:00Z\ndays = 1\nbodies = [\"sun\"]"},
		{"no bodies", "start = 2006-01-17T00:00:00Z\ndays = 1"},
		{"horizon", "start = 2006-01-17T00:00:00Z\ndays = 1\nbodies = [\"sun\"]\nhorizon = \"low\""},
		{"comet e", "start = 2006-01-17T00:00:00Z\ndays = 1\n[[comets]]\nname = \"X\"\nq = 1\ne = -0.1"},
		{"comet q", "start = 2006-01-17T00:00:00Z\ndays = 1\n[[comets]]\nname = \"X\"\nq = 0\ne = 0.5"},
	} {
		_, err := almanac.ParseJob([]byte(tc.toml))
		if !errors.Is(err, almanac.ErrJob) {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if strings.HasPrefix(tc.name, "comet") && !strings.Contains(err.Error(), "comet X") {
			t.Errorf("%s: %v", tc.name, err)
		}
	}
	if _, err := almanac.ParseJob([]byte("days = [")); err == nil || errors.Is(err, almanac.ErrJob) {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	j, err := almanac.ParseJob([]byte(jobTOML))
	if err != nil {
		t.Fatal(err)
	}
	reg := prometheus.NewRegistry()
	m, err := almanac.NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	var lb bytes.Buffer
	r := &almanac.Runner{Log: log.New(&lb, "", 0), Metrics: m}
	rows, err := r.Run(context.Background(), j)
	if err != nil {
		t.Fatal(err)
	}
	// the minor planet is named by its record
	names := []string{"Sun", "venus", "Arcturus", "Encke", "Kudo-Fujikawa", ""}
	if len(rows) != j.Days*len(names) {
		t.Fatal(len(rows), "rows")
	}
	for i, row := range rows {
		switch want := names[i%len(names)]; {
		case want == "":
			if row.Body == "" || !reflect.DeepEqual(row.Classes, []string{"MB2"}) {
				t.Fatalf("row %d: %+v", i, row)
			}
		case row.Body != want:
			t.Fatalf("row %d: %s, want %s", i, row.Body, want)
		}
		if d := 17 + i/len(names); row.Day.Day != d || row.Day.Month != 1 || row.Day.Hour != 0 {
			t.Fatalf("row %d: %+v", i, row.Day)
		}
		switch row.Body {
		case "Arcturus":
			if row.Disk != nil {
				t.Fatalf("row %d: star disk %+v", i, row.Disk)
			}
		case "venus":
			// days after inferior conjunction, a thin crescent
			if d := row.Disk; d == nil || d.Illuminated > .1 || d.Mag < -5 || d.Mag > -3 {
				t.Fatalf("row %d: %+v", i, d)
			}
		case "Sun":
			if d := row.Disk; d == nil || d.Illuminated != 1 || math.Abs(d.Semidiameter.Min()-16.3) > .1 {
				t.Fatalf("row %d: %+v", i, d)
			}
		}
	}
	if !strings.Contains(lb.String(), "vulcan") {
		t.Fatalf("log: %q", lb.String())
	}
	if n := testutil.ToFloat64(m.Skipped); n != 1 {
		t.Fatal(n, "skipped")
	}
	var total float64
	for _, o := range []string{"normal", "always_above", "never_rises", "error"} {
		total += testutil.ToFloat64(m.Results.WithLabelValues(o))
	}
	if int(total) != len(rows) {
		t.Fatal(total, "results")
	}
	if n := histogramCount(t, reg, "almanac_solve_duration_seconds"); n != uint64(len(rows)) {
		t.Fatal(n, "observations")
	}

	// rows agree with solving directly
	g := sky.Geographic{Lon: unit.AngleFromDeg(15), Lat: unit.AngleFromDeg(51)}
	for d := 0; d < j.Days; d++ {
		want, err := riseset.NextBody(2453752.5+float64(d), g, body.Sun{}, riseset.Solar)
		if err != nil {
			t.Fatal(err)
		}
		if got := rows[d*len(names)]; got.Err != nil || got.RST != want {
			t.Fatalf("day %d: %+v, want %+v", d, got, want)
		}
	}
}

func histogramCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatal("no metric", name)
	return 0
}

func TestRunZone(t *testing.T) {
	const gmtoff = -4 * 3600
	j := &almanac.Job{
		Lon:    -74.730571,
		Lat:    39.275787,
		Start:  time.Date(2009, 8, 10, 1, 0, 0, 0, time.FixedZone("EDT", gmtoff)),
		Days:   1,
		Zone:   gmtoff,
		Bodies: []string{"sun"},
	}
	rows, err := new(almanac.Runner).Run(context.Background(), j)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatal(len(rows))
	}
	if d := rows[0].Day; d.Year != 2009 || d.Month != 8 || d.Day != 10 {
		t.Fatalf("%+v", d)
	}
	g := sky.Geographic{Lon: unit.AngleFromDeg(j.Lon), Lat: unit.AngleFromDeg(j.Lat)}
	from := jd.ZoneDate{Date: jd.Date{Year: 2009, Month: 8, Day: 10}, GMTOff: gmtoff}.JulianDay()
	want, err := riseset.NextBody(from, g, body.Sun{}, riseset.Solar)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].RST != want {
		t.Fatalf("%+v, want %+v", rows[0].RST, want)
	}
}

func TestRunHorizon(t *testing.T) {
	j := &almanac.Job{
		Lon:     15,
		Lat:     51,
		Start:   jd.ToTime(2453752.5),
		Days:    1,
		Horizon: "civil",
		Bodies:  []string{"sun"},
	}
	rows, err := new(almanac.Runner).Run(context.Background(), j)
	if err != nil {
		t.Fatal(err)
	}
	g := sky.Geographic{Lon: unit.AngleFromDeg(15), Lat: unit.AngleFromDeg(51)}
	want, err := riseset.NextBody(2453752.5, g, body.Sun{}, riseset.CivilTwilight)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].RST != want {
		t.Fatalf("%+v, want %+v", rows[0].RST, want)
	}
}

func TestRunSite(t *testing.T) {
	sites, err := mpc.ReadSites(strings.NewReader(`<pre>
644 243.140220.836325+0.546877 Palomar Mountain/NEAT
250                             Hubble Space Telescope
</pre>
`))
	if err != nil {
		t.Fatal(err)
	}
	r := &almanac.Runner{Sites: sites}
	j := &almanac.Job{
		Site:   "644",
		Start:  jd.ToTime(2453752.5),
		Days:   2,
		Bodies: []string{"moon"},
	}
	rows, err := r.Run(context.Background(), j)
	if err != nil {
		t.Fatal(err)
	}
	g := sites["644"].Geographic()
	want, err := riseset.NextBody(2453753.5, g, body.Moon{}, riseset.Lunar)
	if err != nil {
		t.Fatal(err)
	}
	if rows[1].RST != want {
		t.Fatalf("%+v, want %+v", rows[1].RST, want)
	}
	for _, code := range []string{"250", "XXX"} {
		j.Site = code
		if _, err := r.Run(context.Background(), j); !errors.Is(err, almanac.ErrJob) {
			t.Fatal(code, err)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	j, err := almanac.ParseJob([]byte(jobTOML))
	if err != nil {
		t.Fatal(err)
	}
	j.Days = 400
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := new(almanac.Runner).Run(ctx, j); !errors.Is(err, context.Canceled) {
		t.Fatal(err)
	}
}

func TestNewMetricsTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	m1, err := almanac.NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := almanac.NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	if m1.Results != m2.Results || m1.Skipped != m2.Skipped {
		t.Fatal("expected registered collectors to be reused")
	}
}
