// Public domain.

package jd_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/nova/jd"
	xrand "golang.org/x/exp/rand"
)

var jdTestCases = []struct {
	d  jd.Date
	jd float64
}{
	{jd.Date{Year: 1957, Month: 10, Day: 4, Hour: 19}, 2436116.291667},
	{jd.Date{Year: 1954, Month: 6, Day: 30}, 2434923.5},
	{jd.Date{Year: 333, Month: 1, Day: 27, Hour: 12}, 1842713.0},
	{jd.Date{Year: 2000, Month: 1, Day: 1, Hour: 12}, jd.J2000},
	{jd.Date{Year: -4712, Month: 1, Day: 1, Hour: 12}, 0},
	{jd.Date{Year: 1582, Month: 10, Day: 4}, 2299159.5},
	{jd.Date{Year: 1582, Month: 10, Day: 15}, 2299160.5},
}

func TestJulianDay(t *testing.T) {
	for _, c := range jdTestCases {
		if got := jd.JulianDay(c.d); math.Abs(got-c.jd) > 1e-6 {
			t.Errorf("JulianDay(%+v) = %.6f, want %.6f", c.d, got, c.jd)
		}
	}
}

func TestCalendar(t *testing.T) {
	d := jd.Calendar(2434923.5)
	if d != (jd.Date{Year: 1954, Month: 6, Day: 30}) {
		t.Fatalf("Calendar(2434923.5) = %+v", d)
	}
	d = jd.Calendar(2436116.291667)
	if d.Year != 1957 || d.Month != 10 || d.Day != 4 ||
		d.Hour != 19 || d.Minute != 0 || d.Second > .1 {
		t.Fatalf("Calendar(2436116.291667) = %+v", d)
	}
	// last Julian day and first Gregorian day
	for _, c := range jdTestCases[5:] {
		if d := jd.Calendar(c.jd); d != c.d {
			t.Errorf("Calendar(%.1f) = %+v, want %+v", c.jd, d, c.d)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := xrand.New(&xrand.PCGSource{})
	r.Seed(1957)
	for n := 0; n < 10000; n++ {
		d := jd.Date{
			Year:   r.Intn(7700) - 4700,
			Month:  r.Intn(12) + 1,
			Day:    r.Intn(28) + 1,
			Hour:   r.Intn(24),
			Minute: r.Intn(60),
			Second: float64(r.Intn(60)),
		}
		if d.Year == 1582 && d.Month == 10 && d.Day > 4 && d.Day < 15 {
			continue // no such civil dates
		}
		if got := jd.Calendar(jd.JulianDay(d)); got != d {
			t.Fatalf("round trip %+v: got %+v", d, got)
		}
	}
}

func TestCutover(t *testing.T) {
	// consecutive Julian days across the calendar reform
	j := jd.JulianDay(jd.Date{Year: 1582, Month: 9, Day: 20})
	want := []jd.Date{}
	for d := 20; d <= 30; d++ {
		want = append(want, jd.Date{Year: 1582, Month: 9, Day: d})
	}
	for d := 1; d <= 4; d++ {
		want = append(want, jd.Date{Year: 1582, Month: 10, Day: d})
	}
	for d := 15; d <= 20; d++ {
		want = append(want, jd.Date{Year: 1582, Month: 10, Day: d})
	}
	for i, w := range want {
		if got := jd.Calendar(j + float64(i)); got != w {
			t.Errorf("Calendar(%.1f) = %+v, want %+v", j+float64(i), got, w)
		}
		if got := jd.JulianDay(w); got != j+float64(i) {
			t.Errorf("JulianDay(%+v) = %.1f, want %.1f", w, got, j+float64(i))
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	if w := jd.DayOfWeek(2434923.5); w != 3 {
		t.Fatal("1954-06-30 day of week", w)
	}
	// 2000-01-01 was a Saturday
	if w := jd.DayOfWeek(2451544.5); w != 6 {
		t.Fatal("2000-01-01 day of week", w)
	}
}

func TestDay0(t *testing.T) {
	for _, c := range []struct{ j, d0 float64 }{
		{2453752.5, 2453752.5},
		{2453752.49, 2453751.5},
		{2453752.99, 2453752.5},
		{2453753, 2453752.5},
	} {
		if got := jd.Day0(c.j); got != c.d0 {
			t.Errorf("Day0(%v) = %v, want %v", c.j, got, c.d0)
		}
	}
}

func TestZoneDate(t *testing.T) {
	z := jd.ToZone(jd.Date{Year: 1954, Month: 6, Day: 30}, 7200)
	want := jd.ZoneDate{Date: jd.Date{Year: 1954, Month: 6, Day: 30, Hour: 2}, GMTOff: 7200}
	if z != want {
		t.Fatalf("ToZone = %+v, want %+v", z, want)
	}
	if u := z.UTC(); u != (jd.Date{Year: 1954, Month: 6, Day: 30}) {
		t.Fatalf("UTC = %+v", u)
	}
	local := jd.ZoneDate{Date: jd.Date{Year: 1987, Month: 4, Day: 10, Hour: 1}, GMTOff: 3600}
	if j := local.JulianDay(); math.Abs(j-2446895.5) > .001/86400 {
		t.Fatalf("local JulianDay = %.8f", j)
	}
}

func TestTime(t *testing.T) {
	tm := time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC)
	if j := jd.FromTime(tm); math.Abs(j-2446895.5) > 1e-9 {
		t.Fatal("FromTime", j)
	}
	if got := jd.ToTime(2446895.5); !got.Equal(tm) {
		t.Fatal("ToTime", got)
	}
	j1 := jd.Now()
	j2 := jd.Now()
	if j2 < j1 || j2-j1 > 1./86400 {
		t.Fatal("Now", j1, j2)
	}
}

func TestDeltaT(t *testing.T) {
	// 1993-01-01
	if dt := jd.DeltaT(2448988.5); math.Abs(dt-59.1) > .2 {
		t.Fatal("ΔT 1993", dt)
	}
	if dt := jd.DeltaT(2448972.5); math.Abs(dt-59) > .1 {
		t.Fatal("ΔT 1992", dt)
	}
	if j := jd.JDE(2451544.5); math.Abs(j-2451544.50073877) > 1e-5 {
		t.Fatalf("JDE = %.8f", j)
	}
	// eras join without large steps
	for y := -1000; y <= 2200; y += 50 {
		j := jd.JulianDay(jd.Date{Year: y, Month: 1, Day: 1})
		a, b := jd.DeltaT(j-1), jd.DeltaT(j+1)
		if math.Abs(a-b) > 5 {
			t.Errorf("ΔT discontinuity near %d: %.2f %.2f", y, a, b)
		}
	}
}

func TestSidereal(t *testing.T) {
	// 1987-04-10 19:21 UT
	const j = 2446896.30625
	if s := jd.MeanSidereal(j); math.Abs(s-8.58252488) > 1e-7 {
		t.Fatalf("mean sidereal %.9f", s)
	}
	if s := jd.ApparentSidereal(j); math.Abs(s-8.58245327) > 1e-5 {
		t.Fatalf("apparent sidereal %.9f", s)
	}
}

func ExampleCalendar() {
	d := jd.Calendar(2436116.31)
	fmt.Printf("%d-%02d-%02d %02d:%02d\n", d.Year, d.Month, d.Day, d.Hour, d.Minute)
	// Output:
	// 1957-10-04 19:26
}
