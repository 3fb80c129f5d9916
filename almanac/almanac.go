// Public domain.

// Package almanac computes tables of rise, transit and set times for a
// list of bodies over a run of days.
//
// A Job names the observing site, the days and the bodies.  A Runner
// solves each body on each day concurrently and returns rows in job
// order: day by day, and within a day in the order bodies are listed in
// the job.
package almanac

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/soniakeys/nova/body"
	"github.com/soniakeys/nova/jd"
	"github.com/soniakeys/nova/mpc"
	"github.com/soniakeys/nova/riseset"
	"github.com/soniakeys/nova/sky"
	"github.com/soniakeys/unit"
)

// Row is the result for one body on one day.
type Row struct {
	Day     jd.Date // local civil date
	Body    string
	Classes []string // orbit classes of minor planets
	riseset.RST
	Disk *body.Disk // at transit, for bodies with a disk
	Err  error
}

// Runner runs jobs.
type Runner struct {
	Sites   map[string]*mpc.Site // for jobs naming a site code
	Log     *log.Logger          // nil for no logging
	Metrics *Metrics             // nil for no metrics
}

func (r *Runner) logf(format string, v ...interface{}) {
	if r.Log != nil {
		r.Log.Printf(format, v...)
	}
}

// site returns the observer position of the job.
func (r *Runner) site(j *Job) (sky.Geographic, error) {
	if j.Site == "" {
		return sky.Geographic{
			Lon: unit.AngleFromDeg(j.Lon),
			Lat: unit.AngleFromDeg(j.Lat),
		}, nil
	}
	s, ok := r.Sites[j.Site]
	switch {
	case !ok:
		return sky.Geographic{}, fmt.Errorf("%w: unknown site %q", ErrJob, j.Site)
	case s == nil:
		return sky.Geographic{}, fmt.Errorf("%w: site %q is not on the Earth", ErrJob, j.Site)
	}
	return s.Geographic(), nil
}

type task struct {
	day  jd.Date
	from float64 // local midnight as UT Julian day
	t    *target
	rch  chan Row
}

// Run computes the job.  Results are in job order.  Bodies that cannot
// be set up are logged and left out.  A failed computation is reported
// in Row.Err and does not stop the run.
func (r *Runner) Run(ctx context.Context, j *Job) ([]Row, error) {
	if err := j.validate(); err != nil {
		return nil, err
	}
	g, err := r.site(j)
	if err != nil {
		return nil, err
	}
	ts := j.targets(func(name string, err error) {
		r.logf("skipping %s: %v", name, err)
		r.Metrics.skip()
	})
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: no usable bodies", ErrJob)
	}
	// midnight starting the first local day
	d0 := jd.LocalDate(jd.FromTime(j.Start), j.Zone).Date
	d0.Hour, d0.Minute, d0.Second = 0, 0, 0
	j0 := jd.JulianDay(d0)

	maxWorkers := j.Workers
	if maxWorkers < 1 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	// prCh holds result channels in submission order.  Its buffer lets
	// fast workers drop off results behind a slow one.
	prCh := make(chan chan Row, maxWorkers*2)
	taskCh := make(chan *task)

	// dispatcher
	go func() {
		defer close(prCh)
		defer close(taskCh)
		for d := 0; d < j.Days; d++ {
			local := j0 + float64(d)
			day := jd.Calendar(local)
			for i := range ts {
				t := &task{day, local - float64(j.Zone)/86400, &ts[i], make(chan Row, 1)}
				select {
				case taskCh <- t:
				case <-ctx.Done():
					return
				}
				select {
				case prCh <- t.rch:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	// workers are started as tasks call for them, up to maxWorkers.
	go func() {
		for n := 0; n < maxWorkers; n++ {
			t, ok := <-taskCh
			if !ok {
				return
			}
			go r.work(g, t, taskCh)
		}
	}()

	rows := make([]Row, 0, j.Days*len(ts))
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case rch, ok := <-prCh:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return rows, nil
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case row := <-rch:
				rows = append(rows, row)
			}
		}
	}
}

// work solves t and then further tasks from taskCh until it is closed.
func (r *Runner) work(g sky.Geographic, t *task, taskCh chan *task) {
	for ok := true; ok; t, ok = <-taskCh {
		start := time.Now()
		rst, err := riseset.NextBody(t.from, g, t.t.p, t.t.h)
		r.Metrics.observe(rst.Status, err, time.Since(start))
		if err != nil {
			r.logf("%s %d-%02d-%02d: %v", t.t.name, t.day.Year, t.day.Month, t.day.Day, err)
		}
		row := Row{
			Day:     t.day,
			Body:    t.t.name,
			Classes: t.t.classes,
			RST:     rst,
			Err:     err,
		}
		if d, ok := t.t.p.(body.Disker); ok && err == nil {
			if dk, err := d.Disk(rst.Transit); err != nil {
				r.logf("%s disk: %v", t.t.name, err)
			} else {
				row.Disk = &dk
			}
		}
		// buffered, just drop off the result
		t.rch <- row
	}
}
