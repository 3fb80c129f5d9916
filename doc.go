/*
Package nova is a library of computational astronomy built around times of
rising, transit and setting.

Contents

  Overview
  Packages
  Time conventions
  Rise, transit and set
  Almanac jobs


Overview

Given a time and an observer's position on the Earth, nova computes
positions of the Sun, the Moon, the planets, comets, asteroids and fixed
stars, and from those the times they cross a chosen horizon altitude and
the meridian.

The series theories themselves, VSOP87 for the planets, the ELP based
lunar theory, solar position and the nutation series, come from
github.com/soniakeys/meeus/v3.  Nova supplies the time base, coordinate
transforms, Keplerian orbit engine and the rise/set solver that ties them
together.


Packages

Leaf packages first:

  jd        civil dates, Julian days, delta T, sidereal time, time zones
  sky       frames and transforms, precession, nutation, aberration,
            proper motion, parallax, apparent place, separation, airmass
  orbit     Kepler equation, elliptic, parabolic and hyperbolic motion,
            light time, orbit scalars, orbit classes
  planet    approximate Standish elements, VSOP87, low precision Earth
  body      position providers for the Sun, Moon, planets, orbits, stars;
            phase, illuminated fraction, bright limb, semidiameter and
            magnitude of their disks
  riseset   the rise, transit and set solver
  mpc       Minor Planet Center formats: packed dates, 80 column
            observations, observatory codes, MPCORB orbit records
  almanac   TOML configured rise/set tables computed concurrently


Time conventions

Instants are float64 Julian days.  Functions document whether they take
UT or dynamical time (TT).  jd.JDE converts UT to TT by adding delta T.
Angles are typed with github.com/soniakeys/unit so degrees, radians and
hours cannot be confused.

Longitudes are east-positive throughout.  Horizontal azimuth is measured
westward from the south.


Rise, transit and set

riseset.Body samples a position provider on the previous, current and
following day, interpolates, and refines each event once by the
altitude error at the first estimate.  Results are UT Julian days.  A body
that never crosses the horizon on the day is reported by status, not by
error:

  Normal       rise, transit and set are all valid
  AlwaysAbove  circumpolar, only transit is valid
  NeverRises   only transit is valid

riseset.NextBody returns the first rise, transit and set at or after a
given instant, each searched separately.  riseset.NextBodyWithin keeps
looking day by day, which is what polar sites need.

Standard horizons are riseset.Stellar, riseset.Solar and riseset.Lunar,
plus the three twilights.


Almanac jobs

A job file names a site, a start date, a number of days and a list of
bodies:

  site = "644"
  start = 2024-03-01T00:00:00Z
  days = 31
  zone = -28800
  horizon = "civil"
  bodies = ["sun", "moon", "venus"]

  [[stars]]
  name = "Arcturus"
  ra = 213.9153
  dec = 19.182409

  [[comets]]
  name = "Encke"
  q = 0.33088593
  e = 0.8502196
  i = 11.94525
  w = 186.23352
  node = 334.75006
  peri = 1990-10-28T12:30:00Z

Minor planets may be given as MPCORB lines in an mpcorb array.  Each day
starts at local midnight in the zone given in seconds east of Greenwich.
Planets use approximate elements unless vsop87 names a directory of
VSOP87B data files.  Runs report through Prometheus metrics when the
runner is given them.
*/
package nova
