// Public domain.

package mpc

import (
	"fmt"
	"math"

	"github.com/soniakeys/mpcformat"
	"github.com/soniakeys/nova/orbit"
	"github.com/soniakeys/unit"
)

// MinorPlanet is an orbit record from MPCORB.DAT.
type MinorPlanet struct {
	Desig string
	H, G  float64 // NaN if absent
	Orbit *orbit.Elliptic
}

// record is the part of the export format used here.
type record struct {
	Desig, Epoch        string
	A, E                float64
	Inc, MA, Node, Peri float64
	G                   float64 `val:"defNaN"`
	H                   float64 `val:"defNaN"`
}

// OrbitParser parses MPCORB.DAT lines.  It is not safe for concurrent
// use.
type OrbitParser struct {
	rec record
	um  func([]byte) error
}

// NewOrbitParser returns a parser for lines of the MPC export orbit format.
func NewOrbitParser() (*OrbitParser, error) {
	p := &OrbitParser{}
	um, err := mpcformat.NewExportUnmarshaler(&p.rec)
	if err != nil {
		return nil, err
	}
	p.um = um
	return p, nil
}

// Parse parses one orbit record.
//
// The mean anomaly at epoch is converted to a time of perihelion so the
// result is positioned by orbit.Elliptic.Rect.
func (p *OrbitParser) Parse(line []byte) (*MinorPlanet, error) {
	p.rec = record{}
	if err := p.um(line); err != nil {
		return nil, fmt.Errorf("orbit record: %w", err)
	}
	r := &p.rec
	if r.E < 0 || r.E >= 1 || !(r.A > 0) {
		return nil, fmt.Errorf("orbit record %s: %w", r.Desig, orbit.ErrEccentricity)
	}
	ep, err := Epoch(r.Epoch)
	if err != nil {
		return nil, fmt.Errorf("orbit record %s: %w", r.Desig, err)
	}
	o := &orbit.Elliptic{
		A:    r.A,
		E:    r.E,
		I:    unit.AngleFromDeg(r.Inc),
		W:    unit.AngleFromDeg(r.Peri),
		Node: unit.AngleFromDeg(r.Node),
	}
	o.JD = orbit.LastPerihelion(ep, unit.AngleFromDeg(r.MA), o.MeanMotion())
	return &MinorPlanet{Desig: r.Desig, H: r.H, G: r.G, Orbit: o}, nil
}

// Classes returns the orbit classes of the minor planet, using H when
// known.
func (m *MinorPlanet) Classes() []string {
	h := m.H
	if math.IsNaN(h) {
		h = 99
	}
	return m.Orbit.Classes(h)
}
