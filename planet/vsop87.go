// Public domain.

package planet

import (
	"fmt"

	pp "github.com/soniakeys/meeus/v3/planetposition"
)

// LoadVSOP87 loads the VSOP87B theory for planet p from the directory
// named by the VSOP87 environment variable.
//
// EMBary loads the Earth.  Pluto has no VSOP87 theory and returns
// ErrPlanet.  The returned value satisfies orbit.Heliocentric.
func LoadVSOP87(p int) (*pp.V87Planet, error) {
	if p < Mercury || p > Neptune {
		return nil, ErrPlanet
	}
	v, err := pp.LoadPlanet(p)
	if err != nil {
		return nil, fmt.Errorf("loading VSOP87 planet %d: %w", p, err)
	}
	return v, nil
}

// LoadVSOP87Path is LoadVSOP87 with an explicit data directory.
func LoadVSOP87Path(p int, dir string) (*pp.V87Planet, error) {
	if p < Mercury || p > Neptune {
		return nil, ErrPlanet
	}
	v, err := pp.LoadPlanetPath(p, dir)
	if err != nil {
		return nil, fmt.Errorf("loading VSOP87 planet %d: %w", p, err)
	}
	return v, nil
}
