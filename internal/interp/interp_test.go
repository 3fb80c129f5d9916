// Public domain.

package interp_test

import (
	"math"
	"testing"

	mi "github.com/soniakeys/meeus/v3/interp"
	"github.com/soniakeys/nova/internal/interp"
)

func TestQuad(t *testing.T) {
	// Meeus example 3.a, distance of Mars
	y := []float64{.884226, .877366, .870531}
	if r := interp.Quad(.18125, y[0], y[1], y[2]); math.Abs(r-.876125) > 1e-6 {
		t.Fatal(r)
	}
	// tabulated values come back
	for i, n := range []float64{-1, 0, 1} {
		if r := interp.Quad(n, y[0], y[1], y[2]); math.Abs(r-y[i]) > 1e-15 {
			t.Fatal(n, r)
		}
	}
	l3, err := mi.NewLen3(-1, 1, y)
	if err != nil {
		t.Fatal(err)
	}
	for n := -1.; n <= 1; n += .0625 {
		want := l3.InterpolateN(n)
		if r := interp.Quad(n, y[0], y[1], y[2]); math.Abs(r-want) > 1e-15 {
			t.Fatal(n, r, want)
		}
	}
}

func TestQuadExact(t *testing.T) {
	// quadratics are reproduced
	f := func(x float64) float64 { return 3*x*x - 2*x + 7 }
	for _, n := range []float64{-3, -.5, .25, 2} {
		if r := interp.Quad(n, f(-1), f(0), f(1)); math.Abs(r-f(n)) > 1e-12 {
			t.Fatal(n, r, f(n))
		}
	}
}
