// Public domain.

// Package interp interpolates tabulated values.
package interp

// Quad interpolates from three values y1, y2, y3 tabulated at equal
// intervals, at n intervals from y2.
//
// n is normally in [-1, 1].  Values are taken as they are; angles that
// wrap must be unwrapped by the caller.
func Quad(n, y1, y2, y3 float64) float64 {
	a := y2 - y1
	b := y3 - y2
	c := b - a
	return y2 + n/2*(a+b+n*c)
}
