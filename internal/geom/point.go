// Package geom provides the small set of 2D-geometry primitives the
// gesture recognizer core is built on: a millimeter-space vector, a
// normalized angle, and the mapping from angles to cardinal directions.
package geom

import "math"

// Point is a 2D vector with components in millimeters.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Div returns p scaled by 1/s.
func (p Point) Div(s float64) Point {
	return Point{p.X / s, p.Y / s}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Length returns the Euclidean length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}
