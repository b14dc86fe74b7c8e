package geom

import "math"

// Angle is a normalized angle, always represented in the half-open
// interval [0, 2π). Two angles that differ by a multiple of 2π compare
// equal.
type Angle struct {
	radians float64
}

// FromRadians builds an Angle from a radian value, reducing it modulo 2π.
func FromRadians(r float64) Angle {
	shift := math.Floor(r / (2 * math.Pi))
	return Angle{radians: r - 2*math.Pi*shift}
}

// FromDegrees builds an Angle from a degree value.
func FromDegrees(d float64) Angle {
	return FromRadians(d * math.Pi / 180)
}

// Radians returns the angle in [0, 2π).
func (a Angle) Radians() float64 {
	return a.radians
}

// Degrees returns the angle in [0, 360).
func (a Angle) Degrees() float64 {
	return a.radians * 180 / math.Pi
}

// Add returns a + b, re-normalized.
func (a Angle) Add(b Angle) Angle {
	return FromRadians(a.radians + b.radians)
}

// Sub returns a - b, re-normalized.
func (a Angle) Sub(b Angle) Angle {
	return FromRadians(a.radians - b.radians)
}

// Abs returns the unsigned angular distance from a to zero, in [0, π].
func (a Angle) Abs() UAngle {
	return UAngle{radians: math.Min(2*math.Pi-a.radians, a.radians)}
}

// Interpolate returns the convex combination of a and b along the shorter
// arc between them. lambda must be in [0, 1]; ties (the two angles are
// exactly π apart) are broken toward the lower representative.
func (a Angle) Interpolate(b Angle, lambda float64) Angle {
	if lambda < 0 || lambda > 1 {
		panic("geom: Interpolate lambda out of [0,1]")
	}

	my, other := a.radians, b.radians
	if math.Abs(my-other) > math.Pi {
		if my < other {
			my += 2 * math.Pi
		} else {
			other += 2 * math.Pi
		}
	}

	return FromRadians((1-lambda)*my + lambda*other)
}

// UAngle is an unsigned angular magnitude in [0, 2π).
type UAngle struct {
	radians float64
}

// UAngleFromRadians builds a UAngle from a non-negative radian value. It
// panics if radians is negative.
func UAngleFromRadians(radians float64) UAngle {
	if radians < 0 {
		panic("geom: UAngle radians must be non-negative")
	}
	return UAngle{radians: FromRadians(radians).Radians()}
}

// UAngleFromDegrees builds a UAngle from a non-negative degree value.
func UAngleFromDegrees(degrees float64) UAngle {
	if degrees < 0 {
		panic("geom: UAngle degrees must be non-negative")
	}
	return UAngleFromRadians(degrees * math.Pi / 180)
}

// Radians returns the magnitude in radians.
func (u UAngle) Radians() float64 {
	return u.radians
}

// Degrees returns the magnitude in degrees.
func (u UAngle) Degrees() float64 {
	return u.radians * 180 / math.Pi
}
