// Package geom provides the 3-D Euclidean point/vector algebra shared by the
// rest of the simulation core. Arithmetic is delegated to gonum's r3 package
// so that Point and Vector stay thin, zero-cost wrappers around r3.Vec while
// keeping the point/vector type distinction the rest of the core relies on.
package geom

import "gonum.org/v1/gonum/spatial/r3"

// Point is a position in 3-D space.
type Point r3.Vec

// Vector is a displacement in 3-D space.
type Vector r3.Vec

// Origin is the zero point.
var Origin = Point{}

// Zero is the zero vector.
var Zero = Vector{}

// NewPoint builds a point from its coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector builds a vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (p Point) vec() r3.Vec  { return r3.Vec(p) }
func (v Vector) vec() r3.Vec { return r3.Vec(v) }

// Sub returns the vector pointing from q to p, i.e. p - q.
func (p Point) Sub(q Point) Vector {
	return Vector(r3.Sub(p.vec(), q.vec()))
}

// Add returns the point obtained by displacing p by v.
func (p Point) Add(v Vector) Point {
	return Point(r3.Add(p.vec(), r3.Vec(v)))
}

// SquaredDistance returns the squared Euclidean distance between two points.
func (p Point) SquaredDistance(q Point) float64 {
	return p.Sub(q).SquaredNorm()
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// Add returns the sum of two vectors.
func (v Vector) Add(u Vector) Vector {
	return Vector(r3.Add(v.vec(), u.vec()))
}

// Sub returns the difference v - u.
func (v Vector) Sub(u Vector) Vector {
	return Vector(r3.Sub(v.vec(), u.vec()))
}

// Scale returns v scaled by a factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector(r3.Scale(factor, v.vec()))
}

// Neg returns the additive inverse of v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Dot returns the dot product of v and u.
func (v Vector) Dot(u Vector) float64 {
	return r3.Dot(v.vec(), u.vec())
}

// SquaredNorm returns the squared length of v.
func (v Vector) SquaredNorm() float64 {
	return v.Dot(v)
}

// Norm returns the length of v.
func (v Vector) Norm() float64 {
	return r3.Norm(v.vec())
}

// Normalize returns v scaled to unit length. Per the degenerate-geometry
// contract, the zero vector normalizes to itself rather than producing NaNs.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n == 0 {
		return Zero
	}
	return v.Scale(1 / n)
}

// Project returns the projection of v onto u: u * (v.u)/(u.u). Per the
// degenerate-geometry contract this is the zero vector when u is zero.
func (v Vector) Project(u Vector) Vector {
	uu := u.Dot(u)
	if uu == 0 {
		return Zero
	}
	return u.Scale(v.Dot(u) / uu)
}

// Hadamard returns the element-wise product of v and u.
func (v Vector) Hadamard(u Vector) Vector {
	return NewVector(v.X*u.X, v.Y*u.Y, v.Z*u.Z)
}
