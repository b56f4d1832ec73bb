// Package potential provides pairwise and three-body potential energy
// functions, along with combinators to compose them.
//
// Grounded on _examples/original_source/include/md/potential/*.hpp: each
// potential there is a value type exposing evaluate_energy/evaluate_force
// on a displacement vector; here that becomes the Pairwise interface so
// force fields in package forcefield can hold any potential behind one
// type instead of a template parameter.
package potential

import (
	"math"

	"github.com/pthm-cable/micromd/geom"
)

// Pairwise is a potential energy function of a single displacement vector
// r = x_i - x_j between two particles. Force must equal -grad(u)(r); every
// concrete potential in this package satisfies that by construction.
type Pairwise interface {
	Energy(r geom.Vector) float64
	Force(r geom.Vector) geom.Vector
}

// Triple is a three-body potential energy function of the two bond vectors
// rij = x_i - x_j and rjk = x_j - x_k meeting at the middle particle j.
// Force returns the force on each of the three particles, which must sum to
// zero.
type Triple interface {
	Energy(rij, rjk geom.Vector) float64
	Force(rij, rjk geom.Vector) (fi, fj, fk geom.Vector)
}

// intPow raises x to the non-negative integer power n by exponentiation by
// squaring, mirroring md::power<N> in
// _examples/original_source/include/md/misc/math.hpp.
func intPow(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	pow := x
	for m := n - 1; m > 0; m /= 2 {
		if m%2 == 1 {
			pow *= x
		}
		x *= x
	}
	return pow
}

// intPowSqrt raises x to the power n/2, used where the original takes the
// square root of a squared-norm input instead of computing norm directly.
func intPowSqrt(x float64, n int) float64 {
	if n%2 == 0 {
		return intPow(x, n/2)
	}
	return intPow(math.Sqrt(x), n)
}
