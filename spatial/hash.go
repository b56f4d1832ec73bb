// Package spatial implements the uniform spatial hashing scheme used to turn
// O(N^2) short-range interaction cost into near-linear cost: a bucket layout
// over either a linear hash (open boxes) or a direct grid index (periodic
// boxes), a precomputed bucket adjacency graph, and the Verlet-shell neighbor
// list cache that sits on top of it.
//
// Grounded on _examples/original_source/include/md/forcefield/detail/
// linear_hash.hpp and neighbor_searcher.hpp, generalized to periodic boxes
// per the bucket-index scheme documented in spec.md 4.5, and on the bucket/
// cell layout of the teacher's systems/spatial.go (SpatialGrid).
package spatial

import "github.com/pthm-cable/micromd/geom"

// linearHash is a linear hash function for integral 3-vectors, used to
// bucket points in an open (non-periodic) box. Coefficients and modulus
// heuristic are taken verbatim from the original source.
type linearHash struct {
	xCoeff, yCoeff, zCoeff uint64
	modulus                uint32
}

func newLinearHash(particleCount int) linearHash {
	m := uint32(2*particleCount/11) | 1
	if m == 0 {
		m = 1
	}
	return linearHash{
		xCoeff:  3929498747,
		yCoeff:  1008281837,
		zCoeff:  1832832077,
		modulus: m,
	}
}

func (h linearHash) hash(x, y, z uint32) uint32 {
	var sum uint64
	sum += h.xCoeff * uint64(x)
	sum += h.yCoeff * uint64(y)
	sum += h.zCoeff * uint64(z)
	return uint32(sum % uint64(h.modulus))
}

// coordOffset biases negative coordinates so that bucket coordinates never
// go negative before truncation to an unsigned integer; spec.md mandates an
// offset of at least 2^20.
const coordOffset = 1 << 20

// locateBucket maps a point to a bucket index in the linear-hash scheme.
func (h linearHash) locateBucket(p geom.Point, invDcut float64) uint32 {
	x := uint32(coordOffset + invDcut*p.X)
	y := uint32(coordOffset + invDcut*p.Y)
	z := uint32(coordOffset + invDcut*p.Z)
	return h.hash(x, y, z)
}
