package potential

import "github.com/pthm-cable/micromd/geom"

// Sum combines two potentials by adding their energies and forces.
// Grounded on sum_potential.hpp; the original enables this via operator+,
// which Go cannot overload, so it is a constructor here.
type Sum struct {
	A, B Pairwise
}

func (p Sum) Energy(r geom.Vector) float64 {
	return p.A.Energy(r) + p.B.Energy(r)
}

func (p Sum) Force(r geom.Vector) geom.Vector {
	return p.A.Force(r).Add(p.B.Force(r))
}

// Diff combines two potentials by subtracting the second's energy and force
// from the first's. Grounded on diff_potential.hpp.
type Diff struct {
	A, B Pairwise
}

func (p Diff) Energy(r geom.Vector) float64 {
	return p.A.Energy(r) - p.B.Energy(r)
}

func (p Diff) Force(r geom.Vector) geom.Vector {
	return p.A.Force(r).Sub(p.B.Force(r))
}

// Scaled multiplies a potential's energy and force by a constant factor.
// Grounded on scaled_potential.hpp.
type Scaled struct {
	Base   Pairwise
	Factor float64
}

func (p Scaled) Energy(r geom.Vector) float64 {
	return p.Factor * p.Base.Energy(r)
}

func (p Scaled) Force(r geom.Vector) geom.Vector {
	return p.Base.Force(r).Scale(p.Factor)
}

// Negate flips the sign of a potential's energy and force; equivalent to
// Scaled{Base: base, Factor: -1}, matching scaled_potential.hpp's unary
// operator- overload.
func Negate(base Pairwise) Scaled {
	return Scaled{Base: base, Factor: -1}
}

// Cutoff hard-cuts a potential's energy and force to zero at and beyond
// CutoffDistance. Grounded on cutoff_potential.hpp.
type Cutoff struct {
	Base           Pairwise
	CutoffDistance float64
}

func (p Cutoff) shouldCut(r geom.Vector) bool {
	return r.SquaredNorm() >= p.CutoffDistance*p.CutoffDistance
}

func (p Cutoff) Energy(r geom.Vector) float64 {
	if p.shouldCut(r) {
		return 0
	}
	return p.Base.Energy(r)
}

func (p Cutoff) Force(r geom.Vector) geom.Vector {
	if p.shouldCut(r) {
		return geom.Vector{}
	}
	return p.Base.Force(r)
}

// ApplyCutoff wraps pot in a Cutoff at distance dcut, mirroring the
// original's apply_cutoff helper.
func ApplyCutoff(pot Pairwise, dcut float64) Cutoff {
	return Cutoff{Base: pot, CutoffDistance: dcut}
}

// Wrapped forwards to a base potential unchanged. Grounded on
// wrapped_potential.hpp, whose purpose in the original was to let a custom
// potential type participate in operator+/operator* overloading; in Go any
// type already satisfying Pairwise can be passed to Sum/Scaled/etc.
// directly, so Wrapped exists only as an explicit adapter for callers
// migrating external potential types into this package's interface.
type Wrapped struct {
	Base Pairwise
}

func (p Wrapped) Energy(r geom.Vector) float64    { return p.Base.Energy(r) }
func (p Wrapped) Force(r geom.Vector) geom.Vector { return p.Base.Force(r) }
