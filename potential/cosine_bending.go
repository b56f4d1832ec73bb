package potential

import (
	"math"

	"github.com/pthm-cable/micromd/geom"
)

// CosineBending is the three-body bending potential
//
//	u(rij, rjk) = e (1 - cos(theta))
//
// where theta is the angle at the middle particle j between bond vectors
// rij and rjk. Grounded on cosine_bending_potential.hpp.
type CosineBending struct {
	BendingEnergy float64
}

func (p CosineBending) Energy(rij, rjk geom.Vector) float64 {
	dijSq := rij.SquaredNorm()
	djkSq := rjk.SquaredNorm()
	if dijSq*djkSq == 0 {
		return 0
	}

	dot := rij.Dot(rjk)
	dijDjk := math.Sqrt(dijSq * djkSq)
	cos := dot / dijDjk

	return p.BendingEnergy * (1 - cos)
}

func (p CosineBending) Force(rij, rjk geom.Vector) (fi, fj, fk geom.Vector) {
	dijSq := rij.SquaredNorm()
	djkSq := rjk.SquaredNorm()
	if dijSq*djkSq == 0 {
		return geom.Vector{}, geom.Vector{}, geom.Vector{}
	}

	dot := rij.Dot(rjk)
	dijDjk := math.Sqrt(dijSq * djkSq)
	eDivDD := p.BendingEnergy / dijDjk

	fij := rjk.Sub(rij.Scale(dot / dijSq)).Scale(eDivDD)
	fkj := rjk.Scale(dot / djkSq).Sub(rij).Scale(eDivDD)

	fi = fij
	fk = fkj
	fj = fij.Add(fkj).Neg()
	return fi, fj, fk
}

