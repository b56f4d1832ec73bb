package potential

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/micromd/geom"
)

func TestCosineBendingZeroAtStraightAngle(t *testing.T) {
	pot := CosineBending{BendingEnergy: 2}

	// rij and rjk collinear and pointing the same way: angle 0, cos = 1.
	rij := geom.NewVector(1, 0, 0)
	rjk := geom.NewVector(1, 0, 0)

	assert.InDelta(t, 0, pot.Energy(rij, rjk), 1e-12)
}

func TestCosineBendingMaximalAtReversedAngle(t *testing.T) {
	pot := CosineBending{BendingEnergy: 2}

	rij := geom.NewVector(1, 0, 0)
	rjk := geom.NewVector(-1, 0, 0)

	assert.InDelta(t, 2*2, pot.Energy(rij, rjk), 1e-12)
}

func TestCosineBendingForcesSumToZero(t *testing.T) {
	pot := CosineBending{BendingEnergy: 1.5}

	rij := geom.NewVector(1, 0.2, -0.1)
	rjk := geom.NewVector(0.3, -0.8, 0.4)

	fi, fj, fk := pot.Force(rij, rjk)
	total := fi.Add(fj).Add(fk)

	assert.InDelta(t, 0, total.X, 1e-12)
	assert.InDelta(t, 0, total.Y, 1e-12)
	assert.InDelta(t, 0, total.Z, 1e-12)
}

func TestCosineBendingDegenerateZeroLengthBond(t *testing.T) {
	pot := CosineBending{BendingEnergy: 1}

	rij := geom.Vector{}
	rjk := geom.NewVector(1, 0, 0)

	assert.Equal(t, 0.0, pot.Energy(rij, rjk))
	fi, fj, fk := pot.Force(rij, rjk)
	assert.Equal(t, geom.Vector{}, fi)
	assert.Equal(t, geom.Vector{}, fj)
	assert.Equal(t, geom.Vector{}, fk)
}

func TestCosineBendingEnergyForceConsistency(t *testing.T) {
	pot := CosineBending{BendingEnergy: 1.2}
	rij := geom.NewVector(1, 0.2, 0)
	rjk := geom.NewVector(0.3, 1, -0.1)

	const h = 1e-6
	for axis := 0; axis < 3; axis++ {
		plus := perturb(rij, axis, h)
		minus := perturb(rij, axis, -h)
		dEdx := (pot.Energy(plus, rjk) - pot.Energy(minus, rjk)) / (2 * h)

		fi, _, _ := pot.Force(rij, rjk)
		got := component(fi, axis)

		assert.True(t, math.Abs(-dEdx-got) < 1e-4, "axis %d: want %v got %v", axis, -dEdx, got)
	}
}

func perturb(v geom.Vector, axis int, h float64) geom.Vector {
	switch axis {
	case 0:
		return geom.NewVector(v.X+h, v.Y, v.Z)
	case 1:
		return geom.NewVector(v.X, v.Y+h, v.Z)
	default:
		return geom.NewVector(v.X, v.Y, v.Z+h)
	}
}

func component(v geom.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
