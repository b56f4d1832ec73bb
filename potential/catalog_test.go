package potential

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/pthm-cable/micromd/geom"
)

// checkConsistent verifies F(r) = -grad(u)(r) at a handful of displacement
// vectors using gonum's finite-difference gradient, per spec.md's
// energy-force consistency contract.
func checkConsistent(t *testing.T, pot Pairwise, points []geom.Vector) {
	t.Helper()
	energyAt := func(x []float64) float64 {
		return pot.Energy(geom.NewVector(x[0], x[1], x[2]))
	}
	for _, r := range points {
		grad := fd.Gradient(nil, energyAt, []float64{r.X, r.Y, r.Z}, nil)
		want := geom.NewVector(-grad[0], -grad[1], -grad[2])
		got := pot.Force(r)
		closeEnough(t, want.X, got.X, r)
		closeEnough(t, want.Y, got.Y, r)
		closeEnough(t, want.Z, got.Z, r)
	}
}

// closeEnough tolerates both a small absolute error and a small relative
// error, since steep potentials (e.g. Lennard-Jones near contact) have
// force magnitudes that make a fixed absolute tolerance too strict.
func closeEnough(t *testing.T, want, got float64, r geom.Vector) {
	t.Helper()
	tol := 1e-3 + 1e-3*math.Abs(want)
	assert.InDelta(t, want, got, tol, "at %+v", r)
}

var probePoints = []geom.Vector{
	geom.NewVector(0.3, 0, 0),
	geom.NewVector(0.2, 0.1, -0.1),
	geom.NewVector(-0.4, 0.2, 0.05),
	geom.NewVector(1.2, -0.3, 0.4),
}

func TestHarmonicEnergyForceConsistency(t *testing.T) {
	checkConsistent(t, Harmonic{SpringConstant: 2.5}, probePoints)
}

func TestSpringEnergyForceConsistency(t *testing.T) {
	checkConsistent(t, Spring{SpringConstant: 1.5, EquilibriumDistance: 0.5}, probePoints)
}

func TestSemispringIsZeroInsideEquilibrium(t *testing.T) {
	pot := Semispring{SpringConstant: 1, EquilibriumDistance: 1}
	r := geom.NewVector(0.4, 0, 0)
	assert.Equal(t, 0.0, pot.Energy(r))
	assert.Equal(t, geom.Vector{}, pot.Force(r))
}

func TestLennardJonesEnergyForceConsistency(t *testing.T) {
	checkConsistent(t, LennardJones{Epsilon: 1, Sigma: 1}, []geom.Vector{
		geom.NewVector(1.1, 0, 0),
		geom.NewVector(0.9, 0.3, 0),
		geom.NewVector(1.3, -0.2, 0.2),
	})
}

func TestWCAExactlyZeroBeyondSigma(t *testing.T) {
	pot := WCA{Epsilon: 1, Sigma: 1}
	r := geom.NewVector(1.5, 0, 0)
	assert.Equal(t, 0.0, pot.Energy(r))
	assert.Equal(t, geom.Vector{}, pot.Force(r))
}

func TestWCAMinimumAtSigma(t *testing.T) {
	pot := WCA{Epsilon: 1, Sigma: 1}
	atSigma := pot.Energy(geom.NewVector(1, 0, 0))
	assert.InDelta(t, 0, atSigma, 1e-9)
}

func TestWCAEnergyForceConsistency(t *testing.T) {
	checkConsistent(t, WCA{Epsilon: 1, Sigma: 1}, []geom.Vector{
		geom.NewVector(0.6, 0, 0),
		geom.NewVector(0.4, 0.3, 0),
		geom.NewVector(0.9, -0.2, 0.1),
	})
}

func TestSoftLennardJonesFiniteAtOrigin(t *testing.T) {
	pot := SoftLennardJones{Epsilon: 1, Sigma: 1, Softness: 0.1}
	e := pot.Energy(geom.Vector{})
	assert.False(t, math.IsInf(e, 0) || math.IsNaN(e))
}

func TestSoftWCAExactlyZeroBeyondSigma(t *testing.T) {
	pot := SoftWCA{Epsilon: 1, Sigma: 1, Softness: 0.1}
	r := geom.NewVector(2, 0, 0)
	assert.Equal(t, 0.0, pot.Energy(r))
	assert.Equal(t, geom.Vector{}, pot.Force(r))
}

func TestPowerLawExactlyZeroBeyondCutoff(t *testing.T) {
	pot := PowerLaw{N: 2, OverlapEnergy: 1, CutoffDistance: 1}
	r := geom.NewVector(2, 0, 0)
	assert.Equal(t, 0.0, pot.Energy(r))
	assert.Equal(t, geom.Vector{}, pot.Force(r))
}

func TestPowerLawEnergyForceConsistency(t *testing.T) {
	checkConsistent(t, PowerLaw{N: 3, OverlapEnergy: 2, CutoffDistance: 1.5}, []geom.Vector{
		geom.NewVector(0.3, 0, 0),
		geom.NewVector(0.5, 0.4, -0.2),
	})
}

func TestSoftcoreExactlyZeroBeyondDiameter(t *testing.T) {
	pot := NewSoftcore(1, 1)
	r := geom.NewVector(2, 0, 0)
	assert.Equal(t, 0.0, pot.Energy(r))
	assert.Equal(t, geom.Vector{}, pot.Force(r))
}

func TestSoftcoreEnergyForceConsistency(t *testing.T) {
	checkConsistent(t, NewSoftcore(1, 1), []geom.Vector{
		geom.NewVector(0.3, 0, 0),
		geom.NewVector(0.5, 0.2, -0.1),
	})
}

func TestPolybellMatchesSoftcoreWithDefaultExponents(t *testing.T) {
	a := NewSoftcore(1, 1)
	b := Polybell{P: 2, Q: 3, EnergyScale: 1, Diameter: 1}
	r := geom.NewVector(0.3, 0.1, 0)
	assert.Equal(t, a.Energy(r), b.Energy(r))
}

func TestSoftwellEnergyForceConsistency(t *testing.T) {
	checkConsistent(t, Softwell{P: 2, EnergyScale: 1, DecayDistance: 1}, probePoints)
}

func TestSoftwellDecaysTowardZero(t *testing.T) {
	pot := Softwell{P: 2, EnergyScale: 1, DecayDistance: 1}
	near := math.Abs(pot.Energy(geom.NewVector(0, 0, 0)))
	far := math.Abs(pot.Energy(geom.NewVector(100, 0, 0)))
	assert.Greater(t, near, far)
}

func TestSymmetricPotentialsAreEvenInR(t *testing.T) {
	pots := []Pairwise{
		Harmonic{SpringConstant: 1},
		LennardJones{Epsilon: 1, Sigma: 1},
		WCA{Epsilon: 1, Sigma: 1},
		NewSoftcore(1, 1),
		Softwell{P: 2, EnergyScale: 1, DecayDistance: 1},
	}
	r := geom.NewVector(0.3, 0.2, -0.1)
	for _, pot := range pots {
		assert.Equal(t, pot.Energy(r), pot.Energy(r.Neg()), "%T", pot)
		f1 := pot.Force(r)
		f2 := pot.Force(r.Neg())
		assert.InDelta(t, f1.X, -f2.X, 1e-9, "%T", pot)
		assert.InDelta(t, f1.Y, -f2.Y, 1e-9, "%T", pot)
		assert.InDelta(t, f1.Z, -f2.Z, 1e-9, "%T", pot)
	}
}
