package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/micromd/geom"
)

func TestAddParticleUsesGivenIntrinsicValues(t *testing.T) {
	sys := NewSystem()

	i0 := sys.AddParticle(ParticleData{
		Mass:     2,
		Mobility: 0.5,
		Position: geom.NewPoint(1, 2, 3),
		Velocity: geom.NewVector(0, 1, 0),
	})
	i1 := sys.AddParticle(DefaultParticleData())

	require.Equal(t, 0, i0)
	require.Equal(t, 1, i1)
	assert.Equal(t, 2, sys.ParticleCount())

	assert.Equal(t, []float64{2, 1}, sys.ViewMasses())
	assert.Equal(t, []float64{0.5, 1}, sys.ViewMobilities())
	assert.Equal(t, geom.NewPoint(1, 2, 3), sys.ViewPositions()[0])
	assert.Equal(t, geom.Point{}, sys.ViewPositions()[1])
	assert.Equal(t, geom.NewVector(0, 1, 0), sys.ViewVelocities()[0])
}

func TestAddAttributeBackfillsExistingParticles(t *testing.T) {
	sys := NewSystem()
	sys.AddParticle(DefaultParticleData())
	sys.AddParticle(DefaultParticleData())

	charge := NewAttribute("charge", -1.0)
	AddAttribute(sys, charge)

	assert.Equal(t, []float64{-1, -1}, ViewAttribute(sys, charge))

	sys.AddParticle(DefaultParticleData())
	assert.Equal(t, []float64{-1, -1, -1}, ViewAttribute(sys, charge))
}

func TestViewAliasesSystemStorage(t *testing.T) {
	sys := NewSystem()
	sys.AddParticle(DefaultParticleData())

	sys.ViewPositions()[0] = geom.NewPoint(5, 5, 5)
	assert.Equal(t, geom.NewPoint(5, 5, 5), sys.ViewPositions()[0])
}

type constantForceField struct {
	energy float64
	force  geom.Vector
}

func (f constantForceField) Energy(*System) float64 { return f.energy }

func (f constantForceField) AccumulateForce(sys *System, out []geom.Vector) {
	for i := range out {
		out[i] = out[i].Add(f.force)
	}
}

func TestComputePotentialEnergySumsForceFieldsInOrder(t *testing.T) {
	sys := NewSystem()
	sys.AddParticle(DefaultParticleData())

	sys.AddForceField(constantForceField{energy: 1})
	sys.AddForceField(constantForceField{energy: 2})

	assert.Equal(t, 3.0, sys.ComputePotentialEnergy())
}

func TestComputeForceZeroesThenAccumulates(t *testing.T) {
	sys := NewSystem()
	sys.AddParticle(DefaultParticleData())
	sys.AddParticle(DefaultParticleData())

	sys.AddForceField(constantForceField{force: geom.NewVector(1, 0, 0)})
	sys.AddForceField(constantForceField{force: geom.NewVector(0, 2, 0)})

	out := sys.ComputeForce(nil)
	require.Len(t, out, 2)
	assert.Equal(t, geom.NewVector(1, 2, 0), out[0])
	assert.Equal(t, geom.NewVector(1, 2, 0), out[1])

	// Calling again with the previous buffer must not double-accumulate.
	out = sys.ComputeForce(out)
	assert.Equal(t, geom.NewVector(1, 2, 0), out[0])
}

func TestComputeKineticEnergy(t *testing.T) {
	sys := NewSystem()
	sys.AddParticle(ParticleData{Mass: 2, Mobility: 1, Velocity: geom.NewVector(3, 0, 0)})

	// (1/2) * 2 * 3^2 = 9
	assert.Equal(t, 9.0, sys.ComputeKineticEnergy())
}

func TestComputeEnergyIsKineticPlusPotential(t *testing.T) {
	sys := NewSystem()
	sys.AddParticle(ParticleData{Mass: 2, Mobility: 1, Velocity: geom.NewVector(3, 0, 0)})
	sys.AddForceField(constantForceField{energy: 5})

	assert.Equal(t, 14.0, sys.ComputeEnergy())
}
