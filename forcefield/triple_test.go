package forcefield

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
	"github.com/pthm-cable/micromd/potential"
)

func bendingPotential(*particle.System, int, int, int) potential.Triple {
	return potential.CosineBending{BendingEnergy: 1}
}

func TestBondedTripleForcesSumToZero(t *testing.T) {
	sys := particle.NewSystem()
	sys.AddParticle(particle.ParticleData{Mass: 1, Mobility: 1, Position: geom.NewPoint(0, 0, 0)})
	sys.AddParticle(particle.ParticleData{Mass: 1, Mobility: 1, Position: geom.NewPoint(1, 0, 0)})
	sys.AddParticle(particle.ParticleData{Mass: 1, Mobility: 1, Position: geom.NewPoint(1, 1, 0)})

	ff := &BondedTriple{Potential: bendingPotential}
	ff.AddBondedTriple(0, 1, 2)
	sys.AddForceField(ff)

	forces := sys.ComputeForce(nil)
	total := sumForces(forces)

	assert.InDelta(t, 0, total.X, 1e-9)
	assert.InDelta(t, 0, total.Y, 1e-9)
	assert.InDelta(t, 0, total.Z, 1e-9)
}

func TestBondedTripleAddBondedRangeChainsConsecutiveTriples(t *testing.T) {
	ff := &BondedTriple{Potential: bendingPotential}
	ff.AddBondedRange(0, 5)
	assert.Equal(t, [][3]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}, ff.triples)
}

func TestSequentialTripleWithinSegment(t *testing.T) {
	sys := particle.NewSystem()
	sys.AddParticle(particle.ParticleData{Mass: 1, Mobility: 1, Position: geom.NewPoint(0, 0, 0)})
	sys.AddParticle(particle.ParticleData{Mass: 1, Mobility: 1, Position: geom.NewPoint(1, 0, 0)})
	sys.AddParticle(particle.ParticleData{Mass: 1, Mobility: 1, Position: geom.NewPoint(1, 1, 0)})
	sys.AddParticle(particle.ParticleData{Mass: 1, Mobility: 1, Position: geom.NewPoint(5, 5, 5)})

	ff := &SequentialTriple{Potential: bendingPotential}
	ff.AddSegment(0, 2)
	sys.AddForceField(ff)

	forces := sys.ComputeForce(nil)
	assert.NotEqual(t, geom.Vector{}, forces[0])
	assert.Equal(t, geom.Vector{}, forces[3])
}
