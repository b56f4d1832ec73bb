// Package forcefield provides concrete particle.ForceField implementations:
// brute-force and neighbor-accelerated pairwise interactions, bonded and
// sequential pair/triple interactions, field forces from surfaces and point
// sources, and a composite that sums any number of them.
//
// The original source (_examples/original_source/include/md/forcefield/*.hpp)
// builds each of these as a CRTP base class that a derived type completes
// with callbacks (box(), neighbor_distance(), *_potential()). Go has no CRTP;
// the callbacks become ordinary function-valued struct fields instead, which
// is the idiom the teacher repo itself uses for pluggable behavior (see its
// systems package's function-field callbacks).
package forcefield

import (
	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
	"github.com/pthm-cable/micromd/potential"
)

// PairPotentialFunc selects the potential to use for a given ordered pair of
// particle indices, mirroring the original's *_pairwise_potential callback.
type PairPotentialFunc func(sys *particle.System, i, j int) potential.Pairwise

// TriplePotentialFunc selects the potential to use for a given ordered
// triple of particle indices.
type TriplePotentialFunc func(sys *particle.System, i, j, k int) potential.Triple

// FieldPotentialFunc selects the potential to use for a single particle
// interacting with a field (a surface or a point source).
type FieldPotentialFunc func(sys *particle.System, i int) potential.Pairwise

// Composite sums zero or more force fields into one. Grounded on
// forcefield.hpp's detail::sum_forcefield and composite_forcefield.hpp.
type Composite struct {
	components []particle.ForceField
}

// NewComposite builds a Composite from the given components, in the order
// their contributions will be summed.
func NewComposite(components ...particle.ForceField) *Composite {
	return &Composite{components: append([]particle.ForceField(nil), components...)}
}

// Add appends a component to the composite.
func (c *Composite) Add(ff particle.ForceField) {
	c.components = append(c.components, ff)
}

func (c *Composite) Energy(sys *particle.System) float64 {
	var sum float64
	for _, ff := range c.components {
		sum += ff.Energy(sys)
	}
	return sum
}

func (c *Composite) AccumulateForce(sys *particle.System, out []geom.Vector) {
	for _, ff := range c.components {
		ff.AccumulateForce(sys, out)
	}
}

func zeroIfNil(pot potential.Pairwise) potential.Pairwise {
	if pot == nil {
		return potential.Constant{}
	}
	return pot
}
