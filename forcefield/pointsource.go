package forcefield

import (
	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
)

// PointSource computes field interaction between particles and a fixed
// source point, using Potential to select the field potential for each
// particle. Grounded on point_source_forcefield.hpp.
type PointSource struct {
	Source    geom.Point
	Potential FieldPotentialFunc
}

func (f *PointSource) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64
	for i, p := range positions {
		r := p.Sub(f.Source)
		sum += f.Potential(sys, i).Energy(r)
	}
	return sum
}

func (f *PointSource) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()
	for i, p := range positions {
		r := p.Sub(f.Source)
		out[i] = out[i].Add(f.Potential(sys, i).Force(r))
	}
}
