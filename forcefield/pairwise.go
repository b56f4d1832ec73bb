package forcefield

import (
	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
)

// BruteForcePairwise computes interactions between every pair of particles
// in the system. Grounded on bruteforce_pairwise_forcefield.hpp.
type BruteForcePairwise struct {
	Potential PairPotentialFunc
}

func (f BruteForcePairwise) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64
	for j := range positions {
		for i := 0; i < j; i++ {
			r := positions[i].Sub(positions[j])
			sum += f.Potential(sys, i, j).Energy(r)
		}
	}
	return sum
}

func (f BruteForcePairwise) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()
	for j := range positions {
		for i := 0; i < j; i++ {
			r := positions[i].Sub(positions[j])
			force := f.Potential(sys, i, j).Force(r)
			out[i] = out[i].Add(force)
			out[j] = out[j].Sub(force)
		}
	}
}

// BondedPairwise computes interactions between an explicitly registered set
// of particle pairs. Grounded on bonded_pairwise_forcefield.hpp.
type BondedPairwise struct {
	Potential PairPotentialFunc
	pairs     [][2]int
}

// AddBondedPair registers (i, j) as an interacting pair.
func (f *BondedPairwise) AddBondedPair(i, j int) *BondedPairwise {
	f.pairs = append(f.pairs, [2]int{i, j})
	return f
}

// AddBondedRange registers every adjacent pair in the half-open range
// [start, end) as interacting: (start,start+1), (start+1,start+2), ...
func (f *BondedPairwise) AddBondedRange(start, end int) *BondedPairwise {
	for i := start; i+1 < end; i++ {
		f.pairs = append(f.pairs, [2]int{i, i + 1})
	}
	return f
}

func (f *BondedPairwise) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64
	for _, pair := range f.pairs {
		i, j := pair[0], pair[1]
		r := positions[i].Sub(positions[j])
		sum += f.Potential(sys, i, j).Energy(r)
	}
	return sum
}

func (f *BondedPairwise) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()
	for _, pair := range f.pairs {
		i, j := pair[0], pair[1]
		r := positions[i].Sub(positions[j])
		force := f.Potential(sys, i, j).Force(r)
		out[i] = out[i].Add(force)
		out[j] = out[j].Sub(force)
	}
}

// SequentialPairwise computes interactions between every consecutive pair
// of particles within registered segments. Grounded on
// sequential_pair_forcefield.hpp.
type SequentialPairwise struct {
	Potential PairPotentialFunc
	segments  [][2]int
}

// AddSegment marks every adjacent pair in the inclusive range [first, last]
// as interacting.
func (f *SequentialPairwise) AddSegment(first, last int) *SequentialPairwise {
	f.segments = append(f.segments, [2]int{first, last})
	return f
}

func (f *SequentialPairwise) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64
	for _, seg := range f.segments {
		for i := seg[0]; i < seg[1]; i++ {
			j := i + 1
			r := positions[i].Sub(positions[j])
			sum += f.Potential(sys, i, j).Energy(r)
		}
	}
	return sum
}

func (f *SequentialPairwise) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()
	for _, seg := range f.segments {
		for i := seg[0]; i < seg[1]; i++ {
			j := i + 1
			r := positions[i].Sub(positions[j])
			force := f.Potential(sys, i, j).Force(r)
			out[i] = out[i].Add(force)
			out[j] = out[j].Sub(force)
		}
	}
}
