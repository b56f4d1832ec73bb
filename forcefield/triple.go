package forcefield

import (
	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
)

// BondedTriple computes interactions among an explicitly registered set of
// particle triples. Grounded on bonded_triplewise_forcefield.hpp.
type BondedTriple struct {
	Potential TriplePotentialFunc
	triples   [][3]int
}

// AddBondedTriple registers (i, j, k) as an interacting triple.
func (f *BondedTriple) AddBondedTriple(i, j, k int) *BondedTriple {
	f.triples = append(f.triples, [3]int{i, j, k})
	return f
}

// AddBondedRange registers every adjacent triple in the half-open range
// [start, end) as interacting.
func (f *BondedTriple) AddBondedRange(start, end int) *BondedTriple {
	for i := start; i+2 < end; i++ {
		f.triples = append(f.triples, [3]int{i, i + 1, i + 2})
	}
	return f
}

func (f *BondedTriple) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64
	for _, t := range f.triples {
		i, j, k := t[0], t[1], t[2]
		rij := positions[i].Sub(positions[j])
		rjk := positions[j].Sub(positions[k])
		sum += f.Potential(sys, i, j, k).Energy(rij, rjk)
	}
	return sum
}

func (f *BondedTriple) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()
	for _, t := range f.triples {
		i, j, k := t[0], t[1], t[2]
		rij := positions[i].Sub(positions[j])
		rjk := positions[j].Sub(positions[k])
		fi, fj, fk := f.Potential(sys, i, j, k).Force(rij, rjk)
		out[i] = out[i].Add(fi)
		out[j] = out[j].Add(fj)
		out[k] = out[k].Add(fk)
	}
}

// SequentialTriple computes interactions among every consecutive triple of
// particles within registered segments. Grounded on
// sequential_triple_forcefield.hpp.
type SequentialTriple struct {
	Potential TriplePotentialFunc
	segments  [][2]int
}

// AddSegment marks every consecutive triple in the inclusive range
// [first, last] as interacting.
func (f *SequentialTriple) AddSegment(first, last int) *SequentialTriple {
	f.segments = append(f.segments, [2]int{first, last})
	return f
}

func (f *SequentialTriple) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64
	for _, seg := range f.segments {
		for i := seg[0]; i < seg[1]-1; i++ {
			j, k := i+1, i+2
			rij := positions[i].Sub(positions[j])
			rjk := positions[j].Sub(positions[k])
			sum += f.Potential(sys, i, j, k).Energy(rij, rjk)
		}
	}
	return sum
}

func (f *SequentialTriple) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()
	for _, seg := range f.segments {
		for i := seg[0]; i < seg[1]-1; i++ {
			j, k := i+1, i+2
			rij := positions[i].Sub(positions[j])
			rjk := positions[j].Sub(positions[k])
			fi, fj, fk := f.Potential(sys, i, j, k).Force(rij, rjk)
			out[i] = out[i].Add(fi)
			out[j] = out[j].Add(fj)
			out[k] = out[k].Add(fk)
		}
	}
}
