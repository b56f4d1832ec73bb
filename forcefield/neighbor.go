package forcefield

import (
	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
	"github.com/pthm-cable/micromd/spatial"
	"github.com/pthm-cable/micromd/telemetry"
)

// NeighborPairwise computes short-range interactions between every pair of
// particles closer than NeighborDistance, using a cached Verlet neighbor
// list rather than an all-pairs scan. Every pair in the cached list is
// passed to the potential, including Verlet-shell pairs that are further
// apart than NeighborDistance. Grounded on
// neighbor_pair_forcefield_v2.hpp.
//
// By default every particle participates; call SetNeighborTargets to
// restrict the search to a subset, mirroring the subset overload of
// md::system::add_forcefield described in spec.md 9.
type NeighborPairwise struct {
	Potential        PairPotentialFunc
	Box              geom.Box
	NeighborDistance float64

	// Perf, if set, receives a PhaseNeighborRebuild timing around the
	// Verlet list rebuild, distinct from the surrounding force accumulation
	// an owning integrator times around the whole ComputeForce call.
	Perf *telemetry.PerfCollector

	targets []int
	list    spatial.NeighborList
}

// SetNeighborTargets restricts the neighbor search to the given particle
// indices. Passing nil (the zero value) searches every particle.
func (f *NeighborPairwise) SetNeighborTargets(targets []int) {
	f.targets = targets
}

func (f *NeighborPairwise) refresh(sys *particle.System) {
	if f.Perf != nil {
		f.Perf.StartPhase(telemetry.PhaseNeighborRebuild)
	}

	positions := sys.ViewPositions()
	if f.targets == nil {
		f.list.Update(positions, f.NeighborDistance, f.Box)
	} else {
		f.list.UpdateSubset(positions, f.targets, f.NeighborDistance, f.Box)
	}

	if f.Perf != nil {
		f.Perf.StartPhase(telemetry.PhaseForceAccumulation)
	}
}

func (f *NeighborPairwise) Energy(sys *particle.System) float64 {
	f.refresh(sys)
	positions := sys.ViewPositions()

	var sum float64
	for _, pair := range f.list.Pairs() {
		i, j := pair[0], pair[1]
		r := f.Box.ShortestDisplacement(positions[i], positions[j])
		sum += f.Potential(sys, i, j).Energy(r)
	}
	return sum
}

func (f *NeighborPairwise) AccumulateForce(sys *particle.System, out []geom.Vector) {
	f.refresh(sys)
	positions := sys.ViewPositions()

	for _, pair := range f.list.Pairs() {
		i, j := pair[0], pair[1]
		r := f.Box.ShortestDisplacement(positions[i], positions[j])
		force := f.Potential(sys, i, j).Force(r)
		out[i] = out[i].Add(force)
		out[j] = out[j].Sub(force)
	}
}

// InterSubsystemNeighborPairwise computes short-range interactions between
// particles of two named subsystems that are closer than NeighborDistance.
// As with NeighborPairwise, cross pairs from the cached Verlet list that are
// further apart than NeighborDistance are passed to the potential as well.
// Grounded on inter_subsystem_neighbor_pair_forcefield.hpp.
//
// What happens when an index appears in both Subsystem1 and Subsystem2 is
// left undefined, matching the open question recorded in SPEC_FULL.md: a
// pair where both indices satisfy both memberships may or may not be
// reported, and callers must not rely on either outcome.
type InterSubsystemNeighborPairwise struct {
	Potential              PairPotentialFunc
	Box                    geom.Box
	NeighborDistance       float64
	Subsystem1, Subsystem2 []int

	// Perf, if set, receives a PhaseNeighborRebuild timing around the
	// Verlet list rebuild, matching NeighborPairwise.Perf.
	Perf *telemetry.PerfCollector

	list spatial.NeighborList
}

func (f *InterSubsystemNeighborPairwise) crossPairs(sys *particle.System) [][2]int {
	if f.Perf != nil {
		f.Perf.StartPhase(telemetry.PhaseNeighborRebuild)
	}

	positions := sys.ViewPositions()

	union := make([]int, 0, len(f.Subsystem1)+len(f.Subsystem2))
	union = append(union, f.Subsystem1...)
	union = append(union, f.Subsystem2...)
	f.list.UpdateSubset(positions, union, f.NeighborDistance, f.Box)

	if f.Perf != nil {
		f.Perf.StartPhase(telemetry.PhaseForceAccumulation)
	}

	in1 := make(map[int]bool, len(f.Subsystem1))
	for _, idx := range f.Subsystem1 {
		in1[idx] = true
	}
	in2 := make(map[int]bool, len(f.Subsystem2))
	for _, idx := range f.Subsystem2 {
		in2[idx] = true
	}

	var cross [][2]int
	for _, pair := range f.list.Pairs() {
		i, j := pair[0], pair[1]
		if (in1[i] && in2[j]) || (in2[i] && in1[j]) {
			cross = append(cross, pair)
		}
	}
	return cross
}

func (f *InterSubsystemNeighborPairwise) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()

	var sum float64
	for _, pair := range f.crossPairs(sys) {
		i, j := pair[0], pair[1]
		r := f.Box.ShortestDisplacement(positions[i], positions[j])
		sum += f.Potential(sys, i, j).Energy(r)
	}
	return sum
}

func (f *InterSubsystemNeighborPairwise) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()

	for _, pair := range f.crossPairs(sys) {
		i, j := pair[0], pair[1]
		r := f.Box.ShortestDisplacement(positions[i], positions[j])
		force := f.Potential(sys, i, j).Force(r)
		out[i] = out[i].Add(force)
		out[j] = out[j].Sub(force)
	}
}
