package spatial

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/micromd/geom"
)

// verletFactor is the spec-mandated ratio of the Verlet radius to the
// requested cutoff: verlet_radius = verletFactor * dcut. It minimizes the
// rebuild-cost function v^3/(v-1) at v = 1.5.
const verletFactor = 1.5

// approxEpsilon is the relative tolerance used to decide whether the box
// geometry or cutoff distance has changed since the last rebuild.
const approxEpsilon = 1e-6

// NeighborList caches the pair list produced by a Searcher across frames,
// rebuilding only when the box, cutoff, particle count, or a cached point's
// displacement since the last rebuild invalidates the cache (spec.md 4.6).
// A subset filter (see UpdateSubset) lets a force field restrict the list to
// a set of particle indices while still reporting pairs in global index
// space.
type NeighborList struct {
	built bool

	dcut         float64
	verletRadius float64
	box          geom.Box

	subset    []int // nil means identity (every particle participates)
	positions []geom.Point
	pairs     [][2]int
}

// Update refreshes the list against the full set of positions. It returns
// true if a rebuild happened.
func (nl *NeighborList) Update(positions []geom.Point, dcut float64, box geom.Box) bool {
	return nl.update(positions, nil, dcut, box)
}

// UpdateSubset refreshes the list restricted to the given indices into
// positions. Emitted pairs still reference indices into positions (i.e.
// global indices), not positions within the subset.
func (nl *NeighborList) UpdateSubset(positions []geom.Point, subset []int, dcut float64, box geom.Box) bool {
	return nl.update(positions, subset, dcut, box)
}

// Pairs returns the cached pair list. It may contain false positives within
// the Verlet shell, and pairs whose current separation exceeds dcut; callers
// must not assume every returned pair is still within dcut.
func (nl *NeighborList) Pairs() [][2]int {
	return nl.pairs
}

func (nl *NeighborList) update(allPositions []geom.Point, subset []int, dcut float64, box geom.Box) bool {
	local := gather(allPositions, subset)

	if !nl.needsRebuild(local, subset, dcut, box) {
		return false
	}

	nl.rebuild(local, subset, dcut, box)
	return true
}

func gather(all []geom.Point, subset []int) []geom.Point {
	if subset == nil {
		return all
	}
	out := make([]geom.Point, len(subset))
	for i, idx := range subset {
		out[i] = all[idx]
	}
	return out
}

func (nl *NeighborList) needsRebuild(local []geom.Point, subset []int, dcut float64, box geom.Box) bool {
	if !nl.built {
		return true
	}
	if !approxEqualBox(nl.box, box) || !floats.EqualWithinRel(nl.dcut, dcut, approxEpsilon) {
		return true
	}
	if len(nl.positions) != len(local) {
		return true
	}
	skin := (nl.verletRadius - nl.dcut) / 2
	if skin <= 0 {
		return true
	}
	for i, p := range local {
		if box.ShortestDisplacement(p, nl.positions[i]).Norm() > skin {
			return true
		}
	}
	return false
}

func (nl *NeighborList) rebuild(local []geom.Point, subset []int, dcut float64, box geom.Box) {
	verletRadius := verletFactor * dcut

	searcher := NewSearcher(box, verletRadius, len(local))
	searcher.Ingest(local)

	localPairs := searcher.Search(nil)

	pairs := make([][2]int, len(localPairs))
	if subset == nil {
		copy(pairs, localPairs)
	} else {
		for k, pr := range localPairs {
			pairs[k] = [2]int{subset[pr[0]], subset[pr[1]]}
		}
	}

	nl.built = true
	nl.dcut = dcut
	nl.verletRadius = verletRadius
	nl.box = box
	nl.subset = subset
	nl.positions = append(nl.positions[:0], local...)
	nl.pairs = pairs
}

// approxEqualBox reports whether two boxes describe the same geometry to
// within approxEpsilon. Boxes of different kinds are never equal.
func approxEqualBox(a, b geom.Box) bool {
	switch av := a.(type) {
	case geom.OpenBox:
		_, ok := b.(geom.OpenBox)
		return ok
	case geom.PeriodicBox:
		bv, ok := b.(geom.PeriodicBox)
		if !ok {
			return false
		}
		return approxEqualScalar(av.XPeriod, bv.XPeriod) &&
			approxEqualScalar(av.YPeriod, bv.YPeriod) &&
			approxEqualScalar(av.ZPeriod, bv.ZPeriod)
	case geom.XYPeriodicBox:
		bv, ok := b.(geom.XYPeriodicBox)
		if !ok {
			return false
		}
		return approxEqualScalar(av.XPeriod, bv.XPeriod) &&
			approxEqualScalar(av.YPeriod, bv.YPeriod)
	default:
		return a == b
	}
}

func approxEqualScalar(x, y float64) bool {
	if x == y {
		return true
	}
	if math.Abs(x) < approxEpsilon && math.Abs(y) < approxEpsilon {
		return true
	}
	return floats.EqualWithinRel(x, y, approxEpsilon)
}
