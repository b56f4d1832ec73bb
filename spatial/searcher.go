package spatial

import (
	"math"

	"github.com/pthm-cable/micromd/geom"
)

// member is a point tagged with its index in the caller's point slice.
type member struct {
	index int
	point geom.Point
}

// bucket is one cell of the spatial hash: its members plus its precomputed
// neighbor buckets. complete holds all 3x3x3 adjoining buckets (including
// self); directed holds only the subset with bucket index >= self, which is
// enough to enumerate every unordered pair exactly once.
type bucket struct {
	members  []member
	complete []int
	directed []int
}

type schemeKind int

const (
	schemeHash schemeKind = iota
	schemeGrid
)

// Searcher enumerates all index pairs within a cutoff distance, and can
// answer point queries against the same bucket layout. It binds an open box
// to a linear hash (linear_hash.hpp / neighbor_searcher.hpp in the original
// source) or a periodic box to a direct x + Nx*y grid index, per spec.md 4.5.
type Searcher struct {
	dcut    float64
	box     geom.Box
	kind    schemeKind
	hash    linearHash
	invDcut float64

	nx, ny           int
	xPeriod, yPeriod float64

	buckets []bucket
}

// NewSearcher builds a searcher for the given box, cutoff distance and an
// approximate particle count used only to size the open-box hash table.
func NewSearcher(box geom.Box, dcut float64, particleCount int) *Searcher {
	s := &Searcher{dcut: dcut, box: box}

	switch b := box.(type) {
	case geom.PeriodicBox:
		s.kind = schemeGrid
		s.xPeriod, s.yPeriod = b.XPeriod, b.YPeriod
		s.nx = gridBins(b.XPeriod, dcut)
		s.ny = gridBins(b.YPeriod, dcut)
	case geom.XYPeriodicBox:
		s.kind = schemeGrid
		s.xPeriod, s.yPeriod = b.XPeriod, b.YPeriod
		s.nx = gridBins(b.XPeriod, dcut)
		s.ny = gridBins(b.YPeriod, dcut)
	default:
		s.kind = schemeHash
		s.hash = newLinearHash(particleCount)
		s.invDcut = 1 / dcut
	}

	s.buildAdjacency()
	return s
}

func gridBins(period, dcut float64) int {
	n := int(period / dcut)
	if n < 1 {
		n = 1
	}
	return n
}

// buildAdjacency precomputes, for every bucket, the complete and directed
// neighbor-bucket lists.
func (s *Searcher) buildAdjacency() {
	switch s.kind {
	case schemeGrid:
		s.buckets = make([]bucket, s.nx*s.ny)
		for cy := 0; cy < s.ny; cy++ {
			for cx := 0; cx < s.nx; cx++ {
				center := cx + s.nx*cy
				seen := map[int]struct{}{}
				var complete []int
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx2 := floorMod(cx+dx, s.nx)
						ny2 := floorMod(cy+dy, s.ny)
						idx := nx2 + s.nx*ny2
						if _, ok := seen[idx]; ok {
							continue
						}
						seen[idx] = struct{}{}
						complete = append(complete, idx)
					}
				}
				s.buckets[center].complete = complete
				for _, idx := range complete {
					if idx >= center {
						s.buckets[center].directed = append(s.buckets[center].directed, idx)
					}
				}
			}
		}

	case schemeHash:
		m := s.hash.modulus
		s.buckets = make([]bucket, m)

		deltas := []uint32{m - 1, m, m + 1}
		hashDeltas := map[uint32]struct{}{}
		for _, dx := range deltas {
			for _, dy := range deltas {
				for _, dz := range deltas {
					hashDeltas[s.hash.hash(dx, dy, dz)] = struct{}{}
				}
			}
		}

		for center := uint32(0); center < m; center++ {
			seen := map[int]struct{}{}
			var complete []int
			for delta := range hashDeltas {
				neighbor := int((center + delta) % m)
				if _, ok := seen[neighbor]; ok {
					continue
				}
				seen[neighbor] = struct{}{}
				complete = append(complete, neighbor)
			}
			s.buckets[center].complete = complete
			for _, idx := range complete {
				if idx >= int(center) {
					s.buckets[center].directed = append(s.buckets[center].directed, idx)
				}
			}
		}
	}
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func (s *Searcher) locateBucket(p geom.Point) int {
	switch s.kind {
	case schemeGrid:
		cx := floorMod(int(floorDiv(p.X, s.xPeriod/float64(s.nx))), s.nx)
		cy := floorMod(int(floorDiv(p.Y, s.yPeriod/float64(s.ny))), s.ny)
		return cx + s.nx*cy
	default:
		return int(s.hash.locateBucket(p, s.invDcut))
	}
}

func floorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

// Ingest assigns points to buckets, replacing any previous assignment.
func (s *Searcher) Ingest(points []geom.Point) {
	for i := range s.buckets {
		s.buckets[i].members = s.buckets[i].members[:0]
	}
	for idx, p := range points {
		b := s.locateBucket(p)
		s.buckets[b].members = append(s.buckets[b].members, member{index: idx, point: p})
	}
}

// Search appends every index pair (i, j) with i < j whose points lie within
// dcut of each other to dst, and returns the updated slice. Duplicate pairs
// are never emitted; false positives within the Verlet shell may still
// appear upstream in NeighborList, not here.
func (s *Searcher) Search(dst [][2]int) [][2]int {
	dcut2 := s.dcut * s.dcut
	for ci := range s.buckets {
		center := &s.buckets[ci]
		for _, ni := range center.directed {
			dst = s.searchAmong(center, &s.buckets[ni], dcut2, dst)
		}
	}
	return dst
}

func (s *Searcher) searchAmong(a, b *bucket, dcut2 float64, dst [][2]int) [][2]int {
	for _, mj := range b.members {
		for _, mi := range a.members {
			if mi.index == mj.index {
				// Reached the mirror element: a and b are the same bucket
				// and every remaining pair has already been emitted.
				break
			}
			if s.box.ShortestDisplacement(mi.point, mj.point).SquaredNorm() > dcut2 {
				continue
			}
			i, j := mi.index, mj.index
			if i > j {
				i, j = j, i
			}
			dst = append(dst, [2]int{i, j})
		}
	}
	return dst
}

// Query appends to dst the indices of every member within dcut of point,
// and returns the updated slice.
func (s *Searcher) Query(point geom.Point, dst []int) []int {
	dcut2 := s.dcut * s.dcut
	center := s.locateBucket(point)
	for _, ni := range s.buckets[center].complete {
		for _, m := range s.buckets[ni].members {
			if s.box.ShortestDisplacement(point, m.point).SquaredNorm() <= dcut2 {
				dst = append(dst, m.index)
			}
		}
	}
	return dst
}
