package geom

import "math"

// Box computes the shortest displacement between two points under a
// particular boundary condition. All three box types below satisfy this
// interface.
type Box interface {
	// ShortestDisplacement returns the displacement vector from q to p,
	// taking the box's periodicity into account.
	ShortestDisplacement(p, q Point) Vector
}

// OpenBox represents a system with no periodic boundaries.
type OpenBox struct {
	// ParticleCount is a hint used only to size the spatial hash; it does
	// not affect correctness.
	ParticleCount int
}

// ShortestDisplacement implements Box.
func (b OpenBox) ShortestDisplacement(p, q Point) Vector {
	return p.Sub(q)
}

// PeriodicBox represents a system periodic along all three axes.
type PeriodicBox struct {
	XPeriod, YPeriod, ZPeriod float64
}

// ShortestDisplacement implements Box.
func (b PeriodicBox) ShortestDisplacement(p, q Point) Vector {
	return NewVector(
		roundMod(p.X-q.X, b.XPeriod),
		roundMod(p.Y-q.Y, b.YPeriod),
		roundMod(p.Z-q.Z, b.ZPeriod),
	)
}

// XYPeriodicBox represents a system periodic along x and y, open along z.
type XYPeriodicBox struct {
	XPeriod, YPeriod float64

	// ZSpan and ParticleCount are hints used only to size the spatial hash.
	ZSpan         float64
	ParticleCount int
}

// ShortestDisplacement implements Box.
func (b XYPeriodicBox) ShortestDisplacement(p, q Point) Vector {
	return NewVector(
		roundMod(p.X-q.X, b.XPeriod),
		roundMod(p.Y-q.Y, b.YPeriod),
		p.Z-q.Z,
	)
}

// roundMod returns the zero-centered floating point remainder of x modulo
// period: x - round(x/period)*period, using round-half-to-even so that
// |result| <= period/2. A non-positive period disables wrapping on that
// axis (treated as open), matching an unconfigured/degenerate period.
func roundMod(x, period float64) float64 {
	if period <= 0 {
		return x
	}
	return x - math.RoundToEven(x/period)*period
}
