package forcefield

import (
	"math"

	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
	"github.com/pthm-cable/micromd/potential"
)

// PlaneSurface computes field interaction between particles and an infinite
// plane, applying Inward to particles on the negative side of the normal
// and Outward to particles on the positive side. Grounded on
// plane_surface_forcefield.hpp.
type PlaneSurface struct {
	Reference geom.Point
	Normal    geom.Vector
	Inward    potential.Pairwise
	Outward   potential.Pairwise

	// ReactionForce is the sum of the normal reaction force on the surface
	// computed by the most recent AccumulateForce call.
	ReactionForce float64
}

func (f *PlaneSurface) displacement(p geom.Point) geom.Vector {
	return p.Sub(f.Reference).Project(f.Normal)
}

func (f *PlaneSurface) potentialFor(r geom.Vector) potential.Pairwise {
	if r.Dot(f.Normal) < 0 {
		return zeroIfNil(f.Inward)
	}
	return zeroIfNil(f.Outward)
}

func (f *PlaneSurface) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64
	for _, p := range positions {
		r := f.displacement(p)
		sum += f.potentialFor(r).Energy(r)
	}
	return sum
}

func (f *PlaneSurface) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()
	normal := f.Normal.Normalize()
	f.ReactionForce = 0
	for i, p := range positions {
		r := f.displacement(p)
		force := f.potentialFor(r).Force(r)
		out[i] = out[i].Add(force)
		f.ReactionForce -= force.Dot(normal)
	}
}

// Sphere is a sphere in 3-D space, used by SphereSurface. Grounded on
// sphere_surface_forcefield.hpp's md::sphere.
type Sphere struct {
	Center geom.Point
	Radius float64
}

// SphereSurface computes field interaction between particles and a
// spherical surface, applying Inward inside the sphere and Outward
// outside. The radial displacement is measured along the line from the
// sphere center to the particle, to its projection onto the surface.
// Grounded on sphere_surface_forcefield.hpp.
type SphereSurface struct {
	Sphere  Sphere
	Inward  potential.Pairwise
	Outward potential.Pairwise

	// ReactionForce is the sum of the normal reaction force on the surface
	// computed by the most recent AccumulateForce call.
	ReactionForce float64
}

func (f *SphereSurface) Energy(sys *particle.System) float64 {
	center := f.Sphere.Center
	radius := f.Sphere.Radius
	radius2 := radius * radius

	positions := sys.ViewPositions()
	var sum float64

	for _, p := range positions {
		r := p.Sub(center)
		r2 := r.SquaredNorm()
		if r2 == 0 {
			continue
		}
		r1 := math.Sqrt(r2)
		scale := radius / r1
		s := r.Sub(r.Scale(scale))

		if r2 < radius2 {
			sum += zeroIfNil(f.Inward).Energy(s)
		} else {
			sum += zeroIfNil(f.Outward).Energy(s)
		}
	}
	return sum
}

func (f *SphereSurface) AccumulateForce(sys *particle.System, out []geom.Vector) {
	center := f.Sphere.Center
	radius := f.Sphere.Radius
	radius2 := radius * radius

	positions := sys.ViewPositions()
	f.ReactionForce = 0

	for i, p := range positions {
		r := p.Sub(center)
		r2 := r.SquaredNorm()
		if r2 == 0 {
			continue
		}
		r1 := math.Sqrt(r2)
		scale := radius / r1
		s := r.Sub(r.Scale(scale))

		var force geom.Vector
		if r2 < radius2 {
			force = zeroIfNil(f.Inward).Force(s)
		} else {
			force = zeroIfNil(f.Outward).Force(s)
		}

		aniso := force.Project(r).Sub(force).Scale(scale)
		out[i] = out[i].Add(force).Add(aniso)
		f.ReactionForce -= force.Dot(r) / r.Norm()
	}
}

// Ellipsoid is a triaxial ellipsoid in 3-D space, used by EllipsoidSurface.
// Grounded on ellipsoid_surface_forcefield.hpp's md::ellipsoid.
type Ellipsoid struct {
	Center                            geom.Point
	SemiaxisX, SemiaxisY, SemiaxisZ float64
}

type ellipsoidEval struct {
	undefined bool
	delta     geom.Vector
	strain    geom.Vector
	implicit  float64
}

func evaluateEllipsoidPoint(e Ellipsoid, pt geom.Point) ellipsoidEval {
	quadform := geom.NewVector(
		1/(e.SemiaxisX*e.SemiaxisX),
		1/(e.SemiaxisY*e.SemiaxisY),
		1/(e.SemiaxisZ*e.SemiaxisZ),
	)
	radial := pt.Sub(e.Center)
	dual := quadform.Hadamard(radial)

	if dual.SquaredNorm() == 0 {
		return ellipsoidEval{undefined: true}
	}

	implicit := dual.Dot(radial) - 1
	scale := implicit / (2 * dual.SquaredNorm())

	return ellipsoidEval{
		delta:    dual.Scale(scale),
		strain:   quadform.Scale(scale),
		implicit: implicit,
	}
}

// EllipsoidSurface computes an approximate short-range field interaction
// between particles and an ellipsoidal surface; the approximation is
// inaccurate near the ellipsoid's center. Grounded on
// ellipsoid_surface_forcefield.hpp.
type EllipsoidSurface struct {
	Ellipsoid Ellipsoid
	Inward    potential.Pairwise
	Outward   potential.Pairwise
}

func (f *EllipsoidSurface) Energy(sys *particle.System) float64 {
	positions := sys.ViewPositions()
	var sum float64

	for _, p := range positions {
		ev := evaluateEllipsoidPoint(f.Ellipsoid, p)
		if ev.undefined {
			continue
		}
		if ev.implicit < 0 {
			sum += zeroIfNil(f.Inward).Energy(ev.delta)
		} else {
			sum += zeroIfNil(f.Outward).Energy(ev.delta)
		}
	}
	return sum
}

func (f *EllipsoidSurface) AccumulateForce(sys *particle.System, out []geom.Vector) {
	positions := sys.ViewPositions()

	for i, p := range positions {
		ev := evaluateEllipsoidPoint(f.Ellipsoid, p)
		if ev.undefined {
			continue
		}

		var basicForce geom.Vector
		if ev.implicit < 0 {
			basicForce = zeroIfNil(f.Inward).Force(ev.delta)
		} else {
			basicForce = zeroIfNil(f.Outward).Force(ev.delta)
		}

		isoForce := basicForce.Project(ev.delta)
		anisoForce := basicForce.Sub(isoForce)
		strainForce := anisoForce.Sub(isoForce).Hadamard(ev.strain)
		force := isoForce.Add(strainForce)

		out[i] = out[i].Add(force)
	}
}
