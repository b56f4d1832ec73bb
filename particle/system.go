package particle

import "github.com/pthm-cable/micromd/geom"

// ForceField is anything that contributes energy and force to a System. It
// is defined here, rather than in package forcefield, because System needs
// it to aggregate registered force fields; concrete implementations live in
// package forcefield and import particle, not the other way around.
//
// Grounded on _examples/original_source/include/md/forcefield.hpp, whose
// forcefield base class exposes the same two operations (compute_energy,
// compute_force).
type ForceField interface {
	// Energy returns this force field's contribution to the system's
	// potential energy.
	Energy(sys *System) float64

	// AccumulateForce adds this force field's contribution into out, which
	// already holds whatever the caller has accumulated so far. It must
	// never overwrite out's existing entries.
	AccumulateForce(sys *System, out []geom.Vector)
}

// ParticleData is the intrinsic per-particle state accepted by AddParticle.
// Use DefaultParticleData and override fields, mirroring the original's
// basic_particle_data default member initializers
// (_examples/original_source/include/md/system.hpp).
type ParticleData struct {
	Mass     float64
	Mobility float64
	Position geom.Point
	Velocity geom.Vector
}

// DefaultParticleData returns particle data with mass and mobility set to
// 1, and position/velocity at the origin, per spec.md 3.
func DefaultParticleData() ParticleData {
	return ParticleData{Mass: 1, Mobility: 1}
}

// System owns the particle attribute table and the registered force fields
// that act on it. Grounded on
// _examples/original_source/include/md/system.hpp.
type System struct {
	attrs *Table

	mass     Attribute[float64]
	mobility Attribute[float64]
	position Attribute[geom.Point]
	velocity Attribute[geom.Vector]

	forcefields []ForceField
}

// NewSystem creates an empty system with the four intrinsic attributes
// already registered.
func NewSystem() *System {
	s := &System{
		attrs:    NewTable(),
		mass:     NewAttribute("mass", 1.0),
		mobility: NewAttribute("mobility", 1.0),
		position: NewAttribute("position", geom.Point{}),
		velocity: NewAttribute("velocity", geom.Vector{}),
	}
	Require(s.attrs, s.mass)
	Require(s.attrs, s.mobility)
	Require(s.attrs, s.position)
	Require(s.attrs, s.velocity)
	return s
}

// ParticleCount returns the number of particles in the system.
func (s *System) ParticleCount() int {
	return s.attrs.Size()
}

// AddParticle appends one particle and returns its index. Every attribute
// column (intrinsic or user-registered) grows by one element; any
// user-registered column receives its own default, since data only carries
// the four intrinsic fields.
func (s *System) AddParticle(data ParticleData) int {
	idx := s.attrs.Size()
	s.attrs.Resize(idx + 1)
	View(s.attrs, s.mass)[idx] = data.Mass
	View(s.attrs, s.mobility)[idx] = data.Mobility
	View(s.attrs, s.position)[idx] = data.Position
	View(s.attrs, s.velocity)[idx] = data.Velocity
	return idx
}

// AddAttribute registers attr on the system's table, if not already
// present. Existing particles get attr's default value.
func AddAttribute[T any](s *System, attr Attribute[T]) {
	Require(s.attrs, attr)
}

// ViewAttribute returns a mutable dense view of attr's column. attr must
// already be registered (an intrinsic attribute, or one passed to
// AddAttribute), otherwise this panics.
func ViewAttribute[T any](s *System, attr Attribute[T]) []T {
	return View(s.attrs, attr)
}

// ViewMasses returns the dense mass column.
func (s *System) ViewMasses() []float64 { return View(s.attrs, s.mass) }

// ViewMobilities returns the dense mobility column.
func (s *System) ViewMobilities() []float64 { return View(s.attrs, s.mobility) }

// ViewPositions returns the dense position column.
func (s *System) ViewPositions() []geom.Point { return View(s.attrs, s.position) }

// ViewVelocities returns the dense velocity column.
func (s *System) ViewVelocities() []geom.Vector { return View(s.attrs, s.velocity) }

// AddForceField registers a force field to be included in future energy and
// force computations, in registration order.
func (s *System) AddForceField(ff ForceField) {
	s.forcefields = append(s.forcefields, ff)
}

// ComputeKineticEnergy returns (1/2) sum(m_i |v_i|^2) over all particles.
func (s *System) ComputeKineticEnergy() float64 {
	masses := s.ViewMasses()
	velocities := s.ViewVelocities()
	var energy float64
	for i := range masses {
		energy += 0.5 * masses[i] * velocities[i].SquaredNorm()
	}
	return energy
}

// ComputePotentialEnergy sums Energy() over every registered force field, in
// registration order.
func (s *System) ComputePotentialEnergy() float64 {
	var energy float64
	for _, ff := range s.forcefields {
		energy += ff.Energy(s)
	}
	return energy
}

// ComputeEnergy returns kinetic plus potential energy.
func (s *System) ComputeEnergy() float64 {
	return s.ComputeKineticEnergy() + s.ComputePotentialEnergy()
}

// ComputeForce zeros out (resizing it to ParticleCount if necessary) and
// then accumulates every registered force field's contribution into it, in
// registration order. Grounded on system.hpp's compute_force, which also
// zero-fills before delegating to each force field.
func (s *System) ComputeForce(out []geom.Vector) []geom.Vector {
	n := s.ParticleCount()
	if cap(out) < n {
		out = make([]geom.Vector, n)
	} else {
		out = out[:n]
		for i := range out {
			out[i] = geom.Vector{}
		}
	}
	for _, ff := range s.forcefields {
		ff.AccumulateForce(s, out)
	}
	return out
}
