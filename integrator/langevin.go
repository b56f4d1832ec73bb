package integrator

import (
	"math"

	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
	"github.com/pthm-cable/micromd/prng"
	"github.com/pthm-cable/micromd/telemetry"
)

// Friction is the per-particle friction coefficient attribute consumed by
// SimulateLangevin, defaulting to zero (undamped) if never registered.
var Friction = particle.NewAttribute("friction", 0.0)

// LangevinConfig holds Langevin dynamics parameters. Grounded on
// langevin_dynamics_config.
type LangevinConfig struct {
	// Temperature of the environment in energy units. May be zero.
	Temperature float64

	// Timestep is the discretization step.
	Timestep float64

	// Steps is the number of steps to simulate.
	Steps int

	// Seed seeds the pseudo-random engine.
	Seed uint64

	// Callback, if set, is invoked with the 1-based step index after each
	// step completes.
	Callback func(step int)

	// Collector, if set, receives a diagnostic snapshot after each step.
	Collector *telemetry.Collector

	// Perf, if set, receives per-phase step timing.
	Perf *telemetry.PerfCollector
}

// SimulateLangevin advances sys under underdamped Langevin dynamics for
// config.Steps steps, in place, using the mass and friction particle
// attributes (Friction defaults to zero). This is the 6-step BAOAB scheme,
// grounded on langevin_dynamics.hpp.
func SimulateLangevin(sys *particle.System, config LangevinConfig) {
	particle.AddAttribute(sys, Friction)

	n := sys.ParticleCount()
	forces := make([]geom.Vector, n)

	normal := prng.NewNormal(prng.NewSFC64(config.Seed))
	timestep := config.Timestep

	forces = sys.ComputeForce(forces)

	for step := 1; step <= config.Steps; step++ {
		if config.Perf != nil {
			config.Perf.StartTick()
			config.Perf.StartPhase(telemetry.PhaseIntegration)
		}

		masses := sys.ViewMasses()
		frictions := particle.ViewAttribute(sys, Friction)
		positions := sys.ViewPositions()
		velocities := sys.ViewVelocities()

		for i := 0; i < n; i++ {
			// B: half-kick
			velocities[i] = velocities[i].Add(forces[i].Scale(0.5 * timestep / masses[i]))

			// A: half-drift
			positions[i] = positions[i].Add(velocities[i].Scale(0.5 * timestep))

			// O: Ornstein-Uhlenbeck friction + noise
			damping := math.Exp(-frictions[i] * timestep)
			agitation := 1 - damping*damping
			sigma := math.Sqrt(config.Temperature * agitation / masses[i])
			nx, ny, nz := normal.Sample3()

			velocities[i] = velocities[i].Scale(damping)
			velocities[i] = velocities[i].Add(geom.NewVector(sigma*nx, sigma*ny, sigma*nz))

			// A: half-drift
			positions[i] = positions[i].Add(velocities[i].Scale(0.5 * timestep))
		}

		if config.Perf != nil {
			config.Perf.StartPhase(telemetry.PhaseForceAccumulation)
		}

		forces = sys.ComputeForce(forces)

		if config.Perf != nil {
			config.Perf.StartPhase(telemetry.PhaseIntegration)
		}

		for i := 0; i < n; i++ {
			// B: half-kick
			velocities[i] = velocities[i].Add(forces[i].Scale(0.5 * timestep / masses[i]))
		}

		if config.Collector != nil {
			if config.Perf != nil {
				config.Perf.StartPhase(telemetry.PhaseDiagnostics)
			}
			potential := sys.ComputePotentialEnergy()
			kinetic := sys.ComputeKineticEnergy()
			config.Collector.Record(telemetry.Snapshot{
				Step:            step,
				PotentialEnergy: potential,
				KineticEnergy:   kinetic,
				TotalEnergy:     potential + kinetic,
				Timestep:        timestep,
			})
		}

		if config.Perf != nil {
			config.Perf.EndTick()
		}

		if config.Callback != nil {
			config.Callback(step)
		}
	}
}
