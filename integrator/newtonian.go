package integrator

import (
	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
	"github.com/pthm-cable/micromd/telemetry"
)

// NewtonianConfig holds Newtonian dynamics parameters. Grounded on
// newtonian_dynamics_config.
type NewtonianConfig struct {
	// Timestep is the discretization step.
	Timestep float64

	// Steps is the number of steps to simulate.
	Steps int

	// Callback, if set, is invoked with the 1-based step index after each
	// step completes.
	Callback func(step int)

	// Collector, if set, receives a diagnostic snapshot after each step.
	Collector *telemetry.Collector

	// Perf, if set, receives per-phase step timing.
	Perf *telemetry.PerfCollector
}

// SimulateNewtonian advances sys under deterministic Newtonian dynamics for
// config.Steps steps, in place. This is the velocity-Verlet scheme,
// grounded on newtonian_dynamics.hpp. Force from the previous step is zero
// on the first call.
func SimulateNewtonian(sys *particle.System, config NewtonianConfig) {
	n := sys.ParticleCount()
	forces := make([]geom.Vector, n)
	timestep := config.Timestep

	for step := 1; step <= config.Steps; step++ {
		if config.Perf != nil {
			config.Perf.StartTick()
			config.Perf.StartPhase(telemetry.PhaseIntegration)
		}

		masses := sys.ViewMasses()
		positions := sys.ViewPositions()
		velocities := sys.ViewVelocities()

		for i := 0; i < n; i++ {
			velocities[i] = velocities[i].Add(forces[i].Scale(timestep / (2 * masses[i])))
			positions[i] = positions[i].Add(velocities[i].Scale(timestep))
		}

		if config.Perf != nil {
			config.Perf.StartPhase(telemetry.PhaseForceAccumulation)
		}

		forces = sys.ComputeForce(forces)

		if config.Perf != nil {
			config.Perf.StartPhase(telemetry.PhaseIntegration)
		}

		for i := 0; i < n; i++ {
			velocities[i] = velocities[i].Add(forces[i].Scale(timestep / (2 * masses[i])))
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
