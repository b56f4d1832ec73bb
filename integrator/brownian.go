// Package integrator provides the three time-integration schemes: Brownian
// (overdamped), Langevin (underdamped BAOAB), and Newtonian (velocity
// Verlet). Grounded on
// _examples/original_source/include/md/simulation/{brownian,langevin,
// newtonian}_dynamics.hpp and detail/brownian_{timestepper,simulator}.hpp.
package integrator

import (
	"math"

	"github.com/pthm-cable/micromd/geom"
	"github.com/pthm-cable/micromd/particle"
	"github.com/pthm-cable/micromd/prng"
	"github.com/pthm-cable/micromd/telemetry"
)

// randomWalkFactor is the constant relating mean-squared Brownian
// displacement to variance, used by the adaptive timestep solver.
const randomWalkFactor = 2.55

// adaptiveEpsilon guards the quadratic solver against catastrophic
// cancellation when the drift term a is negligible relative to the
// diffusive term b.
const adaptiveEpsilon = 1e-6

// BrownianConfig holds Brownian dynamics parameters. Grounded on
// brownian_dynamics_config.
type BrownianConfig struct {
	// Temperature of the environment in energy units. May be zero.
	Temperature float64

	// Timestep is the (maximum, if Spacestep is set) discretization step.
	Timestep float64

	// Spacestep, if nonzero, switches to an adaptive timestep that bounds
	// the expected displacement of every particle to this distance.
	Spacestep float64

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

// solveBrownianTimestep estimates the time for a Brownian particle to travel
// distance, given its mobility, squared force, and the environment
// temperature. Grounded on detail::solve_brownian_timestep.
func solveBrownianTimestep(distance, mobility, force2, temperature float64) float64 {
	a := mobility * mobility * force2
	b := randomWalkFactor * mobility * temperature
	c := distance * distance

	if a*c < adaptiveEpsilon*b*b {
		return c / b
	}

	return (-b + math.Sqrt(b*b+4*a*c)) / (2 * a)
}

// determineBrownianTimestep returns the maximum timestep that keeps every
// particle's expected displacement within spacestep, clamped above by
// maxTimestep. Grounded on detail::adaptive_brownian_timestepper.
func determineBrownianTimestep(mobilities []float64, forces []geom.Vector, temperature, spacestep, maxTimestep float64) float64 {
	timestep := maxTimestep

	for i, mobility := range mobilities {
		dt := maxTimestep

		force2 := forces[i].SquaredNorm()
		if mobility != 0 || force2 != 0 {
			dt = solveBrownianTimestep(spacestep, mobility, force2, temperature)
		}

		timestep = math.Min(timestep, dt)
	}

	return timestep
}

// SimulateBrownian advances sys under overdamped Brownian dynamics for
// config.Steps steps, in place. This is the second-order BAOAB-limit
// scheme: a deterministic mobility-weighted drift plus a correlated Wiener
// increment, grounded on detail::brownian_simulator.
func SimulateBrownian(sys *particle.System, config BrownianConfig) {
	n := sys.ParticleCount()
	forces := make([]geom.Vector, n)
	wieners := make([]geom.Vector, n)

	normal := prng.NewNormal(prng.NewSFC64(config.Seed))

	adaptive := config.Spacestep != 0

	for step := 1; step <= config.Steps; step++ {
		if config.Perf != nil {
			config.Perf.StartTick()
			config.Perf.StartPhase(telemetry.PhaseForceAccumulation)
		}

		forces = sys.ComputeForce(forces)

		mobilities := sys.ViewMobilities()
		positions := sys.ViewPositions()

		timestep := config.Timestep
		if adaptive {
			timestep = determineBrownianTimestep(mobilities, forces, config.Temperature, config.Spacestep, config.Timestep)
		}

		if config.Perf != nil {
			config.Perf.StartPhase(telemetry.PhaseIntegration)
		}

		for i := 0; i < n; i++ {
			muDt := timestep * mobilities[i]
			sigma := math.Sqrt(2 * config.Temperature * muDt)
			nx, ny, nz := normal.Sample3()
			wiener := geom.NewVector(sigma*nx, sigma*ny, sigma*nz)

			positions[i] = positions[i].Add(forces[i].Scale(muDt))
			positions[i] = positions[i].Add(wiener.Add(wieners[i]).Scale(0.5))
			wieners[i] = wiener
		}

		if config.Collector != nil {
			if config.Perf != nil {
				config.Perf.StartPhase(telemetry.PhaseDiagnostics)
			}
			config.Collector.Record(telemetry.Snapshot{
				Step:            step,
				PotentialEnergy: sys.ComputePotentialEnergy(),
				TotalEnergy:     sys.ComputePotentialEnergy(),
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
