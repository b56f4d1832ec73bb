package telemetry

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"
)

// Snapshot is one integrator step's scalar diagnostics, as fed to
// Collector.Record by the integrator packages. Step is 1-based, matching the
// step index passed to integrator callbacks.
type Snapshot struct {
	Step            int
	PotentialEnergy float64
	KineticEnergy   float64
	TotalEnergy     float64
	Timestep        float64
	ReactionForce   float64
}

// Collector accumulates a rolling window of Snapshots and writes a line for
// each one it records, in the plain fmt-based format the teacher's own
// logging favors rather than a structured-logging framework.
type Collector struct {
	out    io.Writer
	window []Snapshot
	write  int
	count  int
}

// NewCollector creates a Collector that keeps the last windowSize snapshots
// and writes one line per Record call to out. A nil out disables writing
// but still accumulates the window for Stats.
func NewCollector(out io.Writer, windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 1
	}
	return &Collector{out: out, window: make([]Snapshot, windowSize)}
}

// Record appends a snapshot to the rolling window and, if an output writer
// was configured, logs it.
func (c *Collector) Record(s Snapshot) {
	c.window[c.write] = s
	c.write = (c.write + 1) % len(c.window)
	if c.count < len(c.window) {
		c.count++
	}
	if c.out != nil {
		fmt.Fprintf(c.out, "step=%d potential=%.6g kinetic=%.6g total=%.6g dt=%.6g reaction=%.6g\n",
			s.Step, s.PotentialEnergy, s.KineticEnergy, s.TotalEnergy, s.Timestep, s.ReactionForce)
	}
}

// Stats holds mean/stddev aggregates over a Collector's current window.
type Stats struct {
	MeanTotalEnergy   float64
	StdDevTotalEnergy float64
	MeanTimestep      float64
	Samples           int
}

// Stats aggregates the current window using gonum's stat package rather
// than hand-rolled mean/variance accumulators.
func (c *Collector) Stats() Stats {
	if c.count == 0 {
		return Stats{}
	}

	totals := make([]float64, c.count)
	steps := make([]float64, c.count)
	for i := 0; i < c.count; i++ {
		totals[i] = c.window[i].TotalEnergy
		steps[i] = c.window[i].Timestep
	}

	return Stats{
		MeanTotalEnergy:   stat.Mean(totals, nil),
		StdDevTotalEnergy: stat.StdDev(totals, nil),
		MeanTimestep:      stat.Mean(steps, nil),
		Samples:           c.count,
	}
}
