// Package metrics records the outer driver's progress over time: one Record
// per completed MH sweep, plus live Prometheus gauges
// for the same fields so a long-running partition job can be observed
// in-flight (spec.md §6 "Outputs", "progress timeline").
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Record is one timeline entry: the state of the search after a completed
// phase (spec.md §6 "progress timeline" output).
type Record struct {
	// Iteration counts completed MH sweeps within the current B, starting
	// at 1 for the first sweep after a block-merge commit.
	Iteration int
	// Entropy is S_overall after this phase.
	Entropy float64
	// B is the number of blocks at this point in the search.
	B int
	// Elapsed is wall-clock time since the phase started.
	Elapsed time.Duration
}

// Timeline accumulates Records in order and mirrors the latest values into a
// set of Prometheus gauges, following the client_golang convention of one
// registered collector per observed quantity.
type Timeline struct {
	records []Record

	entropy    prometheus.Gauge
	blockCount prometheus.Gauge
	iteration  prometheus.Gauge
}

// NewTimeline constructs a Timeline and registers its gauges with reg. reg
// may be nil, in which case gauges are created but never registered (useful
// for tests and for callers who don't want Prometheus wiring at all).
func NewTimeline(reg prometheus.Registerer) *Timeline {
	t := &Timeline{
		entropy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockmodel",
			Name:      "entropy",
			Help:      "Overall description length (S_overall) of the partition after the latest MH sweep.",
		}),
		blockCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockmodel",
			Name:      "block_count",
			Help:      "Number of blocks B of the partition after the latest MH sweep.",
		}),
		iteration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockmodel",
			Name:      "mh_iteration",
			Help:      "Completed MH sweeps within the current block count.",
		}),
	}
	if reg != nil {
		reg.MustRegister(t.entropy, t.blockCount, t.iteration)
	}

	return t
}

// Record appends r to the timeline and updates the live gauges.
func (t *Timeline) Record(r Record) {
	t.records = append(t.records, r)
	t.entropy.Set(r.Entropy)
	t.blockCount.Set(float64(r.B))
	t.iteration.Set(float64(r.Iteration))
}

// Records returns the accumulated timeline in recording order. The returned
// slice must not be mutated by the caller.
func (t *Timeline) Records() []Record { return t.records }
