package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PlannerCollector exposes replanning-loop Prometheus metrics. It satisfies
// the planner's MetricsRecorder interface.
type PlannerCollector struct {
	gatherer prometheus.Gatherer

	CycleDuration       prometheus.Histogram
	PlacementsTotal     prometheus.Counter
	FeasibilityFailures *prometheus.CounterVec
	OracleFallbacks     prometheus.Counter
	StallRecoveries     prometheus.Counter
	BlocksRemaining     prometheus.Gauge
}

// NewPlannerCollector registers planner metrics against the provided registerer.
func NewPlannerCollector(reg prometheus.Registerer) (*PlannerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	cycleHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_cycle_duration_seconds",
		Help:    "Duration of one full plan-select-execute-update cycle.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})
	cycleHistogram, err := registerHistogram(reg, cycleHistogram, "planner_cycle_duration_seconds")
	if err != nil {
		return nil, err
	}

	placements := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_placements_total",
		Help: "Cumulative number of blocks placed and confirmed.",
	})
	placements, err = registerCounter(reg, placements, "planner_placements_total")
	if err != nil {
		return nil, err
	}

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_feasibility_failures_total",
		Help: "Cumulative motion synthesis refusals, labeled by reason.",
	}, []string{"reason"})
	failures, err = registerCounterVec(reg, failures, "planner_feasibility_failures_total")
	if err != nil {
		return nil, err
	}

	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_oracle_fallbacks_total",
		Help: "Cumulative number of planning iterations served by the fallback ranking.",
	})
	fallbacks, err = registerCounter(reg, fallbacks, "planner_oracle_fallbacks_total")
	if err != nil {
		return nil, err
	}

	stalls := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_stall_recoveries_total",
		Help: "Cumulative number of stall-recovery attempts.",
	})
	stalls, err = registerCounter(reg, stalls, "planner_stall_recoveries_total")
	if err != nil {
		return nil, err
	}

	remaining := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planner_blocks_remaining",
		Help: "Number of target blocks not yet placed in the running episode.",
	})
	remaining, err = registerGauge(reg, remaining, "planner_blocks_remaining")
	if err != nil {
		return nil, err
	}

	return &PlannerCollector{
		gatherer:            gatherer,
		CycleDuration:       cycleHistogram,
		PlacementsTotal:     placements,
		FeasibilityFailures: failures,
		OracleFallbacks:     fallbacks,
		StallRecoveries:     stalls,
		BlocksRemaining:     remaining,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *PlannerCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveCycle records the duration of one completed cycle.
func (c *PlannerCollector) ObserveCycle(d time.Duration) {
	if c == nil || c.CycleDuration == nil {
		return
	}
	c.CycleDuration.Observe(d.Seconds())
}

// IncPlacement increments the placement counter.
func (c *PlannerCollector) IncPlacement() {
	if c == nil || c.PlacementsTotal == nil {
		return
	}
	c.PlacementsTotal.Inc()
}

// IncFeasibilityFailure increments the refusal counter for a reason.
func (c *PlannerCollector) IncFeasibilityFailure(reason string) {
	if c == nil || c.FeasibilityFailures == nil {
		return
	}
	if reason == "" {
		reason = "unspecified"
	}
	c.FeasibilityFailures.WithLabelValues(reason).Inc()
}

// IncOracleFallback increments the fallback-ranking counter.
func (c *PlannerCollector) IncOracleFallback() {
	if c == nil || c.OracleFallbacks == nil {
		return
	}
	c.OracleFallbacks.Inc()
}

// IncStallRecovery increments the stall-recovery counter.
func (c *PlannerCollector) IncStallRecovery() {
	if c == nil || c.StallRecoveries == nil {
		return
	}
	c.StallRecoveries.Inc()
}

// SetRemaining updates the remaining-blocks gauge.
func (c *PlannerCollector) SetRemaining(n int) {
	if c == nil || c.BlocksRemaining == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	c.BlocksRemaining.Set(float64(n))
}
