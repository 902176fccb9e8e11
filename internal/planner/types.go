package planner

import (
	"context"
	"errors"
	"time"

	"github.com/yuceelege/GNN-TAMP/core"
	"github.com/yuceelege/GNN-TAMP/model"
)

// ErrNoFeasiblePlacement is returned by the selector when every remaining
// candidate has been tried in the current iteration without a feasible
// motion. It triggers the loop's stall handling.
var ErrNoFeasiblePlacement = errors.New("no feasible placement")

// State is a phase of the replanning loop.
type State string

const (
	StateIdle      State = "idle"
	StatePlanning  State = "planning"
	StateSelecting State = "selecting"
	StateExecuting State = "executing"
	StateUpdating  State = "updating"
	StateStalled   State = "stalled"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// PriorityRanker scores the remaining blocks of an episode. Higher score
// means "place sooner". Implementations must be deterministic for
// identical graph content (any randomness behind an explicit seed), must
// cover exactly the remaining set, and must never mutate either graph.
// A failed or malformed ranking is reported as core.ErrOracle.
type PriorityRanker interface {
	Rank(ctx context.Context, target *core.TargetGraph, current *core.CurrentGraph) ([]core.Candidate, error)
}

// SynthesisResult is the outcome of one motion-synthesis attempt: either a
// motion, or a classified feasibility refusal.
type SynthesisResult struct {
	Feasible bool
	Motion   model.Motion
	Reason   model.FeasibilityReason
}

// MotionSynthesizer wraps the trajectory optimizer. Budget bounds the
// per-attempt compute; exceeding it must come back as ReasonTimeout.
// Implementations must be idempotent for identical inputs and must not
// touch either graph.
type MotionSynthesizer interface {
	Synthesize(ctx context.Context, current *core.CurrentGraph, block model.Block, target model.Pose, budget time.Duration) (SynthesisResult, error)
}

// Executor hands a committed motion to the physical actuator and reports
// the realized pose.
type Executor interface {
	Execute(ctx context.Context, motion model.Motion, commanded model.Pose) (model.ExecutionResult, error)
}

// Checkpointer persists a current-graph snapshot between iterations so an
// episode can be resumed after a crash.
type Checkpointer interface {
	Save(ctx context.Context, episodeID string, iteration int, snap core.GraphSnapshot) error
}

// MetricsRecorder receives planner activity. The observability package
// provides a Prometheus-backed implementation; the zero default drops
// everything.
type MetricsRecorder interface {
	ObserveCycle(d time.Duration)
	IncPlacement()
	IncFeasibilityFailure(reason string)
	IncOracleFallback()
	IncStallRecovery()
	SetRemaining(n int)
}

type noopMetrics struct{}

func (noopMetrics) ObserveCycle(time.Duration)      {}
func (noopMetrics) IncPlacement()                   {}
func (noopMetrics) IncFeasibilityFailure(string)    {}
func (noopMetrics) IncOracleFallback()              {}
func (noopMetrics) IncStallRecovery()               {}
func (noopMetrics) SetRemaining(int)                {}

// Config carries the loop tunables.
type Config struct {
	// MotionBudget is the baseline per-attempt compute budget handed to
	// the synthesizer. Default: 5s.
	MotionBudget time.Duration

	// OracleTimeout bounds one ranking call. Default: 10s.
	OracleTimeout time.Duration

	// ExecTimeout bounds one physical execution: the expected motion
	// duration plus safety margin. Default: 2m.
	ExecTimeout time.Duration

	// StallRetries is the number of consecutive stall-recovery attempts,
	// without a successful placement in between, before the episode
	// fails. Zero means the default of 2; negative disables stall
	// recovery entirely.
	StallRetries int

	// StallBudgetGrowth scales the motion budget on each stall-recovery
	// attempt. Default: 2.0.
	StallBudgetGrowth float64

	// PoseTolerance is the position tolerance for target comparison.
	// Default: core.DefaultPoseTolerance.
	PoseTolerance float64
}

// ApplyDefaults fills zero or invalid fields with the defaults above.
func (c Config) ApplyDefaults() Config {
	if c.MotionBudget <= 0 {
		c.MotionBudget = 5 * time.Second
	}
	if c.OracleTimeout <= 0 {
		c.OracleTimeout = 10 * time.Second
	}
	if c.ExecTimeout <= 0 {
		c.ExecTimeout = 2 * time.Minute
	}
	if c.StallRetries < 0 {
		c.StallRetries = 0
	} else if c.StallRetries == 0 {
		c.StallRetries = 2
	}
	if c.StallBudgetGrowth < 1 {
		c.StallBudgetGrowth = 2.0
	}
	if c.PoseTolerance <= 0 {
		c.PoseTolerance = core.DefaultPoseTolerance
	}
	return c
}
