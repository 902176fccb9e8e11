package planner

import (
	"context"
	"time"

	"github.com/yuceelege/GNN-TAMP/core"
	"github.com/yuceelege/GNN-TAMP/internal/logging"
)

// Selection is the committed outcome of one selection pass: the chosen
// candidate with its derived pose, the motion realizing it, and how many
// synthesis attempts the pass consumed.
type Selection struct {
	Candidate core.Candidate
	Motion    SynthesisResult
	Attempts  int
	Deferred  int
}

// Selector turns a ranked candidate list plus live feasibility probes into
// exactly one committed choice per iteration, or ErrNoFeasiblePlacement.
type Selector struct {
	synth   MotionSynthesizer
	log     logging.Logger
	metrics MetricsRecorder
}

// NewSelector creates a Selector around the given synthesizer.
func NewSelector(synth MotionSynthesizer, log logging.Logger, metrics MetricsRecorder) *Selector {
	if log == nil {
		log = logging.Noop()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Selector{synth: synth, log: log, metrics: metrics}
}

// Select walks the ranked list from the top. Hard feasibility failures
// exclude a candidate for this iteration only; timeouts defer it to the
// end of the list, and deferred candidates are retried once after all
// others. The first feasible candidate is committed immediately.
func (s *Selector) Select(ctx context.Context, cands []core.Candidate, current *core.CurrentGraph, budget time.Duration) (*Selection, error) {
	attempts := 0
	var deferred []core.Candidate

	for _, cand := range cands {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sel, outcome := s.probe(ctx, cand, current, budget, &attempts)
		switch outcome {
		case probeCommitted:
			sel.Deferred = len(deferred)
			return sel, nil
		case probeRetryLater:
			deferred = append(deferred, cand)
		}
	}

	// One more pass over the soft-failed candidates; the compute budget
	// may simply have been too tight the first time.
	for _, cand := range deferred {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if sel, ok := s.probe(ctx, cand, current, budget, &attempts); ok == probeCommitted {
			sel.Deferred = len(deferred)
			return sel, nil
		}
	}

	return nil, ErrNoFeasiblePlacement
}

type probeOutcome int

const (
	probeCommitted probeOutcome = iota
	probeExcluded
	probeRetryLater
)

// probe derives the candidate pose and asks the synthesizer for a motion.
func (s *Selector) probe(ctx context.Context, cand core.Candidate, current *core.CurrentGraph, budget time.Duration, attempts *int) (*Selection, probeOutcome) {
	pose, err := current.ResolveCandidatePose(cand.ID)
	if err != nil {
		// A well-formed target resolves every block.
		s.log.Warn(ctx, "candidate pose unresolvable, excluding",
			logging.String("block_id", cand.ID),
			logging.String("error", err.Error()),
		)
		s.metrics.IncFeasibilityFailure("unresolvable")
		return nil, probeExcluded
	}
	cand.Pose = pose

	block, ok := current.Target().Block(cand.ID)
	if !ok {
		s.metrics.IncFeasibilityFailure("unknown")
		return nil, probeExcluded
	}

	*attempts++
	result, err := s.synth.Synthesize(ctx, current, block, pose, budget)
	if err != nil {
		// Transport-level failures count against the candidate, not the
		// episode; the next candidate may still go through.
		s.log.Warn(ctx, "motion synthesis error, excluding candidate",
			logging.String("block_id", cand.ID),
			logging.String("error", err.Error()),
		)
		s.metrics.IncFeasibilityFailure("error")
		return nil, probeExcluded
	}

	if result.Feasible {
		return &Selection{Candidate: cand, Motion: result, Attempts: *attempts}, probeCommitted
	}

	s.metrics.IncFeasibilityFailure(result.Reason.String())
	s.log.Debug(ctx, "candidate infeasible",
		logging.String("block_id", cand.ID),
		logging.String("reason", result.Reason.String()),
	)
	if result.Reason.Hard() {
		return nil, probeExcluded
	}
	return nil, probeRetryLater
}
