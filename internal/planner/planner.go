package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yuceelege/GNN-TAMP/core"
	"github.com/yuceelege/GNN-TAMP/internal/logging"
)

var tracer = otel.Tracer("github.com/yuceelege/GNN-TAMP/internal/planner")

// IterationRecord summarizes one full Planning→Updating cycle.
type IterationRecord struct {
	Index        int
	Placed       string
	Attempts     int
	UsedFallback bool
	Elapsed      time.Duration
}

// Result is the terminal outcome of an episode. Final always carries the
// last-known current graph so an operator can recover from a failure.
type Result struct {
	EpisodeID  string
	State      State
	Order      []string
	Iterations []IterationRecord
	FailDetail string
	Final      *core.CurrentGraph

	// WithinTolerance reports, for a Done episode, whether every realized
	// pose is within the configured tolerance of its target pose.
	// Accumulated actuator error can complete the structure and still
	// leave this false.
	WithinTolerance bool
}

// Done reports whether the episode completed the target.
func (r *Result) Done() bool { return r.State == StateDone }

// Planner drives the replanning loop: rank, select, execute, update,
// repeat. One block is placed per cycle and the ranking is re-derived
// from ground truth after every physical action.
type Planner struct {
	ranker     PriorityRanker
	synth      MotionSynthesizer
	exec       Executor
	cfg        Config
	log        logging.Logger
	metrics    MetricsRecorder
	checkpoint Checkpointer
}

// Option configures optional planner collaborators.
type Option func(*Planner)

// WithLogger attaches a structured logger.
func WithLogger(log logging.Logger) Option {
	return func(p *Planner) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(p *Planner) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithCheckpointer enables per-iteration current-graph checkpointing.
func WithCheckpointer(c Checkpointer) Option {
	return func(p *Planner) { p.checkpoint = c }
}

// New creates a Planner around the three collaborators.
func New(ranker PriorityRanker, synth MotionSynthesizer, exec Executor, cfg Config, opts ...Option) (*Planner, error) {
	if ranker == nil {
		return nil, fmt.Errorf("ranker is nil")
	}
	if synth == nil {
		return nil, fmt.Errorf("synthesizer is nil")
	}
	if exec == nil {
		return nil, fmt.Errorf("executor is nil")
	}

	p := &Planner{
		ranker:  ranker,
		synth:   synth,
		exec:    exec,
		cfg:     cfg.ApplyDefaults(),
		log:     logging.Noop(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run executes one planning episode against target. Cancellation of ctx
// is honored at state-transition boundaries (collaborator calls are
// atomic) and surfaces as a Failed result with detail "cancelled".
func (p *Planner) Run(ctx context.Context, target *core.TargetGraph) (*Result, error) {
	if target == nil {
		return nil, fmt.Errorf("target graph is nil")
	}

	episodeID := uuid.NewString()
	ctx, log := logging.WithEpisodeLogger(ctx, p.log, episodeID)

	ctx, episodeSpan := tracer.Start(ctx, "planner.Episode",
		trace.WithAttributes(attribute.String("episode_id", episodeID)))
	defer episodeSpan.End()

	// Idle: set up episode-owned state. Each episode owns an independent
	// target/current pair; nothing is shared across episodes.
	current := core.NewCurrentGraph(target)
	selector := NewSelector(p.synth, log, p.metrics)

	res := &Result{EpisodeID: episodeID, State: StateIdle, Final: current}
	budget := p.cfg.MotionBudget
	stallAttempts := 0
	iteration := 0

	log.Info(ctx, "episode started", logging.Int("blocks", target.Len()))
	p.metrics.SetRemaining(target.Len())

	var cands []core.Candidate
	var usedFallback bool
	var sel *Selection
	var cycleStart time.Time

	cycleCtx := ctx
	var cycleSpan trace.Span
	endCycle := func() {
		if cycleSpan != nil {
			cycleSpan.End()
			cycleSpan = nil
		}
	}
	defer endCycle()

	res.State = StatePlanning
	for {
		if err := ctx.Err(); err != nil {
			return p.fail(ctx, log, res, "cancelled"), nil
		}

		switch res.State {
		case StatePlanning:
			endCycle()
			cycleStart = time.Now()
			cycleCtx, cycleSpan = tracer.Start(ctx, "planner.Cycle",
				trace.WithAttributes(attribute.Int("iteration", iteration+1)))
			cands, usedFallback = p.rank(cycleCtx, target, current, log)
			if stallAttempts > 0 && len(cands) > 1 {
				// Stall recovery also perturbs the candidate order so a
				// persistently blocking head-of-list gets out of the way.
				rot := stallAttempts % len(cands)
				cands = append(cands[rot:], cands[:rot]...)
			}
			res.State = StateSelecting

		case StateSelecting:
			var err error
			sel, err = selector.Select(cycleCtx, cands, current, budget)
			switch {
			case err == nil:
				res.State = StateExecuting
			case ctx.Err() != nil:
				return p.fail(ctx, log, res, "cancelled"), nil
			default:
				res.State = StateStalled
			}

		case StateStalled:
			if stallAttempts >= p.cfg.StallRetries {
				return p.fail(ctx, log, res, "stalled: no feasible placement"), nil
			}
			stallAttempts++
			budget = time.Duration(float64(budget) * p.cfg.StallBudgetGrowth)
			p.metrics.IncStallRecovery()
			log.Warn(ctx, "no feasible placement, retrying with larger budget",
				logging.Int("attempt", stallAttempts),
				logging.String("budget", budget.String()),
			)
			res.State = StatePlanning

		case StateExecuting:
			execCtx, cancel := context.WithTimeout(cycleCtx, p.cfg.ExecTimeout)
			execRes, err := p.exec.Execute(execCtx, sel.Motion.Motion, sel.Candidate.Pose)
			cancel()
			if err != nil {
				return p.fail(ctx, log, res, fmt.Sprintf("execution fault: %v", err)), nil
			}
			if !execRes.OK {
				return p.fail(ctx, log, res, fmt.Sprintf("execution fault: %s", execRes.Fault)), nil
			}

			if err := current.ApplyPlacement(sel.Candidate.ID, execRes.RealizedPose); err != nil {
				return p.fail(ctx, log, res, fmt.Sprintf("graph update rejected: %v", err)), nil
			}
			res.State = StateUpdating

		case StateUpdating:
			iteration++
			elapsed := time.Since(cycleStart)
			res.Order = append(res.Order, sel.Candidate.ID)
			res.Iterations = append(res.Iterations, IterationRecord{
				Index:        iteration,
				Placed:       sel.Candidate.ID,
				Attempts:     sel.Attempts,
				UsedFallback: usedFallback,
				Elapsed:      elapsed,
			})

			remaining := len(current.Remaining())
			p.metrics.IncPlacement()
			p.metrics.ObserveCycle(elapsed)
			p.metrics.SetRemaining(remaining)
			log.Info(ctx, "block placed",
				logging.String("block_id", sel.Candidate.ID),
				logging.Int("attempts", sel.Attempts),
				logging.Int("remaining", remaining),
			)

			p.saveCheckpoint(ctx, log, episodeID, iteration, current)
			endCycle()

			// Progress was made: further attempts run on the baseline
			// budget again and the stall counter starts over.
			budget = p.cfg.MotionBudget
			stallAttempts = 0

			if remaining == 0 {
				res.State = StateDone
				res.WithinTolerance = current.MatchesTarget(p.cfg.PoseTolerance)
				log.Info(ctx, "episode complete",
					logging.Int("iterations", iteration),
					logging.Bool("within_tolerance", res.WithinTolerance),
				)
				return res, nil
			}
			res.State = StatePlanning
		}
	}
}

// rank queries the oracle; any failure degrades to the deterministic
// fallback so the loop stays operable without the learned component.
func (p *Planner) rank(ctx context.Context, target *core.TargetGraph, current *core.CurrentGraph, log logging.Logger) ([]core.Candidate, bool) {
	rankCtx, cancel := context.WithTimeout(ctx, p.cfg.OracleTimeout)
	defer cancel()

	cands, err := p.ranker.Rank(rankCtx, target, current)
	if err != nil {
		log.Warn(ctx, "oracle ranking failed, using fallback order",
			logging.String("error", err.Error()),
		)
		p.metrics.IncOracleFallback()
		return core.FallbackRank(target, current), true
	}

	core.SortCandidates(cands, current)
	return cands, false
}

func (p *Planner) fail(ctx context.Context, log logging.Logger, res *Result, detail string) *Result {
	res.State = StateFailed
	res.FailDetail = detail
	log.Error(ctx, "episode failed",
		logging.String("detail", detail),
		logging.Int("placed", res.Final.PlacedCount()),
	)
	return res
}

func (p *Planner) saveCheckpoint(ctx context.Context, log logging.Logger, episodeID string, iteration int, current *core.CurrentGraph) {
	if p.checkpoint == nil {
		return
	}
	if err := p.checkpoint.Save(ctx, episodeID, iteration, current.Snapshot()); err != nil {
		// Checkpointing is best-effort; a failed save never stops the
		// episode.
		log.Warn(ctx, "checkpoint save failed",
			logging.Int("iteration", iteration),
			logging.String("error", err.Error()),
		)
	}
}
