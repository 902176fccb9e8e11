package planner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yuceelege/GNN-TAMP/core"
	"github.com/yuceelege/GNN-TAMP/model"
)

// fakeRanker returns fallback-shaped candidates, or an error when failing
// is set.
type fakeRanker struct {
	failing bool
	calls   int
}

func (r *fakeRanker) Rank(ctx context.Context, target *core.TargetGraph, current *core.CurrentGraph) ([]core.Candidate, error) {
	r.calls++
	if r.failing {
		return nil, core.ErrOracle
	}
	return core.FallbackRank(target, current), nil
}

// fakeExec places every block exactly where commanded, optionally offset.
type fakeExec struct {
	offset model.Vec3
	fault  string
}

func (e *fakeExec) Execute(ctx context.Context, motion model.Motion, commanded model.Pose) (model.ExecutionResult, error) {
	if e.fault != "" {
		return model.ExecutionResult{Fault: e.fault}, nil
	}
	realized := commanded
	realized.Position.X += e.offset.X
	realized.Position.Y += e.offset.Y
	realized.Position.Z += e.offset.Z
	return model.ExecutionResult{OK: true, RealizedPose: realized}, nil
}

type memCheckpointer struct {
	mu    sync.Mutex
	snaps []core.GraphSnapshot
}

func (m *memCheckpointer) Save(ctx context.Context, episodeID string, iteration int, snap core.GraphSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, snap)
	return nil
}

func newTestPlanner(t *testing.T, ranker PriorityRanker, synth MotionSynthesizer, exec Executor, cfg Config, opts ...Option) *Planner {
	t.Helper()
	p, err := New(ranker, synth, exec, cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestRunPlacesWholeTowerBottomUp(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{}, Config{})

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !res.Done() {
		t.Fatalf("state = %s (detail %q), want done", res.State, res.FailDetail)
	}
	want := []string{"object3", "object4", "object5"}
	if len(res.Order) != len(want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}
	for i := range want {
		if res.Order[i] != want[i] {
			t.Fatalf("order = %v, want %v", res.Order, want)
		}
	}
	if !res.Final.MatchesTarget(core.DefaultPoseTolerance) {
		t.Error("final structure does not match target")
	}
	if !res.WithinTolerance {
		t.Error("exactly realized placements reported out of tolerance")
	}
	if res.EpisodeID == "" {
		t.Error("episode ID not assigned")
	}
}

func TestRunFallsBackWhenOracleFails(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	p := newTestPlanner(t, &fakeRanker{failing: true}, synth, &fakeExec{}, Config{})

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !res.Done() {
		t.Fatalf("state = %s, want done despite oracle failure", res.State)
	}
	for _, it := range res.Iterations {
		if !it.UsedFallback {
			t.Errorf("iteration %d did not use fallback ranking", it.Index)
		}
	}
}

func TestRunPropagatesRealizedOffsetToChildren(t *testing.T) {
	// Every placement lands 3mm off along x. Children must stack on the
	// realized poses, so the final structure still matches its own chain.
	var poses []model.Pose
	synth := poseRecorder{&scriptedSynth{replies: map[string][]SynthesisResult{}}, &poses}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{offset: model.Vec3{X: 0.003}}, Config{})

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Done() {
		t.Fatalf("state = %s, want done", res.State)
	}

	// object4 was commanded on top of object3's realized pose: its target
	// already carries object3's 3mm offset.
	if len(poses) != 3 {
		t.Fatalf("recorded %d synthesis targets, want 3", len(poses))
	}
	if got, want := poses[1].Position.X, 0.003; got != want {
		t.Errorf("object4 commanded x = %v, want %v", got, want)
	}
	// And object5 carries object4's accumulated offset.
	if got, want := poses[2].Position.X, 0.006; got != want {
		t.Errorf("object5 commanded x = %v, want %v", got, want)
	}
	// The structure is complete but every block sits millimetres off its
	// pure target pose, beyond the default tolerance.
	if res.WithinTolerance {
		t.Error("accumulated offsets reported within the default tolerance")
	}
}

func TestRunWithinToleranceHonorsConfiguredTolerance(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	exec := &fakeExec{offset: model.Vec3{X: 0.003}}
	p := newTestPlanner(t, &fakeRanker{}, synth, exec, Config{PoseTolerance: 0.02})

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Done() {
		t.Fatalf("state = %s, want done", res.State)
	}
	// The worst block accumulates 9mm of drift, inside the 20mm tolerance.
	if !res.WithinTolerance {
		t.Error("drift within the configured tolerance reported as a mismatch")
	}
}

type poseRecorder struct {
	inner *scriptedSynth
	out   *[]model.Pose
}

func (p poseRecorder) Synthesize(ctx context.Context, current *core.CurrentGraph, block model.Block, target model.Pose, budget time.Duration) (SynthesisResult, error) {
	*p.out = append(*p.out, target)
	return p.inner.Synthesize(ctx, current, block, target, budget)
}

func TestRunStallsThenFails(t *testing.T) {
	// Everything is hard-infeasible forever: the loop must exhaust its
	// stall retries and fail, not spin.
	synth := collisionSynth{}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{}, Config{StallRetries: 1})

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateFailed {
		t.Fatalf("state = %s, want failed", res.State)
	}
	if res.FailDetail == "" {
		t.Error("failed result carries no detail")
	}
	if res.Final.PlacedCount() != 0 {
		t.Errorf("placed %d blocks, want 0", res.Final.PlacedCount())
	}
}

type collisionSynth struct{}

func (collisionSynth) Synthesize(ctx context.Context, current *core.CurrentGraph, block model.Block, target model.Pose, budget time.Duration) (SynthesisResult, error) {
	return SynthesisResult{Reason: model.ReasonCollision}, nil
}

func TestRunStallRecoveryGrowsBudget(t *testing.T) {
	// First full iteration times out everywhere; after one stall recovery
	// the synthesizer sees a doubled budget and succeeds.
	synth := &budgetSensitiveSynth{threshold: 8 * time.Second}
	cfg := Config{MotionBudget: 5 * time.Second, StallRetries: 2, StallBudgetGrowth: 2}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{}, cfg)

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Done() {
		t.Fatalf("state = %s (detail %q), want done after stall recovery", res.State, res.FailDetail)
	}
	if synth.maxBudget < 10*time.Second {
		t.Errorf("max budget seen = %v, want >= 10s after one doubling", synth.maxBudget)
	}
}

type budgetSensitiveSynth struct {
	threshold time.Duration
	maxBudget time.Duration
}

func (s *budgetSensitiveSynth) Synthesize(ctx context.Context, current *core.CurrentGraph, block model.Block, target model.Pose, budget time.Duration) (SynthesisResult, error) {
	if budget > s.maxBudget {
		s.maxBudget = budget
	}
	if budget < s.threshold {
		return SynthesisResult{Reason: model.ReasonTimeout}, nil
	}
	return SynthesisResult{Feasible: true, Motion: model.Motion{BlockID: block.ID}}, nil
}

func TestRunExecutionFaultIsFatal(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{fault: "gripper slip"}, Config{})

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateFailed {
		t.Fatalf("state = %s, want failed on actuator fault", res.State)
	}
	if res.FailDetail != "execution fault: gripper slip" {
		t.Errorf("detail = %q", res.FailDetail)
	}
}

func TestRunCancellationSurfacesAsCancelled(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateFailed || res.FailDetail != "cancelled" {
		t.Fatalf("state = %s detail = %q, want failed/cancelled", res.State, res.FailDetail)
	}
}

func TestRunCheckpointsEveryIteration(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	cp := &memCheckpointer{}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{}, Config{}, WithCheckpointer(cp))

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Done() {
		t.Fatalf("state = %s, want done", res.State)
	}
	if len(cp.snaps) != 3 {
		t.Fatalf("saved %d snapshots, want 3", len(cp.snaps))
	}
	if got := len(cp.snaps[2].Order); got != 3 {
		t.Errorf("final snapshot has %d placements, want 3", got)
	}
}

func TestRunRejectsNilTarget(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{}, Config{})

	if _, err := p.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil target")
	}
}

func TestNewRejectsNilCollaborators(t *testing.T) {
	synth := &scriptedSynth{replies: map[string][]SynthesisResult{}}
	if _, err := New(nil, synth, &fakeExec{}, Config{}); err == nil {
		t.Error("expected error for nil ranker")
	}
	if _, err := New(&fakeRanker{}, nil, &fakeExec{}, Config{}); err == nil {
		t.Error("expected error for nil synthesizer")
	}
	if _, err := New(&fakeRanker{}, synth, nil, Config{}); err == nil {
		t.Error("expected error for nil executor")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}.ApplyDefaults()
	if cfg.MotionBudget != 5*time.Second {
		t.Errorf("MotionBudget = %v, want 5s", cfg.MotionBudget)
	}
	if cfg.StallRetries != 2 {
		t.Errorf("StallRetries = %d, want 2", cfg.StallRetries)
	}
	if cfg.StallBudgetGrowth != 2.0 {
		t.Errorf("StallBudgetGrowth = %v, want 2.0", cfg.StallBudgetGrowth)
	}

	disabled := Config{StallRetries: -1}.ApplyDefaults()
	if disabled.StallRetries != 0 {
		t.Errorf("negative StallRetries = %d, want 0", disabled.StallRetries)
	}
}

func TestRunErrorNeverPartiallyApplies(t *testing.T) {
	// A synthesis transport error on one candidate must not stop the
	// episode while other candidates remain feasible.
	synth := &scriptedSynth{
		replies: map[string][]SynthesisResult{},
		errs:    map[string]error{"object3": errors.New("unavailable")},
	}
	p := newTestPlanner(t, &fakeRanker{}, synth, &fakeExec{}, Config{StallRetries: -1})

	res, err := p.Run(context.Background(), towerTarget(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// object3 always errors, so the tower can never finish; the loop must
	// stall out rather than corrupt state.
	if res.State != StateFailed {
		t.Fatalf("state = %s, want failed", res.State)
	}
	for _, id := range res.Order {
		if id == "object3" {
			t.Error("object3 placed despite permanent synthesis error")
		}
	}
}
