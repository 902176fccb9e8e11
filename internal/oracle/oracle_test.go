package oracle

import (
	"context"
	"errors"
	"math"
	"testing"

	"google.golang.org/grpc"

	"github.com/yuceelege/GNN-TAMP/core"
	tampv1 "github.com/yuceelege/GNN-TAMP/internal/genproto/tampv1"
	"github.com/yuceelege/GNN-TAMP/model"
)

type fakeOracle struct {
	lastReq *tampv1.RankRequest
	resp    *tampv1.RankResponse
	err     error
}

func (f *fakeOracle) Rank(ctx context.Context, in *tampv1.RankRequest, opts ...grpc.CallOption) (*tampv1.RankResponse, error) {
	f.lastReq = in
	return f.resp, f.err
}

func tower(t *testing.T) *core.TargetGraph {
	t.Helper()
	target, err := core.BuildTarget(core.SceneDescription{Blocks: []core.BlockDescription{
		{ID: "object3", Position: model.Vec3{Y: 0.3, Z: 0.74}, HasAbsolute: true, Relative: model.IdentityTransform()},
		{ID: "object4", ParentID: "object3", Relative: model.Transform{Translation: model.Vec3{Z: 0.09}, Rotation: model.IdentityQuat()}},
	}})
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}
	return target
}

func scores(pairs ...any) *tampv1.RankResponse {
	resp := &tampv1.RankResponse{}
	for i := 0; i < len(pairs); i += 2 {
		resp.Scores = append(resp.Scores, &tampv1.NodeScore{
			Id:    pairs[i].(string),
			Score: pairs[i+1].(float64),
		})
	}
	return resp
}

func TestRankReturnsCandidatesForRemaining(t *testing.T) {
	target := tower(t)
	current := core.NewCurrentGraph(target)
	fake := &fakeOracle{resp: scores("object3", 0.8, "object4", 0.2)}
	client := New(fake, 7, nil)

	cands, err := client.Rank(context.Background(), target, current)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cands))
	}
	if cands[0].ID != "object3" || cands[0].Score != 0.8 {
		t.Errorf("candidate[0] = %+v", cands[0])
	}
	if fake.lastReq.GetSeed() != 7 {
		t.Errorf("seed = %d, want 7", fake.lastReq.GetSeed())
	}
}

func TestRankEncodesGraphDeterministically(t *testing.T) {
	target := tower(t)
	current := core.NewCurrentGraph(target)
	fake := &fakeOracle{resp: scores("object3", 1.0, "object4", 0.5)}
	client := New(fake, 0, nil)

	if _, err := client.Rank(context.Background(), target, current); err != nil {
		t.Fatalf("Rank: %v", err)
	}
	req := fake.lastReq

	if len(req.GetNodes()) != 2 {
		t.Fatalf("encoded %d nodes, want 2", len(req.GetNodes()))
	}
	if req.GetNodes()[0].GetId() != "object3" || req.GetNodes()[1].GetId() != "object4" {
		t.Errorf("node order = [%s %s], want sorted IDs", req.GetNodes()[0].GetId(), req.GetNodes()[1].GetId())
	}

	if len(req.GetEdges()) != 1 {
		t.Fatalf("encoded %d edges, want 1 (base attachments are not edges)", len(req.GetEdges()))
	}
	edge := req.GetEdges()[0]
	if edge.GetSource() != "object3" || edge.GetTarget() != "object4" {
		t.Errorf("edge = %s->%s, want object3->object4", edge.GetSource(), edge.GetTarget())
	}
	attrs := edge.GetAttributes()
	if len(attrs) != 3 || math.Abs(attrs[2]-0.09) > 1e-12 {
		t.Errorf("edge attributes = %v, want relative offset [0 0 0.09]", attrs)
	}
}

func TestRankEncodesOneEdgePerSupportRelation(t *testing.T) {
	target, err := core.BuildTarget(core.SceneDescription{Blocks: []core.BlockDescription{
		{ID: "object3", Position: model.Vec3{Y: 0.3, Z: 0.74}, HasAbsolute: true, Relative: model.IdentityTransform()},
		{ID: "object4", ParentID: "object3", Relative: model.Transform{Translation: model.Vec3{Z: 0.09}, Rotation: model.IdentityQuat()}},
		{ID: "object5", ParentID: "object4", Relative: model.Transform{Translation: model.Vec3{Z: 0.09}, Rotation: model.IdentityQuat()}},
		{ID: "object6", Position: model.Vec3{Y: -0.3, Z: 0.74}, HasAbsolute: true, Relative: model.IdentityTransform()},
	}})
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}
	current := core.NewCurrentGraph(target)
	fake := &fakeOracle{resp: scores("object3", 0.9, "object4", 0.7, "object5", 0.5, "object6", 0.3)}
	client := New(fake, 0, nil)

	if _, err := client.Rank(context.Background(), target, current); err != nil {
		t.Fatalf("Rank: %v", err)
	}

	// Base-resting blocks contribute no edge; each stacked block one edge
	// from its support parent.
	edges := fake.lastReq.GetEdges()
	if len(edges) != 2 {
		t.Fatalf("encoded %d edges, want 2", len(edges))
	}
	if edges[0].GetSource() != "object3" || edges[0].GetTarget() != "object4" {
		t.Errorf("edge[0] = %s->%s, want object3->object4", edges[0].GetSource(), edges[0].GetTarget())
	}
	if edges[1].GetSource() != "object4" || edges[1].GetTarget() != "object5" {
		t.Errorf("edge[1] = %s->%s, want object4->object5", edges[1].GetSource(), edges[1].GetTarget())
	}
}

func TestRankMarksPlacedNodes(t *testing.T) {
	target := tower(t)
	current := core.NewCurrentGraph(target)
	if err := current.ApplyPlacement("object3", model.IdentityPose()); err != nil {
		t.Fatalf("ApplyPlacement: %v", err)
	}

	fake := &fakeOracle{resp: scores("object4", 0.5)}
	client := New(fake, 0, nil)

	if _, err := client.Rank(context.Background(), target, current); err != nil {
		t.Fatalf("Rank: %v", err)
	}

	req := fake.lastReq
	if got := req.GetRemainingIds(); len(got) != 1 || got[0] != "object4" {
		t.Errorf("remaining_ids = %v, want [object4]", got)
	}
	// Placed blocks stay in the node encoding with the placed flag set.
	features := req.GetNodes()[0].GetFeatures()
	if len(features) != 2 || features[1] != 1 {
		t.Errorf("object3 features = %v, want placed flag 1", features)
	}
}

func TestRankRejectsIncompleteReply(t *testing.T) {
	target := tower(t)
	current := core.NewCurrentGraph(target)
	fake := &fakeOracle{resp: scores("object3", 0.8)}
	client := New(fake, 0, nil)

	if _, err := client.Rank(context.Background(), target, current); !errors.Is(err, core.ErrOracle) {
		t.Fatalf("error = %v, want core.ErrOracle", err)
	}
}

func TestRankRejectsDuplicateAndNonFiniteScores(t *testing.T) {
	target := tower(t)
	current := core.NewCurrentGraph(target)
	client := New(&fakeOracle{resp: scores("object3", 0.8, "object3", 0.2, "object4", 0.1)}, 0, nil)
	if _, err := client.Rank(context.Background(), target, current); !errors.Is(err, core.ErrOracle) {
		t.Errorf("duplicate error = %v, want core.ErrOracle", err)
	}

	client = New(&fakeOracle{resp: scores("object3", math.NaN(), "object4", 0.1)}, 0, nil)
	if _, err := client.Rank(context.Background(), target, current); !errors.Is(err, core.ErrOracle) {
		t.Errorf("NaN error = %v, want core.ErrOracle", err)
	}
}

func TestRankWrapsTransportError(t *testing.T) {
	target := tower(t)
	current := core.NewCurrentGraph(target)
	client := New(&fakeOracle{err: errors.New("unavailable")}, 0, nil)

	if _, err := client.Rank(context.Background(), target, current); !errors.Is(err, core.ErrOracle) {
		t.Fatalf("error = %v, want core.ErrOracle", err)
	}
}

func TestRankEmptyRemainingSkipsRPC(t *testing.T) {
	target := tower(t)
	current := core.NewCurrentGraph(target)
	for _, id := range []string{"object3", "object4"} {
		if err := current.ApplyPlacement(id, model.IdentityPose()); err != nil {
			t.Fatalf("ApplyPlacement(%s): %v", id, err)
		}
	}

	fake := &fakeOracle{}
	client := New(fake, 0, nil)
	cands, err := client.Rank(context.Background(), target, current)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if cands != nil || fake.lastReq != nil {
		t.Error("expected no candidates and no RPC for an empty remaining set")
	}
}
