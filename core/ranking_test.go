package core

import (
	"testing"

	"github.com/yuceelege/GNN-TAMP/model"
)

func TestSortCandidatesScoreThenAncestorsThenID(t *testing.T) {
	target := mustTarget(t)
	current := NewCurrentGraph(target)

	cands := []Candidate{
		{ID: "object5", Score: 0.9}, // 2 unresolved ancestors
		{ID: "object4", Score: 0.9}, // 1 unresolved ancestor
		{ID: "object3", Score: 0.5},
	}
	SortCandidates(cands, current)

	want := []string{"object4", "object5", "object3"}
	for i, id := range want {
		if cands[i].ID != id {
			t.Fatalf("order[%d] = %s, want %s (full: %v)", i, cands[i].ID, id, cands)
		}
	}
}

func TestSortCandidatesIDBreaksFullTies(t *testing.T) {
	target, err := BuildTarget(SceneDescription{Blocks: []BlockDescription{
		{ID: "b", Position: model.Vec3{X: 1}, HasAbsolute: true, Relative: model.IdentityTransform()},
		{ID: "a", Position: model.Vec3{X: 2}, HasAbsolute: true, Relative: model.IdentityTransform()},
	}})
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}
	current := NewCurrentGraph(target)

	cands := []Candidate{{ID: "b", Score: 1}, {ID: "a", Score: 1}}
	SortCandidates(cands, current)

	if cands[0].ID != "a" || cands[1].ID != "b" {
		t.Errorf("tie order = [%s %s], want [a b]", cands[0].ID, cands[1].ID)
	}
}

func TestFallbackRankBottomUp(t *testing.T) {
	target := mustTarget(t)
	current := NewCurrentGraph(target)

	cands := FallbackRank(target, current)
	want := []string{"object3", "object4", "object5"}
	if len(cands) != len(want) {
		t.Fatalf("FallbackRank returned %d candidates, want %d", len(cands), len(want))
	}
	for i, id := range want {
		if cands[i].ID != id {
			t.Errorf("order[%d] = %s, want %s", i, cands[i].ID, id)
		}
	}
}

func TestFallbackRankSkipsPlaced(t *testing.T) {
	target := mustTarget(t)
	current := NewCurrentGraph(target)
	if err := current.ApplyPlacement("object3", model.IdentityPose()); err != nil {
		t.Fatalf("ApplyPlacement: %v", err)
	}

	cands := FallbackRank(target, current)
	if len(cands) != 2 || cands[0].ID != "object4" || cands[1].ID != "object5" {
		t.Errorf("FallbackRank = %v, want [object4 object5]", cands)
	}
}
