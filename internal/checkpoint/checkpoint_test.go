package checkpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/yuceelege/GNN-TAMP/core"
	"github.com/yuceelege/GNN-TAMP/model"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func snapshot(ids ...string) core.GraphSnapshot {
	snap := core.GraphSnapshot{Poses: make(map[string]model.Pose, len(ids))}
	for i, id := range ids {
		snap.Order = append(snap.Order, id)
		snap.Poses[id] = model.Pose{
			Position:    model.Vec3{Z: 0.74 + float64(i)*0.09},
			Orientation: model.IdentityQuat(),
		}
	}
	return snap
}

func TestSaveAndLatest(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "ep1", 1, snapshot("object3")); err != nil {
		t.Fatalf("Save(1): %v", err)
	}
	if err := store.Save(ctx, "ep1", 2, snapshot("object3", "object4")); err != nil {
		t.Fatalf("Save(2): %v", err)
	}

	snap, iteration, err := store.Latest(ctx, "ep1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if iteration != 2 {
		t.Errorf("iteration = %d, want 2", iteration)
	}
	if len(snap.Order) != 2 || snap.Order[1] != "object4" {
		t.Errorf("snapshot order = %v, want [object3 object4]", snap.Order)
	}
	if pose := snap.Poses["object4"]; pose.Position.Z != 0.83 {
		t.Errorf("object4 pose z = %v, want 0.83", pose.Position.Z)
	}
}

func TestLatestIsolatesEpisodes(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "ep1", 1, snapshot("object3")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, "ep2", 5, snapshot("object3", "object4", "object5")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, iteration, err := store.Latest(ctx, "ep1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if iteration != 1 || len(snap.Order) != 1 {
		t.Errorf("ep1 latest = iteration %d with %d placements, want 1/1", iteration, len(snap.Order))
	}
}

func TestLatestUnknownEpisode(t *testing.T) {
	store := openStore(t)

	if _, _, err := store.Latest(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestIterationsAscending(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, n := range []int{3, 1, 2} {
		if err := store.Save(ctx, "ep1", n, snapshot("object3")); err != nil {
			t.Fatalf("Save(%d): %v", n, err)
		}
	}

	got, err := store.Iterations(ctx, "ep1")
	if err != nil {
		t.Fatalf("Iterations: %v", err)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Iterations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Iterations = %v, want %v", got, want)
		}
	}
}

func TestSaveHonorsCancelledContext(t *testing.T) {
	store := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Save(ctx, "ep1", 1, snapshot("object3")); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestSnapshotRestoresIntoCurrentGraph(t *testing.T) {
	target, err := core.BuildTarget(core.SceneDescription{Blocks: []core.BlockDescription{
		{ID: "object3", Position: model.Vec3{Z: 0.74}, HasAbsolute: true, Relative: model.IdentityTransform()},
	}})
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}

	store := openStore(t)
	ctx := context.Background()
	if err := store.Save(ctx, "ep1", 1, snapshot("object3")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, _, err := store.Latest(ctx, "ep1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	restored, err := core.RestoreCurrentGraph(target, snap)
	if err != nil {
		t.Fatalf("RestoreCurrentGraph: %v", err)
	}
	if restored.PlacedCount() != 1 || !restored.IsPlaced("object3") {
		t.Errorf("restored graph = %d placed", restored.PlacedCount())
	}
}
