package core

import (
	"errors"
	"testing"

	"github.com/yuceelege/GNN-TAMP/model"
)

// towerDescription builds a three-block vertical stack resting on the base
// at (0, 0.3, 0.74), each block 9cm above the previous one.
func towerDescription() SceneDescription {
	return SceneDescription{Blocks: []BlockDescription{
		{
			ID:          "object3",
			Position:    model.Vec3{X: 0, Y: 0.3, Z: 0.74},
			HasAbsolute: true,
			Relative:    model.IdentityTransform(),
			Size:        model.Vec3{X: 0.09, Y: 0.09, Z: 0.09},
		},
		{
			ID:       "object4",
			ParentID: "object3",
			Relative: model.Transform{Translation: model.Vec3{Z: 0.09}, Rotation: model.IdentityQuat()},
			Size:     model.Vec3{X: 0.09, Y: 0.09, Z: 0.09},
		},
		{
			ID:       "object5",
			ParentID: "object4",
			Relative: model.Transform{Translation: model.Vec3{Z: 0.09}, Rotation: model.IdentityQuat()},
			Size:     model.Vec3{X: 0.09, Y: 0.09, Z: 0.09},
		},
	}}
}

func TestBuildTargetResolvesPoses(t *testing.T) {
	target, err := BuildTarget(towerDescription())
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}

	if got, want := target.Len(), 3; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}

	top, ok := target.Block("object5")
	if !ok {
		t.Fatal("object5 missing from target")
	}
	want := model.Vec3{X: 0, Y: 0.3, Z: 0.92}
	if PoseDistance(top.Pose, model.Pose{Position: want}) > 1e-9 {
		t.Errorf("object5 pose = %+v, want position %+v", top.Pose.Position, want)
	}
}

func TestBuildTargetDerivesRelativeFromAbsolute(t *testing.T) {
	target, err := BuildTarget(towerDescription())
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}

	base, _ := target.Block("object3")
	if base.ParentID != model.BaseID {
		t.Errorf("object3 parent = %q, want %q", base.ParentID, model.BaseID)
	}
	want := model.Vec3{X: 0, Y: 0.3, Z: 0.74}
	if base.Relative.Translation != want {
		t.Errorf("object3 relative translation = %+v, want %+v", base.Relative.Translation, want)
	}
}

func TestBuildTargetRejectsCycle(t *testing.T) {
	desc := SceneDescription{Blocks: []BlockDescription{
		{ID: "a", ParentID: "b", Relative: model.IdentityTransform()},
		{ID: "b", ParentID: "a", Relative: model.IdentityTransform()},
	}}

	_, err := BuildTarget(desc)
	if !errors.Is(err, ErrMalformedScene) {
		t.Fatalf("BuildTarget error = %v, want ErrMalformedScene", err)
	}
}

func TestBuildTargetRejectsUndefinedParent(t *testing.T) {
	desc := SceneDescription{Blocks: []BlockDescription{
		{ID: "a", ParentID: "ghost", Relative: model.IdentityTransform()},
	}}

	_, err := BuildTarget(desc)
	if !errors.Is(err, ErrMalformedScene) {
		t.Fatalf("BuildTarget error = %v, want ErrMalformedScene", err)
	}
}

func TestBuildTargetRejectsDuplicateAndReservedIDs(t *testing.T) {
	dup := SceneDescription{Blocks: []BlockDescription{
		{ID: "a", Relative: model.IdentityTransform()},
		{ID: "a", Relative: model.IdentityTransform()},
	}}
	if _, err := BuildTarget(dup); !errors.Is(err, ErrMalformedScene) {
		t.Errorf("duplicate id error = %v, want ErrMalformedScene", err)
	}

	reserved := SceneDescription{Blocks: []BlockDescription{
		{ID: model.BaseID, Relative: model.IdentityTransform()},
	}}
	if _, err := BuildTarget(reserved); !errors.Is(err, ErrMalformedScene) {
		t.Errorf("reserved id error = %v, want ErrMalformedScene", err)
	}
}

func TestDepthAndAncestors(t *testing.T) {
	target, err := BuildTarget(towerDescription())
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}

	if got, want := target.Depth("object3"), 1; got != want {
		t.Errorf("Depth(object3) = %d, want %d", got, want)
	}
	if got, want := target.Depth("object5"), 3; got != want {
		t.Errorf("Depth(object5) = %d, want %d", got, want)
	}

	anc := target.Ancestors("object5")
	if len(anc) != 2 || anc[0] != "object4" || anc[1] != "object3" {
		t.Errorf("Ancestors(object5) = %v, want [object4 object3]", anc)
	}
}

func TestResolvePoseIsIdempotent(t *testing.T) {
	target, err := BuildTarget(towerDescription())
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}

	first, err := target.ResolvePose("object5")
	if err != nil {
		t.Fatalf("ResolvePose: %v", err)
	}
	second, err := target.ResolvePose("object5")
	if err != nil {
		t.Fatalf("ResolvePose (second call): %v", err)
	}
	if first != second {
		t.Errorf("ResolvePose not idempotent: %+v vs %+v", first, second)
	}
}

func TestResolvePoseUnknownBlock(t *testing.T) {
	target, err := BuildTarget(towerDescription())
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}

	if _, err := target.ResolvePose("ghost"); !errors.Is(err, ErrUnknownBlock) {
		t.Fatalf("ResolvePose(ghost) error = %v, want ErrUnknownBlock", err)
	}
}

func TestBlockReturnsCopies(t *testing.T) {
	desc := towerDescription()
	desc.Blocks[0].Attrs = map[string]string{"color": "red"}
	target, err := BuildTarget(desc)
	if err != nil {
		t.Fatalf("BuildTarget: %v", err)
	}

	b, _ := target.Block("object3")
	b.Attrs["color"] = "blue"

	again, _ := target.Block("object3")
	if again.Attrs["color"] != "red" {
		t.Error("mutating a returned block leaked into the graph")
	}
}
