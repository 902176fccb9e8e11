package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yuceelege/GNN-TAMP/model"
)

var (
	ErrMalformedScene     = errors.New("malformed scene description")
	ErrUnresolvedParent   = errors.New("unresolved parent in support chain")
	ErrUnknownBlock       = errors.New("unknown block")
	ErrDuplicatePlacement = errors.New("block already placed")
)

// BlockDescription is one block of a scene description, as produced by the
// loaders. Exactly one of Position (absolute) or Relative (parent-frame
// offset) must be meaningful; when ParentID is empty the block rests on the
// base and Relative is interpreted in the base frame.
type BlockDescription struct {
	ID          string
	ParentID    string
	Position    model.Vec3 // absolute, used when HasAbsolute
	Relative    model.Transform
	HasAbsolute bool
	Size        model.Vec3
	Staged      model.Pose // where the block waits before assembly
	Attrs       map[string]string
}

// SceneDescription is the structured input consumed by BuildTarget. Fields
// beyond identity, parent, transform, and size pass through opaquely.
type SceneDescription struct {
	Blocks []BlockDescription
}

// TargetGraph is the immutable desired structure: every block with its
// final pose, support parent, and the relative transform deriving its pose
// from the parent. Blocks are stored by value; accessors return copies so
// no caller can alias graph-owned state.
type TargetGraph struct {
	blocks   map[string]model.Block
	children map[string][]string // derived index, rebuilt at construction
	order    []string            // IDs sorted, for deterministic iteration
}

// BuildTarget validates a scene description and constructs the target
// graph. It fails with ErrMalformedScene when a block references an
// undefined parent or when the declared parent references form a cycle.
func BuildTarget(desc SceneDescription) (*TargetGraph, error) {
	if len(desc.Blocks) == 0 {
		return nil, fmt.Errorf("%w: no blocks", ErrMalformedScene)
	}

	byID := make(map[string]BlockDescription, len(desc.Blocks))
	for _, b := range desc.Blocks {
		if b.ID == "" {
			return nil, fmt.Errorf("%w: block with empty id", ErrMalformedScene)
		}
		if b.ID == model.BaseID {
			return nil, fmt.Errorf("%w: block id %q is reserved", ErrMalformedScene, model.BaseID)
		}
		if _, dup := byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate block id %q", ErrMalformedScene, b.ID)
		}
		byID[b.ID] = b
	}

	// Parent references must point at a defined block or the base.
	for _, b := range desc.Blocks {
		if p := parentOrBase(b.ParentID); p != model.BaseID {
			if _, ok := byID[p]; !ok {
				return nil, fmt.Errorf("%w: block %q references undefined parent %q", ErrMalformedScene, b.ID, p)
			}
		}
	}

	// Cycle check: follow each parent chain; a chain longer than the block
	// count cannot occur in a forest.
	for _, b := range desc.Blocks {
		seen := map[string]bool{b.ID: true}
		for cur := parentOrBase(b.ParentID); cur != model.BaseID; {
			if seen[cur] {
				return nil, fmt.Errorf("%w: support cycle through %q", ErrMalformedScene, cur)
			}
			seen[cur] = true
			cur = parentOrBase(byID[cur].ParentID)
		}
	}

	t := &TargetGraph{
		blocks:   make(map[string]model.Block, len(desc.Blocks)),
		children: make(map[string][]string),
	}

	// Resolve absolute poses top-down so every relative transform is
	// derivable, whichever form the description used.
	resolved := make(map[string]model.Pose, len(desc.Blocks)+1)
	resolved[model.BaseID] = model.IdentityPose()

	var place func(id string) model.Pose
	place = func(id string) model.Pose {
		if pose, ok := resolved[id]; ok {
			return pose
		}
		d := byID[id]
		parent := parentOrBase(d.ParentID)
		parentPose := place(parent)

		var pose model.Pose
		rel := d.Relative
		if d.HasAbsolute {
			pose = model.Pose{Position: d.Position, Orientation: model.IdentityQuat()}
			rel = model.Transform{
				Translation: RelativeTranslation(parentPose.Position, d.Position),
				Rotation:    model.IdentityQuat(),
			}
		} else {
			pose = ComposePose(parentPose, rel)
		}
		resolved[id] = pose

		t.blocks[id] = model.Block{
			ID:         id,
			ParentID:   parent,
			Relative:   rel,
			Pose:       pose,
			Size:       d.Size,
			Status:     model.StatusPending,
			StagedPose: d.Staged,
			Attrs:      copyAttrs(d.Attrs),
		}
		return pose
	}

	for _, b := range desc.Blocks {
		place(b.ID)
		t.order = append(t.order, b.ID)
		parent := parentOrBase(b.ParentID)
		t.children[parent] = append(t.children[parent], b.ID)
	}

	sort.Strings(t.order)
	for _, kids := range t.children {
		sort.Strings(kids)
	}
	return t, nil
}

// Len returns the number of blocks in the target.
func (t *TargetGraph) Len() int { return len(t.blocks) }

// IDs returns all block identifiers in sorted order.
func (t *TargetGraph) IDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Block returns a copy of the named block.
func (t *TargetGraph) Block(id string) (model.Block, bool) {
	b, ok := t.blocks[id]
	if ok {
		b.Attrs = copyAttrs(b.Attrs)
	}
	return b, ok
}

// Parent returns the support parent of id (model.BaseID for base blocks).
func (t *TargetGraph) Parent(id string) (string, bool) {
	b, ok := t.blocks[id]
	if !ok {
		return "", false
	}
	return b.ParentID, true
}

// Children returns the IDs supported directly by id, sorted.
func (t *TargetGraph) Children(id string) []string {
	kids := t.children[id]
	out := make([]string, len(kids))
	copy(out, kids)
	return out
}

// Depth returns the support depth of id: 1 for blocks on the base, one
// more per level of stacking, 0 for unknown IDs.
func (t *TargetGraph) Depth(id string) int {
	depth := 0
	for cur := id; cur != model.BaseID; {
		b, ok := t.blocks[cur]
		if !ok {
			return 0
		}
		depth++
		cur = b.ParentID
	}
	return depth
}

// Ancestors returns the support chain of id from its direct parent up to,
// but not including, the base.
func (t *TargetGraph) Ancestors(id string) []string {
	var out []string
	b, ok := t.blocks[id]
	if !ok {
		return nil
	}
	for cur := b.ParentID; cur != model.BaseID; {
		out = append(out, cur)
		parent, ok := t.blocks[cur]
		if !ok {
			break
		}
		cur = parent.ParentID
	}
	return out
}

// ResolvePose composes the chain of relative transforms from the base down
// to id and returns the absolute target pose. The chain is re-walked on
// every call; construction guarantees it is complete, but a gap is still
// reported as ErrUnresolvedParent rather than trusted.
func (t *TargetGraph) ResolvePose(id string) (model.Pose, error) {
	b, ok := t.blocks[id]
	if !ok {
		return model.Pose{}, fmt.Errorf("%w: %q", ErrUnknownBlock, id)
	}

	// Collect the chain base->...->id.
	chain := []model.Block{b}
	for cur := b.ParentID; cur != model.BaseID; {
		parent, ok := t.blocks[cur]
		if !ok {
			return model.Pose{}, fmt.Errorf("%w: %q missing while resolving %q", ErrUnresolvedParent, cur, id)
		}
		chain = append(chain, parent)
		cur = parent.ParentID
	}

	pose := model.IdentityPose()
	for i := len(chain) - 1; i >= 0; i-- {
		pose = ComposePose(pose, chain[i].Relative)
	}
	return pose, nil
}

func parentOrBase(parentID string) string {
	if parentID == "" {
		return model.BaseID
	}
	return parentID
}

func copyAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
