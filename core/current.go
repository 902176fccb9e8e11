package core

import (
	"fmt"
	"sort"

	"github.com/yuceelege/GNN-TAMP/model"
)

// CurrentGraph is the realized side of an episode: which target blocks
// have actually been placed and at what poses. It starts with the base
// only and grows by exactly one block per successful placement.
//
// Ownership: the replanning loop owns the graph exclusively and mutates it
// only in its Updating state; there is no internal locking.
type CurrentGraph struct {
	target *TargetGraph
	placed map[string]model.Block // realized poses
	order  []string               // placement sequence
}

// NewCurrentGraph returns the initial current graph for an episode: base
// only, every target block pending.
func NewCurrentGraph(target *TargetGraph) *CurrentGraph {
	return &CurrentGraph{
		target: target,
		placed: make(map[string]model.Block, target.Len()),
	}
}

// Target returns the immutable target this graph realizes.
func (c *CurrentGraph) Target() *TargetGraph { return c.target }

// ApplyPlacement records that id was physically placed at realized. The
// realized pose, not the commanded one, becomes the block's pose; children
// resolved afterwards inherit any placement error.
func (c *CurrentGraph) ApplyPlacement(id string, realized model.Pose) error {
	b, ok := c.target.Block(id)
	if !ok {
		return fmt.Errorf("%w: %q is not part of the target", ErrUnknownBlock, id)
	}
	if _, done := c.placed[id]; done {
		return fmt.Errorf("%w: %q", ErrDuplicatePlacement, id)
	}

	b.Pose = realized
	b.Status = model.StatusPlaced
	c.placed[id] = b
	c.order = append(c.order, id)
	return nil
}

// Remaining returns the target blocks not yet placed, sorted by ID. It is
// a pure function of the two graphs and drives loop termination.
func (c *CurrentGraph) Remaining() []string {
	var out []string
	for _, id := range c.target.IDs() {
		if _, done := c.placed[id]; !done {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// IsPlaced reports whether id has been realized.
func (c *CurrentGraph) IsPlaced(id string) bool {
	_, ok := c.placed[id]
	return ok
}

// RealizedPose returns the actual pose id was placed at.
func (c *CurrentGraph) RealizedPose(id string) (model.Pose, bool) {
	b, ok := c.placed[id]
	return b.Pose, ok
}

// PlacedCount returns how many blocks have been realized.
func (c *CurrentGraph) PlacedCount() int { return len(c.placed) }

// PlacementOrder returns the realized placement sequence.
func (c *CurrentGraph) PlacementOrder() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// UnresolvedAncestors counts the target ancestors of id that are not yet
// placed. The selector uses it as the first tie-break: fewer unresolved
// ancestors means the candidate attaches closer to the existing structure.
func (c *CurrentGraph) UnresolvedAncestors(id string) int {
	n := 0
	for _, anc := range c.target.Ancestors(id) {
		if !c.IsPlaced(anc) {
			n++
		}
	}
	return n
}

// Bodies returns the scene state handed to the motion synthesizer, sorted
// by ID: placed blocks at their realized poses, plus pending blocks still
// waiting at a staging pose. Pending blocks without a staging pose are not
// physical bodies yet and are omitted.
func (c *CurrentGraph) Bodies() []model.Block {
	out := make([]model.Block, 0, c.target.Len())
	for _, id := range c.target.IDs() {
		if b, ok := c.placed[id]; ok {
			out = append(out, b)
			continue
		}
		b, _ := c.target.Block(id)
		if b.StagedPose.IsZero() {
			continue
		}
		b.Pose = b.StagedPose
		out = append(out, b)
	}
	return out
}

// ResolveCandidatePose derives the absolute pose a pending block should be
// placed at, given what has actually been realized: the chain of relative
// transforms is rooted at the nearest placed ancestor's realized pose (or
// the base), so actuator placement error propagates to descendants.
func (c *CurrentGraph) ResolveCandidatePose(id string) (model.Pose, error) {
	b, ok := c.target.Block(id)
	if !ok {
		return model.Pose{}, fmt.Errorf("%w: %q", ErrUnknownBlock, id)
	}

	// Walk up until a placed ancestor or the base, collecting transforms.
	chain := []model.Block{b}
	root := model.IdentityPose()
	for cur := b.ParentID; cur != model.BaseID; {
		if placed, ok := c.placed[cur]; ok {
			root = placed.Pose
			break
		}
		parent, ok := c.target.Block(cur)
		if !ok {
			return model.Pose{}, fmt.Errorf("%w: %q missing while resolving %q", ErrUnresolvedParent, cur, id)
		}
		chain = append(chain, parent)
		cur = parent.ParentID
	}

	pose := root
	for i := len(chain) - 1; i >= 0; i-- {
		pose = ComposePose(pose, chain[i].Relative)
	}
	return pose, nil
}

// MatchesTarget reports whether every target block has been placed within
// tol metres of its current-aware resolved pose.
func (c *CurrentGraph) MatchesTarget(tol float64) bool {
	if len(c.Remaining()) > 0 {
		return false
	}
	for _, id := range c.target.IDs() {
		want, err := c.target.ResolvePose(id)
		if err != nil {
			return false
		}
		got, ok := c.RealizedPose(id)
		if !ok {
			return false
		}
		// Compare against the pure target; realized error within tol.
		if !PosesWithinTolerance(got, want, tol) {
			return false
		}
	}
	return true
}

// GraphSnapshot is the serializable state of a current graph, written by
// the checkpoint store between iterations.
type GraphSnapshot struct {
	Order []string
	Poses map[string]model.Pose
}

// Snapshot exports the placement sequence and realized poses.
func (c *CurrentGraph) Snapshot() GraphSnapshot {
	snap := GraphSnapshot{
		Order: c.PlacementOrder(),
		Poses: make(map[string]model.Pose, len(c.placed)),
	}
	for id, b := range c.placed {
		snap.Poses[id] = b.Pose
	}
	return snap
}

// RestoreCurrentGraph rebuilds a current graph from a snapshot, replaying
// placements in their original order against the target.
func RestoreCurrentGraph(target *TargetGraph, snap GraphSnapshot) (*CurrentGraph, error) {
	c := NewCurrentGraph(target)
	for _, id := range snap.Order {
		pose, ok := snap.Poses[id]
		if !ok {
			return nil, fmt.Errorf("%w: snapshot missing pose for %q", ErrUnknownBlock, id)
		}
		if err := c.ApplyPlacement(id, pose); err != nil {
			return nil, err
		}
	}
	return c, nil
}
