package core

import (
	"errors"
	"sort"

	"github.com/yuceelege/GNN-TAMP/model"
)

// ErrOracle marks a failed or malformed reply from the priority inference
// engine. It is never fatal: the loop degrades to FallbackRank.
var ErrOracle = errors.New("priority oracle failure")

// Candidate is a pending block under consideration for the next
// placement: its priority score and the absolute pose it would be placed
// at. Candidates live for a single planning iteration.
type Candidate struct {
	ID    string
	Score float64
	Pose  model.Pose
}

// SortCandidates orders a candidate list for selection: score descending,
// then fewest unresolved ancestors (closest to the built structure), then
// lowest ID so equal inputs always produce the same order.
func SortCandidates(cands []Candidate, current *CurrentGraph) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		ui, uj := current.UnresolvedAncestors(cands[i].ID), current.UnresolvedAncestors(cands[j].ID)
		if ui != uj {
			return ui < uj
		}
		return cands[i].ID < cands[j].ID
	})
}

// FallbackRank is the deterministic ranking used when the oracle is
// unavailable: support depth ascending (bottom layers first), ID as the
// tie-break. Scores are the negated depth so that the usual
// "higher = sooner" convention holds.
func FallbackRank(target *TargetGraph, current *CurrentGraph) []Candidate {
	remaining := current.Remaining()
	cands := make([]Candidate, 0, len(remaining))
	for _, id := range remaining {
		cands = append(cands, Candidate{
			ID:    id,
			Score: -float64(target.Depth(id)),
		})
	}
	SortCandidates(cands, current)
	return cands
}
