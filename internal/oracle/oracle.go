// Package oracle adapts the PriorityOracle gRPC service to the planner's
// ranking interface.
package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/yuceelege/GNN-TAMP/core"
	tampv1 "github.com/yuceelege/GNN-TAMP/internal/genproto/tampv1"
	"github.com/yuceelege/GNN-TAMP/internal/logging"
	"github.com/yuceelege/GNN-TAMP/model"
)

// Client calls a remote priority inference service. It translates the
// target/current graph pair into the wire encoding the oracle expects and
// validates the reply before the planner sees it.
type Client struct {
	rpc  tampv1.PriorityOracleClient
	seed int64
	log  logging.Logger
}

// New creates a Client around an established gRPC client. The seed is
// forwarded on every request so any sampling inside the oracle is
// reproducible across identical inputs.
func New(rpc tampv1.PriorityOracleClient, seed int64, log logging.Logger) *Client {
	if log == nil {
		log = logging.Noop()
	}
	return &Client{rpc: rpc, seed: seed, log: log}
}

// Rank encodes the graphs, calls the oracle, and returns one candidate per
// remaining block. Malformed replies (missing or extra IDs, non-finite
// scores) are reported as core.ErrOracle so the loop can fall back.
func (c *Client) Rank(ctx context.Context, target *core.TargetGraph, current *core.CurrentGraph) ([]core.Candidate, error) {
	remaining := current.Remaining()
	if len(remaining) == 0 {
		return nil, nil
	}

	req := &tampv1.RankRequest{
		RemainingIds: remaining,
		Seed:         c.seed,
	}
	c.encodeGraph(req, target, current)

	resp, err := c.rpc.Rank(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: rank rpc: %v", core.ErrOracle, err)
	}

	byID := make(map[string]float64, len(resp.GetScores()))
	for _, s := range resp.GetScores() {
		if _, dup := byID[s.GetId()]; dup {
			return nil, fmt.Errorf("%w: duplicate score for %q", core.ErrOracle, s.GetId())
		}
		if math.IsNaN(s.GetScore()) || math.IsInf(s.GetScore(), 0) {
			return nil, fmt.Errorf("%w: non-finite score for %q", core.ErrOracle, s.GetId())
		}
		byID[s.GetId()] = s.GetScore()
	}

	cands := make([]core.Candidate, 0, len(remaining))
	for _, id := range remaining {
		score, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: no score for remaining block %q", core.ErrOracle, id)
		}
		cands = append(cands, core.Candidate{ID: id, Score: score})
	}
	if len(byID) != len(remaining) {
		return nil, fmt.Errorf("%w: reply covers %d blocks, want %d", core.ErrOracle, len(byID), len(remaining))
	}

	return cands, nil
}

// encodeGraph writes the target structure into req the way the GNN was
// trained to see it: one node row per block, one directed edge per support
// relation carrying the relative offset between the two frames. Node order
// follows TargetGraph.IDs so identical graphs always encode identically.
func (c *Client) encodeGraph(req *tampv1.RankRequest, target *core.TargetGraph, current *core.CurrentGraph) {
	ids := target.IDs()

	req.Nodes = make([]*tampv1.GraphNode, 0, len(ids))
	for _, id := range ids {
		placed := 0.0
		if current.IsPlaced(id) {
			placed = 1.0
		}
		req.Nodes = append(req.Nodes, &tampv1.GraphNode{
			Id:       id,
			Features: []float64{1, placed},
		})
	}

	for _, id := range ids {
		block, ok := target.Block(id)
		if !ok || block.ParentID == model.BaseID {
			continue
		}
		rel := block.Relative.Translation
		req.Edges = append(req.Edges, &tampv1.GraphEdge{
			Source:     block.ParentID,
			Target:     id,
			Attributes: []float64{rel.X, rel.Y, rel.Z},
		})
	}
}
