// Package motion adapts the MotionSynthesis gRPC service to the planner's
// synthesis interface.
package motion

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yuceelege/GNN-TAMP/core"
	tampv1 "github.com/yuceelege/GNN-TAMP/internal/genproto/tampv1"
	"github.com/yuceelege/GNN-TAMP/internal/planner"
	"github.com/yuceelege/GNN-TAMP/model"
)

// Client calls a remote trajectory optimizer. The per-attempt compute
// budget becomes the RPC deadline, so a stuck solver surfaces as a timeout
// refusal rather than an error.
type Client struct {
	rpc tampv1.MotionSynthesisClient
}

// New creates a Client around an established gRPC client.
func New(rpc tampv1.MotionSynthesisClient) *Client {
	return &Client{rpc: rpc}
}

// Synthesize asks the optimizer for a trajectory placing block at target.
// The reply classifies refusals; deadline expiry maps to ReasonTimeout so
// the selector can defer rather than exclude the candidate.
func (c *Client) Synthesize(ctx context.Context, current *core.CurrentGraph, block model.Block, target model.Pose, budget time.Duration) (planner.SynthesisResult, error) {
	req := &tampv1.SynthesizeRequest{
		BlockId:       block.ID,
		TargetPose:    poseToProto(target),
		Size:          vecToProto(block.Size),
		BudgetSeconds: budget.Seconds(),
	}
	for _, body := range current.Bodies() {
		req.Bodies = append(req.Bodies, &tampv1.BodyState{
			Id:   body.ID,
			Pose: poseToProto(body.Pose),
			Size: vecToProto(body.Size),
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	resp, err := c.rpc.Synthesize(callCtx, req)
	if err != nil {
		if isDeadline(err) && ctx.Err() == nil {
			// The budget ran out, not the episode.
			return planner.SynthesisResult{Reason: model.ReasonTimeout}, nil
		}
		return planner.SynthesisResult{}, err
	}

	if !resp.GetFeasible() {
		return planner.SynthesisResult{Reason: reasonFromProto(resp.GetReason())}, nil
	}

	return planner.SynthesisResult{
		Feasible: true,
		Motion: model.Motion{
			BlockID:    block.ID,
			Trajectory: resp.GetTrajectory(),
		},
	}, nil
}

func isDeadline(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return status.Code(err) == codes.DeadlineExceeded
}

func reasonFromProto(r tampv1.FailureReason) model.FeasibilityReason {
	switch r {
	case tampv1.FailureReason_FAILURE_REASON_COLLISION:
		return model.ReasonCollision
	case tampv1.FailureReason_FAILURE_REASON_KINEMATIC_LIMIT:
		return model.ReasonKinematicLimit
	case tampv1.FailureReason_FAILURE_REASON_NO_SOLUTION_FOUND:
		return model.ReasonNoSolution
	case tampv1.FailureReason_FAILURE_REASON_TIMEOUT:
		return model.ReasonTimeout
	default:
		return model.ReasonUnspecified
	}
}

func poseToProto(p model.Pose) *tampv1.Pose {
	return &tampv1.Pose{
		Position: vecToProto(p.Position),
		Orientation: &tampv1.Quaternion{
			W: p.Orientation.W,
			X: p.Orientation.X,
			Y: p.Orientation.Y,
			Z: p.Orientation.Z,
		},
	}
}

func vecToProto(v model.Vec3) *tampv1.Vec3 {
	return &tampv1.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
