// Package actuator adapts the Actuator gRPC service to the planner's
// execution interface.
package actuator

import (
	"context"
	"fmt"

	tampv1 "github.com/yuceelege/GNN-TAMP/internal/genproto/tampv1"
	"github.com/yuceelege/GNN-TAMP/model"
)

// Client hands committed trajectories to the robot controller.
type Client struct {
	rpc tampv1.ActuatorClient
}

// New creates a Client around an established gRPC client.
func New(rpc tampv1.ActuatorClient) *Client {
	return &Client{rpc: rpc}
}

// Execute runs the motion and reports where the block actually settled.
// A missing realized pose in an otherwise successful reply is a protocol
// violation: the planner must never fall back to the commanded pose.
func (c *Client) Execute(ctx context.Context, motion model.Motion, commanded model.Pose) (model.ExecutionResult, error) {
	resp, err := c.rpc.Execute(ctx, &tampv1.ExecuteRequest{
		BlockId:       motion.BlockID,
		Trajectory:    motion.Trajectory,
		CommandedPose: poseToProto(commanded),
	})
	if err != nil {
		return model.ExecutionResult{}, fmt.Errorf("execute rpc: %w", err)
	}

	if !resp.GetOk() {
		fault := resp.GetFault()
		if fault == "" {
			fault = "unreported actuator fault"
		}
		return model.ExecutionResult{Fault: fault}, nil
	}

	realized := resp.GetRealizedPose()
	if realized == nil {
		return model.ExecutionResult{}, fmt.Errorf("execute reply for %q has no realized pose", motion.BlockID)
	}

	return model.ExecutionResult{
		OK:           true,
		RealizedPose: poseFromProto(realized),
	}, nil
}

func poseToProto(p model.Pose) *tampv1.Pose {
	return &tampv1.Pose{
		Position: &tampv1.Vec3{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z},
		Orientation: &tampv1.Quaternion{
			W: p.Orientation.W,
			X: p.Orientation.X,
			Y: p.Orientation.Y,
			Z: p.Orientation.Z,
		},
	}
}

func poseFromProto(p *tampv1.Pose) model.Pose {
	out := model.Pose{Orientation: model.IdentityQuat()}
	if pos := p.GetPosition(); pos != nil {
		out.Position = model.Vec3{X: pos.GetX(), Y: pos.GetY(), Z: pos.GetZ()}
	}
	if q := p.GetOrientation(); q != nil {
		out.Orientation = model.Quat{W: q.GetW(), X: q.GetX(), Y: q.GetY(), Z: q.GetZ()}
	}
	return out
}
