package model

// PlacementStatus tracks whether a block has been physically realized.
type PlacementStatus int

const (
	StatusPending PlacementStatus = iota
	StatusPlaced
	StatusFailed
)

// String returns the lowercase name used in logs and checkpoints.
func (s PlacementStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPlaced:
		return "placed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BaseID is the identifier of the immovable base node. Blocks whose
// ParentID equals BaseID (or is empty) rest directly on the table.
const BaseID = "base"

// Block is a node of the scene graph: a rigid body with a stable
// identifier, a pose, a geometric size, and a support parent.
//
// In a target graph the pose is the final intended pose and the parent
// reference encodes the intended support relation; in a current graph the
// pose is the realized one reported by the actuator.
type Block struct {
	ID       string
	ParentID string // BaseID or another block's ID

	// Relative places the block with respect to its support parent.
	// For blocks resting on the base it equals the absolute pose.
	Relative Transform

	Pose   Pose
	Size   Vec3
	Status PlacementStatus

	// StagedPose is where the block waits before assembly (the staging
	// row in front of the robot). Zero if the scene does not stage.
	StagedPose Pose

	// Attrs carries display attributes (color etc.) opaquely.
	Attrs map[string]string
}

// FeasibilityReason classifies a motion-synthesis refusal.
type FeasibilityReason int

const (
	ReasonUnspecified FeasibilityReason = iota
	ReasonCollision
	ReasonKinematicLimit
	ReasonNoSolution
	ReasonTimeout
)

func (r FeasibilityReason) String() string {
	switch r {
	case ReasonCollision:
		return "collision"
	case ReasonKinematicLimit:
		return "kinematic_limit"
	case ReasonNoSolution:
		return "no_solution_found"
	case ReasonTimeout:
		return "timeout"
	default:
		return "unspecified"
	}
}

// Hard reports whether the reason rules the candidate out for the rest of
// the current iteration. Timeouts are soft: the candidate is retried after
// the others.
func (r FeasibilityReason) Hard() bool {
	switch r {
	case ReasonCollision, ReasonKinematicLimit, ReasonNoSolution:
		return true
	default:
		return false
	}
}

// Motion is the opaque trajectory artifact produced by the synthesis
// engine and handed to the actuator unmodified.
type Motion struct {
	BlockID    string
	Trajectory []byte
}

// ExecutionResult is what the actuator reports after running a motion.
// RealizedPose may differ from the commanded pose; graph updates must use
// the realized one.
type ExecutionResult struct {
	OK           bool
	RealizedPose Pose
	Fault        string
}
