package model

// Vec3 is a position or size in metres.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Quat is an orientation quaternion (w, x, y, z), identity = (1,0,0,0).
type Quat struct {
	W float64
	X float64
	Y float64
	Z float64
}

// IdentityQuat returns the identity orientation.
func IdentityQuat() Quat { return Quat{W: 1} }

// Pose is a rigid-body pose: position plus orientation.
type Pose struct {
	Position    Vec3
	Orientation Quat
}

// IdentityPose returns the pose at the origin with identity orientation.
func IdentityPose() Pose { return Pose{Orientation: IdentityQuat()} }

// IsZero reports whether the pose is the zero value, which marks an unset
// optional pose such as Block.StagedPose.
func (p Pose) IsZero() bool { return p == Pose{} }

// Transform is a relative rigid transform from a parent frame to a child
// frame. It has the same shape as Pose but different semantics: it is an
// edge weight, not a state.
type Transform struct {
	Translation Vec3
	Rotation    Quat
}

// IdentityTransform returns the no-op transform.
func IdentityTransform() Transform { return Transform{Rotation: IdentityQuat()} }
