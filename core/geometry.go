package core

import (
	"math"

	"github.com/yuceelege/GNN-TAMP/model"
)

// DefaultPoseTolerance is the position tolerance (metres) used when
// comparing a realized structure against its target.
const DefaultPoseTolerance = 1e-3

// quatMul returns the Hamilton product a*b.
func quatMul(a, b model.Quat) model.Quat {
	return model.Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// quatNormalize returns q scaled to unit norm. A zero quaternion is
// treated as identity so that zero-valued transforms behave as pure
// translations.
func quatNormalize(q model.Quat) model.Quat {
	n := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if n == 0 {
		return model.IdentityQuat()
	}
	return model.Quat{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// rotateVec rotates v by the unit quaternion q.
func rotateVec(q model.Quat, v model.Vec3) model.Vec3 {
	// p' = q * (0, v) * q^-1, expanded to avoid allocating.
	u := model.Vec3{X: q.X, Y: q.Y, Z: q.Z}
	s := q.W

	dotUV := u.X*v.X + u.Y*v.Y + u.Z*v.Z
	dotUU := u.X*u.X + u.Y*u.Y + u.Z*u.Z
	cross := model.Vec3{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}

	return model.Vec3{
		X: 2*dotUV*u.X + (s*s-dotUU)*v.X + 2*s*cross.X,
		Y: 2*dotUV*u.Y + (s*s-dotUU)*v.Y + 2*s*cross.Y,
		Z: 2*dotUV*u.Z + (s*s-dotUU)*v.Z + 2*s*cross.Z,
	}
}

// ComposePose applies the relative transform t in the frame of parent and
// returns the resulting child pose.
func ComposePose(parent model.Pose, t model.Transform) model.Pose {
	pq := quatNormalize(parent.Orientation)
	offset := rotateVec(pq, t.Translation)
	return model.Pose{
		Position: model.Vec3{
			X: parent.Position.X + offset.X,
			Y: parent.Position.Y + offset.Y,
			Z: parent.Position.Z + offset.Z,
		},
		Orientation: quatNormalize(quatMul(pq, quatNormalize(t.Rotation))),
	}
}

// PoseDistance returns the straight-line distance between the positions of
// two poses.
func PoseDistance(a, b model.Pose) float64 {
	dx := a.Position.X - b.Position.X
	dy := a.Position.Y - b.Position.Y
	dz := a.Position.Z - b.Position.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PosesWithinTolerance reports whether two poses agree in position to
// within tol metres.
func PosesWithinTolerance(a, b model.Pose, tol float64) bool {
	if tol <= 0 {
		tol = DefaultPoseTolerance
	}
	return PoseDistance(a, b) <= tol
}

// RelativeTranslation returns the translation taking the parent position
// to the child position, ignoring orientation. The scene loaders use it to
// derive support-edge weights from absolute block positions.
func RelativeTranslation(parent, child model.Vec3) model.Vec3 {
	return model.Vec3{X: child.X - parent.X, Y: child.Y - parent.Y, Z: child.Z - parent.Z}
}
