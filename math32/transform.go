// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// RigidTolerance is the tolerance used to decide whether the basis
// of a [Transform] is still orthonormal.
const RigidTolerance = 1e-3

// Transform is a [Matrix4] holding the pose of a node: columns 0-2 are
// the rotation basis (orthonormal for well-formed poses, although this is
// not enforced and repeated composition can drift) and column 3 is the
// translation.
type Transform struct {
	Matrix4
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Identity4()}
}

// TransformFromMatrix returns a transform holding the given matrix.
func TransformFromMatrix(m Matrix4) Transform {
	return Transform{m}
}

// rotation33 returns the Rodrigues rotation matrix for the given unit axis
// and angle, in column-major order.
func rotation33(angle float32, axis Vector4) [9]float32 {
	c := Cos(angle)
	s := Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return [9]float32{
		c + x*x*t, x*y*t + z*s, x*z*t - y*s,
		x*y*t - z*s, c + y*y*t, y*z*t + x*s,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t,
	}
}

// Rotate returns the transform rotated by angle (radians) around axis.
// The axis is homogenized and normalized first. The rotation is composed
// on the left of the existing basis and the translation column is kept,
// so the node turns around its current origin. A zero-length or non-finite
// axis returns [ErrInvalidAxis] and the unchanged transform.
func (tr Transform) Rotate(angle float32, axis Vector4) (Transform, error) {
	axis = axis.Homogenize()
	if !axis.IsFinite() || axis.LengthSquared() == 0 || !IsFinite(angle) {
		return tr, fmt.Errorf("rotating by %v around %v: %w", angle, axis, ErrInvalidAxis)
	}
	r := rotation33(angle, axis.Normal())
	a := tr.Matrix4
	res := tr
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			res.Matrix4[col*4+row] = r[row]*a[col*4] + r[3+row]*a[col*4+1] + r[6+row]*a[col*4+2]
		}
	}
	return res, nil
}

// Translate returns the transform moved by v, expressed in the transform's
// own axes: the translation becomes t + xAxis*v.X + yAxis*v.Y + zAxis*v.Z.
func (tr Transform) Translate(v Vector4) Transform {
	m := tr.Matrix4
	m[12] += m[0]*v.X + m[4]*v.Y + m[8]*v.Z
	m[13] += m[1]*v.X + m[5]*v.Y + m[9]*v.Z
	m[14] += m[2]*v.X + m[6]*v.Y + m[10]*v.Z
	return Transform{m}
}

// Translation returns the translation column as a homogenized point.
func (tr Transform) Translation() Vector4 {
	return Point(tr.Matrix4[12], tr.Matrix4[13], tr.Matrix4[14])
}

// SetTranslation returns the transform with its translation column set to v.
func (tr Transform) SetTranslation(v Vector4) Transform {
	tr.Matrix4 = tr.Matrix4.SetColumn(3, v.WithW(1))
	return tr
}

// Rotation returns the rotation basis of the transform, with zero translation.
func (tr Transform) Rotation() Transform {
	return Transform{Identity4()}.SetRotation(tr)
}

// SetRotation returns the transform with columns 0-2 copied from other.
func (tr Transform) SetRotation(other Transform) Transform {
	copy(tr.Matrix4[0:12], other.Matrix4[0:12])
	return tr
}

// Axis returns the given basis column (0..2) as a direction vector.
func (tr Transform) Axis(dim Dims) Vector4 {
	return tr.Matrix4.Column(int(dim)).WithW(1)
}

// Scale returns the transform with its basis columns multiplied by s.
func (tr Transform) Scale(s float32) Transform {
	m := tr.Matrix4
	for i := 0; i < 12; i++ {
		if i%4 == 3 {
			continue
		}
		m[i] *= s
	}
	return Transform{m}
}

// Mul returns the composition tr * other, applying other first.
func (tr Transform) Mul(other Transform) Transform {
	return Transform{tr.Matrix4.Mul(other.Matrix4)}
}

// Inverse returns the inverse transform, or [ErrSingular].
func (tr Transform) Inverse() (Transform, error) {
	inv, err := tr.Matrix4.Inverse()
	return Transform{inv}, err
}

// IsRigid returns true if the basis columns are unit length and mutually
// orthogonal within tol, and form a right-handed basis.
func (tr Transform) IsRigid(tol float32) bool {
	x, y, z := tr.Axis(X), tr.Axis(Y), tr.Axis(Z)
	if Abs(x.Length()-1) > tol || Abs(y.Length()-1) > tol || Abs(z.Length()-1) > tol {
		return false
	}
	if Abs(x.Dot(y)) > tol || Abs(y.Dot(z)) > tol || Abs(x.Dot(z)) > tol {
		return false
	}
	return x.Cross(y).Dot(z) > 0
}

// Orthonormalize returns the transform with its basis re-orthogonalized
// by Gram-Schmidt, starting from the X axis. It corrects the drift that
// accumulates over many incremental rotations.
func (tr Transform) Orthonormalize() Transform {
	x := tr.Axis(X).Normal()
	y := tr.Axis(Y)
	y = y.Sub(x.MulScalar(x.Dot(y))).Normal()
	z := x.Cross(y)
	m := tr.Matrix4
	m = m.SetColumn(0, x.WithW(m[3]))
	m = m.SetColumn(1, y.WithW(m[7]))
	m = m.SetColumn(2, z.WithW(m[11]))
	return Transform{m}
}

// EulerAngles returns the rotation of the transform decomposed as
// Rz(z) * Ry(y) * Rx(x), in radians. When the Y rotation is ±90 degrees
// (gimbal lock) the Z angle is reported as 0 and folded into X.
// It returns [ErrUnsupported] if the basis is not a rigid rotation.
func (tr Transform) EulerAngles() (x, y, z float32, err error) {
	if !tr.IsRigid(RigidTolerance) {
		return 0, 0, 0, fmt.Errorf("euler angles of a non-rigid basis: %w", ErrUnsupported)
	}
	m := tr.Matrix4
	m20 := Clamp(m[2], -1, 1)
	y = Asin(-m20)
	if Abs(m20) < 1-1e-6 {
		x = Atan2(m[6], m[10])
		z = Atan2(m[1], m[0])
		return x, y, z, nil
	}
	if m20 < 0 {
		x = Atan2(m[4], m[8])
	} else {
		x = Atan2(-m[4], -m[8])
	}
	return x, y, 0, nil
}

// XRotation returns the X Euler angle of the transform; see [Transform.EulerAngles].
func (tr Transform) XRotation() (float32, error) {
	x, _, _, err := tr.EulerAngles()
	return x, err
}

// YRotation returns the Y Euler angle of the transform; see [Transform.EulerAngles].
func (tr Transform) YRotation() (float32, error) {
	_, y, _, err := tr.EulerAngles()
	return y, err
}

// ZRotation returns the Z Euler angle of the transform; see [Transform.EulerAngles].
func (tr Transform) ZRotation() (float32, error) {
	_, _, z, err := tr.EulerAngles()
	return z, err
}
