// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
// A vector is homogenized when W == 1. The arithmetic methods operate on
// X, Y and Z only and always return a homogenized result; they assume that
// their operands are already homogenized, which is not checked.
//
// Vector4 is also used for RGBA colors, with alpha in W.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Point returns a new homogenized [Vector4] (W = 1) at x, y, z.
func Point(x, y, z float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: 1}
}

// AxisX returns the homogenized unit vector along the X axis.
func AxisX() Vector4 { return Point(1, 0, 0) }

// AxisY returns the homogenized unit vector along the Y axis.
func AxisY() Vector4 { return Point(0, 1, 0) }

// AxisZ returns the homogenized unit vector along the Z axis.
func AxisZ() Vector4 { return Point(0, 0, 1) }

// WithW returns a copy of this vector with the W component replaced.
func (v Vector4) WithW(w float32) Vector4 {
	v.W = w
	return v
}

// Dim returns this vector component.
func (v Vector4) Dim(dim Dims) float32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	case W:
		return v.W
	default:
		panic("dim is out of range")
	}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// FromSlice returns a vector from the given slice, starting at offset.
func FromSlice(array []float32, offset int) Vector4 {
	return Vector4{array[offset], array[offset+1], array[offset+2], array[offset+3]}
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, 1}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, 1}
}

// MulScalar multiplies X, Y and Z by the scalar s and returns resulting vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, 1}
}

// Negate returns the vector with X, Y and Z negated.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, 1}
}

// Homogenize returns the vector with X, Y and Z divided by W, and W = 1.
// A vector that is already homogenized is returned unchanged.
// W == 0 produces infinities or NaN; use [Vector4.IsFinite] to guard.
func (v Vector4) Homogenize() Vector4 {
	if v.W == 1 {
		return v
	}
	return Vector4{v.X / v.W, v.Y / v.W, v.Z / v.W, 1}
}

// IsFinite returns true if no component is NaN or infinite.
func (v Vector4) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z) && IsFinite(v.W)
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector,
// over X, Y and Z.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with other,
// with W set to 1.
func (v Vector4) Cross(other Vector4) Vector4 {
	return Vector4{v.Y*other.Z - v.Z*other.Y, v.Z*other.X - v.X*other.Z, v.X*other.Y - v.Y*other.X, 1}
}

// Length returns the length (magnitude) of this vector over X, Y and Z.
func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DistanceTo returns the distance between the two points.
func (v Vector4) DistanceTo(other Vector4) float32 {
	return v.Sub(other).Length()
}

// Normal returns this vector divided by its length (its unit vector).
// A zero length vector is returned as is.
func (v Vector4) Normal() Vector4 {
	l := v.Length()
	if l == 0 {
		return Vector4{v.X, v.Y, v.Z, 1}
	}
	return v.MulScalar(1 / l)
}

// ApproxEqual returns true if X, Y, Z and W are each within tol of other.
func (v Vector4) ApproxEqual(other Vector4, tol float32) bool {
	return Abs(v.X-other.X) <= tol && Abs(v.Y-other.Y) <= tol &&
		Abs(v.Z-other.Z) <= tol && Abs(v.W-other.W) <= tol
}

// Matrix operations:

// MulMatrix4 returns vector multiplied by specified 4x4 matrix.
func (v Vector4) MulMatrix4(m Matrix4) Vector4 {
	return m.MulVector4(v)
}
