// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/gizmo/math32"
)

// OrbitCamera is a camera orbiting a target point. It looks down its
// local -Z axis at the target, with +Y up.
type OrbitCamera struct {

	// Target is the point the camera looks at.
	Target math32.Vector4

	// Distance is the distance from the camera to the target.
	Distance float32

	// Pitch is the elevation above the target, in degrees.
	Pitch float32

	// Yaw is the rotation around the vertical axis, in degrees.
	Yaw float32
}

// NewOrbitCamera returns a new orbit camera.
func NewOrbitCamera(target math32.Vector4, dist, pitch, yaw float32) *OrbitCamera {
	return &OrbitCamera{
		Target:   target,
		Distance: dist,
		Pitch:    pitch,
		Yaw:      yaw,
	}
}

// Position returns the position of the camera in world space.
func (c *OrbitCamera) Position() math32.Vector4 {
	p := math32.DegToRad(c.Pitch)
	y := math32.DegToRad(c.Yaw)
	return math32.Point(
		c.Distance*math32.Cos(p)*math32.Sin(y),
		c.Distance*math32.Sin(p),
		c.Distance*math32.Cos(p)*math32.Cos(y),
	).Add(c.Target)
}

// AbsoluteTransform returns the camera pose in world space.
func (c *OrbitCamera) AbsoluteTransform() math32.Transform {
	pos := c.Position()
	return LookAt(pos, c.Target, math32.AxisY())
}

// LookAt returns a pose at eye whose -Z axis points at target,
// with the Y axis as close to up as possible.
func LookAt(eye, target, up math32.Vector4) math32.Transform {
	z := eye.Sub(target).Normal()
	if z.LengthSquared() == 0 {
		return math32.NewTransform().SetTranslation(eye)
	}
	x := up.Cross(z)
	if x.LengthSquared() < 1e-12 {
		x = math32.AxisZ().Cross(z)
	}
	x = x.Normal()
	y := z.Cross(x)
	m := math32.Matrix4FromColumns(x.WithW(0), y.WithW(0), z.WithW(0), eye.WithW(1))
	return math32.TransformFromMatrix(m)
}
