// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"

	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/scene"
)

// Rotation is the widget that rotates the selected node around one of
// its axes. It has a torus handle per axis, and six free spheres on the
// axes at the torus radius, which do not move anything.
type Rotation struct {
	Base
}

var _ Widget = (*Rotation)(nil)

// NewRotation returns a new rotation widget with geometry
// built from the given settings (defaults if nil).
func NewRotation(s *config.Settings) *Rotation {
	rw := &Rotation{}
	rw.init("rotation-widget", s)
	s = rw.Settings

	tmpl := scene.NewNode("torus")
	tmpl.Shape = scene.TorusShape(s.TorusRadius, s.TorusTube, 2*s.Segments, max(s.Segments/2, 3), s.YColor.Vector4())

	xh := tmpl.Clone()
	xh.Name = "x"
	xh.Shape.Color = s.XColor.Vector4()
	xh.SetTransform(axisPose(-90, math32.AxisZ()))
	rw.addHandle(xh, XAxis)

	yh := tmpl.Clone()
	yh.Name = "y"
	rw.addHandle(yh, YAxis)

	zh := tmpl.Clone()
	zh.Name = "z"
	zh.Shape.Color = s.ZColor.Vector4()
	zh.SetTransform(axisPose(90, math32.AxisX()))
	rw.addHandle(zh, ZAxis)

	r := s.TorusRadius
	for _, dim := range []math32.Dims{math32.X, math32.Y, math32.Z} {
		for _, sign := range []float32{1, -1} {
			c := math32.Point(0, 0, 0)
			switch dim {
			case math32.X:
				c.X = sign * r
			case math32.Y:
				c.Y = sign * r
			case math32.Z:
				c.Z = sign * r
			}
			sp := scene.NewNode(freeSphereName(dim, sign))
			sp.Shape = scene.SphereShape(s.SphereRadius, c, s.Segments, s.FreeColor.Vector4())
			rw.addHandle(sp, NoAxis)
		}
	}
	return rw
}

// freeSphereName returns the handle name of a free sphere, e.g. "free-x".
func freeSphereName(dim math32.Dims, sign float32) string {
	s := "+"
	if sign < 0 {
		s = "-"
	}
	return fmt.Sprintf("free%s%s", s, Axes(dim+1))
}

func (rw *Rotation) Mode() Modes {
	return RotationMode
}

// ExecuteMove rotates the selected node around the axis of the active
// handle, by one degree per pixel of drag magnitude.
func (rw *Rotation) ExecuteMove(dx, dy int) error {
	axis, ok := rw.activeAxis()
	if !ok {
		return nil
	}
	angle := math32.DegToRad(float32(magnitude(dx, dy)))
	v := axis.vector(rw.Settings.RotationXSign)
	rw.logMove(RotationMode, axis, angle)
	return rw.apply(func(tr math32.Transform) (math32.Transform, error) {
		return tr.Rotate(angle, v)
	})
}

func (rw *Rotation) UpdateView() error {
	return rw.updateView(false)
}
