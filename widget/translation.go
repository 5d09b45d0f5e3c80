// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/scene"
)

// Translation is the widget that moves the selected node along one of
// its local axes. It has a capsule handle per axis and a free sphere
// handle at the origin, which does not move anything.
type Translation struct {
	Base
}

var _ Widget = (*Translation)(nil)

// NewTranslation returns a new translation widget with geometry
// built from the given settings (defaults if nil).
func NewTranslation(s *config.Settings) *Translation {
	tw := &Translation{}
	tw.init("translation-widget", s)
	s = tw.Settings

	tmpl := scene.NewNode("capsule")
	tmpl.Shape = scene.CapsuleShape(s.HandleRadius, s.HandleLength, s.Segments, s.YColor.Vector4())

	xh := tmpl.Clone()
	xh.Name = "x"
	xh.Shape.Color = s.XColor.Vector4()
	xh.SetTransform(axisPose(-90, math32.AxisZ()))
	tw.addHandle(xh, XAxis)

	yh := tmpl.Clone()
	yh.Name = "y"
	tw.addHandle(yh, YAxis)

	zh := tmpl.Clone()
	zh.Name = "z"
	zh.Shape.Color = s.ZColor.Vector4()
	zh.SetTransform(axisPose(90, math32.AxisX()))
	tw.addHandle(zh, ZAxis)

	free := scene.NewNode("free")
	free.Shape = scene.SphereShape(s.SphereRadius, math32.Point(0, 0, 0), s.Segments, s.FreeColor.Vector4())
	tw.addHandle(free, NoAxis)
	return tw
}

func (tw *Translation) Mode() Modes {
	return TranslationMode
}

// ExecuteMove moves the selected node along the local axis of the
// active handle by the drag magnitude times Settings.PixelScale.
func (tw *Translation) ExecuteMove(dx, dy int) error {
	axis, ok := tw.activeAxis()
	if !ok {
		return nil
	}
	delta := float32(magnitude(dx, dy)) * tw.Settings.PixelScale
	v := axis.vector(tw.Settings.TranslationXSign).MulScalar(delta)
	tw.logMove(TranslationMode, axis, delta)
	return tw.apply(func(tr math32.Transform) (math32.Transform, error) {
		return tr.Translate(v), nil
	})
}

func (tw *Translation) UpdateView() error {
	return tw.updateView(false)
}

// axisPose returns the pose that turns a +Y aligned handle to another
// axis, rotating by degrees around axis.
func axisPose(degrees float32, axis math32.Vector4) math32.Transform {
	tr, err := math32.NewTransform().Rotate(math32.DegToRad(degrees), axis)
	if err != nil {
		panic(err)
	}
	return tr
}
