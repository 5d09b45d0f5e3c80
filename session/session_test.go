// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"testing"

	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/scene"
	"cogentcore.org/gizmo/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestNew(t *testing.T) {
	ss := New(nil)
	assert.Equal(t, widget.TranslationMode, ss.Mode())
	assert.Equal(t, widget.TranslationMode, ss.Active().Mode())
	for m := widget.Modes(0); m < widget.ModesN; m++ {
		assert.Equal(t, m, ss.Widget(m).Mode())
	}
	assert.NotNil(t, ss.Settings)
}

func TestSetMode(t *testing.T) {
	ss := New(nil)
	tw := ss.Active()
	tw.SetSelectedHandle(tw.Handle("x"))
	require.NoError(t, ss.SetMode(widget.RotationMode))
	assert.Equal(t, widget.RotationMode, ss.Active().Mode())
	assert.Nil(t, tw.SelectedHandle())
	assert.Error(t, ss.SetMode(widget.ModesN))
	assert.Equal(t, widget.RotationMode, ss.Mode())
}

func TestHandleHit(t *testing.T) {
	ss := New(nil)
	box := scene.NewNode("box")

	ss.HandleHit(scene.Hit{Node: box, Count: 1})
	assert.Same(t, box, ss.Selection())
	for m := widget.Modes(0); m < widget.ModesN; m++ {
		assert.Same(t, box, ss.Widget(m).Selection())
	}

	y := ss.Active().Handle("y")
	ss.HandleHit(scene.Hit{Node: y, Count: 2})
	assert.Same(t, y, ss.Active().SelectedHandle())
	assert.Same(t, box, ss.Selection())

	// a handle of an inactive widget changes nothing
	ss.HandleHit(scene.Hit{Node: ss.Widget(widget.RotationMode).Handle("x"), Count: 1})
	assert.Same(t, y, ss.Active().SelectedHandle())
	assert.Same(t, box, ss.Selection())

	// another object becomes the selection, and clears the handle
	other := scene.NewNode("other")
	ss.HandleHit(scene.Hit{Node: other, Count: 1})
	assert.Same(t, other, ss.Selection())
	assert.Nil(t, ss.Active().SelectedHandle())

	ss.HandleHit(scene.Hit{})
	assert.Nil(t, ss.Selection())
	assert.Nil(t, ss.Widget(widget.SelectionMode).Selection())
}

func TestDrag(t *testing.T) {
	ss := New(nil)
	box := scene.NewNode("box")
	ss.Select(box)
	ss.HandleHit(scene.Hit{Node: ss.Active().Handle("y"), Count: 1})
	require.NoError(t, ss.Drag(10, -10))
	assert.True(t, box.Transform().Translation().ApproxEqual(math32.Point(0, 0.2, 0), tol))

	require.NoError(t, ss.SetMode(widget.RotationMode))
	ss.HandleHit(scene.Hit{Node: ss.Active().Handle("x"), Count: 1})
	require.NoError(t, ss.Drag(10, -10))
	ang, err := box.Transform().XRotation()
	require.NoError(t, err)
	assert.InDelta(t, math32.DegToRad(-20), ang, tol)
	assert.True(t, box.Transform().Translation().ApproxEqual(math32.Point(0, 0.2, 0), tol))

	require.NoError(t, ss.SetMode(widget.SelectionMode))
	before := box.Transform()
	require.NoError(t, ss.Drag(50, 50))
	assert.Equal(t, before, box.Transform())
}

func TestDragError(t *testing.T) {
	ss := New(nil)
	box := scene.NewNode("box")
	bad := math32.NewTransform()
	bad.Matrix4[5] = math32.Infinity
	box.SetTransform(bad)
	ss.Select(box)
	ss.HandleHit(scene.Hit{Node: ss.Active().Handle("y"), Count: 1})
	assert.ErrorIs(t, ss.Drag(0, -10), widget.ErrNonFinite)
	assert.Equal(t, bad, box.Transform())
}

func TestUpdateView(t *testing.T) {
	ss := New(nil)
	box := scene.NewNode("box")
	ss.Select(box)
	assert.NoError(t, ss.UpdateView())

	cam := scene.NewNode("camera")
	cam.SetTransform(math32.NewTransform().SetTranslation(math32.Point(0, 0, 3)))
	ss.SetCamera(cam)
	require.NoError(t, ss.UpdateView())
	h := ss.Active().Handle("free").Shape
	assert.Equal(t, h.Canonical[0].MulScalar(3), h.Vertices[0])
	assert.Same(t, cam, ss.Widget(widget.RotationMode).(*widget.Rotation).Camera())
}

func TestApplySettings(t *testing.T) {
	ss := New(nil)
	box := scene.NewNode("box")
	cam := scene.NewNode("camera")
	ss.Select(box)
	ss.SetCamera(cam)
	require.NoError(t, ss.SetMode(widget.RotationMode))

	s := config.NewSettings()
	s.PixelScale = 0.5
	require.NoError(t, ss.ApplySettings(s))
	assert.Same(t, s, ss.Settings)
	assert.Equal(t, widget.RotationMode, ss.Mode())
	assert.Same(t, box, ss.Widget(widget.TranslationMode).Selection())

	require.NoError(t, ss.SetMode(widget.TranslationMode))
	ss.HandleHit(scene.Hit{Node: ss.Active().Handle("z"), Count: 1})
	require.NoError(t, ss.Drag(2, 0))
	assert.True(t, box.Transform().Translation().ApproxEqual(math32.Point(0, 0, 1), tol))

	bad := config.NewSettings()
	bad.PixelScale = -1
	assert.Error(t, ss.ApplySettings(bad))
	assert.Error(t, ss.ApplySettings(nil))
	assert.Same(t, s, ss.Settings)
}

func TestApplySettingsSizesWidgets(t *testing.T) {
	ss := New(nil)
	ss.Select(scene.NewNode("box"))
	cam := scene.NewNode("camera")
	cam.SetTransform(math32.NewTransform().SetTranslation(math32.Point(0, 0, 4)))
	ss.SetCamera(cam)

	s := config.NewSettings()
	s.HandleLength = 2
	require.NoError(t, ss.ApplySettings(s))
	handles := map[widget.Modes]string{
		widget.TranslationMode: "free",
		widget.RotationMode:    "y",
		widget.SelectionMode:   "marker",
	}
	for m, name := range handles {
		sh := ss.Widget(m).Handle(name).Shape
		for i, v := range sh.Canonical {
			assert.Equal(t, v.MulScalar(4), sh.Vertices[i], "%v %s", m, name)
		}
	}
}

func TestReset(t *testing.T) {
	ss := New(nil)
	box := scene.NewNode("box")
	ss.Select(box)
	ss.SetCamera(scene.NewNode("camera"))
	require.NoError(t, ss.SetMode(widget.SelectionMode))

	ss.Reset()
	assert.Equal(t, widget.TranslationMode, ss.Mode())
	assert.Nil(t, ss.Selection())
	for m := widget.Modes(0); m < widget.ModesN; m++ {
		assert.Nil(t, ss.Widget(m).Selection())
		assert.Nil(t, ss.Widget(m).SelectedHandle())
	}
}
