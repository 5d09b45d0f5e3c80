// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/scene"
)

// Base has the state and behavior shared by all widgets: the handle
// geometry, the active handle, the selected node and the camera.
// The widget types embed it and add their geometry and moves.
type Base struct {

	// Settings are the settings the widget was built with.
	Settings *config.Settings

	// root is the root of the handle geometry.
	root *scene.Node

	// handles are the handle nodes, in creation order.
	handles []*scene.Node

	// axes maps each handle to the axis it constrains moves to.
	axes map[*scene.Node]Axes

	// selected is the active handle, or nil.
	selected *scene.Node

	// target is the node being manipulated, or nil.
	target *scene.Node

	// camera is the view camera, or nil.
	camera Camera
}

// init sets up the base with a root node of the given name.
func (b *Base) init(name string, s *config.Settings) {
	if s == nil {
		s = config.NewSettings()
	}
	b.Settings = s
	b.root = scene.NewNode(name)
	b.axes = map[*scene.Node]Axes{}
}

// addHandle adds the given node as a handle for the given axis,
// with the inactive look.
func (b *Base) addHandle(h *scene.Node, axis Axes) {
	b.root.AddChild(h)
	b.handles = append(b.handles, h)
	b.axes[h] = axis
	b.setAlpha(h, b.Settings.InactiveAlpha)
}

// setAlpha sets the alpha of all the shapes of the handle.
func (b *Base) setAlpha(h *scene.Node, alpha float32) {
	h.WalkDown(func(k *scene.Node) bool {
		if k.Shape != nil {
			k.Shape.SetAlpha(alpha)
		}
		return scene.Continue
	})
}

// RootNode returns the root of the handle geometry.
func (b *Base) RootNode() *scene.Node {
	return b.root
}

// Handles returns the handle nodes.
func (b *Base) Handles() []*scene.Node {
	return b.handles
}

// Handle returns the handle with the given name, or nil.
func (b *Base) Handle(name string) *scene.Node {
	for _, h := range b.handles {
		if h.Name == name {
			return h
		}
	}
	return nil
}

// HandleAxis returns the axis of the given handle, and false
// if it is not a handle of this widget.
func (b *Base) HandleAxis(h *scene.Node) (Axes, bool) {
	axis, ok := b.axes[h]
	return axis, ok
}

// Owns returns true if the node is part of this widget's geometry.
func (b *Base) Owns(n *scene.Node) bool {
	if n == nil {
		return false
	}
	return b.root.Owns(n)
}

// SetSelection sets the node that is manipulated, clears the active
// handle, and moves the widget onto the node.
func (b *Base) SetSelection(target *scene.Node) {
	b.SetSelectedHandle(nil)
	b.target = target
	b.syncRoot()
}

// Selection returns the node that is manipulated, or nil.
func (b *Base) Selection() *scene.Node {
	return b.target
}

// SetSelectedHandle makes the given handle active, reverting the
// previous one first. nil, or a node that is not one of the handles,
// leaves no handle active.
func (b *Base) SetSelectedHandle(h *scene.Node) {
	if b.selected != nil {
		b.setAlpha(b.selected, b.Settings.InactiveAlpha)
		b.selected = nil
	}
	if _, ok := b.axes[h]; !ok {
		return
	}
	b.selected = h
	b.setAlpha(h, b.Settings.ActiveAlpha)
}

// SelectedHandle returns the active handle, or nil.
func (b *Base) SelectedHandle() *scene.Node {
	return b.selected
}

// State returns the interaction state.
func (b *Base) State() States {
	if b.selected != nil {
		return HandleActive
	}
	return Idle
}

// SetCamera sets the camera used to orient and scale the widget.
func (b *Base) SetCamera(cam Camera) {
	b.camera = cam
}

// Camera returns the camera, or nil.
func (b *Base) Camera() Camera {
	return b.camera
}

// Reset clears the selection, the active handle and the camera, and
// restores the widget geometry to its initial pose and size.
func (b *Base) Reset() {
	b.SetSelectedHandle(nil)
	b.target = nil
	b.camera = nil
	b.root.SetTransform(math32.NewTransform())
	b.scaleShapes(1)
}

// syncRoot sets the widget pose to the rotation and translation of the
// selected node in world space, or to identity without a selection.
func (b *Base) syncRoot() {
	if b.target == nil {
		b.root.SetTransform(math32.NewTransform())
		return
	}
	b.root.SetTransform(rigidPose(b.target.AbsoluteTransform()))
}

// rigidPose returns the orthonormalized rotation and the translation of
// the given world transform. A degenerate basis keeps only the translation.
func rigidPose(abs math32.Transform) math32.Transform {
	tr := math32.NewTransform().SetRotation(abs.Orthonormalize()).SetTranslation(abs.Translation())
	if !tr.IsFinite() {
		tr = math32.NewTransform().SetTranslation(abs.Translation())
	}
	return tr
}

// activeAxis returns the axis of the active handle, and false when
// there is nothing to move: no selection, no handle, or a free handle.
func (b *Base) activeAxis() (Axes, bool) {
	if b.target == nil || b.selected == nil {
		return NoAxis, false
	}
	axis := b.axes[b.selected]
	return axis, axis != NoAxis
}

// apply computes the result of op on the local transform of the selected
// node, and the widget pose that follows the node in world space. Both are
// only set when op succeeds and the results are finite.
func (b *Base) apply(op func(tr math32.Transform) (math32.Transform, error)) error {
	ttr, err := op(b.target.Transform())
	if err == nil && !ttr.IsFinite() {
		err = ErrNonFinite
	}
	if err != nil {
		return fmt.Errorf("moving %s: %w", b.target.Path(), err)
	}
	abs := ttr
	if p := b.target.Parent; p != nil {
		abs = p.AbsoluteTransform().Mul(ttr)
	}
	rtr := rigidPose(abs)
	if !rtr.IsFinite() {
		return fmt.Errorf("moving %s: %w", b.root.Path(), ErrNonFinite)
	}
	b.target.SetTransform(ttr)
	b.root.SetTransform(rtr)
	return nil
}

// logMove logs a move at debug level.
func (b *Base) logMove(mode Modes, axis Axes, amount float32) {
	slog.Debug("widget move", "mode", mode, "handle", b.selected.Name, "axis", axis, "amount", amount, "target", b.target.Path())
}

// updateView places the widget on the selected node and scales the
// handles by the distance to the camera. If orient is set, the widget
// also takes the orientation of the camera.
func (b *Base) updateView(orient bool) error {
	if b.camera == nil || b.target == nil {
		return nil
	}
	cam := b.camera.AbsoluteTransform()
	tr := b.root.Transform()
	if orient {
		tr = tr.SetRotation(cam)
	}
	tr = tr.SetTranslation(b.target.AbsoluteTransform().Translation())
	d := cam.Translation().DistanceTo(tr.Translation())
	if !tr.IsFinite() || !math32.IsFinite(d) {
		return fmt.Errorf("updating view of %s: %w", b.root.Name, ErrNonFinite)
	}
	b.root.SetTransform(tr)
	if d > 0 {
		b.scaleShapes(d)
	}
	return nil
}

// scaleShapes scales all the handle shapes by d.
func (b *Base) scaleShapes(d float32) {
	b.root.WalkDown(func(k *scene.Node) bool {
		if k.Shape != nil {
			k.Shape.ScaleVertices(d)
		}
		return scene.Continue
	})
}
