// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget provides the manipulation widgets (gizmos) that turn
// mouse drags into pose changes of a selected scene node: [Translation],
// [Rotation] and [Selection], all implementing [Widget].
//
// A widget owns a small tree of handle geometry under its root node,
// which the rendering engine draws. The picking engine reports which
// handle is under the mouse; the widget highlights it and uses it to
// constrain subsequent drags to one axis.
package widget

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/scene"
)

// ErrNonFinite is returned when a move would produce a transform
// containing NaN or infinite values. The move is not applied.
var ErrNonFinite = errors.New("widget: transform is not finite")

// Camera is the view that the widgets orient and scale themselves to.
// Both *[scene.Node] and *[scene.OrbitCamera] are cameras.
type Camera interface {
	AbsoluteTransform() math32.Transform
}

// Widget is an interactive manipulator bound to one selected node.
type Widget interface {

	// Mode returns the manipulation mode of the widget.
	Mode() Modes

	// RootNode returns the root of the handle geometry, for rendering.
	RootNode() *scene.Node

	// SetSelection sets the node that is manipulated, or nil for none.
	// Changing the selection clears the active handle.
	SetSelection(target *scene.Node)

	// Selection returns the node that is manipulated, or nil.
	Selection() *scene.Node

	// SetSelectedHandle makes the given handle active. The previous
	// handle is reverted to the inactive look first. nil, or a node that
	// is not a handle of this widget, only reverts.
	SetSelectedHandle(handle *scene.Node)

	// SelectedHandle returns the active handle, or nil.
	SelectedHandle() *scene.Node

	// SetCamera sets the camera used by UpdateView.
	SetCamera(cam Camera)

	// UpdateView moves the widget to the selected node and scales the
	// handles by the camera distance, so that they keep a constant size
	// on screen. It does nothing without a camera and a selection.
	UpdateView() error

	// ExecuteMove applies a mouse drag of dx, dy pixels along the axis
	// of the active handle to the selected node and to the widget.
	// It does nothing without a selection and an active axis handle.
	// If the move fails, nothing is changed and the error is returned.
	ExecuteMove(dx, dy int) error

	// Handles returns the handle nodes, in creation order.
	Handles() []*scene.Node

	// Handle returns the handle with the given name, or nil.
	Handle(name string) *scene.Node

	// Owns returns true if the node is part of this widget's geometry.
	Owns(n *scene.Node) bool

	// Reset clears the selection, handle and camera.
	Reset()
}

// New returns a new widget for the given mode.
func New(mode Modes, s *config.Settings) Widget {
	switch mode {
	case RotationMode:
		return NewRotation(s)
	case SelectionMode:
		return NewSelection(s)
	}
	return NewTranslation(s)
}

// Modes are the manipulation modes, one per widget type.
type Modes int32

const (
	// TranslationMode moves the selected node along its local axes.
	TranslationMode Modes = iota

	// RotationMode rotates the selected node around its origin.
	RotationMode

	// SelectionMode only marks the selected node.
	SelectionMode

	// ModesN is the number of modes.
	ModesN
)

var modeNames = [...]string{"translation", "rotation", "selection"}

func (m Modes) String() string {
	if m < 0 || m >= ModesN {
		return fmt.Sprintf("Modes(%d)", int32(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode with the given name (case insensitive).
func ParseMode(name string) (Modes, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Modes(i), nil
		}
	}
	return TranslationMode, fmt.Errorf("widget: unknown mode %q", name)
}

// Axes are the axes that a handle constrains a drag to.
type Axes int32

const (
	// NoAxis is for free handles, which do not constrain a drag
	// and so do not move anything.
	NoAxis Axes = iota
	XAxis
	YAxis
	ZAxis
)

func (a Axes) String() string {
	switch a {
	case NoAxis:
		return "none"
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	case ZAxis:
		return "z"
	}
	return fmt.Sprintf("Axes(%d)", int32(a))
}

// vector returns the unit vector for the axis, with xSign applied to X.
func (a Axes) vector(xSign float32) math32.Vector4 {
	switch a {
	case XAxis:
		return math32.AxisX().MulScalar(xSign)
	case YAxis:
		return math32.AxisY()
	case ZAxis:
		return math32.AxisZ()
	}
	return math32.Point(0, 0, 0)
}

// States are the interaction states of a widget.
type States int32

const (
	// Idle is when no handle is active.
	Idle States = iota

	// HandleActive is when one handle is highlighted and drags move along it.
	HandleActive
)

func (s States) String() string {
	if s == HandleActive {
		return "HandleActive"
	}
	return "Idle"
}

// magnitude returns the signed drag amount for a mouse delta;
// screen y grows downward, so up and right are both positive.
func magnitude(dx, dy int) int {
	return dx + (-dy)
}
