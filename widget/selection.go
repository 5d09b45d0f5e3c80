// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/scene"
)

// Selection is the widget that only marks the selected node, with a
// marker that always faces the camera. Drags do nothing.
type Selection struct {
	Base
}

var _ Widget = (*Selection)(nil)

// NewSelection returns a new selection widget with a marker
// built from the given settings (defaults if nil).
func NewSelection(s *config.Settings) *Selection {
	sw := &Selection{}
	sw.init("selection-widget", s)
	marker := scene.NewNode("marker")
	marker.Shape = scene.MarkerShape(sw.Settings.MarkerSize, sw.Settings.FreeColor.Vector4())
	sw.addHandle(marker, NoAxis)
	return sw
}

func (sw *Selection) Mode() Modes {
	return SelectionMode
}

// ExecuteMove does nothing: the marker has no axis.
func (sw *Selection) ExecuteMove(dx, dy int) error {
	return nil
}

// UpdateView places the marker on the selected node, turned to face the
// camera and scaled by the distance to it.
func (sw *Selection) UpdateView() error {
	return sw.updateView(true)
}
