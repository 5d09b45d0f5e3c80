// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session connects the manipulation widgets to the editor: it
// holds one widget per mode, routes picking results and mouse drags to
// the active widget, and keeps all widgets on the same selection.
package session

import (
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/gizmo/base/errors"
	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/scene"
	"cogentcore.org/gizmo/widget"
)

// Session is the editing session state shared by the widgets.
// It is safe for concurrent use, so that settings can be applied
// from a file watching goroutine.
type Session struct {

	// Settings are the current settings.
	Settings *config.Settings

	// widgets has one widget per mode.
	widgets [widget.ModesN]widget.Widget

	// mode is the active mode.
	mode widget.Modes

	// target is the selected node, or nil.
	target *scene.Node

	// camera is the view camera, or nil.
	camera widget.Camera

	mu sync.Mutex
}

// New returns a new session in translation mode, with widgets built
// from the given settings (defaults if nil).
func New(s *config.Settings) *Session {
	if s == nil {
		s = config.NewSettings()
	}
	ss := &Session{Settings: s}
	errors.Log(ss.build())
	return ss
}

// build makes the widgets from the current settings, and carries over
// the selection and camera. With both set, the widgets are sized for
// the camera right away.
func (ss *Session) build() error {
	var errs []error
	for m := widget.Modes(0); m < widget.ModesN; m++ {
		w := widget.New(m, ss.Settings)
		w.SetSelection(ss.target)
		w.SetCamera(ss.camera)
		ss.widgets[m] = w
		if ss.camera != nil && ss.target != nil {
			errs = append(errs, w.UpdateView())
		}
	}
	return errors.Join(errs...)
}

// Mode returns the active mode.
func (ss *Session) Mode() widget.Modes {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.mode
}

// SetMode makes the widget for the given mode active. The active
// handle of the previous widget is cleared, and the new widget is
// moved onto the selection.
func (ss *Session) SetMode(m widget.Modes) error {
	if m < 0 || m >= widget.ModesN {
		return fmt.Errorf("session: invalid mode %v", m)
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if m != ss.mode {
		ss.widgets[ss.mode].SetSelectedHandle(nil)
		ss.mode = m
		ss.widgets[m].SetSelection(ss.target)
	}
	return nil
}

// Active returns the widget of the active mode.
func (ss *Session) Active() widget.Widget {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.widgets[ss.mode]
}

// Widget returns the widget for the given mode.
func (ss *Session) Widget(m widget.Modes) widget.Widget {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.widgets[m]
}

// Selection returns the selected node, or nil.
func (ss *Session) Selection() *scene.Node {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.target
}

// SetCamera sets the camera of all the widgets.
func (ss *Session) SetCamera(cam widget.Camera) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.camera = cam
	for _, w := range ss.widgets {
		w.SetCamera(cam)
	}
}

// Select sets the selected node of all the widgets, or clears it for nil.
func (ss *Session) Select(target *scene.Node) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.selectLocked(target)
}

func (ss *Session) selectLocked(target *scene.Node) {
	ss.target = target
	for _, w := range ss.widgets {
		w.SetSelection(target)
	}
}

// HandleHit handles the result of picking at the mouse position.
// An empty hit clears the selection. A hit on a handle of the active
// widget makes that handle active. A hit on a handle of an inactive
// widget is ignored. Any other node becomes the selection.
func (ss *Session) HandleHit(hit scene.Hit) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	active := ss.widgets[ss.mode]
	switch {
	case hit.Empty():
		ss.selectLocked(nil)
	case active.Owns(hit.Node):
		active.SetSelectedHandle(hit.Node)
	case ss.ownedByWidget(hit.Node):
		slog.Debug("session: ignoring hit on inactive widget", "node", hit.Node.Path())
	default:
		ss.selectLocked(hit.Node)
	}
}

func (ss *Session) ownedByWidget(n *scene.Node) bool {
	for _, w := range ss.widgets {
		if w.Owns(n) {
			return true
		}
	}
	return false
}

// Drag applies a mouse drag to the active widget. Errors are logged
// and returned; a failed drag changes nothing.
func (ss *Session) Drag(dx, dy int) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	w := ss.widgets[ss.mode]
	if err := w.ExecuteMove(dx, dy); err != nil {
		slog.Error("session: drag failed", "mode", ss.mode, "dx", dx, "dy", dy, "err", err)
		return err
	}
	return nil
}

// UpdateView updates the active widget to the current camera.
func (ss *Session) UpdateView() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.widgets[ss.mode].UpdateView()
}

// ApplySettings validates the given settings and rebuilds the widgets
// with them, keeping the mode, selection and camera. The active handle
// is cleared. Invalid settings are rejected and nothing changes.
func (ss *Session) ApplySettings(s *config.Settings) error {
	if s == nil {
		return fmt.Errorf("session: nil settings")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.Settings = s
	if err := ss.build(); err != nil {
		return fmt.Errorf("session: sizing rebuilt widgets: %w", err)
	}
	slog.Info("session: applied settings")
	return nil
}

// Reset clears the selection, handles and camera of all the widgets,
// and returns to translation mode.
func (ss *Session) Reset() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for _, w := range ss.widgets {
		w.Reset()
	}
	ss.target = nil
	ss.camera = nil
	ss.mode = widget.TranslationMode
}
