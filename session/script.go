// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"os"

	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/scene"
	"cogentcore.org/gizmo/widget"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Script is a recorded editing session: a scene of objects, a camera,
// the object to select, and a list of drag steps. Scripts are stored
// as YAML and replayed with [Session.Replay].
type Script struct {

	// Objects are the scene objects, created in order.
	Objects []Object `yaml:"objects"`

	// Camera is the view camera. Without one, widgets are not scaled.
	Camera *Camera `yaml:"camera,omitempty"`

	// Select is the name or ID of the object to select.
	Select string `yaml:"select"`

	// Steps are the drags to apply, in order.
	Steps []Step `yaml:"steps"`
}

// Object is a scene object in a [Script].
type Object struct {
	Name string `yaml:"name"`

	// ID is the optional UUID of the object, so that recorded scripts
	// keep stable identities. A new one is made if it is empty.
	ID string `yaml:"id,omitempty"`

	// Parent is the name or ID of the parent object; empty for the scene root.
	Parent string `yaml:"parent,omitempty"`

	// Position is the local translation.
	Position [3]float32 `yaml:"position,flow"`

	// Rotation is the local rotation as X, Y, Z angles in degrees,
	// applied in X, Y, Z order.
	Rotation [3]float32 `yaml:"rotation,flow"`
}

// Camera is an orbit camera in a [Script].
type Camera struct {
	Target   [3]float32 `yaml:"target,flow"`
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`
}

// Step is one drag of a [Script]. Mode and Handle are optional and
// only change the mode or the active handle when set.
type Step struct {
	Mode   string `yaml:"mode,omitempty"`
	Handle string `yaml:"handle,omitempty"`
	DX     int    `yaml:"dx"`
	DY     int    `yaml:"dy"`
}

// ParseScript parses a YAML script.
func ParseScript(b []byte) (*Script, error) {
	sc := &Script{}
	if err := yaml.Unmarshal(b, sc); err != nil {
		return nil, errors.Wrap(err, "session: parsing script")
	}
	return sc, nil
}

// OpenScript reads a YAML script from the given file.
func OpenScript(filename string) (*Script, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "session: opening script")
	}
	return ParseScript(b)
}

// Scene builds the scene of the script under a new root node.
func (sc *Script) Scene() (*scene.Node, error) {
	root := scene.NewNode("scene")
	for _, o := range sc.Objects {
		if o.Name == "" {
			return nil, errors.New("session: script object without a name")
		}
		if root.FindByName(o.Name) != nil {
			return nil, errors.Errorf("session: duplicate script object %q", o.Name)
		}
		parent := root
		if o.Parent != "" {
			if parent = FindNode(root, o.Parent); parent == nil {
				return nil, errors.Errorf("session: parent %q of %q not found", o.Parent, o.Name)
			}
		}
		tr := math32.NewTransform()
		for i, axis := range []math32.Vector4{math32.AxisX(), math32.AxisY(), math32.AxisZ()} {
			if o.Rotation[i] == 0 {
				continue
			}
			var err error
			if tr, err = tr.Rotate(math32.DegToRad(o.Rotation[i]), axis); err != nil {
				return nil, errors.Wrapf(err, "session: rotating %q", o.Name)
			}
		}
		tr = tr.SetTranslation(math32.Point(o.Position[0], o.Position[1], o.Position[2]))
		n := scene.NewNode(o.Name)
		if o.ID != "" {
			id, err := uuid.Parse(o.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "session: id of %q", o.Name)
			}
			if root.FindByID(id) != nil {
				return nil, errors.Errorf("session: duplicate script object id %s", id)
			}
			n.ID = id
		}
		n.SetTransform(tr)
		parent.AddChild(n)
	}
	return root, nil
}

// FindNode returns the node under root with the given ID, if ref parses
// as a UUID, or else with the given name. It returns nil if not found.
func FindNode(root *scene.Node, ref string) *scene.Node {
	if id, err := uuid.Parse(ref); err == nil {
		return root.FindByID(id)
	}
	return root.FindByName(ref)
}

// OrbitCamera returns the camera of the script, or nil.
func (sc *Script) OrbitCamera() *scene.OrbitCamera {
	if sc.Camera == nil {
		return nil
	}
	c := sc.Camera
	return scene.NewOrbitCamera(math32.Point(c.Target[0], c.Target[1], c.Target[2]), c.Distance, c.Pitch, c.Yaw)
}

// Replay selects the script's object in the given scene and applies the
// steps in order, updating the view after each one. It stops at the
// first failing step.
func (ss *Session) Replay(sc *Script, root *scene.Node) error {
	target := FindNode(root, sc.Select)
	if target == nil {
		return errors.Errorf("session: object %q to select not found", sc.Select)
	}
	if cam := sc.OrbitCamera(); cam != nil {
		ss.SetCamera(cam)
	}
	ss.Select(target)
	for i, st := range sc.Steps {
		if err := ss.step(st); err != nil {
			return errors.Wrapf(err, "session: step %d", i)
		}
	}
	return nil
}

func (ss *Session) step(st Step) error {
	if st.Mode != "" {
		m, err := widget.ParseMode(st.Mode)
		if err != nil {
			return err
		}
		if err := ss.SetMode(m); err != nil {
			return err
		}
	}
	if st.Handle != "" {
		h := ss.Active().Handle(st.Handle)
		if h == nil {
			return errors.Errorf("no handle %q in %v mode", st.Handle, ss.Mode())
		}
		ss.HandleHit(scene.Hit{Node: h, Count: 1})
	}
	if err := ss.Drag(st.DX, st.DY); err != nil {
		return err
	}
	return ss.UpdateView()
}
