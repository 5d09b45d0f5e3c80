// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/gizmo/math32"
	"github.com/jinzhu/copier"
)

// ShapeKinds are the kinds of geometry a [Shape] can hold.
type ShapeKinds int32

const (
	// Capsule is a cylinder with rounded ends, used for axis handles.
	Capsule ShapeKinds = iota

	// Sphere is used for free move and free rotate handles.
	Sphere

	// Torus is a ring, used for axis rotation handles.
	Torus

	// Marker is a flat 2D marker facing the camera.
	Marker
)

func (k ShapeKinds) String() string {
	switch k {
	case Capsule:
		return "Capsule"
	case Sphere:
		return "Sphere"
	case Torus:
		return "Torus"
	case Marker:
		return "Marker"
	}
	return "ShapeKinds(?)"
}

// Shape is the vertex geometry and color of a node. The rendering
// engine draws Vertices; Canonical holds the same points at unit
// viewing distance, so that the vertices can be rescaled without
// accumulating error.
type Shape struct {

	// Kind is the kind of geometry.
	Kind ShapeKinds

	// Canonical are the unscaled vertices, in node space.
	Canonical []math32.Vector4

	// Vertices are the current vertices, in node space.
	Vertices []math32.Vector4

	// Color is the RGBA color of the shape, with alpha in W.
	Color math32.Vector4
}

// NewShape returns a shape with the given canonical vertices and color.
func NewShape(kind ShapeKinds, canonical []math32.Vector4, color math32.Vector4) *Shape {
	sh := &Shape{Kind: kind, Canonical: canonical, Color: color}
	sh.ScaleVertices(1)
	return sh
}

// ScaleVertices sets the vertices to the canonical vertices scaled by d
// around the node origin.
func (sh *Shape) ScaleVertices(d float32) {
	if len(sh.Vertices) != len(sh.Canonical) {
		sh.Vertices = make([]math32.Vector4, len(sh.Canonical))
	}
	for i, v := range sh.Canonical {
		sh.Vertices[i] = v.MulScalar(d)
	}
}

// Alpha returns the opacity of the shape color.
func (sh *Shape) Alpha() float32 {
	return sh.Color.W
}

// SetAlpha sets the opacity of the shape color.
func (sh *Shape) SetAlpha(alpha float32) {
	sh.Color = sh.Color.WithW(alpha)
}

// Bounds returns the bounding box of the current vertices, in node space.
func (sh *Shape) Bounds() math32.Box3 {
	return math32.B3FromPoints(sh.Vertices)
}

// Transformed returns a copy of the shape with the given transform
// applied to its canonical vertices.
func (sh *Shape) Transformed(tr math32.Transform) *Shape {
	c := sh.Clone()
	for i, v := range c.Canonical {
		c.Canonical[i] = tr.MulVector4(v.WithW(1))
	}
	c.ScaleVertices(1)
	return c
}

// Clone returns a deep copy of the shape.
func (sh *Shape) Clone() *Shape {
	c := &Shape{}
	if err := copier.CopyWithOption(c, sh, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("scene.Shape.Clone", "err", err)
	}
	return c
}
