// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/gizmo/base/tolassert"
	"cogentcore.org/gizmo/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-4)

func TestCapsuleShape(t *testing.T) {
	red := math32.Vec4(1, 0, 0, 0.5)
	sh := CapsuleShape(0.1, 1, 8, red)
	assert.Equal(t, Capsule, sh.Kind)
	assert.Equal(t, red, sh.Color)
	require.NotEmpty(t, sh.Canonical)
	assert.Equal(t, sh.Canonical, sh.Vertices)
	for _, v := range sh.Canonical {
		assert.GreaterOrEqual(t, v.Y, -tol)
		assert.LessOrEqual(t, v.Y, 1+tol)
		assert.LessOrEqual(t, v.X*v.X+v.Z*v.Z, 0.01+tol)
		assert.Equal(t, float32(1), v.W)
	}
	assert.Equal(t, math32.Point(0, 1, 0), sh.Canonical[len(sh.Canonical)-1])
}

func TestSphereShape(t *testing.T) {
	ctr := math32.Point(0, 1, 0)
	sh := SphereShape(0.5, ctr, 12, math32.Vec4(1, 1, 1, 1))
	for _, v := range sh.Canonical {
		tolassert.EqualTol(t, 0.5, v.DistanceTo(ctr), tol)
	}
}

func TestTorusShape(t *testing.T) {
	sh := TorusShape(1, 0.05, 16, 6, math32.Vec4(0, 0, 1, 0.5))
	assert.Len(t, sh.Canonical, 16*6)
	for _, v := range sh.Canonical {
		assert.LessOrEqual(t, math32.Abs(v.Y), 0.05+tol)
		r := math32.Sqrt(v.X*v.X + v.Z*v.Z)
		assert.InDelta(t, 1, r, 0.05+1e-4)
	}
}

func TestMarkerShape(t *testing.T) {
	sh := MarkerShape(0.1, math32.Vec4(1, 1, 0, 1))
	assert.Equal(t, Marker, sh.Kind)
	for _, v := range sh.Canonical {
		assert.Equal(t, float32(0), v.Z)
	}
}

func TestShapeScale(t *testing.T) {
	sh := MarkerShape(1, math32.Vec4(1, 1, 0, 1))
	sh.ScaleVertices(2.5)
	for i, v := range sh.Vertices {
		assert.Equal(t, sh.Canonical[i].MulScalar(2.5), v)
	}
	sh.ScaleVertices(4)
	assert.Equal(t, math32.Point(-4, -4, 0), sh.Vertices[0], "scaling is relative to the canonical vertices")

	sh.SetAlpha(0.25)
	assert.Equal(t, float32(0.25), sh.Alpha())
	assert.Equal(t, float32(1), sh.Color.X)
}

func TestShapeTransformed(t *testing.T) {
	sh := CapsuleShape(0.1, 1, 8, math32.Vec4(1, 0, 0, 1))
	rot, err := math32.NewTransform().Rotate(-math32.Pi/2, math32.AxisZ())
	require.NoError(t, err)
	tx := sh.Transformed(rot)
	tip := tx.Canonical[len(tx.Canonical)-1]
	assert.True(t, tip.ApproxEqual(math32.Point(1, 0, 0), tol), "Y capsule rotated onto X: %v", tip)
	assert.Equal(t, math32.Point(0, 1, 0), sh.Canonical[len(sh.Canonical)-1], "source is unchanged")
	assert.Equal(t, tx.Canonical, tx.Vertices)
}
