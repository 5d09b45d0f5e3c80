// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"path/filepath"
	"testing"

	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	sc, err := OpenScript(filepath.Join("testdata", "lift.yaml"))
	require.NoError(t, err)
	require.Len(t, sc.Objects, 2)
	require.Len(t, sc.Steps, 3)

	root, err := sc.Scene()
	require.NoError(t, err)
	cup := root.FindByName("cup")
	require.NotNil(t, cup)
	assert.Equal(t, "/scene/table/cup", cup.Path())

	ss := New(nil)
	require.NoError(t, ss.Replay(sc, root))
	assert.Equal(t, widget.RotationMode, ss.Mode())
	assert.Same(t, cup, ss.Selection())

	tr := cup.Transform()
	assert.True(t, tr.Translation().ApproxEqual(math32.Point(1, 1, 0), 1e-4), tr.Translation().String())
	x, y, z, err := tr.EulerAngles()
	require.NoError(t, err)
	assert.InDelta(t, math32.DegToRad(-20), x, tol)
	assert.InDelta(t, 0, y, tol)
	assert.InDelta(t, 0, z, tol)

	// the widget follows the cup in world space, scaled for the camera
	rw := ss.Active()
	assert.True(t, rw.RootNode().Transform().Translation().ApproxEqual(math32.Point(1, 1, -2), 1e-4))
	h := rw.Handle("y").Shape
	assert.NotEqual(t, h.Canonical, h.Vertices)
}

func TestScriptRotation(t *testing.T) {
	sc, err := ParseScript([]byte(`
objects:
  - name: box
    rotation: [0, 0, 90]
select: box
`))
	require.NoError(t, err)
	root, err := sc.Scene()
	require.NoError(t, err)
	z, err := root.FindByName("box").Transform().ZRotation()
	require.NoError(t, err)
	assert.InDelta(t, math32.DegToRad(90), z, tol)
	assert.Nil(t, sc.OrbitCamera())

	ss := New(nil)
	require.NoError(t, ss.Replay(sc, root))
	assert.Equal(t, widget.TranslationMode, ss.Mode())
}

func TestScriptIDs(t *testing.T) {
	sc, err := ParseScript([]byte(`
objects:
  - name: shelf
    id: 6f1c2b9e-3a4d-4e5f-8a7b-0c1d2e3f4a5b
    position: [0, 1, 0]
  - name: book
    id: 0b7e4c2a-9d1f-4a3b-b5c6-d7e8f9a0b1c2
    parent: 6f1c2b9e-3a4d-4e5f-8a7b-0c1d2e3f4a5b
  - name: lamp
select: 0b7e4c2a-9d1f-4a3b-b5c6-d7e8f9a0b1c2
steps:
  - handle: x
    dx: 50
`))
	require.NoError(t, err)
	root, err := sc.Scene()
	require.NoError(t, err)
	book := FindNode(root, "0b7e4c2a-9d1f-4a3b-b5c6-d7e8f9a0b1c2")
	require.NotNil(t, book)
	assert.Equal(t, "/scene/shelf/book", book.Path())
	assert.Same(t, book, FindNode(root, "book"))
	assert.NotNil(t, FindNode(root, "lamp"))
	assert.Nil(t, FindNode(root, "9a9a9a9a-0000-4000-8000-000000000000"))

	ss := New(nil)
	require.NoError(t, ss.Replay(sc, root))
	assert.Same(t, book, ss.Selection())
	assert.True(t, book.Transform().Translation().ApproxEqual(math32.Point(0.5, 0, 0), tol))
}

func TestScriptErrors(t *testing.T) {
	_, err := ParseScript([]byte("objects: {"))
	assert.Error(t, err)
	_, err = OpenScript(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	tests := []struct {
		name   string
		script string
	}{
		{"unnamed", "objects: [{position: [1, 2, 3]}]"},
		{"duplicate", "objects: [{name: a}, {name: a}]"},
		{"orphan", "objects: [{name: a, parent: b}]"},
		{"bad id", "objects: [{name: a, id: not-a-uuid}]"},
		{"duplicate id", "objects: [{name: a, id: 6f1c2b9e-3a4d-4e5f-8a7b-0c1d2e3f4a5b}, {name: b, id: 6f1c2b9e-3a4d-4e5f-8a7b-0c1d2e3f4a5b}]"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sc, err := ParseScript([]byte(test.script))
			require.NoError(t, err)
			_, err = sc.Scene()
			assert.Error(t, err)
		})
	}

	replays := []struct {
		name   string
		script string
	}{
		{"no selection", "objects: [{name: a}]\nselect: b"},
		{"bad mode", "objects: [{name: a}]\nselect: a\nsteps: [{mode: scale}]"},
		{"bad handle", "objects: [{name: a}]\nselect: a\nsteps: [{handle: w}]"},
	}
	for _, test := range replays {
		t.Run(test.name, func(t *testing.T) {
			sc, err := ParseScript([]byte(test.script))
			require.NoError(t, err)
			root, err := sc.Scene()
			require.NoError(t, err)
			assert.Error(t, New(nil).Replay(sc, root))
		})
	}
}
