// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/gizmo/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := NewSettings()
	assert.NoError(t, s.Validate())
	assert.Equal(t, float32(0.01), s.PixelScale)
	assert.Equal(t, float32(1), s.ActiveAlpha)
	assert.Equal(t, float32(0.5), s.InactiveAlpha)
	assert.Equal(t, float32(-1), s.RotationXSign)
	assert.Equal(t, float32(1), s.TranslationXSign)
	assert.Equal(t, math32.Vec4(1, 0, 0, 0.5), s.XColor.Vector4())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(s *Settings)
	}{
		{"zero pixel scale", func(s *Settings) { s.PixelScale = 0 }},
		{"alpha range", func(s *Settings) { s.ActiveAlpha = 2 }},
		{"equal alphas", func(s *Settings) { s.InactiveAlpha = s.ActiveAlpha }},
		{"axis sign", func(s *Settings) { s.RotationXSign = 0.5 }},
		{"segments", func(s *Settings) { s.Segments = 2 }},
		{"sizes", func(s *Settings) { s.TorusTube = -1 }},
	}
	for _, test := range tests {
		s := NewSettings()
		test.mod(s)
		assert.Error(t, s.Validate(), test.name)
	}
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"gizmo.toml", "gizmo.yaml", "gizmo.yml"} {
		s := NewSettings()
		s.PixelScale = 0.05
		s.RotationXSign = 1
		s.ZColor = Color{0.2, 0.4, 0.6, 0.5}
		s.LogLevel = "debug"
		fn := filepath.Join(dir, name)
		require.NoError(t, s.Save(fn))

		o, err := Open(fn)
		require.NoError(t, err, name)
		assert.Equal(t, s, o, name)
	}
}

func TestOpenPartial(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(fn, []byte("pixel_scale = 0.02\n"), 0666))
	s, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(0.02), s.PixelScale)
	assert.Equal(t, float32(-1), s.RotationXSign, "missing keys keep their defaults")

	yfn := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(yfn, []byte("translation_x_sign: -1\nsegments: 8\n"), 0666))
	s, err = Open(yfn)
	require.NoError(t, err)
	assert.Equal(t, float32(-1), s.TranslationXSign)
	assert.Equal(t, 8, s.Segments)
	assert.Equal(t, float32(0.01), s.PixelScale)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "settings.json"))
	assert.Error(t, err)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("pixel_scale = -3\n"), 0666))
	_, err = Open(bad)
	assert.ErrorContains(t, err, "pixel_scale")

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("segments: [1, 2\n"), 0666))
	_, err = Open(garbled)
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "watched.toml")
	require.NoError(t, NewSettings().Save(fn))

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan *Settings, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(s *Settings, err error) {
			if err == nil {
				got <- s
			}
		})
	}()

	changed := NewSettings()
	changed.PixelScale = 0.5
	var last *Settings
	require.Eventually(t, func() bool {
		// keep writing until the watcher, which starts asynchronously, sees it
		if err := changed.Save(fn); err != nil {
			return false
		}
		select {
		case last = <-got:
			return last.PixelScale == 0.5
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 100*time.Millisecond)
	assert.Equal(t, changed, last)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
