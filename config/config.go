// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// settings for the manipulation widgets.
package config

import (
	"fmt"

	"cogentcore.org/gizmo/math32"
)

// Color is an RGBA color with components in the 0-1 range.
type Color [4]float32

// Vector4 returns the color as a [math32.Vector4], with alpha in W.
func (c Color) Vector4() math32.Vector4 {
	return math32.Vec4(c[0], c[1], c[2], c[3])
}

// Settings are the tunable parameters of the manipulation widgets.
type Settings struct {

	// world units moved per pixel of drag by the translation widget
	PixelScale float32 `toml:"pixel_scale" yaml:"pixel_scale" def:"0.01"`

	// alpha of the active (highlighted) handle
	ActiveAlpha float32 `toml:"active_alpha" yaml:"active_alpha" def:"1"`

	// alpha of inactive handles
	InactiveAlpha float32 `toml:"inactive_alpha" yaml:"inactive_alpha" def:"0.5"`

	// sign applied to the X axis by the rotation widget
	RotationXSign float32 `toml:"rotation_x_sign" yaml:"rotation_x_sign" def:"-1"`

	// sign applied to the X axis by the translation widget
	TranslationXSign float32 `toml:"translation_x_sign" yaml:"translation_x_sign" def:"1"`

	// length of the translation axis capsules, at unit view distance
	HandleLength float32 `toml:"handle_length" yaml:"handle_length" def:"1"`

	// radius of the translation axis capsules, at unit view distance
	HandleRadius float32 `toml:"handle_radius" yaml:"handle_radius" def:"0.05"`

	// radius of the free move and free rotate spheres, at unit view distance
	SphereRadius float32 `toml:"sphere_radius" yaml:"sphere_radius" def:"0.1"`

	// radius of the rotation tori, at unit view distance;
	// the free rotate spheres sit on the tori at this distance from the center
	TorusRadius float32 `toml:"torus_radius" yaml:"torus_radius" def:"1"`

	// tube radius of the rotation tori, at unit view distance
	TorusTube float32 `toml:"torus_tube" yaml:"torus_tube" def:"0.02"`

	// half size of the selection marker, at unit view distance
	MarkerSize float32 `toml:"marker_size" yaml:"marker_size" def:"0.05"`

	// number of segments around round handle geometry
	Segments int `toml:"segments" yaml:"segments" def:"16"`

	// colors of the X, Y and Z axis handles
	XColor Color `toml:"x_color" yaml:"x_color"`
	YColor Color `toml:"y_color" yaml:"y_color"`
	ZColor Color `toml:"z_color" yaml:"z_color"`

	// color of the free handles and the selection marker
	FreeColor Color `toml:"free_color" yaml:"free_color"`

	// minimum level of log messages: debug, info, warn or error
	LogLevel string `toml:"log_level" yaml:"log_level" def:"info"`
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.PixelScale = 0.01
	s.ActiveAlpha = 1
	s.InactiveAlpha = 0.5
	s.RotationXSign = -1
	s.TranslationXSign = 1
	s.HandleLength = 1
	s.HandleRadius = 0.05
	s.SphereRadius = 0.1
	s.TorusRadius = 1
	s.TorusTube = 0.02
	s.MarkerSize = 0.05
	s.Segments = 16
	s.XColor = Color{1, 0, 0, 0.5}
	s.YColor = Color{0, 1, 0, 0.5}
	s.ZColor = Color{0, 0, 1, 0.5}
	s.FreeColor = Color{1, 1, 0, 0.5}
	s.LogLevel = "info"
}

// NewSettings returns new default settings.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Validate returns an error if any setting is out of range.
func (s *Settings) Validate() error {
	switch {
	case !math32.IsFinite(s.PixelScale) || s.PixelScale <= 0:
		return fmt.Errorf("config: pixel_scale must be positive, not %v", s.PixelScale)
	case s.ActiveAlpha < 0 || s.ActiveAlpha > 1 || s.InactiveAlpha < 0 || s.InactiveAlpha > 1:
		return fmt.Errorf("config: alphas must be in [0, 1], not %v and %v", s.ActiveAlpha, s.InactiveAlpha)
	case s.ActiveAlpha == s.InactiveAlpha:
		return fmt.Errorf("config: active_alpha and inactive_alpha must differ")
	case math32.Abs(s.RotationXSign) != 1 || math32.Abs(s.TranslationXSign) != 1:
		return fmt.Errorf("config: axis signs must be 1 or -1, not %v and %v", s.RotationXSign, s.TranslationXSign)
	case s.Segments < 3:
		return fmt.Errorf("config: segments must be at least 3, not %d", s.Segments)
	}
	for _, v := range []float32{s.HandleLength, s.HandleRadius, s.SphereRadius, s.TorusRadius, s.TorusTube, s.MarkerSize} {
		if !math32.IsFinite(v) || v <= 0 {
			return fmt.Errorf("config: handle sizes must be positive, not %v", v)
		}
	}
	return nil
}
