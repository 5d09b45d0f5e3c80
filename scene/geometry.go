// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/gizmo/math32"
)

// ring appends segs points of a circle of the given radius in the XZ
// plane at height y.
func ring(pts []math32.Vector4, radius, y float32, segs int) []math32.Vector4 {
	for i := 0; i < segs; i++ {
		ang := 2 * math32.Pi * float32(i) / float32(segs)
		pts = append(pts, math32.Point(radius*math32.Cos(ang), y, radius*math32.Sin(ang)))
	}
	return pts
}

// CapsuleShape returns a capsule of the given radius running along +Y
// from the origin to length, with hemispherical caps.
// segs is the number of points around, and must be at least 3.
func CapsuleShape(radius, length float32, segs int, color math32.Vector4) *Shape {
	segs = max(segs, 3)
	rings := max(segs/4, 1)
	var pts []math32.Vector4
	pts = append(pts, math32.Point(0, 0, 0))
	for i := 1; i <= rings; i++ { // bottom cap
		lat := math32.Pi / 2 * float32(rings-i) / float32(rings)
		pts = ring(pts, radius*math32.Cos(lat), radius-radius*math32.Sin(lat), segs)
	}
	for i := 0; i <= rings; i++ { // top cap
		lat := math32.Pi / 2 * float32(i) / float32(rings)
		pts = ring(pts, radius*math32.Cos(lat), length-radius+radius*math32.Sin(lat), segs)
	}
	pts = append(pts, math32.Point(0, length, 0))
	return NewShape(Capsule, pts, color)
}

// SphereShape returns a sphere of the given radius centered at center,
// with segs points around each latitude ring.
func SphereShape(radius float32, center math32.Vector4, segs int, color math32.Vector4) *Shape {
	segs = max(segs, 3)
	rings := max(segs/2, 2)
	var pts []math32.Vector4
	pts = append(pts, math32.Point(0, -radius, 0))
	for i := 1; i < rings; i++ {
		lat := -math32.Pi/2 + math32.Pi*float32(i)/float32(rings)
		pts = ring(pts, radius*math32.Cos(lat), radius*math32.Sin(lat), segs)
	}
	pts = append(pts, math32.Point(0, radius, 0))
	for i := range pts {
		pts[i] = pts[i].Add(center)
	}
	return NewShape(Sphere, pts, color)
}

// TorusShape returns a ring in the XZ plane around the Y axis, with the
// given major (ring) and minor (tube) radius.
func TorusShape(major, minor float32, segs, sides int, color math32.Vector4) *Shape {
	segs = max(segs, 3)
	sides = max(sides, 3)
	var pts []math32.Vector4
	for i := 0; i < segs; i++ {
		ang := 2 * math32.Pi * float32(i) / float32(segs)
		ca, sa := math32.Cos(ang), math32.Sin(ang)
		for j := 0; j < sides; j++ {
			tube := 2 * math32.Pi * float32(j) / float32(sides)
			r := major + minor*math32.Cos(tube)
			pts = append(pts, math32.Point(r*ca, minor*math32.Sin(tube), r*sa))
		}
	}
	return NewShape(Torus, pts, color)
}

// MarkerShape returns a flat square marker of the given half size in the
// XY plane, with a center cross, for drawing facing the camera.
func MarkerShape(size float32, color math32.Vector4) *Shape {
	pts := []math32.Vector4{
		math32.Point(-size, -size, 0),
		math32.Point(size, -size, 0),
		math32.Point(size, size, 0),
		math32.Point(-size, size, 0),
		math32.Point(-size/2, 0, 0),
		math32.Point(size/2, 0, 0),
		math32.Point(0, -size/2, 0),
		math32.Point(0, size/2, 0),
	}
	return NewShape(Marker, pts, color)
}
