// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector4
	Max Vector4
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Point(x0, y0, z0), Point(x1, y1, z1)}
}

// B3Empty returns a new empty [Box3], with min at +Infinity and
// max at -Infinity, so that any expansion sets it.
func B3Empty() Box3 {
	return Box3{Point(Infinity, Infinity, Infinity), Point(-Infinity, -Infinity, -Infinity)}
}

// B3FromPoints returns the bounding box of the given points.
func B3FromPoints(points []Vector4) Box3 {
	b := B3Empty()
	for _, p := range points {
		b = b.ExpandByPoint(p)
	}
	return b
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint returns the box expanded to include the given point.
func (b Box3) ExpandByPoint(p Vector4) Box3 {
	b.Min = Point(Min(b.Min.X, p.X), Min(b.Min.Y, p.Y), Min(b.Min.Z, p.Z))
	b.Max = Point(Max(b.Max.X, p.X), Max(b.Max.Y, p.Y), Max(b.Max.Z, p.Z))
	return b
}

// Union returns the union with other box.
func (b Box3) Union(other Box3) Box3 {
	if other.IsEmpty() {
		return b
	}
	return b.ExpandByPoint(other.Min).ExpandByPoint(other.Max)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector4 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector4 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector4) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// MulMatrix4 multiplies the specified matrix to the vertices of this bounding box
// and computes the resulting spanning Box3 of the transformed points.
// An empty box stays empty.
func (b Box3) MulMatrix4(m Matrix4) Box3 {
	if b.IsEmpty() {
		return b
	}
	xax := m[0] * b.Min.X
	xay := m[1] * b.Min.X
	xaz := m[2] * b.Min.X
	xbx := m[0] * b.Max.X
	xby := m[1] * b.Max.X
	xbz := m[2] * b.Max.X
	yax := m[4] * b.Min.Y
	yay := m[5] * b.Min.Y
	yaz := m[6] * b.Min.Y
	ybx := m[4] * b.Max.Y
	yby := m[5] * b.Max.Y
	ybz := m[6] * b.Max.Y
	zax := m[8] * b.Min.Z
	zay := m[9] * b.Min.Z
	zaz := m[10] * b.Min.Z
	zbx := m[8] * b.Max.Z
	zby := m[9] * b.Max.Z
	zbz := m[10] * b.Max.Z

	return Box3{
		Min: Point(Min(xax, xbx)+Min(yax, ybx)+Min(zax, zbx)+m[12],
			Min(xay, xby)+Min(yay, yby)+Min(zay, zby)+m[13],
			Min(xaz, xbz)+Min(yaz, ybz)+Min(zaz, zbz)+m[14]),
		Max: Point(Max(xax, xbx)+Max(yax, ybx)+Max(zax, zbx)+m[12],
			Max(xay, xby)+Max(yay, yby)+Max(zay, zby)+m[13],
			Max(xaz, xbz)+Max(yaz, ybz)+Max(zaz, zbz)+m[14]),
	}
}
