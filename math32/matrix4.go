// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 homogeneous matrix stored in column-major order:
// columns are the X axis, Y axis, Z axis and translation, so element
// (row, col) is at index col*4 + row.
// Matrix4 is a value type; all methods return new matrices.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromColumns returns a matrix built from the four given columns.
func Matrix4FromColumns(c0, c1, c2, c3 Vector4) Matrix4 {
	var m Matrix4
	c0.ToSlice(m[:], 0)
	c1.ToSlice(m[:], 4)
	c2.ToSlice(m[:], 8)
	c3.ToSlice(m[:], 12)
	return m
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Column returns the given column (0..3) as a vector.
func (m Matrix4) Column(col int) Vector4 {
	return FromSlice(m[:], col*4)
}

// SetColumn returns a copy of the matrix with the given column replaced.
func (m Matrix4) SetColumn(col int, v Vector4) Matrix4 {
	v.ToSlice(m[:], col*4)
	return m
}

// Mul returns this matrix multiplied on the right by other: m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	return mul4(m, other)
}

// MulLeft returns this matrix multiplied on the left by other: other * m.
func (m Matrix4) MulLeft(other Matrix4) Matrix4 {
	return mul4(other, m)
}

// mul4 computes left * right, where element (row, col) is the sum over k
// of left[row + k*4] * right[col*4 + k].
func mul4(left, right Matrix4) Matrix4 {
	var p Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += left[row+k*4] * right[col*4+k]
			}
			p[col*4+row] = sum
		}
	}
	return p
}

// MulVector4 returns the matrix multiplied by the column vector v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W}
}

// determinant33 returns the determinant of the 3x3 matrix given
// column by column, using the rule of Sarrus.
func determinant33(a, b, c, d, e, f, g, h, i float32) float32 {
	return a*e*i + d*h*c + g*b*f - g*e*c - d*b*i - a*h*f
}

// minor returns the determinant of the 3x3 matrix left after removing
// the given row and column.
func (m Matrix4) minor(row, col int) float32 {
	var s [9]float32
	n := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			s[n] = m[c*4+r]
			n++
		}
	}
	return determinant33(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8])
}

// cofactor returns the signed minor for the given row and column.
func (m Matrix4) cofactor(row, col int) float32 {
	if (row+col)%2 == 1 {
		return -m.minor(row, col)
	}
	return m.minor(row, col)
}

// Determinant calculates the determinant of the matrix by expansion
// along the first row.
func (m Matrix4) Determinant() float32 {
	return m[0]*determinant33(m[5], m[6], m[7], m[9], m[10], m[11], m[13], m[14], m[15]) -
		m[4]*determinant33(m[1], m[2], m[3], m[9], m[10], m[11], m[13], m[14], m[15]) +
		m[8]*determinant33(m[1], m[2], m[3], m[5], m[6], m[7], m[13], m[14], m[15]) -
		m[12]*determinant33(m[1], m[2], m[3], m[5], m[6], m[7], m[9], m[10], m[11])
}

// Inverse returns the inverse of this matrix, computed with Cramer's rule:
// the adjugate (transposed cofactor matrix) divided by the determinant.
// If the matrix cannot be inverted, it returns [ErrSingular] and the
// identity matrix.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0 || !IsFinite(det) {
		return Identity4(), fmt.Errorf("inverting matrix with determinant %v: %w", det, ErrSingular)
	}
	var inv Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// adjugate: element (row, col) is cofactor (col, row)
			inv[col*4+row] = m.cofactor(col, row) / det
		}
	}
	return inv, nil
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
	return m
}

// IsIdentity returns true if this is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// IsFinite returns true if no element is NaN or infinite.
func (m Matrix4) IsFinite() bool {
	for _, v := range m {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// ApproxEqual returns true if every element is within tol of other.
func (m Matrix4) ApproxEqual(other Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

func (m Matrix4) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&b, "[%v %v %v %v]", m[row], m[4+row], m[8+row], m[12+row])
		if row < 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
