// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

var (
	// ErrSingular is returned when inverting a matrix whose determinant is zero.
	ErrSingular = errors.New("math32: matrix is singular")

	// ErrInvalidAxis is returned when rotating around a zero-length
	// or non-finite axis.
	ErrInvalidAxis = errors.New("math32: rotation axis must be finite and have non-zero length")

	// ErrUnsupported is returned for queries that can not be answered from
	// the matrix representation, such as Euler angles of a scaled basis.
	ErrUnsupported = errors.New("math32: operation not supported")
)
