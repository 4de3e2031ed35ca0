// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites attach context with denseErrorf,
// matrixErrorf or validatorErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> structural (square, singular, zero submatrix).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when a 2D source is ragged (rows of unequal length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a 1-based row or column index is outside
	// [1,Rows()]×[1,Cols()], or a pivot offset outside [0,min(Rows,Cols)).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrZeroSubmatrix signals that the pivot search exhausted a trailing
	// submatrix without finding a non-zero entry.
	ErrZeroSubmatrix = errors.New("matrix: zero submatrix, no pivot")

	// ErrInvalidRow is returned by ScaleAddRows when the source and target rows
	// coincide or a row index is not positive.
	ErrInvalidRow = errors.New("matrix: invalid row pair")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
