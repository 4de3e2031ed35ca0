// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise and linear operations on Dense:
// trace, transpose, addition, matrix product and scalar scaling. All
// producing operations are pure: they allocate a fresh result and never
// mutate their operands. Shape violations fail fast with sentinel errors.
//
// Purpose:
//   - Define the operation tags and the shared error wrapper used across kernels.
//   - Keep loop orders fixed (i→j, i→j→k) so results are reproducible bit-for-bit.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial value for accumulations (trace, determinant).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTrace = "Trace"
	opAdd   = "Add"
	opMul   = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsSquare reports Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// Trace returns the sum of the main diagonal.
// Errors: ErrNonSquare for non-square input.
// Complexity: O(n).
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Transpose returns a new c×r matrix with res(j,i) = m(i,j).
// The receiver is never mutated.
//
// Implementation:
//   - Stage 1: allocate Dense(cols, rows).
//   - Stage 2: map data[i*cols + j] → res.data[j*rows + i] in fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k := range m.data { // deterministic 0..n-1
		res.data[k] = m.data[k] + b.data[k]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// MAIN DESCRIPTION:
//   - C(i,j) is the dot product of row i of A and column j of B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: linearize every column of B once (col-major cache).
//   - Stage 3: for i→j, C(i,j) = floats.Dot(row_i(A), col_j(B)).
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) for the result and the column cache.
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, cols := m.r, b.c
	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	if m.c == 0 {
		return res, nil // empty inner dimension: zero matrix
	}

	// Linearize B's columns once; each is reused for every row of A.
	bCols := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		bCols[j] = b.col(j)
	}

	var i, j int
	var rowA []float64
	for i = 0; i < rows; i++ {
		rowA = m.row(i)
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = floats.Dot(rowA, bCols[j])
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are c * m[i,j].
// Multiplying by 0 is a defined special case: the result is a fresh zero
// matrix of the same shape, even when m holds ±Inf or NaN.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Scale(c float64) *Dense {
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	if c == 0 {
		return res
	}
	for k, v := range m.data {
		res.data[k] = v * c
	}

	return res
}
