// SPDX-License-Identifier: MIT

// Package matrix - elementary row and column operations (in place, 1-based).
//
// These are the primitives of Gaussian elimination. Each public method
// validates its indices and mutates the receiver; the 0-based unexported
// twins skip validation and are used by the echelon passes.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxSwapRows     = "SwapRows"
	ctxScaleRow     = "ScaleRow"
	ctxScaleColumn  = "ScaleColumn"
	ctxScaleAddRows = "ScaleAddRows"
)

// SwapRows exchanges rows m1 and m2 in place. Equal indices are a no-op.
// Errors: ErrOutOfRange.
func (m *Dense) SwapRows(m1, m2 int) error {
	if err := ValidateIndex("row", m1, m.r); err != nil {
		return denseErrorf(ctxSwapRows, m1, m2, err)
	}
	if err := ValidateIndex("row", m2, m.r); err != nil {
		return denseErrorf(ctxSwapRows, m1, m2, err)
	}
	m.swapRows(m1-1, m2-1)

	return nil
}

// ScaleRow multiplies every entry of the given row by c in place.
// Errors: ErrOutOfRange.
func (m *Dense) ScaleRow(row int, c float64) error {
	if err := ValidateIndex("row", row, m.r); err != nil {
		return denseErrorf(ctxScaleRow, row, 0, err)
	}
	floats.Scale(c, m.row(row-1))

	return nil
}

// ScaleColumn multiplies every entry of the given column by c in place.
// Errors: ErrOutOfRange.
func (m *Dense) ScaleColumn(col int, c float64) error {
	if err := ValidateIndex("column", col, m.c); err != nil {
		return denseErrorf(ctxScaleColumn, 0, col, err)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+col-1] *= c
	}

	return nil
}

// ScaleAddRows adds c × row m1 to row m2 in place (row m1 is unchanged).
// Implementation:
//   - Stage 1: reject m1 == m2 and non-positive indices with ErrInvalidRow.
//   - Stage 2: reject indices above Rows() with ErrOutOfRange.
//   - Stage 3: row[m2] += c·row[m1] via floats.AddScaled.
//
// Errors:
//   - ErrInvalidRow, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleAddRows(m1, m2 int, c float64) error {
	if m1 == m2 {
		return denseErrorf(ctxScaleAddRows, m1, m2, fmt.Errorf("same row: %w", ErrInvalidRow))
	}
	if m1 <= 0 || m2 <= 0 {
		return denseErrorf(ctxScaleAddRows, m1, m2, ErrInvalidRow)
	}
	if m1 > m.r || m2 > m.r {
		return denseErrorf(ctxScaleAddRows, m1, m2, ErrOutOfRange)
	}
	m.scaleAddRows(m1-1, m2-1, c)

	return nil
}

// swapRows exchanges 0-based rows i and j element by element.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	rowI, rowJ := m.row(i), m.row(j)
	for k := range rowI {
		rowI[k], rowJ[k] = rowJ[k], rowI[k]
	}
}

// scaleAddRows performs row[dst] += c·row[src] on 0-based rows.
func (m *Dense) scaleAddRows(src, dst int, c float64) {
	floats.AddScaled(m.row(dst), c, m.row(src))
}
