// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula (i-1)*cols + (j-1).
//   - Expose 1-based coordinates at the public surface; storage stays 0-based.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - At/Set: O(1); Clone/Equal/Hash/String: O(r*c).
package matrix

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxCol   = "Col"   // method tag used in error wrappers
	ctxPrint = "Print" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen   = "["
	_fmtRowClose  = "]\n"
	_fmtSep       = ", "
	_fmtPrintSep  = "  "
	_fmtPrintLine = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <underlying>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rectangular grid of float64 values stored row-major.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c (offset = i*c + j, 0-based).
//
// Shape is fixed at construction; shape-changing operations (Transpose, Minor,
// Mul) return a new *Dense. Content is mutable through Set, the row/column
// primitives and the echelon passes.
//
// A *Dense is not safe for concurrent use when any goroutine mutates it;
// callers own synchronization.
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf converts 1-based (row, col) into a flat offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.r {
		return 0, ErrOutOfRange
	}
	if col < 1 || col > m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset on 0-based storage.
	return (row-1)*m.c + (col - 1), nil
}

// row returns the live 0-based row i of the backing buffer (no copy).
func (m *Dense) row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// col copies the 0-based column j into a fresh slice of length r.
func (m *Dense) col(j int) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// At returns the value at 1-based (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when row ∉ [1,Rows()] or col ∉ [1,Cols()].
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at 1-based (row, col).
// MAIN DESCRIPTION:
//   - Safe element write; mutates the receiver in place.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of the 1-based row.
func (m *Dense) Row(row int) ([]float64, error) {
	if err := ValidateIndex("row", row, m.r); err != nil {
		return nil, denseErrorf(ctxRow, row, 0, err)
	}
	out := make([]float64, m.c)
	copy(out, m.row(row-1))

	return out, nil
}

// Col returns the 1-based column linearized into a fresh slice.
func (m *Dense) Col(col int) ([]float64, error) {
	if err := ValidateIndex("column", col, m.c); err != nil {
		return nil, denseErrorf(ctxCol, 0, col, err)
	}

	return m.col(col - 1), nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports exact equality: same shape and a[i,j] == b[i,j] for every cell.
// There is no tolerance: 0.1+0.2 and 0.3 differ. NaN never equals anything,
// +0 equals -0 (IEEE comparison). A nil argument is never equal.
//
// Complexity:
//   - Time O(r*c), Space O(1); stops at the first mismatch.
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// EqualApprox reports same shape and |a-b| ≤ tol (absolute or relative) for
// every cell, delegating the element test to gonum's floats.EqualApprox.
func (m *Dense) EqualApprox(b *Dense, tol float64) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}

	return floats.EqualApprox(m.data, b.data, tol)
}

// Hash returns a 64-bit FNV-1a digest over the shape and the entry bits.
// MAIN DESCRIPTION:
//   - Stable hash consistent with Equal: Equal(a,b) ⇒ a.Hash() == b.Hash().
//
// Implementation:
//   - Stage 1: feed rows and cols as little-endian uint64.
//   - Stage 2: feed math.Float64bits of each entry in row-major order,
//     folding -0 onto +0 because Equal treats them as equal.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(m.r))
	_, _ = h.Write(buf[:]) // hash.Hash never returns an error
	binary.LittleEndian.PutUint64(buf[:], uint64(m.c))
	_, _ = h.Write(buf[:])

	for _, v := range m.data {
		if v == 0 {
			v = 0 // -0 → +0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// String renders every row as "[a, b, c]" on its own line, row-major.
// Entries use %g. Intended for logs and debugging; not for hot paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Print writes one line per row to w with fixed-point entries separated by
// two spaces. Precision defaults to DefaultPrecision (two decimals) and is
// overridden by WithPrecision.
func (m *Dense) Print(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%.*f", o.precision, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtPrintSep)
			}
		}
		b.WriteString(_fmtPrintLine)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxPrint, err)
	}

	return nil
}
