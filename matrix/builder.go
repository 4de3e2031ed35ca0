// SPDX-License-Identifier: MIT

// Package matrix - constructors and bulk writers for Dense.
//
// Purpose:
//   - Build Dense matrices from shapes, constants, 1D/2D sources and seeded
//     random streams.
//   - Every constructor deep-copies its source; the result never aliases
//     caller-owned slices.
//
// Determinism:
//   - Random draws from a seeded math/rand stream; same seed ⇒ same matrix.
package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Operation tags for constructor error wrapping.
const (
	opNewDense    = "NewDense"
	opNewFilled   = "NewFilled"
	opNewFromRows = "NewFromRows"
	opFromValues  = "FromValues"
	opNewIdentity = "NewIdentity"
	opRandom      = "Random"
	opFill        = "Fill"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - 0×N and N×0 are legal and produce an empty buffer.
//   - No panics on user errors; returns sentinel errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every entry equal to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewFilled, err)
	}
	m.fill(v)

	return m, nil
}

// NewFromRows copies a 2D source: Rows = len(src), Cols = len(src[0]).
// Implementation:
//   - Stage 1: derive shape from the outer and first inner length.
//   - Stage 2: reject ragged sources with ErrBadShape before allocating.
//   - Stage 3: copy row by row into the flat buffer.
//
// Behavior highlights:
//   - Empty (or nil) src yields a 0×0 matrix.
//   - The result never aliases src.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(src [][]float64) (*Dense, error) {
	rows, cols, err := sourceShape(src)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(m.row(i), src[i])
	}

	return m, nil
}

// NewRowVector copies src into a 1×len(src) matrix.
func NewRowVector(src []float64) *Dense {
	data := make([]float64, len(src))
	copy(data, src)

	return &Dense{r: 1, c: len(src), data: data}
}

// FromValues converts a 2D source of any integer or float kind into a Dense.
// Shape rules match NewFromRows; every element goes through float64(v).
func FromValues[T Number](src [][]T) (*Dense, error) {
	rows, cols, err := sourceShape(src)
	if err != nil {
		return nil, matrixErrorf(opFromValues, err)
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[i*cols+j] = float64(src[i][j])
		}
	}

	return m, nil
}

// sourceShape derives (rows, cols) from a 2D source and checks rectangularity.
func sourceShape[T any](src [][]T) (rows, cols int, err error) {
	rows = len(src)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(src[0])
	for i := 1; i < rows; i++ {
		if len(src[i]) != cols {
			return 0, 0, fmt.Errorf("row %d has %d entries, want %d: %w", i+1, len(src[i]), cols, ErrBadShape)
		}
	}

	return rows, cols, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Random returns an r×c matrix with entries drawn uniformly from [lo, hi),
// by default [1, 51). Intended for ad hoc testing and demos; it is neither a
// cryptographic nor a statistically vetted generator.
//
// Implementation:
//   - Stage 1: resolve options (seed, range) and validate shape.
//   - Stage 2: fill row-major from one seeded stream.
//
// Determinism:
//   - Same (rows, cols, seed, range) ⇒ identical matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	rng := rngFromSeed(o.seed)
	span := o.hi - o.lo
	var v float64
	for k := range m.data {
		v = o.lo + rng.Float64()*span
		if v >= o.hi { // rounding can land on hi for wide spans
			v = math.Nextafter(o.hi, o.lo)
		}
		m.data[k] = v
	}

	return m, nil
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Fill overwrites every entry of m with v in place.
// Errors: ErrNilMatrix.
func Fill(m *Dense, v float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	m.fill(v)

	return nil
}

// Clear is Fill with 0.
func Clear(m *Dense) error { return Fill(m, 0) }

// fill writes v into every cell.
func (m *Dense) fill(v float64) {
	for k := range m.data {
		m.data[k] = v
	}
}
