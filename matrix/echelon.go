// SPDX-License-Identifier: MIT

// Package matrix - echelon reduction engine.
//
// Purpose:
//   - FindPivot locates the first non-zero entry of the trailing submatrix
//     rooted at (offset, offset), scanning columns left→right and, inside a
//     column, rows top→bottom.
//   - EchelonForm runs forward Gaussian elimination in place: every pivot is
//     scaled to 1 and every entry below it is cleared.
//   - ReducedEchelonForm adds back substitution: the pivot sequence is
//     re-derived on the echelon matrix and processed last-to-first, clearing
//     every entry above each pivot.
//
// Determinism & numeric policy:
//   - Fixed scan order; the first non-zero candidate always wins (no partial
//     pivoting). Zero tests are exact.
//   - A pivot row is divided by its own pivot value, so the pivot becomes
//     exactly 1; eliminating with that row leaves exact zeros in the pivot
//     column. The re-derived pivot sequence therefore matches the forward pass.
//   - An all-zero trailing submatrix ends the pass; it is not an error for
//     the echelon routines, only for the public FindPivot.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const ctxFindPivot = "FindPivot"

// FindPivot returns the 1-based position of the first non-zero entry of the
// submatrix obtained by ignoring the first offset rows and columns.
// Implementation:
//   - Stage 1: validate 0 ≤ offset < min(Rows, Cols).
//   - Stage 2: scan columns offset..c-1, rows offset..r-1 (column-major).
//
// Errors:
//   - ErrOutOfRange for an invalid offset.
//   - ErrZeroSubmatrix when every entry of the submatrix is zero.
//
// Complexity:
//   - Time O((r-offset)*(c-offset)) worst case, Space O(1).
func (m *Dense) FindPivot(offset int) (Pivot, error) {
	if offset < 0 || offset >= minOf(m.r, m.c) {
		return Pivot{}, fmt.Errorf("Dense.%s(%d): %w", ctxFindPivot, offset, ErrOutOfRange)
	}
	p, ok := m.findPivot(offset)
	if !ok {
		return Pivot{}, fmt.Errorf("Dense.%s(%d): %w", ctxFindPivot, offset, ErrZeroSubmatrix)
	}

	return p, nil
}

// findPivot is the unchecked scan; ok is false for a zero submatrix.
func (m *Dense) findPivot(offset int) (p Pivot, ok bool) {
	var x, y int
	for x = offset; x < m.c; x++ { // columns left→right
		for y = offset; y < m.r; y++ { // rows top→bottom
			if m.data[y*m.c+x] != 0 {
				return Pivot{Row: y + 1, Col: x + 1}, true
			}
		}
	}

	return Pivot{}, false
}

// pivotSequence collects findPivot(0), findPivot(1), ... up to min(r,c),
// stopping at the first zero submatrix.
func (m *Dense) pivotSequence() []Pivot {
	d := minOf(m.r, m.c)
	seq := make([]Pivot, 0, d)
	for i := 0; i < d; i++ {
		p, ok := m.findPivot(i)
		if !ok {
			break // every deeper submatrix is contained in this zero one
		}
		seq = append(seq, p)
	}

	return seq
}

// EchelonForm reduces the receiver to row echelon form in place.
// MAIN DESCRIPTION:
//   - For i in 0..min(r,c): locate the pivot of submatrix (i,i), move its row
//     to row i, scale that row so the pivot is 1, clear the pivot column below.
//
// Implementation:
//   - Stage 1: findPivot(i); a zero submatrix ends the pass.
//   - Stage 2: swap pivot row into position i (no-op when already there).
//   - Stage 3: divide row i from the pivot column onward by the pivot value.
//   - Stage 4: for each lower row y with a non-zero entry s in the pivot
//     column, row[y] += (−s)·row[i].
//
// Behavior highlights:
//   - Destructive: the receiver is overwritten; Clone first to keep the input.
//   - Row permutations of the same matrix converge to the same result
//     whenever the first-non-zero rule picks the same pivot rows.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(1).
func (m *Dense) EchelonForm() {
	d := minOf(m.r, m.c)
	var (
		i, x, y int
		p       Pivot
		ok      bool
		pc      int
		pv, s   float64
		pivRow  []float64
	)
	for i = 0; i < d; i++ {
		p, ok = m.findPivot(i)
		if !ok {
			return
		}
		pc = p.Col - 1
		m.swapRows(p.Row-1, i)

		pivRow = m.row(i)
		pv = pivRow[pc]
		for x = pc; x < m.c; x++ {
			pivRow[x] /= pv
		}

		for y = i + 1; y < m.r; y++ {
			s = m.data[y*m.c+pc]
			if s == 0 {
				continue
			}
			floats.AddScaled(m.row(y), -s, pivRow)
		}
	}
}

// ReducedEchelonForm reduces the receiver to reduced row echelon form in place.
// Implementation:
//   - Stage 1: EchelonForm().
//   - Stage 2: re-derive the pivot sequence with the forward search.
//   - Stage 3: walk pivots last-to-first; for each, clear every entry above it
//     in its column via scaleAddRows.
//
// Behavior highlights:
//   - Each pivot column ends with a single 1 at the pivot row and 0 elsewhere.
//   - Destructive, like EchelonForm.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(min(r,c)) for the pivot sequence.
func (m *Dense) ReducedEchelonForm() {
	m.EchelonForm()
	seq := m.pivotSequence()

	var k, y, pr, pc int
	var s float64
	for k = len(seq) - 1; k >= 0; k-- {
		pr, pc = seq[k].Row-1, seq[k].Col-1
		for y = pr - 1; y >= 0; y-- {
			s = m.data[y*m.c+pc]
			if s == 0 {
				continue
			}
			m.scaleAddRows(pr, y, -s)
		}
	}
}

// Pivots counts the distinct pivot positions found by FindPivot(i) for
// i in 0..min(r,c) on the current contents. Zero submatrices contribute
// nothing. The receiver is not modified; call it on an echelon form (or use
// Rank) to count the rank.
func (m *Dense) Pivots() int {
	d := minOf(m.r, m.c)
	seen := make(map[Pivot]struct{}, d)
	for i := 0; i < d; i++ {
		p, ok := m.findPivot(i)
		if !ok {
			break
		}
		seen[p] = struct{}{}
	}

	return len(seen)
}

// Rank returns the number of pivots of the echelon form of a copy of m.
// The receiver is left untouched.
func (m *Dense) Rank() int {
	ef := m.Clone()
	ef.EchelonForm()

	return ef.Pivots()
}
