// SPDX-License-Identifier: MIT

// Package matrix - minors, cofactor determinant and adjugate inverse.
//
// Purpose:
//   - Minor(m,n) deletes one row and one column (1-based).
//   - Det expands along the first row recursively (Laplace); exact for
//     integer-valued inputs, O(n!) time, no pivoting.
//   - Inverse builds the cofactor matrix, transposes it into the adjugate and
//     scales by 1/det.
//
// Numeric policy:
//   - Zero tests are exact (det == 0); there is no epsilon. Ill-conditioned
//     float inputs may produce a tiny non-zero determinant instead of 0.
package matrix

import "fmt"

// Operation tags for cofactor routines.
const (
	opMinor   = "Minor"
	opDet     = "Det"
	opInverse = "Inverse"
)

// Minor returns the (r-1)×(c-1) matrix obtained by deleting row m and column n.
// Implementation:
//   - Stage 1: validate 1 ≤ m ≤ Rows(), 1 ≤ n ≤ Cols().
//   - Stage 2: copy every cell outside the deleted row/column, row-major.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if err := ValidateIndex("row", row, m.r); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex("column", col, m.c); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return &Dense{
		r:    m.r - 1,
		c:    m.c - 1,
		data: minorData(m.data, m.r, m.c, row-1, col-1),
	}, nil
}

// minorData copies the rows×cols buffer src without 0-based row skipR and column skipC.
func minorData(src []float64, rows, cols, skipR, skipC int) []float64 {
	out := make([]float64, 0, (rows-1)*(cols-1))
	var i, j, base int
	for i = 0; i < rows; i++ {
		if i == skipR {
			continue
		}
		base = i * cols
		for j = 0; j < cols; j++ {
			if j == skipC {
				continue
			}
			out = append(out, src[base+j])
		}
	}

	return out
}

// Det returns the determinant by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - 2×2: ad − bc.
//   - n×n: Σ_j a[0][j] · det(minor(0,j)) · (−1)^j with 0-based j.
//   - 1×1 is the entry itself; 0×0 is the empty product 1.
//
// Errors:
//   - ErrNonSquare for non-square input.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func (m *Dense) Det() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return cofactorDet(m.data, m.r), nil
}

// cofactorDet is the recursive kernel over an n×n row-major buffer.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[2]*a[1]
	}

	det := ZeroSum
	sign := 1.0
	for j := 0; j < n; j++ {
		det += a[j] * cofactorDet(minorData(a, n, n, 0, j), n-1) * sign
		sign = -sign
	}

	return det
}

// Invertible reports a square matrix with Det() != 0 (exact comparison).
func (m *Dense) Invertible() bool {
	if !m.IsSquare() {
		return false
	}

	return cofactorDet(m.data, m.r) != 0
}

// Inverse returns A⁻¹ = adj(A) · (1/det A).
// Implementation:
//   - Stage 1: validate square; compute det and reject det == 0 with ErrSingular.
//   - Stage 2: cofactor C[i][j] = det(minor(i,j)) · (−1)^(i+j), 0-based i,j.
//   - Stage 3: adjugate = Cᵀ; scale by 1/det.
//
// Behavior highlights:
//   - Produces a new Dense; the receiver is not mutated.
//   - Integer matrices with det = ±1 invert exactly.
//
// Errors:
//   - ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	det := cofactorDet(m.data, n)
	if det == 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det == 0: %w", ErrSingular))
	}

	cof := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	var sign float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sign = 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			cof.data[i*n+j] = cofactorDet(minorData(m.data, n, n, i, j), n-1) * sign
		}
	}

	return cof.Transpose().Scale(1 / det), nil
}
