// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Dense deliberately stops at cofactor/echelon algorithms. Callers who need
// pivoted decompositions (LU, QR, SVD, eigen) move data to gonum and back
// with ToGonum / FromGonum. Both directions copy; nothing is shared.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// gonum rejects empty shapes, so a matrix with zero rows or columns returns
// ErrInvalidDimensions.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Implementation:
//   - Stage 1: reject a nil interface with ErrNilMatrix.
//   - Stage 2: fast path for *mat.Dense: copy row slices using the raw stride.
//   - Stage 3: fallback: a.At(i, j) in fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := a.Dims()
	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	var i, j int
	if gd, ok := a.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i = 0; i < rows; i++ {
			copy(res.row(i), raw.Data[i*raw.Stride:i*raw.Stride+cols])
		}

		return res, nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = a.At(i, j)
		}
	}

	return res, nil
}
