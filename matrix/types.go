// SPDX-License-Identifier: MIT

// Package matrix: small domain types shared by constructors and the
// reduction engine. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point kind accepted by FromValues.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pivot is a 1-based (row, column) position of a pivot entry.
// The zero value is not a valid position.
type Pivot struct {
	Row int // 1-based row index
	Col int // 1-based column index
}

// String renders the pivot as "(row,col)".
func (p Pivot) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// minOf returns the smaller of a and b.
func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}
