// Package main prints a short tour of the matrix package: a base matrix, its
// transpose, a scalar multiple, a matrix-vector product, the string form, a
// minor, a determinant and an inverse.
//
// Numeric dumps use Dense.Print (two decimals).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/echelon/matrix"
)

func main() {
	// ───────────────────────────────────────────────
	// Base 4×3 matrix and an all-ones column vector
	// ───────────────────────────────────────────────
	base, err := matrix.NewFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{10, 11, 12},
	})
	if err != nil {
		log.Fatalf("build base matrix: %v", err)
	}
	ones, err := matrix.NewFilled(3, 1, 1)
	if err != nil {
		log.Fatalf("build ones vector: %v", err)
	}

	section("Base matrix")
	mustPrint(base)

	section("Transpose")
	mustPrint(base.Transpose())

	section("Base × 2.5")
	mustPrint(base.Scale(2.5))

	section("Base × ones(3×1)")
	prod, err := base.Mul(ones)
	if err != nil {
		log.Fatalf("Mul: %v", err)
	}
	mustPrint(prod)

	section("String form")
	fmt.Print(base.String())

	section("Minor(2,2)")
	minor, err := base.Minor(2, 2)
	if err != nil {
		log.Fatalf("Minor: %v", err)
	}
	mustPrint(minor)

	// ───────────────────────────────────────────────
	// Square matrix with det = 1: integer inverse
	// ───────────────────────────────────────────────
	sq, err := matrix.NewFromRows([][]float64{
		{7, 2, 1},
		{0, 3, -1},
		{-3, 4, -2},
	})
	if err != nil {
		log.Fatalf("build square matrix: %v", err)
	}

	section("Square matrix")
	mustPrint(sq)

	det, err := sq.Det()
	if err != nil {
		log.Fatalf("Det: %v", err)
	}
	fmt.Printf("det = %.2f\n", det)

	section("Inverse")
	if !sq.Invertible() {
		log.Fatalf("matrix is singular")
	}
	inv, err := sq.Inverse()
	if err != nil {
		log.Fatalf("Inverse: %v", err)
	}
	mustPrint(inv)

	section("Reduced echelon form of the square matrix")
	rref := sq.Clone()
	rref.ReducedEchelonForm()
	mustPrint(rref)
	fmt.Printf("rank = %d\n", sq.Rank())
}

// section prints a blank-line separated heading.
func section(title string) {
	fmt.Printf("\n== %s ==\n", title)
}

// mustPrint dumps m with two decimals or aborts.
func mustPrint(m *matrix.Dense) {
	if err := m.Print(os.Stdout); err != nil {
		log.Fatalf("print: %v", err)
	}
}
