// Package echelon is a small dense linear-algebra toolkit built around
// Gaussian elimination: construct a matrix, combine it (add, multiply,
// transpose, scale), and reduce it (determinant, inverse, row echelon and
// reduced row echelon form, rank).
//
// Layout:
//
//	matrix/          Dense type, operations, reduction engine, gonum interop
//	cmd/matrixdemo/  prints a tour of the API to standard output
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{1, 2, 0}, {0, 4, 5}, {3, 2, 6}})
//	A.ReducedEchelonForm() // A is now the 3×3 identity
//
//	go get github.com/katalvlaran/echelon
package echelon
