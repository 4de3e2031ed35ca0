// Package matrix offers a dense, real-valued matrix with an echelon
// reduction engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 grid with 1-based At/Set, deep-copying
//     constructors (NewDense, NewFilled, NewFromRows, NewRowVector,
//     FromValues, NewIdentity, Random) and the Fill/Clear helpers.
//   - Pure operations returning fresh matrices: Add, Mul, Scale, Transpose,
//     Minor, Inverse, Clone.
//   - Scalar queries: Trace, Det (cofactor expansion), Invertible, Pivots, Rank.
//   - In-place reductions: EchelonForm, ReducedEchelonForm and the
//     elementary operations SwapRows, ScaleRow, ScaleColumn, ScaleAddRows.
//
// Equality is exact (Equal, Hash); EqualApprox exists for float round-off.
// Determinant and inverse are factorial-time by construction and meant for
// small, exactly representable inputs. Use ToGonum for anything larger.
//
// Every failure is a wrapped sentinel from errors.go; match with errors.Is.
package matrix
