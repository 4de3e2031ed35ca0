// SPDX-License-Identifier: MIT
// Package matrix_test - shared test helpers.
//
// Purpose:
//   - Remove boilerplate from tests: construction, reads, exact/approx compare.
//   - Keep failure messages pointing at the caller (t.Helper everywhere).
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

// tolTight is the tolerance for float round-off comparisons in property tests.
const tolTight = 1e-9

// MustFromRows BUILDS a Dense from a 2D literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustDense BUILDS an r×c zero matrix or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] (1-based) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoErrorf(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES v to m[i,j] (1-based) or fails the test.
func MustSet(t testing.TB, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	require.NoErrorf(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// ToRows EXPORTS m as a 2D literal, row-major.
func ToRows(t testing.TB, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := 1; i <= m.Rows(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i-1] = row
	}

	return out
}

// CompareExact ASSERTS strict equality between m and a 2D literal.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equalf(t, len(want), m.Rows(), "Rows")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equalf(t, len(want[i]), m.Cols(), "Cols of row %d", i+1)
		for j = 0; j < len(want[i]); j++ {
			require.Equalf(t, want[i][j], MustAt(t, m, i+1, j+1), "m[%d,%d]", i+1, j+1)
		}
	}
}

// CompareClose ASSERTS same shape and element-wise closeness within tol.
func CompareClose(t testing.TB, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Truef(t, want.EqualApprox(got, tol), "want\n%v\ngot\n%v", want, got)
}

// RandomIntDense RETURNS an r×c matrix with integer entries in [-k, k],
// deterministic per seed. Integer entries keep sums and products exact.
func RandomIntDense(t testing.TB, r, c, k int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	var i, j int
	for i = 1; i <= r; i++ {
		for j = 1; j <= c; j++ {
			MustSet(t, m, i, j, float64(rng.Intn(2*k+1)-k))
		}
	}

	return m
}
