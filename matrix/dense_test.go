// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense accessors, equality,
// hashing and formatting.
package matrix_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

func TestAtSet_OneBased(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 1, 11)
	MustSet(t, m, 2, 3, 23)
	require.Equal(t, 11.0, MustAt(t, m, 1, 1))
	require.Equal(t, 23.0, MustAt(t, m, 2, 3))
	CompareExact(t, [][]float64{{11, 0, 0}, {0, 0, 23}}, m)
}

func TestAtSet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	for _, tc := range []struct {
		name string
		i, j int
	}{
		{"row zero", 0, 1},
		{"col zero", 1, 0},
		{"row past end", 3, 1},
		{"col past end", 1, 4},
		{"negative", -1, -1},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := m.At(tc.i, tc.j)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, m.Set(tc.i, tc.j, 1), matrix.ErrOutOfRange)
		})
	}
}

func TestRowCol(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(3)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	row[0] = 100 // copies, not views
	require.Equal(t, 4.0, MustAt(t, m, 2, 1))

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	MustSet(t, c, 1, 1, 42)
	require.Equal(t, 1.0, MustAt(t, m, 1, 1))
	require.False(t, m.Equal(c))
}

func TestEqual_Contract(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := MustFromRows(t, [][]float64{{1, 2}, {3, 4.0000001}})
	wide := MustFromRows(t, [][]float64{{1, 2, 3, 4}})

	// reflexive
	require.True(t, a.Equal(a))
	// symmetric
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	// exact: no tolerance
	require.False(t, a.Equal(c))
	require.False(t, c.Equal(a))
	// dimension mismatch with same element count
	require.False(t, a.Equal(wide))
	require.False(t, wide.Equal(a))
	// nil
	require.False(t, a.Equal(nil))
	// no epsilon: classic round-off case (variables, not constants, so the sum rounds)
	p, q := 0.1, 0.2
	x := MustFromRows(t, [][]float64{{p + q}})
	y := MustFromRows(t, [][]float64{{0.3}})
	require.False(t, x.Equal(y))
	require.True(t, x.EqualApprox(y, tolTight))
}

func TestEqual_NaNNeverEqual(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{math.NaN()}})
	require.False(t, a.Equal(a.Clone()))
}

func TestHash_ConsistentWithEqual(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 0}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, math.Copysign(0, -1)}, {3, 4}})
	require.True(t, a.Equal(b), "+0 and -0 compare equal")
	require.Equal(t, a.Hash(), b.Hash())

	require.Equal(t, a.Hash(), a.Clone().Hash())

	// same data, different shape: hashes should differ
	row := MustFromRows(t, [][]float64{{1, 0, 3, 4}})
	assert.NotEqual(t, a.Hash(), row.Hash())
}

func TestString_RowMajor(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 4}})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())

	empty := MustDense(t, 0, 0)
	require.Equal(t, "", empty.String())
}

func TestPrint_TwoDecimals(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.346}, {-3, 1.0 / 3}})
	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))
	require.Equal(t, "1.00  2.35\n-3.00  0.33\n", buf.String())

	buf.Reset()
	require.NoError(t, m.Print(&buf, matrix.WithPrecision(0)))
	require.Equal(t, "1  2\n-3  0\n", buf.String())
}

// failWriter rejects every write.
type failWriter struct{}

var errWrite = errors.New("write refused")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrint_WriterError(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1}})
	require.ErrorIs(t, m.Print(failWriter{}), errWrite)
}

func TestShape(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 4, 2)
	r, c := m.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)
}
