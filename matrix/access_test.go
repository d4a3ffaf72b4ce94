// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for 1-based element access.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/errchan"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestAtSetOutOfRange sweeps shapes 1×1..10×10 with the boundary indices 0 and n+1.
func TestAtSetOutOfRange(t *testing.T) {
	for r := 1; r <= maxShape; r++ {
		for c := 1; c <= maxShape; c++ {
			ch, bind := freshChannel()
			m := mustSeq(t, r, c, bind)
			bad := [][2]int{
				{0, 1}, {r + 1, 1}, {1, 0}, {1, c + 1},
				{0, 0}, {r + 1, c + 1}, {-1, 1}, {1, -1},
			}
			for _, ix := range bad {
				ch.Clear()
				v, err := m.At(ix[0], ix[1])
				require.True(t, math.IsNaN(v), "At%v r=%d c=%d", ix, r, c)
				require.ErrorIs(t, err, matrix.ErrOutOfRange)
				require.Equal(t, errchan.IndexOutOfRange, ch.Last())

				ch.Clear()
				err = m.Set(ix[0], ix[1], 99)
				require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set%v r=%d c=%d", ix, r, c)
				require.Equal(t, errchan.IndexOutOfRange, ch.Last())
			}
			require.True(t, matrix.Equal(mustSeq(t, r, c), m)) // failed Sets changed nothing
		}
	}
}

// TestAtSetValid reads back every element after Set.
func TestAtSetValid(t *testing.T) {
	ch, bind := freshChannel()
	m := mustSeq(t, 3, 2, bind)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 2; j++ {
			require.Equal(t, seqValue(i, j), mustAt(t, m, i, j))
		}
	}
	require.Equal(t, errchan.None, ch.Last())

	require.NoError(t, m.Set(3, 2, 7.89))
	require.Equal(t, 7.89, mustAt(t, m, 3, 2))
}

// TestStoredNaN distinguishes a stored NaN from a failure through the error only.
func TestStoredNaN(t *testing.T) {
	ch, bind := freshChannel()
	m := mustNew(t, 1, 1, bind)
	require.NoError(t, m.Set(1, 1, math.NaN()))

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
	require.Equal(t, errchan.None, ch.Last())
}

// TestAccessNilMatrix ensures nil receivers fail instead of panicking.
func TestAccessNilMatrix(t *testing.T) {
	var m *matrix.Matrix
	v, err := m.At(1, 1)
	require.True(t, math.IsNaN(v))
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	require.ErrorIs(t, m.Set(1, 1, 0), matrix.ErrNilArgument)
	_, err = m.Row(1)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	require.NotPanics(t, func() {
		m.Do(func(int, int, float64) bool { t.Fatal("visited nil matrix"); return false })
	})
}

// TestRowCopy returns an independent copy of a row.
func TestRowCopy(t *testing.T) {
	m := mustSeq(t, 2, 3)
	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{21, 22, 23}, row)

	row[0] = 0
	require.Equal(t, 21.0, mustAt(t, m, 2, 1))

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDoOrderAndStop visits in row-major order and honors early stop.
func TestDoOrderAndStop(t *testing.T) {
	m := mustSeq(t, 2, 2)
	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		require.Equal(t, seqValue(i, j), v)
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{11, 12, 21}, seen)
}

// TestEqual covers shape, value and liveness differences.
func TestEqual(t *testing.T) {
	a := mustSeq(t, 2, 2)
	require.True(t, matrix.Equal(a, mustSeq(t, 2, 2)))
	require.False(t, matrix.Equal(a, mustSeq(t, 2, 3)))
	require.False(t, matrix.Equal(a, nil))

	b := mustSeq(t, 2, 2)
	require.NoError(t, b.Set(1, 1, 0))
	require.False(t, matrix.Equal(a, b))
}
