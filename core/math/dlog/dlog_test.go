package dlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-shifu/she-lib/core/math/pairing"
)

func TestNewTableRejectsZeroBound(t *testing.T) {
	g := pairing.BLS12381{}.G1()
	_, err := NewTable(g.Base(), 0)
	assert.ErrorIs(t, err, ErrInvalidBound)
}

func TestLookup(t *testing.T) {
	curve := pairing.BLS12381{}
	const bound = 1000

	for _, g := range []pairing.Group{curve.G1(), curve.G2(), curve.GT()} {
		g := g
		t.Run(string(g.Name()), func(t *testing.T) {
			tab, err := NewTable(g.Base(), bound)
			require.NoError(t, err)
			assert.EqualValues(t, bound, tab.Bound())

			for _, m := range []int64{0, 1, -1, 7, -42, 999, -999, bound, -bound} {
				target := curve.NewScalar().SetInt64(m).ActOnBase(g)
				got, err := tab.Lookup(target)
				require.NoError(t, err, "m=%d", m)
				assert.Equal(t, m, got, "m=%d", m)
			}
		})
	}
}

func TestLookupOutOfBound(t *testing.T) {
	curve := pairing.BN254{}
	g := curve.G1()

	tab, err := NewTable(g.Base(), 100)
	require.NoError(t, err)

	for _, m := range []int64{101, -101, 5000} {
		target := curve.NewScalar().SetInt64(m).ActOnBase(g)
		_, err := tab.Lookup(target)
		assert.ErrorIs(t, err, ErrNoMatch, "m=%d", m)
	}
}

func TestLookupConcurrent(t *testing.T) {
	curve := pairing.BLS12381{}
	g := curve.G1()

	tab, err := NewTable(g.Base(), 500)
	require.NoError(t, err)

	done := make(chan error, 16)
	for w := 0; w < 16; w++ {
		w := w
		go func() {
			m := int64(w*31 - 240)
			target := curve.NewScalar().SetInt64(m).ActOnBase(g)
			got, err := tab.Lookup(target)
			if err == nil && got != m {
				err = assert.AnError
			}
			done <- err
		}()
	}
	for w := 0; w < 16; w++ {
		assert.NoError(t, <-done)
	}
}
