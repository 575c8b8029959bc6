package sample

import (
	"crypto/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-shifu/she-lib/core/math/pairing"
)

func TestScalar(t *testing.T) {
	for _, c := range []pairing.Curve{pairing.BLS12381{}, pairing.BN254{}} {
		s, err := Scalar(rand.Reader, c)
		require.NoError(t, err)
		require.NotNil(t, s)

		u, err := Scalar(rand.Reader, c)
		require.NoError(t, err)
		assert.False(t, s.Equal(u), "two draws must not collide")
	}
}

func TestScalarNilReaderUsesCryptoRand(t *testing.T) {
	s, err := Scalar(nil, pairing.BLS12381{})
	require.NoError(t, err)
	assert.False(t, s.IsZero())
}

func TestScalarEntropyFailure(t *testing.T) {
	_, err := Scalar(iotest.ErrReader(assert.AnError), pairing.BLS12381{})
	assert.ErrorIs(t, err, assert.AnError)
}
