package she

import (
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mr-shifu/she-lib/core/math/pairing"
)

var testCurves = []pairing.Curve{pairing.BLS12381{}, pairing.BN254{}}

func testKeyPair(t *testing.T, c pairing.Curve) (*SecretKey, *PublicKey) {
	t.Helper()
	sk, err := GenerateSecretKey(nil, c)
	require.NoError(t, err)
	return sk, sk.Public()
}

func TestGenerateSecretKeyEntropyFailure(t *testing.T) {
	_, err := GenerateSecretKey(iotest.ErrReader(assert.AnError), pairing.BLS12381{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSecretKeyRoundTrip(t *testing.T) {
	for _, c := range testCurves {
		sk, _ := testKeyPair(t, c)

		buf, err := sk.MarshalBinary()
		require.NoError(t, err)

		restored := NewSecretKey(c)
		require.NoError(t, restored.UnmarshalBinary(buf))
		assert.True(t, restored.Public().Equal(sk.Public()))
	}
}

func TestPublicKeyRoundTrip(t *testing.T) {
	for _, c := range testCurves {
		_, pk := testKeyPair(t, c)

		buf, err := pk.MarshalBinary()
		require.NoError(t, err)

		restored := NewPublicKey(c)
		require.NoError(t, restored.UnmarshalBinary(buf))
		assert.True(t, restored.Equal(pk))
		assert.Equal(t, pk.Fingerprint(), restored.Fingerprint())

		// truncated and corrupted encodings are rejected
		assert.ErrorIs(t, NewPublicKey(c).UnmarshalBinary(buf[:len(buf)-1]), ErrMalformedKey)
		bad := append([]byte{}, buf...)
		bad[1] ^= 0xff
		assert.ErrorIs(t, NewPublicKey(c).UnmarshalBinary(bad), ErrMalformedKey)
	}
}

func TestSecretKeyZero(t *testing.T) {
	sk, _ := testKeyPair(t, pairing.BLS12381{})
	sk.Zero()
	buf, err := sk.MarshalBinary()
	require.NoError(t, err)
	for _, b := range buf {
		assert.Zero(t, b)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			sk, pk := testKeyPair(t, c)

			for _, m := range []int64{0, 1, -1, 12345, -54321} {
				ct1, err := EncryptG1(pk, m)
				require.NoError(t, err)
				got, err := sk.DecryptG1(ct1)
				require.NoError(t, err)
				assert.Equal(t, m, got)

				ct2, err := EncryptG2(pk, m)
				require.NoError(t, err)
				got, err = sk.DecryptG2(ct2)
				require.NoError(t, err)
				assert.Equal(t, m, got)

				ctT, err := EncryptGT(pk, m)
				require.NoError(t, err)
				got, err = sk.DecryptGT(ctT)
				require.NoError(t, err)
				assert.Equal(t, m, got)
			}
		})
	}
}

func TestEncryptRejectsOutOfRange(t *testing.T) {
	_, pk := testKeyPair(t, pairing.BLS12381{})

	over := int64(DefaultMessageBound) + 1
	_, err := EncryptG1(pk, over)
	assert.ErrorIs(t, err, ErrPlaintextRange)
	_, err = EncryptG2(pk, -over)
	assert.ErrorIs(t, err, ErrPlaintextRange)
	_, err = EncryptGT(pk, over)
	assert.ErrorIs(t, err, ErrPlaintextRange)
}

// The concrete scenario: Enc(5) + Enc(7) decrypts to 12.
func TestAdd(t *testing.T) {
	c := pairing.BLS12381{}
	sk, pk := testKeyPair(t, c)

	five, err := EncryptG1(pk, 5)
	require.NoError(t, err)
	seven, err := EncryptG1(pk, 7)
	require.NoError(t, err)

	got, err := sk.DecryptG1(five.Add(seven))
	require.NoError(t, err)
	assert.EqualValues(t, 12, got)

	// commutativity of the underlying group addition
	got, err = sk.DecryptG1(seven.Add(five))
	require.NoError(t, err)
	assert.EqualValues(t, 12, got)
}

func TestSubNeg(t *testing.T) {
	c := pairing.BLS12381{}
	sk, pk := testKeyPair(t, c)

	a, err := EncryptG2(pk, 100)
	require.NoError(t, err)
	b, err := EncryptG2(pk, 123)
	require.NoError(t, err)

	got, err := sk.DecryptG2(a.Sub(b))
	require.NoError(t, err)
	assert.EqualValues(t, -23, got)

	got, err = sk.DecryptG2(b.Neg())
	require.NoError(t, err)
	assert.EqualValues(t, -123, got)
}

func TestScalarMul(t *testing.T) {
	c := pairing.BN254{}
	sk, pk := testKeyPair(t, c)

	ct, err := EncryptG1(pk, 21)
	require.NoError(t, err)

	got, err := sk.DecryptG1(ct.ScalarMul(-3))
	require.NoError(t, err)
	assert.EqualValues(t, -63, got)
}

// The second concrete scenario: Enc_G1(3) × Enc_G2(4) decrypts to 12 in GT.
func TestMul(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			sk, pk := testKeyPair(t, c)

			three, err := EncryptG1(pk, 3)
			require.NoError(t, err)
			four, err := EncryptG2(pk, 4)
			require.NoError(t, err)

			got, err := sk.DecryptGT(Mul(three, four))
			require.NoError(t, err)
			assert.EqualValues(t, 12, got)
		})
	}
}

func TestMulNegativeFactors(t *testing.T) {
	c := pairing.BLS12381{}
	sk, pk := testKeyPair(t, c)

	a, err := EncryptG1(pk, -15)
	require.NoError(t, err)
	b, err := EncryptG2(pk, 7)
	require.NoError(t, err)

	got, err := sk.DecryptGT(Mul(a, b))
	require.NoError(t, err)
	assert.EqualValues(t, -105, got)
}

// Products remain additively homomorphic in GT.
func TestGTArithmeticAfterMul(t *testing.T) {
	c := pairing.BLS12381{}
	sk, pk := testKeyPair(t, c)

	enc1 := func(m int64) *CipherTextG1 {
		ct, err := EncryptG1(pk, m)
		require.NoError(t, err)
		return ct
	}
	enc2 := func(m int64) *CipherTextG2 {
		ct, err := EncryptG2(pk, m)
		require.NoError(t, err)
		return ct
	}

	// 3·4 + 5·6 − 2 = 40
	acc := Mul(enc1(3), enc2(4)).Add(Mul(enc1(5), enc2(6)))
	direct, err := EncryptGT(pk, 2)
	require.NoError(t, err)
	acc = acc.Sub(direct)

	got, err := sk.DecryptGT(acc)
	require.NoError(t, err)
	assert.EqualValues(t, 40, got)

	got, err = sk.DecryptGT(acc.ScalarMul(2))
	require.NoError(t, err)
	assert.EqualValues(t, 80, got)
}

func TestDecryptOverflowFails(t *testing.T) {
	c := pairing.BLS12381{}
	sk, pk := testKeyPair(t, c)
	dec := NewDecryptor(c, 100)

	a, err := EncryptG1(pk, 80)
	require.NoError(t, err)
	b, err := EncryptG1(pk, 50)
	require.NoError(t, err)

	// in range individually, out of range combined
	got, err := dec.DecryptG1(sk, a)
	require.NoError(t, err)
	assert.EqualValues(t, 80, got)

	_, err = dec.DecryptG1(sk, a.Add(b))
	assert.ErrorIs(t, err, ErrPlaintextOutOfRange)
}

func TestCiphertextRoundTrip(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			sk, pk := testKeyPair(t, c)

			ct1, err := EncryptG1(pk, 77)
			require.NoError(t, err)
			buf, err := ct1.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, buf, 2*c.G1().PointSize())

			restored1 := NewCipherTextG1(c)
			require.NoError(t, restored1.UnmarshalBinary(buf))
			assert.True(t, ct1.S.Equal(restored1.S))
			assert.True(t, ct1.T.Equal(restored1.T))
			got, err := sk.DecryptG1(restored1)
			require.NoError(t, err)
			assert.EqualValues(t, 77, got)

			ct2, err := EncryptG2(pk, -8)
			require.NoError(t, err)
			buf, err = ct2.MarshalBinary()
			require.NoError(t, err)
			restored2 := NewCipherTextG2(c)
			require.NoError(t, restored2.UnmarshalBinary(buf))
			got, err = sk.DecryptG2(restored2)
			require.NoError(t, err)
			assert.EqualValues(t, -8, got)

			ctT, err := EncryptGT(pk, 9)
			require.NoError(t, err)
			buf, err = ctT.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, buf, 4*c.GT().PointSize())
			restoredT := NewCipherTextGT(c)
			require.NoError(t, restoredT.UnmarshalBinary(buf))
			got, err = sk.DecryptGT(restoredT)
			require.NoError(t, err)
			assert.EqualValues(t, 9, got)
		})
	}
}

func TestCiphertextUnmarshalRejectsBadLength(t *testing.T) {
	c := pairing.BLS12381{}
	assert.ErrorIs(t, NewCipherTextG1(c).UnmarshalBinary(nil), ErrMalformedCiphertext)
	assert.ErrorIs(t, NewCipherTextG2(c).UnmarshalBinary(make([]byte, 5)), ErrMalformedCiphertext)
	assert.ErrorIs(t, NewCipherTextGT(c).UnmarshalBinary(make([]byte, 7)), ErrMalformedCiphertext)
}

// Flipping bytes of a serialized ciphertext must never yield a silently
// wrong plaintext: either deserialization rejects it, or the decryption
// range check does.
func TestCiphertextTamper(t *testing.T) {
	c := pairing.BLS12381{}
	sk, pk := testKeyPair(t, c)

	ct, err := EncryptG1(pk, 33)
	require.NoError(t, err)
	buf, err := ct.MarshalBinary()
	require.NoError(t, err)

	for _, pos := range []int{0, 1, len(buf) / 2, len(buf) - 1} {
		bad := append([]byte{}, buf...)
		bad[pos] ^= 0x40

		tampered := NewCipherTextG1(c)
		if err := tampered.UnmarshalBinary(bad); err != nil {
			assert.ErrorIs(t, err, ErrMalformedCiphertext)
			continue
		}
		if got, err := sk.DecryptG1(tampered); err == nil {
			assert.NotEqual(t, int64(33), got, "tampered byte %d decrypted silently", pos)
		}
	}
}

// Mixing ciphertexts from two key pairs is a caller error; the result must
// not decrypt to the "expected" sum under either key.
func TestCrossKeyCombinationDoesNotDecrypt(t *testing.T) {
	c := pairing.BLS12381{}
	skA, pkA := testKeyPair(t, c)
	skB, pkB := testKeyPair(t, c)
	require.False(t, pkA.Equal(pkB))

	a, err := EncryptG1(pkA, 5)
	require.NoError(t, err)
	b, err := EncryptG1(pkB, 7)
	require.NoError(t, err)

	mixed := a.Add(b)
	for _, sk := range []*SecretKey{skA, skB} {
		if got, err := sk.DecryptG1(mixed); err == nil {
			assert.NotEqual(t, int64(12), got)
		}
	}
}

// Many goroutines racing the first decryption must all observe one table
// and correct plaintexts.
func TestConcurrentDecrypt(t *testing.T) {
	c := pairing.BN254{}
	sk, pk := testKeyPair(t, c)
	dec := NewDecryptor(c, 1<<12)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		m := int64(i*101 - 1600)
		g.Go(func() error {
			ct, err := EncryptG1(pk, m)
			if err != nil {
				return err
			}
			got, err := dec.DecryptG1(sk, ct)
			if err != nil {
				return err
			}
			if got != m {
				return errors.Errorf("decrypted %d, want %d", got, m)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
