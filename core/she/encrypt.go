package she

import (
	"crypto/rand"

	"github.com/mr-shifu/she-lib/core/math/sample"
)

// DefaultMessageBound is the supported plaintext magnitude B: every message
// and every accumulated homomorphic result must stay in [-B, B] to remain
// decryptable. Decryption cost and table memory scale with √B, so B is kept
// well below the scalar field size; 2²⁰ keeps the default table around a
// couple thousand entries per group.
const DefaultMessageBound uint64 = 1 << 20

func checkMessageRange(m int64) error {
	if m > int64(DefaultMessageBound) || m < -int64(DefaultMessageBound) {
		return ErrPlaintextRange
	}
	return nil
}

// EncryptG1 encrypts m under pub in G₁ as (S, T) = (r⋅P, m⋅P + r⋅xP) with a
// fresh blinding scalar r. Messages outside [-B, B] are rejected before any
// group operation runs.
func EncryptG1(pub *PublicKey, m int64) (*CipherTextG1, error) {
	if err := checkMessageRange(m); err != nil {
		return nil, err
	}
	c := pub.Curve()
	r, err := sample.Scalar(rand.Reader, c)
	if err != nil {
		return nil, err
	}
	g := c.G1()
	S := r.ActOnBase(g)
	T := c.NewScalar().SetInt64(m).ActOnBase(g).Add(r.Act(pub.xP))
	return &CipherTextG1{S: S, T: T}, nil
}

// EncryptG2 encrypts m under pub in G₂ as (S, T) = (r⋅Q, m⋅Q + r⋅yQ).
func EncryptG2(pub *PublicKey, m int64) (*CipherTextG2, error) {
	if err := checkMessageRange(m); err != nil {
		return nil, err
	}
	c := pub.Curve()
	r, err := sample.Scalar(rand.Reader, c)
	if err != nil {
		return nil, err
	}
	g := c.G2()
	S := r.ActOnBase(g)
	T := c.NewScalar().SetInt64(m).ActOnBase(g).Add(r.Act(pub.yQ))
	return &CipherTextG2{S: S, T: T}, nil
}

// EncryptGT encrypts m directly at the multiplicative level, as the pairing
// lift of a G₁ encryption of m and a G₂ encryption of 1. Both public-key
// components contribute, with independent blinding on each side.
func EncryptGT(pub *PublicKey, m int64) (*CipherTextGT, error) {
	c1, err := EncryptG1(pub, m)
	if err != nil {
		return nil, err
	}
	c2, err := EncryptG2(pub, 1)
	if err != nil {
		return nil, err
	}
	return Mul(c1, c2), nil
}
