// Package she implements a somewhat homomorphic encryption scheme over a
// pairing-friendly curve triple (G₁, G₂, GT): lifted ElGamal in each source
// group, unlimited ciphertext addition, and a single multiplicative level
// from G₁ × G₂ into GT through the bilinear map.
package she

import (
	cryptorand "crypto/rand"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/mr-shifu/she-lib/core/math/pairing"
	"github.com/mr-shifu/she-lib/core/math/sample"
)

// SecretKey is a pair of independent scalars: x strips G₁-side blinding,
// y the G₂ side, and both together the GT side. Treat it as an exclusively
// owned handle and call Zero once it is no longer needed.
type SecretKey struct {
	x, y  pairing.Scalar
	curve pairing.Curve
}

// GenerateSecretKey draws the two key scalars from rand (crypto/rand when
// nil). The entropy source is the only failure mode.
func GenerateSecretKey(rand io.Reader, c pairing.Curve) (*SecretKey, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	x, err := sample.Scalar(rand, c)
	if err != nil {
		return nil, err
	}
	y, err := sample.Scalar(rand, c)
	if err != nil {
		return nil, err
	}
	return &SecretKey{x: x, y: y, curve: c}, nil
}

// NewSecretKey returns a zero key bound to c, ready for UnmarshalBinary.
func NewSecretKey(c pairing.Curve) *SecretKey {
	return &SecretKey{x: c.NewScalar(), y: c.NewScalar(), curve: c}
}

func (sk *SecretKey) Curve() pairing.Curve { return sk.curve }

// Public derives (x⋅P, y⋅Q). The result holds copies and shares no state
// with the secret key.
func (sk *SecretKey) Public() *PublicKey {
	return &PublicKey{
		xP: sk.x.ActOnBase(sk.curve.G1()),
		yQ: sk.y.ActOnBase(sk.curve.G2()),
	}
}

// Zero wipes both scalars in place.
func (sk *SecretKey) Zero() {
	sk.x.Zero()
	sk.y.Zero()
}

// MarshalBinary encodes x‖y as two fixed-width canonical scalars. The
// encoding is secret material; protecting it is the caller's obligation.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	xb, err := sk.x.MarshalBinary()
	if err != nil {
		return nil, err
	}
	yb, err := sk.y.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(xb, yb...), nil
}

func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	n := len(data) / 2
	if len(data) == 0 || len(data)%2 != 0 {
		return ErrMalformedKey
	}
	x := sk.curve.NewScalar()
	if err := x.UnmarshalBinary(data[:n]); err != nil {
		return ErrMalformedKey
	}
	y := sk.curve.NewScalar()
	if err := y.UnmarshalBinary(data[n:]); err != nil {
		return ErrMalformedKey
	}
	sk.x = x
	sk.y = y
	return nil
}

// PublicKey is (xP, yQ) = (x⋅P, y⋅Q). Safe to share.
type PublicKey struct {
	xP pairing.Point
	yQ pairing.Point
}

// NewPublicKey returns an identity key bound to c, ready for UnmarshalBinary.
func NewPublicKey(c pairing.Curve) *PublicKey {
	return &PublicKey{xP: c.G1().NewPoint(), yQ: c.G2().NewPoint()}
}

func (pk *PublicKey) Curve() pairing.Curve { return pk.xP.Group().Curve() }

func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.xP.Equal(other.xP) && pk.yQ.Equal(other.yQ)
}

// Fingerprint is a sha3-256 digest of the canonical key encoding. Callers
// combining ciphertexts from multiple sources can compare fingerprints to
// uphold the same-key precondition of the homomorphic operations.
func (pk *PublicKey) Fingerprint() []byte {
	buf, err := pk.MarshalBinary()
	if err != nil {
		return nil
	}
	sum := sha3.Sum256(buf)
	return sum[:]
}

// MarshalBinary encodes xP‖yQ in the curve's fixed-width point encoding.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	xb, err := pk.xP.MarshalBinary()
	if err != nil {
		return nil, err
	}
	yb, err := pk.yQ.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(xb, yb...), nil
}

func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	c := pk.Curve()
	n := c.G1().PointSize()
	if len(data) != n+c.G2().PointSize() {
		return ErrMalformedKey
	}
	xP := c.G1().NewPoint()
	if err := xP.UnmarshalBinary(data[:n]); err != nil {
		return ErrMalformedKey
	}
	yQ := c.G2().NewPoint()
	if err := yQ.UnmarshalBinary(data[n:]); err != nil {
		return ErrMalformedKey
	}
	pk.xP = xP
	pk.yQ = yQ
	return nil
}
