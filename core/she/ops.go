package she

import "github.com/mr-shifu/she-lib/core/math/pairing"

// The homomorphic operations are pure component-wise group arithmetic and
// need no key material. Combining ciphertexts produced under different
// public keys is not detected here; the result simply fails to decrypt.
// Callers are responsible for only mixing ciphertexts of one key pair
// (PublicKey.Fingerprint helps enforce that).

// Add returns a ciphertext of m₁ + m₂.
func (x *CipherTextG1) Add(y *CipherTextG1) *CipherTextG1 {
	return &CipherTextG1{S: x.S.Add(y.S), T: x.T.Add(y.T)}
}

// Sub returns a ciphertext of m₁ − m₂.
func (x *CipherTextG1) Sub(y *CipherTextG1) *CipherTextG1 {
	return &CipherTextG1{S: x.S.Sub(y.S), T: x.T.Sub(y.T)}
}

// Neg returns a ciphertext of −m.
func (x *CipherTextG1) Neg() *CipherTextG1 {
	return &CipherTextG1{S: x.S.Negate(), T: x.T.Negate()}
}

// ScalarMul returns a ciphertext of k·m for a public integer k.
func (x *CipherTextG1) ScalarMul(k int64) *CipherTextG1 {
	s := x.Curve().NewScalar().SetInt64(k)
	return &CipherTextG1{S: s.Act(x.S), T: s.Act(x.T)}
}

func (x *CipherTextG2) Add(y *CipherTextG2) *CipherTextG2 {
	return &CipherTextG2{S: x.S.Add(y.S), T: x.T.Add(y.T)}
}

func (x *CipherTextG2) Sub(y *CipherTextG2) *CipherTextG2 {
	return &CipherTextG2{S: x.S.Sub(y.S), T: x.T.Sub(y.T)}
}

func (x *CipherTextG2) Neg() *CipherTextG2 {
	return &CipherTextG2{S: x.S.Negate(), T: x.T.Negate()}
}

func (x *CipherTextG2) ScalarMul(k int64) *CipherTextG2 {
	s := x.Curve().NewScalar().SetInt64(k)
	return &CipherTextG2{S: s.Act(x.S), T: s.Act(x.T)}
}

func (x *CipherTextGT) Add(y *CipherTextGT) *CipherTextGT {
	r := &CipherTextGT{}
	for i := range r.G {
		r.G[i] = x.G[i].Add(y.G[i])
	}
	return r
}

func (x *CipherTextGT) Sub(y *CipherTextGT) *CipherTextGT {
	r := &CipherTextGT{}
	for i := range r.G {
		r.G[i] = x.G[i].Sub(y.G[i])
	}
	return r
}

func (x *CipherTextGT) Neg() *CipherTextGT {
	r := &CipherTextGT{}
	for i := range r.G {
		r.G[i] = x.G[i].Negate()
	}
	return r
}

func (x *CipherTextGT) ScalarMul(k int64) *CipherTextGT {
	s := x.Curve().NewScalar().SetInt64(k)
	r := &CipherTextGT{}
	for i := range r.G {
		r.G[i] = s.Act(x.G[i])
	}
	return r
}

// Mul lifts a G₁ and a G₂ ciphertext into GT, yielding an encryption of
// m₁·m₂. This is the scheme's single multiplicative level: the four
// components are the pairings of the cross terms,
//
//	(e(S₁,S₂), e(S₁,T₂), e(T₁,S₂), e(T₁,T₂)),
//
// and no further ciphertext-ciphertext product is defined on the result.
func Mul(x *CipherTextG1, y *CipherTextG2) *CipherTextGT {
	c := x.Curve()
	return &CipherTextGT{G: [4]pairing.Point{
		c.Pair(x.S, y.S),
		c.Pair(x.S, y.T),
		c.Pair(x.T, y.S),
		c.Pair(x.T, y.T),
	}}
}
