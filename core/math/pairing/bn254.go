package pairing

import (
	"math/big"
	"sync"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/cronokirby/saferith"
)

// BN254 is the Curve over the BN254 pairing groups, backed by
// gnark-crypto. The zero value is ready to use.
type BN254 struct{}

var (
	bn254OrderOnce sync.Once
	bn254Order     *saferith.Modulus

	bn254GTBaseOnce sync.Once
	bn254GTBase     bn.GT
)

func (BN254) Name() string { return "bn254" }

func (BN254) G1() Group { return bn254G1{} }
func (BN254) G2() Group { return bn254G2{} }
func (BN254) GT() Group { return bn254GT{} }

func (BN254) NewScalar() Scalar { return new(bn254Scalar) }

func (BN254) ScalarBits() int { return fr.Bits }

func (BN254) SafeScalarBytes() int { return fr.Bytes + 16 }

func (BN254) Order() *saferith.Modulus {
	bn254OrderOnce.Do(func() {
		n := new(saferith.Nat).SetBytes(fr.Modulus().Bytes())
		bn254Order = saferith.ModulusFromNat(n)
	})
	return bn254Order
}

func (BN254) Pair(p, q Point) Point {
	a, ok := p.(*bn254G1Point)
	if !ok {
		panic("pairing: Pair expects a bn254 G1 point")
	}
	b, ok := q.(*bn254G2Point)
	if !ok {
		panic("pairing: Pair expects a bn254 G2 point")
	}
	e, err := bn.Pair([]bn.G1Affine{a.p}, []bn.G2Affine{b.p})
	if err != nil {
		panic("pairing: " + err.Error())
	}
	return &bn254GTPoint{e: e}
}

type (
	bn254G1 struct{}
	bn254G2 struct{}
	bn254GT struct{}
)

func (bn254G1) Name() GroupName { return G1 }
func (bn254G1) Curve() Curve    { return BN254{} }
func (bn254G1) PointSize() int  { return bn.SizeOfG1AffineCompressed }
func (bn254G1) NewPoint() Point { return new(bn254G1Point) }
func (bn254G1) Base() Point {
	_, _, g1, _ := bn.Generators()
	return &bn254G1Point{p: g1}
}

func (bn254G2) Name() GroupName { return G2 }
func (bn254G2) Curve() Curve    { return BN254{} }
func (bn254G2) PointSize() int  { return bn.SizeOfG2AffineCompressed }
func (bn254G2) NewPoint() Point { return new(bn254G2Point) }
func (bn254G2) Base() Point {
	_, _, _, g2 := bn.Generators()
	return &bn254G2Point{p: g2}
}

func (bn254GT) Name() GroupName { return GT }
func (bn254GT) Curve() Curve    { return BN254{} }
func (bn254GT) PointSize() int  { return bn.SizeOfGT }
func (bn254GT) NewPoint() Point {
	e := new(bn254GTPoint)
	e.e.SetOne()
	return e
}
func (bn254GT) Base() Point {
	bn254GTBaseOnce.Do(func() {
		_, _, g1, g2 := bn.Generators()
		e, err := bn.Pair([]bn.G1Affine{g1}, []bn.G2Affine{g2})
		if err != nil {
			panic("pairing: " + err.Error())
		}
		bn254GTBase = e
	})
	return &bn254GTPoint{e: bn254GTBase}
}

type bn254G1Point struct {
	p bn.G1Affine
}

func (v *bn254G1Point) Group() Group { return bn254G1{} }

func (v *bn254G1Point) Add(w Point) Point {
	o := mustBN254G1(w)
	r := new(bn254G1Point)
	r.p.Add(&v.p, &o.p)
	return r
}

func (v *bn254G1Point) Sub(w Point) Point {
	o := mustBN254G1(w)
	r := new(bn254G1Point)
	r.p.Sub(&v.p, &o.p)
	return r
}

func (v *bn254G1Point) Negate() Point {
	r := new(bn254G1Point)
	r.p.Neg(&v.p)
	return r
}

func (v *bn254G1Point) Equal(w Point) bool {
	o, ok := w.(*bn254G1Point)
	return ok && v.p.Equal(&o.p)
}

func (v *bn254G1Point) IsIdentity() bool { return v.p.IsInfinity() }

func (v *bn254G1Point) MarshalBinary() ([]byte, error) {
	b := v.p.Bytes()
	return b[:], nil
}

func (v *bn254G1Point) UnmarshalBinary(data []byte) error {
	if len(data) != bn.SizeOfG1AffineCompressed {
		return ErrMembership
	}
	if _, err := v.p.SetBytes(data); err != nil {
		return ErrMembership
	}
	return nil
}

type bn254G2Point struct {
	p bn.G2Affine
}

func (v *bn254G2Point) Group() Group { return bn254G2{} }

func (v *bn254G2Point) Add(w Point) Point {
	o := mustBN254G2(w)
	r := new(bn254G2Point)
	r.p.Add(&v.p, &o.p)
	return r
}

func (v *bn254G2Point) Sub(w Point) Point {
	o := mustBN254G2(w)
	r := new(bn254G2Point)
	r.p.Sub(&v.p, &o.p)
	return r
}

func (v *bn254G2Point) Negate() Point {
	r := new(bn254G2Point)
	r.p.Neg(&v.p)
	return r
}

func (v *bn254G2Point) Equal(w Point) bool {
	o, ok := w.(*bn254G2Point)
	return ok && v.p.Equal(&o.p)
}

func (v *bn254G2Point) IsIdentity() bool { return v.p.IsInfinity() }

func (v *bn254G2Point) MarshalBinary() ([]byte, error) {
	b := v.p.Bytes()
	return b[:], nil
}

func (v *bn254G2Point) UnmarshalBinary(data []byte) error {
	if len(data) != bn.SizeOfG2AffineCompressed {
		return ErrMembership
	}
	if _, err := v.p.SetBytes(data); err != nil {
		return ErrMembership
	}
	return nil
}

// bn254GTPoint carries an element of the r-torsion subgroup of 𝔽p¹²;
// additive notation maps onto field multiplication.
type bn254GTPoint struct {
	e bn.GT
}

func (v *bn254GTPoint) Group() Group { return bn254GT{} }

func (v *bn254GTPoint) Add(w Point) Point {
	o := mustBN254GT(w)
	r := new(bn254GTPoint)
	r.e.Mul(&v.e, &o.e)
	return r
}

func (v *bn254GTPoint) Sub(w Point) Point {
	o := mustBN254GT(w)
	r := new(bn254GTPoint)
	r.e.Inverse(&o.e)
	r.e.Mul(&v.e, &r.e)
	return r
}

func (v *bn254GTPoint) Negate() Point {
	r := new(bn254GTPoint)
	r.e.Inverse(&v.e)
	return r
}

func (v *bn254GTPoint) Equal(w Point) bool {
	o, ok := w.(*bn254GTPoint)
	return ok && v.e.Equal(&o.e)
}

func (v *bn254GTPoint) IsIdentity() bool {
	var one bn.GT
	one.SetOne()
	return v.e.Equal(&one)
}

func (v *bn254GTPoint) MarshalBinary() ([]byte, error) {
	return v.e.Marshal(), nil
}

func (v *bn254GTPoint) UnmarshalBinary(data []byte) error {
	if len(data) != bn.SizeOfGT {
		return ErrMembership
	}
	if err := v.e.Unmarshal(data); err != nil {
		return ErrMembership
	}
	// Unmarshal only decodes the field element; membership in the
	// r-torsion subgroup still has to hold.
	var t bn.GT
	t.Exp(v.e, fr.Modulus())
	var one bn.GT
	one.SetOne()
	if !t.Equal(&one) {
		return ErrMembership
	}
	return nil
}

type bn254Scalar struct {
	s fr.Element
}

func (s *bn254Scalar) Curve() Curve { return BN254{} }

func (s *bn254Scalar) Add(t Scalar) Scalar {
	o := mustBN254Scalar(t)
	r := new(bn254Scalar)
	r.s.Add(&s.s, &o.s)
	return r
}

func (s *bn254Scalar) Sub(t Scalar) Scalar {
	o := mustBN254Scalar(t)
	r := new(bn254Scalar)
	r.s.Sub(&s.s, &o.s)
	return r
}

func (s *bn254Scalar) Mul(t Scalar) Scalar {
	o := mustBN254Scalar(t)
	r := new(bn254Scalar)
	r.s.Mul(&s.s, &o.s)
	return r
}

func (s *bn254Scalar) Negate() Scalar {
	r := new(bn254Scalar)
	r.s.Neg(&s.s)
	return r
}

func (s *bn254Scalar) Equal(t Scalar) bool {
	o, ok := t.(*bn254Scalar)
	return ok && s.s.Equal(&o.s)
}

func (s *bn254Scalar) IsZero() bool { return s.s.IsZero() }

func (s *bn254Scalar) Set(t Scalar) Scalar {
	o := mustBN254Scalar(t)
	s.s.Set(&o.s)
	return s
}

func (s *bn254Scalar) SetNat(n *saferith.Nat) Scalar {
	s.s.SetBigInt(n.Big())
	return s
}

func (s *bn254Scalar) SetInt64(v int64) Scalar {
	s.s.SetInt64(v)
	return s
}

func (s *bn254Scalar) Act(p Point) Point {
	var k big.Int
	s.s.BigInt(&k)
	switch v := p.(type) {
	case *bn254G1Point:
		r := new(bn254G1Point)
		r.p.ScalarMultiplication(&v.p, &k)
		return r
	case *bn254G2Point:
		r := new(bn254G2Point)
		r.p.ScalarMultiplication(&v.p, &k)
		return r
	case *bn254GTPoint:
		r := new(bn254GTPoint)
		r.e.Exp(v.e, &k)
		return r
	}
	panic("pairing: Act on a point from a different curve")
}

func (s *bn254Scalar) ActOnBase(g Group) Point {
	var k big.Int
	s.s.BigInt(&k)
	switch g.(type) {
	case bn254G1:
		r := new(bn254G1Point)
		r.p.ScalarMultiplicationBase(&k)
		return r
	case bn254G2:
		r := new(bn254G2Point)
		r.p.ScalarMultiplicationBase(&k)
		return r
	case bn254GT:
		base := mustBN254GT(bn254GT{}.Base())
		r := new(bn254GTPoint)
		r.e.Exp(base.e, &k)
		return r
	}
	panic("pairing: ActOnBase on a group from a different curve")
}

func (s *bn254Scalar) Zero() { s.s.SetZero() }

func (s *bn254Scalar) MarshalBinary() ([]byte, error) {
	b := s.s.Bytes()
	return b[:], nil
}

func (s *bn254Scalar) UnmarshalBinary(data []byte) error {
	return s.s.SetBytesCanonical(data)
}

func mustBN254G1(p Point) *bn254G1Point {
	v, ok := p.(*bn254G1Point)
	if !ok {
		panic("pairing: mismatched groups")
	}
	return v
}

func mustBN254G2(p Point) *bn254G2Point {
	v, ok := p.(*bn254G2Point)
	if !ok {
		panic("pairing: mismatched groups")
	}
	return v
}

func mustBN254GT(p Point) *bn254GTPoint {
	v, ok := p.(*bn254GTPoint)
	if !ok {
		panic("pairing: mismatched groups")
	}
	return v
}

func mustBN254Scalar(s Scalar) *bn254Scalar {
	v, ok := s.(*bn254Scalar)
	if !ok {
		panic("pairing: mismatched scalar fields")
	}
	return v
}
