package pairing

import (
	"math/big"
	"sync"

	bls381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/cronokirby/saferith"
)

// BLS12381 is the Curve over the BLS12-381 pairing groups, backed by
// gnark-crypto. The zero value is ready to use.
type BLS12381 struct{}

var (
	bls381OrderOnce sync.Once
	bls381Order     *saferith.Modulus

	bls381GTBaseOnce sync.Once
	bls381GTBase     bls381.GT
)

func (BLS12381) Name() string { return "bls12381" }

func (BLS12381) G1() Group { return bls381G1{} }
func (BLS12381) G2() Group { return bls381G2{} }
func (BLS12381) GT() Group { return bls381GT{} }

func (BLS12381) NewScalar() Scalar { return new(bls381Scalar) }

func (BLS12381) ScalarBits() int { return fr.Bits }

func (BLS12381) SafeScalarBytes() int { return fr.Bytes + 16 }

func (BLS12381) Order() *saferith.Modulus {
	bls381OrderOnce.Do(func() {
		n := new(saferith.Nat).SetBytes(fr.Modulus().Bytes())
		bls381Order = saferith.ModulusFromNat(n)
	})
	return bls381Order
}

func (BLS12381) Pair(p, q Point) Point {
	a, ok := p.(*bls381G1Point)
	if !ok {
		panic("pairing: Pair expects a bls12381 G1 point")
	}
	b, ok := q.(*bls381G2Point)
	if !ok {
		panic("pairing: Pair expects a bls12381 G2 point")
	}
	e, err := bls381.Pair([]bls381.G1Affine{a.p}, []bls381.G2Affine{b.p})
	if err != nil {
		panic("pairing: " + err.Error())
	}
	return &bls381GTPoint{e: e}
}

type (
	bls381G1 struct{}
	bls381G2 struct{}
	bls381GT struct{}
)

func (bls381G1) Name() GroupName { return G1 }
func (bls381G1) Curve() Curve    { return BLS12381{} }
func (bls381G1) PointSize() int  { return bls381.SizeOfG1AffineCompressed }
func (bls381G1) NewPoint() Point { return new(bls381G1Point) }
func (bls381G1) Base() Point {
	_, _, g1, _ := bls381.Generators()
	return &bls381G1Point{p: g1}
}

func (bls381G2) Name() GroupName { return G2 }
func (bls381G2) Curve() Curve    { return BLS12381{} }
func (bls381G2) PointSize() int  { return bls381.SizeOfG2AffineCompressed }
func (bls381G2) NewPoint() Point { return new(bls381G2Point) }
func (bls381G2) Base() Point {
	_, _, _, g2 := bls381.Generators()
	return &bls381G2Point{p: g2}
}

func (bls381GT) Name() GroupName { return GT }
func (bls381GT) Curve() Curve    { return BLS12381{} }
func (bls381GT) PointSize() int  { return bls381.SizeOfGT }
func (bls381GT) NewPoint() Point {
	e := new(bls381GTPoint)
	e.e.SetOne()
	return e
}
func (bls381GT) Base() Point {
	bls381GTBaseOnce.Do(func() {
		_, _, g1, g2 := bls381.Generators()
		e, err := bls381.Pair([]bls381.G1Affine{g1}, []bls381.G2Affine{g2})
		if err != nil {
			panic("pairing: " + err.Error())
		}
		bls381GTBase = e
	})
	return &bls381GTPoint{e: bls381GTBase}
}

type bls381G1Point struct {
	p bls381.G1Affine
}

func (v *bls381G1Point) Group() Group { return bls381G1{} }

func (v *bls381G1Point) Add(w Point) Point {
	o := mustBLS381G1(w)
	r := new(bls381G1Point)
	r.p.Add(&v.p, &o.p)
	return r
}

func (v *bls381G1Point) Sub(w Point) Point {
	o := mustBLS381G1(w)
	r := new(bls381G1Point)
	r.p.Sub(&v.p, &o.p)
	return r
}

func (v *bls381G1Point) Negate() Point {
	r := new(bls381G1Point)
	r.p.Neg(&v.p)
	return r
}

func (v *bls381G1Point) Equal(w Point) bool {
	o, ok := w.(*bls381G1Point)
	return ok && v.p.Equal(&o.p)
}

func (v *bls381G1Point) IsIdentity() bool { return v.p.IsInfinity() }

func (v *bls381G1Point) MarshalBinary() ([]byte, error) {
	b := v.p.Bytes()
	return b[:], nil
}

func (v *bls381G1Point) UnmarshalBinary(data []byte) error {
	if len(data) != bls381.SizeOfG1AffineCompressed {
		return ErrMembership
	}
	if _, err := v.p.SetBytes(data); err != nil {
		return ErrMembership
	}
	return nil
}

type bls381G2Point struct {
	p bls381.G2Affine
}

func (v *bls381G2Point) Group() Group { return bls381G2{} }

func (v *bls381G2Point) Add(w Point) Point {
	o := mustBLS381G2(w)
	r := new(bls381G2Point)
	r.p.Add(&v.p, &o.p)
	return r
}

func (v *bls381G2Point) Sub(w Point) Point {
	o := mustBLS381G2(w)
	r := new(bls381G2Point)
	r.p.Sub(&v.p, &o.p)
	return r
}

func (v *bls381G2Point) Negate() Point {
	r := new(bls381G2Point)
	r.p.Neg(&v.p)
	return r
}

func (v *bls381G2Point) Equal(w Point) bool {
	o, ok := w.(*bls381G2Point)
	return ok && v.p.Equal(&o.p)
}

func (v *bls381G2Point) IsIdentity() bool { return v.p.IsInfinity() }

func (v *bls381G2Point) MarshalBinary() ([]byte, error) {
	b := v.p.Bytes()
	return b[:], nil
}

func (v *bls381G2Point) UnmarshalBinary(data []byte) error {
	if len(data) != bls381.SizeOfG2AffineCompressed {
		return ErrMembership
	}
	if _, err := v.p.SetBytes(data); err != nil {
		return ErrMembership
	}
	return nil
}

// bls381GTPoint carries an element of the r-torsion subgroup of 𝔽p¹²;
// additive notation maps onto field multiplication.
type bls381GTPoint struct {
	e bls381.GT
}

func (v *bls381GTPoint) Group() Group { return bls381GT{} }

func (v *bls381GTPoint) Add(w Point) Point {
	o := mustBLS381GT(w)
	r := new(bls381GTPoint)
	r.e.Mul(&v.e, &o.e)
	return r
}

func (v *bls381GTPoint) Sub(w Point) Point {
	o := mustBLS381GT(w)
	r := new(bls381GTPoint)
	r.e.Inverse(&o.e)
	r.e.Mul(&v.e, &r.e)
	return r
}

func (v *bls381GTPoint) Negate() Point {
	r := new(bls381GTPoint)
	r.e.Inverse(&v.e)
	return r
}

func (v *bls381GTPoint) Equal(w Point) bool {
	o, ok := w.(*bls381GTPoint)
	return ok && v.e.Equal(&o.e)
}

func (v *bls381GTPoint) IsIdentity() bool {
	var one bls381.GT
	one.SetOne()
	return v.e.Equal(&one)
}

func (v *bls381GTPoint) MarshalBinary() ([]byte, error) {
	return v.e.Marshal(), nil
}

func (v *bls381GTPoint) UnmarshalBinary(data []byte) error {
	if len(data) != bls381.SizeOfGT {
		return ErrMembership
	}
	if err := v.e.Unmarshal(data); err != nil {
		return ErrMembership
	}
	// Unmarshal only decodes the field element; membership in the
	// r-torsion subgroup still has to hold.
	var t bls381.GT
	t.Exp(v.e, fr.Modulus())
	var one bls381.GT
	one.SetOne()
	if !t.Equal(&one) {
		return ErrMembership
	}
	return nil
}

type bls381Scalar struct {
	s fr.Element
}

func (s *bls381Scalar) Curve() Curve { return BLS12381{} }

func (s *bls381Scalar) Add(t Scalar) Scalar {
	o := mustBLS381Scalar(t)
	r := new(bls381Scalar)
	r.s.Add(&s.s, &o.s)
	return r
}

func (s *bls381Scalar) Sub(t Scalar) Scalar {
	o := mustBLS381Scalar(t)
	r := new(bls381Scalar)
	r.s.Sub(&s.s, &o.s)
	return r
}

func (s *bls381Scalar) Mul(t Scalar) Scalar {
	o := mustBLS381Scalar(t)
	r := new(bls381Scalar)
	r.s.Mul(&s.s, &o.s)
	return r
}

func (s *bls381Scalar) Negate() Scalar {
	r := new(bls381Scalar)
	r.s.Neg(&s.s)
	return r
}

func (s *bls381Scalar) Equal(t Scalar) bool {
	o, ok := t.(*bls381Scalar)
	return ok && s.s.Equal(&o.s)
}

func (s *bls381Scalar) IsZero() bool { return s.s.IsZero() }

func (s *bls381Scalar) Set(t Scalar) Scalar {
	o := mustBLS381Scalar(t)
	s.s.Set(&o.s)
	return s
}

func (s *bls381Scalar) SetNat(n *saferith.Nat) Scalar {
	s.s.SetBigInt(n.Big())
	return s
}

func (s *bls381Scalar) SetInt64(v int64) Scalar {
	s.s.SetInt64(v)
	return s
}

func (s *bls381Scalar) Act(p Point) Point {
	var k big.Int
	s.s.BigInt(&k)
	switch v := p.(type) {
	case *bls381G1Point:
		r := new(bls381G1Point)
		r.p.ScalarMultiplication(&v.p, &k)
		return r
	case *bls381G2Point:
		r := new(bls381G2Point)
		r.p.ScalarMultiplication(&v.p, &k)
		return r
	case *bls381GTPoint:
		r := new(bls381GTPoint)
		r.e.Exp(v.e, &k)
		return r
	}
	panic("pairing: Act on a point from a different curve")
}

func (s *bls381Scalar) ActOnBase(g Group) Point {
	var k big.Int
	s.s.BigInt(&k)
	switch g.(type) {
	case bls381G1:
		r := new(bls381G1Point)
		r.p.ScalarMultiplicationBase(&k)
		return r
	case bls381G2:
		r := new(bls381G2Point)
		r.p.ScalarMultiplicationBase(&k)
		return r
	case bls381GT:
		base := mustBLS381GT(bls381GT{}.Base())
		r := new(bls381GTPoint)
		r.e.Exp(base.e, &k)
		return r
	}
	panic("pairing: ActOnBase on a group from a different curve")
}

func (s *bls381Scalar) Zero() { s.s.SetZero() }

func (s *bls381Scalar) MarshalBinary() ([]byte, error) {
	b := s.s.Bytes()
	return b[:], nil
}

func (s *bls381Scalar) UnmarshalBinary(data []byte) error {
	return s.s.SetBytesCanonical(data)
}

func mustBLS381G1(p Point) *bls381G1Point {
	v, ok := p.(*bls381G1Point)
	if !ok {
		panic("pairing: mismatched groups")
	}
	return v
}

func mustBLS381G2(p Point) *bls381G2Point {
	v, ok := p.(*bls381G2Point)
	if !ok {
		panic("pairing: mismatched groups")
	}
	return v
}

func mustBLS381GT(p Point) *bls381GTPoint {
	v, ok := p.(*bls381GTPoint)
	if !ok {
		panic("pairing: mismatched groups")
	}
	return v
}

func mustBLS381Scalar(s Scalar) *bls381Scalar {
	v, ok := s.(*bls381Scalar)
	if !ok {
		panic("pairing: mismatched scalar fields")
	}
	return v
}
