// Package pairing abstracts a pairing-friendly curve as three groups
// (G₁, G₂, GT) connected by a bilinear map e: G₁ × G₂ → GT with
// e(a⋅P, b⋅Q) = e(P,Q)^(a⋅b). Group elements are opaque: callers only ever
// combine them through the interfaces below, never inspect coordinates.
//
// All three groups use additive notation, GT included; the identity of GT
// is its multiplicative unit.
package pairing

import (
	"encoding"
	"errors"

	"github.com/cronokirby/saferith"
)

var (
	ErrUnknownCurve = errors.New("pairing: unknown curve")
	ErrMembership   = errors.New("pairing: encoding is not a valid group element")
)

// GroupName distinguishes the three groups of a curve.
type GroupName string

const (
	G1 GroupName = "G1"
	G2 GroupName = "G2"
	GT GroupName = "GT"
)

type Curve interface {
	// Name returns the curve identifier used in serialized key envelopes.
	Name() string

	G1() Group
	G2() Group
	GT() Group

	// NewScalar returns the zero scalar of the r-torsion scalar field.
	NewScalar() Scalar

	// ScalarBits is the bit size of the group order.
	ScalarBits() int

	// SafeScalarBytes is the number of random bytes needed so that
	// reduction mod the order has negligible bias.
	SafeScalarBytes() int

	// Order returns the group order r, shared by all three groups.
	Order() *saferith.Modulus

	// Pair evaluates the bilinear map. p must be a G₁ point and q a G₂
	// point of this curve; the result lies in GT.
	Pair(p, q Point) Point
}

type Group interface {
	Name() GroupName
	Curve() Curve

	// NewPoint returns the identity element.
	NewPoint() Point

	// Base returns the fixed generator: P for G₁, Q for G₂ and e(P,Q)
	// for GT.
	Base() Point

	// PointSize is the fixed width of the canonical point encoding.
	PointSize() int
}

// Point is an opaque element of one of the three groups. UnmarshalBinary
// validates group membership and fails with ErrMembership otherwise.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	Group() Group
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	Equal(Point) bool
	IsIdentity() bool
}

// Scalar is an element of the shared scalar field. UnmarshalBinary rejects
// non-canonical (unreduced) encodings.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	Curve() Curve
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Negate() Scalar
	Equal(Scalar) bool
	IsZero() bool
	Set(Scalar) Scalar
	SetNat(*saferith.Nat) Scalar
	SetInt64(int64) Scalar

	// Act returns the scalar multiple of p, in p's group.
	Act(p Point) Point

	// ActOnBase is Act on g's generator, using fixed-base multiplication.
	ActOnBase(g Group) Point

	// Zero wipes the scalar in place. Secret material should be wiped
	// once it is no longer needed.
	Zero()
}

// CurveFromName maps a serialized curve identifier back to its
// implementation. The curve set is closed; new backends register here.
func CurveFromName(name string) (Curve, error) {
	switch name {
	case (BLS12381{}).Name():
		return BLS12381{}, nil
	case (BN254{}).Name():
		return BN254{}, nil
	}
	return nil, ErrUnknownCurve
}
