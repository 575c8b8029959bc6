package pairing

import (
	"crypto/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCurves = []Curve{BLS12381{}, BN254{}}

func randomScalar(t *testing.T, c Curve) Scalar {
	t.Helper()
	buf := make([]byte, c.SafeScalarBytes())
	_, err := rand.Read(buf)
	require.NoError(t, err)
	n := new(saferith.Nat).SetBytes(buf)
	n.Mod(n, c.Order())
	return c.NewScalar().SetNat(n)
}

func TestCurveFromName(t *testing.T) {
	for _, c := range testCurves {
		got, err := CurveFromName(c.Name())
		assert.NoError(t, err)
		assert.Equal(t, c.Name(), got.Name())
	}

	_, err := CurveFromName("p256")
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

func TestGroupLaws(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			for _, g := range []Group{c.G1(), c.G2(), c.GT()} {
				a := randomScalar(t, c).ActOnBase(g)
				b := randomScalar(t, c).ActOnBase(g)

				// commutativity
				assert.True(t, a.Add(b).Equal(b.Add(a)))

				// identity and inverse
				assert.True(t, g.NewPoint().IsIdentity())
				assert.True(t, a.Sub(a).IsIdentity())
				assert.True(t, a.Add(a.Negate()).IsIdentity())

				// a − b == a + (−b)
				assert.True(t, a.Sub(b).Equal(a.Add(b.Negate())))
			}
		})
	}
}

func TestActMatchesRepeatedAddition(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			for _, g := range []Group{c.G1(), c.G2(), c.GT()} {
				three := c.NewScalar().SetInt64(3)
				base := g.Base()
				sum := base.Add(base).Add(base)
				assert.True(t, three.Act(base).Equal(sum))
				assert.True(t, three.ActOnBase(g).Equal(sum))
			}
		})
	}
}

func TestBilinearity(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			a := randomScalar(t, c)
			b := randomScalar(t, c)

			aP := a.ActOnBase(c.G1())
			bQ := b.ActOnBase(c.G2())

			// e(a⋅P, b⋅Q) == (a·b)⋅e(P,Q)
			lhs := c.Pair(aP, bQ)
			rhs := a.Mul(b).ActOnBase(c.GT())
			assert.True(t, lhs.Equal(rhs))

			// linearity in the first argument
			assert.True(t, c.Pair(aP, c.G2().Base()).Equal(a.ActOnBase(c.GT())))
		})
	}
}

func TestPointRoundTrip(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			for _, g := range []Group{c.G1(), c.G2(), c.GT()} {
				p := randomScalar(t, c).ActOnBase(g)
				buf, err := p.MarshalBinary()
				require.NoError(t, err)
				require.Len(t, buf, g.PointSize())

				q := g.NewPoint()
				require.NoError(t, q.UnmarshalBinary(buf))
				assert.True(t, p.Equal(q))
			}
		})
	}
}

func TestPointUnmarshalRejectsGarbage(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			for _, g := range []Group{c.G1(), c.G2(), c.GT()} {
				// wrong length
				err := g.NewPoint().UnmarshalBinary(make([]byte, g.PointSize()-1))
				assert.ErrorIs(t, err, ErrMembership)

				// random bytes overwhelmingly fail membership
				buf := make([]byte, g.PointSize())
				_, rerr := rand.Read(buf)
				require.NoError(t, rerr)
				err = g.NewPoint().UnmarshalBinary(buf)
				assert.Error(t, err)
			}
		})
	}
}

func TestScalarRoundTrip(t *testing.T) {
	for _, c := range testCurves {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			s := randomScalar(t, c)
			buf, err := s.MarshalBinary()
			require.NoError(t, err)

			u := c.NewScalar()
			require.NoError(t, u.UnmarshalBinary(buf))
			assert.True(t, s.Equal(u))

			// non-canonical encodings are rejected
			bad := make([]byte, len(buf))
			for i := range bad {
				bad[i] = 0xff
			}
			assert.Error(t, c.NewScalar().UnmarshalBinary(bad))
		})
	}
}

func TestScalarZeroWipes(t *testing.T) {
	for _, c := range testCurves {
		s := randomScalar(t, c)
		s.Zero()
		assert.True(t, s.IsZero())
	}
}

func TestScalarSetInt64Negative(t *testing.T) {
	for _, c := range testCurves {
		minus := c.NewScalar().SetInt64(-5)
		five := c.NewScalar().SetInt64(5)
		assert.True(t, minus.Add(five).IsZero())
	}
}
