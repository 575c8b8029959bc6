package she

import (
	"io"

	"github.com/mr-shifu/she-lib/core/math/pairing"
)

// CipherTextG1 encrypts one integer in G₁ as (S, T) = (r⋅P, m⋅P + r⋅xP).
// Ciphertexts carry no secret material and are freely copyable.
type CipherTextG1 struct {
	S pairing.Point
	T pairing.Point
}

// CipherTextG2 is the G₂ analogue: (S, T) = (r⋅Q, m⋅Q + r⋅yQ).
type CipherTextG2 struct {
	S pairing.Point
	T pairing.Point
}

// CipherTextGT encrypts one integer in GT as four components, produced by
// direct GT encryption or by lifting a G₁ and a G₂ ciphertext through the
// pairing.
type CipherTextGT struct {
	G [4]pairing.Point
}

// NewCipherTextG1 returns an identity ciphertext bound to c, ready for
// UnmarshalBinary.
func NewCipherTextG1(c pairing.Curve) *CipherTextG1 {
	return &CipherTextG1{S: c.G1().NewPoint(), T: c.G1().NewPoint()}
}

func NewCipherTextG2(c pairing.Curve) *CipherTextG2 {
	return &CipherTextG2{S: c.G2().NewPoint(), T: c.G2().NewPoint()}
}

func NewCipherTextGT(c pairing.Curve) *CipherTextGT {
	gt := c.GT()
	return &CipherTextGT{G: [4]pairing.Point{
		gt.NewPoint(), gt.NewPoint(), gt.NewPoint(), gt.NewPoint(),
	}}
}

// Valid returns true if the ciphertext passes basic structural validation.
func (c *CipherTextG1) Valid() bool {
	return c != nil && c.S != nil && c.T != nil && c.S.Group() == c.T.Group()
}

func (c *CipherTextG1) Curve() pairing.Curve { return c.S.Group().Curve() }

// MarshalBinary encodes S‖T, each in the group's fixed-width encoding.
func (c *CipherTextG1) MarshalBinary() ([]byte, error) {
	return marshalPoints(c.S, c.T)
}

func (c *CipherTextG1) UnmarshalBinary(data []byte) error {
	pts, err := unmarshalPoints(c.Curve().G1(), data, 2)
	if err != nil {
		return err
	}
	c.S, c.T = pts[0], pts[1]
	return nil
}

func (c *CipherTextG1) WriteTo(w io.Writer) (int64, error) {
	return writePoints(w, c.S, c.T)
}

func (c *CipherTextG2) Valid() bool {
	return c != nil && c.S != nil && c.T != nil && c.S.Group() == c.T.Group()
}

func (c *CipherTextG2) Curve() pairing.Curve { return c.S.Group().Curve() }

func (c *CipherTextG2) MarshalBinary() ([]byte, error) {
	return marshalPoints(c.S, c.T)
}

func (c *CipherTextG2) UnmarshalBinary(data []byte) error {
	pts, err := unmarshalPoints(c.Curve().G2(), data, 2)
	if err != nil {
		return err
	}
	c.S, c.T = pts[0], pts[1]
	return nil
}

func (c *CipherTextG2) WriteTo(w io.Writer) (int64, error) {
	return writePoints(w, c.S, c.T)
}

func (c *CipherTextGT) Valid() bool {
	if c == nil {
		return false
	}
	for _, g := range c.G {
		if g == nil || g.Group() != c.G[0].Group() {
			return false
		}
	}
	return true
}

func (c *CipherTextGT) Curve() pairing.Curve { return c.G[0].Group().Curve() }

// MarshalBinary encodes the four GT components in index order.
func (c *CipherTextGT) MarshalBinary() ([]byte, error) {
	return marshalPoints(c.G[0], c.G[1], c.G[2], c.G[3])
}

func (c *CipherTextGT) UnmarshalBinary(data []byte) error {
	pts, err := unmarshalPoints(c.Curve().GT(), data, 4)
	if err != nil {
		return err
	}
	copy(c.G[:], pts)
	return nil
}

func (c *CipherTextGT) WriteTo(w io.Writer) (int64, error) {
	return writePoints(w, c.G[0], c.G[1], c.G[2], c.G[3])
}

func marshalPoints(pts ...pairing.Point) ([]byte, error) {
	var buf []byte
	for _, p := range pts {
		b, err := p.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

func unmarshalPoints(g pairing.Group, data []byte, n int) ([]pairing.Point, error) {
	size := g.PointSize()
	if len(data) != n*size {
		return nil, ErrMalformedCiphertext
	}
	pts := make([]pairing.Point, n)
	for i := range pts {
		p := g.NewPoint()
		if err := p.UnmarshalBinary(data[i*size : (i+1)*size]); err != nil {
			return nil, ErrMalformedCiphertext
		}
		pts[i] = p
	}
	return pts, nil
}

func writePoints(w io.Writer, pts ...pairing.Point) (int64, error) {
	var total int64
	for _, p := range pts {
		buf, err := p.MarshalBinary()
		if err != nil {
			return total, err
		}
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
