package sample

import (
	cryptorand "crypto/rand"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"

	"github.com/mr-shifu/she-lib/core/math/pairing"
)

// Scalar samples a uniform scalar of c's scalar field. It reads
// c.SafeScalarBytes() bytes so the reduction mod the group order carries
// negligible bias. The entropy source is the only failure mode; errors are
// returned to the caller and never retried here.
func Scalar(rand io.Reader, c pairing.Curve) (pairing.Scalar, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	buf := make([]byte, c.SafeScalarBytes())
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read random bytes")
	}

	n := new(saferith.Nat).SetBytes(buf)
	n.Mod(n, c.Order())
	return c.NewScalar().SetNat(n), nil
}
