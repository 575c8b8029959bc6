// Package dlog solves bounded discrete logarithms with baby-step/giant-step.
// A Table trades O(√B) precomputed storage for O(√B) lookups over the signed
// range [-B, B], instead of the O(B) linear scan that becomes infeasible for
// realistic bounds.
package dlog

import (
	"math"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"

	"github.com/mr-shifu/she-lib/core/math/pairing"
)

var (
	ErrInvalidBound = errors.New("dlog: bound must be positive")

	// ErrNoMatch is returned when the target is not a multiple of the
	// base within [-bound, bound].
	ErrNoMatch = errors.New("dlog: no exponent within bound")
)

// keySize truncates blake3 digests of point encodings for table keys. GT
// elements encode to hundreds of bytes; hashing keeps the table compact.
const keySize = 16

// Table is a precomputed baby-step table for one base point. It is
// read-only after NewTable returns and safe for concurrent lookups.
type Table struct {
	base  pairing.Point
	bound uint64

	// steps is the baby-step count ⌈√(2·bound+1)⌉; an exponent m ≥ 0
	// decomposes as m = i·steps + j with j < steps.
	steps uint64

	baby map[[keySize]byte]uint64

	// negStride = -(steps·base), applied once per giant step.
	negStride pairing.Point
}

// NewTable builds the baby-step table j·base for j in [0, ⌈√(2·bound+1)⌉).
// Cost is O(√bound) time and space; build once and share.
func NewTable(base pairing.Point, bound uint64) (*Table, error) {
	if bound == 0 {
		return nil, ErrInvalidBound
	}

	steps := uint64(math.Ceil(math.Sqrt(float64(2*bound + 1))))

	t := &Table{
		base:  base,
		bound: bound,
		steps: steps,
		baby:  make(map[[keySize]byte]uint64, steps),
	}

	cur := base.Group().NewPoint()
	for j := uint64(0); j < steps; j++ {
		k, err := pointKey(cur)
		if err != nil {
			return nil, err
		}
		t.baby[k] = j
		cur = cur.Add(base)
	}

	// cur now holds steps·base.
	t.negStride = cur.Negate()
	return t, nil
}

// Bound returns the supported exponent magnitude.
func (t *Table) Bound() uint64 { return t.bound }

// Lookup recovers m ∈ [-bound, bound] with target = m·base. Giant steps run
// in both signed directions, alternating, and the first match decides the
// sign. ErrNoMatch is returned once both directions are exhausted.
func (t *Table) Lookup(target pairing.Point) (int64, error) {
	pos := target
	neg := target.Negate()

	giants := t.bound/t.steps + 1
	for i := uint64(0); i <= giants; i++ {
		if m, ok, err := t.probe(pos, i); err != nil {
			return 0, err
		} else if ok {
			return m, nil
		}
		if m, ok, err := t.probe(neg, i); err != nil {
			return 0, err
		} else if ok {
			return -m, nil
		}
		pos = pos.Add(t.negStride)
		neg = neg.Add(t.negStride)
	}
	return 0, ErrNoMatch
}

// probe checks whether cur, already shifted by i giant steps, sits in the
// baby table, yielding the non-negative exponent i·steps + j.
func (t *Table) probe(cur pairing.Point, i uint64) (int64, bool, error) {
	k, err := pointKey(cur)
	if err != nil {
		return 0, false, err
	}
	j, ok := t.baby[k]
	if !ok {
		return 0, false, nil
	}
	m := i*t.steps + j
	if m > t.bound {
		return 0, false, nil
	}
	return int64(m), true, nil
}

func pointKey(p pairing.Point) ([keySize]byte, error) {
	var k [keySize]byte
	buf, err := p.MarshalBinary()
	if err != nil {
		return k, errors.WithMessage(err, "dlog: failed to encode point")
	}
	sum := blake3.Sum256(buf)
	copy(k[:], sum[:keySize])
	return k, nil
}
