package she

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/mr-shifu/she-lib/core/math/dlog"
	"github.com/mr-shifu/she-lib/core/math/pairing"
)

// Decryptor recovers plaintexts for one curve and one message bound. Each
// group's baby-step table is built lazily on the first decryption touching
// that group, then shared read-only by any number of concurrent callers.
//
// Decryptors hold the only shared mutable state of the scheme; everything
// else in this package is pure.
type Decryptor struct {
	curve pairing.Curve
	bound uint64

	g1 lazyTable
	g2 lazyTable
	gt lazyTable
}

type lazyTable struct {
	once sync.Once
	tab  *dlog.Table
	err  error
}

func (l *lazyTable) get(g pairing.Group, bound uint64) (*dlog.Table, error) {
	l.once.Do(func() {
		l.tab, l.err = dlog.NewTable(g.Base(), bound)
	})
	return l.tab, l.err
}

// NewDecryptor prepares a decryptor for c with plaintext bound in [-bound,
// bound]. Table memory and per-decryption cost grow with √bound.
func NewDecryptor(c pairing.Curve, bound uint64) *Decryptor {
	return &Decryptor{curve: c, bound: bound}
}

func (d *Decryptor) Bound() uint64 { return d.bound }

// DecryptG1 strips the blinding with x and solves the remaining discrete
// log: m⋅P = T − x⋅S.
func (d *Decryptor) DecryptG1(sk *SecretKey, ct *CipherTextG1) (int64, error) {
	if !ct.Valid() {
		return 0, ErrMalformedCiphertext
	}
	tab, err := d.g1.get(d.curve.G1(), d.bound)
	if err != nil {
		return 0, err
	}
	return d.recover(tab, ct.T.Sub(sk.x.Act(ct.S)))
}

// DecryptG2 is the G₂ analogue, using y.
func (d *Decryptor) DecryptG2(sk *SecretKey, ct *CipherTextG2) (int64, error) {
	if !ct.Valid() {
		return 0, ErrMalformedCiphertext
	}
	tab, err := d.g2.get(d.curve.G2(), d.bound)
	if err != nil {
		return 0, err
	}
	return d.recover(tab, ct.T.Sub(sk.y.Act(ct.S)))
}

// DecryptGT eliminates both blinding scalars across the four components,
//
//	m⋅e(P,Q) = g₃ − x⋅g₁ − y⋅g₂ + x·y⋅g₀,
//
// then runs the same bounded search against e(P,Q).
func (d *Decryptor) DecryptGT(sk *SecretKey, ct *CipherTextGT) (int64, error) {
	if !ct.Valid() {
		return 0, ErrMalformedCiphertext
	}
	tab, err := d.gt.get(d.curve.GT(), d.bound)
	if err != nil {
		return 0, err
	}
	v := ct.G[3].
		Sub(sk.x.Act(ct.G[1])).
		Sub(sk.y.Act(ct.G[2])).
		Add(sk.x.Mul(sk.y).Act(ct.G[0]))
	return d.recover(tab, v)
}

func (d *Decryptor) recover(tab *dlog.Table, v pairing.Point) (int64, error) {
	m, err := tab.Lookup(v)
	if err != nil {
		if errors.Is(err, dlog.ErrNoMatch) {
			return 0, ErrPlaintextOutOfRange
		}
		return 0, err
	}
	return m, nil
}

// defaultDecryptors holds one DefaultMessageBound decryptor per curve for
// the convenience SecretKey methods: built on first use, then shared for
// the process lifetime.
var defaultDecryptors sync.Map // curve name -> *Decryptor

func defaultDecryptor(c pairing.Curve) *Decryptor {
	if d, ok := defaultDecryptors.Load(c.Name()); ok {
		return d.(*Decryptor)
	}
	d, _ := defaultDecryptors.LoadOrStore(c.Name(), NewDecryptor(c, DefaultMessageBound))
	return d.(*Decryptor)
}

// DecryptG1 decrypts with the process-wide DefaultMessageBound decryptor.
func (sk *SecretKey) DecryptG1(ct *CipherTextG1) (int64, error) {
	return defaultDecryptor(sk.curve).DecryptG1(sk, ct)
}

func (sk *SecretKey) DecryptG2(ct *CipherTextG2) (int64, error) {
	return defaultDecryptor(sk.curve).DecryptG2(sk, ct)
}

func (sk *SecretKey) DecryptGT(ct *CipherTextGT) (int64, error) {
	return defaultDecryptor(sk.curve).DecryptGT(sk, ct)
}
