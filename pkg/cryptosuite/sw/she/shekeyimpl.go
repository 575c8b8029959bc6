package she

import (
	"crypto/sha256"
	"errors"

	"github.com/fxamacker/cbor/v2"

	"github.com/mr-shifu/she-lib/core/math/pairing"
	"github.com/mr-shifu/she-lib/core/she"
	cs_she "github.com/mr-shifu/she-lib/pkg/common/cryptosuite/she"
)

var (
	ErrInvalidKey = errors.New("invalid key")
	ErrNotPrivate = errors.New("key has no private part")
)

type SheKey struct {
	secretKey *she.SecretKey
	publicKey *she.PublicKey
	decryptor *she.Decryptor
}

type rawSheKey struct {
	Curve  string
	Secret []byte
	Public []byte
}

var _ cs_she.SheKey = SheKey{}

func (key SheKey) Bytes() ([]byte, error) {
	raw := &rawSheKey{}

	raw.Curve = key.publicKey.Curve().Name()

	pub, err := key.publicKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	raw.Public = pub

	if key.Private() {
		priv, err := key.secretKey.MarshalBinary()
		if err != nil {
			return nil, err
		}
		raw.Secret = priv
	}
	return cbor.Marshal(raw)
}

func (key SheKey) SKI() []byte {
	raw, err := key.publicKey.MarshalBinary()
	if err != nil {
		return nil
	}
	hash := sha256.New()
	hash.Write(raw)
	return hash.Sum(nil)
}

func (key SheKey) Private() bool {
	return key.secretKey != nil
}

func (key SheKey) PublicKey() cs_she.SheKey {
	return SheKey{nil, key.publicKey, key.decryptor}
}

func (key SheKey) PublicKeyRaw() *she.PublicKey {
	return key.publicKey
}

func (key SheKey) EncryptG1(m int64) ([]byte, error) {
	ct, err := she.EncryptG1(key.publicKey, m)
	if err != nil {
		return nil, err
	}
	return ct.MarshalBinary()
}

func (key SheKey) EncryptG2(m int64) ([]byte, error) {
	ct, err := she.EncryptG2(key.publicKey, m)
	if err != nil {
		return nil, err
	}
	return ct.MarshalBinary()
}

func (key SheKey) EncryptGT(m int64) ([]byte, error) {
	ct, err := she.EncryptGT(key.publicKey, m)
	if err != nil {
		return nil, err
	}
	return ct.MarshalBinary()
}

func (key SheKey) DecryptG1(data []byte) (int64, error) {
	if !key.Private() {
		return 0, ErrNotPrivate
	}
	ct := she.NewCipherTextG1(key.secretKey.Curve())
	if err := ct.UnmarshalBinary(data); err != nil {
		return 0, err
	}
	if key.decryptor != nil {
		return key.decryptor.DecryptG1(key.secretKey, ct)
	}
	return key.secretKey.DecryptG1(ct)
}

func (key SheKey) DecryptG2(data []byte) (int64, error) {
	if !key.Private() {
		return 0, ErrNotPrivate
	}
	ct := she.NewCipherTextG2(key.secretKey.Curve())
	if err := ct.UnmarshalBinary(data); err != nil {
		return 0, err
	}
	if key.decryptor != nil {
		return key.decryptor.DecryptG2(key.secretKey, ct)
	}
	return key.secretKey.DecryptG2(ct)
}

func (key SheKey) DecryptGT(data []byte) (int64, error) {
	if !key.Private() {
		return 0, ErrNotPrivate
	}
	ct := she.NewCipherTextGT(key.secretKey.Curve())
	if err := ct.UnmarshalBinary(data); err != nil {
		return 0, err
	}
	if key.decryptor != nil {
		return key.decryptor.DecryptGT(key.secretKey, ct)
	}
	return key.secretKey.DecryptGT(ct)
}

func fromBytes(data []byte) (SheKey, error) {
	key := SheKey{}

	raw := &rawSheKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return SheKey{}, err
	}

	c, err := pairing.CurveFromName(raw.Curve)
	if err != nil {
		return SheKey{}, err
	}

	if len(raw.Secret) > 0 {
		secret := she.NewSecretKey(c)
		if err := secret.UnmarshalBinary(raw.Secret); err != nil {
			return SheKey{}, err
		}
		key.secretKey = secret
	}

	pub := she.NewPublicKey(c)
	if err := pub.UnmarshalBinary(raw.Public); err != nil {
		return SheKey{}, err
	}
	key.publicKey = pub

	return key, nil
}
