package she

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/mr-shifu/she-lib/core/math/pairing"
	"github.com/mr-shifu/she-lib/core/she"
	cs_she "github.com/mr-shifu/she-lib/pkg/common/cryptosuite/she"
	"github.com/mr-shifu/she-lib/pkg/common/keyopts"
	"github.com/mr-shifu/she-lib/pkg/common/keystore"
)

type Config struct {
	Curve pairing.Curve

	// Bound limits the plaintext range the manager's decryptor accepts.
	// Zero selects she.DefaultMessageBound.
	Bound uint64
}

type SheKeyManager struct {
	keystore  keystore.Keystore
	cfg       *Config
	decryptor *she.Decryptor
}

var _ cs_she.SheKeyManager = (*SheKeyManager)(nil)

func NewSheKeyManager(store keystore.Keystore, cfg *Config) *SheKeyManager {
	bound := cfg.Bound
	if bound == 0 {
		bound = she.DefaultMessageBound
	}
	return &SheKeyManager{
		keystore:  store,
		cfg:       cfg,
		decryptor: she.NewDecryptor(cfg.Curve, bound),
	}
}

func (mgr *SheKeyManager) GenerateKey(opts keyopts.Options) (cs_she.SheKey, error) {
	// Generate a new key pair
	sk, err := she.GenerateSecretKey(rand.Reader, mgr.cfg.Curve)
	if err != nil {
		return SheKey{}, err
	}

	// serialize key to store to the keystore
	key := SheKey{sk, sk.Public(), mgr.decryptor}
	decoded, err := key.Bytes()
	if err != nil {
		return SheKey{}, err
	}

	// get key SKI and encode it to hex string as keyID
	ski := key.SKI()
	keyID := hex.EncodeToString(ski)

	if _, ok := opts.Get("id"); !ok {
		if _, err := opts.Set("id", uuid.New().String()); err != nil {
			return SheKey{}, err
		}
	}

	// import the serialized key to the keystore with keyID
	if err := mgr.keystore.Import(keyID, decoded, opts); err != nil {
		return SheKey{}, err
	}

	// return the key pair
	return key, nil
}

func (mgr *SheKeyManager) ImportKey(data []byte, opts keyopts.Options) (cs_she.SheKey, error) {
	// decode the key
	k, err := fromBytes(data)
	if err != nil {
		return SheKey{}, err
	}
	k.decryptor = mgr.decryptor

	// get key SKI and encode it to hex string as keyID
	ski := k.SKI()
	keyID := hex.EncodeToString(ski)

	if _, ok := opts.Get("id"); !ok {
		if _, err := opts.Set("id", uuid.New().String()); err != nil {
			return SheKey{}, err
		}
	}

	// import the serialized key to the keystore with keyID
	if err := mgr.keystore.Import(keyID, data, opts); err != nil {
		return SheKey{}, err
	}

	return k, nil
}

func (mgr *SheKeyManager) GetKey(opts keyopts.Options) (cs_she.SheKey, error) {
	// get the key from the keystore
	decoded, err := mgr.keystore.Get(opts)
	if err != nil {
		return SheKey{}, err
	}

	// decode the key
	k, err := fromBytes(decoded)
	if err != nil {
		return SheKey{}, err
	}
	k.decryptor = mgr.decryptor

	return k, nil
}

func (mgr *SheKeyManager) EncryptG1(m int64, opts keyopts.Options) ([]byte, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return k.EncryptG1(m)
}

func (mgr *SheKeyManager) EncryptG2(m int64, opts keyopts.Options) ([]byte, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return k.EncryptG2(m)
}

func (mgr *SheKeyManager) EncryptGT(m int64, opts keyopts.Options) ([]byte, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return k.EncryptGT(m)
}

func (mgr *SheKeyManager) DecryptG1(ct []byte, opts keyopts.Options) (int64, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return 0, err
	}
	return k.DecryptG1(ct)
}

func (mgr *SheKeyManager) DecryptG2(ct []byte, opts keyopts.Options) (int64, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return 0, err
	}
	return k.DecryptG2(ct)
}

func (mgr *SheKeyManager) DecryptGT(ct []byte, opts keyopts.Options) (int64, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return 0, err
	}
	return k.DecryptGT(ct)
}
