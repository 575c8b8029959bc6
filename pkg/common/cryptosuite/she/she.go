package she

import (
	"github.com/mr-shifu/she-lib/core/she"
	"github.com/mr-shifu/she-lib/pkg/common/keyopts"
)

// SheKey is a managed somewhat-homomorphic key pair. Encrypt and Decrypt
// operate on serialized ciphertexts of the matching group family; Decrypt
// requires the private part.
type SheKey interface {
	// Bytes returns the byte representation of the key.
	Bytes() ([]byte, error)

	// SKI returns the serialized key identifier.
	SKI() []byte

	// Private returns true if the key includes the secret part.
	Private() bool

	// PublicKey returns the public part of the key.
	PublicKey() SheKey

	// PublicKeyRaw returns the underlying scheme public key.
	PublicKeyRaw() *she.PublicKey

	EncryptG1(m int64) ([]byte, error)
	EncryptG2(m int64) ([]byte, error)
	EncryptGT(m int64) ([]byte, error)

	DecryptG1(ct []byte) (int64, error)
	DecryptG2(ct []byte) (int64, error)
	DecryptGT(ct []byte) (int64, error)
}

// SheKeyManager generates, stores and uses SHE keys addressed by
// keyopts.Options.
type SheKeyManager interface {
	// GenerateKey generates a new key pair and stores it.
	GenerateKey(opts keyopts.Options) (SheKey, error)

	// ImportKey imports a key from its byte representation.
	ImportKey(data []byte, opts keyopts.Options) (SheKey, error)

	// GetKey returns a previously stored key.
	GetKey(opts keyopts.Options) (SheKey, error)

	EncryptG1(m int64, opts keyopts.Options) ([]byte, error)
	EncryptG2(m int64, opts keyopts.Options) ([]byte, error)
	EncryptGT(m int64, opts keyopts.Options) ([]byte, error)

	DecryptG1(ct []byte, opts keyopts.Options) (int64, error)
	DecryptG2(ct []byte, opts keyopts.Options) (int64, error)
	DecryptGT(ct []byte, opts keyopts.Options) (int64, error)
}
