package keystore

import "github.com/mr-shifu/she-lib/pkg/common/keyopts"

// Keystore combines a vault holding key material with a metadata repository
// resolving caller-facing key options (logical key IDs, labels) to SKIs.
type Keystore interface {
	// Import stores key material under its SKI and registers the key's
	// metadata from opts.
	Import(ski string, key []byte, opts keyopts.Options) error

	// Get resolves opts to a SKI and returns the stored key material.
	Get(opts keyopts.Options) ([]byte, error)

	// Delete removes both the key material and its metadata.
	Delete(opts keyopts.Options) error

	// KeyAccessor binds a single key for repeated access.
	KeyAccessor(ski string, opts keyopts.Options) KeyAccessor
}

// KeyAccessor is a Keystore view fixed to one key.
type KeyAccessor interface {
	Import(key []byte) error
	Get() ([]byte, error)
	Delete() error
}
