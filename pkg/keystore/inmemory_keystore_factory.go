package keystore

import (
	"github.com/mr-shifu/she-lib/pkg/common/keyopts"
	"github.com/mr-shifu/she-lib/pkg/common/keystore"
	"github.com/mr-shifu/she-lib/pkg/common/vault"
)

type InMemoryKeystoreFactory struct {
	vf vault.VaultFactory
	kf keyopts.KeyOptsFactory
}

func NewInMemoryKeystoreFactory(vf vault.VaultFactory, kf keyopts.KeyOptsFactory) *InMemoryKeystoreFactory {
	return &InMemoryKeystoreFactory{vf: vf, kf: kf}
}

// NewKeystore creates a Keystore backed by a fresh vault and key repository
// from the configured factories.
func (f *InMemoryKeystoreFactory) NewKeystore(cfg interface{}) keystore.Keystore {
	return NewInMemoryKeystore(f.vf.NewVault(cfg), f.kf.NewKeyOpts(cfg))
}
