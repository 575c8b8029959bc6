package keyopts

import (
	"errors"
	"sync"

	"github.com/mr-shifu/she-lib/pkg/common/keyopts"
)

var (
	ErrInvalidParamsKeyID = errors.New("keyopts: invalid keyID")
	ErrKeyNotFound        = errors.New("keyopts: key not found")
)

// KeyOpts is an in-memory metadata repository mapping logical key IDs to
// key metadata.
type KeyOpts struct {
	lock sync.RWMutex
	keys map[string]*keyopts.KeyData
}

func NewInMemoryKeyOpts() *KeyOpts {
	return &KeyOpts{
		keys: make(map[string]*keyopts.KeyData),
	}
}

func (kr *KeyOpts) Import(ski string, opts keyopts.Options) error {
	kr.lock.Lock()
	defer kr.lock.Unlock()

	kid, err := keyID(opts)
	if err != nil {
		return err
	}

	kd := &keyopts.KeyData{SKI: ski}
	if label, ok := opts.Get("label"); ok {
		if l, ok := label.(string); ok {
			kd.Label = l
		}
	}
	kr.keys[kid] = kd

	return nil
}

func (kr *KeyOpts) Get(opts keyopts.Options) (*keyopts.KeyData, error) {
	kr.lock.RLock()
	defer kr.lock.RUnlock()

	kid, err := keyID(opts)
	if err != nil {
		return nil, err
	}

	kd, ok := kr.keys[kid]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return kd, nil
}

func (kr *KeyOpts) Delete(opts keyopts.Options) error {
	kr.lock.Lock()
	defer kr.lock.Unlock()

	kid, err := keyID(opts)
	if err != nil {
		return err
	}

	delete(kr.keys, kid)
	return nil
}

func keyID(opts keyopts.Options) (string, error) {
	ID, ok := opts.Get("id")
	if !ok {
		return "", ErrInvalidParamsKeyID
	}
	kid, ok := ID.(string)
	if !ok || kid == "" {
		return "", ErrInvalidParamsKeyID
	}
	return kid, nil
}
