package vault

import (
	"errors"
	"sync"
)

var (
	ErrKeyNotFound = errors.New("vault: key not found")
)

// InMemoryVault keeps key material in process memory. Blobs are copied on
// the way in and out so callers cannot mutate stored material.
type InMemoryVault struct {
	lock sync.RWMutex
	keys map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		keys: make(map[string][]byte),
	}
}

func (store *InMemoryVault) Import(ski string, key []byte) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	cp := make([]byte, len(key))
	copy(cp, key)
	store.keys[ski] = cp
	return nil
}

func (store *InMemoryVault) Get(ski string) ([]byte, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	key, ok := store.keys[ski]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(key))
	copy(cp, key)
	return cp, nil
}

func (store *InMemoryVault) Delete(ski string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	delete(store.keys, ski)
	return nil
}
