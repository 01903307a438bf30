package kit

import (
	"sync"

	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/models"
)

// StorageOpener opens the store of one (network, wallet) pair.
type StorageOpener func(network models.Network, walletID string) (store.Storage, error)

type storeKey struct {
	network  models.Network
	walletID string
}

// sharedStorage is one open store used by every kit of a wallet. The
// underlying store closes when the last lease is released.
type sharedStorage struct {
	store.Storage

	mu   sync.Mutex
	refs int
}

func newSharedStorage(s store.Storage) *sharedStorage {
	return &sharedStorage{Storage: s}
}

// lease returns a handle whose Close releases one reference, or false when
// the store is already closed.
func (s *sharedStorage) lease() (*storageLease, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs < 0 {
		return nil, false
	}
	s.refs++
	return &storageLease{Storage: s.Storage, shared: s}, true
}

func (s *sharedStorage) release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refs--
	if s.refs > 0 {
		return nil
	}
	s.refs = -1
	return s.Storage.Close()
}

type storageLease struct {
	store.Storage

	shared *sharedStorage
	once   sync.Once
}

func (l *storageLease) Close() error {
	var err error
	l.once.Do(func() { err = l.shared.release() })
	return err
}
