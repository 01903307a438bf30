package kit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

// Key identifies a kit inside a [Registry].
type Key struct {
	Network  models.Network
	WalletID string
	// AssetCode separates the kits of one wallet that track different assets.
	AssetCode string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Network, k.WalletID, k.AssetCode)
}

// KeyOf returns the registry key of k.
func KeyOf(k *Kit) Key {
	return Key{Network: k.Network(), WalletID: k.WalletID(), AssetCode: k.Asset().DisplayCode()}
}

// Factory builds a stopped kit with the options the registry passes. The
// registry starts it.
type Factory func(opts ...Option) (*Kit, error)

// Registry keeps the running kits of the active account. Asking for a kit of
// another account stops and closes every kit of the previous one.
//
// Kits of one (network, wallet) pair track different assets of the same
// account and share one store file. With a non-nil opener the registry opens
// that store once and hands every such kit a lease on it.
type Registry struct {
	mu        sync.Mutex
	kits      map[Key]*Kit
	stores    map[storeKey]*sharedStorage
	open      StorageOpener
	accountID string

	logger *logger.Logger
}

// NewRegistry returns an empty registry. A nil open leaves each kit to open
// its own store.
func NewRegistry(logger *logger.Logger, open StorageOpener) *Registry {
	return &Registry{
		kits:   make(map[Key]*Kit),
		stores: make(map[storeKey]*sharedStorage),
		open:   open,
		logger: logger,
	}
}

// Get returns the running kit of key for accountID, building and starting
// it with factory when there is none.
func (r *Registry) Get(key Key, accountID string, factory Factory) (*Kit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.accountID != "" && r.accountID != accountID {
		r.logger.Info().Str("func", "Registry.Get").
			Str("previous_account", r.accountID).
			Str("account_id", accountID).
			Msg("active account changed, stopping kits")
		if err := r.stopAllLocked(); err != nil {
			r.logger.Warn().Err(err).Str("func", "Registry.Get").Msg("failed to close previous kits")
		}
	}

	if k, ok := r.kits[key]; ok {
		return k, nil
	}

	var opts []Option
	lease, err := r.leaseLocked(key)
	if err != nil {
		return nil, fmt.Errorf("open storage of %s: %w", key, err)
	}
	if lease != nil {
		opts = append(opts, WithStorage(lease))
	}

	k, err := factory(opts...)
	if err != nil {
		if lease != nil {
			_ = lease.Close()
		}
		return nil, fmt.Errorf("build kit %s: %w", key, err)
	}
	k.Start()

	r.kits[key] = k
	r.accountID = accountID

	r.logger.Info().Str("func", "Registry.Get").Str("kit", key.String()).Msg("kit registered")
	return k, nil
}

// leaseLocked returns a lease on the shared store of key, opening it when no
// live kit holds one. It returns nil without an opener.
func (r *Registry) leaseLocked(key Key) (*storageLease, error) {
	if r.open == nil {
		return nil, nil
	}

	sk := storeKey{network: key.Network, walletID: key.WalletID}
	if shared, ok := r.stores[sk]; ok {
		if lease, ok := shared.lease(); ok {
			return lease, nil
		}
		delete(r.stores, sk)
	}

	s, err := r.open(key.Network, key.WalletID)
	if err != nil {
		return nil, err
	}
	shared := newSharedStorage(s)
	r.stores[sk] = shared

	lease, _ := shared.lease()
	return lease, nil
}

// Lookup returns the kit of key without creating one.
func (r *Registry) Lookup(key Key) (*Kit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.kits[key]
	return k, ok
}

// Kits returns the registered kits in no particular order.
func (r *Registry) Kits() []*Kit {
	r.mu.Lock()
	defer r.mu.Unlock()

	kits := make([]*Kit, 0, len(r.kits))
	for _, k := range r.kits {
		kits = append(kits, k)
	}
	return kits
}

// Stop stops, closes and forgets the kit of key.
func (r *Registry) Stop(key Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.kits[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrKitNotFound, key)
	}
	delete(r.kits, key)
	if len(r.kits) == 0 {
		r.accountID = ""
	}

	return k.Close()
}

// StopAll stops and closes every kit.
func (r *Registry) StopAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopAllLocked()
}

func (r *Registry) stopAllLocked() error {
	var errs []error
	for key, k := range r.kits {
		if err := k.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kit %s: %w", key, err))
		}
		delete(r.kits, key)
	}
	clear(r.stores)
	r.accountID = ""
	return errors.Join(errs...)
}
