package kit

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/models"
)

func factoryOf(t *testing.T, calls *int) Factory {
	return func(opts ...Option) (*Kit, error) {
		*calls++
		return newTestKit(t, false, opts...).Kit, nil
	}
}

func TestRegistry_GetReusesRunningKit(t *testing.T) {
	r := NewRegistry(logger.Nop(), nil)
	key := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}

	var calls int
	first, err := r.Get(key, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)
	assert.True(t, first.IsStarted())

	second, err := r.Get(key, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	found, ok := r.Lookup(key)
	require.True(t, ok)
	assert.Same(t, first, found)
}

func TestRegistry_KitsPerAsset(t *testing.T) {
	r := NewRegistry(logger.Nop(), nil)
	xlm := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}
	token := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "USDC"}

	var calls int
	a, err := r.Get(xlm, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)
	b, err := r.Get(token, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Len(t, r.Kits(), 2)
	assert.True(t, a.IsStarted())
}

func TestRegistry_AccountSwitchStopsPreviousKits(t *testing.T) {
	r := NewRegistry(logger.Nop(), nil)
	xlm := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}
	token := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "USDC"}

	var calls int
	a, err := r.Get(xlm, "GFIRST", factoryOf(t, &calls))
	require.NoError(t, err)
	b, err := r.Get(token, "GFIRST", factoryOf(t, &calls))
	require.NoError(t, err)

	c, err := r.Get(xlm, "GSECOND", factoryOf(t, &calls))
	require.NoError(t, err)

	assert.NotSame(t, a, c)
	assert.False(t, a.IsStarted())
	assert.False(t, b.IsStarted())
	assert.True(t, c.IsStarted())
	assert.Len(t, r.Kits(), 1)
	assert.Equal(t, 3, calls)
}

func TestRegistry_FactoryError(t *testing.T) {
	r := NewRegistry(logger.Nop(), nil)
	boom := errors.New("boom")

	_, err := r.Get(Key{WalletID: "w1"}, "GACCOUNT", func(...Option) (*Kit, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, r.Kits())
}

func TestRegistry_Stop(t *testing.T) {
	r := NewRegistry(logger.Nop(), nil)
	key := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}

	assert.ErrorIs(t, r.Stop(key), ErrKitNotFound)

	var calls int
	k, err := r.Get(key, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)

	require.NoError(t, r.Stop(key))
	assert.False(t, k.IsStarted())
	_, ok := r.Lookup(key)
	assert.False(t, ok)

	// With no kits left another account may register without a switch.
	_, err = r.Get(key, "GOTHER", factoryOf(t, &calls))
	require.NoError(t, err)
}

func TestRegistry_StopAll(t *testing.T) {
	r := NewRegistry(logger.Nop(), nil)

	var calls int
	a, err := r.Get(Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)
	b, err := r.Get(Key{Network: models.Mainnet, WalletID: "w1", AssetCode: "XLM"}, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)

	require.NoError(t, r.StopAll())
	assert.False(t, a.IsStarted())
	assert.False(t, b.IsStarted())
	assert.Empty(t, r.Kits())
}

type countingStorage struct {
	store.Storage
	closes atomic.Int32
}

func (c *countingStorage) Close() error {
	c.closes.Add(1)
	return c.Storage.Close()
}

type storeOpener struct {
	dir    string
	opened []*countingStorage
}

func (o *storeOpener) open(network models.Network, walletID string) (store.Storage, error) {
	s, err := store.NewStorage(context.Background(), o.dir, network, walletID, logger.Nop())
	if err != nil {
		return nil, err
	}
	c := &countingStorage{Storage: s}
	o.opened = append(o.opened, c)
	return c, nil
}

func TestRegistry_KitsOfOneWalletShareStorage(t *testing.T) {
	ctx := context.Background()
	opener := &storeOpener{dir: t.TempDir()}
	r := NewRegistry(logger.Nop(), opener.open)
	xlm := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}
	token := Key{Network: models.Testnet, WalletID: "w1", AssetCode: "USDC"}

	var calls int
	a, err := r.Get(xlm, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)
	b, err := r.Get(token, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)
	require.Len(t, opener.opened, 1)

	require.NoError(t, a.storage.SaveLastLedgerSequence(ctx, 42))
	seq, ok, err := b.storage.GetLastLedgerSequence(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(42), seq)

	require.NoError(t, r.Stop(xlm))
	assert.Zero(t, opener.opened[0].closes.Load())
	_, _, err = b.storage.GetLastLedgerSequence(ctx)
	require.NoError(t, err)

	require.NoError(t, r.Stop(token))
	assert.Equal(t, int32(1), opener.opened[0].closes.Load())

	// The last kit closed the store; the next one opens it again.
	c, err := r.Get(xlm, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)
	require.Len(t, opener.opened, 2)
	seq, ok, err = c.storage.GetLastLedgerSequence(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(42), seq)
}

func TestRegistry_OtherNetworkGetsOwnStorage(t *testing.T) {
	opener := &storeOpener{dir: t.TempDir()}
	r := NewRegistry(logger.Nop(), opener.open)

	var calls int
	_, err := r.Get(Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)
	_, err = r.Get(Key{Network: models.Mainnet, WalletID: "w1", AssetCode: "XLM"}, "GACCOUNT", factoryOf(t, &calls))
	require.NoError(t, err)

	assert.Len(t, opener.opened, 2)

	require.NoError(t, r.StopAll())
	for _, s := range opener.opened {
		assert.Equal(t, int32(1), s.closes.Load())
	}
}

func TestRegistry_FactoryErrorReleasesStorage(t *testing.T) {
	opener := &storeOpener{dir: t.TempDir()}
	r := NewRegistry(logger.Nop(), opener.open)
	boom := errors.New("boom")

	_, err := r.Get(Key{Network: models.Testnet, WalletID: "w1", AssetCode: "XLM"}, "GACCOUNT",
		func(...Option) (*Kit, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	require.Len(t, opener.opened, 1)
	assert.Equal(t, int32(1), opener.opened[0].closes.Load())
}
