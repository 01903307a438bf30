// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-stellar-kit/internal/events"
	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/mock"
	"github.com/MKhiriev/go-stellar-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubTimer reports the configured readiness on Start and ticks once when
// ready. Further ticks are triggered through the listener by the test.
type stubTimer struct {
	mu       sync.Mutex
	ready    bool
	state    TimerState
	listener TimerListener
	starts   int
}

func newStubTimer(ready bool) *stubTimer {
	return &stubTimer{ready: ready, state: TimerNotReady{Err: models.ErrNotStarted}}
}

func (s *stubTimer) Start(_ context.Context, listener TimerListener) {
	s.mu.Lock()
	s.starts++
	s.listener = listener
	if s.ready {
		s.state = TimerReady{}
	} else {
		s.state = TimerNotReady{Err: models.ErrNoNetworkConnection}
	}
	state := s.state
	s.mu.Unlock()

	listener.OnTimerStateChanged(state)
	if _, ok := state.(TimerReady); ok {
		listener.OnTick()
	}
}

func (s *stubTimer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = TimerNotReady{Err: models.ErrNotStarted}
	s.listener = nil
}

func (s *stubTimer) State() TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *stubTimer) Starts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}

type recordingPublisher struct {
	mu           sync.Mutex
	states       []events.SyncStateEvent
	transactions []events.TransactionsEvent
}

func (p *recordingPublisher) PublishSyncState(_ context.Context, e events.SyncStateEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, e)
	return nil
}

func (p *recordingPublisher) PublishTransactions(_ context.Context, e events.TransactionsEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transactions = append(p.transactions, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Transactions() []events.TransactionsEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.TransactionsEvent(nil), p.transactions...)
}

func testBalance(balance, base int64) models.Balance {
	return models.Balance{Balance: big.NewInt(balance), BaseTokenBalance: big.NewInt(base)}
}

func isSynced(s Syncer) func() bool {
	return func() bool {
		_, ok := s.SyncState().(models.Synced)
		return ok
	}
}

func isNotSynced(s Syncer) func() bool {
	return func() bool {
		_, ok := s.SyncState().(models.NotSynced)
		return ok
	}
}

func TestSyncer_NewPaymentIsStoredAndTagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)
	tm := NewTransactionManager(ownAccount, storage, logger.Nop())
	timer := newStubTimer(true)
	pub := &recordingPublisher{}

	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()
	client.EXPECT().GetLastLedgerSequence(gomock.Any()).Return(uint64(100), nil)
	client.EXPECT().GetBalance(gomock.Any()).Return(testBalance(5_0000000, 5_0000000), nil)
	client.EXPECT().GetTransactions(gomock.Any(), DefaultTransactionsLimit).Return([]models.Transaction{testTx("h1", 10)}, nil)
	client.EXPECT().GetOperations(gomock.Any(), DefaultTransactionsLimit).Return([]models.Operation{
		nativePayment("1", "h1", otherAccount, ownAccount, "5.0000000"),
	}, nil)

	s := NewSyncer(storage, client, timer, tm, SyncerOptions{
		Network:   models.Testnet,
		WalletID:  "wallet-1",
		Publisher: pub,
	}, logger.Nop())

	s.Start(testContext())
	defer s.Stop()

	require.Eventually(t, isSynced(s), time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(100), s.LastLedgerSequence())

	seq, ok, err := storage.GetLastLedgerSequence(testContext())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(100), seq)

	full := tm.FullTransactions()
	require.Len(t, full, 1)
	p, ok := full[0].Operation.(models.PaymentOperation)
	require.True(t, ok)
	assert.Equal(t, "5.0000000", p.Amount)

	tags, err := storage.GetTags(testContext(), "h1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"XLM", "XLM_incoming", "incoming"}, tags)

	require.Eventually(t, func() bool { return len(pub.Transactions()) == 1 }, time.Second, 5*time.Millisecond)
	published := pub.Transactions()[0]
	assert.Equal(t, ownAccount, published.AccountID)
	require.Len(t, published.Transactions, 1)
	assert.Equal(t, "h1", published.Transactions[0].Transaction.Hash)
}

func TestSyncer_IdlePollLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)
	require.NoError(t, storage.SaveLastLedgerSequence(testContext(), 100))

	polled := make(chan struct{}, 1)
	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()
	client.EXPECT().GetLastLedgerSequence(gomock.Any()).DoAndReturn(func(context.Context) (uint64, error) {
		polled <- struct{}{}
		return 100, nil
	})

	s := NewSyncer(storage, client, newStubTimer(true), NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())
	s.Start(testContext())
	defer s.Stop()

	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("syncer did not poll")
	}

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, uint64(100), s.LastLedgerSequence())
	assert.IsType(t, models.Syncing{}, s.SyncState())
}

func TestSyncer_RemoteFailureReportsNotSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)
	boom := errors.New("horizon unavailable")

	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()
	client.EXPECT().GetLastLedgerSequence(gomock.Any()).Return(uint64(0), boom)

	s := NewSyncer(storage, client, newStubTimer(true), NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())
	s.Start(testContext())
	defer s.Stop()

	require.Eventually(t, isNotSynced(s), time.Second, 5*time.Millisecond)
	state := s.SyncState().(models.NotSynced)
	assert.ErrorIs(t, state.Err, boom)

	_, ok, err := storage.GetLastLedgerSequence(testContext())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSyncer_SequenceSavedAfterData(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := mock.NewMockStorage(ctrl)
	timer := newStubTimer(true)

	txs := []models.Transaction{testTx("h1", 10)}
	ops := []models.Operation{nativePayment("1", "h1", otherAccount, ownAccount, "5.0000000")}

	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()
	storage.EXPECT().GetLastLedgerSequence(gomock.Any()).Return(uint64(0), false, nil)
	storage.EXPECT().GetTransactions(gomock.Any()).Return(txs, nil)
	storage.EXPECT().ResolveOperations(gomock.Any(), []string{"h1"}).Return(map[string]models.Operation{"h1": ops[0]}, nil).AnyTimes()
	storage.EXPECT().SaveTags(gomock.Any(), gomock.Len(3)).Return(nil)
	storage.EXPECT().GetTransactionsByHashes(gomock.Any(), []string{"h1"}).Return(nil, nil)
	storage.EXPECT().GetTransactionsByHashes(gomock.Any(), []string{"h1"}).Return(txs, nil).AnyTimes()

	gomock.InOrder(
		client.EXPECT().GetLastLedgerSequence(gomock.Any()).Return(uint64(7), nil),
		client.EXPECT().GetBalance(gomock.Any()).Return(testBalance(1, 1), nil),
		client.EXPECT().GetTransactions(gomock.Any(), 10).Return(txs, nil),
		client.EXPECT().GetOperations(gomock.Any(), 10).Return(ops, nil),
		storage.EXPECT().SaveTransactionsIfNotExists(gomock.Any(), txs).Return(nil),
		storage.EXPECT().SaveOperationsIfNotExists(gomock.Any(), ops).Return(nil),
		storage.EXPECT().SaveLastLedgerSequence(gomock.Any(), uint64(7)).Return(nil),
	)

	tm := NewTransactionManager(ownAccount, storage, logger.Nop())
	s := NewSyncer(storage, client, timer, tm, SyncerOptions{TransactionsLimit: 10}, logger.Nop())
	s.Start(testContext())
	defer s.Stop()

	require.Eventually(t, isSynced(s), time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(7), s.LastLedgerSequence())
}

func TestSyncer_FailedWriteKeepsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := mock.NewMockStorage(ctrl)
	boom := errors.New("disk full")

	txs := []models.Transaction{testTx("h1", 10)}

	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()
	storage.EXPECT().GetLastLedgerSequence(gomock.Any()).Return(uint64(5), true, nil)
	client.EXPECT().GetLastLedgerSequence(gomock.Any()).Return(uint64(6), nil)
	client.EXPECT().GetBalance(gomock.Any()).Return(testBalance(1, 1), nil)
	client.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).Return(txs, nil)
	client.EXPECT().GetOperations(gomock.Any(), gomock.Any()).Return(nil, nil)
	storage.EXPECT().GetTransactionsByHashes(gomock.Any(), []string{"h1"}).Return(nil, nil)
	storage.EXPECT().SaveTransactionsIfNotExists(gomock.Any(), txs).Return(boom)

	s := NewSyncer(storage, client, newStubTimer(true), NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())
	s.Start(testContext())
	defer s.Stop()

	require.Eventually(t, isNotSynced(s), time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, s.SyncState().(models.NotSynced).Err, boom)
	assert.Equal(t, uint64(5), s.LastLedgerSequence())
}

func TestSyncer_TimerNotReadyMapsToNotSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)
	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()

	s := NewSyncer(storage, client, newStubTimer(false), NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())
	s.Start(testContext())
	defer s.Stop()

	state, ok := s.SyncState().(models.NotSynced)
	require.True(t, ok)
	assert.ErrorIs(t, state.Err, models.ErrNoNetworkConnection)
}

func TestSyncer_RefreshRestartsIdleTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)
	timer := newStubTimer(false)
	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()

	s := NewSyncer(storage, client, timer, NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())

	s.Refresh()
	assert.Equal(t, 0, timer.Starts(), "refresh before start is ignored")

	s.Start(testContext())
	defer s.Stop()
	require.Equal(t, 1, timer.Starts())

	s.Refresh()
	assert.Equal(t, 2, timer.Starts())
}

func TestSyncer_RefreshRunsCycleWhenReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)
	require.NoError(t, storage.SaveLastLedgerSequence(testContext(), 100))

	polled := make(chan struct{}, 2)
	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()
	client.EXPECT().GetLastLedgerSequence(gomock.Any()).DoAndReturn(func(context.Context) (uint64, error) {
		polled <- struct{}{}
		return 100, nil
	}).Times(2)

	timer := newStubTimer(true)
	s := NewSyncer(storage, client, timer, NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())
	s.Start(testContext())
	defer s.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-polled:
		case <-time.After(time.Second):
			t.Fatalf("poll %d did not happen", i+1)
		}
		if i == 0 {
			s.Refresh()
		}
	}
	assert.Equal(t, 1, timer.Starts())
}

func TestSyncer_StopResetsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)

	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()
	client.EXPECT().GetLastLedgerSequence(gomock.Any()).Return(uint64(1), nil).AnyTimes()
	client.EXPECT().GetBalance(gomock.Any()).Return(testBalance(0, 0), nil).AnyTimes()
	client.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	client.EXPECT().GetOperations(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	s := NewSyncer(storage, client, newStubTimer(true), NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())
	s.Start(testContext())
	require.Eventually(t, isSynced(s), time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()

	state, ok := s.SyncState().(models.NotSynced)
	require.True(t, ok)
	assert.ErrorIs(t, state.Err, models.ErrNotStarted)
	assert.Equal(t, uint64(1), s.LastLedgerSequence())
}

func TestSyncer_SubscribeSyncState(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockLedgerClient(ctrl)
	storage := newTestStorage(t)
	client.EXPECT().AccountID().Return(ownAccount).AnyTimes()

	s := NewSyncer(storage, client, newStubTimer(false), NewTransactionManager(ownAccount, storage, logger.Nop()), SyncerOptions{}, logger.Nop())

	ch, cancel := s.SubscribeSyncState()
	defer cancel()

	first := <-ch
	assert.ErrorIs(t, first.(models.NotSynced).Err, models.ErrNotStarted)

	s.Start(testContext())
	defer s.Stop()

	select {
	case next := <-ch:
		assert.ErrorIs(t, next.(models.NotSynced).Err, models.ErrNoNetworkConnection)
	case <-time.After(time.Second):
		t.Fatal("state change not delivered")
	}
}
