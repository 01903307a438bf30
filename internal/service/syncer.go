package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-stellar-kit/internal/adapter"
	"github.com/MKhiriev/go-stellar-kit/internal/events"
	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/metrics"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/internal/utils"
	"github.com/MKhiriev/go-stellar-kit/internal/workers"
	"github.com/MKhiriev/go-stellar-kit/models"
)

// DefaultTransactionsLimit is how many of the newest transactions and
// operations a cycle fetches.
const DefaultTransactionsLimit = 100

// SyncerOptions carries the optional collaborators of a syncer.
type SyncerOptions struct {
	Network           models.Network
	WalletID          string
	TransactionsLimit int
	Metrics           *metrics.Metrics
	Publisher         events.Publisher
}

type syncer struct {
	storage      store.Storage
	client       adapter.LedgerClient
	timer        SyncTimer
	transactions TransactionManager
	queue        workers.Worker

	network   models.Network
	walletID  string
	limit     int
	labels    metrics.Labels
	metrics   *metrics.Metrics
	publisher events.Publisher
	uuid      utils.UUIDGenerator

	mu      sync.Mutex
	started bool
	ctx     context.Context

	state      *utils.Observable[models.SyncState]
	lastLedger *utils.Observable[uint64]

	logger *logger.Logger
}

// NewSyncer wires a syncer. It is idle until Start.
func NewSyncer(storage store.Storage, client adapter.LedgerClient, timer SyncTimer, transactions TransactionManager, opts SyncerOptions, logger *logger.Logger) Syncer {
	if opts.TransactionsLimit <= 0 {
		opts.TransactionsLimit = DefaultTransactionsLimit
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NopPublisher{}
	}

	return &syncer{
		storage:      storage,
		client:       client,
		timer:        timer,
		transactions: transactions,
		queue:        workers.NewSerial("sync", logger),
		network:      opts.Network,
		walletID:     opts.WalletID,
		limit:        opts.TransactionsLimit,
		labels:       metrics.Labels{Network: opts.Network.String(), WalletID: opts.WalletID},
		metrics:      opts.Metrics,
		publisher:    opts.Publisher,
		state:        utils.NewObservable[models.SyncState](models.NotSynced{Err: models.ErrNotStarted}, models.SyncStatesEqual),
		lastLedger:   utils.NewObservable[uint64](0, func(a, b uint64) bool { return a == b }),
		logger:       logger,
	}
}

// Start implements Syncer. It loads the stored ledger sequence, starts the
// cycle queue and hands itself to the timer as listener.
func (s *syncer) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.ctx = ctx
	s.mu.Unlock()

	if seq, ok, err := s.storage.GetLastLedgerSequence(ctx); err != nil {
		s.logger.Err(err).Str("func", "syncer.Start").Msg("failed to load last ledger sequence")
	} else if ok {
		s.lastLedger.Set(seq)
		s.metrics.SetLastLedgerSequence(s.labels, seq)
	}

	s.queue.Start(ctx)
	s.timer.Start(ctx, s)
}

// Stop implements Syncer. It forces NotSynced(ErrNotStarted), stops the
// timer and waits for a running cycle to return.
func (s *syncer) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.mu.Unlock()

	s.timer.Stop()
	s.queue.Stop()
	s.setState(models.NotSynced{Err: models.ErrNotStarted})

	s.mu.Lock()
	s.ctx = nil
	s.mu.Unlock()
}

func (s *syncer) Refresh() {
	s.mu.Lock()
	started, ctx := s.started, s.ctx
	s.mu.Unlock()

	if !started {
		return
	}

	switch s.timer.State().(type) {
	case TimerReady:
		s.OnTick()
	default:
		s.timer.Start(ctx, s)
	}
}

func (s *syncer) SyncState() models.SyncState {
	return s.state.Get()
}

func (s *syncer) SubscribeSyncState() (<-chan models.SyncState, func()) {
	return s.state.Subscribe()
}

func (s *syncer) LastLedgerSequence() uint64 {
	return s.lastLedger.Get()
}

func (s *syncer) SubscribeLastLedgerSequence() (<-chan uint64, func()) {
	return s.lastLedger.Subscribe()
}

// OnTimerStateChanged implements TimerListener.
func (s *syncer) OnTimerStateChanged(state TimerState) {
	switch st := state.(type) {
	case TimerReady:
		s.metrics.SetConnected(s.labels, true)
		s.setState(models.Syncing{})
	case TimerNotReady:
		s.metrics.SetConnected(s.labels, false)
		s.setState(models.NotSynced{Err: st.Err})
	}
}

// OnTick implements TimerListener. A tick that arrives while a cycle is
// already queued is coalesced into it.
func (s *syncer) OnTick() {
	s.queue.Submit(s.cycle)
}

func (s *syncer) cycle(ctx context.Context) {
	cycleID := s.uuid.Generate()
	log := s.logger.WithField("cycle_id", cycleID)
	ctx = log.WithContext(context.WithValue(ctx, utils.CycleIDCtxKey, cycleID))

	started := time.Now()
	result, err := s.sync(ctx)
	if err != nil {
		if ctx.Err() != nil {
			log.Debug().Str("func", "syncer.cycle").Msg("cycle cancelled")
			return
		}
		log.Err(err).Str("func", "syncer.cycle").Msg("sync cycle failed")
		s.metrics.RecordSyncCycle(s.labels, metrics.ResultFailed, time.Since(started))
		s.setState(models.NotSynced{Err: err})
		return
	}

	s.metrics.RecordSyncCycle(s.labels, result, time.Since(started))
}

// sync runs one cycle. The ledger sequence is stored only after every data
// write succeeded, so a failed cycle is retried on the next tick.
func (s *syncer) sync(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	remote, err := s.client.GetLastLedgerSequence(ctx)
	if err != nil {
		return "", fmt.Errorf("get last ledger sequence: %w", err)
	}
	if remote == s.lastLedger.Get() {
		return metrics.ResultIdle, nil
	}

	if _, err = s.client.GetBalance(ctx); err != nil {
		return "", fmt.Errorf("get balance: %w", err)
	}

	transactions, err := s.client.GetTransactions(ctx, s.limit)
	if err != nil {
		return "", fmt.Errorf("get transactions: %w", err)
	}

	ops, err := s.client.GetOperations(ctx, s.limit)
	if err != nil {
		return "", fmt.Errorf("get operations: %w", err)
	}

	fresh, err := s.unknownHashes(ctx, transactions)
	if err != nil {
		return "", err
	}

	if err = s.storage.SaveTransactionsIfNotExists(ctx, transactions); err != nil {
		return "", fmt.Errorf("save transactions: %w", err)
	}
	if err = s.storage.SaveOperationsIfNotExists(ctx, ops); err != nil {
		return "", fmt.Errorf("save operations: %w", err)
	}

	if err = s.transactions.Process(ctx); err != nil {
		return "", fmt.Errorf("process transactions: %w", err)
	}

	if err = s.storage.SaveLastLedgerSequence(ctx, remote); err != nil {
		return "", fmt.Errorf("save last ledger sequence: %w", err)
	}
	if remote > s.lastLedger.Get() {
		s.lastLedger.Set(remote)
		s.metrics.SetLastLedgerSequence(s.labels, remote)
	}
	s.metrics.SetTransactionsTracked(s.labels, len(s.transactions.FullTransactions()))

	s.setState(models.Synced{})

	log.Info().Str("func", "syncer.sync").
		Uint64("ledger", remote).
		Int("fetched", len(transactions)).
		Int("new", len(fresh)).
		Msg("synced")

	s.publishTransactions(ctx, fresh)
	return metrics.ResultSynced, nil
}

func (s *syncer) unknownHashes(ctx context.Context, transactions []models.Transaction) ([]string, error) {
	if len(transactions) == 0 {
		return nil, nil
	}

	hashes := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		hashes = append(hashes, tx.Hash)
	}

	known, err := s.storage.GetTransactionsByHashes(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("load known transactions: %w", err)
	}

	seen := make(map[string]struct{}, len(known))
	for _, tx := range known {
		seen[tx.Hash] = struct{}{}
	}

	var fresh []string
	for _, h := range hashes {
		if _, ok := seen[h]; !ok {
			fresh = append(fresh, h)
		}
	}
	return fresh, nil
}

func (s *syncer) setState(state models.SyncState) {
	if !s.state.Set(state) {
		return
	}

	s.logger.Info().Str("func", "syncer.setState").Str("state", state.String()).Msg("sync state changed")

	event := events.SyncStateEvent{
		Network:            s.network.String(),
		WalletID:           s.walletID,
		AccountID:          s.client.AccountID(),
		State:              models.SyncStateName(state),
		LastLedgerSequence: s.lastLedger.Get(),
		Time:               time.Now().UTC(),
	}
	if ns, ok := state.(models.NotSynced); ok && ns.Err != nil {
		event.Error = ns.Err.Error()
	}

	if err := s.publisher.PublishSyncState(context.Background(), event); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncer.setState").Msg("failed to publish sync state")
	}
}

func (s *syncer) publishTransactions(ctx context.Context, hashes []string) {
	if len(hashes) == 0 {
		return
	}

	full, err := s.transactions.GetFullTransactionsByHashes(ctx, hashes)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "syncer.publishTransactions").Msg("failed to load new transactions")
		return
	}

	event := events.TransactionsEvent{
		Network:      s.network.String(),
		WalletID:     s.walletID,
		AccountID:    s.client.AccountID(),
		Transactions: full,
		Time:         time.Now().UTC(),
	}
	if err = s.publisher.PublishTransactions(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "syncer.publishTransactions").Msg("failed to publish transactions")
	}
}
