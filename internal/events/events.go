// Package events publishes kit activity to NATS so other processes can follow
// a wallet without polling the local API.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/metrics"
	"github.com/MKhiriev/go-stellar-kit/models"
	"github.com/nats-io/nats.go"
)

// SubjectPrefix is the root of every subject the kit publishes on:
// stellarkit.<network>.<wallet_id>.<kind>.
const SubjectPrefix = "stellarkit"

const (
	KindSyncState    = "sync_state"
	KindTransactions = "transactions"
)

// Publisher sends kit events.
type Publisher interface {
	PublishSyncState(ctx context.Context, event SyncStateEvent) error
	PublishTransactions(ctx context.Context, event TransactionsEvent) error
	Close() error
}

// SyncStateEvent is published on every sync state transition.
type SyncStateEvent struct {
	Network            string    `json:"network"`
	WalletID           string    `json:"wallet_id"`
	AccountID          string    `json:"account_id"`
	State              string    `json:"state"`
	Error              string    `json:"error,omitempty"`
	LastLedgerSequence uint64    `json:"last_ledger_sequence"`
	Time               time.Time `json:"time"`
}

// TransactionsEvent is published after a processing pass found transactions
// that were not known before.
type TransactionsEvent struct {
	Network      string                   `json:"network"`
	WalletID     string                   `json:"wallet_id"`
	AccountID    string                   `json:"account_id"`
	Transactions []models.FullTransaction `json:"transactions"`
	Time         time.Time                `json:"time"`
}

// Subject builds the subject for one kit and event kind. Dots in the
// wallet id are replaced so they do not add subject tokens.
func Subject(network, walletID, kind string) string {
	walletID = strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_").Replace(walletID)
	return fmt.Sprintf("%s.%s.%s.%s", SubjectPrefix, strings.ToLower(network), walletID, kind)
}

// NATSPublisher publishes events with core NATS.
type NATSPublisher struct {
	nc      *nats.Conn
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewNATSPublisher connects to natsURL.
func NewNATSPublisher(natsURL string, m *metrics.Metrics, log *logger.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name("go-stellar-kit"),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Info().Str("func", "events.NewNATSPublisher").Str("url", natsURL).Msg("NATS publisher initialized")

	return &NATSPublisher{nc: nc, metrics: m, logger: log}, nil
}

func (p *NATSPublisher) PublishSyncState(ctx context.Context, event SyncStateEvent) error {
	return p.publish(ctx, Subject(event.Network, event.WalletID, KindSyncState), KindSyncState, event)
}

func (p *NATSPublisher) PublishTransactions(ctx context.Context, event TransactionsEvent) error {
	return p.publish(ctx, Subject(event.Network, event.WalletID, KindTransactions), KindTransactions, event)
}

func (p *NATSPublisher) publish(ctx context.Context, subject, kind string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.metrics.RecordEventPublished(kind, metrics.ResultFailed)
		return fmt.Errorf("failed to marshal %s event: %w", kind, err)
	}

	if err = p.nc.Publish(subject, data); err != nil {
		p.metrics.RecordEventPublished(kind, metrics.ResultFailed)
		return fmt.Errorf("failed to publish %s event: %w", kind, err)
	}

	p.metrics.RecordEventPublished(kind, metrics.ResultSuccess)
	p.logger.Debug().Str("func", "NATSPublisher.publish").Str("subject", subject).Msg("published event")
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
		return err
	}
	return nil
}

// NopPublisher drops every event. It is used when no NATS URL is configured.
type NopPublisher struct{}

func (NopPublisher) PublishSyncState(context.Context, SyncStateEvent) error       { return nil }
func (NopPublisher) PublishTransactions(context.Context, TransactionsEvent) error { return nil }
func (NopPublisher) Close() error                                                 { return nil }
