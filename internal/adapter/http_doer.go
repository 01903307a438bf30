package adapter

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/operations"
	"github.com/stellar/go/txnbuild"
)

// HorizonClient is the subset of horizonclient.ClientInterface the ledger
// client needs. *horizonclient.Client and *horizonclient.MockClient satisfy it.
type HorizonClient interface {
	AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error)
	Ledgers(request horizonclient.LedgerRequest) (hProtocol.LedgersPage, error)
	Transactions(request horizonclient.TransactionRequest) (hProtocol.TransactionsPage, error)
	Operations(request horizonclient.OperationRequest) (operations.OperationsPage, error)
	SubmitTransactionWithOptions(transaction *txnbuild.Transaction, opts horizonclient.SubmitTxOpts) (hProtocol.Transaction, error)
}

// HorizonClientFactory returns a client whose requests are bound to ctx.
type HorizonClientFactory func(ctx context.Context) HorizonClient

// contextDoer implements horizonclient.HTTP and attaches ctx to every
// request, so cancelling ctx aborts the call in flight.
type contextDoer struct {
	ctx    context.Context
	client *http.Client
}

func (d *contextDoer) Do(req *http.Request) (*http.Response, error) {
	return d.client.Do(req.WithContext(d.ctx))
}

func (d *contextDoer) Get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(d.ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return d.client.Do(req)
}

func (d *contextDoer) PostForm(rawURL string, data url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(d.ctx, http.MethodPost, rawURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return d.client.Do(req)
}

// NewHorizonClientFactory returns a factory of Horizon clients that share one
// connection pool and bind each request to the caller's context.
func NewHorizonClientFactory(horizonURL string, timeout time.Duration) HorizonClientFactory {
	httpClient := &http.Client{Timeout: timeout}
	return func(ctx context.Context) HorizonClient {
		return &horizonclient.Client{
			HorizonURL: horizonURL,
			HTTP:       &contextDoer{ctx: ctx, client: httpClient},
			AppName:    "go-stellar-kit",
		}
	}
}
