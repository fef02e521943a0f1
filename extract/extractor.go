// Package extract pulls datasets from an explorer API and stores them as
// JSON and CSV files.
package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/chinmay1088/risescan/api"
)

// Explorer is the subset of *api.Client the extractor needs.
type Explorer interface {
	GetBalance(ctx context.Context, address string) (*api.Response, error)
	GetTransactions(ctx context.Context, p api.TxListParams) (*api.Response, error)
	GetInternalTransactions(ctx context.Context, p api.InternalTxParams) (*api.Response, error)
	GetTokenList(ctx context.Context, address string) (*api.Response, error)
	GetTokenTransfers(ctx context.Context, p api.TokenTransferParams) (*api.Response, error)
	GetContractSourceCode(ctx context.Context, address string) (*api.Response, error)
	GetBlockReward(ctx context.Context, blockNo uint64) (*api.Response, error)
	GetTokenInfo(ctx context.Context, contractAddress string) (*api.Response, error)
	GetTokenHolders(ctx context.Context, contractAddress string, page, offset int) (*api.Response, error)
	GetLogs(ctx context.Context, p api.LogsParams) (*api.Response, error)
	GetEthSupply(ctx context.Context) (*api.Response, error)
	GetCoinPrice(ctx context.Context) (*api.Response, error)
	Close() error
}

// Compile-time check that the API client can back an Extractor
var _ Explorer = (*api.Client)(nil)

// Config configures an Extractor.
type Config struct {
	// Sink receives every file written. Required.
	Sink Sink

	Logger *slog.Logger

	// Now stamps file names; defaults to time.Now.
	Now func() time.Time
}

// Extractor runs extractions against one explorer and writes the results to
// one sink.
type Extractor struct {
	client Explorer
	sink   Sink
	logger *slog.Logger
	now    func() time.Time
}

// Result lists what an extraction produced. Files maps a short name such as
// "transactions_csv" to the location the sink reported for it.
type Result struct {
	Label     string
	Timestamp string
	Files     map[string]string
	Items     int
}

func newResult(label, timestamp string) *Result {
	return &Result{Label: label, Timestamp: timestamp, Files: make(map[string]string)}
}

// New creates an Extractor.
func New(client Explorer, config Config) *Extractor {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Extractor{
		client: client,
		sink:   config.Sink,
		logger: config.Logger.With("component", "extractor"),
		now:    config.Now,
	}
}

// Close releases the underlying client.
func (e *Extractor) Close() error {
	return e.client.Close()
}

func (e *Extractor) timestamp() string {
	return e.now().Format(TimestampLayout)
}

// short returns the first ten characters of an address, used in directory
// and file names.
func short(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:10]
}
