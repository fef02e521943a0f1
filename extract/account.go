package extract

import (
	"context"
	"fmt"

	"github.com/chinmay1088/risescan/api"
)

// default caps
const (
	DefaultMaxTransactions = 100
	DefaultMaxTransfers    = 1000
	DefaultMaxHolders      = 100
)

// AccountOptions selects what ExtractAccount collects besides the balance.
type AccountOptions struct {
	Address         string
	Transactions    bool
	Tokens          bool
	MaxTransactions int
}

// ExtractAccount saves the balance of an address and optionally its most
// recent transactions and its token holdings, under account_<addr>.
func (e *Extractor) ExtractAccount(ctx context.Context, opts AccountOptions) (*Result, error) {
	if opts.MaxTransactions <= 0 {
		opts.MaxTransactions = DefaultMaxTransactions
	}

	ts := e.timestamp()
	subdir := "account_" + short(opts.Address)
	result := newResult(opts.Address, ts)
	e.logger.Info("extracting account data", "address", opts.Address)

	balance, err := e.client.GetBalance(ctx, opts.Address)
	if err != nil {
		return result, fmt.Errorf("failed to get balance: %w", err)
	}
	location, err := e.saveJSON(ctx, JSONPath(subdir, ts, "balance"), balance)
	if err != nil {
		return result, err
	}
	result.record("balance", location)

	if opts.Transactions {
		txs, err := Paginate(ctx, func(ctx context.Context, page, offset int) (*api.Response, error) {
			return e.client.GetTransactions(ctx, api.TxListParams{
				Address: opts.Address,
				Page:    page,
				Offset:  offset,
				Sort:    api.SortDesc,
			})
		}, PageLimits{MaxItems: opts.MaxTransactions}, e.logger)
		if err != nil {
			return result, fmt.Errorf("failed to get transactions: %w", err)
		}
		result.Items += len(txs)

		location, err := e.saveJSON(ctx, JSONPath(subdir, ts, "transactions"), txs)
		if err != nil {
			return result, err
		}
		result.record("transactions_json", location)

		location, err = e.saveCSV(ctx, CSVPath(subdir, ts, "transactions"), DatasetTransactions, txs)
		if err != nil {
			return result, err
		}
		result.record("transactions_csv", location)
	}

	if opts.Tokens {
		resp, err := e.client.GetTokenList(ctx, opts.Address)
		if err != nil {
			return result, fmt.Errorf("failed to get token list: %w", err)
		}
		if resp.OK() {
			tokens, err := resp.Records()
			if err != nil {
				return result, err
			}
			result.Items += len(tokens)

			location, err := e.saveJSON(ctx, JSONPath(subdir, ts, "tokens"), tokens)
			if err != nil {
				return result, err
			}
			result.record("tokens_json", location)

			location, err = e.saveCSV(ctx, CSVPath(subdir, ts, "tokens"), DatasetTokens, tokens)
			if err != nil {
				return result, err
			}
			result.record("tokens_csv", location)
		}
	}

	e.logger.Info("account data extraction complete", "address", opts.Address, "files", len(result.Files))
	return result, nil
}

// ExtractTokenTransfers saves up to max token transfers of an address, newest
// first, optionally limited to one token contract.
func (e *Extractor) ExtractTokenTransfers(ctx context.Context, address, contract string, max int) (*Result, error) {
	if max <= 0 {
		max = DefaultMaxTransfers
	}

	ts := e.timestamp()
	result := newResult(address, ts)
	e.logger.Info("extracting token transfers", "address", address, "contract", contract)

	transfers, err := Paginate(ctx, func(ctx context.Context, page, offset int) (*api.Response, error) {
		return e.client.GetTokenTransfers(ctx, api.TokenTransferParams{
			Address:         address,
			ContractAddress: contract,
			Page:            page,
			Offset:          offset,
			Sort:            api.SortDesc,
		})
	}, PageLimits{MaxItems: max}, e.logger)
	if err != nil {
		return result, fmt.Errorf("failed to get token transfers: %w", err)
	}
	result.Items = len(transfers)

	if len(transfers) > 0 {
		name := "token_transfers_" + short(address)

		location, err := e.saveJSON(ctx, JSONPath("token_transfers", ts, name), transfers)
		if err != nil {
			return result, err
		}
		result.record("json", location)

		location, err = e.saveCSV(ctx, CSVPath("token_transfers", ts, name), DatasetTokenTransfers, transfers)
		if err != nil {
			return result, err
		}
		result.record("csv", location)
	}

	e.logger.Info("extracted token transfers", "count", len(transfers))
	return result, nil
}

// ExtractInternalTransactions saves up to max internal transactions (value
// transfers made by contract execution) of an address, oldest first.
func (e *Extractor) ExtractInternalTransactions(ctx context.Context, address string, max int) (*Result, error) {
	if max <= 0 {
		max = DefaultMaxTransactions
	}

	ts := e.timestamp()
	subdir := "account_" + short(address)
	result := newResult(address, ts)
	e.logger.Info("extracting internal transactions", "address", address)

	txs, err := Paginate(ctx, func(ctx context.Context, page, offset int) (*api.Response, error) {
		return e.client.GetInternalTransactions(ctx, api.InternalTxParams{
			Address: address,
			Page:    page,
			Offset:  offset,
		})
	}, PageLimits{MaxItems: max}, e.logger)
	if err != nil {
		return result, fmt.Errorf("failed to get internal transactions: %w", err)
	}
	result.Items = len(txs)

	if len(txs) > 0 {
		location, err := e.saveJSON(ctx, JSONPath(subdir, ts, "internal_transactions"), txs)
		if err != nil {
			return result, err
		}
		result.record("json", location)

		location, err = e.saveCSV(ctx, CSVPath(subdir, ts, "internal_transactions"), DatasetInternalTransactions, txs)
		if err != nil {
			return result, err
		}
		result.record("csv", location)
	}

	e.logger.Info("extracted internal transactions", "count", len(txs))
	return result, nil
}
