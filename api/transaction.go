package api

import (
	"context"
	"net/url"
)

// GetTransactionInfo fetches a transaction with its logs.
func (c *Client) GetTransactionInfo(ctx context.Context, txHash string) (*Response, error) {
	return c.txAction(ctx, "gettxinfo", txHash)
}

// GetTransactionReceiptStatus fetches the receipt status (pass/fail) of a
// transaction.
func (c *Client) GetTransactionReceiptStatus(ctx context.Context, txHash string) (*Response, error) {
	return c.txAction(ctx, "gettxreceiptstatus", txHash)
}

// GetTransactionStatus fetches the error flag and description of a
// transaction.
func (c *Client) GetTransactionStatus(ctx context.Context, txHash string) (*Response, error) {
	return c.txAction(ctx, "getstatus", txHash)
}

func (c *Client) txAction(ctx context.Context, action, txHash string) (*Response, error) {
	if err := validateTxHash("txhash", txHash); err != nil {
		return nil, err
	}
	return c.get(ctx, "transaction", action, url.Values{"txhash": {txHash}})
}
