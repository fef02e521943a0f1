package api

import (
	"context"
	"net/url"
)

// GetTokenSupply fetches the total supply of a token.
func (c *Client) GetTokenSupply(ctx context.Context, contractAddress string) (*Response, error) {
	if err := validateAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	return c.get(ctx, "stats", "tokensupply", url.Values{"contractaddress": {contractAddress}})
}

// GetEthSupply fetches the total native coin supply, in wei.
func (c *Client) GetEthSupply(ctx context.Context) (*Response, error) {
	return c.get(ctx, "stats", "ethsupply", nil)
}

// GetCoinPrice fetches the latest native coin price in USD and BTC.
func (c *Client) GetCoinPrice(ctx context.Context) (*Response, error) {
	return c.get(ctx, "stats", "coinprice", nil)
}
