package api

import (
	"context"
	"net/url"
)

// GetContractABI fetches the ABI of a verified contract. The result is the ABI
// JSON encoded as a string.
func (c *Client) GetContractABI(ctx context.Context, address string) (*Response, error) {
	if err := validateAddress("address", address); err != nil {
		return nil, err
	}
	return c.get(ctx, "contract", "getabi", url.Values{"address": {address}})
}

// GetContractSourceCode fetches source code and compiler metadata of a
// verified contract. The result is a list of ContractSource.
func (c *Client) GetContractSourceCode(ctx context.Context, address string) (*Response, error) {
	if err := validateAddress("address", address); err != nil {
		return nil, err
	}
	return c.get(ctx, "contract", "getsourcecode", url.Values{"address": {address}})
}
