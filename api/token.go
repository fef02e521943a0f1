package api

import (
	"context"
	"net/url"
	"strconv"
)

// GetTokenInfo fetches ERC-20 or ERC-721 token metadata.
func (c *Client) GetTokenInfo(ctx context.Context, contractAddress string) (*Response, error) {
	if err := validateAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	return c.get(ctx, "token", "getToken", url.Values{"contractaddress": {contractAddress}})
}

// GetTokenHolders fetches a page of holders of a token.
func (c *Client) GetTokenHolders(ctx context.Context, contractAddress string, page, offset int) (*Response, error) {
	if err := validateAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	if page == 0 {
		page = 1
	}
	if offset == 0 {
		offset = 10
	}
	if err := validatePaging(page, offset); err != nil {
		return nil, err
	}
	return c.get(ctx, "token", "getTokenHolders", url.Values{
		"contractaddress": {contractAddress},
		"page":            {strconv.Itoa(page)},
		"offset":          {strconv.Itoa(offset)},
	})
}
