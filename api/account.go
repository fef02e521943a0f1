package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// TxListParams selects a page of txlist results.
type TxListParams struct {
	Address    string
	StartBlock *uint64
	EndBlock   *uint64
	Page       int
	Offset     int
	Sort       Sort
}

// InternalTxParams selects internal transactions by address or by hash.
type InternalTxParams struct {
	Address    string
	TxHash     string
	StartBlock *uint64
	EndBlock   *uint64
	Page       int
	Offset     int
	Sort       Sort
}

// TokenTransferParams selects a page of tokentx results. ContractAddress is
// an optional filter.
type TokenTransferParams struct {
	Address         string
	ContractAddress string
	StartBlock      *uint64
	EndBlock        *uint64
	Page            int
	Offset          int
	Sort            Sort
}

// Uint64 returns a pointer to v, for the optional block bounds.
func Uint64(v uint64) *uint64 {
	return &v
}

// GetBalance fetches the native balance of an address, in wei.
func (c *Client) GetBalance(ctx context.Context, address string) (*Response, error) {
	if err := validateAddress("address", address); err != nil {
		return nil, err
	}
	return c.get(ctx, "account", "balance", url.Values{"address": {address}})
}

// GetBalanceMulti fetches the balances of up to MaxBalanceMultiAddresses
// addresses in one call.
func (c *Client) GetBalanceMulti(ctx context.Context, addresses []string) (*Response, error) {
	if len(addresses) == 0 {
		return nil, invalid("address", "at least one address is required")
	}
	if len(addresses) > MaxBalanceMultiAddresses {
		return nil, invalid("address", "maximum %d addresses allowed, got %d", MaxBalanceMultiAddresses, len(addresses))
	}
	for i, address := range addresses {
		if err := validateAddress(fmt.Sprintf("address[%d]", i), address); err != nil {
			return nil, err
		}
	}
	return c.get(ctx, "account", "balancemulti", url.Values{"address": {strings.Join(addresses, ",")}})
}

// GetTransactions fetches a page of normal transactions for an address.
func (c *Client) GetTransactions(ctx context.Context, p TxListParams) (*Response, error) {
	if err := validateAddress("address", p.Address); err != nil {
		return nil, err
	}
	params, err := listParams(p.Page, p.Offset, p.Sort, SortDesc, p.StartBlock, p.EndBlock)
	if err != nil {
		return nil, err
	}
	params.Set("address", p.Address)
	return c.get(ctx, "account", "txlist", params)
}

// GetInternalTransactions fetches internal transactions for an address or a
// single transaction hash. One of the two is required.
func (c *Client) GetInternalTransactions(ctx context.Context, p InternalTxParams) (*Response, error) {
	if p.Address == "" && p.TxHash == "" {
		return nil, invalid("address", "either address or txhash must be provided")
	}
	if p.Address != "" {
		if err := validateAddress("address", p.Address); err != nil {
			return nil, err
		}
	}
	if p.TxHash != "" {
		if err := validateTxHash("txhash", p.TxHash); err != nil {
			return nil, err
		}
	}
	params, err := listParams(p.Page, p.Offset, p.Sort, SortAsc, p.StartBlock, p.EndBlock)
	if err != nil {
		return nil, err
	}
	if p.Address != "" {
		params.Set("address", p.Address)
	}
	if p.TxHash != "" {
		params.Set("txhash", p.TxHash)
	}
	return c.get(ctx, "account", "txlistinternal", params)
}

// GetTokenTransfers fetches a page of token transfer events for an address.
func (c *Client) GetTokenTransfers(ctx context.Context, p TokenTransferParams) (*Response, error) {
	if err := validateAddress("address", p.Address); err != nil {
		return nil, err
	}
	if p.ContractAddress != "" {
		if err := validateAddress("contractaddress", p.ContractAddress); err != nil {
			return nil, err
		}
	}
	params, err := listParams(p.Page, p.Offset, p.Sort, SortAsc, p.StartBlock, p.EndBlock)
	if err != nil {
		return nil, err
	}
	params.Set("address", p.Address)
	if p.ContractAddress != "" {
		params.Set("contractaddress", p.ContractAddress)
	}
	return c.get(ctx, "account", "tokentx", params)
}

// GetTokenBalance fetches the balance an address holds of one token.
func (c *Client) GetTokenBalance(ctx context.Context, contractAddress, address string) (*Response, error) {
	if err := validateAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	if err := validateAddress("address", address); err != nil {
		return nil, err
	}
	return c.get(ctx, "account", "tokenbalance", url.Values{
		"contractaddress": {contractAddress},
		"address":         {address},
	})
}

// GetTokenList fetches every token an address holds.
func (c *Client) GetTokenList(ctx context.Context, address string) (*Response, error) {
	if err := validateAddress("address", address); err != nil {
		return nil, err
	}
	return c.get(ctx, "account", "tokenlist", url.Values{"address": {address}})
}

// listParams builds the page/offset/sort/startblock/endblock parameters shared
// by the list actions. Zero page and offset default to 1 and 10.
func listParams(page, offset int, sort, defaultSort Sort, startBlock, endBlock *uint64) (url.Values, error) {
	if page == 0 {
		page = 1
	}
	if offset == 0 {
		offset = 10
	}
	if sort == "" {
		sort = defaultSort
	}
	if err := validatePaging(page, offset); err != nil {
		return nil, err
	}
	if err := validateSort(sort); err != nil {
		return nil, err
	}
	if err := validateBlockRange("startblock", startBlock, "endblock", endBlock); err != nil {
		return nil, err
	}

	params := url.Values{
		"page":   {strconv.Itoa(page)},
		"offset": {strconv.Itoa(offset)},
		"sort":   {string(sort)},
	}
	if startBlock != nil {
		params.Set("startblock", strconv.FormatUint(*startBlock, 10))
	}
	if endBlock != nil {
		params.Set("endblock", strconv.FormatUint(*endBlock, 10))
	}
	return params, nil
}
