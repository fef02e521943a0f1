package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTxHash = "0x2f3a6d5e4c1b0a998877665544332211ffeeddccbbaa99887766554433221100"
	testToken  = "0x00000000000000000000000000000000000000aa"
)

func TestGetBlockNumberByTime(t *testing.T) {
	explorer := newFakeExplorer(t, fakeResponse{http.StatusOK, `{"status":"1","message":"OK","result":{"blockNumber":"12345"}}`})
	client := newTestClient(t, explorer.server.URL, 1, nil)

	resp, err := client.GetBlockNumberByTime(context.Background(), 1700000000, "")
	require.NoError(t, err)

	var block BlockNumber
	require.NoError(t, resp.Decode(&block))
	assert.Equal(t, "12345", block.BlockNumber)

	q := explorer.query(t)
	assert.Equal(t, "getblocknobytime", q.Get("action"))
	assert.Equal(t, "before", q.Get("closest"))
	assert.Equal(t, "1700000000", q.Get("timestamp"))

	_, err = client.GetBlockNumberByTime(context.Background(), 1700000000, "nearest")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "closest", vErr.Field)
	assert.Equal(t, int32(1), explorer.hits.Load())
}

func TestGetBlockReward(t *testing.T) {
	explorer := newFakeExplorer(t, fakeResponse{http.StatusOK, `{"status":"1","message":"OK","result":{"blockNumber":"42","blockMiner":"0x0000000000000000000000000000000000000001","blockReward":"2000000000000000000","uncles":[]}}`})
	client := newTestClient(t, explorer.server.URL, 1, nil)

	resp, err := client.GetBlockReward(context.Background(), 42)
	require.NoError(t, err)

	var reward BlockReward
	require.NoError(t, resp.Decode(&reward))
	assert.Equal(t, "2000000000000000000", reward.BlockReward)
	assert.Equal(t, "42", explorer.query(t).Get("blockno"))
}

func TestGetContractSourceCode(t *testing.T) {
	explorer := newFakeExplorer(t, fakeResponse{http.StatusOK, `{"status":"1","message":"OK","result":[{"SourceCode":"contract A {}","ABI":"[]","ContractName":"A","CompilerVersion":"v0.8.20"}]}`})
	client := newTestClient(t, explorer.server.URL, 1, nil)

	resp, err := client.GetContractSourceCode(context.Background(), testAddress)
	require.NoError(t, err)

	var sources []ContractSource
	require.NoError(t, resp.Decode(&sources))
	require.Len(t, sources, 1)
	assert.True(t, sources[0].Verified())
	assert.Equal(t, "A", sources[0].ContractName)
	assert.Equal(t, "getsourcecode", explorer.query(t).Get("action"))

	unverified := ContractSource{ABI: "Contract source code not verified"}
	assert.False(t, unverified.Verified())
}

func TestTransactionActions(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*Client) (*Response, error)
		action string
	}{
		{name: "info", call: func(c *Client) (*Response, error) { return c.GetTransactionInfo(context.Background(), testTxHash) }, action: "gettxinfo"},
		{name: "receipt", call: func(c *Client) (*Response, error) { return c.GetTransactionReceiptStatus(context.Background(), testTxHash) }, action: "gettxreceiptstatus"},
		{name: "status", call: func(c *Client) (*Response, error) { return c.GetTransactionStatus(context.Background(), testTxHash) }, action: "getstatus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := newFakeExplorer(t, fakeResponse{http.StatusOK, `{"status":"1","message":"OK","result":{"status":"1"}}`})
			client := newTestClient(t, explorer.server.URL, 1, nil)

			resp, err := tt.call(client)
			require.NoError(t, err)
			assert.True(t, resp.OK())

			q := explorer.query(t)
			assert.Equal(t, "transaction", q.Get("module"))
			assert.Equal(t, tt.action, q.Get("action"))
			assert.Equal(t, testTxHash, q.Get("txhash"))
		})
	}
}

func TestTransactionActions_RejectBadHash(t *testing.T) {
	explorer := newFakeExplorer(t, okBalance)
	client := newTestClient(t, explorer.server.URL, 1, nil)

	for _, hash := range []string{"", "0x1234", testTxHash[2:], testTxHash + "00"} {
		_, err := client.GetTransactionStatus(context.Background(), hash)
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr), "hash %q", hash)
	}
	assert.Equal(t, int32(0), explorer.hits.Load())
}

func TestGetTokenHolders(t *testing.T) {
	explorer := newFakeExplorer(t, fakeResponse{http.StatusOK, `{"status":"1","message":"OK","result":[{"address":"0x0000000000000000000000000000000000000001","value":"100"}]}`})
	client := newTestClient(t, explorer.server.URL, 1, nil)

	resp, err := client.GetTokenHolders(context.Background(), testToken, 3, 0)
	require.NoError(t, err)

	var holders []TokenHolder
	require.NoError(t, resp.Decode(&holders))
	assert.Equal(t, "100", holders[0].Value)

	q := explorer.query(t)
	assert.Equal(t, "token", q.Get("module"))
	assert.Equal(t, "getTokenHolders", q.Get("action"))
	assert.Equal(t, "3", q.Get("page"))
	assert.Equal(t, "10", q.Get("offset"))
}

func TestStatsActions(t *testing.T) {
	explorer := newFakeExplorer(t, fakeResponse{http.StatusOK, `{"status":"1","message":"OK","result":"1000000000000000000000000"}`})
	client := newTestClient(t, explorer.server.URL, 1, nil)

	resp, err := client.GetEthSupply(context.Background())
	require.NoError(t, err)
	wei, err := resp.Wei()
	require.NoError(t, err)
	assert.Equal(t, "1000000", WeiToEther(wei).String())
	assert.Equal(t, "ethsupply", explorer.query(t).Get("action"))

	_, err = client.GetTokenSupply(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, testToken, explorer.query(t).Get("contractaddress"))
}
