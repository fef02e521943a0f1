package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

func TestGetLogs_Params(t *testing.T) {
	explorer := newFakeExplorer(t, fakeResponse{http.StatusOK, `{"status":"1","message":"OK","result":[
		{"address":"0x95426f2bc716022fcf1def006dbc4bb81f5b5164","topics":["` + transferTopic + `"],"data":"0x","blockNumber":"0x1f4","timeStamp":"0x65a0b8c0","logIndex":"0x0","transactionHash":"0x01"}
	]}`})
	client := newTestClient(t, explorer.server.URL, 1, nil)

	resp, err := client.GetLogs(context.Background(), LogsParams{
		FromBlock:  100,
		ToBlock:    600,
		Address:    testAddress,
		Topic0:     transferTopic,
		Topic1:     "0x000000000000000000000000" + testAddress[2:],
		Topic01Opr: TopicAnd,
	})
	require.NoError(t, err)

	q := explorer.query(t)
	assert.Equal(t, "logs", q.Get("module"))
	assert.Equal(t, "getLogs", q.Get("action"))
	assert.Equal(t, "100", q.Get("fromBlock"))
	assert.Equal(t, "600", q.Get("toBlock"))
	assert.Equal(t, transferTopic, q.Get("topic0"))
	assert.Equal(t, "and", q.Get("topic0_1_opr"))
	assert.Empty(t, q.Get("topic2"))
	assert.Empty(t, q.Get("topic1_2_opr"))

	var logs []Log
	require.NoError(t, resp.Decode(&logs))
	require.Len(t, logs, 1)
	block, err := logs[0].Block()
	require.NoError(t, err)
	assert.Equal(t, uint64(500), block)
}

func TestGetLogs_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params LogsParams
		field  string
	}{
		{name: "inverted range", params: LogsParams{FromBlock: 10, ToBlock: 1}, field: "fromBlock"},
		{name: "bad address", params: LogsParams{ToBlock: 1, Address: "0xnope"}, field: "address"},
		{name: "short topic", params: LogsParams{ToBlock: 1, Topic2: "0xddf2"}, field: "topic2"},
		{name: "bad operator", params: LogsParams{ToBlock: 1, Topic0: transferTopic, Topic1: transferTopic, Topic01Opr: "xor"}, field: "topic0_1_opr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := newFakeExplorer(t, okBalance)
			client := newTestClient(t, explorer.server.URL, 1, nil)

			_, err := client.GetLogs(context.Background(), tt.params)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, int32(0), explorer.hits.Load())
		})
	}
}
