package extract

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/risescan/api"
)

const transferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

func TestEventTopic(t *testing.T) {
	assert.Equal(t, transferTopic, EventTopic("Transfer(address,address,uint256)"))
	assert.Equal(t, transferTopic, EventTopic("Transfer(address, address, uint256)"))
}

func TestLogsOptions_Params(t *testing.T) {
	topic1 := "0x000000000000000000000000" + testAddress[2:]

	params, err := LogsOptions{
		FromBlock: 1,
		ToBlock:   2,
		Event:     "Transfer(address,address,uint256)",
		Topics:    [4]string{"", topic1},
	}.params()
	require.NoError(t, err)

	assert.Equal(t, transferTopic, params.Topic0)
	assert.Equal(t, topic1, params.Topic1)
	assert.Equal(t, api.TopicAnd, params.Topic01Opr)
	assert.Empty(t, params.Topic02Opr)
	assert.Empty(t, params.Topic12Opr)

	_, err = LogsOptions{Event: "Transfer(address,address,uint256)", Topics: [4]string{transferTopic}}.params()
	var vErr *api.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestExtractLogs(t *testing.T) {
	var query url.Values
	_, client := newExplorerServer(t, map[string]actionHandler{
		"getLogs": func(q url.Values) (int, string) {
			query = q
			return ok([]map[string]any{{
				"address":         testContract,
				"topics":          []string{transferTopic},
				"data":            "0x",
				"blockNumber":     "0x1f4",
				"transactionHash": "0x01",
			}})
		},
	})
	sink := newMemSink()

	result, err := newTestExtractor(client, sink).ExtractLogs(context.Background(), LogsOptions{
		FromBlock: 400,
		ToBlock:   600,
		Address:   testContract,
		Event:     "Transfer(address,address,uint256)",
		Operator:  api.TopicOr,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Items)
	assert.Equal(t, transferTopic, query.Get("topic0"))
	assert.Equal(t, "400", query.Get("fromBlock"))
	assert.Empty(t, query.Get("topic0_1_opr"))

	csv := string(sink.get(t, "csv/logs/"+testStamp+"_logs_400_to_600.csv"))
	assert.Contains(t, csv, `"[""`+transferTopic+`""]"`)
}

func TestExtractLogs_NoneFound(t *testing.T) {
	_, client := newExplorerServer(t, map[string]actionHandler{
		"getLogs": func(url.Values) (int, string) {
			return http.StatusOK, `{"status":"0","message":"No logs found","result":[]}`
		},
	})
	sink := newMemSink()

	result, err := newTestExtractor(client, sink).ExtractLogs(context.Background(), LogsOptions{FromBlock: 1, ToBlock: 2})
	require.NoError(t, err)

	assert.Zero(t, result.Items)
	assert.Empty(t, sink.names())
}
