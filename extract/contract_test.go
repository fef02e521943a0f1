package extract

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const erc20ABI = `[{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}]`

func sourceHandler(source, abi string) actionHandler {
	return func(url.Values) (int, string) {
		return ok([]map[string]any{{
			"SourceCode":      source,
			"ABI":             abi,
			"ContractName":    "Token",
			"CompilerVersion": "v0.8.20+commit.a1b79de6",
		}})
	}
}

func TestExtractContract(t *testing.T) {
	_, client := newExplorerServer(t, map[string]actionHandler{
		"getsourcecode": sourceHandler("contract Token {}", erc20ABI),
	})
	sink := newMemSink()

	result, err := newTestExtractor(client, sink).ExtractContract(context.Background(), testContract)
	require.NoError(t, err)

	dir := "contract_0x00000000"
	assert.Equal(t, []string{
		dir + "/" + testStamp + "_abi.json",
		dir + "/" + testStamp + "_source.sol",
		"json/" + dir + "/" + testStamp + "_contract_full.json",
	}, sink.names())
	assert.Len(t, result.Files, 3)
	assert.Equal(t, "contract Token {}", string(sink.get(t, dir+"/"+testStamp+"_source.sol")))

	var abi []map[string]any
	require.NoError(t, json.Unmarshal(sink.get(t, dir+"/"+testStamp+"_abi.json"), &abi))
	assert.Len(t, abi, 2)

	var full map[string]any
	require.NoError(t, json.Unmarshal(sink.get(t, "json/"+dir+"/"+testStamp+"_contract_full.json"), &full))
	assert.Equal(t, "Token", full["ContractName"])
}

func TestExtractContract_BadABISkipsABIFile(t *testing.T) {
	_, client := newExplorerServer(t, map[string]actionHandler{
		"getsourcecode": sourceHandler("contract Token {}", "{not json"),
	})
	sink := newMemSink()

	result, err := newTestExtractor(client, sink).ExtractContract(context.Background(), testContract)
	require.NoError(t, err)

	assert.Contains(t, result.Files, "source_code")
	assert.NotContains(t, result.Files, "abi")
}

func TestExtractContract_Unverified(t *testing.T) {
	_, client := newExplorerServer(t, map[string]actionHandler{
		"getsourcecode": sourceHandler("", "Contract source code not verified"),
	})
	sink := newMemSink()

	result, err := newTestExtractor(client, sink).ExtractContract(context.Background(), testContract)
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Empty(t, sink.names())
}
