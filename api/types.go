package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// envelope status values
const (
	StatusOK    = "1"
	StatusNotOK = "0"
)

// Response is the {status, message, result} envelope every explorer action
// returns. Result is kept raw; use Decode or Records to read it.
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`

	module string
	action string
}

// OK reports whether the explorer accepted the request (status "1").
func (r *Response) OK() bool {
	return r.Status == StatusOK
}

// Err returns an *APIError when the envelope carries status "0", nil otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return &APIError{
		Module:  r.module,
		Action:  r.action,
		Message: r.Message,
		Result:  r.ResultString(),
	}
}

// Decode unmarshals the result into v. Numbers are kept as json.Number when v
// is an interface-typed destination.
func (r *Response) Decode(v any) error {
	if len(r.Result) == 0 {
		return fmt.Errorf("%s/%s: empty result", r.module, r.action)
	}
	dec := json.NewDecoder(bytes.NewReader(r.Result))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s/%s result: %w", r.module, r.action, err)
	}
	return nil
}

// Records decodes a list result into generic records. A null or missing
// result yields an empty list.
func (r *Response) Records() ([]map[string]any, error) {
	if r.IsNull() {
		return []map[string]any{}, nil
	}
	var records []map[string]any
	if err := r.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// Object decodes an object result into a generic map.
func (r *Response) Object() (map[string]any, error) {
	if r.IsNull() {
		return map[string]any{}, nil
	}
	var obj map[string]any
	if err := r.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// IsNull reports whether result is absent or JSON null.
func (r *Response) IsNull() bool {
	trimmed := bytes.TrimSpace(r.Result)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// ResultString returns the result as text: unquoted when it is a JSON string,
// the raw JSON otherwise.
func (r *Response) ResultString() string {
	if r.IsNull() {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Result, &s); err == nil {
		return s
	}
	return string(r.Result)
}

// Wei parses a string result holding a base-10 integer amount of wei.
func (r *Response) Wei() (*big.Int, error) {
	s := r.ResultString()
	wei, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s/%s: result %q is not a wei amount", r.module, r.action, s)
	}
	return wei, nil
}

// Module and Action identify the request that produced the envelope.
func (r *Response) Module() string { return r.module }
func (r *Response) Action() string { return r.action }

// AddressBalance is one entry of a balancemulti result.
type AddressBalance struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
	Stale   bool   `json:"stale,omitempty"`
}

// Transaction is a txlist entry. Numeric fields are decimal strings.
type Transaction struct {
	BlockNumber       string `json:"blockNumber"`
	TimeStamp         string `json:"timeStamp"`
	Hash              string `json:"hash"`
	Nonce             string `json:"nonce"`
	BlockHash         string `json:"blockHash"`
	TransactionIndex  string `json:"transactionIndex"`
	From              string `json:"from"`
	To                string `json:"to"`
	Value             string `json:"value"`
	Gas               string `json:"gas"`
	GasPrice          string `json:"gasPrice"`
	IsError           string `json:"isError"`
	TxReceiptStatus   string `json:"txreceipt_status"`
	Input             string `json:"input"`
	ContractAddress   string `json:"contractAddress"`
	CumulativeGasUsed string `json:"cumulativeGasUsed"`
	GasUsed           string `json:"gasUsed"`
	Confirmations     string `json:"confirmations"`
	MethodID          string `json:"methodId,omitempty"`
	FunctionName      string `json:"functionName,omitempty"`
}

// InternalTransaction is a txlistinternal entry.
type InternalTransaction struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	ContractAddress string `json:"contractAddress"`
	Input           string `json:"input"`
	Type            string `json:"type"`
	Gas             string `json:"gas"`
	GasUsed         string `json:"gasUsed"`
	Index           string `json:"index,omitempty"`
	IsError         string `json:"isError"`
	ErrCode         string `json:"errCode"`
}

// TokenTransfer is a tokentx entry.
type TokenTransfer struct {
	BlockNumber       string `json:"blockNumber"`
	TimeStamp         string `json:"timeStamp"`
	Hash              string `json:"hash"`
	Nonce             string `json:"nonce"`
	BlockHash         string `json:"blockHash"`
	From              string `json:"from"`
	ContractAddress   string `json:"contractAddress"`
	To                string `json:"to"`
	Value             string `json:"value"`
	TokenID           string `json:"tokenID,omitempty"`
	TokenName         string `json:"tokenName"`
	TokenSymbol       string `json:"tokenSymbol"`
	TokenDecimal      string `json:"tokenDecimal"`
	TransactionIndex  string `json:"transactionIndex"`
	Gas               string `json:"gas"`
	GasPrice          string `json:"gasPrice"`
	GasUsed           string `json:"gasUsed"`
	CumulativeGasUsed string `json:"cumulativeGasUsed"`
	Input             string `json:"input"`
	Confirmations     string `json:"confirmations"`
	LogIndex          string `json:"logIndex"`
}

// TokenBalance is a tokenlist entry.
type TokenBalance struct {
	Balance         string `json:"balance"`
	ContractAddress string `json:"contractAddress"`
	Decimals        string `json:"decimals"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Type            string `json:"type"`
}

// TokenHolder is a getTokenHolders entry.
type TokenHolder struct {
	Address string `json:"address"`
	Value   string `json:"value"`
}

// TokenInfo is the getToken result.
type TokenInfo struct {
	CirculatingMarketCap string `json:"cirulatingMarketCap"`
	ContractAddress      string `json:"contractAddress"`
	Decimals             string `json:"decimals"`
	ExchangeRate         string `json:"exchangeRate"`
	HoldersCount         string `json:"holdersCount"`
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	TotalSupply          string `json:"totalSupply"`
	Type                 string `json:"type"`
}

// BlockReward is the getblockreward result.
type BlockReward struct {
	BlockNumber          string            `json:"blockNumber"`
	TimeStamp            string            `json:"timeStamp"`
	BlockMiner           string            `json:"blockMiner"`
	BlockReward          string            `json:"blockReward"`
	Uncles               []json.RawMessage `json:"uncles"`
	UncleInclusionReward string            `json:"uncleInclusionReward"`
}

// BlockNumber is the getblocknobytime result.
type BlockNumber struct {
	BlockNumber string `json:"blockNumber"`
}

// Log is a getLogs entry. Numeric fields are 0x-prefixed hex.
type Log struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	TimeStamp        string   `json:"timeStamp"`
	GasPrice         string   `json:"gasPrice"`
	GasUsed          string   `json:"gasUsed"`
	LogIndex         string   `json:"logIndex"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
}

// Block returns the log's block number.
func (l Log) Block() (uint64, error) {
	return parseHexInt(l.BlockNumber)
}

// Time returns the log's unix timestamp.
func (l Log) Time() (uint64, error) {
	return parseHexInt(l.TimeStamp)
}

// ContractSource is a getsourcecode entry.
type ContractSource struct {
	SourceCode           string `json:"SourceCode"`
	ABI                  string `json:"ABI"`
	ContractName         string `json:"ContractName"`
	CompilerVersion      string `json:"CompilerVersion"`
	OptimizationUsed     string `json:"OptimizationUsed"`
	Runs                 string `json:"Runs"`
	ConstructorArguments string `json:"ConstructorArguments"`
	EVMVersion           string `json:"EVMVersion"`
	Library              string `json:"Library"`
	LicenseType          string `json:"LicenseType"`
	Proxy                string `json:"Proxy"`
	Implementation       string `json:"Implementation"`
	SwarmSource          string `json:"SwarmSource"`
	FileName             string `json:"FileName,omitempty"`
}

// Verified reports whether the explorer has source for the contract.
func (c ContractSource) Verified() bool {
	return c.SourceCode != "" && !strings.EqualFold(c.ABI, "Contract source code not verified")
}

// TxInfo is the gettxinfo result.
type TxInfo struct {
	BlockNumber   string            `json:"blockNumber"`
	Confirmations string            `json:"confirmations"`
	From          string            `json:"from"`
	GasLimit      string            `json:"gasLimit"`
	GasPrice      string            `json:"gasPrice"`
	GasUsed       string            `json:"gasUsed"`
	Hash          string            `json:"hash"`
	Input         string            `json:"input"`
	Logs          []json.RawMessage `json:"logs"`
	RevertReason  string            `json:"revertReason"`
	Success       bool              `json:"success"`
	TimeStamp     string            `json:"timeStamp"`
	To            string            `json:"to"`
	Value         string            `json:"value"`
}

// ReceiptStatus is the gettxreceiptstatus result; Status "1" means success.
type ReceiptStatus struct {
	Status string `json:"status"`
}

// TxStatus is the getstatus result; IsError "1" means the transaction failed.
type TxStatus struct {
	IsError        string `json:"isError"`
	ErrDescription string `json:"errDescription"`
}

// CoinPrice is the coinprice result.
type CoinPrice struct {
	CoinBTC          string `json:"coin_btc"`
	CoinBTCTimestamp string `json:"coin_btc_timestamp"`
	CoinUSD          string `json:"coin_usd"`
	CoinUSDTimestamp string `json:"coin_usd_timestamp"`
}

// Helper to convert hex string to int
func parseHexInt(hexStr string) (uint64, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	if hexStr == "" {
		return 0, nil
	}
	return strconv.ParseUint(hexStr, 16, 64)
}
