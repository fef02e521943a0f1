package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"

	"github.com/chinmay1088/risescan/api"
)

// LogsOptions selects event logs over a block range. Event, when set, is an
// event signature such as "Transfer(address,address,uint256)" and stands in
// for Topics[0]. Operator joins every pair of given topics and defaults to
// api.TopicAnd.
type LogsOptions struct {
	FromBlock uint64
	ToBlock   uint64
	Address   string
	Topics    [4]string
	Event     string
	Operator  api.TopicOperator
}

// EventTopic returns the keccak256 hash of an event signature, the value
// the chain stores as topic0.
func EventTopic(signature string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(strings.ReplaceAll(signature, " ", "")))
	return hexutil.Encode(h.Sum(nil))
}

func (o LogsOptions) params() (api.LogsParams, error) {
	topics := o.Topics
	if o.Event != "" {
		if topics[0] != "" {
			return api.LogsParams{}, &api.ValidationError{Field: "topic0", Reason: "cannot be combined with an event signature"}
		}
		topics[0] = EventTopic(o.Event)
	}

	op := o.Operator
	if op == "" {
		op = api.TopicAnd
	}
	pair := func(i, j int) api.TopicOperator {
		if topics[i] != "" && topics[j] != "" {
			return op
		}
		return ""
	}

	return api.LogsParams{
		FromBlock:  o.FromBlock,
		ToBlock:    o.ToBlock,
		Address:    o.Address,
		Topic0:     topics[0],
		Topic1:     topics[1],
		Topic2:     topics[2],
		Topic3:     topics[3],
		Topic01Opr: pair(0, 1),
		Topic02Opr: pair(0, 2),
		Topic03Opr: pair(0, 3),
		Topic12Opr: pair(1, 2),
		Topic13Opr: pair(1, 3),
		Topic23Opr: pair(2, 3),
	}, nil
}

// ExtractLogs saves the event logs matching opts.
func (e *Extractor) ExtractLogs(ctx context.Context, opts LogsOptions) (*Result, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}

	ts := e.timestamp()
	label := fmt.Sprintf("%d_to_%d", opts.FromBlock, opts.ToBlock)
	result := newResult(label, ts)
	e.logger.Info("extracting logs", "from", opts.FromBlock, "to", opts.ToBlock, "address", opts.Address, "topic0", params.Topic0)

	resp, err := e.client.GetLogs(ctx, params)
	if err != nil {
		return result, fmt.Errorf("failed to get logs: %w", err)
	}
	if !resp.OK() {
		e.logger.Info("no logs returned", "message", resp.Message)
		return result, nil
	}
	logs, err := resp.Records()
	if err != nil {
		return result, err
	}
	if len(logs) >= api.MaxLogsPerCall {
		e.logger.Warn("log result hit the per-call limit, narrow the block range to get the rest", "limit", api.MaxLogsPerCall)
	}
	result.Items = len(logs)

	if len(logs) > 0 {
		name := "logs_" + label

		location, err := e.saveJSON(ctx, JSONPath("logs", ts, name), logs)
		if err != nil {
			return result, err
		}
		result.record("json", location)

		location, err = e.saveCSV(ctx, CSVPath("logs", ts, name), DatasetLogs, logs)
		if err != nil {
			return result, err
		}
		result.record("csv", location)
	}

	e.logger.Info("extracted logs", "count", len(logs))
	return result, nil
}
