package api

import (
	"context"
	"net/url"
	"strconv"
)

// MaxLogsPerCall is the most entries getLogs returns for one request.
const MaxLogsPerCall = 1000

// LogsParams filters event logs over a block range. Address and topics are
// optional; the operators combine pairs of topics.
type LogsParams struct {
	FromBlock uint64
	ToBlock   uint64
	Address   string

	Topic0 string
	Topic1 string
	Topic2 string
	Topic3 string

	Topic01Opr TopicOperator
	Topic02Opr TopicOperator
	Topic03Opr TopicOperator
	Topic12Opr TopicOperator
	Topic13Opr TopicOperator
	Topic23Opr TopicOperator
}

// GetLogs fetches event logs (at most MaxLogsPerCall).
func (c *Client) GetLogs(ctx context.Context, p LogsParams) (*Response, error) {
	if p.FromBlock > p.ToBlock {
		return nil, invalid("fromBlock", "%d is after toBlock %d", p.FromBlock, p.ToBlock)
	}

	params := url.Values{
		"fromBlock": {strconv.FormatUint(p.FromBlock, 10)},
		"toBlock":   {strconv.FormatUint(p.ToBlock, 10)},
	}
	if p.Address != "" {
		if err := validateAddress("address", p.Address); err != nil {
			return nil, err
		}
		params.Set("address", p.Address)
	}

	topics := []struct {
		name  string
		value string
	}{
		{"topic0", p.Topic0},
		{"topic1", p.Topic1},
		{"topic2", p.Topic2},
		{"topic3", p.Topic3},
	}
	for _, topic := range topics {
		if err := validateTopic(topic.name, topic.value); err != nil {
			return nil, err
		}
		if topic.value != "" {
			params.Set(topic.name, topic.value)
		}
	}

	operators := []struct {
		name  string
		value TopicOperator
	}{
		{"topic0_1_opr", p.Topic01Opr},
		{"topic0_2_opr", p.Topic02Opr},
		{"topic0_3_opr", p.Topic03Opr},
		{"topic1_2_opr", p.Topic12Opr},
		{"topic1_3_opr", p.Topic13Opr},
		{"topic2_3_opr", p.Topic23Opr},
	}
	for _, op := range operators {
		if err := validateOperator(op.name, op.value); err != nil {
			return nil, err
		}
		if op.value != "" {
			params.Set(op.name, string(op.value))
		}
	}

	return c.get(ctx, "logs", "getLogs", params)
}
