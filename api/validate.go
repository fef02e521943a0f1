package api

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// MaxBalanceMultiAddresses is the explorer's cap on balancemulti.
const MaxBalanceMultiAddresses = 20

// Sort is the ordering of list results.
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// Closest selects the block on either side of a timestamp.
type Closest string

const (
	ClosestBefore Closest = "before"
	ClosestAfter  Closest = "after"
)

// TopicOperator combines two topic filters in getLogs.
type TopicOperator string

const (
	TopicAnd TopicOperator = "and"
	TopicOr  TopicOperator = "or"
)

func validateAddress(field, address string) error {
	if !common.IsHexAddress(address) {
		return invalid(field, "%q is not a hex address", address)
	}
	return nil
}

func validateTxHash(field, hash string) error {
	b, err := hexutil.Decode(hash)
	if err != nil || len(b) != common.HashLength {
		return invalid(field, "%q is not a 32-byte hex hash", hash)
	}
	return nil
}

func validateTopic(field, topic string) error {
	if topic == "" {
		return nil
	}
	return validateTxHash(field, topic)
}

func validateSort(sort Sort) error {
	switch sort {
	case "", SortAsc, SortDesc:
		return nil
	}
	return invalid("sort", "must be 'asc' or 'desc', got %q", string(sort))
}

func validatePaging(page, offset int) error {
	if page < 1 {
		return invalid("page", "must be >= 1, got %d", page)
	}
	if offset < 1 {
		return invalid("offset", "must be >= 1, got %d", offset)
	}
	return nil
}

func validateBlockRange(startField string, start *uint64, endField string, end *uint64) error {
	if start != nil && end != nil && *start > *end {
		return invalid(startField, "%d is after %s %d", *start, endField, *end)
	}
	return nil
}

func validateOperator(field string, op TopicOperator) error {
	switch TopicOperator(strings.ToLower(string(op))) {
	case "", TopicAnd, TopicOr:
		return nil
	}
	return invalid(field, "must be 'and' or 'or', got %q", string(op))
}
