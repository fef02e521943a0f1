package extract

import (
	"reflect"
	"sort"
	"strings"

	"github.com/chinmay1088/risescan/api"
)

// Dataset names a kind of list result with a fixed CSV column schema.
type Dataset string

const (
	DatasetTransactions         Dataset = "transactions"
	DatasetInternalTransactions Dataset = "internal_transactions"
	DatasetTokenTransfers       Dataset = "token_transfers"
	DatasetTokens               Dataset = "tokens"
	DatasetTokenHolders         Dataset = "token_holders"
	DatasetBlocks               Dataset = "blocks"
	DatasetLogs                 Dataset = "logs"
)

// schemas are derived from the json tags of the typed records, in field order.
var schemas = map[Dataset][]string{
	DatasetTransactions:         jsonColumns(api.Transaction{}),
	DatasetInternalTransactions: jsonColumns(api.InternalTransaction{}),
	DatasetTokenTransfers:       jsonColumns(api.TokenTransfer{}),
	DatasetTokens:               jsonColumns(api.TokenBalance{}),
	DatasetTokenHolders:         jsonColumns(api.TokenHolder{}),
	DatasetBlocks:               jsonColumns(api.BlockReward{}),
	DatasetLogs:                 jsonColumns(api.Log{}),
}

// Columns returns the CSV header for a dataset. Unknown datasets use the
// sorted union of the record keys.
func Columns(dataset Dataset, records []map[string]any) []string {
	if columns, ok := schemas[dataset]; ok {
		return columns
	}
	return unionKeys(records)
}

func jsonColumns(v any) []string {
	t := reflect.TypeOf(v)
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		columns = append(columns, name)
	}
	return columns
}

func unionKeys(records []map[string]any) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		for key := range record {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
