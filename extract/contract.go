package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/chinmay1088/risescan/api"
)

// ExtractContract saves the verified source of a contract: the full explorer
// record as JSON plus the source (.sol) and ABI (.json) as separate files.
// Nothing is written for an unverified contract.
func (e *Extractor) ExtractContract(ctx context.Context, address string) (*Result, error) {
	ts := e.timestamp()
	subdir := "contract_" + short(address)
	result := newResult(address, ts)
	e.logger.Info("extracting contract data", "address", address)

	resp, err := e.client.GetContractSourceCode(ctx, address)
	if err != nil {
		return result, fmt.Errorf("failed to get contract source: %w", err)
	}
	if !resp.OK() {
		e.logger.Warn("contract not verified or not found", "address", address, "message", resp.Message)
		return result, nil
	}

	records, err := resp.Records()
	if err != nil {
		return result, err
	}
	var sources []api.ContractSource
	if len(records) > 0 {
		if err := resp.Decode(&sources); err != nil {
			return result, err
		}
	}
	if len(sources) == 0 || !sources[0].Verified() {
		e.logger.Warn("contract not verified or not found", "address", address)
		return result, nil
	}
	contract := sources[0]
	result.Items = 1

	location, err := e.saveJSON(ctx, JSONPath(subdir, ts, "contract_full"), records[0])
	if err != nil {
		return result, err
	}
	result.record("full_data", location)

	location, err = e.save(ctx, ArtefactPath(subdir, ts, "source.sol"), []byte(contract.SourceCode))
	if err != nil {
		return result, err
	}
	result.record("source_code", location)

	pretty, err := prettyABI(contract.ABI)
	if err != nil {
		e.logger.Warn("could not parse ABI", "address", address, "error", err)
		return result, nil
	}
	location, err = e.save(ctx, ArtefactPath(subdir, ts, "abi.json"), pretty)
	if err != nil {
		return result, err
	}
	result.record("abi", location)

	return result, nil
}

// prettyABI checks that raw is a contract ABI and re-indents it.
func prettyABI(raw string) ([]byte, error) {
	if _, err := abi.JSON(strings.NewReader(raw)); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
