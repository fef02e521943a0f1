package extract

import (
	"context"
	"fmt"

	"github.com/chinmay1088/risescan/api"
)

type tokenHolders struct {
	TokenInfo           map[string]any   `json:"token_info"`
	Holders             []map[string]any `json:"holders"`
	TotalHoldersFetched int              `json:"total_holders_fetched"`
}

// ExtractTokenHolders saves token metadata together with up to max holders.
func (e *Extractor) ExtractTokenHolders(ctx context.Context, contract string, max int) (*Result, error) {
	if max <= 0 {
		max = DefaultMaxHolders
	}

	ts := e.timestamp()
	result := newResult(contract, ts)
	e.logger.Info("extracting token holders", "contract", contract)

	info := map[string]any{}
	resp, err := e.client.GetTokenInfo(ctx, contract)
	if err != nil {
		return result, fmt.Errorf("failed to get token info: %w", err)
	}
	if resp.OK() {
		if info, err = resp.Object(); err != nil {
			return result, err
		}
	}

	holders, err := Paginate(ctx, func(ctx context.Context, page, offset int) (*api.Response, error) {
		return e.client.GetTokenHolders(ctx, contract, page, offset)
	}, PageLimits{MaxItems: max}, e.logger)
	if err != nil {
		return result, fmt.Errorf("failed to get token holders: %w", err)
	}
	result.Items = len(holders)

	if len(holders) > 0 {
		name := "token_holders_" + short(contract)

		location, err := e.saveJSON(ctx, JSONPath("token_holders", ts, name), tokenHolders{
			TokenInfo:           info,
			Holders:             holders,
			TotalHoldersFetched: len(holders),
		})
		if err != nil {
			return result, err
		}
		result.record("json", location)

		location, err = e.saveCSV(ctx, CSVPath("token_holders", ts, name), DatasetTokenHolders, holders)
		if err != nil {
			return result, err
		}
		result.record("csv", location)
	}

	e.logger.Info("extracted token holders", "count", len(holders))
	return result, nil
}
