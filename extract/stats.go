package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chinmay1088/risescan/api"
)

// NetworkStats is the document ExtractNetworkStats writes. Supply and price
// are omitted when the explorer does not provide them.
type NetworkStats struct {
	Timestamp    string           `json:"timestamp"`
	Date         string           `json:"date"`
	EthSupplyWei string           `json:"eth_supply_wei,omitempty"`
	EthSupplyEth *decimal.Decimal `json:"eth_supply_eth,omitempty"`
	Price        map[string]any   `json:"price,omitempty"`
}

// ExtractNetworkStats saves the native coin supply and price.
func (e *Extractor) ExtractNetworkStats(ctx context.Context) (*Result, error) {
	now := e.now()
	ts := now.Format(TimestampLayout)
	result := newResult("network", ts)
	e.logger.Info("extracting network statistics")

	stats := NetworkStats{
		Timestamp: ts,
		Date:      now.Format(time.RFC3339),
	}

	supply, err := e.client.GetEthSupply(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to get supply: %w", err)
	}
	if supply.OK() {
		wei, err := supply.Wei()
		if err != nil {
			return result, err
		}
		eth := api.WeiToEther(wei)
		stats.EthSupplyWei = wei.String()
		stats.EthSupplyEth = &eth
	}

	price, err := e.client.GetCoinPrice(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to get coin price: %w", err)
	}
	if price.OK() {
		if stats.Price, err = price.Object(); err != nil {
			return result, err
		}
	}

	location, err := e.saveJSON(ctx, JSONPath("stats", ts, "network_stats"), stats)
	if err != nil {
		return result, err
	}
	result.record("json", location)
	result.Items = 1

	e.logger.Info("network statistics extracted")
	return result, nil
}
