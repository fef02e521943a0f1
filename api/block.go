package api

import (
	"context"
	"net/url"
	"strconv"
)

// GetBlockReward fetches the miner and reward details of a block.
func (c *Client) GetBlockReward(ctx context.Context, blockNo uint64) (*Response, error) {
	return c.get(ctx, "block", "getblockreward", url.Values{
		"blockno": {strconv.FormatUint(blockNo, 10)},
	})
}

// GetBlockNumberByTime finds the block closest to a unix timestamp, on the
// given side of it. An empty closest means ClosestBefore.
func (c *Client) GetBlockNumberByTime(ctx context.Context, timestamp int64, closest Closest) (*Response, error) {
	if closest == "" {
		closest = ClosestBefore
	}
	if closest != ClosestBefore && closest != ClosestAfter {
		return nil, invalid("closest", "must be 'before' or 'after', got %q", string(closest))
	}
	if timestamp < 0 {
		return nil, invalid("timestamp", "must not be negative, got %d", timestamp)
	}
	return c.get(ctx, "block", "getblocknobytime", url.Values{
		"timestamp": {strconv.FormatInt(timestamp, 10)},
		"closest":   {string(closest)},
	})
}
