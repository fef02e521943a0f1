package extract

import (
	"context"
	"fmt"

	"github.com/chinmay1088/risescan/api"
)

// ProgressFunc is told how many of total units are done.
type ProgressFunc func(done, total int)

// ExtractBlockRange saves the reward record of every block from start to end
// inclusive. Blocks the explorer has no record for are skipped.
func (e *Extractor) ExtractBlockRange(ctx context.Context, start, end uint64, progress ProgressFunc) (*Result, error) {
	if start > end {
		return nil, &api.ValidationError{Field: "start", Reason: fmt.Sprintf("%d is after end %d", start, end)}
	}

	ts := e.timestamp()
	label := fmt.Sprintf("%d_to_%d", start, end)
	result := newResult(label, ts)
	total := int(end - start + 1)
	e.logger.Info("extracting blocks", "start", start, "end", end)

	blocks := []map[string]any{}
	for n := start; ; n++ {
		resp, err := e.client.GetBlockReward(ctx, n)
		if err != nil {
			return result, fmt.Errorf("failed to get block %d: %w", n, err)
		}
		if resp.OK() {
			block, err := resp.Object()
			if err != nil {
				return result, err
			}
			blocks = append(blocks, block)
		}

		done := int(n - start + 1)
		if progress != nil {
			progress(done, total)
		}
		if done%10 == 0 {
			e.logger.Info("processed blocks", "count", done)
		}
		if n == end {
			break
		}
	}
	result.Items = len(blocks)

	if len(blocks) > 0 {
		name := "blocks_" + label

		location, err := e.saveJSON(ctx, JSONPath("blocks", ts, name), blocks)
		if err != nil {
			return result, err
		}
		result.record("json", location)

		location, err = e.saveCSV(ctx, CSVPath("blocks", ts, name), DatasetBlocks, blocks)
		if err != nil {
			return result, err
		}
		result.record("csv", location)
	}

	e.logger.Info("extracted blocks", "count", len(blocks))
	return result, nil
}
