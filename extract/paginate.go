package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chinmay1088/risescan/api"
)

// MaxPageSize is the largest offset requested per page.
const MaxPageSize = 100

// PageFunc fetches one page of a list action.
type PageFunc func(ctx context.Context, page, offset int) (*api.Response, error)

// PageLimits bounds a pagination run. Zero means unbounded.
type PageLimits struct {
	MaxItems int
	MaxPages int
}

// pageSize is min(MaxPageSize, MaxItems).
func (l PageLimits) pageSize() int {
	if l.MaxItems > 0 && l.MaxItems < MaxPageSize {
		return l.MaxItems
	}
	return MaxPageSize
}

// Paginate requests pages 1, 2, ... with a fixed offset and concatenates the
// records. It stops on an empty page, on an application error, after MaxPages
// pages or once MaxItems records are collected; the result never holds more
// than MaxItems records. A network error stops the run and is returned with
// the records collected so far.
func Paginate(ctx context.Context, fetch PageFunc, limits PageLimits, logger *slog.Logger) ([]map[string]any, error) {
	if logger == nil {
		logger = slog.Default()
	}
	offset := limits.pageSize()
	items := []map[string]any{}

	for page := 1; ; page++ {
		if limits.MaxPages > 0 && page > limits.MaxPages {
			break
		}
		if limits.MaxItems > 0 && len(items) >= limits.MaxItems {
			break
		}

		resp, err := fetch(ctx, page, offset)
		if err != nil {
			return truncate(items, limits.MaxItems), fmt.Errorf("page %d: %w", page, err)
		}
		if !resp.OK() {
			logger.Debug("pagination stopped by explorer", "page", page, "message", resp.Message)
			break
		}
		records, err := resp.Records()
		if err != nil {
			return truncate(items, limits.MaxItems), fmt.Errorf("page %d: %w", page, err)
		}
		if len(records) == 0 {
			break
		}
		items = append(items, records...)
		logger.Debug("fetched page", "page", page, "records", len(records), "total", len(items))
	}

	return truncate(items, limits.MaxItems), nil
}

func truncate(items []map[string]any, max int) []map[string]any {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
