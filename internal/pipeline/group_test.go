package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/domain"
)

func row(product, bought, sold, pl, qty, date string) domain.RawRecord {
	return domain.RawRecord{
		domain.ColProduct:         product,
		domain.ColBoughtTimestamp: bought,
		domain.ColSoldTimestamp:   sold,
		domain.ColProfitLoss:      pl,
		domain.ColPairedQty:       qty,
		domain.ColTradeDate:       date,
	}
}

func TestGroupFullPipeline(t *testing.T) {
	records := []domain.RawRecord{
		// Two overlapping AAPL executions that merge into one trade.
		row("AAPL", "2024-01-02 09:30:00", "2024-01-02 09:35:00", "10", "1", "2024-01-02"),
		row("AAPL", "2024-01-02 09:33:00", "2024-01-02 09:40:00", "-4", "2", "2024-01-02"),
		// A later disjoint AAPL execution.
		row("AAPL", "2024-01-02 11:00:00", "2024-01-02 11:05:00", "2.5", "1", "2024-01-02"),
		// A different product inside the same window.
		row("MSFT", "2024-01-02 09:30:00", "2024-01-02 09:35:00", "7", "1", "2024-01-02"),
		// Skipped: no product.
		row("", "2024-01-02 09:30:00", "2024-01-02 09:35:00", "1", "1", "2024-01-02"),
		// Skipped: bad timestamp.
		row("AAPL", "bogus", "2024-01-02 09:35:00", "1", "1", "2024-01-02"),
	}

	trades, stats := Group(records)

	require.Len(t, trades, 3)
	assert.Equal(t, 6, stats.Rows)
	assert.Equal(t, 4, stats.Executions)
	assert.Equal(t, 3, stats.Trades)
	assert.Equal(t, 1, stats.SkippedMissingField)
	assert.Equal(t, 1, stats.SkippedBadTimestamp)

	// First-seen product order, chronological within product.
	assert.Equal(t, "AAPL", trades[0].Product)
	assert.Equal(t, 6.0, trades[0].PL)
	assert.Equal(t, 3, trades[0].Qty)
	require.Len(t, trades[0].Pairs, 2)

	assert.Equal(t, "AAPL", trades[1].Product)
	assert.Equal(t, 2.5, trades[1].PL)

	assert.Equal(t, "MSFT", trades[2].Product)
	assert.Equal(t, 7.0, trades[2].PL)
}

func TestGroupIsDeterministic(t *testing.T) {
	records := []domain.RawRecord{
		row("NQ", "2024-03-05 10:00:00", "2024-03-05 10:00:30", "1.25", "1", "2024-03-05"),
		row("ES", "2024-03-05 10:00:00", "2024-03-05 10:00:30", "-0.5", "1", "2024-03-05"),
		row("NQ", "2024-03-05 10:00:00", "2024-03-05 10:02:00", "3", "2", "2024-03-05"),
		row("ES", "2024-03-05 11:00:00", "2024-03-05 11:00:10", "0", "1", "2024-03-05"),
	}

	first, firstStats := Group(records)
	second, secondStats := Group(records)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStats, secondStats)

	// Buckets surface in first-seen order regardless of map iteration.
	require.Len(t, first, 3)
	assert.Equal(t, "NQ", first[0].Product)
	assert.Equal(t, "ES", first[1].Product)
	assert.Equal(t, "ES", first[2].Product)
}

func TestGroupEmptyInput(t *testing.T) {
	trades, stats := Group(nil)
	assert.Empty(t, trades)
	assert.Equal(t, Stats{}, stats)
}
