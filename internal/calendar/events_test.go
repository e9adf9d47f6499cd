package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/domain"
)

func finalized(product, date string, pl float64) domain.FinalizedTrade {
	return domain.FinalizedTrade{
		LogicalTrade: domain.LogicalTrade{Product: product, PL: pl},
		TradeDate:    date,
	}
}

func TestEventsDailySummary(t *testing.T) {
	trades := []domain.FinalizedTrade{
		finalized("AAPL", "2024-01-02", 10),
		finalized("AAPL", "2024-01-02", -5),
		finalized("MSFT", "2024-01-02", 20),
	}

	events := Events(trades, nil)

	require.Len(t, events, 1)
	assert.Equal(t, "trade-2024-01-02", events[0].ID)
	assert.Equal(t, "P/L: $25.00", events[0].Title)
	assert.Equal(t, "2024-01-02", events[0].Start)
	assert.True(t, events[0].AllDay)
	assert.Equal(t, domain.ColorProfit, events[0].Color)
	assert.Equal(t, domain.EventDailySummary, events[0].Type)
	require.NotNil(t, events[0].Summary)
	assert.Equal(t, 25.0, events[0].Summary.PL)
	assert.Len(t, events[0].Summary.Trades, 3)
}

func TestEventsNegativeDayColor(t *testing.T) {
	events := Events([]domain.FinalizedTrade{finalized("AAPL", "2024-01-03", -12.34)}, nil)

	require.Len(t, events, 1)
	assert.Equal(t, domain.ColorLoss, events[0].Color)
	assert.Equal(t, "P/L: $-12.34", events[0].Title)
}

func TestEventsZeroDayIsProfitColor(t *testing.T) {
	events := Events([]domain.FinalizedTrade{finalized("AAPL", "2024-01-03", 0)}, nil)

	require.Len(t, events, 1)
	assert.Equal(t, domain.ColorProfit, events[0].Color)
}

func TestEventsSkipTradesWithoutDate(t *testing.T) {
	trades := []domain.FinalizedTrade{
		finalized("AAPL", "", 10),
		finalized("AAPL", "2024-01-02", 5),
	}

	events := Events(trades, nil)

	require.Len(t, events, 1)
	assert.Equal(t, "trade-2024-01-02", events[0].ID)
	assert.Equal(t, 5.0, events[0].Summary.PL)
}

func TestEventsOrdering(t *testing.T) {
	trades := []domain.FinalizedTrade{
		finalized("AAPL", "2024-01-03", 1),
		finalized("AAPL", "2024-01-02", 2), // Earlier date seen later
		finalized("AAPL", "2024-01-03", 3),
	}
	entries := []domain.ManualEntry{
		{ID: "01A", Title: "FOMC", Date: "2024-01-31"},
		{ID: "01B", Title: "Earnings", Date: "2024-01-25"},
	}

	events := Events(trades, entries)

	// Summaries in first-seen date order, then manual entries in stored order.
	require.Len(t, events, 4)
	assert.Equal(t, "trade-2024-01-03", events[0].ID)
	assert.Equal(t, "trade-2024-01-02", events[1].ID)
	assert.Equal(t, "manual-01A", events[2].ID)
	assert.Equal(t, "manual-01B", events[3].ID)
}

func TestEventsManualEntry(t *testing.T) {
	entries := []domain.ManualEntry{{ID: "01HX", Title: "CPI print", Date: "2024-02-13"}}

	events := Events(nil, entries)

	require.Len(t, events, 1)
	assert.Equal(t, "manual-01HX", events[0].ID)
	assert.Equal(t, "CPI print", events[0].Title)
	assert.Equal(t, "2024-02-13", events[0].Start)
	assert.Equal(t, domain.ColorManual, events[0].Color)
	assert.Equal(t, domain.EventManualEntry, events[0].Type)
	require.NotNil(t, events[0].Entry)
	assert.Equal(t, "01HX", events[0].Entry.ID)
}

func TestEventsEmptyState(t *testing.T) {
	assert.Empty(t, Events(nil, nil))
}
