// Package calendar projects the journal state into display events for a
// calendar renderer. The projection is pure and recomputed on every read;
// nothing here is persisted.
package calendar

import (
	"fmt"

	"tradejournal/internal/domain"
)

// Events builds the calendar event list: one daily P/L summary per trade
// date followed by one event per manual entry. Trades without a trade
// date are excluded from aggregation. Summary events come out in
// first-seen date order and manual events in stored order; callers
// needing chronological order sort by Start themselves.
func Events(trades []domain.FinalizedTrade, entries []domain.ManualEntry) []domain.CalendarEvent {
	var dates []string
	days := make(map[string]*domain.DailySummary)

	for _, trade := range trades {
		if trade.TradeDate == "" {
			continue
		}
		day, ok := days[trade.TradeDate]
		if !ok {
			day = &domain.DailySummary{Date: trade.TradeDate}
			days[trade.TradeDate] = day
			dates = append(dates, trade.TradeDate)
		}
		day.PL += trade.PL
		day.Trades = append(day.Trades, trade)
	}

	events := make([]domain.CalendarEvent, 0, len(dates)+len(entries))
	for _, date := range dates {
		day := days[date]
		color := domain.ColorProfit
		if day.PL < 0 {
			color = domain.ColorLoss
		}
		events = append(events, domain.CalendarEvent{
			ID:      "trade-" + date,
			Title:   fmt.Sprintf("P/L: $%.2f", day.PL),
			Start:   date,
			AllDay:  true,
			Color:   color,
			Type:    domain.EventDailySummary,
			Summary: day,
		})
	}

	for i := range entries {
		entry := entries[i]
		events = append(events, domain.CalendarEvent{
			ID:     "manual-" + entry.ID,
			Title:  entry.Title,
			Start:  entry.Date,
			AllDay: true,
			Color:  domain.ColorManual,
			Type:   domain.EventManualEntry,
			Entry:  &entry,
		})
	}

	return events
}
