package pipeline

import (
	"fmt"
	"time"

	"tradejournal/internal/domain"
)

// displayLayout formats open/close times for presentation. The resulting
// strings are display-only and are never parsed back.
const displayLayout = "2006-01-02 15:04:05"

// Finalize computes the display-ready derived fields for a merged trade.
// Duration renders as "{minutes}m {seconds}s" when at least one whole
// minute passed, else "{seconds}s". Finalize is idempotent: the same
// logical trade always yields the same derived strings.
func Finalize(t domain.LogicalTrade) domain.FinalizedTrade {
	durationMs := t.CloseTime - t.OpenTime
	minutes := durationMs / 60_000
	seconds := (durationMs % 60_000) / 1_000

	durationStr := fmt.Sprintf("%ds", seconds)
	if minutes > 0 {
		durationStr = fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return domain.FinalizedTrade{
		LogicalTrade: t,
		TradeDate:    t.Fields[domain.ColTradeDate],
		DurationStr:  durationStr,
		OpenTimeStr:  time.UnixMilli(t.OpenTime).Format(displayLayout),
		CloseTimeStr: time.UnixMilli(t.CloseTime).Format(displayLayout),
	}
}
