package domain

// EventType distinguishes the two kinds of calendar events.
type EventType string

const (
	EventDailySummary EventType = "daily-summary"
	EventManualEntry  EventType = "manual-entry"
)

// Event colors used by the calendar renderer.
const (
	ColorProfit = "#10b981" // Non-negative daily P/L
	ColorLoss   = "#ef4444" // Negative daily P/L
	ColorManual = "#3b82f6" // Manual entries
)

// DailySummary aggregates all finalized trades on one calendar date.
// Summaries are recomputed on every read and never persisted.
type DailySummary struct {
	Date   string
	PL     float64 // Sum of trade P/L on this date, in input order
	Trades []FinalizedTrade
}

// CalendarEvent is one display record for the calendar renderer: either a
// daily P/L summary or a manual annotation placed on a date.
type CalendarEvent struct {
	ID     string // "trade-{date}" or "manual-{entry id}"
	Title  string
	Start  string // Date the event is placed on
	AllDay bool
	Color  string
	Type   EventType

	// Exactly one of the following is set, matching Type.
	Summary *DailySummary
	Entry   *ManualEntry
}
