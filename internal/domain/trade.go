package domain

// Execution represents one matched buy/sell pair from the source data,
// normalized into typed fields. Times are milliseconds since the Unix
// epoch with OpenTime <= CloseTime.
type Execution struct {
	Product   string    `json:"product"`   // Product identifier (e.g., "AAPL")
	OpenTime  int64     `json:"openTime"`  // min(bought, sold) timestamp, ms epoch
	CloseTime int64     `json:"closeTime"` // max(bought, sold) timestamp, ms epoch
	PL        float64   `json:"pl"`        // Profit/loss for this execution
	Qty       int       `json:"qty"`       // Paired quantity
	Fields    RawRecord `json:"fields"`    // All original columns, untouched
}

// LogicalTrade is one or more overlapping executions in the same product
// merged into a single reported position. Pairs holds the constituent
// executions in chronological order and is never empty; OpenTime comes
// from the first pair, CloseTime is the running maximum, and PL/Qty are
// running sums accumulated in pair order.
type LogicalTrade struct {
	Product   string      `json:"product"`
	OpenTime  int64       `json:"openTime"`
	CloseTime int64       `json:"closeTime"`
	PL        float64     `json:"pl"`
	Qty       int         `json:"qty"`
	Pairs     []Execution `json:"pairs"`
	Fields    RawRecord   `json:"fields"` // Columns copied from the first pair
}

// FinalizedTrade is a LogicalTrade with display-ready derived fields.
// This is the persisted unit of truth: each import replaces the stored
// trade set wholesale with a new slice of these.
type FinalizedTrade struct {
	LogicalTrade

	TradeDate    string `json:"tradeDate"`    // "Trade Date" column of the first pair, YYYY-MM-DD expected
	DurationStr  string `json:"durationStr"`  // e.g., "3m 42s" or "17s"
	OpenTimeStr  string `json:"openTimeStr"`  // Presentation only, never parsed back
	CloseTimeStr string `json:"closeTimeStr"` // Presentation only, never parsed back
}
