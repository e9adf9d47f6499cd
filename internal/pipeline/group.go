package pipeline

import (
	"errors"

	"tradejournal/internal/domain"
	"tradejournal/internal/ports"
)

// Stats summarizes one pipeline run, including the rows that were
// skipped and why.
type Stats struct {
	Rows                int // Raw records seen
	Executions          int // Records that normalized cleanly
	Trades              int // Logical trades after merging
	SkippedMissingField int // Rows missing product or a timestamp
	SkippedBadTimestamp int // Rows with an unparseable timestamp
}

// Group runs the full import pipeline: normalize each record, partition
// by product, merge overlapping executions, and finalize the merged
// trades. Trades come out grouped by product in first-seen product order
// and chronologically within each product. Rows that fail normalization
// are counted in the returned stats and otherwise ignored.
func Group(records []domain.RawRecord) ([]domain.FinalizedTrade, Stats) {
	stats := Stats{Rows: len(records)}

	execs := make([]domain.Execution, 0, len(records))
	for _, raw := range records {
		e, err := Normalize(raw)
		switch {
		case err == nil:
			execs = append(execs, e)
		case errors.Is(err, ports.ErrMissingField):
			stats.SkippedMissingField++
		case errors.Is(err, ports.ErrBadTimestamp):
			stats.SkippedBadTimestamp++
		}
	}
	stats.Executions = len(execs)

	products, buckets := Partition(execs)

	var trades []domain.FinalizedTrade
	for _, product := range products {
		for _, merged := range Merge(buckets[product]) {
			trades = append(trades, Finalize(merged))
		}
	}
	stats.Trades = len(trades)

	return trades, stats
}
