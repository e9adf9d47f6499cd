package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tradejournal/internal/domain"
	"tradejournal/internal/ports"
)

// Timestamp layouts accepted in source exports, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalize converts one raw record into a typed execution. It returns an
// error wrapping ports.ErrMissingField when the product or either
// timestamp column is absent or empty, and ports.ErrBadTimestamp when a
// timestamp is present but unparseable. Rows failing either check are
// skipped by the caller rather than failing the import.
//
// Open time is min(bought, sold) and close time is max(bought, sold), so
// OpenTime <= CloseTime always holds on the result. P/L and quantity
// default to 0 when empty or unparseable. All original columns are
// retained on the returned execution.
func Normalize(raw domain.RawRecord) (domain.Execution, error) {
	product := raw[domain.ColProduct]
	bought := strings.TrimSpace(raw[domain.ColBoughtTimestamp])
	sold := strings.TrimSpace(raw[domain.ColSoldTimestamp])

	if strings.TrimSpace(product) == "" {
		return domain.Execution{}, fmt.Errorf("%s: %w", domain.ColProduct, ports.ErrMissingField)
	}
	if bought == "" {
		return domain.Execution{}, fmt.Errorf("%s: %w", domain.ColBoughtTimestamp, ports.ErrMissingField)
	}
	if sold == "" {
		return domain.Execution{}, fmt.Errorf("%s: %w", domain.ColSoldTimestamp, ports.ErrMissingField)
	}

	boughtMs, err := parseTimestamp(bought)
	if err != nil {
		return domain.Execution{}, fmt.Errorf("%s %q: %w", domain.ColBoughtTimestamp, bought, err)
	}
	soldMs, err := parseTimestamp(sold)
	if err != nil {
		return domain.Execution{}, fmt.Errorf("%s %q: %w", domain.ColSoldTimestamp, sold, err)
	}

	openTime, closeTime := boughtMs, soldMs
	if openTime > closeTime {
		openTime, closeTime = closeTime, openTime
	}

	return domain.Execution{
		Product:   product,
		OpenTime:  openTime,
		CloseTime: closeTime,
		PL:        parseFloatDefault(raw[domain.ColProfitLoss]),
		Qty:       parseIntDefault(raw[domain.ColPairedQty]),
		Fields:    raw.Clone(),
	}, nil
}

func parseTimestamp(s string) (int64, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts.UnixMilli(), nil
		}
	}
	return 0, ports.ErrBadTimestamp
}

func parseFloatDefault(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntDefault(s string) int {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return int(v)
}
