package domain

// RawRecord is one row from the upstream delimited-text parser: a mapping
// of column name to string value. Columns beyond the well-known ones are
// preserved untouched through the whole pipeline.
type RawRecord map[string]string

// Well-known column names as they appear in the source export.
// Lookups are case-sensitive.
const (
	ColProduct         = "Product"
	ColBoughtTimestamp = "Bought Timestamp"
	ColSoldTimestamp   = "Sold Timestamp"
	ColProfitLoss      = "P/L"
	ColPairedQty       = "Paired Qty"
	ColTradeDate       = "Trade Date"
)

// Clone returns an independent copy of the record.
func (r RawRecord) Clone() RawRecord {
	if r == nil {
		return nil
	}
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
