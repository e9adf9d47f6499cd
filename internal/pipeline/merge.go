package pipeline

import (
	"tradejournal/internal/domain"
)

// Merge collapses a time-sorted bucket of executions into logical trades
// with a single left-to-right scan. An execution whose open time falls at
// or before the running trade's close time is merged into it: the close
// time takes the running maximum and P/L and quantity accumulate in input
// order, which keeps float sums reproducible run to run. An execution
// strictly after the running trade's close starts a new trade.
//
// The output trades are in non-decreasing open-time order, pairwise
// non-overlapping, and together cover exactly the union of the input
// intervals. Merging is per-bucket only; callers partition by product
// first so trades from different products never merge.
func Merge(pairs []domain.Execution) []domain.LogicalTrade {
	var trades []domain.LogicalTrade
	var current *domain.LogicalTrade

	for _, pair := range pairs {
		switch {
		case current == nil:
			current = startTrade(pair)
		case pair.OpenTime <= current.CloseTime:
			if pair.CloseTime > current.CloseTime {
				current.CloseTime = pair.CloseTime
			}
			current.Qty += pair.Qty
			current.PL += pair.PL
			current.Pairs = append(current.Pairs, pair)
		default:
			trades = append(trades, *current)
			current = startTrade(pair)
		}
	}

	if current != nil {
		trades = append(trades, *current)
	}
	return trades
}

// startTrade opens a logical trade from its first execution. Scalar
// fields stay with the values of this first pair for the trade's
// lifetime; only close time, sums, and the pair list grow on merge.
func startTrade(e domain.Execution) *domain.LogicalTrade {
	return &domain.LogicalTrade{
		Product:   e.Product,
		OpenTime:  e.OpenTime,
		CloseTime: e.CloseTime,
		PL:        e.PL,
		Qty:       e.Qty,
		Pairs:     []domain.Execution{e},
		Fields:    e.Fields,
	}
}
