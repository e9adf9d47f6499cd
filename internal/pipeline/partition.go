package pipeline

import (
	"sort"

	"tradejournal/internal/domain"
)

// Partition buckets executions by product and sorts each bucket by open
// time ascending. The returned product slice preserves first-seen input
// order; iterating it instead of the map keeps the pipeline deterministic.
// The sort is stable, so executions with equal open times keep their
// relative input order.
func Partition(execs []domain.Execution) ([]string, map[string][]domain.Execution) {
	products := make([]string, 0)
	buckets := make(map[string][]domain.Execution)

	for _, e := range execs {
		if _, ok := buckets[e.Product]; !ok {
			products = append(products, e.Product)
		}
		buckets[e.Product] = append(buckets[e.Product], e)
	}

	for _, p := range products {
		bucket := buckets[p]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].OpenTime < bucket[j].OpenTime
		})
	}

	return products, buckets
}
