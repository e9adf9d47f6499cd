package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/domain"
)

func TestPartitionBucketsAndSorts(t *testing.T) {
	execs := []domain.Execution{
		exec("MSFT", 500, 600, 1, 1),
		exec("AAPL", 300, 400, 1, 1),
		exec("MSFT", 100, 200, 1, 1),
		exec("AAPL", 100, 200, 1, 1),
	}

	products, buckets := Partition(execs)

	// First-seen input order.
	assert.Equal(t, []string{"MSFT", "AAPL"}, products)

	require.Len(t, buckets["MSFT"], 2)
	assert.Equal(t, int64(100), buckets["MSFT"][0].OpenTime)
	assert.Equal(t, int64(500), buckets["MSFT"][1].OpenTime)

	require.Len(t, buckets["AAPL"], 2)
	assert.Equal(t, int64(100), buckets["AAPL"][0].OpenTime)
	assert.Equal(t, int64(300), buckets["AAPL"][1].OpenTime)
}

func TestPartitionStableOnEqualOpenTimes(t *testing.T) {
	a := exec("ES", 100, 150, 1, 1)
	b := exec("ES", 100, 120, 2, 1)
	c := exec("ES", 100, 110, 3, 1)

	_, buckets := Partition([]domain.Execution{a, b, c})

	bucket := buckets["ES"]
	require.Len(t, bucket, 3)
	assert.Equal(t, 1.0, bucket[0].PL)
	assert.Equal(t, 2.0, bucket[1].PL)
	assert.Equal(t, 3.0, bucket[2].PL)
}

func TestPartitionEmpty(t *testing.T) {
	products, buckets := Partition(nil)
	assert.Empty(t, products)
	assert.Empty(t, buckets)
}
