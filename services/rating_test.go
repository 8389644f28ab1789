package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRatings(t *testing.T) {
	avg, count := AggregateRatings([]int{5, 4, 3})
	require.NotNil(t, avg)
	assert.Equal(t, 3, count)
	assert.True(t, avg.Equal(decimal.NewFromFloat(4.0)), "got %s", avg)
}

func TestAggregateRatingsEmpty(t *testing.T) {
	avg, count := AggregateRatings(nil)
	assert.Nil(t, avg)
	assert.Equal(t, 0, count)
}

func TestAggregateRatingsSingleReview(t *testing.T) {
	avg, count := AggregateRatings([]int{5})
	require.NotNil(t, avg)
	assert.Equal(t, 1, count)
	assert.True(t, avg.Equal(decimal.NewFromInt(5)))
}

func TestAggregateRatingsRoundsToTwoPlaces(t *testing.T) {
	// 5+4+4 = 13 / 3 = 4.333... -> 4.33
	avg, count := AggregateRatings([]int{5, 4, 4})
	require.NotNil(t, avg)
	assert.Equal(t, 3, count)
	assert.Equal(t, "4.33", avg.StringFixed(2))

	// 5+5+4 = 14 / 3 = 4.666... -> 4.67
	avg, _ = AggregateRatings([]int{5, 5, 4})
	require.NotNil(t, avg)
	assert.Equal(t, "4.67", avg.StringFixed(2))
}
