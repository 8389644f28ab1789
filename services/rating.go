package services

import (
	"github.com/shopspring/decimal"
)

// AggregateRatings recomputes a worker's average rating and review count from
// the full set of review ratings. Returns a nil average when there are no
// reviews, matching the unrated profile state.
func AggregateRatings(ratings []int) (*decimal.Decimal, int) {
	if len(ratings) == 0 {
		return nil, 0
	}

	sum := int64(0)
	for _, r := range ratings {
		sum += int64(r)
	}

	// Stored as numeric(3,2), so round to two places here rather than letting
	// the database do it silently.
	avg := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(ratings)))).
		Round(2)

	return &avg, len(ratings)
}
