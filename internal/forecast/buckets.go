// Package forecast turns raw prediction series into chart-ready summaries.
//
// Every function here is pure: no I/O, no shared state, and degenerate input
// maps to a documented fallback value instead of an error. Callers validate
// that series values are finite and non-negative before calling in.
package forecast

import (
	"fmt"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
)

// NoData labels the fallback bucket and category slice.
const NoData = "No Data"

type window struct {
	days   int
	count  int
	prefix string
}

// Windows are fixed day approximations, not calendar boundaries.
var windows = map[entity.Timeframe]window{
	entity.FiveYears: {days: 365, count: 5, prefix: "Year "},
	entity.OneYear:   {days: 90, count: 4, prefix: "Q"},
	entity.SixMonths: {days: 30, count: 6, prefix: "Month "},
}

// BucketPredictions sums consecutive daily values into the periods of tf.
// Fewer buckets are emitted when the series is shorter than the horizon.
func BucketPredictions(series entity.RawSeries, tf entity.Timeframe) []entity.Bucket {
	if len(series) == 0 {
		return noDataBuckets()
	}
	w, ok := windows[tf]
	if !ok {
		return noDataBuckets()
	}

	out := make([]entity.Bucket, 0, w.count)
	for i := 0; i < w.count; i++ {
		start := i * w.days
		if start >= len(series) {
			break
		}
		end := min((i+1)*w.days, len(series))
		out = append(out, entity.Bucket{
			Label:  fmt.Sprintf("%s%d", w.prefix, i+1),
			Amount: sum(series[start:end]),
		})
	}
	if len(out) == 0 {
		return noDataBuckets()
	}
	return out
}

func noDataBuckets() []entity.Bucket {
	return []entity.Bucket{{Label: NoData, Amount: 0}}
}

func sum(vs []float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s
}
