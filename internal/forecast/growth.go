package forecast

import (
	"math"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
)

// GrowthRate compares the mean of the second half of the series with the
// mean of the first half and returns the change in whole percent, rounded
// half away from zero.
//
// A first-half mean of exactly zero yields 0, which also hides growth that
// starts from nothing.
func GrowthRate(series entity.RawSeries) int {
	n := len(series)
	if n < 2 {
		return 0
	}
	mid := n / 2
	first := sum(series[:mid]) / float64(mid)
	second := sum(series[mid:]) / float64(n-mid)
	if first == 0 {
		return 0
	}
	return int(math.Round((second - first) / first * 100))
}

// SuccessProbability scales the forecast confidence to a whole percentage.
func SuccessProbability(confidence float64) int {
	return int(math.Round(confidence * 100))
}
