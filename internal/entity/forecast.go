package entity

import (
	"errors"
	"strings"
)

// ErrUnknownTimeframe is returned by ParseTimeframe for unsupported horizons.
var ErrUnknownTimeframe = errors.New("unknown timeframe")

// Timeframe selects the forecast horizon and the bucket granularity.
type Timeframe int

const (
	SixMonths Timeframe = iota + 1
	OneYear
	FiveYears
)

func ParseTimeframe(s string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "6months", "6-month", "6m":
		return SixMonths, nil
	case "", "1year", "1-year", "1y":
		return OneYear, nil
	case "5years", "5-year", "5y":
		return FiveYears, nil
	}
	return 0, ErrUnknownTimeframe
}

func (t Timeframe) String() string {
	switch t {
	case SixMonths:
		return "6months"
	case OneYear:
		return "1year"
	case FiveYears:
		return "5years"
	}
	return "unknown"
}

// Days is the horizon requested from the forecasting API.
func (t Timeframe) Days() int {
	switch t {
	case SixMonths:
		return 180
	case FiveYears:
		return 1825
	default:
		return 365
	}
}

func (t Timeframe) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Timeframe) UnmarshalText(b []byte) error {
	v, err := ParseTimeframe(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// RawSeries is one predicted value per elementary (daily) period.
type RawSeries []float64

// Bucket is one aggregated period of summed predictions.
type Bucket struct {
	Label  string  `json:"period"`
	Amount float64 `json:"amount"`
}

// ProductRecord is the product metadata the aggregator consumes.
type ProductRecord struct {
	ID       string  `json:"product_id,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Category *string `json:"category,omitempty"`
}

// Key identifies the product in revenue mappings: its ID when known, otherwise its name.
func (p ProductRecord) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Name
}

type CategorySlice struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

type ProductScore struct {
	Product string `json:"product"`
	Score   int    `json:"score"`
}

// PredictionPayload is the forecasting API response for a seller.
type PredictionPayload struct {
	PredictedRevenue []float64       `json:"predicted_revenue" validate:"dive,gte=0"`
	Products         []ProductRecord `json:"products" validate:"dive"`
	Confidence       float64         `json:"confidence" validate:"gte=0,lte=1"`
}

// Summary is the chart-ready result of one forecast computation.
type Summary struct {
	Timeframe            Timeframe       `json:"timeframe"`
	RevenueForecasts     []Bucket        `json:"revenue_forecasts"`
	TotalForecast        float64         `json:"total_forecast"`
	GrowthRate           int             `json:"growth_rate"`
	ProductPerformance   []ProductScore  `json:"product_performance"`
	SuccessProbability   int             `json:"success_probability"`
	CategoryDistribution []CategorySlice `json:"category_distribution"`
	Recommendations      []string        `json:"recommendations"`
}

// Overview bundles the three horizons for one seller.
type Overview struct {
	SellerID string  `json:"seller_id"`
	SixMonth Summary `json:"six_month"`
	OneYear  Summary `json:"one_year"`
	FiveYear Summary `json:"five_year"`
}
