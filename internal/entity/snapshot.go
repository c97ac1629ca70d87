package entity

import "time"

// Snapshot is the daily record of a seller's forecast for one timeframe.
type Snapshot struct {
	SellerID           string    `json:"seller_id"`
	Timeframe          Timeframe `json:"timeframe"`
	Day                time.Time `json:"day"` // UTC midnight
	GrowthRate         int       `json:"growth_rate"`
	TotalForecast      float64   `json:"total_forecast"`
	SuccessProbability int       `json:"success_probability"`
	ComputedAt         time.Time `json:"computed_at"`
	Requests           int64     `json:"requests"`
}

type HistoryResponse struct {
	SellerID  string     `json:"seller_id"`
	Timeframe Timeframe  `json:"timeframe"`
	Snapshots []Snapshot `json:"snapshots"`
}
