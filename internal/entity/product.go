package entity

// ProductPredictionPayload is the forecasting API response for one product.
type ProductPredictionPayload struct {
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	PredictionDays   int       `json:"prediction_days" validate:"gte=0"`
	PredictedSales   []float64 `json:"predicted_sales" validate:"dive,gte=0"`
	PredictedRevenue []float64 `json:"predicted_revenue" validate:"dive,gte=0"`
	Confidence       float64   `json:"confidence" validate:"gte=0,lte=1"`
}

// ProductForecast is the chart-ready forecast of a single product.
type ProductForecast struct {
	ProductID          string    `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Timeframe          Timeframe `json:"timeframe"`
	RevenueForecasts   []Bucket  `json:"revenue_forecasts"`
	SalesForecasts     []Bucket  `json:"sales_forecasts"`
	TotalRevenue       float64   `json:"total_revenue"`
	TotalSales         float64   `json:"total_sales"`
	GrowthRate         int       `json:"growth_rate"`
	SalesGrowthRate    int       `json:"sales_growth_rate"`
	SuccessProbability int       `json:"success_probability"`
}
