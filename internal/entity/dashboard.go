package entity

type Change struct {
	Daily   float64 `json:"daily"`
	Monthly float64 `json:"monthly"`
}

// Counters holds today/month/total figures for orders or revenue.
type Counters struct {
	Today     float64 `json:"today"`
	Yesterday float64 `json:"yesterday"`
	ThisMonth float64 `json:"this_month"`
	LastMonth float64 `json:"last_month"`
	Total     float64 `json:"total" validate:"gte=0"`
	Change    Change  `json:"change"`
}

type MonthlyPoint struct {
	Month   string  `json:"month" validate:"required"`
	Revenue float64 `json:"revenue" validate:"gte=0"`
	Orders  float64 `json:"orders" validate:"gte=0"`
}

type TopProduct struct {
	ProductID     string  `json:"product_id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Category      *string `json:"category,omitempty"`
	TotalQuantity float64 `json:"total_quantity" validate:"gte=0"`
	TotalRevenue  float64 `json:"total_revenue" validate:"gte=0"`
	ImageURL      string  `json:"image_url,omitempty"`
}

// DashboardPayload is the forecasting API dashboard response.
type DashboardPayload struct {
	ProductCount int            `json:"product_count" validate:"gte=0"`
	Orders       Counters       `json:"orders"`
	Revenue      Counters       `json:"revenue"`
	MonthlyData  []MonthlyPoint `json:"monthly_data" validate:"dive"`
	TopProducts  []TopProduct   `json:"top_products" validate:"dive"`
}

// DashboardOverview is the dashboard payload plus the figures derived from it.
type DashboardOverview struct {
	SellerID             string          `json:"seller_id"`
	ProductCount         int             `json:"product_count"`
	Orders               Counters        `json:"orders"`
	Revenue              Counters        `json:"revenue"`
	MonthlyData          []MonthlyPoint  `json:"monthly_data"`
	TopProducts          []TopProduct    `json:"top_products"`
	AverageOrderValue    float64         `json:"average_order_value"`
	CategoryDistribution []CategorySlice `json:"category_distribution"`
}
