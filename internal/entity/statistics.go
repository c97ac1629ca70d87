package entity

import (
	"errors"
	"strings"
)

var ErrUnknownPeriod = errors.New("unknown period")

// PeriodDays maps a statistics period to the number of days requested upstream.
func PeriodDays(period string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", "all", "year":
		return 365, nil
	case "month":
		return 30, nil
	case "week":
		return 7, nil
	}
	return 0, ErrUnknownPeriod
}

// DailyStat is one row of the seller statistics history, oldest first.
type DailyStat struct {
	Date             string  `json:"date" validate:"required"` // YYYY-MM-DD
	ProductCount     int     `json:"product_count" validate:"gte=0"`
	TodayOrders      float64 `json:"today_orders" validate:"gte=0"`
	ThisMonthOrders  float64 `json:"this_month_orders" validate:"gte=0"`
	TotalOrders      float64 `json:"total_orders" validate:"gte=0"`
	TodayRevenue     float64 `json:"today_revenue" validate:"gte=0"`
	ThisMonthRevenue float64 `json:"this_month_revenue" validate:"gte=0"`
	TotalRevenue     float64 `json:"total_revenue" validate:"gte=0"`
}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Month   string  `json:"month"` // short month name, "" when the date does not parse
	Revenue float64 `json:"revenue"`
}

// StatisticsHistory is the latest counters of a seller plus revenue per day.
type StatisticsHistory struct {
	SellerID     string         `json:"seller_id"`
	Days         int            `json:"days"`
	ProductCount int            `json:"product_count"`
	Orders       Counters       `json:"orders"`
	Revenue      Counters       `json:"revenue"`
	DailyRevenue []DailyRevenue `json:"daily_revenue"`
}
