package forecast

import (
	"slices"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
)

// StatisticsHistory reduces daily stat rows to the counters of the most
// recent day and one revenue point per day. No rows yield zero counters and
// an empty series. Yesterday, last month and change figures are not part of
// the history rows and stay 0.
func StatisticsHistory(sellerID string, days int, rows []entity.DailyStat) entity.StatisticsHistory {
	out := entity.StatisticsHistory{SellerID: sellerID, Days: days, DailyRevenue: []entity.DailyRevenue{}}
	if len(rows) == 0 {
		return out
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b entity.DailyStat) int { return strings.Compare(a.Date, b.Date) })

	latest := sorted[len(sorted)-1]
	out.ProductCount = latest.ProductCount
	out.Orders = entity.Counters{Today: latest.TodayOrders, ThisMonth: latest.ThisMonthOrders, Total: latest.TotalOrders}
	out.Revenue = entity.Counters{Today: latest.TodayRevenue, ThisMonth: latest.ThisMonthRevenue, Total: latest.TotalRevenue}

	out.DailyRevenue = make([]entity.DailyRevenue, 0, len(sorted))
	for _, r := range sorted {
		out.DailyRevenue = append(out.DailyRevenue, entity.DailyRevenue{Date: r.Date, Month: shortMonth(r.Date), Revenue: r.TodayRevenue})
	}
	return out
}

func shortMonth(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	return t.Format("Jan")
}
