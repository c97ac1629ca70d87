package forecast

import "github.com/dayanaadylkhanova/seller-forecast/internal/entity"

// Summarize runs the whole aggregation pipeline over one prediction payload.
func Summarize(p entity.PredictionPayload, tf entity.Timeframe) entity.Summary {
	series := entity.RawSeries(p.PredictedRevenue)
	perf := ProductPerformance(p.Products, p.Confidence)

	var top string
	if len(perf) > 0 {
		top = perf[0].Product
	}

	return entity.Summary{
		Timeframe:            tf,
		RevenueForecasts:     BucketPredictions(series, tf),
		TotalForecast:        sum(series),
		GrowthRate:           GrowthRate(series),
		ProductPerformance:   perf,
		SuccessProbability:   SuccessProbability(p.Confidence),
		CategoryDistribution: CategoryShareByCount(p.Products),
		Recommendations:      GenerateRecommendations(top),
	}
}

// DashboardOverview derives the average order value and the revenue split
// by category of the top products.
func DashboardOverview(sellerID string, p entity.DashboardPayload) entity.DashboardOverview {
	products := make([]entity.ProductRecord, 0, len(p.TopProducts))
	revenue := make(map[string]float64, len(p.TopProducts))
	for _, tp := range p.TopProducts {
		rec := entity.ProductRecord{ID: tp.ProductID, Name: tp.Name, Category: tp.Category}
		if _, dup := revenue[rec.Key()]; dup {
			revenue[rec.Key()] += tp.TotalRevenue
			continue
		}
		products = append(products, rec)
		revenue[rec.Key()] = tp.TotalRevenue
	}

	aov := 0.0
	if p.Orders.Total > 0 {
		aov = p.Revenue.Total / p.Orders.Total
	}

	return entity.DashboardOverview{
		SellerID:             sellerID,
		ProductCount:         p.ProductCount,
		Orders:               p.Orders,
		Revenue:              p.Revenue,
		MonthlyData:          nonNil(p.MonthlyData),
		TopProducts:          nonNil(p.TopProducts),
		AverageOrderValue:    aov,
		CategoryDistribution: CategoryDistribution(products, revenue),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// SummarizeProduct buckets the revenue and unit series of one product the
// same way Summarize does for a seller.
func SummarizeProduct(p entity.ProductPredictionPayload, tf entity.Timeframe) entity.ProductForecast {
	revenue := entity.RawSeries(p.PredictedRevenue)
	sales := entity.RawSeries(p.PredictedSales)
	return entity.ProductForecast{
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		Timeframe:          tf,
		RevenueForecasts:   BucketPredictions(revenue, tf),
		SalesForecasts:     BucketPredictions(sales, tf),
		TotalRevenue:       sum(revenue),
		TotalSales:         sum(sales),
		GrowthRate:         GrowthRate(revenue),
		SalesGrowthRate:    GrowthRate(sales),
		SuccessProbability: SuccessProbability(p.Confidence),
	}
}
