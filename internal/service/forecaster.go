package service

import (
	"context"
	"time"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/dayanaadylkhanova/seller-forecast/internal/forecast"
	"github.com/dayanaadylkhanova/seller-forecast/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Forecaster fetches predictions for a seller and turns them into summaries.
type Forecaster struct {
	log      *zap.Logger
	source   PredictionSource
	recorder SnapshotRecorderPort
	history  SnapshotReader
	now      func() time.Time
}

func NewForecaster(log *zap.Logger, src PredictionSource, rec SnapshotRecorderPort, hist SnapshotReader) *Forecaster {
	return &Forecaster{log: log, source: src, recorder: rec, history: hist, now: time.Now}
}

func (f *Forecaster) Forecast(ctx context.Context, cred, sellerID string, tf entity.Timeframe) (entity.Summary, error) {
	s, err := f.summarize(ctx, cred, sellerID, tf)
	if err != nil {
		return entity.Summary{}, err
	}
	f.record(sellerID, s)
	return s, nil
}

func (f *Forecaster) summarize(ctx context.Context, cred, sellerID string, tf entity.Timeframe) (entity.Summary, error) {
	p, err := f.source.SalesPredictions(ctx, cred, sellerID, tf)
	if err != nil {
		return entity.Summary{}, err
	}
	s := forecast.Summarize(p, tf)
	metrics.SummariesTotal.WithLabelValues(tf.String()).Inc()
	f.log.Debug("forecast computed",
		zap.String("seller_id", sellerID),
		zap.Stringer("timeframe", tf),
		zap.Int("points", len(p.PredictedRevenue)),
		zap.Int("growth_rate", s.GrowthRate),
	)
	return s, nil
}

// record stores a daily snapshot. "me" and "" are skipped: the real seller id is unknown there.
func (f *Forecaster) record(sellerID string, s entity.Summary) {
	if sellerID == "" || sellerID == "me" {
		return
	}
	f.recorder.Record(entity.Snapshot{
		SellerID:           sellerID,
		Timeframe:          s.Timeframe,
		GrowthRate:         s.GrowthRate,
		TotalForecast:      s.TotalForecast,
		SuccessProbability: s.SuccessProbability,
		ComputedAt:         f.now(),
	})
}

// Overview computes all three horizons concurrently; the first failure
// cancels the remaining fetches. Snapshots are recorded only when all three succeed.
func (f *Forecaster) Overview(ctx context.Context, cred, sellerID string) (entity.Overview, error) {
	out := entity.Overview{SellerID: sellerID}
	targets := []struct {
		tf  entity.Timeframe
		dst *entity.Summary
	}{
		{entity.SixMonths, &out.SixMonth},
		{entity.OneYear, &out.OneYear},
		{entity.FiveYears, &out.FiveYear},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			s, err := f.summarize(gctx, cred, sellerID, t.tf)
			if err != nil {
				return err
			}
			*t.dst = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entity.Overview{}, err
	}
	for _, t := range targets {
		f.record(sellerID, *t.dst)
	}
	return out, nil
}

func (f *Forecaster) Dashboard(ctx context.Context, cred, sellerID string) (entity.DashboardOverview, error) {
	p, err := f.source.Dashboard(ctx, cred, sellerID)
	if err != nil {
		return entity.DashboardOverview{}, err
	}
	return forecast.DashboardOverview(sellerID, p), nil
}

// ProductForecast summarizes the predictions of a single product. Product
// forecasts are not recorded as snapshots.
func (f *Forecaster) ProductForecast(ctx context.Context, cred, productID string, tf entity.Timeframe) (entity.ProductForecast, error) {
	p, err := f.source.ProductPredictions(ctx, cred, productID, tf)
	if err != nil {
		return entity.ProductForecast{}, err
	}
	pf := forecast.SummarizeProduct(p, tf)
	f.log.Debug("product forecast computed",
		zap.String("product_id", productID),
		zap.Stringer("timeframe", tf),
		zap.Int("points", len(p.PredictedRevenue)),
	)
	return pf, nil
}

func (f *Forecaster) Statistics(ctx context.Context, cred, sellerID string, days int) (entity.StatisticsHistory, error) {
	rows, err := f.source.StatisticsHistory(ctx, cred, sellerID, days)
	if err != nil {
		return entity.StatisticsHistory{}, err
	}
	return forecast.StatisticsHistory(sellerID, days, rows), nil
}

// History returns the recorded snapshots of the last days days, today included.
func (f *Forecaster) History(ctx context.Context, sellerID string, tf entity.Timeframe, days int) ([]entity.Snapshot, error) {
	if days <= 0 {
		days = 1
	}
	to := dayUTC(f.now()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)
	return f.history.QuerySnapshots(ctx, sellerID, tf, from, to)
}
