package service

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

import (
	"context"
	"time"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
)

// ForecastPort is what the transport layer needs from the service.
type ForecastPort interface {
	Forecast(ctx context.Context, cred, sellerID string, tf entity.Timeframe) (entity.Summary, error)
	Overview(ctx context.Context, cred, sellerID string) (entity.Overview, error)
	Dashboard(ctx context.Context, cred, sellerID string) (entity.DashboardOverview, error)
	History(ctx context.Context, sellerID string, tf entity.Timeframe, days int) ([]entity.Snapshot, error)
	ProductForecast(ctx context.Context, cred, productID string, tf entity.Timeframe) (entity.ProductForecast, error)
	Statistics(ctx context.Context, cred, sellerID string, days int) (entity.StatisticsHistory, error)
}

// PredictionSource - порт к внешнему сервису прогнозов.
type PredictionSource interface {
	SalesPredictions(ctx context.Context, cred, sellerID string, tf entity.Timeframe) (entity.PredictionPayload, error)
	Dashboard(ctx context.Context, cred, sellerID string) (entity.DashboardPayload, error)
	ProductPredictions(ctx context.Context, cred, productID string, tf entity.Timeframe) (entity.ProductPredictionPayload, error)
	StatisticsHistory(ctx context.Context, cred, sellerID string, days int) ([]entity.DailyStat, error)
}

type SnapshotRecorderPort interface {
	Record(s entity.Snapshot)
	Run(ctx context.Context)
	Stop(ctx context.Context)
}

// SnapshotWriter - порт для записи дневных снимков прогноза в БД.
type SnapshotWriter interface {
	UpsertSnapshots(ctx context.Context, rows []entity.Snapshot) error
}

type SnapshotReader interface {
	QuerySnapshots(ctx context.Context, sellerID string, tf entity.Timeframe, from, to time.Time) ([]entity.Snapshot, error)
}
