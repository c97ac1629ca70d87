package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// pool is the part of pgxpool.Pool the store uses.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

type Store struct {
	pool pool
	log  *zap.Logger
}

func New(dsn string, log *zap.Logger) (*Store, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: p, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS forecast_snapshots (
	seller_id           TEXT             NOT NULL,
	timeframe           TEXT             NOT NULL,
	day                 DATE             NOT NULL,
	growth_rate         INTEGER          NOT NULL,
	total_forecast      DOUBLE PRECISION NOT NULL,
	success_probability INTEGER          NOT NULL,
	computed_at         TIMESTAMPTZ      NOT NULL,
	requests            BIGINT           NOT NULL,
	PRIMARY KEY (seller_id, timeframe, day)
);
`
	_, err := s.pool.Exec(ctx, ddl)
	return err
}

const upsertConflict = ` ON CONFLICT (seller_id, timeframe, day) DO UPDATE SET
	growth_rate = CASE WHEN EXCLUDED.computed_at >= forecast_snapshots.computed_at
		THEN EXCLUDED.growth_rate ELSE forecast_snapshots.growth_rate END,
	total_forecast = CASE WHEN EXCLUDED.computed_at >= forecast_snapshots.computed_at
		THEN EXCLUDED.total_forecast ELSE forecast_snapshots.total_forecast END,
	success_probability = CASE WHEN EXCLUDED.computed_at >= forecast_snapshots.computed_at
		THEN EXCLUDED.success_probability ELSE forecast_snapshots.success_probability END,
	computed_at = GREATEST(EXCLUDED.computed_at, forecast_snapshots.computed_at),
	requests = forecast_snapshots.requests + EXCLUDED.requests`

// UpsertSnapshots implements service.SnapshotWriter
func (s *Store) UpsertSnapshots(ctx context.Context, rows []entity.Snapshot) error {
	if len(rows) == 0 {
		return nil
	}
	const cols = 8
	var sb strings.Builder
	sb.WriteString("INSERT INTO forecast_snapshots (seller_id, timeframe, day, growth_rate, total_forecast, success_probability, computed_at, requests) VALUES ")
	args := make([]any, 0, len(rows)*cols)
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte(',')
		}
		o := i*cols + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)", o, o+1, o+2, o+3, o+4, o+5, o+6, o+7)
		args = append(args, r.SellerID, r.Timeframe.String(), r.Day, r.GrowthRate, r.TotalForecast, r.SuccessProbability, r.ComputedAt, r.Requests)
	}
	sb.WriteString(upsertConflict)

	if _, err := s.pool.Exec(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("upsert %d snapshots: %w", len(rows), err)
	}
	s.log.Debug("snapshots upserted", zap.Int("rows", len(rows)))
	return nil
}

// QuerySnapshots implements service.SnapshotReader
func (s *Store) QuerySnapshots(ctx context.Context, sellerID string, tf entity.Timeframe, from, to time.Time) ([]entity.Snapshot, error) {
	const q = `SELECT day, growth_rate, total_forecast, success_probability, computed_at, requests
FROM forecast_snapshots WHERE seller_id=$1 AND timeframe=$2 AND day >= $3 AND day < $4 ORDER BY day`
	rows, err := s.pool.Query(ctx, q, sellerID, tf.String(), from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []entity.Snapshot{}
	for rows.Next() {
		sn := entity.Snapshot{SellerID: sellerID, Timeframe: tf}
		if err := rows.Scan(&sn.Day, &sn.GrowthRate, &sn.TotalForecast, &sn.SuccessProbability, &sn.ComputedAt, &sn.Requests); err != nil {
			return nil, err
		}
		sn.Day = sn.Day.UTC()
		sn.ComputedAt = sn.ComputedAt.UTC()
		out = append(out, sn)
	}
	return out, rows.Err()
}

func (s *Store) Close() { s.pool.Close() }
