package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/store/postgres"
	http_server "github.com/dayanaadylkhanova/seller-forecast/internal/adapter/transport/http"
	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/upstream"
	"github.com/dayanaadylkhanova/seller-forecast/internal/service"
	"github.com/dayanaadylkhanova/seller-forecast/pkg/config"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	store    *postgres.Store
	recorder *service.SnapshotRecorder
	server   *http_server.Server
}

func New(cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	// 1) Store (Postgres)
	st, err := postgres.New(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := st.Init(context.Background()); err != nil {
		st.Close()
		return nil, err
	}

	// 2) Клиент внешнего API прогнозов
	client, err := upstream.New(upstream.Config{
		BaseURL: cfg.ForecastAPIURL,
		Token:   cfg.ForecastAPIToken,
		Timeout: cfg.UpstreamTimeout,
	}, log)
	if err != nil {
		st.Close()
		return nil, err
	}

	// 3) Recorder + forecaster
	rec := service.NewSnapshotRecorder(log, st, cfg.Shards, cfg.FlushEvery)
	fc := service.NewForecaster(log, client, rec, st)

	// 4) HTTP server
	srv := http_server.NewServer(log, cfg.ListenAddr, fc, cfg.ForecastAPIToken, cfg.ReadMaxRangeDays)

	log.Info("app built",
		zap.String("name", info.Name),
		zap.String("release", info.Release),
		zap.String("commit", info.Commit),
		zap.String("build_time", info.BuildTime),
	)

	return &App{
		cfg:      cfg,
		info:     info,
		log:      log,
		store:    st,
		recorder: rec,
		server:   srv,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	// фоновый сброс снимков в БД
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.recorder.Run(bgCtx)

	httpErrCh := make(chan error, 1)
	go func() { httpErrCh <- a.server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ErrAppShutdownNormal
	case err := <-httpErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server failed", zap.Error(err))
			runErr = errors.Join(ErrAppStartup, err)
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	// Graceful shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	if err := a.server.Shutdown(shutdownCtx); err != nil && errors.Is(runErr, ErrAppShutdownNormal) {
		runErr = errors.Join(ErrAppShutdownWithError, err)
	}
	a.recorder.Stop(shutdownCtx)
	a.store.Close()

	return runErr
}
