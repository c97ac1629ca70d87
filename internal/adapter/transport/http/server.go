package http_server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/report"
	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/upstream"
	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/dayanaadylkhanova/seller-forecast/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	log          *zap.Logger
	addr         string
	svc          service.ForecastPort
	serviceToken string
	maxDays      int
	httpSrv      *http.Server
}

func NewServer(log *zap.Logger, addr string, svc service.ForecastPort, serviceToken string, maxDays int) *Server {
	s := &Server{log: log, addr: addr, svc: svc, serviceToken: serviceToken, maxDays: maxDays}
	s.httpSrv = &http.Server{Addr: addr, Handler: s.routes(), ReadHeaderTimeout: 10 * time.Second}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(s.log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/sellers/{sellerID}", func(r chi.Router) {
		r.Get("/forecast", s.handleForecast())
		r.Get("/forecast/overview", s.handleOverview())
		r.Get("/forecast/history", s.handleHistory())
		r.Get("/forecast/export", s.handleExport())
		r.Get("/dashboard", s.handleDashboard())
		r.Get("/statistics", s.handleStatistics())
		r.Get("/products/{productID}/forecast", s.handleProductForecast())
	})
	return r
}

func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func (s *Server) handleForecast() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred, ok := s.credential(w, r)
		if !ok {
			return
		}
		tf, err := entity.ParseTimeframe(r.URL.Query().Get("timeframe"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timeframe", false)
			return
		}
		sum, err := s.svc.Forecast(r.Context(), cred, chi.URLParam(r, "sellerID"), tf)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

func (s *Server) handleOverview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred, ok := s.credential(w, r)
		if !ok {
			return
		}
		ov, err := s.svc.Overview(r.Context(), cred, chi.URLParam(r, "sellerID"))
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ov)
	}
}

func (s *Server) handleDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred, ok := s.credential(w, r)
		if !ok {
			return
		}
		d, err := s.svc.Dashboard(r.Context(), cred, chi.URLParam(r, "sellerID"))
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// handleStatistics serves the statistics history for period=week|month|year|all.
func (s *Server) handleStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred, ok := s.credential(w, r)
		if !ok {
			return
		}
		days, err := entity.PeriodDays(r.URL.Query().Get("period"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid period", false)
			return
		}
		st, err := s.svc.Statistics(r.Context(), cred, chi.URLParam(r, "sellerID"), days)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func (s *Server) handleProductForecast() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred, ok := s.credential(w, r)
		if !ok {
			return
		}
		tf, err := entity.ParseTimeframe(r.URL.Query().Get("timeframe"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timeframe", false)
			return
		}
		pf, err := s.svc.ProductForecast(r.Context(), cred, chi.URLParam(r, "productID"), tf)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, pf)
	}
}

func (s *Server) handleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.credential(w, r); !ok {
			return
		}
		sellerID := chi.URLParam(r, "sellerID")
		if sellerID == "me" {
			writeError(w, http.StatusBadRequest, "history needs an explicit seller id", false)
			return
		}
		tf, err := entity.ParseTimeframe(r.URL.Query().Get("timeframe"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timeframe", false)
			return
		}
		days := 30
		if v := r.URL.Query().Get("days"); v != "" {
			days, err = strconv.Atoi(v)
			if err != nil || days <= 0 {
				writeError(w, http.StatusBadRequest, "invalid days", false)
				return
			}
		}
		if s.maxDays > 0 && days > s.maxDays {
			writeError(w, http.StatusBadRequest, "range too large", false)
			return
		}

		snaps, err := s.svc.History(r.Context(), sellerID, tf, days)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entity.HistoryResponse{SellerID: sellerID, Timeframe: tf, Snapshots: snaps})
	}
}

func (s *Server) handleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred, ok := s.credential(w, r)
		if !ok {
			return
		}
		tf, err := entity.ParseTimeframe(r.URL.Query().Get("timeframe"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timeframe", false)
			return
		}
		sellerID := chi.URLParam(r, "sellerID")
		sum, err := s.svc.Forecast(r.Context(), cred, sellerID, tf)
		if err != nil {
			s.fail(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := report.WriteSummaryXLSX(&buf, sellerID, sum); err != nil {
			s.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", report.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="forecast-`+tf.String()+`.xlsx"`)
		_, _ = w.Write(buf.Bytes())
	}
}

// credential picks the caller's Authorization header, falling back to the
// service token.
func (s *Server) credential(w http.ResponseWriter, r *http.Request) (string, bool) {
	cred := r.Header.Get("Authorization")
	if cred == "" {
		cred = s.serviceToken
	}
	if cred == "" {
		writeError(w, http.StatusUnauthorized, "authentication token is required", false)
		return "", false
	}
	return cred, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var se *upstream.StatusError
	switch {
	case errors.Is(err, upstream.ErrInvalidCredential), errors.Is(err, upstream.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error(), false)
	case errors.As(err, &se), errors.Is(err, upstream.ErrInvalidPayload):
		s.log.Warn("upstream", zap.Error(err), zap.String("request_id", middleware.GetReqID(r.Context())))
		writeError(w, http.StatusBadGateway, err.Error(), true)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "forecasting service timed out", true)
	default:
		s.log.Error("request failed", zap.Error(err), zap.String("request_id", middleware.GetReqID(r.Context())))
		writeError(w, http.StatusInternalServerError, "internal error", true)
	}
}

type errorBody struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

func writeError(w http.ResponseWriter, code int, msg string, retryable bool) {
	writeJSON(w, code, errorBody{Error: msg, Retryable: retryable})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
