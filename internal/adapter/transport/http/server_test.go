package http_server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/report"
	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/upstream"
	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/dayanaadylkhanova/seller-forecast/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, token string) (*mocks.MockForecastPort, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockForecastPort(ctrl)
	s := NewServer(zap.NewNop(), ":0", svc, token, 90)
	return svc, s.Handler()
}

func do(h http.Handler, method, target, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t, "")
	rec := do(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestForecast_OK(t *testing.T) {
	svc, h := newTestServer(t, "")
	svc.EXPECT().
		Forecast(gomock.Any(), "Bearer abc", "s-1", entity.SixMonths).
		Return(entity.Summary{Timeframe: entity.SixMonths, GrowthRate: 12, TotalForecast: 300}, nil)

	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast?timeframe=6months", "Bearer abc")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "6months", got["timeframe"])
	assert.EqualValues(t, 12, got["growth_rate"])
}

func TestForecast_FallsBackToServiceToken(t *testing.T) {
	svc, h := newTestServer(t, "service-token")
	svc.EXPECT().
		Forecast(gomock.Any(), "service-token", "me", entity.OneYear).
		Return(entity.Summary{Timeframe: entity.OneYear}, nil)

	rec := do(h, http.MethodGet, "/api/v1/sellers/me/forecast", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestForecast_NoCredential(t *testing.T) {
	_, h := newTestServer(t, "")
	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decodeError(t, rec).Retryable)
}

func TestForecast_BadTimeframe(t *testing.T) {
	_, h := newTestServer(t, "")
	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast?timeframe=decade", "Bearer abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForecast_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      int
		retryable bool
	}{
		{"bad credential", upstream.ErrInvalidCredential, http.StatusUnauthorized, false},
		{"upstream 401", &upstream.StatusError{Endpoint: "predictions", Code: 401}, http.StatusUnauthorized, false},
		{"upstream 500", &upstream.StatusError{Endpoint: "predictions", Code: 500}, http.StatusBadGateway, true},
		{"bad payload", errors.Join(upstream.ErrInvalidPayload, errors.New("confidence")), http.StatusBadGateway, true},
		{"other", errors.New("boom"), http.StatusInternalServerError, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, h := newTestServer(t, "")
			svc.EXPECT().Forecast(gomock.Any(), gomock.Any(), "s-1", entity.OneYear).Return(entity.Summary{}, tc.err)

			rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast", "Bearer abc")
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.retryable, decodeError(t, rec).Retryable)
		})
	}
}

func TestOverview_OK(t *testing.T) {
	svc, h := newTestServer(t, "")
	svc.EXPECT().Overview(gomock.Any(), "Bearer abc", "s-1").Return(entity.Overview{SellerID: "s-1"}, nil)

	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast/overview", "Bearer abc")
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s-1", got["seller_id"])
}

func TestDashboard_OK(t *testing.T) {
	svc, h := newTestServer(t, "")
	svc.EXPECT().Dashboard(gomock.Any(), "Bearer abc", "s-1").
		Return(entity.DashboardOverview{SellerID: "s-1", AverageOrderValue: 25}, nil)

	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/dashboard", "Bearer abc")
	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.DashboardOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 25.0, got.AverageOrderValue)
}

func TestHistory(t *testing.T) {
	t.Run("default days", func(t *testing.T) {
		svc, h := newTestServer(t, "")
		svc.EXPECT().History(gomock.Any(), "s-1", entity.FiveYears, 30).Return([]entity.Snapshot{}, nil)

		rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast/history?timeframe=5years", "Bearer abc")
		require.Equal(t, http.StatusOK, rec.Code)
		var got entity.HistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "s-1", got.SellerID)
		assert.Equal(t, entity.FiveYears, got.Timeframe)
		assert.Empty(t, got.Snapshots)
	})

	for _, q := range []string{"days=0", "days=abc", "days=91", "timeframe=bad"} {
		t.Run(q, func(t *testing.T) {
			_, h := newTestServer(t, "")
			rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast/history?"+q, "Bearer abc")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("me is rejected", func(t *testing.T) {
		_, h := newTestServer(t, "")
		rec := do(h, http.MethodGet, "/api/v1/sellers/me/forecast/history", "Bearer abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExport_XLSX(t *testing.T) {
	svc, h := newTestServer(t, "")
	svc.EXPECT().Forecast(gomock.Any(), "Bearer abc", "s-1", entity.OneYear).
		Return(entity.Summary{
			Timeframe:        entity.OneYear,
			RevenueForecasts: []entity.Bucket{{Label: "Q1", Amount: 10}},
		}, nil)

	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/forecast/export?timeframe=1year", "Bearer abc")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "forecast-1year.xlsx")
	// xlsx is a zip archive
	assert.Equal(t, "PK", rec.Body.String()[:2])
}

func TestProductForecast_OK(t *testing.T) {
	svc, h := newTestServer(t, "")
	svc.EXPECT().ProductForecast(gomock.Any(), "Bearer abc", "p-9", entity.FiveYears).
		Return(entity.ProductForecast{ProductID: "p-9", ProductName: "Lamp", Timeframe: entity.FiveYears, TotalSales: 7}, nil)

	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/products/p-9/forecast?timeframe=5years", "Bearer abc")
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "p-9", got["product_id"])
	assert.Equal(t, "5years", got["timeframe"])
	assert.EqualValues(t, 7, got["total_sales"])
}

func TestProductForecast_BadTimeframe(t *testing.T) {
	_, h := newTestServer(t, "")
	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/products/p-9/forecast?timeframe=week", "Bearer abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductForecast_UpstreamError(t *testing.T) {
	svc, h := newTestServer(t, "")
	svc.EXPECT().ProductForecast(gomock.Any(), gomock.Any(), "p-9", entity.OneYear).
		Return(entity.ProductForecast{}, &upstream.StatusError{Endpoint: "product_predictions", Code: 404})

	rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/products/p-9/forecast", "Bearer abc")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.True(t, decodeError(t, rec).Retryable)
}

func TestStatistics(t *testing.T) {
	periods := map[string]int{"": 365, "all": 365, "year": 365, "month": 30, "week": 7}
	for period, days := range periods {
		t.Run("period="+period, func(t *testing.T) {
			svc, h := newTestServer(t, "")
			svc.EXPECT().Statistics(gomock.Any(), "Bearer abc", "s-1", days).
				Return(entity.StatisticsHistory{SellerID: "s-1", Days: days, DailyRevenue: []entity.DailyRevenue{}}, nil)

			rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/statistics?period="+period, "Bearer abc")
			require.Equal(t, http.StatusOK, rec.Code)
			var got entity.StatisticsHistory
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, days, got.Days)
			assert.NotNil(t, got.DailyRevenue)
		})
	}

	t.Run("bad period", func(t *testing.T) {
		_, h := newTestServer(t, "")
		rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/statistics?period=decade", "Bearer abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no credential", func(t *testing.T) {
		_, h := newTestServer(t, "")
		rec := do(h, http.MethodGet, "/api/v1/sellers/s-1/statistics", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
