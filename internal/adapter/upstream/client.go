package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/dayanaadylkhanova/seller-forecast/internal/metrics"
	"github.com/dayanaadylkhanova/seller-forecast/pkg/validator"
	"go.uber.org/zap"
)

const maxBody = 8 << 20

type Config struct {
	BaseURL string
	Token   string // used when the caller supplies no credential
	Timeout time.Duration
}

// Client talks to the forecasting API.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
	log   *zap.Logger
	v     *validator.Validator
}

func New(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("upstream: base url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("upstream: parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("upstream: unsupported scheme %q", base.Scheme)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		base:  base,
		token: cfg.Token,
		http:  &http.Client{Timeout: cfg.Timeout},
		log:   log,
		v:     validator.New(),
	}, nil
}

// SalesPredictions fetches the daily revenue predictions of a seller. An
// empty sellerID or "me" asks for the seller the credential belongs to.
func (c *Client) SalesPredictions(ctx context.Context, cred, sellerID string, tf entity.Timeframe) (entity.PredictionPayload, error) {
	if sellerID == "" {
		sellerID = "me"
	}
	q := url.Values{}
	q.Set("days", strconv.Itoa(tf.Days()))

	var p entity.PredictionPayload
	err := c.get(ctx, "predictions", cred, "/predictions/sales/seller/"+url.PathEscape(sellerID), q, &p)
	return p, err
}

func (c *Client) Dashboard(ctx context.Context, cred, sellerID string) (entity.DashboardPayload, error) {
	q := url.Values{}
	if sellerID != "" && sellerID != "me" {
		q.Set("seller_id", sellerID)
	}
	q.Set("_", strconv.FormatInt(time.Now().UnixMilli(), 10))

	var p entity.DashboardPayload
	err := c.get(ctx, "dashboard", cred, "/sellerdashboard/dashboard", q, &p)
	return p, err
}

// ProductPredictions fetches the daily unit and revenue predictions of one product.
func (c *Client) ProductPredictions(ctx context.Context, cred, productID string, tf entity.Timeframe) (entity.ProductPredictionPayload, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(tf.Days()))

	var p entity.ProductPredictionPayload
	err := c.get(ctx, "product_predictions", cred, "/predictions/sales/"+url.PathEscape(productID), q, &p)
	if err == nil && p.ProductID == "" {
		p.ProductID = productID
	}
	return p, err
}

// StatisticsHistory fetches the daily statistics rows of the last days days.
func (c *Client) StatisticsHistory(ctx context.Context, cred, sellerID string, days int) ([]entity.DailyStat, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	if sellerID != "" && sellerID != "me" {
		q.Set("seller_id", sellerID)
	}
	q.Set("_", strconv.FormatInt(time.Now().UnixMilli(), 10))

	var rows []entity.DailyStat
	if err := c.get(ctx, "history", cred, "/sellerdashboard/history", q, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []entity.DailyStat{}
	}
	return rows, nil
}

func (c *Client) get(ctx context.Context, endpoint, cred, path string, q url.Values, out any) error {
	if cred == "" {
		cred = c.token
	}
	auth, err := NormalizeCredential(cred)
	if err != nil {
		return err
	}

	u := *c.base
	u.Path += path
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", auth)

	start := time.Now()
	status := "error"
	defer func() {
		metrics.UpstreamRequests.WithLabelValues(endpoint, status).Inc()
		metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%s: read body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Detail: detailOf(body)}
		c.log.Warn("upstream error status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", se.Detail),
		)
		return se
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, endpoint, err)
	}
	if err := c.v.Validate(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, endpoint, err)
	}
	c.log.Debug("upstream ok",
		zap.String("endpoint", endpoint),
		zap.Duration("latency", time.Since(start)),
	)
	return nil
}

func detailOf(body []byte) string {
	var e struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal(body, &e) != nil || e.Detail == nil {
		return ""
	}
	if s, ok := e.Detail.(string); ok {
		return s
	}
	b, _ := json.Marshal(e.Detail)
	return string(b)
}
