package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenAddr       string
	DatabaseURL      string
	LogLevel         string
	FlushEvery       time.Duration
	Shards           int
	MaxCPU           int
	ReadMaxRangeDays int
	ShutdownWait     time.Duration

	// upstream forecasting API
	ForecastAPIURL   string
	ForecastAPIToken string
	UpstreamTimeout  time.Duration
}

func Parse() (*Config, error) {
	var errs []error
	c := &Config{}
	c.ListenAddr = getenv("LISTEN_ADDR", ":3000")
	c.DatabaseURL = getenv("DATABASE_URL", "")
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.FlushEvery = mustDuration(getenv("FLUSH_EVERY", "1s"), time.Second)
	c.Shards = envInt("SHARDS", 64, &errs)
	c.MaxCPU = envInt("MAX_CPU", 0, &errs)
	c.ReadMaxRangeDays = envInt("READ_MAX_RANGE_DAYS", 90, &errs)
	c.ShutdownWait = mustDuration(getenv("SHUTDOWN_WAIT", "5s"), 5*time.Second)
	c.ForecastAPIURL = getenv("FORECAST_API_URL", "")
	c.ForecastAPIToken = getenv("FORECAST_API_TOKEN", "")
	c.UpstreamTimeout = mustDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second)

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.ForecastAPIURL == "" {
		errs = append(errs, errors.New("FORECAST_API_URL is required"))
	} else if u, err := url.Parse(c.ForecastAPIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, errors.New("FORECAST_API_URL must be an absolute http(s) url"))
	}
	if c.Shards <= 0 {
		errs = append(errs, errors.New("SHARDS must be > 0"))
	}
	if c.ReadMaxRangeDays < 0 {
		errs = append(errs, errors.New("READ_MAX_RANGE_DAYS must be >= 0"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt reads an integer variable; a value that does not parse is reported in errs.
func envInt(k string, def int, errs *[]error) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", k, v))
		return def
	}
	return n
}

func mustDuration(s string, def time.Duration) time.Duration {
	d, _ := time.ParseDuration(s)
	if d <= 0 {
		return def
	}
	return d
}
