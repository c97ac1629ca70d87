package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidPayload    = errors.New("invalid payload")
)

// StatusError is a non-2xx answer from the forecasting API.
type StatusError struct {
	Endpoint string
	Code     int
	Detail   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: upstream status %d", e.Endpoint, e.Code)
	if e.Detail != "" {
		msg += " - " + e.Detail
	}
	return msg
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}
