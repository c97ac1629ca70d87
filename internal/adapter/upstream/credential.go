package upstream

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// NormalizeCredential returns an Authorization header value for token. The
// token must look like a JWT; its signature is checked by the forecasting
// API, not here.
func NormalizeCredential(token string) (string, error) {
	raw := strings.TrimSpace(token)
	if len(raw) >= len(bearerPrefix) && strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		raw = strings.TrimSpace(raw[len(bearerPrefix):])
	}
	if len(raw) < 10 {
		return "", ErrInvalidCredential
	}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return bearerPrefix + raw, nil
}
