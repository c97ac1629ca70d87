package forecast

import (
	"fmt"
	"strings"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
)

var baseRecommendations = [...]string{
	"Focus on products with the highest projected revenue",
	"Consider expanding your catalog in fast-growing categories",
	"Optimize pricing strategy based on market trends",
	"Add richer product photos and videos for higher engagement",
	"Target marketing efforts on high-demand product categories",
}

// GenerateRecommendations returns the five dashboard recommendations. A
// non-empty topPerformer is named in the first one.
func GenerateRecommendations(topPerformer string) []string {
	out := make([]string, len(baseRecommendations))
	copy(out, baseRecommendations[:])
	if name := strings.TrimSpace(topPerformer); name != "" {
		out[0] = fmt.Sprintf("Focus on products like \"%s\" with the highest projected revenue", name)
	}
	return out
}

// ProductPerformance ranks products in payload order: the first scores the
// confidence percentage (or 50 without one) and each next one 5 less.
func ProductPerformance(products []entity.ProductRecord, confidence float64) []entity.ProductScore {
	base := 50
	if confidence > 0 {
		base = SuccessProbability(confidence)
	}
	out := make([]entity.ProductScore, 0, len(products))
	for i, p := range products {
		out = append(out, entity.ProductScore{Product: p.Name, Score: base - i*5})
	}
	return out
}
