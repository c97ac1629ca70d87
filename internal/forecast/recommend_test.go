package forecast

import (
	"testing"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecommendations(t *testing.T) {
	generic := GenerateRecommendations("")
	require.Len(t, generic, 5)
	assert.Equal(t, "Focus on products with the highest projected revenue", generic[0])

	named := GenerateRecommendations("Wool Scarf")
	require.Len(t, named, 5)
	assert.Equal(t, `Focus on products like "Wool Scarf" with the highest projected revenue`, named[0])
	assert.Equal(t, generic[1:], named[1:])

	assert.Equal(t, generic, GenerateRecommendations("   "))
}

func TestGenerateRecommendations_NameIsNotEscaped(t *testing.T) {
	got := GenerateRecommendations(`12" Pan`)
	assert.Equal(t, `Focus on products like "12" Pan" with the highest projected revenue`, got[0])
}

func TestGenerateRecommendations_ReturnsFreshSlice(t *testing.T) {
	a := GenerateRecommendations("")
	a[1] = "changed"
	b := GenerateRecommendations("")
	assert.NotEqual(t, "changed", b[1])
}

func TestProductPerformance(t *testing.T) {
	products := []entity.ProductRecord{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	assert.Equal(t, []entity.ProductScore{
		{Product: "A", Score: 90},
		{Product: "B", Score: 85},
		{Product: "C", Score: 80},
	}, ProductPerformance(products, 0.9))

	assert.Equal(t, []entity.ProductScore{
		{Product: "A", Score: 50},
		{Product: "B", Score: 45},
		{Product: "C", Score: 40},
	}, ProductPerformance(products, 0))

	assert.Empty(t, ProductPerformance(nil, 0.5))
}
