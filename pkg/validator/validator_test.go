package validator

import (
	"errors"
	"testing"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ValidPayload(t *testing.T) {
	v := New()
	p := entity.PredictionPayload{
		PredictedRevenue: []float64{0, 1.5, 20},
		Products:         []entity.ProductRecord{{Name: "A"}},
		Confidence:       0.9,
	}
	assert.NoError(t, v.Struct(p))
	assert.NoError(t, v.Struct(entity.PredictionPayload{}))
}

func TestStruct_RejectsMalformedPayload(t *testing.T) {
	v := New()
	p := entity.PredictionPayload{
		PredictedRevenue: []float64{3, -1},
		Products:         []entity.ProductRecord{{Name: ""}},
		Confidence:       1.5,
	}

	err := v.Struct(p)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be >= 0", verr.Fields["predicted_revenue[1]"])
	assert.Equal(t, "is required", verr.Fields["products[0].name"])
	assert.Equal(t, "must be <= 1", verr.Fields["confidence"])
	assert.Contains(t, err.Error(), "validation failed: ")
}

func TestValidate_SliceOfStructs(t *testing.T) {
	v := New()

	rows := []entity.DailyStat{
		{Date: "2026-10-18", TodayRevenue: 5},
		{Date: "", TodayRevenue: 1},
		{Date: "2026-10-19", TotalOrders: -2},
	}
	err := v.Validate(&rows)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, map[string]string{
		"[1].date":         "is required",
		"[2].total_orders": "must be >= 0",
	}, ve.Fields)

	assert.NoError(t, v.Validate(rows[:1]))
	assert.NoError(t, v.Validate(&[]entity.DailyStat{}))
}

func TestValidate_StructPointer(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&entity.PredictionPayload{Confidence: 0.5}))
	assert.Error(t, v.Validate(&entity.PredictionPayload{Confidence: 2}))
}
