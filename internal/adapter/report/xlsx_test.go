package report

import (
	"bytes"
	"testing"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/dayanaadylkhanova/seller-forecast/internal/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteSummaryXLSX(t *testing.T) {
	cat := "Office"
	s := forecast.Summarize(entity.PredictionPayload{
		PredictedRevenue: []float64{10, 10, 10, 20, 20, 20},
		Products:         []entity.ProductRecord{{Name: "Desk", Category: &cat}, {Name: "Mug"}},
		Confidence:       0.9,
	}, entity.OneYear)

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryXLSX(&buf, "s1", s))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Forecast", "Categories", "Products", "Recommendations"}, f.GetSheetList())

	rows, err := f.GetRows("Forecast")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Period", "Amount"}, {"Q1", "90"}, {"Total", "90"}}, rows)

	v, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "100", v)

	cats, err := f.GetRows("Categories")
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Office", cats[1][0])
	assert.Equal(t, "Uncategorized", cats[2][0])

	recs, err := f.GetRows("Recommendations")
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Contains(t, recs[0][0], `"Desk"`)
}
