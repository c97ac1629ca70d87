package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeframe(t *testing.T) {
	cases := map[string]Timeframe{
		"6months": SixMonths,
		"6-month": SixMonths,
		"1year":   OneYear,
		"":        OneYear,
		"1-YEAR":  OneYear,
		"5years":  FiveYears,
		" 5-year": FiveYears,
	}
	for in, want := range cases {
		got, err := ParseTimeframe(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTimeframe("10years")
	assert.ErrorIs(t, err, ErrUnknownTimeframe)
}

func TestTimeframe_Days(t *testing.T) {
	assert.Equal(t, 180, SixMonths.Days())
	assert.Equal(t, 365, OneYear.Days())
	assert.Equal(t, 1825, FiveYears.Days())
}

func TestPredictionPayload_DecodesNullCategory(t *testing.T) {
	raw := `{"predicted_revenue":[1,2.5],"products":[{"name":"A","category":null},{"name":"B","category":"X"}],"confidence":0.7}`

	var p PredictionPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, []float64{1, 2.5}, p.PredictedRevenue)
	require.Len(t, p.Products, 2)
	assert.Nil(t, p.Products[0].Category)
	require.NotNil(t, p.Products[1].Category)
	assert.Equal(t, "X", *p.Products[1].Category)
}

func TestSummary_TimeframeJSON(t *testing.T) {
	b, err := json.Marshal(Summary{Timeframe: FiveYears})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"timeframe":"5years"`)
}
