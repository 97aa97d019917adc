package model_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/model"
)

func TestImportLeavesDecimalEncodingAlone(t *testing.T) {
	assert.False(t, decimal.MarshalJSONWithoutQuotes)

	raw, err := json.Marshal(model.Option{Tag: "extra-day", Name: "Extra day", Price: decimal.NewNullDecimal(decimal.NewFromInt(50))})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":"50"`)
}

func TestPriceDecodesEitherEncoding(t *testing.T) {
	for _, in := range []string{`{"price":49.5}`, `{"price":"49.5"}`} {
		var plan model.PricingPlan
		require.NoError(t, json.Unmarshal([]byte(in), &plan), in)
		assert.True(t, decimal.RequireFromString("49.5").Equal(plan.Price), in)
	}
}
