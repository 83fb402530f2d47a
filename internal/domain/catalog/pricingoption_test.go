package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewPricingOption_ValidInput(t *testing.T) {
	po, err := NewPricingOption("Standard", dec("10"), dec("100"))

	require.NoError(t, err)
	require.NotNil(t, po)
	assert.Equal(t, "Standard", po.Name())
	assert.True(t, po.IsActive())
	assert.True(t, dec("10").Equal(po.Discount()))
	assert.True(t, dec("100").Equal(po.BasePrice()))
}

func TestNewPricingOption_EmptyName(t *testing.T) {
	po, err := NewPricingOption("  ", dec("0"), dec("10"))

	assert.Error(t, err)
	assert.Nil(t, po)
}

func TestNewPricingOption_DiscountOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		discount string
	}{
		{"negative", "-1"},
		{"above hundred", "100.01"},
		{"far above", "250"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			po, err := NewPricingOption("Plan", dec(tc.discount), dec("100"))
			assert.Error(t, err)
			assert.Nil(t, po)
			assert.Contains(t, err.Error(), "discount must be between 0 and 100")
		})
	}
}

func TestNewPricingOption_NegativeBasePrice(t *testing.T) {
	po, err := NewPricingOption("Plan", dec("0"), dec("-5"))

	assert.Error(t, err)
	assert.Nil(t, po)
}

func TestPricingOption_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice string
		discount  string
		want      string
	}{
		{"ten percent off hundred", "100", "10", "90"},
		{"zero discount", "59.99", "0", "59.99"},
		{"full discount", "100", "100", "0"},
		{"fractional discount", "200", "12.5", "175"},
		{"zero base price", "0", "50", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			po, err := NewPricingOption("Plan", dec(tc.discount), dec(tc.basePrice))
			require.NoError(t, err)
			assert.True(t, dec(tc.want).Equal(po.DiscountedPrice()),
				"got %s, want %s", po.DiscountedPrice(), tc.want)
		})
	}
}

func TestPricingOption_DiscountedPriceBounds(t *testing.T) {
	// 0 <= discounted <= base for any discount in [0,100].
	for _, discount := range []string{"0", "0.01", "25", "50", "99.99", "100"} {
		po, err := NewPricingOption("Plan", dec(discount), dec("149.50"))
		require.NoError(t, err)

		got := po.DiscountedPrice()
		assert.False(t, got.LessThan(decimal.Zero), "discount %s yielded negative price", discount)
		assert.False(t, got.GreaterThan(po.BasePrice()), "discount %s yielded price above base", discount)
	}
}

func TestPricingOption_DiscountedPriceIdempotent(t *testing.T) {
	po, err := NewPricingOption("Plan", dec("33.33"), dec("100"))
	require.NoError(t, err)

	first := po.DiscountedPrice()
	second := po.DiscountedPrice()
	assert.True(t, first.Equal(second))
}

func TestPricingOption_IncludedFeatureNames(t *testing.T) {
	po := ReconstructPricingOption(1, "Plan", dec("0"), dec("10"), true, timeNow(), []FeatureInclusion{
		{FeatureName: "Interior", Included: true},
		{FeatureName: "Exterior", Included: false},
		{FeatureName: "Screens", Included: true},
	})

	assert.Equal(t, []string{"Interior", "Screens"}, po.IncludedFeatureNames())
}
