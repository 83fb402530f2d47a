package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTotal_PlanPriceOnly(t *testing.T) {
	svc := newWindowCleaning(t)

	// Basic: 100 with a 10% discount.
	total := EstimateTotal([]ServiceSelection{
		{Service: svc, ChosenPricingOptionID: 1},
	}, nil)
	assert.True(t, dec("90").Equal(total), "got %s", total)
}

func TestEstimateTotal_BooleanSurcharge(t *testing.T) {
	svc := newWindowCleaning(t)
	gutters, err := svc.AddQuestion("Gutter cleaning?", "boolean", dec("40"), false, 5)
	assert.NoError(t, err)
	gutters.SetID(14)

	total := EstimateTotal([]ServiceSelection{
		{
			Service:               svc,
			ChosenPricingOptionID: 2,
			Answers: []AnsweredQuestion{
				{QuestionID: 14, BoolAnswer: true},
			},
		},
	}, nil)
	// Premium 180 + affirmed boolean 40.
	assert.True(t, dec("220").Equal(total), "got %s", total)

	declined := EstimateTotal([]ServiceSelection{
		{
			Service:               svc,
			ChosenPricingOptionID: 2,
			Answers: []AnsweredQuestion{
				{QuestionID: 14, BoolAnswer: false},
			},
		},
	}, nil)
	assert.True(t, dec("180").Equal(declined), "got %s", declined)
}

func TestEstimateTotal_OptionQuantities(t *testing.T) {
	svc := newWindowCleaning(t)

	total := EstimateTotal([]ServiceSelection{
		{
			Service:               svc,
			ChosenPricingOptionID: 2,
			Answers: []AnsweredQuestion{
				// "20 to 40" carries a 15 surcharge; quantity 2 doubles it.
				{QuestionID: 12, Options: map[string]string{"20 to 40": "2"}},
			},
		},
	}, nil)
	// Premium 180 + 15×2.
	assert.True(t, dec("210").Equal(total), "got %s", total)
}

func TestEstimateTotal_MalformedQuantityCountsOnce(t *testing.T) {
	svc := newWindowCleaning(t)

	total := EstimateTotal([]ServiceSelection{
		{
			Service:               svc,
			ChosenPricingOptionID: 2,
			Answers: []AnsweredQuestion{
				{QuestionID: 12, Options: map[string]string{"20 to 40": "a lot"}},
			},
		},
	}, nil)
	assert.True(t, dec("195").Equal(total), "got %s", total)
}

func TestEstimateTotal_CustomProductsAndUnknownSelections(t *testing.T) {
	svc := newWindowCleaning(t)

	total := EstimateTotal([]ServiceSelection{
		{Service: svc, ChosenPricingOptionID: 999},
		{Service: nil, ChosenPricingOptionID: 1},
	}, []CustomProductInput{
		{Name: "Chandelier dusting", Price: dec("55")},
		{Name: "Skylight", Price: dec("20")},
	})
	// Unknown plan and missing service contribute nothing.
	assert.True(t, dec("75").Equal(total), "got %s", total)
}
