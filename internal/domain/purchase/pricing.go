package purchase

import (
	"strconv"

	"github.com/shopspring/decimal"

	"quotecraft/internal/domain/catalog"
)

// EstimateTotal derives the price of a purchase from its selections: the
// chosen plan's discounted price per service, the answer surcharges, and the
// custom product prices. The client-submitted total stays authoritative;
// callers use the estimate to log disagreements, not to reject them.
func EstimateTotal(selections []ServiceSelection, customProducts []CustomProductInput) decimal.Decimal {
	total := decimal.Zero

	for _, sel := range selections {
		if sel.Service == nil {
			continue
		}
		chosen := sel.Service.PricingOptionByID(sel.ChosenPricingOptionID)
		if chosen == nil {
			continue
		}
		total = total.Add(chosen.DiscountedPrice())

		for _, ans := range sel.Answers {
			q := sel.Service.QuestionByID(ans.QuestionID)
			if q == nil {
				continue
			}
			total = total.Add(answerSurcharge(q, ans))
		}
	}

	for _, cp := range customProducts {
		total = total.Add(cp.Price)
	}

	return total
}

// answerSurcharge prices one answered question. Boolean-flavored questions
// charge their unit price when affirmed; option-bearing questions charge each
// selected option's additional price times the submitted quantity.
func answerSurcharge(q *catalog.Question, ans AnsweredQuestion) decimal.Decimal {
	surcharge := decimal.Zero

	switch q.Type() {
	case catalog.QuestionTypeBoolean, catalog.QuestionTypeExtraChoice:
		if ans.BoolAnswer {
			surcharge = surcharge.Add(q.UnitPrice())
		}
	}

	for label, rawQty := range ans.Options {
		opt := q.OptionByLabel(label)
		if opt == nil {
			continue
		}
		qty := int64(1)
		if n, err := strconv.ParseInt(rawQty, 10, 64); err == nil && n > 0 {
			qty = n
		}
		surcharge = surcharge.Add(opt.AdditionalPrice().Mul(decimal.NewFromInt(qty)))
	}

	return surcharge
}
