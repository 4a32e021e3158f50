package calculation

import (
	"math"

	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// GrowthFactor returns (1 + ratePercent/100)^years.
//
// The fractional power is taken in float64: shopspring/decimal v1.3 only
// supports integer exponents. Everything downstream of the factor stays in
// decimal.
func GrowthFactor(ratePercent decimal.Decimal, years float64) decimal.Decimal {
	if years == 0 || ratePercent.IsZero() {
		return decimalOne
	}
	base := 1 + ratePercent.InexactFloat64()/100
	return decimal.NewFromFloat(math.Pow(base, years))
}

// FutureValue compounds principal annually at ratePercent for a (possibly
// fractional) number of years.
func FutureValue(principal money.Money, ratePercent decimal.Decimal, years float64) money.Money {
	if years == 0 || ratePercent.IsZero() {
		return principal
	}
	return principal.Mul(GrowthFactor(ratePercent, years))
}

// PresentValue discounts a future amount back by years at ratePercent.
func PresentValue(futureValue money.Money, ratePercent decimal.Decimal, years float64) money.Money {
	if years == 0 || ratePercent.IsZero() {
		return futureValue
	}
	return futureValue.Div(GrowthFactor(ratePercent, years))
}

// ImpliedRate is the inverse of FutureValue: the annual rate, in percent, that
// grows from into to over years. Zero when years is not positive.
func ImpliedRate(from, to money.Money, years float64) decimal.Decimal {
	if years <= 0 || !from.IsPositive() || !to.IsPositive() {
		return decimal.Zero
	}
	ratio := to.Ratio(from).InexactFloat64()
	return decimal.NewFromFloat((math.Pow(ratio, 1/years) - 1) * 100)
}
