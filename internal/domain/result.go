package domain

import (
	"time"

	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CalculationMode identifies which engine operation produced a result
type CalculationMode string

const (
	ModeAtMaturity   CalculationMode = "at_maturity"
	ModeMarkToMarket CalculationMode = "mark_to_market"
	ModeReinvestment CalculationMode = "reinvestment"
)

// CalculationResult is the immutable output of one engine call.
//
// Years and Days depend on the mode: for at-maturity and reinvestment they are
// the full holding period; for mark-to-market Years is the time remaining to
// maturity and Days the days elapsed since purchase (the day count both taxes
// were looked up with).
type CalculationResult struct {
	Mode              CalculationMode `json:"mode"`
	Principal         money.Money     `json:"principal"`
	RatePercent       decimal.Decimal `json:"rate_percent"`
	MarketRatePercent decimal.Decimal `json:"market_rate_percent"`
	StartDate         time.Time       `json:"start_date"`
	MaturityDate      time.Time       `json:"maturity_date"`
	AsOfDate          time.Time       `json:"as_of_date"`

	// ContractedFutureValue is the payoff due at maturity at the contracted rate
	ContractedFutureValue money.Money `json:"contracted_future_value"`

	GrossValue     money.Money `json:"gross_value"`
	IncomeTax      money.Money `json:"income_tax"`
	TransactionTax money.Money `json:"transaction_tax"`
	NetValue       money.Money `json:"net_value"`
	NetReturn      money.Money `json:"net_return"`

	Years float64 `json:"years"`
	Days  int     `json:"days"`

	IncomeTaxRate      decimal.Decimal `json:"income_tax_rate"`
	TransactionTaxRate decimal.Decimal `json:"transaction_tax_rate"`
}

// Profit is the gross gain over principal, negative on a loss
func (r CalculationResult) Profit() money.Money {
	return r.GrossValue.Sub(r.Principal)
}

// TotalTax is income tax plus transaction tax
func (r CalculationResult) TotalTax() money.Money {
	return r.IncomeTax.Add(r.TransactionTax)
}
