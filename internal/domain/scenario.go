package domain

import (
	"time"

	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// RateContext carries the index levels needed to turn a catalog spread into an
// absolute annual rate. It is always passed explicitly; the engine keeps no
// notion of a current policy rate.
type RateContext struct {
	// ReferenceRate is the floating policy rate (Selic), percent per year
	ReferenceRate decimal.Decimal `json:"reference_rate"`
	// ExpectedInflation is the inflation index projection (IPCA), percent per year
	ExpectedInflation decimal.Decimal `json:"expected_inflation"`
}

// Scenario is a held bond plus today's market conditions
type Scenario struct {
	Name           string          `json:"name"`
	Principal      money.Money     `json:"principal"`
	ContractedRate decimal.Decimal `json:"contracted_rate"`
	StartDate      time.Time       `json:"start_date"`
	MaturityDate   time.Time       `json:"maturity_date"`
	MarketRate     decimal.Decimal `json:"market_rate"`
	// AsOfDate is the valuation date; the zero value means today
	AsOfDate time.Time   `json:"as_of_date"`
	Rates    RateContext `json:"rates"`
}
