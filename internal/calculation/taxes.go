package calculation

import (
	"fmt"

	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TAX SCHEDULE ASSUMPTIONS:
//
// 1. Income tax (IR) on Treasury bonds is regressive with the holding period
//    and applies to the profit of every redemption, early or at maturity.
//
// 2. The transaction tax (IOF) applies only to redemptions within 30 days of
//    purchase. Its daily rates are the published table, not a formula.
//
// 3. Both rates are looked up with the same day count inside one calculation.

// TaxRateStep is one row of a step table: days up to and including MaxDays pay Rate
type TaxRateStep struct {
	MaxDays int
	Rate    decimal.Decimal
}

// TaxSchedule maps a holding period in whole days to a fractional tax rate
type TaxSchedule struct {
	Name   string
	Steps  []TaxRateStep
	Beyond decimal.Decimal // rate for days past the last step
}

// RateFor returns the rate for the first step whose MaxDays covers days.
// It is total: every integer maps to a rate.
func (s TaxSchedule) RateFor(days int) decimal.Decimal {
	for _, step := range s.Steps {
		if days <= step.MaxDays {
			return step.Rate
		}
	}
	return s.Beyond
}

// Validate checks the steps are strictly ascending and rates are fractions in [0, 1]
func (s TaxSchedule) Validate() error {
	check := func(rate decimal.Decimal) error {
		if rate.IsNegative() || rate.GreaterThan(decimalOne) {
			return fmt.Errorf("%w: %s schedule rate %s outside [0, 1]", ErrInvalidInput, s.Name, rate)
		}
		return nil
	}
	for i, step := range s.Steps {
		if i > 0 && step.MaxDays <= s.Steps[i-1].MaxDays {
			return fmt.Errorf("%w: %s schedule steps must ascend (step %d: %d <= %d)",
				ErrInvalidInput, s.Name, i, step.MaxDays, s.Steps[i-1].MaxDays)
		}
		if err := check(step.Rate); err != nil {
			return err
		}
	}
	return check(s.Beyond)
}

func pct(p int64) decimal.Decimal {
	return decimal.New(p, -2)
}

// iofTable is the published daily IOF percentage for redemption on day 1 through 29
var iofTable = []int64{
	96, 93, 90, 86, 83, 80, 76, 73, 70, 66,
	63, 60, 56, 53, 50, 46, 43, 40, 36, 33,
	30, 26, 23, 20, 16, 13, 10, 6, 0,
}

// IncomeTaxSchedule is the holding-period income tax table
var IncomeTaxSchedule = TaxSchedule{
	Name: "income tax",
	Steps: []TaxRateStep{
		{MaxDays: 180, Rate: decimal.New(225, -3)},
		{MaxDays: 360, Rate: pct(20)},
		{MaxDays: 720, Rate: decimal.New(175, -3)},
	},
	Beyond: pct(15),
}

// TransactionTaxSchedule is the 30-day IOF table. Same-day redemptions pay the
// day-1 rate.
var TransactionTaxSchedule = newTransactionTaxSchedule()

func newTransactionTaxSchedule() TaxSchedule {
	steps := make([]TaxRateStep, 0, len(iofTable)+1)
	steps = append(steps, TaxRateStep{MaxDays: 0, Rate: pct(iofTable[0])})
	for i, p := range iofTable {
		steps = append(steps, TaxRateStep{MaxDays: i + 1, Rate: pct(p)})
	}
	return TaxSchedule{Name: "transaction tax", Steps: steps, Beyond: decimal.Zero}
}

// IncomeTaxRate returns the income tax rate for a holding period of days
func IncomeTaxRate(days int) decimal.Decimal {
	return IncomeTaxSchedule.RateFor(days)
}

// TransactionTaxRate returns the IOF rate for a redemption after days
func TransactionTaxRate(days int) decimal.Decimal {
	return TransactionTaxSchedule.RateFor(days)
}

// TaxAssessment is both taxes applied to one redemption
type TaxAssessment struct {
	Profit             money.Money
	IncomeTaxRate      decimal.Decimal
	TransactionTaxRate decimal.Decimal
	IncomeTax          money.Money
	TransactionTax     money.Money
	Net                money.Money
}

// TaxCalculator applies the income and transaction tax schedules to a redemption
type TaxCalculator struct {
	Income      TaxSchedule
	Transaction TaxSchedule
}

// NewTaxCalculator creates a tax calculator with the current published schedules
func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{
		Income:      IncomeTaxSchedule,
		Transaction: TransactionTaxSchedule,
	}
}

// NewTaxCalculatorWithSchedules creates a tax calculator with custom schedules
func NewTaxCalculatorWithSchedules(income, transaction TaxSchedule) (*TaxCalculator, error) {
	if err := income.Validate(); err != nil {
		return nil, err
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	return &TaxCalculator{Income: income, Transaction: transaction}, nil
}

// Compute taxes the profit of redeeming principal for gross after days.
// Both taxes are computed independently on the same profit; neither is
// charged on a loss. Net is always gross minus both taxes.
func (tc *TaxCalculator) Compute(principal, gross money.Money, days int) TaxAssessment {
	profit := gross.Sub(principal)
	irRate := tc.Income.RateFor(days)
	iofRate := tc.Transaction.RateFor(days)

	ir := profit.TaxOn(irRate)
	iof := profit.TaxOn(iofRate)

	return TaxAssessment{
		Profit:             profit,
		IncomeTaxRate:      irRate,
		TransactionTaxRate: iofRate,
		IncomeTax:          ir,
		TransactionTax:     iof,
		Net:                gross.Sub(ir).Sub(iof),
	}
}
