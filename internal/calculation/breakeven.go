package calculation

import (
	"fmt"
	"time"

	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/pkg/dateutil"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BreakEvenMarketRate returns the market rate, in percent, at which selling on
// asOf returns exactly the principal before taxes. Above it an early sale
// realises a loss; below it the sale shows a profit.
//
// Solving PV(FV, m, remaining) = principal gives m = ((FV/P)^(1/remaining) - 1) * 100.
func (ce *CalculationEngine) BreakEvenMarketRate(principal money.Money, contractedRate decimal.Decimal, start, maturity, asOf time.Time) (decimal.Decimal, error) {
	if err := validateAmount("principal", principal); err != nil {
		return decimal.Zero, err
	}
	if err := validateRate("contracted rate", contractedRate); err != nil {
		return decimal.Zero, err
	}
	start, maturity, err := validatePeriod(start, maturity)
	if err != nil {
		return decimal.Zero, err
	}
	asOf, err = ce.resolveAsOf(asOf, start, maturity)
	if err != nil {
		return decimal.Zero, err
	}

	remainingDays, err := dateutil.DaysBetween(asOf, maturity)
	if err != nil {
		return decimal.Zero, err
	}
	if remainingDays <= 0 {
		return decimal.Zero, fmt.Errorf("%w: no time left to maturity on %s", ErrInvalidInput, dateutil.FormatDate(asOf))
	}
	totalYears, err := dateutil.YearsBetween(start, maturity)
	if err != nil {
		return decimal.Zero, err
	}

	fv := FutureValue(principal, contractedRate, totalYears)
	return ImpliedRate(principal, fv, dateutil.YearsFromDays(remainingDays)), nil
}

// CompareHoldVsSell compares holding the bond to maturity with selling it on
// asOf and reinvesting the net proceeds at the market rate until the same
// maturity. On the maturity date itself the sale proceeds are taken as is.
func (ce *CalculationEngine) CompareHoldVsSell(principal money.Money, contractedRate, marketRate decimal.Decimal, start, maturity, asOf time.Time) (*domain.HoldVsSell, error) {
	hold, err := ce.CalculateAtMaturity(principal, contractedRate, start, maturity)
	if err != nil {
		return nil, err
	}
	sale, err := ce.CalculateMarkToMarket(principal, contractedRate, marketRate, start, maturity, asOf)
	if err != nil {
		return nil, err
	}

	sellNet := sale.NetValue
	breakEven := decimal.Zero
	if sale.AsOfDate.Before(hold.MaturityDate) {
		if sale.NetValue.IsPositive() {
			reinvested, err := ce.SimulateReinvestment(sale.NetValue, marketRate, sale.AsOfDate, hold.MaturityDate)
			if err != nil {
				return nil, err
			}
			sellNet = reinvested.NetValue
		}
		breakEven, err = ce.BreakEvenMarketRate(principal, contractedRate, start, maturity, sale.AsOfDate)
		if err != nil {
			return nil, err
		}
	}

	ce.debugf("hold vs sell: hold=%s sell=%s break-even=%s%%", hold.NetValue, sellNet, breakEven.StringFixed(4))

	return &domain.HoldVsSell{
		HoldNetValue:        hold.NetValue,
		SellNetValue:        sellNet,
		Advantage:           sellNet.Sub(hold.NetValue),
		BreakEvenMarketRate: breakEven,
	}, nil
}
