package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/treasury-calculator/internal/domain"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ResolveRate turns a catalog record into the absolute annual rate the engine
// compounds with. Fixed bonds quote the full rate; floating bonds add their
// spread to the reference rate and inflation-indexed bonds to expected inflation.
func ResolveRate(bond domain.BondRecord, rates domain.RateContext) (decimal.Decimal, error) {
	switch bond.Type {
	case domain.BondFixed:
		return bond.Rate, nil
	case domain.BondFloating:
		return rates.ReferenceRate.Add(bond.Rate), nil
	case domain.BondInflationIndexed:
		return rates.ExpectedInflation.Add(bond.Rate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: bond %q has unknown type %q", ErrInvalidInput, bond.Name, bond.Type)
	}
}

// AnnualizedNetYield is the compound annual rate, in percent, that turns the
// principal into the net value over the holding period.
func AnnualizedNetYield(result *domain.CalculationResult) decimal.Decimal {
	if result == nil {
		return decimal.Zero
	}
	return ImpliedRate(result.Principal, result.NetValue, result.Years)
}

// ReinvestmentOptions simulates moving amount into each bond on asOf. Bonds
// whose rate cannot be resolved or that fail validation are skipped with a
// warning. No bonds is a valid input and yields no options.
func (ce *CalculationEngine) ReinvestmentOptions(ctx context.Context, amount money.Money, asOf time.Time, bonds []domain.BondRecord, rates domain.RateContext) ([]domain.ReinvestmentOption, error) {
	options := make([]domain.ReinvestmentOption, 0, len(bonds))
	for _, bond := range bonds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rate, err := ResolveRate(bond, rates)
		if err != nil {
			ce.Logger.Warnf("skipping %s: %v", bond.Name, err)
			continue
		}
		result, err := ce.SimulateReinvestment(amount, rate, asOf, bond.MaturityDate)
		if err != nil {
			ce.Logger.Warnf("skipping %s: %v", bond.Name, err)
			continue
		}

		options = append(options, domain.ReinvestmentOption{
			Bond:               bond,
			ResolvedRate:       rate,
			Result:             *result,
			AnnualizedNetYield: AnnualizedNetYield(result),
		})
	}
	return options, nil
}
