package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/pkg/dateutil"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// maxRatePercent caps any annual rate a caller may supply
var maxRatePercent = decimal.NewFromInt(100)

// CalculationEngine values treasury bonds at maturity, marked to market and
// reinvested. It holds no market state; every rate arrives as an argument.
type CalculationEngine struct {
	TaxCalc *TaxCalculator
	Debug   bool // Enable debug output for detailed calculations
	Logger  Logger
}

// NewCalculationEngine creates a new calculation engine with the published tax schedules
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithTaxes(NewTaxCalculator())
}

// NewCalculationEngineWithTaxes creates a calculation engine with a custom tax calculator
func NewCalculationEngineWithTaxes(tc *TaxCalculator) *CalculationEngine {
	if tc == nil {
		tc = NewTaxCalculator()
	}
	return &CalculationEngine{
		TaxCalc: tc,
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) debugf(format string, args ...any) {
	if ce.Debug {
		ce.Logger.Debugf(format, args...)
	}
}

func validateAmount(name string, amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidInput, name, amount)
	}
	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s%%", ErrInvalidInput, name, rate)
	}
	if rate.GreaterThan(maxRatePercent) {
		return fmt.Errorf("%w: %s must not exceed %s%%, got %s%%", ErrInvalidInput, name, maxRatePercent, rate)
	}
	return nil
}

// validatePeriod normalises start and maturity and checks maturity strictly follows start
func validatePeriod(start, maturity time.Time) (time.Time, time.Time, error) {
	if err := dateutil.ValidateDate(start); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", err)
	}
	if err := dateutil.ValidateDate(maturity); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("maturity date: %w", err)
	}
	start, maturity = dateutil.Normalize(start), dateutil.Normalize(maturity)
	if !maturity.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: maturity date (%s) must be after start date (%s)",
			ErrInvalidInput, dateutil.FormatDate(maturity), dateutil.FormatDate(start))
	}
	return start, maturity, nil
}

// CalculateAtMaturity values a bond held from start to maturity at its contracted rate.
func (ce *CalculationEngine) CalculateAtMaturity(principal money.Money, contractedRate decimal.Decimal, start, maturity time.Time) (*domain.CalculationResult, error) {
	if err := validateAmount("principal", principal); err != nil {
		return nil, err
	}
	if err := validateRate("contracted rate", contractedRate); err != nil {
		return nil, err
	}
	start, maturity, err := validatePeriod(start, maturity)
	if err != nil {
		return nil, err
	}
	return ce.atMaturity(domain.ModeAtMaturity, principal, contractedRate, start, maturity)
}

// SimulateReinvestment values putting amount into a new bond at newRate from
// start until targetMaturity. For floating or inflation-indexed bonds newRate
// must already be the absolute annual rate; see ResolveRate.
func (ce *CalculationEngine) SimulateReinvestment(amount money.Money, newRate decimal.Decimal, start, targetMaturity time.Time) (*domain.CalculationResult, error) {
	if err := validateAmount("available amount", amount); err != nil {
		return nil, err
	}
	if err := validateRate("new rate", newRate); err != nil {
		return nil, err
	}
	start, targetMaturity, err := validatePeriod(start, targetMaturity)
	if err != nil {
		return nil, err
	}
	return ce.atMaturity(domain.ModeReinvestment, amount, newRate, start, targetMaturity)
}

// atMaturity is shared by at-maturity and reinvestment; inputs are already validated.
func (ce *CalculationEngine) atMaturity(mode domain.CalculationMode, principal money.Money, rate decimal.Decimal, start, maturity time.Time) (*domain.CalculationResult, error) {
	days, err := dateutil.DaysBetween(start, maturity)
	if err != nil {
		return nil, err
	}
	years := dateutil.YearsFromDays(days)

	gross := FutureValue(principal, rate, years)
	taxes := ce.TaxCalc.Compute(principal, gross, days)

	ce.debugf("%s: principal=%s rate=%s%% days=%d years=%.4f gross=%s ir=%s iof=%s net=%s",
		mode, principal, rate, days, years, gross, taxes.IncomeTax, taxes.TransactionTax, taxes.Net)

	return &domain.CalculationResult{
		Mode:                  mode,
		Principal:             principal,
		RatePercent:           rate,
		StartDate:             start,
		MaturityDate:          maturity,
		AsOfDate:              maturity,
		ContractedFutureValue: gross,
		GrossValue:            gross,
		IncomeTax:             taxes.IncomeTax,
		TransactionTax:        taxes.TransactionTax,
		NetValue:              taxes.Net,
		NetReturn:             taxes.Net.Sub(principal),
		Years:                 years,
		Days:                  days,
		IncomeTaxRate:         taxes.IncomeTaxRate,
		TransactionTaxRate:    taxes.TransactionTaxRate,
	}, nil
}

// CalculateMarkToMarket values selling the bond on asOf: the contracted payoff
// at maturity is discounted back at today's market rate and taxed on the days
// held so far. A zero asOf means today.
func (ce *CalculationEngine) CalculateMarkToMarket(principal money.Money, contractedRate, marketRate decimal.Decimal, start, maturity, asOf time.Time) (*domain.CalculationResult, error) {
	if err := validateAmount("principal", principal); err != nil {
		return nil, err
	}
	if err := validateRate("contracted rate", contractedRate); err != nil {
		return nil, err
	}
	if err := validateRate("market rate", marketRate); err != nil {
		return nil, err
	}
	start, maturity, err := validatePeriod(start, maturity)
	if err != nil {
		return nil, err
	}
	asOf, err = ce.resolveAsOf(asOf, start, maturity)
	if err != nil {
		return nil, err
	}

	totalDays, err := dateutil.DaysBetween(start, maturity)
	if err != nil {
		return nil, err
	}
	remainingDays, err := dateutil.DaysBetween(asOf, maturity)
	if err != nil {
		return nil, err
	}
	elapsedDays, err := dateutil.DaysBetween(start, asOf)
	if err != nil {
		return nil, err
	}
	remainingYears := dateutil.YearsFromDays(remainingDays)

	contractedFV := FutureValue(principal, contractedRate, dateutil.YearsFromDays(totalDays))
	gross := PresentValue(contractedFV, marketRate, remainingYears)
	taxes := ce.TaxCalc.Compute(principal, gross, elapsedDays)

	ce.debugf("mark_to_market: principal=%s contracted=%s%% market=%s%% elapsed=%d remaining=%.4fy fv=%s gross=%s ir=%s iof=%s net=%s",
		principal, contractedRate, marketRate, elapsedDays, remainingYears, contractedFV, gross, taxes.IncomeTax, taxes.TransactionTax, taxes.Net)

	return &domain.CalculationResult{
		Mode:                  domain.ModeMarkToMarket,
		Principal:             principal,
		RatePercent:           contractedRate,
		MarketRatePercent:     marketRate,
		StartDate:             start,
		MaturityDate:          maturity,
		AsOfDate:              asOf,
		ContractedFutureValue: contractedFV,
		GrossValue:            gross,
		IncomeTax:             taxes.IncomeTax,
		TransactionTax:        taxes.TransactionTax,
		NetValue:              taxes.Net,
		NetReturn:             taxes.Net.Sub(principal),
		Years:                 remainingYears,
		Days:                  elapsedDays,
		IncomeTaxRate:         taxes.IncomeTaxRate,
		TransactionTaxRate:    taxes.TransactionTaxRate,
	}, nil
}

// resolveAsOf defaults a zero asOf to today and checks start <= asOf <= maturity
func (ce *CalculationEngine) resolveAsOf(asOf, start, maturity time.Time) (time.Time, error) {
	if asOf.IsZero() {
		asOf = Today()
	}
	asOf = dateutil.Normalize(asOf)
	if asOf.Before(start) || asOf.After(maturity) {
		return time.Time{}, fmt.Errorf("%w: valuation date (%s) must fall between start (%s) and maturity (%s)",
			ErrInvalidInput, dateutil.FormatDate(asOf), dateutil.FormatDate(start), dateutil.FormatDate(maturity))
	}
	return asOf, nil
}

// RunScenario produces the full report for one held bond: its value at
// maturity, its value if sold on the valuation date, the hold-versus-sell
// comparison and every reinvestment option in catalog, ranked.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario domain.Scenario, catalog []domain.BondRecord) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	atMaturity, err := ce.CalculateAtMaturity(scenario.Principal, scenario.ContractedRate, scenario.StartDate, scenario.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("scenario %q at maturity: %w", scenario.Name, err)
	}

	markToMarket, err := ce.CalculateMarkToMarket(scenario.Principal, scenario.ContractedRate, scenario.MarketRate,
		scenario.StartDate, scenario.MaturityDate, scenario.AsOfDate)
	if err != nil {
		return nil, fmt.Errorf("scenario %q mark to market: %w", scenario.Name, err)
	}
	asOf := markToMarket.AsOfDate
	scenario.AsOfDate = asOf

	holdVsSell, err := ce.CompareHoldVsSell(scenario.Principal, scenario.ContractedRate, scenario.MarketRate,
		scenario.StartDate, scenario.MaturityDate, asOf)
	if err != nil {
		return nil, fmt.Errorf("scenario %q hold vs sell: %w", scenario.Name, err)
	}

	options := []domain.ReinvestmentOption{}
	if markToMarket.NetValue.IsPositive() {
		bonds := domain.NormalizeCatalog(catalog, asOf)
		options, err = ce.ReinvestmentOptions(ctx, markToMarket.NetValue, asOf, bonds, scenario.Rates)
		if err != nil {
			return nil, fmt.Errorf("scenario %q reinvestment: %w", scenario.Name, err)
		}
		options = RankReinvestmentOptions(options)
	}

	ce.Logger.Infof("scenario %q: net at maturity %s, net if sold %s, %d reinvestment options",
		scenario.Name, atMaturity.NetValue.StringFixed(2), markToMarket.NetValue.StringFixed(2), len(options))

	return &domain.Report{
		ID:            uuid.NewString(),
		GeneratedAt:   nowFunc(),
		Scenario:      scenario,
		AtMaturity:    atMaturity,
		MarkToMarket:  markToMarket,
		HoldVsSell:    holdVsSell,
		Reinvestments: options,
		BestOption:    BestOptionIndex(options),
	}, nil
}
