package output

import (
	"fmt"

	"github.com/rpgo/treasury-calculator/internal/domain"
)

// DefaultAssumptions lists the modelling rules behind every report.
var DefaultAssumptions = []string{
	"Day counts are whole calendar days; years are days / 365.25",
	"Growth compounds annually with fractional-year exponents",
	"Income tax on profit: 22.5% up to 180 days, 20% up to 360, 17.5% up to 720, 15% beyond",
	"IOF on profit for redemptions within 30 days, regressive from 96% to zero",
	"No tax is due on a loss; custody fees are not modelled",
}

// GenerateAssumptions adds the scenario's own market inputs to the defaults.
func GenerateAssumptions(report *domain.Report) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if report == nil {
		return out
	}
	s := report.Scenario
	out = append(out,
		fmt.Sprintf("Mark-to-market discount rate: %s a year on %s", FormatPercentage(s.MarketRate), FormatDate(s.AsOfDate)),
		fmt.Sprintf("Selic reference rate: %s; expected IPCA inflation: %s, held constant to maturity",
			FormatPercentage(s.Rates.ReferenceRate), FormatPercentage(s.Rates.ExpectedInflation)),
	)
	return out
}
