package output

import (
	"fmt"

	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation summarises what the report suggests doing with the held bond.
type Recommendation struct {
	Action          string // "hold" or "sell"
	Advantage       decimal.Decimal
	BestOptionName  string
	BestOptionYield decimal.Decimal
	Summary         string
}

// AnalyzeReport turns the hold-versus-sell comparison and the best-ranked
// reinvestment option into a recommendation.
// Extracted from the formatters for testability.
func AnalyzeReport(report *domain.Report) Recommendation {
	rec := Recommendation{Action: "hold"}
	if report == nil {
		return rec
	}
	if best, ok := report.Best(); ok {
		rec.BestOptionName = best.Bond.Name
		rec.BestOptionYield = best.AnnualizedNetYield
	}
	hvs := report.HoldVsSell
	if hvs == nil {
		rec.Summary = "Hold to maturity."
		return rec
	}

	rec.Advantage = hvs.Advantage.Abs()
	switch {
	case hvs.Advantage.IsPositive():
		rec.Action = "sell"
		rec.Summary = fmt.Sprintf("Selling now and reinvesting at the market rate ends %s ahead at maturity.", FormatCurrency(rec.Advantage))
	case hvs.Advantage.IsNegative():
		rec.Summary = fmt.Sprintf("Holding to maturity ends %s ahead of selling now.", FormatCurrency(rec.Advantage))
	default:
		rec.Summary = "Holding and selling end level at maturity."
	}
	return rec
}
