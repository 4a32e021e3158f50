package calculation

import (
	"sort"

	"github.com/rpgo/treasury-calculator/internal/domain"
)

// RankReinvestmentOptions orders options best first: by annualized net yield,
// then net value, then bond name. The input slice is left untouched.
func RankReinvestmentOptions(options []domain.ReinvestmentOption) []domain.ReinvestmentOption {
	ranked := make([]domain.ReinvestmentOption, len(options))
	copy(ranked, options)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if !a.AnnualizedNetYield.Equal(b.AnnualizedNetYield) {
			return a.AnnualizedNetYield.GreaterThan(b.AnnualizedNetYield)
		}
		if !a.Result.NetValue.Equal(b.Result.NetValue) {
			return a.Result.NetValue.GreaterThan(b.Result.NetValue)
		}
		return a.Bond.Name < b.Bond.Name
	})
	return ranked
}

// BestOptionIndex returns the index of the option with the highest annualized
// net yield, or -1 when there are none.
func BestOptionIndex(options []domain.ReinvestmentOption) int {
	best := -1
	for i, opt := range options {
		if best < 0 || opt.AnnualizedNetYield.GreaterThan(options[best].AnnualizedNetYield) {
			best = i
		}
	}
	return best
}
