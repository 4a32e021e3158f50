package domain

import (
	"time"

	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ReinvestmentOption is the simulated outcome of moving proceeds into one catalog bond
type ReinvestmentOption struct {
	Bond         BondRecord        `json:"bond"`
	ResolvedRate decimal.Decimal   `json:"resolved_rate"`
	Result       CalculationResult `json:"result"`
	// AnnualizedNetYield is (net/amount)^(1/years) - 1, in percent
	AnnualizedNetYield decimal.Decimal `json:"annualized_net_yield"`
}

// HoldVsSell compares keeping the bond to maturity with selling today and
// buying a bond that pays the market rate until the same maturity.
type HoldVsSell struct {
	HoldNetValue money.Money `json:"hold_net_value"`
	SellNetValue money.Money `json:"sell_net_value"`
	// Advantage is SellNetValue - HoldNetValue; positive favours selling
	Advantage money.Money `json:"advantage"`
	// BreakEvenMarketRate is the market rate at which today's sale price equals
	// the principal; above it an early sale realises a loss
	BreakEvenMarketRate decimal.Decimal `json:"break_even_market_rate"`
}

// Report is everything produced for one scenario
type Report struct {
	ID            string               `json:"id"`
	GeneratedAt   time.Time            `json:"generated_at"`
	Scenario      Scenario             `json:"scenario"`
	AtMaturity    *CalculationResult   `json:"at_maturity"`
	MarkToMarket  *CalculationResult   `json:"mark_to_market"`
	HoldVsSell    *HoldVsSell          `json:"hold_vs_sell,omitempty"`
	Reinvestments []ReinvestmentOption `json:"reinvestments"`
	// BestOption indexes Reinvestments; -1 when there are none
	BestOption int `json:"best_option"`
}

// Best returns the top-ranked reinvestment option, if any
func (r *Report) Best() (ReinvestmentOption, bool) {
	if r == nil || r.BestOption < 0 || r.BestOption >= len(r.Reinvestments) {
		return ReinvestmentOption{}, false
	}
	return r.Reinvestments[r.BestOption], true
}
