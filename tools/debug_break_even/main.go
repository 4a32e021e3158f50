package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/treasury-calculator/internal/calculation"
	"github.com/rpgo/treasury-calculator/internal/config"
	"github.com/rpgo/treasury-calculator/pkg/dateutil"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <scenario-file> [step-days]")
		return
	}
	step := 30
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &step); err != nil || step <= 0 {
			fmt.Println("step-days must be a positive integer")
			return
		}
	}

	input, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	s := input.Scenario
	engine := calc.NewCalculationEngine()

	hold, err := engine.CalculateAtMaturity(s.Principal, s.ContractedRate, s.StartDate, s.MaturityDate)
	if err != nil {
		panic(err)
	}
	fmt.Printf("# %s: hold net %s\n", s.Name, hold.NetValue)

	// Walk from purchase to maturity, selling at the scenario's market rate each step
	fmt.Println("Date,Elapsed,IR,IOF,Gross,Net,BreakEvenRate,SellAdvantage")
	for asOf := s.StartDate; asOf.Before(s.MaturityDate); asOf = asOf.AddDate(0, 0, step) {
		sale, err := engine.CalculateMarkToMarket(s.Principal, s.ContractedRate, s.MarketRate, s.StartDate, s.MaturityDate, asOf)
		if err != nil {
			panic(err)
		}
		be, err := engine.BreakEvenMarketRate(s.Principal, s.ContractedRate, s.StartDate, s.MaturityDate, asOf)
		if err != nil {
			panic(err)
		}
		cmp, err := engine.CompareHoldVsSell(s.Principal, s.ContractedRate, s.MarketRate, s.StartDate, s.MaturityDate, asOf)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s,%d,%s,%s,%s,%s,%s,%s\n", dateutil.FormatDate(asOf), sale.Days,
			sale.IncomeTaxRate.StringFixed(3), sale.TransactionTaxRate.StringFixed(2),
			sale.GrossValue, sale.NetValue, be.StringFixed(4), cmp.Advantage)
	}
}
