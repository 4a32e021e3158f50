package main

import (
	"fmt"

	"github.com/rpgo/treasury-calculator/internal/calculation"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
)

func main() {
	tc := calculation.NewTaxCalculator()
	principal := money.NewMoneyFromInt(1000)
	gross := money.NewMoneyFromInt(1100)

	// Day-by-day taxes on a R$100 profit through the IOF window and the IR steps
	fmt.Println("Days,IR,IOF,IncomeTax,IOFTax,Net")
	for _, days := range []int{0, 1, 5, 10, 15, 20, 29, 30, 31, 180, 181, 360, 361, 720, 721} {
		a := tc.Compute(principal, gross, days)
		fmt.Printf("%d,%s,%s,%s,%s,%s\n", days, a.IncomeTaxRate.StringFixed(3), a.TransactionTaxRate.StringFixed(2),
			a.IncomeTax, a.TransactionTax, a.Net)
	}
}
