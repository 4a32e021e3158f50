package cmd

import (
	"fmt"

	"github.com/rpgo/treasury-calculator/internal/output"
	"github.com/spf13/cobra"
)

var currentFlags struct {
	principal, rate, marketRate, start, maturity, asOf string
}

var currentCmd = &cobra.Command{
	Use:     "current",
	Aliases: []string{"mtm", "sell"},
	Short:   "Value a bond if sold today at the market rate",
	Example: `  tesouro current --principal 1000 --rate 13.33 --market-rate 14.5 --start 2024-01-01 --maturity 2028-01-01
  tesouro current --principal 1000 --rate 13.33 --market-rate 14.5 --start 2024-01-01 --maturity 2028-01-01 --as-of 2025-10-19`,
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)

	f := currentCmd.Flags()
	f.StringVar(&currentFlags.principal, "principal", "", "amount invested")
	f.StringVar(&currentFlags.rate, "rate", "", "contracted rate in % a year")
	f.StringVar(&currentFlags.marketRate, "market-rate", "", "rate offered today for the same bond, % a year")
	f.StringVar(&currentFlags.start, "start", "", "purchase date")
	f.StringVar(&currentFlags.maturity, "maturity", "", "maturity date")
	f.StringVar(&currentFlags.asOf, "as-of", "", "valuation date (default today)")
	for _, name := range []string{"principal", "rate", "market-rate", "start", "maturity"} {
		_ = currentCmd.MarkFlagRequired(name)
	}
}

func runCurrent(cmd *cobra.Command, args []string) error {
	principal, err := parseAmount("principal", currentFlags.principal)
	if err != nil {
		return err
	}
	rate, err := parseRate("rate", currentFlags.rate)
	if err != nil {
		return err
	}
	marketRate, err := parseRate("market-rate", currentFlags.marketRate)
	if err != nil {
		return err
	}
	start, err := parseDate("start", currentFlags.start)
	if err != nil {
		return err
	}
	maturity, err := parseDate("maturity", currentFlags.maturity)
	if err != nil {
		return err
	}
	asOf, err := parseDate("as-of", currentFlags.asOf)
	if err != nil {
		return err
	}

	result, err := engine.CalculateMarkToMarket(principal, rate, marketRate, start, maturity, asOf)
	if err != nil {
		return err
	}
	if err := output.WriteResult(cmd.OutOrStdout(), result, outputFormat); err != nil {
		return err
	}

	if output.NormalizeFormatName(outputFormat) == "console" && result.Years > 0 {
		breakEven, err := engine.BreakEvenMarketRate(principal, rate, start, maturity, result.AsOfDate)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-26s %s\n", "Break-even market rate", output.FormatPercentage(breakEven))
	}
	return nil
}
