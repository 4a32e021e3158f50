package cmd

import (
	"github.com/rpgo/treasury-calculator/internal/output"
	"github.com/spf13/cobra"
)

var maturityFlags struct {
	principal, rate, start, maturity string
}

var maturityCmd = &cobra.Command{
	Use:     "maturity",
	Short:   "Value a bond held until maturity",
	Example: `  tesouro maturity --principal 1000 --rate 13.33 --start 2024-01-01 --maturity 2028-01-01`,
	RunE:    runMaturity,
}

func init() {
	rootCmd.AddCommand(maturityCmd)

	f := maturityCmd.Flags()
	f.StringVar(&maturityFlags.principal, "principal", "", "amount invested")
	f.StringVar(&maturityFlags.rate, "rate", "", "contracted rate in % a year")
	f.StringVar(&maturityFlags.start, "start", "", "purchase date (yyyy-mm-dd or dd/mm/yyyy)")
	f.StringVar(&maturityFlags.maturity, "maturity", "", "maturity date")
	for _, name := range []string{"principal", "rate", "start", "maturity"} {
		_ = maturityCmd.MarkFlagRequired(name)
	}
}

func runMaturity(cmd *cobra.Command, args []string) error {
	principal, err := parseAmount("principal", maturityFlags.principal)
	if err != nil {
		return err
	}
	rate, err := parseRate("rate", maturityFlags.rate)
	if err != nil {
		return err
	}
	start, err := parseDate("start", maturityFlags.start)
	if err != nil {
		return err
	}
	maturity, err := parseDate("maturity", maturityFlags.maturity)
	if err != nil {
		return err
	}

	result, err := engine.CalculateAtMaturity(principal, rate, start, maturity)
	if err != nil {
		return err
	}
	return output.WriteResult(cmd.OutOrStdout(), result, outputFormat)
}
