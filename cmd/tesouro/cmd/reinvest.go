package cmd

import (
	"fmt"

	"github.com/rpgo/treasury-calculator/internal/calculation"
	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var reinvestFlags struct {
	amount, rate, bond, start, maturity string
}

var reinvestCmd = &cobra.Command{
	Use:   "reinvest",
	Short: "Simulate putting an amount into a new bond until its maturity",
	Example: `  tesouro reinvest --amount 1197.92 --rate 14.5 --start 2025-10-19 --maturity 2028-01-01
  tesouro reinvest --amount 1197.92 --bond "Tesouro Selic 2029" --reference-rate 15`,
	RunE: runReinvest,
}

func init() {
	rootCmd.AddCommand(reinvestCmd)

	f := reinvestCmd.Flags()
	f.StringVar(&reinvestFlags.amount, "amount", "", "amount to reinvest")
	f.StringVar(&reinvestFlags.rate, "rate", "", "annual rate of the new bond, %")
	f.StringVar(&reinvestFlags.bond, "bond", "", "catalog bond name; sets rate and maturity")
	f.StringVar(&reinvestFlags.start, "start", "", "reinvestment date (default today)")
	f.StringVar(&reinvestFlags.maturity, "maturity", "", "maturity of the new bond")
	_ = reinvestCmd.MarkFlagRequired("amount")
	reinvestCmd.MarkFlagsMutuallyExclusive("rate", "bond")
	reinvestCmd.MarkFlagsOneRequired("rate", "bond")
}

func runReinvest(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount("amount", reinvestFlags.amount)
	if err != nil {
		return err
	}
	start, err := parseDate("start", reinvestFlags.start)
	if err != nil {
		return err
	}
	if start.IsZero() {
		start = calculation.Today()
	}
	maturity, err := parseDate("maturity", reinvestFlags.maturity)
	if err != nil {
		return err
	}

	var rate decimal.Decimal
	if reinvestFlags.bond != "" {
		bond, err := findBond(reinvestFlags.bond)
		if err != nil {
			return err
		}
		if rate, err = calculation.ResolveRate(bond, rateContext()); err != nil {
			return err
		}
		if maturity.IsZero() {
			maturity = bond.MaturityDate
		}
		zapLogger.Infof("%s resolves to %s%% a year", bond.Name, rate)
	} else {
		if rate, err = parseRate("rate", reinvestFlags.rate); err != nil {
			return err
		}
		if maturity.IsZero() {
			return fmt.Errorf("--maturity is required with --rate")
		}
	}

	result, err := engine.SimulateReinvestment(amount, rate, start, maturity)
	if err != nil {
		return err
	}
	return output.WriteResult(cmd.OutOrStdout(), result, outputFormat)
}

func findBond(name string) (domain.BondRecord, error) {
	bonds, err := loadCatalog()
	if err != nil {
		return domain.BondRecord{}, err
	}
	for _, b := range bonds {
		if b.Name == name {
			return b, nil
		}
	}
	return domain.BondRecord{}, fmt.Errorf("bond %q not found in catalog", name)
}
