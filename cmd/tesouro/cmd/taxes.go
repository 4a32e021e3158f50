package cmd

import (
	"fmt"
	"io"

	"github.com/rpgo/treasury-calculator/internal/calculation"
	"github.com/rpgo/treasury-calculator/internal/output"
	"github.com/spf13/cobra"
)

var taxDays int

var taxesCmd = &cobra.Command{
	Use:   "taxes",
	Short: "Show the income tax and IOF schedules",
	Example: `  tesouro taxes
  tesouro taxes --days 200`,
	RunE: runTaxes,
}

func init() {
	rootCmd.AddCommand(taxesCmd)
	taxesCmd.Flags().IntVar(&taxDays, "days", -1, "show only the rates that apply after holding this many days")
}

func runTaxes(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if cmd.Flags().Changed("days") {
		if taxDays < 0 {
			return fmt.Errorf("--days must not be negative")
		}
		fmt.Fprintf(w, "Held %d days\n", taxDays)
		fmt.Fprintf(w, "  %-16s %s\n", "Income tax", output.FormatRate(calculation.IncomeTaxRate(taxDays)))
		fmt.Fprintf(w, "  %-16s %s\n", "IOF", output.FormatRate(calculation.TransactionTaxRate(taxDays)))
		return nil
	}

	writeSchedule(w, calculation.IncomeTaxSchedule)
	fmt.Fprintln(w)
	writeSchedule(w, calculation.TransactionTaxSchedule)
	return nil
}

func writeSchedule(w io.Writer, s calculation.TaxSchedule) {
	fmt.Fprintln(w, s.Name)
	from := 0
	for _, step := range s.Steps {
		fmt.Fprintf(w, "  days %4d-%-4d %s\n", from, step.MaxDays, output.FormatRate(step.Rate))
		from = step.MaxDays + 1
	}
	fmt.Fprintf(w, "  days %4d+     %s\n", from, output.FormatRate(s.Beyond))
}
