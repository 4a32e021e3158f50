package cmd

import (
	"github.com/rpgo/treasury-calculator/internal/calculation"
	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/internal/output"
	"github.com/spf13/cobra"
)

var bondsAsOf string

var bondsCmd = &cobra.Command{
	Use:     "bonds",
	Aliases: []string{"catalog"},
	Short:   "List catalog bonds still open for purchase and their resolved rates",
	Example: `  tesouro bonds --reference-rate 15 --inflation-rate 4.5
  tesouro bonds --catalog bonds.toml --format json`,
	RunE: runBonds,
}

func init() {
	rootCmd.AddCommand(bondsCmd)
	bondsCmd.Flags().StringVar(&bondsAsOf, "as-of", "", "drop bonds maturing on or before this date (default today)")
}

func runBonds(cmd *cobra.Command, args []string) error {
	asOf, err := parseDate("as-of", bondsAsOf)
	if err != nil {
		return err
	}
	if asOf.IsZero() {
		asOf = calculation.Today()
	}

	bonds, err := loadCatalog()
	if err != nil {
		return err
	}

	rates := rateContext()
	entries := make([]output.CatalogEntry, 0, len(bonds))
	for _, b := range domain.NormalizeCatalog(bonds, asOf) {
		rate, err := calculation.ResolveRate(b, rates)
		if err != nil {
			zapLogger.Warnf("skipping %s: %v", b.Name, err)
			continue
		}
		entries = append(entries, output.CatalogEntry{Bond: b, ResolvedRate: rate})
	}
	return output.WriteCatalog(cmd.OutOrStdout(), entries, outputFormat)
}
