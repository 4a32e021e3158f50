package cmd

import (
	"fmt"

	"github.com/rpgo/treasury-calculator/internal/config"
	"github.com/rpgo/treasury-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	saveDir      string
	scenarioAsOf string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario [file]",
	Short: "Run a full hold, sell and reinvest analysis from a YAML or TOML file",
	Long: `Run a scenario file: the held bond at maturity, its sale at the market rate,
the hold vs sell comparison and every catalog bond the sale proceeds could buy.

Catalog precedence: --catalog, then catalog_file or bonds in the file, then the
built-in list. --reference-rate and --inflation-rate override the file.`,
	Example: `  tesouro scenario scenario.yaml
  tesouro scenario scenario.toml --format html --save reports/`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
	scenarioCmd.Flags().StringVar(&saveDir, "save", "", "write the report into this directory instead of stdout")
	scenarioCmd.Flags().StringVar(&scenarioAsOf, "as-of", "", "override the valuation date")
}

func runScenario(cmd *cobra.Command, args []string) error {
	input, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	zapLogger.Debugf("loaded scenario %q, catalog from %s", input.Scenario.Name, input.CatalogSource)

	catalog := input.Catalog
	if catalogFile != "" {
		if catalog, err = loadCatalog(); err != nil {
			return err
		}
	}

	s := input.Scenario
	if referenceRate != 0 {
		s.Rates.ReferenceRate = decimal.NewFromFloat(referenceRate)
	}
	if inflationRate != 0 {
		s.Rates.ExpectedInflation = decimal.NewFromFloat(inflationRate)
	}
	if scenarioAsOf != "" {
		if s.AsOfDate, err = parseDate("as-of", scenarioAsOf); err != nil {
			return err
		}
	}

	report, err := engine.RunScenario(cmd.Context(), s, catalog)
	if err != nil {
		return err
	}

	if saveDir != "" {
		path, err := output.SaveReport(report, outputFormat, saveDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)
		return nil
	}
	return output.WriteReport(cmd.OutOrStdout(), report, outputFormat)
}
