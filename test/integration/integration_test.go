package integration

import (
	"context"
	"testing"

	"github.com/rpgo/treasury-calculator/internal/calculation"
	"github.com/rpgo/treasury-calculator/internal/config"
	"github.com/rpgo/treasury-calculator/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleScenario = "../testdata/example_scenario.yaml"

func TestEndToEndScenario(t *testing.T) {
	input, err := config.NewInputParser().LoadFromFile(exampleScenario)
	require.NoError(t, err)
	assert.Len(t, input.Catalog, 5)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunScenario(context.Background(), input.Scenario, input.Catalog)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, dateutil.MustParseDate("2025-10-19"), report.Scenario.AsOfDate)

	// held four years: 15% income tax and no IOF
	assert.Equal(t, 1461, report.AtMaturity.Days)
	assert.True(t, report.AtMaturity.TransactionTax.IsZero())
	assert.True(t, report.AtMaturity.NetValue.GreaterThan(report.Scenario.Principal))

	// market above contract: the sale is worth less than holding
	assert.True(t, report.MarkToMarket.NetValue.LessThan(report.AtMaturity.NetValue))
	assert.True(t, report.HoldVsSell.BreakEvenMarketRate.GreaterThan(report.Scenario.ContractedRate))

	// Prefixado 2025 is past its maturity
	require.Len(t, report.Reinvestments, 4)
	for _, opt := range report.Reinvestments {
		assert.NotEqual(t, "Tesouro Prefixado 2025", opt.Bond.Name)
		assert.True(t, opt.Result.Principal.Equal(report.MarkToMarket.NetValue))
	}
	best, ok := report.Best()
	require.True(t, ok)
	assert.Equal(t, report.Reinvestments[0].Bond.Name, best.Bond.Name)
	// Selic at 15.1% beats every fixed and inflation-linked option here
	assert.Equal(t, "Tesouro Selic 2029", best.Bond.Name)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	input, err := parser.LoadFromFile(exampleScenario)
	assert.NoError(t, err)
	assert.NotNil(t, input)

	file := config.ScenarioFile{
		Investment: config.InvestmentConfig{Principal: 1000, ContractedRate: 13.33, StartDate: "2024-01-01", MaturityDate: "2028-01-01"},
		Market:     config.MarketConfig{MarketRate: 14.5},
	}
	assert.NoError(t, parser.ValidateConfiguration(&file))

	file.Market.AsOf = "2023-12-31"
	assert.ErrorIs(t, parser.ValidateConfiguration(&file), config.ErrInvalidConfig)
}
