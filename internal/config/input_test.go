package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/pkg/dateutil"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlScenario = "name: \"Prefixado 2028\"\n" +
	"investment:\n" +
	"  principal: 1000\n" +
	"  contracted_rate: 13.33\n" +
	"  start_date: \"2024-01-01\"\n" +
	"  maturity_date: \"2028-01-01\"\n" +
	"market:\n" +
	"  market_rate: 14.5\n" +
	"  as_of: \"2025-10-19\"\n" +
	"  reference_rate: 15\n" +
	"  inflation_rate: 4.5\n"

const tomlScenario = `name = "Prefixado 2028"
catalog_file = "bonds.toml"

[investment]
principal = 1000.0
contracted_rate = 13.33
start_date = "2024-01-01"
maturity_date = "2028-01-01"

[market]
market_rate = 14.5
reference_rate = 15.0
inflation_rate = 4.5
`

const tomlCatalog = `[[bonds]]
name = "Tesouro Selic 2029"
type = "selic"
rate = 0.1
maturity_date = "2029-03-01"

[[bonds]]
name = "Tesouro IPCA+ 2035"
type = "ipca"
rate = 6.35
maturity_date = "2035-05-15"
description = "IPCA + taxa prefixada"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenario.yaml", yamlScenario)

	input, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	s := input.Scenario
	assert.Equal(t, "Prefixado 2028", s.Name)
	assert.True(t, s.Principal.Equal(money.NewMoneyFromInt(1000)))
	assert.True(t, s.ContractedRate.Equal(decimal.RequireFromString("13.33")))
	assert.Equal(t, dateutil.MustParseDate("2024-01-01"), s.StartDate)
	assert.Equal(t, dateutil.MustParseDate("2028-01-01"), s.MaturityDate)
	assert.Equal(t, dateutil.MustParseDate("2025-10-19"), s.AsOfDate)
	assert.True(t, s.MarketRate.Equal(decimal.RequireFromString("14.5")))
	assert.True(t, s.Rates.ReferenceRate.Equal(decimal.NewFromInt(15)))
	assert.True(t, s.Rates.ExpectedInflation.Equal(decimal.RequireFromString("4.5")))

	assert.Equal(t, "default", input.CatalogSource)
	assert.Len(t, input.Catalog, len(DefaultCatalog()))
}

func TestLoadFromFile_TOMLWithCatalogFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bonds.toml", tomlCatalog)
	path := writeFile(t, dir, "scenario.toml", tomlScenario)

	input, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, input.Scenario.AsOfDate.IsZero(), "missing as_of means today")
	assert.Equal(t, filepath.Join(dir, "bonds.toml"), input.CatalogSource)
	require.Len(t, input.Catalog, 2)
	assert.Equal(t, domain.BondFloating, input.Catalog[0].Type)
	assert.Equal(t, domain.BondInflationIndexed, input.Catalog[1].Type)
	assert.Equal(t, "IPCA + taxa prefixada", input.Catalog[1].Description)
}

func TestLoadFromFile_InlineBonds(t *testing.T) {
	content := yamlScenario +
		"bonds:\n" +
		"  - name: \"Tesouro Prefixado 2031\"\n" +
		"    type: \"prefixado\"\n" +
		"    rate: 12.65\n" +
		"    maturity_date: \"01/01/2031\"\n"
	path := writeFile(t, t.TempDir(), "scenario.yml", content)

	input, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "inline", input.CatalogSource)
	require.Len(t, input.Catalog, 1)
	assert.Equal(t, time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC), input.Catalog[0].MaturityDate)
	assert.True(t, input.Catalog[0].Rate.Equal(decimal.RequireFromString("12.65")))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.yaml", "investment: [unclosed\n")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.toml", "[investment\nprincipal = 1")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestLoadCatalog_BadBond(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bonds.yaml", "bonds:\n  - name: \"x\"\n    type: \"swap\"\n    rate: 1\n    maturity_date: \"2030-01-01\"\n")
	_, err := NewInputParser().LoadCatalog(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func validFile() ScenarioFile {
	return ScenarioFile{
		Investment: InvestmentConfig{
			Principal:      1000,
			ContractedRate: 13.33,
			StartDate:      "2024-01-01",
			MaturityDate:   "2028-01-01",
		},
		Market: MarketConfig{MarketRate: 14.5, ReferenceRate: 15, InflationRate: 4.5},
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *ScenarioFile)
		wantErr error
	}{
		{"valid", func(f *ScenarioFile) {}, nil},
		{"zero principal", func(f *ScenarioFile) { f.Investment.Principal = 0 }, ErrInvalidConfig},
		{"negative rate", func(f *ScenarioFile) { f.Investment.ContractedRate = -1 }, ErrInvalidConfig},
		{"market rate above 100", func(f *ScenarioFile) { f.Market.MarketRate = 101 }, ErrInvalidConfig},
		{"negative reference rate", func(f *ScenarioFile) { f.Market.ReferenceRate = -0.5 }, ErrInvalidConfig},
		{"deflation allowed", func(f *ScenarioFile) { f.Market.InflationRate = -2 }, nil},
		{"missing start", func(f *ScenarioFile) { f.Investment.StartDate = "" }, ErrInvalidConfig},
		{"unparsable maturity", func(f *ScenarioFile) { f.Investment.MaturityDate = "2028-13-01" }, dateutil.ErrInvalidDate},
		{"maturity before start", func(f *ScenarioFile) { f.Investment.MaturityDate = "2023-01-01" }, ErrInvalidConfig},
		{"as_of after maturity", func(f *ScenarioFile) { f.Market.AsOf = "2029-01-01" }, ErrInvalidConfig},
		{"as_of on maturity", func(f *ScenarioFile) { f.Market.AsOf = "2028-01-01" }, nil},
		{"both catalogs", func(f *ScenarioFile) {
			f.CatalogFile = "bonds.yaml"
			f.Bonds = []BondConfig{{Name: "x"}}
		}, ErrInvalidConfig},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.mutate(&f)
			err := parser.ValidateConfiguration(&f)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToScenarioDefaultName(t *testing.T) {
	f := validFile()
	s, err := f.ToScenario()
	require.NoError(t, err)
	assert.Equal(t, "13.33% until 2028-01-01", s.Name)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 13)

	counts := map[domain.BondType]int{}
	for _, b := range catalog {
		counts[b.Type]++
		assert.False(t, b.MaturityDate.IsZero(), b.Name)
		assert.NotEmpty(t, b.Description, b.Name)
	}
	assert.Equal(t, 3, counts[domain.BondFixed])
	assert.Equal(t, 8, counts[domain.BondInflationIndexed])
	assert.Equal(t, 2, counts[domain.BondFloating])

	// callers get their own copy
	catalog[0].Name = "changed"
	assert.Equal(t, "Tesouro Prefixado 2027", DefaultCatalog()[0].Name)
}
