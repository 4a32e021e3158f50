package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/pkg/dateutil"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a scenario or catalog file fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// ScenarioFile is the on-disk description of one held bond and the market around it
type ScenarioFile struct {
	Name        string           `yaml:"name" toml:"name"`
	Investment  InvestmentConfig `yaml:"investment" toml:"investment"`
	Market      MarketConfig     `yaml:"market" toml:"market"`
	CatalogFile string           `yaml:"catalog_file" toml:"catalog_file"`
	Bonds       []BondConfig     `yaml:"bonds" toml:"bonds"`
}

// InvestmentConfig is the bond being held
type InvestmentConfig struct {
	Principal      float64 `yaml:"principal" toml:"principal"`
	ContractedRate float64 `yaml:"contracted_rate" toml:"contracted_rate"`
	StartDate      string  `yaml:"start_date" toml:"start_date"`
	MaturityDate   string  `yaml:"maturity_date" toml:"maturity_date"`
}

// MarketConfig holds today's rates. All rates are annual percentages.
type MarketConfig struct {
	MarketRate    float64 `yaml:"market_rate" toml:"market_rate"`
	AsOf          string  `yaml:"as_of" toml:"as_of"` // empty means today
	ReferenceRate float64 `yaml:"reference_rate" toml:"reference_rate"`
	InflationRate float64 `yaml:"inflation_rate" toml:"inflation_rate"`
}

// BondConfig is one catalog entry as written in a file
type BondConfig struct {
	Name         string  `yaml:"name" toml:"name"`
	Type         string  `yaml:"type" toml:"type"`
	Rate         float64 `yaml:"rate" toml:"rate"`
	MaturityDate string  `yaml:"maturity_date" toml:"maturity_date"`
	Description  string  `yaml:"description" toml:"description"`
}

// CatalogFile is a standalone list of bonds
type CatalogFile struct {
	Bonds []BondConfig `yaml:"bonds" toml:"bonds"`
}

// Input is a loaded, validated scenario together with the catalog it refers to
type Input struct {
	Scenario domain.Scenario
	Catalog  []domain.BondRecord
	// CatalogSource names where the catalog came from: a file path, "inline" or "default"
	CatalogSource string
}

// InputParser handles parsing of scenario and catalog files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// decodeFile picks the decoder from the file extension; anything that is not
// TOML is read as YAML, which also covers JSON.
func decodeFile(filename string, v any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return nil
}

// LoadFromFile loads a scenario from a YAML, JSON or TOML file. The catalog is
// taken from catalog_file (relative to the scenario file), then from inline
// bonds, then from the built-in default list.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	var file ScenarioFile
	if err := decodeFile(filename, &file); err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	scenario, err := file.ToScenario()
	if err != nil {
		return nil, err
	}

	input := &Input{Scenario: scenario}
	switch {
	case file.CatalogFile != "":
		path := file.CatalogFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(filename), path)
		}
		input.Catalog, err = ip.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		input.CatalogSource = path
	case len(file.Bonds) > 0:
		input.Catalog, err = toBondRecords(file.Bonds)
		if err != nil {
			return nil, fmt.Errorf("inline bonds: %w", err)
		}
		input.CatalogSource = "inline"
	default:
		input.Catalog = DefaultCatalog()
		input.CatalogSource = "default"
	}
	return input, nil
}

// LoadCatalog loads a bond catalog from a YAML, JSON or TOML file
func (ip *InputParser) LoadCatalog(filename string) ([]domain.BondRecord, error) {
	var file CatalogFile
	if err := decodeFile(filename, &file); err != nil {
		return nil, err
	}
	records, err := toBondRecords(file.Bonds)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filename, err)
	}
	return records, nil
}

// ValidateConfiguration validates a scenario file before conversion
func (ip *InputParser) ValidateConfiguration(file *ScenarioFile) error {
	inv := file.Investment
	if inv.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidConfig)
	}
	if err := validateRatePercent("contracted_rate", inv.ContractedRate); err != nil {
		return err
	}
	if err := validateRatePercent("market_rate", file.Market.MarketRate); err != nil {
		return err
	}
	if err := validateRatePercent("reference_rate", file.Market.ReferenceRate); err != nil {
		return err
	}
	// deflation is allowed, but not below -100%
	if file.Market.InflationRate < -100 || file.Market.InflationRate > 100 {
		return fmt.Errorf("%w: inflation_rate must be between -100%% and 100%%", ErrInvalidConfig)
	}

	start, err := requireDate("start_date", inv.StartDate)
	if err != nil {
		return err
	}
	maturity, err := requireDate("maturity_date", inv.MaturityDate)
	if err != nil {
		return err
	}
	if !maturity.After(start) {
		return fmt.Errorf("%w: maturity_date (%s) must be after start_date (%s)", ErrInvalidConfig, inv.MaturityDate, inv.StartDate)
	}

	if file.Market.AsOf != "" {
		asOf, err := requireDate("as_of", file.Market.AsOf)
		if err != nil {
			return err
		}
		if asOf.Before(start) || asOf.After(maturity) {
			return fmt.Errorf("%w: as_of (%s) must fall between start_date and maturity_date", ErrInvalidConfig, file.Market.AsOf)
		}
	}

	if file.CatalogFile != "" && len(file.Bonds) > 0 {
		return fmt.Errorf("%w: specify either catalog_file or bonds, not both", ErrInvalidConfig)
	}
	return nil
}

func validateRatePercent(name string, rate float64) error {
	if rate < 0 || rate > 100 {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %v", ErrInvalidConfig, name, rate)
	}
	return nil
}

func requireDate(name, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidConfig, name)
	}
	t, err := dateutil.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// ToScenario converts the file form into the engine's domain form
func (f *ScenarioFile) ToScenario() (domain.Scenario, error) {
	start, err := dateutil.ParseDate(f.Investment.StartDate)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("start_date: %w", err)
	}
	maturity, err := dateutil.ParseDate(f.Investment.MaturityDate)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("maturity_date: %w", err)
	}
	var asOf time.Time
	if f.Market.AsOf != "" {
		if asOf, err = dateutil.ParseDate(f.Market.AsOf); err != nil {
			return domain.Scenario{}, fmt.Errorf("as_of: %w", err)
		}
	}

	name := f.Name
	if name == "" {
		name = fmt.Sprintf("%s%% until %s", decimal.NewFromFloat(f.Investment.ContractedRate), dateutil.FormatDate(maturity))
	}

	return domain.Scenario{
		Name:           name,
		Principal:      money.NewMoney(f.Investment.Principal),
		ContractedRate: decimal.NewFromFloat(f.Investment.ContractedRate),
		StartDate:      start,
		MaturityDate:   maturity,
		MarketRate:     decimal.NewFromFloat(f.Market.MarketRate),
		AsOfDate:       asOf,
		Rates: domain.RateContext{
			ReferenceRate:     decimal.NewFromFloat(f.Market.ReferenceRate),
			ExpectedInflation: decimal.NewFromFloat(f.Market.InflationRate),
		},
	}, nil
}

func toBondRecords(bonds []BondConfig) ([]domain.BondRecord, error) {
	records := make([]domain.BondRecord, 0, len(bonds))
	for i, b := range bonds {
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("%w: bond %d has no name", ErrInvalidConfig, i)
		}
		bondType, err := domain.ParseBondType(b.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: bond %q: %v", ErrInvalidConfig, b.Name, err)
		}
		if b.Rate < 0 || b.Rate > 100 {
			return nil, fmt.Errorf("%w: bond %q rate must be between 0 and 100", ErrInvalidConfig, b.Name)
		}
		maturity, err := dateutil.ParseDate(b.MaturityDate)
		if err != nil {
			return nil, fmt.Errorf("bond %q maturity_date: %w", b.Name, err)
		}
		records = append(records, domain.BondRecord{
			Name:         b.Name,
			Type:         bondType,
			Rate:         decimal.NewFromFloat(b.Rate),
			MaturityDate: maturity,
			Description:  b.Description,
		})
	}
	return records, nil
}
