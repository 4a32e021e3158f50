package config

import (
	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

type defaultBond struct {
	name, kind, rate, maturity, description string
}

// defaultBonds is the estimated catalog used when no catalog is configured.
// Selic bonds quote a zero spread over the reference rate.
var defaultBonds = []defaultBond{
	{"Tesouro Prefixado 2027", "fixed", "12.35", "2027-01-01", "Rentabilidade definida (dados estimados)"},
	{"Tesouro Prefixado 2029", "fixed", "12.5", "2029-01-01", "Rentabilidade definida (dados estimados)"},
	{"Tesouro Prefixado 2031", "fixed", "12.65", "2031-01-01", "Rentabilidade definida (dados estimados)"},
	{"Tesouro IPCA+ 2029", "ipca", "6.25", "2029-05-15", "IPCA + taxa prefixada (dados estimados)"},
	{"Tesouro IPCA+ 2035", "ipca", "6.35", "2035-05-15", "IPCA + taxa prefixada (dados estimados)"},
	{"Tesouro IPCA+ 2040", "ipca", "6.4", "2040-08-15", "IPCA + taxa prefixada (dados estimados)"},
	{"Tesouro IPCA+ 2045", "ipca", "6.45", "2045-05-15", "IPCA + taxa prefixada (dados estimados)"},
	{"Tesouro Selic 2027", "selic", "0", "2027-03-01", "100% da taxa Selic (dados estimados)"},
	{"Tesouro Selic 2029", "selic", "0", "2029-03-01", "100% da taxa Selic (dados estimados)"},
	{"Tesouro Renda+ 2030", "ipca", "6.15", "2030-12-15", "IPCA + taxa para aposentadoria (dados estimados)"},
	{"Tesouro Renda+ 2035", "ipca", "6.2", "2035-12-15", "IPCA + taxa para aposentadoria (dados estimados)"},
	{"Tesouro Renda+ 2040", "ipca", "6.25", "2040-12-15", "IPCA + taxa para aposentadoria (dados estimados)"},
	{"Tesouro Renda+ 2045", "ipca", "6.3", "2045-12-15", "IPCA + taxa para aposentadoria (dados estimados)"},
}

// DefaultCatalog returns a fresh copy of the built-in bond list
func DefaultCatalog() []domain.BondRecord {
	records := make([]domain.BondRecord, 0, len(defaultBonds))
	for _, b := range defaultBonds {
		bondType, err := domain.ParseBondType(b.kind)
		if err != nil {
			panic(err)
		}
		records = append(records, domain.BondRecord{
			Name:         b.name,
			Type:         bondType,
			Rate:         decimal.RequireFromString(b.rate),
			MaturityDate: dateutil.MustParseDate(b.maturity),
			Description:  b.description,
		})
	}
	return records
}
