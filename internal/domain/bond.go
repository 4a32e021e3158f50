package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BondType classifies how a treasury bond's return is indexed
type BondType string

const (
	// BondFixed pays a rate fixed at purchase (Tesouro Prefixado)
	BondFixed BondType = "fixed"
	// BondInflationIndexed pays an inflation index plus a spread (Tesouro IPCA+, Renda+)
	BondInflationIndexed BondType = "inflation-indexed"
	// BondFloating pays the policy rate plus a spread (Tesouro Selic)
	BondFloating BondType = "floating"
)

// bondTypeAliases maps the names used by the treasury and in older catalogs.
var bondTypeAliases = map[string]BondType{
	"fixed":             BondFixed,
	"prefixado":         BondFixed,
	"inflation-indexed": BondInflationIndexed,
	"inflation_indexed": BondInflationIndexed,
	"ipca":              BondInflationIndexed,
	"floating":          BondFloating,
	"selic":             BondFloating,
}

// ParseBondType resolves a bond type name or alias (case-insensitive).
func ParseBondType(s string) (BondType, error) {
	if t, ok := bondTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown bond type %q", s)
}

// Label returns a short human label for the type
func (t BondType) Label() string {
	switch t {
	case BondFixed:
		return "Prefixado"
	case BondInflationIndexed:
		return "IPCA+"
	case BondFloating:
		return "Selic"
	default:
		return string(t)
	}
}

// BondRecord is one normalized entry of the bond catalog.
// For fixed bonds Rate is the full annual rate; for indexed and floating bonds it
// is the spread over the index, all as percentages.
type BondRecord struct {
	Name         string          `yaml:"name" json:"name"`
	Type         BondType        `yaml:"type" json:"type"`
	Rate         decimal.Decimal `yaml:"rate" json:"rate"`
	MaturityDate time.Time       `yaml:"maturity_date" json:"maturity_date"`
	Description  string          `yaml:"description" json:"description"`
}

func (b BondRecord) key() string {
	return b.Name + "|" + b.MaturityDate.Format("2006-01-02")
}

// NormalizeCatalog drops bonds maturing on or before asOf, keeps the lowest
// rate for duplicate name+maturity pairs and sorts by maturity, then name.
// A nil or empty input yields an empty, non-nil slice.
func NormalizeCatalog(records []BondRecord, asOf time.Time) []BondRecord {
	unique := make(map[string]BondRecord, len(records))
	for _, r := range records {
		if !r.MaturityDate.After(asOf) {
			continue
		}
		if existing, ok := unique[r.key()]; ok && existing.Rate.LessThanOrEqual(r.Rate) {
			continue
		}
		unique[r.key()] = r
	}

	out := make([]BondRecord, 0, len(unique))
	for _, r := range unique {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MaturityDate.Equal(out[j].MaturityDate) {
			return out[i].MaturityDate.Before(out[j].MaturityDate)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
