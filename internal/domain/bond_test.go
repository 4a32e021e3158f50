package domain

import (
	"testing"
	"time"

	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseBondType(t *testing.T) {
	tests := []struct {
		input    string
		expected BondType
		wantErr  bool
	}{
		{"fixed", BondFixed, false},
		{"Prefixado", BondFixed, false},
		{"inflation-indexed", BondInflationIndexed, false},
		{"IPCA", BondInflationIndexed, false},
		{" selic ", BondFloating, false},
		{"floating", BondFloating, false},
		{"unknown", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBondType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBondTypeLabel(t *testing.T) {
	assert.Equal(t, "Prefixado", BondFixed.Label())
	assert.Equal(t, "IPCA+", BondInflationIndexed.Label())
	assert.Equal(t, "Selic", BondFloating.Label())
	assert.Equal(t, "other", BondType("other").Label())
}

func TestNormalizeCatalog(t *testing.T) {
	asOf := date(2025, 10, 19)
	records := []BondRecord{
		{Name: "Tesouro IPCA+ 2040", Type: BondInflationIndexed, Rate: decimal.NewFromFloat(6.4), MaturityDate: date(2040, 8, 15)},
		{Name: "Tesouro Prefixado 2025", Type: BondFixed, Rate: decimal.NewFromFloat(11), MaturityDate: date(2025, 1, 1)},
		{Name: "Tesouro Prefixado 2028", Type: BondFixed, Rate: decimal.NewFromFloat(13.50), MaturityDate: date(2028, 1, 1)},
		{Name: "Tesouro Prefixado 2028", Type: BondFixed, Rate: decimal.NewFromFloat(13.33), MaturityDate: date(2028, 1, 1)},
		{Name: "Tesouro Selic 2027", Type: BondFloating, Rate: decimal.Zero, MaturityDate: date(2027, 3, 1)},
		{Name: "Matures today", Type: BondFixed, Rate: decimal.NewFromFloat(10), MaturityDate: asOf},
	}

	got := NormalizeCatalog(records, asOf)

	require.Len(t, got, 3)
	assert.Equal(t, "Tesouro Selic 2027", got[0].Name)
	assert.Equal(t, "Tesouro Prefixado 2028", got[1].Name)
	assert.True(t, got[1].Rate.Equal(decimal.NewFromFloat(13.33)), "duplicate keeps the lowest rate, got %s", got[1].Rate)
	assert.Equal(t, "Tesouro IPCA+ 2040", got[2].Name)
}

func TestNormalizeCatalogEmpty(t *testing.T) {
	got := NormalizeCatalog(nil, date(2025, 1, 1))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCalculationResultHelpers(t *testing.T) {
	r := CalculationResult{
		Principal:      money.NewMoneyFromInt(1000),
		GrossValue:     money.NewMoneyFromInt(1100),
		IncomeTax:      money.NewMoney(22.5),
		TransactionTax: money.NewMoneyFromInt(83),
		Years:          0.5,
		Days:           5,
	}
	assert.True(t, r.Profit().Equal(money.NewMoneyFromInt(100)))
	assert.True(t, r.TotalTax().Equal(money.NewMoney(105.5)))
}

func TestReportBest(t *testing.T) {
	var nilReport *Report
	_, ok := nilReport.Best()
	assert.False(t, ok)

	r := &Report{BestOption: -1}
	_, ok = r.Best()
	assert.False(t, ok)

	r.Reinvestments = []ReinvestmentOption{{Bond: BondRecord{Name: "A"}}, {Bond: BondRecord{Name: "B"}}}
	r.BestOption = 1
	best, ok := r.Best()
	require.True(t, ok)
	assert.Equal(t, "B", best.Bond.Name)
}
