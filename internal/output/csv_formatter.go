package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rpgo/treasury-calculator/internal/domain"
)

// CSVFormatter writes one row per calculation: at maturity, mark to market
// and each reinvestment option in rank order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{"Mode", "Bond", "Principal", "RatePercent", "StartDate", "MaturityDate", "Days", "Years",
	"GrossValue", "Profit", "IncomeTaxRate", "IncomeTax", "TransactionTaxRate", "TransactionTax", "TotalTax", "NetValue", "NetReturn", "AnnualizedNetYield"}

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	rows := [][]string{}
	if report.AtMaturity != nil {
		rows = append(rows, resultRow(report.Scenario.Name, report.AtMaturity, ""))
	}
	if report.MarkToMarket != nil {
		rows = append(rows, resultRow(report.Scenario.Name, report.MarkToMarket, ""))
	}
	for _, opt := range report.Reinvestments {
		r := opt.Result
		rows = append(rows, resultRow(opt.Bond.Name, &r, opt.AnnualizedNetYield.StringFixed(4)))
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func resultRow(name string, r *domain.CalculationResult, yield string) []string {
	return []string{
		string(r.Mode),
		name,
		r.Principal.StringFixed(2),
		r.RatePercent.String(),
		r.StartDate.Format("2006-01-02"),
		r.MaturityDate.Format("2006-01-02"),
		strconv.Itoa(r.Days),
		strconv.FormatFloat(r.Years, 'f', 4, 64),
		r.GrossValue.StringFixed(2),
		r.Profit().StringFixed(2),
		r.IncomeTaxRate.String(),
		r.IncomeTax.StringFixed(2),
		r.TransactionTaxRate.String(),
		r.TransactionTax.StringFixed(2),
		r.TotalTax().StringFixed(2),
		r.NetValue.StringFixed(2),
		r.NetReturn.StringFixed(2),
		yield,
	}
}
