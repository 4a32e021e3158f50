package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var modeTitles = map[domain.CalculationMode]string{
	domain.ModeAtMaturity:   "HELD TO MATURITY",
	domain.ModeMarkToMarket: "SOLD BEFORE MATURITY",
	domain.ModeReinvestment: "REINVESTMENT",
}

// WriteResult renders a single calculation as console text, JSON or CSV.
func WriteResult(w io.Writer, r *domain.CalculationResult, format string) error {
	switch NormalizeFormatName(format) {
	case "json":
		data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		if err := cw.Write(resultRow(string(r.Mode), r, "")); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	case "console":
		var buf bytes.Buffer
		fmt.Fprintln(&buf, titleStyle.Render(modeTitles[r.Mode]))
		fmt.Fprintln(&buf, mutedStyle.Render(fmt.Sprintf("%s at %s from %s to %s",
			FormatCurrency(r.Principal.Decimal), FormatPercentage(r.RatePercent), FormatDate(r.StartDate), FormatDate(r.MaturityDate))))
		if r.Mode == domain.ModeMarkToMarket {
			writeLine(&buf, "Valued on", FormatDate(r.AsOfDate))
			writeLine(&buf, "Market rate", FormatPercentage(r.MarketRatePercent))
			writeLine(&buf, "Due at maturity", FormatCurrency(r.ContractedFutureValue.Decimal))
		}
		writeResult(&buf, r)
		writeLine(&buf, "Days", fmt.Sprintf("%d", r.Days))
		writeLine(&buf, "Years", fmt.Sprintf("%.4f", r.Years))
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%w: %q for a single result (use console, json or csv)", ErrUnsupportedFormat, format)
	}
}

// CatalogEntry is a bond with the absolute rate it resolves to today.
type CatalogEntry struct {
	Bond         domain.BondRecord
	ResolvedRate decimal.Decimal
}

// WriteCatalog renders the bond catalog as a console table or JSON.
func WriteCatalog(w io.Writer, entries []CatalogEntry, format string) error {
	if NormalizeFormatName(format) == "json" {
		type row struct {
			domain.BondRecord
			ResolvedRate decimal.Decimal `json:"resolved_rate"`
		}
		rows := make([]row, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, row{BondRecord: e.Bond, ResolvedRate: e.ResolvedRate})
		}
		data, err := sonic.ConfigStd.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render(fmt.Sprintf("BOND CATALOG (%d)", len(entries))))
	fmt.Fprintf(&buf, "  %-26s %-10s %8s %9s  %s\n", "Bond", "Type", "Quoted", "Resolved", "Maturity")
	for _, e := range entries {
		fmt.Fprintf(&buf, "  %-26s %-10s %8s %9s  %s\n", e.Bond.Name, e.Bond.Type.Label(),
			FormatPercentage(e.Bond.Rate), FormatPercentage(e.ResolvedRate), FormatDate(e.Bond.MaturityDate))
	}
	_, err := w.Write(buf.Bytes())
	return err
}
