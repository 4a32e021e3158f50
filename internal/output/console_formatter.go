package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/treasury-calculator/internal/domain"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	gainStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	lossStyle = lipgloss.NewStyle().
			Foreground(colorError)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// ConsoleFormatter renders a styled plain-text report for the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	var buf bytes.Buffer
	s := report.Scenario

	fmt.Fprintln(&buf, titleStyle.Render("TREASURY BOND REPORT: "+s.Name))
	fmt.Fprintln(&buf, mutedStyle.Render(fmt.Sprintf("%s at %s from %s to %s, valued on %s",
		FormatCurrency(s.Principal.Decimal), FormatPercentage(s.ContractedRate),
		FormatDate(s.StartDate), FormatDate(s.MaturityDate), FormatDate(s.AsOfDate))))

	if r := report.AtMaturity; r != nil {
		fmt.Fprintln(&buf, sectionStyle.Render("HELD TO MATURITY"))
		writeResult(&buf, r)
		fmt.Fprintf(&buf, "  %-26s %d days (%.2f years)\n", "Holding period", r.Days, r.Years)
	}

	if r := report.MarkToMarket; r != nil {
		fmt.Fprintln(&buf, sectionStyle.Render(fmt.Sprintf("SOLD ON %s AT %s", FormatDate(r.AsOfDate), FormatPercentage(r.MarketRatePercent))))
		writeResult(&buf, r)
		fmt.Fprintf(&buf, "  %-26s %d days held, %.2f years to maturity\n", "Timing", r.Days, r.Years)
	}

	if h := report.HoldVsSell; h != nil {
		fmt.Fprintln(&buf, sectionStyle.Render("HOLD VS SELL"))
		writeLine(&buf, "Hold to maturity", FormatCurrency(h.HoldNetValue.Decimal))
		writeLine(&buf, "Sell and reinvest", FormatCurrency(h.SellNetValue.Decimal))
		writeLine(&buf, "Difference", signed(FormatCurrency(h.Advantage.Decimal), h.Advantage.IsNegative()))
		if h.BreakEvenMarketRate.IsPositive() {
			writeLine(&buf, "Break-even market rate", FormatPercentage(h.BreakEvenMarketRate))
		}
	}

	fmt.Fprintln(&buf, sectionStyle.Render("REINVESTMENT OPTIONS"))
	if len(report.Reinvestments) == 0 {
		fmt.Fprintln(&buf, mutedStyle.Render("  No bonds available for reinvestment."))
	}
	for i, opt := range report.Reinvestments {
		marker := "  "
		if i == report.BestOption {
			marker = "* "
		}
		line := fmt.Sprintf("%s%-26s %-10s %8s  %s  net %s  yield %s",
			marker, opt.Bond.Name, opt.Bond.Type.Label(), FormatPercentage(opt.ResolvedRate),
			FormatDate(opt.Bond.MaturityDate), FormatCurrency(opt.Result.NetValue.Decimal), FormatPercentage(opt.AnnualizedNetYield))
		if i == report.BestOption {
			line = gainStyle.Render(line)
		}
		fmt.Fprintln(&buf, line)
	}

	rec := AnalyzeReport(report)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, boxStyle.Render("Recommendation: "+strings.ToUpper(rec.Action)+"\n"+rec.Summary))
	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-26s %s\n", label, value)
}

func signed(s string, negative bool) string {
	if negative {
		return lossStyle.Render(s)
	}
	return gainStyle.Render(s)
}

// writeResult prints the value breakdown; IOF only appears when charged.
func writeResult(buf *bytes.Buffer, r *domain.CalculationResult) {
	writeLine(buf, "Gross value", FormatCurrency(r.GrossValue.Decimal))
	profit := r.Profit()
	writeLine(buf, "Profit", signed(FormatCurrency(profit.Decimal), profit.IsNegative()))
	writeLine(buf, fmt.Sprintf("Income tax (%s)", FormatRate(r.IncomeTaxRate)), FormatCurrency(r.IncomeTax.Decimal))
	if r.TransactionTax.IsPositive() {
		writeLine(buf, fmt.Sprintf("IOF (%s)", FormatRate(r.TransactionTaxRate)), FormatCurrency(r.TransactionTax.Decimal))
	}
	if r.TransactionTax.IsPositive() {
		writeLine(buf, "Total tax", FormatCurrency(r.TotalTax().Decimal))
	}
	writeLine(buf, "Net value", FormatCurrency(r.NetValue.Decimal))
	writeLine(buf, "Net return", signed(FormatCurrency(r.NetReturn.Decimal), r.NetReturn.IsNegative()))
}
