package output

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	brPrinter      = message.NewPrinter(language.BrazilianPortuguese)
	decimalHundred = decimal.NewFromInt(100)
)

// FormatCurrency formats an amount as Brazilian reais, e.g. "R$ 1.234,56".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-R$ " + brPrinter.Sprintf("%.2f", rounded.Neg().InexactFloat64())
	}
	return "R$ " + brPrinter.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatPercentage formats a value already in percent, e.g. 13.33 as "13,33%".
func FormatPercentage(percent decimal.Decimal) string {
	return brPrinter.Sprintf("%.2f", percent.Round(2).InexactFloat64()) + "%"
}

// FormatRate formats a fractional rate, e.g. 0.225 as "22,50%".
func FormatRate(fraction decimal.Decimal) string {
	return FormatPercentage(fraction.Mul(decimalHundred))
}

// FormatDate formats a calendar date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
