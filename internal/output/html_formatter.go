package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/bytedance/sonic"
	"github.com/rpgo/treasury-calculator/internal/domain"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  func(m money.Money) string { return FormatCurrency(m.Decimal) },
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"date":  FormatDate,
	"add":   func(i, j int) int { return i + j },
	"isPos": func(d decimal.Decimal) bool { return d.IsPositive() },
	"json":  jsonJS,
}).Parse(htmlTemplateSource))

// jsonJS embeds v as a script literal; a marshal error aborts the template.
func jsonJS(v any) (template.JS, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	var buf bytes.Buffer

	type chartPoint struct {
		Name  string  `json:"name"`
		Net   float64 `json:"net"`
		Yield float64 `json:"yield"`
	}
	points := make([]chartPoint, 0, len(report.Reinvestments))
	for _, opt := range report.Reinvestments {
		points = append(points, chartPoint{
			Name:  opt.Bond.Name,
			Net:   opt.Result.NetValue.InexactFloat64(),
			Yield: opt.AnnualizedNetYield.InexactFloat64(),
		})
	}

	data := struct {
		*domain.Report
		Recommendation Recommendation
		Assumptions    []string
		Chart          []chartPoint
	}{report, AnalyzeReport(report), GenerateAssumptions(report), points}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
