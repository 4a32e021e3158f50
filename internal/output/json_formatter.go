package output

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/rpgo/treasury-calculator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	return sonic.ConfigStd.MarshalIndent(report, "", "  ")
}
