package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/treasury-calculator/internal/domain"
)

func lookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// WriteReport renders report in the named format to w.
func WriteReport(w io.Writer, report *domain.Report, format string) error {
	f, err := lookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport renders report in the named format to a timestamped file in dir
// and returns its path.
func SaveReport(report *domain.Report, format, dir string) (string, error) {
	f, err := lookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir)
}
