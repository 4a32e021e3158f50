package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/treasury-calculator/internal/calculation"
	"github.com/rpgo/treasury-calculator/internal/config"
	"github.com/rpgo/treasury-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	input, err := config.NewInputParser().LoadFromFile(exampleScenario)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunScenario(context.Background(), input.Scenario, input.Catalog)
	require.NoError(t, err)

	for _, format := range []string{"console", "json", "csv", "html", "text", "json-pretty"} {
		var buf bytes.Buffer
		err := output.WriteReport(&buf, report, format)
		assert.NoError(t, err, format)
		assert.NotEmpty(t, buf.String(), format)
	}

	err = output.WriteReport(&bytes.Buffer{}, report, "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestSaveReport(t *testing.T) {
	input, err := config.NewInputParser().LoadFromFile(exampleScenario)
	require.NoError(t, err)

	report, err := calculation.NewCalculationEngine().RunScenario(context.Background(), input.Scenario, input.Catalog)
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := output.SaveReport(report, "html", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".html", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tesouro Selic 2029")
}
