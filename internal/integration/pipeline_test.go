// Package integration exercises the full statement pipeline through the
// container: text extraction, line parsing with year inference, merchant
// normalization, rule and keyword categorization, CSV output and batch
// summary aggregation, with custom config files in play.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/ccs-extract/internal/batch"
	"fjacquet/ccs-extract/internal/config"
	"fjacquet/ccs-extract/internal/container"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/statement"
)

// statementText crosses a year boundary so the January dates must be
// inferred into the period's second year.
const statementText = `Statement period (from 15/12/2024 to 14/01/2025)

Transaction details
18 Dec $82.30      WOOLWORTHS 1234 SYDNEY
22 Dec $4.50       SQ *CAFE BEANS NEWTOWN
28 Dec $59.95      QUANTUM BOOKS MELBOURNE
05 Jan $1,250.00   HARVEY NORMAN ELECTRONICS
09 Jan $64.05      BP CONNECT MASCOT
12 Jan $250.00     PAYMENT RECEIVED CR
`

const customPatterns = `
merchant_patterns:
  - pattern: "QUANTUM BOOKS"
    normalized: "Quantum Books"
categories:
  Books:
    - QUANTUM BOOKS
`

const customRules = `
- name: Card payments
  pattern: "payment received"
  category: Payments
  priority: 20
- name: Big purchases
  pattern: ".*"
  category: Major Purchases
  priority: 10
  amount_condition:
    operator: ">"
    value: "500"
`

func pipelineContainer(t *testing.T) *container.Container {
	t.Helper()

	dir := t.TempDir()
	patternsFile := filepath.Join(dir, "patterns.yaml")
	rulesFile := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(patternsFile, []byte(customPatterns), 0o600))
	require.NoError(t, os.WriteFile(rulesFile, []byte(customRules), 0o600))

	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Files.Patterns = patternsFile
	cfg.Files.Rules = rulesFile

	c, err := container.NewContainerWithExtractor(cfg, logging.NewMockLogger(), &statement.MockTextExtractor{Text: statementText})
	require.NoError(t, err)
	return c
}

func TestPipeline_EndToEnd(t *testing.T) {
	c := pipelineContainer(t)

	dir := t.TempDir()
	inputFile := filepath.Join(dir, "december.pdf")
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.4 stub"), 0o600))

	result, err := c.GetProcessor().Process(statement.Options{InputFile: inputFile})
	require.NoError(t, err)
	require.Len(t, result.Transactions, 6)

	type row struct {
		date     string
		merchant string
		category string
		amount   string
	}
	expected := []row{
		{"18/12/2024", "Woolworths", "Groceries", "82.30"},
		{"22/12/2024", "Cafe", "Dining", "4.50"},
		{"28/12/2024", "Quantum Books", "Books", "59.95"},
		{"05/01/2025", "Harvey Norman", "Major Purchases", "1250.00"},
		{"09/01/2025", "BP", "Fuel", "64.05"},
		{"12/01/2025", "PAYMENT RECEIVED", "Payments", "-250.00"},
	}

	for i, want := range expected {
		tx := result.Transactions[i]
		assert.Equal(t, want.date, tx.Date, "transaction %d date", i)
		assert.Equal(t, want.merchant, tx.Merchant, "transaction %d merchant", i)
		assert.Equal(t, want.category, tx.Category, "transaction %d category", i)
		assert.Equal(t, want.amount, tx.Amount.StringFixed(2), "transaction %d amount", i)
	}

	require.FileExists(t, result.OutputFile)
	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Transaction Date,Transaction Details,Amount,Merchant,Category")
	assert.Contains(t, content, "Quantum Books")
}

func TestPipeline_BatchSummary(t *testing.T) {
	c := pipelineContainer(t)

	dir := t.TempDir()
	inputFile := filepath.Join(dir, "december.pdf")
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.4 stub"), 0o600))

	result, err := c.GetProcessor().Process(statement.Options{InputFile: inputFile})
	require.NoError(t, err)

	aggregator := batch.NewAggregator(c.GetLogger())
	aggregator.AddResult(inputFile, result.Transactions)
	summary := aggregator.Summary()

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 6, summary.Transactions)
	assert.Equal(t, "2024-12-18 to 2025-01-12", summary.Span.String())

	// Categories come back ordered by descending total.
	require.NotEmpty(t, summary.Categories)
	assert.Equal(t, "Major Purchases", summary.Categories[0].Category)
	assert.Equal(t, "Payments", summary.Categories[len(summary.Categories)-1].Category)

	summaryFile := filepath.Join(dir, "summary.csv")
	require.NoError(t, batch.WriteSummaryCSV(summary, summaryFile))

	data, err := os.ReadFile(summaryFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Major Purchases,1,1250.00")
	assert.Contains(t, content, "Payments,1,-250.00")
}
