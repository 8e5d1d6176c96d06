package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/ccs-extract/internal/parsererror"
)

// absentPath returns a path that exists nowhere so New never picks up config
// files from the machine running the test.
func absentPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func newDefault(t *testing.T) *Categorizer {
	t.Helper()
	c, err := New(absentPath(t, "patterns.yaml"), absentPath(t, "rules.yaml"))
	require.NoError(t, err)
	return c
}

func TestNew_Defaults(t *testing.T) {
	c := newDefault(t)

	names := c.Categories()
	require.NotEmpty(t, names)
	assert.Equal(t, "Groceries", names[0])
	assert.Equal(t, "Other", names[len(names)-1])
}

func TestCategorize(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		name     string
		tx       Transaction
		merchant string
		category string
	}{
		{
			name:     "known merchant",
			tx:       Transaction{Description: "WOOLWORTHS 1234 SYDNEY", Amount: "$82.30", Date: "2024-11-20"},
			merchant: "Woolworths",
			category: "Groceries",
		},
		{
			name:     "gateway prefix stripped before matching",
			tx:       Transaction{Description: "SQ *SOUL ORIGIN BRISBANE", Amount: "12.50"},
			merchant: "Soul Origin",
			category: "Dining",
		},
		{
			name:     "unknown merchant falls through to Other",
			tx:       Transaction{Description: "ACME WIDGETS PTY LTD"},
			merchant: "ACME WIDGETS PTY LTD",
			category: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Categorize(tt.tx)
			assert.Equal(t, tt.merchant, got.Merchant)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

func TestNormalizeMerchant(t *testing.T) {
	c := newDefault(t)
	assert.Equal(t, "Woolworths", c.NormalizeMerchant("WOOLIES METRO 42"))
	assert.Equal(t, "UNKNOWN SHOP", c.NormalizeMerchant("EFTPOS UNKNOWN SHOP"))
}

func TestCategorize_RuleWinsOverKeywords(t *testing.T) {
	dir := t.TempDir()
	rulesFile := filepath.Join(dir, "rules.yaml")
	rules := `
- name: Big purchases
  pattern: ".*"
  category: Major Expenses
  priority: 10
  amount_condition:
    operator: ">"
    value: "500"
`
	require.NoError(t, os.WriteFile(rulesFile, []byte(rules), 0o600))

	c, err := New(absentPath(t, "patterns.yaml"), rulesFile)
	require.NoError(t, err)

	big := c.Categorize(Transaction{Description: "WOOLWORTHS 1234 SYDNEY", Amount: "750.00"})
	assert.Equal(t, "Major Expenses", big.Category)
	assert.Equal(t, "Woolworths", big.Merchant)

	small := c.Categorize(Transaction{Description: "WOOLWORTHS 1234 SYDNEY", Amount: "82.30"})
	assert.Equal(t, "Groceries", small.Category)
}

func TestCategorize_DateCondition(t *testing.T) {
	dir := t.TempDir()
	rulesFile := filepath.Join(dir, "rules.yaml")
	rules := `
- name: Pre-2020 spending
  pattern: ".*"
  category: Archived
  priority: 5
  date_condition:
    operator: "<"
    value: "2020-01-01"
`
	require.NoError(t, os.WriteFile(rulesFile, []byte(rules), 0o600))

	c, err := New(absentPath(t, "patterns.yaml"), rulesFile)
	require.NoError(t, err)

	old := c.Categorize(Transaction{Description: "ACME WIDGETS PTY LTD", Date: "15/03/2019"})
	assert.Equal(t, "Archived", old.Category)

	// No date means "now", which is after the cutoff.
	recent := c.Categorize(Transaction{Description: "ACME WIDGETS PTY LTD"})
	assert.Equal(t, "Other", recent.Category)
}

func TestNew_CustomPatterns(t *testing.T) {
	dir := t.TempDir()
	patternsFile := filepath.Join(dir, "patterns.yaml")
	patterns := `
merchant_patterns:
  - pattern: "QUANTUM BOOKS"
    normalized: "Quantum Books"
categories:
  Books:
    - QUANTUM BOOKS
`
	require.NoError(t, os.WriteFile(patternsFile, []byte(patterns), 0o600))

	c, err := New(patternsFile, absentPath(t, "rules.yaml"))
	require.NoError(t, err)

	got := c.Categorize(Transaction{Description: "QUANTUM BOOKS PTY LTD MELBOURNE", Amount: "$59.95"})
	assert.Equal(t, "Quantum Books", got.Merchant)
	assert.Equal(t, "Books", got.Category)
	assert.Contains(t, c.Categories(), "Books")
}

func TestNew_MalformedRules(t *testing.T) {
	dir := t.TempDir()
	rulesFile := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rulesFile, []byte("rules:\n  not: a sequence\n"), 0o600))

	c, err := New(absentPath(t, "patterns.yaml"), rulesFile)
	require.Error(t, err)
	assert.Nil(t, c)

	var confErr *parsererror.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}
