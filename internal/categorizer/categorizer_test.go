package categorizer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
	"fjacquet/ccs-extract/internal/store"
)

// newTestResolver builds a resolver over the built-in pattern tables with
// the given rules injected.
func newTestResolver(t *testing.T, rules ...models.ConditionalRule) *Resolver {
	t.Helper()

	logger := logging.NewMockLogger()
	engine := NewRuleEngine(logger)
	for _, r := range rules {
		require.NoError(t, engine.AddRule(r))
	}

	return NewResolver(
		engine,
		NewMerchantNormalizer(store.DefaultMerchantPatterns(), logger),
		NewKeywordCategorizer(store.DefaultCategories(), logger),
		logger,
	)
}

func TestResolver_KeywordFallback(t *testing.T) {
	r := newTestResolver(t)

	category := r.Resolve("COLES SUPERMARKET", decimal.NewFromFloat(50.0), time.Now())
	assert.Equal(t, "Groceries", category)
}

func TestResolver_RulePrecedenceOverKeywords(t *testing.T) {
	r := newTestResolver(t, models.ConditionalRule{
		Name:     "streaming",
		Pattern:  "netflix",
		Category: "Subscriptions",
		IsRegex:  true,
	})

	// The keyword tables map netflix to Entertainment; the custom rule
	// outranks them.
	category := r.Resolve("NETFLIX.COM SYDNEY", decimal.NewFromFloat(15.99), time.Now())
	assert.Equal(t, "Subscriptions", category)
}

func TestResolver_PriorityScenario(t *testing.T) {
	r := newTestResolver(t,
		models.ConditionalRule{
			Name:     "groceries",
			Pattern:  "COLES|WOOLWORTHS",
			Category: "Groceries",
			Priority: 1,
			IsRegex:  true,
		},
		models.ConditionalRule{
			Name:            "high value groceries",
			Pattern:         "COLES|WOOLWORTHS",
			Category:        "Special Groceries",
			Priority:        2,
			AmountCondition: amountCond(">=", "100.0"),
			IsRegex:         true,
		},
	)

	assert.Equal(t, "Special Groceries",
		r.Resolve("COLES SUPERMARKET", decimal.NewFromFloat(150.0), time.Now()))
	assert.Equal(t, "Groceries",
		r.Resolve("COLES SUPERMARKET", decimal.NewFromFloat(50.0), time.Now()))
}

func TestResolver_DefaultCategory(t *testing.T) {
	r := newTestResolver(t)

	category := r.Resolve("XYZZY HOLDINGS", decimal.NewFromInt(10), time.Now())
	assert.Equal(t, models.DefaultCategory, category)
}

func TestResolver_PrefixStrippedBeforeKeywordFallback(t *testing.T) {
	r := newTestResolver(t)

	category := r.Resolve("SQ *SUSHI SUSHI BOND ST", decimal.NewFromFloat(12.50), time.Now())
	assert.Equal(t, "Dining", category)
}

func TestResolver_MalformedTransactionNeverFails(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, models.DefaultCategory,
		r.Resolve("", decimal.Decimal{}, time.Time{}))
}

func TestResolver_NormalizeMerchant(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, "Soul Origin", r.NormalizeMerchant("SQ *SOUL ORIGIN SYDNEY"))
	assert.Equal(t, "Woolworths", r.NormalizeMerchant("WOOLWORTHS METRO 123"))
	assert.Equal(t, "XYZZY HOLDINGS", r.NormalizeMerchant("PAYPAL *XYZZY HOLDINGS"))
}

func TestResolver_ResultAlwaysInMergedCategorySet(t *testing.T) {
	r := newTestResolver(t)

	known := make(map[string]bool)
	for _, name := range store.DefaultCategories().Names() {
		known[name] = true
	}

	descriptions := []string{
		"WOOLWORTHS METRO",
		"UBER TRIP HELP.UBER.COM",
		"BP CONNECT MASCOT",
		"TOTALLY UNKNOWN 999",
		"",
	}
	for _, d := range descriptions {
		category := r.Resolve(d, decimal.NewFromInt(25), time.Now())
		assert.True(t, known[category], "category %q for %q not in merged set", category, d)
	}
}
