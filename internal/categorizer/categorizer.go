// Package categorizer assigns spending categories and canonical merchant
// names to statement transactions using three layered mechanisms:
//  1. Conditional rules loaded from an optional rules file (highest
//     precedence, evaluated in descending priority order)
//  2. Keyword matching against the ordered category keyword lists
//  3. The default category as terminal fallback
//
// Merchant normalization runs independently of categorization and produces
// a separate output field.
package categorizer

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/ccs-extract/internal/logging"
)

// Resolver orchestrates the categorization mechanisms. Custom conditional
// rules always win over keyword matching; the default category is returned
// only when both come up empty.
type Resolver struct {
	engine     *RuleEngine
	normalizer *MerchantNormalizer
	keywords   *KeywordCategorizer
	logger     logging.Logger
}

// NewResolver wires the rule engine, merchant normalizer and keyword
// categorizer together. All three must be non-nil.
func NewResolver(engine *RuleEngine, normalizer *MerchantNormalizer, keywords *KeywordCategorizer, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Resolver{
		engine:     engine,
		normalizer: normalizer,
		keywords:   keywords,
		logger:     logger,
	}
}

// Resolve returns the category for one transaction. It never fails on
// malformed input: an empty description or zero amount simply degrades to
// keyword matching and ultimately to the default category.
func (r *Resolver) Resolve(description string, amount decimal.Decimal, date time.Time) string {
	if category, ok := r.engine.Apply(description, amount, date); ok {
		return category
	}
	return r.keywords.Categorize(StripPaymentPrefix(description))
}

// NormalizeMerchant returns the canonical merchant name for a description,
// or the cleaned description itself when no merchant pattern matches.
func (r *Resolver) NormalizeMerchant(description string) string {
	return r.normalizer.Normalize(description)
}
