// Package categorizer is the public entry point for merchant normalization
// and category resolution. It wires the pattern store, conditional rule
// engine and keyword matcher together behind a small string-based API so
// other programs can categorize transactions without touching the internal
// packages.
package categorizer

import (
	"time"

	"fjacquet/ccs-extract/internal/categorizer"
	"fjacquet/ccs-extract/internal/dateutils"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
	"fjacquet/ccs-extract/internal/store"
)

// Transaction is the facade input. Amount and Date are plain strings so
// callers stay free of decimal and time handling; both are optional and
// only sharpen conditional rule matching when present.
type Transaction struct {
	Description string
	Amount      string
	Date        string
}

// Result pairs the canonical merchant name with the resolved category.
type Result struct {
	Merchant string
	Category string
}

// Categorizer bundles a fully wired categorization pipeline.
type Categorizer struct {
	resolver *categorizer.Resolver
	patterns store.LoadResult
}

// New builds a categorizer from the optional pattern and rules config files.
// Empty paths mean "search the standard locations" for patterns.yaml and
// rules.yaml. Pattern config failures degrade to the built-in defaults; a
// malformed rules file is a hard error.
func New(patternsFile, rulesFile string) (*Categorizer, error) {
	logger := logging.GetLogger()

	patterns := store.NewPatternStore(patternsFile, logger).Load()
	normalizer := categorizer.NewMerchantNormalizer(patterns.MerchantPatterns, logger)
	keywords := categorizer.NewKeywordCategorizer(patterns.Categories, logger)

	engine := categorizer.NewRuleEngine(logger)
	rulesName := rulesFile
	if rulesName == "" {
		rulesName = categorizer.DefaultRulesFile
	}
	rulesPath, err := store.FindConfigFile(rulesName)
	if err != nil {
		// Let LoadRules report the missing file and leave the engine empty.
		rulesPath = rulesName
	}
	if err := engine.LoadRules(rulesPath); err != nil {
		return nil, err
	}

	return &Categorizer{
		resolver: categorizer.NewResolver(engine, normalizer, keywords, logger),
		patterns: patterns,
	}, nil
}

// Categorize resolves the merchant name and category for one transaction.
// An unparseable amount counts as zero and a missing or unparseable date as
// the current day, matching the behavior of the categorize CLI command.
func (c *Categorizer) Categorize(tx Transaction) Result {
	amount := models.ParseAmount(tx.Amount)

	date := time.Now()
	if tx.Date != "" {
		if parsed, _, err := dateutils.ParseDate(tx.Date); err == nil {
			date = parsed
		}
	}

	return Result{
		Merchant: c.resolver.NormalizeMerchant(tx.Description),
		Category: c.resolver.Resolve(tx.Description, amount, date),
	}
}

// NormalizeMerchant returns the canonical merchant name for a raw statement
// description, or the cleaned description itself when no pattern matches.
func (c *Categorizer) NormalizeMerchant(description string) string {
	return c.resolver.NormalizeMerchant(description)
}

// Categories lists the category names in effect, in matching order.
func (c *Categorizer) Categories() []string {
	return c.patterns.Categories.Names()
}
