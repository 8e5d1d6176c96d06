package models

import (
	"fjacquet/ccs-extract/internal/logging"
)

// CategorizationStats tracks how the transactions of one statement run were
// categorized.
type CategorizationStats struct {
	Total      int            // transactions processed
	Matched    int            // assigned a specific category
	Fallback   int            // fell through to the default category
	ByCategory map[string]int // per-category counts
}

// NewCategorizationStats creates an empty stats collector.
func NewCategorizationStats() *CategorizationStats {
	return &CategorizationStats{ByCategory: make(map[string]int)}
}

// Record counts one categorized transaction.
func (cs *CategorizationStats) Record(category string) {
	cs.Total++
	if category == DefaultCategory {
		cs.Fallback++
	} else {
		cs.Matched++
	}
	cs.ByCategory[category]++
}

// MatchRate returns the share of transactions that received a specific
// category, as a percentage.
func (cs CategorizationStats) MatchRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Matched) / float64(cs.Total) * 100.0
}

// LogSummary logs the categorization outcome of one processed statement.
func (cs CategorizationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Categorization summary",
		logging.Field{Key: "total_transactions", Value: cs.Total},
		logging.Field{Key: "categorized", Value: cs.Matched},
		logging.Field{Key: "fallback", Value: cs.Fallback},
		logging.Field{Key: "match_rate", Value: cs.MatchRate()},
	)
}
