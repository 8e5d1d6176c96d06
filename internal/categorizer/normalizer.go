package categorizer

import (
	"regexp"
	"strings"

	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
)

// paymentPrefixes are gateway markers stripped from the start of a raw
// description before merchant matching. The comparison is case-sensitive
// and anchored to the start of the string.
var paymentPrefixes = []string{
	"SQ *",
	"PAYPAL *",
	"SP *",
	"EFTPOS ",
	"POS ",
}

type merchantMatcher struct {
	re         *regexp.Regexp
	normalized string
}

// MerchantNormalizer maps raw statement descriptions to canonical merchant
// names using an ordered pattern list. The first matching pattern wins, so
// specific patterns must precede generic ones in the list.
type MerchantNormalizer struct {
	matchers []merchantMatcher
	logger   logging.Logger
}

// NewMerchantNormalizer compiles the given patterns in order. Patterns are
// matched case-insensitively. A pattern that does not compile is skipped
// with a warning so one bad entry cannot disable the rest of the table.
func NewMerchantNormalizer(patterns []models.MerchantPattern, logger logging.Logger) *MerchantNormalizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	n := &MerchantNormalizer{
		matchers: make([]merchantMatcher, 0, len(patterns)),
		logger:   logger,
	}

	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Pattern)
		if err != nil {
			n.logger.WithError(err).
				WithField(logging.FieldPattern, p.Pattern).
				Warn("Skipping merchant pattern that does not compile")
			continue
		}
		n.matchers = append(n.matchers, merchantMatcher{re: re, normalized: p.Normalized})
	}

	return n
}

// StripPaymentPrefix removes one leading payment-gateway marker from the
// description, if present, and trims the remainder.
func StripPaymentPrefix(description string) string {
	for _, prefix := range paymentPrefixes {
		if strings.HasPrefix(description, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(description, prefix))
		}
	}
	return description
}

// Normalize returns the canonical merchant name for a description. When no
// pattern matches it returns the prefix-stripped description unchanged.
func (n *MerchantNormalizer) Normalize(description string) string {
	cleaned := StripPaymentPrefix(description)
	for _, m := range n.matchers {
		if m.re.MatchString(cleaned) {
			return m.normalized
		}
	}
	return cleaned
}
