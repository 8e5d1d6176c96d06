// Package currencyutils provides common amount operations: cleaning the
// decorations statement text puts around amounts, parsing them into
// decimals and recognizing the credit marker on statement lines.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CreditMarker is printed on statement lines for credits: refunds and
// payments made towards the card.
const CreditMarker = "CR"

// amountReplacer strips the currency symbol, currency code, thousands
// separators and whitespace from an amount string.
var amountReplacer = strings.NewReplacer(
	"$", "",
	"AUD", "",
	",", "",
	"'", "",
	" ", "",
)

// StandardizeAmount strips the decorations found around statement amounts
// so the result can be parsed by decimal.NewFromString. "$1,234.56" and
// "AUD 1'234.56" both become "1234.56". Commas are always thousands
// separators; the decimal separator on statements is a point.
func StandardizeAmount(amountStr string) string {
	return amountReplacer.Replace(strings.TrimSpace(amountStr))
}

// ParseAmount parses a string representation of an amount into a decimal
// value after standardizing it. An empty string parses to zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatAmount formats an amount for display with a dollar sign and two
// decimal places. Negative amounts keep the sign ahead of the symbol.
func FormatAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// HasCreditMarker reports whether a statement line carries the credit
// marker. The whole line is checked because the marker trails the amount
// column rather than sitting inside the description.
func HasCreditMarker(line string) bool {
	return strings.Contains(line, CreditMarker)
}

// StripCreditMarker removes the credit marker from a description and trims
// the leftover whitespace.
func StripCreditMarker(description string) string {
	return strings.TrimSpace(strings.ReplaceAll(description, CreditMarker, ""))
}
