package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount wraps decimal.Decimal so that CSV output always carries exactly two
// decimal places. decimal's own text marshalling trims trailing zeros, which
// turns 82.50 into "82.5" in the output file; implementing gocsv's field
// marshaller interface keeps the money column stable.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// NewAmountFromString parses a string into an Amount, tolerating statement
// decorations the same way ParseAmount does.
func NewAmountFromString(s string) (Amount, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return Amount{}, fmt.Errorf("empty amount")
	}
	return Amount{Decimal: ParseAmount(cleaned)}, nil
}

// MarshalCSV renders the amount with two decimal places.
func (a Amount) MarshalCSV() (string, error) {
	return a.StringFixed(2), nil
}

// UnmarshalCSV parses a CSV cell back into an Amount.
func (a *Amount) UnmarshalCSV(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	a.Decimal = d
	return nil
}
