// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/ccs-extract/internal/currencyutils"
)

// Transaction represents a single itemized transaction extracted from a
// credit card statement. Merchant and Category are filled in by the
// categorization pipeline before the transaction is written out.
type Transaction struct {
	Date        string `csv:"Transaction Date"`    // Date in DD/MM/YYYY format
	Description string `csv:"Transaction Details"` // Raw statement description, whitespace collapsed
	Amount      Amount `csv:"Amount"`              // Amount as decimal value, negative for credits
	Merchant    string `csv:"Merchant"`            // Canonical merchant name
	Category    string `csv:"Category"`            // Spending category
}

// ParseAmount parses a string amount to decimal.Decimal.
// It tolerates the decorations found in statement text: a leading currency
// symbol, thousands separators and surrounding whitespace. Unparseable
// input yields zero.
func ParseAmount(amountStr string) decimal.Decimal {
	dec, err := currencyutils.ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// IsCredit returns true if the transaction is a credit (money coming back,
// stored as a negative amount).
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsNegative()
}
