package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ConditionalRule is a single declarative categorization rule. Rules combine
// a text match with optional amount and date predicates; a rule matches a
// transaction only when every present predicate passes. Higher priority
// rules are evaluated first.
type ConditionalRule struct {
	Name            string           `yaml:"name"`
	Pattern         string           `yaml:"pattern"`
	Category        string           `yaml:"category"`
	Priority        int              `yaml:"priority"`
	Description     string           `yaml:"description"`
	AmountCondition *AmountCondition `yaml:"amount_condition"`
	DateCondition   *DateCondition   `yaml:"date_condition"`
	IsRegex         bool             `yaml:"is_regex"`
}

// UnmarshalYAML applies the rule defaults: is_regex is true unless the file
// says otherwise, and a rule without a category falls back to "Other".
func (r *ConditionalRule) UnmarshalYAML(value *yaml.Node) error {
	type plainRule ConditionalRule
	raw := plainRule{IsRegex: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Category == "" {
		raw.Category = DefaultCategory
	}
	*r = ConditionalRule(raw)
	return nil
}

// AmountCondition compares the transaction amount against a fixed value.
type AmountCondition struct {
	Operator string
	Value    decimal.Decimal
}

// UnmarshalYAML decodes the condition, accepting both quoted and numeric
// scalars for the value. The operator defaults to "==" when omitted.
func (c *AmountCondition) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Operator string `yaml:"operator"`
		Value    string `yaml:"value"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Operator == "" {
		raw.Operator = OperatorEqual
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw.Value))
	if err != nil {
		return fmt.Errorf("invalid amount condition value %q: %w", raw.Value, err)
	}
	c.Operator = raw.Operator
	c.Value = d
	return nil
}

// DateCondition compares the transaction's calendar date against a fixed
// date given as YYYY-MM-DD. The value is kept as a string; an unparseable
// value makes the predicate evaluate false rather than failing rule loading.
type DateCondition struct {
	Operator string `yaml:"operator"`
	Value    string `yaml:"value"`
}

// UnmarshalYAML applies the default "==" operator.
func (c *DateCondition) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Operator string `yaml:"operator"`
		Value    string `yaml:"value"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Operator == "" {
		raw.Operator = OperatorEqual
	}
	c.Operator = raw.Operator
	c.Value = raw.Value
	return nil
}
