package categorizer

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"fjacquet/ccs-extract/internal/dateutils"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
	"fjacquet/ccs-extract/internal/parsererror"
)

// DefaultRulesFile is the rules file name looked up in the standard config
// locations when no explicit path is configured.
const DefaultRulesFile = "rules.yaml"

// compiledRule pairs a rule with its pre-compiled text matcher. re is nil
// for literal (substring) rules.
type compiledRule struct {
	models.ConditionalRule
	re *regexp.Regexp
}

// RuleEngine evaluates conditional categorization rules in descending
// priority order. The rule set is built once through LoadRules or AddRule
// and stays read-only while transactions are being processed.
type RuleEngine struct {
	rules  []compiledRule
	logger logging.Logger
}

// NewRuleEngine returns an engine with an empty rule set.
func NewRuleEngine(logger logging.Logger) *RuleEngine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleEngine{logger: logger}
}

// LoadRules reads a rules file containing a top-level sequence of rules.
// Both YAML and JSON documents are accepted.
//
// A missing file leaves the engine empty with a warning. A file that does
// not parse, whose top level is not a sequence, or that contains a regex
// rule that does not compile is a hard *parsererror.ConfigurationError.
// Unlike merchant pattern config there are no built-in rules to fall back
// to, so a broken rules file is surfaced to the caller instead of being
// silently ignored.
func (e *RuleEngine) LoadRules(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.logger.WithField(logging.FieldFile, path).
				Warn("Rules file not found, using empty rule set")
			return nil
		}
		return &parsererror.ConfigurationError{
			FilePath: path,
			Reason:   "cannot read rules file",
			Err:      err,
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &parsererror.ConfigurationError{
			FilePath: path,
			Reason:   "rules file is not valid YAML or JSON",
			Err:      err,
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 ||
		doc.Content[0].Kind != yaml.SequenceNode {
		return &parsererror.ConfigurationError{
			FilePath: path,
			Reason:   "rules file must contain a top-level sequence of rules",
		}
	}

	var rules []models.ConditionalRule
	if err := doc.Content[0].Decode(&rules); err != nil {
		return &parsererror.ConfigurationError{
			FilePath: path,
			Reason:   "invalid rule definition",
			Err:      err,
		}
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr, err := compileRule(r)
		if err != nil {
			return &parsererror.ConfigurationError{
				FilePath: path,
				Reason:   fmt.Sprintf("rule %q has an invalid pattern", r.Name),
				Err:      err,
			}
		}
		compiled = append(compiled, cr)
	}

	e.rules = compiled
	e.sortRules()

	e.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(e.rules)},
	).Info("Loaded conditional rules")

	return nil
}

// AddRule inserts one rule and re-sorts the set. A regex rule whose pattern
// does not compile is rejected so Apply never sees an uncompiled rule.
func (e *RuleEngine) AddRule(rule models.ConditionalRule) error {
	cr, err := compileRule(rule)
	if err != nil {
		return &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("rule %q has an invalid pattern", rule.Name),
			Err:    err,
		}
	}
	e.rules = append(e.rules, cr)
	e.sortRules()
	return nil
}

// Rules returns the rule set in evaluation order.
func (e *RuleEngine) Rules() []models.ConditionalRule {
	out := make([]models.ConditionalRule, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.ConditionalRule
	}
	return out
}

// Apply evaluates the transaction against every rule in priority order and
// returns the category of the first full match. The bool reports whether
// any rule matched at all; the fallback category is the caller's concern.
func (e *RuleEngine) Apply(description string, amount decimal.Decimal, date time.Time) (string, bool) {
	for _, rule := range e.rules {
		if !rule.matchesText(description) {
			continue
		}
		if !matchesAmount(amount, rule.AmountCondition) {
			continue
		}
		if !matchesDate(date, rule.DateCondition) {
			continue
		}

		e.logger.WithFields(
			logging.Field{Key: logging.FieldRule, Value: rule.Name},
			logging.Field{Key: logging.FieldCategory, Value: rule.Category},
			logging.Field{Key: logging.FieldPriority, Value: rule.Priority},
		).Debug("Conditional rule matched")

		return rule.Category, true
	}
	return "", false
}

// sortRules orders rules by descending priority. The sort is stable so
// rules with equal priority keep their load order.
func (e *RuleEngine) sortRules() {
	sort.SliceStable(e.rules, func(i, j int) bool {
		return e.rules[i].Priority > e.rules[j].Priority
	})
}

func compileRule(rule models.ConditionalRule) (compiledRule, error) {
	cr := compiledRule{ConditionalRule: rule}
	if rule.IsRegex {
		re, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			return compiledRule{}, err
		}
		cr.re = re
	}
	return cr, nil
}

func (r compiledRule) matchesText(description string) bool {
	if r.re != nil {
		return r.re.MatchString(description)
	}
	return strings.Contains(strings.ToLower(description), strings.ToLower(r.Pattern))
}

func matchesAmount(amount decimal.Decimal, cond *models.AmountCondition) bool {
	if cond == nil {
		return true
	}
	switch cond.Operator {
	case models.OperatorEqual:
		return amount.Equal(cond.Value)
	case models.OperatorGreater:
		return amount.GreaterThan(cond.Value)
	case models.OperatorGreaterOrEqual:
		return amount.GreaterThanOrEqual(cond.Value)
	case models.OperatorLess:
		return amount.LessThan(cond.Value)
	case models.OperatorLessOrEqual:
		return amount.LessThanOrEqual(cond.Value)
	case models.OperatorNotEqual:
		return !amount.Equal(cond.Value)
	default:
		return false
	}
}

// matchesDate compares calendar dates only; time of day never influences
// the outcome. An unparseable condition value makes the predicate false
// for this rule without aborting evaluation of the remaining rules.
func matchesDate(date time.Time, cond *models.DateCondition) bool {
	if cond == nil {
		return true
	}

	target, err := dateutils.ParseConditionDate(cond.Value)
	if err != nil {
		return false
	}

	cmp := dateutils.CompareDates(date, target)
	switch cond.Operator {
	case models.OperatorEqual:
		return cmp == 0
	case models.OperatorGreater:
		return cmp > 0
	case models.OperatorGreaterOrEqual:
		return cmp >= 0
	case models.OperatorLess:
		return cmp < 0
	case models.OperatorLessOrEqual:
		return cmp <= 0
	default:
		return false
	}
}
