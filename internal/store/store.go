// Package store assembles the merchant pattern and category keyword tables
// the categorization pipeline runs on. The tables always start from the
// built-in defaults; an optional custom config file extends them. Loading
// fails soft: a missing, unreadable, malformed or schema-invalid custom file
// leaves the defaults in effect with a logged warning, never an error.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultPatternsFile is the file name searched for when no explicit custom
// config path is configured.
const DefaultPatternsFile = "patterns.yaml"

// Source reports where a LoadResult's tables came from.
type Source int

const (
	// SourceDefaults means only the built-in tables are in effect.
	SourceDefaults Source = iota
	// SourceMerged means a custom config file was parsed, validated and
	// merged on top of the defaults.
	SourceMerged
)

func (s Source) String() string {
	if s == SourceMerged {
		return "merged"
	}
	return "defaults"
}

// LoadResult is the outcome of a Load call. The slices are treated as
// read-only by every consumer for the remainder of the run.
type LoadResult struct {
	MerchantPatterns []models.MerchantPattern
	Categories       models.CategoryList
	Source           Source
}

// PatternStore loads and merges merchant pattern and category configuration.
type PatternStore struct {
	PatternsFile string
	logger       logging.Logger
}

// NewPatternStore creates a store reading the given custom config file.
// An empty patternsFile means "search the standard locations for
// patterns.yaml". A nil logger falls back to the package default.
func NewPatternStore(patternsFile string, logger logging.Logger) *PatternStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &PatternStore{
		PatternsFile: patternsFile,
		logger:       logger,
	}
}

// FindConfigFile looks for a configuration file in the standard locations:
// the path itself, ./config/, and ~/.config/ccs-extract/.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "ccs-extract", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Load returns the merged merchant pattern and category tables. It never
// returns an error: every failure mode of the custom config file degrades to
// the built-in defaults with a warning.
func (s *PatternStore) Load() LoadResult {
	defaults := LoadResult{
		MerchantPatterns: DefaultMerchantPatterns(),
		Categories:       DefaultCategories(),
		Source:           SourceDefaults,
	}

	filename := s.PatternsFile
	if filename == "" {
		filename = DefaultPatternsFile
	}

	filePath, err := FindConfigFile(filename)
	if err != nil {
		s.logger.Warn("Custom pattern config not found, using built-in defaults",
			logging.Field{Key: logging.FieldFile, Value: filename})
		return defaults
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		s.logger.WithError(err).Warn("Could not read custom pattern config, using built-in defaults",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return defaults
	}

	var custom models.CustomConfig
	if err := yaml.Unmarshal(data, &custom); err != nil {
		s.logger.WithError(err).Warn("Malformed custom pattern config, using built-in defaults",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return defaults
	}

	if reason := validateCustomConfig(&custom); reason != "" {
		s.logger.Warn("Custom pattern config failed validation, using built-in defaults",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldReason, Value: reason})
		return defaults
	}

	merged := LoadResult{
		MerchantPatterns: mergeMerchantPatterns(defaults.MerchantPatterns, custom.MerchantPatterns),
		Categories:       mergeCategories(defaults.Categories, custom.Categories),
		Source:           SourceMerged,
	}

	s.logger.Info("Loaded custom pattern config",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: "merchant_patterns", Value: len(custom.MerchantPatterns)},
		logging.Field{Key: "categories", Value: len(custom.Categories)})

	return merged
}

// validateCustomConfig checks the fixed schema: both sections present,
// patterns non-empty with a canonical name, and every pattern compilable.
// It returns an empty string when the config is acceptable.
func validateCustomConfig(custom *models.CustomConfig) string {
	if custom.MerchantPatterns == nil {
		return "missing merchant_patterns section"
	}
	if custom.Categories == nil {
		return "missing categories section"
	}
	for i, p := range custom.MerchantPatterns {
		if p.Pattern == "" {
			return fmt.Sprintf("merchant_patterns[%d]: empty pattern", i)
		}
		if p.Normalized == "" {
			return fmt.Sprintf("merchant_patterns[%d]: empty normalized name", i)
		}
		if _, err := regexp.Compile("(?i)" + p.Pattern); err != nil {
			return fmt.Sprintf("merchant_patterns[%d]: invalid pattern: %v", i, err)
		}
	}
	return ""
}

// mergeMerchantPatterns places the built-in defaults ahead of the custom
// patterns, so the defaults always get first chance to match. This is a
// deliberate precedence decision, not merely additive.
func mergeMerchantPatterns(defaults, custom []models.MerchantPattern) []models.MerchantPattern {
	merged := make([]models.MerchantPattern, 0, len(defaults)+len(custom))
	merged = append(merged, defaults...)
	merged = append(merged, custom...)
	return merged
}

// mergeCategories merges custom categories over the defaults per key. A
// custom category replaces the default keyword list for that name wholesale;
// unknown custom categories are appended in their declared order. Default
// ordering is preserved for the rest.
func mergeCategories(defaults, custom models.CategoryList) models.CategoryList {
	merged := make(models.CategoryList, 0, len(defaults)+len(custom))
	for _, cat := range defaults {
		if idx := custom.Index(cat.Name); idx >= 0 {
			merged = append(merged, custom[idx])
		} else {
			merged = append(merged, cat)
		}
	}
	for _, cat := range custom {
		if defaults.Index(cat.Name) < 0 {
			merged = append(merged, cat)
		}
	}
	return merged
}
