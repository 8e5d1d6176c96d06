package categorizer

import (
	"strings"

	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
)

// KeywordCategorizer assigns a category to a description by scanning an
// ordered list of category keyword sets. The first category with any
// keyword present in the description wins, so the list order decides ties.
type KeywordCategorizer struct {
	categories []keywordSet
	logger     logging.Logger
}

type keywordSet struct {
	name     string
	keywords []string
}

// NewKeywordCategorizer builds a categorizer over the merged category list.
// Keywords are lower-cased once here so Categorize only lowers the
// incoming description.
func NewKeywordCategorizer(categories models.CategoryList, logger logging.Logger) *KeywordCategorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	sets := make([]keywordSet, 0, len(categories))
	for _, c := range categories {
		lowered := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			lowered = append(lowered, strings.ToLower(kw))
		}
		sets = append(sets, keywordSet{name: c.Name, keywords: lowered})
	}

	return &KeywordCategorizer{categories: sets, logger: logger}
}

// Categorize returns the first category whose keyword list matches the
// description, or the default category when nothing matches. Matching is
// case-insensitive substring search.
func (k *KeywordCategorizer) Categorize(description string) string {
	lower := strings.ToLower(description)

	for _, set := range k.categories {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				k.logger.WithFields(
					logging.Field{Key: "keyword", Value: kw},
					logging.Field{Key: logging.FieldCategory, Value: set.name},
				).Debug("Categorized transaction by keyword")
				return set.name
			}
		}
	}

	return models.DefaultCategory
}
