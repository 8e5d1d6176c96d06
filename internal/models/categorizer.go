package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MerchantPattern maps a text pattern to a canonical merchant name.
// Patterns are tried in order, so more specific entries must come before
// generic ones.
type MerchantPattern struct {
	Pattern    string `yaml:"pattern"`
	Normalized string `yaml:"normalized"`
}

// CategoryConfig represents one category and its keyword triggers.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoryList is an ordered list of categories. Order is significant: the
// keyword categorizer returns the first category with a matching keyword, so
// the list must preserve the order categories were declared in.
type CategoryList []CategoryConfig

// UnmarshalYAML decodes categories from either a mapping of name to keyword
// list (the documented config format, document order preserved) or a
// sequence of {name, keywords} entries.
func (c *CategoryList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		out := make([]CategoryConfig, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			var name string
			if err := value.Content[i].Decode(&name); err != nil {
				return fmt.Errorf("category name must be a string: %w", err)
			}
			var keywords []string
			if err := value.Content[i+1].Decode(&keywords); err != nil {
				return fmt.Errorf("category %q: keywords must be a list of strings: %w", name, err)
			}
			out = append(out, CategoryConfig{Name: name, Keywords: keywords})
		}
		*c = out
		return nil
	case yaml.SequenceNode:
		var out []CategoryConfig
		if err := value.Decode(&out); err != nil {
			return err
		}
		*c = out
		return nil
	default:
		return fmt.Errorf("categories must be a mapping of name to keyword list")
	}
}

// Names returns the category names in declared order.
func (c CategoryList) Names() []string {
	names := make([]string, len(c))
	for i, cat := range c {
		names[i] = cat.Name
	}
	return names
}

// Index returns the position of the named category, or -1 if absent.
func (c CategoryList) Index(name string) int {
	for i, cat := range c {
		if cat.Name == name {
			return i
		}
	}
	return -1
}

// CustomConfig is the schema of the optional pattern/category config file.
// Both sections must be present for the file to be accepted; a nil slice
// after decoding means the section was absent.
type CustomConfig struct {
	MerchantPatterns []MerchantPattern `yaml:"merchant_patterns"`
	Categories       CategoryList      `yaml:"categories"`
}
