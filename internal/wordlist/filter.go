// Package wordlist provides dataset filtering helpers.
package wordlist

import (
	"strings"

	"github.com/verte-zerg/tokitype/internal/model"
)

// FilterFunc returns true when a record should be kept.
type FilterFunc func(model.WordRecord) bool

// FilterForCategory keeps records of one usage category that carry a
// definition to use as the prompt. Deprecated words are dropped unless
// includeDeprecated is set.
func FilterForCategory(category model.UsageCategory, includeDeprecated bool) FilterFunc {
	return func(r model.WordRecord) bool {
		if r.UsageCategory != category {
			return false
		}
		if r.Deprecated && !includeDeprecated {
			return false
		}
		if strings.TrimSpace(r.Word) == "" {
			return false
		}
		return r.Prompt() != ""
	}
}

// Filter returns the records accepted by keep, in their original order.
func Filter(records []model.WordRecord, keep FilterFunc) []model.WordRecord {
	out := make([]model.WordRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountByCategory counts eligible records per usage category.
func CountByCategory(records []model.WordRecord, includeDeprecated bool) map[model.UsageCategory]int {
	counts := make(map[model.UsageCategory]int, len(model.Categories))
	for _, c := range model.Categories {
		counts[c] = len(Filter(records, FilterForCategory(c, includeDeprecated)))
	}
	return counts
}
