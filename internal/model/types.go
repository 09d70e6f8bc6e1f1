// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// UsageCategory is how common a word is in use.
type UsageCategory string

// Known usage categories, from most to least common.
const (
	CategoryCore     UsageCategory = "core"
	CategoryCommon   UsageCategory = "common"
	CategoryUncommon UsageCategory = "uncommon"
	CategoryObscure  UsageCategory = "obscure"
	CategorySandbox  UsageCategory = "sandbox"
)

// Categories lists every known usage category in order.
var Categories = []UsageCategory{
	CategoryCore,
	CategoryCommon,
	CategoryUncommon,
	CategoryObscure,
	CategorySandbox,
}

// ParseCategory validates a category name.
func ParseCategory(name string) (UsageCategory, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	for _, c := range Categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown usage category %q", name)
}

// WordRecord is one dataset entry.
type WordRecord struct {
	ID            string            `toml:"id"`
	UsageCategory UsageCategory     `toml:"usage_category"`
	Word          string            `toml:"word"`
	Deprecated    bool              `toml:"deprecated"`
	KuData        map[string]int    `toml:"ku_data"`
	PuVerbatim    map[string]string `toml:"pu_verbatim"`
	Commentary    *string           `toml:"commentary"`
	Definitions   *string           `toml:"definitions"`
}

// Prompt returns the definition text shown while the word is typed.
func (r WordRecord) Prompt() string {
	if r.Definitions == nil {
		return ""
	}
	return strings.TrimSpace(*r.Definitions)
}

// Hint returns the prompt prefixed with the record's usage category, or ""
// when the record has no definition.
func (r WordRecord) Hint() string {
	prompt := r.Prompt()
	if prompt == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", r.UsageCategory, prompt)
}

// Profile is reserved for per-user settings. It recognizes no options yet.
type Profile struct{}

// Settings is reserved for display settings. It recognizes no options yet.
type Settings struct{}

// Config defines practice settings.
type Config struct {
	Category          UsageCategory
	Words             int
	DatasetPath       string
	IncludeDeprecated bool
	Profile           Profile
	Settings          Settings
}
